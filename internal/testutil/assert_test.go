package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessai-client/internal/chess"
)

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"none", nil, ""},
		{"single", []interface{}{"undo"}, "undo"},
		{"format", []interface{}{"ply %d of %s", 3, "white"}, "ply 3 of white"},
		{"non-string head", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNil(t *testing.T) {
	var board *chess.Board
	var squares []chess.Square

	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", board, true},
		{"nil slice", squares, true},
		{"board", chess.NewBoard(), false},
		{"value", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.v); got != tt.want {
				t.Errorf("isNil() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPassingAssertions(t *testing.T) {
	sentinel := errors.New("sentinel")

	AssertEqual(t, []chess.Square{chess.Sq(4, 1)}, []chess.Square{chess.Sq(4, 1)})
	AssertNoError(t, nil)
	AssertError(t, sentinel)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertContains(t, "rnbqkbnr/pppppppp", "pppp")
	AssertNotContains(t, "8/8/8/8/8/8/8/8", "K")
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertNotNil(t, chess.NewBoard())
}

func TestAssertBoardEqual(t *testing.T) {
	a := chess.NewBoard()
	a.SetupInitialPosition()
	b := a.Copy()
	AssertBoardEqual(t, b, a)

	placed := BoardWith(map[chess.Square]chess.Piece{
		chess.Sq(4, 0): chess.W(chess.King),
		chess.Sq(4, 7): chess.B(chess.King),
	})
	AssertEqual(t, placed.Occupied(), 2)
	AssertEqual(t, placed.At(chess.Sq(4, 0)), chess.W(chess.King))
}
