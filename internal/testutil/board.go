package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessai-client/internal/chess"
)

// AssertBoardEqual compares piece placement, side to move and castling
// rights, reporting differing squares by name.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()

	var problems []string
	gotSquares, wantSquares := got.Squares(), want.Squares()
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if gotSquares[sq] != wantSquares[sq] {
			problems = append(problems, fmt.Sprintf("%v: got %v, want %v", sq, gotSquares[sq], wantSquares[sq]))
		}
	}
	if got.SideToMove != want.SideToMove {
		problems = append(problems, fmt.Sprintf("side to move: got %v, want %v", got.SideToMove, want.SideToMove))
	}
	if diff := cmp.Diff(want.Castling.Rights(), got.Castling.Rights()); diff != "" {
		problems = append(problems, "castling (-want +got):\n"+diff)
	}

	if len(problems) > 0 {
		fail(t, "boards differ:\n"+strings.Join(problems, "\n"), msgAndArgs...)
	}
}

// BoardWith returns an empty board holding the given pieces.
func BoardWith(pieces map[chess.Square]chess.Piece) *chess.Board {
	b := chess.NewBoard()
	for sq, p := range pieces {
		b.Place(sq, p)
	}
	return b
}
