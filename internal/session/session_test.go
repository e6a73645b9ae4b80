package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/config"
	"github.com/lgbarn/chessai-client/internal/engine"
	chesserrors "github.com/lgbarn/chessai-client/internal/errors"
	"github.com/lgbarn/chessai-client/internal/gamelog"
	"github.com/lgbarn/chessai-client/internal/search"
	"github.com/lgbarn/chessai-client/internal/testutil"
)

const (
	afterE4 = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	afterE5 = "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"
)

var (
	e2 = chess.Sq(4, 1)
	e4 = chess.Sq(4, 3)
	e7 = chess.Sq(4, 6)
	e5 = chess.Sq(4, 4)
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.NewConfigBuilder().
		WithLogDir(filepath.Join(t.TempDir(), "logs")).
		WithLogName("test").
		Build()
}

// scripted returns an engine that answers with the given notations in order.
func scripted(t *testing.T, answers ...search.Result) search.Searcher {
	t.Helper()
	return search.Func(func(notation string, depth int, engineSide bool) (search.Result, error) {
		if len(answers) == 0 {
			t.Fatalf("unexpected engine call for %q", notation)
		}
		res := answers[0]
		answers = answers[1:]
		return res, nil
	})
}

func newSession(t *testing.T, cfg *config.Config, searcher search.Searcher) *Session {
	t.Helper()
	s, err := New(cfg, searcher, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func assertInStep(t *testing.T, s *Session) {
	t.Helper()
	if s.Plies() != len(s.LogEntries()) {
		t.Errorf("history has %d snapshots but log has %d entries", s.Plies(), len(s.LogEntries()))
	}
}

func TestNew_InvalidColour(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.Colour = "purple"

	_, err := New(cfg, nil, zerolog.Nop())
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	if _, statErr := os.Stat(cfg.Log.Dir); !os.IsNotExist(statErr) {
		t.Error("log directory created for rejected config")
	}
}

func TestNew_LogPathIsFile(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.Log.Dir, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(cfg, nil, zerolog.Nop())
	testutil.AssertErrorIs(t, err, chesserrors.ErrLogDirectory)
}

func TestSession_PlayerMove(t *testing.T) {
	s := newSession(t, testConfig(t), nil)

	testutil.AssertNoError(t, s.Move(e2, e4))
	testutil.AssertEqual(t, s.Snapshot(), afterE4)
	testutil.AssertEqual(t, s.SideToMove(), chess.Black)
	testutil.AssertEqual(t, s.LastMove(), []chess.Square{e2, e4})
	testutil.AssertEqual(t, s.History(), []string{engine.InitialFEN})
	assertInStep(t, s)

	entries := s.LogEntries()
	testutil.AssertEqual(t, entries[0].FENCode, afterE4)
	if entries[0].Move == nil || entries[0].Move.From != [2]int{4, 1} || entries[0].Move.To != [2]int{4, 3} {
		t.Errorf("log move = %+v; want e2-e4", entries[0].Move)
	}
}

func TestSession_MoveFromEmptySquare(t *testing.T) {
	s := newSession(t, testConfig(t), nil)

	err := s.Move(e4, e5)
	testutil.AssertErrorIs(t, err, chesserrors.ErrEmptySquare)
	testutil.AssertEqual(t, s.Snapshot(), engine.InitialFEN)
	testutil.AssertEqual(t, s.Plies(), 0)
	assertInStep(t, s)
}

func TestSession_EngineMove(t *testing.T) {
	var gotDepth int
	var gotNotation string
	engineFn := search.Func(func(notation string, depth int, engineSide bool) (search.Result, error) {
		gotNotation, gotDepth = notation, depth
		return search.Result{
			Notation: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
			Move:     &chess.Move{From: e7, To: e5},
		}, nil
	})

	s := newSession(t, testConfig(t), engineFn)
	testutil.AssertNoError(t, s.SetDepth(3))
	testutil.AssertNoError(t, s.Move(e2, e4))

	_, err := s.EngineMove()
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, gotNotation, afterE4)
	testutil.AssertEqual(t, gotDepth, 3)
	testutil.AssertEqual(t, s.Snapshot(), afterE5)
	testutil.AssertEqual(t, s.SideToMove(), chess.White)
	testutil.AssertEqual(t, s.LastMove(), []chess.Square{e5, e7})
	testutil.AssertEqual(t, s.History(), []string{engine.InitialFEN, afterE4})
	assertInStep(t, s)
}

func TestSession_EngineMoveLegacyProtocol(t *testing.T) {
	s := newSession(t, testConfig(t), scripted(t, search.Result{Move: &chess.Move{From: e2, To: e4}}))

	_, err := s.EngineMove()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Snapshot(), afterE4)
	assertInStep(t, s)
}

func TestSession_EngineMoveErrors(t *testing.T) {
	tests := []struct {
		name     string
		searcher search.Searcher
		want     error
	}{
		{"no engine", nil, chesserrors.ErrEngine},
		{"empty result", scripted(t, search.Result{}), chesserrors.ErrEngine},
		{"bad notation", scripted(t, search.Result{Notation: "xx/8 w -"}), chesserrors.ErrInvalidNotation},
		{"engine error", search.Func(func(string, int, bool) (search.Result, error) {
			return search.Result{}, chesserrors.ErrEngine
		}), chesserrors.ErrEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, testConfig(t), tt.searcher)
			_, err := s.EngineMove()
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertEqual(t, s.Snapshot(), engine.InitialFEN)
			testutil.AssertEqual(t, s.Plies(), 0)
			assertInStep(t, s)
		})
	}
}

func TestSession_Undo(t *testing.T) {
	s := newSession(t, testConfig(t), nil)

	testutil.AssertNoError(t, s.Move(e2, e4))
	testutil.AssertNoError(t, s.Move(e7, e5))
	testutil.AssertEqual(t, s.Snapshot(), afterE5)

	testutil.AssertNoError(t, s.Undo())
	testutil.AssertEqual(t, s.Snapshot(), afterE4)
	testutil.AssertEqual(t, s.SideToMove(), chess.Black)
	testutil.AssertEqual(t, s.LastMove(), []chess.Square{e2, e4})
	assertInStep(t, s)

	testutil.AssertNoError(t, s.Undo())
	testutil.AssertEqual(t, s.Snapshot(), engine.InitialFEN)
	testutil.AssertEqual(t, s.SideToMove(), chess.White)
	testutil.AssertEqual(t, len(s.LastMove()), 0)
	testutil.AssertFalse(t, s.CanUndo())
	assertInStep(t, s)

	testutil.AssertErrorIs(t, s.Undo(), chesserrors.ErrEmptyHistory)
}

func TestSession_UndoCorruptSnapshotKeepsLogInStep(t *testing.T) {
	s := newSession(t, testConfig(t), nil)
	testutil.AssertNoError(t, s.Move(e2, e4))

	// A snapshot that no longer parses, with its matching log entry.
	s.history.Push("not a position")
	testutil.AssertNoError(t, s.moves.Append(gamelog.NewEntry(afterE4, nil)))

	testutil.AssertErrorIs(t, s.Undo(), chesserrors.ErrInvalidNotation)
	testutil.AssertEqual(t, s.Plies(), 2)
	testutil.AssertEqual(t, s.Snapshot(), afterE4)
	assertInStep(t, s)
}

func TestSession_UndoRewritesLog(t *testing.T) {
	cfg := testConfig(t)
	s := newSession(t, cfg, nil)

	testutil.AssertNoError(t, s.Move(e2, e4))
	testutil.AssertNoError(t, s.Undo())

	data, err := os.ReadFile(s.LogPath())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(data), "[]\n")
}

func TestSession_Resume(t *testing.T) {
	cfg := testConfig(t)
	first := newSession(t, cfg, nil)
	testutil.AssertNoError(t, first.Move(e2, e4))
	testutil.AssertNoError(t, first.Move(e7, e5))

	resumed := newSession(t, cfg, nil)
	testutil.AssertEqual(t, resumed.Snapshot(), first.Snapshot())
	testutil.AssertEqual(t, resumed.SideToMove(), first.SideToMove())
	testutil.AssertEqual(t, resumed.History(), first.History())
	testutil.AssertEqual(t, resumed.LastMove(), first.LastMove())
	assertInStep(t, resumed)

	testutil.AssertNoError(t, resumed.Undo())
	testutil.AssertEqual(t, resumed.Snapshot(), afterE4)
}

func TestSession_SetDepth(t *testing.T) {
	s := newSession(t, testConfig(t), nil)

	for _, d := range []int{0, 8, -1} {
		testutil.AssertErrorIs(t, s.SetDepth(d), chesserrors.ErrInvalidConfig, "depth %d", d)
	}
	testutil.AssertNoError(t, s.SetDepth(7))
	testutil.AssertEqual(t, s.Depth(), 7)
}

func TestSession_State(t *testing.T) {
	s := newSession(t, testConfig(t), nil)
	testutil.AssertNoError(t, s.Move(e2, e4))

	st := s.State()
	testutil.AssertEqual(t, st.ID, s.ID().String())
	testutil.AssertEqual(t, st.FEN, afterE4)
	testutil.AssertEqual(t, st.Side, "black")
	testutil.AssertEqual(t, st.Player, "white")
	testutil.AssertEqual(t, st.Depth, 4)
	testutil.AssertTrue(t, st.CanUndo)
	testutil.AssertEqual(t, len(st.Highlight), 2)
	testutil.AssertEqual(t, st.History, []string{engine.InitialFEN})
}

func TestSession_BoardIsCopy(t *testing.T) {
	s := newSession(t, testConfig(t), nil)
	b := s.Board()
	b.Clear(e2)
	testutil.AssertEqual(t, s.Snapshot(), engine.InitialFEN)
}
