// Package session runs one game between a human and the search engine: it
// owns the board, the undo history and the persisted move log and keeps the
// three in step.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/config"
	"github.com/lgbarn/chessai-client/internal/engine"
	"github.com/lgbarn/chessai-client/internal/errors"
	"github.com/lgbarn/chessai-client/internal/gamelog"
	"github.com/lgbarn/chessai-client/internal/history"
	"github.com/lgbarn/chessai-client/internal/search"
)

// Session is a single game. It is not safe for concurrent use; callers must
// not start a move while an engine search is outstanding.
type Session struct {
	id       uuid.UUID
	board    *chess.Board
	player   chess.Colour
	depth    int
	history  *history.Stack
	moves    *gamelog.Log
	searcher search.Searcher
	lastMove []chess.Square
	log      zerolog.Logger
}

// New builds a session from cfg. When a log with the configured name already
// holds moves the game resumes from its last position.
func New(cfg *config.Config, searcher search.Searcher, logger zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	player, _ := cfg.Game.PlayerColour()
	side, _ := cfg.Game.StartColour()

	board, _, err := engine.Parse(cfg.Game.InitialNotation)
	if err != nil {
		return nil, err
	}
	board.SideToMove = side

	name := cfg.Log.Name
	if name == "" {
		name = gamelog.DefaultName(time.Now())
	}
	moves, err := gamelog.Open(cfg.Log.Dir, name)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	s := &Session{
		id:       id,
		board:    board,
		player:   player,
		depth:    cfg.Game.Depth,
		history:  history.New(),
		moves:    moves,
		searcher: searcher,
		log:      logger.With().Str("session", id.String()).Logger(),
	}

	if moves.Len() > 0 {
		if err := s.resume(); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Str("fen", s.Snapshot()).
		Str("player", player.String()).
		Int("depth", s.depth).
		Str("log", moves.Path()).
		Int("resumed_plies", s.history.Len()).
		Msg("game started")
	return s, nil
}

// resume rebuilds history and board from the entries already in the log.
// Entry i holds the position after ply i, so the snapshot before ply i is
// the initial position for i == 0 and entry i-1 otherwise.
func (s *Session) resume() error {
	entries := s.moves.Entries()
	s.history.Push(s.Snapshot())
	for _, e := range entries[:len(entries)-1] {
		s.history.Push(e.FENCode)
	}

	side := s.board.SideToMove
	if len(entries)%2 == 1 {
		side = side.Opposite()
	}

	last := entries[len(entries)-1].FENCode
	board, _, err := engine.Parse(last)
	if err != nil {
		return errors.Wrapf(err, "resuming from %s", s.moves.Path())
	}
	board.SideToMove = side
	s.board = board
	s.lastMove = s.changedSinceTop()
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board { return s.board.Copy() }

// SideToMove returns whose turn the session believes it is.
func (s *Session) SideToMove() chess.Colour { return s.board.SideToMove }

// Player returns the human player's colour.
func (s *Session) Player() chess.Colour { return s.player }

// Depth returns the engine search depth.
func (s *Session) Depth() int { return s.depth }

// SetDepth changes the engine search depth.
func (s *Session) SetDepth(depth int) error {
	if depth < search.MinDepth || depth > search.MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d not in %d..%d",
			depth, search.MinDepth, search.MaxDepth)
	}
	s.depth = depth
	s.log.Debug().Int("depth", depth).Msg("depth changed")
	return nil
}

// Snapshot serializes the current position.
func (s *Session) Snapshot() string {
	return engine.BoardToNotation(s.board)
}

// LastMove returns the squares changed by the most recent move.
func (s *Session) LastMove() []chess.Square {
	out := make([]chess.Square, len(s.lastMove))
	copy(out, s.lastMove)
	return out
}

// History returns the undo snapshots, oldest first.
func (s *Session) History() []string { return s.history.Snapshots() }

// Plies returns the number of committed moves.
func (s *Session) Plies() int { return s.history.Len() }

// CanUndo reports whether there is a move to take back.
func (s *Session) CanUndo() bool { return !s.history.Empty() }

// LogPath returns the file the move log is written to.
func (s *Session) LogPath() string { return s.moves.Path() }

// LogEntries returns the persisted move log entries.
func (s *Session) LogEntries() []gamelog.Entry { return s.moves.Entries() }

// Move plays a move from src to dst on behalf of the human.
func (s *Session) Move(src, dst chess.Square) error {
	if err := s.applyMove(chess.Move{From: src, To: dst}); err != nil {
		return err
	}
	s.log.Info().Str("move", src.String()+dst.String()).Str("fen", s.Snapshot()).Msg("player move")
	return nil
}

// applyMove relocates a piece and commits the result.
func (s *Session) applyMove(m chess.Move) error {
	before := s.Snapshot()
	prev := s.board.Copy()

	if err := engine.ApplyMove(s.board, m.From, m.To); err != nil {
		return err
	}
	return s.commit(before, prev, &m)
}

// commit records a finished move: history, side to move, highlight and log.
func (s *Session) commit(before string, prev *chess.Board, m *chess.Move) error {
	s.history.Push(before)
	s.board.SideToMove = s.board.SideToMove.Opposite()
	s.lastMove = engine.ChangedSquares(prev, s.board)

	if err := s.moves.Append(gamelog.NewEntry(s.Snapshot(), m)); err != nil {
		return errors.Wrap(err, "saving move log")
	}
	return nil
}

// EngineMove asks the engine for a move and plays it. The call blocks until
// the engine answers.
func (s *Session) EngineMove() (search.Result, error) {
	if s.searcher == nil {
		return search.Result{}, errors.Wrap(errors.ErrEngine, "no engine configured")
	}

	before := s.Snapshot()
	start := time.Now()
	res, err := s.searcher.SearchBestMove(before, s.depth, true)
	elapsed := time.Since(start)
	if err != nil {
		s.log.Error().Err(err).Dur("elapsed", elapsed).Msg("engine search failed")
		return search.Result{}, err
	}

	switch {
	case res.Notation != "":
		err = s.replaceBoard(before, res)
	case res.Move != nil:
		err = s.applyMove(*res.Move)
	default:
		err = fmt.Errorf("empty result: %w", errors.ErrEngine)
	}
	if err != nil {
		return search.Result{}, err
	}

	ev := s.log.Info().Int("depth", s.depth).Dur("elapsed", elapsed).Str("fen", s.Snapshot())
	if res.Move != nil {
		ev = ev.Str("move", res.Move.String())
	}
	ev.Msg("engine move")
	return res, nil
}

// replaceBoard installs the position the engine returned.
func (s *Session) replaceBoard(before string, res search.Result) error {
	board, _, err := engine.Parse(res.Notation)
	if err != nil {
		return errors.Wrap(err, "engine result")
	}
	board.SideToMove = s.board.SideToMove

	prev := s.board
	s.board = board
	return s.commit(before, prev, res.Move)
}

// Undo takes back the most recent move. The history and the log are only
// shortened once the restored snapshot has parsed.
func (s *Session) Undo() error {
	snapshot, ok := s.history.Peek()
	if !ok {
		return errors.ErrEmptyHistory
	}

	board, _, err := engine.Parse(snapshot)
	if err != nil {
		return errors.Wrap(err, "restoring snapshot")
	}

	if _, err := s.history.Pop(); err != nil {
		return err
	}
	board.SideToMove = s.board.SideToMove.Opposite()
	s.board = board
	s.lastMove = s.changedSinceTop()

	if err := s.moves.Truncate(); err != nil {
		return errors.Wrap(err, "saving move log")
	}
	s.log.Info().Str("fen", snapshot).Int("plies", s.history.Len()).Msg("undo")
	return nil
}

// changedSinceTop diffs the current board against the newest history
// snapshot, giving the squares of the move that produced it.
func (s *Session) changedSinceTop() []chess.Square {
	top, ok := s.history.Peek()
	if !ok {
		return nil
	}
	changed, err := engine.ChangedSquaresBetween(top, s.Snapshot())
	if err != nil {
		return nil
	}
	return changed
}
