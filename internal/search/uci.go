package search

import (
	"fmt"
	"time"

	nchess "github.com/notnil/chess"
	"github.com/notnil/chess/uci"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/errors"
)

// DefaultEnginePath is the UCI binary looked up on PATH when none is given.
const DefaultEnginePath = "stockfish"

// UCI runs a UCI engine process and plays its best move on the position.
type UCI struct {
	eng *uci.Engine
	log zerolog.Logger
}

// NewUCI starts the engine at path and completes the UCI handshake.
func NewUCI(path string, log zerolog.Logger) (*UCI, error) {
	if path == "" {
		path = DefaultEnginePath
	}

	eng, err := uci.New(path)
	if err != nil {
		return nil, fmt.Errorf("starting %s: %v: %w", path, err, errors.ErrEngine)
	}

	if err := eng.Run(uci.CmdUCI, uci.CmdIsReady, uci.CmdUCINewGame); err != nil {
		eng.Close()
		return nil, fmt.Errorf("initialising %s: %v: %w", path, err, errors.ErrEngine)
	}

	log.Debug().Str("engine", path).Msg("uci engine ready")
	return &UCI{eng: eng, log: log}, nil
}

// SearchBestMove searches the position to depth, plays the best move and
// returns the resulting notation together with the move. engineSide turns on
// logging of the engine's search summary.
func (u *UCI) SearchBestMove(notation string, depth int, engineSide bool) (Result, error) {
	fen, err := nchess.FEN(notation)
	if err != nil {
		return Result{}, fmt.Errorf("loading %q: %v: %w", notation, err, errors.ErrEngine)
	}
	game := nchess.NewGame(fen)

	start := time.Now()
	cmdPos := uci.CmdPosition{Position: game.Position()}
	cmdGo := uci.CmdGo{Depth: depth}
	if err := u.eng.Run(cmdPos, cmdGo); err != nil {
		return Result{}, fmt.Errorf("searching: %v: %w", err, errors.ErrEngine)
	}

	results := u.eng.SearchResults()
	best := results.BestMove
	if best == nil {
		return Result{}, fmt.Errorf("no move for %q: %w", notation, errors.ErrEngine)
	}

	if engineSide {
		u.log.Info().
			Str("bestmove", best.String()).
			Int("depth", results.Info.Depth).
			Int("score_cp", results.Info.Score.CP).
			Dur("elapsed", time.Since(start)).
			Msg("engine search")
	}

	if err := game.Move(best); err != nil {
		return Result{}, fmt.Errorf("playing %s: %v: %w", best, err, errors.ErrEngine)
	}

	move, err := convertMove(best)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Notation: game.Position().String(),
		Move:     &move,
	}, nil
}

// Close stops the engine process.
func (u *UCI) Close() error {
	return u.eng.Close()
}

// convertMove maps an engine move onto board squares.
func convertMove(m *nchess.Move) (chess.Move, error) {
	from, err := convertSquare(m.S1())
	if err != nil {
		return chess.Move{}, err
	}
	to, err := convertSquare(m.S2())
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{From: from, To: to}, nil
}

func convertSquare(sq nchess.Square) (chess.Square, error) {
	return chess.NewSquare(int(sq.File()), int(sq.Rank()))
}
