// Package search defines the boundary to the external move-search engine.
package search

import (
	"github.com/lgbarn/chessai-client/internal/chess"
)

// MinDepth and MaxDepth bound the search depth offered to the player.
const (
	MinDepth     = 1
	MaxDepth     = 7
	DefaultDepth = 4
)

// Result is what an engine returns for one search.
//
// Engines speaking the current protocol fill Notation with the position after
// their move. Legacy engines leave Notation empty and only report Move, which
// the caller then applies itself. Engines may fill both.
type Result struct {
	Notation string
	Move     *chess.Move
}

// Searcher finds and plays the best move for a position. Calls block until
// the engine answers; there is no timeout or cancellation.
type Searcher interface {
	SearchBestMove(notation string, depth int, engineSide bool) (Result, error)
}

// Func adapts an ordinary function to Searcher.
type Func func(notation string, depth int, engineSide bool) (Result, error)

// SearchBestMove calls f.
func (f Func) SearchBestMove(notation string, depth int, engineSide bool) (Result, error) {
	return f(notation, depth, engineSide)
}
