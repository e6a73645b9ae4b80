// Package render draws a board as text for terminal play.
package render

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/engine"
)

var unicodePieces = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

// Options controls how a board is drawn.
type Options struct {
	// ViewFrom is the side shown at the bottom.
	ViewFrom chess.Colour

	// Highlight marks squares, normally those of the last move.
	Highlight []chess.Square

	// Unicode selects chess glyphs instead of notation letters.
	Unicode bool
}

// Board renders b with rank and file labels. Highlighted squares are
// bracketed.
func Board(b *chess.Board, opts Options) string {
	var sb strings.Builder

	marked := make(map[chess.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		marked[sq] = true
	}

	flipped := opts.ViewFrom == chess.Black
	files := "a  b  c  d  e  f  g  h"
	if flipped {
		files = "h  g  f  e  d  c  b  a"
	}
	sb.WriteString("    " + files + "\n")

	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - 1 - row
		if flipped {
			rank = row
		}
		fmt.Fprintf(&sb, "%d  ", rank+1)

		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if flipped {
				file = chess.BoardSize - 1 - col
			}
			sq := chess.Sq(file, rank)
			glyph := pieceGlyph(b.At(sq), opts.Unicode)
			if marked[sq] {
				sb.WriteString("[" + glyph + "]")
			} else {
				sb.WriteString(" " + glyph + " ")
			}
		}

		fmt.Fprintf(&sb, " %d\n", rank+1)
	}

	sb.WriteString("    " + files + "\n")
	return sb.String()
}

// pieceGlyph returns the single-cell representation of p.
func pieceGlyph(p chess.Piece, unicode bool) string {
	if p.IsEmpty() {
		return "."
	}
	if unicode {
		return unicodePieces[p]
	}
	return string(engine.PieceLetter(p))
}

// Status returns a one-line summary of whose turn it is and the depth.
func Status(side chess.Colour, depth, plies int) string {
	return fmt.Sprintf("%s to move | depth %d | ply %d", side, depth, plies)
}
