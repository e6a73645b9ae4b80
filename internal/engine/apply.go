package engine

import (
	"fmt"

	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/errors"
)

// ApplyMove relocates the piece on src to dst. A pawn arriving on the first
// or last rank becomes a queen of its colour. Whatever stood on dst is
// overwritten and src is left empty.
//
// No legality, capture, castling or en passant handling is done, and the
// side to move is not changed. An empty src leaves the board untouched and
// returns ErrEmptySquare.
func ApplyMove(board *chess.Board, src, dst chess.Square) error {
	if !src.Valid() || !dst.Valid() {
		return fmt.Errorf("move %d-%d: %w", src, dst, errors.ErrInvalidSquare)
	}

	piece := board.At(src)
	if piece.IsEmpty() {
		return fmt.Errorf("move %v%v: %w", src, dst, errors.ErrEmptySquare)
	}

	if isPromotion(piece, dst) {
		piece.Kind = chess.Queen
	}

	board.Place(dst, piece)
	board.Clear(src)
	return nil
}

// isPromotion reports whether moving piece to dst promotes it.
func isPromotion(piece chess.Piece, dst chess.Square) bool {
	if piece.Kind != chess.Pawn {
		return false
	}
	return dst.Rank() == 0 || dst.Rank() == chess.BoardSize-1
}
