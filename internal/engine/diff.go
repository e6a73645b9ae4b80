package engine

import "github.com/lgbarn/chessai-client/internal/chess"

// ChangedSquares returns every square whose contents differ between a and b,
// in ascending square order. Side to move and castling rights are ignored.
func ChangedSquares(a, b *chess.Board) []chess.Square {
	var changed []chess.Square
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if a.At(sq) != b.At(sq) {
			changed = append(changed, sq)
		}
	}
	return changed
}

// ChangedSquaresBetween parses two notation strings and diffs the results.
func ChangedSquaresBetween(before, after string) ([]chess.Square, error) {
	a, _, err := Parse(before)
	if err != nil {
		return nil, err
	}
	b, _, err := Parse(after)
	if err != nil {
		return nil, err
	}
	return ChangedSquares(a, b), nil
}
