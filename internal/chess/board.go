package chess

// Board represents a position: 64 squares, the side to move and the
// recorded castling rights. It performs no legality checks.
type Board struct {
	// Squares indexed by Square (rank*8 + file).
	squares [NumSquares]Piece

	// Who has the next move.
	SideToMove Colour

	// Recorded castling permissions.
	Castling CastlingRights
}

// NewBoard creates a new empty board with white to move and no castling rights.
func NewBoard() *Board {
	return &Board{SideToMove: White}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = [NumSquares]Piece{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[Sq(file, 0)] = W(backRank[file])
		b.squares[Sq(file, 1)] = W(Pawn)
		b.squares[Sq(file, 6)] = B(Pawn)
		b.squares[Sq(file, 7)] = B(backRank[file])
	}

	b.SideToMove = White
	b.Castling = AllCastling
}

// At returns the piece on sq, or NoPiece.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq]
}

// Place puts piece on sq, replacing whatever was there.
func (b *Board) Place(sq Square, piece Piece) {
	if sq.Valid() {
		b.squares[sq] = piece
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Place(sq, NoPiece)
}

// Squares returns a copy of all 64 squares in index order.
func (b *Board) Squares() [NumSquares]Piece {
	return b.squares
}

// Occupied returns the number of non-empty squares.
func (b *Board) Occupied() int {
	n := 0
	for _, p := range b.squares {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces, side and rights.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares &&
		b.SideToMove == other.SideToMove &&
		b.Castling == other.Castling
}
