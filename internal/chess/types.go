// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessai-client/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the lower-case name of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white" or "black" (any case) to a Colour.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return White, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
	}
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Piece is a coloured piece. The zero value means no piece.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// NoPiece is the empty-square value.
var NoPiece = Piece{}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// CastlingSide names the wing a castling right applies to.
type CastlingSide int

const (
	KingSide CastlingSide = iota
	QueenSide
)

func (s CastlingSide) String() string {
	if s == KingSide {
		return "king-side"
	}
	return "queen-side"
}

// CastlingRight is a recorded permission for one colour to castle on one wing.
type CastlingRight struct {
	Colour Colour
	Side   CastlingSide
}

// bit maps a right to its slot in CastlingRights.
func (r CastlingRight) bit() CastlingRights {
	return 1 << (uint(r.Colour)*2 + uint(r.Side))
}

// CanonicalRights lists the four castling rights in notation order (KQkq).
var CanonicalRights = [4]CastlingRight{
	{White, KingSide},
	{White, QueenSide},
	{Black, KingSide},
	{Black, QueenSide},
}

// CastlingRights is a set of at most the four canonical castling rights.
type CastlingRights uint8

const (
	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = 0x0f
)

// NewCastlingRights builds a set from the given rights; duplicates collapse.
func NewCastlingRights(rights ...CastlingRight) CastlingRights {
	var set CastlingRights
	for _, r := range rights {
		set = set.With(r)
	}
	return set
}

// Has reports whether r is in the set.
func (c CastlingRights) Has(r CastlingRight) bool {
	return c&r.bit() != 0
}

// With returns the set with r added.
func (c CastlingRights) With(r CastlingRight) CastlingRights {
	return c | r.bit()
}

// Without returns the set with r removed.
func (c CastlingRights) Without(r CastlingRight) CastlingRights {
	return c &^ r.bit()
}

// Rights returns the members in canonical order.
func (c CastlingRights) Rights() []CastlingRight {
	var out []CastlingRight
	for _, r := range CanonicalRights {
		if c.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of rights in the set.
func (c CastlingRights) Len() int {
	return len(c.Rights())
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// Square is a linearised board coordinate: rank*8 + file.
type Square int

// NewSquare builds a square from file and rank, both in [0,7].
func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return 0, fmt.Errorf("file %d rank %d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return Square(rank*BoardSize + file), nil
}

// Sq is NewSquare for coordinates known to be valid. It panics otherwise.
func Sq(file, rank int) Square {
	sq, err := NewSquare(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the file index (0 = a).
func (s Square) File() int { return int(s) % BoardSize }

// Rank returns the rank index (0 = first rank).
func (s Square) Rank() int { return int(s) / BoardSize }

// Valid reports whether s lies on the board.
func (s Square) Valid() bool { return s >= 0 && s < NumSquares }

// String returns algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare converts algebraic notation such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file := int(s[0]) - 'a'
	if s[0] >= 'A' && s[0] <= 'H' {
		file = int(s[0]) - 'A'
	}
	sq, err := NewSquare(file, int(s[1])-'1')
	if err != nil {
		return 0, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// Move is a source/destination pair.
type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}
