// Package engine converts positions to and from notation and performs the
// board mutations the client drives itself.
package engine

import (
	"strings"

	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/errors"
)

// InitialFEN is the notation for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// placeholderFields stands in for the en passant square and move counters,
// which are not modelled but are expected by the engine.
const placeholderFields = " - 0 1"

// minFields is the number of whitespace-separated fields Parse requires.
const minFields = 3

// Lower-case letter per piece kind. Colour is carried by case.
var kindLetters = [...]byte{
	chess.Pawn:   'p',
	chess.Knight: 'n',
	chess.Bishop: 'b',
	chess.Rook:   'r',
	chess.Queen:  'q',
	chess.King:   'k',
}

// letterPieces is the reverse of kindLetters for both cases.
var letterPieces = func() map[byte]chess.Piece {
	m := make(map[byte]chess.Piece, 2*len(kindLetters))
	for kind, letter := range kindLetters {
		if letter == 0 {
			continue
		}
		m[letter] = chess.B(chess.PieceKind(kind))
		m[letter-'a'+'A'] = chess.W(chess.PieceKind(kind))
	}
	return m
}()

// castlingLetters maps each canonical right to its notation letter.
var castlingLetters = map[chess.CastlingRight]byte{
	{Colour: chess.White, Side: chess.KingSide}:  'K',
	{Colour: chess.White, Side: chess.QueenSide}: 'Q',
	{Colour: chess.Black, Side: chess.KingSide}:  'k',
	{Colour: chess.Black, Side: chess.QueenSide}: 'q',
}

var letterCastling = func() map[byte]chess.CastlingRight {
	m := make(map[byte]chess.CastlingRight, len(castlingLetters))
	for r, letter := range castlingLetters {
		m[letter] = r
	}
	return m
}()

// PieceLetter returns the notation letter for a piece: upper case for white,
// lower case for black, 0 for an empty square.
func PieceLetter(p chess.Piece) byte {
	if p.IsEmpty() || int(p.Kind) >= len(kindLetters) {
		return 0
	}
	letter := kindLetters[p.Kind]
	if p.Colour == chess.White {
		letter = letter - 'a' + 'A'
	}
	return letter
}

// LetterPiece returns the piece for a notation letter.
func LetterPiece(c byte) (chess.Piece, bool) {
	p, ok := letterPieces[c]
	return p, ok
}

// Serialize converts a position to notation. The en passant and clock fields
// are always written as "- 0 1".
func Serialize(board *chess.Board, side chess.Colour, rights chess.CastlingRights) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, side)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, rights)
	sb.WriteString(placeholderFields)

	return sb.String()
}

// BoardToNotation serializes a board using its own side to move and rights.
func BoardToNotation(board *chess.Board) string {
	return Serialize(board, board.SideToMove, board.Castling)
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, side chess.Colour) {
	if side == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if rights == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	for _, r := range rights.Rights() {
		sb.WriteByte(castlingLetters[r])
	}
}

// Parse reads the board layout and castling field of a notation string.
//
// The side-to-move field is not read: the returned board always has white
// to move and callers must track the side themselves.
func Parse(notation string) (*chess.Board, chess.CastlingRights, error) {
	parts := strings.Fields(notation)
	if len(parts) < minFields {
		return nil, chess.NoCastling, &errors.NotationError{
			Input:  notation,
			Reason: "expected at least 3 fields",
		}
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, notation, parts[0]); err != nil {
		return nil, chess.NoCastling, err
	}

	rights, err := parseCastlingRights(notation, parts[2])
	if err != nil {
		return nil, chess.NoCastling, err
	}
	board.Castling = rights

	return board, rights, nil
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(board *chess.Board, notation, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece, ok := LetterPiece(c)
			if !ok {
				return &errors.NotationError{Input: notation, Field: "board", Char: rune(c)}
			}
			sq, err := chess.NewSquare(file, rank)
			if err != nil {
				return &errors.NotationError{Input: notation, Field: "board", Char: rune(c), Reason: "square off the board"}
			}
			board.Place(sq, piece)
			file++
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(notation, field string) (chess.CastlingRights, error) {
	rights := chess.NoCastling
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c == '-' {
			return chess.NoCastling, nil
		}
		r, ok := letterCastling[c]
		if !ok {
			return chess.NoCastling, &errors.NotationError{Input: notation, Field: "castling", Char: rune(c)}
		}
		rights = rights.With(r)
	}
	return rights, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _, _ := Parse(InitialFEN)
	return board
}
