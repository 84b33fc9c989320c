//go:generate stringer -type PieceKind
//go:generate stringer -type Color
//go:generate stringer -type MoveKind

package engine

import "fmt"

var errInvalidSquare = fmt.Errorf("invalid square")

// Square identifies one of the 64 board locations. Square 0 is a1,
// square 63 is h8; file = sq%8, rank = sq/8.
type Square uint8

const noSquare Square = 64

// Named squares, used by the magic-number tables and by tests.
const (
	SquareA1 Square = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA8
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8

	SquareMinValue = SquareA1
	SquareMaxValue = SquareH8
)

// RankFile builds a square from a 0-indexed rank and file.
func RankFile(rank, file int) Square {
	return Square(rank*8 + file)
}

// SquareFromString parses a square in algebraic notation, e.g. "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, errInvalidSquare
	}
	return RankFile(int(s[1]-'1'), int(s[0]-'a')), nil
}

// Rank returns the 0-indexed rank (0 = rank 1).
func (sq Square) Rank() int { return int(sq / 8) }

// File returns the 0-indexed file (0 = file a).
func (sq Square) File() int { return int(sq % 8) }

// Bitboard returns the singleton bitboard containing sq.
func (sq Square) Bitboard() Bitboard { return 1 << uint(sq) }

// String returns the algebraic notation of sq, e.g. "e4".
func (sq Square) String() string {
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black

	ColorCount = 2
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// PieceKind identifies a figure without a color.
type PieceKind uint8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	PieceKindCount = 7
)

// Piece is a figure owned by a color, packed as kind<<1 | color.
type Piece uint8

const NoPiece Piece = 0

// MakePiece builds a piece from a color and a kind.
func MakePiece(c Color, k PieceKind) Piece {
	return Piece(k)<<1 | Piece(c)
}

// Color returns the piece's color. Undefined for NoPiece.
func (pi Piece) Color() Color { return Color(pi & 1) }

// Kind returns the piece's figure.
func (pi Piece) Kind() PieceKind { return PieceKind(pi >> 1) }

var pieceLetters = [PieceKindCount]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the FEN piece letter, uppercase for White, lowercase
// for Black. Returns 0 for NoPiece.
func (pi Piece) Letter() byte {
	if pi == NoPiece {
		return 0
	}
	l := pieceLetters[pi.Kind()]
	if pi.Color() == Black {
		l += 'a' - 'A'
	}
	return l
}

// MoveKind classifies how a move changes the board.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	EnPassant
	Castle
	Promotion
)

// Move is a single ply. Piece is the moving piece, or the promotion
// target piece kind when Kind == Promotion. Captures (including
// promotion-captures) are inferred by the mover from board occupancy;
// a Move value alone does not carry the captured piece.
type Move struct {
	From, To Square
	Piece    PieceKind
	Kind     MoveKind
}

// NoMove is the zero Move, used as a sentinel ("no hash move known",
// "no best move found").
var NoMove = Move{}

// IsCapture reports whether the move, once played on pos, removes an
// enemy piece from the board.
func (m Move) IsCapture(pos *Board) bool {
	return m.Kind == EnPassant || (pos.PieceAt(m.To) != NoPiece)
}

// String returns the long algebraic notation of m: "e2e4", "e7e8q" for
// promotion. This is the UCI wire format: long algebraic with a
// lowercase promotion letter.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += string(promotionLetter[m.Piece])
	}
	return s
}

var promotionLetter = [PieceKindCount]byte{0, 0, 'n', 'b', 'r', 'q', 0}

// Castle rights, one bit per side/direction.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastleRights  CastleRights = 0
	AnyCastleRights              = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

func (cr CastleRights) Has(right CastleRights) bool { return cr&right != 0 }

func (cr CastleRights) String() string {
	if cr == NoCastleRights {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingside) {
		s += "K"
	}
	if cr.Has(WhiteQueenside) {
		s += "Q"
	}
	if cr.Has(BlackKingside) {
		s += "k"
	}
	if cr.Has(BlackQueenside) {
		s += "q"
	}
	return s
}
