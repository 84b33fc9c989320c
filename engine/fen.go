// fen.go parses and formats Forsyth-Edwards Notation, field by field
// against a single whitespace-split FEN string. SAN/EPD annotation
// parsing is out of scope.

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

var pieceFromLetter = map[byte]Piece{
	'P': MakePiece(White, Pawn),
	'N': MakePiece(White, Knight),
	'B': MakePiece(White, Bishop),
	'R': MakePiece(White, Rook),
	'Q': MakePiece(White, Queen),
	'K': MakePiece(White, King),
	'p': MakePiece(Black, Pawn),
	'n': MakePiece(Black, Knight),
	'b': MakePiece(Black, Bishop),
	'r': MakePiece(Black, Rook),
	'q': MakePiece(Black, Queen),
	'k': MakePiece(Black, King),
}

// FenParseError reports a malformed FEN string, identifying the field
// that failed.
type FenParseError struct {
	Field string
	Value string
	Err   error
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("fen: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FenParseError) Unwrap() error { return e.Err }

// NewBoardFromFEN parses a position in Forsyth-Edwards Notation.
func NewBoardFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, &FenParseError{Field: "fen", Value: fen, Err: fmt.Errorf("expected at least 4 fields, got %d", len(fields))}
	}

	var b Board
	if err := parsePiecePlacement(fields[0], &b); err != nil {
		return nil, &FenParseError{Field: "piece placement", Value: fields[0], Err: err}
	}
	if err := parseSideToMove(fields[1], &b); err != nil {
		return nil, &FenParseError{Field: "side to move", Value: fields[1], Err: err}
	}
	if err := parseCastlingAbility(fields[2], &b); err != nil {
		return nil, &FenParseError{Field: "castling rights", Value: fields[2], Err: err}
	}
	if err := parseEnpassantSquare(fields[3], &b); err != nil {
		return nil, &FenParseError{Field: "en-passant square", Value: fields[3], Err: err}
	}

	b.halfMoveClock = 0
	b.fullMoveNumber = 1
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfMoveClock = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullMoveNumber = n
		}
	}

	b.zobrist = b.Hash()
	return &b, nil
}

func parsePiecePlacement(s string, b *Board) error {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}
	for r, rank := range ranks {
		f := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			pi, ok := pieceFromLetter[byte(c)]
			if !ok {
				return fmt.Errorf("unrecognized piece letter %q", c)
			}
			if f >= 8 {
				return fmt.Errorf("rank %d has too many squares", 8-r)
			}
			b.put(RankFile(7-r, f), pi)
			f++
		}
		if f != 8 {
			return fmt.Errorf("rank %d has %d squares, want 8", 8-r, f)
		}
	}
	return nil
}

func parseSideToMove(s string, b *Board) error {
	switch s {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return fmt.Errorf("must be %q or %q", "w", "b")
	}
	return nil
}

func parseCastlingAbility(s string, b *Board) error {
	if s == "-" {
		b.castleRights = NoCastleRights
		return nil
	}
	for _, c := range s {
		switch c {
		case 'K':
			b.castleRights |= WhiteKingside
		case 'Q':
			b.castleRights |= WhiteQueenside
		case 'k':
			b.castleRights |= BlackKingside
		case 'q':
			b.castleRights |= BlackQueenside
		default:
			return fmt.Errorf("unrecognized castling letter %q", c)
		}
	}
	return nil
}

func parseEnpassantSquare(s string, b *Board) error {
	if s == "-" {
		b.epSquare = noSquare
		return nil
	}
	sq, err := SquareFromString(s)
	if err != nil {
		return err
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return fmt.Errorf("must be on rank 3 or rank 6")
	}
	b.epSquare = sq
	return nil
}
