// notation.go converts between Move and UCI long algebraic notation.
// SAN is intentionally not supported.

package engine

import "fmt"

// ParseUCIMove resolves a UCI long-algebraic move string (e.g. "e2e4",
// "e7e8q") against the legal moves available in b.
func ParseUCIMove(b *Board, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("uci move: invalid length %q", s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("uci move %q: %v", s, err)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("uci move %q: %v", s, err)
	}
	var promo PieceKind
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return NoMove, fmt.Errorf("uci move %q: invalid promotion letter", s)
		}
	}

	for _, m := range GenerateLegalMoves(b) {
		if m.From != from || m.To != to {
			continue
		}
		if m.Kind == Promotion && m.Piece != promo {
			continue
		}
		return m, nil
	}
	return NoMove, fmt.Errorf("uci move %q: not a legal move in this position", s)
}
