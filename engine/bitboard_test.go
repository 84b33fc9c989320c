package engine

import "testing"

func TestSquareBitboardRoundTrip(t *testing.T) {
	for s := 0; s < 64; s++ {
		sq := Square(s)
		bb := sq.Bitboard()
		if got := bb.AsSquare(); got != sq {
			t.Fatalf("square %d: AsSquare(Bitboard()) = %d, want %d", s, got, sq)
		}
	}
}

func TestSquareAlgebraicRoundTrip(t *testing.T) {
	names := []string{"a1", "h1", "a8", "h8", "e4", "d5", "c2", "g7"}
	for _, name := range names {
		sq, err := SquareFromString(name)
		if err != nil {
			t.Fatalf("SquareFromString(%q): %v", name, err)
		}
		if got := sq.String(); got != name {
			t.Fatalf("square %q round-tripped to %q", name, got)
		}
	}
}

func TestBitboardSetClearPop(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(SquareE4).Set(SquareA1).Set(SquareH8)
	if bb.Popcnt() != 3 {
		t.Fatalf("Popcnt() = %d, want 3", bb.Popcnt())
	}
	bb = bb.Clear(SquareA1)
	if bb.Has(SquareA1) {
		t.Fatalf("Clear did not remove SquareA1")
	}

	seen := map[Square]bool{}
	for bb != 0 {
		seen[bb.Pop()] = true
	}
	if !seen[SquareE4] || !seen[SquareH8] {
		t.Fatalf("Pop loop missed expected squares: %v", seen)
	}
}

func TestDirectionalShiftsDontWrapFiles(t *testing.T) {
	// A rook's-file pawn shifted east must vanish, not wrap to the a-file.
	h4 := SquareFromStringMust(t, "h4")
	if got := east(h4.Bitboard()); got != BbEmpty {
		t.Fatalf("east(h4) = %#x, want empty (no wraparound)", uint64(got))
	}
	a4 := SquareFromStringMust(t, "a4")
	if got := west(a4.Bitboard()); got != BbEmpty {
		t.Fatalf("west(a4) = %#x, want empty (no wraparound)", uint64(got))
	}
}

func SquareFromStringMust(t *testing.T, s string) Square {
	t.Helper()
	sq, err := SquareFromString(s)
	if err != nil {
		t.Fatalf("SquareFromString(%q): %v", s, err)
	}
	return sq
}
