package engine

import "testing"

// TestTranspositionStorePolicy checks the depth-preferred replacement
// policy: storing a lower-depth entry over an existing higher-depth
// entry must not overwrite; storing an equal-or-greater-depth entry
// must overwrite.
func TestTranspositionStorePolicy(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(0x1234)

	tt.Put(key, TranspositionEntry{Move: Move{From: SquareE2, To: SquareE4, Piece: Pawn}, Score: 10, Depth: 5, Kind: BoundExact})

	tt.Put(key, TranspositionEntry{Move: Move{From: SquareD2, To: SquareD4, Piece: Pawn}, Score: 20, Depth: 3, Kind: BoundExact})
	e, ok := tt.Get(key)
	if !ok {
		t.Fatalf("entry missing after a lower-depth store")
	}
	if e.Depth != 5 || e.Score != 10 {
		t.Fatalf("lower-depth store overwrote a deeper entry: got depth=%d score=%d", e.Depth, e.Score)
	}

	tt.Put(key, TranspositionEntry{Move: Move{From: SquareD2, To: SquareD4, Piece: Pawn}, Score: 30, Depth: 5, Kind: BoundExact})
	e, ok = tt.Get(key)
	if !ok || e.Score != 30 {
		t.Fatalf("equal-depth store should overwrite: got %+v", e)
	}

	tt.Put(key, TranspositionEntry{Move: Move{From: SquareC2, To: SquareC4, Piece: Pawn}, Score: 40, Depth: 8, Kind: BoundExact})
	e, ok = tt.Get(key)
	if !ok || e.Score != 40 {
		t.Fatalf("greater-depth store should overwrite: got %+v", e)
	}
}

func TestTranspositionTableClear(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(0xabcdef)
	tt.Put(key, TranspositionEntry{Score: 7, Depth: 2, Kind: BoundExact})
	tt.Clear()
	if _, ok := tt.Get(key); ok {
		t.Fatalf("entry survived Clear")
	}
}
