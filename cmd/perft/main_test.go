package main

import (
	"testing"

	"github.com/sparrowchess/sparrow/engine"
)

func testHelper(t *testing.T, fen string, want []counters) {
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid FEN: %s", fen)
	}
	for depth, w := range want {
		if testing.Short() && w.nodes > 200000 {
			return
		}
		if got := perft(b, depth); got != w {
			t.Errorf("at depth %d: got %+v, want %+v", depth, got, w)
		}
	}
}

func TestPerftInitial(t *testing.T) {
	testHelper(t, startpos, expected[startpos])
}

func TestPerftKiwipete(t *testing.T) {
	testHelper(t, kiwipete, expected[kiwipete])
}
