// Perft is a perft tool: it counts the leaf nodes reachable from a
// position at a given depth, split by move type, and checks the count
// against the well known reference values for the standard starting
// position and "kiwipete".
//
// Examples:
//
//	$ go run ./cmd/perft --fen startpos --max_depth 5
//	$ go run ./cmd/perft --fen kiwipete --max_depth 4
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/sparrowchess/sparrow/engine"
)

var (
	fen      = flag.String("fen", "startpos", "position to search")
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth    = flag.Int("depth", 0, "if non zero, searches only this depth")
)

type counters struct {
	nodes      uint64
	captures   uint64
	enpassant  uint64
	castles    uint64
	promotions uint64
}

func (c *counters) add(o counters) {
	c.nodes += o.nodes
	c.captures += o.captures
	c.enpassant += o.enpassant
	c.castles += o.castles
	c.promotions += o.promotions
}

var (
	startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	known = map[string]string{
		"startpos": startpos,
		"kiwipete": kiwipete,
	}

	// Reference node counts, the standard chess programming wiki values.
	expected = map[string][]counters{
		startpos: {
			{1, 0, 0, 0, 0},
			{20, 0, 0, 0, 0},
			{400, 0, 0, 0, 0},
			{8902, 34, 0, 0, 0},
			{197281, 1576, 0, 0, 0},
			{4865609, 82719, 258, 0, 0},
		},
		kiwipete: {
			{1, 0, 0, 0, 0},
			{48, 8, 0, 2, 0},
			{2039, 351, 1, 91, 0},
			{97862, 17102, 45, 3162, 0},
		},
	}
)

func perft(b *engine.Board, depth int) counters {
	if depth == 0 {
		return counters{nodes: 1}
	}
	var r counters
	for _, m := range engine.GenerateLegalMoves(b) {
		if depth == 1 {
			if m.IsCapture(b) {
				r.captures++
			}
			switch m.Kind {
			case engine.EnPassant:
				r.enpassant++
			case engine.Castle:
				r.castles++
			case engine.Promotion:
				r.promotions++
			}
		}
		r.add(perft(b.MakeMove(m), depth-1))
	}
	return r
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if s, ok := known[*fen]; ok {
		*fen = s
	}
	if *depth != 0 {
		*minDepth, *maxDepth = *depth, *depth
	}

	fmt.Printf("Searching FEN %q\n", *fen)
	b, err := engine.NewBoardFromFEN(*fen)
	if err != nil {
		log.Fatalln("cannot parse --fen:", err)
	}
	ref := expected[*fen]

	fmt.Printf("depth        nodes   captures enpassant castles   promotions eval   elapsed\n")
	fmt.Printf("-----+------------+----------+---------+---------+----------+-----+---------\n")
	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		c := perft(b, d)
		elapsed := time.Since(start)

		ok := ""
		if d < len(ref) {
			if c == ref[d] {
				ok = "good"
			} else {
				ok = "bad"
			}
		}
		fmt.Printf("   %2d %12d %10d %9d %9d %10d %-4s %v\n",
			d, c.nodes, c.captures, c.enpassant, c.castles, c.promotions, ok, elapsed)
		if ok == "bad" {
			e := ref[d]
			fmt.Printf("   %2d %12d %10d %9d %9d %10d %s\n",
				d, e.nodes, e.captures, e.enpassant, e.castles, e.promotions, "expected")
			break
		}
	}
}
