package engine

import "testing"

// TestMateInOne checks that the search finds a forced mate and scores
// it near the Mate constant.
func TestMateInOne(t *testing.T) {
	b, err := NewBoardFromFEN("6k1/5ppp/8/8/8/8/5PPP/R6K w - - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN: %v", err)
	}
	e := NewEngine(DefaultOptions())
	e.SetPosition(b)

	const depth = 3
	score, move, ok := e.BestMove(depth)
	if !ok {
		t.Fatalf("BestMove found no move")
	}
	if move.To != SquareA8 || move.Piece != Rook {
		t.Fatalf("best move = %v, want a rook move to a8", move)
	}
	// The mate is delivered one ply below the root, where negamax is
	// called with depth-1 remaining; its -Mate+(depth-1) return value
	// is negated back up to Mate-(depth-1) at the root.
	if want := Mate - (depth - 1); score < want-1 || score > want+1 {
		t.Fatalf("score = %d, want within 1 of %d", score, want)
	}
}

// TestStalemate checks that a stalemated side has no legal moves and
// that the search scores the position as a draw, not a loss.
func TestStalemate(t *testing.T) {
	b, err := NewBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("NewBoardFromFEN: %v", err)
	}
	if moves := GenerateLegalMoves(b); len(moves) != 0 {
		t.Fatalf("GenerateLegalMoves = %d moves, want 0", len(moves))
	}
	if b.InCheck() {
		t.Fatalf("stalemate position reported as check")
	}

	e := NewEngine(DefaultOptions())
	e.SetPosition(b)
	if score := e.negamax(b, 3, -Mate-1, Mate+1); score != 0 {
		t.Fatalf("negamax on a stalemate = %d, want 0", score)
	}
}

// TestHashMoveOrderingFirst checks that when a hash move is known for
// a position, orderMoves places it first regardless of its MVV-LVA
// rank.
func TestHashMoveOrderingFirst(t *testing.T) {
	b := NewBoard()
	moves := GenerateLegalMoves(b)
	hashMove := moves[len(moves)-1] // a move that is not a capture and sorts last by MVV-LVA
	orderMoves(b, moves, hashMove)
	if moves[0] != hashMove {
		t.Fatalf("orderMoves put %v first, want the hash move %v", moves[0], hashMove)
	}
}
