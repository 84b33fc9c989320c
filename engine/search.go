// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search.go implements the searcher: iterative deepening negamax with
// alpha-beta pruning, a transposition table, quiescence search and
// MVV-LVA/hash-move ordering. Null-move pruning, late-move reductions,
// futility pruning, killer/history heuristics and aspiration windows
// are intentionally not implemented.

package engine

// Mate is a score large enough that no real evaluation can reach it;
// a checkmate found with d plies of depth remaining is reported as
// -Mate+d, so a shallower remaining-depth mate (found deeper in the
// tree) scores more negatively than one found near the root. Chosen
// small enough that Mate+depth never overflows int32 through the
// recursion.
const Mate = 1000000

// mvvLvaRank orders figures by value for move ordering purposes only;
// it is not used by Evaluate.
var mvvLvaRank = [PieceKindCount]int{
	NoPieceKind: 0,
	Pawn:        1,
	Knight:      2,
	Bishop:      3,
	Rook:        4,
	Queen:       5,
	King:        6,
}

// mvvLva scores a capture so sorting descending tries the most
// valuable victim taken by the cheapest attacker first. En-passant
// captures get a neutral score since the victim kind isn't carried on
// the move itself without a board lookup the caller already has in
// hand.
func mvvLva(b *Board, m Move) int {
	if m.Kind == EnPassant {
		return mvvLvaRank[Pawn]*8 - mvvLvaRank[Pawn]
	}
	victim := b.PieceAt(m.To)
	if victim == NoPiece {
		return -1 // not a capture; sorts after every capture
	}
	return mvvLvaRank[victim.Kind()]*8 - mvvLvaRank[m.Piece]
}

// Engine runs searches against a single position.
type Engine struct {
	board *Board
	tt    *TranspositionTable
	rep   *RepetitionTable
	log   Logger

	nodes uint64
}

// NewEngine builds an Engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{
		tt:  NewTranspositionTable(opts.HashSizeMB),
		rep: NewRepetitionTable(),
		log: NopLogger{},
	}
}

// SetLogger installs l to receive search progress notifications.
func (e *Engine) SetLogger(l Logger) { e.log = l }

// SetPosition sets the position the next BestMove call searches from.
func (e *Engine) SetPosition(b *Board) { e.board = b }

// ResetHistory discards any previously recorded external game history
// and starts counting repetitions fresh from key, the Zobrist key of
// the first position of the new game (or new search base).
func (e *Engine) ResetHistory(key uint64) {
	e.rep = NewRepetitionTable()
	e.rep.Push(key)
}

// PushHistory records that key was reached by a move played in the
// external game history (outside of search), so that negamax sees it
// if the search later transposes back into it and can count it
// towards threefold repetition.
func (e *Engine) PushHistory(key uint64) {
	e.rep.Push(key)
}

// BestMove performs iterative deepening from depth 1 to maxDepth,
// returning the best score and move found at the last completed
// depth. ok is false only when the position has no legal moves.
func (e *Engine) BestMove(maxDepth int) (score int, move Move, ok bool) {
	root := e.board
	legal := GenerateLegalMoves(root)
	if len(legal) == 0 {
		return 0, NoMove, false
	}

	e.log.BeginSearch()
	defer e.log.EndSearch()

	for depth := 1; depth <= maxDepth; depth++ {
		e.nodes = 0
		s, m := e.searchRoot(root, depth)
		score, move, ok = s, m, true
		e.log.PrintPV(Stats{Nodes: e.nodes, Depth: depth}, score, []Move{move})
	}
	return score, move, ok
}

func (e *Engine) searchRoot(b *Board, depth int) (int, Move) {
	const alphaInit, betaInit = -Mate - 1, Mate + 1
	hashMove := e.hashMove(b.Zobrist())
	moves := GenerateLegalMoves(b)
	orderMoves(b, moves, hashMove)

	alpha := alphaInit
	best := moves[0]
	for _, m := range moves {
		child := b.MakeMove(m)
		e.rep.Push(child.Zobrist())
		score := -e.negamax(child, depth-1, -betaInit, -alpha)
		e.rep.Pop()
		if score > alpha {
			alpha = score
			best = m
		}
	}

	kind := BoundExact
	e.tt.Put(b.Zobrist(), TranspositionEntry{Move: best, Score: clampScore(alpha), Depth: int8(clampDepth(depth)), Kind: kind})
	return alpha, best
}

func (e *Engine) hashMove(key uint64) Move {
	if entry, ok := e.tt.Get(key); ok {
		return entry.Move
	}
	return NoMove
}

// negamax is the node routine: negamax_ab(board, alpha, beta, depth).
func (e *Engine) negamax(b *Board, depth, alpha, beta int) int {
	e.nodes++
	origAlpha := alpha

	key := b.Zobrist()
	if e.rep.IsRepeated(key) || b.HalfMoveClock() >= 100 {
		return 0
	}

	var hashMove Move
	if entry, ok := e.tt.Get(key); ok {
		hashMove = entry.Move
		if int(entry.Depth) >= depth {
			switch entry.Kind {
			case BoundExact:
				return int(entry.Score)
			case BoundLower:
				if int(entry.Score) > alpha {
					alpha = int(entry.Score)
				}
			case BoundUpper:
				if int(entry.Score) < beta {
					beta = int(entry.Score)
				}
			}
			if alpha >= beta {
				return int(entry.Score)
			}
		}
	}

	if depth == 0 {
		return e.quiescence(b, alpha, beta)
	}

	moves := GenerateLegalMoves(b)
	if len(moves) == 0 {
		if b.InCheck() {
			return -Mate + depth
		}
		return 0
	}
	orderMoves(b, moves, hashMove)

	best := -Mate - 1
	var bestMove Move
	for _, m := range moves {
		child := b.MakeMove(m)
		e.rep.Push(child.Zobrist())
		score := -e.negamax(child, depth-1, -beta, -alpha)
		e.rep.Pop()

		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	kind := BoundExact
	if best <= origAlpha {
		kind = BoundUpper
	} else if best >= beta {
		kind = BoundLower
	}
	e.tt.Put(key, TranspositionEntry{Move: bestMove, Score: clampScore(best), Depth: int8(clampDepth(depth)), Kind: kind})
	return best
}

// quiescence extends the search past the nominal horizon with
// captures and promotions only (every legal evasion when in check),
// avoiding the horizon effect of evaluating a position
// mid-capture-sequence.
func (e *Engine) quiescence(b *Board, alpha, beta int) int {
	e.nodes++

	inCheck := b.InCheck()
	var moves []Move
	if inCheck {
		moves = GenerateLegalMoves(b)
		if len(moves) == 0 {
			return -Mate
		}
	} else {
		standPat := EvaluateRelative(b)
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
		moves = quiescenceMoves(b)
	}
	orderMoves(b, moves, NoMove)

	for _, m := range moves {
		child := b.MakeMove(m)
		score := -e.quiescence(child, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// quiescenceMoves returns every legal capture and promotion.
func quiescenceMoves(b *Board) []Move {
	all := GenerateLegalMoves(b)
	violent := make([]Move, 0, len(all))
	for _, m := range all {
		if m.Kind == Capture || m.Kind == EnPassant || m.Kind == Promotion {
			violent = append(violent, m)
		}
	}
	return violent
}

// orderMoves sorts moves in place: hashMove first, then captures by
// MVV-LVA descending, then the rest in generation order.
func orderMoves(b *Board, moves []Move, hashMove Move) {
	rank := func(m Move) int {
		if m == hashMove {
			return 1 << 20
		}
		return mvvLva(b, m)
	}
	// Insertion sort: move lists here are short (legal moves from a
	// single position), and the ordering only needs to be stable
	// enough to try good moves first, not fully sorted.
	for i := 1; i < len(moves); i++ {
		m := moves[i]
		r := rank(m)
		j := i - 1
		for j >= 0 && rank(moves[j]) < r {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = m
	}
}

func clampScore(s int) int32 { return int32(s) }

func clampDepth(d int) int {
	if d > 127 {
		return 127
	}
	if d < 0 {
		return 0
	}
	return d
}
