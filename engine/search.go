// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search.go implements the recursive negamax core, per spec.md §4.5.

package engine

import "github.com/mthorne/harrier/board"

const (
	lmrMinMoveIndex = 3
	lmrMinDepth     = 3
	lmrReduction    = 2
)

// alphaBeta is the negamax search with late-move reduction and
// transposition table integration, per spec.md §4.5. It always returns a
// value clamped to [alpha, beta] (fail-hard, spec.md §8 invariant 4) and
// panics errAborted if the budget supervisor fires mid-search.
func (eng *Engine) alphaBeta(pos *board.Position, depth int32, alpha, beta int32, ply int) int32 {
	if eng.sc.tick() {
		panic(errAborted)
	}

	alphaInitial := alpha
	key := pos.Key()
	if value, ok := eng.tt.probe(key, depth, alpha, beta); ok {
		eng.Stats.CacheHit++
		return clamp(value, alpha, beta)
	}
	eng.Stats.CacheMiss++

	if depth <= 0 {
		return eng.quiescence(pos, alpha, beta)
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		// Checkmate or stalemate -- Evaluate handles both, per spec.md §4.5
		// step 4.
		return clamp(Evaluate(pos), alpha, beta)
	}

	hashMove, hashMoveOK := eng.tt.bestMove(key)
	side := pos.SideToMove()
	ordered := order(pos, moves, side, eng.history, hashMove, hashMoveOK)

	weInCheck := pos.InCheck()
	value := -MateScore - 1
	var bestMove board.Move
	for i, mv := range ordered {
		quiet := !pos.IsCapture(mv) && !pos.GivesCheck(mv)

		// Late-move reduction, spec.md §4.5 step 6a, with the spec.md §9
		// correction: never reduce while escaping check.
		newDepth := depth - 1
		if i >= lmrMinMoveIndex && depth >= lmrMinDepth && quiet && !weInCheck {
			newDepth = depth - lmrReduction
		}

		score := eng.tryAlphaBetaMove(pos, mv, newDepth, alpha, beta, ply)

		if score > value {
			value = score
			bestMove = mv
		}
		if value > alpha {
			alpha = value
			eng.history.add(side, mv, int64(depth)*int64(depth))
		}
		if alpha >= beta {
			break
		}
	}

	eng.tt.store(key, value, depth, boundKindFor(value, alphaInitial, beta), bestMove)
	return clamp(value, alphaInitial, beta)
}

// tryAlphaBetaMove pushes mv, recurses at newDepth, and pops via defer so
// the pop still runs on an errAborted panic.
func (eng *Engine) tryAlphaBetaMove(pos *board.Position, mv board.Move, newDepth, alpha, beta int32, ply int) int32 {
	pos.Push(mv)
	defer pos.Pop()
	return -eng.alphaBeta(pos, newDepth, -beta, -alpha, ply+1)
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
