// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/mthorne/harrier/board"

// quiescence searches only captures beyond the main search's horizon, per
// spec.md §4.4. It is fail-hard: the returned value always lies in
// [alpha, beta] (spec.md §8 invariant 4).
func (eng *Engine) quiescence(pos *board.Position, alpha, beta int32) int32 {
	if eng.sc.tick() {
		panic(errAborted)
	}

	standPat := Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	for _, mv := range pos.LegalMoves() {
		if !pos.IsCapture(mv) {
			continue
		}
		score := eng.tryQuiescenceMove(pos, mv, alpha, beta)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// tryQuiescenceMove pushes mv, recurses, and pops -- via defer, so the pop
// still runs if the recursive call panics with errAborted. This is what
// keeps spec.md §4.7's "every push must have a matching pop on every exit
// path" true under an abort.
func (eng *Engine) tryQuiescenceMove(pos *board.Position, mv board.Move, alpha, beta int32) int32 {
	pos.Push(mv)
	defer pos.Pop()
	return -eng.quiescence(pos, -beta, -alpha)
}
