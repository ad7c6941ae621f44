// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// iterative.go implements the iterative deepening driver, per spec.md §4.6.

package engine

import (
	"time"

	"github.com/mthorne/harrier/board"
)

// Limits bounds a single ChooseBestMove call: Depth and Nodes are hard
// caps (0 = no cap), Time is the wall-clock budget.
type Limits struct {
	Depth int
	Nodes uint64
	Time  time.Duration
}

const defaultMaxDepth = 30
const defaultMoveTime = 3 * time.Second

// ChooseBestMove searches pos under limits and returns the best move
// found, or ok == false if pos has no legal moves (spec.md §4.6 step 7;
// the caller should then emit "bestmove 0000").
func (eng *Engine) ChooseBestMove(pos *board.Position, limits Limits) (best board.Move, ok bool) {
	eng.Stats = Stats{}
	eng.sc = newSearchContext(effectiveTime(limits, eng.Options), effectiveNodes(limits, eng.Options))

	if mv, probed := probeOracle(eng.Book, pos); probed {
		return mv, true
	}
	if mv, probed := probeOracle(eng.Tables, pos); probed {
		return mv, true
	}

	rootMoves := pos.LegalMoves()
	if len(rootMoves) == 0 {
		return board.Move{}, false
	}

	maxDepth := defaultMaxDepth
	if limits.Depth > 0 {
		maxDepth = limits.Depth
	}

	var bestMove board.Move
	var bestScore int32 = -MateScore - 1
	haveBest := false

	for d := 1; d <= maxDepth; d++ {
		depthBestMove, depthBestScore, completed := eng.searchRoot(pos, rootMoves, int32(d))
		if completed {
			bestMove = depthBestMove
			bestScore = depthBestScore
			haveBest = true
			eng.Stats.Depth = d
		} else if !haveBest {
			// Aborted before finishing even depth 1: keep whatever partial
			// result this call established, per spec.md §4.6 step 6.
			bestMove = depthBestMove
			haveBest = !bestMove.IsZero()
		}
		if eng.sc.aborted {
			break
		}
		if limits.Time > 0 && eng.sc.elapsed() > effectiveTime(limits, eng.Options) {
			break
		}
	}

	if !haveBest {
		// Aborted before any root move was scored: fall back to the first
		// legal move so a legal position never yields "no move".
		bestMove = rootMoves[0]
		haveBest = true
	}

	eng.Stats.Nodes = eng.sc.nodeCount
	_ = bestScore
	return bestMove, haveBest
}

// searchRoot runs one iterative-deepening depth over the root moves.
// completed is false if the depth was cut short by an abort -- the
// returned move/score are still whatever was best when the abort hit, per
// spec.md §4.6 step 6's "partial-iteration results" allowance.
func (eng *Engine) searchRoot(pos *board.Position, rootMoves []board.Move, depth int32) (best board.Move, bestScore int32, completed bool) {
	defer func() {
		if r := recover(); r != nil {
			if r != errAborted {
				panic(r)
			}
			completed = false
		}
	}()

	bestScore = -MateScore - 1
	for _, mv := range rootMoves {
		score := eng.tryRootMove(pos, mv, depth)
		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	completed = true
	return
}

// tryRootMove pushes mv, searches, and pops via defer so the pop still
// runs if alphaBeta panics with errAborted.
func (eng *Engine) tryRootMove(pos *board.Position, mv board.Move, depth int32) int32 {
	pos.Push(mv)
	defer pos.Pop()
	return -eng.alphaBeta(pos, depth-1, -MateScore-1, MateScore+1, 1)
}

func probeOracle(o Oracle, pos *board.Position) (board.Move, bool) {
	if o == nil {
		return board.Move{}, false
	}
	// Any oracle failure is swallowed per spec.md §7 -- Probe itself is
	// responsible for turning internal errors into a plain miss.
	return o.Probe(pos)
}

// effectiveTime derives the wall-clock search budget from limits, less
// Options.MoveOverhead (spec.md §6: "used to adjust time budget") to
// leave headroom for engine-external latency (GUI round-trip, process
// scheduling) that would otherwise eat into the next move's clock. The
// budget never drops below 1ms.
func effectiveTime(limits Limits, opts Options) time.Duration {
	budget := defaultMoveTime
	if limits.Time > 0 {
		budget = limits.Time
	}
	budget -= time.Duration(opts.MoveOverhead) * time.Millisecond
	if budget < time.Millisecond {
		budget = time.Millisecond
	}
	return budget
}

// effectiveNodes combines the per-call node limit with the engine-wide
// MaxNodes option (spec.md §6): 0 means unlimited, so the tighter of two
// non-zero limits wins.
func effectiveNodes(limits Limits, opts Options) uint64 {
	n := limits.Nodes
	if opts.MaxNodes != 0 && (n == 0 || opts.MaxNodes < n) {
		n = opts.MaxNodes
	}
	return n
}
