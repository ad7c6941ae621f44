// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the search: iterative-deepening alpha-beta
// with quiescence extension, a transposition table, history-ordered move
// picking, and late-move reduction, bounded by a time/node budget. Move
// generation and legality come from package board.
package engine

import (
	"github.com/mthorne/harrier/board"
)

// Stats reports what happened during one ChooseBestMove call.
type Stats struct {
	Nodes     uint64
	CacheHit  uint64
	CacheMiss uint64
	Depth     int
}

// Oracle is consulted before the tree search runs; both the opening book
// and the tablebase probe implement it (spec.md §4.6 steps 2-3). A miss
// (ok == false) is never an error -- it just falls through to search.
type Oracle interface {
	Probe(p *board.Position) (mv board.Move, ok bool)
}

// Engine owns the process-lifetime caches (transposition table, history)
// that spec.md §9 says should live in an Engine value rather than global
// singletons, so tests and multiple games stay isolated.
type Engine struct {
	Options Options
	Book    Oracle // may be nil
	Tables  Oracle // syzygy tablebase probe, may be nil

	tt      *HashTable
	history *historyTable

	Stats Stats
	sc    *searchContext
}

// NewEngine builds an Engine from options. Book and Tables may be left nil
// to disable oracle probing entirely.
func NewEngine(opts Options) *Engine {
	opts.Clamp()
	return &Engine{
		Options: opts,
		tt:      NewHashTable(opts.HashMB),
		history: newHistoryTable(),
	}
}

// NewGame resets state that must not carry across games: the
// transposition table. History intentionally survives (spec.md §3: "never
// cleared within a game" -- and across games it is harmless to keep, the
// same way the reference never clears it).
func (eng *Engine) NewGame() {
	eng.tt.Clear()
}

// errAbort is the sentinel panicked by the search when the budget
// supervisor fires. It unwinds every recursion frame (each of which pops
// its own push via defer) back to ChooseBestMove, which recovers it and
// returns whatever best move has been established so far -- spec.md §4.7's
// "cooperative abort... unwinds through recursion".
type errAbort struct{}

var errAborted = errAbort{}
