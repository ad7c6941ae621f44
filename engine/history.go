// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/mthorne/harrier/board"

// historyKey identifies a reinforced move by the side that played it and
// its move token -- per spec.md §9, the side recorded here must be the
// side that made the move (captured before the push), not the side to
// move afterward.
type historyKey struct {
	side  board.Color
	token string
}

// historyTable maps (side to move, move) to a reinforcement count. It is
// an unbounded map, not a fixed-size hash table: spec.md §3 models
// history as a map "never cleared within a game," and spec.md §8's
// testable invariant 6 requires history values to be monotone
// non-decreasing over the lifetime of a game, which a collision-evicting
// fixed table cannot guarantee. Unlike the transposition table, nothing
// in spec.md authorizes bounding history.
type historyTable struct {
	scores map[historyKey]int64
}

func newHistoryTable() *historyTable {
	return &historyTable{scores: make(map[historyKey]int64)}
}

// get returns the reinforcement count for (side, move), or 0 if absent.
func (ht *historyTable) get(side board.Color, mv board.Move) int64 {
	return ht.scores[historyKey{side: side, token: mv.String()}]
}

// add reinforces (side, move) by delta. delta must be non-negative: per
// spec.md §3, history values are monotonically non-decreasing within a
// game, and this is only ever called with depth² on a fail-high/alpha
// raise.
func (ht *historyTable) add(side board.Color, mv board.Move, delta int64) {
	ht.scores[historyKey{side: side, token: mv.String()}] += delta
}
