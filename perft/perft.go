// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perft counts leaf nodes of the legal-move game tree to depth N,
// the standard move-generator correctness check, and verifies the
// push/pop round-trip invariant push/pop depends on.
package perft

import "github.com/mthorne/harrier/board"

// Count returns the number of leaf positions reachable from pos in
// exactly depth plies, via pos's own push/pop -- not a parallel counter,
// since move generation and legality come entirely from package board.
func Count(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for _, mv := range pos.LegalMoves() {
		pos.Push(mv)
		n += Count(pos, depth-1)
		pos.Pop()
	}
	return n
}

// RoundTrip applies every move in seq via Push, then Pop, one at a time,
// and reports whether pos's FEN at the end matches the FEN it started
// with. It is the automated form of spec.md's push/pop invariant: every
// push must have a matching pop that restores the exact prior state.
func RoundTrip(pos *board.Position, seq []board.Move) bool {
	before := pos.FEN()
	for _, mv := range seq {
		pos.Push(mv)
	}
	for range seq {
		pos.Pop()
	}
	return pos.FEN() == before
}
