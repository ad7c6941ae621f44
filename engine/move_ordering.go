// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move_ordering.go ranks a node's legal moves to maximise alpha-beta
// cutoffs, per spec.md §4.2.

package engine

import (
	"math"
	"sort"

	"github.com/mthorne/harrier/board"
)

const (
	captureBase = 10_000
	checkBonus  = 500
)

// capturedPieceValue returns the value of the piece mv captures, 0 if mv
// is not a capture. It must be read before the move is made.
func capturedPieceValue(p *board.Position, mv board.Move) int32 {
	if !p.IsCapture(mv) {
		return 0
	}
	// The captured piece sits on the destination square (or, for en
	// passant, the square behind it -- but en passant always captures a
	// pawn, so the flat lookup below only needs the normal case to be
	// exact; en passant is cheaply approximated as a pawn capture).
	token := mv.String()
	file := int(token[2] - 'a')
	rank := int(token[3] - '1')
	_, pt, ok := p.PieceAt(file, rank)
	if !ok {
		return pieceValue[board.Pawn] // en passant: victim is a pawn
	}
	return pieceValue[pt]
}

type scoredMove struct {
	mv    board.Move
	score int32
}

// order ranks moves descending by: 10,000+victim value if a capture, +500
// if it gives check, plus the move's history score; the hash move, if
// any, is placed first. Ties keep the board library's native order, via a
// stable sort.
func order(p *board.Position, moves []board.Move, side board.Color, ht *historyTable, hashMove board.Move, hashMoveOK bool) []board.Move {
	scored := make([]scoredMove, len(moves))
	for i, mv := range moves {
		if hashMoveOK && mv.String() == hashMove.String() {
			scored[i] = scoredMove{mv: mv, score: math.MaxInt32} // the hash move always sorts first
			continue
		}
		s := int32(ht.get(side, mv))
		if p.IsCapture(mv) {
			s += captureBase + capturedPieceValue(p, mv)
		}
		if p.GivesCheck(mv) {
			s += checkBonus
		}
		scored[i] = scoredMove{mv: mv, score: s}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]board.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.mv
	}
	return ordered
}
