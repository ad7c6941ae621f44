// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/mthorne/harrier/board"

// Mate scores. A mated side returns a very negative value from its own
// perspective, per spec.md §4.1; ±999_999 is the contract spec.md §8's
// invariant 3 bounds every search result to.
const (
	MateScore   int32 = 999_999
	CenterBonus int32 = 10
)

// pieceValue holds the centipawn value of each piece, spec.md §3.
var pieceValue = [...]int32{
	board.NoPiece: 0,
	board.Pawn:    100,
	board.Knight:  320,
	board.Bishop:  330,
	board.Rook:    500,
	board.Queen:   900,
	board.King:    20000,
}

// pawnPST is indexed a1=0 ... h8=63 from White's perspective; Black
// lookups mirror the rank. Values favour central, advanced pawns, per
// spec.md §3's "Piece-Square Table (optional, PAWN only in the reference)".
var pawnPST = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

func mirrorRank(rank int) int {
	return 7 - rank
}

func isCenterSquare(file, rank int) bool {
	return (file == 3 || file == 4) && (rank == 3 || rank == 4)
}

// Evaluate returns a centipawn score from the side-to-move's perspective,
// per spec.md §4.1.
func Evaluate(p *board.Position) int32 {
	if p.IsCheckmate() {
		// The side to move is the one mated.
		return -MateScore
	}
	if p.IsStalemate() || p.IsInsufficientMaterial() {
		return 0
	}

	var score int32 // from White's perspective
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			color, pt, ok := p.PieceAt(file, rank)
			if !ok {
				continue
			}
			sign := int32(1)
			if color == board.Black {
				sign = -1
			}
			score += sign * pieceValue[pt]

			if pt == board.Pawn {
				idx := rank*8 + file
				if color == board.Black {
					idx = mirrorRank(rank)*8 + file
				}
				score += sign * pawnPST[idx]
			}
			if isCenterSquare(file, rank) {
				score += sign * CenterBonus
			}
		}
	}

	if p.SideToMove() == board.Black {
		score = -score
	}
	return score
}
