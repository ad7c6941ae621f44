// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/mthorne/harrier/board"
)

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	p := board.New()
	if got := Evaluate(p); got != 0 {
		t.Errorf("Evaluate(startpos) = %d, want 0", got)
	}
}

func TestEvaluateCheckmateIsMateScore(t *testing.T) {
	p, err := board.NewFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if got := Evaluate(p); got != -MateScore {
		t.Errorf("Evaluate(mated side to move) = %d, want %d", got, -MateScore)
	}
}

func TestEvaluateStalemateIsZero(t *testing.T) {
	p, err := board.NewFromFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if !p.IsStalemate() {
		t.Fatal("test FEN is not actually stalemate; fix the fixture")
	}
	if got := Evaluate(p); got != 0 {
		t.Errorf("Evaluate(stalemate) = %d, want 0", got)
	}
}

func TestEvaluateMaterialAdvantageFavorsSideUp(t *testing.T) {
	// White has an extra queen.
	p, err := board.NewFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if got := Evaluate(p); got <= 0 {
		t.Errorf("Evaluate(white up a queen, white to move) = %d, want > 0", got)
	}

	p, err = board.NewFromFEN("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if got := Evaluate(p); got >= 0 {
		t.Errorf("Evaluate(white up a queen, black to move) = %d, want < 0", got)
	}
}
