// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import "testing"

func TestStartPosLegalMoveCount(t *testing.T) {
	p := New()
	if got := len(p.LegalMoves()); got != 20 {
		t.Errorf("got %d legal moves from start position, want 20", got)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	p := New()
	before := p.FEN()

	moves := p.LegalMoves()
	if len(moves) == 0 {
		t.Fatal("no legal moves from start position")
	}
	for _, mv := range moves[:5] {
		p.Push(mv)
	}
	for range moves[:5] {
		p.Pop()
	}

	if got := p.FEN(); got != before {
		t.Errorf("FEN after push/pop round trip = %q, want %q", got, before)
	}
}

func TestSetFromFENRejectsGarbage(t *testing.T) {
	p := New()
	before := p.FEN()
	if err := p.SetFromFEN("not a fen"); err == nil {
		t.Error("SetFromFEN(garbage) returned nil error, want non-nil")
	}
	if got := p.FEN(); got != before {
		t.Errorf("position mutated after rejected FEN: got %q, want %q", got, before)
	}
}

func TestCheckmateDetection(t *testing.T) {
	// Fool's mate.
	p, err := NewFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if !p.IsCheckmate() {
		t.Error("expected checkmate")
	}
}

func TestParseUCIMove(t *testing.T) {
	p := New()
	mv, ok := p.ParseUCIMove("e2e4")
	if !ok {
		t.Fatal("e2e4 not recognized as legal")
	}
	if mv.String() != "e2e4" {
		t.Errorf("String() = %q, want e2e4", mv.String())
	}
	if _, ok := p.ParseUCIMove("e2e5"); ok {
		t.Error("e2e5 incorrectly accepted as legal from start position")
	}
}
