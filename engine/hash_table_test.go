// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/mthorne/harrier/board"
)

func TestHashTableStoreProbeExact(t *testing.T) {
	ht := NewHashTable(1)
	p := board.New()
	key := p.Key()
	mv := p.LegalMoves()[0]

	ht.store(key, 123, 4, exact, mv)

	value, ok := ht.probe(key, 4, -1000, 1000)
	if !ok {
		t.Fatal("expected a hit for an exact entry within the window")
	}
	if value != 123 {
		t.Errorf("got value %d, want 123", value)
	}

	got, ok := ht.bestMove(key)
	if !ok {
		t.Fatal("expected bestMove to find the stored move")
	}
	if got.String() != mv.String() {
		t.Errorf("got move %v, want %v", got, mv)
	}
}

func TestHashTableProbeMissOnShallowerStoredDepth(t *testing.T) {
	ht := NewHashTable(1)
	key := uint64(12345)
	ht.store(key, 50, 2, exact, board.Move{})

	if _, ok := ht.probe(key, 5, -1000, 1000); ok {
		t.Error("expected a miss when probing deeper than the stored entry")
	}
	if _, ok := ht.probe(key, 2, -1000, 1000); !ok {
		t.Error("expected a hit when probing at the stored depth")
	}
}

func TestHashTableProbeBoundNarrowing(t *testing.T) {
	ht := NewHashTable(1)
	key := uint64(54321)

	ht.store(key, 100, 4, lowerBound, board.Move{})
	if _, ok := ht.probe(key, 4, -1000, 150); ok {
		t.Error("a lower bound below beta should not resolve the window")
	}
	if value, ok := ht.probe(key, 4, -1000, 90); !ok || value != 100 {
		t.Errorf("a lower bound >= beta should return it as a cutoff value, got value=%d ok=%v", value, ok)
	}

	ht.store(key, -100, 4, upperBound, board.Move{})
	if _, ok := ht.probe(key, 4, -150, 1000); ok {
		t.Error("an upper bound above alpha should not resolve the window")
	}
	if value, ok := ht.probe(key, 4, -90, 1000); !ok || value != -100 {
		t.Errorf("an upper bound <= alpha should return it as a cutoff value, got value=%d ok=%v", value, ok)
	}
}

func TestHashTableClear(t *testing.T) {
	ht := NewHashTable(1)
	key := uint64(999)
	ht.store(key, 1, 1, exact, board.Move{})
	ht.Clear()
	if _, ok := ht.probe(key, 1, -1000, 1000); ok {
		t.Error("expected a miss after Clear")
	}
}

func TestBoundKindFor(t *testing.T) {
	cases := []struct {
		value, alpha, beta int32
		want               boundKind
	}{
		{50, -100, 100, exact},
		{100, -100, 100, lowerBound},
		{-100, -100, 100, upperBound},
	}
	for _, c := range cases {
		if got := boundKindFor(c.value, c.alpha, c.beta); got != c.want {
			t.Errorf("boundKindFor(%d, %d, %d) = %v, want %v", c.value, c.alpha, c.beta, got, c.want)
		}
	}
}
