// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package book

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/mthorne/harrier/board"
)

func writeTestBook(t *testing.T, entries []entry) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	for _, e := range entries {
		raw := struct {
			Hash   uint64
			Move   uint16
			Weight uint16
			Learn  uint32
		}{e.hash, e.move, e.weight, e.learn}
		if err := binary.Write(f, binary.BigEndian, &raw); err != nil {
			t.Fatalf("write entry: %v", err)
		}
	}
	return path
}

func TestBookProbeFindsHighestWeightedLegalMove(t *testing.T) {
	pos := board.New()
	key := polyglotHash(pos)

	moves := pos.LegalMoves()
	var e2e4, d2d4 board.Move
	for _, mv := range moves {
		switch mv.String() {
		case "e2e4":
			e2e4 = mv
		case "d2d4":
			d2d4 = mv
		}
	}
	if e2e4.IsZero() || d2d4.IsZero() {
		t.Fatal("expected both e2e4 and d2d4 to be legal from the start position")
	}

	path := writeTestBook(t, []entry{
		{hash: key, move: encodeMove(t, "d2d4"), weight: 5},
		{hash: key, move: encodeMove(t, "e2e4"), weight: 50},
	})

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	mv, ok := b.Probe(pos)
	if !ok {
		t.Fatal("expected a book hit on the start position")
	}
	if mv.String() != "e2e4" {
		t.Errorf("got %v, want e2e4 (the higher-weighted entry)", mv)
	}
}

func TestBookProbeMissesUnknownPosition(t *testing.T) {
	pos := board.New()
	path := writeTestBook(t, []entry{{hash: polyglotHash(pos) + 1, move: encodeMove(t, "e2e4"), weight: 1}})

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := b.Probe(pos); ok {
		t.Error("expected a miss for a hash that isn't in the book")
	}
}

func TestLoadRejectsUnsortedBook(t *testing.T) {
	path := writeTestBook(t, []entry{
		{hash: 200, move: 0, weight: 1},
		{hash: 100, move: 0, weight: 1},
	})
	if _, err := Load(path); err == nil {
		t.Error("expected Load to reject a book not sorted ascending by hash")
	}
}

// encodeMove builds the Polyglot 16-bit encoding for a long-algebraic
// token like "e2e4", for use in test fixtures.
func encodeMove(t *testing.T, token string) uint16 {
	t.Helper()
	fromFile := int(token[0] - 'a')
	fromRank := int(token[1] - '1')
	toFile := int(token[2] - 'a')
	toRank := int(token[3] - '1')
	from := fromRank*8 + fromFile
	to := toRank*8 + toFile
	return uint16(to) | uint16(from)<<6
}
