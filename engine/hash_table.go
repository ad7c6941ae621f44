// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hash_table.go implements the transposition table.

package engine

import "github.com/mthorne/harrier/board"

type boundKind uint8

const (
	noEntry    boundKind = iota
	exact                // value is the exact negamax score
	lowerBound           // search failed high; value is a lower bound
	upperBound           // search failed low; value is an upper bound
)

// hashEntry is a value in the transposition table.
//
// spec.md §3 permits the minimal {value, depth} shape but §9 flags it as
// unsound for negamax: a value that caused a beta cutoff is only a lower
// bound, not an exact score. This stores the bound kind so probe returns
// a value only for an exact entry or a bound that proves a cutoff against
// [α, β], instead of on any depth-sufficient hit. probe does not narrow
// the caller's window from a bound that proves no cutoff.
type hashEntry struct {
	lock  uint32 // disambiguates the two slots a key can hash to
	move  board.Move
	value int32
	depth int32
	kind  boundKind
}

// HashTable is the engine's transposition table, sized from the UCI Hash
// option (megabytes) and bounded by entry count -- the reference the spec
// describes grows without bound; spec.md §5/§9 call that out as something
// a real implementation must fix.
type HashTable struct {
	table []hashEntry
	mask  uint64
}

const bytesPerEntry = 32 // lock(4) + move(~8) + value(4) + depth(4) + kind(1), rounded up

// NewHashTable builds a transposition table sized to hold roughly hashMB
// megabytes of entries, rounded down to a power of two.
func NewHashTable(hashMB int) *HashTable {
	if hashMB < 1 {
		hashMB = 1
	}
	size := uint64(hashMB) << 20 / bytesPerEntry
	if size == 0 {
		size = 1
	}
	for size&(size-1) != 0 {
		size &= size - 1
	}
	return &HashTable{
		table: make([]hashEntry, size),
		mask:  size - 1,
	}
}

// Clear removes all entries.
func (ht *HashTable) Clear() {
	for i := range ht.table {
		ht.table[i] = hashEntry{}
	}
}

func (ht *HashTable) split(key uint64) (lock uint32, idx0, idx1 uint64) {
	lock = uint32(key >> 32)
	idx0 = key & ht.mask
	idx1 = idx0 ^ (uint64(uint32(key)) >> 29) & ht.mask
	return
}

// probe returns the cached result for key if one exists whose stored depth
// is at least depth, checked against [alpha, beta] using the stored bound
// kind: an exact entry always hits, a lower bound hits when it is >= beta,
// an upper bound when it is <= alpha. ok is false on a miss or when the
// bound proves no cutoff; alpha and beta themselves are not narrowed.
func (ht *HashTable) probe(key uint64, depth, alpha, beta int32) (value int32, ok bool) {
	lock, idx0, idx1 := ht.split(key)
	e := &ht.table[idx0]
	if e.lock != lock || e.kind == noEntry {
		e = &ht.table[idx1]
		if e.lock != lock || e.kind == noEntry {
			return 0, false
		}
	}
	if e.depth < depth {
		return 0, false
	}
	switch e.kind {
	case exact:
		return e.value, true
	case lowerBound:
		if e.value >= beta {
			return e.value, true
		}
	case upperBound:
		if e.value <= alpha {
			return e.value, true
		}
	}
	return 0, false
}

// bestMove returns the move recorded with the most recent store for key,
// used only for move-ordering purposes (never correctness-critical: a
// stale or absent hash move simply loses its ordering bonus).
func (ht *HashTable) bestMove(key uint64) (board.Move, bool) {
	lock, idx0, idx1 := ht.split(key)
	if e := &ht.table[idx0]; e.lock == lock && e.kind != noEntry {
		return e.move, !e.move.IsZero()
	}
	if e := &ht.table[idx1]; e.lock == lock && e.kind != noEntry {
		return e.move, !e.move.IsZero()
	}
	return board.Move{}, false
}

// store records value/depth/kind for key, depth-preferred: an existing
// deeper entry in the primary slot is kept and the secondary slot used
// instead, matching the teacher's own replacement policy.
func (ht *HashTable) store(key uint64, value, depth int32, kind boundKind, move board.Move) {
	lock, idx0, idx1 := ht.split(key)
	entry := hashEntry{lock: lock, move: move, value: value, depth: depth, kind: kind}
	if e := &ht.table[idx0]; e.lock == lock || e.kind == noEntry || e.depth <= depth {
		ht.table[idx0] = entry
	} else {
		ht.table[idx1] = entry
	}
}

func boundKindFor(value, alpha, beta int32) boundKind {
	if value <= alpha {
		return upperBound
	}
	if value >= beta {
		return lowerBound
	}
	return exact
}
