// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Options holds the engine's UCI-configurable settings. It is a typed
// record rather than an open map, per spec.md §9 ("implement as a typed
// record, not an open mapping") -- the set of names is fixed by the UCI
// protocol, spec.md §6.
type Options struct {
	Threads      int    // accepted, unused by the single-threaded core
	HashMB       int    // transposition table size, in megabytes
	MoveOverhead int    // milliseconds subtracted from the time budget
	MaxNodes     uint64 // 0 = unlimited
	BookPath     string // polyglot opening book path
	SyzygyPath   string // syzygy tablebase directory
}

// DefaultOptions returns the option defaults named in spec.md §6.
func DefaultOptions() Options {
	return Options{
		Threads:      1,
		HashMB:       128,
		MoveOverhead: 100,
		MaxNodes:     0,
		BookPath:     "book.bin",
		SyzygyPath:   "syzygy",
	}
}

// Clamp clamps every field to the range spec.md §6 declares for it.
func (o *Options) Clamp() {
	o.Threads = clampInt(o.Threads, 1, 16)
	o.HashMB = clampInt(o.HashMB, 1, 4096)
	o.MoveOverhead = clampInt(o.MoveOverhead, 0, 10000)
	if o.MaxNodes > 100_000_000 {
		o.MaxNodes = 100_000_000
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
