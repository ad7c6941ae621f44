// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tablebase implements the endgame tablebase oracle, per spec.md
// §4.6 step 3. Reading the Syzygy binary WDL/DTZ format itself is out of
// scope (see DESIGN.md); this package gates on piece count and the
// presence of the material file a real probe would read, so the engine's
// oracle-probing path is exercised end to end even without a bundled
// binary-format decoder.
package tablebase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mthorne/harrier/board"
)

// MaxPieces is the largest total piece count (both sides, including
// kings) Syzygy tablebases commonly cover.
const MaxPieces = 6

// Prober is the engine.Oracle a directory of Syzygy files implements.
type Prober struct {
	dir       string
	available bool
}

// Open points Prober at dir. A missing or empty directory is not an
// error -- it just leaves the prober permanently unavailable, per
// spec.md §7's "absent resource degrades, does not fail".
func Open(dir string) *Prober {
	p := &Prober{dir: dir}
	if dir == "" {
		return p
	}
	if entries, err := os.ReadDir(dir); err == nil && len(entries) > 0 {
		p.available = true
	}
	return p
}

// Available reports whether Open found a usable tablebase directory.
func (p *Prober) Available() bool {
	return p != nil && p.available
}

// Probe implements engine.Oracle. It returns a hit only when the position
// is within MaxPieces and this engine has a reader for the probed
// position's material signature file -- which it does not yet (see
// DESIGN.md), so this always misses today but leaves the piece-count gate
// and file-presence check in place for when a decoder is added.
func (p *Prober) Probe(pos *board.Position) (board.Move, bool) {
	if !p.Available() {
		return board.Move{}, false
	}
	if countPieces(pos) > MaxPieces {
		return board.Move{}, false
	}
	if !p.hasMaterialFile(pos) {
		return board.Move{}, false
	}
	// No binary WDL/DTZ decoder yet: a present file only confirms the
	// position is in scope, not that this package can read it.
	return board.Move{}, false
}

func (p *Prober) hasMaterialFile(pos *board.Position) bool {
	material := materialSignature(pos)
	for _, ext := range []string{".rtbw", ".rtbz"} {
		if _, err := os.Stat(filepath.Join(p.dir, material+ext)); err == nil {
			return true
		}
	}
	return false
}

func countPieces(pos *board.Position) int {
	n := 0
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			if _, _, ok := pos.PieceAt(file, rank); ok {
				n++
			}
		}
	}
	return n
}

// materialSignature builds a Syzygy-style material key, e.g. "KQvKR".
func materialSignature(pos *board.Position) string {
	var white, black strings.Builder
	order := []board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight, board.Pawn}

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			color, pt, ok := pos.PieceAt(file, rank)
			if !ok || pt == board.King {
				continue
			}
			var b *strings.Builder
			if color == board.White {
				b = &white
			} else {
				b = &black
			}
			b.WriteByte(pieceChar(pt))
		}
	}

	return "K" + sortByRank(white.String(), order) + "vK" + sortByRank(black.String(), order)
}

// sortByRank reorders the letters in s (each a piece character) to match
// the conventional Q,R,B,N,P material-signature ordering.
func sortByRank(s string, order []board.PieceType) string {
	var out strings.Builder
	for _, pt := range order {
		ch := pieceChar(pt)
		for i := 0; i < len(s); i++ {
			if s[i] == ch {
				out.WriteByte(ch)
			}
		}
	}
	return out.String()
}

func pieceChar(pt board.PieceType) byte {
	switch pt {
	case board.Queen:
		return 'Q'
	case board.Rook:
		return 'R'
	case board.Bishop:
		return 'B'
	case board.Knight:
		return 'N'
	case board.Pawn:
		return 'P'
	default:
		return '?'
	}
}
