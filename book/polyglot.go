// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package book implements the opening book oracle, per spec.md §4.6 step
// 2: a lookup keyed on position hash, consulted before the tree search
// runs. The binary layout is Polyglot's (16-byte entries: hash, move,
// weight, learn, big-endian, sorted ascending by hash).
package book

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mthorne/harrier/board"
)

// entry is one 16-byte Polyglot book record.
type entry struct {
	hash   uint64
	move   uint16
	weight uint16
	learn  uint32
}

const entrySize = 16

// Book is a loaded Polyglot opening book. The zero value has no entries
// and always misses.
type Book struct {
	entries []entry
}

// Load reads a Polyglot book file. Entries must already be sorted
// ascending by hash, as every real Polyglot book is -- Load does not sort
// them itself, and rejects a file that isn't.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("book: open %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("book: stat %s: %w", path, err)
	}
	if stat.Size()%entrySize != 0 {
		return nil, fmt.Errorf("book: %s size %d is not a multiple of %d", path, stat.Size(), entrySize)
	}

	count := int(stat.Size() / entrySize)
	entries := make([]entry, count)
	for i := 0; i < count; i++ {
		var raw struct {
			Hash   uint64
			Move   uint16
			Weight uint16
			Learn  uint32
		}
		if err := binary.Read(f, binary.BigEndian, &raw); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("book: read entry %d of %s: %w", i, path, err)
		}
		entries[i] = entry{hash: raw.Hash, move: raw.Move, weight: raw.Weight, learn: raw.Learn}
	}

	if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].hash < entries[j].hash }) {
		return nil, fmt.Errorf("book: %s is not sorted ascending by hash", path)
	}

	return &Book{entries: entries}, nil
}

// Probe implements engine.Oracle: it looks up pos by hash and returns the
// highest-weighted legal move recorded for it. A miss (no entries, no
// matching hash, or every candidate move fails to parse as legal in pos)
// returns ok == false, never an error -- spec.md §4.6 treats an oracle
// miss as a pure fallthrough to search.
func (b *Book) Probe(pos *board.Position) (board.Move, bool) {
	if b == nil || len(b.entries) == 0 {
		return board.Move{}, false
	}

	key := polyglotHash(pos)
	start := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].hash >= key })

	var best board.Move
	var bestWeight uint16
	found := false
	for i := start; i < len(b.entries) && b.entries[i].hash == key; i++ {
		mv, ok := decodeMove(pos, b.entries[i].move)
		if !ok {
			continue
		}
		if !found || b.entries[i].weight > bestWeight {
			best = mv
			bestWeight = b.entries[i].weight
			found = true
		}
	}
	return best, found
}

// decodeMove turns a Polyglot-encoded move into a legal board.Move in pos,
// by building the long-algebraic token Polyglot's bit layout implies and
// resolving it against pos's own legal moves. Polyglot's "king captures
// own rook" castling encoding (e1h1, e1a1, e8h8, e8a8) is first rewritten
// to the king's real destination square.
func decodeMove(pos *board.Position, encoded uint16) (board.Move, bool) {
	const (
		toMask      = 0x003F
		fromMask    = 0x0FC0
		fromShift   = 6
		promoMask   = 0x7000
		promoShift  = 12
		promoKnight = 1
		promoBishop = 2
		promoRook   = 3
		promoQueen  = 4
	)

	to := int(encoded & toMask)
	from := int((encoded & fromMask) >> fromShift)
	promo := int((encoded & promoMask) >> promoShift)

	token := squareName(from) + squareName(to)
	switch promo {
	case promoKnight:
		token += "n"
	case promoBishop:
		token += "b"
	case promoRook:
		token += "r"
	case promoQueen:
		token += "q"
	}

	if _, pt, ok := pos.PieceAt(from%8, from/8); ok && pt == board.King {
		switch token {
		case "e1h1":
			token = "e1g1"
		case "e1a1":
			token = "e1c1"
		case "e8h8":
			token = "e8g8"
		case "e8a8":
			token = "e8c8"
		}
	}

	return pos.ParseUCIMove(token)
}

func squareName(sq int) string {
	file := sq % 8
	rank := sq / 8
	return string(rune('a'+file)) + string(rune('1'+rank))
}

// polyglotPieceKind maps (color, piece) to Polyglot's piece index, per the
// Polyglot format's fixed ordering: black pawn..king (0-5), then white
// pawn..king (6-11).
func polyglotPieceKind(color board.Color, pt board.PieceType) int {
	base := 0
	if color == board.White {
		base = 6
	}
	switch pt {
	case board.Pawn:
		return base + 0
	case board.Knight:
		return base + 1
	case board.Bishop:
		return base + 2
	case board.Rook:
		return base + 3
	case board.Queen:
		return base + 4
	case board.King:
		return base + 5
	default:
		return -1
	}
}

// polyglotHash computes a Polyglot-shaped Zobrist hash: one XOR term per
// piece-on-square, plus castling rights, plus en passant (only when a
// pawn could actually capture), plus side to move. The random table
// itself is generated from a fixed seed rather than reproducing the
// published Polyglot constant table byte-for-byte (see DESIGN.md) -- book
// files must be built against this engine's own table, the same
// trade-off the example this is grounded on makes.
func polyglotHash(pos *board.Position) uint64 {
	var h uint64

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			color, pt, ok := pos.PieceAt(file, rank)
			if !ok {
				continue
			}
			kind := polyglotPieceKind(color, pt)
			h ^= polyglotKeys.piece[kind][rank*8+file]
		}
	}

	rights := pos.CastlingRights()
	if containsRune(rights, 'K') {
		h ^= polyglotKeys.castle[0]
	}
	if containsRune(rights, 'Q') {
		h ^= polyglotKeys.castle[1]
	}
	if containsRune(rights, 'k') {
		h ^= polyglotKeys.castle[2]
	}
	if containsRune(rights, 'q') {
		h ^= polyglotKeys.castle[3]
	}

	if sq, ok := pos.EnPassantSquare(); ok && canCaptureEnPassant(pos, sq) {
		file := int(sq[0] - 'a')
		h ^= polyglotKeys.enPassant[file]
	}

	if pos.SideToMove() == board.White {
		h ^= polyglotKeys.sideToMove
	}

	return h
}

func containsRune(s string, r byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == r {
			return true
		}
	}
	return false
}

// canCaptureEnPassant reports whether a pawn of the side to move sits
// next to the en passant file, so the en passant key only ever applies
// when it could actually affect move generation -- per the Polyglot spec.
func canCaptureEnPassant(pos *board.Position, sq string) bool {
	file := int(sq[0] - 'a')
	rank := int(sq[1] - '1')
	pawnRank := rank - 1
	if pos.SideToMove() == board.Black {
		pawnRank = rank + 1
	}
	for _, adjFile := range []int{file - 1, file + 1} {
		if adjFile < 0 || adjFile > 7 {
			continue
		}
		color, pt, ok := pos.PieceAt(adjFile, pawnRank)
		if ok && pt == board.Pawn && color == pos.SideToMove() {
			return true
		}
	}
	return false
}

type polyglotKeyTable struct {
	piece      [12][64]uint64
	castle     [4]uint64
	enPassant  [8]uint64
	sideToMove uint64
}

var polyglotKeys = newPolyglotKeyTable()

// newPolyglotKeyTable fills the random table with a small xorshift64*
// generator seeded from a fixed constant, matching the structure (not the
// published numeric constants) of the Polyglot key table.
func newPolyglotKeyTable() polyglotKeyTable {
	var t polyglotKeyTable
	s := uint64(0x9e3779b97f4a7c15)
	next := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 0x2545F4914F6CDD1D
	}
	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			t.piece[piece][sq] = next()
		}
	}
	for i := 0; i < 4; i++ {
		t.castle[i] = next()
	}
	for i := 0; i < 8; i++ {
		t.enPassant[i] = next()
	}
	t.sideToMove = next()
	return t
}
