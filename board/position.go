// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package board adapts github.com/notnil/chess into the mutate-in-place
// push/pop Position the rest of this module expects. It is the only
// package allowed to import notnil/chess directly; every other package
// talks to *Position.
package board

import (
	"fmt"

	"github.com/notnil/chess"
)

// Move is a single legal move, long-algebraic by construction (e2e4,
// e7e8q, ...). It wraps the board library's own move type so captured
// and check information never has to be recomputed.
type Move struct {
	m *chess.Move
}

// String returns the long-algebraic form, e.g. "e2e4" or "e7e8q".
func (mv Move) String() string {
	if mv.m == nil {
		return "0000"
	}
	s := mv.m.S1().String() + mv.m.S2().String()
	if p := mv.m.Promo(); p != chess.NoPieceType {
		s += promoLetter(p)
	}
	return s
}

// IsZero reports whether mv is the zero value (no move).
func (mv Move) IsZero() bool {
	return mv.m == nil
}

func promoLetter(p chess.PieceType) string {
	switch p {
	case chess.Queen:
		return "q"
	case chess.Rook:
		return "r"
	case chess.Bishop:
		return "b"
	case chess.Knight:
		return "n"
	default:
		return ""
	}
}

// Color identifies the side to move.
type Color int

const (
	White Color = iota
	Black
)

// PieceType enumerates the six chess piece kinds.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func fromChessColor(c chess.Color) Color {
	if c == chess.Black {
		return Black
	}
	return White
}

func fromChessPieceType(t chess.PieceType) PieceType {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		return NoPiece
	}
}

// frame is a saved (position, move) pair kept on the push stack so Pop can
// restore the exact prior state. notnil/chess positions are immutable
// values produced by Update, so "undo" is simply restoring the previous
// pointer -- no inverse-move logic is needed here.
type frame struct {
	prev *chess.Position
}

// Position is the mutable, push/pop view of a chess position used
// throughout the search. The zero value is not usable; use New or
// NewFromFEN.
type Position struct {
	cur   *chess.Position
	stack []frame
}

// New returns a Position set to the standard starting position.
func New() *Position {
	g := chess.NewGame()
	return &Position{cur: g.Position()}
}

// NewFromFEN parses pos from Forsyth-Edwards Notation.
func NewFromFEN(fen string) (*Position, error) {
	fenFunc, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("board: invalid FEN %q: %w", fen, err)
	}
	g := chess.NewGame(fenFunc)
	return &Position{cur: g.Position()}, nil
}

// Reset sets p back to the standard starting position and clears the push
// stack.
func (p *Position) Reset() {
	p.cur = chess.NewGame().Position()
	p.stack = p.stack[:0]
}

// SetFromFEN replaces the current position (and clears the push stack).
// On a malformed FEN the position is left unchanged, per spec.md §7's
// recommendation to reject and leave the board untouched.
func (p *Position) SetFromFEN(fen string) error {
	np, err := NewFromFEN(fen)
	if err != nil {
		return err
	}
	p.cur = np.cur
	p.stack = p.stack[:0]
	return nil
}

// FEN returns the board in Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	return p.cur.String()
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return fromChessColor(p.cur.Turn())
}

// Key returns a collision-resistant fingerprint of the position, suitable
// as a transposition table key: the first 64 bits of the board library's
// own 128-bit position hash, rather than a hash of a hand-assembled FEN
// tuple.
func (p *Position) Key() uint64 {
	h := p.cur.Hash()
	var k uint64
	for _, b := range h[:8] {
		k = k<<8 | uint64(b)
	}
	return k
}

// LegalMoves returns the legal moves available to the side to move, in the
// board library's native order.
func (p *Position) LegalMoves() []Move {
	vm := p.cur.ValidMoves()
	moves := make([]Move, len(vm))
	for i, m := range vm {
		moves[i] = Move{m: m}
	}
	return moves
}

// IsCapture reports whether mv captures a piece (including en passant).
func (p *Position) IsCapture(mv Move) bool {
	return mv.m.HasTag(chess.Capture) || mv.m.HasTag(chess.EnPassant)
}

// GivesCheck reports whether mv delivers check to the opponent.
func (p *Position) GivesCheck(mv Move) bool {
	return mv.m.HasTag(chess.Check)
}

// PieceAt returns the piece occupying sq (files a-h, ranks 1-8, 0-based:
// (0,0) is a1) and whether a piece is there at all.
func (p *Position) PieceAt(file, rank int) (Color, PieceType, bool) {
	sq := chess.Square(rank*8 + file)
	pc := p.cur.Board().Piece(sq)
	if pc == chess.NoPiece {
		return White, NoPiece, false
	}
	return fromChessColor(pc.Color()), fromChessPieceType(pc.Type()), true
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.cur.Status() == chess.Checkmate
}

// InCheck reports whether the side to move is currently in check. Used by
// the search to exempt check evasions from late-move reduction, per
// spec.md §9.
func (p *Position) InCheck() bool {
	return p.cur.InCheck()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return p.cur.Status() == chess.Stalemate
}

// IsInsufficientMaterial reports whether neither side has enough material
// to force checkmate (K vs K, K+N vs K, K+B vs K, same/opposite-colored
// K+B vs K+B, and so on). Deferred to the board library's own FIDE-rule
// Status() rather than reimplemented here.
func (p *Position) IsInsufficientMaterial() bool {
	return p.cur.Status() == chess.InsufficientMaterial
}

// Push applies mv, recording enough state for a matching Pop to restore the
// position exactly.
func (p *Position) Push(mv Move) {
	p.stack = append(p.stack, frame{prev: p.cur})
	p.cur = p.cur.Update(mv.m)
}

// Pop undoes the most recent Push. Popping with no matching Push is a
// programming error and panics, the same way an unbalanced slice index
// would.
func (p *Position) Pop() {
	n := len(p.stack)
	f := p.stack[n-1]
	p.stack = p.stack[:n-1]
	p.cur = f.prev
}

// CastlingRights returns the castling rights mask in "KQkq"-subset form,
// e.g. "KQkq", "Kq", or "-" if neither side may castle.
func (p *Position) CastlingRights() string {
	s := p.cur.CastleRights().String()
	if s == "" {
		return "-"
	}
	return s
}

// EnPassantSquare returns the en passant target square in algebraic form
// ("e3") and whether one is set.
func (p *Position) EnPassantSquare() (string, bool) {
	sq := p.cur.EnPassantSquare()
	if sq == chess.NoSquare {
		return "", false
	}
	return sq.String(), true
}

// ParseUCIMove resolves a long-algebraic token (e.g. "e2e4", "e7e8q")
// against the legal moves of the current position. Returns false if the
// token does not name a legal move.
func (p *Position) ParseUCIMove(token string) (Move, bool) {
	for _, mv := range p.LegalMoves() {
		if mv.String() == token {
			return mv, true
		}
	}
	return Move{}, false
}

// ParseSANMove resolves a Standard Algebraic Notation token (e.g. "Nf3",
// "O-O", "Qxf8#") against the legal moves of the current position. This
// is what EPD "bm" fields use, as opposed to ParseUCIMove's long-
// algebraic form.
func (p *Position) ParseSANMove(token string) (Move, bool) {
	m, err := chess.AlgebraicNotation{}.Decode(p.cur, token)
	if err != nil {
		return Move{}, false
	}
	return Move{m: m}, true
}
