// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notation parses EPD (Extended Position Description) lines for
// test-suite driving: FEN plus a "bm" (best move) and/or "id" opcode.
package notation

import (
	"fmt"
	"strings"

	"github.com/mthorne/harrier/board"
)

// EPD is one parsed EPD record.
type EPD struct {
	Position *board.Position
	ID       string
	BestMove []string // normalized long-algebraic tokens; "bm" accepts SAN or UCI input, resolved against Position
}

// ParseEPD parses a single EPD line: four FEN fields (board, side to
// move, castling, en passant) followed by semicolon-terminated opcodes.
// Only "bm" and "id" are recognised; any other opcode is skipped, since
// test-suite driving is all this package is for.
func ParseEPD(line string) (*EPD, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("notation: %q has fewer than 4 FEN fields", line)
	}
	fen := strings.Join(fields[:4], " ") + " 0 1"
	pos, err := board.NewFromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}

	epd := &EPD{Position: pos}
	rest := strings.Join(fields[4:], " ")
	for _, opcode := range splitOpcodes(rest) {
		opcode = strings.TrimSpace(opcode)
		if opcode == "" {
			continue
		}
		if err := applyOpcode(epd, pos, opcode); err != nil {
			return nil, err
		}
	}
	return epd, nil
}

// splitOpcodes splits on ';', the EPD opcode terminator.
func splitOpcodes(s string) []string {
	return strings.Split(s, ";")
}

func applyOpcode(epd *EPD, pos *board.Position, opcode string) error {
	fields := strings.Fields(opcode)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "bm":
		for _, token := range fields[1:] {
			mv, ok := pos.ParseSANMove(token)
			if !ok {
				mv, ok = pos.ParseUCIMove(token)
			}
			if !ok {
				return fmt.Errorf("notation: bm move %q is not legal in this position", token)
			}
			epd.BestMove = append(epd.BestMove, mv.String())
		}
	case "id":
		epd.ID = strings.Trim(strings.Join(fields[1:], " "), `"`)
	default:
		// Unrecognised opcode (ce, acd, pv, ...): not needed for
		// test-suite driving, so it is silently skipped.
	}
	return nil
}
