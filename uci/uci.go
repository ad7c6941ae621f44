// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uci implements the UCI protocol described at
// http://wbec-ridderkerk.nl/html/UCIProtocol.html, over line-oriented
// stdio. Protocol replies go to stdout; internal diagnostics go to
// stderr via zerolog, so the two never interleave on the wire.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mthorne/harrier/board"
	"github.com/mthorne/harrier/engine"
)

const engineName = "harrier"
const engineAuthor = "the harrier authors"

const maxMoveOverhead = 10000

// UCI drives one engine process's command loop. The zero value is not
// usable; use New.
type UCI struct {
	Engine *engine.Engine
	pos    *board.Position
	log    zerolog.Logger
	out    io.Writer
}

// New builds a UCI session writing protocol replies to out and
// diagnostics to the given logger.
func New(out io.Writer, log zerolog.Logger) *UCI {
	return &UCI{
		Engine: engine.NewEngine(engine.DefaultOptions()),
		pos:    board.New(),
		log:    log,
		out:    out,
	}
}

// Run reads lines from in until "quit" or EOF, dispatching each to
// Execute. Malformed lines are logged and skipped, per spec.md §7.
func (u *UCI) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	// UCI lines can legitimately be long (deep "position ... moves ..."
	// histories); grow past bufio's default 64KiB line limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if err := u.Execute(line); err != nil {
			if err == errQuit {
				return
			}
			u.log.Warn().Err(err).Str("line", line).Msg("rejected uci command")
		}
	}
}

var errQuit = fmt.Errorf("quit")

// Execute dispatches a single UCI command line. Unknown or malformed
// lines return a non-nil error (the caller logs and continues); "quit"
// returns errQuit.
func (u *UCI) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "uci":
		return u.uci()
	case "isready":
		return u.isready()
	case "ucinewgame":
		return u.ucinewgame()
	case "setoption":
		return u.setoption(fields[1:])
	case "position":
		return u.position(fields[1:])
	case "go":
		return u.go_(fields[1:])
	case "quit":
		return errQuit
	default:
		return fmt.Errorf("unhandled command %q", fields[0])
	}
}

func (u *UCI) println(format string, args ...interface{}) {
	fmt.Fprintf(u.out, format+"\n", args...)
}

func (u *UCI) uci() error {
	opts := engine.DefaultOptions()
	u.println("id name %s", engineName)
	u.println("id author %s", engineAuthor)
	u.println("option name Threads type spin default %d min 1 max 16", opts.Threads)
	u.println("option name Hash type spin default %d min 1 max 4096", opts.HashMB)
	u.println("option name Move Overhead type spin default %d min 0 max %d", opts.MoveOverhead, maxMoveOverhead)
	u.println("option name Max Nodes type spin default %d min 0 max 100000000", opts.MaxNodes)
	u.println("option name BookPath type string default %s", opts.BookPath)
	u.println("option name SyzygyPath type string default %s", opts.SyzygyPath)
	u.println("uciok")
	return nil
}

func (u *UCI) isready() error {
	u.println("readyok")
	return nil
}

func (u *UCI) ucinewgame() error {
	u.Engine.NewGame()
	u.pos = board.New()
	return nil
}

func (u *UCI) setoption(args []string) error {
	name, value, ok := parseSetOption(args)
	if !ok {
		return fmt.Errorf("invalid setoption arguments")
	}

	opts := u.Engine.Options
	switch name {
	case "Threads":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		opts.Threads = n
	case "Hash":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		opts.HashMB = n
	case "Move Overhead":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		opts.MoveOverhead = n
	case "Max Nodes":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		opts.MaxNodes = n
	case "BookPath":
		opts.BookPath = value
	case "SyzygyPath":
		opts.SyzygyPath = value
	default:
		// Unknown option name: silently ignored, per spec.md §7.
		return nil
	}
	opts.Clamp()
	u.Engine.Options = opts
	return nil
}

// parseSetOption splits "name <N...> value <V...>" into (name, value).
// The name may itself contain spaces ("Move Overhead"), so everything up
// to the literal "value" token belongs to the name.
func parseSetOption(args []string) (name, value string, ok bool) {
	if len(args) < 2 || args[0] != "name" {
		return "", "", false
	}
	args = args[1:]
	for i, a := range args {
		if a == "value" {
			return strings.Join(args[:i], " "), strings.Join(args[i+1:], " "), true
		}
	}
	return strings.Join(args, " "), "", true
}

func (u *UCI) position(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected argument for 'position'")
	}

	i := 0
	var pos *board.Position
	var err error
	switch args[0] {
	case "startpos":
		pos = board.New()
		i = 1
	case "fen":
		for i = 1; i < len(args) && args[i] != "moves"; i++ {
		}
		pos, err = board.NewFromFEN(strings.Join(args[1:i], " "))
	default:
		return fmt.Errorf("unknown position command %q", args[0])
	}
	if err != nil {
		// Malformed FEN: reject and leave the board unchanged, per
		// spec.md §7.
		return err
	}

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("expected 'moves', got %q", args[i])
		}
		for _, token := range args[i+1:] {
			mv, ok := pos.ParseUCIMove(token)
			if !ok {
				return fmt.Errorf("illegal move %q", token)
			}
			pos.Push(mv)
		}
	}

	u.pos = pos
	return nil
}

func (u *UCI) go_(args []string) error {
	limits, err := parseGoLimits(args, u.pos.SideToMove())
	if err != nil {
		return err
	}

	start := time.Now()
	mv, ok := u.Engine.ChooseBestMove(u.pos, limits)

	stats := u.Engine.Stats
	elapsed := maxDuration(time.Since(start), time.Microsecond)
	nps := stats.Nodes * uint64(time.Second) / uint64(elapsed)
	u.println("info depth %d nodes %d time %d nps %d", stats.Depth, stats.Nodes, elapsed.Milliseconds(), nps)

	if !ok {
		u.println("bestmove 0000")
		return nil
	}
	u.println("bestmove %s", mv.String())
	return nil
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}

// parseGoLimits recognises depth, nodes, movetime, wtime/btime/winc/binc,
// per spec.md §6; unrecognised tokens (ponder, infinite, searchmoves,
// mate, movestogo) are skipped rather than rejected, since a "go" line
// containing them is otherwise still valid UCI.
func parseGoLimits(args []string, side board.Color) (engine.Limits, error) {
	var limits engine.Limits
	var wtime, btime, winc, binc time.Duration
	haveMoveTime := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			if i >= len(args) {
				return limits, fmt.Errorf("missing value for depth")
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return limits, err
			}
			limits.Depth = n
		case "nodes":
			i++
			if i >= len(args) {
				return limits, fmt.Errorf("missing value for nodes")
			}
			n, err := strconv.ParseUint(args[i], 10, 64)
			if err != nil {
				return limits, err
			}
			limits.Nodes = n
		case "movetime":
			i++
			if i >= len(args) {
				return limits, fmt.Errorf("missing value for movetime")
			}
			ms, err := strconv.Atoi(args[i])
			if err != nil {
				return limits, err
			}
			limits.Time = time.Duration(ms) * time.Millisecond
			haveMoveTime = true
		case "wtime":
			i++
			if i >= len(args) {
				return limits, fmt.Errorf("missing value for wtime")
			}
			ms, err := strconv.Atoi(args[i])
			if err != nil {
				return limits, err
			}
			wtime = time.Duration(ms) * time.Millisecond
		case "btime":
			i++
			if i >= len(args) {
				return limits, fmt.Errorf("missing value for btime")
			}
			ms, err := strconv.Atoi(args[i])
			if err != nil {
				return limits, err
			}
			btime = time.Duration(ms) * time.Millisecond
		case "winc":
			i++
			if i >= len(args) {
				return limits, fmt.Errorf("missing value for winc")
			}
			ms, err := strconv.Atoi(args[i])
			if err != nil {
				return limits, err
			}
			winc = time.Duration(ms) * time.Millisecond
		case "binc":
			i++
			if i >= len(args) {
				return limits, fmt.Errorf("missing value for binc")
			}
			ms, err := strconv.Atoi(args[i])
			if err != nil {
				return limits, err
			}
			binc = time.Duration(ms) * time.Millisecond
		case "ponder", "infinite":
			// Not implemented; the default time budget applies.
		case "movestogo", "mate":
			i++ // has a value argument; skip it too
		case "searchmoves":
			for i+1 < len(args) && !isGoKeyword(args[i+1]) {
				i++
			}
		}
	}

	if !haveMoveTime {
		budget, ok := remainingTimeBudget(side, wtime, btime, winc, binc)
		if ok {
			limits.Time = budget
		}
	}

	return limits, nil
}

var goKeywords = map[string]bool{
	"searchmoves": true, "ponder": true, "wtime": true, "btime": true,
	"winc": true, "binc": true, "movestogo": true, "depth": true,
	"nodes": true, "mate": true, "movetime": true, "infinite": true,
}

func isGoKeyword(s string) bool { return goKeywords[s] }

// remainingTimeBudget turns a wtime/btime clock reading into a rough
// per-move allotment for the side to move. ok is false when the side to
// move's own clock (wtime or btime) was not sent or is not positive, so
// the default time limit applies.
func remainingTimeBudget(side board.Color, wtime, btime, winc, binc time.Duration) (time.Duration, bool) {
	remaining, inc := wtime, winc
	if side == board.Black {
		remaining, inc = btime, binc
	}
	if remaining <= 0 {
		return 0, false
	}
	const movesToGoAssumption = 30
	budget := remaining/movesToGoAssumption + inc/2
	if budget <= 0 {
		budget = time.Millisecond
	}
	return budget, true
}
