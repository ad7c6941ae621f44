// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench benchmarks the search over a handful of real games, the
// way the teacher's bench tool did -- but as go test benchmarks rather
// than a fixed-node-count regression assertion, since the exact node
// count a benchmark produces is too sensitive to move-ordering and TT
// replacement details to hardcode confidently.
package bench

import (
	"strings"
	"testing"

	"github.com/mthorne/harrier/board"
	"github.com/mthorne/harrier/engine"
)

// games is a small sample of real opening sequences, each walked move by
// move with a fixed-depth search run from every resulting position.
var games = []struct {
	description string
	moves       []string
}{
	{
		"Kasparov-Topalov, Wijk aan Zee 1999 (opening)",
		strings.Fields("e2e4 d7d6 d2d4 g8f6 b1c3 g7g6 c1e3 f8g7 d1d2 c7c6"),
	},
	{
		"Kramnik-Shirov, Linares 1994 (opening)",
		strings.Fields("g1f3 d7d5 d2d4 c8f5 c2c4 e7e6 b1c3 c7c6 d1b3 d8b6"),
	},
}

func evalGame(depth int, moves []string) uint64 {
	pos := board.New()
	eng := engine.NewEngine(engine.DefaultOptions())

	var nodes uint64
	for _, token := range moves {
		eng.ChooseBestMove(pos, engine.Limits{Depth: depth})
		nodes += eng.Stats.Nodes

		mv, ok := pos.ParseUCIMove(token)
		if !ok {
			break
		}
		pos.Push(mv)
	}
	return nodes
}

func BenchmarkSearchShallow(b *testing.B) {
	const depth = 3
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var nodes uint64
		for _, g := range games {
			nodes += evalGame(depth, g.moves)
		}
		b.ReportMetric(float64(nodes), "nodes")
	}
}

func TestEvalGameProducesNodes(t *testing.T) {
	for _, g := range games {
		if nodes := evalGame(2, g.moves); nodes == 0 {
			t.Errorf("%s: expected a nonzero node count at depth 2", g.description)
		}
	}
}
