// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command epdtest runs the engine against a suite of EPD test positions
// and reports how many it solves.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mthorne/harrier/engine"
	"github.com/mthorne/harrier/notation"
)

var (
	input    = flag.String("input", "", "file with EPD lines")
	deadline = flag.Duration("deadline", time.Second, "time to spend per position")
	maxDepth = flag.Int("max_depth", 0, "search up to max_depth plies (0 = use deadline only)")
	quiet    = flag.Bool("quiet", false, "don't print individual results")
)

func main() {
	log.SetFlags(log.Lshortfile)
	flag.Parse()

	if *input == "" {
		log.Fatal("-input not specified")
	}
	fin, err := os.Open(*input)
	if err != nil {
		log.Fatalf("cannot open %s: %v", *input, err)
	}
	defer fin.Close()

	solved, total := 0, 0
	var totalNodes uint64
	buf := bufio.NewReader(fin)

	for i := 0; ; i++ {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			log.Fatal(err)
		}
		line = strings.TrimSpace(strings.SplitN(line, "#", 2)[0])
		if line != "" {
			epd, perr := notation.ParseEPD(line)
			if perr != nil {
				log.Printf("skipping line %d: %v", i+1, perr)
			} else {
				limits := engine.Limits{Time: *deadline}
				if *maxDepth != 0 {
					limits = engine.Limits{Depth: *maxDepth}
				}

				eng := engine.NewEngine(engine.DefaultOptions())
				mv, ok := eng.ChooseBestMove(epd.Position, limits)

				total++
				correct := false
				for _, bm := range epd.BestMove {
					if ok && mv.String() == bm {
						correct = true
						break
					}
				}
				if correct {
					solved++
				}

				if !*quiet {
					fmt.Printf("%4d %-8s got=%-8s nodes=%-8d %s %s\n",
						i+1, strings.Join(epd.BestMove, ","), mv.String(), eng.Stats.Nodes,
						resultMark(correct), epd.ID)
				}
				totalNodes += eng.Stats.Nodes
			}
		}
		if err == io.EOF {
			break
		}
	}

	fmt.Printf("%s: solved %d/%d, %d nodes total\n", *input, solved, total, totalNodes)
}

func resultMark(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAIL"
}
