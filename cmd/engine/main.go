// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command engine runs the UCI search engine as a stdio process.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/mthorne/harrier/book"
	"github.com/mthorne/harrier/tablebase"
	"github.com/mthorne/harrier/uci"
)

var (
	buildVersion = "(devel)"
	version      = flag.Bool("version", false, "only print version and exit")
	verbose      = flag.Bool("v", false, "log debug diagnostics to stderr")
)

func main() {
	flag.Parse()
	if *version {
		fmt.Printf("harrier %s, %s on %s\n", buildVersion, runtime.Version(), runtime.GOARCH)
		return
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	session := uci.New(os.Stdout, log)

	opts := session.Engine.Options
	if b, err := book.Load(opts.BookPath); err == nil {
		session.Engine.Book = b
		log.Debug().Str("path", opts.BookPath).Msg("opening book loaded")
	} else {
		log.Debug().Err(err).Str("path", opts.BookPath).Msg("opening book not loaded")
	}

	tb := tablebase.Open(opts.SyzygyPath)
	if tb.Available() {
		session.Engine.Tables = tb
		log.Debug().Str("path", opts.SyzygyPath).Msg("tablebase directory found")
	}

	session.Run(os.Stdin)
}
