//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"flag"
	"os"
	"sync/atomic"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nullmovechess/chesscore/internal/config"
	"github.com/nullmovechess/chesscore/internal/logging"
	"github.com/nullmovechess/chesscore/internal/movegen"
	"github.com/nullmovechess/chesscore/internal/position"
	"github.com/nullmovechess/chesscore/internal/uci"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen for the perft starting position")
	depth := flag.Int("depth", 0, "runs perft on the given position up to this depth\nuse -uci instead to start the UCI protocol loop")
	divide := flag.Bool("divide", false, "report the leaf count contributed by each root move")
	parallel := flag.Bool("parallel", false, "fan the depth-1 root moves of the perft run out across goroutines")
	useUci := flag.Bool("uci", false, "start the UCI protocol loop on stdin/stdout instead of running perft")
	profilePath := flag.String("profile", "", "write a CPU profile to this directory while running (disabled if empty)")
	flag.Parse()

	if *profilePath != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profilePath)).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *useUci {
		uci.Loop(os.Stdin, os.Stdout)
		return
	}

	if *depth <= 0 {
		flag.Usage()
		return
	}

	pos, err := position.FromFEN(*fen)
	if err != nil {
		out.Printf("invalid fen %q: %v\n", *fen, err)
		os.Exit(1)
	}

	if *depth > config.Settings.Search.MaxDepth {
		*depth = config.Settings.Search.MaxDepth
	}

	start := time.Now()
	var nodes uint64
	if *parallel {
		nodes = parallelPerft(pos, *depth, *divide)
	} else {
		nodes = runPerft(pos, *depth, *divide)
	}
	elapsed := time.Since(start)

	out.Printf("\nNodes searched: %d\n", nodes)
	out.Printf("Time: %s\n", elapsed)
}

func runPerft(pos *position.Position, depth int, divide bool) uint64 {
	if !divide {
		return movegen.Perft(pos, depth)
	}
	results, total := movegen.Divide(pos, depth)
	for m, n := range results {
		out.Printf("%s: %d\n", m, n)
	}
	return total
}

// parallelPerft demonstrates concurrent use of the core: each root move's
// subtree is an independent Perft call, since MakeMove never mutates its
// receiver, so the root moves can be fanned out across an errgroup without
// any locking around the position itself.
func parallelPerft(pos *position.Position, depth int, divide bool) uint64 {
	if depth <= 1 {
		return runPerft(pos, depth, divide)
	}

	list, err := movegen.Generate(pos, false, false)
	if err != nil {
		out.Println(err)
		os.Exit(1)
	}

	side := pos.SideToMove()
	var g errgroup.Group
	var total uint64

	for _, m := range list.Slice() {
		m := m
		g.Go(func() error {
			successor := position.MakeMove(pos, m)
			if position.PlayerInCheck(successor, side) {
				return nil
			}
			n := movegen.Perft(successor, depth-1)
			if divide {
				out.Printf("%s: %d\n", m.StringUci(), n)
			}
			atomic.AddUint64(&total, n)
			return nil
		})
	}
	_ = g.Wait()
	return total
}
