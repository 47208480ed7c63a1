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

// Package uci implements a minimal UCI protocol loop over the core: no
// search options, no ponder, no opening book, just enough of the protocol
// for a GUI to drive position setup, perft, and a fixed-depth search.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nullmovechess/chesscore/internal/config"
	"github.com/nullmovechess/chesscore/internal/logging"
	"github.com/nullmovechess/chesscore/internal/movegen"
	"github.com/nullmovechess/chesscore/internal/position"
	"github.com/nullmovechess/chesscore/internal/search"
	. "github.com/nullmovechess/chesscore/internal/types"
	"github.com/nullmovechess/chesscore/internal/util"
)

var log = logging.GetLog()

// Loop reads UCI commands line by line from r and writes responses to w,
// until a "quit" command is received or r is exhausted.
func Loop(r io.Reader, w io.Writer) {
	pos, _ := position.FromFEN(position.StartFen)
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	send := func(line string) {
		fmt.Fprintln(out, line)
		out.Flush()
	}

	for scanner.Scan() {
		line := scanner.Text()
		log.Debugf("<< %s", line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "uci":
			send("id name chesscore")
			send("id author nullmovechess")
			send("uciok")

		case "isready":
			send("readyok")

		case "ucinewgame":
			pos, _ = position.FromFEN(position.StartFen)

		case "position":
			pos = handlePosition(fields[1:])

		case "go":
			handleGo(pos, fields[1:], send)

		case "quit":
			return
		}
	}
}

// handlePosition parses "position [startpos|fen <fen...>] [moves <uci...>]".
func handlePosition(args []string) *position.Position {
	if len(args) == 0 {
		pos, _ := position.FromFEN(position.StartFen)
		return pos
	}

	var pos *position.Position
	i := 0
	switch args[0] {
	case "startpos":
		pos, _ = position.FromFEN(position.StartFen)
		i = 1
	case "fen":
		i = 1
		start := i
		for i < len(args) && args[i] != "moves" {
			i++
		}
		fen := strings.Join(args[start:i], " ")
		p, err := position.FromFEN(fen)
		if err != nil {
			pos, _ = position.FromFEN(position.StartFen)
		} else {
			pos = p
		}
	default:
		pos, _ = position.FromFEN(position.StartFen)
	}

	if i < len(args) && args[i] == "moves" {
		for _, uciMove := range args[i+1:] {
			m := findMove(pos, uciMove)
			if m == MoveNone {
				break
			}
			pos = position.MakeMove(pos, m)
		}
	}
	return pos
}

// findMove looks up the legal move matching a UCI move string such as
// "e2e4" or "e7e8q" against pos's current legal moves.
func findMove(pos *position.Position, uciMove string) Move {
	list, err := movegen.Generate(pos, true, false)
	if err != nil {
		return MoveNone
	}
	for _, m := range list.Slice() {
		if m.StringUci() == uciMove {
			return m
		}
	}
	return MoveNone
}

// handleGo dispatches "go perft <depth>" and a plain "go depth <n>" fixed-
// depth search. Anything else (time controls, infinite, ponder) is ignored.
func handleGo(pos *position.Position, args []string, send func(string)) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "perft":
			if i+1 >= len(args) {
				return
			}
			depth, err := strconv.Atoi(args[i+1])
			if err != nil {
				return
			}
			depth = util.Min(depth, config.Settings.Search.MaxDepth)
			divide, total := movegen.Divide(pos, depth)
			for mv, n := range divide {
				send(fmt.Sprintf("%s: %d", mv, n))
			}
			send("")
			send(fmt.Sprintf("Nodes searched: %d", total))
			return

		case "depth":
			if i+1 >= len(args) {
				return
			}
			depth, err := strconv.Atoi(args[i+1])
			if err != nil {
				return
			}
			depth = util.Min(depth, config.Settings.Search.MaxDepth)
			_, best := search.NegaMax(pos, depth)
			send(fmt.Sprintf("bestmove %s", best.StringUci()))
			return
		}
	}
}
