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

package movegen

import (
	"github.com/nullmovechess/chesscore/internal/position"
)

// Perft counts the leaves of pos's legal move tree at the given depth. At
// depth 0 a position itself counts as one leaf. Moves are generated
// pseudo-legally and only recursed into once the mover's own king is
// confirmed not in check in the resulting position — this is cheaper
// than filtering legality up front since most positions have no illegal
// pseudo-legal moves to begin with.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	side := pos.SideToMove()
	list, err := Generate(pos, false, false)
	if err != nil {
		panic(err)
	}

	var nodes uint64
	for _, m := range list.Slice() {
		successor := position.MakeMove(pos, m)
		if position.PlayerInCheck(successor, side) {
			continue
		}
		nodes += Perft(successor, depth-1)
	}
	return nodes
}

// Divide runs Perft one ply at a time, reporting the leaf count
// contributed by each legal root move. Used by the perft CLI's "divide"
// mode to localize a conformance mismatch to a specific root move.
func Divide(pos *position.Position, depth int) (map[string]uint64, uint64) {
	results := make(map[string]uint64)
	if depth == 0 {
		return results, 1
	}

	side := pos.SideToMove()
	list, err := Generate(pos, false, false)
	if err != nil {
		panic(err)
	}

	var total uint64
	for _, m := range list.Slice() {
		successor := position.MakeMove(pos, m)
		if position.PlayerInCheck(successor, side) {
			continue
		}
		n := Perft(successor, depth-1)
		results[m.StringUci()] = n
		total += n
	}
	return results, total
}
