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

// Package search walks the legal move tree to a fixed depth. There is no
// alpha-beta window, transposition table, or move ordering here — every
// node visits every legal move, the way a first search implementation
// would before any of those refinements are added.
package search

import (
	"github.com/nullmovechess/chesscore/internal/evaluator"
	"github.com/nullmovechess/chesscore/internal/movegen"
	"github.com/nullmovechess/chesscore/internal/position"
	. "github.com/nullmovechess/chesscore/internal/types"
)

// NegaMax searches pos to depth plies and returns the best score found,
// signed from pos's side-to-move perspective, along with the root move
// that achieves it. MoveNone is returned alongside the terminal score if
// pos has no legal moves (checkmate or stalemate).
func NegaMax(pos *position.Position, depth int) (Value, Move) {
	if depth <= 0 {
		return evaluator.Material(pos), MoveNone
	}

	list, err := movegen.Generate(pos, true, false)
	if err != nil {
		panic(err)
	}
	if list.Len() == 0 {
		if position.PlayerInCheck(pos, pos.SideToMove()) {
			return -ValueCheckMate, MoveNone
		}
		return ValueZero, MoveNone
	}

	best := ValueNA
	var bestMove Move
	for _, m := range list.Slice() {
		successor := position.MakeMove(pos, m)
		value, _ := NegaMax(successor, depth-1)
		value = -value
		if value > best {
			best = value
			bestMove = m
		}
	}
	return best, bestMove
}
