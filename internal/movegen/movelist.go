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
	"errors"

	. "github.com/nullmovechess/chesscore/internal/types"
)

// MaxMoves bounds a MoveList. No reachable chess position has more than
// 218 legal moves; 256 leaves headroom over that theoretical worst case
// without the 100-slot source bound's risk of overflow.
const MaxMoves = 256

// ErrListOverflow is returned by Add when a generator tries to push past
// MaxMoves. It indicates a corrupt position or an undersized buffer, not
// a condition any legal chess position should trigger.
var ErrListOverflow = errors.New("movegen: move list overflow")

// MoveList is a fixed-capacity sequence of packed moves, filled by
// Generate in a stable king/knight/pawn/slider order.
type MoveList struct {
	moves [MaxMoves]Move
	len   int
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int {
	return l.len
}

// At returns the move at index i.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice returns the populated moves as a plain slice backed by l.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.len]
}

// Add appends m, returning ErrListOverflow if the list is already full.
func (l *MoveList) Add(m Move) error {
	if l.len >= MaxMoves {
		return ErrListOverflow
	}
	l.moves[l.len] = m
	l.len++
	return nil
}
