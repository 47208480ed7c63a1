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

// Package zobrist holds the random 64-bit constants used to maintain a
// position's incremental hash key. The key is the XOR of: one constant
// per (piece, square) currently occupied, one constant for the current
// combination of castling rights, one constant for the en-passant file if a target
// square is set, and one constant if it is black's move. Every core
// make-move step updates the key incrementally by XOR-ing the affected
// constants in and out; a from-scratch recomputation over a position's
// pieces, castling rights, en-passant file and side to move must always
// agree with the incrementally maintained value.
package zobrist

import "github.com/nullmovechess/chesscore/internal/types"

// Key is a 64-bit position hash.
type Key uint64

// seed is fixed so that identical positions hash identically across runs
// and processes, which both the incremental/scratch-recompute invariant
// and perft hash-based divide tooling rely on.
const seed = 1070372

var (
	pieces         [types.PieceLength][types.SqLength]Key
	castlingRights [types.CastlingRightsLength]Key
	enPassantFile  [8]Key
	sideToMove     Key
)

func init() {
	r := newRandom(seed)
	for pc := types.Piece(0); pc < types.PieceLength; pc++ {
		for sq := 0; sq < types.SqLength; sq++ {
			pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := types.CastlingRights(0); cr < types.CastlingRightsLength; cr++ {
		castlingRights[cr] = Key(r.rand64())
	}
	for f := 0; f < 8; f++ {
		enPassantFile[f] = Key(r.rand64())
	}
	sideToMove = Key(r.rand64())
}

// Piece returns the constant for a piece standing on sq.
func Piece(p types.Piece, sq types.Square) Key {
	return pieces[p][sq]
}

// Castling returns the constant for a whole castling-rights mask: there is
// one constant per combination of the four rights, so callers XOR out the
// old mask's constant and XOR in the new mask's constant when rights change.
func Castling(cr types.CastlingRights) Key {
	return castlingRights[cr]
}

// EnPassantFile returns the constant for an en-passant target on file f.
func EnPassantFile(f types.File) Key {
	return enPassantFile[f]
}

// SideToMove returns the constant XORed in whenever it is black's move.
func SideToMove() Key {
	return sideToMove
}

// random is the xorshift64star PRNG (Vigna 2014, public domain), the same
// generator family the magic-bitboard table builder in internal/types
// uses for its own seeding: fast, well distributed, and a documented
// provenance rather than math/rand's heavier default source.
type random struct {
	s uint64
}

func newRandom(seed uint64) *random {
	if seed == 0 {
		panic("zobrist: seed must not be zero")
	}
	return &random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}
