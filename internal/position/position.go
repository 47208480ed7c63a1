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

// Package position represents a chess position as a fixed-size array of
// 17 unsigned 64-bit words: one occupancy bitboard per color, six
// per-piece-type bitboards per color, a packed status word and a
// Zobrist hash. A Position is never mutated in place; MakeMove always
// returns a freshly allocated one, so any number of goroutines may hold
// and read the same Position concurrently without synchronization.
package position

import (
	"fmt"

	. "github.com/nullmovechess/chesscore/internal/types"
	"github.com/nullmovechess/chesscore/internal/zobrist"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is a position's Zobrist hash.
type Key = zobrist.Key

// Position is the 17-word packed board described in the package comment.
// Indices 1..6 and 9..14 are addressed directly by their types.Piece value
// (color_bit(8) | piece_type), so a piece's numeric encoding doubles as the
// index of its bitboard; index 0/8 hold White's/Black's occupancy, index 7
// is unused padding, index 15 is the packed status word, index 16 is KEY.
type Position [17]uint64

const (
	idxWhiteOcc = 0
	idxBlackOcc = 8
	idxStatus   = 15
	idxKey      = 16
)

// STATUS bit layout: side(0) | castling(1..4) | ep-square(5..10) |
// half-move clock(11..16) | full-move number(17..24).
const (
	statusSideShift     = 0
	statusCastlingShift = 1
	statusEpShift       = 5
	statusHalfMoveShift = 11
	statusFullMoveShift = 17

	statusSideMask     uint64 = 0x1
	statusCastlingMask uint64 = 0xF
	statusEpMask       uint64 = 0x3F
	statusHalfMoveMask uint64 = 0x3F
	statusFullMoveMask uint64 = 0xFF
)

// epNoneValue is the STATUS-field sentinel for "no en-passant square". The
// field is only six bits wide (0..63), so SqNone (64) does not fit; SqA1 is
// reused instead, since a genuine en-passant target is always on rank 3 or
// rank 6 and a1 can therefore never be one.
const epNoneValue = Square(SqA1)

// packStatus assembles a STATUS word from its unpacked fields.
func packStatus(side Color, cr CastlingRights, ep Square, halfMove, fullMove int) uint64 {
	epField := ep
	if epField == SqNone {
		epField = epNoneValue
	}
	var sideBit uint64
	if side == Black {
		sideBit = 1
	}
	return sideBit<<statusSideShift |
		uint64(cr)<<statusCastlingShift |
		uint64(epField)<<statusEpShift |
		(uint64(halfMove)&statusHalfMoveMask)<<statusHalfMoveShift |
		(uint64(fullMove)&statusFullMoveMask)<<statusFullMoveShift
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	if (p[idxStatus]>>statusSideShift)&statusSideMask == 1 {
		return Black
	}
	return White
}

// CastlingRights returns the currently available castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return CastlingRights((p[idxStatus] >> statusCastlingShift) & statusCastlingMask)
}

// EpSquare returns the en-passant target square, or SqNone if there is none.
func (p *Position) EpSquare() Square {
	sq := Square((p[idxStatus] >> statusEpShift) & statusEpMask)
	if sq == epNoneValue {
		return SqNone
	}
	return sq
}

// HalfMoveClock returns the fifty-move-rule half-move counter.
func (p *Position) HalfMoveClock() int {
	return int((p[idxStatus] >> statusHalfMoveShift) & statusHalfMoveMask)
}

// FullMoveNumber returns the full-move number.
func (p *Position) FullMoveNumber() int {
	return int((p[idxStatus] >> statusFullMoveShift) & statusFullMoveMask)
}

// ZobristKey returns the position's Zobrist hash.
func (p *Position) ZobristKey() Key {
	return Key(p[idxKey])
}

// OccupiedBb returns the occupancy bitboard of one color.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return Bitboard(p[c.OccupancyIndex()])
}

// OccupiedAll returns the union of both colors' occupancy.
func (p *Position) OccupiedAll() Bitboard {
	return p.OccupiedBb(White) | p.OccupiedBb(Black)
}

// PieceBb returns the bitboard of one specific piece (e.g. WhiteKnight).
func (p *Position) PieceBb(pc Piece) Bitboard {
	return Bitboard(p[pc])
}

// PiecesBb returns the bitboard of all pieces of type pt belonging to c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.PieceBb(MakePiece(c, pt))
}

// KingSquare returns the square of c's (sole) king.
func (p *Position) KingSquare(c Color) Square {
	return p.PiecesBb(c, King).Lsb()
}

// PieceAt returns the piece occupying sq, or PieceNone if sq is empty.
// White occupancy is tested first; within a color, bitboards are probed
// in a fixed order (pawn, knight, bishop, rook, queen, else king) so the
// result is independent of any other bookkeeping.
func (p *Position) PieceAt(sq Square) Piece {
	b := sq.Bb()
	if p.OccupiedBb(White)&b != BbZero {
		switch {
		case p.PiecesBb(White, Pawn)&b != BbZero:
			return WhitePawn
		case p.PiecesBb(White, Knight)&b != BbZero:
			return WhiteKnight
		case p.PiecesBb(White, Bishop)&b != BbZero:
			return WhiteBishop
		case p.PiecesBb(White, Rook)&b != BbZero:
			return WhiteRook
		case p.PiecesBb(White, Queen)&b != BbZero:
			return WhiteQueen
		default:
			return WhiteKing
		}
	}
	if p.OccupiedBb(Black)&b != BbZero {
		switch {
		case p.PiecesBb(Black, Pawn)&b != BbZero:
			return BlackPawn
		case p.PiecesBb(Black, Knight)&b != BbZero:
			return BlackKnight
		case p.PiecesBb(Black, Bishop)&b != BbZero:
			return BlackBishop
		case p.PiecesBb(Black, Rook)&b != BbZero:
			return BlackRook
		case p.PiecesBb(Black, Queen)&b != BbZero:
			return BlackQueen
		default:
			return BlackKing
		}
	}
	return PieceNone
}

// SquareIsAttackedBy reports whether sq is attacked by any piece of color
// attacker, on the current occupancy.
func SquareIsAttackedBy(p *Position, sq Square, attacker Color) bool {
	occ := p.OccupiedAll()
	return GetPseudoAttacks(Knight, sq)&p.PiecesBb(attacker, Knight) != BbZero ||
		GetPseudoAttacks(King, sq)&p.PiecesBb(attacker, King) != BbZero ||
		GetPawnAttacks(attacker.Flip(), sq)&p.PiecesBb(attacker, Pawn) != BbZero ||
		GetAttacksBb(Bishop, sq, occ)&(p.PiecesBb(attacker, Bishop)|p.PiecesBb(attacker, Queen)) != BbZero ||
		GetAttacksBb(Rook, sq, occ)&(p.PiecesBb(attacker, Rook)|p.PiecesBb(attacker, Queen)) != BbZero
}

// PlayerInCheck reports whether c's king is attacked by the opposing side.
func PlayerInCheck(p *Position, c Color) bool {
	return SquareIsAttackedBy(p, p.KingSquare(c), c.Flip())
}

// computeKey recomputes the Zobrist key from scratch from the pieces,
// side to move, castling rights and en-passant file currently on the
// board. Used by FromFEN and by tests that check the incremental-update
// invariant against a from-scratch recomputation.
func computeKey(p *Position) Key {
	var key Key
	for c := White; c <= Black; c++ {
		for _, pt := range [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn} {
			pc := MakePiece(c, pt)
			for bb := p.PieceBb(pc); bb != BbZero; {
				sq := bb.PopLsb()
				key ^= zobrist.Piece(pc, sq)
			}
		}
	}
	if p.SideToMove() == Black {
		key ^= zobrist.SideToMove()
	}
	key ^= zobrist.Castling(p.CastlingRights())
	if ep := p.EpSquare(); ep != SqNone {
		key ^= zobrist.EnPassantFile(ep.FileOf())
	}
	return key
}

// String renders the position as its FEN representation.
func (p *Position) String() string {
	return ToFEN(p)
}

// fmt.Stringer compile-time check.
var _ fmt.Stringer = (*Position)(nil)
