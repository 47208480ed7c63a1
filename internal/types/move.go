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

package types

import (
	"fmt"
	"strings"
)

// Move is a 32-bit packed move:
//  bits 0..5   from square
//  bits 6..11  to square
//  bits 12..15 promotion piece (color|type), or 0
//  bits 16..19 moving piece (color|type)
//  bits 20..23 captured piece (color|type), or 0
//
// En passant captures record a captured piece of PieceNone; make-move
// detects en passant by the to-square matching the position's ep-square.
type Move uint32

// MoveNone is the zero value and never a legal move (from==to==a1 and
// moving piece PieceNone cannot occur for a generated move).
const MoveNone Move = 0

const (
	toShift        uint = 6
	promShift      uint = 12
	movingShift    uint = 16
	capturedShift  uint = 20

	squareBits Move = 0x3F
	pieceBits  Move = 0xF
)

// NewMove packs a move from its fields.
func NewMove(from, to Square, moving, captured, promotion Piece) Move {
	return Move(from) |
		Move(to)<<toShift |
		Move(promotion)<<promShift |
		Move(moving)<<movingShift |
		Move(captured)<<capturedShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & squareBits)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareBits)
}

// Promotion returns the promotion piece, or PieceNone if this is not a
// promotion.
func (m Move) Promotion() Piece {
	return Piece((m >> promShift) & pieceBits)
}

// MovingPiece returns the piece making the move.
func (m Move) MovingPiece() Piece {
	return Piece((m >> movingShift) & pieceBits)
}

// CapturedPiece returns the captured piece, or PieceNone for a quiet move
// or an en passant capture (whose captured pawn is not on the to-square).
func (m Move) CapturedPiece() Piece {
	return Piece((m >> capturedShift) & pieceBits)
}

// IsCapture reports whether the move's captured-piece field is set. It
// does not by itself detect en passant.
func (m Move) IsCapture() bool {
	return m.CapturedPiece() != PieceNone
}

// IsPromotion reports whether the move's promotion field is set.
func (m Move) IsPromotion() bool {
	return m.Promotion() != PieceNone
}

// String returns a verbose, debug-oriented representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{ none }"
	}
	return fmt.Sprintf("Move{ %s moving:%s captured:%s promotion:%s }",
		m.StringUci(), m.MovingPiece(), m.CapturedPiece(), m.Promotion())
}

// StringUci returns the UCI long algebraic notation of the move, e.g.
// "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.Promotion().TypeOf().Char()))
	}
	return os.String()
}

// StringBits renders the raw bit layout of the move, for debugging.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move{ from[%06b](%s) to[%06b](%s) prom[%04b](%s) moving[%04b](%s) captured[%04b](%s) (%d) }",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.Promotion(), m.Promotion().String(),
		m.MovingPiece(), m.MovingPiece().String(),
		m.CapturedPiece(), m.CapturedPiece().String(),
		uint32(m))
}
