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

// Piece packs a Color and a PieceType into 4 bits: color_bit(8) | type(1..6).
// Because White occupies Position array index 0 and Black index 8, a
// Piece's numeric value is directly usable as a Position array index for
// the corresponding piece bitboard.
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhiteQueen  Piece = 2
	WhiteRook   Piece = 3
	WhiteBishop Piece = 4
	WhiteKnight Piece = 5
	WhitePawn   Piece = 6
	BlackKing   Piece = 9
	BlackQueen  Piece = 10
	BlackRook   Piece = 11
	BlackBishop Piece = 12
	BlackKnight Piece = 13
	BlackPawn   Piece = 14
	PieceLength Piece = 16
)

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the static material value of the piece's type.
func (p Piece) ValueOf() Value {
	return pieceTypeValue[p.TypeOf()]
}

// array of string labels for pieces, indexed by Piece value (0..14, with
// gaps at 7, 8 and 15 never produced by MakePiece).
var pieceToString = [16]string{
	"-", "K", "Q", "R", "B", "N", "P", "-",
	"-", "k", "q", "r", "b", "n", "p", "-",
}

// PieceFromChar returns the Piece denoted by a single FEN-style character
// (e.g. "K", "p"), or PieceNone if s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	for p, label := range pieceToString {
		if label == s && Piece(p) != PieceNone {
			return Piece(p)
		}
	}
	return PieceNone
}

// String returns a single FEN-style letter for the piece, or "-" for
// PieceNone.
func (p Piece) String() string {
	if p < 0 || int(p) >= len(pieceToString) {
		return "-"
	}
	return pieceToString[p]
}
