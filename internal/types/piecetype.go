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

// PieceType is a set of constants for the six piece types. Values also
// double as the per-color offset into a Position's bitboard array
// (White: 1..6, Black: 9..14 once combined with the color bit).
type PieceType uint8

const (
	PtNone   PieceType = 0
	King     PieceType = 1
	Queen    PieceType = 2
	Rook     PieceType = 3
	Bishop   PieceType = 4
	Knight   PieceType = 5
	Pawn     PieceType = 6
	PtLength PieceType = 7
)

// IsValid checks if pt is a valid piece type.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// array of static values of each piece type, indexed by PieceType.
var pieceTypeValue = [PtLength]Value{0, 2000, 900, 500, 330, 320, 100}

// ValueOf returns a static material value for the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"NOPIECE", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}

// String returns a human readable name for the piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = "-KQRBNP"

// Char returns a single-character FEN-style label for the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}
