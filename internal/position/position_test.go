/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/nullmovechess/chesscore/internal/types"
)

func mustFromFEN(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return p
}

func TestStartingPosition(t *testing.T) {
	p := StartingPosition()
	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), p.PiecesBb(White, Rook)|p.PiecesBb(Black, Rook))
	assert.Equal(t, SqB1.Bb()|SqG1.Bb()|SqB8.Bb()|SqG8.Bb(), p.PiecesBb(White, Knight)|p.PiecesBb(Black, Knight))
	assert.Equal(t, SqC1.Bb()|SqF1.Bb()|SqC8.Bb()|SqF8.Bb(), p.PiecesBb(White, Bishop)|p.PiecesBb(Black, Bishop))
	assert.Equal(t, SqD1.Bb(), p.PiecesBb(White, Queen))
	assert.Equal(t, SqD8.Bb(), p.PiecesBb(Black, Queen))
	assert.Equal(t, SqE1.Bb(), p.PiecesBb(White, King))
	assert.Equal(t, SqE8.Bb(), p.PiecesBb(Black, King))
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EpSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoveNumber())
	assert.Equal(t, StartFen, ToFEN(p))
}

// TestFenRoundTrip checks that FromFEN followed by ToFEN reproduces the
// input FEN for a handful of positions covering castling rights, en
// passant, and a mid-game material imbalance.
func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"8/8/8/8/8/8/8/k6K w - - 5 40",
	}
	for _, fen := range fens {
		p := mustFromFEN(t, fen)
		assert.Equal(t, fen, ToFEN(p), "round trip for %q", fen)
	}
}

// TestPieceAtConsistency checks that PieceAt agrees with the piece
// bitboards at every square: occupied squares report the occupying
// piece, empty squares report PieceNone.
func TestPieceAtConsistency(t *testing.T) {
	p := mustFromFEN(t, "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14")
	for sq := SqA1; sq <= SqH8; sq++ {
		pc := p.PieceAt(sq)
		if pc == PieceNone {
			assert.Equal(t, BbZero, p.OccupiedAll()&sq.Bb(), "square %s reported empty but occupancy disagrees", sq)
			continue
		}
		assert.NotEqual(t, BbZero, p.PieceBb(pc)&sq.Bb(), "PieceAt(%s)=%s but its piece bitboard disagrees", sq, pc)
	}
}

// TestOccupancyDisjoint checks the White/Black occupancy bitboards never
// overlap and their union is the total occupancy.
func TestOccupancyDisjoint(t *testing.T) {
	p := mustFromFEN(t, "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14")
	assert.Equal(t, BbZero, p.OccupiedBb(White)&p.OccupiedBb(Black))
	assert.Equal(t, p.OccupiedAll(), p.OccupiedBb(White)|p.OccupiedBb(Black))
}

// TestSingleKingPerSide checks exactly one king bitboard bit per color.
func TestSingleKingPerSide(t *testing.T) {
	p := StartingPosition()
	assert.Equal(t, 1, p.PiecesBb(White, King).PopCount())
	assert.Equal(t, 1, p.PiecesBb(Black, King).PopCount())
}

func TestZobristKeyMatchesComputeKey(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
	}
	for _, fen := range fens {
		p := mustFromFEN(t, fen)
		assert.Equal(t, computeKey(p), p.ZobristKey(), "fen %q", fen)
	}
}

func TestMalformedFen(t *testing.T) {
	_, err := FromFEN("not a fen")
	assert.Error(t, err)
	var malformed *MalformedFenError
	assert.ErrorAs(t, err, &malformed)
}

func TestMakeMoveDoesNotMutateOriginal(t *testing.T) {
	p := StartingPosition()
	before := *p
	m := NewMove(SqE2, SqE4, MakePiece(White, Pawn), PieceNone, PieceNone)
	_ = MakeMove(p, m)
	assert.Equal(t, before, *p, "MakeMove must not mutate its receiver")
}

func TestMakeMoveSimplePawnPush(t *testing.T) {
	p := StartingPosition()
	m := NewMove(SqE2, SqE4, MakePiece(White, Pawn), PieceNone, PieceNone)
	next := MakeMove(p, m)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", ToFEN(next))
}

func TestMakeMoveCastling(t *testing.T) {
	p := mustFromFEN(t, "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R1K3R b kq - 0 14")
	m := NewMove(SqE8, SqG8, MakePiece(Black, King), PieceNone, PieceNone)
	next := MakeMove(p, m)
	assert.Equal(t, PieceNone, next.PieceAt(SqE8))
	assert.Equal(t, MakePiece(Black, King), next.PieceAt(SqG8))
	assert.Equal(t, MakePiece(Black, Rook), next.PieceAt(SqF8))
	assert.False(t, next.CastlingRights().Has(CastlingBlackOO))
	assert.False(t, next.CastlingRights().Has(CastlingBlackOOO))
}

func TestMakeMoveEnPassantCapture(t *testing.T) {
	p := mustFromFEN(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m := NewMove(SqE5, SqD6, MakePiece(White, Pawn), PieceNone, PieceNone)
	next := MakeMove(p, m)
	assert.Equal(t, MakePiece(White, Pawn), next.PieceAt(SqD6))
	assert.Equal(t, PieceNone, next.PieceAt(SqD5))
	assert.Equal(t, BbZero, next.OccupiedAll()&SqD5.Bb())
}

func TestMakeMovePromotion(t *testing.T) {
	p := mustFromFEN(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	m := NewMove(SqA7, SqA8, MakePiece(White, Pawn), PieceNone, MakePiece(White, Queen))
	next := MakeMove(p, m)
	assert.Equal(t, MakePiece(White, Queen), next.PieceAt(SqA8))
	assert.Equal(t, PieceNone, next.PieceAt(SqA7))
}

func TestSquareIsAttackedBy(t *testing.T) {
	p := mustFromFEN(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/6R1/p1p2PPP/1R4K1 b kq e3 0 1")
	assert.True(t, SquareIsAttackedBy(p, SqG3, White))
	assert.True(t, SquareIsAttackedBy(p, SqE3, White))
	assert.True(t, SquareIsAttackedBy(p, SqB1, Black))
	assert.True(t, SquareIsAttackedBy(p, SqE4, Black))
	assert.False(t, SquareIsAttackedBy(p, SqG1, Black))
}

func TestPlayerInCheck(t *testing.T) {
	p := mustFromFEN(t, "r3k2r/1ppn3p/2q1qNn1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq - 0 1")
	assert.True(t, PlayerInCheck(p, Black))
	assert.False(t, PlayerInCheck(p, White))
}
