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

package position

import (
	. "github.com/nullmovechess/chesscore/internal/types"
	"github.com/nullmovechess/chesscore/internal/zobrist"
)

// MakeMove applies m to p and returns a freshly allocated successor
// position; p itself is left untouched, so callers may hand the same
// Position to any number of concurrent MakeMove calls. MakeMove does
// not validate m; it assumes m came from Generate on p and trusts its
// moving/captured/promotion fields. The mover's king may end up in
// check — callers that need legality must test PlayerInCheck on the
// result themselves (this is what Generate's legal-filter mode, and
// Perft, do).
func MakeMove(p *Position, m Move) *Position {
	newBoard := *p

	side := p.SideToMove()
	opponent := side.Flip()
	cr := p.CastlingRights()
	halfMove := p.HalfMoveClock()
	fullMove := p.FullMoveNumber()
	oldEp := p.EpSquare()
	key := Key(newBoard[idxKey])

	if oldEp != SqNone {
		key ^= zobrist.EnPassantFile(oldEp.FileOf())
	}
	newEp := SqNone

	from := m.From()
	to := m.To()
	mover := m.MovingPiece()
	captured := m.CapturedPiece()
	fromToBb := from.Bb() | to.Bb()

	moveSimple := func(pc Piece, bb Bitboard, c Color) {
		newBoard[pc] ^= uint64(bb)
		newBoard[c.OccupancyIndex()] ^= uint64(bb)
	}

	removeCaptured := func() {
		if captured == PieceNone {
			return
		}
		newBoard[captured] ^= uint64(to.Bb())
		newBoard[opponent.OccupancyIndex()] ^= uint64(to.Bb())
		key ^= zobrist.Piece(captured, to)
	}

	switch mover.TypeOf() {

	case Queen, Bishop, Knight:
		moveSimple(mover, fromToBb, side)
		key ^= zobrist.Piece(mover, from) ^ zobrist.Piece(mover, to)
		halfMove++
		if captured != PieceNone {
			removeCaptured()
			halfMove = 0
		}

	case King:
		cr = cr.Remove(GetCastlingRights(from))
		moveSimple(mover, fromToBb, side)
		key ^= zobrist.Piece(mover, from) ^ zobrist.Piece(mover, to)
		halfMove++
		if captured != PieceNone {
			removeCaptured()
			halfMove = 0
		}
		fileDiff := int(to.FileOf()) - int(from.FileOf())
		if fileDiff == 2 || fileDiff == -2 {
			rank := from.RankOf()
			var rookFrom, rookTo Square
			if fileDiff == 2 {
				rookFrom = SquareOf(FileH, rank)
				rookTo = SquareOf(FileF, rank)
			} else {
				rookFrom = SquareOf(FileA, rank)
				rookTo = SquareOf(FileD, rank)
			}
			rook := MakePiece(side, Rook)
			rookBb := rookFrom.Bb() | rookTo.Bb()
			moveSimple(rook, rookBb, side)
			key ^= zobrist.Piece(rook, rookFrom) ^ zobrist.Piece(rook, rookTo)
		}

	case Rook:
		cr = cr.Remove(GetCastlingRights(from))
		moveSimple(mover, fromToBb, side)
		key ^= zobrist.Piece(mover, from) ^ zobrist.Piece(mover, to)
		halfMove++
		if captured != PieceNone {
			removeCaptured()
			halfMove = 0
		}

	case Pawn:
		halfMove = 0
		promotion := m.Promotion()
		if promotion == PieceNone {
			moveSimple(mover, fromToBb, side)
			key ^= zobrist.Piece(mover, from) ^ zobrist.Piece(mover, to)
		} else {
			newBoard[mover] ^= uint64(from.Bb())
			newBoard[promotion] ^= uint64(to.Bb())
			newBoard[side.OccupancyIndex()] ^= uint64(fromToBb)
			key ^= zobrist.Piece(mover, from) ^ zobrist.Piece(promotion, to)
		}
		if captured != PieceNone {
			removeCaptured()
		} else if oldEp != SqNone && to == oldEp {
			capSq := to.To(opponent.MoveDirection())
			capPawn := MakePiece(opponent, Pawn)
			newBoard[capPawn] ^= uint64(capSq.Bb())
			newBoard[opponent.OccupancyIndex()] ^= uint64(capSq.Bb())
			key ^= zobrist.Piece(capPawn, capSq)
		}
		rankDiff := int(to.RankOf()) - int(from.RankOf())
		if rankDiff == 2 || rankDiff == -2 {
			newEp = from.To(side.MoveDirection())
			key ^= zobrist.EnPassantFile(newEp.FileOf())
		}
	}

	// A captured rook still sitting on its castling start square always
	// invalidates the corresponding right, regardless of which piece
	// captured it (en passant never captures a rook, so captured==None
	// there and this is a no-op).
	if captured != PieceNone && captured.TypeOf() == Rook {
		cr = cr.Remove(GetCastlingRights(to))
	}

	if cr != p.CastlingRights() {
		key ^= zobrist.Castling(p.CastlingRights()) ^ zobrist.Castling(cr)
	}

	if side == Black {
		fullMove++
	}

	key ^= zobrist.SideToMove()

	newBoard[idxStatus] = packStatus(opponent, cr, newEp, halfMove, fullMove)
	newBoard[idxKey] = uint64(key)

	return &newBoard
}
