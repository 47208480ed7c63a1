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

// Package movegen generates pseudo-legal and legal moves for a position
// and drives perft. Every Generate call builds a fresh MoveList; nothing
// here mutates the Position it is given.
package movegen

import (
	"github.com/nullmovechess/chesscore/internal/position"
	. "github.com/nullmovechess/chesscore/internal/types"
)

// Generate produces moves for pos's side to move, in a fixed king/knight/
// pawn/slider order. tacticalOnly restricts the target mask to enemy
// occupancy (captures only, en passant and capturing promotions included —
// pawn pushes, push promotions among them, and castling are skipped). legal runs every pseudo-legal move through
// MakeMove and keeps only those that don't leave the mover's own king in
// check; the returned list is then a fresh one built from survivors.
// Generate never mutates pos.
func Generate(pos *position.Position, legal bool, tacticalOnly bool) (*MoveList, error) {
	side := pos.SideToMove()
	list := &MoveList{}

	if err := generateKingMoves(pos, side, tacticalOnly, list); err != nil {
		return nil, err
	}
	if err := generateKnightMoves(pos, side, tacticalOnly, list); err != nil {
		return nil, err
	}
	if err := generatePawnMoves(pos, side, tacticalOnly, list); err != nil {
		return nil, err
	}
	if err := generateSliderMoves(pos, side, tacticalOnly, list); err != nil {
		return nil, err
	}

	if !legal {
		return list, nil
	}

	legalList := &MoveList{}
	for _, m := range list.Slice() {
		successor := position.MakeMove(pos, m)
		if position.PlayerInCheck(successor, side) {
			continue
		}
		if err := legalList.Add(m); err != nil {
			return nil, err
		}
	}
	return legalList, nil
}

// targetMask is ~own_occupancy in full mode, enemy_occupancy in tactical mode.
func targetMask(pos *position.Position, side Color, tacticalOnly bool) Bitboard {
	if tacticalOnly {
		return pos.OccupiedBb(side.Flip())
	}
	return ^pos.OccupiedBb(side)
}

func generateKingMoves(pos *position.Position, side Color, tacticalOnly bool, list *MoveList) error {
	king := MakePiece(side, King)
	from := pos.KingSquare(side)
	mask := targetMask(pos, side, tacticalOnly)

	for moves := GetPseudoAttacks(King, from) & mask; moves != BbZero; {
		to := moves.PopLsb()
		if err := list.Add(NewMove(from, to, king, pos.PieceAt(to), PieceNone)); err != nil {
			return err
		}
	}

	if tacticalOnly {
		return nil
	}
	return generateCastlingMoves(pos, side, from, king, list)
}

// generateCastlingMoves appends castling moves reachable from kingSq. It
// tests only the king's start square and the square the king passes over
// for attack — the destination square is left to the post-move legality
// filter, so castling into check only gets caught when legal == true.
func generateCastlingMoves(pos *position.Position, side Color, kingSq Square, king Piece, list *MoveList) error {
	cr := pos.CastlingRights()
	if cr == CastlingNone || position.SquareIsAttackedBy(pos, kingSq, side.Flip()) {
		return nil
	}
	occ := pos.OccupiedAll()
	opponent := side.Flip()

	var rightOO, rightOOO CastlingRights
	var rookFromOO, kingToOO, passOO Square
	var rookFromOOO, kingToOOO, passOOO Square
	if side == White {
		rightOO, rightOOO = CastlingWhiteOO, CastlingWhiteOOO
		rookFromOO, kingToOO, passOO = SqH1, SqG1, SqF1
		rookFromOOO, kingToOOO, passOOO = SqA1, SqC1, SqD1
	} else {
		rightOO, rightOOO = CastlingBlackOO, CastlingBlackOOO
		rookFromOO, kingToOO, passOO = SqH8, SqG8, SqF8
		rookFromOOO, kingToOOO, passOOO = SqA8, SqC8, SqD8
	}

	if cr.Has(rightOO) &&
		Intermediate(kingSq, rookFromOO)&occ == BbZero &&
		!position.SquareIsAttackedBy(pos, passOO, opponent) {
		if err := list.Add(NewMove(kingSq, kingToOO, king, PieceNone, PieceNone)); err != nil {
			return err
		}
	}
	if cr.Has(rightOOO) &&
		Intermediate(kingSq, rookFromOOO)&occ == BbZero &&
		!position.SquareIsAttackedBy(pos, passOOO, opponent) {
		if err := list.Add(NewMove(kingSq, kingToOOO, king, PieceNone, PieceNone)); err != nil {
			return err
		}
	}
	return nil
}

func generateKnightMoves(pos *position.Position, side Color, tacticalOnly bool, list *MoveList) error {
	knight := MakePiece(side, Knight)
	mask := targetMask(pos, side, tacticalOnly)

	for knights := pos.PiecesBb(side, Knight); knights != BbZero; {
		from := knights.PopLsb()
		for moves := GetPseudoAttacks(Knight, from) & mask; moves != BbZero; {
			to := moves.PopLsb()
			if err := list.Add(NewMove(from, to, knight, pos.PieceAt(to), PieceNone)); err != nil {
				return err
			}
		}
	}
	return nil
}

// promotionPieces lists the pieces a pawn may promote into, queen first so
// the strongest promotion is nearest the front of a generated list.
var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func addPawnMove(list *MoveList, from, to Square, pawn, captured Piece, side Color) error {
	if to.RankOf() != Rank1 && to.RankOf() != Rank8 {
		return list.Add(NewMove(from, to, pawn, captured, PieceNone))
	}
	for _, pt := range promotionPieces {
		if err := list.Add(NewMove(from, to, pawn, captured, MakePiece(side, pt))); err != nil {
			return err
		}
	}
	return nil
}

func generatePawnMoves(pos *position.Position, side Color, tacticalOnly bool, list *MoveList) error {
	pawn := MakePiece(side, Pawn)
	pushDir := side.MoveDirection()
	myPawns := pos.PiecesBb(side, Pawn)
	enemyBb := pos.OccupiedBb(side.Flip())

	captureTargets := enemyBb
	epSquare := pos.EpSquare()
	if epSquare != SqNone {
		captureTargets |= epSquare.Bb()
	}

	for _, dir := range [2]Direction{West, East} {
		captures := ShiftBitboard(myPawns, pushDir+dir) & captureTargets
		for captures != BbZero {
			to := captures.PopLsb()
			from := to.To(side.Flip().MoveDirection() - dir)
			if epSquare != SqNone && to == epSquare {
				if err := list.Add(NewMove(from, to, pawn, PieceNone, PieceNone)); err != nil {
					return err
				}
				continue
			}
			if err := addPawnMove(list, from, to, pawn, pos.PieceAt(to), side); err != nil {
				return err
			}
		}
	}

	if tacticalOnly {
		return nil
	}

	empty := ^pos.OccupiedAll()
	singlePush := ShiftBitboard(myPawns, pushDir) & empty
	for moves := singlePush; moves != BbZero; {
		to := moves.PopLsb()
		from := to.To(side.Flip().MoveDirection())
		if err := addPawnMove(list, from, to, pawn, PieceNone, side); err != nil {
			return err
		}
	}

	doublePush := ShiftBitboard(singlePush&side.PawnDoubleRank(), pushDir) & empty
	for moves := doublePush; moves != BbZero; {
		to := moves.PopLsb()
		from := to.To(side.Flip().MoveDirection()).To(side.Flip().MoveDirection())
		if err := list.Add(NewMove(from, to, pawn, PieceNone, PieceNone)); err != nil {
			return err
		}
	}
	return nil
}

// sliderPieceTypes lists queen/rook/bishop, the order spec.md's generation
// section names them in.
var sliderPieceTypes = [3]PieceType{Queen, Rook, Bishop}

func generateSliderMoves(pos *position.Position, side Color, tacticalOnly bool, list *MoveList) error {
	mask := targetMask(pos, side, tacticalOnly)
	occ := pos.OccupiedAll()

	for _, pt := range sliderPieceTypes {
		piece := MakePiece(side, pt)
		for pieces := pos.PiecesBb(side, pt); pieces != BbZero; {
			from := pieces.PopLsb()
			for moves := GetAttacksBb(pt, from, occ) & mask; moves != BbZero; {
				to := moves.PopLsb()
				if err := list.Add(NewMove(from, to, piece, pos.PieceAt(to), PieceNone)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
