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

// Package evaluator computes a static value for a position to be used by
// search. Material blends the mid-game and end-game piece-square tables
// according to how much non-pawn material is left on the board, rather than
// scoring off a single table throughout the game.
package evaluator

import (
	"github.com/nullmovechess/chesscore/internal/attacks"
	"github.com/nullmovechess/chesscore/internal/config"
	"github.com/nullmovechess/chesscore/internal/position"
	. "github.com/nullmovechess/chesscore/internal/types"
)

// phaseWeight is the classic "non-pawn material" game-phase weighting: two
// knights/bishops per side are worth 1 each, two rooks 2 each and one queen 4,
// so a full board scores GamePhaseMax and an empty one scores 0.
var phaseWeight = map[PieceType]int{Knight: 1, Bishop: 1, Rook: 2, Queen: 4}

// gamePhase estimates how "mid game" pos still is, clamped to GamePhaseMax.
func gamePhase(pos *position.Position) int {
	phase := 0
	for c := White; c <= Black; c++ {
		for pt, weight := range phaseWeight {
			phase += pos.PieceBb(MakePiece(c, pt)).PopCount() * weight
		}
	}
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// Material sums piece values and mid/end piece-square-table bonuses for both
// sides, blends them by the position's game phase, adds a mobility bonus when
// config.Settings.Eval.UseMobility is set, and returns the signed difference
// from pos's side-to-move perspective: positive means the side to move is
// ahead.
func Material(pos *position.Position) Value {
	var score [ColorLength]Score

	for c := White; c <= Black; c++ {
		for pt := King; pt <= Pawn; pt++ {
			pc := MakePiece(c, pt)
			for bb := pos.PieceBb(pc); bb != BbZero; {
				sq := bb.PopLsb()
				score[c].Add(Score{
					Mid: pc.ValueOf() + PosMidValue(pc, sq),
					End: pc.ValueOf() + PosEndValue(pc, sq),
				})
			}
		}
	}

	us := pos.SideToMove()
	blended := score[us]
	blended.Sub(score[us.Flip()])
	diff := blended.Interpolate(gamePhase(pos)) + Value(config.Settings.Eval.Tempo)

	if config.Settings.Eval.UseMobility {
		a := attacks.NewAttacks()
		a.Compute(pos)
		diff += Value(a.Mobility[us]-a.Mobility[us.Flip()]) * Value(config.Settings.Eval.MobilityBonus)
	}

	return diff
}
