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

// Package evaluator computes a static, tapered material plus
// piece-square evaluation of a position from the side-to-move's
// perspective.
package evaluator

import (
	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/types"
)

// Game-phase thresholds bounding the tapering interpolation: at or
// above openingPhase the position is scored purely by the opening
// tables, at or below endgamePhase purely by the endgame tables.
const (
	openingPhase = 6192
	endgamePhase = 518
)

var pieceTypes = [5]types.PieceType{types.Pawn, types.Knight, types.Bishop, types.Rook, types.Queen}

// Evaluate returns the static evaluation of pos from the perspective
// of the side to move, in centipawns.
func Evaluate(pos *position.Position) types.Value {
	var openingScore, endgameScore types.Value
	var gamePhase int

	for side := types.White; side <= types.Black; side++ {
		sign := types.Value(1)
		if side == types.Black {
			sign = -1
		}
		for _, pt := range pieceTypes {
			bb := pos.PieceBB(types.MakePiece(side, pt))
			for bb != types.BbZero {
				sq := bb.PopLsb()
				o, e := pieceSquareValue(side, pt, sq)
				openingScore += sign * (openingValue[pt] + o)
				endgameScore += sign * (endgameValue[pt] + e)
				gamePhase += gamePhaseValue[pt]
			}
		}
	}

	for side := types.White; side <= types.Black; side++ {
		sign := types.Value(1)
		if side == types.Black {
			sign = -1
		}
		bb := pos.PieceBB(types.MakePiece(side, types.King))
		sq := bb.Lsb()
		o, e := pieceSquareValue(side, types.King, sq)
		openingScore += sign * o
		endgameScore += sign * e
	}

	score := taper(openingScore, endgameScore, gamePhase)
	if pos.Side() == types.Black {
		score = -score
	}
	return score
}

// taper blends the opening and endgame scores according to the
// current game-phase score.
func taper(openingScore, endgameScore types.Value, gamePhase int) types.Value {
	switch {
	case gamePhase >= openingPhase:
		return openingScore
	case gamePhase <= endgamePhase:
		return endgameScore
	default:
		gp := types.Value(gamePhase)
		return (openingScore*gp + endgameScore*(openingPhase-gp)) / openingPhase
	}
}
