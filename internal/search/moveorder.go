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

package search

import (
	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/types"
)

// Scoring bands, highest first, so a stable descending sort puts the
// move most likely to cause a cutoff at the front of the list.
const (
	scorePvMove  int32 = 2_000_000
	scoreCapture int32 = 1_000_000
	scoreKiller1 int32 = 900_000
	scoreKiller2 int32 = 800_000
)

// mvvLva is the most-valuable-victim/least-valuable-attacker table,
// indexed [attacker][victim] by types.PieceType (Pawn..King). Values
// run 100-605: victimRank*100 gives the victim's weight, 5-attackerRank
// breaks ties among equal victims so the cheapest attacker sorts first
// (PxQ outranks QxQ).
var mvvLva = [6][6]int32{
	{105, 205, 305, 405, 505, 605}, // attacker pawn
	{104, 204, 304, 404, 504, 604}, // attacker knight
	{103, 203, 303, 403, 503, 603}, // attacker bishop
	{102, 202, 302, 402, 502, 602}, // attacker rook
	{101, 201, 301, 401, 501, 601}, // attacker queen
	{100, 200, 300, 400, 500, 600}, // attacker king
}

// scoreMoves assigns an ordering score to every move in list: the PV
// move from a previous iteration first, then captures ordered by
// MVV-LVA, then the two killer moves for this ply, then quiet moves by
// history score.
func (s *Search) scoreMoves(pos *position.Position, list *types.MoveList, ply int, pvMove types.Move) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		switch {
		case pvMove != types.MoveNone && m == pvMove:
			list.SetScore(i, scorePvMove)
		case m.IsCapture():
			list.SetScore(i, scoreCapture+mvvLvaScore(pos, m))
		case m == s.killers[ply][0]:
			list.SetScore(i, scoreKiller1)
		case m == s.killers[ply][1]:
			list.SetScore(i, scoreKiller2)
		default:
			list.SetScore(i, s.history.score(m.Piece(), m.To()))
		}
	}
	list.Sort()
}

// mvvLvaScore looks up the MVV-LVA score for a capturing move.
func mvvLvaScore(pos *position.Position, m types.Move) int32 {
	victimSq := m.To()
	if m.IsEnPassant() {
		victimSq = epVictimSquare(m.To(), pos.Side())
	}
	victim := pos.PieceOn(victimSq).Type()
	attacker := m.Piece().Type()
	return mvvLva[attacker][victim]
}

// epVictimSquare returns the square of the pawn captured en passant by
// a move whose target is to, given the side making the capture.
func epVictimSquare(to types.Square, side types.Side) types.Square {
	if side == types.White {
		return to + 8
	}
	return to - 8
}
