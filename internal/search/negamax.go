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
	"github.com/frankkopp/branchmate/internal/config"
	"github.com/frankkopp/branchmate/internal/evaluator"
	"github.com/frankkopp/branchmate/internal/movegen"
	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/transpositiontable"
	"github.com/frankkopp/branchmate/internal/types"
)

// evaluate returns the static evaluation of pos from the perspective
// of the side to move.
func evaluate(pos *position.Position) types.Value {
	return evaluator.Evaluate(pos)
}

// rootSearch runs one iteration's worth of negamax starting at ply 0,
// so that the caller always has a pv.lines[0][0] to report even when
// the iteration is cut short by the deadline.
func (s *Search) rootSearch(pos *position.Position, depth int, alpha, beta types.Value) types.Value {
	return s.search(pos, depth, 0, alpha, beta, true)
}

// search is the negamax core: searches pos to depth plies (or until
// quiescence takes over at depth 0), returning a score from the
// perspective of the side to move at ply.
func (s *Search) search(pos *position.Position, depth, ply int, alpha, beta types.Value, isPV bool) types.Value {
	isRoot := ply == 0

	if !isRoot && pos.IsRepetition() {
		return types.ValueZero
	}

	if !isRoot && !isPV {
		if v, ok := s.tt.Probe(pos.Hash(), depth, alpha, beta, ply); ok {
			return v
		}
	}

	s.nodes++
	if s.shouldPoll() && s.pollStop() {
		return types.ValueZero
	}

	s.pv.init(ply)

	if depth <= 0 {
		return s.qsearch(pos, ply, alpha, beta)
	}
	if ply >= types.MaxPly-1 {
		return evaluate(pos)
	}

	inCheck := pos.HasCheck()
	if inCheck {
		depth++
	}

	if config.Settings.Search.UseNullMove &&
		!isRoot && !isPV && !inCheck && depth >= config.Settings.Search.NmpDepth {
		snapshot := pos.Clone()
		pos.PushRepetition()
		pos.DoNullMove()
		value := -s.search(pos, depth-1-config.Settings.Search.NmpReduction, ply+1, -beta, -beta+1, false)
		pos.PopRepetition()
		*pos = snapshot
		if s.stopFlag {
			return types.ValueZero
		}
		if value >= beta {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	var moves types.MoveList
	movegen.Generate(pos, &moves)

	var pvMove types.Move
	if isPV && s.pv.length[ply+1] > ply {
		pvMove = s.pv.lines[ply][ply]
	}
	s.scoreMoves(pos, &moves, ply, pvMove)

	legalMoves := 0
	movesSearched := 0
	alphaOrig := alpha

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		snapshot := pos.Clone()
		pos.PushRepetition()
		if !pos.DoMove(m, position.AllMoves) {
			pos.PopRepetition()
			*pos = snapshot
			continue
		}
		legalMoves++

		var value types.Value
		switch {
		case movesSearched == 0:
			value = -s.search(pos, depth-1, ply+1, -beta, -alpha, isPV)
		default:
			reduced := depth - 1
			doLmr := config.Settings.Search.UseLmr &&
				movesSearched >= config.Settings.Search.LmrMovesSearched &&
				depth >= config.Settings.Search.LmrDepth &&
				!inCheck && m.IsQuiet()
			if doLmr {
				reduced = depth - 2
			}
			value = -s.search(pos, reduced, ply+1, -alpha-1, -alpha, false)
			if value > alpha && (doLmr || (config.Settings.Search.UsePVS && value < beta)) {
				s.statistics.PvsResearches++
				value = -s.search(pos, depth-1, ply+1, -beta, -alpha, isPV)
			}
		}

		pos.PopRepetition()
		*pos = snapshot

		if s.stopFlag {
			return types.ValueZero
		}

		movesSearched++

		if value > alpha {
			alpha = value
			s.pv.save(ply, m)
			if m.IsQuiet() {
				s.history.add(m.Piece(), m.To(), depth)
			}
		}

		if alpha >= beta {
			s.statistics.BetaCuts++
			if m.IsQuiet() {
				s.killers.add(ply, m)
			}
			s.tt.Put(pos.Hash(), depth, transpositiontable.FlagBeta, beta, ply)
			return beta
		}
	}

	if legalMoves == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -types.ValueMate + types.Value(ply)
		}
		s.statistics.Stalemates++
		return types.ValueZero
	}

	flag := transpositiontable.FlagAlpha
	if alpha > alphaOrig {
		flag = transpositiontable.FlagExact
	}
	s.tt.Put(pos.Hash(), depth, flag, alpha, ply)

	return alpha
}
