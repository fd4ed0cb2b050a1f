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
	"github.com/frankkopp/branchmate/internal/movegen"
	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/types"
)

// qsearch extends the search along capture sequences past the nominal
// leaf depth, to avoid misjudging a position in the middle of a
// capture exchange (the horizon effect). It has no depth parameter; it
// stops when there are no more captures, on a beta cutoff, when the
// search is stopped, or at ply MaxPly-1, where it returns the static
// evaluation.
func (s *Search) qsearch(pos *position.Position, ply int, alpha, beta types.Value) types.Value {
	s.nodes++
	if s.shouldPoll() && s.pollStop() {
		return types.ValueZero
	}

	standPat := evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= types.MaxPly-1 {
		return standPat
	}

	var moves types.MoveList
	movegen.Generate(pos, &moves)
	s.scoreMoves(pos, &moves, ply, types.MoveNone)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !m.IsCapture() {
			continue
		}

		snapshot := pos.Clone()
		pos.PushRepetition()
		if !pos.DoMove(m, position.CapturesOnly) {
			pos.PopRepetition()
			*pos = snapshot
			continue
		}

		value := -s.qsearch(pos, ply+1, -beta, -alpha)

		pos.PopRepetition()
		*pos = snapshot

		if s.stopFlag {
			return types.ValueZero
		}

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}
