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

import "github.com/frankkopp/branchmate/internal/types"

// pvTable is a triangular principal-variation table: row ply holds the
// best line found so far starting at ply, in lines[ply][ply] up to (not
// including) lines[ply][length[ply]].
type pvTable struct {
	lines  [types.MaxPly][types.MaxPly]types.Move
	length [types.MaxPly]int
}

// init resets the row at ply to empty, called once per node on entry.
func (t *pvTable) init(ply int) {
	t.length[ply] = ply
}

// save records move as the best move at ply and appends the
// continuation already found at ply+1, the standard triangular-table
// update performed whenever a child search raises alpha.
func (t *pvTable) save(ply int, move types.Move) {
	t.lines[ply][ply] = move
	for i := ply + 1; i < t.length[ply+1]; i++ {
		t.lines[ply][i] = t.lines[ply+1][i]
	}
	t.length[ply] = t.length[ply+1]
}

// line returns the principal variation starting at ply 0.
func (t *pvTable) line() types.MoveList {
	var ml types.MoveList
	for i := 0; i < t.length[0]; i++ {
		ml.Add(t.lines[0][i])
	}
	return ml
}
