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

// historyTable accumulates a score for every (piece, target square)
// pair whenever a quiet move raises alpha, indexed directly by
// types.Piece and types.Square so no hashing is needed.
type historyTable [types.PieceLength][types.SquareLength]int32

// add rewards a quiet move that improved alpha, weighted by the depth
// it was found at so deeper confirmations count for more.
func (h *historyTable) add(piece types.Piece, to types.Square, depth int) {
	h[piece][to] += int32(depth * depth)
}

func (h *historyTable) score(piece types.Piece, to types.Square) int32 {
	return h[piece][to]
}

func (h *historyTable) clear() {
	*h = historyTable{}
}
