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

// killerTable remembers, per ply, the two most recent quiet moves that
// caused a beta cutoff. They are tried early in sibling nodes at the
// same ply since a move that refutes one line often refutes another.
type killerTable [types.MaxPly][2]types.Move

// add pushes m in as the first killer at ply, demoting the previous
// first killer to second. A no-op if m is already the first killer.
func (k *killerTable) add(ply int, m types.Move) {
	if k[ply][0] == m {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

func (k *killerTable) clear() {
	*k = killerTable{}
}
