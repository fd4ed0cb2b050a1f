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

package types

import "strconv"

// Value is a centipawn score, roughly 1/100th of a pawn, always from
// the perspective of the side the score is reported for.
type Value int32

const (
	// ValueZero is a neutral / draw score.
	ValueZero Value = 0

	// ValueInfinite bounds the search window on the first iteration.
	ValueInfinite Value = 50000

	// ValueMate is the score of delivering checkmate on the spot.
	// Mate scores returned from deeper plies are ValueMate - ply.
	ValueMate Value = 49000

	// ValueMateThreshold is the boundary above (or, negated, below)
	// which a score is considered to encode a forced mate rather than
	// a material/positional evaluation.
	ValueMateThreshold Value = ValueMate - 1000

	// ValueNone marks "no usable value", e.g. a transposition table miss.
	ValueNone Value = -ValueInfinite - 1
)

// IsMateScore reports whether v encodes a forced mate for either side.
func (v Value) IsMateScore() bool {
	return v >= ValueMateThreshold || v <= -ValueMateThreshold
}

// MateIn returns the number of full moves to mate implied by v, with
// the sign matching who is mating (positive: side to move mates).
// Only meaningful when IsMateScore() is true.
func (v Value) MateIn() int {
	if v > 0 {
		return (int(ValueMate-v) + 1) / 2
	}
	return -(int(ValueMate+v) + 1) / 2
}

// String renders v the way UCI "info score" expects: "mate N" when v
// encodes a forced mate, "cp N" (centipawns) otherwise.
func (v Value) String() string {
	if v.IsMateScore() {
		return "mate " + strconv.Itoa(v.MateIn())
	}
	return "cp " + strconv.Itoa(int(v))
}
