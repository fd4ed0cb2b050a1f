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

// Side identifies which player a piece, or an occupancy bitboard,
// belongs to. Both is used only to index the aggregate occupancy.
type Side uint8

const (
	White Side = iota
	Black
	Both
)

// SideLength is the number of real sides (White, Black) - Both is not
// counted as it only indexes aggregate occupancy.
const SideLength = 2

// Flip returns the opposing side. Calling Flip on Both is invalid.
func (s Side) Flip() Side {
	return s ^ 1
}

// String renders the side as "w", "b" or "-".
func (s Side) String() string {
	switch s {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}
