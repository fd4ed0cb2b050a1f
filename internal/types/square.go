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

// Package types contains the primitive data types shared across the
// engine: bitboards, squares, sides, pieces and the packed move
// representation. Types here have no dependency on any other package
// in this module.
package types

import "fmt"

// Square identifies one of the 64 squares of the board. Squares are
// numbered rank-major starting at the top of the board: a8 is 0, h8 is
// 7, a7 is 8, ..., h1 is 63. SqNone (64) is the sentinel for "no square".
type Square uint8

// All 64 squares, plus the SqNone sentinel.
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
)

// SquareLength is the number of real squares on the board.
const SquareLength = 64

var squareNames = [...]string{
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
}

// IsValid reports whether sq is one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// File returns the file of sq, 0 (a-file) to 7 (h-file).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank of sq counted from the top of the board:
// 0 is rank 8, 7 is rank 1.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// SquareOf builds a Square from a file (0-7) and a top-down rank (0-7).
// Returns SqNone if either is out of range.
func SquareOf(file, rankFromTop int) Square {
	if file < 0 || file > 7 || rankFromTop < 0 || rankFromTop > 7 {
		return SqNone
	}
	return Square(rankFromTop*8 + file)
}

// ParseSquare parses algebraic coordinates (e.g. "e4") into a Square.
// Returns SqNone on a malformed string.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := int(s[0] - 'a')
	rank := int('8' - s[1])
	return SquareOf(file, rank)
}

// String renders the square in algebraic notation, or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareNames[sq]
}

// GoString supports %#v / debugging.
func (sq Square) GoString() string {
	return fmt.Sprintf("Square(%s)", sq.String())
}
