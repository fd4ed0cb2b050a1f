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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareNumbering(t *testing.T) {
	assert.Equal(t, Square(0), SqA8)
	assert.Equal(t, Square(7), SqH8)
	assert.Equal(t, Square(8), SqA7)
	assert.Equal(t, Square(63), SqH1)
	assert.Equal(t, Square(64), SqNone)
}

func TestSquareFileAndRank(t *testing.T) {
	assert.Equal(t, 0, SqA8.File())
	assert.Equal(t, 0, SqA8.Rank())
	assert.Equal(t, 7, SqH1.File())
	assert.Equal(t, 7, SqH1.Rank())
	assert.Equal(t, 4, SqE4.File())
	assert.Equal(t, 4, SqE4.Rank())
}

func TestSquareOfRoundTripsWithFileAndRank(t *testing.T) {
	for sq := SqA8; sq < SqNone; sq++ {
		assert.Equal(t, sq, SquareOf(sq.File(), sq.Rank()))
	}
}

func TestSquareOfRejectsOutOfRange(t *testing.T) {
	assert.Equal(t, SqNone, SquareOf(-1, 0))
	assert.Equal(t, SqNone, SquareOf(0, 8))
}

func TestParseSquare(t *testing.T) {
	assert.Equal(t, SqE4, ParseSquare("e4"))
	assert.Equal(t, SqA8, ParseSquare("a8"))
	assert.Equal(t, SqH1, ParseSquare("h1"))
	assert.Equal(t, SqNone, ParseSquare("e9"))
	assert.Equal(t, SqNone, ParseSquare("z"))
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "a8", SqA8.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, SqE4.IsValid())
	assert.False(t, SqNone.IsValid())
}
