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

func TestMakePiece(t *testing.T) {
	assert.Equal(t, WP, MakePiece(White, Pawn))
	assert.Equal(t, WK, MakePiece(White, King))
	assert.Equal(t, BP, MakePiece(Black, Pawn))
	assert.Equal(t, BK, MakePiece(Black, King))
}

func TestPieceColor(t *testing.T) {
	assert.Equal(t, White, WP.Color())
	assert.Equal(t, White, WK.Color())
	assert.Equal(t, Black, BP.Color())
	assert.Equal(t, Black, BK.Color())
}

func TestPieceType(t *testing.T) {
	assert.Equal(t, Pawn, WP.Type())
	assert.Equal(t, Pawn, BP.Type())
	assert.Equal(t, King, WK.Type())
	assert.Equal(t, PieceTypeNone, PieceNone.Type())
}

func TestPieceIsValid(t *testing.T) {
	assert.True(t, WP.IsValid())
	assert.True(t, BK.IsValid())
	assert.False(t, PieceNone.IsValid())
}

func TestPieceChar(t *testing.T) {
	assert.Equal(t, byte('P'), WP.Char())
	assert.Equal(t, byte('k'), BK.Char())
	assert.Equal(t, byte('-'), PieceNone.Char())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, WP, PieceFromChar('P'))
	assert.Equal(t, BQ, PieceFromChar('q'))
	assert.Equal(t, PieceNone, PieceFromChar('?'))
}

func TestPieceTypeChar(t *testing.T) {
	assert.Equal(t, byte('N'), Knight.Char())
	assert.Equal(t, byte('Q'), Queen.Char())
}
