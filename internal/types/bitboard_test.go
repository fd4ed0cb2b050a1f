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

func TestBitboardSetClearHas(t *testing.T) {
	var b Bitboard
	assert.False(t, b.Has(SqE4))
	b = b.Set(SqE4)
	assert.True(t, b.Has(SqE4))
	b = b.Clear(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardPopCount(t *testing.T) {
	b := BbZero.Set(SqA1).Set(SqH8).Set(SqE4)
	assert.Equal(t, 3, b.PopCount())
}

func TestBitboardLsbOfEmptyIsSqNone(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
}

func TestBitboardLsb(t *testing.T) {
	b := BbZero.Set(SqH8).Set(SqA8)
	assert.Equal(t, SqA8, b.Lsb())
}

func TestBitboardPopLsbClearsBitAndReturnsIt(t *testing.T) {
	b := BbZero.Set(SqA8).Set(SqE4)
	first := b.PopLsb()
	assert.Equal(t, SqA8, first)
	assert.False(t, b.Has(SqA8))
	assert.True(t, b.Has(SqE4))
}

func TestBitboardPopLsbOfEmptyIsSqNone(t *testing.T) {
	var b Bitboard
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestFileAndRankBb(t *testing.T) {
	assert.Equal(t, FileABb, FileBb(0))
	assert.Equal(t, FileHBb, FileBb(7))
	assert.Equal(t, Rank8Bb, RankBb(0))
	assert.Equal(t, Rank1Bb, RankBb(7))
	assert.Equal(t, 8, FileABb.PopCount())
	assert.Equal(t, 8, Rank1Bb.PopCount())
}

func TestNotFileMasks(t *testing.T) {
	assert.False(t, NotAFile.Has(SqA4))
	assert.True(t, NotAFile.Has(SqB4))
	assert.False(t, NotHFile.Has(SqH4))
}
