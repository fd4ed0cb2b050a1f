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

func TestMoveListAddAndLen(t *testing.T) {
	var l MoveList
	assert.Equal(t, 0, l.Len())
	m := CreateMove(SqE2, SqE4, WP, PieceNone, MoveFlags{DoublePush: true})
	l.Add(m)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, m, l.At(0))
	assert.Equal(t, int32(0), l.Score(0))
}

func TestMoveListClear(t *testing.T) {
	var l MoveList
	l.Add(CreateMove(SqE2, SqE4, WP, PieceNone, MoveFlags{}))
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestMoveListSortIsDescendingByScore(t *testing.T) {
	var l MoveList
	a := CreateMove(SqA2, SqA3, WP, PieceNone, MoveFlags{})
	b := CreateMove(SqB2, SqB3, WP, PieceNone, MoveFlags{})
	c := CreateMove(SqC2, SqC3, WP, PieceNone, MoveFlags{})
	l.Add(a)
	l.Add(b)
	l.Add(c)
	l.SetScore(0, 10)
	l.SetScore(1, 30)
	l.SetScore(2, 20)

	l.Sort()

	assert.Equal(t, b, l.At(0))
	assert.Equal(t, c, l.At(1))
	assert.Equal(t, a, l.At(2))
}

func TestMoveListSortIsStableForEqualScores(t *testing.T) {
	var l MoveList
	a := CreateMove(SqA2, SqA3, WP, PieceNone, MoveFlags{})
	b := CreateMove(SqB2, SqB3, WP, PieceNone, MoveFlags{})
	l.Add(a)
	l.Add(b)
	l.SetScore(0, 5)
	l.SetScore(1, 5)

	l.Sort()

	assert.Equal(t, a, l.At(0))
	assert.Equal(t, b, l.At(1))
}

func TestMoveListSwap(t *testing.T) {
	var l MoveList
	a := CreateMove(SqA2, SqA3, WP, PieceNone, MoveFlags{})
	b := CreateMove(SqB2, SqB3, WP, PieceNone, MoveFlags{})
	l.Add(a)
	l.Add(b)
	l.Swap(0, 1)
	assert.Equal(t, b, l.At(0))
	assert.Equal(t, a, l.At(1))
}

func TestMoveListUciString(t *testing.T) {
	var l MoveList
	l.Add(CreateMove(SqE2, SqE4, WP, PieceNone, MoveFlags{DoublePush: true}))
	l.Add(CreateMove(SqE7, SqE5, BP, PieceNone, MoveFlags{DoublePush: true}))
	assert.Equal(t, "e2e4 e7e5", l.UciString())
}
