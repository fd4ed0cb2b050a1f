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

package attacks

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/branchmate/internal/types"
)

func TestMain(m *testing.M) {
	Init()
	os.Exit(m.Run())
}

func TestPawnAttacksFromE4(t *testing.T) {
	att := GetPawnAttacks(types.White, types.SqE4)
	assert.True(t, att.Has(types.SqD5))
	assert.True(t, att.Has(types.SqF5))
	assert.Equal(t, 2, att.PopCount())
}

func TestPawnAttacksFromCorner(t *testing.T) {
	att := GetPawnAttacks(types.White, types.SqA4)
	assert.Equal(t, 1, att.PopCount())
	assert.True(t, att.Has(types.SqB5))
}

func TestKnightAttacksFromCorner(t *testing.T) {
	att := GetKnightAttacks(types.SqA1)
	assert.Equal(t, 2, att.PopCount())
	assert.True(t, att.Has(types.SqB3))
	assert.True(t, att.Has(types.SqC2))
}

func TestKnightAttacksFromCenter(t *testing.T) {
	att := GetKnightAttacks(types.SqE4)
	assert.Equal(t, 8, att.PopCount())
}

func TestKingAttacksFromCorner(t *testing.T) {
	att := GetKingAttacks(types.SqA1)
	assert.Equal(t, 3, att.PopCount())
}

func TestKingAttacksFromCenter(t *testing.T) {
	att := GetKingAttacks(types.SqE4)
	assert.Equal(t, 8, att.PopCount())
}

func TestRookAttacksOnEmptyBoard(t *testing.T) {
	att := GetRookAttacks(types.SqA1, types.Bitboard(0))
	assert.Equal(t, 14, att.PopCount())
}

func TestRookAttacksBlockedByOccupancy(t *testing.T) {
	occ := types.Bitboard(0).Set(types.SqA4)
	att := GetRookAttacks(types.SqA1, occ)
	assert.True(t, att.Has(types.SqA4))
	assert.False(t, att.Has(types.SqA5))
}

func TestBishopAttacksOnEmptyBoard(t *testing.T) {
	att := GetBishopAttacks(types.SqD4, types.Bitboard(0))
	assert.Equal(t, 13, att.PopCount())
}

func TestBishopAttacksBlockedByOccupancy(t *testing.T) {
	occ := types.Bitboard(0).Set(types.SqF6)
	att := GetBishopAttacks(types.SqD4, occ)
	assert.True(t, att.Has(types.SqF6))
	assert.False(t, att.Has(types.SqG7))
}

func TestQueenAttacksUnionsRookAndBishop(t *testing.T) {
	occ := types.Bitboard(0)
	rook := GetRookAttacks(types.SqD4, occ)
	bishop := GetBishopAttacks(types.SqD4, occ)
	assert.Equal(t, rook|bishop, GetQueenAttacks(types.SqD4, occ))
}
