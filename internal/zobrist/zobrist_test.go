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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/branchmate/internal/types"
)

func TestKeysAreDeterministic(t *testing.T) {
	assert.NotEqual(t, types.Key(0), PieceSquare[types.WP][types.SqE4])
	assert.NotEqual(t, types.Key(0), SideToMove)
	r := &prng{state: seed}
	assert.Equal(t, types.Key(r.next64()), PieceSquare[types.WP][types.SqA8])
}

func TestKeysAreDistinctPerPieceAndSquare(t *testing.T) {
	assert.NotEqual(t, PieceSquare[types.WP][types.SqE4], PieceSquare[types.WP][types.SqE5])
	assert.NotEqual(t, PieceSquare[types.WP][types.SqE4], PieceSquare[types.BP][types.SqE4])
}

func TestEnPassantKeysAreDistinctPerSquare(t *testing.T) {
	assert.NotEqual(t, EnPassant[types.SqE3], EnPassant[types.SqE6])
}

func TestCastlingKeysAreDistinctPerRightsPattern(t *testing.T) {
	seen := make(map[types.Key]bool)
	for cr := types.CastlingRights(0); cr < types.CastlingLength; cr++ {
		assert.False(t, seen[Castling[cr]], "duplicate castling key for rights pattern %d", cr)
		seen[Castling[cr]] = true
	}
}
