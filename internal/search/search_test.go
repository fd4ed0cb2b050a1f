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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/types"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Qg7 is mate, queen supported by the king.
	p, err := position.NewFromFEN("6k1/8/5QK1/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	s.StartSearch(p, Limits{Depth: 4})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.True(t, result.BestValue.IsMateScore())
	assert.NotEqual(t, types.MoveNone, result.BestMove)
}

func TestSearchStalemateScoresAsDraw(t *testing.T) {
	p, err := position.NewFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	s.StartSearch(p, Limits{Depth: 2})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.Equal(t, types.ValueZero, result.BestValue)
}

func TestSearchRespectsDepthLimit(t *testing.T) {
	p := position.New()
	s := NewSearch()
	s.StartSearch(p, Limits{Depth: 3})
	s.WaitWhileSearching()

	result := s.LastResult()
	assert.LessOrEqual(t, result.SearchDepth, 3)
	assert.NotEqual(t, types.MoveNone, result.BestMove)
}

func TestStopSearchHaltsAnInfiniteSearch(t *testing.T) {
	p := position.New()
	s := NewSearch()
	s.StartSearch(p, Limits{Infinite: true})
	assert.True(t, s.IsSearching())
	s.StopSearch()
	assert.False(t, s.IsSearching())
}
