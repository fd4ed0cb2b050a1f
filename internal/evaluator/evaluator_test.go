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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/branchmate/internal/position"
)

func TestStartPositionIsBalanced(t *testing.T) {
	pos := position.New()
	assert.EqualValues(t, 0, Evaluate(&pos))
}

func TestMaterialAdvantageIsDetected(t *testing.T) {
	assert := assert.New(t)
	// White is up a whole queen.
	pos, err := position.NewFromFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	assert.NoError(err)
	score := Evaluate(&pos)
	assert.Greater(int(score), 800)
}

func TestScoreIsFromSideToMovePerspective(t *testing.T) {
	assert := assert.New(t)
	whiteToMove, err := position.NewFromFEN("4k3/8/8/8/8/8/8/4K2Q w - - 0 1")
	assert.NoError(err)
	blackToMove, err := position.NewFromFEN("4k3/8/8/8/8/8/8/4K2Q b - - 0 1")
	assert.NoError(err)
	assert.Equal(Evaluate(&whiteToMove), -Evaluate(&blackToMove))
}
