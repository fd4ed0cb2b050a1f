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

func TestIsMateScore(t *testing.T) {
	assert.True(t, ValueMate.IsMateScore())
	assert.True(t, (-ValueMate).IsMateScore())
	assert.True(t, (ValueMate - 3).IsMateScore())
	assert.False(t, Value(500).IsMateScore())
	assert.False(t, ValueZero.IsMateScore())
}

func TestMateIn(t *testing.T) {
	assert.Equal(t, 1, (ValueMate - 1).MateIn())
	assert.Equal(t, -1, (-ValueMate + 1).MateIn())
	assert.Equal(t, 2, (ValueMate - 3).MateIn())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "cp 150", Value(150).String())
	assert.Equal(t, "cp 0", ValueZero.String())
	assert.Equal(t, "mate 1", (ValueMate - 1).String())
}
