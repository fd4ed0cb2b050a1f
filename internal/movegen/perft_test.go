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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/branchmate/internal/position"
)

// Reference counts from https://www.chessprogramming.org/Perft_Results.

func TestPerftStartPosition(t *testing.T) {
	assert := assert.New(t)
	expected := []uint64{1, 20, 400, 8_902, 197_281}
	for depth, want := range expected {
		if depth == 0 {
			continue
		}
		var perft Perft
		pos, err := position.NewFromFEN(position.StartFen)
		assert.NoError(err)
		nodes := perft.search(&pos, depth)
		assert.Equal(want, nodes, "perft(start, %d)", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	assert := assert.New(t)
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	expected := []uint64{1, 48, 2_039, 97_862}
	for depth, want := range expected {
		if depth == 0 {
			continue
		}
		var perft Perft
		pos, err := position.NewFromFEN(fen)
		assert.NoError(err)
		nodes := perft.search(&pos, depth)
		assert.Equal(want, nodes, "perft(kiwipete, %d)", depth)
	}
}

func TestPerftEndgame(t *testing.T) {
	assert := assert.New(t)
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	expected := []uint64{1, 14, 191, 2_812, 43_238}
	for depth, want := range expected {
		if depth == 0 {
			continue
		}
		var perft Perft
		pos, err := position.NewFromFEN(fen)
		assert.NoError(err)
		nodes := perft.search(&pos, depth)
		assert.Equal(want, nodes, "perft(endgame, %d)", depth)
	}
}
