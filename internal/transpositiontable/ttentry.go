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

package transpositiontable

import "github.com/frankkopp/branchmate/internal/types"

// Flag classifies how the stored score relates to the window it was
// produced with.
type Flag uint8

const (
	// FlagNone marks an empty or otherwise unusable slot.
	FlagNone Flag = iota
	// FlagExact marks a score that is the true minimax value.
	FlagExact
	// FlagAlpha marks a fail-low score, an upper bound on the true value.
	FlagAlpha
	// FlagBeta marks a fail-high score, a lower bound on the true value.
	FlagBeta
)

// Entry is one transposition table slot: the position's hash key, the
// remaining depth the score was searched to, how the score bounds the
// true value, and the score itself. Mate scores are stored
// distance-from-root independent; see Table.Put and Table.Probe.
type Entry struct {
	Key   types.Key
	Depth int8
	Flag  Flag
	Score types.Value
}

// empty reports whether e has never been written, or was cleared.
func (e Entry) empty() bool {
	return e.Flag == FlagNone
}
