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

import "strings"

// MaxMoveListLength bounds the number of moves the generator can ever
// produce for a single position.
const MaxMoveListLength = 256

// MoveList is a fixed-capacity, non-allocating list of moves together
// with a parallel sort-key array used by move ordering. The generator
// writes into a caller-provided MoveList and never allocates.
type MoveList struct {
	moves  [MaxMoveListLength]Move
	scores [MaxMoveListLength]int32
	n      int
}

// Clear empties the list without releasing its backing array.
func (l *MoveList) Clear() {
	l.n = 0
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return l.n
}

// Add appends a move with sort-key 0.
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.scores[l.n] = 0
	l.n++
}

// At returns the move at index i.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Score returns the sort key of the move at index i.
func (l *MoveList) Score(i int) int32 {
	return l.scores[i]
}

// SetScore sets the sort key used by Sort for the move at index i.
func (l *MoveList) SetScore(i int, score int32) {
	l.scores[i] = score
}

// Sort orders the list by descending score, stable so that moves with
// equal scores keep their generation order. Uses an in-place insertion
// sort rather than sort.Stable: the list is small (rarely more than a
// few dozen moves) and often already close to sorted from the previous
// iteration's ordering, which is exactly where insertion sort is
// cheapest, and it keeps Sort allocation-free.
func (l *MoveList) Sort() {
	for i := 1; i < l.n; i++ {
		move, score := l.moves[i], l.scores[i]
		j := i
		for j > 0 && l.scores[j-1] < score {
			l.moves[j] = l.moves[j-1]
			l.scores[j] = l.scores[j-1]
			j--
		}
		l.moves[j] = move
		l.scores[j] = score
	}
}

// Swap exchanges two moves (and their scores) at the given indices.
func (l *MoveList) Swap(i, j int) {
	l.moves[i], l.moves[j] = l.moves[j], l.moves[i]
	l.scores[i], l.scores[j] = l.scores[j], l.scores[i]
}

// UciString renders the whole list space-separated in UCI notation.
func (l *MoveList) UciString() string {
	var sb strings.Builder
	for i := 0; i < l.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.moves[i].UciString())
	}
	return sb.String()
}
