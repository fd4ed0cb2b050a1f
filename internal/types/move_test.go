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

func TestCreateMoveRoundTripsBasicFields(t *testing.T) {
	m := CreateMove(SqE2, SqE4, WP, PieceNone, MoveFlags{DoublePush: true})
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WP, m.Piece())
	assert.Equal(t, PieceNone, m.Promoted())
	assert.False(t, m.IsPromotion())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
	assert.True(t, m.IsQuiet())
}

func TestCreateMoveCapture(t *testing.T) {
	m := CreateMove(SqE4, SqD5, WP, PieceNone, MoveFlags{Capture: true})
	assert.True(t, m.IsCapture())
	assert.False(t, m.IsQuiet())
}

func TestCreateMovePromotion(t *testing.T) {
	m := CreateMove(SqE7, SqE8, WP, WQ, MoveFlags{})
	assert.True(t, m.IsPromotion())
	assert.Equal(t, WQ, m.Promoted())
	assert.Equal(t, "e7e8q", m.UciString())
}

func TestCreateMoveEnPassant(t *testing.T) {
	m := CreateMove(SqE5, SqD6, WP, PieceNone, MoveFlags{Capture: true, EnPassant: true})
	assert.True(t, m.IsCapture())
	assert.True(t, m.IsEnPassant())
}

func TestCreateMoveCastling(t *testing.T) {
	m := CreateMove(SqE1, SqG1, WK, PieceNone, MoveFlags{Castling: true})
	assert.True(t, m.IsCastling())
}

func TestMoveNoneDecodesToNothingMeaningful(t *testing.T) {
	assert.Equal(t, "0000", MoveNone.UciString())
}

func TestMoveUciString(t *testing.T) {
	m := CreateMove(SqE2, SqE4, WP, PieceNone, MoveFlags{DoublePush: true})
	assert.Equal(t, "e2e4", m.UciString())
	assert.Equal(t, "e2e4", m.String())
}
