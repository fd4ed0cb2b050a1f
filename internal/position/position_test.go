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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/branchmate/internal/movegen"
	"github.com/frankkopp/branchmate/internal/types"
)

func TestNewIsStandardStartingPosition(t *testing.T) {
	p := New()
	assert.Equal(t, types.White, p.Side())
	assert.Equal(t, types.SqNone, p.EnPassantSquare())
	assert.Equal(t, StartFen, p.FEN())
}

func TestNewFromFENRoundTrips(t *testing.T) {
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	p, err := NewFromFEN(fen)
	assert.NoError(t, err)
	assert.Equal(t, fen, p.FEN())
}

func TestNewFromFENRejectsGarbage(t *testing.T) {
	_, err := NewFromFEN("not a fen")
	assert.Error(t, err)
}

func findMove(pos *Position, uci string) types.Move {
	var moves types.MoveList
	movegen.Generate(pos, &moves)
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).UciString() == uci {
			return moves.At(i)
		}
	}
	return types.MoveNone
}

func TestDoMoveThenRestoreIsARoundTrip(t *testing.T) {
	p := New()
	before := p.FEN()

	m := findMove(&p, "e2e4")
	assert.NotEqual(t, types.MoveNone, m)

	snapshot := p.Clone()
	legal := p.DoMove(m, AllMoves)
	assert.True(t, legal)
	assert.NotEqual(t, before, p.FEN())
	assert.Equal(t, types.Black, p.Side())

	p = snapshot
	assert.Equal(t, before, p.FEN())
}

func TestDoMoveSetsEnPassantSquareOnDoublePush(t *testing.T) {
	p := New()
	m := findMove(&p, "e2e4")
	p.DoMove(m, AllMoves)
	assert.Equal(t, types.SqE3, p.EnPassantSquare())
}

func TestDoMoveLeavingOwnKingInCheckIsIllegal(t *testing.T) {
	p, err := NewFromFEN("rnbqkbnr/pppp1ppp/8/4p3/7Q/8/PPPPPPPP/RNB1KBNR b KQkq - 1 2")
	assert.NoError(t, err)

	m := findMove(&p, "e8e7")
	assert.NotEqual(t, types.MoveNone, m)
	assert.False(t, p.DoMove(m, AllMoves))
}

func TestDoMoveCapturesOnlyRejectsQuietMoves(t *testing.T) {
	p := New()
	m := findMove(&p, "e2e4")
	assert.False(t, p.DoMove(m, CapturesOnly))
}

func TestDoNullMoveFlipsSideAndClearsEnPassant(t *testing.T) {
	p := New()
	m := findMove(&p, "e2e4")
	p.DoMove(m, AllMoves)
	assert.Equal(t, types.SqE3, p.EnPassantSquare())

	hashBefore := p.Hash()
	p.DoNullMove()
	assert.Equal(t, types.White, p.Side())
	assert.Equal(t, types.SqNone, p.EnPassantSquare())
	assert.NotEqual(t, hashBefore, p.Hash())
}

func TestRepetitionDetection(t *testing.T) {
	p := New()

	p.PushRepetition()
	p.DoMove(findMove(&p, "g1f3"), AllMoves)
	assert.False(t, p.IsRepetition())

	p.PushRepetition()
	p.DoMove(findMove(&p, "b8c6"), AllMoves)
	assert.False(t, p.IsRepetition())

	p.PushRepetition()
	p.DoMove(findMove(&p, "f3g1"), AllMoves)
	assert.False(t, p.IsRepetition())

	p.PushRepetition()
	p.DoMove(findMove(&p, "c6b8"), AllMoves)
	assert.True(t, p.IsRepetition())
}

func TestHasCheckDetectsCheck(t *testing.T) {
	p, err := NewFromFEN("4k3/8/8/8/8/8/4q3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.HasCheck())
}

func TestKingSquare(t *testing.T) {
	p := New()
	assert.Equal(t, types.SqE1, p.KingSquare(types.White))
	assert.Equal(t, types.SqE8, p.KingSquare(types.Black))
}
