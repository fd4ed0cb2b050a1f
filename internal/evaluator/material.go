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

import "github.com/frankkopp/branchmate/internal/types"

// openingValue and endgameValue hold the material value of one piece
// of each type, indexed by types.PieceType. Pawn and king use the
// same value in both phases; the other four pieces differ slightly,
// matching the asymmetry real engines tune in (e.g. rooks gain value
// in the endgame relative to minor pieces).
var openingValue = [6]types.Value{100, 320, 330, 500, 900, 0}
var endgameValue = [6]types.Value{100, 300, 320, 530, 940, 0}

// psqTable holds, for one piece type, the opening and endgame
// piece-square values indexed directly by types.Square (a8 = index 0).
// Tables are expressed from White's perspective; Black looks up the
// vertically mirrored square sq^56.
type psqTable struct {
	opening, endgame [64]types.Value
}

var psq = [6]psqTable{
	Pawn:   {pawnOpening, pawnEndgame},
	Knight: {knightOpening, knightEndgame},
	Bishop: {bishopOpening, bishopEndgame},
	Rook:   {rookOpening, rookEndgame},
	Queen:  {queenOpening, queenEndgame},
	King:   {kingOpening, kingEndgame},
}

// Aliases so the table literals below read naturally as a piece-type
// indexed composite literal.
const (
	Pawn   = types.Pawn
	Knight = types.Knight
	Bishop = types.Bishop
	Rook   = types.Rook
	Queen  = types.Queen
	King   = types.King
)

// gamePhaseValue weighs each piece type's contribution to the game
// phase score; pawns and kings never count. Mirrors the opening
// material values so the phase score lands on the same scale as
// openingPhase/endgamePhase in evaluator.go.
var gamePhaseValue = [6]int{0, int(openingValue[Knight]), int(openingValue[Bishop]), int(openingValue[Rook]), int(openingValue[Queen]), 0}

// Tables below are laid out rank 8 first, rank 1 last, a-file to
// h-file - i.e. index 0 is a8, matching types.Square directly.

var pawnOpening = [64]types.Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 5, 5, 5, 5, 5, 5, 0,
	5, 5, 10, 30, 30, 10, 5, 5,
	0, 0, 0, 30, 30, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -30, -30, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnEndgame = [64]types.Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	90, 90, 90, 90, 90, 90, 90, 90,
	40, 50, 50, 60, 60, 50, 50, 40,
	20, 30, 30, 40, 40, 30, 30, 20,
	10, 10, 20, 20, 20, 10, 10, 10,
	5, 10, 10, 10, 10, 10, 10, 5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightOpening = [64]types.Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -25, -20, -30, -30, -20, -25, -50,
}

var knightEndgame = [64]types.Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -20, -30, -30, -20, -40, -50,
}

var bishopOpening = [64]types.Value{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -40, -10, -10, -40, -10, -20,
}

var bishopEndgame = [64]types.Value{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookOpening = [64]types.Value{
	5, 5, 5, 5, 5, 5, 5, 5,
	10, 10, 10, 10, 10, 10, 10, 10,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	-15, -10, 15, 15, 15, 15, -10, -15,
}

var rookEndgame = [64]types.Value{
	5, 5, 5, 5, 5, 5, 5, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenOpening = [64]types.Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-5, 0, 2, 2, 2, 2, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var queenEndgame = [64]types.Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingOpening = [64]types.Value{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -30, -30, -30, -20, -10,
	0, 0, -20, -20, -20, -20, 0, 0,
	20, 50, 0, -20, -20, 0, 50, 20,
}

var kingEndgame = [64]types.Value{
	-50, -30, -30, -20, -20, -30, -30, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// pieceSquareValue returns (opening, endgame) piece-square values for
// a piece of the given type and side standing on sq.
func pieceSquareValue(side types.Side, pt types.PieceType, sq types.Square) (types.Value, types.Value) {
	idx := sq
	if side == types.Black {
		idx = types.Square(uint8(sq) ^ 56)
	}
	t := &psq[pt]
	return t.opening[idx], t.endgame[idx]
}
