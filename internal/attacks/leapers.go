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

package attacks

import "github.com/frankkopp/branchmate/internal/types"

// pawnAttacks, knightAttacks and kingAttacks are pseudo-attack tables for
// the non-sliding pieces, indexed by square (and by side for pawns since
// pawn attacks are directional).
var (
	pawnAttacks   [types.SideLength][types.SquareLength]types.Bitboard
	knightAttacks [types.SquareLength]types.Bitboard
	kingAttacks   [types.SquareLength]types.Bitboard
)

func maskPawnAttacks(side types.Side, sq types.Square) types.Bitboard {
	bb := sq.Bb()
	var attacks types.Bitboard
	if side == types.White {
		if bb>>7&types.NotAFile != 0 {
			attacks |= bb >> 7
		}
		if bb>>9&types.NotHFile != 0 {
			attacks |= bb >> 9
		}
	} else {
		if bb<<7&types.NotHFile != 0 {
			attacks |= bb << 7
		}
		if bb<<9&types.NotAFile != 0 {
			attacks |= bb << 9
		}
	}
	return attacks
}

func maskKnightAttacks(sq types.Square) types.Bitboard {
	bb := sq.Bb()
	var attacks types.Bitboard
	if bb>>17&types.NotHFile != 0 {
		attacks |= bb >> 17
	}
	if bb>>15&types.NotAFile != 0 {
		attacks |= bb >> 15
	}
	if bb>>10&types.NotGHFile != 0 {
		attacks |= bb >> 10
	}
	if bb>>6&types.NotABFile != 0 {
		attacks |= bb >> 6
	}
	if bb<<17&types.NotAFile != 0 {
		attacks |= bb << 17
	}
	if bb<<15&types.NotHFile != 0 {
		attacks |= bb << 15
	}
	if bb<<10&types.NotABFile != 0 {
		attacks |= bb << 10
	}
	if bb<<6&types.NotGHFile != 0 {
		attacks |= bb << 6
	}
	return attacks
}

func maskKingAttacks(sq types.Square) types.Bitboard {
	bb := sq.Bb()
	var attacks types.Bitboard
	if bb>>1&types.NotHFile != 0 {
		attacks |= bb >> 1
	}
	if bb>>7&types.NotAFile != 0 {
		attacks |= bb >> 7
	}
	if bb>>8 != 0 {
		attacks |= bb >> 8
	}
	if bb>>9&types.NotHFile != 0 {
		attacks |= bb >> 9
	}
	if bb<<1&types.NotAFile != 0 {
		attacks |= bb << 1
	}
	if bb<<7&types.NotHFile != 0 {
		attacks |= bb << 7
	}
	if bb<<8 != 0 {
		attacks |= bb << 8
	}
	if bb<<9&types.NotAFile != 0 {
		attacks |= bb << 9
	}
	return attacks
}

func initLeapers() {
	for sq := types.Square(0); sq < types.SquareLength; sq++ {
		pawnAttacks[types.White][sq] = maskPawnAttacks(types.White, sq)
		pawnAttacks[types.Black][sq] = maskPawnAttacks(types.Black, sq)
		knightAttacks[sq] = maskKnightAttacks(sq)
		kingAttacks[sq] = maskKingAttacks(sq)
	}
}

// GetPawnAttacks returns the squares a pawn of the given side attacks from sq.
func GetPawnAttacks(side types.Side, sq types.Square) types.Bitboard {
	return pawnAttacks[side][sq]
}

// GetKnightAttacks returns the knight attack set from sq.
func GetKnightAttacks(sq types.Square) types.Bitboard {
	return knightAttacks[sq]
}

// GetKingAttacks returns the king attack set from sq.
func GetKingAttacks(sq types.Square) types.Bitboard {
	return kingAttacks[sq]
}
