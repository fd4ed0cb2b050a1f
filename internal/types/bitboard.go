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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set, one bit per square, using the same
// rank-major-from-the-top numbering as Square (bit 0 = a8).
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
)

// Bb returns a bitboard with just sq's bit set.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Set returns b with sq's bit set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with sq's bit cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least significant set bit, or SqNone if
// b is empty. Callers must not rely on a specific value when b is zero
// other than SqNone being returned defensively.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant square of b and clears it from
// the receiver in place.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone
	}
	*b &= *b - 1
	return sq
}

// File/rank masks. Files and ranks are named the conventional way; rank
// indices follow the square-numbering direction (rank 8 is the top /
// low squares, rank 1 is the bottom / high squares).
const (
	FileABb Bitboard = 0x0101010101010101
	FileBBb          = FileABb << 1
	FileCBb          = FileABb << 2
	FileDBb          = FileABb << 3
	FileEBb          = FileABb << 4
	FileFBb          = FileABb << 5
	FileGBb          = FileABb << 6
	FileHBb          = FileABb << 7

	Rank8Bb Bitboard = 0xFF
	Rank7Bb          = Rank8Bb << (8 * 1)
	Rank6Bb          = Rank8Bb << (8 * 2)
	Rank5Bb          = Rank8Bb << (8 * 3)
	Rank4Bb          = Rank8Bb << (8 * 4)
	Rank3Bb          = Rank8Bb << (8 * 5)
	Rank2Bb          = Rank8Bb << (8 * 6)
	Rank1Bb          = Rank8Bb << (8 * 7)

	NotAFile  Bitboard = ^FileABb
	NotHFile  Bitboard = ^FileHBb
	NotABFile Bitboard = ^(FileABb | FileBBb)
	NotGHFile Bitboard = ^(FileGBb | FileHBb)
)

var fileBbs = [8]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBbs = [8]Bitboard{Rank8Bb, Rank7Bb, Rank6Bb, Rank5Bb, Rank4Bb, Rank3Bb, Rank2Bb, Rank1Bb}

// FileBb returns the bitboard of the given file index (0=a .. 7=h).
func FileBb(file int) Bitboard { return fileBbs[file] }

// RankBb returns the bitboard of the given top-down rank index
// (0 = rank 8 .. 7 = rank 1).
func RankBb(rank int) Bitboard { return rankBbs[rank] }

// String renders the bitboard as an 8x8 grid, rank 8 at the top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := SquareOf(file, rank)
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
