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

// Piece enumerates the 12 piece kinds: the six white pieces P, N, B, R,
// Q, K followed by the six black pieces p, n, b, r, q, k. The ordering
// is load-bearing: index >= 6 identifies a black piece, and piece-square
// tables are indexed directly by it.
type Piece uint8

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	PieceNone
)

// PieceLength is the number of real piece kinds.
const PieceLength = 12

// PieceType identifies a kind of piece irrespective of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeNone
)

var pieceChars = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

var pieceTypeChars = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// MakePiece builds a Piece from a side and a piece type.
func MakePiece(s Side, pt PieceType) Piece {
	return Piece(int(s)*6 + int(pt))
}

// Color reports which side the piece belongs to.
func (p Piece) Color() Side {
	if p >= BP {
		return Black
	}
	return White
}

// Type returns the piece kind irrespective of color.
func (p Piece) Type() PieceType {
	if p == PieceNone {
		return PieceTypeNone
	}
	return PieceType(int(p) % 6)
}

// IsValid reports whether p is one of the 12 real piece kinds.
func (p Piece) IsValid() bool {
	return p < PieceNone
}

// Char returns the single-letter FEN representation of the piece.
func (p Piece) Char() byte {
	if !p.IsValid() {
		return '-'
	}
	return pieceChars[p]
}

func (p Piece) String() string {
	return string(p.Char())
}

// Char returns the upper-case FEN letter for the piece type.
func (pt PieceType) Char() byte {
	if pt > King {
		return '-'
	}
	return pieceTypeChars[pt]
}

func (pt PieceType) String() string {
	return string(pt.Char())
}

// PieceFromChar parses a single FEN piece letter, returning PieceNone
// if it does not match any known piece.
func PieceFromChar(c byte) Piece {
	for i, ch := range pieceChars {
		if ch == c {
			return Piece(i)
		}
	}
	return PieceNone
}
