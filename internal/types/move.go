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

// Move is a 24-bit packed move encoding. Bit layout, low bits first:
//
//	bits 0-5   source square
//	bits 6-11  target square
//	bits 12-15 moving piece
//	bits 16-19 promoted piece (0 = none)
//	bit  20    capture flag
//	bit  21    double pawn push flag
//	bit  22    en-passant capture flag
//	bit  23    castling flag
//
// Move is an opaque value; callers only ever go through the accessors
// below or CreateMove. MoveNone (0) never decodes to a valid move since
// source == target == a8.
type Move uint32

const (
	MoveNone Move = 0

	sourceShift    = 0
	targetShift    = 6
	pieceShift     = 12
	promotedShift  = 16
	captureBit     = 1 << 20
	doublePushBit  = 1 << 21
	enPassantBit   = 1 << 22
	castlingBit    = 1 << 23
	squareMask     = 0x3F
	pieceFieldMask = 0xF
)

// MoveFlags bundles the boolean flags of a move for CreateMove.
type MoveFlags struct {
	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castling   bool
}

// CreateMove packs a move. promoted should be PieceNone (or any value
// whose low 4 bits are 0, conventionally PieceNone) when there is no
// promotion.
func CreateMove(from, to Square, piece Piece, promoted Piece, flags MoveFlags) Move {
	m := Move(from)<<sourceShift |
		Move(to)<<targetShift |
		Move(piece&pieceFieldMask)<<pieceShift
	if promoted != PieceNone {
		m |= Move(promoted&pieceFieldMask) << promotedShift
	}
	if flags.Capture {
		m |= captureBit
	}
	if flags.DoublePush {
		m |= doublePushBit
	}
	if flags.EnPassant {
		m |= enPassantBit
	}
	if flags.Castling {
		m |= castlingBit
	}
	return m
}

// From returns the source square.
func (m Move) From() Square { return Square((m >> sourceShift) & squareMask) }

// To returns the target square.
func (m Move) To() Square { return Square((m >> targetShift) & squareMask) }

// Piece returns the moving piece.
func (m Move) Piece() Piece { return Piece((m >> pieceShift) & pieceFieldMask) }

// Promoted returns the promotion piece, or PieceNone if this move is
// not a promotion.
func (m Move) Promoted() Piece {
	p := Piece((m >> promotedShift) & pieceFieldMask)
	if p == 0 {
		return PieceNone
	}
	return p
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promoted() != PieceNone }

// IsCapture reports the capture flag (set for en-passant captures too).
func (m Move) IsCapture() bool { return m&captureBit != 0 }

// IsDoublePush reports the double pawn push flag.
func (m Move) IsDoublePush() bool { return m&doublePushBit != 0 }

// IsEnPassant reports the en-passant capture flag.
func (m Move) IsEnPassant() bool { return m&enPassantBit != 0 }

// IsCastling reports the castling flag.
func (m Move) IsCastling() bool { return m&castlingBit != 0 }

// IsQuiet reports whether the move is neither a capture nor a
// promotion - used by late move reductions and the history heuristic.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// UciString renders the move the way the UCI protocol expects:
// source square + target square + an optional lower case promotion
// letter, e.g. "e2e4" or "e7e8q".
func (m Move) UciString() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteByte(lower(m.Promoted().Char()))
	}
	return sb.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (m Move) String() string {
	return m.UciString()
}
