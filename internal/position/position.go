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

// Package position represents a chess position as bitboards plus a
// mailbox board, and implements make/unmake via value-copy
// snapshot-restore: a Position holds no pointers or slices, so an
// ordinary assignment is a complete, independent copy. The search
// driver takes a snapshot before attempting a move and restores it
// after the recursive call returns, rather than maintaining an undo
// log.
package position

import (
	"strings"

	"github.com/frankkopp/branchmate/internal/attacks"
	"github.com/frankkopp/branchmate/internal/types"
	"github.com/frankkopp/branchmate/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Mode selects which moves DoMove will accept.
type Mode int

const (
	// AllMoves accepts any pseudo-legal move.
	AllMoves Mode = iota
	// CapturesOnly rejects every move without the capture flag, used by
	// quiescence search.
	CapturesOnly
)

// Position is the complete mutable state of a chess position. Every
// field is a value type (fixed array or scalar) so that Position
// itself is trivially copyable.
type Position struct {
	pieceBB [types.PieceLength]types.Bitboard
	occBB   [3]types.Bitboard // indexed by types.White, types.Black, types.Both
	board   [types.SquareLength]types.Piece

	side     types.Side
	epSquare types.Square
	castling types.CastlingRights
	hash     types.Key

	halfMoveClock  int
	fullMoveNumber int

	repetition    [types.MaxMoves]types.Key
	repetitionTop int
}

// New returns the standard starting position.
func New() Position {
	p, _ := NewFromFEN(StartFen)
	return p
}

// Clone returns an independent copy of p. Since Position holds no
// pointers or slices, this is just a value copy.
func (p Position) Clone() Position {
	return p
}

// Side returns the side to move.
func (p *Position) Side() types.Side { return p.side }

// Hash returns the current Zobrist key.
func (p *Position) Hash() types.Key { return p.hash }

// EnPassantSquare returns the en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() types.Square { return p.epSquare }

// Castling returns the current castling rights.
func (p *Position) Castling() types.CastlingRights { return p.castling }

// HalfMoveClock returns the half-move clock (50-move rule counter).
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// PieceOn returns the piece occupying sq, or types.PieceNone.
func (p *Position) PieceOn(sq types.Square) types.Piece { return p.board[sq] }

// PieceBB returns the bitboard of all pieces of kind pc.
func (p *Position) PieceBB(pc types.Piece) types.Bitboard { return p.pieceBB[pc] }

// Occupied returns the occupancy bitboard for the given side, or the
// union of both when side is types.Both.
func (p *Position) Occupied(side types.Side) types.Bitboard { return p.occBB[side] }

// KingSquare returns the square of side's king.
func (p *Position) KingSquare(side types.Side) types.Square {
	return p.pieceBB[types.MakePiece(side, types.King)].Lsb()
}

// PushRepetition records the current hash as having been reached,
// for later repetition-detection scans.
func (p *Position) PushRepetition() {
	p.repetition[p.repetitionTop] = p.hash
	p.repetitionTop++
}

// PopRepetition undoes the most recent PushRepetition.
func (p *Position) PopRepetition() {
	p.repetitionTop--
}

// IsRepetition reports whether the current hash occurs anywhere
// earlier in the recorded history (game history plus the current
// search line).
func (p *Position) IsRepetition() bool {
	for i := 0; i < p.repetitionTop; i++ {
		if p.repetition[i] == p.hash {
			return true
		}
	}
	return false
}

func (p *Position) put(pc types.Piece, sq types.Square) {
	p.board[sq] = pc
	p.pieceBB[pc] = p.pieceBB[pc].Set(sq)
	p.occBB[pc.Color()] = p.occBB[pc.Color()].Set(sq)
	p.hash ^= zobrist.PieceSquare[pc][sq]
}

func (p *Position) remove(sq types.Square) types.Piece {
	pc := p.board[sq]
	p.board[sq] = types.PieceNone
	p.pieceBB[pc] = p.pieceBB[pc].Clear(sq)
	p.occBB[pc.Color()] = p.occBB[pc.Color()].Clear(sq)
	p.hash ^= zobrist.PieceSquare[pc][sq]
	return pc
}

func (p *Position) recomputeOccupancy() {
	p.occBB[types.Both] = p.occBB[types.White] | p.occBB[types.Black]
}

// castleMask strips castling rights when the king or a rook moves
// from, or a rook is captured on, its home square. Applied at both
// the source and target square of every move.
var castleMask [types.SquareLength]types.CastlingRights

func init() {
	for i := range castleMask {
		castleMask[i] = types.CastlingAny
	}
	castleMask[types.SqE1] &= ^types.CastlingWhite
	castleMask[types.SqA1] &= ^types.CastlingWhiteOOO
	castleMask[types.SqH1] &= ^types.CastlingWhiteOO
	castleMask[types.SqE8] &= ^types.CastlingBlack
	castleMask[types.SqA8] &= ^types.CastlingBlackOOO
	castleMask[types.SqH8] &= ^types.CastlingBlackOO
}

var castleRookSquares = map[types.Square][2]types.Square{
	types.SqG1: {types.SqH1, types.SqF1},
	types.SqC1: {types.SqA1, types.SqD1},
	types.SqG8: {types.SqH8, types.SqF8},
	types.SqC8: {types.SqA8, types.SqD8},
}

// DoNullMove passes the turn without moving a piece, used by null-move
// pruning. It clears any en-passant square, the same as a real move
// would after one ply, and flips the side to move.
func (p *Position) DoNullMove() {
	if p.epSquare != types.SqNone {
		p.hash ^= zobrist.EnPassant[p.epSquare]
		p.epSquare = types.SqNone
	}
	p.side = p.side.Flip()
	p.hash ^= zobrist.SideToMove
}

// DoMove applies m to the live position following the steps of the
// mutation algorithm, then reports whether the move was legal (the
// moving side's king is not left in check). Illegal moves still
// mutate the position; the caller is responsible for restoring a
// snapshot taken before the call. In CapturesOnly mode a non-capture
// is rejected immediately without any mutation and DoMove reports
// false.
func (p *Position) DoMove(m types.Move, mode Mode) bool {
	if mode == CapturesOnly && !m.IsCapture() {
		return false
	}

	from, to := m.From(), m.To()
	piece := m.Piece()
	mover := piece.Color()
	isPawnMove := piece.Type() == types.Pawn

	// Regular (non en-passant) capture: the victim sits on the target
	// square and must be cleared before the mover lands there.
	if m.IsCapture() && !m.IsEnPassant() {
		p.remove(to)
	}

	p.remove(from)
	if m.IsPromotion() {
		p.put(m.Promoted(), to)
	} else {
		p.put(piece, to)
	}

	if m.IsEnPassant() {
		p.remove(epCaptureSquare(to, mover))
	}

	if p.epSquare != types.SqNone {
		p.hash ^= zobrist.EnPassant[p.epSquare]
		p.epSquare = types.SqNone
	}
	if m.IsDoublePush() {
		p.epSquare = doublePushTransitSquare(from, to)
		p.hash ^= zobrist.EnPassant[p.epSquare]
	}

	if m.IsCastling() {
		rookSquares := castleRookSquares[to]
		rook := p.remove(rookSquares[0])
		p.put(rook, rookSquares[1])
	}

	p.hash ^= zobrist.Castling[p.castling]
	p.castling &= castleMask[from] & castleMask[to]
	p.hash ^= zobrist.Castling[p.castling]

	p.recomputeOccupancy()

	p.side = p.side.Flip()
	p.hash ^= zobrist.SideToMove
	if p.side == types.White {
		p.fullMoveNumber++
	}

	if m.IsCapture() || isPawnMove {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	return !p.IsAttacked(p.KingSquare(mover), mover.Flip())
}

// epCaptureSquare returns the square of the pawn captured en passant,
// one square behind the target square from the mover's perspective.
func epCaptureSquare(to types.Square, mover types.Side) types.Square {
	if mover == types.White {
		return types.SquareOf(to.File(), to.Rank()+1)
	}
	return types.SquareOf(to.File(), to.Rank()-1)
}

// doublePushTransitSquare returns the square a pawn passed over on a
// double push, which becomes the new en-passant target.
func doublePushTransitSquare(from, to types.Square) types.Square {
	return types.SquareOf(from.File(), (from.Rank()+to.Rank())/2)
}

// IsAttacked reports whether sq is attacked by a piece of side by.
func (p *Position) IsAttacked(sq types.Square, by types.Side) bool {
	occ := p.occBB[types.Both]
	if attacks.GetPawnAttacks(by.Flip(), sq)&p.pieceBB[types.MakePiece(by, types.Pawn)] != 0 {
		return true
	}
	if attacks.GetKnightAttacks(sq)&p.pieceBB[types.MakePiece(by, types.Knight)] != 0 {
		return true
	}
	if attacks.GetKingAttacks(sq)&p.pieceBB[types.MakePiece(by, types.King)] != 0 {
		return true
	}
	if attacks.GetBishopAttacks(sq, occ)&(p.pieceBB[types.MakePiece(by, types.Bishop)]|p.pieceBB[types.MakePiece(by, types.Queen)]) != 0 {
		return true
	}
	if attacks.GetRookAttacks(sq, occ)&(p.pieceBB[types.MakePiece(by, types.Rook)]|p.pieceBB[types.MakePiece(by, types.Queen)]) != 0 {
		return true
	}
	return false
}

// HasCheck reports whether the side to move is in check.
func (p *Position) HasCheck() bool {
	return p.IsAttacked(p.KingSquare(p.side), p.side.Flip())
}

// String renders the FEN followed by an ASCII board diagram.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.FEN())
	sb.WriteString("\n")
	sb.WriteString(p.BoardString())
	return sb.String()
}

// BoardString renders an 8x8 ASCII board, rank 8 at the top, with file
// letters and castling/side/en-passant metadata below - modeled on
// the reference engine's board printer.
func (p *Position) BoardString() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		sb.WriteString("  +---+---+---+---+---+---+---+---+\n")
		sb.WriteString(string(rune('8' - rank)))
		sb.WriteString(" ")
		for file := 0; file < 8; file++ {
			pc := p.board[types.SquareOf(file, rank)]
			sb.WriteString("| ")
			if pc == types.PieceNone {
				sb.WriteString(" ")
			} else {
				sb.WriteByte(pc.Char())
			}
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +---+---+---+---+---+---+---+---+\n")
	sb.WriteString("    a   b   c   d   e   f   g   h\n\n")
	sb.WriteString("     Side:     ")
	sb.WriteString(p.side.String())
	sb.WriteString("\n     Castling: ")
	sb.WriteString(p.castling.String())
	sb.WriteString("\n     En-passant: ")
	sb.WriteString(p.epSquare.String())
	sb.WriteString("\n")
	return sb.String()
}
