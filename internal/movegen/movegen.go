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

// Package movegen enumerates pseudo-legal moves for a position: moves
// that obey piece movement rules and board boundaries but may leave
// the mover's king in check. Legality is established by attempting the
// move with position.DoMove and checking its return value.
package movegen

import (
	"github.com/frankkopp/branchmate/internal/attacks"
	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/types"
)

var promotionPieces = [types.SideLength][4]types.PieceType{
	{types.Queen, types.Rook, types.Bishop, types.Knight},
	{types.Queen, types.Rook, types.Bishop, types.Knight},
}

// Generate writes every pseudo-legal move for the side to move in pos
// into list. list is cleared first. Generate never allocates.
func Generate(pos *position.Position, list *types.MoveList) {
	list.Clear()
	side := pos.Side()
	generatePawnMoves(pos, side, list)
	generateLeaperMoves(pos, side, types.Knight, attacks.GetKnightAttacks, list)
	generateLeaperMoves(pos, side, types.King, attacks.GetKingAttacks, list)
	generateSliderMoves(pos, side, types.Bishop, list)
	generateSliderMoves(pos, side, types.Rook, list)
	generateSliderMoves(pos, side, types.Queen, list)
	generateCastling(pos, side, list)
}

func addQuietOrCapture(list *types.MoveList, from, to types.Square, piece types.Piece, enemyOcc types.Bitboard) {
	capture := enemyOcc.Has(to)
	list.Add(types.CreateMove(from, to, piece, types.PieceNone, types.MoveFlags{Capture: capture}))
}

func generateLeaperMoves(pos *position.Position, side types.Side, pt types.PieceType, attackFn func(types.Square) types.Bitboard, list *types.MoveList) {
	piece := types.MakePiece(side, pt)
	ownOcc := pos.Occupied(side)
	enemyOcc := pos.Occupied(side.Flip())
	bb := pos.PieceBB(piece)
	for bb != types.BbZero {
		from := bb.PopLsb()
		targets := attackFn(from) &^ ownOcc
		for targets != types.BbZero {
			to := targets.PopLsb()
			addQuietOrCapture(list, from, to, piece, enemyOcc)
		}
	}
}

func generateSliderMoves(pos *position.Position, side types.Side, pt types.PieceType, list *types.MoveList) {
	piece := types.MakePiece(side, pt)
	ownOcc := pos.Occupied(side)
	enemyOcc := pos.Occupied(side.Flip())
	occAll := pos.Occupied(types.Both)
	bb := pos.PieceBB(piece)
	for bb != types.BbZero {
		from := bb.PopLsb()
		var targets types.Bitboard
		switch pt {
		case types.Bishop:
			targets = attacks.GetBishopAttacks(from, occAll)
		case types.Rook:
			targets = attacks.GetRookAttacks(from, occAll)
		case types.Queen:
			targets = attacks.GetQueenAttacks(from, occAll)
		}
		targets &^= ownOcc
		for targets != types.BbZero {
			to := targets.PopLsb()
			addQuietOrCapture(list, from, to, piece, enemyOcc)
		}
	}
}

func generatePawnMoves(pos *position.Position, side types.Side, list *types.MoveList) {
	piece := types.MakePiece(side, types.Pawn)
	pawns := pos.PieceBB(piece)
	occAll := pos.Occupied(types.Both)
	enemyOcc := pos.Occupied(side.Flip())

	var pushDir, doublePushRank, lastRank int
	if side == types.White {
		pushDir, doublePushRank, lastRank = -1, 6, 0
	} else {
		pushDir, doublePushRank, lastRank = 1, 1, 7
	}

	for bb := pawns; bb != types.BbZero; {
		from := bb.PopLsb()
		file, rank := from.File(), from.Rank()

		to1 := types.SquareOf(file, rank+pushDir)
		if to1 != types.SqNone && !occAll.Has(to1) {
			addPawnMove(list, from, to1, piece, side, lastRank, false, false, false)
			if rank == doublePushRank {
				to2 := types.SquareOf(file, rank+2*pushDir)
				if to2 != types.SqNone && !occAll.Has(to2) {
					list.Add(types.CreateMove(from, to2, piece, types.PieceNone, types.MoveFlags{DoublePush: true}))
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			tf := file + df
			if tf < 0 || tf > 7 {
				continue
			}
			to := types.SquareOf(tf, rank+pushDir)
			if to == types.SqNone {
				continue
			}
			if enemyOcc.Has(to) {
				addPawnMove(list, from, to, piece, side, lastRank, true, false, false)
			} else if to == pos.EnPassantSquare() {
				list.Add(types.CreateMove(from, to, piece, types.PieceNone, types.MoveFlags{Capture: true, EnPassant: true}))
			}
		}
	}
}

func addPawnMove(list *types.MoveList, from, to types.Square, piece types.Piece, side types.Side, lastRank int, capture, doublePush, enPassant bool) {
	if to.Rank() == lastRank {
		for _, pt := range promotionPieces[side] {
			promoted := types.MakePiece(side, pt)
			list.Add(types.CreateMove(from, to, piece, promoted, types.MoveFlags{Capture: capture}))
		}
		return
	}
	list.Add(types.CreateMove(from, to, piece, types.PieceNone, types.MoveFlags{Capture: capture, DoublePush: doublePush, EnPassant: enPassant}))
}

// castlingSpec describes one of the four castling moves: the right
// required, the squares that must be empty between king and rook, and
// the king's start and transit squares, which must not be attacked
// (the destination square's safety is left to DoMove's legality check).
type castlingSpec struct {
	right            types.CastlingRights
	kingFrom, kingTo types.Square
	empty            types.Bitboard
	kingPath         [2]types.Square
}

var castlingSpecs = [4]castlingSpec{
	{types.CastlingWhiteOO, types.SqE1, types.SqG1, types.SqF1.Bb() | types.SqG1.Bb(), [2]types.Square{types.SqE1, types.SqF1}},
	{types.CastlingWhiteOOO, types.SqE1, types.SqC1, types.SqD1.Bb() | types.SqC1.Bb() | types.SqB1.Bb(), [2]types.Square{types.SqE1, types.SqD1}},
	{types.CastlingBlackOO, types.SqE8, types.SqG8, types.SqF8.Bb() | types.SqG8.Bb(), [2]types.Square{types.SqE8, types.SqF8}},
	{types.CastlingBlackOOO, types.SqE8, types.SqC8, types.SqD8.Bb() | types.SqC8.Bb() | types.SqB8.Bb(), [2]types.Square{types.SqE8, types.SqD8}},
}

func generateCastling(pos *position.Position, side types.Side, list *types.MoveList) {
	occAll := pos.Occupied(types.Both)
	enemy := side.Flip()
	king := types.MakePiece(side, types.King)
	lo, hi := 0, 2
	if side == types.Black {
		lo, hi = 2, 4
	}
	for _, spec := range castlingSpecs[lo:hi] {
		if !pos.Castling().Has(spec.right) {
			continue
		}
		if occAll&spec.empty != 0 {
			continue
		}
		if pos.IsAttacked(spec.kingPath[0], enemy) || pos.IsAttacked(spec.kingPath[1], enemy) {
			continue
		}
		list.Add(types.CreateMove(spec.kingFrom, spec.kingTo, king, types.PieceNone, types.MoveFlags{Castling: true}))
	}
}
