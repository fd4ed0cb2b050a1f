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

// Package zobrist holds the random key tables used to incrementally hash
// a position. It has no function that computes a full hash from scratch;
// the position package builds and updates the hash from these keys. Keys
// are drawn once, at package init, from a fixed seed: determinism here
// is required for transposition-table correctness across runs of the
// same game.
package zobrist

import "github.com/frankkopp/branchmate/internal/types"

var (
	// PieceSquare holds one key per (piece, square) pair.
	PieceSquare [types.PieceLength][types.SquareLength]types.Key

	// EnPassant holds one key per square, indexed by the en-passant
	// target square when one is set.
	EnPassant [types.SquareLength]types.Key

	// Castling holds one key per castling-rights bit pattern.
	Castling [types.CastlingLength]types.Key

	// SideToMove is XORed into the hash whenever it is black's move.
	SideToMove types.Key
)

// seed matches the fixed-seed xorshift PRNG used throughout this module
// wherever the spec calls for deterministic randomness.
const seed = 1804289383

type prng struct {
	state uint32
}

func (r *prng) next32() uint32 {
	n := r.state
	n ^= n << 13
	n ^= n >> 17
	n ^= n << 5
	r.state = n
	return n
}

func (r *prng) next64() uint64 {
	n1 := uint64(r.next32()) & 0xFFFF
	n2 := uint64(r.next32()) & 0xFFFF
	n3 := uint64(r.next32()) & 0xFFFF
	n4 := uint64(r.next32()) & 0xFFFF
	return n1 | (n2 << 16) | (n3 << 32) | (n4 << 48)
}

func init() {
	r := &prng{state: seed}
	for pc := types.Piece(0); pc < types.PieceLength; pc++ {
		for sq := types.Square(0); sq < types.SquareLength; sq++ {
			PieceSquare[pc][sq] = types.Key(r.next64())
		}
	}
	for sq := types.Square(0); sq < types.SquareLength; sq++ {
		EnPassant[sq] = types.Key(r.next64())
	}
	for cr := types.CastlingRights(0); cr < types.CastlingLength; cr++ {
		Castling[cr] = types.Key(r.next64())
	}
	SideToMove = types.Key(r.next64())
}
