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
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/branchmate/internal/types"
	"github.com/frankkopp/branchmate/internal/zobrist"
)

// NewFromFEN builds a Position from a FEN string. Only the piece
// placement field is mandatory; the remaining fields default to
// white to move, no castling rights, no en-passant square, a zero
// half-move clock and move number 1.
func NewFromFEN(fen string) (Position, error) {
	var p Position
	for i := range p.board {
		p.board[i] = types.PieceNone
	}

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		return p, fmt.Errorf("fen: empty string")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return p, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for rank, rankStr := range ranks {
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pc := types.PieceFromChar(byte(c))
				if pc == types.PieceNone {
					return p, fmt.Errorf("fen: invalid piece character %q", c)
				}
				if file > 7 {
					return p, fmt.Errorf("fen: rank %d overflows the board", rank+1)
				}
				p.put(pc, types.SquareOf(file, rank))
				file++
			}
		}
		if file != 8 {
			return p, fmt.Errorf("fen: rank %d does not cover 8 files", rank+1)
		}
	}
	p.recomputeOccupancy()

	p.side = types.White
	p.epSquare = types.SqNone
	p.halfMoveClock = 0
	p.fullMoveNumber = 1

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.side = types.White
		case "b":
			p.side = types.Black
			p.hash ^= zobrist.SideToMove
		default:
			return p, fmt.Errorf("fen: invalid side to move %q", fields[1])
		}
	}

	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling.Add(types.CastlingWhiteOO)
			case 'Q':
				p.castling.Add(types.CastlingWhiteOOO)
			case 'k':
				p.castling.Add(types.CastlingBlackOO)
			case 'q':
				p.castling.Add(types.CastlingBlackOOO)
			default:
				return p, fmt.Errorf("fen: invalid castling character %q", c)
			}
		}
	}
	p.hash ^= zobrist.Castling[p.castling]

	if len(fields) >= 4 && fields[3] != "-" {
		p.epSquare = types.ParseSquare(fields[3])
		if p.epSquare == types.SqNone {
			return p, fmt.Errorf("fen: invalid en-passant square %q", fields[3])
		}
		p.hash ^= zobrist.EnPassant[p.epSquare]
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return p, fmt.Errorf("fen: invalid half-move clock: %w", err)
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return p, fmt.Errorf("fen: invalid full-move number: %w", err)
		}
		p.fullMoveNumber = n
	}

	return p, nil
}

// FEN renders the position back into FEN notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board[types.SquareOf(file, rank)]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.side.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}
