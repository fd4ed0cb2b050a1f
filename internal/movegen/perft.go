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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft counts leaf nodes of the full legal game tree to a fixed depth,
// used to validate the move generator and make/unmake against known
// reference values. Since Position is a value type, recursion takes a
// snapshot before trying each move and restores the position from it
// afterwards instead of calling an explicit undo.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running perft (e.g. started in a goroutine)
// abandon its search at the next opportunity.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs StartPerft once for every depth in
// [startDepth, endDepth].
func (perft *Perft) StartPerftMulti(fen string, startDepth, endDepth int) {
	perft.stopFlag = false
	for d := startDepth; d <= endDepth; d++ {
		if perft.stopFlag {
			out.Print("perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, d)
	}
}

// StartPerft runs perft from fen to the given depth and prints a
// summary to stdout.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounters()

	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("perft: invalid FEN %q: %v\n", fen, err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	nodes := perft.search(&pos, depth)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("perft stopped\n")
		return
	}
	perft.Nodes = nodes

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) search(pos *position.Position, depth int) uint64 {
	if perft.stopFlag {
		return 0
	}
	var list types.MoveList
	Generate(pos, &list)

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		move := list.At(i)
		snapshot := pos.Clone()

		if depth == 1 {
			legal := pos.DoMove(move, position.AllMoves)
			if legal {
				nodes++
				perft.tallyLeaf(move, pos)
			}
		} else {
			legal := pos.DoMove(move, position.AllMoves)
			if legal {
				nodes += perft.search(pos, depth-1)
			}
		}
		*pos = snapshot
	}
	return nodes
}

func (perft *Perft) tallyLeaf(move types.Move, pos *position.Position) {
	if move.IsEnPassant() {
		perft.EnpassantCounter++
		perft.CaptureCounter++
	} else if move.IsCapture() {
		perft.CaptureCounter++
	}
	if move.IsCastling() {
		perft.CastleCounter++
	}
	if move.IsPromotion() {
		perft.PromotionCounter++
	}
	if pos.HasCheck() {
		perft.CheckCounter++
	}
}

func (perft *Perft) resetCounters() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
