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

// Package uci implements the text protocol chess GUIs use to drive an
// engine: one command per line on stdin, one or more response lines on
// stdout.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/branchmate/internal/logging"
	"github.com/frankkopp/branchmate/internal/movegen"
	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/search"
	"github.com/frankkopp/branchmate/internal/types"
)

const engineName = "branchmate"
const engineAuthor = "Frank Kopp"

// Handler owns the engine's position, search and I/O for one UCI
// session, reading commands off InIo and writing responses to OutIo.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	position *position.Position
	mySearch *search.Search
	uciLog   *logging.Logger
}

// NewHandler creates a Handler wired to stdin/stdout, with a fresh
// starting position and a Search instance subscribed to it for
// progress reports.
func NewHandler() *Handler {
	p := position.New()
	h := &Handler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		position: &p,
		mySearch: search.NewSearch(),
		uciLog:   myLogging.GetUciLog(),
	}
	h.mySearch.SetReporter(h)
	return h
}

// Loop reads commands from InIo until "quit" is received or input ends.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single command line and returns everything it wrote
// to stdout, for use in tests.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

// SendInfoString sends an arbitrary "info string" line, implementing
// search.UciReporter.
func (h *Handler) SendInfoString(msg string) {
	h.send("info string " + msg)
}

// SendIterationEnd reports the outcome of one completed iterative
// deepening pass, implementing search.UciReporter.
func (h *Handler) SendIterationEnd(result search.Result, hashfull int) {
	h.send(fmt.Sprintf("info depth %d score %s nodes %d time %d hashfull %d pv %s",
		result.SearchDepth, result.BestValue.String(), result.Nodes,
		result.SearchTime.Milliseconds(), hashfull, result.Pv.UciString()))
}

var whitespace = regexp.MustCompile(`\s+`)

// handle dispatches one command line, returning true when the engine
// should shut down. Anything it doesn't recognize is logged and
// otherwise ignored, matching the protocol's tolerance for malformed
// or unknown input.
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)

	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		h.mySearch.StopSearch()
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		p := position.New()
		h.position = &p
		h.mySearch.NewGame()
	case "setoption":
		h.setOptionCommand(tokens)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.mySearch.StopSearch()
	default:
		h.uciLog.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + engineName)
	h.send("id author " + engineAuthor)
	for _, o := range getOptions() {
		h.send(o)
	}
	h.send("uciok")
}

// setOptionCommand parses "setoption name <name> value <value>" and
// applies it if name is recognized. Anything else is reported but does
// not stop the session.
func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		h.SendInfoString("setoption malformed: " + strings.Join(tokens, " "))
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	o, found := uciOptions[name.String()]
	if !found {
		h.SendInfoString("setoption: no such option '" + name.String() + "'")
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(h, o)
}

// positionCommand parses "position startpos|fen <fen> [moves ...]".
// A malformed command or an invalid FEN is reported with an info
// string. An illegal move in the move list stops parsing at that move
// without any report; the moves before it stay applied.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.SendInfoString("position malformed: " + strings.Join(tokens, " "))
		return
	}

	i := 1
	var fen string
	switch tokens[i] {
	case "startpos":
		fen = position.StartFen
		i++
	case "fen":
		i++
		var sb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			sb.WriteString(tokens[i])
			sb.WriteByte(' ')
			i++
		}
		fen = strings.TrimSpace(sb.String())
	default:
		h.SendInfoString("position malformed: " + strings.Join(tokens, " "))
		return
	}

	p, err := position.NewFromFEN(fen)
	if err != nil {
		h.SendInfoString("position: invalid fen: " + fen)
		return
	}
	h.position = &p

	if i >= len(tokens) || tokens[i] != "moves" {
		return
	}
	i++
	for ; i < len(tokens); i++ {
		m := parseUciMove(h.position, tokens[i])
		if m == types.MoveNone {
			return
		}
		snapshot := h.position.Clone()
		h.position.PushRepetition()
		if !h.position.DoMove(m, position.AllMoves) {
			h.position.PopRepetition()
			*h.position = snapshot
			return
		}
	}
}

// parseUciMove matches a UCI move string against the pseudo-legal
// moves of pos, returning types.MoveNone if none match.
func parseUciMove(pos *position.Position, uciMove string) types.Move {
	var moves types.MoveList
	movegen.Generate(pos, &moves)
	for j := 0; j < moves.Len(); j++ {
		if moves.At(j).UciString() == uciMove {
			return moves.At(j)
		}
	}
	return types.MoveNone
}

// goCommand parses search limits out of a "go" command and starts the
// search. Depth defaults to 64 when no limit at all was given.
func (h *Handler) goCommand(tokens []string) {
	limits := search.Limits{}
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "depth":
			i++
			if i >= len(tokens) {
				return
			}
			limits.Depth, _ = strconv.Atoi(tokens[i])
			i++
		case "movetime":
			i++
			if i >= len(tokens) {
				return
			}
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			limits.MoveTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			if i >= len(tokens) {
				return
			}
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			limits.WhiteTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			if i >= len(tokens) {
				return
			}
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			limits.BlackTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			i++
			if i >= len(tokens) {
				return
			}
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			limits.WhiteInc = time.Duration(ms) * time.Millisecond
			i++
		case "binc":
			i++
			if i >= len(tokens) {
				return
			}
			ms, _ := strconv.ParseInt(tokens[i], 10, 64)
			limits.BlackInc = time.Duration(ms) * time.Millisecond
			i++
		case "movestogo":
			i++
			if i >= len(tokens) {
				return
			}
			limits.MovesToGo, _ = strconv.Atoi(tokens[i])
			i++
		default:
			i++
		}
	}

	if limits.Depth == 0 && limits.Nodes == 0 && !limits.Infinite && !limits.TimeControl {
		limits.Depth = 64
	}

	h.mySearch.StartSearch(h.position.Clone(), limits)
	go h.sendResultWhenDone()
}

// sendResultWhenDone waits for the in-flight search to finish and then
// emits the "bestmove" line, the one response not driven by
// SendIterationEnd callbacks.
func (h *Handler) sendResultWhenDone() {
	h.mySearch.WaitWhileSearching()
	result := h.mySearch.LastResult()
	h.send("bestmove " + result.BestMove.UciString())
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
