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

// Package search implements iterative-deepening alpha-beta search with
// quiescence, null-move pruning, late move reductions, principal
// variation search, killer moves, history heuristic and a
// transposition table.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/frankkopp/branchmate/internal/config"
	myLogging "github.com/frankkopp/branchmate/internal/logging"
	"github.com/frankkopp/branchmate/internal/movegen"
	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/transpositiontable"
	"github.com/frankkopp/branchmate/internal/types"
)

var out = message.NewPrinter(language.English)

// UciReporter receives progress updates while a search is running. A
// UCI handler implements this to emit "info" lines; tests can leave it
// nil.
type UciReporter interface {
	SendInfoString(msg string)
	SendIterationEnd(result Result, hashfull int)
}

// Search holds all state for one engine instance. Create with
// NewSearch; an instance can run many searches in sequence but never
// two at once.
type Search struct {
	log *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt       *transpositiontable.Table
	reporter UciReporter

	killers killerTable
	history historyTable
	pv      pvTable

	stopFlag  bool
	startTime time.Time
	deadline  time.Time
	hasDeadline bool

	nodes uint64

	limits Limits

	statistics Statistics
	lastResult Result
}

// NewSearch builds a Search ready to run, with a transposition table
// sized per the current configuration.
func NewSearch() *Search {
	s := &Search{
		log:           myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		tt:            transpositiontable.NewTable(config.Settings.Search.TTSizeMB),
	}
	return s
}

// SetReporter installs the UCI reporter used to emit progress. Pass
// nil to only log locally.
func (s *Search) SetReporter(r UciReporter) {
	s.reporter = r
}

// NewGame resets state that must not carry over between games: the
// transposition table and the history heuristic. Killers are cleared
// per search since they are only ever valid within one.
func (s *Search) NewGame() {
	s.StopSearch()
	s.tt.Clear()
	s.history.clear()
}

// StartSearch begins searching pos under the given limits in a new
// goroutine and returns once the goroutine has taken ownership of its
// inputs. Call StopSearch or let the limits expire to end it.
func (s *Search) StartSearch(pos position.Position, limits Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	go s.run(pos, limits)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests the running search stop as soon as possible and
// blocks until it has.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// LastResult returns the result of the most recently completed search.
func (s *Search) LastResult() Result {
	return s.lastResult
}

// ResizeHash replaces the transposition table with one sized to hold
// roughly sizeInMB megabytes, discarding its previous contents.
// Ignored while a search is running.
func (s *Search) ResizeHash(sizeInMB int) {
	if s.IsSearching() {
		s.log.Warning("can't resize hash while searching")
		return
	}
	s.tt = transpositiontable.NewTable(sizeInMB)
}

// ClearHash empties the transposition table without resizing it.
func (s *Search) ClearHash() {
	s.tt.Clear()
}

// Hashfull reports how full the transposition table is, in per-mille.
func (s *Search) Hashfull() int {
	return s.tt.Hashfull()
}

// run is the goroutine body started by StartSearch.
func (s *Search) run(pos position.Position, limits Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.stopFlag = false
	s.nodes = 0
	s.statistics = Statistics{}
	s.killers.clear()
	s.limits = limits
	s.startTime = time.Now()

	s.hasDeadline = limits.TimeControl
	if s.hasDeadline {
		s.deadline = s.startTime.Add(s.setupTimeControl(&pos, limits))
		s.startTimer()
	}

	s.tt.Stats = transpositiontable.Stats{}

	s.initSemaphore.Release(1)

	result := s.iterativeDeepening(&pos)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodes

	s.log.Infof("search finished: %s", result.String())
	s.lastResult = result
	s.stopFlag = true
}

// setupTimeControl turns the remaining clock time, increment and moves
// left into a wall-clock budget for the current move.
func (s *Search) setupTimeControl(pos *position.Position, limits Limits) time.Duration {
	if limits.MoveTime > 0 {
		d := limits.MoveTime - 20*time.Millisecond
		if d < 0 {
			return limits.MoveTime
		}
		return d
	}

	movesLeft := int64(limits.MovesToGo)
	if movesLeft == 0 {
		movesLeft = 30
	}

	var timeLeft, inc time.Duration
	if pos.Side() == types.White {
		timeLeft, inc = limits.WhiteTime, limits.WhiteInc
	} else {
		timeLeft, inc = limits.BlackTime, limits.BlackInc
	}

	budget := timeLeft/time.Duration(movesLeft) + inc
	if budget <= 0 {
		budget = 50 * time.Millisecond
	}
	if budget.Milliseconds() < 100 {
		budget = time.Duration(float64(budget) * 0.8)
	} else {
		budget = time.Duration(float64(budget) * 0.9)
	}
	return budget
}

// startTimer runs a goroutine that sets stopFlag once the deadline
// passes, a relaxed busy wait since the deadline never moves once set.
func (s *Search) startTimer() {
	go func() {
		for time.Now().Before(s.deadline) && !s.stopFlag {
			time.Sleep(5 * time.Millisecond)
		}
		s.stopFlag = true
	}()
}

// pollStop checks the stop flag and the wall-clock deadline, called every
// config.Settings.Search.PollInterval nodes from inside the tree.
func (s *Search) pollStop() bool {
	if s.stopFlag {
		return true
	}
	if s.hasDeadline && !time.Now().Before(s.deadline) {
		s.stopFlag = true
	}
	return s.stopFlag
}

func (s *Search) shouldPoll() bool {
	return s.nodes%config.Settings.Search.PollInterval == 0
}

// iterativeDeepening runs successively deeper searches from the root
// until the depth limit is reached or the search is stopped (time up or
// "stop"). Node limits are not checked. Above depth 3, and when
// aspiration windows are enabled, an iteration is seeded with an
// aspiration window around the previous iteration's score.
func (s *Search) iterativeDeepening(pos *position.Position) Result {
	maxDepth := types.MaxPly - 1
	if s.limits.Depth > 0 && s.limits.Depth < maxDepth {
		maxDepth = s.limits.Depth
	}

	var moves types.MoveList
	movegen.Generate(pos, &moves)
	legalRootMoves := countLegal(pos, &moves)
	if legalRootMoves == 0 {
		if pos.HasCheck() {
			return Result{BestValue: -types.ValueMate}
		}
		return Result{BestValue: types.ValueZero}
	}

	var best Result
	alpha, beta := -types.ValueInfinite, types.ValueInfinite
	bestValue := types.ValueZero

	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentSearchDepth = depth

		var value types.Value
		if config.Settings.Search.UseAspiration && depth > 3 {
			value, alpha, beta = s.aspirationSearch(pos, depth, bestValue)
		} else {
			alpha, beta = -types.ValueInfinite, types.ValueInfinite
			value = s.rootSearch(pos, depth, alpha, beta)
		}

		if s.stopFlag && depth > 1 {
			break
		}

		bestValue = value
		best = Result{
			BestMove:    s.pv.lines[0][0],
			BestValue:   value,
			SearchDepth: depth,
			Pv:          s.pv.line(),
		}

		if s.reporter != nil {
			s.reporter.SendIterationEnd(best, s.tt.Hashfull())
		}

		if legalRootMoves == 1 {
			break
		}
	}

	return best
}

// aspirationSearch searches depth with a narrow window around
// previousValue, widening to the full window and re-searching whenever
// the result falls outside it.
func (s *Search) aspirationSearch(pos *position.Position, depth int, previousValue types.Value) (types.Value, types.Value, types.Value) {
	window := types.Value(config.Settings.Search.AspirationSize)
	alpha := previousValue - window
	beta := previousValue + window

	for {
		value := s.rootSearch(pos, depth, alpha, beta)
		if s.stopFlag {
			return value, alpha, beta
		}
		if value <= alpha {
			alpha = -types.ValueInfinite
			continue
		}
		if value >= beta {
			beta = types.ValueInfinite
			continue
		}
		return value, alpha, beta
	}
}

// countLegal reports how many pseudo-legal moves in list are actually
// legal, by playing and immediately undoing each on a scratch copy.
func countLegal(pos *position.Position, list *types.MoveList) int {
	n := 0
	for i := 0; i < list.Len(); i++ {
		snapshot := pos.Clone()
		if snapshot.DoMove(list.At(i), position.AllMoves) {
			n++
		}
	}
	return n
}
