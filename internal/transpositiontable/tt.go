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

// Package transpositiontable implements a fixed-size, hash-indexed table
// of previously searched positions, keyed by Zobrist hash with no
// chaining: a later write to a collided slot simply overwrites it.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/frankkopp/branchmate/internal/logging"
	"github.com/frankkopp/branchmate/internal/types"
)

var log = logging.GetLog()

// MaxSizeInMB bounds how large a single table may be configured.
const MaxSizeInMB = 65536

// Stats accumulates counters describing how a Table has been used.
type Stats struct {
	Puts       uint64
	Overwrites uint64
	Updates    uint64
	Collisions uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Table is the engine's transposition table.
type Table struct {
	data            []Entry
	sizeInMB        int
	mask            uint64
	numberOfEntries uint64
	Stats           Stats
}

// NewTable allocates a table sized to hold roughly sizeInMB megabytes
// of entries, rounded down to a power of two entry count so that the
// index can be computed with a bitmask instead of a modulo.
func NewTable(sizeInMB int) *Table {
	t := &Table{}
	t.Resize(sizeInMB)
	return t
}

// Resize reallocates the table for a new size in megabytes, discarding
// its previous contents.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB < 1 {
		sizeInMB = 1
	}
	if sizeInMB > MaxSizeInMB {
		sizeInMB = MaxSizeInMB
	}
	entrySize := uint64(unsafe.Sizeof(Entry{}))
	wantedEntries := uint64(sizeInMB) * 1024 * 1024 / entrySize
	exp := uint64(math.Log2(float64(wantedEntries)))
	entries := uint64(1) << exp
	if entries == 0 {
		entries = 1
	}

	t.sizeInMB = sizeInMB
	t.numberOfEntries = entries
	t.mask = entries - 1
	t.data = make([]Entry, entries)
	log.Infof("transposition table resized to %d MB (%d entries)", sizeInMB, entries)
}

// Clear zeroes every entry and resets Stats, without reallocating.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.Stats = Stats{}
}

// Len returns the number of entry slots in the table.
func (t *Table) Len() uint64 {
	return t.numberOfEntries
}

// Hashfull returns the fraction of the table in use, in per-mille, as
// used by the UCI "info hashfull" field. Sampled over the first 1000
// slots, matching common engine practice.
func (t *Table) Hashfull() int {
	n := uint64(1000)
	if n > t.numberOfEntries {
		n = t.numberOfEntries
	}
	var used uint64
	for i := uint64(0); i < n; i++ {
		if !t.data[i].empty() {
			used++
		}
	}
	if n == 0 {
		return 0
	}
	return int(used * 1000 / n)
}

func (t *Table) index(key types.Key) uint64 {
	return uint64(key) & t.mask
}

// mateToTT converts a score about to be stored into its
// distance-from-root independent form.
func mateToTT(score types.Value, ply int) types.Value {
	switch {
	case score >= types.ValueMateThreshold:
		return score + types.Value(ply)
	case score <= -types.ValueMateThreshold:
		return score - types.Value(ply)
	default:
		return score
	}
}

// mateFromTT is the inverse of mateToTT, applied when a stored score is
// read back at a possibly different ply.
func mateFromTT(stored types.Value, ply int) types.Value {
	switch {
	case stored >= types.ValueMateThreshold:
		return stored - types.Value(ply)
	case stored <= -types.ValueMateThreshold:
		return stored + types.Value(ply)
	default:
		return stored
	}
}

// Put stores a search result for key, unconditionally overwriting
// whatever previously occupied the slot.
func (t *Table) Put(key types.Key, depth int, flag Flag, score types.Value, ply int) {
	idx := t.index(key)
	old := &t.data[idx]

	switch {
	case old.empty():
		t.Stats.Puts++
	case old.Key == key:
		t.Stats.Updates++
	default:
		t.Stats.Collisions++
		t.Stats.Overwrites++
	}

	old.Key = key
	old.Depth = int8(depth)
	old.Flag = flag
	old.Score = mateToTT(score, ply)
}

// Probe looks up key and, if a usable score is found for the given
// depth and (alpha, beta) window, returns it together with true.
// Otherwise it returns (types.ValueNone, false).
func (t *Table) Probe(key types.Key, depth int, alpha, beta types.Value, ply int) (types.Value, bool) {
	t.Stats.Probes++

	e := &t.data[t.index(key)]
	if e.empty() || e.Key != key || int(e.Depth) < depth {
		t.Stats.Misses++
		return types.ValueNone, false
	}

	score := mateFromTT(e.Score, ply)
	switch e.Flag {
	case FlagExact:
		t.Stats.Hits++
		return score, true
	case FlagAlpha:
		if score <= alpha {
			t.Stats.Hits++
			return alpha, true
		}
	case FlagBeta:
		if score >= beta {
			t.Stats.Hits++
			return beta, true
		}
	}
	t.Stats.Misses++
	return types.ValueNone, false
}
