/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// searchConfiguration holds the tunable parameters of the search driver.
type searchConfiguration struct {
	// Transposition table
	TTSizeMB int // clamped to [TTSizeMBMin, TTSizeMBMax]

	// Null move pruning
	UseNullMove  bool
	NmpDepth     int // minimum remaining depth to try a null move
	NmpReduction int // depth reduction applied to the null-move search

	// Late move reductions
	UseLmr           bool
	LmrDepth         int // minimum remaining depth to consider reducing
	LmrMovesSearched int // move count after which quiet moves get reduced

	// Principal variation search
	UsePVS bool

	// Move ordering
	UseKiller  bool
	UseHistory bool

	// Aspiration windows
	UseAspiration  bool
	AspirationSize int // half-width of the initial window, in centipawns

	// Node polling interval for time/stop checks, in nodes.
	PollInterval uint64
}

// TTSizeMBMin and TTSizeMBMax bound the configurable transposition table
// size.
const (
	TTSizeMBMin = 4
	TTSizeMBMax = 128
)

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.TTSizeMB = 64

	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2

	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 4

	Settings.Search.UsePVS = true

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationSize = 50

	Settings.Search.PollInterval = 2047
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupSearch() {
	if Settings.Search.TTSizeMB < TTSizeMBMin {
		Settings.Search.TTSizeMB = TTSizeMBMin
	}
	if Settings.Search.TTSizeMB > TTSizeMBMax {
		Settings.Search.TTSizeMB = TTSizeMBMax
	}
}
