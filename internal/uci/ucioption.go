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

package uci

import (
	"strconv"
	"strings"

	"github.com/frankkopp/branchmate/internal/config"
)

// uciOptionType enumerates the UCI option kinds the protocol defines.
type uciOptionType int

const (
	check uciOptionType = iota
	spin
)

// optionHandler is called when "setoption" changes the option's value.
type optionHandler func(*Handler, *uciOption)

// uciOption mirrors one entry of the UCI protocol's option table.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

// String renders the option the way "uci" must report it, e.g.
// "option name Hash type spin default 64 min 4 max 128".
func (o *uciOption) String() string {
	var sb strings.Builder
	sb.WriteString("option name ")
	sb.WriteString(o.NameID)
	sb.WriteString(" type ")
	switch o.OptionType {
	case check:
		sb.WriteString("check default ")
		sb.WriteString(o.DefaultValue)
	case spin:
		sb.WriteString("spin default ")
		sb.WriteString(o.DefaultValue)
		sb.WriteString(" min ")
		sb.WriteString(o.MinValue)
		sb.WriteString(" max ")
		sb.WriteString(o.MaxValue)
	}
	return sb.String()
}

var uciOptions map[string]*uciOption

var sortOrderUciOptions = []string{"Hash"}

func init() {
	uciOptions = map[string]*uciOption{
		"Hash": {
			NameID:       "Hash",
			HandlerFunc:  setHashSize,
			OptionType:   spin,
			DefaultValue: strconv.Itoa(config.Settings.Search.TTSizeMB),
			CurrentValue: strconv.Itoa(config.Settings.Search.TTSizeMB),
			MinValue:     strconv.Itoa(config.TTSizeMBMin),
			MaxValue:     strconv.Itoa(config.TTSizeMBMax),
		},
	}
}

// getOptions returns every option formatted for the "uci" response, in
// a fixed, stable order.
func getOptions() []string {
	options := make([]string, 0, len(sortOrderUciOptions))
	for _, name := range sortOrderUciOptions {
		options = append(options, uciOptions[name].String())
	}
	return options
}

// setHashSize resizes the transposition table, ignored with a warning
// if a search is currently running.
func setHashSize(u *Handler, o *uciOption) {
	sizeInMB, err := strconv.Atoi(o.CurrentValue)
	if err != nil {
		u.SendInfoString("setoption Hash: value is not a number: " + o.CurrentValue)
		return
	}
	if u.mySearch.IsSearching() {
		u.SendInfoString("Can't resize hash while searching")
		return
	}
	if sizeInMB < config.TTSizeMBMin {
		sizeInMB = config.TTSizeMBMin
	}
	if sizeInMB > config.TTSizeMBMax {
		sizeInMB = config.TTSizeMBMax
	}
	config.Settings.Search.TTSizeMB = sizeInMB
	u.mySearch.ResizeHash(sizeInMB)
}
