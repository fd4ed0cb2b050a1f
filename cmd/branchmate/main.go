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

package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/branchmate/internal/config"
	"github.com/frankkopp/branchmate/internal/logging"
	"github.com/frankkopp/branchmate/internal/movegen"
	"github.com/frankkopp/branchmate/internal/position"
	"github.com/frankkopp/branchmate/internal/uci"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	perft := flag.Int("perft", 0, "runs perft to the given depth from -fen (or the start position) and exits")
	fen := flag.String("fen", position.StartFen, "fen used by -perft")
	cpuProfile := flag.Bool("profile", false, "writes a CPU profile of the run to ./cpu.pprof")
	versionInfo := flag.Bool("version", false, "prints build environment info and exits")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *versionInfo {
		printEnvironmentInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	logging.GetLog()

	if *perft != 0 {
		var p movegen.Perft
		for d := 1; d <= *perft; d++ {
			p.StartPerft(*fen, d)
		}
		return
	}

	uci.NewHandler().Loop()
}

func printEnvironmentInfo() {
	out.Println("branchmate")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	fmt.Println()
}
