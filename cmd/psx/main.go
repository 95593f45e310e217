/*
 * psx - command-line driver
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"psx/internal/console"
	"psx/internal/logger"
	"psx/internal/psx"
)

var Logger *slog.Logger

func main() {
	optBios := getopt.StringLong("bios", 'b', "", "BIOS image path (required)")
	optLog := getopt.StringLong("log", 'l', "info", "Log level: trace, debug, info, warn, error")
	optLogFile := getopt.StringLong("log-file", 'f', "", "Log file (default stderr)")
	optInteractive := getopt.BoolLong("interactive", 'i', "Start the interactive console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	out := os.Stderr
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			println("psx: cannot create log file:", err.Error())
			os.Exit(1)
		}
		out = f
	}

	level, ok := logger.ParseLevel(*optLog)
	if !ok {
		println("psx: unknown log level", *optLog)
		os.Exit(1)
	}
	Logger = logger.New(out, level)
	slog.SetDefault(Logger)

	if *optBios == "" {
		Logger.Error("--bios is required")
		os.Exit(1)
	}

	image, err := os.ReadFile(*optBios)
	if err != nil {
		Logger.Error("reading BIOS image", "err", err)
		os.Exit(1)
	}

	machine, err := psx.New(image, Logger)
	if err != nil {
		Logger.Error("initializing machine", "err", err)
		os.Exit(1)
	}
	Logger.Info("psx started", "bios", *optBios)

	if *optInteractive {
		console.Run(machine, Logger)
		return
	}

	if _, err := machine.Run(1 << 30); err != nil {
		Logger.Error("halted", "err", err)
		os.Exit(1)
	}
}
