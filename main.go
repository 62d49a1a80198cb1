/*
 * UY1 - Main process.
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

	"github.com/rcornwell/UY1/command/reader"
	config "github.com/rcornwell/UY1/config/configparser"
	"github.com/rcornwell/UY1/emu/core"
	logger "github.com/rcornwell/UY1/util/logger"
)

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optDeck := getopt.StringLong("deck", 'd', "", "Input card deck")
	optScratch := getopt.StringLong("scratchpad", 's', "", "Scratchpad tape file")
	optLibrary := getopt.StringLong("library", 'l', "", "Library tape file")
	optPunch := getopt.StringLong("papertape", 'p', "", "Paper tape output file")
	optLogFile := getopt.StringLong("log", 'L', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'D', "Echo debug log to stderr")
	optMonitor := getopt.BoolLong("monitor", 'i', "Interactive monitor")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	opts := &slog.HandlerOptions{Level: programLevel}
	slog.SetDefault(slog.New(logger.NewHandler(file, opts, *optDebug)))

	if *optConfig != "" {
		if err := config.LoadConfigFile(*optConfig); err != nil {
			slog.Error(err.Error())
			os.Exit(1)
		}
	}

	// Command line overrides the configuration file.
	if *optDeck != "" {
		core.DeckFile = *optDeck
	}
	if *optScratch != "" {
		core.ScratchFile = *optScratch
	}
	if *optLibrary != "" {
		core.LibraryFile = *optLibrary
	}
	if *optPunch != "" {
		core.PaperTapeFile = *optPunch
	}

	slog.Info("UY1 started")
	machine, err := core.Attach()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	if *optMonitor {
		reader.ConsoleReader(machine)
		machine.Detach()
		return
	}

	err = machine.Run()
	machine.Detach()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
