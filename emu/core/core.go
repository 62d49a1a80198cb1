/*
 * UY1 - Simulator core, peripheral wiring and run loop.
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

package core

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	config "github.com/rcornwell/UY1/config/configparser"
	"github.com/rcornwell/UY1/emu/cpu"
	"github.com/rcornwell/UY1/util/card"
	"github.com/rcornwell/UY1/util/papertape"
	"github.com/rcornwell/UY1/util/tape"
)

// File names the simulator opens in the working directory. Overridable from
// the configuration file or the command line.
var (
	DeckFile      = "deck.txt"
	ScratchFile   = "scratchpad.bin"
	LibraryFile   = "library.bin"
	PaperTapeFile = "output.txt"
)

func init() {
	config.RegisterOption("DECK", func(value string) error { DeckFile = value; return nil })
	config.RegisterOption("SCRATCHPAD", func(value string) error { ScratchFile = value; return nil })
	config.RegisterOption("LIBRARY", func(value string) error { LibraryFile = value; return nil })
	config.RegisterOption("PAPERTAPE", func(value string) error { PaperTapeFile = value; return nil })
}

// Core holds the machine and its attached peripherals for one run.
type Core struct {
	cpu     *cpu.CPU
	scratch *tape.Context
	library *tape.Context
	reader  *card.Context
	punch   *papertape.Context
	steps   uint64
}

// Attach opens all tapes and builds the machine. The library is optional;
// everything else is required for the run to start.
func Attach() (*Core, error) {
	core := &Core{
		scratch: tape.NewContext(),
		library: tape.NewContext(),
		reader:  card.NewContext(),
		punch:   papertape.NewContext(),
	}

	core.scratch.SetRing()
	if err := core.scratch.Attach(ScratchFile); err != nil {
		return nil, fmt.Errorf("scratchpad: %w", err)
	}

	core.library.SetNoRing()
	if err := core.library.Attach(LibraryFile); err != nil {
		if !os.IsNotExist(err) {
			core.Detach()
			return nil, fmt.Errorf("library: %w", err)
		}
		slog.Info("no library tape, CALL disabled")
	}

	if err := core.reader.Attach(DeckFile); err != nil {
		core.Detach()
		return nil, fmt.Errorf("card reader: %w", err)
	}

	if err := core.punch.Attach(PaperTapeFile); err != nil {
		core.Detach()
		return nil, fmt.Errorf("paper tape: %w", err)
	}

	core.cpu = cpu.New(core.scratch, core.library, core.reader, core.punch)
	return core, nil
}

// Detach releases every attached tape. Safe on a partly attached core.
func (core *Core) Detach() {
	if core.scratch.Attached() {
		_ = core.scratch.Detach()
	}
	if core.library.Attached() {
		_ = core.library.Detach()
	}
	if core.reader.Attached() {
		_ = core.reader.Detach()
	}
	if core.punch.Attached() {
		_ = core.punch.Detach()
	}
}

// CPU gives the monitor access to the machine.
func (core *Core) CPU() *cpu.CPU {
	return core.cpu
}

// Scratchpad gives the monitor access to the working store.
func (core *Core) Scratchpad() *tape.Context {
	return core.scratch
}

// Steps run so far.
func (core *Core) Steps() uint64 {
	return core.steps
}

// Step runs one machine cycle.
func (core *Core) Step() error {
	core.steps++
	return core.cpu.Step()
}

// Run drives the machine until it stops. HALT and end of deck are normal
// completion; anything else is a fatal error.
func (core *Core) Run() error {
	for {
		err := core.Step()
		switch {
		case err == nil:
		case errors.Is(err, cpu.ErrHalt):
			slog.Info("halt", "steps", core.steps)
			return nil
		case errors.Is(err, cpu.ErrDeck):
			slog.Info("end of deck", "steps", core.steps)
			return nil
		default:
			return err
		}
	}
}
