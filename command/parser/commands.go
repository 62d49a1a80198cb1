/*
 * UY1 - Monitor command executer.
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

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	assembler "github.com/rcornwell/UY1/emu/assemble"
	"github.com/rcornwell/UY1/emu/core"
	"github.com/rcornwell/UY1/emu/cpu"
	"github.com/rcornwell/UY1/emu/disassemble"
	"github.com/rcornwell/UY1/emu/word"
)

type cmd struct {
	Name    string
	Min     int // Minimum match length
	Process func(args []string, core *core.Core) (bool, error)
}

var cmdList = []cmd{
	{Name: "step", Min: 2, Process: step},
	{Name: "continue", Min: 1, Process: cont},
	{Name: "registers", Min: 1, Process: registers},
	{Name: "examine", Min: 1, Process: examine},
	{Name: "deposit", Min: 2, Process: deposit},
	{Name: "trace", Min: 2, Process: trace},
	{Name: "quit", Min: 1, Process: quit},
}

// Machine state as shown by the registers command.
type machineState struct {
	R1, R2, R3 int64
	PC         int64
	Mode       string
	Steps      uint64
}

// ProcessCommand runs one monitor command line. Returns true to leave the
// monitor.
func ProcessCommand(line string, core *core.Core) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	name := strings.ToLower(fields[0])
	for i := range cmdList {
		entry := &cmdList[i]
		if len(name) >= entry.Min && strings.HasPrefix(entry.Name, name) {
			return entry.Process(fields[1:], core)
		}
	}
	return false, errors.New("unknown command: " + fields[0])
}

// CompleteCmd returns command names matching the prefix typed so far.
func CompleteCmd(line string) []string {
	matches := []string{}
	prefix := strings.ToLower(strings.TrimLeft(line, " "))
	for _, entry := range cmdList {
		if strings.HasPrefix(entry.Name, prefix) {
			matches = append(matches, entry.Name+" ")
		}
	}
	return matches
}

// Run count instructions, stopping early on halt or error.
func step(args []string, core *core.Core) (bool, error) {
	count := int64(1)
	if len(args) > 0 {
		var err error
		count, err = strconv.ParseInt(args[0], 0, 64)
		if err != nil || count < 1 {
			return false, errors.New("invalid step count")
		}
	}
	for range count {
		if err := core.Step(); err != nil {
			reportStop(err)
			return false, nil
		}
	}
	return registers(nil, core)
}

// Run until the machine stops.
func cont(_ []string, core *core.Core) (bool, error) {
	for {
		if err := core.Step(); err != nil {
			reportStop(err)
			return false, nil
		}
	}
}

func reportStop(err error) {
	switch {
	case errors.Is(err, cpu.ErrHalt):
		fmt.Println("Halted")
	case errors.Is(err, cpu.ErrDeck):
		fmt.Println("End of deck")
	default:
		fmt.Println("Stopped: " + err.Error())
	}
}

// Dump the register file.
func registers(_ []string, core *core.Core) (bool, error) {
	r1, r2, r3 := core.CPU().Registers()
	state := machineState{
		R1:    word.SignExtend(r1),
		R2:    word.SignExtend(r2),
		R3:    word.SignExtend(r3),
		PC:    core.CPU().PC(),
		Mode:  "READ_IN",
		Steps: core.Steps(),
	}
	if core.CPU().Mode() == cpu.ModeExecute {
		state.Mode = "EXECUTION"
	}
	fmt.Print(spew.Sdump(state))
	return false, nil
}

// Show scratchpad words: examine <addr> [count].
func examine(args []string, core *core.Core) (bool, error) {
	if len(args) < 1 {
		return false, errors.New("examine needs an address")
	}
	addr, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil || addr < 0 {
		return false, errors.New("invalid address: " + args[0])
	}
	count := int64(1)
	if len(args) > 1 {
		count, err = strconv.ParseInt(args[1], 0, 64)
		if err != nil || count < 1 {
			return false, errors.New("invalid count")
		}
	}
	for i := addr; i < addr+count; i++ {
		value := core.Scratchpad().ReadWord(i)
		fmt.Printf("%6d: %016o  %s\n", i, value, disassemble.Disassemble(value))
	}
	return false, nil
}

// Store one word: deposit <addr> <card text>.
func deposit(args []string, core *core.Core) (bool, error) {
	if len(args) < 2 {
		return false, errors.New("deposit needs an address and a value")
	}
	addr, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil || addr < 0 {
		return false, errors.New("invalid address: " + args[0])
	}
	value, err := assembler.Assemble(strings.Join(args[1:], " "))
	if err != nil {
		return false, err
	}
	core.Scratchpad().WriteWord(addr, value)
	return false, nil
}

// Enable a cpu trace option.
func trace(args []string, core *core.Core) (bool, error) {
	if len(args) < 1 {
		return false, errors.New("trace needs an option")
	}
	return false, core.CPU().Trace(args[0])
}

func quit(_ []string, _ *core.Core) (bool, error) {
	return true, nil
}
