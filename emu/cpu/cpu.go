/*
 * UY1 - CPU instructions and control unit.
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

package cpu

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	config "github.com/rcornwell/UY1/config/configparser"
	"github.com/rcornwell/UY1/emu/disassemble"
	op "github.com/rcornwell/UY1/emu/opcodemap"
	"github.com/rcornwell/UY1/emu/overlay"
	"github.com/rcornwell/UY1/emu/word"
	"github.com/rcornwell/UY1/util/card"
	"github.com/rcornwell/UY1/util/debug"
	"github.com/rcornwell/UY1/util/papertape"
	"github.com/rcornwell/UY1/util/tape"
)

// Machine mode. The machine starts reading its program from the card deck
// and moves to the scratchpad on the first TXR. There is no way back.
const (
	ModeReadIn = iota
	ModeExecute
)

// Division behavior for DIV.
const (
	DivInteger = iota // Truncating integer division
	DivFraction       // Binary points aligned before dividing
)

const (
	// Trace options.
	traceInst = 1 << iota
	traceCard
	traceOverlay
)

var traceOption = map[string]int{
	"INST":    traceInst,
	"CARD":    traceCard,
	"OVERLAY": traceOverlay,
}

var (
	// ErrHalt reports a HALT instruction, a normal stop.
	ErrHalt = errors.New("halt")

	// ErrDeck reports end of the card deck during read-in, a normal stop.
	ErrDeck = errors.New("end of deck")
)

// Division mode configured for new machines.
var configDivMode = DivInteger

func init() {
	config.RegisterOption("DIVMODE", setDivMode)
}

func setDivMode(value string) error {
	switch strings.ToUpper(value) {
	case "INT", "INTEGER":
		configDivMode = DivInteger
	case "FRAC", "FRACTION":
		configDivMode = DivFraction
	default:
		return errors.New("invalid DIVMODE value: " + value)
	}
	return nil
}

// CPU state. The control unit owns the registers, PC and mode; the tape
// contexts are held as capabilities and owned by the caller.
type CPU struct {
	r1, r2, r3 uint64 // Register file
	pc         int64  // Program counter, scratchpad word index
	mode       int    // Read-in or execute
	divMode    int    // Division behavior
	traceMsk   int    // Trace mask

	scratch *tape.Context      // Working store, the only writable tape
	library *tape.Context      // Subroutine library, may be detached
	reader  *card.Context      // Input deck
	punch   *papertape.Context // Output sink
}

// New builds a CPU in read-in mode over the attached peripherals.
func New(scratch, library *tape.Context, reader *card.Context, punch *papertape.Context) *CPU {
	return &CPU{
		divMode: configDivMode,
		scratch: scratch,
		library: library,
		reader:  reader,
		punch:   punch,
	}
}

// Set division behavior.
func (cpu *CPU) SetDivMode(mode int) {
	cpu.divMode = mode
}

// Enable trace options.
func (cpu *CPU) Trace(opt string) error {
	flag, ok := traceOption[strings.ToUpper(opt)]
	if !ok {
		return errors.New("cpu trace option invalid: " + opt)
	}
	cpu.traceMsk |= flag
	return nil
}

// Accessors for the monitor and tests.
func (cpu *CPU) Registers() (uint64, uint64, uint64) {
	return cpu.r1, cpu.r2, cpu.r3
}

func (cpu *CPU) PC() int64 {
	return cpu.pc
}

func (cpu *CPU) Mode() int {
	return cpu.mode
}

// Step runs one machine cycle: during read-in one card pair, otherwise one
// fetched instruction. Returns ErrHalt, ErrDeck or a fatal decode error.
func (cpu *CPU) Step() error {
	if cpu.mode == ModeReadIn {
		return cpu.stepReadIn()
	}

	inst := cpu.scratch.ReadWord(cpu.pc)
	cpu.pc++
	debug.Debugf("CPU", cpu.traceMsk, traceInst, "%6d: %s", cpu.pc-1, disassemble.Disassemble(inst))
	return cpu.execute(inst)
}

// One read-in cycle. The odd card lands in R1, the even card is executed as
// an instruction. The deck arranges matching STORE_R1 cards so consecutive
// data words reach their scratchpad addresses; the machine itself does not
// advance PC here.
func (cpu *CPU) stepReadIn() error {
	data, status := cpu.reader.ReadCard()
	if err := cpu.cardError(status); err != nil {
		return err
	}
	cpu.r1 = data
	debug.Debugf("CPU", cpu.traceMsk, traceCard, "data card %d", word.SignExtend(data))

	inst, status := cpu.reader.ReadCard()
	if err := cpu.cardError(status); err != nil {
		return err
	}
	debug.Debugf("CPU", cpu.traceMsk, traceCard, "inst card %s", disassemble.Disassemble(inst))
	return cpu.execute(inst)
}

func (cpu *CPU) cardError(status int) error {
	switch status {
	case card.CardOK:
		return nil
	case card.CardError:
		return fmt.Errorf("bad card in deck: %w", cpu.reader.LastError())
	default:
		return ErrDeck
	}
}

// Execute one instruction. In execution mode PC already points one past the
// fetched word; during read-in PC is left as it was.
func (cpu *CPU) execute(inst uint64) error {
	opcode, operand := word.Decode(inst)
	addr := int64(operand)

	switch opcode {
	case op.OpLoadR1:
		cpu.r1 = cpu.scratch.ReadWord(addr)
	case op.OpLoadR2:
		cpu.r2 = cpu.scratch.ReadWord(addr)
	case op.OpLoadR3:
		cpu.r3 = cpu.scratch.ReadWord(addr)
	case op.OpStoreR1:
		cpu.scratch.WriteWord(addr, cpu.r1)
	case op.OpStoreR3:
		cpu.scratch.WriteWord(addr, cpu.r3)
	case op.OpClearR1:
		cpu.r1 = 0
	case op.OpClearR2:
		cpu.r2 = 0
	case op.OpClearR3:
		cpu.r3 = 0

	case op.OpAdd:
		cpu.r1 = word.Mask(word.SignExtend(cpu.r1) + word.SignExtend(cpu.r2))
	case op.OpNeg:
		cpu.r1 = word.Mask(-word.SignExtend(cpu.r1))
	case op.OpMult:
		cpu.r1, cpu.r2 = word.MulPair(cpu.r2, cpu.r3)
	case op.OpDiv:
		// Division by zero leaves R1 alone and the run continues.
		if word.SignExtend(cpu.r2) != 0 {
			if cpu.divMode == DivFraction {
				cpu.r1 = word.DivFrac(cpu.r1, cpu.r2)
			} else {
				cpu.r1 = word.Mask(word.SignExtend(cpu.r1) / word.SignExtend(cpu.r2))
			}
		}
	case op.OpRound:
		if word.Negative(cpu.r2) {
			cpu.r1 = word.Mask(word.SignExtend(cpu.r1) + 1)
		}
	case op.OpAnd:
		cpu.r1 &= cpu.r2
	case op.OpOr:
		cpu.r1 |= cpu.r2
	case op.OpXor:
		cpu.r1 ^= cpu.r2
	case op.OpShift:
		cpu.r1, cpu.r2 = word.ShiftPair(cpu.r1, cpu.r2, word.SignedOperand(operand))

	case op.OpCall:
		cpu.call(operand)
	case op.OpRet:
		cpu.pc = word.SignExtend(cpu.r3)

	case op.OpWritePT:
		cpu.punch.Punch(cpu.r3)
	case op.OpReadCR:
		// At end of deck R3 keeps its value and the run continues.
		if value, status := cpu.reader.ReadCard(); status == card.CardOK {
			cpu.r3 = value
		}

	case op.OpSkip:
		cpu.pc++
	case op.OpSkipZ:
		if cpu.r1 == 0 {
			cpu.pc++
		}
	case op.OpSkipNZ:
		if cpu.r1 != 0 {
			cpu.pc++
		}

	case op.OpTXR:
		cpu.pc = addr
		if cpu.mode == ModeReadIn {
			cpu.mode = ModeExecute
			slog.Debug("entering execution mode", "pc", cpu.pc)
		}
	case op.OpHalt:
		return ErrHalt

	default:
		return fmt.Errorf("unknown opcode %d at %d", opcode, cpu.pc-1)
	}
	return nil
}

// Install a library overlay. All scratchpad writes land before the next
// fetch; a missing or broken library reduces CALL to a no-op.
func (cpu *CPU) call(operand uint64) {
	writes, err := overlay.Install(cpu.pc, operand, cpu.library)
	if err != nil {
		slog.Error("call skipped: " + err.Error())
		return
	}
	for _, w := range writes {
		cpu.scratch.WriteWord(w.Index, w.Value)
	}
	debug.Debugf("CPU", cpu.traceMsk, traceOverlay, "overlay of %d words at %d",
		len(writes)-1, writes[0].Index)
}
