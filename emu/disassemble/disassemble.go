/*
 * UY1 - Instruction printer.
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

package disassemble

import (
	"strconv"

	op "github.com/rcornwell/UY1/emu/opcodemap"
	"github.com/rcornwell/UY1/emu/word"
)

// Instructions that take no operand.
var noOperand = map[int]bool{
	op.OpClearR1: true,
	op.OpClearR2: true,
	op.OpClearR3: true,
	op.OpAdd:     true,
	op.OpNeg:     true,
	op.OpMult:    true,
	op.OpDiv:     true,
	op.OpRound:   true,
	op.OpAnd:     true,
	op.OpOr:      true,
	op.OpXor:     true,
	op.OpRet:     true,
	op.OpWritePT: true,
	op.OpReadCR:  true,
	op.OpSkip:    true,
	op.OpSkipZ:   true,
	op.OpSkipNZ:  true,
	op.OpHalt:    true,
}

// Disassemble renders a word as a mnemonic line, or as a signed number when
// the opcode field names no instruction.
func Disassemble(inst uint64) string {
	opcode, operand := word.Decode(inst)
	name := op.Name(opcode)
	if name == "" {
		return strconv.FormatInt(word.SignExtend(inst), 10)
	}
	if noOperand[opcode] {
		return name
	}
	if opcode == op.OpShift {
		return name + " " + strconv.FormatInt(word.SignedOperand(operand), 10)
	}
	return name + " " + strconv.FormatUint(operand, 10)
}
