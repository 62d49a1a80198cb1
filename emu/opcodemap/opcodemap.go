/*
 * UY1 - Opcode definitions.
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

package opcodemap

const (
	// Opcode definitions.
	OpLoadR1  = 1 + iota // R1 = scratchpad[operand]
	OpLoadR2             // R2 = scratchpad[operand]
	OpLoadR3             // R3 = scratchpad[operand]
	OpStoreR1            // scratchpad[operand] = R1
	OpStoreR3            // scratchpad[operand] = R3
	OpClearR1            // R1 = 0
	OpClearR2            // R2 = 0
	OpClearR3            // R3 = 0
	OpAdd                // R1 = R1 + R2
	OpNeg                // R1 = -R1
	OpMult               // R1:R2 = R2 * R3
	OpDiv                // R1 = R1 / R2
	OpRound              // R1 = R1 + 1 if R2 negative
	OpAnd                // R1 = R1 & R2
	OpOr                 // R1 = R1 | R2
	OpXor                // R1 = R1 ^ R2
	OpShift              // Shift R1:R2 by signed operand
	OpCall               // Copy library routine to scratchpad
	OpRet                // PC = R3
	OpWritePT            // Punch R3 to paper tape
	OpReadCR             // R3 = next card
	OpSkip               // PC = PC + 1
	OpSkipZ              // PC = PC + 1 if R1 == 0
	OpSkipNZ             // PC = PC + 1 if R1 != 0
	OpTXR                // PC = operand, leave read-in mode

	OpHalt = 99 // Stop simulation
)

var mnemonics = map[string]int{
	"LOAD_R1":  OpLoadR1,
	"LOAD_R2":  OpLoadR2,
	"LOAD_R3":  OpLoadR3,
	"STORE_R1": OpStoreR1,
	"STORE_R3": OpStoreR3,
	"CLEAR_R1": OpClearR1,
	"CLEAR_R2": OpClearR2,
	"CLEAR_R3": OpClearR3,
	"ADD":      OpAdd,
	"NEG":      OpNeg,
	"MULT":     OpMult,
	"DIV":      OpDiv,
	"ROUND":    OpRound,
	"AND":      OpAnd,
	"OR":       OpOr,
	"XOR":      OpXor,
	"SHIFT":    OpShift,
	"CALL":     OpCall,
	"RET":      OpRet,
	"WRITE_PT": OpWritePT,
	"READ_CR":  OpReadCR,
	"SKIP":     OpSkip,
	"SKIP_Z":   OpSkipZ,
	"SKIP_NZ":  OpSkipNZ,
	"TXR":      OpTXR,
	"HALT":     OpHalt,
}

var names = map[int]string{}

func init() {
	for name, op := range mnemonics {
		names[op] = name
	}
}

// Lookup returns the opcode for a mnemonic.
func Lookup(mnemonic string) (int, bool) {
	op, ok := mnemonics[mnemonic]
	return op, ok
}

// Name returns the mnemonic for an opcode, empty if not defined.
func Name(opcode int) string {
	return names[opcode]
}
