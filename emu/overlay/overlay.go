/*
 * UY1 - Overlay installer.
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

package overlay

import (
	"errors"

	op "github.com/rcornwell/UY1/emu/opcodemap"
	"github.com/rcornwell/UY1/emu/word"
)

/* CALL materialises a library routine into the scratchpad.
 *
 * The 40 bit operand packs two fields: the high 16 bits give the library
 * start index, the low 24 bits the scratchpad destination. The routine body
 * is copied word for word until the terminal RET, which is replaced by a
 * TXR back to the instruction after the call site. The call site itself,
 * the hole the programmer left at the current PC, is patched with a TXR
 * into the copy, so the next fetch transfers into the overlay.
 */

const (
	libraryBits        = 16
	destBits           = 24
	destMask    uint64 = (1 << destBits) - 1
)

var (
	ErrNoLibrary = errors.New("library tape not attached")
	ErrNoReturn  = errors.New("library routine has no RET")
)

// Reader is the capability the installer needs on the library tape.
type Reader interface {
	Attached() bool
	ReadWord(index int64) uint64
}

// A Write is one scratchpad update produced by installing an overlay.
type Write struct {
	Index int64  // Scratchpad position
	Value uint64 // Word to store
}

// Install builds the scratchpad writes for a CALL executed with the given
// PC and operand. The writes come back in installation order: the routine
// body, the return TXR, and last the call site patch.
func Install(pc int64, operand uint64, library Reader) ([]Write, error) {
	if library == nil || !library.Attached() {
		return nil, ErrNoLibrary
	}

	libIndex := int64((operand >> destBits) & ((1 << libraryBits) - 1))
	dest := int64(operand & destMask)

	writes := []Write{}
	for {
		inst := library.ReadWord(libIndex)
		opcode, _ := word.Decode(inst)
		if opcode == op.OpRet {
			// The RET itself is never copied. Control returns through a
			// TXR to the word after the call site hole.
			writes = append(writes, Write{dest, word.Encode(op.OpTXR, uint64(pc+1))})
			break
		}
		writes = append(writes, Write{dest, inst})
		libIndex++
		dest++
		if dest > int64(destMask) {
			return nil, ErrNoReturn
		}
	}

	// Patch the hole at the call site with a jump into the copy.
	writes = append(writes, Write{pc, word.Encode(op.OpTXR, operand&destMask)})
	return writes, nil
}
