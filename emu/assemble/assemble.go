/*
 * UY1 - Card and tape assembler.
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

package assembler

import (
	"errors"
	"strconv"
	"strings"

	op "github.com/rcornwell/UY1/emu/opcodemap"
	"github.com/rcornwell/UY1/emu/word"
)

/* Source format, one word per line:
 *
 * '#' starts a comment, rest of line is ignored.
 * <line> := <number> | <mnemonic> | <mnemonic> <operand>
 * <number> := signed decimal or 0x prefixed hex, taken modulo 2^48.
 * <operand> := decimal or 0x prefixed hex, stored in the low 40 bits.
 */

var errEmpty = errors.New("empty line")

// Assemble one source line into a machine word.
func Assemble(line string) (uint64, error) {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, errEmpty
	}

	// A line starting with a number is a raw data word.
	if value, err := strconv.ParseInt(fields[0], 0, 64); err == nil {
		if len(fields) != 1 {
			return 0, errors.New("extra data after value " + fields[0])
		}
		return word.Mask(value), nil
	}

	opcode, ok := op.Lookup(strings.ToUpper(fields[0]))
	if !ok {
		return 0, errors.New("undefined opcode " + fields[0])
	}

	var operand int64
	switch len(fields) {
	case 1:
	case 2:
		var err error
		operand, err = strconv.ParseInt(fields[1], 0, 64)
		if err != nil {
			return 0, errors.New("invalid operand for " + fields[0])
		}
	default:
		return 0, errors.New("extra data after instruction " + fields[0])
	}
	return word.Encode(opcode, uint64(operand)), nil
}

// Skip reports whether a source line carries no card: blank or comment only.
func Skip(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || line[0] == '#'
}
