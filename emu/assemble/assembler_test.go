/*
 * UY1 - Assembler test cases.
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
	"testing"

	op "github.com/rcornwell/UY1/emu/opcodemap"
	"github.com/rcornwell/UY1/emu/word"
)

// Check instruction lines.
func TestAssembleInstructions(t *testing.T) {
	tests := []struct {
		line   string
		expect uint64
	}{
		{"HALT", uint64(op.OpHalt) << 40},
		{"TXR 0", uint64(op.OpTXR) << 40},
		{"TXR 10", uint64(op.OpTXR)<<40 | 10},
		{"STORE_R1 100", uint64(op.OpStoreR1)<<40 | 100},
		{"LOAD_R2 0x20", uint64(op.OpLoadR2)<<40 | 0x20},
		{"SHIFT -3", uint64(op.OpShift)<<40 | (word.Mask(-3) & word.OperandMask)},
		{"CALL 0x1000000", uint64(op.OpCall)<<40 | 0x1000000},
		{"  add  ", uint64(op.OpAdd) << 40},
		{"RET # tail of routine", uint64(op.OpRet) << 40},
	}
	for _, test := range tests {
		r, err := Assemble(test.line)
		if err != nil {
			t.Errorf("Assemble(%q) got error: %s", test.line, err.Error())
			continue
		}
		if r != test.expect {
			t.Errorf("Assemble(%q) got: %012x expected: %012x", test.line, r, test.expect)
		}
	}
}

// Check raw data lines.
func TestAssembleData(t *testing.T) {
	tests := []struct {
		line   string
		expect uint64
	}{
		{"0", 0},
		{"42", 42},
		{"-1", word.Mask48},
		{"0x63", 0x63},
		{"281474976710655", word.Mask48},
	}
	for _, test := range tests {
		r, err := Assemble(test.line)
		if err != nil {
			t.Errorf("Assemble(%q) got error: %s", test.line, err.Error())
			continue
		}
		if r != test.expect {
			t.Errorf("Assemble(%q) got: %012x expected: %012x", test.line, r, test.expect)
		}
	}
}

// Check bad lines are rejected.
func TestAssembleErrors(t *testing.T) {
	lines := []string{
		"",
		"   # only a comment",
		"FROBNICATE",
		"TXR ten",
		"ADD 1 2",
		"42 43",
	}
	for _, line := range lines {
		if _, err := Assemble(line); err == nil {
			t.Errorf("Assemble(%q) did not get error", line)
		}
	}
}

// Check comment and blank detection.
func TestSkip(t *testing.T) {
	tests := []struct {
		line   string
		expect bool
	}{
		{"", true},
		{"   ", true},
		{"# deck header", true},
		{"  # indented comment", true},
		{"HALT", false},
		{"42", false},
	}
	for _, test := range tests {
		if r := Skip(test.line); r != test.expect {
			t.Errorf("Skip(%q) got: %v expected: %v", test.line, r, test.expect)
		}
	}
}
