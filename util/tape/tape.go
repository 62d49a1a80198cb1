/*
 * UY1 - Word addressed tape.
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

package tape

import (
	"encoding/binary"
	"errors"
	"os"

	"github.com/rcornwell/UY1/emu/word"
)

// Each word occupies eight bytes, little endian, 48 bits used.
const frameSize = 8

var errNotAttached = errors.New("not attached")

// Structure to hold tape information.
type Context struct {
	file *os.File // file handle
	ring bool     // Write ring in place, tape is writable
}

func NewContext() *Context {
	return &Context{}
}

// Set tape ring in place, allow for write.
func (tape *Context) SetRing() {
	tape.ring = true
}

// Set tape no ring, read only.
func (tape *Context) SetNoRing() {
	tape.ring = false
}

// Determine if tape can be written.
func (tape *Context) Ring() bool {
	return tape.ring
}

// Return if attached to a file.
func (tape *Context) Attached() bool {
	return tape.file != nil
}

// Return file name attached.
func (tape *Context) FileName() string {
	if tape.file != nil {
		return tape.file.Name()
	}
	return ""
}

// Attach file to tape context. A tape with a ring starts blank.
func (tape *Context) Attach(fileName string) error {
	var err error
	if tape.ring {
		tape.file, err = os.Create(fileName)
	} else {
		tape.file, err = os.Open(fileName)
	}
	return err
}

// Detach a tape file from a tape context.
func (tape *Context) Detach() error {
	if tape.file == nil {
		return errNotAttached
	}
	err := tape.file.Close()
	tape.file = nil
	return err
}

// ReadWord returns the word at the given index. Positions never written,
// short reads and reads while detached all return zero.
func (tape *Context) ReadWord(index int64) uint64 {
	if tape.file == nil || index < 0 {
		return 0
	}
	var frame [frameSize]byte
	if n, _ := tape.file.ReadAt(frame[:], index*frameSize); n < frameSize {
		return 0
	}
	return binary.LittleEndian.Uint64(frame[:]) & word.Mask48
}

// WriteWord sets the word at the given index, extending the tape with zeros
// as needed. Writes to a tape without a ring are dropped.
func (tape *Context) WriteWord(index int64, value uint64) {
	if tape.file == nil || !tape.ring || index < 0 {
		return
	}
	var frame [frameSize]byte
	binary.LittleEndian.PutUint64(frame[:], value&word.Mask48)
	_, _ = tape.file.WriteAt(frame[:], index*frameSize)
}
