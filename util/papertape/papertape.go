/*
 * UY1 - Paper tape punch.
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

package papertape

import (
	"bufio"
	"os"
	"strconv"

	"github.com/rcornwell/UY1/emu/word"
)

// Paper tape output. Words are appended as signed decimal text, one per
// line, in write order.
type Context struct {
	file   *os.File      // file handle
	writer *bufio.Writer // buffered output
	count  int           // Words punched so far
}

func NewContext() *Context {
	return &Context{}
}

// Return if attached to a file.
func (pt *Context) Attached() bool {
	return pt.file != nil
}

// Return file name attached.
func (pt *Context) FileName() string {
	if pt.file != nil {
		return pt.file.Name()
	}
	return ""
}

// Attach output file to punch context. The tape starts blank.
func (pt *Context) Attach(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	pt.file = file
	pt.writer = bufio.NewWriter(file)
	pt.count = 0
	return nil
}

// Detach the output file, flushing anything punched.
func (pt *Context) Detach() error {
	if pt.file == nil {
		return nil
	}
	err := pt.writer.Flush()
	if cerr := pt.file.Close(); err == nil {
		err = cerr
	}
	pt.file = nil
	pt.writer = nil
	return err
}

// Number of words punched so far.
func (pt *Context) Count() int {
	return pt.count
}

// Punch appends one word to the tape as a signed decimal line.
func (pt *Context) Punch(value uint64) {
	if pt.writer == nil {
		return
	}
	_, _ = pt.writer.WriteString(strconv.FormatInt(word.SignExtend(value), 10))
	_ = pt.writer.WriteByte('\n')
	pt.count++
}
