/*
 * UY1 - Card deck reader.
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

package card

import (
	"bufio"
	"os"

	assembler "github.com/rcornwell/UY1/emu/assemble"
)

const (
	CardOK = 1 + iota
	CardEOF
	CardError
)

/* Card deck input for the simulator.
 *
 * A deck is a text file, one card per line. A card holds one 48 bit word,
 * written either as a signed number or as a mnemonic with optional operand.
 * Blank lines and lines starting with '#' are no cards at all and are
 * skipped, so decks can carry commentary without upsetting the read-in
 * pairing.
 */

// Structure to hold deck information.
type Context struct {
	file    *os.File       // file handle
	scanner *bufio.Scanner // line reader over the deck
	count   int            // Cards read so far
	lastErr error          // Assembly error of the last bad card
}

func NewContext() *Context {
	return &Context{}
}

// Return if attached to a file.
func (deck *Context) Attached() bool {
	return deck.file != nil
}

// Return file name attached.
func (deck *Context) FileName() string {
	if deck.file != nil {
		return deck.file.Name()
	}
	return ""
}

// Attach deck file to card context.
func (deck *Context) Attach(fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	deck.file = file
	deck.scanner = bufio.NewScanner(file)
	deck.count = 0
	return nil
}

// Detach the deck file from card context.
func (deck *Context) Detach() error {
	if deck.file == nil {
		return nil
	}
	err := deck.file.Close()
	deck.file = nil
	deck.scanner = nil
	return err
}

// Number of cards read so far.
func (deck *Context) Count() int {
	return deck.count
}

// LastError returns the assembly error behind the last CardError status.
func (deck *Context) LastError() error {
	return deck.lastErr
}

// ReadCard returns the next card as a machine word.
func (deck *Context) ReadCard() (uint64, int) {
	if deck.scanner == nil {
		return 0, CardEOF
	}
	for deck.scanner.Scan() {
		line := deck.scanner.Text()
		if assembler.Skip(line) {
			continue
		}
		value, err := assembler.Assemble(line)
		if err != nil {
			deck.lastErr = err
			return 0, CardError
		}
		deck.count++
		return value, CardOK
	}
	return 0, CardEOF
}
