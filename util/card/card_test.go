/*
 * UY1 - Card deck test cases.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	op "github.com/rcornwell/UY1/emu/opcodemap"
)

func writeDeck(t *testing.T, lines string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "deck.txt")
	require.NoError(t, os.WriteFile(fileName, []byte(lines), 0o644))
	return fileName
}

func TestReadDeck(t *testing.T) {
	deck := NewContext()
	require.NoError(t, deck.Attach(writeDeck(t, "# demo deck\n42\n\nSTORE_R1 3\n-1\n")))
	defer deck.Detach()
	assert.True(t, deck.Attached())

	value, status := deck.ReadCard()
	assert.Equal(t, CardOK, status)
	assert.Equal(t, uint64(42), value)

	value, status = deck.ReadCard()
	assert.Equal(t, CardOK, status)
	assert.Equal(t, uint64(op.OpStoreR1)<<40|3, value)

	value, status = deck.ReadCard()
	assert.Equal(t, CardOK, status)
	assert.Equal(t, uint64(0xffffffffffff), value)
	assert.Equal(t, 3, deck.Count())

	_, status = deck.ReadCard()
	assert.Equal(t, CardEOF, status)
	_, status = deck.ReadCard()
	assert.Equal(t, CardEOF, status)
}

func TestBadCard(t *testing.T) {
	deck := NewContext()
	require.NoError(t, deck.Attach(writeDeck(t, "42\nNOSUCH 1\n7\n")))
	defer deck.Detach()

	_, status := deck.ReadCard()
	assert.Equal(t, CardOK, status)

	_, status = deck.ReadCard()
	assert.Equal(t, CardError, status)
	assert.Error(t, deck.LastError())
}

func TestAttachMissing(t *testing.T) {
	deck := NewContext()
	assert.Error(t, deck.Attach(filepath.Join(t.TempDir(), "nosuch.txt")))
	assert.False(t, deck.Attached())

	_, status := deck.ReadCard()
	assert.Equal(t, CardEOF, status)
}
