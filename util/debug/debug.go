/*
 * UY1 - Log trace data to a file.
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

package debug

import (
	"fmt"
	"os"

	config "github.com/rcornwell/UY1/config/configparser"
)

var traceFile *os.File

// Generic trace message, written when the module mask enables the level.
func Debugf(module string, mask int, level int, format string, a ...interface{}) {
	if traceFile != nil && (mask&level) != 0 {
		fmt.Fprintf(traceFile, module+": "+format+"\n", a...)
	}
}

// Active reports whether a trace file is open.
func Active() bool {
	return traceFile != nil
}

// register the trace file option on initialize.
func init() {
	config.RegisterOption("TRACEFILE", create)
}

// Create the trace file.
func create(fileName string) error {
	if traceFile != nil {
		return fmt.Errorf("can't have more than one trace file, previous: %s", traceFile.Name())
	}

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create trace file: %s", fileName)
	}

	traceFile = file
	return nil
}
