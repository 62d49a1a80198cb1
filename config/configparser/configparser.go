/*
 * UY1 - Configuration file parser.
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <option> | <option> <whitespace> <value>
 * <option> := <string>, case insensitive
 * <value> := rest of line, leading and trailing whitespace stripped
 */

// Option handlers, called with the option value during load.
type optionDef struct {
	set      func(value string) error
	hasValue bool
}

var options = map[string]optionDef{}

var lineNumber int

// RegisterOption should be called from init functions. The handler receives
// the text after the option name.
func RegisterOption(name string, fn func(value string) error) {
	options[strings.ToUpper(name)] = optionDef{set: fn, hasValue: true}
}

// RegisterSwitch should be called from init functions. The handler is called
// with an empty value when the option appears alone on a line.
func RegisterSwitch(name string, fn func(value string) error) {
	options[strings.ToUpper(name)] = optionDef{set: fn}
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return loadConfig(file)
}

func loadConfig(file io.Reader) error {
	lineNumber = 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		if err := parseLine(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Parse one line from file.
func parseLine(line string) error {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name := line
	value := ""
	if idx := strings.IndexFunc(line, isSpace); idx >= 0 {
		name = line[:idx]
		value = strings.TrimSpace(line[idx:])
	}

	option, ok := options[strings.ToUpper(name)]
	if !ok {
		return fmt.Errorf("unknown option %s, line: %d", name, lineNumber)
	}
	if option.hasValue && value == "" {
		err := fmt.Sprintf("option %s not followed by value, line: %d", name, lineNumber)
		return errors.New(err)
	}
	if err := option.set(value); err != nil {
		return fmt.Errorf("option %s, line %d: %w", name, lineNumber, err)
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
