/*
 * asmconv - Configuration file parser
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
	"log/slog"
	"os"
	"strings"
	"unicode"
)

// List of options to pass to create routine.
type Option struct {
	Name     string    // Name of option.
	EqualOpt string    // Value of string after =.
	Value    []*string // Value of option.
}

// Current option line being parsed.
type optionLine struct {
	line   string // Current option line.
	pos    int    // Current position in line.
	number int    // Line number in file.
}

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <keyword> |
 *           <keyword> <whitespace> <quoteopt> |
 *           <keyword> <whitespace> <quoteopt> <options>
 * <options> ::= *(<option> *(<whitespace>))
 * <option> ::= <string> ['=' <quoteopt>] *(<commaopt>)
 * <commaopt> ::= ',' *(<whitespace>) <string>
 * <quoteopt> ::= <value> | '"' *(<letter> | <whitespace>) '"'
 * <keyword> ::= <letter> *(<letter> | <number>)
 */

const (
	TypeOption  = 1 + iota // Accepts a option parameter.
	TypeOptions            // Accepts a parameter and list of options.
	TypeSwitch             // Option only used to set a flag.
)

// Option creation list.
type optionDef struct {
	create func(string, []Option) error
	ty     int
}

var optionDefs = map[string]optionDef{}

func register(name string, ty int, fn func(string, []Option) error) {
	name = strings.ToUpper(name)
	slog.Debug("Registering option: " + name)
	optionDefs[name] = optionDef{create: fn, ty: ty}
}

// Register should be called from init functions.
func RegisterOption(name string, fn func(string, []Option) error) {
	register(name, TypeOption, fn)
}

// Register should be called from init functions.
func RegisterOptions(name string, fn func(string, []Option) error) {
	register(name, TypeOptions, fn)
}

// Register should be called from init functions.
func RegisterSwitch(name string, fn func(string, []Option) error) {
	register(name, TypeSwitch, fn)
}

// Run the create routine of option name, which must be of type ty.
func createOption(name string, ty int, value string, options []Option) error {
	name = strings.ToUpper(name)
	def, ok := optionDefs[name]
	if !ok {
		return errors.New("unknown option: " + name)
	}
	if def.ty != ty {
		return errors.New("option used incorrectly: " + name)
	}
	return def.create(value, options)
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return LoadConfig(file)
}

// Process configuration lines from reader.
func LoadConfig(r io.Reader) error {
	reader := bufio.NewReader(r)
	number := 0
	for {
		var err error

		line := optionLine{}
		line.line, err = reader.ReadString('\n')
		number++
		line.number = number
		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		err = line.parseLine()
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse one line from file.
func (line *optionLine) parseLine() error {
	name := line.parseKeyword()
	if name == "" {
		if line.isEOL() {
			return nil
		}
		return fmt.Errorf("invalid option name, line: %d", line.number)
	}

	def, ok := optionDefs[name]
	if !ok {
		return fmt.Errorf("no option: %s registered, line: %d", name, line.number)
	}

	var err error
	switch def.ty {
	case TypeOption:
		var first *string
		first, err = line.parseFirst()
		if err != nil {
			return err
		}
		line.skipSpace()
		if !line.isEOL() || first == nil {
			return fmt.Errorf("option: %s not followed by single value, line: %d", name, line.number)
		}
		err = createOption(name, TypeOption, *first, nil)

	case TypeOptions:
		var first *string
		first, err = line.parseFirst()
		if err != nil {
			return err
		}
		if first == nil {
			return fmt.Errorf("option: %s not followed by value, line: %d", name, line.number)
		}
		var options []Option
		options, err = line.parseOptions()
		if err != nil {
			return err
		}
		err = createOption(name, TypeOptions, *first, options)

	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("switch: %s followed by options, line: %d", name, line.number)
		}
		err = createOption(name, TypeSwitch, "", nil)
	}
	if err != nil {
		return fmt.Errorf("%w, line: %d", err, line.number)
	}
	return nil
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// Check if at end of line.
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}
	return line.line[line.pos] == '#'
}

// Return next letter or digit in line. 0 if EOL or space.
func (line *optionLine) getNext() byte {
	line.pos++
	if line.isEOL() {
		return 0
	}
	by := line.line[line.pos]
	if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
		return by
	}
	return 0
}

// Parse keyword at start of line, returned in upper case.
func (line *optionLine) parseKeyword() string {
	line.skipSpace()
	if line.isEOL() || !unicode.IsLetter(rune(line.line[line.pos])) {
		return ""
	}
	name, _ := line.getName()
	return strings.ToUpper(name)
}

// Parse first parameter after keyword, nil if none.
func (line *optionLine) parseFirst() (*string, error) {
	line.skipSpace()
	if line.isEOL() {
		return nil, nil
	}
	value, ok := line.parseQuoteString()
	if !ok {
		return nil, fmt.Errorf("invalid quoted string line: %d [%d]", line.number, line.pos)
	}
	return &value, nil
}

// Parse string that is "string" or just string, starting at current position.
// Inside quotes "" stands for a single quote.
func (line *optionLine) parseQuoteString() (string, bool) {
	inQuote := false
	value := ""

	if line.pos < len(line.line) && line.line[line.pos] == '"' {
		inQuote = true
		line.pos++
	}

	for line.pos < len(line.line) {
		by := line.line[line.pos]
		if inQuote {
			if by == '"' {
				line.pos++
				if line.pos < len(line.line) && line.line[line.pos] == '"' {
					value += "\""
					line.pos++
					continue
				}
				return value, true
			}
		} else if unicode.IsSpace(rune(by)) || by == ',' || by == '#' {
			return value, true
		}
		value += string(by)
		line.pos++
	}
	return value, !inQuote
}

// Parse option name.
func (line *optionLine) getName() (string, error) {
	if line.isEOL() {
		return "", nil
	}

	// First character must be alphabetic.
	by := line.line[line.pos]
	if !unicode.IsLetter(rune(by)) {
		return "", fmt.Errorf("invalid option encountered line: %d [%d]", line.number, line.pos)
	}
	value := ""

	// Already verified that first character is letter,
	// so grab until not letter or number.
	for by != 0 {
		value += string([]byte{by})
		by = line.getNext()
	}

	return value, nil
}

// Parse options for a line.
func (line *optionLine) parseOption() (*Option, error) {
	line.skipSpace()

	value, err := line.getName()
	if value == "" {
		return nil, err
	}

	option := Option{Name: value}

	if line.isEOL() {
		return &option, nil
	}

	// Check if equals option.
	if line.line[line.pos] == '=' {
		line.pos++
		v, ok := line.parseQuoteString()
		if !ok {
			return nil, fmt.Errorf("invalid quoted string line: %d [%d]", line.number, line.pos)
		}
		option.EqualOpt = v
	}

	line.skipSpace()

	// Grab all , options
	for !line.isEOL() && line.line[line.pos] == ',' {
		line.pos++
		line.skipSpace()
		v, err := line.getName()
		if err != nil {
			return nil, err
		}
		if v != "" {
			option.Value = append(option.Value, &v)
		}
		line.skipSpace()
	}

	return &option, nil
}

// Collect all options for line.
func (line *optionLine) parseOptions() ([]Option, error) {
	options := []Option{}
	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}
		if option == nil {
			break
		}
		options = append(options, *option)
	}
	return options, nil
}
