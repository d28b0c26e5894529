/*
 * asmconv - Command parser.
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

package parser

import (
	"errors"
	"strings"
	"unicode"

	command "github.com/rcornwell/asmconv/command/command"
)

type cmd struct {
	Name     string // Command name.
	Min      int    // Minimum match size.
	Process  func(*cmdLine, *Session) (bool, error)
	Complete func(*cmdLine, *Session) []string
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

// Execute the command line given. Returns true when the session should end.
func ProcessCommand(commandLine string, session *Session) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord(false)
	if name == "" {
		if line.isEOL() {
			return false, nil
		}
		return false, errors.New("command not found: " + line.rest())
	}

	match := matchList(name)
	if len(match) == 0 {
		return false, errors.New("command not found: " + name)
	}

	if len(match) > 1 {
		return false, errors.New("unique command not found: " + name)
	}

	return match[0].Process(&line, session)
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) < match.Min || len(command) > len(match.Name) {
		return false
	}
	return match.Name[:len(command)] == command
}

// Check if command matches one of the commands.
func matchList(command string) []cmd {
	if command == "" {
		return []cmd{}
	}

	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, command) {
			match = append(match, m)
		}
	}
	return match
}

// Match list of options.
func matchOption(option string, optList []command.Options) command.Options {
	for _, opt := range optList {
		if opt.Name == option {
			return opt
		}
	}
	return command.Options{OptionType: -1}
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// Check if at end of line.
func (line *cmdLine) isEOL() bool {
	return line.pos >= len(line.line)
}

// Return current character and advance to next.
func (line *cmdLine) getCurrent() byte {
	if line.isEOL() {
		return 0
	}
	by := line.line[line.pos]
	line.pos++
	return by
}

// Return remainder of line without surrounding space.
func (line *cmdLine) rest() string {
	line.skipSpace()
	value := strings.TrimSpace(line.line[line.pos:])
	line.pos = len(line.line)
	return value
}

// Parse a word of letters, returned in lower case. The word must end at a
// space, end of line or, when equal is set, an equal sign.
func (line *cmdLine) getWord(equal bool) string {
	line.skipSpace()
	pos := line.pos
	for !line.isEOL() && unicode.IsLetter(rune(line.line[line.pos])) {
		line.pos++
	}
	value := line.line[pos:line.pos]
	if !line.isEOL() {
		by := line.line[line.pos]
		if !unicode.IsSpace(rune(by)) && (!equal || by != '=') {
			line.pos = pos
			return ""
		}
	}
	return strings.ToLower(value)
}

// Get an option.
func (line *cmdLine) getOption(opts []command.Options) (*command.CmdOption, error) {
	// Get a word, stoping at equal or space.
	name := line.getWord(true)
	if name == "" {
		if !line.isEOL() {
			return nil, errors.New("invalid option: " + line.rest())
		}
		return nil, nil
	}

	opt := command.CmdOption{Name: name}
	match := matchOption(name, opts)
	switch match.OptionType {
	case -1:
		return nil, errors.New("unknown option: " + name)
	case command.OptionSwitch:
		if !line.isEOL() && line.line[line.pos] == '=' {
			return nil, errors.New("switch option can't have arguments: " + name)
		}
	case command.OptionList:
		if line.getCurrent() != '=' {
			return nil, errors.New("option must be followed by value: " + name)
		}
		value := line.getWord(false)
		if value == "" {
			return nil, errors.New("option must be followed by value: " + name)
		}
		opt.EqualOpt = value
		for _, valid := range match.OptionList {
			if valid == value {
				return &opt, nil
			}
		}
		return nil, errors.New("value not valid for option " + name + ": " + value)
	default:
		return nil, errors.New("invalid option type: " + name)
	}
	return &opt, nil
}

// Scan options and return a list of options.
func (line *cmdLine) getOptions(target command.Settable) ([]*command.CmdOption, error) {
	optlist := []*command.CmdOption{}
	opts := target.Options()
	for {
		opt, err := line.getOption(opts)
		if err != nil {
			return optlist, err
		}
		if opt == nil {
			break
		}
		optlist = append(optlist, opt)
	}
	return optlist, nil
}
