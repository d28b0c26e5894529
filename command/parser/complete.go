/*
 * asmconv - Command line completion.
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
	"slices"
	"strings"
	"unicode"

	"github.com/rcornwell/asmconv/asm/isa"
	command "github.com/rcornwell/asmconv/command/command"
)

// Called to complete a command line, during line editing.
func CompleteCmd(commandLine string, session *Session) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord(false)

	// We have a command, let it try and complete it.
	if !line.isEOL() && unicode.IsSpace(rune(line.line[line.pos])) {
		match := matchList(name)
		if len(match) != 1 || match[0].Complete == nil {
			return nil
		}
		return match[0].Complete(&line, session)
	}

	if name == "" && !line.isEOL() {
		return nil
	}
	var matches []string
	for _, m := range cmdList {
		if strings.HasPrefix(m.Name, name) {
			matches = append(matches, m.Name)
		}
	}
	slices.Sort(matches)
	return matches
}

// Return words that start with prefix, appended to leading.
func matchWords(leading, prefix string, words []string, fold func(string) string) []string {
	matches := []string{}
	for _, word := range words {
		if strings.HasPrefix(fold(word), fold(prefix)) {
			matches = append(matches, leading+word+" ")
		}
	}
	return matches
}

// Complete mnemonic of assemble command.
func mnemonicComplete(line *cmdLine, session *Session) []string {
	line.skipSpace()
	leading := line.line[:line.pos]
	prefix := line.line[line.pos:]
	if strings.ContainsAny(prefix, " ,") {
		return nil
	}
	return matchWords(leading, prefix, session.ISA.Mnemonics(), strings.ToLower)
}

// Complete name of instruction set.
func isaComplete(line *cmdLine, _ *Session) []string {
	line.skipSpace()
	leading := line.line[:line.pos]
	prefix := line.line[line.pos:]
	return matchWords(leading, prefix, isa.Names(), strings.ToLower)
}

// Complete last option of set command.
func setComplete(line *cmdLine, session *Session) []string {
	opts := session.Options()
	for {
		line.skipSpace()
		leading := line.line[:line.pos]
		word := line.line[line.pos:]
		if end := strings.IndexFunc(word, unicode.IsSpace); end >= 0 {
			// Option complete, skip over it.
			line.pos += end
			continue
		}

		name, value, equal := strings.Cut(word, "=")
		if !equal {
			matches := []string{}
			for _, opt := range opts {
				if strings.HasPrefix(opt.Name, strings.ToLower(name)) {
					sep := " "
					if opt.OptionType == command.OptionList {
						sep = "="
					}
					matches = append(matches, leading+opt.Name+sep)
				}
			}
			return matches
		}

		opt := matchOption(strings.ToLower(name), opts)
		if opt.OptionType != command.OptionList {
			return nil
		}
		return matchWords(leading+name+"=", value, opt.OptionList, strings.ToLower)
	}
}
