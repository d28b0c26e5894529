/*
 * asmconv - Assembler.
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

package assemble

import (
	"fmt"
	"strings"

	"github.com/rcornwell/asmconv/asm/asmerr"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/isa"
	"github.com/rcornwell/asmconv/util/debug"
)

const (
	debugTokens = 1 << iota // Show tokens of instruction.
	debugFormat             // Show format chosen.
	debugWord               // Show encoded word.
)

var debugOption = map[string]int{
	"TOKENS": debugTokens,
	"FORMAT": debugFormat,
	"WORD":   debugWord,
}

var debugMsk int

// Enable debug options.
func Debug(opt string) error {
	return debug.SetOption("assemble", debugOption, &debugMsk, opt)
}

// List of valid debug options.
func DebugOptions() []string {
	return debug.OptionNames(debugOption)
}

// Tokens splits an instruction into mnemonic and operands. Commas
// separate operands the same as white space.
func Tokens(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, ",", " "))
}

// Encode assembles one instruction into a word.
func Encode(set *isa.ISA, line string, policy fields.Policy) (uint32, error) {
	tokens := Tokens(line)
	debug.Debugf("assemble", debugMsk, debugTokens, "%s tokens %q", set.Name, tokens)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w, empty instruction", asmerr.ErrMalformedInstruction)
	}

	inst, err := set.Lookup(tokens[0])
	if err != nil {
		return 0, err
	}

	operands := tokens[1:]
	format, err := set.Classify(inst, operands)
	if err != nil {
		return 0, err
	}
	debug.Debugf("assemble", debugMsk, debugFormat, "%s format %s", inst.Name, format)
	word, err := set.Encode(inst, format, operands, policy)
	if err != nil {
		return 0, err
	}
	debug.Debugf("assemble", debugMsk, debugWord, "%s word %s", inst.Name, set.FormatWord(word))
	return word, nil
}

// Assemble returns the hex word for one instruction. Values too large
// for their field are rejected.
func Assemble(set *isa.ISA, line string) (string, error) {
	return AssembleWith(set, line, fields.Reject)
}

// AssembleWith is Assemble with a chosen overflow policy.
func AssembleWith(set *isa.ISA, line string, policy fields.Policy) (string, error) {
	word, err := Encode(set, line, policy)
	if err != nil {
		return "", err
	}
	return set.FormatWord(word), nil
}
