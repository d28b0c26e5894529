/*
 * asmconv - Disassembler.
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

package disassemble

import (
	"fmt"

	"github.com/rcornwell/asmconv/asm/asmerr"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/isa"
	"github.com/rcornwell/asmconv/util/debug"
)

const (
	debugIdentify = 1 << iota // Show mnemonic found.
	debugFields               // Show field values.
)

var debugOption = map[string]int{
	"IDENTIFY": debugIdentify,
	"FIELDS":   debugFields,
}

var debugMsk int

// Enable debug options.
func Debug(opt string) error {
	return debug.SetOption("disassemble", debugOption, &debugMsk, opt)
}

// List of valid debug options.
func DebugOptions() []string {
	return debug.OptionNames(debugOption)
}

// Decoded is one instruction word split into its fields.
type Decoded struct {
	Word   uint32
	Inst   isa.Inst
	Layout fields.Layout
	Values map[string]uint32
}

// Decode identifies the instruction in word and extracts its fields.
// Reserved bits and fields the instruction does not use must be zero.
func Decode(set *isa.ISA, word uint32) (Decoded, error) {
	name, err := set.Identify(word)
	if err != nil {
		return Decoded{}, err
	}
	inst, err := set.Lookup(name)
	if err != nil {
		return Decoded{}, err
	}
	debug.Debugf("disassemble", debugMsk, debugIdentify, "%s is %s format %s", set.FormatWord(word), name, inst.Format)
	layout := set.Layout(inst.Format)
	if layout.ReservedSet(word) {
		return Decoded{}, fmt.Errorf("%w, reserved bits set in %s", asmerr.ErrMalformedInstruction, set.FormatWord(word))
	}
	values := layout.Extract(word)
	debug.Debugf("disassemble", debugMsk, debugFields, "%s fields %v", name, values)
	for _, f := range layout.Fields() {
		if values[f.Name] != 0 && !inst.Uses(f.Name) {
			return Decoded{}, fmt.Errorf("%w, %s field %s not zero", asmerr.ErrMalformedInstruction, name, f.Name)
		}
	}
	return Decoded{Word: word, Inst: inst, Layout: layout, Values: values}, nil
}

// Text renders the decoded instruction as assembly.
func (d Decoded) Text(set *isa.ISA) (string, error) {
	return set.Render(d.Inst, d.Values)
}

// Disassemble returns the assembly text for one hex word.
func Disassemble(set *isa.ISA, text string) (string, error) {
	word, err := set.ParseWord(text)
	if err != nil {
		return "", err
	}
	decoded, err := Decode(set, word)
	if err != nil {
		return "", err
	}
	return decoded.Text(set)
}
