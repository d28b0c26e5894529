/*
 * asmconv - Instruction set description.
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

package isa

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rcornwell/asmconv/asm/asmerr"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/symtab"
	"github.com/rcornwell/asmconv/util/hex"
)

// Instruction formats.
type Format int

const (
	FormatNone      Format = 1 + iota // No operands.
	FormatTarget                      // Single jump target.
	FormatRegReg                      // Register, register.
	FormatImmReg                      // Immediate, register.
	FormatLoadStore                   // Indirect register.
	FormatRType                       // Three register R-type.
	FormatRShift                      // Shift R-type.
	FormatIType                       // Immediate I-type.
	FormatJType                       // Jump J-type.
)

var formatNames = map[Format]string{
	FormatNone:      "none",
	FormatTarget:    "target",
	FormatRegReg:    "reg-reg",
	FormatImmReg:    "imm-reg",
	FormatLoadStore: "load-store",
	FormatRType:     "R",
	FormatRShift:    "R-shift",
	FormatIType:     "I",
	FormatJType:     "J",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Field names shared by all instruction sets.
const (
	FieldOp    = "op"
	FieldFunct = "funct"
)

// Inst describes one mnemonic.
type Inst struct {
	Name     string    // Canonical mnemonic.
	Format   Format    // Format of instruction.
	Operands []Operand // Operands in source order.
}

// Uses reports whether field is set by the opcode or an operand.
func (i Inst) Uses(field string) bool {
	if field == FieldOp || field == FieldFunct {
		return true
	}
	for _, op := range i.Operands {
		if op.Field == field || op.Base == field {
			return true
		}
	}
	return false
}

// Classifier picks the format of an instruction.
type Classifier interface {
	// Classify returns the format for mnemonic with the given operand text.
	Classify(inst Inst, operands []string) (Format, error)
	// Identify returns the mnemonic encoded in word.
	Identify(word uint32) (string, error)
}

// ISA holds everything needed to translate one instruction set.
type ISA struct {
	Name      string
	Bits      uint // Word width.
	Syntax    Syntax
	Opcodes   *symtab.Table // Mnemonic to opcode.
	Functs    *symtab.Table // Mnemonic to function code, may be nil.
	Registers *symtab.Table // Register name to number.
	Layouts   map[Format]fields.Layout
	Insts     map[string]Inst // Keyed by canonical mnemonic.
	Classifier
}

// Lookup returns the instruction for mnemonic, any case.
func (a *ISA) Lookup(mnemonic string) (Inst, error) {
	name, ok := a.Opcodes.Canonical(mnemonic)
	if !ok {
		return Inst{}, fmt.Errorf("%w %s", asmerr.ErrUnknownMnemonic, mnemonic)
	}
	return a.Insts[name], nil
}

// Opcode returns the primary opcode of mnemonic.
func (a *ISA) Opcode(mnemonic string) (uint32, error) {
	return a.Opcodes.Code(mnemonic)
}

// Funct returns the function code of mnemonic.
func (a *ISA) Funct(mnemonic string) (uint32, error) {
	if a.Functs == nil {
		return 0, fmt.Errorf("%w %s", asmerr.ErrUnknownMnemonic, mnemonic)
	}
	return a.Functs.Code(mnemonic)
}

// Layout returns the field layout of format.
func (a *ISA) Layout(f Format) fields.Layout {
	return a.Layouts[f]
}

// Digits is the number of hex digits in a word.
func (a *ISA) Digits() int {
	return int((a.Bits + 3) / 4)
}

// FormatWord renders word as fixed width hex.
func (a *ISA) FormatWord(word uint32) string {
	return hex.Word(word, a.Digits(), a.Syntax.UpperHex)
}

// ParseWord reads a fixed width hex word.
func (a *ISA) ParseWord(text string) (uint32, error) {
	return hex.ParseWord(text, a.Digits())
}

// Mnemonics returns the mnemonics in table order.
func (a *ISA) Mnemonics() []string {
	names := make([]string, 0, a.Opcodes.Len())
	for _, e := range a.Opcodes.Entries() {
		names = append(names, e.Name)
	}
	return names
}

// Check verifies the tables against each other. Every mnemonic must have
// exactly one instruction whose format has a layout naming all its fields.
func (a *ISA) Check() error {
	if a.Classifier == nil || a.Opcodes == nil || a.Registers == nil {
		return errors.New(a.Name + ": incomplete instruction set")
	}
	for _, name := range a.Mnemonics() {
		inst, ok := a.Insts[name]
		if !ok {
			return fmt.Errorf("%s: no instruction for %s", a.Name, name)
		}
		layout, ok := a.Layouts[inst.Format]
		if !ok {
			return fmt.Errorf("%s: no layout for %s format %s", a.Name, name, inst.Format)
		}
		if layout.Bits() != a.Bits {
			return fmt.Errorf("%s: layout %s is %d bits", a.Name, inst.Format, layout.Bits())
		}
		if _, ok := layout.Field(FieldOp); !ok {
			return fmt.Errorf("%s: layout %s has no opcode", a.Name, inst.Format)
		}
		if a.Functs != nil && a.Functs.Has(name) {
			if _, ok := layout.Field(FieldFunct); !ok {
				return fmt.Errorf("%s: %s needs a function field", a.Name, name)
			}
		}
		for _, op := range inst.Operands {
			for _, f := range []string{op.Field, op.Base} {
				if f == "" {
					continue
				}
				if _, ok := layout.Field(f); !ok {
					return fmt.Errorf("%s: %s operand field %s missing", a.Name, name, f)
				}
			}
		}
	}
	return nil
}

// Encode packs the opcode, function code and operand values into a word.
func (a *ISA) Encode(inst Inst, format Format, operands []string, policy fields.Policy) (uint32, error) {
	if len(operands) != len(inst.Operands) {
		return 0, fmt.Errorf("%w for %s", asmerr.ErrMalformedInstruction, inst.Name)
	}
	opcode, err := a.Opcode(inst.Name)
	if err != nil {
		return 0, err
	}
	values := map[string]uint32{FieldOp: opcode}
	if a.Functs != nil && a.Functs.Has(inst.Name) {
		values[FieldFunct], _ = a.Functs.Code(inst.Name)
	}
	for i, op := range inst.Operands {
		err := a.Syntax.parse(a.Registers, op, operands[i], values)
		if err != nil && (policy != fields.Truncate || !errors.Is(err, asmerr.ErrFieldOverflow)) {
			return 0, err
		}
	}
	return a.Layout(format).Pack(values, policy)
}

// Render formats decoded field values as assembly text.
func (a *ISA) Render(inst Inst, values map[string]uint32) (string, error) {
	text := inst.Name
	for i, op := range inst.Operands {
		str, err := a.Syntax.format(a.Registers, op, values)
		if err != nil {
			return "", err
		}
		if i == 0 {
			text += " " + str
		} else {
			text += ", " + str
		}
	}
	return text, nil
}

var isaMap = map[string]*ISA{}

// Register should be called from init functions.
func Register(a *ISA) {
	if err := a.Check(); err != nil {
		panic("isa: " + err.Error())
	}
	name := strings.ToLower(a.Name)
	if _, dup := isaMap[name]; dup {
		panic("isa: duplicate instruction set " + a.Name)
	}
	isaMap[name] = a
}

// Get returns a registered instruction set, name in any case.
func Get(name string) (*ISA, error) {
	a, ok := isaMap[strings.ToLower(name)]
	if !ok {
		return nil, errors.New("unknown instruction set: " + name)
	}
	return a, nil
}

// Names returns the registered instruction sets, sorted.
func Names() []string {
	names := make([]string, 0, len(isaMap))
	for name := range isaMap {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
