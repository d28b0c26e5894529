/*
 * asmconv - Simple teaching instruction set.
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

package simple

import (
	"fmt"

	"github.com/rcornwell/asmconv/asm/asmerr"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/isa"
	"github.com/rcornwell/asmconv/asm/symtab"
)

// Name the instruction set registers under.
const Name = "simple"

const (
	// Opcode definitions.
	OpADD = 0x0 // src, dst
	OpSUB = 0x1 // src, dst
	OpAND = 0x2 // src, dst
	OpOR  = 0x3 // src, dst
	OpMOV = 0x4 // #imm, dst
	OpLDR = 0x5 // [src], dst
	OpSTR = 0x6 // [src], dst
	OpJMP = 0x7 // target
	OpHLT = 0x8
)

// Field names.
const (
	fSrc    = "src"
	fDst    = "dst"
	fImm    = "imm"
	fTarget = "target"
)

var opcodes = symtab.New([]symtab.Entry{
	{Name: "ADD", Code: OpADD},
	{Name: "SUB", Code: OpSUB},
	{Name: "AND", Code: OpAND},
	{Name: "OR", Code: OpOR},
	{Name: "MOV", Code: OpMOV},
	{Name: "LDR", Code: OpLDR},
	{Name: "STR", Code: OpSTR},
	{Name: "JMP", Code: OpJMP},
	{Name: "HLT", Code: OpHLT},
}, symtab.Upper, asmerr.ErrUnknownMnemonic)

var registers = symtab.New([]symtab.Entry{
	{Name: "R0", Code: 0},
	{Name: "R1", Code: 1},
	{Name: "R2", Code: 2},
	{Name: "R3", Code: 3},
	{Name: "R4", Code: 4},
	{Name: "R5", Code: 5},
	{Name: "R6", Code: 6},
	{Name: "R7", Code: 7},
}, symtab.Upper, asmerr.ErrUnknownRegister)

// The opcode sits above an 8 bit operand byte, the rest of the word is unused.
var (
	high   = fields.Field{Name: fields.Reserved, Width: 20, Offset: 12}
	opcode = fields.Field{Name: isa.FieldOp, Width: 4, Offset: 8}
	dst    = fields.Field{Name: fDst, Width: 3, Offset: 0}
)

var regLayout = fields.Must(32, high, opcode,
	fields.Field{Name: fSrc, Width: 3, Offset: 5},
	fields.Field{Name: fields.Reserved, Width: 2, Offset: 3},
	dst)

var layouts = map[isa.Format]fields.Layout{
	isa.FormatNone: fields.Must(32, high, opcode,
		fields.Field{Name: fields.Reserved, Width: 8, Offset: 0}),
	isa.FormatTarget: fields.Must(32, high, opcode,
		fields.Field{Name: fTarget, Width: 8, Offset: 0}),
	isa.FormatRegReg:    regLayout,
	isa.FormatLoadStore: regLayout,
	isa.FormatImmReg: fields.Must(32, high, opcode,
		fields.Field{Name: fImm, Width: 5, Offset: 3},
		dst),
}

var insts = map[string]isa.Inst{
	"ADD": regReg("ADD"),
	"SUB": regReg("SUB"),
	"AND": regReg("AND"),
	"OR":  regReg("OR"),
	"MOV": {Name: "MOV", Format: isa.FormatImmReg, Operands: []isa.Operand{
		{Kind: isa.KindImmediate, Field: fImm},
		{Kind: isa.KindRegister, Field: fDst},
	}},
	"LDR": loadStore("LDR"),
	"STR": loadStore("STR"),
	"JMP": {Name: "JMP", Format: isa.FormatTarget, Operands: []isa.Operand{
		{Kind: isa.KindTarget, Field: fTarget},
	}},
	"HLT": {Name: "HLT", Format: isa.FormatNone},
}

func regReg(name string) isa.Inst {
	return isa.Inst{Name: name, Format: isa.FormatRegReg, Operands: []isa.Operand{
		{Kind: isa.KindRegister, Field: fSrc},
		{Kind: isa.KindRegister, Field: fDst},
	}}
}

func loadStore(name string) isa.Inst {
	return isa.Inst{Name: name, Format: isa.FormatLoadStore, Operands: []isa.Operand{
		{Kind: isa.KindIndirect, Field: fSrc},
		{Kind: isa.KindRegister, Field: fDst},
	}}
}

var syntax = isa.Syntax{
	RegisterPrefix:  "R",
	ImmediatePrefix: "#",
	ImmediateBase:   10,
	TargetBase:      10,
	Open:            "[",
	Close:           "]",
	UpperHex:        true,
}

type classifier struct{}

// Classify uses the halt and jump opcodes, then the shape of the operands.
func (classifier) Classify(inst isa.Inst, operands []string) (isa.Format, error) {
	code, err := opcodes.Code(inst.Name)
	if err != nil {
		return 0, err
	}
	switch code {
	case OpHLT:
		return isa.FormatNone, nil
	case OpJMP:
		return isa.FormatTarget, nil
	}
	if len(operands) != 2 {
		return 0, fmt.Errorf("%w for %s", asmerr.ErrMalformedInstruction, inst.Name)
	}
	format := isa.Format(0)
	if syntax.Shape(operands[1]) == isa.KindRegister {
		switch syntax.Shape(operands[0]) {
		case isa.KindRegister:
			format = isa.FormatRegReg
		case isa.KindImmediate:
			format = isa.FormatImmReg
		case isa.KindIndirect:
			format = isa.FormatLoadStore
		}
	}
	if format == 0 {
		return 0, fmt.Errorf("%w %s %s", asmerr.ErrInvalidOperandSyntax, operands[0], operands[1])
	}
	// Each mnemonic takes one operand form so decode can find it again.
	if format != inst.Format {
		return 0, fmt.Errorf("%w, %s takes %s operands", asmerr.ErrInvalidOperandSyntax, inst.Name, inst.Format)
	}
	return format, nil
}

func (classifier) Identify(word uint32) (string, error) {
	return opcodes.Name(regLayout.Get(word, isa.FieldOp))
}

// ISA is the simple instruction set.
var ISA = &isa.ISA{
	Name:       Name,
	Bits:       32,
	Syntax:     syntax,
	Opcodes:    opcodes,
	Registers:  registers,
	Layouts:    layouts,
	Insts:      insts,
	Classifier: classifier{},
}

func init() {
	isa.Register(ISA)
}
