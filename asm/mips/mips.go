/*
 * asmconv - MIPS instruction set.
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

package mips

import (
	"slices"
	"strconv"

	"github.com/rcornwell/asmconv/asm/asmerr"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/isa"
	"github.com/rcornwell/asmconv/asm/symtab"
)

// Name the instruction set registers under.
const Name = "mips"

// Field names.
const (
	fRS     = "rs"
	fRT     = "rt"
	fRD     = "rd"
	fShamt  = "shamt"
	fImm    = "imm"
	fTarget = "target"
)

var opcodes = symtab.New([]symtab.Entry{
	{Name: "add", Code: OpSpecial},
	{Name: "addu", Code: OpSpecial},
	{Name: "and", Code: OpSpecial},
	{Name: "nor", Code: OpSpecial},
	{Name: "or", Code: OpSpecial},
	{Name: "xor", Code: OpSpecial},
	{Name: "slt", Code: OpSpecial},
	{Name: "sltu", Code: OpSpecial},
	{Name: "sll", Code: OpSpecial},
	{Name: "srl", Code: OpSpecial},
	{Name: "sra", Code: OpSpecial},
	{Name: "sub", Code: OpSpecial},
	{Name: "subu", Code: OpSpecial},
	{Name: "jr", Code: OpSpecial},
	{Name: "mult", Code: OpSpecial},
	{Name: "multu", Code: OpSpecial},
	{Name: "div", Code: OpSpecial},
	{Name: "divu", Code: OpSpecial},
	{Name: "mfhi", Code: OpSpecial},
	{Name: "mflo", Code: OpSpecial},
	{Name: "addi", Code: OpADDI},
	{Name: "addiu", Code: OpADDIU},
	{Name: "slti", Code: OpSLTI},
	{Name: "sltiu", Code: OpSLTIU},
	{Name: "andi", Code: OpANDI},
	{Name: "ori", Code: OpORI},
	{Name: "xori", Code: OpXORI},
	{Name: "lui", Code: OpLUI},
	{Name: "beq", Code: OpBEQ},
	{Name: "bne", Code: OpBNE},
	{Name: "lb", Code: OpLB},
	{Name: "lh", Code: OpLH},
	{Name: "lw", Code: OpLW},
	{Name: "lbu", Code: OpLBU},
	{Name: "lhu", Code: OpLHU},
	{Name: "sb", Code: OpSB},
	{Name: "sh", Code: OpSH},
	{Name: "sw", Code: OpSW},
	{Name: "j", Code: OpJ},
	{Name: "jal", Code: OpJAL},
}, symtab.Lower, asmerr.ErrUnknownMnemonic)

var functs = symtab.New([]symtab.Entry{
	{Name: "add", Code: FnADD},
	{Name: "addu", Code: FnADDU},
	{Name: "and", Code: FnAND},
	{Name: "nor", Code: FnNOR},
	{Name: "or", Code: FnOR},
	{Name: "xor", Code: FnXOR},
	{Name: "slt", Code: FnSLT},
	{Name: "sltu", Code: FnSLTU},
	{Name: "sll", Code: FnSLL},
	{Name: "srl", Code: FnSRL},
	{Name: "sra", Code: FnSRA},
	{Name: "sub", Code: FnSUB},
	{Name: "subu", Code: FnSUBU},
	{Name: "jr", Code: FnJR},
	{Name: "mult", Code: FnMULT},
	{Name: "multu", Code: FnMULTU},
	{Name: "div", Code: FnDIV},
	{Name: "divu", Code: FnDIVU},
	{Name: "mfhi", Code: FnMFHI},
	{Name: "mflo", Code: FnMFLO},
}, symtab.Lower, asmerr.ErrUnknownMnemonic)

// Symbolic names come first so decode prefers them over $n.
var registerNames = []string{
	"$zero", "$at", "$v0", "$v1", "$a0", "$a1", "$a2", "$a3",
	"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7",
	"$s0", "$s1", "$s2", "$s3", "$s4", "$s5", "$s6", "$s7",
	"$t8", "$t9", "$k0", "$k1", "$gp", "$sp", "$fp", "$ra",
}

var registers = symtab.New(registerEntries(), symtab.Lower, asmerr.ErrUnknownRegister)

func registerEntries() []symtab.Entry {
	entries := make([]symtab.Entry, 0, 2*len(registerNames))
	for i, name := range registerNames {
		entries = append(entries, symtab.Entry{Name: name, Code: uint32(i)})
	}
	for i := range registerNames {
		entries = append(entries, symtab.Entry{Name: "$" + strconv.Itoa(i), Code: uint32(i)})
	}
	return entries
}

var layouts = map[isa.Format]fields.Layout{
	isa.FormatRType:     rLayout,
	isa.FormatRShift:    rLayout,
	isa.FormatIType:     iLayout,
	isa.FormatLoadStore: iLayout,
	isa.FormatJType: fields.Must(32,
		fields.Field{Name: isa.FieldOp, Width: 6, Offset: 26},
		fields.Field{Name: fTarget, Width: 26, Offset: 0}),
}

var rLayout = fields.Must(32,
	fields.Field{Name: isa.FieldOp, Width: 6, Offset: 26},
	fields.Field{Name: fRS, Width: 5, Offset: 21},
	fields.Field{Name: fRT, Width: 5, Offset: 16},
	fields.Field{Name: fRD, Width: 5, Offset: 11},
	fields.Field{Name: fShamt, Width: 5, Offset: 6},
	fields.Field{Name: isa.FieldFunct, Width: 6, Offset: 0})

var iLayout = fields.Must(32,
	fields.Field{Name: isa.FieldOp, Width: 6, Offset: 26},
	fields.Field{Name: fRS, Width: 5, Offset: 21},
	fields.Field{Name: fRT, Width: 5, Offset: 16},
	fields.Field{Name: fImm, Width: 16, Offset: 0})

func reg(field string) isa.Operand {
	return isa.Operand{Kind: isa.KindRegister, Field: field}
}

var imm = isa.Operand{Kind: isa.KindImmediate, Field: fImm}

// Operands for each format.
var patterns = map[isa.Format][]isa.Operand{
	isa.FormatRType:     {reg(fRD), reg(fRS), reg(fRT)},
	isa.FormatRShift:    {reg(fRD), reg(fRT), {Kind: isa.KindImmediate, Field: fShamt}},
	isa.FormatIType:     {reg(fRT), reg(fRS), imm},
	isa.FormatLoadStore: {reg(fRT), {Kind: isa.KindMemory, Field: fImm, Base: fRS}},
	isa.FormatJType:     {{Kind: isa.KindTarget, Field: fTarget}},
}

// Mnemonics that do not use the operands of their format.
var special = map[string][]isa.Operand{
	"jr":    {reg(fRS)},
	"mult":  {reg(fRS), reg(fRT)},
	"multu": {reg(fRS), reg(fRT)},
	"div":   {reg(fRS), reg(fRT)},
	"divu":  {reg(fRS), reg(fRT)},
	"mfhi":  {reg(fRD)},
	"mflo":  {reg(fRD)},
	"beq":   {reg(fRS), reg(fRT), imm},
	"bne":   {reg(fRS), reg(fRT), imm},
	"lui":   {reg(fRT), imm},
}

// R-type mnemonics with a shift amount in place of rs.
var shifts = []string{"sll", "srl", "sra"}

// classify picks the format from the opcode alone.
func classify(name string, opcode uint32) isa.Format {
	switch opcode {
	case OpSpecial:
		if slices.Contains(shifts, name) {
			return isa.FormatRShift
		}
		return isa.FormatRType
	case OpJ, OpJAL:
		return isa.FormatJType
	case OpLB, OpLH, OpLW, OpLBU, OpLHU, OpSB, OpSH, OpSW:
		return isa.FormatLoadStore
	}
	return isa.FormatIType
}

type classifier struct{}

func (classifier) Classify(inst isa.Inst, _ []string) (isa.Format, error) {
	opcode, err := opcodes.Code(inst.Name)
	if err != nil {
		return 0, err
	}
	return classify(inst.Name, opcode), nil
}

func (classifier) Identify(word uint32) (string, error) {
	opcode := rLayout.Get(word, isa.FieldOp)
	if opcode == OpSpecial {
		return functs.Name(rLayout.Get(word, isa.FieldFunct))
	}
	return opcodes.Name(opcode)
}

func instructions() map[string]isa.Inst {
	insts := map[string]isa.Inst{}
	for _, e := range opcodes.Entries() {
		format := classify(e.Name, e.Code)
		ops, ok := special[e.Name]
		if !ok {
			ops = patterns[format]
		}
		insts[e.Name] = isa.Inst{Name: e.Name, Format: format, Operands: ops}
	}
	return insts
}

// ISA is the MIPS instruction set.
var ISA = &isa.ISA{
	Name: Name,
	Bits: 32,
	Syntax: isa.Syntax{
		RegisterPrefix: "$",
		ImmediateBase:  16,
		TargetBase:     10,
		Open:           "(",
		Close:          ")",
	},
	Opcodes:    opcodes,
	Functs:     functs,
	Registers:  registers,
	Layouts:    layouts,
	Insts:      instructions(),
	Classifier: classifier{},
}

func init() {
	isa.Register(ISA)
}
