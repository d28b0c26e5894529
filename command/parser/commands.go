/*
 * asmconv - Interactive commands.
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
	"fmt"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rcornwell/asmconv/asm/disassemble"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/isa"
	"github.com/rcornwell/asmconv/util/hex"
)

var cmdList []cmd

func init() {
	cmdList = []cmd{
		{Name: "assemble", Min: 1, Process: assembleCmd, Complete: mnemonicComplete},
		{Name: "disassemble", Min: 1, Process: disassembleCmd},
		{Name: "fields", Min: 1, Process: fieldsCmd},
		{Name: "opcodes", Min: 1, Process: opcodesCmd},
		{Name: "isa", Min: 1, Process: isaCmd, Complete: isaComplete},
		{Name: "set", Min: 2, Process: set, Complete: setComplete},
		{Name: "show", Min: 2, Process: show},
		{Name: "help", Min: 1, Process: help},
		{Name: "quit", Min: 4, Process: quit},
	}
}

// Handle assemble command.
func assembleCmd(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Assemble")
	text := line.rest()
	if text == "" {
		return false, errors.New("assemble requires an instruction")
	}
	word, err := session.Assemble(text)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(session.Out, word)
	return false, nil
}

// Handle disassemble command.
func disassembleCmd(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Disassemble")
	text := line.rest()
	if text == "" {
		return false, errors.New("disassemble requires a hex word")
	}
	inst, err := session.Disassemble(text)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(session.Out, inst)
	return false, nil
}

// Get word to show fields of, either hex or an instruction.
func (session *Session) fieldWord(text string) (uint32, error) {
	word, err := session.ISA.ParseWord(text)
	if err == nil {
		return word, nil
	}
	hexText, asmErr := session.Assemble(text)
	if asmErr != nil {
		if strings.ContainsAny(text, " ,") {
			return 0, asmErr
		}
		return 0, err
	}
	return session.ISA.ParseWord(hexText)
}

// Name the register held in field, if any.
func registerField(set *isa.ISA, inst isa.Inst, name string, value uint32) string {
	for _, op := range inst.Operands {
		reg := (op.Field == name && (op.Kind == isa.KindRegister || op.Kind == isa.KindIndirect)) ||
			(op.Base == name && op.Kind == isa.KindMemory)
		if reg {
			regName, err := set.Registers.Name(value)
			if err == nil {
				return regName
			}
		}
	}
	return ""
}

// Handle fields command, show table of decoded fields.
func fieldsCmd(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Fields")
	text := line.rest()
	if text == "" {
		return false, errors.New("fields requires a hex word or instruction")
	}
	word, err := session.fieldWord(text)
	if err != nil {
		return false, err
	}
	decoded, err := disassemble.Decode(session.ISA, word)
	if err != nil {
		return false, err
	}
	inst, err := decoded.Text(session.ISA)
	if err != nil {
		return false, err
	}

	fieldTable := table.NewWriter()
	fieldTable.SetTitle(session.Word(word) + "  " + inst + "  (" + decoded.Inst.Format.String() + ")")
	fieldTable.AppendHeader(table.Row{"Field", "Bits", "Binary", "Value", "Operand"})
	for _, f := range decoded.Layout.Fields() {
		value := (word >> f.Offset) & f.Mask()
		var bits strings.Builder
		hex.FormatBits(&bits, value, f.Width)
		operand := ""
		switch f.Name {
		case isa.FieldOp, isa.FieldFunct:
			operand = decoded.Inst.Name
		case fields.Reserved:
		default:
			operand = registerField(session.ISA, decoded.Inst, f.Name, value)
		}
		fieldTable.AppendRow(table.Row{
			f.Name,
			fmt.Sprintf("%d-%d", f.Offset+f.Width-1, f.Offset),
			bits.String(),
			fmt.Sprintf("%#x", value),
			operand,
		})
	}
	fmt.Fprintln(session.Out, fieldTable.Render())
	if session.Debug {
		spew.Fdump(session.Out, decoded)
	}
	return false, nil
}

// Describe the operands of an instruction.
func operandPattern(set *isa.ISA, inst isa.Inst) string {
	strs := []string{}
	for _, op := range inst.Operands {
		switch op.Kind {
		case isa.KindIndirect:
			strs = append(strs, set.Syntax.Open+op.Field+set.Syntax.Close)
		case isa.KindMemory:
			strs = append(strs, op.Field+set.Syntax.Open+op.Base+set.Syntax.Close)
		default:
			strs = append(strs, op.Field)
		}
	}
	return strings.Join(strs, ", ")
}

// Handle opcodes command, show table of instructions.
func opcodesCmd(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Opcodes")
	if text := line.rest(); text != "" {
		return false, errors.New("opcodes takes no arguments: " + text)
	}
	set := session.ISA
	opTable := table.NewWriter()
	opTable.SetTitle("Instruction set " + set.Name)
	opTable.AppendHeader(table.Row{"Mnemonic", "Opcode", "Funct", "Format", "Operands"})
	for _, name := range set.Mnemonics() {
		inst, err := set.Lookup(name)
		if err != nil {
			return false, err
		}
		opcode, _ := set.Opcode(name)
		funct := ""
		if code, err := set.Funct(name); err == nil {
			funct = fmt.Sprintf("0x%02x", code)
		}
		opTable.AppendRow(table.Row{
			name,
			fmt.Sprintf("0x%02x", opcode),
			funct,
			inst.Format.String(),
			operandPattern(set, inst),
		})
	}
	fmt.Fprintln(session.Out, opTable.Render())
	return false, nil
}

// Handle isa command, show or change instruction set.
func isaCmd(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command ISA")
	name := line.getWord(false)
	if name == "" {
		if !line.isEOL() {
			return false, errors.New("invalid instruction set: " + line.rest())
		}
		for _, n := range isa.Names() {
			mark := " "
			if n == session.ISA.Name {
				mark = "*"
			}
			fmt.Fprintln(session.Out, mark+" "+n)
		}
		return false, nil
	}
	set, err := isa.Get(name)
	if err != nil {
		return false, err
	}
	session.ISA = set
	return false, nil
}

// Handle set commands.
func set(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Set")
	optlist, err := line.getOptions(session)
	if err != nil {
		return false, err
	}
	if len(optlist) == 0 {
		return false, errors.New("no options give to set command")
	}
	return false, session.Set(optlist)
}

// Handle show command.
func show(line *cmdLine, session *Session) (bool, error) {
	slog.Debug("Command Show")
	if text := line.rest(); text != "" {
		return false, errors.New("show takes no arguments: " + text)
	}
	fmt.Fprintln(session.Out, session.Show())
	return false, nil
}

// Handle help command.
func help(_ *cmdLine, session *Session) (bool, error) {
	names := []string{}
	for _, c := range cmdList {
		names = append(names, c.Name)
	}
	fmt.Fprintln(session.Out, "Commands: "+strings.Join(names, " "))
	return false, nil
}

// Handle quit command.
func quit(_ *cmdLine, _ *Session) (bool, error) {
	slog.Debug("Command Quit")
	return true, nil
}
