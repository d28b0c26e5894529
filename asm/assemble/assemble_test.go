/*
 * asmconv - Assembler tests.
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
	"errors"
	"testing"

	"github.com/rcornwell/asmconv/asm/asmerr"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/mips"
	"github.com/rcornwell/asmconv/asm/simple"
)

type asmTest struct {
	text  string
	match string
}

func TestTokens(t *testing.T) {
	tokens := Tokens("  lw $t0,0x8($s1)  ")
	if len(tokens) != 3 || tokens[0] != "lw" || tokens[1] != "$t0" || tokens[2] != "0x8($s1)" {
		t.Errorf("Tokens got: %q", tokens)
	}
	if len(Tokens(" , ")) != 0 {
		t.Error("Tokens of separators not empty")
	}
}

func TestAssembleMIPS(t *testing.T) {
	tests := []asmTest{
		{"add $s0, $s1, $s2", "02328020"},
		{"addi $t0, $t1, 0x5", "21280005"},
		{"sub $s0, $s1, $s2", "02328022"},
		{"sll $t0, $t1, 0x2", "00094080"},
		{"srl $t0, $t1, 0x3", "000940c2"},
		{"lw $t0, 0x8($s1)", "8e280008"},
		{"sw $t0, 0x12($s1)", "ae280012"},
		{"add $s0 $s1 $s2", "02328020"},
		{"ADD $S0, $S1, $S2", "02328020"},
		{"add $16, $17, $18", "02328020"},
		{"jr $ra", "03e00008"},
		{"mult $t0, $t1", "01090018"},
		{"mfhi $t0", "00004010"},
		{"beq $t0, $t1, 0x4", "11090004"},
		{"lui $t0, 0x1234", "3c081234"},
		{"j 1024", "08000400"},
		{"jal 0", "0c000000"},
		{"addi $t0, $t1, 10", "21280010"},
		{"addi $t0, $t1, ff", "212800ff"},
		{"sll $t0, $t1, a", "00094280"},
		{"lw $t0, c($s1)", "8e28000c"},
	}
	for _, test := range tests {
		hex, err := Assemble(mips.ISA, test.text)
		if err != nil {
			t.Error("Inst: '" + test.text + "' error: " + err.Error())
			continue
		}
		if hex != test.match {
			t.Error("Inst: '" + test.text + "' Got: " + hex + " Expected " + test.match)
		}
	}
}

func TestAssembleSimple(t *testing.T) {
	tests := []asmTest{
		{"HLT", "00000800"},
		{"ADD R1 R2", "00000022"},
		{"SUB R3, R4", "00000164"},
		{"MOV #5 R1", "00000429"},
		{"MOV #31, R7", "000004FF"},
		{"LDR [R2] R3", "00000543"},
		{"STR [R7], R0", "000006E0"},
		{"JMP 10", "0000070A"},
		{"jmp 255", "000007FF"},
		{"add r1, r2", "00000022"},
	}
	for _, test := range tests {
		hex, err := Assemble(simple.ISA, test.text)
		if err != nil {
			t.Error("Inst: '" + test.text + "' error: " + err.Error())
			continue
		}
		if hex != test.match {
			t.Error("Inst: '" + test.text + "' Got: " + hex + " Expected " + test.match)
		}
	}
}

type errTest struct {
	text string
	err  error
}

func TestAssembleErrors(t *testing.T) {
	tests := []errTest{
		{"", asmerr.ErrMalformedInstruction},
		{"   ", asmerr.ErrMalformedInstruction},
		{"foo $t0, $t1, $t2", asmerr.ErrUnknownMnemonic},
		{"add $t0, $t1", asmerr.ErrMalformedInstruction},
		{"add $t0, $t1, $t2, $t3", asmerr.ErrMalformedInstruction},
		{"add $t0, $t1, $x9", asmerr.ErrUnknownRegister},
		{"add $t0, $t1, 5", asmerr.ErrInvalidOperandSyntax},
		{"lw $t0, $s1", asmerr.ErrInvalidOperandSyntax},
		{"lw $t0, 0x8", asmerr.ErrInvalidOperandSyntax},
		{"addi $t0, $t1, zz", asmerr.ErrInvalidOperandSyntax},
		{"addi $t0, $t1, 0xzz", asmerr.ErrMalformedInstruction},
		{"addi $t0, $t1, 0x10000", asmerr.ErrFieldOverflow},
		{"addi $t0, $t1, 0x100000000", asmerr.ErrFieldOverflow},
		{"addi $t0, $t1, -1", asmerr.ErrMalformedInstruction},
		{"lw $t0, -8($s1)", asmerr.ErrMalformedInstruction},
		{"add $t0, $t1, ff", asmerr.ErrInvalidOperandSyntax},
		{"sll $t0, $t1, 0x20", asmerr.ErrFieldOverflow},
		{"j 67108864", asmerr.ErrFieldOverflow},
		{"j $t0", asmerr.ErrInvalidOperandSyntax},
		{"jr", asmerr.ErrMalformedInstruction},
	}
	for _, test := range tests {
		hex, err := Assemble(mips.ISA, test.text)
		if !errors.Is(err, test.err) {
			t.Errorf("Inst: '%s' got error: %v expected: %v", test.text, err, test.err)
		}
		if hex != "" {
			t.Error("Inst: '" + test.text + "' Got: " + hex + " Expected empty")
		}
	}
}

func TestAssembleSimpleErrors(t *testing.T) {
	tests := []errTest{
		{"NOP", asmerr.ErrUnknownMnemonic},
		{"ADD R1", asmerr.ErrMalformedInstruction},
		{"ADD R1 R2 R3", asmerr.ErrMalformedInstruction},
		{"HLT R1", asmerr.ErrMalformedInstruction},
		{"JMP", asmerr.ErrMalformedInstruction},
		{"ADD R1 R9", asmerr.ErrUnknownRegister},
		{"ADD #5 R1", asmerr.ErrInvalidOperandSyntax},
		{"MOV R1 R2", asmerr.ErrInvalidOperandSyntax},
		{"ADD R1 #5", asmerr.ErrInvalidOperandSyntax},
		{"LDR R1 [R2]", asmerr.ErrInvalidOperandSyntax},
		{"MOV #32 R1", asmerr.ErrFieldOverflow},
		{"JMP 256", asmerr.ErrFieldOverflow},
		{"JMP #4", asmerr.ErrInvalidOperandSyntax},
		{"MOV #x R1", asmerr.ErrMalformedInstruction},
		{"LDR [R8] R1", asmerr.ErrUnknownRegister},
	}
	for _, test := range tests {
		hex, err := Assemble(simple.ISA, test.text)
		if !errors.Is(err, test.err) {
			t.Errorf("Inst: '%s' got error: %v expected: %v", test.text, err, test.err)
		}
		if hex != "" {
			t.Error("Inst: '" + test.text + "' Got: " + hex + " Expected empty")
		}
	}
}

func TestAssembleTruncate(t *testing.T) {
	hex, err := AssembleWith(mips.ISA, "addi $t0, $t1, 0x10000", fields.Truncate)
	if err != nil {
		t.Error(err.Error())
	}
	if hex != "21280000" {
		t.Error("Truncate Got: " + hex + " Expected 21280000")
	}

	hex, err = AssembleWith(simple.ISA, "MOV #33 R1", fields.Truncate)
	if err != nil {
		t.Error(err.Error())
	}
	if hex != "00000409" {
		t.Error("Truncate Got: " + hex + " Expected 00000409")
	}

	hex, err = AssembleWith(mips.ISA, "addi $t0, $t1, 0x100000005", fields.Truncate)
	if err != nil {
		t.Error(err.Error())
	}
	if hex != "21280005" {
		t.Error("Truncate Got: " + hex + " Expected 21280005")
	}

	hex, err = AssembleWith(mips.ISA, "lw $t0, 0x100000008($s1)", fields.Truncate)
	if err != nil {
		t.Error(err.Error())
	}
	if hex != "8e280008" {
		t.Error("Truncate Got: " + hex + " Expected 8e280008")
	}
}

func TestEncode(t *testing.T) {
	word, err := Encode(mips.ISA, "add $s0, $s1, $s2", fields.Reject)
	if err != nil {
		t.Error(err.Error())
	}
	if word != 0x02328020 {
		t.Errorf("Encode got: %08x", word)
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Assemble(mips.ISA, "ABC")
	if err == nil {
		t.Error("Undefined opcode did not return error")
	} else if err.Error() != "undefined opcode ABC" {
		t.Error("Wrong error message: " + err.Error())
	}

	_, err = Assemble(simple.ISA, "ADD R1")
	if err == nil {
		t.Error("Invalid format did not return error")
	} else if err.Error() != "invalid format for ADD" {
		t.Error("Wrong error message: " + err.Error())
	}
}

func TestDebug(t *testing.T) {
	if err := Debug("tokens"); err != nil {
		t.Error(err.Error())
	}
	if err := Debug("opcode"); err == nil {
		t.Error("Invalid debug option accepted")
	}
	defer func() { debugMsk = 0 }()
	hex, err := Assemble(mips.ISA, "jr $ra")
	if err != nil || hex != "03e00008" {
		t.Errorf("Assemble with debug got: %s %v", hex, err)
	}
	if len(DebugOptions()) != 3 {
		t.Errorf("Debug options got: %v", DebugOptions())
	}
}
