/*
 * asmconv - Operand syntax.
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
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/rcornwell/asmconv/asm/asmerr"
	"github.com/rcornwell/asmconv/asm/symtab"
)

// Kinds of operand.
type OperandKind int

const (
	KindRegister  OperandKind = 1 + iota // Register name.
	KindImmediate                        // Immediate value.
	KindTarget                           // Jump target.
	KindIndirect                         // Register in brackets.
	KindMemory                           // Offset(register).
)

func (k OperandKind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindImmediate:
		return "immediate"
	case KindTarget:
		return "target"
	case KindIndirect:
		return "indirect"
	case KindMemory:
		return "memory"
	}
	return "unknown"
}

// Operand describes one operand of an instruction.
type Operand struct {
	Kind  OperandKind
	Field string // Field receiving the value, offset for memory.
	Base  string // Register field of memory operand.
}

// Syntax describes how operands are written for an instruction set.
type Syntax struct {
	RegisterPrefix  string // Register names start with this.
	ImmediatePrefix string // Immediates start with this, may be empty.
	ImmediateBase   int    // Number base of immediates.
	TargetBase      int    // Number base of jump targets.
	Open            string // Start of indirect register.
	Close           string // End of indirect register.
	UpperHex        bool   // Render words in upper case.
}

// Shape returns the operand kind the text looks like, 0 if none.
func (s *Syntax) Shape(text string) OperandKind {
	if text == "" {
		return 0
	}
	if open := strings.Index(text, s.Open); open >= 0 && len(text) > open+len(s.Open)+len(s.Close) &&
		strings.HasSuffix(text, s.Close) {
		if open == 0 {
			return KindIndirect
		}
		return KindMemory
	}
	if len(text) > len(s.RegisterPrefix) &&
		strings.EqualFold(text[:len(s.RegisterPrefix)], s.RegisterPrefix) {
		return KindRegister
	}
	if s.ImmediatePrefix != "" && strings.HasPrefix(text, s.ImmediatePrefix) {
		return KindImmediate
	}
	if s.ImmediatePrefix == "" {
		if isDigit(text[0], s.ImmediateBase) || text[0] == '-' || text[0] == '+' {
			return KindImmediate
		}
		return 0
	}
	if isDigit(text[0], 10) {
		return KindTarget
	}
	return 0
}

// isDigit reports whether by is a digit in base 10 or 16.
func isDigit(by byte, base int) bool {
	switch {
	case by >= '0' && by <= '9':
		return true
	case base == 16 && by >= 'a' && by <= 'f':
		return true
	case base == 16 && by >= 'A' && by <= 'F':
		return true
	}
	return false
}

// accepts reports whether text of kind shape can stand for want. Without an
// immediate prefix a bare number is both an immediate and a target.
func (s *Syntax) accepts(want, shape OperandKind) bool {
	if want == shape {
		return true
	}
	return want == KindTarget && shape == KindImmediate && s.ImmediatePrefix == ""
}

// Number parses an unsigned immediate or target. A value wider than 32 bits
// returns its low 32 bits along with ErrFieldOverflow.
func (s *Syntax) Number(kind OperandKind, text string) (uint32, error) {
	base := s.TargetBase
	digits := text
	if kind != KindTarget {
		base = s.ImmediateBase
		digits = strings.TrimPrefix(digits, s.ImmediatePrefix)
		if base == 16 && len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
			digits = digits[2:]
		}
	}
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return 0, fmt.Errorf("%w, not an unsigned number %s", asmerr.ErrMalformedInstruction, text)
	}
	num, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, fmt.Errorf("%w, not a number %s", asmerr.ErrMalformedInstruction, text)
	}
	low := uint32(new(big.Int).And(num, big.NewInt(0xffffffff)).Uint64())
	if num.BitLen() > 32 {
		return low, fmt.Errorf("%w %s", asmerr.ErrFieldOverflow, text)
	}
	return low, nil
}

// FormatNumber renders an immediate or target.
func (s *Syntax) FormatNumber(kind OperandKind, value uint32) string {
	if kind == KindTarget {
		return strconv.FormatUint(uint64(value), s.TargetBase)
	}
	if s.ImmediateBase == 16 {
		return s.ImmediatePrefix + "0x" + strconv.FormatUint(uint64(value), 16)
	}
	return s.ImmediatePrefix + strconv.FormatUint(uint64(value), s.ImmediateBase)
}

func (s *Syntax) register(regs *symtab.Table, text string) (uint32, error) {
	if s.Shape(text) != KindRegister {
		return 0, fmt.Errorf("%w %s", asmerr.ErrInvalidOperandSyntax, text)
	}
	return regs.Code(text)
}

// Parse one operand into values.
func (s *Syntax) parse(regs *symtab.Table, op Operand, text string, values map[string]uint32) error {
	shape := s.Shape(text)
	if !s.accepts(op.Kind, shape) {
		return fmt.Errorf("%w %s, expected %s", asmerr.ErrInvalidOperandSyntax, text, op.Kind)
	}
	var err error
	switch op.Kind {
	case KindRegister:
		values[op.Field], err = s.register(regs, text)
	case KindImmediate, KindTarget:
		values[op.Field], err = s.Number(op.Kind, text)
	case KindIndirect, KindMemory:
		open := strings.Index(text, s.Open)
		inner := text[open+len(s.Open) : len(text)-len(s.Close)]
		if op.Kind == KindIndirect {
			values[op.Field], err = s.register(regs, inner)
			break
		}
		values[op.Base], err = s.register(regs, inner)
		if err != nil {
			return err
		}
		values[op.Field], err = s.Number(KindImmediate, text[:open])
	}
	return err
}

// Format one operand from values.
func (s *Syntax) format(regs *symtab.Table, op Operand, values map[string]uint32) (string, error) {
	switch op.Kind {
	case KindRegister:
		return regs.Name(values[op.Field])
	case KindImmediate, KindTarget:
		return s.FormatNumber(op.Kind, values[op.Field]), nil
	case KindIndirect:
		reg, err := regs.Name(values[op.Field])
		if err != nil {
			return "", err
		}
		return s.Open + reg + s.Close, nil
	case KindMemory:
		reg, err := regs.Name(values[op.Base])
		if err != nil {
			return "", err
		}
		return s.FormatNumber(KindImmediate, values[op.Field]) + s.Open + reg + s.Close, nil
	}
	return "", fmt.Errorf("operand kind %d not supported", int(op.Kind))
}
