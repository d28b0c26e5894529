/*
 * asmconv - Translation session.
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
	"io"
	"strings"

	"github.com/rcornwell/asmconv/asm/assemble"
	"github.com/rcornwell/asmconv/asm/disassemble"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/isa"
	command "github.com/rcornwell/asmconv/command/command"
	"github.com/rcornwell/asmconv/config/settings"
	"github.com/rcornwell/asmconv/util/hex"
)

// Session holds the state shared by the commands.
type Session struct {
	ISA    *isa.ISA
	Policy fields.Policy
	Case   settings.Case
	Debug  bool      // Dump decoded instructions.
	Out    io.Writer // Command output.
}

var caseNames = []string{"isa", "upper", "lower"}

// NewSession starts a session from the configured settings.
func NewSession(cfg settings.Settings, out io.Writer) (*Session, error) {
	set, err := cfg.InstructionSet()
	if err != nil {
		return nil, err
	}
	return &Session{ISA: set, Policy: cfg.Overflow, Case: cfg.Case, Out: out}, nil
}

// Word renders a word in the session's hex case.
func (s *Session) Word(word uint32) string {
	upper := settings.Settings{Case: s.Case}.Upper(s.ISA)
	return hex.Word(word, s.ISA.Digits(), upper)
}

// Assemble translates one instruction to hex.
func (s *Session) Assemble(text string) (string, error) {
	word, err := assemble.Encode(s.ISA, text, s.Policy)
	if err != nil {
		return "", err
	}
	return s.Word(word), nil
}

// Disassemble translates one hex word to an instruction.
func (s *Session) Disassemble(text string) (string, error) {
	return disassemble.Disassemble(s.ISA, text)
}

// Options supported by the set command.
func (s *Session) Options() []command.Options {
	return []command.Options{
		{Name: "overflow", OptionType: command.OptionList, OptionList: []string{"reject", "truncate"}},
		{Name: "hex", OptionType: command.OptionList, OptionList: caseNames},
		{Name: "debug", OptionType: command.OptionSwitch},
		{Name: "nodebug", OptionType: command.OptionSwitch},
	}
}

// Set applies options from the set command.
func (s *Session) Set(options []*command.CmdOption) error {
	for _, opt := range options {
		switch opt.Name {
		case "overflow":
			policy, err := fields.ParsePolicy(opt.EqualOpt)
			if err != nil {
				return err
			}
			s.Policy = policy
		case "hex":
			found := false
			for i, name := range caseNames {
				if name == opt.EqualOpt {
					s.Case = settings.Case(i)
					found = true
				}
			}
			if !found {
				return errors.New("hex case not valid: " + opt.EqualOpt)
			}
		case "debug":
			s.Debug = true
		case "nodebug":
			s.Debug = false
		default:
			return errors.New("option not valid: " + opt.Name)
		}
	}
	return nil
}

// Show current settings.
func (s *Session) Show() string {
	debug := "off"
	if s.Debug {
		debug = "on"
	}
	strs := []string{
		"isa=" + s.ISA.Name,
		"overflow=" + s.Policy.String(),
		"hex=" + caseNames[s.Case],
		"debug=" + debug,
	}
	return strings.Join(strs, " ")
}
