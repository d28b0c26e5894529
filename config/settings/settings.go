/*
 * asmconv - Translator settings.
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

package settings

import (
	"errors"
	"strings"
	"sync"

	"github.com/rcornwell/asmconv/asm/assemble"
	"github.com/rcornwell/asmconv/asm/disassemble"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/isa"
	"github.com/rcornwell/asmconv/asm/mips"
	config "github.com/rcornwell/asmconv/config/configparser"

	_ "github.com/rcornwell/asmconv/asm/simple"
)

// Case of hex output.
type Case int

const (
	CaseISA   Case = iota // Use the instruction set default.
	CaseUpper             // Force upper case.
	CaseLower             // Force lower case.
)

// Settings collects the options read from the configuration file.
type Settings struct {
	ISA      string        // Instruction set name.
	Overflow fields.Policy // Handling of values too large for a field.
	Case     Case          // Case of hex output.
	LogFile  string        // Log file name, empty for none.
}

var (
	mu      sync.Mutex
	current = Default()
)

// Default settings.
func Default() Settings {
	return Settings{ISA: mips.Name, Overflow: fields.Reject}
}

// Current returns a copy of the current settings.
func Current() Settings {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Reset returns the settings to default.
func Reset() {
	mu.Lock()
	current = Default()
	mu.Unlock()
}

func update(fn func(s *Settings)) {
	mu.Lock()
	fn(&current)
	mu.Unlock()
}

// Upper reports whether words of set are shown in upper case.
func (s Settings) Upper(set *isa.ISA) bool {
	switch s.Case {
	case CaseUpper:
		return true
	case CaseLower:
		return false
	}
	return set.Syntax.UpperHex
}

// InstructionSet returns the selected instruction set.
func (s Settings) InstructionSet() (*isa.ISA, error) {
	return isa.Get(s.ISA)
}

// register options on initialize.
func init() {
	config.RegisterOption("ISA", setISA)
	config.RegisterOption("OVERFLOW", setOverflow)
	config.RegisterOption("LOGFILE", setLogFile)
	config.RegisterSwitch("UPPERHEX", setUpper)
	config.RegisterSwitch("LOWERHEX", setLower)
	config.RegisterOptions("DEBUG", setDebug)
}

func setISA(value string, _ []config.Option) error {
	name := strings.ToLower(value)
	if _, err := isa.Get(name); err != nil {
		return err
	}
	update(func(s *Settings) { s.ISA = name })
	return nil
}

func setOverflow(value string, _ []config.Option) error {
	policy, err := fields.ParsePolicy(value)
	if err != nil {
		return err
	}
	update(func(s *Settings) { s.Overflow = policy })
	return nil
}

func setLogFile(value string, _ []config.Option) error {
	if value == "" {
		return errors.New("log file name required")
	}
	update(func(s *Settings) { s.LogFile = value })
	return nil
}

func setUpper(_ string, _ []config.Option) error {
	update(func(s *Settings) { s.Case = CaseUpper })
	return nil
}

func setLower(_ string, _ []config.Option) error {
	update(func(s *Settings) { s.Case = CaseLower })
	return nil
}

// Debug options per module.
var debugModules = map[string]func(string) error{
	"ASSEMBLE":    assemble.Debug,
	"DISASSEMBLE": disassemble.Debug,
}

// Set debug options: DEBUG <module> <flag>[,<flag>...] ...
func setDebug(module string, options []config.Option) error {
	fn, ok := debugModules[strings.ToUpper(module)]
	if !ok {
		return errors.New("debug module invalid: " + module)
	}
	if len(options) == 0 {
		return errors.New("debug " + module + " requires options")
	}
	for _, opt := range options {
		if opt.EqualOpt != "" {
			return errors.New("debug option can't have equals: " + opt.Name)
		}
		if err := fn(opt.Name); err != nil {
			return err
		}
		for _, value := range opt.Value {
			if err := fn(*value); err != nil {
				return err
			}
		}
	}
	return nil
}
