/*
 * asmconv - Main process.
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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/asm/isa"
	parser "github.com/rcornwell/asmconv/command/parser"
	reader "github.com/rcornwell/asmconv/command/reader"
	config "github.com/rcornwell/asmconv/config/configparser"
	settings "github.com/rcornwell/asmconv/config/settings"
	logger "github.com/rcornwell/asmconv/util/logger"
	"github.com/tebeka/atexit"
)

// Configuration file read when none given.
const defaultConfig = "asmconv.cfg"

// Print error and exit.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error: "+err.Error())
	atexit.Exit(1)
}

func main() {
	optAsm := getopt.StringLong("assemble", 'a', "", "Assemble instruction", "text")
	optMachine := getopt.StringLong("machine", 'm', "", "Disassemble hex word", "hex")
	optISA := getopt.StringLong("isa", 'i', "", "Instruction set (mips, simple)", "name")
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file", "file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file", "file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optTruncate := getopt.BoolLong("truncate", 't', "Truncate values too large for field")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		atexit.Exit(0)
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	handler := logger.NewHandler(nil, &slog.HandlerOptions{Level: programLevel, AddSource: false}, *optDebug)
	slog.SetDefault(slog.New(handler))

	if *optAsm != "" && *optMachine != "" {
		fail(errors.New("-a and -m can't be used together"))
	}
	if len(getopt.Args()) != 0 {
		fail(errors.New("unexpected arguments, quote the instruction"))
	}

	// Read configuration, the default file is optional.
	configFile := *optConfig
	if configFile == "" {
		if _, err := os.Stat(defaultConfig); err == nil {
			configFile = defaultConfig
		}
	}
	if configFile != "" {
		_, err := os.Stat(configFile)
		if errors.Is(err, fs.ErrNotExist) {
			fail(errors.New("configuration file " + configFile + " can't be found"))
		}
		if err = config.LoadConfigFile(configFile); err != nil {
			fail(err)
		}
	}

	cfg := settings.Current()
	if *optLogFile != "" {
		cfg.LogFile = *optLogFile
	}
	if cfg.LogFile != "" {
		file, err := os.Create(cfg.LogFile)
		if err != nil {
			fail(err)
		}
		handler.SetOutput(file)
		atexit.Register(func() {
			handler.SetOutput(nil)
			file.Close()
		})
	}
	if *optISA != "" {
		name := strings.ToLower(*optISA)
		if _, err := isa.Get(name); err != nil {
			fail(err)
		}
		cfg.ISA = name
	}
	if *optTruncate {
		cfg.Overflow = fields.Truncate
	}

	session, err := parser.NewSession(cfg, os.Stdout)
	if err != nil {
		fail(err)
	}
	session.Debug = *optDebug
	slog.Debug("asmconv started", "isa", session.ISA.Name, "overflow", session.Policy.String())

	switch {
	case *optAsm != "":
		word, err := session.Assemble(*optAsm)
		if err != nil {
			fail(err)
		}
		fmt.Println(word)
	case *optMachine != "":
		inst, err := session.Disassemble(*optMachine)
		if err != nil {
			fail(err)
		}
		fmt.Println(inst)
	default:
		reader.ConsoleReader(session)
	}
	atexit.Exit(0)
}
