/*
 * asmconv - Command option definitions.
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

package command

// List of options to pass to set function.
type CmdOption struct {
	Name     string // Name of option.
	EqualOpt string // Value of string after =.
}

// List of option types.
const (
	OptionSwitch = 1 + iota // Option stands alone.
	OptionList              // Option takes one value from a list.
)

type Options struct {
	Name       string   // Name of option.
	OptionType int      // Type of argument.
	OptionList []string // List of valid values for this option.
}

// Settable is the target of the set and show commands.
type Settable interface {
	Options() []Options             // Return list of supported options.
	Set(options []*CmdOption) error // Do set command.
	Show() string                   // Do show command.
}
