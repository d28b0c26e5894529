/*
 * asmconv - Symbol tables.
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

package symtab

import (
	"fmt"
	"strings"

	"github.com/rcornwell/asmconv/asm/asmerr"
)

// Entry is one name to code mapping.
type Entry struct {
	Name string
	Code uint32
}

// Table maps names to codes and back. Built once, never changed.
type Table struct {
	entries []Entry
	byName  map[string]uint32
	byCode  map[uint32]string
	fold    func(string) string // Case folding applied to lookups.
	err     error               // Error kind for a missing name.
}

// New builds a table from entries in declaration order. When several
// entries share a code the first one is returned by Name. fold may be nil.
// missing is wrapped when a name is not found.
func New(entries []Entry, fold func(string) string, missing error) *Table {
	if fold == nil {
		fold = func(s string) string { return s }
	}
	t := &Table{
		entries: entries,
		byName:  make(map[string]uint32, len(entries)),
		byCode:  make(map[uint32]string, len(entries)),
		fold:    fold,
		err:     missing,
	}
	for _, e := range entries {
		key := fold(e.Name)
		if _, dup := t.byName[key]; dup {
			panic("symtab: duplicate name " + e.Name)
		}
		t.byName[key] = e.Code
		if _, ok := t.byCode[e.Code]; !ok {
			t.byCode[e.Code] = e.Name
		}
	}
	return t
}

// Upper and Lower are the usual fold functions.
func Upper(s string) string { return strings.ToUpper(s) }

func Lower(s string) string { return strings.ToLower(s) }

// Code returns the code for name.
func (t *Table) Code(name string) (uint32, error) {
	code, ok := t.byName[t.fold(name)]
	if !ok {
		return 0, fmt.Errorf("%w %s", t.err, name)
	}
	return code, nil
}

// Has reports whether name is in the table.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[t.fold(name)]
	return ok
}

// Canonical returns the name as declared in the table.
func (t *Table) Canonical(name string) (string, bool) {
	key := t.fold(name)
	for _, e := range t.entries {
		if t.fold(e.Name) == key {
			return e.Name, true
		}
	}
	return "", false
}

// Name returns the first declared name with the given code.
func (t *Table) Name(code uint32) (string, error) {
	name, ok := t.byCode[code]
	if !ok {
		return "", fmt.Errorf("%w %#x", asmerr.ErrUnknownEncoding, code)
	}
	return name, nil
}

// Entries returns a copy of the table in declaration order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
