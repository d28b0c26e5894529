/*
 * asmconv - Instruction word field layouts.
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

package fields

import (
	"errors"
	"fmt"

	"github.com/rcornwell/asmconv/asm/asmerr"
)

// Reserved names a field that must be zero.
const Reserved = "-"

// Field is a contiguous bit range of an instruction word.
type Field struct {
	Name   string // Field name, Reserved for must-be-zero bits.
	Width  uint   // Number of bits.
	Offset uint   // Bit number of least significant bit.
}

// Mask returns the field mask before shifting.
func (f Field) Mask() uint32 {
	return uint32((uint64(1) << f.Width) - 1)
}

// Layout is the ordered list of fields for one instruction format.
// The field widths always sum to the word width and never overlap.
type Layout struct {
	bits   uint
	fields []Field
}

// Overflow policy for values too wide for their field.
type Policy int

const (
	Reject   Policy = iota // Fail with ErrFieldOverflow.
	Truncate               // Drop the high order bits.
)

func (p Policy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Truncate:
		return "truncate"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy converts a policy name.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "reject", "REJECT":
		return Reject, nil
	case "truncate", "TRUNCATE":
		return Truncate, nil
	}
	return Reject, errors.New("unknown overflow policy: " + name)
}

// New checks the fields against the word width and builds a layout.
func New(bits uint, fields ...Field) (Layout, error) {
	if bits == 0 || bits > 32 {
		return Layout{}, fmt.Errorf("word width %d not supported", bits)
	}
	used := uint64(0)
	total := uint(0)
	names := map[string]bool{}
	for _, f := range fields {
		if f.Width == 0 {
			return Layout{}, fmt.Errorf("field %s has no width", f.Name)
		}
		if f.Offset+f.Width > bits {
			return Layout{}, fmt.Errorf("field %s outside %d bit word", f.Name, bits)
		}
		mask := ((uint64(1) << f.Width) - 1) << f.Offset
		if used&mask != 0 {
			return Layout{}, fmt.Errorf("field %s overlaps", f.Name)
		}
		used |= mask
		total += f.Width
		if f.Name == Reserved {
			continue
		}
		if names[f.Name] {
			return Layout{}, fmt.Errorf("field %s defined twice", f.Name)
		}
		names[f.Name] = true
	}
	if total != bits {
		return Layout{}, fmt.Errorf("fields cover %d of %d bits", total, bits)
	}
	return Layout{bits: bits, fields: append([]Field(nil), fields...)}, nil
}

// Must is New for tables built at init time.
func Must(bits uint, fields ...Field) Layout {
	l, err := New(bits, fields...)
	if err != nil {
		panic("fields: " + err.Error())
	}
	return l
}

// Bits returns the word width.
func (l Layout) Bits() uint {
	return l.bits
}

// Fields returns the fields in declaration order.
func (l Layout) Fields() []Field {
	return append([]Field(nil), l.fields...)
}

// Field looks up a field by name.
func (l Layout) Field(name string) (Field, bool) {
	for _, f := range l.fields {
		if f.Name == name && name != Reserved {
			return f, true
		}
	}
	return Field{}, false
}

// Pack places each value at its field offset and ORs them together.
// Fields without a value are zero.
func (l Layout) Pack(values map[string]uint32, policy Policy) (uint32, error) {
	for name := range values {
		if _, ok := l.Field(name); !ok {
			return 0, fmt.Errorf("no field %s in layout", name)
		}
	}
	word := uint32(0)
	for _, f := range l.fields {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		if v > f.Mask() {
			if policy != Truncate {
				return 0, fmt.Errorf("%w %#x for %s, %d bits", asmerr.ErrFieldOverflow, v, f.Name, f.Width)
			}
			v &= f.Mask()
		}
		word |= v << f.Offset
	}
	return word, nil
}

// Extract slices every named field out of word.
func (l Layout) Extract(word uint32) map[string]uint32 {
	values := make(map[string]uint32, len(l.fields))
	for _, f := range l.fields {
		if f.Name == Reserved {
			continue
		}
		values[f.Name] = (word >> f.Offset) & f.Mask()
	}
	return values
}

// Get returns one field of word, zero if the layout lacks it.
func (l Layout) Get(word uint32, name string) uint32 {
	f, ok := l.Field(name)
	if !ok {
		return 0
	}
	return (word >> f.Offset) & f.Mask()
}

// ReservedSet reports whether any must-be-zero bits of word are set.
func (l Layout) ReservedSet(word uint32) bool {
	for _, f := range l.fields {
		if f.Name == Reserved && (word>>f.Offset)&f.Mask() != 0 {
			return true
		}
	}
	return false
}
