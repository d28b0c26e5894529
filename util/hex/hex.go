/*
 * asmconv - Convert Hex to strings.
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

package hex

import (
	"fmt"
	"strings"

	"github.com/rcornwell/asmconv/asm/asmerr"
)

var hexMap = "0123456789ABCDEF"

var hexLower = "0123456789abcdef"

// Word returns word as exactly digits hex digits.
func Word(word uint32, digits int, upper bool) string {
	var str strings.Builder
	FormatWord(&str, word, digits, upper)
	return str.String()
}

// FormatWord appends digits hex digits of word.
func FormatWord(str *strings.Builder, word uint32, digits int, upper bool) {
	table := hexLower
	if upper {
		table = hexMap
	}
	shift := (digits - 1) * 4
	for range digits {
		str.WriteByte(table[(word>>shift)&0xf])
		shift -= 4
	}
}

// FormatBits appends width binary digits of value.
func FormatBits(str *strings.Builder, value uint32, width uint) {
	for i := int(width) - 1; i >= 0; i-- {
		str.WriteByte(hexMap[(value>>i)&1])
	}
}

// ParseWord reads exactly digits hex digits, either case.
func ParseWord(text string, digits int) (uint32, error) {
	if len(text) != digits {
		return 0, fmt.Errorf("%w, expected %d hex digits: %q", asmerr.ErrMalformedInstruction, digits, text)
	}
	word := uint32(0)
	for i := range len(text) {
		digit := strings.IndexByte(hexLower, lower(text[i]))
		if digit < 0 {
			return 0, fmt.Errorf("%w, not hex: %q", asmerr.ErrMalformedInstruction, text)
		}
		word = (word << 4) | uint32(digit)
	}
	return word, nil
}

func lower(by byte) byte {
	if by >= 'A' && by <= 'F' {
		return by + ('a' - 'A')
	}
	return by
}
