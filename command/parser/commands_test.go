/*
 * asmconv - Interactive command tests.
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

package parser_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rcornwell/asmconv/asm/asmerr"
	"github.com/rcornwell/asmconv/asm/fields"
	"github.com/rcornwell/asmconv/command/parser"
	"github.com/rcornwell/asmconv/config/settings"
)

var _ = Describe("Commands", func() {
	var (
		out     *bytes.Buffer
		session *parser.Session
	)

	run := func(line string) (string, error) {
		out.Reset()
		quit, err := parser.ProcessCommand(line, session)
		Expect(quit).To(BeFalse())
		return strings.TrimSuffix(out.String(), "\n"), err
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
		var err error
		session, err = parser.NewSession(settings.Default(), out)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("when translating", func() {
		It("should assemble", func() {
			Expect(run("assemble add $s0, $s1, $s2")).To(Equal("02328020"))
			Expect(run("a lw $t0, 0x8($s1)")).To(Equal("8e280008"))
		})

		It("should disassemble", func() {
			Expect(run("disassemble 02328020")).To(Equal("add $s0, $s1, $s2"))
			Expect(run("d AE280012")).To(Equal("sw $t0, 0x12($s1)"))
		})

		It("should report translation errors", func() {
			_, err := run("assemble foo $t0")
			Expect(err).To(MatchError(asmerr.ErrUnknownMnemonic))
			_, err = run("disassemble 0232802")
			Expect(err).To(MatchError(asmerr.ErrMalformedInstruction))
			_, err = run("assemble")
			Expect(err).To(HaveOccurred())
			_, err = run("disassemble")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("when changing instruction set", func() {
		It("should list instruction sets", func() {
			Expect(run("isa")).To(Equal("* mips\n  simple"))
		})

		It("should switch instruction set", func() {
			_, err := run("isa simple")
			Expect(err).NotTo(HaveOccurred())
			Expect(run("assemble MOV #5, R1")).To(Equal("00000429"))
			Expect(run("disassemble 00000800")).To(Equal("HLT"))
		})

		It("should reject unknown instruction set", func() {
			_, err := run("isa arm")
			Expect(err).To(HaveOccurred())
			Expect(session.ISA.Name).To(Equal("mips"))
		})
	})

	Context("when setting options", func() {
		It("should change overflow policy", func() {
			_, err := run("assemble addi $t0, $t1, 0x10000")
			Expect(err).To(MatchError(asmerr.ErrFieldOverflow))
			_, err = run("set overflow=truncate")
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Policy).To(Equal(fields.Truncate))
			Expect(run("assemble addi $t0, $t1, 0x10000")).To(Equal("21280000"))
		})

		It("should change hex case", func() {
			_, err := run("set hex=upper")
			Expect(err).NotTo(HaveOccurred())
			Expect(run("assemble sw $t0, 0x12($s1)")).To(Equal("AE280012"))
			_, err = run("isa simple")
			Expect(err).NotTo(HaveOccurred())
			_, err = run("set hex=lower")
			Expect(err).NotTo(HaveOccurred())
			Expect(run("assemble JMP 255")).To(Equal("000007ff"))
		})

		It("should show settings", func() {
			_, err := run("set overflow=truncate debug")
			Expect(err).NotTo(HaveOccurred())
			Expect(run("show")).To(Equal("isa=mips overflow=truncate hex=isa debug=on"))
		})

		It("should reject bad options", func() {
			for _, line := range []string{"set", "set bogus", "set overflow=wrap", "set debug=on", "show all"} {
				_, err := run(line)
				Expect(err).To(HaveOccurred(), line)
			}
		})
	})

	Context("when showing tables", func() {
		It("should show fields of a word", func() {
			text, err := run("fields 8e280008")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(ContainSubstring("lw $t0, 0x8($s1)"))
			Expect(text).To(ContainSubstring("$s1"))
			Expect(text).To(ContainSubstring("100011"))
			Expect(text).To(ContainSubstring("15-0"))
		})

		It("should show fields of an instruction", func() {
			text, err := run("fields add $s0, $s1, $s2")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(ContainSubstring("02328020"))
			Expect(text).To(ContainSubstring("shamt"))
		})

		It("should dump the decoded instruction when debugging", func() {
			_, err := run("set debug")
			Expect(err).NotTo(HaveOccurred())
			text, err := run("fields 02328020")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(ContainSubstring("Values"))
		})

		It("should reject bad words", func() {
			_, err := run("fields 0232802")
			Expect(err).To(MatchError(asmerr.ErrMalformedInstruction))
			_, err = run("fields add $s0, $s1")
			Expect(err).To(MatchError(asmerr.ErrMalformedInstruction))
		})

		It("should show the opcode table", func() {
			text, err := run("opcodes")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(ContainSubstring("addi"))
			Expect(text).To(ContainSubstring("0x23"))
			Expect(text).To(ContainSubstring("imm(rs)"))
		})
	})

	Context("when handling the session", func() {
		It("should quit", func() {
			quit, err := parser.ProcessCommand("quit", session)
			Expect(err).NotTo(HaveOccurred())
			Expect(quit).To(BeTrue())
		})

		It("should ignore empty lines", func() {
			Expect(run("   ")).To(Equal(""))
		})

		It("should reject unknown commands", func() {
			_, err := run("frobnicate")
			Expect(err).To(HaveOccurred())
			_, err = run("#5")
			Expect(err).To(HaveOccurred())
		})

		It("should list commands", func() {
			Expect(run("help")).To(ContainSubstring("disassemble"))
		})
	})
})

var _ = Describe("CompleteCmd", func() {
	var session *parser.Session

	BeforeEach(func() {
		var err error
		session, err = parser.NewSession(settings.Default(), &bytes.Buffer{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should complete command names", func() {
		Expect(parser.CompleteCmd("as", session)).To(Equal([]string{"assemble"}))
		Expect(parser.CompleteCmd("s", session)).To(Equal([]string{"set", "show"}))
		Expect(parser.CompleteCmd("x", session)).To(BeEmpty())
	})

	It("should complete mnemonics", func() {
		matches := parser.CompleteCmd("assemble ad", session)
		Expect(matches).To(ContainElement("assemble add "))
		Expect(matches).To(ContainElement("assemble addi "))
		Expect(matches).NotTo(ContainElement("assemble sub "))
		Expect(parser.CompleteCmd("assemble add $t0", session)).To(BeEmpty())
	})

	It("should complete instruction sets", func() {
		Expect(parser.CompleteCmd("isa s", session)).To(Equal([]string{"isa simple "}))
	})

	It("should complete set options", func() {
		Expect(parser.CompleteCmd("set ov", session)).To(Equal([]string{"set overflow="}))
		Expect(parser.CompleteCmd("set overflow=t", session)).To(Equal([]string{"set overflow=truncate "}))
		Expect(parser.CompleteCmd("set debug h", session)).To(Equal([]string{"set debug hex="}))
	})
})
