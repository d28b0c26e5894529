/*
 * asmconv - Command line scanning tests.
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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	command "github.com/rcornwell/asmconv/command/command"
)

var _ = Describe("cmdLine", func() {
	Context("when matching commands", func() {
		It("should accept a prefix at least the minimum length", func() {
			Expect(matchList("a")).To(HaveLen(1))
			Expect(matchList("asm")).To(BeEmpty())
			Expect(matchList("se")[0].Name).To(Equal("set"))
			Expect(matchList("sh")[0].Name).To(Equal("show"))
			Expect(matchList("quit")[0].Name).To(Equal("quit"))
		})

		It("should reject short or long names", func() {
			Expect(matchList("s")).To(BeEmpty())
			Expect(matchList("qui")).To(BeEmpty())
			Expect(matchList("quitter")).To(BeEmpty())
			Expect(matchList("")).To(BeEmpty())
		})
	})

	Context("when scanning words", func() {
		It("should stop at an equal sign only when asked", func() {
			line := cmdLine{line: "  overflow=truncate"}
			Expect(line.getWord(true)).To(Equal("overflow"))
			Expect(line.getCurrent()).To(Equal(byte('=')))
			Expect(line.getWord(false)).To(Equal("truncate"))
			Expect(line.isEOL()).To(BeTrue())

			line = cmdLine{line: "overflow=truncate"}
			Expect(line.getWord(false)).To(Equal(""))
			Expect(line.pos).To(Equal(0))
		})

		It("should fold case", func() {
			line := cmdLine{line: "ISA Simple"}
			Expect(line.getWord(false)).To(Equal("isa"))
			Expect(line.getWord(false)).To(Equal("simple"))
		})

		It("should return the rest of the line", func() {
			line := cmdLine{line: "assemble  MOV #5, R1  "}
			Expect(line.getWord(false)).To(Equal("assemble"))
			Expect(line.rest()).To(Equal("MOV #5, R1"))
			Expect(line.isEOL()).To(BeTrue())
		})
	})

	Context("when scanning options", func() {
		opts := []command.Options{
			{Name: "mode", OptionType: command.OptionList, OptionList: []string{"fast", "slow"}},
			{Name: "flag", OptionType: command.OptionSwitch},
		}

		It("should read list and switch options", func() {
			line := cmdLine{line: "mode=slow flag"}
			opt, err := line.getOption(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(opt.Name).To(Equal("mode"))
			Expect(opt.EqualOpt).To(Equal("slow"))
			opt, err = line.getOption(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(opt.Name).To(Equal("flag"))
			opt, err = line.getOption(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(opt).To(BeNil())
		})

		It("should reject bad options", func() {
			for _, text := range []string{"mode", "mode=", "mode=medium", "flag=on", "other", "9"} {
				line := cmdLine{line: text}
				_, err := line.getOption(opts)
				Expect(err).To(HaveOccurred(), text)
			}
		})
	})
})
