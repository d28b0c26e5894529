/*
 * asmconv - MIPS opcode and function code definitions.
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

package mips

const (
	// Opcode definitions.
	OpSpecial = 0x00 // R-type, see function code.
	OpJ       = 0x02 // target
	OpJAL     = 0x03 // target
	OpBEQ     = 0x04 // rs, rt, imm
	OpBNE     = 0x05 // rs, rt, imm
	OpADDI    = 0x08 // rt, rs, imm
	OpADDIU   = 0x09 // rt, rs, imm
	OpSLTI    = 0x0A // rt, rs, imm
	OpSLTIU   = 0x0B // rt, rs, imm
	OpANDI    = 0x0C // rt, rs, imm
	OpORI     = 0x0D // rt, rs, imm
	OpXORI    = 0x0E // rt, rs, imm
	OpLUI     = 0x0F // rt, imm
	OpLB      = 0x20 // rt, imm(rs)
	OpLH      = 0x21 // rt, imm(rs)
	OpLW      = 0x23 // rt, imm(rs)
	OpLBU     = 0x24 // rt, imm(rs)
	OpLHU     = 0x25 // rt, imm(rs)
	OpSB      = 0x28 // rt, imm(rs)
	OpSH      = 0x29 // rt, imm(rs)
	OpSW      = 0x2B // rt, imm(rs)

	// Function codes for OpSpecial.
	FnSLL   = 0x00 // rd, rt, shamt
	FnSRL   = 0x02 // rd, rt, shamt
	FnSRA   = 0x03 // rd, rt, shamt
	FnJR    = 0x08 // rs
	FnMFHI  = 0x10 // rd
	FnMFLO  = 0x12 // rd
	FnMULT  = 0x18 // rs, rt
	FnMULTU = 0x19 // rs, rt
	FnDIV   = 0x1A // rs, rt
	FnDIVU  = 0x1B // rs, rt
	FnADD   = 0x20 // rd, rs, rt
	FnADDU  = 0x21
	FnSUB   = 0x22
	FnSUBU  = 0x23
	FnAND   = 0x24
	FnOR    = 0x25
	FnXOR   = 0x26
	FnNOR   = 0x27
	FnSLT   = 0x2A
	FnSLTU  = 0x2B
)
