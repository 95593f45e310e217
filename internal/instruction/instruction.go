/*
 * psx - instruction word bit-field extraction
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

// Package instruction extracts the fixed bit fields of a 32-bit MIPS
// R3000A instruction word.
package instruction

// Instruction wraps a raw 32-bit instruction word.
type Instruction uint32

// Opcode returns bits [31:26], the primary opcode.
func (i Instruction) Opcode() uint32 { return uint32(i) >> 26 }

// Rs returns bits [25:21], the first source register.
func (i Instruction) Rs() uint32 { return (uint32(i) >> 21) & 0x1f }

// Rt returns bits [20:16], the second source/target register.
func (i Instruction) Rt() uint32 { return (uint32(i) >> 16) & 0x1f }

// Rd returns bits [15:11], the destination register.
func (i Instruction) Rd() uint32 { return (uint32(i) >> 11) & 0x1f }

// Shamt returns bits [10:6], the shift amount.
func (i Instruction) Shamt() uint32 { return (uint32(i) >> 6) & 0x1f }

// Funct returns bits [5:0], the secondary opcode.
func (i Instruction) Funct() uint32 { return uint32(i) & 0x3f }

// Imm returns bits [15:0], zero-extended.
func (i Instruction) Imm() uint32 { return uint32(i) & 0xffff }

// ImmSE returns bits [15:0], sign-extended to 32 bits.
func (i Instruction) ImmSE() uint32 { return uint32(int32(int16(uint32(i) & 0xffff))) }

// Addr returns bits [25:0], the word-indexed jump target.
func (i Instruction) Addr() uint32 { return uint32(i) & 0x03ff_ffff }

// CopOp returns bits [25:21], the coprocessor sub-opcode field.
func (i Instruction) CopOp() uint32 { return i.Rs() }

// Raw returns the underlying 32-bit word.
func (i Instruction) Raw() uint32 { return uint32(i) }
