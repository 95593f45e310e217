/*
 * psx - instruction disassembler
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

// Package disasm renders a raw instruction word as a MIPS mnemonic for
// diagnostics and the interactive console.
package disasm

import (
	"fmt"

	"psx/internal/instruction"
)

var regNames = [32]string{
	"r0", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

func reg(i uint32) string { return regNames[i&0x1f] }

// Format renders a single instruction word as a disassembled mnemonic
// string. Unrecognized opcodes render as "<unknown 0x........>" rather
// than erroring, since the disassembler is a diagnostic aid, not a
// decode-correctness oracle.
func Format(word uint32) string {
	inst := instruction.Instruction(word)

	switch inst.Opcode() {
	case 0x00:
		return formatSpecial(inst)
	case 0x01:
		return formatBcondZ(inst)
	case 0x02:
		return fmt.Sprintf("j      %#08x", inst.Addr()<<2)
	case 0x03:
		return fmt.Sprintf("jal    %#08x", inst.Addr()<<2)
	case 0x04:
		return iName("beq", inst, true)
	case 0x05:
		return iName("bne", inst, true)
	case 0x06:
		return fmt.Sprintf("blez   %s, %#x", reg(inst.Rs()), int32(inst.ImmSE()))
	case 0x07:
		return fmt.Sprintf("bgtz   %s, %#x", reg(inst.Rs()), int32(inst.ImmSE()))
	case 0x08:
		return iName("addi", inst, false)
	case 0x09:
		return iName("addiu", inst, false)
	case 0x0A:
		return iName("slti", inst, false)
	case 0x0B:
		return iName("sltiu", inst, false)
	case 0x0C:
		return iNameU("andi", inst)
	case 0x0D:
		return iNameU("ori", inst)
	case 0x0F:
		return fmt.Sprintf("lui    %s, %#x", reg(inst.Rt()), inst.Imm())
	case 0x10:
		return formatCop0(inst)
	case 0x20:
		return loadStore("lb", inst)
	case 0x21:
		return loadStore("lh", inst)
	case 0x23:
		return loadStore("lw", inst)
	case 0x24:
		return loadStore("lbu", inst)
	case 0x25:
		return loadStore("lhu", inst)
	case 0x28:
		return loadStore("sb", inst)
	case 0x29:
		return loadStore("sh", inst)
	case 0x2B:
		return loadStore("sw", inst)
	default:
		return fmt.Sprintf("<unknown %#08x>", word)
	}
}

func iName(mnemonic string, inst instruction.Instruction, branch bool) string {
	if branch {
		return fmt.Sprintf("%-6s %s, %s, %#x", mnemonic, reg(inst.Rs()), reg(inst.Rt()), int32(inst.ImmSE()))
	}
	return fmt.Sprintf("%-6s %s, %s, %#x", mnemonic, reg(inst.Rt()), reg(inst.Rs()), int32(inst.ImmSE()))
}

func iNameU(mnemonic string, inst instruction.Instruction) string {
	return fmt.Sprintf("%-6s %s, %s, %#x", mnemonic, reg(inst.Rt()), reg(inst.Rs()), inst.Imm())
}

func loadStore(mnemonic string, inst instruction.Instruction) string {
	return fmt.Sprintf("%-6s %s, %#x(%s)", mnemonic, reg(inst.Rt()), int32(inst.ImmSE()), reg(inst.Rs()))
}

func formatBcondZ(inst instruction.Instruction) string {
	mnemonic := "bltz"
	switch inst.Rt() {
	case 0x01:
		mnemonic = "bgez"
	case 0x10:
		mnemonic = "bltzal"
	case 0x11:
		mnemonic = "bgezal"
	}
	return fmt.Sprintf("%-6s %s, %#x", mnemonic, reg(inst.Rs()), int32(inst.ImmSE()))
}

func formatCop0(inst instruction.Instruction) string {
	switch inst.CopOp() {
	case 0x00:
		return fmt.Sprintf("mfc0   %s, $%d", reg(inst.Rt()), inst.Rd())
	case 0x04:
		return fmt.Sprintf("mtc0   %s, $%d", reg(inst.Rt()), inst.Rd())
	case 0x10:
		return "rfe"
	default:
		return fmt.Sprintf("<unknown cop0 %#x>", inst.Raw())
	}
}

func formatSpecial(inst instruction.Instruction) string {
	switch inst.Funct() {
	case 0x00:
		if inst.Raw() == 0 {
			return "nop"
		}
		return fmt.Sprintf("sll    %s, %s, %d", reg(inst.Rd()), reg(inst.Rt()), inst.Shamt())
	case 0x02:
		return fmt.Sprintf("srl    %s, %s, %d", reg(inst.Rd()), reg(inst.Rt()), inst.Shamt())
	case 0x03:
		return fmt.Sprintf("sra    %s, %s, %d", reg(inst.Rd()), reg(inst.Rt()), inst.Shamt())
	case 0x04:
		return rName("sllv", inst)
	case 0x06:
		return rName("srlv", inst)
	case 0x07:
		return rName("srav", inst)
	case 0x08:
		return fmt.Sprintf("jr     %s", reg(inst.Rs()))
	case 0x09:
		return fmt.Sprintf("jalr   %s, %s", reg(inst.Rd()), reg(inst.Rs()))
	case 0x0C:
		return "syscall"
	case 0x10:
		return fmt.Sprintf("mfhi   %s", reg(inst.Rd()))
	case 0x11:
		return fmt.Sprintf("mthi   %s", reg(inst.Rs()))
	case 0x12:
		return fmt.Sprintf("mflo   %s", reg(inst.Rd()))
	case 0x13:
		return fmt.Sprintf("mtlo   %s", reg(inst.Rs()))
	case 0x1A:
		return fmt.Sprintf("div    %s, %s", reg(inst.Rs()), reg(inst.Rt()))
	case 0x1B:
		return fmt.Sprintf("divu   %s, %s", reg(inst.Rs()), reg(inst.Rt()))
	case 0x20:
		return rName("add", inst)
	case 0x21:
		return rName("addu", inst)
	case 0x22:
		return rName("sub", inst)
	case 0x23:
		return rName("subu", inst)
	case 0x24:
		return rName("and", inst)
	case 0x25:
		return rName("or", inst)
	case 0x27:
		return rName("nor", inst)
	case 0x2A:
		return rName("slt", inst)
	case 0x2B:
		return rName("sltu", inst)
	default:
		return fmt.Sprintf("<unknown special %#08x>", inst.Raw())
	}
}

func rName(mnemonic string, inst instruction.Instruction) string {
	return fmt.Sprintf("%-6s %s, %s, %s", mnemonic, reg(inst.Rd()), reg(inst.Rs()), reg(inst.Rt()))
}
