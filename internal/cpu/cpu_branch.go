/*
 * psx - jump and branch opcodes
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

package cpu

import "psx/internal/instruction"

// branchTarget computes a PC-relative branch target: the address of the
// delay-slot instruction (held in c.pc during dispatch) plus the
// sign-extended immediate scaled by the instruction width.
func (c *Cpu) branchTarget(inst instruction.Instruction) uint32 {
	return c.pc + (inst.ImmSE() << 2)
}

// takeBranch marks the branch as having been dispatched (a delay slot
// always follows) and, when taken, redirects the next fetch.
func (c *Cpu) takeBranch(taken bool, target uint32) {
	c.pendingBranch = true
	if taken {
		c.nextPC = target
	}
}

func (c *Cpu) opJ(inst instruction.Instruction) error {
	target := (c.nextPC & 0xF000_0000) | (inst.Addr() << 2)
	c.takeBranch(true, target)
	return nil
}

func (c *Cpu) opJAL(inst instruction.Instruction) error {
	c.setReg(RA, c.nextPC)
	return c.opJ(inst)
}

func (c *Cpu) opJR(inst instruction.Instruction) error {
	c.takeBranch(true, c.reg(inst.Rs()))
	return nil
}

func (c *Cpu) opJALR(inst instruction.Instruction) error {
	link := c.nextPC
	target := c.reg(inst.Rs())
	rd := inst.Rd()
	if rd == 0 {
		rd = RA
	}
	c.setReg(rd, link)
	c.takeBranch(true, target)
	return nil
}

func (c *Cpu) opBEQ(inst instruction.Instruction) error {
	c.takeBranch(c.reg(inst.Rs()) == c.reg(inst.Rt()), c.branchTarget(inst))
	return nil
}

func (c *Cpu) opBNE(inst instruction.Instruction) error {
	c.takeBranch(c.reg(inst.Rs()) != c.reg(inst.Rt()), c.branchTarget(inst))
	return nil
}

func (c *Cpu) opBLEZ(inst instruction.Instruction) error {
	c.takeBranch(int32(c.reg(inst.Rs())) <= 0, c.branchTarget(inst))
	return nil
}

func (c *Cpu) opBGTZ(inst instruction.Instruction) error {
	c.takeBranch(int32(c.reg(inst.Rs())) > 0, c.branchTarget(inst))
	return nil
}

// opBcondZ implements BLTZ/BGEZ/BLTZAL/BGEZAL, all multiplexed onto
// primary opcode 0x01 through the rt field: bit 0 selects >=0 versus <0,
// and rt&0x1e == 0x10 selects the "and link" variants, which write RA
// unconditionally regardless of whether the branch is taken.
func (c *Cpu) opBcondZ(inst instruction.Instruction) error {
	rt := inst.Rt()
	link := rt&0x1e == 0x10
	geZero := rt&0x01 != 0

	if link {
		c.setReg(RA, c.nextPC)
	}

	s := int32(c.reg(inst.Rs()))
	taken := s < 0
	if geZero {
		taken = s >= 0
	}
	c.takeBranch(taken, c.branchTarget(inst))
	return nil
}
