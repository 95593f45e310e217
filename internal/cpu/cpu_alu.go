/*
 * psx - arithmetic, logic, shift and compare opcodes
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

import (
	"math"

	"psx/internal/cop0"
	"psx/internal/instruction"
)

// addOverflow performs a 32-bit signed add and reports whether the
// mathematical result could not be represented in 32 bits.
func addOverflow(a, b int32) (int32, bool) {
	sum := int64(a) + int64(b)
	return int32(sum), sum != int64(int32(sum))
}

// subOverflow performs a 32-bit signed subtract and reports whether the
// mathematical result could not be represented in 32 bits.
func subOverflow(a, b int32) (int32, bool) {
	diff := int64(a) - int64(b)
	return int32(diff), diff != int64(int32(diff))
}

func (c *Cpu) opADDI(inst instruction.Instruction) error {
	s := int32(c.reg(inst.Rs()))
	sum, overflow := addOverflow(s, int32(inst.ImmSE()))
	if overflow {
		return exception{cop0.Overflow}
	}
	c.setReg(inst.Rt(), uint32(sum))
	return nil
}

func (c *Cpu) opADDIU(inst instruction.Instruction) error {
	c.setReg(inst.Rt(), c.reg(inst.Rs())+inst.ImmSE())
	return nil
}

func (c *Cpu) opSLTI(inst instruction.Instruction) error {
	if int32(c.reg(inst.Rs())) < int32(inst.ImmSE()) {
		c.setReg(inst.Rt(), 1)
	} else {
		c.setReg(inst.Rt(), 0)
	}
	return nil
}

func (c *Cpu) opSLTIU(inst instruction.Instruction) error {
	if c.reg(inst.Rs()) < inst.ImmSE() {
		c.setReg(inst.Rt(), 1)
	} else {
		c.setReg(inst.Rt(), 0)
	}
	return nil
}

func (c *Cpu) opANDI(inst instruction.Instruction) error {
	c.setReg(inst.Rt(), c.reg(inst.Rs())&inst.Imm())
	return nil
}

func (c *Cpu) opORI(inst instruction.Instruction) error {
	c.setReg(inst.Rt(), c.reg(inst.Rs())|inst.Imm())
	return nil
}

func (c *Cpu) opLUI(inst instruction.Instruction) error {
	c.setReg(inst.Rt(), inst.Imm()<<16)
	return nil
}

func (c *Cpu) opSLL(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.reg(inst.Rt())<<inst.Shamt())
	return nil
}

func (c *Cpu) opSRL(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.reg(inst.Rt())>>inst.Shamt())
	return nil
}

func (c *Cpu) opSRA(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), uint32(int32(c.reg(inst.Rt()))>>inst.Shamt()))
	return nil
}

func (c *Cpu) opSLLV(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.reg(inst.Rt())<<(c.reg(inst.Rs())&0x1f))
	return nil
}

func (c *Cpu) opSRLV(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.reg(inst.Rt())>>(c.reg(inst.Rs())&0x1f))
	return nil
}

func (c *Cpu) opSRAV(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), uint32(int32(c.reg(inst.Rt()))>>(c.reg(inst.Rs())&0x1f)))
	return nil
}

func (c *Cpu) opADD(inst instruction.Instruction) error {
	sum, overflow := addOverflow(int32(c.reg(inst.Rs())), int32(c.reg(inst.Rt())))
	if overflow {
		return exception{cop0.Overflow}
	}
	c.setReg(inst.Rd(), uint32(sum))
	return nil
}

func (c *Cpu) opADDU(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.reg(inst.Rs())+c.reg(inst.Rt()))
	return nil
}

func (c *Cpu) opSUB(inst instruction.Instruction) error {
	diff, overflow := subOverflow(int32(c.reg(inst.Rs())), int32(c.reg(inst.Rt())))
	if overflow {
		return exception{cop0.Overflow}
	}
	c.setReg(inst.Rd(), uint32(diff))
	return nil
}

func (c *Cpu) opSUBU(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.reg(inst.Rs())-c.reg(inst.Rt()))
	return nil
}

func (c *Cpu) opAND(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.reg(inst.Rs())&c.reg(inst.Rt()))
	return nil
}

func (c *Cpu) opOR(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.reg(inst.Rs())|c.reg(inst.Rt()))
	return nil
}

func (c *Cpu) opNOR(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), ^(c.reg(inst.Rs()) | c.reg(inst.Rt())))
	return nil
}

func (c *Cpu) opSLT(inst instruction.Instruction) error {
	if int32(c.reg(inst.Rs())) < int32(c.reg(inst.Rt())) {
		c.setReg(inst.Rd(), 1)
	} else {
		c.setReg(inst.Rd(), 0)
	}
	return nil
}

func (c *Cpu) opSLTU(inst instruction.Instruction) error {
	if c.reg(inst.Rs()) < c.reg(inst.Rt()) {
		c.setReg(inst.Rd(), 1)
	} else {
		c.setReg(inst.Rd(), 0)
	}
	return nil
}

func (c *Cpu) opMFHI(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.hi)
	return nil
}

func (c *Cpu) opMTHI(inst instruction.Instruction) error {
	c.hi = c.reg(inst.Rs())
	return nil
}

func (c *Cpu) opMFLO(inst instruction.Instruction) error {
	c.setReg(inst.Rd(), c.lo)
	return nil
}

func (c *Cpu) opMTLO(inst instruction.Instruction) error {
	c.lo = c.reg(inst.Rs())
	return nil
}

// opDIV implements signed division, including the architectural
// divide-by-zero and MinInt32/-1 overflow special cases (spec.md §4.5.2).
func (c *Cpu) opDIV(inst instruction.Instruction) error {
	n := int32(c.reg(inst.Rs()))
	d := int32(c.reg(inst.Rt()))

	switch {
	case d == 0:
		c.hi = uint32(n)
		if n >= 0 {
			c.lo = 0xFFFFFFFF
		} else {
			c.lo = 1
		}
	case n == math.MinInt32 && d == -1:
		c.lo = uint32(n)
		c.hi = 0
	default:
		c.lo = uint32(n / d)
		c.hi = uint32(n % d)
	}
	return nil
}

func (c *Cpu) opDIVU(inst instruction.Instruction) error {
	n := c.reg(inst.Rs())
	d := c.reg(inst.Rt())

	if d == 0 {
		c.lo = 0xFFFFFFFF
		c.hi = n
		return nil
	}
	c.lo = n / d
	c.hi = n % d
	return nil
}
