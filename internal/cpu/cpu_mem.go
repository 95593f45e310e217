/*
 * psx - load and store opcodes
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
	"psx/internal/cop0"
	"psx/internal/instruction"
	"psx/internal/width"
)

func (c *Cpu) effectiveAddr(inst instruction.Instruction) uint32 {
	return c.reg(inst.Rs()) + inst.ImmSE()
}

func (c *Cpu) opLW(inst instruction.Instruction) error {
	addr := c.effectiveAddr(inst)
	if addr&3 != 0 {
		return exception{cop0.LoadAlignmentError}
	}
	if c.cop0.IsIsolateCache() {
		return nil
	}
	val, err := c.bus.Load(width.Word, addr)
	if err != nil {
		return err
	}
	c.setPendingLoad(inst.Rt(), val)
	return nil
}

func (c *Cpu) opLH(inst instruction.Instruction) error {
	addr := c.effectiveAddr(inst)
	if addr&1 != 0 {
		return exception{cop0.LoadAlignmentError}
	}
	if c.cop0.IsIsolateCache() {
		return nil
	}
	val, err := c.bus.Load(width.Half, addr)
	if err != nil {
		return err
	}
	c.setPendingLoad(inst.Rt(), uint32(int32(int16(val))))
	return nil
}

func (c *Cpu) opLHU(inst instruction.Instruction) error {
	addr := c.effectiveAddr(inst)
	if addr&1 != 0 {
		return exception{cop0.LoadAlignmentError}
	}
	if c.cop0.IsIsolateCache() {
		return nil
	}
	val, err := c.bus.Load(width.Half, addr)
	if err != nil {
		return err
	}
	c.setPendingLoad(inst.Rt(), val)
	return nil
}

func (c *Cpu) opLB(inst instruction.Instruction) error {
	addr := c.effectiveAddr(inst)
	if c.cop0.IsIsolateCache() {
		return nil
	}
	val, err := c.bus.Load(width.Byte, addr)
	if err != nil {
		return err
	}
	c.setPendingLoad(inst.Rt(), uint32(int32(int8(val))))
	return nil
}

func (c *Cpu) opLBU(inst instruction.Instruction) error {
	addr := c.effectiveAddr(inst)
	if c.cop0.IsIsolateCache() {
		return nil
	}
	val, err := c.bus.Load(width.Byte, addr)
	if err != nil {
		return err
	}
	c.setPendingLoad(inst.Rt(), val)
	return nil
}

func (c *Cpu) opSW(inst instruction.Instruction) error {
	addr := c.effectiveAddr(inst)
	if addr&3 != 0 {
		return exception{cop0.StoreAlignmentError}
	}
	if c.cop0.IsIsolateCache() {
		return nil
	}
	return c.bus.Store(width.Word, addr, c.reg(inst.Rt()))
}

func (c *Cpu) opSH(inst instruction.Instruction) error {
	addr := c.effectiveAddr(inst)
	if addr&1 != 0 {
		return exception{cop0.StoreAlignmentError}
	}
	if c.cop0.IsIsolateCache() {
		return nil
	}
	return c.bus.Store(width.Half, addr, c.reg(inst.Rt()))
}

func (c *Cpu) opSB(inst instruction.Instruction) error {
	addr := c.effectiveAddr(inst)
	if c.cop0.IsIsolateCache() {
		return nil
	}
	return c.bus.Store(width.Byte, addr, c.reg(inst.Rt()))
}
