/*
 * psx - COP0 dispatch and syscall
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
)

// opCOP0 dispatches the three supported coprocessor-0 sub-operations.
// Any other sub-opcode is a fatal contract violation.
func (c *Cpu) opCOP0(inst instruction.Instruction) error {
	switch inst.CopOp() {
	case copMFC0:
		val, err := c.cop0.MFC0(inst.Rd())
		if err != nil {
			return err
		}
		c.setPendingLoad(inst.Rt(), val)
		return nil
	case copMTC0:
		return c.cop0.MTC0(inst.Rd(), c.reg(inst.Rt()))
	case copRFE:
		c.cop0.PopMode()
		return nil
	default:
		return &ErrUnsupportedCopOp{CopOp: inst.CopOp()}
	}
}

func (c *Cpu) opSYSCALL(inst instruction.Instruction) error {
	return exception{cop0.Syscall}
}
