/*
 * psx - system control coprocessor (COP0)
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

// Package cop0 models the system control coprocessor: the status and
// cause registers, the exception PC, and the kernel/user mode stack.
package cop0

import "fmt"

// Exception codes, placed in cause bits 6:2.
type Exception uint32

const (
	Interrupt          Exception = 0
	LoadAlignmentError Exception = 4
	StoreAlignmentError Exception = 5
	Syscall            Exception = 8
	Break              Exception = 9
	IllegalInstruction Exception = 10
	CoprocessorError   Exception = 11
	Overflow           Exception = 12
)

// Vector selects between the normal and boot exception handler address.
type Vector int

const (
	Normal Vector = iota
	Boot
)

const (
	normalVectorBase = 0x8000_0080
	bootVectorBase   = 0xBFC0_0180

	isolateCacheBit = 1 << 16
	bevBit          = 1 << 22
)

// Cop0 is the COP0 register file.
type Cop0 struct {
	sr    uint32
	cause uint32
	epc   uint32
}

// New returns COP0 at architectural reset state (all registers zero).
func New() *Cop0 {
	return &Cop0{}
}

// SR returns the status register.
func (c *Cop0) SR() uint32 { return c.sr }

// Cause returns the cause register.
func (c *Cop0) Cause() uint32 { return c.cause }

// EPC returns the exception program counter.
func (c *Cop0) EPC() uint32 { return c.epc }

// SetEPC records the return address for the exception currently being
// entered.
func (c *Cop0) SetEPC(pc uint32) { c.epc = pc }

// IsIsolateCache reports whether bit 16 of SR (cache isolation) is set.
func (c *Cop0) IsIsolateCache() bool {
	return c.sr&isolateCacheBit != 0
}

// ExceptionVector reports which vector base SR's BEV bit selects.
func (c *Cop0) ExceptionVector() Vector {
	if c.sr&bevBit != 0 {
		return Boot
	}
	return Normal
}

// VectorAddress returns the handler entry address for the current SR.BEV.
func (c *Cop0) VectorAddress() uint32 {
	if c.ExceptionVector() == Boot {
		return bootVectorBase
	}
	return normalVectorBase
}

// PushMode shifts SR bits [3:0] left by 2, entering kernel mode with
// interrupts disabled and pushing the prior (IEc, KUc) pair down the
// three-deep mode stack. Called on exception entry.
func (c *Cop0) PushMode() {
	mode := c.sr & 0x3f
	c.sr &^= 0x3f
	c.sr |= (mode << 2) & 0x3f
}

// PopMode shifts SR bits [5:0] right by 2 into bits [3:0], restoring the
// previous mode pair; the oldest pair in bits [5:4] is left in place.
// Called by RFE on exception return.
func (c *Cop0) PopMode() {
	mode := c.sr & 0x3f
	c.sr &^= 0x0f
	c.sr |= mode >> 2
}

// SetCause clears bits 6:2 of cause and sets them to the exception code,
// preserving every other bit.
func (c *Cop0) SetCause(exc Exception) {
	c.cause &^= 0x7c
	c.cause |= (uint32(exc) << 2) & 0x7c
}

// ErrUnsupportedWrite is returned by MTC0 for a non-zero write to a
// register the core does not yet implement (spec.md §4.4, §7).
type ErrUnsupportedWrite struct {
	Reg uint32
	Val uint32
}

func (e *ErrUnsupportedWrite) Error() string {
	return fmt.Sprintf("cop0: unsupported write of %#x to register %d", e.Val, e.Reg)
}

// MTC0 writes val into COP0 register reg (move-to-coprocessor-0).
// Registers 3, 5, 6, 7, 9, 11 accept only a zero write. Register 12 is SR,
// 13 is Cause, 14 is EPC; non-zero writes to 13/14 are likewise rejected
// pending full exception-return support.
func (c *Cop0) MTC0(reg uint32, val uint32) error {
	switch reg {
	case 3, 5, 6, 7, 9, 11:
		if val != 0 {
			return &ErrUnsupportedWrite{Reg: reg, Val: val}
		}
	case 12:
		c.sr = val
	case 13:
		if val != 0 {
			return &ErrUnsupportedWrite{Reg: reg, Val: val}
		}
	case 14:
		if val != 0 {
			return &ErrUnsupportedWrite{Reg: reg, Val: val}
		}
	default:
		return &ErrUnsupportedWrite{Reg: reg, Val: val}
	}
	return nil
}

// MFC0 reads COP0 register reg (move-from-coprocessor-0).
func (c *Cop0) MFC0(reg uint32) (uint32, error) {
	switch reg {
	case 12:
		return c.sr, nil
	case 13:
		return c.cause, nil
	case 14:
		return c.epc, nil
	default:
		return 0, fmt.Errorf("cop0: unhandled read from register %d", reg)
	}
}
