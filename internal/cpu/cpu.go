/*
 * psx - CPU instruction fetch and execute
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

// Package cpu is the instruction-accurate MIPS R3000A interpreter: register
// file, load-delay and branch-delay discipline, and exception entry.
package cpu

import (
	"fmt"
	"log/slog"

	"psx/internal/bus"
	"psx/internal/cop0"
	"psx/internal/instruction"
	"psx/internal/width"
)

// RA is the architectural alias for register 31, the link register used
// by jump-and-link instructions.
const RA = 31

// ResetPC is the address the CPU begins fetching from at power-on.
const ResetPC = 0xBFC0_0000

// pendingLoad is the at-most-one in-flight load-delay record.
type pendingLoad struct {
	valid  bool
	target uint32
	value  uint32
}

// Cpu holds all CPU-visible architectural state.
type Cpu struct {
	regs    [32]uint32
	outRegs [32]uint32

	pc        uint32
	nextPC    uint32
	currentPC uint32

	lo, hi uint32

	pending pendingLoad

	pendingBranch   bool
	branchDelaySlot bool

	instructionsRetired uint64

	bus  *bus.Bus
	cop0 *cop0.Cop0
	log  *slog.Logger

	table    [64]opFunc
	secTable [64]opFunc
}

type opFunc func(*Cpu, instruction.Instruction) error

// New builds a Cpu at architectural reset state: PC at the BIOS reset
// vector, COP0 state taken from the caller, all GPRs (other than R0) left at
// the sentinel 0xdeadbeef the real hardware would also leave undefined.
func New(b *bus.Bus, c0 *cop0.Cop0, log *slog.Logger) *Cpu {
	if log == nil {
		log = slog.Default()
	}
	c := &Cpu{
		pc:        ResetPC,
		nextPC:    ResetPC + 4,
		currentPC: ResetPC,
		bus:       b,
		cop0:      c0,
		log:       log,
	}
	for i := 1; i < 32; i++ {
		c.regs[i] = 0xdeadbeef
		c.outRegs[i] = 0xdeadbeef
	}
	c.createTables()
	return c
}

// PC returns the address of the instruction about to be fetched.
func (c *Cpu) PC() uint32 { return c.pc }

// Reg returns the architectural value of GPR i.
func (c *Cpu) Reg(i uint32) uint32 { return c.regs[i&0x1f] }

// LO returns the LO register (quotient / multiply-low).
func (c *Cpu) LO() uint32 { return c.lo }

// HI returns the HI register (remainder / multiply-high).
func (c *Cpu) HI() uint32 { return c.hi }

// Cop0 exposes the owned COP0 state for read-only inspection (console,
// diagnostics).
func (c *Cpu) Cop0() *cop0.Cop0 { return c.cop0 }

// InstructionsRetired returns the number of instructions successfully
// retired since construction.
func (c *Cpu) InstructionsRetired() uint64 { return c.instructionsRetired }

// reg reads a GPR for use as an instruction operand.
func (c *Cpu) reg(i uint32) uint32 { return c.regs[i&0x1f] }

// setReg writes a GPR through the shadow register file; register 0 is
// wired to zero and any write to it is discarded.
func (c *Cpu) setReg(i uint32, v uint32) {
	c.outRegs[i&0x1f] = v
	c.outRegs[0] = 0
}

// flushLoad commits the in-flight pending load into the shadow register
// file and clears it.
func (c *Cpu) flushLoad() {
	if c.pending.valid {
		c.outRegs[c.pending.target] = c.pending.value
		c.outRegs[0] = 0
	}
	c.pending = pendingLoad{}
}

// beginLoadDelay resolves the pending load against the instruction about
// to execute, per spec §4.5.3: if the instruction is itself a load/MFC0
// producing a new pending record for the same register the old record
// targets, the old value is discarded unwritten; otherwise any old
// pending load is flushed first.
func (c *Cpu) beginLoadDelay(inst instruction.Instruction) {
	target, produces := c.loadTarget(inst)
	if produces && c.pending.valid && c.pending.target == target {
		c.pending = pendingLoad{}
		return
	}
	c.flushLoad()
}

// loadTarget reports the destination register of inst if it is a
// load-delay-producing instruction that will actually execute (bus loads
// suppressed by cache isolation do not count).
func (c *Cpu) loadTarget(inst instruction.Instruction) (uint32, bool) {
	switch inst.Opcode() {
	case opLB, opLH, opLW, opLBU, opLHU:
		if c.cop0.IsIsolateCache() {
			return 0, false
		}
		return inst.Rt(), true
	case opCOP0:
		if inst.CopOp() == copMFC0 {
			return inst.Rt(), true
		}
	}
	return 0, false
}

// setPendingLoad installs a new load-delay record. Callers must have
// already run beginLoadDelay for this instruction.
func (c *Cpu) setPendingLoad(target uint32, value uint32) {
	c.pending = pendingLoad{valid: true, target: target, value: value}
}

// exception is the internal signal used by opcode handlers to request
// CPU exception entry rather than returning a fatal error.
type exception struct {
	code cop0.Exception
}

func (e exception) Error() string {
	return fmt.Sprintf("cpu exception raised: code %d", e.code)
}

// ErrUnknownOpcode is a fatal contract violation: the primary or
// secondary opcode is outside the supported table.
type ErrUnknownOpcode struct {
	Inst uint32
}

func (e *ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("cpu: unknown opcode in instruction %#08x", e.Inst)
}

// ErrUnsupportedCopOp is a fatal contract violation: the COP0 sub-op is
// outside {MFC0, MTC0, RFE}.
type ErrUnsupportedCopOp struct {
	CopOp uint32
}

func (e *ErrUnsupportedCopOp) Error() string {
	return fmt.Sprintf("cpu: unsupported cop0 sub-op %#x", e.CopOp)
}

// Step executes exactly one architectural instruction, per spec.md §4.5:
// alignment-check the PC, fetch, commit any pending load, dispatch, and
// retire the shadow register file into the architectural one. Exceptions
// raised by the dispatched instruction are handled internally (PC
// redirected into the handler) and reported as a nil error; only fatal
// contract violations are returned.
func (c *Cpu) Step() error {
	c.currentPC = c.pc

	if c.currentPC&3 != 0 {
		c.enterException(cop0.LoadAlignmentError)
		c.regs = c.outRegs
		c.instructionsRetired++
		return nil
	}

	word, err := c.bus.Load(width.Word, c.pc)
	if err != nil {
		return err
	}
	inst := instruction.Instruction(word)

	c.pc = c.nextPC
	c.nextPC += 4

	c.branchDelaySlot = c.pendingBranch
	c.pendingBranch = false

	c.beginLoadDelay(inst)

	if err := c.dispatch(inst); err != nil {
		if exc, ok := err.(exception); ok {
			c.enterException(exc.code)
		} else {
			return err
		}
	}

	c.regs = c.outRegs
	c.instructionsRetired++
	return nil
}

// enterException performs precise exception entry per spec.md §4.5.4.
func (c *Cpu) enterException(exc cop0.Exception) {
	c.cop0.PushMode()
	c.cop0.SetCause(exc)
	c.cop0.SetEPC(c.currentPC)

	handler := c.cop0.VectorAddress()
	c.pc = handler
	c.nextPC = handler + 4
	c.pendingBranch = false

	c.log.Debug("cpu exception", "code", int(exc), "epc", hex32(c.currentPC), "handler", hex32(handler))
}

func hex32(v uint32) string {
	return fmt.Sprintf("%#08x", v)
}

// dispatch decodes the primary opcode and, for opcode 0, the secondary
// function field, and invokes the matching handler.
func (c *Cpu) dispatch(inst instruction.Instruction) error {
	op := inst.Opcode()
	if op == 0 {
		fn := c.secTable[inst.Funct()]
		if fn == nil {
			return &ErrUnknownOpcode{Inst: inst.Raw()}
		}
		return fn(c, inst)
	}
	fn := c.table[op]
	if fn == nil {
		return &ErrUnknownOpcode{Inst: inst.Raw()}
	}
	return fn(c, inst)
}
