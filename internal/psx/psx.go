/*
 * psx - top-level console assembly
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

// Package psx assembles the BIOS, RAM, bus, COP0 and CPU into the owns-tree
// described by spec.md §5 and drives the fetch/execute loop.
package psx

import (
	"fmt"
	"log/slog"

	"psx/internal/bios"
	"psx/internal/bus"
	"psx/internal/cop0"
	"psx/internal/cpu"
	"psx/internal/disasm"
	"psx/internal/ram"
	"psx/internal/width"
)

// Psx owns the whole machine: Cpu, which owns Cop0, and Bus, which owns
// Bios and Ram. Nothing below Psx holds a back-reference to its owner.
type Psx struct {
	Cpu *cpu.Cpu
	Bus *bus.Bus
	log *slog.Logger
}

// FatalError wraps a contract-violation error returned from the CPU with
// the program-counter and disassembled-instruction context needed for a
// useful diagnostic.
type FatalError struct {
	PC          uint32
	Instruction uint32
	Disasm      string
	Err         error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal at pc=%#08x [%s]: %v", e.PC, e.Disasm, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// New constructs a Psx with the given BIOS image loaded and RAM zeroed.
func New(biosImage []byte, log *slog.Logger) (*Psx, error) {
	if log == nil {
		log = slog.Default()
	}
	b, err := bios.New(biosImage)
	if err != nil {
		return nil, fmt.Errorf("psx: %w", err)
	}
	r := ram.New()
	bu := bus.New(b, r, log)
	c0 := cop0.New()
	c := cpu.New(bu, c0, log)

	return &Psx{Cpu: c, Bus: bu, log: log}, nil
}

// Step executes exactly one instruction. A fatal contract violation is
// wrapped into a *FatalError carrying the faulting PC, raw instruction
// word, and its disassembly; CPU exceptions are already handled
// internally by cpu.Cpu.Step and never reach here as errors.
func (p *Psx) Step() error {
	pc := p.Cpu.PC()
	if err := p.Cpu.Step(); err != nil {
		word, loadErr := p.Bus.Load(width.Word, pc)
		if loadErr != nil {
			word = 0
		}
		return &FatalError{
			PC:          pc,
			Instruction: word,
			Disasm:      disasm.Format(word),
			Err:         err,
		}
	}
	return nil
}

// Run executes up to n instructions, stopping early on the first fatal
// error. It returns the number of instructions actually retired.
func (p *Psx) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := p.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}
