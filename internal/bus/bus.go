/*
 * psx - address space router
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

// Package bus routes typed loads and stores to the BIOS, RAM, or one of
// the memory-mapped I/O stub windows, after masking the address through
// the region map.
package bus

import (
	"fmt"
	"log/slog"

	"psx/internal/bios"
	"psx/internal/ram"
	"psx/internal/region"
	"psx/internal/width"
)

// gpuStatReady is returned for a read from GPU offset 4 to simulate
// GPUSTAT reporting ready-to-receive-DMA, which lets the BIOS boot
// sequence progress past its GPU poll loop.
const gpuStatReady = 0x1000_0000

// ErrWriteToReadOnly is a fatal contract violation: a store targeted the
// BIOS window.
type ErrWriteToReadOnly struct {
	Addr uint32
}

func (e *ErrWriteToReadOnly) Error() string {
	return fmt.Sprintf("bus: store to read-only BIOS region at %#08x", e.Addr)
}

// Bus owns the BIOS image and RAM and dispatches every load/store through
// the region map.
type Bus struct {
	Bios *bios.Bios
	Ram  *ram.Ram
	log  *slog.Logger
}

// New builds a Bus over the given BIOS and RAM.
func New(b *bios.Bios, r *ram.Ram, log *slog.Logger) *Bus {
	if log == nil {
		log = slog.Default()
	}
	return &Bus{Bios: b, Ram: r, log: log}
}

// Load masks addr to a physical address, looks up its region, and returns
// a zero-widened value: BIOS and RAM are read for real, MMIO windows
// return 0 except for the GPU-ready special case.
func (b *Bus) Load(w width.Width, addr uint32) (uint32, error) {
	paddr := region.Mask(addr)
	win, off, err := region.Get(paddr)
	if err != nil {
		return 0, err
	}

	switch win.Tag {
	case region.BIOS:
		return b.Bios.Load(w, off), nil
	case region.RAM:
		return b.Ram.Load(w, off), nil
	case region.GPU:
		if off == 4 {
			return gpuStatReady, nil
		}
		b.log.Warn("read from unimplemented MMIO window", "region", win.Tag.String(), "addr", fmt.Sprintf("%#08x", addr))
		return 0, nil
	default:
		b.log.Warn("read from unimplemented MMIO window", "region", win.Tag.String(), "addr", fmt.Sprintf("%#08x", addr))
		return 0, nil
	}
}

// Store masks addr, looks up its region, and dispatches the write. BIOS
// writes are a fatal contract violation; RAM writes take effect; every
// other MMIO window silently discards the write after logging it.
func (b *Bus) Store(w width.Width, addr uint32, val uint32) error {
	paddr := region.Mask(addr)
	win, off, err := region.Get(paddr)
	if err != nil {
		return err
	}

	switch win.Tag {
	case region.BIOS:
		return &ErrWriteToReadOnly{Addr: addr}
	case region.RAM:
		b.Ram.Store(w, off, val)
		return nil
	default:
		b.log.Warn("write to unimplemented MMIO window discarded", "region", win.Tag.String(), "addr", fmt.Sprintf("%#08x", addr))
		return nil
	}
}
