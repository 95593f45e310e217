/*
 * psx - address space region map
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

// Package region decodes 32-bit virtual addresses into physical addresses
// and the fixed catalogue of memory windows (BIOS, RAM, and the MMIO
// stubs) that the bus routes loads and stores through.
package region

import "fmt"

// Tag identifies which window an address falls in. The set is closed so
// the bus's dispatch switch can be exhaustive.
type Tag int

const (
	RAM Tag = iota
	EXP1
	MemCtl
	RamCtl
	IrqCtl
	DMA
	Timer
	SPU
	EXP2
	BIOS
	CacheCtl
	GPU
)

func (t Tag) String() string {
	switch t {
	case RAM:
		return "RAM"
	case EXP1:
		return "EXP1"
	case MemCtl:
		return "MEM_CTL"
	case RamCtl:
		return "RAM_CTL"
	case IrqCtl:
		return "IRQ_CTL"
	case DMA:
		return "DMA"
	case Timer:
		return "TIMER"
	case SPU:
		return "SPU"
	case EXP2:
		return "EXP2"
	case BIOS:
		return "BIOS"
	case CacheCtl:
		return "CACHE_CTL"
	case GPU:
		return "GPU"
	default:
		return "UNKNOWN"
	}
}

// Window is one entry in the physical region table.
type Window struct {
	Tag  Tag
	Base uint32
	Size uint32
}

// table is the fixed catalogue of physical regions, in the order spec.md
// §4.2 lists them. Linear search is intentional: ~12 entries scanned per
// memory op is cheap, and a closed table keeps the dispatch in bus.go
// exhaustive over Tag rather than open to dynamic registration.
var table = []Window{
	{RAM, 0x0000_0000, 2 * 1024 * 1024},
	{EXP1, 0x1F00_0000, 8 * 1024},
	{MemCtl, 0x1F80_1000, 36},
	{RamCtl, 0x1F80_1060, 4},
	{IrqCtl, 0x1F80_1070, 8},
	{DMA, 0x1F80_1080, 128},
	{Timer, 0x1F80_1100, 48},
	{SPU, 0x1F80_1C00, 640},
	{EXP2, 0x1F80_2000, 8 * 1024},
	{BIOS, 0x1FC0_0000, 512 * 1024},
	{CacheCtl, 0xFFFE_0130, 4},
	{GPU, 0x1F80_1810, 8},
}

// segmentMask collapses the top 3 bits of a virtual address (KUSEG, KSEG0,
// KSEG1, KSEG2) down to a physical address, per spec.md §4.2.
var segmentMask = [8]uint32{
	0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, // KUSEG (2 GiB)
	0x7FFFFFFF, // KSEG0
	0x1FFFFFFF, // KSEG1
	0xFFFFFFFF, 0xFFFFFFFF, // KSEG2
}

// Mask collapses a virtual address into its physical equivalent. Mask is
// idempotent: Mask(Mask(a)) == Mask(a).
func Mask(addr uint32) uint32 {
	return addr & segmentMask[addr>>29]
}

// ErrUnknownRegion is returned by Get when no window claims the address.
type ErrUnknownRegion struct {
	Addr uint32
}

func (e *ErrUnknownRegion) Error() string {
	return fmt.Sprintf("region: no window claims physical address %#08x", e.Addr)
}

// Get returns the window containing the given physical address (already
// Mask-ed) and the offset of addr within it.
func Get(paddr uint32) (Window, uint32, error) {
	for _, w := range table {
		if paddr >= w.Base && paddr < w.Base+w.Size {
			return w, paddr - w.Base, nil
		}
	}
	return Window{}, 0, &ErrUnknownRegion{Addr: paddr}
}
