/*
 * psx - read only BIOS image
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

// Package bios holds the immutable 512 KiB firmware image the CPU begins
// executing from at reset.
package bios

import (
	"fmt"

	"psx/internal/width"
)

// Size is the fixed BIOS image length in bytes.
const Size = 512 * 1024

// Bios is a read-only byte image addressed from offset 0.
type Bios struct {
	data [Size]byte
}

// New copies image into a Bios. image must be exactly Size bytes.
func New(image []byte) (*Bios, error) {
	if len(image) != Size {
		return nil, fmt.Errorf("bios: image is %d bytes, want %d", len(image), Size)
	}
	b := &Bios{}
	copy(b.data[:], image)
	return b, nil
}

// Load reads a width-sized little-endian value at the given offset,
// zero-widened to 32 bits.
func (b *Bios) Load(w width.Width, offset uint32) uint32 {
	base := offset &^ 3
	word := uint32(b.data[base]) | uint32(b.data[base+1])<<8 |
		uint32(b.data[base+2])<<16 | uint32(b.data[base+3])<<24
	return width.Narrow(w, word, offset)
}
