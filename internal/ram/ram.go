/*
 * psx - main RAM
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

// Package ram is the console's 2 MiB main memory store.
package ram

import "psx/internal/width"

// Size is the fixed RAM size in bytes.
const Size = 2 * 1024 * 1024

// Ram is a byte-addressable read/write store.
type Ram struct {
	data [Size]byte
}

// New returns a zeroed RAM of the fixed size.
func New() *Ram {
	return &Ram{}
}

// Load reads a width-sized little-endian value at offset, zero-widened to
// 32 bits.
func (r *Ram) Load(w width.Width, offset uint32) uint32 {
	base := offset &^ 3
	word := uint32(r.data[base]) | uint32(r.data[base+1])<<8 |
		uint32(r.data[base+2])<<16 | uint32(r.data[base+3])<<24
	return width.Narrow(w, word, offset)
}

// Store writes the width-sized low bits of val at offset, leaving the
// untouched bytes of the containing word unchanged.
func (r *Ram) Store(w width.Width, offset uint32, val uint32) {
	base := offset &^ 3
	word := uint32(r.data[base]) | uint32(r.data[base+1])<<8 |
		uint32(r.data[base+2])<<16 | uint32(r.data[base+3])<<24
	word = width.Widen(w, word, offset, val)
	r.data[base] = byte(word)
	r.data[base+1] = byte(word >> 8)
	r.data[base+2] = byte(word >> 16)
	r.data[base+3] = byte(word >> 24)
}
