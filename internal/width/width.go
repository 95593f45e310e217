/*
 * psx - memory access width abstraction
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

// Package width defines the three memory access widths shared by the BIOS,
// RAM, and bus, and the little-endian sub-word placement rules for each.
package width

// Width is a memory access size: byte, half-word, or word.
type Width int

const (
	Byte Width = 1
	Half Width = 2
	Word Width = 4
)

// Size returns the width in bytes.
func (w Width) Size() uint32 {
	return uint32(w)
}

// String returns a short mnemonic for logging.
func (w Width) String() string {
	switch w {
	case Byte:
		return "byte"
	case Half:
		return "half"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

// Narrow extracts the width-sized little-endian sub-word located at byte
// offset off within a 32-bit word, zero-widening the result to uint32.
// off may be any byte offset; only its low bits are used (off&3 for Byte,
// bit 1 for Half).
func Narrow(w Width, word uint32, off uint32) uint32 {
	switch w {
	case Byte:
		shift := (off & 3) * 8
		return (word >> shift) & 0xff
	case Half:
		shift := ((off >> 1) & 1) * 16
		return (word >> shift) & 0xffff
	default:
		return word
	}
}

// Widen places val (already masked to width w) into a 32-bit word at byte
// offset off, returning the updated word; bytes outside the width are taken
// from prev so stores only disturb the bytes they target.
func Widen(w Width, prev uint32, off uint32, val uint32) uint32 {
	switch w {
	case Byte:
		shift := (off & 3) * 8
		mask := uint32(0xff) << shift
		return (prev &^ mask) | ((val & 0xff) << shift)
	case Half:
		shift := ((off >> 1) & 1) * 16
		mask := uint32(0xffff) << shift
		return (prev &^ mask) | ((val & 0xffff) << shift)
	default:
		return val
	}
}
