package width

import "testing"

// Check string names for the three widths.
func TestString(t *testing.T) {
	cases := []struct {
		w    Width
		want string
	}{
		{Byte, "byte"},
		{Half, "half"},
		{Word, "word"},
		{Width(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.w.String(); got != c.want {
			t.Errorf("Width(%d).String() = %q, want %q", c.w, got, c.want)
		}
	}
}

// Check Size returns byte count.
func TestSize(t *testing.T) {
	if Byte.Size() != 1 {
		t.Errorf("Byte.Size() = %d, want 1", Byte.Size())
	}
	if Half.Size() != 2 {
		t.Errorf("Half.Size() = %d, want 2", Half.Size())
	}
	if Word.Size() != 4 {
		t.Errorf("Word.Size() = %d, want 4", Word.Size())
	}
}

// Narrow stays within its width at every byte and half offset; Widen then
// Narrow round-trips a byte and a half-word.
func TestNarrowWidenRoundTrip(t *testing.T) {
	word := uint32(0x12345678)
	for off := uint32(0); off < 4; off++ {
		b := Narrow(Byte, word, off)
		if b > 0xff {
			t.Errorf("Narrow(Byte, ..., %d) = %#x, too wide", off, b)
		}
	}
	for _, off := range []uint32{0, 2} {
		h := Narrow(Half, word, off)
		if h > 0xffff {
			t.Errorf("Narrow(Half, ..., %d) = %#x, too wide", off, h)
		}
	}

	// Store then load must return the narrowed value back.
	dest := uint32(0xffffffff)
	dest = Widen(Byte, dest, 1, 0xAB)
	if Narrow(Byte, dest, 1) != 0xAB {
		t.Errorf("byte at offset 1 = %#x, want 0xab", Narrow(Byte, dest, 1))
	}
	// Untouched bytes must be preserved.
	if Narrow(Byte, dest, 0) != 0xff || Narrow(Byte, dest, 2) != 0xff || Narrow(Byte, dest, 3) != 0xff {
		t.Errorf("byte store at offset 1 disturbed other bytes: %#08x", dest)
	}

	dest = uint32(0xffffffff)
	dest = Widen(Half, dest, 2, 0xBEEF)
	if Narrow(Half, dest, 2) != 0xBEEF {
		t.Errorf("half at offset 2 = %#x, want 0xbeef", Narrow(Half, dest, 2))
	}
	if Narrow(Half, dest, 0) != 0xffff {
		t.Errorf("half store at offset 2 disturbed low half: %#08x", dest)
	}
}
