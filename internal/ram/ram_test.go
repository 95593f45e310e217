package ram

import (
	"testing"

	"psx/internal/width"
)

func TestNewIsZeroed(t *testing.T) {
	r := New()
	if got := r.Load(width.Word, 0); got != 0 {
		t.Errorf("fresh RAM word = %#x, want 0", got)
	}
}

// store<W>(a, v); load<W>(a) = narrow<W>(v) for every width.
func TestStoreLoadRoundTrip(t *testing.T) {
	r := New()
	r.Store(width.Word, 0x100, 0xdeadbeef)
	if got := r.Load(width.Word, 0x100); got != 0xdeadbeef {
		t.Errorf("word round trip = %#x, want 0xdeadbeef", got)
	}

	r = New()
	r.Store(width.Half, 0x200, 0xbeef)
	if got := r.Load(width.Half, 0x200); got != 0xbeef {
		t.Errorf("half round trip = %#x, want 0xbeef", got)
	}

	r = New()
	r.Store(width.Byte, 0x300, 0xab)
	if got := r.Load(width.Byte, 0x300); got != 0xab {
		t.Errorf("byte round trip = %#x, want 0xab", got)
	}
}

// Sub-word stores must preserve the untouched bytes of the containing word.
func TestByteStorePreservesSiblingBytes(t *testing.T) {
	r := New()
	r.Store(width.Word, 0x400, 0xffffffff)
	r.Store(width.Byte, 0x400, 0x00)

	if got := r.Load(width.Byte, 0x401); got != 0xff {
		t.Errorf("byte 0x401 = %#x, want 0xff", got)
	}
	if got := r.Load(width.Byte, 0x402); got != 0xff {
		t.Errorf("byte 0x402 = %#x, want 0xff", got)
	}
	if got := r.Load(width.Byte, 0x403); got != 0xff {
		t.Errorf("byte 0x403 = %#x, want 0xff", got)
	}
	if got := r.Load(width.Byte, 0x400); got != 0x00 {
		t.Errorf("byte 0x400 = %#x, want 0x00", got)
	}
}

func TestHalfWordPlacement(t *testing.T) {
	r := New()
	r.Store(width.Word, 0x500, 0x12345678)
	if got := r.Load(width.Half, 0x500); got != 0x5678 {
		t.Errorf("low half = %#x, want 0x5678", got)
	}
	if got := r.Load(width.Half, 0x502); got != 0x1234 {
		t.Errorf("high half = %#x, want 0x1234", got)
	}
}
