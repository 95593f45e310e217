package cop0

import "testing"

// push_mode(); pop_mode() restores sr[5:0].
func TestPushPopModeRoundTrip(t *testing.T) {
	c := New()
	if err := c.MTC0(12, 0x3f); err != nil {
		t.Fatalf("MTC0: %v", err)
	}
	before := c.SR() & 0x3f

	c.PushMode()
	c.PopMode()

	after := c.SR() & 0x3f
	if before != after {
		t.Errorf("mode stack not restored: before=%#x after=%#x", before, after)
	}
}

func TestPushModeShiftsLeft(t *testing.T) {
	c := New()
	_ = c.MTC0(12, 0x00000001) // IEc=1
	c.PushMode()
	if c.SR()&0x3f != 0x04 {
		t.Errorf("SR[5:0] = %#x, want 0x04", c.SR()&0x3f)
	}
}

func TestIsolateCacheBit(t *testing.T) {
	c := New()
	if c.IsIsolateCache() {
		t.Error("fresh COP0 should not have cache isolated")
	}
	_ = c.MTC0(12, 0x10000)
	if !c.IsIsolateCache() {
		t.Error("bit 16 of SR should isolate cache")
	}
}

func TestExceptionVectorSelectsOnBEV(t *testing.T) {
	c := New()
	if c.VectorAddress() != 0x8000_0080 {
		t.Errorf("default vector = %#x, want 0x80000080", c.VectorAddress())
	}
	_ = c.MTC0(12, 1<<22)
	if c.VectorAddress() != 0xBFC0_0180 {
		t.Errorf("BEV vector = %#x, want 0xbfc00180", c.VectorAddress())
	}
}

func TestSetCausePreservesOtherBits(t *testing.T) {
	c := New()
	c.cause = 0x8000_0000
	c.SetCause(Syscall)
	if (c.Cause()>>2)&0x1f != uint32(Syscall) {
		t.Errorf("cause code = %#x, want Syscall", (c.Cause()>>2)&0x1f)
	}
	if c.Cause()&0x8000_0000 == 0 {
		t.Error("SetCause must preserve unrelated bits")
	}
}

func TestMTC0RejectsNonZeroReserved(t *testing.T) {
	c := New()
	for _, reg := range []uint32{3, 5, 6, 7, 9, 11} {
		if err := c.MTC0(reg, 0); err != nil {
			t.Errorf("MTC0(%d, 0) should be accepted, got %v", reg, err)
		}
		if err := c.MTC0(reg, 1); err == nil {
			t.Errorf("MTC0(%d, 1) should be rejected", reg)
		}
	}
}

func TestMFC0RoundTrip(t *testing.T) {
	c := New()
	_ = c.MTC0(12, 0xABCD)
	v, err := c.MFC0(12)
	if err != nil || v != 0xABCD {
		t.Errorf("MFC0(12) = (%#x, %v), want (0xabcd, nil)", v, err)
	}
}
