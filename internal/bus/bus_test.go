package bus

import (
	"testing"

	"psx/internal/bios"
	"psx/internal/ram"
	"psx/internal/width"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	img := make([]byte, bios.Size)
	img[0] = 0xEF
	img[1] = 0xBE
	img[2] = 0xAD
	img[3] = 0xDE
	b, err := bios.New(img)
	if err != nil {
		t.Fatalf("bios.New: %v", err)
	}
	return New(b, ram.New(), nil)
}

// bus.load<32>(0xA0000000) == bus.load<32>(0x00000000) == bus.load<32>(0x80000000)
func TestKsegMirrorLoadsAgree(t *testing.T) {
	bus := newTestBus(t)
	if err := bus.Store(width.Word, 0x0000_0010, 0x11223344); err != nil {
		t.Fatalf("Store: %v", err)
	}

	for _, addr := range []uint32{0x0000_0010, 0x8000_0010, 0xA000_0010} {
		got, err := bus.Load(width.Word, addr)
		if err != nil {
			t.Fatalf("Load(%#08x): %v", addr, err)
		}
		if got != 0x11223344 {
			t.Errorf("Load(%#08x) = %#x, want 0x11223344", addr, got)
		}
	}
}

func TestBiosLoadThroughBus(t *testing.T) {
	bus := newTestBus(t)
	got, err := bus.Load(width.Word, 0xBFC0_0000)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 0xdeadbeef {
		t.Errorf("Load(BIOS reset vector) = %#x, want 0xdeadbeef", got)
	}
}

func TestStoreToBiosIsFatal(t *testing.T) {
	bus := newTestBus(t)
	err := bus.Store(width.Word, 0xBFC0_0000, 0)
	if err == nil {
		t.Error("store to BIOS region should fail")
	}
	if _, ok := err.(*ErrWriteToReadOnly); !ok {
		t.Errorf("err = %T, want *ErrWriteToReadOnly", err)
	}
}

func TestGpuOffsetFourReturnsReadyStatus(t *testing.T) {
	bus := newTestBus(t)
	got, err := bus.Load(width.Word, 0x1F80_1814)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 0x1000_0000 {
		t.Errorf("Load(GPU+4) = %#x, want 0x10000000", got)
	}
}

func TestMmioReadsReturnZeroAndWritesDiscard(t *testing.T) {
	bus := newTestBus(t)
	got, err := bus.Load(width.Word, 0x1F80_1070)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != 0 {
		t.Errorf("Load(IRQ_CTL) = %#x, want 0", got)
	}
	if err := bus.Store(width.Word, 0x1F80_1070, 0xffffffff); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, _ = bus.Load(width.Word, 0x1F80_1070)
	if got != 0 {
		t.Errorf("write to MMIO should not be observable: got %#x", got)
	}
}

func TestUnknownRegionErrors(t *testing.T) {
	bus := newTestBus(t)
	if _, err := bus.Load(width.Word, 0x1F80_0000); err == nil {
		t.Error("Load in unmapped gap should error")
	}
}
