package cpu

import (
	"testing"

	"psx/internal/bios"
	"psx/internal/bus"
	"psx/internal/cop0"
	"psx/internal/ram"
	"psx/internal/width"
)

func rType(op, rs, rt, rd, shamt, funct uint32) uint32 {
	return (op << 26) | (rs << 21) | (rt << 16) | (rd << 11) | (shamt << 6) | funct
}

func iType(op, rs, rt, imm uint32) uint32 {
	return (op << 26) | (rs << 21) | (rt << 16) | (imm & 0xffff)
}

func jType(op, addr uint32) uint32 {
	return (op << 26) | ((addr >> 2) & 0x03ff_ffff)
}

func newTestCpu(t *testing.T, program []uint32) (*Cpu, *ram.Ram) {
	t.Helper()
	img := make([]byte, bios.Size)
	for i, w := range program {
		off := i * 4
		img[off] = byte(w)
		img[off+1] = byte(w >> 8)
		img[off+2] = byte(w >> 16)
		img[off+3] = byte(w >> 24)
	}
	b, err := bios.New(img)
	if err != nil {
		t.Fatalf("bios.New: %v", err)
	}
	r := ram.New()
	bu := bus.New(b, r, nil)
	return New(bu, cop0.New(), nil), r
}

func step(t *testing.T, c *Cpu, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("Step() #%d: %v", i, err)
		}
	}
}

// LUI r1,0x1234 ; ORI r1,r1,0x5678 builds the 32-bit constant 0x12345678.
func TestLuiOriBuildsConstant(t *testing.T) {
	c, _ := newTestCpu(t, []uint32{
		iType(opLUI, 0, 1, 0x1234),
		iType(opORI, 1, 1, 0x5678),
	})
	step(t, c, 2)
	if got := c.Reg(1); got != 0x12345678 {
		t.Errorf("r1 = %#08x, want 0x12345678", got)
	}
}

// A load followed immediately by a non-load write to the same register:
// the loaded value never becomes architecturally visible.
func TestLoadDelayOverwrittenByNonLoadWrite(t *testing.T) {
	c, r := newTestCpu(t, []uint32{
		iType(opLW, 0, 2, 0x10),  // LW r2, 0x10(r0)
		iType(opORI, 0, 2, 0x05), // ORI r2, r0, 5
	})
	r.Store(width.Word, 0x10, 0x000000AA)

	step(t, c, 1)
	if c.Reg(2) == 0xAA {
		t.Fatal("load value became visible before its delay slot completed")
	}

	step(t, c, 1)
	if got := c.Reg(2); got != 5 {
		t.Errorf("r2 = %#x, want 5 (loaded value 0xAA must never surface)", got)
	}
}

// Two back-to-back loads into the same register: the first loaded value
// is silently discarded and never written to the register file.
func TestBackToBackLoadsSameRegisterDiscardsFirst(t *testing.T) {
	c, r := newTestCpu(t, []uint32{
		iType(opLW, 0, 2, 0x10), // LW r2, 0x10(r0) -> 0xAA
		iType(opLW, 0, 2, 0x14), // LW r2, 0x14(r0) -> 0xBB
		rType(opSPECIAL, 0, 0, 0, 0, secSLL), // NOP
	})
	r.Store(width.Word, 0x10, 0x000000AA)
	r.Store(width.Word, 0x14, 0x000000BB)

	step(t, c, 2)
	if c.Reg(2) == 0xAA {
		t.Fatal("first load value 0xAA became visible; must be discarded")
	}

	step(t, c, 1)
	if got := c.Reg(2); got != 0xBB {
		t.Errorf("r2 = %#x, want 0xBB", got)
	}
}

// Cache isolation (SR bit 16) suppresses stores entirely.
func TestCacheIsolationSuppressesStore(t *testing.T) {
	c, r := newTestCpu(t, []uint32{
		iType(opLUI, 0, 1, 1),               // LUI r1, 1 -> r1 = 0x00010000
		rType(opCOP0, copMTC0, 1, 12, 0, 0),  // MTC0 r1, $12 (SR)
		iType(opADDIU, 0, 2, 0x00CD),         // ADDIU r2, r0, 0xCD
		iType(opSW, 0, 2, 0x20),              // SW r2, 0x20(r0)
	})
	r.Store(width.Word, 0x20, 0x12345678)

	step(t, c, 4)

	if got := r.Load(width.Word, 0x20); got != 0x12345678 {
		t.Errorf("ram[0x20] = %#x, want unchanged 0x12345678 (store should be suppressed)", got)
	}
	if !c.Cop0().IsIsolateCache() {
		t.Fatal("SR isolate-cache bit did not take effect")
	}
}

// J plus its delay slot: the delay-slot instruction always executes, and
// control lands exactly on the jump target afterwards.
func TestJumpExecutesDelaySlotThenLands(t *testing.T) {
	target := uint32(ResetPC + 0x20)
	prog := make([]uint32, 9)
	prog[0] = jType(opJ, target)
	prog[1] = iType(opADDIU, 0, 3, 1) // delay slot: ADDIU r3, r0, 1
	for i := 2; i < 8; i++ {
		prog[i] = 0 // SLL r0,r0,0 (NOP)
	}
	prog[8] = iType(opADDIU, 0, 4, 0x2A) // ADDIU r4, r0, 42

	c, _ := newTestCpu(t, prog)
	step(t, c, 3)

	if got := c.Reg(3); got != 1 {
		t.Errorf("r3 = %d, want 1 (delay slot must execute)", got)
	}
	if got := c.Reg(4); got != 0x2A {
		t.Errorf("r4 = %#x, want 0x2a (jump must land on target)", got)
	}
	if c.PC() != target+4 {
		t.Errorf("pc = %#08x, want %#08x", c.PC(), target+4)
	}
}

// SYSCALL raises a precise exception: mode pushed, cause set, EPC
// records the faulting instruction, and PC redirects to the handler.
func TestSyscallEntersException(t *testing.T) {
	c, _ := newTestCpu(t, []uint32{
		rType(opSPECIAL, 0, 0, 0, 0, secSYSCALL),
	})
	step(t, c, 1)

	wantCause := uint32(cop0.Syscall) << 2
	if got := c.Cop0().Cause() & 0x7c; got != wantCause {
		t.Errorf("cause = %#x, want %#x", got, wantCause)
	}
	if got := c.Cop0().EPC(); got != ResetPC {
		t.Errorf("epc = %#08x, want %#08x", got, uint32(ResetPC))
	}
	if got := c.PC(); got != 0x8000_0080 {
		t.Errorf("pc = %#08x, want 0x80000080", got)
	}
}

// An ordinary load instruction through the KSEG1 mirror reads the RAM cell
// at the matching physical address.
func TestLoadThroughKseg1MirrorReachesRam(t *testing.T) {
	c, r := newTestCpu(t, []uint32{
		iType(opLUI, 0, 6, 0xA000), // LUI r6, 0xA000
		iType(opORI, 6, 6, 0x0030), // ORI r6, r6, 0x30  -> r6 = 0xA0000030
		iType(opLW, 6, 7, 0),       // LW r7, 0(r6)
	})
	r.Store(width.Word, 0x30, 0xCAFEBABE)

	step(t, c, 3)
	if c.Reg(7) == 0xCAFEBABE {
		t.Fatal("load value should still be in its delay slot")
	}
	step(t, c, 1) // one more NOP-equivalent step to retire the pending load
	if got := c.Reg(7); got != 0xCAFEBABE {
		t.Errorf("r7 = %#08x, want 0xcafebabe (mirrored RAM read)", got)
	}
}

// Register 0 is hardwired to zero: any write to it is discarded.
func TestRegisterZeroIsHardwired(t *testing.T) {
	c, _ := newTestCpu(t, []uint32{
		iType(opADDIU, 0, 0, 5), // ADDIU r0, r0, 5
	})
	step(t, c, 1)
	if c.Reg(0) != 0 {
		t.Errorf("r0 = %d, want 0", c.Reg(0))
	}
}

// ADD overflow raises an exception and never commits the result register.
func TestAddOverflowRaisesException(t *testing.T) {
	c, _ := newTestCpu(t, []uint32{
		iType(opLUI, 0, 1, 0x7FFF),
		iType(opORI, 1, 1, 0xFFFF),         // r1 = 0x7FFFFFFF (max int32)
		iType(opADDIU, 0, 2, 1),            // r2 = 1
		rType(opSPECIAL, 1, 2, 3, 0, secADD), // ADD r3, r1, r2 -> overflow
	})
	step(t, c, 4)

	if c.Reg(3) == 0x80000000 {
		t.Error("overflowing ADD must not commit its result")
	}
	if got := c.Cop0().Cause() & 0x7c; got != uint32(cop0.Overflow)<<2 {
		t.Errorf("cause = %#x, want overflow", got)
	}
}

// DIV by zero follows the documented architectural special case rather
// than trapping.
func TestDivByZero(t *testing.T) {
	c, _ := newTestCpu(t, []uint32{
		iType(opADDIU, 0, 1, 7),
		rType(opSPECIAL, 1, 0, 0, 0, secDIV), // DIV r1, r0
	})
	step(t, c, 2)
	if c.LO() != 0xFFFFFFFF {
		t.Errorf("LO = %#x, want 0xffffffff", c.LO())
	}
	if c.HI() != 7 {
		t.Errorf("HI = %d, want 7", c.HI())
	}
}

// An unaligned word load raises a load-alignment exception instead of
// returning a fatal error.
func TestUnalignedLoadRaisesException(t *testing.T) {
	c, _ := newTestCpu(t, []uint32{
		iType(opADDIU, 0, 1, 1),
		iType(opLW, 1, 2, 0), // LW r2, 0(r1) ; r1==1, misaligned
	})
	step(t, c, 2)
	if got := c.Cop0().Cause() & 0x7c; got != uint32(cop0.LoadAlignmentError)<<2 {
		t.Errorf("cause = %#x, want load alignment error", got)
	}
}
