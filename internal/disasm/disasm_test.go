package disasm

import (
	"strings"
	"testing"
)

func TestFormatLui(t *testing.T) {
	got := Format(0x3C011234)
	if !strings.HasPrefix(got, "lui") || !strings.Contains(got, "0x1234") {
		t.Errorf("Format(LUI) = %q", got)
	}
}

func TestFormatNop(t *testing.T) {
	if got := Format(0); got != "nop" {
		t.Errorf("Format(0) = %q, want nop", got)
	}
}

func TestFormatUnknown(t *testing.T) {
	got := Format(0xFC000000)
	if !strings.HasPrefix(got, "<unknown") {
		t.Errorf("Format(bad opcode) = %q, want <unknown ...>", got)
	}
}

func TestFormatSyscall(t *testing.T) {
	if got := Format(0x0000000C); got != "syscall" {
		t.Errorf("Format(SYSCALL) = %q, want syscall", got)
	}
}
