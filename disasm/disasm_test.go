package disasm

import (
	"strings"
	"testing"

	"github.com/jmchacon/m6809/memory"
)

type flatMemory struct {
	addr [65536]uint8
	last uint8
}

func (r *flatMemory) Read(addr uint16) uint8 {
	r.last = r.addr[addr]
	return r.last
}
func (r *flatMemory) Write(addr uint16, val uint8) { r.last = val; r.addr[addr] = val }
func (r *flatMemory) PowerOn()                     {}
func (r *flatMemory) Parent() memory.Bank          { return nil }
func (r *flatMemory) DatabusVal() uint8            { return r.last }

func TestStepImmediate(t *testing.T) {
	ram := &flatMemory{}
	ram.addr[0x0000] = 0x86 // LDA immediate
	ram.addr[0x0001] = 0x42
	out, n := Step(0x0000, ram)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if !strings.Contains(out, "LDA") || !strings.Contains(out, "#$42") {
		t.Errorf("out = %q, want LDA and #$42", out)
	}
}

func TestStepPage1LongBranch(t *testing.T) {
	ram := &flatMemory{}
	ram.addr[0x0000] = 0x10
	ram.addr[0x0001] = 0x21 // LBRN
	ram.addr[0x0002] = 0x00
	ram.addr[0x0003] = 0x05
	out, n := Step(0x0000, ram)
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
	if !strings.Contains(out, "LBRN") {
		t.Errorf("out = %q, want LBRN", out)
	}
}

func TestStepUnimplemented(t *testing.T) {
	ram := &flatMemory{}
	ram.addr[0x0000] = 0x87
	out, n := Step(0x0000, ram)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if !strings.Contains(out, "UNIMPLEMENTED") {
		t.Errorf("out = %q, want UNIMPLEMENTED", out)
	}
}

func TestLineWidthPixels(t *testing.T) {
	if LineWidthPixels() <= 0 {
		t.Errorf("LineWidthPixels() = %d, want > 0", LineWidthPixels())
	}
}
