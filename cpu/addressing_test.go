package cpu

import (
	"testing"

	"github.com/jmchacon/m6809/memory"
)

func newAddrTestChip(t *testing.T) (*Chip, *flatMemory) {
	t.Helper()
	ram := &flatMemory{}
	c, err := New(ram)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, ram
}

func TestIndexedFiveBitOffset(t *testing.T) {
	c, ram := newAddrTestChip(t)
	c.X = 0x2000
	ram.addr[0x0000] = 0x05 // postbyte: bit7=0, reg=X(00), offset=5
	c.PC = 0x0000
	ea, extra := c.addrIndexed()
	if ea != 0x2005 {
		t.Errorf("EA = %.4X, want 2005", ea)
	}
	if extra != 1 {
		t.Errorf("extra cycles = %d, want 1", extra)
	}
}

func TestIndexedAutoIncrementBy2(t *testing.T) {
	c, ram := newAddrTestChip(t)
	c.X = 0x3000
	ram.addr[0x0000] = 0x81 // ,X++
	c.PC = 0x0000
	ea, extra := c.addrIndexed()
	if ea != 0x3000 {
		t.Errorf("EA = %.4X, want 3000 (pre-increment value)", ea)
	}
	if c.X != 0x3002 {
		t.Errorf("X after ,X++ = %.4X, want 3002", c.X)
	}
	if extra != 3 {
		t.Errorf("extra cycles = %d, want 3", extra)
	}
}

func TestIndexedAutoDecrementSelectingSArmsNMI(t *testing.T) {
	c, ram := newAddrTestChip(t)
	c.S = 0x4000
	ram.addr[0x0000] = 0xE3 // ,--S  (reg bits 11 = S, mode 3 = ,--R)
	c.PC = 0x0000
	_, _ = c.addrIndexed()
	if c.S != 0x3FFE {
		t.Errorf("S after ,--S = %.4X, want 3FFE", c.S)
	}
	if !c.nmiArmed {
		t.Errorf(",--S did not arm NMI")
	}
}

func TestIndexedExtendedIndirect(t *testing.T) {
	c, ram := newAddrTestChip(t)
	c.PC = 0x0000
	ram.addr[0x0000] = 0x9F // extended indirect postbyte (mode 0xF, indirect bit set)
	ram.addr[0x0001] = 0x10
	ram.addr[0x0002] = 0x00
	memory.WriteWord(ram, 0x1000, 0x5566)
	ea, extra := c.addrIndexed()
	if ea != 0x5566 {
		t.Errorf("EA = %.4X, want 5566", ea)
	}
	if extra != 5 {
		t.Errorf("extra cycles = %d, want 5", extra)
	}
}

func TestTfrMixedSizeFillsAllOnes(t *testing.T) {
	c, _ := newAddrTestChip(t)
	c.SetA(0x42)
	c.tfr(uint8(regA<<4) | regX) // TFR A,X: 8->16 undocumented fill
	if c.X != 0xFFFF {
		t.Errorf("TFR A,X = %.4X, want FFFF (undocumented fill)", c.X)
	}
}

func TestExgSameSizeSwap(t *testing.T) {
	c, _ := newAddrTestChip(t)
	c.X = 0x1234
	c.Y = 0x5678
	c.exg(uint8(regX<<4) | regY)
	if c.X != 0x5678 || c.Y != 0x1234 {
		t.Errorf("EXG X,Y = X:%.4X Y:%.4X, want X:5678 Y:1234", c.X, c.Y)
	}
}
