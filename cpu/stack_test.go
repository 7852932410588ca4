package cpu

import "testing"

func TestPushPullEntireStateRoundTrip(t *testing.T) {
	ram := &flatMemory{}
	c, err := New(ram)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.S = 0x2000
	c.PC, c.U, c.Y, c.X, c.DP, c.CC = 0x1234, 0x2345, 0x3456, 0x4567, 0x56, 0x01
	c.SetA(0xAA)
	c.SetB(0xBB)
	c.pushEntireState()
	if got, want := c.S, uint16(0x2000-12); got != want {
		t.Fatalf("S after push = %.4X, want %.4X", got, want)
	}

	c.PC, c.U, c.Y, c.X, c.DP, c.CC = 0, 0, 0, 0, 0, 0
	c.SetA(0)
	c.SetB(0)
	c.pullEntireState()

	if c.PC != 0x1234 || c.U != 0x2345 || c.Y != 0x3456 || c.X != 0x4567 ||
		c.DP != 0x56 || c.CC != 0x01 || c.A() != 0xAA || c.B() != 0xBB {
		t.Errorf("pullEntireState did not restore all registers: %+v", c)
	}
	if c.S != 0x2000 {
		t.Errorf("S after pull = %.4X, want 2000", c.S)
	}
}

func TestPullRegistersUSelectingSArmsNMI(t *testing.T) {
	ram := &flatMemory{}
	c, err := New(ram)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.U = 0x1000
	ram.addr[0x1000] = 0x12
	ram.addr[0x1001] = 0x34
	c.pullRegistersU(stackBitUS)
	if c.S != 0x1234 {
		t.Errorf("S after PULU S = %.4X, want 1234", c.S)
	}
	if !c.nmiArmed {
		t.Errorf("PULU pulling S did not arm NMI")
	}
}
