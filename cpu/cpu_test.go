package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/jmchacon/m6809/memory"
)

// flatMemory implements memory.Bank as a plain 64K array, the same
// shape the teacher's cpu tests use.
type flatMemory struct {
	addr [65536]uint8
	last uint8
}

func (r *flatMemory) Read(addr uint16) uint8 {
	r.last = r.addr[addr]
	return r.last
}

func (r *flatMemory) Write(addr uint16, val uint8) {
	r.last = val
	r.addr[addr] = val
}

func (r *flatMemory) PowerOn()              {}
func (r *flatMemory) Parent() memory.Bank   { return nil }
func (r *flatMemory) DatabusVal() uint8     { return r.last }

func newTestChip(t *testing.T) (*Chip, *flatMemory) {
	t.Helper()
	ram := &flatMemory{}
	c, err := New(ram)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ram.addr[VecReset] = 0x02
	ram.addr[VecReset+1] = 0x00
	c.Reset()
	return c, ram
}

func TestResetLoadsVector(t *testing.T) {
	c, _ := newTestChip(t)
	if c.PC != 0x0200 {
		t.Errorf("PC = %.4X, want 0200", c.PC)
	}
	if !c.irqInhibit() || !c.firqInhibit() {
		t.Errorf("Reset did not mask IRQ/FIRQ: CC=%.2X state: %s", c.CC, spew.Sdump(c))
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	tests := []struct {
		name      string
		val       uint8
		wantZ     bool
		wantN     bool
	}{
		{"zero", 0x00, true, false},
		{"positive", 0x42, false, false},
		{"negative", 0x80, false, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, ram := newTestChip(t)
			ram.addr[0x0200] = 0x86 // LDA immediate
			ram.addr[0x0201] = test.val
			if _, err := c.Step(); err != nil {
				t.Fatalf("Step: %v state: %s", err, spew.Sdump(c))
			}
			if got := c.A(); got != test.val {
				t.Errorf("A = %.2X, want %.2X", got, test.val)
			}
			if c.zero() != test.wantZ {
				t.Errorf("Z = %v, want %v state: %s", c.zero(), test.wantZ, spew.Sdump(c))
			}
			if c.negative() != test.wantN {
				t.Errorf("N = %v, want %v state: %s", c.negative(), test.wantN, spew.Sdump(c))
			}
		})
	}
}

func TestBranchTaken(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[0x0200] = 0x27 // BEQ
	ram.addr[0x0201] = 0x10 // +16
	c.setZero(true)
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if want := uint16(0x0212); c.PC != want {
		t.Errorf("PC = %.4X, want %.4X", c.PC, want)
	}
}

func TestBranchNotTaken(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[0x0200] = 0x27 // BEQ
	ram.addr[0x0201] = 0x10
	c.setZero(false)
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if want := uint16(0x0202); c.PC != want {
		t.Errorf("PC = %.4X, want %.4X", c.PC, want)
	}
}

func TestPSHSCanonicalOrder(t *testing.T) {
	c, ram := newTestChip(t)
	c.S = 0x1000
	c.SetA(0x11)
	c.SetB(0x22)
	c.X = 0x3344
	// PSHS with a mask that sets bits out of canonical order in the
	// byte (B and X set, but not A/CC) still walks PC,U,Y,X,DP,B,A,CC.
	ram.addr[0x0200] = 0x34 // PSHS
	ram.addr[0x0201] = stackBitX | stackBitB
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	// X (word) pushed first at 0x0FFE-0x0FFF, then B (byte) at 0x0FFD.
	if got, want := c.S, uint16(0x0FFD); got != want {
		t.Errorf("S = %.4X, want %.4X state: %s", got, want, spew.Sdump(c))
	}
	if diff := deep.Equal(ram.addr[0x0FFE:0x1000], []uint8{0x33, 0x44}); diff != nil {
		t.Errorf("X bytes wrong: %v", diff)
	}
	if got := ram.addr[0x0FFD]; got != 0x22 {
		t.Errorf("B byte = %.2X, want 22", got)
	}
}

func TestSWriteArmsNMI(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[VecNMI] = 0x00
	ram.addr[VecNMI+1] = 0x03
	c.TriggerNMI() // not armed yet: no effect
	if c.nmiPending {
		t.Fatalf("NMI pending before any S write")
	}
	ram.addr[0x0200] = 0x10 // LDS immediate (page1)
	ram.addr[0x0201] = 0xCE
	ram.addr[0x0202] = 0x20
	ram.addr[0x0203] = 0x00
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !c.nmiArmed {
		t.Fatalf("LDS did not arm NMI: state: %s", spew.Sdump(c))
	}
	c.TriggerNMI()
	if !c.nmiPending {
		t.Fatalf("NMI not pending after arm+trigger")
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (service NMI): %v", err)
	}
	if c.PC != 0x0003 {
		t.Errorf("PC = %.4X, want 0003 (NMI vector target)", c.PC)
	}
}

func TestPSHSDoesNotArmNMI(t *testing.T) {
	c, ram := newTestChip(t)
	c.S = 0x1000
	ram.addr[0x0200] = 0x34 // PSHS
	ram.addr[0x0201] = stackBitUS
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.nmiArmed {
		t.Errorf("PSHS of U armed NMI unexpectedly")
	}
}

func TestInterruptPriorityNMIOverFIRQOverIRQ(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[VecNMI+1] = 0x01
	ram.addr[VecFIRQ+1] = 0x02
	ram.addr[VecIRQ+1] = 0x03
	c.S = 0x1000
	c.armNMI()
	c.TriggerNMI()
	c.SetFIRQ(true)
	c.SetIRQ(true)
	c.setIRQInhibit(false)
	c.setFIRQInhibit(false)
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x0001 {
		t.Errorf("PC = %.4X, want NMI vector target 0001 state: %s", c.PC, spew.Sdump(c))
	}
}

func TestDAALeavesOverflowUnchanged(t *testing.T) {
	c, _ := newTestChip(t)
	c.setOverflow(true)
	c.SetA(0x9A)
	got := c.daa(c.A())
	if !c.overflow() {
		t.Errorf("DAA cleared V, want unchanged")
	}
	if got != 0x00 {
		t.Errorf("DAA(0x9A) = %.2X, want 00 (with carry out)", got)
	}
	if !c.carry() {
		t.Errorf("DAA(0x9A) did not set carry")
	}
}

func TestIllegalOpcodeSetsFlagNotError(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[0x0200] = 0x87 // undefined on page0
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step returned error for illegal opcode: %v", err)
	}
	if !c.Illegal() {
		t.Errorf("Illegal() = false, want true after undefined opcode")
	}
}

func TestHaltOpcodeReturnsHaltedError(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[0x0200] = 0x3E // undocumented RESET/halt
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !c.Halted() {
		t.Fatalf("Halted() = false after 0x3E")
	}
	if _, err := c.Step(); err == nil {
		t.Fatalf("Step after halt returned nil error, want HaltedError")
	} else if _, ok := err.(HaltedError); !ok {
		t.Fatalf("Step after halt returned %T, want HaltedError", err)
	}
}

func TestCWAIParksUntilInterrupt(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[VecIRQ] = 0x00
	ram.addr[VecIRQ+1] = 0x09
	c.S = 0x8000
	c.setIRQInhibit(false)
	ram.addr[0x0200] = 0x3C // CWAI
	ram.addr[0x0201] = 0xFF // AND mask: leave CC unchanged
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (CWAI): %v", err)
	}
	if !c.cwai {
		t.Fatalf("cwai flag not set after CWAI")
	}
	wantPC := c.PC
	for i := 0; i < 3; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("Step (idle %d): %v", i, err)
		}
		if c.PC != wantPC {
			t.Fatalf("Step advanced PC while parked in CWAI: got %.4X, want %.4X state: %s", c.PC, wantPC, spew.Sdump(c))
		}
	}
	c.SetIRQ(true)
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (service IRQ): %v", err)
	}
	if c.cwai {
		t.Errorf("cwai still set after unmasked interrupt was serviced")
	}
	if c.PC != 0x0009 {
		t.Errorf("PC = %.4X, want 0009 (IRQ vector target)", c.PC)
	}
}

func TestSyncResumesOnMaskedInterrupt(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[0x0200] = 0x13 // SYNC
	ram.addr[0x0201] = 0x12 // next instruction: NOP
	c.setIRQInhibit(true)   // IRQ stays masked
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (SYNC): %v", err)
	}
	if !c.sync {
		t.Fatalf("sync flag not set after SYNC")
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (idle): %v", err)
	}
	if !c.sync {
		t.Fatalf("sync cleared with no interrupt asserted")
	}
	c.SetIRQ(true) // asserted but masked
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step (resume): %v", err)
	}
	if c.sync {
		t.Errorf("sync still set after an interrupt condition was asserted")
	}
	if c.PC != 0x0202 {
		t.Errorf("PC = %.4X, want 0202 (resumed at next instruction, masked interrupt not dispatched)", c.PC)
	}
}

func TestBSRRTSRoundTrip(t *testing.T) {
	c, ram := newTestChip(t)
	copy(ram.addr[0x0400:], []uint8{0x8D, 0x02, 0x12, 0x12, 0x39})
	c.PC = 0x0400
	c.S = 0x8000
	if _, err := c.Step(); err != nil { // BSR
		t.Fatalf("Step (BSR): %v", err)
	}
	if c.PC != 0x0404 {
		t.Errorf("PC after BSR = %.4X, want 0404", c.PC)
	}
	if c.S != 0x7FFE {
		t.Errorf("S after BSR = %.4X, want 7FFE", c.S)
	}
	if diff := deep.Equal(ram.addr[0x7FFE:0x8000], []uint8{0x04, 0x02}); diff != nil {
		t.Errorf("stacked return address wrong: %v", diff)
	}
	if _, err := c.Step(); err != nil { // RTS
		t.Fatalf("Step (RTS): %v", err)
	}
	if c.PC != 0x0402 {
		t.Errorf("PC after RTS = %.4X, want 0402", c.PC)
	}
	if c.S != 0x8000 {
		t.Errorf("S after RTS = %.4X, want 8000", c.S)
	}
}

func TestSWIVectoring(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[VecSWI] = 0x10
	ram.addr[VecSWI+1] = 0x00
	ram.addr[0x0400] = 0x3F // SWI
	c.PC = 0x0400
	c.S = 0x8000
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x1000 {
		t.Errorf("PC = %.4X, want 1000", c.PC)
	}
	if !c.entire() || !c.irqInhibit() || !c.firqInhibit() {
		t.Errorf("E/I/F not all set after SWI: CC=%.2X state: %s", c.CC, spew.Sdump(c))
	}
	if c.S != 0x7FF4 {
		t.Errorf("S = %.4X, want 7FF4 (12 bytes pushed)", c.S)
	}
	if got := ram.addr[0x7FF4]; got&CCEntire == 0 {
		t.Errorf("stacked CC at 0x7FF4 = %.2X, want E bit set", got)
	}
}

func TestCountingLoop(t *testing.T) {
	c, ram := newTestChip(t)
	copy(ram.addr[0x0400:], []uint8{0x5F, 0x5C, 0xC1, 0x0A, 0x26, 0xFB, 0x3F})
	ram.addr[VecReset] = 0x04
	ram.addr[VecReset+1] = 0x00
	ram.addr[VecSWI] = 0xFF
	ram.addr[VecSWI+1] = 0x00
	c.Reset()
	// Reset leaves S at 0, so SWI's 12-byte push would land on the
	// vector table at FFF4-FFFF; give the stack room below the vectors.
	c.S = 0x8000
	// Step until the SWI at the end of the loop vectors PC to 0xFF00;
	// bounded so a regression that never reaches it fails instead of
	// hanging the test.
	for i := 0; i < 1000 && c.PC != 0xFF00; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("Step: %v state: %s", err, spew.Sdump(c))
		}
	}
	if c.PC != 0xFF00 {
		t.Fatalf("never reached PC=FF00, stuck at %.4X state: %s", c.PC, spew.Sdump(c))
	}
	if c.B() != 10 {
		t.Errorf("B = %d, want 10", c.B())
	}
}

func TestIndexedIllegalSubmodeResolvesToZero(t *testing.T) {
	c, ram := newTestChip(t)
	ram.addr[0x0200] = 0xA6 // LDA indexed
	ram.addr[0x0201] = 0x87 // mode nibble 7: illegal, no indirect
	ram.addr[0x0000] = 0x55
	if _, err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A() != 0x55 {
		t.Errorf("A = %.2X, want 55 (read from EA=0)", c.A())
	}
}
