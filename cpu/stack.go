package cpu

import "github.com/jmchacon/m6809/bitfield"

// Stack push/pull helpers for the hardware (S) and user (U) stacks.
// Words are pushed low byte first so they end up big-endian in memory
// (high byte at the lower address, matching a descending stack).

func (c *Chip) pushByteS(v uint8) {
	c.S--
	c.ram.Write(c.S, v)
}

func (c *Chip) pushWordS(v uint16) {
	c.pushByteS(uint8(v))
	c.pushByteS(uint8(v >> 8))
}

func (c *Chip) pullByteS() uint8 {
	v := c.ram.Read(c.S)
	c.S++
	return v
}

func (c *Chip) pullWordS() uint16 {
	hi := uint16(c.pullByteS())
	lo := uint16(c.pullByteS())
	return hi<<8 | lo
}

func (c *Chip) pushByteU(v uint8) {
	c.U--
	c.ram.Write(c.U, v)
}

func (c *Chip) pushWordU(v uint16) {
	c.pushByteU(uint8(v))
	c.pushByteU(uint8(v >> 8))
}

func (c *Chip) pullByteU() uint8 {
	v := c.ram.Read(c.U)
	c.U++
	return v
}

func (c *Chip) pullWordU() uint16 {
	hi := uint16(c.pullByteU())
	lo := uint16(c.pullByteU())
	return hi<<8 | lo
}

// pushEntireState pushes the full register set onto S for NMI, IRQ and
// SWI dispatch (PC highest address, CC lowest).
func (c *Chip) pushEntireState() {
	c.pushWordS(c.PC)
	c.pushWordS(c.U)
	c.pushWordS(c.Y)
	c.pushWordS(c.X)
	c.pushByteS(c.DP)
	c.pushByteS(c.B())
	c.pushByteS(c.A())
	c.pushByteS(c.CC)
}

// pullEntireState restores the full register set from S (RTI with E set).
func (c *Chip) pullEntireState() {
	c.CC = c.pullByteS()
	c.SetA(c.pullByteS())
	c.SetB(c.pullByteS())
	c.DP = c.pullByteS()
	c.X = c.pullWordS()
	c.Y = c.pullWordS()
	c.U = c.pullWordS()
	c.PC = c.pullWordS()
}

// pushRegistersS/pullRegistersS and the U-stack equivalents implement the
// PSHS/PULS/PSHU/PULU postbyte, pushing or pulling registers in the
// canonical order (PC,U or S,Y,X,DP,B,A,CC) regardless of which bits
// are set in the mask — matching how the hardware walks the postbyte.

const (
	stackBitCC = 0x01
	stackBitA  = 0x02
	stackBitB  = 0x04
	stackBitDP = 0x08
	stackBitX  = 0x10
	stackBitY  = 0x20
	stackBitUS = 0x40 // U on PSHS/PULS, S on PSHU/PULU
	stackBitPC = 0x80
)

// pushRegistersS implements PSHS: push order is PC,U,Y,X,DP,B,A,CC.
func (c *Chip) pushRegistersS(mask uint8) uint8 {
	var extra uint8
	if bitfield.Any(mask, stackBitPC) {
		c.pushWordS(c.PC)
		extra += 2
	}
	if bitfield.Any(mask, stackBitUS) {
		c.pushWordS(c.U)
		extra += 2
	}
	if bitfield.Any(mask, stackBitY) {
		c.pushWordS(c.Y)
		extra += 2
	}
	if bitfield.Any(mask, stackBitX) {
		c.pushWordS(c.X)
		extra += 2
	}
	if bitfield.Any(mask, stackBitDP) {
		c.pushByteS(c.DP)
		extra++
	}
	if bitfield.Any(mask, stackBitB) {
		c.pushByteS(c.B())
		extra++
	}
	if bitfield.Any(mask, stackBitA) {
		c.pushByteS(c.A())
		extra++
	}
	if bitfield.Any(mask, stackBitCC) {
		c.pushByteS(c.CC)
		extra++
	}
	return extra
}

// pullRegistersS implements PULS: pull order is the reverse of PSHS,
// CC,A,B,DP,X,Y,U,PC.
func (c *Chip) pullRegistersS(mask uint8) uint8 {
	var extra uint8
	if bitfield.Any(mask, stackBitCC) {
		c.CC = c.pullByteS()
		extra++
	}
	if bitfield.Any(mask, stackBitA) {
		c.SetA(c.pullByteS())
		extra++
	}
	if bitfield.Any(mask, stackBitB) {
		c.SetB(c.pullByteS())
		extra++
	}
	if bitfield.Any(mask, stackBitDP) {
		c.DP = c.pullByteS()
		extra++
	}
	if bitfield.Any(mask, stackBitX) {
		c.X = c.pullWordS()
		extra += 2
	}
	if bitfield.Any(mask, stackBitY) {
		c.Y = c.pullWordS()
		extra += 2
	}
	if bitfield.Any(mask, stackBitUS) {
		c.U = c.pullWordS()
		extra += 2
	}
	if bitfield.Any(mask, stackBitPC) {
		c.PC = c.pullWordS()
		extra += 2
	}
	return extra
}

// pushRegistersU implements PSHU: same order as PSHS but with S in
// place of U (the postbyte's U/S bit selects S for the other stack).
func (c *Chip) pushRegistersU(mask uint8) uint8 {
	var extra uint8
	if bitfield.Any(mask, stackBitPC) {
		c.pushWordU(c.PC)
		extra += 2
	}
	if bitfield.Any(mask, stackBitUS) {
		c.pushWordU(c.S)
		extra += 2
	}
	if bitfield.Any(mask, stackBitY) {
		c.pushWordU(c.Y)
		extra += 2
	}
	if bitfield.Any(mask, stackBitX) {
		c.pushWordU(c.X)
		extra += 2
	}
	if bitfield.Any(mask, stackBitDP) {
		c.pushByteU(c.DP)
		extra++
	}
	if bitfield.Any(mask, stackBitB) {
		c.pushByteU(c.B())
		extra++
	}
	if bitfield.Any(mask, stackBitA) {
		c.pushByteU(c.A())
		extra++
	}
	if bitfield.Any(mask, stackBitCC) {
		c.pushByteU(c.CC)
		extra++
	}
	return extra
}

// pullRegistersU implements PULU: the mirror of pushRegistersU.
func (c *Chip) pullRegistersU(mask uint8) uint8 {
	var extra uint8
	if bitfield.Any(mask, stackBitCC) {
		c.CC = c.pullByteU()
		extra++
	}
	if bitfield.Any(mask, stackBitA) {
		c.SetA(c.pullByteU())
		extra++
	}
	if bitfield.Any(mask, stackBitB) {
		c.SetB(c.pullByteU())
		extra++
	}
	if bitfield.Any(mask, stackBitDP) {
		c.DP = c.pullByteU()
		extra++
	}
	if bitfield.Any(mask, stackBitX) {
		c.X = c.pullWordU()
		extra += 2
	}
	if bitfield.Any(mask, stackBitY) {
		c.Y = c.pullWordU()
		extra += 2
	}
	if bitfield.Any(mask, stackBitUS) {
		c.S = c.pullWordU()
		c.armNMI()
		extra += 2
	}
	if bitfield.Any(mask, stackBitPC) {
		c.PC = c.pullWordU()
		extra += 2
	}
	return extra
}
