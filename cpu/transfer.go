package cpu

// TFR/EXG register codes, from the post-byte nibbles.
const (
	regD  = 0x0
	regX  = 0x1
	regY  = 0x2
	regU  = 0x3
	regS  = 0x4
	regPC = 0x5
	regA  = 0x8
	regB  = 0x9
	regCC = 0xA
	regDP = 0xB
)

// readReg reads the register identified by a TFR/EXG nibble, reporting
// whether it is a 16-bit register. Undefined codes read back as 0xFF
// (undocumented, matching real hardware's open bus behavior there).
func (c *Chip) readReg(code uint8) (val uint16, is16 bool) {
	switch code {
	case regD:
		return c.D, true
	case regX:
		return c.X, true
	case regY:
		return c.Y, true
	case regU:
		return c.U, true
	case regS:
		return c.S, true
	case regPC:
		return c.PC, true
	case regA:
		return uint16(c.A()), false
	case regB:
		return uint16(c.B()), false
	case regCC:
		return uint16(c.CC), false
	case regDP:
		return uint16(c.DP), false
	default:
		return 0xFF, false
	}
}

// writeReg writes the register identified by a TFR/EXG nibble.
// Undefined codes are ignored.
func (c *Chip) writeReg(code uint8, val uint16) {
	switch code {
	case regD:
		c.D = val
	case regX:
		c.X = val
	case regY:
		c.Y = val
	case regU:
		c.U = val
	case regS:
		c.S = val
		c.armNMI()
	case regPC:
		c.PC = val
	case regA:
		c.SetA(uint8(val))
	case regB:
		c.SetB(uint8(val))
	case regCC:
		c.CC = uint8(val)
	case regDP:
		c.DP = uint8(val)
	}
}

// tfr implements TFR: copy source register into destination. A mixed
// 8/16-bit transfer yields an all-ones pattern sized to the
// destination, matching the documented undefined behavior.
func (c *Chip) tfr(post uint8) {
	src := (post >> 4) & 0x0F
	dst := post & 0x0F
	srcVal, srcIs16 := c.readReg(src)
	_, dstIs16 := c.readReg(dst)

	val := srcVal
	if srcIs16 != dstIs16 {
		if dstIs16 {
			val = 0xFFFF
		} else {
			val = 0xFF
		}
	}
	c.writeReg(dst, val)
}

// exg implements EXG: swap source and destination registers.
func (c *Chip) exg(post uint8) {
	src := (post >> 4) & 0x0F
	dst := post & 0x0F
	srcVal, srcIs16 := c.readReg(src)
	dstVal, dstIs16 := c.readReg(dst)

	if srcIs16 != dstIs16 {
		sv, dv := uint16(0xFF), uint16(0xFF)
		if srcIs16 {
			sv = 0xFFFF
		}
		if dstIs16 {
			dv = 0xFFFF
		}
		c.writeReg(src, sv)
		c.writeReg(dst, dv)
		return
	}
	c.writeReg(src, dstVal)
	c.writeReg(dst, srcVal)
}
