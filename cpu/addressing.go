package cpu

import "github.com/jmchacon/m6809/bitfield"

// Indexed addressing post-byte decoder. The post-byte encodes the index
// register, offset type, and indirection; this mirrors the 6809's two
// post-byte forms: a 5-bit signed offset with no indirect variant, and
// the sixteen extended post-byte sub-mode values (three of which, 7, 10
// and 14, plus mode 15 without the indirect bit, are undefined and
// resolve to an effective address of zero with no extra cycles rather
// than panicking).
func (c *Chip) addrIndexed() (ea uint16, extra uint8) {
	post := c.fetchByte()

	// Bit 7 clear: 5-bit signed offset from the selected register, no
	// indirection is possible in this encoding.
	if !bitfield.Any(post, 0x80) {
		reg := c.indexReg(post)
		var offset uint16
		if bitfield.Any(post, 0x10) {
			offset = uint16(int16(int8(post | 0xE0)))
		} else {
			offset = uint16(bitfield.Last(post, bitfield.I5))
		}
		return reg + offset, 1
	}

	indirect := bitfield.Any(post, 0x10)
	mode := bitfield.Last(post, bitfield.I4)

	switch mode {
	case 0x00: // ,R+
		reg := c.indexReg(post)
		c.setIndexReg(post, reg+1)
		ea, extra = reg, 2
	case 0x01: // ,R++
		reg := c.indexReg(post)
		c.setIndexReg(post, reg+2)
		ea, extra = reg, 3
	case 0x02: // ,-R
		reg := c.indexReg(post) - 1
		c.setIndexReg(post, reg)
		ea, extra = reg, 2
	case 0x03: // ,--R
		reg := c.indexReg(post) - 2
		c.setIndexReg(post, reg)
		ea, extra = reg, 3
	case 0x04: // ,R
		ea, extra = c.indexReg(post), 0
	case 0x05: // B,R
		reg := c.indexReg(post)
		offset := uint16(int16(int8(c.B())))
		ea, extra = reg+offset, 1
	case 0x06: // A,R
		reg := c.indexReg(post)
		offset := uint16(int16(int8(c.A())))
		ea, extra = reg+offset, 1
	case 0x08: // 8-bit offset,R
		reg := c.indexReg(post)
		offset := uint16(int16(int8(c.fetchByte())))
		ea, extra = reg+offset, 1
	case 0x09: // 16-bit offset,R
		reg := c.indexReg(post)
		offset := c.fetchWord()
		ea, extra = reg+offset, 4
	case 0x0B: // D,R
		reg := c.indexReg(post)
		ea, extra = reg+c.D, 4
	case 0x0C: // 8-bit offset,PC
		offset := uint16(int16(int8(c.fetchByte())))
		ea, extra = c.PC+offset, 1
	case 0x0D: // 16-bit offset,PC
		offset := c.fetchWord()
		ea, extra = c.PC+offset, 5
	case 0x0F:
		if indirect {
			// Extended indirect [address]: the indirection is already
			// accounted for in the base cost of 5.
			addr := c.fetchWord()
			ptr := c.readWord(addr)
			return ptr, 5
		}
		ea, extra = 0, 0
	default:
		// Illegal sub-modes (7, 10, 14): undefined, resolves to EA=0.
		ea, extra = 0, 0
	}

	if indirect {
		ptr := c.readWord(ea)
		return ptr, extra + 3
	}
	return ea, extra
}

// indexReg reads the index register selected by post-byte bits 6-5.
func (c *Chip) indexReg(post uint8) uint16 {
	switch (post >> 5) & 0x03 {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.U
	default:
		return c.S
	}
}

// setIndexReg writes the index register selected by post-byte bits
// 6-5. Writing S arms NMI, matching any other write to the stack
// pointer.
func (c *Chip) setIndexReg(post uint8, val uint16) {
	switch (post >> 5) & 0x03 {
	case 0:
		c.X = val
	case 1:
		c.Y = val
	case 2:
		c.U = val
	default:
		c.S = val
		c.armNMI()
	}
}

func (c *Chip) readWord(addr uint16) uint16 {
	hi := uint16(c.ram.Read(addr))
	lo := uint16(c.ram.Read(addr + 1))
	return hi<<8 | lo
}

func (c *Chip) writeWord(addr uint16, v uint16) {
	c.ram.Write(addr, uint8(v>>8))
	c.ram.Write(addr+1, uint8(v))
}
