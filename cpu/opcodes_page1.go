package cpu

// executePage1 dispatches an opcode following the 0x10 prefix: long
// branches, CMPD/CMPY, LDY/STY, LDS/STS, and SWI2.
func (c *Chip) executePage1(opcode uint8) {
	c.Cycles += uint64(page1Cycles[opcode])

	switch opcode {
	case 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28,
		0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F:
		addr := c.addrRelative16()
		if c.branchTaken(opcode) {
			c.PC = addr
			c.Cycles++
		}

	case 0x3F: // SWI2: does not set the interrupt-mask flags
		c.setEntire(true)
		c.pushEntireState()
		c.PC = c.readWord(VecSWI2)

	case 0x83: // CMPD immediate
		c.sub16(c.D, c.fetchWord())
	case 0x8C: // CMPY immediate
		c.sub16(c.Y, c.fetchWord())
	case 0x8E: // LDY immediate
		v := c.fetchWord()
		c.ld16Flags(v)
		c.Y = v

	case 0x93: // CMPD direct
		c.sub16(c.D, c.readWord(c.addrDirect()))
	case 0x9C: // CMPY direct
		c.sub16(c.Y, c.readWord(c.addrDirect()))
	case 0x9E: // LDY direct
		v := c.readWord(c.addrDirect())
		c.ld16Flags(v)
		c.Y = v
	case 0x9F: // STY direct
		addr := c.addrDirect()
		c.ld16Flags(c.Y)
		c.writeWord(addr, c.Y)

	case 0xA3: // CMPD indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.sub16(c.D, c.readWord(addr))
	case 0xAC: // CMPY indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.sub16(c.Y, c.readWord(addr))
	case 0xAE: // LDY indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		v := c.readWord(addr)
		c.ld16Flags(v)
		c.Y = v
	case 0xAF: // STY indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.ld16Flags(c.Y)
		c.writeWord(addr, c.Y)

	case 0xB3: // CMPD extended
		c.sub16(c.D, c.readWord(c.addrExtended()))
	case 0xBC: // CMPY extended
		c.sub16(c.Y, c.readWord(c.addrExtended()))
	case 0xBE: // LDY extended
		v := c.readWord(c.addrExtended())
		c.ld16Flags(v)
		c.Y = v
	case 0xBF: // STY extended
		addr := c.addrExtended()
		c.ld16Flags(c.Y)
		c.writeWord(addr, c.Y)

	case 0xCE: // LDS immediate: writing S arms NMI
		v := c.fetchWord()
		c.ld16Flags(v)
		c.S = v
		c.armNMI()

	case 0xDE: // LDS direct
		v := c.readWord(c.addrDirect())
		c.ld16Flags(v)
		c.S = v
		c.armNMI()
	case 0xDF: // STS direct
		addr := c.addrDirect()
		c.ld16Flags(c.S)
		c.writeWord(addr, c.S)

	case 0xEE: // LDS indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		v := c.readWord(addr)
		c.ld16Flags(v)
		c.S = v
		c.armNMI()
	case 0xEF: // STS indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.ld16Flags(c.S)
		c.writeWord(addr, c.S)

	case 0xFE: // LDS extended
		v := c.readWord(c.addrExtended())
		c.ld16Flags(v)
		c.S = v
		c.armNMI()
	case 0xFF: // STS extended
		addr := c.addrExtended()
		c.ld16Flags(c.S)
		c.writeWord(addr, c.S)

	default:
		c.illegal = true
	}
}
