package cpu

// executePage2 dispatches an opcode following the 0x11 prefix: SWI3,
// CMPU, CMPS. Page 2 defines far fewer opcodes than page 1; anything
// else falls through to illegal.
func (c *Chip) executePage2(opcode uint8) {
	c.Cycles += uint64(page2Cycles[opcode])

	switch opcode {
	case 0x3F: // SWI3: does not set the interrupt-mask flags
		c.setEntire(true)
		c.pushEntireState()
		c.PC = c.readWord(VecSWI3)

	case 0x83: // CMPU immediate
		c.sub16(c.U, c.fetchWord())
	case 0x8C: // CMPS immediate
		c.sub16(c.S, c.fetchWord())

	case 0x93: // CMPU direct
		c.sub16(c.U, c.readWord(c.addrDirect()))
	case 0x9C: // CMPS direct
		c.sub16(c.S, c.readWord(c.addrDirect()))

	case 0xA3: // CMPU indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.sub16(c.U, c.readWord(addr))
	case 0xAC: // CMPS indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.sub16(c.S, c.readWord(addr))

	case 0xB3: // CMPU extended
		c.sub16(c.U, c.readWord(c.addrExtended()))
	case 0xBC: // CMPS extended
		c.sub16(c.S, c.readWord(c.addrExtended()))

	default:
		c.illegal = true
	}
}
