package cpu

// execute dispatches an already-fetched opcode byte. 0x10 and 0x11 are
// page prefixes that select an extended opcode table; every other byte
// is a page-0 opcode.
func (c *Chip) execute(opcode uint8) {
	switch opcode {
	case 0x10:
		op2 := c.fetchByte()
		c.executePage1(op2)
	case 0x11:
		op2 := c.fetchByte()
		c.executePage2(op2)
	default:
		c.executePage0(opcode)
	}
}
