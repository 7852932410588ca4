package cpu

// Base cycle counts per opcode, indexed by opcode byte. Indexed-mode
// entries show only the base cost; the post-byte's extra cycles (from
// addrIndexed) are added on top by the opcode body itself.

//nolint:gofmt
var page0Cycles = [256]uint8{
	//  0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	6, 1, 1, 6, 6, 1, 6, 6, 6, 6, 6, 1, 6, 6, 3, 6, // 0x
	1, 1, 2, 2, 1, 1, 5, 9, 1, 2, 3, 1, 3, 2, 8, 7, // 1x
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 2x
	4, 4, 4, 4, 5, 5, 5, 5, 1, 5, 3, 6, 21, 11, 1, 19, // 3x
	2, 1, 1, 2, 2, 1, 2, 2, 2, 2, 2, 1, 2, 2, 1, 2, // 4x
	2, 1, 1, 2, 2, 1, 2, 2, 2, 2, 2, 1, 2, 2, 1, 2, // 5x
	6, 1, 1, 6, 6, 1, 6, 6, 6, 6, 6, 1, 6, 6, 3, 6, // 6x
	7, 1, 1, 7, 7, 1, 7, 7, 7, 7, 7, 1, 7, 7, 4, 7, // 7x
	2, 2, 2, 4, 2, 2, 2, 1, 2, 2, 2, 2, 4, 7, 3, 1, // 8x
	4, 4, 4, 6, 4, 4, 4, 4, 4, 4, 4, 4, 6, 7, 5, 5, // 9x
	4, 4, 4, 6, 4, 4, 4, 4, 4, 4, 4, 4, 6, 7, 5, 5, // Ax
	5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 5, 7, 8, 6, 6, // Bx
	2, 2, 2, 4, 2, 2, 2, 1, 2, 2, 2, 2, 3, 1, 3, 1, // Cx
	4, 4, 4, 6, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, // Dx
	4, 4, 4, 6, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, // Ex
	5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6, // Fx
}

// page1Cycles and page2Cycles are sparse: opcodes not assigned here are
// not defined on that page and fall through to the illegal-opcode path
// with a base cost of zero. The 0x10/0x11 prefix byte is not charged
// separately (execute never passes it to executePage0), so each entry
// here is the instruction's whole base cost, prefix included.
var page1Cycles = buildPage1Cycles()
var page2Cycles = buildPage2Cycles()

func buildPage1Cycles() [256]uint8 {
	var t [256]uint8
	for _, op := range []uint8{0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F} {
		t[op] = 5
	}
	t[0x3F] = 20 // SWI2
	t[0x83] = 5  // CMPD imm
	t[0x8C] = 5  // CMPY imm
	t[0x8E] = 4  // LDY imm
	t[0x93] = 7  // CMPD direct
	t[0x9C] = 7  // CMPY direct
	t[0x9E] = 6  // LDY direct
	t[0x9F] = 6  // STY direct
	t[0xA3] = 7  // CMPD indexed
	t[0xAC] = 7  // CMPY indexed
	t[0xAE] = 6  // LDY indexed
	t[0xAF] = 6  // STY indexed
	t[0xB3] = 8  // CMPD extended
	t[0xBC] = 8  // CMPY extended
	t[0xBE] = 7  // LDY extended
	t[0xBF] = 7  // STY extended
	t[0xCE] = 4  // LDS imm
	t[0xDE] = 6  // LDS direct
	t[0xDF] = 6  // STS direct
	t[0xEE] = 6  // LDS indexed
	t[0xEF] = 6  // STS indexed
	t[0xFE] = 7  // LDS extended
	t[0xFF] = 7  // STS extended
	return t
}

func buildPage2Cycles() [256]uint8 {
	var t [256]uint8
	t[0x3F] = 20 // SWI3
	t[0x83] = 5  // CMPU imm
	t[0x8C] = 5  // CMPS imm
	t[0x93] = 7  // CMPU direct
	t[0x9C] = 7  // CMPS direct
	t[0xA3] = 7  // CMPU indexed
	t[0xAC] = 7  // CMPS indexed
	t[0xB3] = 8  // CMPU extended
	t[0xBC] = 8  // CMPS extended
	return t
}
