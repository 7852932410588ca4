package disasm

// page0, page1, page2 mirror the opcode tables in the cpu package
// (cpu/opcodes_page0.go, opcodes_page1.go, opcodes_page2.go): every
// opcode this core actually executes has an entry here, keyed the
// same way the dispatch switch is.
var page0 = buildPage0()
var page1 = buildPage1()
var page2 = buildPage2()

func buildPage0() map[uint8]entry {
	m := map[uint8]entry{}
	rmw := func(op uint8, mnemonic string) { m[op] = entry{mnemonic, modeDirect} }
	rmwX := func(op uint8, mnemonic string) { m[op] = entry{mnemonic, modeIndexed} }
	rmwE := func(op uint8, mnemonic string) { m[op] = entry{mnemonic, modeExtended} }
	inh := func(op uint8, mnemonic string) { m[op] = entry{mnemonic, modeInherent} }

	rmw(0x00, "NEG")
	rmw(0x01, "NEG") // undocumented alias
	rmw(0x03, "COM")
	rmw(0x04, "LSR")
	rmw(0x05, "LSR") // undocumented alias
	rmw(0x06, "ROR")
	rmw(0x07, "ASR")
	rmw(0x08, "ASL")
	rmw(0x09, "ROL")
	rmw(0x0A, "DEC")
	rmw(0x0C, "INC")
	rmw(0x0D, "TST")
	m[0x0E] = entry{"JMP", modeDirect}
	rmw(0x0F, "CLR")

	inh(0x12, "NOP")
	inh(0x13, "SYNC")
	m[0x16] = entry{"LBRA", modeRelative16}
	m[0x17] = entry{"LBSR", modeRelative16}
	inh(0x19, "DAA")
	m[0x1A] = entry{"ORCC", modeImmediate8}
	m[0x1C] = entry{"ANDCC", modeImmediate8}
	inh(0x1D, "SEX")
	m[0x1E] = entry{"EXG", modeImmediate8}
	m[0x1F] = entry{"TFR", modeImmediate8}

	branches := map[uint8]string{
		0x20: "BRA", 0x21: "BRN", 0x22: "BHI", 0x23: "BLS",
		0x24: "BHS", 0x25: "BLO", 0x26: "BNE", 0x27: "BEQ",
		0x28: "BVC", 0x29: "BVS", 0x2A: "BPL", 0x2B: "BMI",
		0x2C: "BGE", 0x2D: "BLT", 0x2E: "BGT", 0x2F: "BLE",
	}
	for op, mnem := range branches {
		m[op] = entry{mnem, modeRelative8}
	}

	m[0x30] = entry{"LEAX", modeIndexed}
	m[0x31] = entry{"LEAY", modeIndexed}
	m[0x32] = entry{"LEAS", modeIndexed}
	m[0x33] = entry{"LEAU", modeIndexed}
	m[0x34] = entry{"PSHS", modeImmediate8}
	m[0x35] = entry{"PULS", modeImmediate8}
	m[0x36] = entry{"PSHU", modeImmediate8}
	m[0x37] = entry{"PULU", modeImmediate8}
	inh(0x39, "RTS")
	inh(0x3A, "ABX")
	inh(0x3B, "RTI")
	m[0x3C] = entry{"CWAI", modeImmediate8}
	inh(0x3D, "MUL")
	inh(0x3E, "RESET")
	inh(0x3F, "SWI")

	inhA := map[uint8]string{
		0x40: "NEGA", 0x41: "NEGA", 0x45: "LSRA", 0x43: "COMA", 0x44: "LSRA", 0x46: "RORA",
		0x47: "ASRA", 0x48: "ASLA", 0x49: "ROLA", 0x4A: "DECA",
		0x4C: "INCA", 0x4D: "TSTA", 0x4F: "CLRA",
	}
	for op, mnem := range inhA {
		inh(op, mnem)
	}
	inhB := map[uint8]string{
		0x50: "NEGB", 0x51: "NEGB", 0x55: "LSRB", 0x53: "COMB", 0x54: "LSRB", 0x56: "RORB",
		0x57: "ASRB", 0x58: "ASLB", 0x59: "ROLB", 0x5A: "DECB",
		0x5C: "INCB", 0x5D: "TSTB", 0x5F: "CLRB",
	}
	for op, mnem := range inhB {
		inh(op, mnem)
	}

	rmwX(0x60, "NEG")
	rmwX(0x61, "NEG") // undocumented alias
	rmwX(0x63, "COM")
	rmwX(0x64, "LSR")
	rmwX(0x65, "LSR") // undocumented alias
	rmwX(0x66, "ROR")
	rmwX(0x67, "ASR")
	rmwX(0x68, "ASL")
	rmwX(0x69, "ROL")
	rmwX(0x6A, "DEC")
	rmwX(0x6C, "INC")
	rmwX(0x6D, "TST")
	m[0x6E] = entry{"JMP", modeIndexed}
	rmwX(0x6F, "CLR")

	rmwE(0x70, "NEG")
	rmwE(0x71, "NEG") // undocumented alias
	rmwE(0x73, "COM")
	rmwE(0x74, "LSR")
	rmwE(0x75, "LSR") // undocumented alias
	rmwE(0x76, "ROR")
	rmwE(0x77, "ASR")
	rmwE(0x78, "ASL")
	rmwE(0x79, "ROL")
	rmwE(0x7A, "DEC")
	rmwE(0x7C, "INC")
	rmwE(0x7D, "TST")
	m[0x7E] = entry{"JMP", modeExtended}
	rmwE(0x7F, "CLR")

	addModeFamily(m, 0x80, "A", true)
	addModeFamily(m, 0xC0, "B", false)

	return m
}

// addModeFamily fills in the immediate/direct/indexed/extended block
// for the A (base 0x80) or B (base 0xC0) accumulator op family shared
// by SUB/CMP/SBC/AND/BIT/LD/ST/EOR/ADC/OR/ADD plus the D/X (or D/U)
// ops sharing the same column. withX selects the A family's
// SUBD/CMPX/BSR-JSR/LDX/STX columns; without it the B family's
// ADDD/LDD/STD/LDU/STU columns are built instead. Both families share
// the same opcode-low-nibble layout, so one pass builds all four
// addressing rows for each.
func addModeFamily(m map[uint8]entry, base uint8, reg string, withX bool) {
	row := func(lowOp uint8, mnemonic string, mode int) {
		m[base+lowOp] = entry{mnemonic, mode}
	}
	// immediate row (0x0-0xF)
	row(0x0, "SUB"+reg, modeImmediate8)
	row(0x1, "CMP"+reg, modeImmediate8)
	row(0x2, "SBC"+reg, modeImmediate8)
	if withX {
		row(0x3, "SUBD", modeImmediate16)
	} else {
		row(0x3, "ADDD", modeImmediate16)
	}
	row(0x4, "AND"+reg, modeImmediate8)
	row(0x5, "BIT"+reg, modeImmediate8)
	row(0x6, "LD"+reg, modeImmediate8)
	row(0x8, "EOR"+reg, modeImmediate8)
	row(0x9, "ADC"+reg, modeImmediate8)
	row(0xA, "OR"+reg, modeImmediate8)
	row(0xB, "ADD"+reg, modeImmediate8)
	if withX {
		row(0xC, "CMPX", modeImmediate16)
		row(0xD, "BSR", modeRelative8)
		row(0xE, "LDX", modeImmediate16)
	} else {
		row(0xC, "LDD", modeImmediate16)
		row(0xE, "LDU", modeImmediate16)
	}

	for _, shift := range []struct {
		off  uint8
		mode int
	}{
		{0x10, modeDirect}, {0x20, modeIndexed}, {0x30, modeExtended},
	} {
		row2 := func(lowOp uint8, mnemonic string) { m[base+shift.off+lowOp] = entry{mnemonic, shift.mode} }
		row2(0x0, "SUB"+reg)
		row2(0x1, "CMP"+reg)
		row2(0x2, "SBC"+reg)
		if withX {
			row2(0x3, "SUBD")
		} else {
			row2(0x3, "ADDD")
		}
		row2(0x4, "AND"+reg)
		row2(0x5, "BIT"+reg)
		row2(0x6, "LD"+reg)
		row2(0x7, "ST"+reg)
		row2(0x8, "EOR"+reg)
		row2(0x9, "ADC"+reg)
		row2(0xA, "OR"+reg)
		row2(0xB, "ADD"+reg)
		if withX {
			row2(0xC, "CMPX")
			row2(0xD, "JSR")
			row2(0xE, "LDX")
			row2(0xF, "STX")
		} else {
			row2(0xC, "LDD")
			row2(0xD, "STD")
			row2(0xE, "LDU")
			row2(0xF, "STU")
		}
	}
}

func buildPage1() map[uint8]entry {
	m := map[uint8]entry{}
	branches := map[uint8]string{
		0x21: "LBRN", 0x22: "LBHI", 0x23: "LBLS", 0x24: "LBHS",
		0x25: "LBLO", 0x26: "LBNE", 0x27: "LBEQ", 0x28: "LBVC",
		0x29: "LBVS", 0x2A: "LBPL", 0x2B: "LBMI", 0x2C: "LBGE",
		0x2D: "LBLT", 0x2E: "LBGT", 0x2F: "LBLE",
	}
	for op, mnem := range branches {
		m[op] = entry{mnem, modeRelative16}
	}
	m[0x3F] = entry{"SWI2", modeInherent}
	m[0x83] = entry{"CMPD", modeImmediate16}
	m[0x8C] = entry{"CMPY", modeImmediate16}
	m[0x8E] = entry{"LDY", modeImmediate16}
	m[0x93] = entry{"CMPD", modeDirect}
	m[0x9C] = entry{"CMPY", modeDirect}
	m[0x9E] = entry{"LDY", modeDirect}
	m[0x9F] = entry{"STY", modeDirect}
	m[0xA3] = entry{"CMPD", modeIndexed}
	m[0xAC] = entry{"CMPY", modeIndexed}
	m[0xAE] = entry{"LDY", modeIndexed}
	m[0xAF] = entry{"STY", modeIndexed}
	m[0xB3] = entry{"CMPD", modeExtended}
	m[0xBC] = entry{"CMPY", modeExtended}
	m[0xBE] = entry{"LDY", modeExtended}
	m[0xBF] = entry{"STY", modeExtended}
	m[0xCE] = entry{"LDS", modeImmediate16}
	m[0xDE] = entry{"LDS", modeDirect}
	m[0xDF] = entry{"STS", modeDirect}
	m[0xEE] = entry{"LDS", modeIndexed}
	m[0xEF] = entry{"STS", modeIndexed}
	m[0xFE] = entry{"LDS", modeExtended}
	m[0xFF] = entry{"STS", modeExtended}
	return m
}

func buildPage2() map[uint8]entry {
	m := map[uint8]entry{}
	m[0x3F] = entry{"SWI3", modeInherent}
	m[0x83] = entry{"CMPU", modeImmediate16}
	m[0x8C] = entry{"CMPS", modeImmediate16}
	m[0x93] = entry{"CMPU", modeDirect}
	m[0x9C] = entry{"CMPS", modeDirect}
	m[0xA3] = entry{"CMPU", modeIndexed}
	m[0xAC] = entry{"CMPS", modeIndexed}
	m[0xB3] = entry{"CMPU", modeExtended}
	m[0xBC] = entry{"CMPS", modeExtended}
	return m
}
