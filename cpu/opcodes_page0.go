package cpu

// executePage0 dispatches an unprefixed opcode byte (0x00-0xFF, less
// the 0x10/0x11 page prefixes handled by execute).
//
//nolint:gocyclo
func (c *Chip) executePage0(opcode uint8) {
	c.Cycles += uint64(page0Cycles[opcode])

	switch opcode {
	// ---- 0x00..0x0F: direct-page read-modify-write + JMP/CLR ----
	case 0x00, 0x01: // NEG direct (0x01 undocumented alias)
		c.rmwDirect(c.neg8)
	case 0x03: // COM direct
		c.rmwDirect(c.com8)
	case 0x04, 0x05: // LSR direct (0x05 undocumented alias)
		c.rmwDirect(c.lsr8)
	case 0x06: // ROR direct
		c.rmwDirect(c.ror8)
	case 0x07: // ASR direct
		c.rmwDirect(c.asr8)
	case 0x08: // ASL/LSL direct
		c.rmwDirect(c.asl8)
	case 0x09: // ROL direct
		c.rmwDirect(c.rol8)
	case 0x0A: // DEC direct
		c.rmwDirect(c.dec8)
	case 0x0C: // INC direct
		c.rmwDirect(c.inc8)
	case 0x0D: // TST direct
		c.tst8(c.ram.Read(c.addrDirect()))
	case 0x0E: // JMP direct
		c.PC = c.addrDirect()
	case 0x0F: // CLR direct
		addr := c.addrDirect()
		c.ram.Write(addr, c.clr8())

	// ---- 0x12..0x1F: inherent/misc ----
	case 0x12: // NOP
	case 0x13: // SYNC
		c.sync = true
	case 0x16: // LBRA
		c.PC = c.addrRelative16()
	case 0x17: // LBSR
		addr := c.addrRelative16()
		c.pushWordS(c.PC)
		c.PC = addr
	case 0x19: // DAA
		c.SetA(c.daa(c.A()))
	case 0x1A: // ORCC immediate
		c.CC |= c.fetchByte()
	case 0x1C: // ANDCC immediate
		c.CC &= c.fetchByte()
	case 0x1D: // SEX
		c.D = c.sex(c.B())
	case 0x1E: // EXG
		c.exg(c.fetchByte())
	case 0x1F: // TFR
		c.tfr(c.fetchByte())

	// ---- 0x20..0x2F: short branches ----
	case 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27,
		0x28, 0x29, 0x2A, 0x2B, 0x2C, 0x2D, 0x2E, 0x2F:
		addr := c.addrRelative8()
		if c.branchTaken(opcode) {
			c.PC = addr
		}

	// ---- 0x30..0x3F: LEA, stack, misc inherent ----
	case 0x30: // LEAX indexed
		ea, extra := c.addrIndexed()
		c.X = ea
		c.setZero(ea == 0)
		c.Cycles += uint64(extra)
	case 0x31: // LEAY indexed
		ea, extra := c.addrIndexed()
		c.Y = ea
		c.setZero(ea == 0)
		c.Cycles += uint64(extra)
	case 0x32: // LEAS indexed
		ea, extra := c.addrIndexed()
		c.S = ea
		c.armNMI()
		c.Cycles += uint64(extra)
	case 0x33: // LEAU indexed
		ea, extra := c.addrIndexed()
		c.U = ea
		c.Cycles += uint64(extra)
	case 0x34: // PSHS
		c.Cycles += uint64(c.pushRegistersS(c.fetchByte()))
	case 0x35: // PULS
		c.Cycles += uint64(c.pullRegistersS(c.fetchByte()))
	case 0x36: // PSHU
		c.Cycles += uint64(c.pushRegistersU(c.fetchByte()))
	case 0x37: // PULU
		c.Cycles += uint64(c.pullRegistersU(c.fetchByte()))
	case 0x39: // RTS
		c.PC = c.pullWordS()
	case 0x3A: // ABX: X += B, unsigned
		c.X += uint16(c.B())
	case 0x3B: // RTI
		c.CC = c.pullByteS()
		if c.entire() {
			c.SetA(c.pullByteS())
			c.SetB(c.pullByteS())
			c.DP = c.pullByteS()
			c.X = c.pullWordS()
			c.Y = c.pullWordS()
			c.U = c.pullWordS()
			c.Cycles += 9 // 6 base + 9 extra = 15 total for full restore
		}
		c.PC = c.pullWordS()
	case 0x3C: // CWAI
		post := c.fetchByte()
		c.CC &= post
		c.setEntire(true)
		c.pushEntireState()
		c.cwai = true
	case 0x3D: // MUL
		c.D = c.mul(c.A(), c.B())
	case 0x3E: // RESET (undocumented): halts the CPU
		c.halted = true
		c.haltOpcode = opcode
	case 0x3F: // SWI
		c.setEntire(true)
		c.pushEntireState()
		c.setIRQInhibit(true)
		c.setFIRQInhibit(true)
		c.PC = c.readWord(VecSWI)

	// ---- 0x40..0x4F: inherent A ----
	case 0x40, 0x41:
		c.SetA(c.neg8(c.A()))
	case 0x43:
		c.SetA(c.com8(c.A()))
	case 0x44, 0x45:
		c.SetA(c.lsr8(c.A()))
	case 0x46:
		c.SetA(c.ror8(c.A()))
	case 0x47:
		c.SetA(c.asr8(c.A()))
	case 0x48:
		c.SetA(c.asl8(c.A()))
	case 0x49:
		c.SetA(c.rol8(c.A()))
	case 0x4A:
		c.SetA(c.dec8(c.A()))
	case 0x4C:
		c.SetA(c.inc8(c.A()))
	case 0x4D:
		c.tst8(c.A())
	case 0x4F: // CLRA
		c.SetA(c.clr8())

	// ---- 0x50..0x5F: inherent B ----
	case 0x50, 0x51:
		c.SetB(c.neg8(c.B()))
	case 0x53:
		c.SetB(c.com8(c.B()))
	case 0x54, 0x55:
		c.SetB(c.lsr8(c.B()))
	case 0x56:
		c.SetB(c.ror8(c.B()))
	case 0x57:
		c.SetB(c.asr8(c.B()))
	case 0x58:
		c.SetB(c.asl8(c.B()))
	case 0x59:
		c.SetB(c.rol8(c.B()))
	case 0x5A:
		c.SetB(c.dec8(c.B()))
	case 0x5C:
		c.SetB(c.inc8(c.B()))
	case 0x5D:
		c.tst8(c.B())
	case 0x5F: // CLRB
		c.SetB(c.clr8())

	// ---- 0x60..0x6F: indexed read-modify-write ----
	case 0x60, 0x61:
		c.rmwIndexed(c.neg8)
	case 0x63:
		c.rmwIndexed(c.com8)
	case 0x64, 0x65:
		c.rmwIndexed(c.lsr8)
	case 0x66:
		c.rmwIndexed(c.ror8)
	case 0x67:
		c.rmwIndexed(c.asr8)
	case 0x68:
		c.rmwIndexed(c.asl8)
	case 0x69:
		c.rmwIndexed(c.rol8)
	case 0x6A:
		c.rmwIndexed(c.dec8)
	case 0x6C:
		c.rmwIndexed(c.inc8)
	case 0x6D: // TST indexed
		addr, extra := c.addrIndexed()
		c.Cycles += uint64(extra)
		c.tst8(c.ram.Read(addr))
	case 0x6E: // JMP indexed
		addr, extra := c.addrIndexed()
		c.Cycles += uint64(extra)
		c.PC = addr
	case 0x6F: // CLR indexed
		addr, extra := c.addrIndexed()
		c.Cycles += uint64(extra)
		c.ram.Write(addr, c.clr8())

	// ---- 0x70..0x7F: extended read-modify-write ----
	case 0x70, 0x71:
		c.rmwExtended(c.neg8)
	case 0x73:
		c.rmwExtended(c.com8)
	case 0x74, 0x75:
		c.rmwExtended(c.lsr8)
	case 0x76:
		c.rmwExtended(c.ror8)
	case 0x77:
		c.rmwExtended(c.asr8)
	case 0x78:
		c.rmwExtended(c.asl8)
	case 0x79:
		c.rmwExtended(c.rol8)
	case 0x7A:
		c.rmwExtended(c.dec8)
	case 0x7C:
		c.rmwExtended(c.inc8)
	case 0x7D: // TST extended
		c.tst8(c.ram.Read(c.addrExtended()))
	case 0x7E: // JMP extended
		c.PC = c.addrExtended()
	case 0x7F: // CLR extended
		addr := c.addrExtended()
		c.ram.Write(addr, c.clr8())

	// ---- 0x80..0x8F: immediate A/D/X ----
	case 0x80:
		c.SetA(c.sub8(c.A(), c.fetchByte()))
	case 0x81: // CMPA
		c.sub8(c.A(), c.fetchByte())
	case 0x82:
		c.SetA(c.sbc8(c.A(), c.fetchByte()))
	case 0x83: // SUBD immediate
		c.D = c.sub16(c.D, c.fetchWord())
	case 0x84:
		c.SetA(c.and8(c.A(), c.fetchByte()))
	case 0x85: // BITA
		c.and8(c.A(), c.fetchByte())
	case 0x86: // LDA immediate
		v := c.fetchByte()
		c.ld8Flags(v)
		c.SetA(v)
	// 0x87 illegal
	case 0x88:
		c.SetA(c.eor8(c.A(), c.fetchByte()))
	case 0x89:
		c.SetA(c.adc8(c.A(), c.fetchByte()))
	case 0x8A:
		c.SetA(c.or8(c.A(), c.fetchByte()))
	case 0x8B:
		c.SetA(c.add8(c.A(), c.fetchByte()))
	case 0x8C: // CMPX immediate
		c.sub16(c.X, c.fetchWord())
	case 0x8D: // BSR
		addr := c.addrRelative8()
		c.pushWordS(c.PC)
		c.PC = addr
	case 0x8E: // LDX immediate
		v := c.fetchWord()
		c.ld16Flags(v)
		c.X = v
	// 0x8F illegal

	// ---- 0x90..0x9F: direct A/D/X ----
	case 0x90:
		c.SetA(c.sub8(c.A(), c.ram.Read(c.addrDirect())))
	case 0x91:
		c.sub8(c.A(), c.ram.Read(c.addrDirect()))
	case 0x92:
		c.SetA(c.sbc8(c.A(), c.ram.Read(c.addrDirect())))
	case 0x93:
		c.D = c.sub16(c.D, c.readWord(c.addrDirect()))
	case 0x94:
		c.SetA(c.and8(c.A(), c.ram.Read(c.addrDirect())))
	case 0x95:
		c.and8(c.A(), c.ram.Read(c.addrDirect()))
	case 0x96:
		v := c.ram.Read(c.addrDirect())
		c.ld8Flags(v)
		c.SetA(v)
	case 0x97: // STA direct
		addr := c.addrDirect()
		c.ld8Flags(c.A())
		c.ram.Write(addr, c.A())
	case 0x98:
		c.SetA(c.eor8(c.A(), c.ram.Read(c.addrDirect())))
	case 0x99:
		c.SetA(c.adc8(c.A(), c.ram.Read(c.addrDirect())))
	case 0x9A:
		c.SetA(c.or8(c.A(), c.ram.Read(c.addrDirect())))
	case 0x9B:
		c.SetA(c.add8(c.A(), c.ram.Read(c.addrDirect())))
	case 0x9C:
		c.sub16(c.X, c.readWord(c.addrDirect()))
	case 0x9D: // JSR direct
		addr := c.addrDirect()
		c.pushWordS(c.PC)
		c.PC = addr
	case 0x9E:
		v := c.readWord(c.addrDirect())
		c.ld16Flags(v)
		c.X = v
	case 0x9F:
		addr := c.addrDirect()
		c.ld16Flags(c.X)
		c.writeWord(addr, c.X)

	// ---- 0xA0..0xAF: indexed A/D/X ----
	case 0xA0:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetA(c.sub8(c.A(), c.ram.Read(addr)))
	case 0xA1:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.sub8(c.A(), c.ram.Read(addr))
	case 0xA2:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetA(c.sbc8(c.A(), c.ram.Read(addr)))
	case 0xA3:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.D = c.sub16(c.D, c.readWord(addr))
	case 0xA4:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetA(c.and8(c.A(), c.ram.Read(addr)))
	case 0xA5:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.and8(c.A(), c.ram.Read(addr))
	case 0xA6:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		v := c.ram.Read(addr)
		c.ld8Flags(v)
		c.SetA(v)
	case 0xA7:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.ld8Flags(c.A())
		c.ram.Write(addr, c.A())
	case 0xA8:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetA(c.eor8(c.A(), c.ram.Read(addr)))
	case 0xA9:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetA(c.adc8(c.A(), c.ram.Read(addr)))
	case 0xAA:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetA(c.or8(c.A(), c.ram.Read(addr)))
	case 0xAB:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetA(c.add8(c.A(), c.ram.Read(addr)))
	case 0xAC:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.sub16(c.X, c.readWord(addr))
	case 0xAD: // JSR indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.pushWordS(c.PC)
		c.PC = addr
	case 0xAE:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		v := c.readWord(addr)
		c.ld16Flags(v)
		c.X = v
	case 0xAF:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.ld16Flags(c.X)
		c.writeWord(addr, c.X)

	// ---- 0xB0..0xBF: extended A/D/X ----
	case 0xB0:
		c.SetA(c.sub8(c.A(), c.ram.Read(c.addrExtended())))
	case 0xB1:
		c.sub8(c.A(), c.ram.Read(c.addrExtended()))
	case 0xB2:
		c.SetA(c.sbc8(c.A(), c.ram.Read(c.addrExtended())))
	case 0xB3:
		c.D = c.sub16(c.D, c.readWord(c.addrExtended()))
	case 0xB4:
		c.SetA(c.and8(c.A(), c.ram.Read(c.addrExtended())))
	case 0xB5:
		c.and8(c.A(), c.ram.Read(c.addrExtended()))
	case 0xB6:
		v := c.ram.Read(c.addrExtended())
		c.ld8Flags(v)
		c.SetA(v)
	case 0xB7:
		addr := c.addrExtended()
		c.ld8Flags(c.A())
		c.ram.Write(addr, c.A())
	case 0xB8:
		c.SetA(c.eor8(c.A(), c.ram.Read(c.addrExtended())))
	case 0xB9:
		c.SetA(c.adc8(c.A(), c.ram.Read(c.addrExtended())))
	case 0xBA:
		c.SetA(c.or8(c.A(), c.ram.Read(c.addrExtended())))
	case 0xBB:
		c.SetA(c.add8(c.A(), c.ram.Read(c.addrExtended())))
	case 0xBC:
		c.sub16(c.X, c.readWord(c.addrExtended()))
	case 0xBD: // JSR extended
		addr := c.addrExtended()
		c.pushWordS(c.PC)
		c.PC = addr
	case 0xBE:
		v := c.readWord(c.addrExtended())
		c.ld16Flags(v)
		c.X = v
	case 0xBF:
		addr := c.addrExtended()
		c.ld16Flags(c.X)
		c.writeWord(addr, c.X)

	// ---- 0xC0..0xCF: immediate B/D/U ----
	case 0xC0:
		c.SetB(c.sub8(c.B(), c.fetchByte()))
	case 0xC1:
		c.sub8(c.B(), c.fetchByte())
	case 0xC2:
		c.SetB(c.sbc8(c.B(), c.fetchByte()))
	case 0xC3: // ADDD immediate
		c.D = c.add16(c.D, c.fetchWord())
	case 0xC4:
		c.SetB(c.and8(c.B(), c.fetchByte()))
	case 0xC5:
		c.and8(c.B(), c.fetchByte())
	case 0xC6:
		v := c.fetchByte()
		c.ld8Flags(v)
		c.SetB(v)
	// 0xC7 illegal
	case 0xC8:
		c.SetB(c.eor8(c.B(), c.fetchByte()))
	case 0xC9:
		c.SetB(c.adc8(c.B(), c.fetchByte()))
	case 0xCA:
		c.SetB(c.or8(c.B(), c.fetchByte()))
	case 0xCB:
		c.SetB(c.add8(c.B(), c.fetchByte()))
	case 0xCC: // LDD immediate
		v := c.fetchWord()
		c.ld16Flags(v)
		c.D = v
	// 0xCD illegal
	case 0xCE: // LDU immediate
		v := c.fetchWord()
		c.ld16Flags(v)
		c.U = v
	// 0xCF illegal

	// ---- 0xD0..0xDF: direct B/D/U ----
	case 0xD0:
		c.SetB(c.sub8(c.B(), c.ram.Read(c.addrDirect())))
	case 0xD1:
		c.sub8(c.B(), c.ram.Read(c.addrDirect()))
	case 0xD2:
		c.SetB(c.sbc8(c.B(), c.ram.Read(c.addrDirect())))
	case 0xD3: // ADDD direct
		c.D = c.add16(c.D, c.readWord(c.addrDirect()))
	case 0xD4:
		c.SetB(c.and8(c.B(), c.ram.Read(c.addrDirect())))
	case 0xD5:
		c.and8(c.B(), c.ram.Read(c.addrDirect()))
	case 0xD6:
		v := c.ram.Read(c.addrDirect())
		c.ld8Flags(v)
		c.SetB(v)
	case 0xD7:
		addr := c.addrDirect()
		c.ld8Flags(c.B())
		c.ram.Write(addr, c.B())
	case 0xD8:
		c.SetB(c.eor8(c.B(), c.ram.Read(c.addrDirect())))
	case 0xD9:
		c.SetB(c.adc8(c.B(), c.ram.Read(c.addrDirect())))
	case 0xDA:
		c.SetB(c.or8(c.B(), c.ram.Read(c.addrDirect())))
	case 0xDB:
		c.SetB(c.add8(c.B(), c.ram.Read(c.addrDirect())))
	case 0xDC: // LDD direct
		v := c.readWord(c.addrDirect())
		c.ld16Flags(v)
		c.D = v
	case 0xDD: // STD direct
		addr := c.addrDirect()
		c.ld16Flags(c.D)
		c.writeWord(addr, c.D)
	case 0xDE: // LDU direct
		v := c.readWord(c.addrDirect())
		c.ld16Flags(v)
		c.U = v
	case 0xDF: // STU direct
		addr := c.addrDirect()
		c.ld16Flags(c.U)
		c.writeWord(addr, c.U)

	// ---- 0xE0..0xEF: indexed B/D/U ----
	case 0xE0:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetB(c.sub8(c.B(), c.ram.Read(addr)))
	case 0xE1:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.sub8(c.B(), c.ram.Read(addr))
	case 0xE2:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetB(c.sbc8(c.B(), c.ram.Read(addr)))
	case 0xE3:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.D = c.add16(c.D, c.readWord(addr))
	case 0xE4:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetB(c.and8(c.B(), c.ram.Read(addr)))
	case 0xE5:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.and8(c.B(), c.ram.Read(addr))
	case 0xE6:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		v := c.ram.Read(addr)
		c.ld8Flags(v)
		c.SetB(v)
	case 0xE7:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.ld8Flags(c.B())
		c.ram.Write(addr, c.B())
	case 0xE8:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetB(c.eor8(c.B(), c.ram.Read(addr)))
	case 0xE9:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetB(c.adc8(c.B(), c.ram.Read(addr)))
	case 0xEA:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetB(c.or8(c.B(), c.ram.Read(addr)))
	case 0xEB:
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.SetB(c.add8(c.B(), c.ram.Read(addr)))
	case 0xEC: // LDD indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		v := c.readWord(addr)
		c.ld16Flags(v)
		c.D = v
	case 0xED: // STD indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.ld16Flags(c.D)
		c.writeWord(addr, c.D)
	case 0xEE: // LDU indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		v := c.readWord(addr)
		c.ld16Flags(v)
		c.U = v
	case 0xEF: // STU indexed
		addr, ex := c.addrIndexed()
		c.Cycles += uint64(ex)
		c.ld16Flags(c.U)
		c.writeWord(addr, c.U)

	// ---- 0xF0..0xFF: extended B/D/U ----
	case 0xF0:
		c.SetB(c.sub8(c.B(), c.ram.Read(c.addrExtended())))
	case 0xF1:
		c.sub8(c.B(), c.ram.Read(c.addrExtended()))
	case 0xF2:
		c.SetB(c.sbc8(c.B(), c.ram.Read(c.addrExtended())))
	case 0xF3:
		c.D = c.add16(c.D, c.readWord(c.addrExtended()))
	case 0xF4:
		c.SetB(c.and8(c.B(), c.ram.Read(c.addrExtended())))
	case 0xF5:
		c.and8(c.B(), c.ram.Read(c.addrExtended()))
	case 0xF6:
		v := c.ram.Read(c.addrExtended())
		c.ld8Flags(v)
		c.SetB(v)
	case 0xF7:
		addr := c.addrExtended()
		c.ld8Flags(c.B())
		c.ram.Write(addr, c.B())
	case 0xF8:
		c.SetB(c.eor8(c.B(), c.ram.Read(c.addrExtended())))
	case 0xF9:
		c.SetB(c.adc8(c.B(), c.ram.Read(c.addrExtended())))
	case 0xFA:
		c.SetB(c.or8(c.B(), c.ram.Read(c.addrExtended())))
	case 0xFB:
		c.SetB(c.add8(c.B(), c.ram.Read(c.addrExtended())))
	case 0xFC: // LDD extended
		v := c.readWord(c.addrExtended())
		c.ld16Flags(v)
		c.D = v
	case 0xFD: // STD extended
		addr := c.addrExtended()
		c.ld16Flags(c.D)
		c.writeWord(addr, c.D)
	case 0xFE: // LDU extended
		v := c.readWord(c.addrExtended())
		c.ld16Flags(v)
		c.U = v
	case 0xFF: // STU extended
		addr := c.addrExtended()
		c.ld16Flags(c.U)
		c.writeWord(addr, c.U)

	default:
		// Undefined opcode: cycles already charged from the table above
		// (real silicon still consumes bus cycles fetching it).
		c.illegal = true
	}
}

// rmwDirect/rmwIndexed/rmwExtended share the read-modify-write shape
// across the three non-inherent addressing modes a page-0 RMW opcode
// can use, rather than repeating the read/apply/write sequence at
// every call site.
func (c *Chip) rmwDirect(op func(uint8) uint8) {
	addr := c.addrDirect()
	c.ram.Write(addr, op(c.ram.Read(addr)))
}

func (c *Chip) rmwExtended(op func(uint8) uint8) {
	addr := c.addrExtended()
	c.ram.Write(addr, op(c.ram.Read(addr)))
}

func (c *Chip) rmwIndexed(op func(uint8) uint8) {
	addr, extra := c.addrIndexed()
	c.Cycles += uint64(extra)
	c.ram.Write(addr, op(c.ram.Read(addr)))
}
