package cpu

// branchTaken evaluates one of the sixteen 6809 branch conditions,
// identified by the low nibble shared between the short (page 0,
// opcodes 0x20-0x2F) and long (page 1, opcodes 0x10 0x21-0x2F)
// branch families, so both dispatch tables can share one test
// instead of repeating each condition per opcode.
func (c *Chip) branchTaken(cond uint8) bool {
	switch cond & 0x0F {
	case 0x0: // BRA
		return true
	case 0x1: // BRN
		return false
	case 0x2: // BHI
		return !c.carry() && !c.zero()
	case 0x3: // BLS
		return c.carry() || c.zero()
	case 0x4: // BHS/BCC
		return !c.carry()
	case 0x5: // BLO/BCS
		return c.carry()
	case 0x6: // BNE
		return !c.zero()
	case 0x7: // BEQ
		return c.zero()
	case 0x8: // BVC
		return !c.overflow()
	case 0x9: // BVS
		return c.overflow()
	case 0xA: // BPL
		return !c.negative()
	case 0xB: // BMI
		return c.negative()
	case 0xC: // BGE
		return c.negative() == c.overflow()
	case 0xD: // BLT
		return c.negative() != c.overflow()
	case 0xE: // BGT
		return !c.zero() && c.negative() == c.overflow()
	default: // 0xF: BLE
		return c.zero() || c.negative() != c.overflow()
	}
}
