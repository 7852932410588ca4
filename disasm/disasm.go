// Package disasm implements a disassembler for 6809 opcodes. It is a
// read-only companion to cpu.Chip: it never executes, only formats.
package disasm

import (
	"fmt"

	"golang.org/x/image/font/basicfont"

	"github.com/jmchacon/m6809/memory"
)

const (
	modeInherent = iota
	modeImmediate8
	modeImmediate16
	modeDirect
	modeExtended
	modeIndexed
	modeRelative8
	modeRelative16
)

// glyphWidth is the fixed glyph width of basicfont.Face7x13, used to
// report how many pixels wide a disassembly line renders to in a
// text-UI using that face.
var glyphWidth = basicfont.Face7x13.Width

// LineWidthPixels returns the rendered pixel width of a disasm.Step
// line in basicfont.Face7x13, for callers sizing a fixed-width
// viewport around the disassembly column count.
func LineWidthPixels() int {
	return columns * glyphWidth
}

// entry describes one opcode's mnemonic and addressing mode.
type entry struct {
	mnemonic string
	mode     int
}

// Step disassembles the instruction at pc, returning the formatted
// line and the number of bytes it occupies (including any page
// prefix). It does not follow branches or jumps.
func Step(pc uint16, r memory.Bank) (string, int) {
	o := r.Read(pc)
	prefix := ""
	page := page0
	opAddr := pc
	count := 1

	switch o {
	case 0x10:
		prefix = "10 "
		page = page1
		opAddr = pc + 1
		count = 2
		o = r.Read(opAddr)
	case 0x11:
		prefix = "11 "
		page = page2
		opAddr = pc + 1
		count = 2
		o = r.Read(opAddr)
	}

	e, ok := page[o]
	if !ok {
		return fmt.Sprintf("%.4X %s%.2X      UNIMPLEMENTED", pc, prefix, o), count
	}

	operandAddr := opAddr + 1
	out := fmt.Sprintf("%.4X %s%.2X ", pc, prefix, o)

	switch e.mode {
	case modeInherent:
		out += pad(e.mnemonic, "")
	case modeImmediate8:
		v := r.Read(operandAddr)
		out += pad(e.mnemonic, fmt.Sprintf("#$%.2X", v))
		count++
	case modeImmediate16:
		v := memory.ReadWord(r, operandAddr)
		out += pad(e.mnemonic, fmt.Sprintf("#$%.4X", v))
		count += 2
	case modeDirect:
		v := r.Read(operandAddr)
		out += pad(e.mnemonic, fmt.Sprintf("<$%.2X", v))
		count++
	case modeExtended:
		v := memory.ReadWord(r, operandAddr)
		out += pad(e.mnemonic, fmt.Sprintf("$%.4X", v))
		count += 2
	case modeIndexed:
		post := r.Read(operandAddr)
		out += pad(e.mnemonic, fmt.Sprintf("[postbyte $%.2X]", post))
		count++
		if post&0x80 != 0 {
			switch post & 0x0F {
			case 0x08, 0x0C: // 8-bit offset
				count++
			case 0x09, 0x0D: // 16-bit offset
				count += 2
			case 0x0F: // extended indirect address
				if post&0x10 != 0 {
					count += 2
				}
			}
		}
	case modeRelative8:
		off := int16(int8(r.Read(operandAddr)))
		out += pad(e.mnemonic, fmt.Sprintf("$%.4X", uint16(int32(pc)+int32(count)+1+int32(off))))
		count++
	case modeRelative16:
		off := int16(memory.ReadWord(r, operandAddr))
		out += pad(e.mnemonic, fmt.Sprintf("$%.4X", uint16(int32(pc)+int32(count)+2+int32(off))))
		count += 2
	}

	return out, count
}

// pad aligns mnemonic+operand to a fixed column count. Every glyph in
// basicfont.Face7x13 is the same glyphWidth, so padding to a column
// count keeps the text-UI viewer's columns aligned regardless of
// mnemonic length.
const columns = 16

func pad(mnemonic, operand string) string {
	s := mnemonic
	if operand != "" {
		s += " " + operand
	}
	for len(s) < columns {
		s += " "
	}
	return s
}
