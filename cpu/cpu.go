// Package cpu implements a cycle-counted Motorola 6809 CPU core.
package cpu

import (
	"fmt"

	"github.com/jmchacon/m6809/bitfield"
	"github.com/jmchacon/m6809/irq"
	"github.com/jmchacon/m6809/memory"
)

// Condition code bits, LSB to MSB: C V Z N I H F E.
const (
	CCCarry     = uint8(0x01) // Carry
	CCOverflow  = uint8(0x02) // Overflow
	CCZero      = uint8(0x04) // Zero
	CCNegative  = uint8(0x08) // Negative
	CCIRQMask   = uint8(0x10) // IRQ inhibit
	CCHalfCarry = uint8(0x20) // Half carry (nibble carry from ADD/ADC)
	CCFIRQMask  = uint8(0x40) // FIRQ inhibit
	CCEntire    = uint8(0x80) // Entire state was stacked
)

// Interrupt and reset vector addresses.
const (
	VecSWI3  = uint16(0xFFF2)
	VecSWI2  = uint16(0xFFF4)
	VecFIRQ  = uint16(0xFFF6)
	VecIRQ   = uint16(0xFFF8)
	VecSWI   = uint16(0xFFFA)
	VecNMI   = uint16(0xFFFC)
	VecReset = uint16(0xFFFE)
)

// InvalidCPUState represents a precondition violation when building a
// Chip. New returns it when no memory.Bank is supplied.
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltedError is returned by Step once the CPU has executed a
// RESET (0x3E SWI-style halt per this core's interpretation of
// undocumented opcode 0x3E) and stopped responding to further Step
// calls until Reset is called again. Run stops when the CPU halts and
// does not return it.
type HaltedError struct {
	Opcode uint8
}

// Error implements the error interface.
func (e HaltedError) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed", e.Opcode)
}

// Chip is a Motorola 6809 CPU core. It holds the full programmer-visible
// register set plus the interrupt/wait-state machinery, and executes
// instructions by reading and writing an attached memory.Bank.
type Chip struct {
	// D is the combined accumulator (A in the high byte, B in the low
	// byte). Use A/B/SetA/SetB rather than touching D directly so
	// the 8-bit accumulators stay correctly aliased.
	D uint16
	X uint16
	Y uint16
	U uint16
	S uint16
	PC uint16
	DP uint8
	CC uint8

	// Cycles is the total elapsed cycle count since the last Reset.
	Cycles uint64

	ram memory.Bank
	log Logger

	// irqSrc/firqSrc/nmiSrc are optional interrupt sources polled once
	// per Step, mirroring the teacher's ChipDef.Irq/Nmi wiring. NMI is
	// edge-triggered even though Sender.Raised() is a level query, so
	// this core tracks the previous sample to synthesize the edge.
	irqSrc  irq.Sender
	firqSrc irq.Sender
	nmiSrc  irq.Sender
	nmiSrcPrev bool

	// Explicit line state, settable directly (SetIRQ/SetFIRQ) or via
	// the optional Sender fields above.
	irqLine  bool
	firqLine bool

	nmiArmed   bool
	nmiPending bool

	cwai bool
	sync bool

	halted bool
	illegal bool
	haltOpcode uint8
}

// Option configures a Chip at construction time.
type Option func(*Chip)

// WithLogger installs a logger used for illegal-opcode and halt
// notices. The default is a discard logger.
func WithLogger(l Logger) Option {
	return func(c *Chip) { c.log = l }
}

// WithIRQ wires an optional level-triggered IRQ source, checked once
// per Step in addition to any state set via SetIRQ.
func WithIRQ(s irq.Sender) Option {
	return func(c *Chip) { c.irqSrc = s }
}

// WithFIRQ wires an optional level-triggered FIRQ source, checked once
// per Step in addition to any state set via SetFIRQ.
func WithFIRQ(s irq.Sender) Option {
	return func(c *Chip) { c.firqSrc = s }
}

// WithNMI wires an optional NMI source. Sender.Raised() is sampled once
// per Step and treated as edge-triggered: a pending NMI is latched only
// on a false-to-true transition, matching real 6809 NMI semantics.
func WithNMI(s irq.Sender) Option {
	return func(c *Chip) { c.nmiSrc = s }
}

// New creates a powered-off Chip attached to ram. Call Reset before
// stepping it to load PC from the reset vector.
func New(ram memory.Bank, opts ...Option) (*Chip, error) {
	if ram == nil {
		return nil, InvalidCPUState{Reason: "ram must not be nil"}
	}
	c := &Chip{
		ram: ram,
		log: discardLogger{},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// A returns accumulator A, the high byte of D.
func (c *Chip) A() uint8 { return uint8(c.D >> 8) }

// B returns accumulator B, the low byte of D.
func (c *Chip) B() uint8 { return uint8(c.D) }

// SetA sets accumulator A, preserving B.
func (c *Chip) SetA(v uint8) { c.D = (c.D & 0x00FF) | (uint16(v) << 8) }

// SetB sets accumulator B, preserving A.
func (c *Chip) SetB(v uint8) { c.D = (c.D & 0xFF00) | uint16(v) }

// Halted reports whether the CPU is halted and no longer responding to
// Step.
func (c *Chip) Halted() bool { return c.halted }

// Illegal reports whether the most recently executed opcode was not a
// defined 6809 instruction. Cleared at the start of every Step.
func (c *Chip) Illegal() bool { return c.illegal }

// ---- CC predicate/setter helpers ----
// Small single-purpose flag helpers, used internally throughout the ALU
// application and branch-condition code.

func (c *Chip) carry() bool    { return bitfield.Any(c.CC, CCCarry) }
func (c *Chip) overflow() bool { return bitfield.Any(c.CC, CCOverflow) }
func (c *Chip) zero() bool     { return bitfield.Any(c.CC, CCZero) }
func (c *Chip) negative() bool { return bitfield.Any(c.CC, CCNegative) }
func (c *Chip) irqInhibit() bool  { return bitfield.Any(c.CC, CCIRQMask) }
func (c *Chip) halfCarry() bool   { return bitfield.Any(c.CC, CCHalfCarry) }
func (c *Chip) firqInhibit() bool { return bitfield.Any(c.CC, CCFIRQMask) }
func (c *Chip) entire() bool      { return bitfield.Any(c.CC, CCEntire) }

func (c *Chip) setFlag(mask uint8, v bool) {
	c.CC = bitfield.Assign(c.CC, mask, v)
}

func (c *Chip) setCarry(v bool)     { c.setFlag(CCCarry, v) }
func (c *Chip) setOverflow(v bool)  { c.setFlag(CCOverflow, v) }
func (c *Chip) setZero(v bool)      { c.setFlag(CCZero, v) }
func (c *Chip) setNegative(v bool)  { c.setFlag(CCNegative, v) }
func (c *Chip) setIRQInhibit(v bool)  { c.setFlag(CCIRQMask, v) }
func (c *Chip) setHalfCarry(v bool)   { c.setFlag(CCHalfCarry, v) }
func (c *Chip) setFIRQInhibit(v bool) { c.setFlag(CCFIRQMask, v) }
func (c *Chip) setEntire(v bool)      { c.setFlag(CCEntire, v) }

func (c *Chip) setNZ8(v uint8)   { c.setNegative(v&0x80 != 0); c.setZero(v == 0) }
func (c *Chip) setNZ16(v uint16) { c.setNegative(v&0x8000 != 0); c.setZero(v == 0) }

// Reset performs a hardware reset: all registers are cleared, IRQ and
// FIRQ are masked, and PC is loaded from the reset vector.
func (c *Chip) Reset() {
	c.D, c.X, c.Y, c.U, c.S, c.DP = 0, 0, 0, 0, 0, 0
	c.CC = 0
	c.setIRQInhibit(true)
	c.setFIRQInhibit(true)
	c.PC = memory.ReadWord(c.ram, VecReset)
	c.Cycles = 0
	c.halted = false
	c.illegal = false
	c.nmiArmed = false
	c.nmiPending = false
	c.irqLine = false
	c.firqLine = false
	c.nmiSrcPrev = false
	c.cwai = false
	c.sync = false
}

// SetIRQ asserts or deasserts the level-triggered IRQ line directly,
// independent of any Sender wired with WithIRQ.
func (c *Chip) SetIRQ(active bool) { c.irqLine = active }

// SetFIRQ asserts or deasserts the level-triggered FIRQ line directly,
// independent of any Sender wired with WithFIRQ.
func (c *Chip) SetFIRQ(active bool) { c.firqLine = active }

// TriggerNMI latches an edge-triggered NMI request. It has no effect
// until the first write to S has armed NMI delivery.
func (c *Chip) TriggerNMI() {
	if c.nmiArmed {
		c.nmiPending = true
	}
}

func (c *Chip) armNMI() { c.nmiArmed = true }

// pollSources samples any wired Sender inputs into the line/pending
// state Step's interrupt check consumes.
func (c *Chip) pollSources() {
	if c.irqSrc != nil && c.irqSrc.Raised() {
		c.irqLine = true
	}
	if c.firqSrc != nil && c.firqSrc.Raised() {
		c.firqLine = true
	}
	if c.nmiSrc != nil {
		cur := c.nmiSrc.Raised()
		if cur && !c.nmiSrcPrev {
			c.TriggerNMI()
		}
		c.nmiSrcPrev = cur
	}
}

// Step executes a single instruction, or services a pending interrupt,
// or advances one cycle while halted/waiting. It returns the number of
// cycles consumed and an error only for HaltedError (the CPU has
// executed an undocumented halt opcode) — illegal (but non-halting)
// opcodes are reported via Illegal(), not an error.
func (c *Chip) Step() (uint64, error) {
	c.illegal = false

	if c.halted {
		return 1, HaltedError{Opcode: c.haltOpcode}
	}

	start := c.Cycles
	c.pollSources()

	if c.sync {
		if c.nmiPending || c.firqLine || c.irqLine {
			c.sync = false
		} else {
			c.Cycles++
			return 1, nil
		}
	}

	if c.cwai {
		if c.unmaskedInterruptPending() {
			// fall through: checkInterrupts dispatches it and clears cwai.
		} else {
			c.Cycles++
			return 1, nil
		}
	}

	if c.checkInterrupts() {
		return c.Cycles - start, nil
	}

	opcode := c.fetchByte()
	c.execute(opcode)

	if c.illegal {
		c.log.Printf("illegal opcode 0x%.2X at PC=0x%.4X", opcode, c.PC-1)
	}
	if c.halted {
		c.log.Printf("halted on opcode 0x%.2X at PC=0x%.4X", c.haltOpcode, c.PC-1)
	}

	return c.Cycles - start, nil
}

// Run steps the CPU until at least budget cycles have elapsed or the
// CPU halts, and returns the number of cycles actually consumed.
func (c *Chip) Run(budget uint64) (uint64, error) {
	start := c.Cycles
	target := start + budget
	for c.Cycles < target && !c.halted {
		if _, err := c.Step(); err != nil {
			return c.Cycles - start, err
		}
	}
	return c.Cycles - start, nil
}

// unmaskedInterruptPending reports whether any interrupt source is both
// asserted and not masked, i.e. one checkInterrupts would actually
// service right now. Used to decide when CWAI's wait-state ends.
func (c *Chip) unmaskedInterruptPending() bool {
	return c.nmiPending ||
		(c.firqLine && !c.firqInhibit()) ||
		(c.irqLine && !c.irqInhibit())
}

// checkInterrupts services any pending interrupt in priority order
// (NMI > FIRQ > IRQ). Returns true if one was serviced.
func (c *Chip) checkInterrupts() bool {
	if c.nmiPending {
		c.nmiPending = false
		if !c.cwai {
			c.setEntire(true)
			c.pushEntireState()
		}
		c.cwai = false
		c.setIRQInhibit(true)
		c.setFIRQInhibit(true)
		c.PC = memory.ReadWord(c.ram, VecNMI)
		c.Cycles += 19
		return true
	}

	if c.firqLine && !c.firqInhibit() {
		if !c.cwai {
			c.setEntire(false)
			c.pushWordS(c.PC)
			c.pushByteS(c.CC)
		}
		c.cwai = false
		c.setIRQInhibit(true)
		c.setFIRQInhibit(true)
		c.PC = memory.ReadWord(c.ram, VecFIRQ)
		c.Cycles += 10
		return true
	}

	if c.irqLine && !c.irqInhibit() {
		if !c.cwai {
			c.setEntire(true)
			c.pushEntireState()
		}
		c.cwai = false
		c.setIRQInhibit(true)
		c.PC = memory.ReadWord(c.ram, VecIRQ)
		c.Cycles += 19
		return true
	}

	return false
}

// ---- instruction fetch ----

func (c *Chip) fetchByte() uint8 {
	v := c.ram.Read(c.PC)
	c.PC++
	return v
}

func (c *Chip) fetchWord() uint16 {
	hi := uint16(c.fetchByte())
	lo := uint16(c.fetchByte())
	return hi<<8 | lo
}

// ---- addressing modes (direct/extended/relative); indexed lives in addressing.go ----

func (c *Chip) addrDirect() uint16 {
	lo := uint16(c.fetchByte())
	return uint16(c.DP)<<8 | lo
}

func (c *Chip) addrExtended() uint16 {
	return c.fetchWord()
}

func (c *Chip) addrRelative8() uint16 {
	off := uint16(int16(int8(c.fetchByte())))
	return c.PC + off
}

func (c *Chip) addrRelative16() uint16 {
	off := c.fetchWord()
	return c.PC + off
}
