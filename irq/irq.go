// Package irq defines the basic interfaces for working with a 6809
// interrupt source. A component which generates interrupts (IRQ/FIRQ/NMI)
// implements this interface so that the receiver can poll its state
// without cross coupling component logic.
// NOTE: IRQ and FIRQ are level-triggered on real hardware and NMI is
//       edge-triggered; this interface doesn't distinguish the two. The
//       cpu package samples Raised once per Step and derives the NMI
//       edge itself from a false-to-true transition.
package irq

// Sender defines the interface for an interrupt source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}
