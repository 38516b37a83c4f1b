package bus

import "github.com/GeReV/yagbe/yagbe/hwio"

// Interrupts is the request/enable register pair with priority-ordered
// dispatch. One bit per source in each register; a source is pending
// when both its enable and flag bits are set. Whether a pending source
// is actually dispatched depends on the CPU's master enable latch,
// which lives in the CPU.
type Interrupts struct {
	enable uint8
	flags  uint8
}

// Request sets the flag bit for a source. Requests are level-triggered:
// requesting an already-flagged source is a no-op.
func (i *Interrupts) Request(src hwio.Interrupt) {
	i.flags |= src.Mask()
}

// Pending returns the highest-priority source that is both requested and
// enabled. Lower bit numbers win, VBlank first.
func (i *Interrupts) Pending() (hwio.Interrupt, bool) {
	masked := i.enable & i.flags & 0x1F
	if masked == 0 {
		return 0, false
	}
	for src := hwio.Interrupt(0); src < hwio.NumInterrupts; src++ {
		if masked&src.Mask() != 0 {
			return src, true
		}
	}
	return 0, false
}

// Acknowledge clears the flag bit for a dispatched source.
func (i *Interrupts) Acknowledge(src hwio.Interrupt) {
	i.flags &^= src.Mask()
}

// Requested reports whether any enabled source is flagged. A halted CPU
// wakes on this condition even while its master latch is clear.
func (i *Interrupts) Requested() bool {
	return i.enable&i.flags&0x1F != 0
}

// ReadFlags returns the IF register value. The upper three bits are
// unwired on hardware and always read as 1.
func (i *Interrupts) ReadFlags() uint8 {
	return i.flags | 0xE0
}

// WriteFlags stores the low five bits of a CPU write to IF.
func (i *Interrupts) WriteFlags(value uint8) {
	i.flags = value & 0x1F
}

// ReadEnable returns the IE register value.
func (i *Interrupts) ReadEnable() uint8 {
	return i.enable
}

// WriteEnable stores a CPU write to IE. All eight bits are kept, the
// upper three are simply never consulted.
func (i *Interrupts) WriteEnable(value uint8) {
	i.enable = value
}
