package bus

import (
	"github.com/GeReV/yagbe/yagbe/bits"
	"github.com/GeReV/yagbe/yagbe/hwio"
)

// tacBit maps the TAC clock-select field (bits 1-0) to the bit of the
// internal 16-bit divider whose falling edge clocks TIMA:
//
//	00 -> bit 9 (4096 Hz)
//	01 -> bit 3 (262144 Hz)
//	10 -> bit 5 (65536 Hz)
//	11 -> bit 7 (16384 Hz)
//
// Deriving the timer from divider bits instead of a separate prescaler
// is what makes DIV writes perturb the timer the way hardware does.
var tacBit = [4]uint8{9, 3, 5, 7}

// Timer implements the DIV/TIMA/TMA/TAC register block. The divider runs
// unconditionally; TIMA increments on falling edges of the selected
// divider bit while TAC bit 2 is set.
type Timer struct {
	divider     uint16 // internal counter, DIV is the top byte
	lastEdgeBit bool

	// TIMA overflow is not immediate: the counter reads 0 for four
	// cycles, then TMA is loaded and the interrupt follows one cycle
	// after the reload.
	overflowCountdown int
	reloadIRQ         bool

	tima uint8
	tma  uint8
	tac  uint8

	requestIRQ func()
}

// Advance steps the timer by the given number of T-cycles.
func (t *Timer) Advance(cycles int) {
	for i := 0; i < cycles; i++ {
		if t.reloadIRQ {
			t.reloadIRQ = false
			if t.requestIRQ != nil {
				t.requestIRQ()
			}
		}

		t.divider++

		if t.overflowCountdown > 0 {
			t.overflowCountdown--
			if t.overflowCountdown == 0 {
				t.tima = t.tma
				t.reloadIRQ = true
			}
			continue
		}

		if !bits.Test(2, t.tac) {
			t.lastEdgeBit = false
			continue
		}

		edgeBit := bits.Test16(tacBit[t.tac&0x03], t.divider)
		if t.lastEdgeBit && !edgeBit {
			t.increment()
		}
		t.lastEdgeBit = edgeBit
	}
}

func (t *Timer) increment() {
	if t.tima == 0xFF {
		// Hold zero for one machine cycle before the reload.
		t.overflowCountdown = 4
	}
	t.tima++
}

func (t *Timer) Read(addr uint16) uint8 {
	switch addr {
	case hwio.DIV:
		return uint8(t.divider >> 8)
	case hwio.TIMA:
		return t.tima
	case hwio.TMA:
		return t.tma
	case hwio.TAC:
		return t.tac | 0xF8
	}
	return 0xFF
}

func (t *Timer) Write(addr uint16, value uint8) {
	switch addr {
	case hwio.DIV:
		// Any write clears the whole internal counter.
		t.divider = 0
	case hwio.TIMA:
		t.tima = value
	case hwio.TMA:
		t.tma = value
	case hwio.TAC:
		t.tac = value & 0x07
	}
}

// ResetDivider clears the internal divider, used by the STOP
// instruction.
func (t *Timer) ResetDivider() {
	t.divider = 0
}
