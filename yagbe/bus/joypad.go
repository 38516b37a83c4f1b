package bus

import "github.com/GeReV/yagbe/yagbe/bits"

// Key is one of the eight joypad inputs.
type Key uint8

const (
	KeyRight Key = iota
	KeyLeft
	KeyUp
	KeyDown
	KeyA
	KeyB
	KeySelect
	KeyStart
)

// Joypad models the JOYP register: bits 4-5 select which half of the
// button matrix the low nibble reflects. All lines are active-low, so a
// set bit means released.
//
//	bit 4 clear -> low nibble reads the d-pad lines
//	bit 5 clear -> low nibble reads the action buttons
//	both clear  -> the two nibbles are ANDed together
//	neither     -> the low nibble floats high (0x0F)
//
// Bits 6-7 are unwired and always read as 1.
type Joypad struct {
	actions    uint8 // A, B, Select, Start in bits 0-3
	directions uint8 // Right, Left, Up, Down in bits 0-3
	selection  uint8 // last written bits 4-5

	requestIRQ func()
}

func newJoypad(requestIRQ func()) Joypad {
	return Joypad{
		actions:    0x0F,
		directions: 0x0F,
		selection:  0x30,
		requestIRQ: requestIRQ,
	}
}

func (j *Joypad) Read() uint8 {
	result := uint8(0xC0) | j.selection

	selectDpad := !bits.Test(4, j.selection)
	selectActions := !bits.Test(5, j.selection)

	switch {
	case selectDpad && selectActions:
		result |= j.directions & j.actions & 0x0F
	case selectDpad:
		result |= j.directions & 0x0F
	case selectActions:
		result |= j.actions & 0x0F
	default:
		result |= 0x0F
	}

	return result
}

// Write keeps only the selection bits; the matrix lines are read-only.
func (j *Joypad) Write(value uint8) {
	j.selection = value & 0x30
}

// Press pulls a key's line low and raises the Joypad interrupt on the
// high-to-low transition.
func (j *Joypad) Press(key Key) {
	before := j.actions & j.directions

	if key < KeyA {
		j.directions = bits.Clear(uint8(key), j.directions)
	} else {
		j.actions = bits.Clear(uint8(key-KeyA), j.actions)
	}

	after := j.actions & j.directions
	if before&^after != 0 && j.requestIRQ != nil {
		j.requestIRQ()
	}
}

// Release lets a key's line float high again.
func (j *Joypad) Release(key Key) {
	if key < KeyA {
		j.directions = bits.Set(uint8(key), j.directions)
	} else {
		j.actions = bits.Set(uint8(key-KeyA), j.actions)
	}
}

// AnyPressed reports whether any line is currently held low. The STOP
// state exits on this condition.
func (j *Joypad) AnyPressed() bool {
	return j.actions&j.directions&0x0F != 0x0F
}
