// Package hwio defines the memory-mapped hardware register addresses of
// the DMG and the interrupt sources they raise.
package hwio

// Joypad and serial port.
const (
	// JOYP selects and reads the joypad matrix.
	JOYP uint16 = 0xFF00
	// SB holds the serial transfer data byte.
	SB uint16 = 0xFF01
	// SC controls serial transfers (bit 7 start, bit 0 clock source).
	SC uint16 = 0xFF02
)

// Timer and divider.
const (
	// DIV is the visible top byte of the free-running divider. Any write
	// clears the whole internal 16-bit counter.
	DIV uint16 = 0xFF04
	// TIMA is the timer counter; overflow requests the Timer interrupt.
	TIMA uint16 = 0xFF05
	// TMA is the value reloaded into TIMA after overflow.
	TMA uint16 = 0xFF06
	// TAC enables the timer and selects its input frequency.
	TAC uint16 = 0xFF07
)

// Interrupt registers.
const (
	// IF holds the pending interrupt flags (upper 3 bits read as 1).
	IF uint16 = 0xFF0F
	// IE enables individual interrupt sources. Top of the address space.
	IE uint16 = 0xFFFF
)

// LCD registers.
const (
	LCDC uint16 = 0xFF40 // LCD control
	STAT uint16 = 0xFF41 // LCD status; mode bits are hardware-owned
	SCY  uint16 = 0xFF42 // background scroll Y
	SCX  uint16 = 0xFF43 // background scroll X
	LY   uint16 = 0xFF44 // current scanline, read-only
	LYC  uint16 = 0xFF45 // scanline compare
	DMA  uint16 = 0xFF46 // OAM DMA trigger
	BGP  uint16 = 0xFF47 // background palette
	OBP0 uint16 = 0xFF48 // sprite palette 0
	OBP1 uint16 = 0xFF49 // sprite palette 1
	WY   uint16 = 0xFF4A // window Y position
	WX   uint16 = 0xFF4B // window X position, offset by 7
)

// Sound register range, inert storage in this core.
const (
	AudioStart uint16 = 0xFF10
	AudioEnd   uint16 = 0xFF3F
)

// VRAM and OAM regions.
const (
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	OAMStart  uint16 = 0xFE00
	OAMEnd    uint16 = 0xFE9F

	// TileMap0 and TileMap1 are the two background/window tile maps.
	TileMap0 uint16 = 0x9800
	TileMap1 uint16 = 0x9C00
)

// Interrupt identifies one of the five interrupt sources. The value is
// the bit position in IE/IF, which is also the dispatch priority
// (lower bit wins).
type Interrupt uint8

const (
	// IntVBlank fires when the PPU enters vertical blank.
	IntVBlank Interrupt = iota
	// IntLCDStat fires on enabled STAT conditions (mode entry, LY=LYC).
	IntLCDStat
	// IntTimer fires when TIMA overflows and reloads.
	IntTimer
	// IntSerial fires when a serial transfer completes.
	IntSerial
	// IntJoypad fires when a selected joypad line goes low.
	IntJoypad

	// NumInterrupts is the number of interrupt sources.
	NumInterrupts = 5
)

// Vector returns the fixed handler address for the interrupt.
// Handlers sit 8 bytes apart starting at 0x0040.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

// Mask returns the IE/IF bit mask for the interrupt.
func (i Interrupt) Mask() uint8 {
	return 1 << i
}

func (i Interrupt) String() string {
	switch i {
	case IntVBlank:
		return "vblank"
	case IntLCDStat:
		return "lcd-stat"
	case IntTimer:
		return "timer"
	case IntSerial:
		return "serial"
	case IntJoypad:
		return "joypad"
	}
	return "unknown"
}
