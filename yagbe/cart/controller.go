package cart

// Bank window sizes.
const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// disabledRAMValue is what the RAM window reads as while RAM is disabled
// or absent; the matching writes are dropped.
const disabledRAMValue = 0xFF

// Controller is the bank controller contract. Read and Write cover the
// ROM window (0x0000-0x7FFF, where writes are bank-select commands) and
// the external RAM window (0xA000-0xBFFF). Out-of-range bank selects are
// masked into the available bank count, never rejected, matching the
// hardware wraparound.
type Controller interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)

	// RAM exposes the backing external RAM wholesale so the host can
	// persist and restore battery saves.
	RAM() []byte
}

// romOffset translates a ROM-window address and bank index into a
// physical offset, wrapping the bank into the image size.
func romOffset(rom []byte, bank int, addr uint16) uint32 {
	offset := uint32(bank)*romBankSize + uint32(addr-romBankSize)
	if offset >= uint32(len(rom)) {
		offset %= uint32(len(rom))
	}
	return offset
}

// romByte reads the ROM image at a physical offset, tolerating images
// shorter than the window: reads past the image end return the
// disabled-bus fill.
func romByte(rom []byte, addr uint16) uint8 {
	if int(addr) < len(rom) {
		return rom[addr]
	}
	return disabledRAMValue
}

// ramOffset translates a RAM-window address and bank index into a
// physical offset, wrapping the bank into the allocated RAM.
func ramOffset(ram []byte, bank int, addr uint16) uint32 {
	offset := uint32(bank)*ramBankSize + uint32(addr-0xA000)
	if offset >= uint32(len(ram)) {
		offset %= uint32(len(ram))
	}
	return offset
}

// ROMOnly is the controller for small cartridges with no banking
// hardware: the full image sits at 0x0000-0x7FFF and writes to the ROM
// window do nothing. Optional static RAM maps at 0xA000-0xBFFF.
type ROMOnly struct {
	rom []uint8
	ram []uint8
}

func newROMOnly(rom []uint8) *ROMOnly {
	return &ROMOnly{
		rom: rom,
		ram: make([]uint8, ramBankSize),
	}
}

func (m *ROMOnly) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return romByte(m.rom, addr)
	case addr >= 0xA000 && addr <= 0xBFFF:
		return m.ram[addr-0xA000]
	}
	return disabledRAMValue
}

func (m *ROMOnly) Write(addr uint16, value uint8) {
	if addr >= 0xA000 && addr <= 0xBFFF {
		m.ram[addr-0xA000] = value
	}
}

func (m *ROMOnly) RAM() []byte { return m.ram }
