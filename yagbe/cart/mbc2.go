package cart

// MBC2 carries up to 16 ROM banks and a built-in 512x4-bit RAM. Bit 8 of
// the write address selects between RAM enable and ROM bank commands in
// the 0x0000-0x3FFF range. Only the low nibble of each RAM cell is
// backed; the upper nibble reads as 1s.
type MBC2 struct {
	rom []uint8
	ram []uint8 // 512 half-byte cells

	romBank     int
	ramEnabled  bool
	romBankMask int
}

func newMBC2(rom []uint8, romBanks int) *MBC2 {
	return &MBC2{
		rom:         rom,
		ram:         make([]uint8, 512),
		romBank:     1,
		romBankMask: romBanks - 1,
	}
}

func (m *MBC2) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return romByte(m.rom, addr)
	case addr < 0x8000:
		return m.rom[romOffset(m.rom, m.romBank&m.romBankMask, addr)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return disabledRAMValue
		}
		// RAM repeats every 512 cells across the whole window.
		return 0xF0 | m.ram[addr&0x01FF]
	}
	return disabledRAMValue
}

func (m *MBC2) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x4000:
		if addr&0x0100 == 0 {
			m.ramEnabled = value&0x0F == 0x0A
		} else {
			bank := int(value & 0x0F)
			if bank == 0 {
				bank = 1
			}
			m.romBank = bank
		}
	case addr >= 0xA000 && addr <= 0xBFFF:
		if m.ramEnabled {
			m.ram[addr&0x01FF] = value & 0x0F
		}
	}
}

func (m *MBC2) RAM() []byte { return m.ram }
