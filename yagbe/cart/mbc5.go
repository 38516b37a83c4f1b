package cart

// MBC5 carries up to 512 ROM banks (9-bit bank number split across two
// registers) and 16 RAM banks. Unlike MBC1, bank 0 can be mapped into
// the switchable window.
type MBC5 struct {
	rom []uint8
	ram []uint8

	romBank     int
	ramBank     int
	ramEnabled  bool
	romBankMask int
}

func newMBC5(rom []uint8, romBanks, ramBanks int) *MBC5 {
	return &MBC5{
		rom:         rom,
		ram:         make([]uint8, ramBanks*ramBankSize),
		romBank:     1,
		romBankMask: romBanks - 1,
	}
}

func (m *MBC5) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return romByte(m.rom, addr)
	case addr < 0x8000:
		return m.rom[romOffset(m.rom, m.romBank&m.romBankMask, addr)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return disabledRAMValue
		}
		return m.ram[ramOffset(m.ram, m.ramBank, addr)]
	}
	return disabledRAMValue
}

func (m *MBC5) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x3000:
		m.romBank = m.romBank&0x100 | int(value)
	case addr < 0x4000:
		m.romBank = m.romBank&0xFF | int(value&0x01)<<8
	case addr < 0x6000:
		m.ramBank = int(value & 0x0F)
	case addr >= 0xA000 && addr <= 0xBFFF:
		if m.ramEnabled && len(m.ram) > 0 {
			m.ram[ramOffset(m.ram, m.ramBank, addr)] = value
		}
	}
}

func (m *MBC5) RAM() []byte { return m.ram }
