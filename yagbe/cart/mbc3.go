package cart

// MBC3 carries up to 128 ROM banks and 4 RAM banks. The RAM bank
// register doubles as an RTC register selector (0x08-0x0C); the clock
// registers are kept as inert storage here since the core has no wall
// clock.
type MBC3 struct {
	rom []uint8
	ram []uint8
	rtc [5]uint8

	romBank     int
	ramBank     int
	ramEnabled  bool
	romBankMask int
}

func newMBC3(rom []uint8, romBanks, ramBanks int) *MBC3 {
	return &MBC3{
		rom:         rom,
		ram:         make([]uint8, ramBanks*ramBankSize),
		romBank:     1,
		romBankMask: romBanks - 1,
	}
}

func (m *MBC3) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return romByte(m.rom, addr)
	case addr < 0x8000:
		return m.rom[romOffset(m.rom, m.romBank&m.romBankMask, addr)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return disabledRAMValue
		}
		switch {
		case m.ramBank <= 0x03 && len(m.ram) > 0:
			return m.ram[ramOffset(m.ram, m.ramBank, addr)]
		case m.ramBank >= 0x08 && m.ramBank <= 0x0C:
			return m.rtc[m.ramBank-0x08]
		}
		return disabledRAMValue
	}
	return disabledRAMValue
}

func (m *MBC3) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x4000:
		bank := int(value & 0x7F)
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr < 0x6000:
		m.ramBank = int(value)
	case addr < 0x8000:
		// RTC latch command, a no-op without a clock source.
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return
		}
		switch {
		case m.ramBank <= 0x03 && len(m.ram) > 0:
			m.ram[ramOffset(m.ram, m.ramBank, addr)] = value
		case m.ramBank >= 0x08 && m.ramBank <= 0x0C:
			m.rtc[m.ramBank-0x08] = value
		}
	}
}

func (m *MBC3) RAM() []byte { return m.ram }
