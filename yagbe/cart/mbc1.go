package cart

// region is the physical target a cartridge address resolves to.
type region uint8

const (
	regionROMFixed region = iota
	regionROMBanked
	regionRAMBanked
	regionNone
)

// MBC1 is the most common bank controller: up to 125 ROM banks and 4 RAM
// banks. The lower 5 bits of the bank register select the ROM bank (a
// value of 0 selects bank 1, a hardware quirk), two extra bits select
// either the upper ROM bank bits or the RAM bank depending on the
// banking mode flag.
type MBC1 struct {
	rom []uint8
	ram []uint8

	romBank     int
	ramBank     int
	ramEnabled  bool
	bankingMode uint8

	romBankMask int
}

func newMBC1(rom []uint8, romBanks, ramBanks int) *MBC1 {
	return &MBC1{
		rom:         rom,
		ram:         make([]uint8, ramBanks*ramBankSize),
		romBank:     1,
		romBankMask: romBanks - 1,
	}
}

// translate resolves an address in the cartridge windows into a physical
// offset and the region it belongs to. It is total: addresses outside
// the cartridge windows resolve to regionNone.
func (m *MBC1) translate(addr uint16) (uint32, region) {
	switch {
	case addr < 0x4000:
		if int(addr) >= len(m.rom) {
			return 0, regionNone
		}
		return uint32(addr), regionROMFixed
	case addr < 0x8000:
		return romOffset(m.rom, m.effectiveROMBank(), addr), regionROMBanked
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0, regionNone
		}
		bank := 0
		if m.bankingMode == 1 {
			bank = m.ramBank
		}
		return ramOffset(m.ram, bank, addr), regionRAMBanked
	}
	return 0, regionNone
}

// effectiveROMBank applies the bank-0 remap and masks the combined bank
// index into the available bank count.
func (m *MBC1) effectiveROMBank() int {
	bank := m.romBank
	if bank&0x1F == 0 {
		bank |= 1
	}
	return bank & m.romBankMask
}

func (m *MBC1) Read(addr uint16) uint8 {
	offset, r := m.translate(addr)
	switch r {
	case regionROMFixed, regionROMBanked:
		return m.rom[offset]
	case regionRAMBanked:
		return m.ram[offset]
	}
	return disabledRAMValue
}

func (m *MBC1) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case addr < 0x4000:
		m.romBank = m.romBank&0x60 | int(value&0x1F)
	case addr < 0x6000:
		if m.bankingMode == 0 {
			m.romBank = m.romBank&0x1F | int(value&0x03)<<5
		} else {
			m.ramBank = int(value & 0x03)
		}
	case addr < 0x8000:
		m.bankingMode = value & 0x01
	case addr >= 0xA000 && addr <= 0xBFFF:
		if offset, r := m.translate(addr); r == regionRAMBanked {
			m.ram[offset] = value
		}
	}
}

func (m *MBC1) RAM() []byte { return m.ram }
