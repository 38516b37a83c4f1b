// Package cart models the cartridge side of the bus: header decoding and
// the bank controller variants that remap ROM/RAM windows into the
// address space.
package cart

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
)

// Header field offsets.
const (
	titleOffset          = 0x0134
	titleLength          = 16
	typeOffset           = 0x0147
	romSizeOffset        = 0x0148
	ramSizeOffset        = 0x0149
	versionOffset        = 0x014C
	headerChecksumOffset = 0x014D

	headerEnd = 0x0150
)

// ErrROMTooSmall is returned when the image cannot contain a header.
var ErrROMTooSmall = errors.New("cart: ROM image smaller than header")

// Kind identifies the bank controller variant a cartridge carries,
// detected from the type byte at 0x0147.
type Kind uint8

const (
	KindROMOnly Kind = iota
	KindMBC1
	KindMBC2
	KindMBC3
	KindMBC5
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindROMOnly:
		return "ROM only"
	case KindMBC1:
		return "MBC1"
	case KindMBC2:
		return "MBC2"
	case KindMBC3:
		return "MBC3"
	case KindMBC5:
		return "MBC5"
	}
	return "unknown"
}

// Cartridge owns the immutable ROM image, the decoded header and the
// active bank controller.
type Cartridge struct {
	controller Controller

	title      string
	kind       Kind
	version    uint8
	romBanks   int
	ramBanks   int
	hasBattery bool
}

// Load decodes the header of a ROM image and attaches the matching bank
// controller. The image is owned by the cartridge for its lifetime.
func Load(data []byte) (*Cartridge, error) {
	if len(data) < headerEnd {
		return nil, fmt.Errorf("%w: %d bytes", ErrROMTooSmall, len(data))
	}

	kind, hasRAM, hasBattery := decodeType(data[typeOffset])
	if kind == KindUnknown {
		return nil, fmt.Errorf("cart: unsupported controller type 0x%02X", data[typeOffset])
	}

	romBanks := 2 << data[romSizeOffset]
	ramBanks := decodeRAMBanks(data[ramSizeOffset])
	if !hasRAM {
		ramBanks = 0
	}

	c := &Cartridge{
		title:      cleanTitle(data[titleOffset : titleOffset+titleLength]),
		kind:       kind,
		version:    data[versionOffset],
		romBanks:   romBanks,
		ramBanks:   ramBanks,
		hasBattery: hasBattery,
	}

	if !verifyHeaderChecksum(data) {
		slog.Warn("cart: header checksum mismatch", "title", c.title)
	}

	switch kind {
	case KindROMOnly:
		c.controller = newROMOnly(data)
	case KindMBC1:
		c.controller = newMBC1(data, romBanks, ramBanks)
	case KindMBC2:
		c.controller = newMBC2(data, romBanks)
	case KindMBC3:
		c.controller = newMBC3(data, romBanks, ramBanks)
	case KindMBC5:
		c.controller = newMBC5(data, romBanks, ramBanks)
	}

	slog.Info("cart: loaded",
		"title", c.title,
		"controller", kind.String(),
		"rom_banks", romBanks,
		"ram_banks", ramBanks,
		"battery", hasBattery)

	return c, nil
}

// Read routes a bus read in the ROM (0x0000-0x7FFF) or external RAM
// (0xA000-0xBFFF) windows through the bank controller.
func (c *Cartridge) Read(addr uint16) uint8 {
	return c.controller.Read(addr)
}

// Write routes a bus write to the controller. Writes into the ROM window
// only have banking side effects; writes into the RAM window store data
// when RAM is enabled.
func (c *Cartridge) Write(addr uint16, value uint8) {
	c.controller.Write(addr, value)
}

// Title returns the cleaned-up header title.
func (c *Cartridge) Title() string { return c.title }

// Kind returns the detected controller variant.
func (c *Cartridge) Kind() Kind { return c.kind }

// HasBattery reports whether the cartridge declares battery-backed RAM,
// i.e. whether DumpRAM contents are worth persisting.
func (c *Cartridge) HasBattery() bool { return c.hasBattery }

// DumpRAM returns a copy of the external RAM contents for host-side
// persistence.
func (c *Cartridge) DumpRAM() []byte {
	ram := c.controller.RAM()
	out := make([]byte, len(ram))
	copy(out, ram)
	return out
}

// RestoreRAM loads previously persisted external RAM contents. Data
// beyond the controller's RAM size is ignored.
func (c *Cartridge) RestoreRAM(data []byte) {
	copy(c.controller.RAM(), data)
}

func decodeType(b uint8) (kind Kind, hasRAM, hasBattery bool) {
	switch b {
	case 0x00:
		return KindROMOnly, false, false
	case 0x08:
		return KindROMOnly, true, false
	case 0x09:
		return KindROMOnly, true, true
	case 0x01:
		return KindMBC1, false, false
	case 0x02:
		return KindMBC1, true, false
	case 0x03:
		return KindMBC1, true, true
	case 0x05:
		return KindMBC2, false, false
	case 0x06:
		return KindMBC2, false, true
	case 0x0F, 0x10:
		// RTC variants; the clock registers are inert in this core.
		return KindMBC3, b == 0x10, true
	case 0x11:
		return KindMBC3, false, false
	case 0x12:
		return KindMBC3, true, false
	case 0x13:
		return KindMBC3, true, true
	case 0x19, 0x1C:
		return KindMBC5, false, false
	case 0x1A, 0x1D:
		return KindMBC5, true, false
	case 0x1B, 0x1E:
		return KindMBC5, true, true
	}
	return KindUnknown, false, false
}

func decodeRAMBanks(b uint8) int {
	switch b {
	case 0x02:
		return 1
	case 0x03:
		return 4
	case 0x04:
		return 16
	case 0x05:
		return 8
	}
	return 0
}

// verifyHeaderChecksum recomputes the 8-bit checksum over 0x0134-0x014C.
func verifyHeaderChecksum(data []byte) bool {
	var sum uint8
	for i := titleOffset; i < headerChecksumOffset; i++ {
		sum = sum - data[i] - 1
	}
	return sum == data[headerChecksumOffset]
}

// cleanTitle strips padding and non-printable bytes from the raw title
// field.
func cleanTitle(raw []byte) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		switch {
		case r == 0:
			r = ' '
		case !unicode.IsPrint(r):
			r = '?'
		}
		runes = append(runes, r)
	}
	title := strings.TrimSpace(string(runes))
	if title == "" {
		return "(untitled)"
	}
	return title
}
