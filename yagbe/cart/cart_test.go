package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildROM creates a ROM image with a valid header. Each 16KB bank is
// filled with its own bank number for easy assertions.
func buildROM(t *testing.T, typeByte, romSizeByte, ramSizeByte uint8) []byte {
	t.Helper()

	banks := 2 << romSizeByte
	rom := make([]byte, banks*romBankSize)
	for i := range rom {
		rom[i] = uint8(i / romBankSize)
	}

	copy(rom[titleOffset:], "BANKTEST")
	rom[typeOffset] = typeByte
	rom[romSizeOffset] = romSizeByte
	rom[ramSizeOffset] = ramSizeByte

	var sum uint8
	for i := titleOffset; i < headerChecksumOffset; i++ {
		sum = sum - rom[i] - 1
	}
	rom[headerChecksumOffset] = sum

	return rom
}

func TestLoadHeader(t *testing.T) {
	rom := buildROM(t, 0x03, 0x01, 0x03) // MBC1+RAM+battery, 4 ROM banks, 4 RAM banks

	c, err := Load(rom)
	require.NoError(t, err)

	assert.Equal(t, "BANKTEST", c.Title())
	assert.Equal(t, KindMBC1, c.Kind())
	assert.True(t, c.HasBattery())
}

func TestLoadRejectsBadImages(t *testing.T) {
	_, err := Load(make([]byte, 0x100))
	assert.ErrorIs(t, err, ErrROMTooSmall)

	rom := buildROM(t, 0xFC, 0x00, 0x00) // pocket camera, unsupported
	_, err = Load(rom)
	assert.Error(t, err)
}

func TestMBC1ROMBanking(t *testing.T) {
	rom := buildROM(t, 0x01, 0x01, 0x00) // 4 banks
	c, err := Load(rom)
	require.NoError(t, err)

	t.Run("fixed bank 0", func(t *testing.T) {
		assert.Equal(t, uint8(0), c.Read(0x0000))
		assert.Equal(t, uint8(0), c.Read(0x3FFF))
	})

	t.Run("defaults to bank 1", func(t *testing.T) {
		assert.Equal(t, uint8(1), c.Read(0x4000))
	})

	t.Run("switches banks", func(t *testing.T) {
		c.Write(0x2000, 2)
		assert.Equal(t, uint8(2), c.Read(0x4000))
		c.Write(0x2000, 3)
		assert.Equal(t, uint8(3), c.Read(0x4000))
	})

	t.Run("bank 0 select maps to bank 1", func(t *testing.T) {
		c.Write(0x2000, 0)
		assert.Equal(t, uint8(1), c.Read(0x4000))
	})

	t.Run("out of range bank wraps into available banks", func(t *testing.T) {
		c.Write(0x2000, 0x1F) // 31 on a 4-bank image -> 31 & 3 = 3
		assert.Equal(t, uint8(3), c.Read(0x4000))
	})
}

func TestMBC1RAMEnable(t *testing.T) {
	rom := buildROM(t, 0x02, 0x00, 0x03)
	c, err := Load(rom)
	require.NoError(t, err)

	// Disabled RAM reads the fill value and drops writes.
	assert.Equal(t, uint8(0xFF), c.Read(0xA000))
	c.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0xFF), c.Read(0xA000))

	c.Write(0x0000, 0x0A)
	c.Write(0xA000, 0x42)
	assert.Equal(t, uint8(0x42), c.Read(0xA000))

	c.Write(0x0000, 0x00)
	assert.Equal(t, uint8(0xFF), c.Read(0xA000))
}

func TestMBC1RAMBanking(t *testing.T) {
	rom := buildROM(t, 0x03, 0x00, 0x03)
	c, err := Load(rom)
	require.NoError(t, err)

	c.Write(0x0000, 0x0A) // enable RAM
	c.Write(0x6000, 0x01) // RAM banking mode

	for bank := uint8(0); bank < 4; bank++ {
		c.Write(0x4000, bank)
		c.Write(0xA000, 0x10+bank)
	}
	for bank := uint8(0); bank < 4; bank++ {
		c.Write(0x4000, bank)
		assert.Equal(t, uint8(0x10+bank), c.Read(0xA000))
	}
}

func TestMBC2BuiltInRAM(t *testing.T) {
	rom := buildROM(t, 0x06, 0x01, 0x00)
	c, err := Load(rom)
	require.NoError(t, err)

	c.Write(0x0000, 0x0A) // bit 8 clear: RAM enable command
	c.Write(0xA000, 0xFF)

	// Only the low nibble is backed.
	assert.Equal(t, uint8(0xFF), c.Read(0xA000))
	c.Write(0xA001, 0x05)
	assert.Equal(t, uint8(0xF5), c.Read(0xA001))

	// ROM bank command needs bit 8 of the address set.
	c.Write(0x2100, 2)
	assert.Equal(t, uint8(2), c.Read(0x4000))
}

func TestMBC5NineBitBank(t *testing.T) {
	rom := buildROM(t, 0x19, 0x03, 0x00) // 16 banks
	c, err := Load(rom)
	require.NoError(t, err)

	c.Write(0x2000, 0x0F)
	assert.Equal(t, uint8(15), c.Read(0x4000))

	// Upper bit wraps into the mask on a 16-bank image: bank 271 & 15 = 15.
	c.Write(0x3000, 0x01)
	assert.Equal(t, uint8(15), c.Read(0x4000))

	// Unlike MBC1, bank 0 is selectable.
	c.Write(0x3000, 0x00)
	c.Write(0x2000, 0x00)
	assert.Equal(t, uint8(0), c.Read(0x4000))
}

func TestTruncatedImageReadsAreTotal(t *testing.T) {
	// Load only demands a complete header, so an image can be shorter
	// than the fixed ROM window. Reads past the image end return the
	// disabled-bus fill.
	for _, tc := range []struct {
		name     string
		typeByte uint8
	}{
		{"ROM only", 0x00},
		{"MBC1", 0x01},
		{"MBC2", 0x05},
		{"MBC3", 0x11},
		{"MBC5", 0x19},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rom := buildROM(t, tc.typeByte, 0x00, 0x00)[:headerEnd]
			c, err := Load(rom)
			require.NoError(t, err)

			assert.Equal(t, uint8(0), c.Read(0x0100))
			assert.Equal(t, uint8(0xFF), c.Read(uint16(headerEnd)))
			assert.Equal(t, uint8(0xFF), c.Read(0x3FFF))
			assert.NotPanics(t, func() {
				for addr := 0; addr < 0x8000; addr++ {
					c.Read(uint16(addr))
				}
			})
		})
	}
}

func TestRAMDumpRestore(t *testing.T) {
	rom := buildROM(t, 0x03, 0x00, 0x03)
	c, err := Load(rom)
	require.NoError(t, err)

	c.Write(0x0000, 0x0A)
	c.Write(0xA000, 0xAB)

	dump := c.DumpRAM()
	assert.Equal(t, uint8(0xAB), dump[0])

	c.Write(0xA000, 0x00)
	c.RestoreRAM(dump)
	assert.Equal(t, uint8(0xAB), c.Read(0xA000))
}
