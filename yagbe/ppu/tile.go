package ppu

import "github.com/GeReV/yagbe/yagbe/bits"

// Tile patterns are 8x8 pixels at 2 bits per pixel, stored as two
// bit planes per row: the first byte holds bit 0 of each pixel, the
// second bit 1. Bit 7 is the leftmost pixel.
//
//	Low  (0x3C): 0 0 1 1 1 1 0 0
//	High (0x7E): 0 1 1 1 1 1 1 0
//	Color:       0 2 3 3 3 3 2 0
//
// A full tile is 16 bytes. Which VRAM address a tile index resolves to
// depends on the addressing mode in LCDC bit 4.

// tileRowAddr returns the VRAM address of a tile pattern row.
// In unsigned mode indices 0-255 address from 0x8000; in signed mode
// the index is two's complement around 0x9000.
func tileRowAddr(index uint8, row int, unsignedMode bool) uint16 {
	var base uint16
	if unsignedMode {
		base = 0x8000 + uint16(index)*16
	} else {
		base = uint16(0x9000 + int(int8(index))*16)
	}
	return base + uint16(row)*2
}

// rowPixel extracts the 2-bit color index of pixel x (0 = leftmost)
// from a row's two bit-plane bytes.
func rowPixel(low, high uint8, x int) uint8 {
	b := uint8(7 - x)
	return bits.Value(b, low) | bits.Value(b, high)<<1
}

// paletteShade resolves a color index through a palette register:
// each index occupies two bits, index 0 in the low bits.
func paletteShade(palette, index uint8) Shade {
	return Shade(palette >> (index * 2) & 3)
}
