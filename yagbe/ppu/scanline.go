package ppu

import (
	"github.com/GeReV/yagbe/yagbe/bits"
	"github.com/GeReV/yagbe/yagbe/hwio"
)

// renderLine composites one scanline into the working buffer during the
// Drawing phase: background, then window, then sprites. The raw (pre
// palette) background color index is kept per pixel so sprite priority
// can be resolved against it.
func (p *PPU) renderLine() {
	line := int(p.ly)
	var bgIndex [FrameWidth]uint8

	if bits.Test(lcdcBGEnable, p.lcdc) {
		p.renderBackground(line, &bgIndex)
		p.renderWindow(line, &bgIndex)
	} else {
		// Background disabled: the line is blank (color 0, unpaletted).
		for x := 0; x < FrameWidth; x++ {
			p.work.set(x, line, 0)
		}
	}

	if bits.Test(lcdcOBJEnable, p.lcdc) {
		p.compositeSprites(line, &bgIndex)
	}
}

// renderBackground draws the scrolled 256x256 background map, wrapping
// at its edges.
func (p *PPU) renderBackground(line int, bgIndex *[FrameWidth]uint8) {
	mapBase := hwio.TileMap0
	if bits.Test(lcdcBGTileMap, p.lcdc) {
		mapBase = hwio.TileMap1
	}
	unsignedMode := bits.Test(lcdcTileData, p.lcdc)

	y := (line + int(p.scy)) & 0xFF
	row := y % 8

	for x := 0; x < FrameWidth; x++ {
		bx := (x + int(p.scx)) & 0xFF

		mapAddr := mapBase + uint16(y/8*32+bx/8)
		tile := p.vram[mapAddr-0x8000]

		addr := tileRowAddr(tile, row, unsignedMode)
		index := rowPixel(p.vram[addr-0x8000], p.vram[addr-0x8000+1], bx%8)

		bgIndex[x] = index
		p.work.set(x, line, paletteShade(p.bgp, index))
	}
}

// renderWindow overlays the window layer. The window has its own line
// counter that only advances on lines where it is actually drawn, so a
// mid-frame WY change does not skip window rows.
func (p *PPU) renderWindow(line int, bgIndex *[FrameWidth]uint8) {
	if !bits.Test(lcdcWindowEnable, p.lcdc) {
		return
	}
	if line < int(p.wy) || p.wx > 166 {
		return
	}

	startX := int(p.wx) - 7

	mapBase := hwio.TileMap0
	if bits.Test(lcdcWindowTileMap, p.lcdc) {
		mapBase = hwio.TileMap1
	}
	unsignedMode := bits.Test(lcdcTileData, p.lcdc)

	row := p.windowLine % 8
	drawn := false

	for x := max(startX, 0); x < FrameWidth; x++ {
		wx := x - startX

		mapAddr := mapBase + uint16(p.windowLine/8*32+wx/8)
		tile := p.vram[mapAddr-0x8000]

		addr := tileRowAddr(tile, row, unsignedMode)
		index := rowPixel(p.vram[addr-0x8000], p.vram[addr-0x8000+1], wx%8)

		bgIndex[x] = index
		p.work.set(x, line, paletteShade(p.bgp, index))
		drawn = true
	}

	if drawn {
		p.windowLine++
	}
}
