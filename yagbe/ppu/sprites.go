package ppu

import "github.com/GeReV/yagbe/yagbe/bits"

// maxSpritesPerLine is the hardware limit on selected objects per
// scanline.
const maxSpritesPerLine = 10

// sprite is one decoded object attribute table entry, with screen
// coordinates already unbiased (OAM stores Y+16 and X+8).
type sprite struct {
	y, x     int
	tile     uint8
	oamIndex int

	paletteOBP1 bool
	flipX       bool
	flipY       bool
	behindBG    bool
}

// scanSprites selects the objects overlapping a scanline: the first ten
// in table order, regardless of horizontal position. This is the OAMScan
// phase of the mode machine.
func (p *PPU) scanSprites(line int) []sprite {
	height := 8
	if bits.Test(2, p.lcdc) {
		height = 16
	}

	selected := p.lineSprites[:0]
	for i := 0; i < 40 && len(selected) < maxSpritesPerLine; i++ {
		base := i * 4
		y := int(p.oam[base]) - 16
		if line < y || line >= y+height {
			continue
		}

		attrs := p.oam[base+3]
		selected = append(selected, sprite{
			y:           y,
			x:           int(p.oam[base+1]) - 8,
			tile:        p.oam[base+2],
			oamIndex:    i,
			paletteOBP1: bits.Test(4, attrs),
			flipX:       bits.Test(5, attrs),
			flipY:       bits.Test(6, attrs),
			behindBG:    bits.Test(7, attrs),
		})
	}

	p.lineSprites = selected
	return selected
}

// spritePixel returns the sprite's color index at screen position
// (x, line), before palette resolution. Index 0 is transparent.
func (p *PPU) spritePixel(s *sprite, x, line int) uint8 {
	height := 8
	if bits.Test(2, p.lcdc) {
		height = 16
	}

	row := line - s.y
	if s.flipY {
		row = height - 1 - row
	}

	tile := s.tile
	if height == 16 {
		// In 8x16 mode the low index bit is ignored; the pair forms
		// one tall object.
		tile &= 0xFE
		if row >= 8 {
			tile |= 0x01
			row -= 8
		}
	}

	col := x - s.x
	if s.flipX {
		col = 7 - col
	}

	addr := tileRowAddr(tile, row, true) // sprites always use unsigned addressing
	return rowPixel(p.vram[addr-0x8000], p.vram[addr-0x8000+1], col)
}

// compositeSprites overlays the selected sprites onto the line.
// For every screen position the winner among overlapping non-transparent
// sprite pixels is the one with the lowest X coordinate, ties broken by
// table order; a winner flagged behind-background yields to any nonzero
// background or window pixel.
func (p *PPU) compositeSprites(line int, bgIndex *[FrameWidth]uint8) {
	sprites := p.lineSprites
	if len(sprites) == 0 {
		return
	}

	for x := 0; x < FrameWidth; x++ {
		bestX := 0
		var bestColor uint8
		var best *sprite

		for i := range sprites {
			s := &sprites[i]
			if x < s.x || x >= s.x+8 {
				continue
			}
			if best != nil && s.x >= bestX {
				continue
			}
			color := p.spritePixel(s, x, line)
			if color == 0 {
				continue
			}
			best = s
			bestX = s.x
			bestColor = color
		}

		if best == nil {
			continue
		}
		if best.behindBG && bgIndex[x] != 0 {
			continue
		}

		palette := p.obp0
		if best.paletteOBP1 {
			palette = p.obp1
		}
		p.work.set(x, line, paletteShade(palette, bestColor))
	}
}
