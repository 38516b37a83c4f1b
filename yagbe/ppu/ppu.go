// Package ppu implements the pixel processing unit: the per-scanline
// mode state machine, the STAT/LY comparison machinery, and scanline
// compositing of the background, window and sprite layers into a
// double-buffered frame.
package ppu

import (
	"github.com/GeReV/yagbe/yagbe/bits"
	"github.com/GeReV/yagbe/yagbe/hwio"
)

// Mode is the PPU's current phase within a scanline.
type Mode uint8

const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAMScan
	ModeDrawing
)

// Line timing in dots. Every visible line runs
// OAMScan -> Drawing -> HBlank in exactly lineDots; Drawing stretches
// with the number of selected sprites and HBlank absorbs the remainder.
const (
	oamScanDots  = 80
	baseDrawDots = 172
	lineDots     = 456

	spriteDrawPenalty = 6

	visibleLines = FrameHeight
	totalLines   = 154
)

// LCDC bit positions.
const (
	lcdcBGEnable      = 0
	lcdcOBJEnable     = 1
	lcdcOBJSize       = 2
	lcdcBGTileMap     = 3
	lcdcTileData      = 4
	lcdcWindowEnable  = 5
	lcdcWindowTileMap = 6
	lcdcDisplayEnable = 7
)

// STAT interrupt source bits.
const (
	statHBlankSource = 3
	statVBlankSource = 4
	statOAMSource    = 5
	statLYCSource    = 6
)

// PPU owns video RAM, the object attribute table, the LCD register
// block and the frame buffers. All CPU access arrives through the bus,
// which delegates to the Read*/Write* methods here so that the mode
// based access restrictions live next to the mode machine itself.
type PPU struct {
	vram [0x2000]uint8
	oam  [0xA0]uint8

	lcdc uint8
	stat uint8 // bits 3-6 writable, 0-2 hardware, 7 unwired
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	dot        int // dots elapsed within the current line
	drawDots   int // Drawing duration for the current line
	windowLine int // window-internal line counter
	statLine   bool

	lineSprites []sprite

	work       FrameBuffer
	shown      FrameBuffer
	frameCount uint64

	requestIRQ func(hwio.Interrupt)
}

// New creates a PPU in the post-boot-ROM state. requestIRQ is wired to
// the interrupt controller.
func New(requestIRQ func(hwio.Interrupt)) *PPU {
	return &PPU{
		lcdc:        0x91,
		stat:        0x85,
		bgp:         0xFC,
		obp0:        0xFF,
		obp1:        0xFF,
		drawDots:    baseDrawDots,
		lineSprites: make([]sprite, 0, maxSpritesPerLine),
		requestIRQ:  requestIRQ,
	}
}

// Mode returns the current phase from the STAT mode bits.
func (p *PPU) Mode() Mode {
	return Mode(p.stat & 0x03)
}

// Line returns the current scanline index (0-153).
func (p *PPU) Line() uint8 {
	return p.ly
}

// Frame returns the last completed frame. The content only changes at
// VBlank entry; repeated reads in between are identical.
func (p *PPU) Frame() *FrameBuffer {
	return &p.shown
}

// FrameCount returns the number of completed frames, i.e. VBlank
// entries.
func (p *PPU) FrameCount() uint64 {
	return p.frameCount
}

// Advance moves the mode machine forward by the given number of dots
// (one dot per T-cycle in this core's clocking).
func (p *PPU) Advance(cycles int) {
	if !bits.Test(lcdcDisplayEnable, p.lcdc) {
		return
	}
	for i := 0; i < cycles; i++ {
		p.stepDot()
	}
}

func (p *PPU) stepDot() {
	p.dot++

	if p.ly < visibleLines {
		switch p.dot {
		case oamScanDots:
			p.scanSprites(int(p.ly))
			p.drawDots = baseDrawDots + spriteDrawPenalty*len(p.lineSprites)
			p.setMode(ModeDrawing)
		case oamScanDots + p.drawDots:
			p.renderLine()
			p.setMode(ModeHBlank)
		}
	}

	if p.dot == lineDots {
		p.dot = 0
		p.advanceLine()
	}
}

func (p *PPU) advanceLine() {
	p.ly++

	switch {
	case p.ly == visibleLines:
		p.shown = p.work
		p.frameCount++
		p.setMode(ModeVBlank)
		p.requestIRQ(hwio.IntVBlank)
	case p.ly == totalLines:
		p.ly = 0
		p.windowLine = 0
		p.setMode(ModeOAMScan)
	case p.ly < visibleLines:
		p.setMode(ModeOAMScan)
	}

	p.compareLine()
}

// setMode updates the STAT mode bits and re-evaluates the STAT
// interrupt line.
func (p *PPU) setMode(mode Mode) {
	p.stat = p.stat&0xFC | uint8(mode)
	p.updateStatLine()
}

// compareLine refreshes the LY=LYC coincidence bit and the STAT line.
func (p *PPU) compareLine() {
	if p.ly == p.lyc {
		p.stat = bits.Set(2, p.stat)
	} else {
		p.stat = bits.Clear(2, p.stat)
	}
	p.updateStatLine()
}

// updateStatLine recomputes the combined STAT condition line and raises
// the LCD-STAT interrupt on its rising edge only. Coinciding sources
// therefore produce a single request, and no new request can fire until
// every source has gone low again.
func (p *PPU) updateStatLine() {
	var line bool

	switch p.Mode() {
	case ModeHBlank:
		line = bits.Test(statHBlankSource, p.stat)
	case ModeVBlank:
		// The OAM source also participates at VBlank entry.
		line = bits.Test(statVBlankSource, p.stat) || bits.Test(statOAMSource, p.stat)
	case ModeOAMScan:
		line = bits.Test(statOAMSource, p.stat)
	}

	if bits.Test(2, p.stat) && bits.Test(statLYCSource, p.stat) {
		line = true
	}

	if line && !p.statLine {
		p.requestIRQ(hwio.IntLCDStat)
	}
	p.statLine = line
}

// ReadRegister handles CPU reads of the LCD register block.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case hwio.LCDC:
		return p.lcdc
	case hwio.STAT:
		return p.stat | 0x80
	case hwio.SCY:
		return p.scy
	case hwio.SCX:
		return p.scx
	case hwio.LY:
		return p.ly
	case hwio.LYC:
		return p.lyc
	case hwio.BGP:
		return p.bgp
	case hwio.OBP0:
		return p.obp0
	case hwio.OBP1:
		return p.obp1
	case hwio.WY:
		return p.wy
	case hwio.WX:
		return p.wx
	}
	return 0xFF
}

// WriteRegister handles CPU writes to the LCD register block, masking
// the hardware-owned bits.
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr {
	case hwio.LCDC:
		wasEnabled := bits.Test(lcdcDisplayEnable, p.lcdc)
		p.lcdc = value
		if wasEnabled && !bits.Test(lcdcDisplayEnable, value) {
			p.disableDisplay()
		}
	case hwio.STAT:
		p.stat = p.stat&0x07 | value&0x78
		p.updateStatLine()
	case hwio.SCY:
		p.scy = value
	case hwio.SCX:
		p.scx = value
	case hwio.LY:
		// Read-only.
	case hwio.LYC:
		p.lyc = value
		p.compareLine()
	case hwio.BGP:
		p.bgp = value
	case hwio.OBP0:
		p.obp0 = value
	case hwio.OBP1:
		p.obp1 = value
	case hwio.WY:
		p.wy = value
	case hwio.WX:
		p.wx = value
	}
}

// disableDisplay parks the PPU: line 0, HBlank mode, dot counter
// cleared. Access restrictions lift while the display is off.
func (p *PPU) disableDisplay() {
	p.ly = 0
	p.dot = 0
	p.windowLine = 0
	p.stat &= 0xFC
	p.statLine = false
}

// blocked reports whether the PPU currently has exclusive access to the
// given memory. Contended CPU reads see 0xFF and writes are dropped.
func (p *PPU) vramBlocked() bool {
	return bits.Test(lcdcDisplayEnable, p.lcdc) && p.Mode() == ModeDrawing
}

func (p *PPU) oamBlocked() bool {
	if !bits.Test(lcdcDisplayEnable, p.lcdc) {
		return false
	}
	mode := p.Mode()
	return mode == ModeOAMScan || mode == ModeDrawing
}

// ReadVRAM handles CPU reads of 0x8000-0x9FFF.
func (p *PPU) ReadVRAM(addr uint16) uint8 {
	if p.vramBlocked() {
		return 0xFF
	}
	return p.vram[addr-0x8000]
}

// WriteVRAM handles CPU writes to 0x8000-0x9FFF.
func (p *PPU) WriteVRAM(addr uint16, value uint8) {
	if p.vramBlocked() {
		return
	}
	p.vram[addr-0x8000] = value
}

// ReadVRAMDirect bypasses contention; only the DMA engine uses it.
func (p *PPU) ReadVRAMDirect(addr uint16) uint8 {
	return p.vram[addr-0x8000]
}

// ReadOAM handles CPU reads of 0xFE00-0xFE9F.
func (p *PPU) ReadOAM(addr uint16) uint8 {
	if p.oamBlocked() {
		return 0xFF
	}
	return p.oam[addr-0xFE00]
}

// WriteOAM handles CPU writes to 0xFE00-0xFE9F.
func (p *PPU) WriteOAM(addr uint16, value uint8) {
	if p.oamBlocked() {
		return
	}
	p.oam[addr-0xFE00] = value
}

// WriteOAMEntry is the DMA fast path: it bypasses the contention rules.
func (p *PPU) WriteOAMEntry(index uint8, value uint8) {
	p.oam[index] = value
}
