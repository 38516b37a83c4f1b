package ppu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GeReV/yagbe/yagbe/hwio"
)

type irqRecorder struct {
	counts map[hwio.Interrupt]int
}

func newTestPPU() (*PPU, *irqRecorder) {
	rec := &irqRecorder{counts: make(map[hwio.Interrupt]int)}
	p := New(func(src hwio.Interrupt) { rec.counts[src]++ })
	return p, rec
}

func TestModeSequence(t *testing.T) {
	p, _ := newTestPPU()

	p.Advance(oamScanDots)
	assert.Equal(t, ModeDrawing, p.Mode())

	// No sprites selected, so Drawing runs its base length.
	p.Advance(baseDrawDots)
	assert.Equal(t, ModeHBlank, p.Mode())

	p.Advance(lineDots - oamScanDots - baseDrawDots)
	assert.Equal(t, uint8(1), p.Line())
	assert.Equal(t, ModeOAMScan, p.Mode())
}

func TestSpritesStretchDrawing(t *testing.T) {
	p, _ := newTestPPU()

	// Two sprites on line 0.
	p.oam[0] = 16 // y
	p.oam[1] = 8  // x
	p.oam[4] = 16
	p.oam[5] = 40

	p.Advance(oamScanDots + baseDrawDots)
	assert.Equal(t, ModeDrawing, p.Mode(), "penalty extends the phase")

	p.Advance(2 * spriteDrawPenalty)
	assert.Equal(t, ModeHBlank, p.Mode())
}

func TestFrameTiming(t *testing.T) {
	p, rec := newTestPPU()

	p.Advance(lineDots * visibleLines)
	assert.Equal(t, ModeVBlank, p.Mode())
	assert.Equal(t, uint8(visibleLines), p.Line())
	assert.Equal(t, 1, rec.counts[hwio.IntVBlank])
	assert.Equal(t, uint64(1), p.FrameCount())

	p.Advance(lineDots * (totalLines - visibleLines))
	assert.Equal(t, uint8(0), p.Line(), "line counter wraps")
	assert.Equal(t, ModeOAMScan, p.Mode())
	assert.Equal(t, 1, rec.counts[hwio.IntVBlank], "one request per frame")
}

func TestLYCInterrupt(t *testing.T) {
	p, rec := newTestPPU()
	// LYC first: arming the source while LY=LYC=0 coincide would
	// request immediately.
	p.WriteRegister(hwio.LYC, 5)
	p.WriteRegister(hwio.STAT, 1<<statLYCSource)

	p.Advance(lineDots * 5)
	assert.Equal(t, uint8(5), p.Line())
	assert.Equal(t, 1, rec.counts[hwio.IntLCDStat])
	assert.True(t, p.ReadRegister(hwio.STAT)&0x04 != 0, "coincidence bit")

	p.Advance(lineDots)
	assert.False(t, p.ReadRegister(hwio.STAT)&0x04 != 0)
	assert.Equal(t, 1, rec.counts[hwio.IntLCDStat], "no retrigger past the match")
}

func TestHBlankSourceFiresPerLine(t *testing.T) {
	p, rec := newTestPPU()
	p.WriteRegister(hwio.STAT, 1<<statHBlankSource)

	p.Advance(lineDots * 10)
	assert.Equal(t, 10, rec.counts[hwio.IntLCDStat])
}

func TestStandingConditionBlocksNewRequests(t *testing.T) {
	// HBlank and LYC both armed with LYC=2. Lines 0 and 1 request at
	// HBlank entry, line 2 requests at its LYC match, and line 2's
	// HBlank entry is absorbed because the LYC condition still holds
	// the line high.
	p, rec := newTestPPU()
	p.WriteRegister(hwio.LYC, 2)
	p.WriteRegister(hwio.STAT, 1<<statHBlankSource|1<<statLYCSource)

	p.Advance(lineDots * 3)
	assert.Equal(t, uint8(3), p.Line())
	assert.Equal(t, 3, rec.counts[hwio.IntLCDStat])
}

func TestSTATWritePreservesHardwareBits(t *testing.T) {
	p, _ := newTestPPU()
	p.Advance(oamScanDots) // Drawing, mode bits 3

	p.WriteRegister(hwio.STAT, 0xFF)
	stat := p.ReadRegister(hwio.STAT)
	assert.Equal(t, uint8(0x80|0x78), stat&0xF8, "bit 7 and sources")
	assert.Equal(t, uint8(3), stat&0x03, "mode bits survive the write")
}

func TestLYIsReadOnly(t *testing.T) {
	p, _ := newTestPPU()
	p.Advance(lineDots * 3)

	p.WriteRegister(hwio.LY, 0)
	assert.Equal(t, uint8(3), p.ReadRegister(hwio.LY))
}

func TestVRAMContention(t *testing.T) {
	p, _ := newTestPPU()
	p.vram[0] = 0x42

	p.Advance(oamScanDots) // Drawing
	assert.Equal(t, uint8(0xFF), p.ReadVRAM(0x8000))
	p.WriteVRAM(0x8000, 0x99)

	p.Advance(baseDrawDots) // HBlank
	assert.Equal(t, uint8(0x42), p.ReadVRAM(0x8000), "blocked write was dropped")
	p.WriteVRAM(0x8000, 0x99)
	assert.Equal(t, uint8(0x99), p.ReadVRAM(0x8000))
}

func TestOAMContention(t *testing.T) {
	p, _ := newTestPPU()
	p.oam[0] = 0x42

	p.Advance(lineDots) // line 1, OAMScan
	assert.Equal(t, uint8(0xFF), p.ReadOAM(0xFE00))
	p.WriteOAM(0xFE00, 0x99)
	assert.Equal(t, uint8(0x42), p.oam[0])

	// DMA bypasses the restriction.
	p.WriteOAMEntry(0, 0x77)
	assert.Equal(t, uint8(0x77), p.oam[0])

	// VRAM is still open during OAMScan.
	p.WriteVRAM(0x8000, 0x55)
	assert.Equal(t, uint8(0x55), p.ReadVRAM(0x8000))
}

func TestDisableParksThePPU(t *testing.T) {
	p, rec := newTestPPU()
	p.Advance(lineDots*3 + oamScanDots) // line 3, Drawing

	p.WriteRegister(hwio.LCDC, 0x11) // display off
	assert.Equal(t, uint8(0), p.Line())
	assert.Equal(t, ModeHBlank, p.Mode())

	// The clock is stopped and memory is open.
	p.Advance(lineDots * 200)
	assert.Equal(t, uint8(0), p.Line())
	p.WriteVRAM(0x8000, 0x42)
	assert.Equal(t, uint8(0x42), p.ReadVRAM(0x8000))

	before := rec.counts[hwio.IntVBlank]
	p.Advance(lineDots * totalLines)
	assert.Equal(t, before, rec.counts[hwio.IntVBlank], "no frames while off")
}

// loadTile writes a pattern row pair for every row of a tile.
func loadTile(p *PPU, index int, low, high uint8) {
	for row := 0; row < 8; row++ {
		p.vram[index*16+row*2] = low
		p.vram[index*16+row*2+1] = high
	}
}

func TestBackgroundRendering(t *testing.T) {
	p, _ := newTestPPU()
	p.bgp = 0xE4 // identity palette: shade = index

	// Tile 1: the classic two-plane example row, indices 0 2 3 3 3 3 2 0.
	loadTile(p, 1, 0x3C, 0x7E)
	p.vram[hwio.TileMap0-0x8000] = 1 // top-left map cell

	p.ly = 0
	p.renderLine()

	want := []Shade{0, 2, 3, 3, 3, 3, 2, 0}
	for x, shade := range want {
		assert.Equal(t, shade, p.work.At(x, 0), "x=%d", x)
	}
	assert.Equal(t, Shade(0), p.work.At(8, 0), "map cell 1 is tile 0, blank")
}

func TestBackgroundScrollWraps(t *testing.T) {
	p, _ := newTestPPU()
	p.bgp = 0xE4
	loadTile(p, 1, 0xFF, 0x00) // solid color 1
	// Bottom-right map cell.
	p.vram[hwio.TileMap0-0x8000+31+31*32] = 1

	p.scx = 248 // x=0 lands on map column 31
	p.scy = 248 // line 0 lands on map row 31
	p.ly = 0
	p.renderLine()

	assert.Equal(t, Shade(1), p.work.At(0, 0))
	assert.Equal(t, Shade(0), p.work.At(8, 0), "wrapped back to column 0")
}

func TestSignedTileAddressing(t *testing.T) {
	p, _ := newTestPPU()
	p.lcdc &^= 1 << lcdcTileData // signed mode
	p.bgp = 0xE4

	// Tile index 0xFF resolves to 0x9000 - 16 = 0x8FF0.
	p.vram[0x0FF0] = 0xFF
	p.vram[0x0FF1] = 0x00
	p.vram[hwio.TileMap0-0x8000] = 0xFF

	p.ly = 0
	p.renderLine()
	assert.Equal(t, Shade(1), p.work.At(0, 0))
}

func TestWindowOverlay(t *testing.T) {
	p, _ := newTestPPU()
	p.bgp = 0xE4
	p.lcdc |= 1<<lcdcWindowEnable | 1<<lcdcWindowTileMap

	loadTile(p, 2, 0xFF, 0xFF) // solid color 3
	for i := 0; i < 32*32; i++ {
		p.vram[hwio.TileMap1-0x8000+uint16(i)] = 2
	}

	p.wy = 0
	p.wx = 87 // window starts at x=80

	p.ly = 0
	p.renderLine()
	assert.Equal(t, Shade(0), p.work.At(79, 0), "background left of the window")
	assert.Equal(t, Shade(3), p.work.At(80, 0))
	assert.Equal(t, 1, p.windowLine, "internal counter advanced")
}

func TestWindowLineCounterSkipsHiddenLines(t *testing.T) {
	p, _ := newTestPPU()
	p.lcdc |= 1 << lcdcWindowEnable
	p.wy = 10
	p.wx = 7

	p.ly = 5
	p.renderLine()
	assert.Equal(t, 0, p.windowLine, "window not yet visible")

	p.ly = 10
	p.renderLine()
	assert.Equal(t, 1, p.windowLine)
}

func TestSpriteRendering(t *testing.T) {
	p, _ := newTestPPU()
	p.lcdc |= 1 << lcdcOBJEnable
	p.bgp = 0xE4
	p.obp0 = 0xE4
	loadTile(p, 1, 0x3C, 0x7E)

	// One sprite at screen (0, 0).
	p.oam[0] = 16
	p.oam[1] = 8
	p.oam[2] = 1

	p.ly = 0
	p.scanSprites(0)
	require.Len(t, p.lineSprites, 1)
	p.renderLine()

	assert.Equal(t, Shade(0), p.work.At(0, 0), "index 0 is transparent")
	assert.Equal(t, Shade(2), p.work.At(1, 0))
	assert.Equal(t, Shade(3), p.work.At(2, 0))
}

func TestSpriteBehindBackground(t *testing.T) {
	p, _ := newTestPPU()
	p.lcdc |= 1 << lcdcOBJEnable
	p.bgp = 0xE4
	p.obp0 = 0xE4

	loadTile(p, 1, 0xF0, 0x00) // bg tile, color 1 left half, 0 right
	loadTile(p, 2, 0x00, 0xFF) // sprite tile, solid color 2
	p.vram[hwio.TileMap0-0x8000] = 1

	p.oam[0] = 16
	p.oam[1] = 8
	p.oam[2] = 2
	p.oam[3] = 0x80 // behind background

	p.ly = 0
	p.scanSprites(0)
	p.renderLine()

	assert.Equal(t, Shade(1), p.work.At(0, 0), "nonzero background wins")
	assert.Equal(t, Shade(2), p.work.At(4, 0), "bg index 0 lets the sprite through")
}

func TestStaticSceneFullFrame(t *testing.T) {
	// One full frame of a fixed scene with all three layers active,
	// compared pixel for pixel against the committed reference art:
	// a solid color-1 background, the window covering the lower-right
	// corner, a sprite in the open and a behind-background sprite
	// hidden by the solid layer.
	p, _ := newTestPPU()
	p.lcdc |= 1<<lcdcOBJEnable | 1<<lcdcWindowEnable | 1<<lcdcWindowTileMap
	p.bgp = 0xE4
	p.obp0 = 0xE4

	loadTile(p, 1, 0xFF, 0x00) // solid color 1
	loadTile(p, 2, 0xFF, 0xFF) // solid color 3
	loadTile(p, 3, 0x00, 0xFF) // solid color 2
	for i := 0; i < 32*32; i++ {
		p.vram[hwio.TileMap0-0x8000+uint16(i)] = 1
		p.vram[hwio.TileMap1-0x8000+uint16(i)] = 2
	}

	// Sprite at screen (8, 8).
	copy(p.oam[0:], []uint8{24, 16, 3, 0x00})
	// Behind-background sprite at (40, 80): everything under it is
	// nonzero background, so it must not appear.
	copy(p.oam[4:], []uint8{96, 48, 3, 0x80})

	p.wy = 100
	p.wx = 87 // window covers x 80-159 on lines 100-143

	p.Advance(lineDots * totalLines)
	require.Equal(t, uint64(1), p.FrameCount())

	golden, err := os.ReadFile(filepath.Join("testdata", "static_scene.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(golden), p.Frame().Text())
}

func TestSpritePriorityLowestX(t *testing.T) {
	p, _ := newTestPPU()
	p.lcdc |= 1 << lcdcOBJEnable
	p.obp0 = 0xE4
	p.obp1 = 0x00 // everything maps to shade 0

	loadTile(p, 1, 0xFF, 0x00)

	// Later table entry, lower X: it wins the overlap.
	p.oam[0] = 16
	p.oam[1] = 12
	p.oam[2] = 1
	p.oam[3] = 0x10 // OBP1

	p.oam[4] = 16
	p.oam[5] = 8
	p.oam[6] = 1

	p.ly = 0
	p.scanSprites(0)
	p.renderLine()

	assert.Equal(t, Shade(1), p.work.At(4, 0), "lower X uses OBP0")
}

func TestSpriteSelectionLimit(t *testing.T) {
	p, _ := newTestPPU()

	for i := 0; i < 12; i++ {
		p.oam[i*4] = 16
		p.oam[i*4+1] = uint8(8 + i*8)
	}

	selected := p.scanSprites(0)
	assert.Len(t, selected, maxSpritesPerLine)
	assert.Equal(t, 0, selected[0].oamIndex, "table order, not X order")
}

func TestTallSpriteMode(t *testing.T) {
	p, _ := newTestPPU()
	p.obp0 = 0xE4
	p.lcdc |= 1<<lcdcOBJSize | 1<<lcdcOBJEnable

	loadTile(p, 2, 0xFF, 0x00) // top half, color 1
	loadTile(p, 3, 0x00, 0xFF) // bottom half, color 2

	p.oam[0] = 16
	p.oam[1] = 8
	p.oam[2] = 3 // low bit ignored in 8x16 mode

	p.ly = 12 // row 12 falls in the bottom tile
	p.scanSprites(12)
	require.Len(t, p.lineSprites, 1)
	p.renderLine()

	assert.Equal(t, Shade(2), p.work.At(0, 12))
}
