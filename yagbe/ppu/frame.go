package ppu

import "strings"

// Screen dimensions in pixels.
const (
	FrameWidth  = 160
	FrameHeight = 144
)

// Shade is a final 2-bit pixel value after palette resolution:
// 0 is lightest, 3 is darkest. Mapping shades to actual colors is the
// display shell's job.
type Shade uint8

// FrameBuffer is one completed 160x144 frame. The PPU renders into a
// working buffer and publishes a copy at VBlank entry, so a frame read
// after VBlank is stable until the next one.
type FrameBuffer struct {
	pixels [FrameWidth * FrameHeight]Shade
}

// At returns the shade at (x, y).
func (f *FrameBuffer) At(x, y int) Shade {
	return f.pixels[y*FrameWidth+x]
}

func (f *FrameBuffer) set(x, y int, s Shade) {
	f.pixels[y*FrameWidth+x] = s
}

// Pixels exposes the raw shade grid in row-major order. Callers must
// treat it as read-only.
func (f *FrameBuffer) Pixels() []Shade {
	return f.pixels[:]
}

var shadeRunes = [4]rune{'░', '▒', '▓', '█'}

// Text renders the frame as unicode block art, one rune per pixel.
// Useful for snapshots and eyeballing headless runs.
func (f *FrameBuffer) Text() string {
	var sb strings.Builder
	sb.Grow((FrameWidth + 1) * FrameHeight * 3)
	for y := 0; y < FrameHeight; y++ {
		for x := 0; x < FrameWidth; x++ {
			sb.WriteRune(shadeRunes[f.At(x, y)&3])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
