package frontend

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/GeReV/yagbe/yagbe"
	"github.com/GeReV/yagbe/yagbe/bus"
	"github.com/GeReV/yagbe/yagbe/ppu"
)

const frameTime = time.Second / 60

// keyHold is how long a key counts as held after its last event.
// Terminals only deliver key-down (as autorepeat), so releases have to
// be inferred from silence.
const keyHold = 150 * time.Millisecond

// Terminal renders into the controlling terminal via tcell, two pixels
// per character cell using the half-block glyph.
type Terminal struct{}

// DMG-ish green shades, lightest first.
var shadeColors = [4]tcell.Color{
	tcell.NewRGBColor(224, 248, 208),
	tcell.NewRGBColor(136, 192, 112),
	tcell.NewRGBColor(52, 104, 86),
	tcell.NewRGBColor(8, 24, 32),
}

func (t *Terminal) Run(m *yagbe.Machine) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	held := make(map[bus.Key]time.Time)
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if key, ok := mapKey(ev); ok {
					if _, holding := held[key]; !holding {
						m.Press(key)
					}
					held[key] = time.Now()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			now := time.Now()
			for key, last := range held {
				if now.Sub(last) > keyHold {
					m.Release(key)
					delete(held, key)
				}
			}

			if err := m.RunFrame(); err != nil {
				return err
			}
			drawFrame(screen, m.Frame())
			screen.Show()
		}
	}
}

func mapKey(ev *tcell.EventKey) (bus.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return bus.KeyUp, true
	case tcell.KeyDown:
		return bus.KeyDown, true
	case tcell.KeyLeft:
		return bus.KeyLeft, true
	case tcell.KeyRight:
		return bus.KeyRight, true
	case tcell.KeyEnter:
		return bus.KeyStart, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return bus.KeySelect, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z':
			return bus.KeyA, true
		case 'x', 'X':
			return bus.KeyB, true
		}
	}
	return 0, false
}

// drawFrame packs two scanlines into each terminal row: the upper
// pixel as foreground on the half-block glyph, the lower as background.
func drawFrame(screen tcell.Screen, frame *ppu.FrameBuffer) {
	for y := 0; y < ppu.FrameHeight; y += 2 {
		for x := 0; x < ppu.FrameWidth; x++ {
			style := tcell.StyleDefault.
				Foreground(shadeColors[frame.At(x, y)&3]).
				Background(shadeColors[frame.At(x, y+1)&3])
			screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
}
