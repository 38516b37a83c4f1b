//go:build sdl

package frontend

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/GeReV/yagbe/yagbe"
	"github.com/GeReV/yagbe/yagbe/bus"
	"github.com/GeReV/yagbe/yagbe/ppu"
)

// SDL renders into a native window. Building it requires the SDL2
// development libraries; default builds get the stub instead.
type SDL struct {
	Scale int
}

var shadeRGB = [4][3]uint8{
	{224, 248, 208},
	{136, 192, 112},
	{52, 104, 86},
	{8, 24, 32},
}

func (s *SDL) Run(m *yagbe.Machine) error {
	if s.Scale <= 0 {
		s.Scale = 3
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(m.Title(),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(ppu.FrameWidth*s.Scale), int32(ppu.FrameHeight*s.Scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING, ppu.FrameWidth, ppu.FrameHeight)
	if err != nil {
		return fmt.Errorf("creating texture: %w", err)
	}
	defer texture.Destroy()

	pixels := make([]uint8, ppu.FrameWidth*ppu.FrameHeight*3)

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
				key, ok := mapScancode(ev.Keysym.Scancode)
				if !ok {
					break
				}
				if ev.Type == sdl.KEYDOWN {
					m.Press(key)
				} else {
					m.Release(key)
				}
			}
		}

		if err := m.RunFrame(); err != nil {
			return err
		}

		for i, shade := range m.Frame().Pixels() {
			rgb := shadeRGB[shade&3]
			copy(pixels[i*3:], rgb[:])
		}
		if err := texture.Update(nil, unsafe.Pointer(&pixels[0]), ppu.FrameWidth*3); err != nil {
			return fmt.Errorf("updating texture: %w", err)
		}
		renderer.Copy(texture, nil, nil)
		renderer.Present()
	}
}

func mapScancode(code sdl.Scancode) (bus.Key, bool) {
	switch code {
	case sdl.SCANCODE_UP:
		return bus.KeyUp, true
	case sdl.SCANCODE_DOWN:
		return bus.KeyDown, true
	case sdl.SCANCODE_LEFT:
		return bus.KeyLeft, true
	case sdl.SCANCODE_RIGHT:
		return bus.KeyRight, true
	case sdl.SCANCODE_Z:
		return bus.KeyA, true
	case sdl.SCANCODE_X:
		return bus.KeyB, true
	case sdl.SCANCODE_RETURN:
		return bus.KeyStart, true
	case sdl.SCANCODE_BACKSPACE:
		return bus.KeySelect, true
	}
	return 0, false
}
