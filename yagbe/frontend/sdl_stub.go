//go:build !sdl

package frontend

import (
	"errors"

	"github.com/GeReV/yagbe/yagbe"
)

// SDL stub for builds without the SDL2 libraries. Build with -tags sdl
// to get the real window.
type SDL struct {
	Scale int
}

func (s *SDL) Run(m *yagbe.Machine) error {
	return errors.New("SDL frontend not available, rebuild with -tags sdl")
}
