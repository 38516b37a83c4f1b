// Package frontend contains the display shells that drive a machine:
// a headless runner for tests and automation, a tcell terminal
// renderer, and an optional SDL2 window behind a build tag.
package frontend

import "github.com/GeReV/yagbe/yagbe"

// Frontend owns the run loop for one machine: it paces emulation,
// renders completed frames and feeds host input back in. Run blocks
// until the session ends or the machine faults.
type Frontend interface {
	Run(m *yagbe.Machine) error
}
