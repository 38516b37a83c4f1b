// Package yagbe wires the cartridge, bus, video unit and CPU into a
// runnable DMG machine and exposes the frontend-facing surface: step,
// run-to-frame, input and save RAM access.
package yagbe

import (
	"io"

	"github.com/GeReV/yagbe/yagbe/bus"
	"github.com/GeReV/yagbe/yagbe/cart"
	"github.com/GeReV/yagbe/yagbe/cpu"
	"github.com/GeReV/yagbe/yagbe/hwio"
	"github.com/GeReV/yagbe/yagbe/ppu"
)

// cyclesPerFrame is one full video refresh: 154 lines of 456 dots.
const cyclesPerFrame = 154 * 456

// Machine is a complete emulated unit in the post-boot-ROM state.
type Machine struct {
	cart  *cart.Cartridge
	video *ppu.PPU
	bus   *bus.Bus
	cpu   *cpu.CPU
}

// New builds a machine around a cartridge image.
func New(rom []byte) (*Machine, error) {
	cartridge, err := cart.Load(rom)
	if err != nil {
		return nil, err
	}

	// The video unit raises interrupts through the bus, which does not
	// exist yet while the unit is built; the closure closes over the
	// variable instead.
	var b *bus.Bus
	video := ppu.New(func(src hwio.Interrupt) {
		b.RequestInterrupt(src)
	})
	b = bus.New(cartridge, video)

	return &Machine{
		cart:  cartridge,
		video: video,
		bus:   b,
		cpu:   cpu.New(b),
	}, nil
}

// Step executes one CPU instruction and advances the rest of the
// machine by the same number of T-cycles, including any OAM DMA stall
// the instruction triggered. Returns the cycles consumed.
func (m *Machine) Step() (int, error) {
	cycles, err := m.cpu.Step()
	if err != nil {
		return 0, err
	}
	cycles += m.bus.TakeDMAStall()
	m.bus.Advance(cycles)

	// STOP only ends on input; the core never wakes itself.
	if m.cpu.Stopped() && m.bus.Joypad().AnyPressed() {
		m.cpu.Resume()
	}
	return cycles, nil
}

// RunFrame steps until the video unit publishes the next frame. With
// the LCD disabled no frame ever completes, so the loop gives up after
// two frames' worth of cycles rather than spinning forever.
func (m *Machine) RunFrame() error {
	start := m.video.FrameCount()
	budget := 2 * cyclesPerFrame

	for m.video.FrameCount() == start && budget > 0 {
		cycles, err := m.Step()
		if err != nil {
			return err
		}
		budget -= cycles
	}
	return nil
}

// Frame returns the most recently completed frame. The buffer is only
// swapped at VBlank, so callers never observe a half-drawn screen.
func (m *Machine) Frame() *ppu.FrameBuffer {
	return m.video.Frame()
}

// FrameCount reports how many frames have been completed so far.
func (m *Machine) FrameCount() uint64 {
	return m.video.FrameCount()
}

// Press and Release feed host input into the joypad matrix.

func (m *Machine) Press(key bus.Key) {
	m.bus.Joypad().Press(key)
}

func (m *Machine) Release(key bus.Key) {
	m.bus.Joypad().Release(key)
}

// Title returns the cartridge header title.
func (m *Machine) Title() string {
	return m.cart.Title()
}

// DumpRAM snapshots battery-backed cartridge RAM for persistence.
// It returns nil when the cartridge has no battery.
func (m *Machine) DumpRAM() []byte {
	if !m.cart.HasBattery() {
		return nil
	}
	return m.cart.DumpRAM()
}

// RestoreRAM loads a previously dumped save back into cartridge RAM.
func (m *Machine) RestoreRAM(data []byte) {
	m.cart.RestoreRAM(data)
}

// CaptureSerial mirrors every completed serial transfer to w. Test
// ROMs report their results this way.
func (m *Machine) CaptureSerial(w io.Writer) {
	m.bus.Serial().CaptureOutput(w)
}

// CPU exposes the execution engine for debuggers and tests.
func (m *Machine) CPU() *cpu.CPU {
	return m.cpu
}
