// Package cpu implements the SM83 instruction execution engine: fetch,
// decode and execute over the full instruction set, interrupt servicing
// at instruction boundaries, and the HALT/STOP power states.
package cpu

import (
	"fmt"

	"github.com/GeReV/yagbe/yagbe/bits"
	"github.com/GeReV/yagbe/yagbe/hwio"
)

// Bus is the CPU's window onto shared state. Every memory access and
// every interrupt interaction goes through here; the CPU holds nothing
// but its own registers.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)

	PendingInterrupt() (hwio.Interrupt, bool)
	AcknowledgeInterrupt(src hwio.Interrupt)
	InterruptRequested() bool

	ResetDivider()
}

// flag bits in the F register. The low nibble is always zero.
const (
	flagZ uint8 = 0x80 // zero
	flagN uint8 = 0x40 // subtract
	flagH uint8 = 0x20 // half-carry (bit 3 boundary)
	flagC uint8 = 0x10 // carry
)

// interruptCycles is the fixed dispatch cost, distinct from any
// instruction cost.
const interruptCycles = 20

// IllegalOpcodeError reports a fetch of an opcode with no defined
// hardware semantics. The engine refuses to continue past one: CPU
// state would be undefined.
type IllegalOpcodeError struct {
	Addr   uint16
	Opcode uint8
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode 0x%02X at 0x%04X", e.Opcode, e.Addr)
}

// CPU holds the register file and execution state.
type CPU struct {
	a, f       uint8
	b, c, d, e uint8
	h, l       uint8
	sp, pc     uint16

	ime     bool
	eiDelay int // countdown until EI takes effect
	halted  bool
	stopped bool
	haltBug bool

	fault  error
	cycles uint64

	bus Bus
}

// New returns a CPU in the post-boot-ROM state, entry point 0x0100.
func New(bus Bus) *CPU {
	return &CPU{
		a: 0x01, f: 0xB0,
		b: 0x00, c: 0x13,
		d: 0x00, e: 0xD8,
		h: 0x01, l: 0x4D,
		sp:  0xFFFE,
		pc:  0x0100,
		bus: bus,
	}
}

// Step executes one instruction (or dispatches one interrupt, or burns
// a halt cycle) and returns the T-cycles consumed. Interrupts are only
// consulted here, at instruction boundaries. A returned error is an
// IllegalOpcodeError and is sticky: the engine will not run past it.
func (c *CPU) Step() (int, error) {
	if c.fault != nil {
		return 0, c.fault
	}

	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.ime = true
		}
	}

	if c.halted {
		// Any enabled+flagged source wakes the CPU even while IME is
		// clear; dispatch below still requires IME.
		if !c.bus.InterruptRequested() {
			c.cycles += 4
			return 4, nil
		}
		c.halted = false
	}

	if cycles := c.serviceInterrupt(); cycles > 0 {
		return cycles, nil
	}

	if c.stopped {
		c.cycles += 4
		return 4, nil
	}

	opcode := c.fetchOpcode()
	cycles := ops[opcode](c)
	if c.fault != nil {
		return 0, c.fault
	}

	c.cycles += uint64(cycles)
	return cycles, nil
}

// serviceInterrupt dispatches the highest-priority pending interrupt if
// the master latch is set: acknowledge, clear IME, push PC, jump to the
// fixed vector.
func (c *CPU) serviceInterrupt() int {
	if !c.ime {
		return 0
	}
	src, ok := c.bus.PendingInterrupt()
	if !ok {
		return 0
	}

	c.bus.AcknowledgeInterrupt(src)
	c.ime = false
	c.push16(c.pc)
	c.pc = src.Vector()

	c.cycles += interruptCycles
	return interruptCycles
}

// fetchOpcode reads the next opcode byte. Under the halt bug the PC
// fails to advance once, so the same byte is decoded again as the
// following instruction's first byte.
func (c *CPU) fetchOpcode() uint8 {
	opcode := c.bus.Read(c.pc)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.pc++
	}
	return opcode
}

func (c *CPU) fetch8() uint8 {
	n := c.bus.Read(c.pc)
	c.pc++
	return n
}

func (c *CPU) fetch16() uint16 {
	low := c.fetch8()
	high := c.fetch8()
	return bits.Join(high, low)
}

func (c *CPU) push16(value uint16) {
	c.sp--
	c.bus.Write(c.sp, bits.Hi(value))
	c.sp--
	c.bus.Write(c.sp, bits.Lo(value))
}

func (c *CPU) pop16() uint16 {
	low := c.bus.Read(c.sp)
	c.sp++
	high := c.bus.Read(c.sp)
	c.sp++
	return bits.Join(high, low)
}

// illegal records a fatal decode fault with the offending address and
// opcode byte for diagnosis.
func (c *CPU) illegal(opcode uint8) int {
	c.fault = &IllegalOpcodeError{Addr: c.pc - 1, Opcode: opcode}
	return 0
}

// Register pair accessors. AF masks the flag register's low nibble,
// which does not physically exist.

func (c *CPU) af() uint16 { return bits.Join(c.a, c.f) }
func (c *CPU) bc() uint16 { return bits.Join(c.b, c.c) }
func (c *CPU) de() uint16 { return bits.Join(c.d, c.e) }
func (c *CPU) hl() uint16 { return bits.Join(c.h, c.l) }

func (c *CPU) setAF(value uint16) {
	c.a = bits.Hi(value)
	c.f = bits.Lo(value) & 0xF0
}

func (c *CPU) setBC(value uint16) {
	c.b, c.c = bits.Hi(value), bits.Lo(value)
}

func (c *CPU) setDE(value uint16) {
	c.d, c.e = bits.Hi(value), bits.Lo(value)
}

func (c *CPU) setHL(value uint16) {
	c.h, c.l = bits.Hi(value), bits.Lo(value)
}

// Exported state accessors for frontends and tests.

func (c *CPU) PC() uint16 { return c.pc }
func (c *CPU) SP() uint16 { return c.sp }
func (c *CPU) AF() uint16 { return c.af() }
func (c *CPU) BC() uint16 { return c.bc() }
func (c *CPU) DE() uint16 { return c.de() }
func (c *CPU) HL() uint16 { return c.hl() }
func (c *CPU) IME() bool      { return c.ime }
func (c *CPU) Halted() bool   { return c.halted }
func (c *CPU) Stopped() bool  { return c.stopped }
func (c *CPU) Cycles() uint64 { return c.cycles }

// Resume leaves the STOP state. The machine calls this when the host's
// input conditions are met; the core itself never exits STOP.
func (c *CPU) Resume() {
	c.stopped = false
}

// FlagString renders the F register as "ZNHC" with dashes for clear
// bits, for logs and failure messages.
func (c *CPU) FlagString() string {
	out := []byte("----")
	if c.f&flagZ != 0 {
		out[0] = 'Z'
	}
	if c.f&flagN != 0 {
		out[1] = 'N'
	}
	if c.f&flagH != 0 {
		out[2] = 'H'
	}
	if c.f&flagC != 0 {
		out[3] = 'C'
	}
	return string(out)
}
