// Package bus implements the unified 16-bit address space: it routes
// every read and write to ROM banks, RAM regions, video memory, or the
// memory-mapped register blocks, and applies the hardware access rules
// on the way. It also owns the interrupt controller, the timer, the
// joypad and the serial port, since those are nothing but bus-visible
// registers with behavior.
package bus

import (
	"github.com/GeReV/yagbe/yagbe/cart"
	"github.com/GeReV/yagbe/yagbe/hwio"
)

// dmaCycles is the fixed T-cycle cost of an OAM DMA transfer, charged to
// the instruction that wrote the DMA register.
const dmaCycles = 640

// VideoUnit is the bus-facing side of the PPU: register and memory
// access (with the PPU's own mode-based contention rules applied) plus
// the DMA fast path into OAM.
type VideoUnit interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, value uint8)

	ReadVRAM(addr uint16) uint8
	WriteVRAM(addr uint16, value uint8)
	ReadOAM(addr uint16) uint8
	WriteOAM(addr uint16, value uint8)

	// ReadVRAMDirect and WriteOAMEntry bypass contention; only the DMA
	// engine uses them.
	ReadVRAMDirect(addr uint16) uint8
	WriteOAMEntry(index uint8, value uint8)

	Advance(cycles int)
}

// Bus is the sole arbiter of shared state between the CPU, timer and
// PPU. Every address maps somewhere; reads always produce a value and
// writes to read-only regions are dropped (or become banking commands).
type Bus struct {
	cartridge *cart.Cartridge
	video     VideoUnit

	wram [0x2000]uint8
	hram [0x7F]uint8
	io   [0x80]uint8 // inert register storage (audio block and gaps)

	irq    Interrupts
	timer  Timer
	joypad Joypad
	serial SerialSink

	dmaStall int
}

// New wires a bus over a cartridge and a video unit.
func New(cartridge *cart.Cartridge, video VideoUnit) *Bus {
	b := &Bus{
		cartridge: cartridge,
		video:     video,
	}
	b.timer.requestIRQ = func() { b.irq.Request(hwio.IntTimer) }
	b.joypad = newJoypad(func() { b.irq.Request(hwio.IntJoypad) })
	b.serial = newSerialSink(func() { b.irq.Request(hwio.IntSerial) })

	// Post-boot-ROM state: VBlank is already flagged when control is
	// handed to the cartridge.
	b.irq.flags = 0x01

	return b
}

// Advance moves the timer, serial port and PPU forward in lock-step with
// the cycles one CPU instruction consumed.
func (b *Bus) Advance(cycles int) {
	b.timer.Advance(cycles)
	b.video.Advance(cycles)
}

// Read returns the byte visible at addr. It is total over the 16-bit
// space.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return b.cartridge.Read(addr)
	case addr <= 0x9FFF:
		return b.video.ReadVRAM(addr)
	case addr <= 0xBFFF:
		return b.cartridge.Read(addr)
	case addr <= 0xDFFF:
		return b.wram[addr-0xC000]
	case addr <= 0xFDFF:
		// Echo RAM mirrors 0xC000-0xDDFF.
		return b.wram[addr-0xE000]
	case addr <= 0xFE9F:
		return b.video.ReadOAM(addr)
	case addr <= 0xFEFF:
		// Unusable region.
		return 0xFF
	case addr <= 0xFF7F:
		return b.readIO(addr)
	case addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	default:
		return b.irq.ReadEnable()
	}
}

// Write stores value at addr, applying region side effects: banking
// commands in the ROM window, register semantics in the I/O block,
// dropped writes everywhere the hardware refuses them.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x8000:
		b.cartridge.Write(addr, value)
	case addr <= 0x9FFF:
		b.video.WriteVRAM(addr, value)
	case addr <= 0xBFFF:
		b.cartridge.Write(addr, value)
	case addr <= 0xDFFF:
		b.wram[addr-0xC000] = value
	case addr <= 0xFDFF:
		b.wram[addr-0xE000] = value
	case addr <= 0xFE9F:
		b.video.WriteOAM(addr, value)
	case addr <= 0xFEFF:
		// Unusable region, dropped.
	case addr <= 0xFF7F:
		b.writeIO(addr, value)
	case addr <= 0xFFFE:
		b.hram[addr-0xFF80] = value
	default:
		b.irq.WriteEnable(value)
	}
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch {
	case addr == hwio.JOYP:
		return b.joypad.Read()
	case addr == hwio.SB || addr == hwio.SC:
		return b.serial.Read(addr)
	case addr >= hwio.DIV && addr <= hwio.TAC:
		return b.timer.Read(addr)
	case addr == hwio.IF:
		return b.irq.ReadFlags()
	case addr >= hwio.LCDC && addr <= hwio.WX:
		return b.video.ReadRegister(addr)
	default:
		return b.io[addr-0xFF00]
	}
}

func (b *Bus) writeIO(addr uint16, value uint8) {
	switch {
	case addr == hwio.JOYP:
		b.joypad.Write(value)
	case addr == hwio.SB || addr == hwio.SC:
		b.serial.Write(addr, value)
	case addr >= hwio.DIV && addr <= hwio.TAC:
		b.timer.Write(addr, value)
	case addr == hwio.IF:
		b.irq.WriteFlags(value)
	case addr == hwio.DMA:
		b.io[addr-0xFF00] = value
		b.transferOAM(value)
	case addr >= hwio.LCDC && addr <= hwio.WX:
		b.video.WriteRegister(addr, value)
	default:
		b.io[addr-0xFF00] = value
	}
}

// transferOAM performs the 160-byte copy from page<<8 into the object
// attribute table. Atomic from the CPU's point of view; the fixed cycle
// cost is accumulated and charged to the triggering instruction via
// TakeDMAStall.
func (b *Bus) transferOAM(page uint8) {
	source := uint16(page) << 8
	for i := uint16(0); i < 160; i++ {
		b.video.WriteOAMEntry(uint8(i), b.dmaRead(source+i))
	}
	b.dmaStall += dmaCycles
}

// dmaRead is Read with the PPU contention rules lifted: the DMA engine
// has its own port into VRAM and sees real bytes in every mode.
func (b *Bus) dmaRead(addr uint16) uint8 {
	if addr >= 0x8000 && addr <= 0x9FFF {
		return b.video.ReadVRAMDirect(addr)
	}
	return b.Read(addr)
}

// TakeDMAStall returns and clears the cycle debt of DMA transfers
// triggered since the last call.
func (b *Bus) TakeDMAStall() int {
	stall := b.dmaStall
	b.dmaStall = 0
	return stall
}

// RequestInterrupt flags an interrupt source.
func (b *Bus) RequestInterrupt(src hwio.Interrupt) {
	b.irq.Request(src)
}

// PendingInterrupt returns the highest-priority enabled+flagged source.
func (b *Bus) PendingInterrupt() (hwio.Interrupt, bool) {
	return b.irq.Pending()
}

// AcknowledgeInterrupt clears a source's flag bit on dispatch.
func (b *Bus) AcknowledgeInterrupt(src hwio.Interrupt) {
	b.irq.Acknowledge(src)
}

// InterruptRequested reports whether any enabled source is flagged,
// regardless of the CPU's master latch.
func (b *Bus) InterruptRequested() bool {
	return b.irq.Requested()
}

// ResetDivider clears the timer's internal divider (STOP side effect).
func (b *Bus) ResetDivider() {
	b.timer.ResetDivider()
}

// Joypad exposes the joypad for the host input sampler.
func (b *Bus) Joypad() *Joypad {
	return &b.joypad
}

// Serial exposes the serial sink, mainly so hosts and tests can capture
// test ROM output.
func (b *Bus) Serial() *SerialSink {
	return &b.serial
}
