package cpu

import "github.com/GeReV/yagbe/yagbe/bits"

// The CB page is a regular bit pattern: the low three bits pick the
// target (B C D E H L (HL) A), the rest pick the operation. Decoding
// by field covers all 256 opcodes without a table.

func (c *CPU) readTarget(target uint8) uint8 {
	switch target {
	case 0:
		return c.b
	case 1:
		return c.c
	case 2:
		return c.d
	case 3:
		return c.e
	case 4:
		return c.h
	case 5:
		return c.l
	case 6:
		return c.bus.Read(c.hl())
	default:
		return c.a
	}
}

func (c *CPU) writeTarget(target, value uint8) {
	switch target {
	case 0:
		c.b = value
	case 1:
		c.c = value
	case 2:
		c.d = value
	case 3:
		c.e = value
	case 4:
		c.h = value
	case 5:
		c.l = value
	case 6:
		c.bus.Write(c.hl(), value)
	default:
		c.a = value
	}
}

func (c *CPU) execCB(code uint8) int {
	target := code & 0x07
	value := c.readTarget(target)

	cycles := 8
	if target == 6 {
		cycles = 16
	}

	switch {
	case code < 0x40:
		var result uint8
		switch code >> 3 {
		case 0:
			result = c.rlc(value)
		case 1:
			result = c.rrc(value)
		case 2:
			result = c.rl(value)
		case 3:
			result = c.rr(value)
		case 4:
			result = c.sla(value)
		case 5:
			result = c.sra(value)
		case 6:
			result = c.swap(value)
		case 7:
			result = c.srl(value)
		}
		c.writeTarget(target, result)
	case code < 0x80: // BIT n,r reads but never writes back
		c.bitTest(code>>3&0x07, value)
		if target == 6 {
			cycles = 12
		}
	case code < 0xC0: // RES n,r
		c.writeTarget(target, bits.Clear(code>>3&0x07, value))
	default: // SET n,r
		c.writeTarget(target, bits.Set(code>>3&0x07, value))
	}

	return cycles
}
