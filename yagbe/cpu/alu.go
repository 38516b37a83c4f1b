package cpu

import "github.com/GeReV/yagbe/yagbe/bits"

func (c *CPU) hasFlag(flag uint8) bool {
	return c.f&flag != 0
}

func (c *CPU) setFlag(flag uint8, on bool) {
	if on {
		c.f |= flag
	} else {
		c.f &^= flag
	}
}

func (c *CPU) clearFlag(flag uint8) {
	c.f &^= flag
}

func (c *CPU) carry() uint8 {
	if c.hasFlag(flagC) {
		return 1
	}
	return 0
}

// add implements ADD/ADC into A. Half-carry watches the bit 3 boundary.
func (c *CPU) add(value uint8, withCarry bool) {
	var cy uint8
	if withCarry {
		cy = c.carry()
	}
	sum := uint16(c.a) + uint16(value) + uint16(cy)
	half := c.a&0x0F + value&0x0F + cy

	c.a = uint8(sum)
	c.setFlag(flagZ, c.a == 0)
	c.clearFlag(flagN)
	c.setFlag(flagH, half > 0x0F)
	c.setFlag(flagC, sum > 0xFF)
}

// sub implements SUB/SBC into A.
func (c *CPU) sub(value uint8, withCarry bool) {
	var cy uint8
	if withCarry {
		cy = c.carry()
	}
	result := c.a - value - cy

	c.setFlag(flagZ, result == 0)
	c.setFlag(flagN, true)
	c.setFlag(flagH, uint16(c.a&0x0F) < uint16(value&0x0F)+uint16(cy))
	c.setFlag(flagC, uint16(c.a) < uint16(value)+uint16(cy))
	c.a = result
}

// cp is SUB with the result discarded.
func (c *CPU) cp(value uint8) {
	saved := c.a
	c.sub(value, false)
	c.a = saved
}

func (c *CPU) and(value uint8) {
	c.a &= value
	c.setFlag(flagZ, c.a == 0)
	c.clearFlag(flagN)
	c.setFlag(flagH, true)
	c.clearFlag(flagC)
}

func (c *CPU) or(value uint8) {
	c.a |= value
	c.setFlag(flagZ, c.a == 0)
	c.clearFlag(flagN)
	c.clearFlag(flagH)
	c.clearFlag(flagC)
}

func (c *CPU) xor(value uint8) {
	c.a ^= value
	c.setFlag(flagZ, c.a == 0)
	c.clearFlag(flagN)
	c.clearFlag(flagH)
	c.clearFlag(flagC)
}

// inc8 and dec8 leave the carry flag untouched.
func (c *CPU) inc8(value uint8) uint8 {
	result := value + 1
	c.setFlag(flagZ, result == 0)
	c.clearFlag(flagN)
	c.setFlag(flagH, value&0x0F == 0x0F)
	return result
}

func (c *CPU) dec8(value uint8) uint8 {
	result := value - 1
	c.setFlag(flagZ, result == 0)
	c.setFlag(flagN, true)
	c.setFlag(flagH, value&0x0F == 0)
	return result
}

// addHL implements ADD HL,rr. Zero is untouched; half-carry watches the
// bit 11 boundary.
func (c *CPU) addHL(value uint16) {
	hl := c.hl()
	sum := uint32(hl) + uint32(value)

	c.clearFlag(flagN)
	c.setFlag(flagH, hl&0x0FFF+value&0x0FFF > 0x0FFF)
	c.setFlag(flagC, sum > 0xFFFF)
	c.setHL(uint16(sum))
}

// addSPSigned computes SP plus a signed immediate for ADD SP,e and
// LD HL,SP+e. Both flags come from unsigned low-byte arithmetic, not
// from the 16-bit result.
func (c *CPU) addSPSigned() uint16 {
	offset := c.fetch8()
	result := c.sp + uint16(int16(int8(offset)))

	c.clearFlag(flagZ)
	c.clearFlag(flagN)
	c.setFlag(flagH, c.sp&0x0F+uint16(offset&0x0F) > 0x0F)
	c.setFlag(flagC, c.sp&0xFF+uint16(offset) > 0xFF)
	return result
}

// daa adjusts A back to packed BCD after an addition or subtraction,
// steered by the N, H and C flags the arithmetic left behind.
func (c *CPU) daa() {
	var adjust uint8
	carry := c.hasFlag(flagC)

	if c.hasFlag(flagN) {
		if c.hasFlag(flagH) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		c.a -= adjust
	} else {
		if c.hasFlag(flagH) || c.a&0x0F > 0x09 {
			adjust |= 0x06
		}
		if carry || c.a > 0x99 {
			adjust |= 0x60
			carry = true
		}
		c.a += adjust
	}

	c.setFlag(flagZ, c.a == 0)
	c.clearFlag(flagH)
	c.setFlag(flagC, carry)
}

// Rotates and shifts shared by the CB block. Zero is set from the
// result; the RLCA/RLA/RRCA/RRA forms clear it afterwards.

func (c *CPU) rlc(value uint8) uint8 {
	result := value<<1 | value>>7
	c.rotateFlags(result, value&0x80 != 0)
	return result
}

func (c *CPU) rrc(value uint8) uint8 {
	result := value>>1 | value<<7
	c.rotateFlags(result, value&0x01 != 0)
	return result
}

func (c *CPU) rl(value uint8) uint8 {
	result := value<<1 | c.carry()
	c.rotateFlags(result, value&0x80 != 0)
	return result
}

func (c *CPU) rr(value uint8) uint8 {
	result := value>>1 | c.carry()<<7
	c.rotateFlags(result, value&0x01 != 0)
	return result
}

func (c *CPU) sla(value uint8) uint8 {
	result := value << 1
	c.rotateFlags(result, value&0x80 != 0)
	return result
}

// sra keeps the sign bit.
func (c *CPU) sra(value uint8) uint8 {
	result := value>>1 | value&0x80
	c.rotateFlags(result, value&0x01 != 0)
	return result
}

func (c *CPU) srl(value uint8) uint8 {
	result := value >> 1
	c.rotateFlags(result, value&0x01 != 0)
	return result
}

func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.rotateFlags(result, false)
	return result
}

func (c *CPU) rotateFlags(result uint8, carryOut bool) {
	c.setFlag(flagZ, result == 0)
	c.clearFlag(flagN)
	c.clearFlag(flagH)
	c.setFlag(flagC, carryOut)
}

// bitTest implements BIT n,r. Carry is untouched.
func (c *CPU) bitTest(index, value uint8) {
	c.setFlag(flagZ, !bits.Test(index, value))
	c.clearFlag(flagN)
	c.setFlag(flagH, true)
}

// Control flow. Conditional forms return the taken or not-taken cycle
// cost; the immediate operand is consumed either way.

func (c *CPU) jr(taken bool) int {
	offset := int8(c.fetch8())
	if !taken {
		return 8
	}
	c.pc += uint16(int16(offset))
	return 12
}

func (c *CPU) jp(taken bool) int {
	target := c.fetch16()
	if !taken {
		return 12
	}
	c.pc = target
	return 16
}

func (c *CPU) call(taken bool) int {
	target := c.fetch16()
	if !taken {
		return 12
	}
	c.push16(c.pc)
	c.pc = target
	return 24
}

func (c *CPU) retIf(taken bool) int {
	if !taken {
		return 8
	}
	c.pc = c.pop16()
	return 20
}

func (c *CPU) rst(target uint16) {
	c.push16(c.pc)
	c.pc = target
}
