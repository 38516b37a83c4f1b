// Code generated for the base opcode page; edit with care.

package cpu

import "github.com/GeReV/yagbe/yagbe/bits"

// 0x00: NOP
func op00(c *CPU) int {
	return 4
}

// 0x01: LD BC,nn
func op01(c *CPU) int {
	c.setBC(c.fetch16())
	return 12
}

// 0x02: LD (BC),A
func op02(c *CPU) int {
	c.bus.Write(c.bc(), c.a)
	return 8
}

// 0x03: INC BC
func op03(c *CPU) int {
	c.setBC(c.bc() + 1)
	return 8
}

// 0x04: INC B
func op04(c *CPU) int {
	c.b = c.inc8(c.b)
	return 4
}

// 0x05: DEC B
func op05(c *CPU) int {
	c.b = c.dec8(c.b)
	return 4
}

// 0x06: LD B,n
func op06(c *CPU) int {
	c.b = c.fetch8()
	return 8
}

// 0x07: RLCA
func op07(c *CPU) int {
	c.a = c.rlc(c.a)
	c.clearFlag(flagZ)
	return 4
}

// 0x08: LD (nn),SP
func op08(c *CPU) int {
	addr := c.fetch16()
	c.bus.Write(addr, bits.Lo(c.sp))
	c.bus.Write(addr+1, bits.Hi(c.sp))
	return 20
}

// 0x09: ADD HL,BC
func op09(c *CPU) int {
	c.addHL(c.bc())
	return 8
}

// 0x0A: LD A,(BC)
func op0A(c *CPU) int {
	c.a = c.bus.Read(c.bc())
	return 8
}

// 0x0B: DEC BC
func op0B(c *CPU) int {
	c.setBC(c.bc() - 1)
	return 8
}

// 0x0C: INC C
func op0C(c *CPU) int {
	c.c = c.inc8(c.c)
	return 4
}

// 0x0D: DEC C
func op0D(c *CPU) int {
	c.c = c.dec8(c.c)
	return 4
}

// 0x0E: LD C,n
func op0E(c *CPU) int {
	c.c = c.fetch8()
	return 8
}

// 0x0F: RRCA
func op0F(c *CPU) int {
	c.a = c.rrc(c.a)
	c.clearFlag(flagZ)
	return 4
}

// 0x10: STOP
func op10(c *CPU) int {
	c.stopped = true
	c.bus.ResetDivider()
	c.fetch8() // two-byte encoding; the second byte is padding
	return 4
}

// 0x11: LD DE,nn
func op11(c *CPU) int {
	c.setDE(c.fetch16())
	return 12
}

// 0x12: LD (DE),A
func op12(c *CPU) int {
	c.bus.Write(c.de(), c.a)
	return 8
}

// 0x13: INC DE
func op13(c *CPU) int {
	c.setDE(c.de() + 1)
	return 8
}

// 0x14: INC D
func op14(c *CPU) int {
	c.d = c.inc8(c.d)
	return 4
}

// 0x15: DEC D
func op15(c *CPU) int {
	c.d = c.dec8(c.d)
	return 4
}

// 0x16: LD D,n
func op16(c *CPU) int {
	c.d = c.fetch8()
	return 8
}

// 0x17: RLA
func op17(c *CPU) int {
	c.a = c.rl(c.a)
	c.clearFlag(flagZ)
	return 4
}

// 0x18: JR e
func op18(c *CPU) int {
	return c.jr(true)
}

// 0x19: ADD HL,DE
func op19(c *CPU) int {
	c.addHL(c.de())
	return 8
}

// 0x1A: LD A,(DE)
func op1A(c *CPU) int {
	c.a = c.bus.Read(c.de())
	return 8
}

// 0x1B: DEC DE
func op1B(c *CPU) int {
	c.setDE(c.de() - 1)
	return 8
}

// 0x1C: INC E
func op1C(c *CPU) int {
	c.e = c.inc8(c.e)
	return 4
}

// 0x1D: DEC E
func op1D(c *CPU) int {
	c.e = c.dec8(c.e)
	return 4
}

// 0x1E: LD E,n
func op1E(c *CPU) int {
	c.e = c.fetch8()
	return 8
}

// 0x1F: RRA
func op1F(c *CPU) int {
	c.a = c.rr(c.a)
	c.clearFlag(flagZ)
	return 4
}

// 0x20: JR NZ,e
func op20(c *CPU) int {
	return c.jr(!c.hasFlag(flagZ))
}

// 0x21: LD HL,nn
func op21(c *CPU) int {
	c.setHL(c.fetch16())
	return 12
}

// 0x22: LD (HL+),A
func op22(c *CPU) int {
	c.bus.Write(c.hl(), c.a)
	c.setHL(c.hl() + 1)
	return 8
}

// 0x23: INC HL
func op23(c *CPU) int {
	c.setHL(c.hl() + 1)
	return 8
}

// 0x24: INC H
func op24(c *CPU) int {
	c.h = c.inc8(c.h)
	return 4
}

// 0x25: DEC H
func op25(c *CPU) int {
	c.h = c.dec8(c.h)
	return 4
}

// 0x26: LD H,n
func op26(c *CPU) int {
	c.h = c.fetch8()
	return 8
}

// 0x27: DAA
func op27(c *CPU) int {
	c.daa()
	return 4
}

// 0x28: JR Z,e
func op28(c *CPU) int {
	return c.jr(c.hasFlag(flagZ))
}

// 0x29: ADD HL,HL
func op29(c *CPU) int {
	c.addHL(c.hl())
	return 8
}

// 0x2A: LD A,(HL+)
func op2A(c *CPU) int {
	c.a = c.bus.Read(c.hl())
	c.setHL(c.hl() + 1)
	return 8
}

// 0x2B: DEC HL
func op2B(c *CPU) int {
	c.setHL(c.hl() - 1)
	return 8
}

// 0x2C: INC L
func op2C(c *CPU) int {
	c.l = c.inc8(c.l)
	return 4
}

// 0x2D: DEC L
func op2D(c *CPU) int {
	c.l = c.dec8(c.l)
	return 4
}

// 0x2E: LD L,n
func op2E(c *CPU) int {
	c.l = c.fetch8()
	return 8
}

// 0x2F: CPL
func op2F(c *CPU) int {
	c.a = ^c.a
	c.setFlag(flagN, true)
	c.setFlag(flagH, true)
	return 4
}

// 0x30: JR NC,e
func op30(c *CPU) int {
	return c.jr(!c.hasFlag(flagC))
}

// 0x31: LD SP,nn
func op31(c *CPU) int {
	c.sp = c.fetch16()
	return 12
}

// 0x32: LD (HL-),A
func op32(c *CPU) int {
	c.bus.Write(c.hl(), c.a)
	c.setHL(c.hl() - 1)
	return 8
}

// 0x33: INC SP
func op33(c *CPU) int {
	c.sp++
	return 8
}

// 0x34: INC (HL)
func op34(c *CPU) int {
	addr := c.hl()
	c.bus.Write(addr, c.inc8(c.bus.Read(addr)))
	return 12
}

// 0x35: DEC (HL)
func op35(c *CPU) int {
	addr := c.hl()
	c.bus.Write(addr, c.dec8(c.bus.Read(addr)))
	return 12
}

// 0x36: LD (HL),n
func op36(c *CPU) int {
	c.bus.Write(c.hl(), c.fetch8())
	return 12
}

// 0x37: SCF
func op37(c *CPU) int {
	c.clearFlag(flagN)
	c.clearFlag(flagH)
	c.setFlag(flagC, true)
	return 4
}

// 0x38: JR C,e
func op38(c *CPU) int {
	return c.jr(c.hasFlag(flagC))
}

// 0x39: ADD HL,SP
func op39(c *CPU) int {
	c.addHL(c.sp)
	return 8
}

// 0x3A: LD A,(HL-)
func op3A(c *CPU) int {
	c.a = c.bus.Read(c.hl())
	c.setHL(c.hl() - 1)
	return 8
}

// 0x3B: DEC SP
func op3B(c *CPU) int {
	c.sp--
	return 8
}

// 0x3C: INC A
func op3C(c *CPU) int {
	c.a = c.inc8(c.a)
	return 4
}

// 0x3D: DEC A
func op3D(c *CPU) int {
	c.a = c.dec8(c.a)
	return 4
}

// 0x3E: LD A,n
func op3E(c *CPU) int {
	c.a = c.fetch8()
	return 8
}

// 0x3F: CCF
func op3F(c *CPU) int {
	c.clearFlag(flagN)
	c.clearFlag(flagH)
	c.setFlag(flagC, !c.hasFlag(flagC))
	return 4
}

// 0x40: LD B,B
func op40(c *CPU) int {
	return 4
}

// 0x41: LD B,C
func op41(c *CPU) int {
	c.b = c.c
	return 4
}

// 0x42: LD B,D
func op42(c *CPU) int {
	c.b = c.d
	return 4
}

// 0x43: LD B,E
func op43(c *CPU) int {
	c.b = c.e
	return 4
}

// 0x44: LD B,H
func op44(c *CPU) int {
	c.b = c.h
	return 4
}

// 0x45: LD B,L
func op45(c *CPU) int {
	c.b = c.l
	return 4
}

// 0x46: LD B,(HL)
func op46(c *CPU) int {
	c.b = c.bus.Read(c.hl())
	return 8
}

// 0x47: LD B,A
func op47(c *CPU) int {
	c.b = c.a
	return 4
}

// 0x48: LD C,B
func op48(c *CPU) int {
	c.c = c.b
	return 4
}

// 0x49: LD C,C
func op49(c *CPU) int {
	return 4
}

// 0x4A: LD C,D
func op4A(c *CPU) int {
	c.c = c.d
	return 4
}

// 0x4B: LD C,E
func op4B(c *CPU) int {
	c.c = c.e
	return 4
}

// 0x4C: LD C,H
func op4C(c *CPU) int {
	c.c = c.h
	return 4
}

// 0x4D: LD C,L
func op4D(c *CPU) int {
	c.c = c.l
	return 4
}

// 0x4E: LD C,(HL)
func op4E(c *CPU) int {
	c.c = c.bus.Read(c.hl())
	return 8
}

// 0x4F: LD C,A
func op4F(c *CPU) int {
	c.c = c.a
	return 4
}

// 0x50: LD D,B
func op50(c *CPU) int {
	c.d = c.b
	return 4
}

// 0x51: LD D,C
func op51(c *CPU) int {
	c.d = c.c
	return 4
}

// 0x52: LD D,D
func op52(c *CPU) int {
	return 4
}

// 0x53: LD D,E
func op53(c *CPU) int {
	c.d = c.e
	return 4
}

// 0x54: LD D,H
func op54(c *CPU) int {
	c.d = c.h
	return 4
}

// 0x55: LD D,L
func op55(c *CPU) int {
	c.d = c.l
	return 4
}

// 0x56: LD D,(HL)
func op56(c *CPU) int {
	c.d = c.bus.Read(c.hl())
	return 8
}

// 0x57: LD D,A
func op57(c *CPU) int {
	c.d = c.a
	return 4
}

// 0x58: LD E,B
func op58(c *CPU) int {
	c.e = c.b
	return 4
}

// 0x59: LD E,C
func op59(c *CPU) int {
	c.e = c.c
	return 4
}

// 0x5A: LD E,D
func op5A(c *CPU) int {
	c.e = c.d
	return 4
}

// 0x5B: LD E,E
func op5B(c *CPU) int {
	return 4
}

// 0x5C: LD E,H
func op5C(c *CPU) int {
	c.e = c.h
	return 4
}

// 0x5D: LD E,L
func op5D(c *CPU) int {
	c.e = c.l
	return 4
}

// 0x5E: LD E,(HL)
func op5E(c *CPU) int {
	c.e = c.bus.Read(c.hl())
	return 8
}

// 0x5F: LD E,A
func op5F(c *CPU) int {
	c.e = c.a
	return 4
}

// 0x60: LD H,B
func op60(c *CPU) int {
	c.h = c.b
	return 4
}

// 0x61: LD H,C
func op61(c *CPU) int {
	c.h = c.c
	return 4
}

// 0x62: LD H,D
func op62(c *CPU) int {
	c.h = c.d
	return 4
}

// 0x63: LD H,E
func op63(c *CPU) int {
	c.h = c.e
	return 4
}

// 0x64: LD H,H
func op64(c *CPU) int {
	return 4
}

// 0x65: LD H,L
func op65(c *CPU) int {
	c.h = c.l
	return 4
}

// 0x66: LD H,(HL)
func op66(c *CPU) int {
	c.h = c.bus.Read(c.hl())
	return 8
}

// 0x67: LD H,A
func op67(c *CPU) int {
	c.h = c.a
	return 4
}

// 0x68: LD L,B
func op68(c *CPU) int {
	c.l = c.b
	return 4
}

// 0x69: LD L,C
func op69(c *CPU) int {
	c.l = c.c
	return 4
}

// 0x6A: LD L,D
func op6A(c *CPU) int {
	c.l = c.d
	return 4
}

// 0x6B: LD L,E
func op6B(c *CPU) int {
	c.l = c.e
	return 4
}

// 0x6C: LD L,H
func op6C(c *CPU) int {
	c.l = c.h
	return 4
}

// 0x6D: LD L,L
func op6D(c *CPU) int {
	return 4
}

// 0x6E: LD L,(HL)
func op6E(c *CPU) int {
	c.l = c.bus.Read(c.hl())
	return 8
}

// 0x6F: LD L,A
func op6F(c *CPU) int {
	c.l = c.a
	return 4
}

// 0x70: LD (HL),B
func op70(c *CPU) int {
	c.bus.Write(c.hl(), c.b)
	return 8
}

// 0x71: LD (HL),C
func op71(c *CPU) int {
	c.bus.Write(c.hl(), c.c)
	return 8
}

// 0x72: LD (HL),D
func op72(c *CPU) int {
	c.bus.Write(c.hl(), c.d)
	return 8
}

// 0x73: LD (HL),E
func op73(c *CPU) int {
	c.bus.Write(c.hl(), c.e)
	return 8
}

// 0x74: LD (HL),H
func op74(c *CPU) int {
	c.bus.Write(c.hl(), c.h)
	return 8
}

// 0x75: LD (HL),L
func op75(c *CPU) int {
	c.bus.Write(c.hl(), c.l)
	return 8
}

// 0x76: HALT
func op76(c *CPU) int {
	if !c.ime && c.bus.InterruptRequested() {
		// Halt bug: the low-power state is not entered and the PC
		// fails to advance past the next opcode fetch.
		c.haltBug = true
	} else {
		c.halted = true
	}
	return 4
}

// 0x77: LD (HL),A
func op77(c *CPU) int {
	c.bus.Write(c.hl(), c.a)
	return 8
}

// 0x78: LD A,B
func op78(c *CPU) int {
	c.a = c.b
	return 4
}

// 0x79: LD A,C
func op79(c *CPU) int {
	c.a = c.c
	return 4
}

// 0x7A: LD A,D
func op7A(c *CPU) int {
	c.a = c.d
	return 4
}

// 0x7B: LD A,E
func op7B(c *CPU) int {
	c.a = c.e
	return 4
}

// 0x7C: LD A,H
func op7C(c *CPU) int {
	c.a = c.h
	return 4
}

// 0x7D: LD A,L
func op7D(c *CPU) int {
	c.a = c.l
	return 4
}

// 0x7E: LD A,(HL)
func op7E(c *CPU) int {
	c.a = c.bus.Read(c.hl())
	return 8
}

// 0x7F: LD A,A
func op7F(c *CPU) int {
	return 4
}

// 0x80: ADD A,B
func op80(c *CPU) int {
	c.add(c.b, false)
	return 4
}

// 0x81: ADD A,C
func op81(c *CPU) int {
	c.add(c.c, false)
	return 4
}

// 0x82: ADD A,D
func op82(c *CPU) int {
	c.add(c.d, false)
	return 4
}

// 0x83: ADD A,E
func op83(c *CPU) int {
	c.add(c.e, false)
	return 4
}

// 0x84: ADD A,H
func op84(c *CPU) int {
	c.add(c.h, false)
	return 4
}

// 0x85: ADD A,L
func op85(c *CPU) int {
	c.add(c.l, false)
	return 4
}

// 0x86: ADD A,(HL)
func op86(c *CPU) int {
	c.add(c.bus.Read(c.hl()), false)
	return 8
}

// 0x87: ADD A,A
func op87(c *CPU) int {
	c.add(c.a, false)
	return 4
}

// 0x88: ADC A,B
func op88(c *CPU) int {
	c.add(c.b, true)
	return 4
}

// 0x89: ADC A,C
func op89(c *CPU) int {
	c.add(c.c, true)
	return 4
}

// 0x8A: ADC A,D
func op8A(c *CPU) int {
	c.add(c.d, true)
	return 4
}

// 0x8B: ADC A,E
func op8B(c *CPU) int {
	c.add(c.e, true)
	return 4
}

// 0x8C: ADC A,H
func op8C(c *CPU) int {
	c.add(c.h, true)
	return 4
}

// 0x8D: ADC A,L
func op8D(c *CPU) int {
	c.add(c.l, true)
	return 4
}

// 0x8E: ADC A,(HL)
func op8E(c *CPU) int {
	c.add(c.bus.Read(c.hl()), true)
	return 8
}

// 0x8F: ADC A,A
func op8F(c *CPU) int {
	c.add(c.a, true)
	return 4
}

// 0x90: SUB B
func op90(c *CPU) int {
	c.sub(c.b, false)
	return 4
}

// 0x91: SUB C
func op91(c *CPU) int {
	c.sub(c.c, false)
	return 4
}

// 0x92: SUB D
func op92(c *CPU) int {
	c.sub(c.d, false)
	return 4
}

// 0x93: SUB E
func op93(c *CPU) int {
	c.sub(c.e, false)
	return 4
}

// 0x94: SUB H
func op94(c *CPU) int {
	c.sub(c.h, false)
	return 4
}

// 0x95: SUB L
func op95(c *CPU) int {
	c.sub(c.l, false)
	return 4
}

// 0x96: SUB (HL)
func op96(c *CPU) int {
	c.sub(c.bus.Read(c.hl()), false)
	return 8
}

// 0x97: SUB A
func op97(c *CPU) int {
	c.sub(c.a, false)
	return 4
}

// 0x98: SBC A,B
func op98(c *CPU) int {
	c.sub(c.b, true)
	return 4
}

// 0x99: SBC A,C
func op99(c *CPU) int {
	c.sub(c.c, true)
	return 4
}

// 0x9A: SBC A,D
func op9A(c *CPU) int {
	c.sub(c.d, true)
	return 4
}

// 0x9B: SBC A,E
func op9B(c *CPU) int {
	c.sub(c.e, true)
	return 4
}

// 0x9C: SBC A,H
func op9C(c *CPU) int {
	c.sub(c.h, true)
	return 4
}

// 0x9D: SBC A,L
func op9D(c *CPU) int {
	c.sub(c.l, true)
	return 4
}

// 0x9E: SBC A,(HL)
func op9E(c *CPU) int {
	c.sub(c.bus.Read(c.hl()), true)
	return 8
}

// 0x9F: SBC A,A
func op9F(c *CPU) int {
	c.sub(c.a, true)
	return 4
}

// 0xA0: AND B
func opA0(c *CPU) int {
	c.and(c.b)
	return 4
}

// 0xA1: AND C
func opA1(c *CPU) int {
	c.and(c.c)
	return 4
}

// 0xA2: AND D
func opA2(c *CPU) int {
	c.and(c.d)
	return 4
}

// 0xA3: AND E
func opA3(c *CPU) int {
	c.and(c.e)
	return 4
}

// 0xA4: AND H
func opA4(c *CPU) int {
	c.and(c.h)
	return 4
}

// 0xA5: AND L
func opA5(c *CPU) int {
	c.and(c.l)
	return 4
}

// 0xA6: AND (HL)
func opA6(c *CPU) int {
	c.and(c.bus.Read(c.hl()))
	return 8
}

// 0xA7: AND A
func opA7(c *CPU) int {
	c.and(c.a)
	return 4
}

// 0xA8: XOR B
func opA8(c *CPU) int {
	c.xor(c.b)
	return 4
}

// 0xA9: XOR C
func opA9(c *CPU) int {
	c.xor(c.c)
	return 4
}

// 0xAA: XOR D
func opAA(c *CPU) int {
	c.xor(c.d)
	return 4
}

// 0xAB: XOR E
func opAB(c *CPU) int {
	c.xor(c.e)
	return 4
}

// 0xAC: XOR H
func opAC(c *CPU) int {
	c.xor(c.h)
	return 4
}

// 0xAD: XOR L
func opAD(c *CPU) int {
	c.xor(c.l)
	return 4
}

// 0xAE: XOR (HL)
func opAE(c *CPU) int {
	c.xor(c.bus.Read(c.hl()))
	return 8
}

// 0xAF: XOR A
func opAF(c *CPU) int {
	c.xor(c.a)
	return 4
}

// 0xB0: OR B
func opB0(c *CPU) int {
	c.or(c.b)
	return 4
}

// 0xB1: OR C
func opB1(c *CPU) int {
	c.or(c.c)
	return 4
}

// 0xB2: OR D
func opB2(c *CPU) int {
	c.or(c.d)
	return 4
}

// 0xB3: OR E
func opB3(c *CPU) int {
	c.or(c.e)
	return 4
}

// 0xB4: OR H
func opB4(c *CPU) int {
	c.or(c.h)
	return 4
}

// 0xB5: OR L
func opB5(c *CPU) int {
	c.or(c.l)
	return 4
}

// 0xB6: OR (HL)
func opB6(c *CPU) int {
	c.or(c.bus.Read(c.hl()))
	return 8
}

// 0xB7: OR A
func opB7(c *CPU) int {
	c.or(c.a)
	return 4
}

// 0xB8: CP B
func opB8(c *CPU) int {
	c.cp(c.b)
	return 4
}

// 0xB9: CP C
func opB9(c *CPU) int {
	c.cp(c.c)
	return 4
}

// 0xBA: CP D
func opBA(c *CPU) int {
	c.cp(c.d)
	return 4
}

// 0xBB: CP E
func opBB(c *CPU) int {
	c.cp(c.e)
	return 4
}

// 0xBC: CP H
func opBC(c *CPU) int {
	c.cp(c.h)
	return 4
}

// 0xBD: CP L
func opBD(c *CPU) int {
	c.cp(c.l)
	return 4
}

// 0xBE: CP (HL)
func opBE(c *CPU) int {
	c.cp(c.bus.Read(c.hl()))
	return 8
}

// 0xBF: CP A
func opBF(c *CPU) int {
	c.cp(c.a)
	return 4
}

// 0xC0: RET NZ
func opC0(c *CPU) int {
	return c.retIf(!c.hasFlag(flagZ))
}

// 0xC1: POP BC
func opC1(c *CPU) int {
	c.setBC(c.pop16())
	return 12
}

// 0xC2: JP NZ,nn
func opC2(c *CPU) int {
	return c.jp(!c.hasFlag(flagZ))
}

// 0xC3: JP nn
func opC3(c *CPU) int {
	c.pc = c.fetch16()
	return 16
}

// 0xC4: CALL NZ,nn
func opC4(c *CPU) int {
	return c.call(!c.hasFlag(flagZ))
}

// 0xC5: PUSH BC
func opC5(c *CPU) int {
	c.push16(c.bc())
	return 16
}

// 0xC6: ADD A,n
func opC6(c *CPU) int {
	c.add(c.fetch8(), false)
	return 8
}

// 0xC7: RST 0x00
func opC7(c *CPU) int {
	c.rst(0x0000)
	return 16
}

// 0xC8: RET Z
func opC8(c *CPU) int {
	return c.retIf(c.hasFlag(flagZ))
}

// 0xC9: RET
func opC9(c *CPU) int {
	c.pc = c.pop16()
	return 16
}

// 0xCA: JP Z,nn
func opCA(c *CPU) int {
	return c.jp(c.hasFlag(flagZ))
}

// 0xCB: PREFIX CB
func opCB(c *CPU) int {
	return c.execCB(c.fetch8())
}

// 0xCC: CALL Z,nn
func opCC(c *CPU) int {
	return c.call(c.hasFlag(flagZ))
}

// 0xCD: CALL nn
func opCD(c *CPU) int {
	return c.call(true)
}

// 0xCE: ADC A,n
func opCE(c *CPU) int {
	c.add(c.fetch8(), true)
	return 8
}

// 0xCF: RST 0x08
func opCF(c *CPU) int {
	c.rst(0x0008)
	return 16
}

// 0xD0: RET NC
func opD0(c *CPU) int {
	return c.retIf(!c.hasFlag(flagC))
}

// 0xD1: POP DE
func opD1(c *CPU) int {
	c.setDE(c.pop16())
	return 12
}

// 0xD2: JP NC,nn
func opD2(c *CPU) int {
	return c.jp(!c.hasFlag(flagC))
}

// 0xD3: illegal
func opD3(c *CPU) int {
	return c.illegal(0xD3)
}

// 0xD4: CALL NC,nn
func opD4(c *CPU) int {
	return c.call(!c.hasFlag(flagC))
}

// 0xD5: PUSH DE
func opD5(c *CPU) int {
	c.push16(c.de())
	return 16
}

// 0xD6: SUB n
func opD6(c *CPU) int {
	c.sub(c.fetch8(), false)
	return 8
}

// 0xD7: RST 0x10
func opD7(c *CPU) int {
	c.rst(0x0010)
	return 16
}

// 0xD8: RET C
func opD8(c *CPU) int {
	return c.retIf(c.hasFlag(flagC))
}

// 0xD9: RETI
func opD9(c *CPU) int {
	c.pc = c.pop16()
	c.ime = true
	return 16
}

// 0xDA: JP C,nn
func opDA(c *CPU) int {
	return c.jp(c.hasFlag(flagC))
}

// 0xDB: illegal
func opDB(c *CPU) int {
	return c.illegal(0xDB)
}

// 0xDC: CALL C,nn
func opDC(c *CPU) int {
	return c.call(c.hasFlag(flagC))
}

// 0xDD: illegal
func opDD(c *CPU) int {
	return c.illegal(0xDD)
}

// 0xDE: SBC A,n
func opDE(c *CPU) int {
	c.sub(c.fetch8(), true)
	return 8
}

// 0xDF: RST 0x18
func opDF(c *CPU) int {
	c.rst(0x0018)
	return 16
}

// 0xE0: LDH (n),A
func opE0(c *CPU) int {
	c.bus.Write(0xFF00+uint16(c.fetch8()), c.a)
	return 12
}

// 0xE1: POP HL
func opE1(c *CPU) int {
	c.setHL(c.pop16())
	return 12
}

// 0xE2: LD (C),A
func opE2(c *CPU) int {
	c.bus.Write(0xFF00+uint16(c.c), c.a)
	return 8
}

// 0xE3: illegal
func opE3(c *CPU) int {
	return c.illegal(0xE3)
}

// 0xE4: illegal
func opE4(c *CPU) int {
	return c.illegal(0xE4)
}

// 0xE5: PUSH HL
func opE5(c *CPU) int {
	c.push16(c.hl())
	return 16
}

// 0xE6: AND n
func opE6(c *CPU) int {
	c.and(c.fetch8())
	return 8
}

// 0xE7: RST 0x20
func opE7(c *CPU) int {
	c.rst(0x0020)
	return 16
}

// 0xE8: ADD SP,e
func opE8(c *CPU) int {
	c.sp = c.addSPSigned()
	return 16
}

// 0xE9: JP HL
func opE9(c *CPU) int {
	c.pc = c.hl()
	return 4
}

// 0xEA: LD (nn),A
func opEA(c *CPU) int {
	c.bus.Write(c.fetch16(), c.a)
	return 16
}

// 0xEB: illegal
func opEB(c *CPU) int {
	return c.illegal(0xEB)
}

// 0xEC: illegal
func opEC(c *CPU) int {
	return c.illegal(0xEC)
}

// 0xED: illegal
func opED(c *CPU) int {
	return c.illegal(0xED)
}

// 0xEE: XOR n
func opEE(c *CPU) int {
	c.xor(c.fetch8())
	return 8
}

// 0xEF: RST 0x28
func opEF(c *CPU) int {
	c.rst(0x0028)
	return 16
}

// 0xF0: LDH A,(n)
func opF0(c *CPU) int {
	c.a = c.bus.Read(0xFF00 + uint16(c.fetch8()))
	return 12
}

// 0xF1: POP AF
func opF1(c *CPU) int {
	c.setAF(c.pop16())
	return 12
}

// 0xF2: LD A,(C)
func opF2(c *CPU) int {
	c.a = c.bus.Read(0xFF00 + uint16(c.c))
	return 8
}

// 0xF3: DI
func opF3(c *CPU) int {
	c.ime = false
	c.eiDelay = 0
	return 4
}

// 0xF4: illegal
func opF4(c *CPU) int {
	return c.illegal(0xF4)
}

// 0xF5: PUSH AF
func opF5(c *CPU) int {
	c.push16(c.af())
	return 16
}

// 0xF6: OR n
func opF6(c *CPU) int {
	c.or(c.fetch8())
	return 8
}

// 0xF7: RST 0x30
func opF7(c *CPU) int {
	c.rst(0x0030)
	return 16
}

// 0xF8: LD HL,SP+e
func opF8(c *CPU) int {
	c.setHL(c.addSPSigned())
	return 12
}

// 0xF9: LD SP,HL
func opF9(c *CPU) int {
	c.sp = c.hl()
	return 8
}

// 0xFA: LD A,(nn)
func opFA(c *CPU) int {
	c.a = c.bus.Read(c.fetch16())
	return 16
}

// 0xFB: EI
func opFB(c *CPU) int {
	// IME turns on after the instruction that follows EI.
	c.eiDelay = 2
	return 4
}

// 0xFC: illegal
func opFC(c *CPU) int {
	return c.illegal(0xFC)
}

// 0xFD: illegal
func opFD(c *CPU) int {
	return c.illegal(0xFD)
}

// 0xFE: CP n
func opFE(c *CPU) int {
	c.cp(c.fetch8())
	return 8
}

// 0xFF: RST 0x38
func opFF(c *CPU) int {
	c.rst(0x0038)
	return 16
}

// ops dispatches every base-page opcode.
var ops = [256]func(*CPU) int{
	op00, op01, op02, op03, op04, op05, op06, op07,
	op08, op09, op0A, op0B, op0C, op0D, op0E, op0F,
	op10, op11, op12, op13, op14, op15, op16, op17,
	op18, op19, op1A, op1B, op1C, op1D, op1E, op1F,
	op20, op21, op22, op23, op24, op25, op26, op27,
	op28, op29, op2A, op2B, op2C, op2D, op2E, op2F,
	op30, op31, op32, op33, op34, op35, op36, op37,
	op38, op39, op3A, op3B, op3C, op3D, op3E, op3F,
	op40, op41, op42, op43, op44, op45, op46, op47,
	op48, op49, op4A, op4B, op4C, op4D, op4E, op4F,
	op50, op51, op52, op53, op54, op55, op56, op57,
	op58, op59, op5A, op5B, op5C, op5D, op5E, op5F,
	op60, op61, op62, op63, op64, op65, op66, op67,
	op68, op69, op6A, op6B, op6C, op6D, op6E, op6F,
	op70, op71, op72, op73, op74, op75, op76, op77,
	op78, op79, op7A, op7B, op7C, op7D, op7E, op7F,
	op80, op81, op82, op83, op84, op85, op86, op87,
	op88, op89, op8A, op8B, op8C, op8D, op8E, op8F,
	op90, op91, op92, op93, op94, op95, op96, op97,
	op98, op99, op9A, op9B, op9C, op9D, op9E, op9F,
	opA0, opA1, opA2, opA3, opA4, opA5, opA6, opA7,
	opA8, opA9, opAA, opAB, opAC, opAD, opAE, opAF,
	opB0, opB1, opB2, opB3, opB4, opB5, opB6, opB7,
	opB8, opB9, opBA, opBB, opBC, opBD, opBE, opBF,
	opC0, opC1, opC2, opC3, opC4, opC5, opC6, opC7,
	opC8, opC9, opCA, opCB, opCC, opCD, opCE, opCF,
	opD0, opD1, opD2, opD3, opD4, opD5, opD6, opD7,
	opD8, opD9, opDA, opDB, opDC, opDD, opDE, opDF,
	opE0, opE1, opE2, opE3, opE4, opE5, opE6, opE7,
	opE8, opE9, opEA, opEB, opEC, opED, opEE, opEF,
	opF0, opF1, opF2, opF3, opF4, opF5, opF6, opF7,
	opF8, opF9, opFA, opFB, opFC, opFD, opFE, opFF,
}

// opNames gives the canonical mnemonic for trace output.
var opNames = [256]string{
	0x00: "NOP",
	0x01: "LD BC,nn",
	0x02: "LD (BC),A",
	0x03: "INC BC",
	0x04: "INC B",
	0x05: "DEC B",
	0x06: "LD B,n",
	0x07: "RLCA",
	0x08: "LD (nn),SP",
	0x09: "ADD HL,BC",
	0x0A: "LD A,(BC)",
	0x0B: "DEC BC",
	0x0C: "INC C",
	0x0D: "DEC C",
	0x0E: "LD C,n",
	0x0F: "RRCA",
	0x10: "STOP",
	0x11: "LD DE,nn",
	0x12: "LD (DE),A",
	0x13: "INC DE",
	0x14: "INC D",
	0x15: "DEC D",
	0x16: "LD D,n",
	0x17: "RLA",
	0x18: "JR e",
	0x19: "ADD HL,DE",
	0x1A: "LD A,(DE)",
	0x1B: "DEC DE",
	0x1C: "INC E",
	0x1D: "DEC E",
	0x1E: "LD E,n",
	0x1F: "RRA",
	0x20: "JR NZ,e",
	0x21: "LD HL,nn",
	0x22: "LD (HL+),A",
	0x23: "INC HL",
	0x24: "INC H",
	0x25: "DEC H",
	0x26: "LD H,n",
	0x27: "DAA",
	0x28: "JR Z,e",
	0x29: "ADD HL,HL",
	0x2A: "LD A,(HL+)",
	0x2B: "DEC HL",
	0x2C: "INC L",
	0x2D: "DEC L",
	0x2E: "LD L,n",
	0x2F: "CPL",
	0x30: "JR NC,e",
	0x31: "LD SP,nn",
	0x32: "LD (HL-),A",
	0x33: "INC SP",
	0x34: "INC (HL)",
	0x35: "DEC (HL)",
	0x36: "LD (HL),n",
	0x37: "SCF",
	0x38: "JR C,e",
	0x39: "ADD HL,SP",
	0x3A: "LD A,(HL-)",
	0x3B: "DEC SP",
	0x3C: "INC A",
	0x3D: "DEC A",
	0x3E: "LD A,n",
	0x3F: "CCF",
	0x40: "LD B,B",
	0x41: "LD B,C",
	0x42: "LD B,D",
	0x43: "LD B,E",
	0x44: "LD B,H",
	0x45: "LD B,L",
	0x46: "LD B,(HL)",
	0x47: "LD B,A",
	0x48: "LD C,B",
	0x49: "LD C,C",
	0x4A: "LD C,D",
	0x4B: "LD C,E",
	0x4C: "LD C,H",
	0x4D: "LD C,L",
	0x4E: "LD C,(HL)",
	0x4F: "LD C,A",
	0x50: "LD D,B",
	0x51: "LD D,C",
	0x52: "LD D,D",
	0x53: "LD D,E",
	0x54: "LD D,H",
	0x55: "LD D,L",
	0x56: "LD D,(HL)",
	0x57: "LD D,A",
	0x58: "LD E,B",
	0x59: "LD E,C",
	0x5A: "LD E,D",
	0x5B: "LD E,E",
	0x5C: "LD E,H",
	0x5D: "LD E,L",
	0x5E: "LD E,(HL)",
	0x5F: "LD E,A",
	0x60: "LD H,B",
	0x61: "LD H,C",
	0x62: "LD H,D",
	0x63: "LD H,E",
	0x64: "LD H,H",
	0x65: "LD H,L",
	0x66: "LD H,(HL)",
	0x67: "LD H,A",
	0x68: "LD L,B",
	0x69: "LD L,C",
	0x6A: "LD L,D",
	0x6B: "LD L,E",
	0x6C: "LD L,H",
	0x6D: "LD L,L",
	0x6E: "LD L,(HL)",
	0x6F: "LD L,A",
	0x70: "LD (HL),B",
	0x71: "LD (HL),C",
	0x72: "LD (HL),D",
	0x73: "LD (HL),E",
	0x74: "LD (HL),H",
	0x75: "LD (HL),L",
	0x76: "HALT",
	0x77: "LD (HL),A",
	0x78: "LD A,B",
	0x79: "LD A,C",
	0x7A: "LD A,D",
	0x7B: "LD A,E",
	0x7C: "LD A,H",
	0x7D: "LD A,L",
	0x7E: "LD A,(HL)",
	0x7F: "LD A,A",
	0x80: "ADD A,B",
	0x81: "ADD A,C",
	0x82: "ADD A,D",
	0x83: "ADD A,E",
	0x84: "ADD A,H",
	0x85: "ADD A,L",
	0x86: "ADD A,(HL)",
	0x87: "ADD A,A",
	0x88: "ADC A,B",
	0x89: "ADC A,C",
	0x8A: "ADC A,D",
	0x8B: "ADC A,E",
	0x8C: "ADC A,H",
	0x8D: "ADC A,L",
	0x8E: "ADC A,(HL)",
	0x8F: "ADC A,A",
	0x90: "SUB B",
	0x91: "SUB C",
	0x92: "SUB D",
	0x93: "SUB E",
	0x94: "SUB H",
	0x95: "SUB L",
	0x96: "SUB (HL)",
	0x97: "SUB A",
	0x98: "SBC A,B",
	0x99: "SBC A,C",
	0x9A: "SBC A,D",
	0x9B: "SBC A,E",
	0x9C: "SBC A,H",
	0x9D: "SBC A,L",
	0x9E: "SBC A,(HL)",
	0x9F: "SBC A,A",
	0xA0: "AND B",
	0xA1: "AND C",
	0xA2: "AND D",
	0xA3: "AND E",
	0xA4: "AND H",
	0xA5: "AND L",
	0xA6: "AND (HL)",
	0xA7: "AND A",
	0xA8: "XOR B",
	0xA9: "XOR C",
	0xAA: "XOR D",
	0xAB: "XOR E",
	0xAC: "XOR H",
	0xAD: "XOR L",
	0xAE: "XOR (HL)",
	0xAF: "XOR A",
	0xB0: "OR B",
	0xB1: "OR C",
	0xB2: "OR D",
	0xB3: "OR E",
	0xB4: "OR H",
	0xB5: "OR L",
	0xB6: "OR (HL)",
	0xB7: "OR A",
	0xB8: "CP B",
	0xB9: "CP C",
	0xBA: "CP D",
	0xBB: "CP E",
	0xBC: "CP H",
	0xBD: "CP L",
	0xBE: "CP (HL)",
	0xBF: "CP A",
	0xC0: "RET NZ",
	0xC1: "POP BC",
	0xC2: "JP NZ,nn",
	0xC3: "JP nn",
	0xC4: "CALL NZ,nn",
	0xC5: "PUSH BC",
	0xC6: "ADD A,n",
	0xC7: "RST 0x00",
	0xC8: "RET Z",
	0xC9: "RET",
	0xCA: "JP Z,nn",
	0xCB: "PREFIX CB",
	0xCC: "CALL Z,nn",
	0xCD: "CALL nn",
	0xCE: "ADC A,n",
	0xCF: "RST 0x08",
	0xD0: "RET NC",
	0xD1: "POP DE",
	0xD2: "JP NC,nn",
	0xD3: "illegal",
	0xD4: "CALL NC,nn",
	0xD5: "PUSH DE",
	0xD6: "SUB n",
	0xD7: "RST 0x10",
	0xD8: "RET C",
	0xD9: "RETI",
	0xDA: "JP C,nn",
	0xDB: "illegal",
	0xDC: "CALL C,nn",
	0xDD: "illegal",
	0xDE: "SBC A,n",
	0xDF: "RST 0x18",
	0xE0: "LDH (n),A",
	0xE1: "POP HL",
	0xE2: "LD (C),A",
	0xE3: "illegal",
	0xE4: "illegal",
	0xE5: "PUSH HL",
	0xE6: "AND n",
	0xE7: "RST 0x20",
	0xE8: "ADD SP,e",
	0xE9: "JP HL",
	0xEA: "LD (nn),A",
	0xEB: "illegal",
	0xEC: "illegal",
	0xED: "illegal",
	0xEE: "XOR n",
	0xEF: "RST 0x28",
	0xF0: "LDH A,(n)",
	0xF1: "POP AF",
	0xF2: "LD A,(C)",
	0xF3: "DI",
	0xF4: "illegal",
	0xF5: "PUSH AF",
	0xF6: "OR n",
	0xF7: "RST 0x30",
	0xF8: "LD HL,SP+e",
	0xF9: "LD SP,HL",
	0xFA: "LD A,(nn)",
	0xFB: "EI",
	0xFC: "illegal",
	0xFD: "illegal",
	0xFE: "CP n",
	0xFF: "RST 0x38",
}

// OpcodeName returns the mnemonic for a base-page opcode byte.
func OpcodeName(opcode uint8) string {
	return opNames[opcode]
}
