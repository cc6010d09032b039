package cpu

// execute runs a decoded instruction whose opcode byte was already fetched
// and returns its cycle cost.
func (c *CPU) execute(bus Bus, op Opcode) uint8 {
	o := c.resolve(bus, op.mode, op.instr.width(), op.instr.readsOperand())
	cycles := op.cycles + o.extra

	switch op.instr {
	// Load / store / transfer
	case instrLDA:
		c.setA(o.value)
		c.setFlagsZN(o.value)
	case instrLDX:
		c.setX(o.value)
		c.setFlagsZNIndex(o.value)
	case instrLDY:
		c.setY(o.value)
		c.setFlagsZNIndex(o.value)
	case instrSTA:
		c.writeOperand(bus, o, c.getA())
	case instrSTX:
		c.writeOperand(bus, o, c.getX())
	case instrSTY:
		c.writeOperand(bus, o, c.getY())
	case instrSTZ:
		c.writeOperand(bus, o, 0)
	case instrTAX:
		c.setX(c.a)
		c.setFlagsZNIndex(c.getX())
	case instrTAY:
		c.setY(c.a)
		c.setFlagsZNIndex(c.getY())
	case instrTXA:
		c.setA(c.getX())
		c.setFlagsZN(c.getA())
	case instrTYA:
		c.setA(c.getY())
		c.setFlagsZN(c.getA())
	case instrTXY:
		c.setY(c.getX())
		c.setFlagsZNIndex(c.getY())
	case instrTYX:
		c.setX(c.getY())
		c.setFlagsZNIndex(c.getX())
	case instrTSX:
		c.setX(c.s)
		c.setFlagsZNIndex(c.getX())
	case instrTXS:
		c.setS(c.getX())
	case instrTCS:
		c.setS(c.a)
	case instrTSC:
		c.a = c.s
		c.setFlagsZNWidth(c.a, true)
	case instrTCD:
		c.d = c.a
		c.setFlagsZNWidth(c.d, true)
	case instrTDC:
		c.a = c.d
		c.setFlagsZNWidth(c.a, true)
	case instrXBA:
		c.xba()

	// Stack
	case instrPHA:
		c.pushWidth(bus, c.getA(), !c.memory8())
	case instrPHX:
		c.pushWidth(bus, c.getX(), !c.index8())
	case instrPHY:
		c.pushWidth(bus, c.getY(), !c.index8())
	case instrPLA:
		v := c.popWidth(bus, !c.memory8())
		c.setA(v)
		c.setFlagsZN(v)
	case instrPLX:
		v := c.popWidth(bus, !c.index8())
		c.setX(v)
		c.setFlagsZNIndex(v)
	case instrPLY:
		v := c.popWidth(bus, !c.index8())
		c.setY(v)
		c.setFlagsZNIndex(v)
	case instrPHP:
		c.stackPush8(bus, c.p)
	case instrPLP:
		c.setP(c.stackPop8(bus))
	case instrPHB:
		c.stackPush8(bus, c.db)
	case instrPLB:
		c.db = c.stackPop8(bus)
		c.setFlagsZNWidth(uint16(c.db), false)
	case instrPHD:
		c.stackPush16(bus, c.d)
	case instrPLD:
		c.d = c.stackPop16(bus)
		c.setFlagsZNWidth(c.d, true)
	case instrPHK:
		c.stackPush8(bus, c.pb)
	case instrPEA, instrPEI, instrPER:
		c.stackPush16(bus, uint16(o.addr))

	// Arithmetic and logic
	case instrADC:
		c.adc(o.value, o.wide)
	case instrSBC:
		c.sbc(o.value, o.wide)
	case instrCMP:
		c.compare(c.getA(), o.value, o.wide)
	case instrCPX:
		c.compare(c.getX(), o.value, o.wide)
	case instrCPY:
		c.compare(c.getY(), o.value, o.wide)
	case instrAND:
		c.setA(c.getA() & o.value)
		c.setFlagsZN(c.getA())
	case instrORA:
		c.setA(c.getA() | o.value)
		c.setFlagsZN(c.getA())
	case instrEOR:
		c.setA(c.getA() ^ o.value)
		c.setFlagsZN(c.getA())
	case instrBIT:
		c.bit(o)
	case instrTSB:
		c.setFlag(flagZ, c.getA()&o.value == 0)
		c.writeOperand(bus, o, o.value|c.getA())
	case instrTRB:
		c.setFlag(flagZ, c.getA()&o.value == 0)
		c.writeOperand(bus, o, o.value&^c.getA())
	case instrINC:
		c.modify(bus, o, o.value+1)
	case instrDEC:
		c.modify(bus, o, o.value-1)
	case instrINX:
		c.setX(c.getX() + 1)
		c.setFlagsZNIndex(c.getX())
	case instrINY:
		c.setY(c.getY() + 1)
		c.setFlagsZNIndex(c.getY())
	case instrDEX:
		c.setX(c.getX() - 1)
		c.setFlagsZNIndex(c.getX())
	case instrDEY:
		c.setY(c.getY() - 1)
		c.setFlagsZNIndex(c.getY())

	// Shift / rotate
	case instrASL:
		c.setFlag(flagC, o.value&signBit(o.wide) > 0)
		c.modify(bus, o, o.value<<1)
	case instrLSR:
		c.setFlag(flagC, o.value&1 > 0)
		c.modify(bus, o, o.value>>1)
	case instrROL:
		r := o.value << 1
		if c.getFlag(flagC) {
			r |= 1
		}
		c.setFlag(flagC, o.value&signBit(o.wide) > 0)
		c.modify(bus, o, r)
	case instrROR:
		r := o.value >> 1
		if c.getFlag(flagC) {
			r |= signBit(o.wide)
		}
		c.setFlag(flagC, o.value&1 > 0)
		c.modify(bus, o, r)

	// Branches
	case instrBCC:
		cycles += c.branch(o, !c.getFlag(flagC))
	case instrBCS:
		cycles += c.branch(o, c.getFlag(flagC))
	case instrBEQ:
		cycles += c.branch(o, c.getFlag(flagZ))
	case instrBNE:
		cycles += c.branch(o, !c.getFlag(flagZ))
	case instrBMI:
		cycles += c.branch(o, c.getFlag(flagN))
	case instrBPL:
		cycles += c.branch(o, !c.getFlag(flagN))
	case instrBVC:
		cycles += c.branch(o, !c.getFlag(flagV))
	case instrBVS:
		cycles += c.branch(o, c.getFlag(flagV))
	case instrBRA:
		cycles += c.branch(o, true)
	case instrBRL:
		c.pc = uint16(o.addr)
		cycles = op.cycles + 1

	// Jumps / calls / returns
	case instrJMP:
		c.pc = uint16(o.addr)
	case instrJML:
		c.setPCAddr(o.addr)
	case instrJSR:
		c.stackPush16(bus, c.pc-1)
		c.pc = uint16(o.addr)
	case instrJSL:
		c.stackPush8(bus, c.pb)
		c.stackPush16(bus, c.pc-1)
		c.setPCAddr(o.addr)
	case instrRTS:
		c.pc = c.stackPop16(bus) + 1
	case instrRTL:
		c.pc = c.stackPop16(bus) + 1
		c.pb = c.stackPop8(bus)
	case instrRTI:
		c.rti(bus)

	// Block move
	case instrMVN:
		c.blockMove(bus, o, 0xffff)
		cycles = blockMoveCycles
	case instrMVP:
		c.blockMove(bus, o, 1)
		cycles = blockMoveCycles

	// Flags
	case instrCLC:
		c.setFlag(flagC, false)
	case instrSEC:
		c.setFlag(flagC, true)
	case instrCLD:
		c.setFlag(flagD, false)
	case instrSED:
		c.setFlag(flagD, true)
	case instrCLI:
		c.setFlag(flagI, false)
	case instrSEI:
		c.setFlag(flagI, true)
	case instrCLV:
		c.setFlag(flagV, false)
	case instrREP:
		c.setP(c.p &^ uint8(o.value))
	case instrSEP:
		c.setP(c.p | uint8(o.value))
	case instrXCE:
		carry := c.getFlag(flagC)
		c.setFlag(flagC, c.emulation)
		c.setEmulation(carry)

	// Interrupts and control
	case instrBRK:
		if c.emulation {
			c.softwareInterrupt(bus, c.p|flagB, vectorIRQEmu)
		} else {
			c.softwareInterrupt(bus, c.p, vectorIRQNative)
		}
	case instrCOP:
		if c.emulation {
			c.softwareInterrupt(bus, c.p&^flagB, vectorCOPEmu)
		} else {
			c.softwareInterrupt(bus, c.p, vectorCOPNative)
		}
	case instrSTP:
		c.halted = true
	case instrWAI:
		c.waiting = true
	case instrNOP, instrWDM:
	}

	return cycles
}

func signBit(wide bool) uint16 {
	if wide {
		return 0x8000
	}
	return 0x80
}

func widthMask(wide bool) uint32 {
	if wide {
		return 0xffff
	}
	return 0xff
}

func (c *CPU) adc(m uint16, wide bool) {
	mask := widthMask(wide)
	a := uint32(c.getA())
	r := a + uint32(m)
	if c.getFlag(flagC) {
		r++
	}
	sign := uint32(signBit(wide))
	c.setFlag(flagC, r > mask)
	c.setFlag(flagV, ^(a^uint32(m))&(a^r)&sign > 0)
	c.setA(uint16(r & mask))
	c.setFlagsZN(c.getA())
}

// sbc is adc of the operand's complement at the same width.
func (c *CPU) sbc(m uint16, wide bool) {
	c.adc(uint16(^uint32(m)&widthMask(wide)), wide)
}

func (c *CPU) compare(reg, m uint16, wide bool) {
	r := (uint32(reg) - uint32(m)) & widthMask(wide)
	c.setFlag(flagC, reg >= m)
	c.setFlagsZNWidth(uint16(r), wide)
}

// bit takes N and V from the operand. The immediate form only updates Z.
func (c *CPU) bit(o operand) {
	c.setFlag(flagZ, c.getA()&o.value == 0)
	if o.mode == addrModeIMM {
		return
	}
	sign := signBit(o.wide)
	c.setFlag(flagN, o.value&sign > 0)
	c.setFlag(flagV, o.value&(sign>>1) > 0)
}

// modify writes a read-modify-write result back and updates N and Z
// at the operand width.
func (c *CPU) modify(bus Bus, o operand, r uint16) {
	r &= uint16(widthMask(o.wide))
	c.writeOperand(bus, o, r)
	c.setFlagsZNWidth(r, o.wide)
}

func (c *CPU) xba() {
	c.a = c.a<<8 | c.a>>8
	c.setFlagsZNWidth(c.a&0xff, false)
}

func (c *CPU) pushWidth(bus Bus, v uint16, wide bool) {
	if wide {
		c.stackPush16(bus, v)
		return
	}
	c.stackPush8(bus, uint8(v))
}

func (c *CPU) popWidth(bus Bus, wide bool) uint16 {
	if wide {
		return c.stackPop16(bus)
	}
	return uint16(c.stackPop8(bus))
}

// branch moves PC to the resolved target when cond holds and returns the
// extra cycles: one for a taken branch, one more for a page crossing in
// emulation mode.
func (c *CPU) branch(o operand, cond bool) uint8 {
	if !cond {
		return 0
	}
	c.pc = uint16(o.addr)
	if c.emulation && o.crossed {
		return 2
	}
	return 1
}

func (c *CPU) rti(bus Bus) {
	c.setP(c.stackPop8(bus))
	c.pc = c.stackPop16(bus)
	if !c.emulation {
		c.pb = c.stackPop8(bus)
	}
}

// blockMove copies one byte from src:X to dst:Y, steps both index registers
// and counts A down. PC is rewound onto the instruction until A wraps.
func (c *CPU) blockMove(bus Bus, o operand, step uint16) {
	src := uint32(o.src)<<16 | uint32(c.getX())
	dst := uint32(o.dst)<<16 | uint32(c.getY())
	bus.Write8(dst, bus.Read8(src))

	c.db = o.dst
	c.setX(c.getX() + step)
	c.setY(c.getY() + step)
	c.a--
	if c.a != 0xffff {
		c.pc -= 3
	}
}

func (c *CPU) softwareInterrupt(bus Bus, p uint8, vector uint32) {
	if !c.emulation {
		c.stackPush8(bus, c.pb)
	}
	c.stackPush16(bus, c.pc)
	c.stackPush8(bus, p)
	c.setFlag(flagI, true)
	c.pb = 0
	c.pc = read16(bus, vector)
}
