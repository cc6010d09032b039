package cpu

type addrMode uint8

const (
	addrModeIMP   addrMode = iota + 1 // Implied
	addrModeACC                       // Accumulator
	addrModeIMM                       // Immediate
	addrModeDP                        // Direct Page
	addrModeDPX                       // Direct Page X
	addrModeDPY                       // Direct Page Y
	addrModeDPI                       // Direct Page Indirect
	addrModeDPIX                      // Direct Page Indexed Indirect X
	addrModeDPIY                      // Direct Page Indirect Indexed Y
	addrModeDPIL                      // Direct Page Indirect Long
	addrModeDPILY                     // Direct Page Indirect Long Indexed Y
	addrModeABS                       // Absolute
	addrModeABSX                      // Absolute X
	addrModeABSY                      // Absolute Y
	addrModeABSI                      // Absolute Indirect
	addrModeABSIX                     // Absolute Indexed Indirect X
	addrModeABSL                      // Absolute Long
	addrModeABSLX                     // Absolute Long X
	addrModeABSIL                     // Absolute Indirect Long
	addrModeSR                        // Stack Relative
	addrModeSRIY                      // Stack Relative Indirect Indexed Y
	addrModeBLK                       // Block Move
	addrModeREL                       // Relative
	addrModeRELL                      // Relative Long
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMP:
		return "IMP"
	case addrModeACC:
		return "ACC"
	case addrModeIMM:
		return "IMM"
	case addrModeDP:
		return "DP"
	case addrModeDPX:
		return "DPX"
	case addrModeDPY:
		return "DPY"
	case addrModeDPI:
		return "DPI"
	case addrModeDPIX:
		return "DPIX"
	case addrModeDPIY:
		return "DPIY"
	case addrModeDPIL:
		return "DPIL"
	case addrModeDPILY:
		return "DPILY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeABSI:
		return "ABSI"
	case addrModeABSIX:
		return "ABSIX"
	case addrModeABSL:
		return "ABSL"
	case addrModeABSLX:
		return "ABSLX"
	case addrModeABSIL:
		return "ABSIL"
	case addrModeSR:
		return "SR"
	case addrModeSRIY:
		return "SRIY"
	case addrModeBLK:
		return "BLK"
	case addrModeREL:
		return "REL"
	case addrModeRELL:
		return "RELL"
	}
	return "???"
}

// operandSize returns the number of operand bytes following the opcode.
func (mode addrMode) operandSize(wide bool) uint32 {
	switch mode {
	case addrModeIMP, addrModeACC:
		return 0
	case addrModeIMM:
		if wide {
			return 2
		}
		return 1
	case addrModeABS, addrModeABSX, addrModeABSY, addrModeABSI,
		addrModeABSIX, addrModeABSIL, addrModeBLK, addrModeRELL:
		return 2
	case addrModeABSL, addrModeABSLX:
		return 3
	}
	return 1
}

// operand is the result of resolving an addressing mode for one instruction.
type operand struct {
	mode    addrMode
	addr    uint32 // effective 24-bit address, or the target for jumps and branches
	value   uint16 // operand already read at the instruction's width
	wide    bool   // operand is 16 bits
	extra   uint8  // extra cycles caused by this resolution
	crossed bool   // branch target is on a different page
	src     uint8  // block move source bank
	dst     uint8  // block move destination bank
}

func read16(bus Bus, addr uint32) uint16 {
	return uint16(bus.Read8(addr)) | uint16(bus.Read8((addr+1)&0xffffff))<<8
}

func read24(bus Bus, addr uint32) uint32 {
	return uint32(read16(bus, addr)) | uint32(bus.Read8((addr+2)&0xffffff))<<16
}

func write16(bus Bus, addr uint32, data uint16) {
	bus.Write8(addr, uint8(data))
	bus.Write8((addr+1)&0xffffff, uint8(data>>8))
}

func readWidth(bus Bus, addr uint32, wide bool) uint16 {
	if wide {
		return read16(bus, addr)
	}
	return uint16(bus.Read8(addr))
}

func isDiffPage(a, b uint32) bool {
	return a&0xffff00 != b&0xffff00
}

// bank0 builds an address in bank zero, wrapping the offset at 16 bits.
func bank0(offset uint16) uint32 {
	return uint32(offset)
}

func (c *CPU) isWide(w width) bool {
	switch w {
	case widthAcc:
		return !c.memory8()
	case widthIndex:
		return !c.index8()
	case width16:
		return true
	}
	return false
}

func (c *CPU) fetch8(bus Bus) uint8 {
	v := bus.Read8(c.pcAddr())
	c.incPC(1)
	return v
}

func (c *CPU) fetch16(bus Bus) uint16 {
	v := read16(bus, c.pcAddr())
	c.incPC(2)
	return v
}

func (c *CPU) fetch24(bus Bus) uint32 {
	v := read24(bus, c.pcAddr())
	c.incPC(3)
	return v
}

// directPage returns the bank zero address of a direct page offset and the
// penalty cycle paid when D is not page aligned.
func (c *CPU) directPage(offset uint16) (uint32, uint8) {
	var extra uint8
	if c.d&0xff != 0 {
		extra = 1
	}
	return bank0(c.d + offset), extra
}

func (c *CPU) dataAddr(offset uint16) uint32 {
	return uint32(c.db)<<16 | uint32(offset)
}

// indexed adds an index register to a 24-bit base and reports the page
// crossing penalty.
func indexed(base uint32, index uint16) (uint32, uint8) {
	addr := (base + uint32(index)) & 0xffffff
	if isDiffPage(base, addr) {
		return addr, 1
	}
	return addr, 0
}

// resolve advances PC past the operand bytes, computes the effective address
// and, when read is set, fetches the operand at the requested width.
func (c *CPU) resolve(bus Bus, mode addrMode, w width, read bool) operand {
	op := operand{mode: mode, wide: c.isWide(w)}

	switch mode {
	case addrModeIMP:
		return op

	case addrModeACC:
		op.value = c.getA()
		return op

	case addrModeIMM:
		op.addr = c.pcAddr()
		if op.wide {
			op.value = c.fetch16(bus)
		} else {
			op.value = uint16(c.fetch8(bus))
		}
		return op

	case addrModeDP:
		op.addr, op.extra = c.directPage(uint16(c.fetch8(bus)))

	case addrModeDPX:
		op.addr, op.extra = c.directPage(uint16(c.fetch8(bus)) + c.getX())

	case addrModeDPY:
		op.addr, op.extra = c.directPage(uint16(c.fetch8(bus)) + c.getY())

	case addrModeDPI:
		ptr, extra := c.directPage(uint16(c.fetch8(bus)))
		op.addr = c.dataAddr(read16(bus, ptr))
		op.extra = extra

	case addrModeDPIX:
		ptr, extra := c.directPage(uint16(c.fetch8(bus)) + c.getX())
		op.addr = c.dataAddr(read16(bus, ptr))
		op.extra = extra

	case addrModeDPIY:
		ptr, extra := c.directPage(uint16(c.fetch8(bus)))
		var crossed uint8
		op.addr, crossed = indexed(c.dataAddr(read16(bus, ptr)), c.getY())
		op.extra = extra + crossed

	case addrModeDPIL:
		ptr, extra := c.directPage(uint16(c.fetch8(bus)))
		op.addr = read24(bus, ptr)
		op.extra = extra

	case addrModeDPILY:
		ptr, extra := c.directPage(uint16(c.fetch8(bus)))
		op.addr = (read24(bus, ptr) + uint32(c.getY())) & 0xffffff
		op.extra = extra

	case addrModeABS:
		op.addr = c.dataAddr(c.fetch16(bus))

	case addrModeABSX:
		op.addr, op.extra = indexed(c.dataAddr(c.fetch16(bus)), c.getX())

	case addrModeABSY:
		op.addr, op.extra = indexed(c.dataAddr(c.fetch16(bus)), c.getY())

	case addrModeABSI:
		ptr := c.fetch16(bus)
		op.addr = uint32(c.pb)<<16 | uint32(read16(bus, bank0(ptr)))

	case addrModeABSIX:
		ptr := c.fetch16(bus) + c.getX()
		op.addr = uint32(c.pb)<<16 | uint32(read16(bus, uint32(c.pb)<<16|uint32(ptr)))

	case addrModeABSL:
		op.addr = c.fetch24(bus)

	case addrModeABSLX:
		op.addr = (c.fetch24(bus) + uint32(c.getX())) & 0xffffff

	case addrModeABSIL:
		ptr := c.fetch16(bus)
		op.addr = read24(bus, bank0(ptr))

	case addrModeSR:
		op.addr = bank0(c.s + uint16(c.fetch8(bus)))

	case addrModeSRIY:
		ptr := bank0(c.s + uint16(c.fetch8(bus)))
		op.addr = (c.dataAddr(read16(bus, ptr)) + uint32(c.getY())) & 0xffffff

	case addrModeBLK:
		op.dst = c.fetch8(bus)
		op.src = c.fetch8(bus)
		op.value = uint16(op.src)<<8 | uint16(op.dst)
		return op

	case addrModeREL:
		offset := int8(c.fetch8(bus))
		target := c.pc + uint16(offset)
		op.crossed = c.pc&0xff00 != target&0xff00
		op.addr = uint32(c.pb)<<16 | uint32(target)
		return op

	case addrModeRELL:
		offset := c.fetch16(bus)
		op.addr = uint32(c.pb)<<16 | uint32(c.pc+offset)
		return op
	}

	if read {
		op.value = readWidth(bus, op.addr, op.wide)
	}
	return op
}

// writeOperand stores a result back to where the operand came from:
// the accumulator in accumulator mode, otherwise memory at the operand width.
func (c *CPU) writeOperand(bus Bus, op operand, v uint16) {
	if op.mode == addrModeACC {
		c.setA(v)
		return
	}
	if op.wide {
		write16(bus, op.addr, v)
		return
	}
	bus.Write8(op.addr, uint8(v))
}
