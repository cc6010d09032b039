package cpu

import "fmt"

// Disassemble decodes the instruction at addr. m8 and x8 give the
// accumulator and index widths used to size immediate operands.
// size is the instruction length in bytes.
func Disassemble(bus Bus, addr uint32, m8, x8 bool) (text string, size int) {
	opcode := bus.Read8(addr)
	op, ok := Decode(opcode)
	if !ok {
		return fmt.Sprintf("$%02X:%04X: ???", addr>>16, addr&0xffff), 1
	}

	var wide bool
	switch op.instr.width() {
	case widthAcc:
		wide = !m8
	case widthIndex:
		wide = !x8
	case width16:
		wide = true
	}

	n := op.mode.operandSize(wide)
	next := (addr + 1 + n) & 0xffffff
	arg8 := func() uint8 { return bus.Read8((addr + 1) & 0xffffff) }
	arg16 := func() uint16 { return read16(bus, (addr+1)&0xffffff) }
	arg24 := func() uint32 { return read24(bus, (addr+1)&0xffffff) }

	var operand string
	switch op.mode {
	case addrModeIMP:
	case addrModeACC:
		operand = "A"
	case addrModeIMM:
		if wide {
			operand = fmt.Sprintf("#$%04X", arg16())
		} else {
			operand = fmt.Sprintf("#$%02X", arg8())
		}
	case addrModeDP:
		operand = fmt.Sprintf("$%02X", arg8())
	case addrModeDPX:
		operand = fmt.Sprintf("$%02X,X", arg8())
	case addrModeDPY:
		operand = fmt.Sprintf("$%02X,Y", arg8())
	case addrModeDPI:
		operand = fmt.Sprintf("($%02X)", arg8())
	case addrModeDPIX:
		operand = fmt.Sprintf("($%02X,X)", arg8())
	case addrModeDPIY:
		operand = fmt.Sprintf("($%02X),Y", arg8())
	case addrModeDPIL:
		operand = fmt.Sprintf("[$%02X]", arg8())
	case addrModeDPILY:
		operand = fmt.Sprintf("[$%02X],Y", arg8())
	case addrModeABS:
		operand = fmt.Sprintf("$%04X", arg16())
	case addrModeABSX:
		operand = fmt.Sprintf("$%04X,X", arg16())
	case addrModeABSY:
		operand = fmt.Sprintf("$%04X,Y", arg16())
	case addrModeABSI:
		operand = fmt.Sprintf("($%04X)", arg16())
	case addrModeABSIX:
		operand = fmt.Sprintf("($%04X,X)", arg16())
	case addrModeABSIL:
		operand = fmt.Sprintf("[$%04X]", arg16())
	case addrModeABSL:
		operand = fmt.Sprintf("$%06X", arg24())
	case addrModeABSLX:
		operand = fmt.Sprintf("$%06X,X", arg24())
	case addrModeSR:
		operand = fmt.Sprintf("$%02X,S", arg8())
	case addrModeSRIY:
		operand = fmt.Sprintf("($%02X,S),Y", arg8())
	case addrModeBLK:
		operand = fmt.Sprintf("$%02X,$%02X", bus.Read8((addr+2)&0xffffff), arg8())
	case addrModeREL:
		target := uint16(next) + uint16(int8(arg8()))
		operand = fmt.Sprintf("$%04X", target)
	case addrModeRELL:
		target := uint16(next) + arg16()
		operand = fmt.Sprintf("$%04X", target)
	}

	if operand == "" {
		text = fmt.Sprintf("$%02X:%04X: %s {%s}", addr>>16, addr&0xffff, op.instr, op.mode)
	} else {
		text = fmt.Sprintf("$%02X:%04X: %s %s {%s}", addr>>16, addr&0xffff, op.instr, operand, op.mode)
	}
	return text, int(1 + n)
}

// DisassembleAt decodes the instruction at PC using the current widths.
func (c *CPU) DisassembleAt(bus Bus) string {
	text, _ := Disassemble(bus, c.pcAddr(), c.memory8(), c.index8())
	return text
}
