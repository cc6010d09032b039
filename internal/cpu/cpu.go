package cpu

import "log"

// Bus is the 24-bit address space the CPU reads and writes through.
type Bus interface {
	Read8(addr uint32) uint8
	Write8(addr uint32, data uint8)
}

const (
	vectorCOPNative = uint32(0xffe4)
	vectorNMINative = uint32(0xffea)
	vectorIRQNative = uint32(0xffee)
	vectorCOPEmu    = uint32(0xfff4)
	vectorNMIEmu    = uint32(0xfffa)
	vectorReset     = uint32(0xfffc)
	vectorIRQEmu    = uint32(0xfffe)
)

const (
	interruptCycles       = 8
	undefinedOpcodeCycles = 2
	idleCycles            = 1
	blockMoveCycles       = 7
)

type CPU struct {
	registers

	halted  bool // STP, cleared only by Reset
	waiting bool // WAI, cleared by NMI or IRQ

	// LogUndefined reports undefined opcodes through the standard logger.
	LogUndefined bool
}

func NewCPU() *CPU {
	c := &CPU{LogUndefined: true}
	c.powerOn()
	return c
}

// Reset puts the CPU into emulation mode with power-on registers
// and loads PC from the reset vector.
func (c *CPU) Reset(bus Bus) {
	c.powerOn()
	c.halted = false
	c.waiting = false
	c.pc = read16(bus, vectorReset)
}

// Step executes one instruction and returns the number of cycles it took.
func (c *CPU) Step(bus Bus) uint8 {
	if c.halted || c.waiting {
		return idleCycles
	}

	pc := c.pcAddr()
	opcode := c.fetch8(bus)
	op, ok := Decode(opcode)
	if !ok {
		if c.LogUndefined {
			log.Printf("undefined opcode %02X. PC: %06X. skipping...\n", opcode, pc)
		}
		return undefinedOpcodeCycles
	}
	return c.execute(bus, op)
}

// NMI enters the non-maskable interrupt handler.
// It returns the cycles spent, zero if the CPU is halted.
func (c *CPU) NMI(bus Bus) uint8 {
	if c.emulation {
		return c.interrupt(bus, vectorNMIEmu)
	}
	return c.interrupt(bus, vectorNMINative)
}

// IRQ enters the interrupt handler unless interrupts are disabled.
// It returns the cycles spent, zero if the request was ignored.
func (c *CPU) IRQ(bus Bus) uint8 {
	if c.getFlag(flagI) {
		return 0
	}
	if c.emulation {
		return c.interrupt(bus, vectorIRQEmu)
	}
	return c.interrupt(bus, vectorIRQNative)
}

func (c *CPU) interrupt(bus Bus, vector uint32) uint8 {
	if c.halted {
		return 0
	}
	c.waiting = false

	p := c.p
	if c.emulation {
		p &= ^flagB
	} else {
		c.stackPush8(bus, c.pb)
	}
	c.stackPush16(bus, c.pc)
	c.stackPush8(bus, p)
	c.setFlag(flagI, true)
	c.pb = 0
	c.pc = read16(bus, vector)
	return interruptCycles
}

func (c CPU) Halted() bool {
	return c.halted
}

func (c CPU) Waiting() bool {
	return c.waiting
}

func (c CPU) Emulation() bool {
	return c.emulation
}

// PC returns the 24-bit program counter.
func (c CPU) PC() uint32 {
	return c.pcAddr()
}

func (c CPU) Snapshot() Snapshot {
	return Snapshot{
		A:         c.a,
		X:         c.x,
		Y:         c.y,
		S:         c.s,
		D:         c.d,
		DB:        c.db,
		PB:        c.pb,
		PC:        c.pc,
		P:         c.p,
		Emulation: c.emulation,
		Halted:    c.halted,
		Waiting:   c.waiting,
	}
}

// Restore loads a snapshot. The emulation mode invariants are applied
// to the restored registers.
func (c *CPU) Restore(s Snapshot) {
	c.registers = registers{
		a:         s.A,
		x:         s.X,
		y:         s.Y,
		s:         s.S,
		d:         s.D,
		db:        s.DB,
		pb:        s.PB,
		pc:        s.PC,
		p:         s.P,
		emulation: s.Emulation,
	}
	c.setEmulation(s.Emulation)
	c.halted = s.Halted
	c.waiting = s.Waiting
}

