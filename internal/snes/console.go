package snes

import (
	"github.com/nevisdale/snestic/internal/config"
	"github.com/nevisdale/snestic/internal/cpu"
)

// Console owns every device and decides the order they run in.
type Console struct {
	cpu  *cpu.CPU
	ppu  *PPU
	apu  *APU
	bus  *Bus
	cart *Cart
	dma  dmaController

	cycles       uint64
	hdmaInitDone bool

	paused  bool
	stepOne bool
}

func NewConsole(cart *Cart, cfg config.Config) *Console {
	c := &Console{
		cpu:  cpu.NewCPU(),
		ppu:  NewPPU(cfg.PAL()),
		apu:  NewAPU(),
		bus:  NewBus(),
		cart: cart,
	}
	c.cpu.LogUndefined = cfg.Debug.LogUndefined
	c.Reset()
	return c
}

// memory lends the devices to the CPU and DMA for one tick.
func (c *Console) memory() memory {
	return memory{
		bus:  c.bus,
		cart: c.cart,
		ppu:  c.ppu,
		apu:  c.apu,
	}
}

func (c *Console) Reset() {
	c.bus.reset()
	c.ppu.Reset()
	c.apu.Reset()
	c.dma = dmaController{}
	c.cycles = 0
	c.hdmaInitDone = false
	c.cpu.Reset(c.memory())
}

// Tic runs one scheduler tick. A pending general purpose DMA takes the
// whole tick; otherwise the CPU executes one instruction and the PPU and
// APU catch up with the cycles it spent, interrupt entry included.
func (c *Console) Tic() {
	m := c.memory()

	if c.bus.mdmaen() != 0 {
		c.cycles += c.dma.execute(m)
		c.bus.sys[regMDMAEN] = 0
		return
	}

	if c.ppu.Scanline() == 0 {
		if !c.hdmaInitDone && c.bus.hdmaen() != 0 {
			c.dma.initHDMA(m)
			c.hdmaInitDone = true
		}
	} else {
		c.hdmaInitDone = false
	}

	c.bus.flushPPU(c.ppu)

	c.catchUp(m, c.cpu.Step(m))

	if c.ppu.NMIPending() {
		c.catchUp(m, c.cpu.NMI(m))
	}
	if c.ppu.IRQPending() {
		c.catchUp(m, c.cpu.IRQ(m))
	}
}

// catchUp runs the PPU and APU for the cycles the CPU just spent and adds
// them to the total.
func (c *Console) catchUp(m memory, cycles uint8) {
	for i := 0; i < int(cycles)*dotsPerCycle; i++ {
		line := c.ppu.Scanline()
		c.ppu.Step(c.bus)
		if next := c.ppu.Scanline(); next != line && next >= 1 && next <= visibleScanlines {
			c.cycles += c.dma.executeHDMA(m)
		}
	}

	for i := 0; i < int(cycles); i++ {
		c.apu.Step()
	}

	c.cycles += uint64(cycles)
}

// RunFrame ticks until the PPU starts the next frame.
func (c *Console) RunFrame() {
	frame := c.ppu.Frame()
	for c.ppu.Frame() == frame {
		c.Tic()
	}
}

// Advance runs a frame, a single tick after OneStepAndStop, or nothing while paused.
func (c *Console) Advance() {
	switch {
	case c.stepOne:
		c.stepOne = false
		c.Tic()
	case !c.paused:
		c.RunFrame()
	}
}

func (c *Console) TogglePause() {
	c.paused = !c.paused
}

func (c *Console) OneStepAndStop() {
	c.paused = true
	c.stepOne = true
}

func (c Console) Paused() bool {
	return c.paused
}

func (c Console) Cycles() uint64 {
	return c.cycles
}

func (c Console) CPU() cpu.Snapshot {
	return c.cpu.Snapshot()
}

func (c Console) PPU() *PPU {
	return c.ppu
}

func (c Console) Cart() *Cart {
	return c.cart
}

type DebugInfo struct {
	CPU cpu.Snapshot

	Scanline    uint16
	Dot         uint16
	Frame       uint64
	Cycles      uint64
	Paused      bool
	ForcedBlank bool
	Brightness  uint8
}

func (c Console) DebugInfo() DebugInfo {
	return DebugInfo{
		CPU:         c.cpu.Snapshot(),
		Scanline:    c.ppu.Scanline(),
		Dot:         c.ppu.Dot(),
		Frame:       c.ppu.Frame(),
		Cycles:      c.cycles,
		Paused:      c.paused,
		ForcedBlank: c.ppu.ForcedBlank(),
		Brightness:  c.ppu.Brightness(),
	}
}

// Disassemble lists n instructions starting at PC, decoded with the
// current register widths.
func (c *Console) Disassemble(n int) []string {
	s := c.cpu.Snapshot()
	m8 := s.Emulation || s.P&0x20 != 0
	x8 := s.Emulation || s.P&0x10 != 0

	view := peekMemory{c.memory()}
	addr := c.cpu.PC()
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		text, size := cpu.Disassemble(view, addr, m8, x8)
		lines = append(lines, text)
		addr = addr&0xff0000 | (addr+uint32(size))&0xffff
	}
	return lines
}
