package snes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stepLines(p *PPU, bus *Bus, lines int) {
	for i := 0; i < lines*dotsPerScanline; i++ {
		p.Step(bus)
	}
}

func Test_PPU_Timing(t *testing.T) {
	t.Run("NTSC frame", func(t *testing.T) {
		p := NewPPU(false)
		bus := NewBus()

		p.Step(bus)
		assert.Equal(t, uint16(1), p.Dot())

		stepLines(p, bus, ntscScanlines)
		assert.Equal(t, uint64(1), p.Frame())
		assert.Equal(t, uint16(0), p.Scanline())
		assert.Equal(t, uint16(1), p.Dot())
	})

	t.Run("PAL frame", func(t *testing.T) {
		p := NewPPU(true)
		bus := NewBus()

		stepLines(p, bus, ntscScanlines)
		assert.Equal(t, uint64(0), p.Frame())
		assert.Equal(t, uint16(ntscScanlines), p.Scanline())

		stepLines(p, bus, palScanlines-ntscScanlines)
		assert.Equal(t, uint64(1), p.Frame())
	})

	t.Run("vblank", func(t *testing.T) {
		p := NewPPU(false)
		bus := NewBus()

		stepLines(p, bus, vblankScanline-1)
		assert.False(t, p.VBlank())

		stepLines(p, bus, 1)
		assert.True(t, p.VBlank())
		assert.Equal(t, uint8(0x80), p.hvbjoy()&0x80)

		stepLines(p, bus, ntscScanlines-vblankScanline)
		assert.False(t, p.VBlank())
	})

	t.Run("Reset keeps the region", func(t *testing.T) {
		p := NewPPU(true)
		stepLines(p, NewBus(), 3)

		p.Reset()
		assert.Equal(t, uint16(0), p.Scanline())
		assert.Equal(t, uint16(palScanlines), p.scanlines)
	})
}

func Test_PPU_Interrupts(t *testing.T) {
	t.Run("NMI on vblank when enabled", func(t *testing.T) {
		p := NewPPU(false)
		bus := NewBus()
		bus.sys[regNMITIMEN] = 0x80

		stepLines(p, bus, vblankScanline-1)
		assert.False(t, p.NMIPending())

		stepLines(p, bus, 1)
		assert.True(t, p.NMIPending())
		assert.False(t, p.NMIPending(), "reading clears the flag")

		stepLines(p, bus, 10)
		assert.False(t, p.NMIPending(), "raised once per frame")
	})

	t.Run("no NMI when disabled", func(t *testing.T) {
		p := NewPPU(false)
		bus := NewBus()

		stepLines(p, bus, vblankScanline)
		assert.False(t, p.NMIPending())
		assert.Equal(t, uint8(0x80), p.readRDNMI())
		assert.Equal(t, uint8(0), p.readRDNMI())
	})

	t.Run("V-IRQ at VTIME", func(t *testing.T) {
		p := NewPPU(false)
		bus := NewBus()
		bus.sys[regNMITIMEN] = 0x20
		bus.sys[regVTIMEL] = 100

		stepLines(p, bus, 99)
		assert.False(t, p.IRQPending())

		stepLines(p, bus, 1)
		assert.True(t, p.IRQPending())
		assert.False(t, p.IRQPending())
		assert.Equal(t, uint8(0x80), p.readTimeUp())
		assert.Equal(t, uint8(0), p.readTimeUp())
	})
}

func Test_PPU_Registers(t *testing.T) {
	t.Run("write-only registers", func(t *testing.T) {
		p := NewPPU(false)
		p.WriteRegister(0x2100, 0x8f)

		_, ok := p.ReadRegister(0x2100)
		assert.False(t, ok)
		assert.True(t, p.ForcedBlank())
		assert.Equal(t, uint8(0x0f), p.Brightness())
	})

	t.Run("STAT78 reports the region", func(t *testing.T) {
		data, ok := NewPPU(false).ReadRegister(0x213f)
		assert.True(t, ok)
		assert.Equal(t, uint8(0x03), data)

		data, _ = NewPPU(true).ReadRegister(0x213f)
		assert.Equal(t, uint8(0x13), data)
	})

	t.Run("counter latch", func(t *testing.T) {
		p := NewPPU(false)
		bus := NewBus()
		stepLines(p, bus, 0x101)
		for i := 0; i < 0x105; i++ {
			p.Step(bus)
		}

		_, ok := p.ReadRegister(0x2137)
		assert.False(t, ok)

		lo, _ := p.ReadRegister(0x213c)
		hi, _ := p.ReadRegister(0x213c)
		assert.Equal(t, uint8(0x05), lo)
		assert.Equal(t, uint8(0x01), hi)

		lo, _ = p.ReadRegister(0x213d)
		hi, _ = p.ReadRegister(0x213d)
		assert.Equal(t, uint8(0x01), lo)
		assert.Equal(t, uint8(0x01), hi)

		stat, _ := p.ReadRegister(0x213f)
		assert.Equal(t, uint8(0x40), stat&0x40)
		stat, _ = p.ReadRegister(0x213f)
		assert.Zero(t, stat&0x40)
	})
}
