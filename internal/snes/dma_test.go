package snes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupChannel writes the control, B-bus address, A-bus address and count of channel n.
func setupChannel(m memory, n int, control, bAddr uint8, aAddr uint32, count uint16) {
	base := uint32(0x4300 + n*0x10)
	m.Write8(base+0x0, control)
	m.Write8(base+0x1, bAddr)
	m.Write8(base+0x2, uint8(aAddr))
	m.Write8(base+0x3, uint8(aAddr>>8))
	m.Write8(base+0x4, uint8(aAddr>>16))
	m.Write8(base+0x5, uint8(count))
	m.Write8(base+0x6, uint8(count>>8))
}

func Test_DMA_Execute(t *testing.T) {
	t.Run("mode 0 to the WRAM port", func(t *testing.T) {
		m := newTestMemory()
		copy(m.bus.wram[0x1000:], []uint8{1, 2, 3, 4})
		m.Write8(0x2182, 0x20)
		setupChannel(m, 0, 0x00, 0x80, 0x7e1000, 4)
		m.Write8(0x420b, 0x01)

		var d dmaController
		cycles := d.execute(m)

		assert.Equal(t, uint64(dmaSetupCycles+4*dmaByteCycles), cycles)
		assert.Equal(t, []uint8{1, 2, 3, 4}, m.bus.wram[0x2000:0x2004])
		assert.Equal(t, uint16(0x1004), m.bus.channel(0).aAddr())
		assert.Zero(t, m.bus.channel(0).count())
	})

	t.Run("mode 1 alternates two registers", func(t *testing.T) {
		m := newTestMemory()
		copy(m.bus.wram[0:], []uint8{1, 2, 3, 4})
		setupChannel(m, 1, 0x01, 0x18, 0x7e0000, 4)
		m.Write8(0x420b, 0x02)

		var d dmaController
		d.execute(m)

		assert.Equal(t, uint8(3), m.ppu.regs[0x18])
		assert.Equal(t, uint8(4), m.ppu.regs[0x19])
		assert.Empty(t, m.bus.pending, "DMA writes reach the PPU directly")
	})

	t.Run("fixed source", func(t *testing.T) {
		m := newTestMemory()
		m.bus.wram[0x10] = 0xee
		setupChannel(m, 0, 0x08, 0x80, 0x7e0010, 3)
		m.Write8(0x2182, 0x01)
		m.Write8(0x420b, 0x01)

		var d dmaController
		d.execute(m)

		assert.Equal(t, []uint8{0xee, 0xee, 0xee}, m.bus.wram[0x100:0x103])
		assert.Equal(t, uint16(0x0010), m.bus.channel(0).aAddr())
	})

	t.Run("decrementing source", func(t *testing.T) {
		m := newTestMemory()
		copy(m.bus.wram[0:], []uint8{1, 2, 3})
		setupChannel(m, 0, 0x10, 0x80, 0x7e0002, 3)
		m.Write8(0x2182, 0x01)
		m.Write8(0x420b, 0x01)

		var d dmaController
		d.execute(m)

		assert.Equal(t, []uint8{3, 2, 1}, m.bus.wram[0x100:0x103])
		assert.Equal(t, uint16(0xffff), m.bus.channel(0).aAddr())
	})

	t.Run("B-bus to A-bus", func(t *testing.T) {
		m := newTestMemory()
		setupChannel(m, 0, 0x81, 0x40, 0x7e0200, 2)
		m.Write8(0x420b, 0x01)

		var d dmaController
		d.execute(m)

		assert.Equal(t, []uint8{0xaa, 0xbb}, m.bus.wram[0x200:0x202])
	})

	t.Run("unsupported modes fall back to mode 0", func(t *testing.T) {
		m := newTestMemory()
		copy(m.bus.wram[0:], []uint8{1, 2})
		setupChannel(m, 0, 0x05, 0x18, 0x7e0000, 2)
		m.Write8(0x420b, 0x01)

		var d dmaController
		d.execute(m)

		assert.Equal(t, uint8(2), m.ppu.regs[0x18])
		assert.Zero(t, m.ppu.regs[0x19])
	})

	t.Run("zero count moves 64 KiB", func(t *testing.T) {
		m := newTestMemory()
		setupChannel(m, 0, 0x08, 0x80, 0x7e0000, 0)
		m.Write8(0x420b, 0x01)

		var d dmaController
		cycles := d.execute(m)

		assert.Equal(t, uint64(dmaSetupCycles+0x10000*dmaByteCycles), cycles)
		assert.Equal(t, uint32(0x10000), m.bus.wmaddr)
	})

	t.Run("channels run in order with one setup", func(t *testing.T) {
		m := newTestMemory()
		m.bus.wram[0x10] = 0x01
		m.bus.wram[0x20] = 0x02
		setupChannel(m, 0, 0x00, 0x80, 0x7e0010, 1)
		setupChannel(m, 3, 0x00, 0x80, 0x7e0020, 1)
		m.Write8(0x2182, 0x01)
		m.Write8(0x420b, 0x09)

		var d dmaController
		cycles := d.execute(m)

		assert.Equal(t, uint64(dmaSetupCycles+2*dmaByteCycles), cycles)
		assert.Equal(t, []uint8{0x01, 0x02}, m.bus.wram[0x100:0x102])
	})
}

func Test_HDMA(t *testing.T) {
	t.Run("direct table", func(t *testing.T) {
		m := newTestMemory()
		copy(m.bus.wram[0x300:], []uint8{0x01, 0x05, 0x02, 0x0a, 0x00})
		setupChannel(m, 2, 0x00, 0x00, 0x7e0300, 0)
		m.Write8(0x420c, 0x04)

		var d dmaController
		d.initHDMA(m)
		assert.Equal(t, uint16(0x301), m.bus.channel(2).tableAddr())
		assert.Equal(t, uint8(0x01), m.bus.channel(2).lineCounter())

		cycles := d.executeHDMA(m)
		assert.Equal(t, uint64(hdmaOverheadCycles+hdmaChannelCycles+dmaByteCycles), cycles)
		assert.Equal(t, uint8(0x05), m.ppu.Brightness())

		d.executeHDMA(m)
		assert.Equal(t, uint8(0x0a), m.ppu.Brightness())

		m.ppu.WriteRegister(0x2100, 0x00)
		d.executeHDMA(m)
		assert.Zero(t, m.ppu.Brightness(), "no repeat flag")
		assert.True(t, d.hdmaDone[2])

		cycles = d.executeHDMA(m)
		assert.Equal(t, uint64(hdmaOverheadCycles), cycles)
	})

	t.Run("repeat writes every line", func(t *testing.T) {
		m := newTestMemory()
		copy(m.bus.wram[0x300:], []uint8{0x83, 0x01, 0x02, 0x03, 0x00})
		setupChannel(m, 0, 0x00, 0x00, 0x7e0300, 0)
		m.Write8(0x420c, 0x01)

		var d dmaController
		d.initHDMA(m)
		for _, exp := range []uint8{0x01, 0x02, 0x03} {
			d.executeHDMA(m)
			assert.Equal(t, exp, m.ppu.Brightness())
		}
		assert.True(t, d.hdmaDone[0])
	})

	t.Run("indirect table", func(t *testing.T) {
		m := newTestMemory()
		copy(m.bus.wram[0x300:], []uint8{0x82, 0x00, 0x10, 0x00})
		copy(m.bus.wram[0x1000:], []uint8{0x07, 0x08})
		setupChannel(m, 0, 0x40, 0x00, 0x7e0300, 0)
		m.Write8(0x4307, 0x7e)
		m.Write8(0x420c, 0x01)

		var d dmaController
		d.initHDMA(m)
		assert.Equal(t, uint16(0x1000), m.bus.channel(0).count())

		d.executeHDMA(m)
		assert.Equal(t, uint8(0x07), m.ppu.Brightness())
		d.executeHDMA(m)
		assert.Equal(t, uint8(0x08), m.ppu.Brightness())
		assert.True(t, d.hdmaDone[0])
	})

	t.Run("disabled", func(t *testing.T) {
		m := newTestMemory()
		var d dmaController
		d.initHDMA(m)

		assert.Zero(t, d.executeHDMA(m))
	})
}
