package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Registers_PowerOn(t *testing.T) {
	var r registers
	r.powerOn()

	assert.True(t, r.emulation, "emulation")
	assert.True(t, r.memory8(), "M")
	assert.True(t, r.index8(), "X")
	assert.True(t, r.getFlag(flagI), "I")
	assert.Equal(t, uint16(0x01ff), r.s, "S")
}

func Test_Registers_Widths(t *testing.T) {
	t.Run("8-bit accumulator write keeps high byte", func(t *testing.T) {
		r := registers{a: 0x1234, p: flagM}
		r.setA(0xabff)

		assert.Equal(t, uint16(0x00ff), r.getA())
		assert.Equal(t, uint16(0x12ff), r.a)

		r.setFlag(flagM, false)
		assert.Equal(t, uint16(0x12ff), r.getA(), "stale high byte is visible in 16-bit mode")
	})

	t.Run("16-bit accumulator write", func(t *testing.T) {
		r := registers{a: 0x1234}
		r.setA(0xabcd)

		assert.Equal(t, uint16(0xabcd), r.getA())
	})

	t.Run("8-bit index writes keep high byte", func(t *testing.T) {
		r := registers{x: 0x1100, y: 0x2200, p: flagX}
		r.setX(0x1ff)
		r.setY(0x2ee)

		assert.Equal(t, uint16(0xff), r.getX())
		assert.Equal(t, uint16(0xee), r.getY())
		assert.Equal(t, uint16(0x11ff), r.x)
		assert.Equal(t, uint16(0x22ee), r.y)
	})

	t.Run("index width does not follow M", func(t *testing.T) {
		r := registers{x: 0x1234, p: flagM}
		assert.Equal(t, uint16(0x1234), r.getX())
	})
}

func Test_Registers_FlagsZN(t *testing.T) {
	testDo := func(t *testing.T, p uint8, value uint16, index bool, expectedP uint8) {
		r := registers{p: p}
		if index {
			r.setFlagsZNIndex(value)
		} else {
			r.setFlagsZN(value)
		}
		assert.Equal(t, expectedP, r.p, "P register")
	}

	t.Run("8-bit accumulator negative", func(t *testing.T) {
		testDo(t, flagM, 0x0180, false, flagM|flagN)
	})
	t.Run("8-bit accumulator zero ignores high byte", func(t *testing.T) {
		testDo(t, flagM, 0x0100, false, flagM|flagZ)
	})
	t.Run("16-bit accumulator negative", func(t *testing.T) {
		testDo(t, 0, 0x8000, false, flagN)
	})
	t.Run("16-bit accumulator not zero", func(t *testing.T) {
		testDo(t, flagZ|flagN, 0x0100, false, 0)
	})
	t.Run("index width", func(t *testing.T) {
		testDo(t, flagX, 0x0080, true, flagX|flagN)
	})
}

func Test_Registers_Stack(t *testing.T) {
	t.Run("push writes high byte first", func(t *testing.T) {
		bus := ramBus{}
		r := registers{s: 0x1fff}
		r.stackPush16(bus, 0xbeef)

		assert.Equal(t, uint8(0xbe), bus[0x1fff])
		assert.Equal(t, uint8(0xef), bus[0x1ffe])
		assert.Equal(t, uint16(0x1ffd), r.s)
		assert.Equal(t, uint16(0xbeef), r.stackPop16(bus))
		assert.Equal(t, uint16(0x1fff), r.s)
	})

	t.Run("emulation push wraps into page one", func(t *testing.T) {
		bus := ramBus{}
		r := registers{s: 0x0100, emulation: true}
		r.stackPush8(bus, 0x42)

		assert.Equal(t, uint8(0x42), bus[0x0100])
		assert.Equal(t, uint16(0x01ff), r.s)
	})

	t.Run("emulation pop wraps into page one", func(t *testing.T) {
		bus := ramBus{0x0100: 0x24}
		r := registers{s: 0x01ff, emulation: true}

		assert.Equal(t, uint8(0x24), r.stackPop8(bus))
		assert.Equal(t, uint16(0x0100), r.s)
	})

	t.Run("native stack leaves page one", func(t *testing.T) {
		bus := ramBus{}
		r := registers{s: 0x0100}
		r.stackPush8(bus, 0x42)

		assert.Equal(t, uint16(0x00ff), r.s)
	})

	t.Run("stack high byte stays 01 in emulation", func(t *testing.T) {
		bus := ramBus{}
		r := registers{s: 0x0180, emulation: true}
		for i := 0; i < 0x300; i++ {
			if i%3 == 0 {
				r.stackPop8(bus)
			} else {
				r.stackPush16(bus, uint16(i))
			}
			assert.Equal(t, uint16(0x01), r.s>>8)
		}
	})
}

func Test_Registers_PC(t *testing.T) {
	r := registers{pb: 0xff, pc: 0xfffe}
	r.incPC(3)

	assert.Equal(t, uint8(0x00), r.pb)
	assert.Equal(t, uint16(0x0001), r.pc)

	r.setPCAddr(0x7e1234)
	assert.Equal(t, uint32(0x7e1234), r.pcAddr())
}

func Test_Registers_SetEmulation(t *testing.T) {
	t.Run("entering emulation forces widths and pins stack", func(t *testing.T) {
		r := registers{s: 0x1f42}
		r.setEmulation(true)

		assert.True(t, r.memory8())
		assert.True(t, r.index8())
		assert.Equal(t, uint16(0x0142), r.s)
	})

	t.Run("entering native keeps stack", func(t *testing.T) {
		r := registers{s: 0x0142, p: flagM | flagX, emulation: true}
		r.setEmulation(false)

		assert.False(t, r.emulation)
		assert.Equal(t, uint16(0x0142), r.s)
		assert.True(t, r.memory8())
	})

	t.Run("setP in emulation keeps 8-bit widths", func(t *testing.T) {
		r := registers{emulation: true}
		r.setP(0)

		assert.Equal(t, flagM|flagX, r.p)
	})
}

func Test_StatusString(t *testing.T) {
	assert.Equal(t, "NvMxdIzC", statusString(flagN|flagM|flagI|flagC, false))
	assert.Equal(t, "nv1BdIZc", statusString(flagM|flagB|flagI|flagZ, true))
}
