package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Disassemble(t *testing.T) {
	testDo := func(t *testing.T, program []uint8, m8, x8 bool, expText string, expSize int) {
		bus := ramBus{}
		bus.load(0x008000, program...)

		text, size := Disassemble(bus, 0x008000, m8, x8)

		assert.Equal(t, expText, text)
		assert.Equal(t, expSize, size)
	}

	t.Run("immediate 8-bit", func(t *testing.T) {
		testDo(t, []uint8{0xa9, 0x42}, true, true, "$00:8000: LDA #$42 {IMM}", 2)
	})
	t.Run("immediate 16-bit", func(t *testing.T) {
		testDo(t, []uint8{0xa9, 0x34, 0x12}, false, true, "$00:8000: LDA #$1234 {IMM}", 3)
	})
	t.Run("index immediate follows X", func(t *testing.T) {
		testDo(t, []uint8{0xa2, 0x34, 0x12}, true, false, "$00:8000: LDX #$1234 {IMM}", 3)
	})
	t.Run("REP is always 8-bit", func(t *testing.T) {
		testDo(t, []uint8{0xc2, 0x30}, false, false, "$00:8000: REP #$30 {IMM}", 2)
	})
	t.Run("implied", func(t *testing.T) {
		testDo(t, []uint8{0xea}, true, true, "$00:8000: NOP {IMP}", 1)
	})
	t.Run("accumulator", func(t *testing.T) {
		testDo(t, []uint8{0x0a}, true, true, "$00:8000: ASL A {ACC}", 1)
	})
	t.Run("branch target", func(t *testing.T) {
		testDo(t, []uint8{0xd0, 0x0a}, true, true, "$00:8000: BNE $800C {REL}", 2)
	})
	t.Run("long branch target", func(t *testing.T) {
		testDo(t, []uint8{0x82, 0xfd, 0xff}, true, true, "$00:8000: BRL $8000 {RELL}", 3)
	})
	t.Run("long address", func(t *testing.T) {
		testDo(t, []uint8{0x22, 0x00, 0x80, 0x01}, true, true, "$00:8000: JSL $018000 {ABSL}", 4)
	})
	t.Run("block move shows source first", func(t *testing.T) {
		testDo(t, []uint8{0x54, 0x7f, 0x7e}, true, true, "$00:8000: MVN $7E,$7F {BLK}", 3)
	})
	t.Run("stack relative indirect", func(t *testing.T) {
		testDo(t, []uint8{0xb3, 0x02}, true, true, "$00:8000: LDA ($02,S),Y {SRIY}", 2)
	})
	t.Run("WDM signature byte", func(t *testing.T) {
		testDo(t, []uint8{0x42, 0x01}, false, false, "$00:8000: WDM #$01 {IMM}", 2)
	})
	t.Run("undefined", func(t *testing.T) {
		clearOpcode(t, 0x42)
		testDo(t, []uint8{0x42}, true, true, "$00:8000: ???", 1)
	})
}

func Test_DisassembleAt(t *testing.T) {
	c, bus := newNativeCPU(0xa9, 0xcd, 0xab)

	assert.Equal(t, "$00:8000: LDA #$ABCD {IMM}", c.DisassembleAt(bus))
}
