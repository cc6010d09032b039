package snes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_APU_Handshake(t *testing.T) {
	a := NewAPU()

	assert.Equal(t, uint8(0xaa), a.ReadPort(0))
	assert.Equal(t, uint8(0xbb), a.ReadPort(1))
	assert.Equal(t, uint8(0x00), a.ReadPort(2))

	a.WritePort(1, 0x01)
	a.WritePort(0, 0x12)
	assert.Equal(t, uint8(0xaa), a.ReadPort(0), "no echo before kickoff")

	a.WritePort(0, 0xcc)
	assert.Equal(t, uint8(0xcc), a.ReadPort(0))

	a.WritePort(1, 0x42)
	a.WritePort(0, 0x00)
	assert.Equal(t, uint8(0x42), a.ReadPort(1))
	assert.Equal(t, uint8(0x00), a.ReadPort(0))
	assert.Equal(t, uint8(0x42), a.ReadPort(5), "port index wraps")
}

func Test_APU_Step(t *testing.T) {
	a := NewAPU()
	a.WritePort(0, 0xcc)
	for i := 0; i < 10; i++ {
		a.Step()
	}
	assert.Equal(t, uint64(10), a.Cycles())

	a.Reset()
	assert.Zero(t, a.Cycles())
	assert.Equal(t, uint8(0xaa), a.ReadPort(0))
}
