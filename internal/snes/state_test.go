package snes

import (
	"bytes"
	"compress/gzip"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterRom increments $10 in a loop and stores A to the PPU.
func counterRom() []uint8 {
	return newTestRom(
		0xe6, 0x10, // INC $10
		0xa5, 0x10, // LDA $10
		0x8d, 0x00, 0x21, // STA $2100
		0x80, 0xf7, // BRA $8000
	)
}

func Test_State_RoundTrip(t *testing.T) {
	c := newTestConsole(t, counterRom())
	for i := 0; i < 1000; i++ {
		c.Tic()
	}

	var buf bytes.Buffer
	require.NoError(t, c.SaveState(&buf))
	saved := c.State()

	for i := 0; i < 1000; i++ {
		c.Tic()
	}
	expected := c.State()

	restored := newTestConsole(t, counterRom())
	require.NoError(t, restored.LoadState(&buf))
	assert.Equal(t, saved, restored.State())

	for i := 0; i < 1000; i++ {
		restored.Tic()
	}
	assert.Equal(t, expected, restored.State(), "restored console runs identically")
}

func Test_State_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.state")
	c := newTestConsole(t, counterRom())
	c.RunFrame()

	require.NoError(t, c.SaveStateFile(path))

	restored := newTestConsole(t, counterRom())
	require.NoError(t, restored.LoadStateFile(path))
	assert.Equal(t, c.State(), restored.State())
	assert.Equal(t, uint64(1), restored.PPU().Frame())
}

func Test_State_Errors(t *testing.T) {
	t.Run("version mismatch", func(t *testing.T) {
		c := newTestConsole(t, counterRom())
		s := c.State()
		s.Version = stateVersion + 1
		s.Cycles = 1234

		err := c.SetState(s)
		assert.ErrorIs(t, err, ErrStateVersion)
		assert.Zero(t, c.Cycles(), "console untouched")
	})

	t.Run("not a save state", func(t *testing.T) {
		c := newTestConsole(t, counterRom())

		err := c.LoadState(bytes.NewBufferString("garbage"))

		var stateErr *ErrStateIO
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "decompress", stateErr.Op)
	})

	t.Run("compressed garbage", func(t *testing.T) {
		c := newTestConsole(t, counterRom())
		c.Tic()
		before := c.State()

		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]uint8{0xc1, 0x00, 0x01})
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		err = c.LoadState(&buf)

		var stateErr *ErrStateIO
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "decode", stateErr.Op)
		assert.Equal(t, before, c.State(), "console untouched")
	})

	t.Run("missing file", func(t *testing.T) {
		c := newTestConsole(t, counterRom())

		err := c.LoadStateFile(filepath.Join(t.TempDir(), "missing.state"))

		var stateErr *ErrStateIO
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, "open", stateErr.Op)
	})
}

func Test_State_SRAM(t *testing.T) {
	rom := counterRom()
	rom[loromHeaderAddr+headerSramSize] = 1

	c := newTestConsole(t, rom)
	c.memory().Write8(0x700000, 0x99)

	var buf bytes.Buffer
	require.NoError(t, c.SaveState(&buf))

	restored := newTestConsole(t, rom)
	require.NoError(t, restored.LoadState(&buf))
	assert.Equal(t, uint8(0x99), restored.Cart().SRAM()[0])
}
