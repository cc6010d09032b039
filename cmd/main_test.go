package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFlags(t *testing.T, values map[string]string) {
	for name, value := range values {
		require.NoError(t, flag.CommandLine.Set(name, value))
	}
}

// writeRom writes a 32 KiB LoROM image that loops at $8000.
func writeRom(t *testing.T, dir string) string {
	rom := make([]uint8, 0x8000)
	rom[0] = 0x80 // BRA *
	rom[1] = 0xfe
	rom[0x7ffc] = 0x00
	rom[0x7ffd] = 0x80

	path := filepath.Join(dir, "loop.sfc")
	require.NoError(t, os.WriteFile(path, rom, 0o644))
	return path
}

func Test_Run(t *testing.T) {
	t.Run("profile is written when the rom fails to load", func(t *testing.T) {
		dir := t.TempDir()
		setFlags(t, map[string]string{
			"rom":      filepath.Join(dir, "missing.sfc"),
			"headless": "true",
			"profile":  "mem",
			"state":    "",
		})

		err := run(dir)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "couldn't load the rom")
		assert.FileExists(t, filepath.Join(dir, "mem.pprof"))
	})

	t.Run("headless run saves the state", func(t *testing.T) {
		dir := t.TempDir()
		statePath := filepath.Join(dir, "loop.state")
		setFlags(t, map[string]string{
			"rom":      writeRom(t, dir),
			"headless": "true",
			"profile":  "",
			"frames":   "1",
			"state":    statePath,
		})

		require.NoError(t, run(dir))
		assert.FileExists(t, statePath)
		assert.NoFileExists(t, filepath.Join(dir, "mem.pprof"))
	})
}
