package snes

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/nevisdale/snestic/internal/config"
	"github.com/stretchr/testify/assert"
)

// Test_Console_TraceLog steps SNES_TEST_ROM and compares the registers
// before every tick with SNES_TRACE_LOG, one line per tick.
func Test_Console_TraceLog(t *testing.T) {
	romFile := os.Getenv("SNES_TEST_ROM")
	logFile := os.Getenv("SNES_TRACE_LOG")
	if romFile == "" || logFile == "" {
		t.Skip("skipping test because SNES_TEST_ROM or SNES_TRACE_LOG is not set")
		return
	}

	cart, err := NewCartFromFile(romFile)
	if err != nil {
		t.Fatal("Failed to load the rom:", err)
	}
	cfg := config.Default()
	cfg.Debug.LogUndefined = false
	c := NewConsole(cart, cfg)

	re := regexp.MustCompile(`A:([0-9A-F]{4}) X:([0-9A-F]{4}) Y:([0-9A-F]{4}) S:([0-9A-F]{4}) D:([0-9A-F]{4}) DB:([0-9A-F]{2}) PC:([0-9A-F]{2}):([0-9A-F]{4})`)
	type state struct {
		a, x, y, s, d uint16
		db, pb        uint8
		pc            uint16
	}

	parseLogLine := func(line string) (state, bool) {
		match := re.FindStringSubmatch(line)
		if match == nil {
			return state{}, false
		}
		var v [8]uint64
		for i := range v {
			if v[i], err = strconv.ParseUint(match[i+1], 16, 16); err != nil {
				t.Fatal(err)
			}
		}
		return state{
			a:  uint16(v[0]),
			x:  uint16(v[1]),
			y:  uint16(v[2]),
			s:  uint16(v[3]),
			d:  uint16(v[4]),
			db: uint8(v[5]),
			pb: uint8(v[6]),
			pc: uint16(v[7]),
		}, true
	}

	logFileData, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal("Failed to open the trace log:", err)
	}

	var expectedStates []state
	for _, line := range strings.Split(string(logFileData), "\n") {
		if s, ok := parseLogLine(line); ok {
			expectedStates = append(expectedStates, s)
		}
	}

	for i, expectedState := range expectedStates {
		snap := c.CPU()
		actualState := state{
			a:  snap.A,
			x:  snap.X,
			y:  snap.Y,
			s:  snap.S,
			d:  snap.D,
			db: snap.DB,
			pb: snap.PB,
			pc: snap.PC,
		}
		if !assert.Equal(t, expectedState, actualState, "failed at line %s:%d", logFile, i) {
			return
		}
		c.Tic()
	}
}
