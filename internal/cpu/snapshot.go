package cpu

import "fmt"

//go:generate go run github.com/tinylib/msgp -tests=false -marshal=false

// Snapshot is a copy of everything the CPU keeps between instructions.
type Snapshot struct {
	A, X, Y, S, D uint16
	DB, PB        uint8
	PC            uint16
	P             uint8
	Emulation     bool
	Halted        bool
	Waiting       bool
}

// StatusString renders P as NVMXDIZC, or NV1BDIZC in emulation mode.
func (s Snapshot) StatusString() string {
	return statusString(s.P, s.Emulation)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A:%04X X:%04X Y:%04X S:%04X D:%04X DB:%02X PC:%02X:%04X P:%s",
		s.A, s.X, s.Y, s.S, s.D, s.DB, s.PB, s.PC, s.StatusString())
}
