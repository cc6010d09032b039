package snes

// the IPL ROM signature the CPU waits for before uploading
const (
	iplReady0  = 0xaa
	iplReady1  = 0xbb
	iplKickoff = 0xcc
)

// APU models the four communication ports and the audio clock.
// Once the CPU starts the upload handshake the ports echo whatever
// the CPU wrote, which is what the upload loop polls for.
type APU struct {
	cycles uint64
	in     [4]uint8
	out    [4]uint8
	booted bool
}

func NewAPU() *APU {
	a := &APU{}
	a.Reset()
	return a
}

func (a *APU) Reset() {
	*a = APU{out: [4]uint8{iplReady0, iplReady1, 0, 0}}
}

func (a *APU) Step() {
	a.cycles++
}

func (a APU) Cycles() uint64 {
	return a.cycles
}

func (a APU) ReadPort(port uint8) uint8 {
	return a.out[port&3]
}

func (a *APU) WritePort(port uint8, data uint8) {
	port &= 3
	a.in[port] = data
	if !a.booted && port == 0 && data == iplKickoff {
		a.booted = true
	}
	if a.booted {
		a.out[port] = data
	}
}
