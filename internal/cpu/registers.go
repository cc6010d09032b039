package cpu

import "strings"

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // IRQ Disable
	flagD                    // Decimal Mode
	flagX                    // Index width, 8-bit when set
	flagM                    // Accumulator/memory width, 8-bit when set
	flagV                    // Overflow
	flagN                    // Negative
)

// In emulation mode bit 4 of a pushed status byte is the Break flag.
const flagB = flagX

const (
	stackPage     = uint16(0x0100)
	powerOnStatus = flagM | flagX | flagI
	powerOnStack  = uint16(0x01ff)
)

// registers is the register file of the 65C816. Accumulator and index
// registers always hold 16 bits; the width flags only select the view.
type registers struct {
	a  uint16 // accumulator, B:A in 8-bit mode
	x  uint16
	y  uint16
	s  uint16 // stack pointer
	d  uint16 // direct page
	db uint8  // data bank
	pb uint8  // program bank
	pc uint16 // program counter offset within pb
	p  uint8  // processor status

	emulation bool
}

func (r *registers) powerOn() {
	*r = registers{
		s:         powerOnStack,
		p:         powerOnStatus,
		emulation: true,
	}
}

func (r registers) getFlag(flag uint8) bool {
	return r.p&flag > 0
}

func (r *registers) setFlag(flag uint8, v bool) {
	if v {
		r.p |= flag
		return
	}
	r.p &= ^flag
}

// setP loads the whole status byte. Emulation mode keeps both widths at 8 bits.
func (r *registers) setP(v uint8) {
	r.p = v
	r.forceWidths()
}

func (r *registers) forceWidths() {
	if r.emulation {
		r.p |= flagM | flagX
	}
}

func (r registers) memory8() bool {
	return r.p&flagM > 0
}

func (r registers) index8() bool {
	return r.p&flagX > 0
}

func (r registers) getA() uint16 {
	if r.memory8() {
		return r.a & 0xff
	}
	return r.a
}

func (r *registers) setA(v uint16) {
	if r.memory8() {
		r.a = r.a&0xff00 | v&0xff
		return
	}
	r.a = v
}

func (r registers) getX() uint16 {
	if r.index8() {
		return r.x & 0xff
	}
	return r.x
}

func (r *registers) setX(v uint16) {
	if r.index8() {
		r.x = r.x&0xff00 | v&0xff
		return
	}
	r.x = v
}

func (r registers) getY() uint16 {
	if r.index8() {
		return r.y & 0xff
	}
	return r.y
}

func (r *registers) setY(v uint16) {
	if r.index8() {
		r.y = r.y&0xff00 | v&0xff
		return
	}
	r.y = v
}

func (r *registers) setS(v uint16) {
	r.s = v
	if r.emulation {
		r.s = stackPage | r.s&0xff
	}
}

func (r *registers) setFlagsZNWidth(v uint16, wide bool) {
	if wide {
		r.setFlag(flagZ, v == 0)
		r.setFlag(flagN, v&0x8000 > 0)
		return
	}
	r.setFlag(flagZ, v&0xff == 0)
	r.setFlag(flagN, v&0x80 > 0)
}

// setFlagsZN updates N and Z using the accumulator width.
func (r *registers) setFlagsZN(v uint16) {
	r.setFlagsZNWidth(v, !r.memory8())
}

// setFlagsZNIndex updates N and Z using the index register width.
func (r *registers) setFlagsZNIndex(v uint16) {
	r.setFlagsZNWidth(v, !r.index8())
}

func (r registers) pcAddr() uint32 {
	return uint32(r.pb)<<16 | uint32(r.pc)
}

func (r *registers) setPCAddr(addr uint32) {
	r.pb = uint8(addr >> 16)
	r.pc = uint16(addr)
}

// incPC advances the 24-bit program counter, wrapping at $FFFFFF.
func (r *registers) incPC(n uint32) {
	r.setPCAddr((r.pcAddr() + n) & 0xffffff)
}

// setEmulation switches between emulation and native mode. Entering
// emulation mode forces 8-bit widths and pins the stack to page 1.
func (r *registers) setEmulation(on bool) {
	r.emulation = on
	if on {
		r.forceWidths()
		r.setS(r.s)
	}
}

func (r *registers) stackPush8(bus Bus, data uint8) {
	bus.Write8(uint32(r.s), data)
	r.setS(r.s - 1)
}

func (r *registers) stackPush16(bus Bus, data uint16) {
	r.stackPush8(bus, uint8(data>>8))
	r.stackPush8(bus, uint8(data))
}

func (r *registers) stackPop8(bus Bus) uint8 {
	r.setS(r.s + 1)
	return bus.Read8(uint32(r.s))
}

func (r *registers) stackPop16(bus Bus) uint16 {
	lo := uint16(r.stackPop8(bus))
	hi := uint16(r.stackPop8(bus))
	return lo | hi<<8
}

// statusString renders the status byte as NVMXDIZC, lower case for clear bits.
func statusString(p uint8, emulation bool) string {
	names := "NVMXDIZC"
	if emulation {
		names = "NV1BDIZC"
	}
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		c := names[i]
		if p&(0x80>>i) == 0 && c != '1' {
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
