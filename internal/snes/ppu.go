package snes

const (
	dotsPerScanline  = 341
	visibleScanlines = 224
	vblankScanline   = 225
	ntscScanlines    = 262
	palScanlines     = 312
	hblankDot        = 274

	// the PPU runs four dots for every CPU cycle
	dotsPerCycle = 4
)

// PPU tracks the beam position and raises the vblank and timer interrupts.
// Registers $2100-$213F are latched but nothing is rendered.
type PPU struct {
	regs [ppuPortCount]uint8

	dot       uint16
	scanline  uint16
	frame     uint64
	scanlines uint16
	pal       bool

	vblank     bool
	rdnmi      bool
	timeup     bool
	nmiPending bool
	irqPending bool

	// $2137 counter latch
	ophct, opvct    uint16
	ophctHigh       bool
	opvctHigh       bool
	countersLatched bool
}

func NewPPU(pal bool) *PPU {
	p := &PPU{pal: pal, scanlines: ntscScanlines}
	if pal {
		p.scanlines = palScanlines
	}
	return p
}

func (p *PPU) Reset() {
	*p = *NewPPU(p.pal)
}

// Step advances the beam by one dot.
func (p *PPU) Step(bus *Bus) {
	p.dot++
	if p.dot < dotsPerScanline {
		return
	}
	p.dot = 0
	p.scanline++

	if p.scanline >= p.scanlines {
		p.scanline = 0
		p.frame++
		p.vblank = false
		p.rdnmi = false
	}

	nmitimen := bus.nmitimen()
	if p.scanline == vblankScanline {
		p.vblank = true
		p.rdnmi = true
		if nmitimen&0x80 != 0 {
			p.nmiPending = true
		}
	}
	if nmitimen&0x20 != 0 && p.scanline == bus.vtime() {
		p.timeup = true
		p.irqPending = true
	}
}

func (p PPU) Scanline() uint16 {
	return p.scanline
}

func (p PPU) Dot() uint16 {
	return p.dot
}

func (p PPU) Frame() uint64 {
	return p.frame
}

func (p PPU) VBlank() bool {
	return p.vblank
}

// NMIPending reports a vblank NMI raised since the last call.
func (p *PPU) NMIPending() bool {
	pending := p.nmiPending
	p.nmiPending = false
	return pending
}

// IRQPending reports a timer IRQ raised since the last call.
func (p *PPU) IRQPending() bool {
	pending := p.irqPending
	p.irqPending = false
	return pending
}

// ForcedBlank and Brightness decode INIDISP ($2100).
func (p PPU) ForcedBlank() bool {
	return p.regs[0]&0x80 != 0
}

func (p PPU) Brightness() uint8 {
	return p.regs[0] & 0x0f
}

func (p *PPU) WriteRegister(addr uint16, data uint8) {
	p.regs[addr&(ppuPortCount-1)] = data
}

// ReadRegister returns false for write-only registers so the bus answers
// with the open bus value.
func (p *PPU) ReadRegister(addr uint16) (uint8, bool) {
	reg := addr & (ppuPortCount - 1)
	switch reg {
	case 0x37:
		p.ophct, p.opvct = p.dot, p.scanline
		p.countersLatched = true
		return 0, false
	case 0x3c:
		data := p.ophct
		if p.ophctHigh {
			data >>= 8
		}
		p.ophctHigh = !p.ophctHigh
		return uint8(data), true
	case 0x3d:
		data := p.opvct
		if p.opvctHigh {
			data >>= 8
		}
		p.opvctHigh = !p.opvctHigh
		return uint8(data), true
	case 0x3e:
		return 0x01, true
	case 0x3f:
		data := uint8(0x03)
		if p.pal {
			data |= 0x10
		}
		if p.countersLatched {
			data |= 0x40
		}
		p.countersLatched = false
		p.ophctHigh = false
		p.opvctHigh = false
		return data, true
	}
	if reg >= 0x34 {
		return p.regs[reg], true
	}
	return 0, false
}

func (p *PPU) readRDNMI() uint8 {
	if !p.rdnmi {
		return 0
	}
	p.rdnmi = false
	return 0x80
}

func (p *PPU) readTimeUp() uint8 {
	if !p.timeup {
		return 0
	}
	p.timeup = false
	return 0x80
}

func (p PPU) hvbjoy() uint8 {
	var data uint8
	if p.vblank {
		data |= 0x80
	}
	if p.dot >= hblankDot {
		data |= 0x40
	}
	return data
}
