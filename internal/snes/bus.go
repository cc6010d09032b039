package snes

const (
	wramSizeBytes = 0x20000
	lowRAMSize    = 0x2000

	ppuPortCount = 0x40
	sysPortCount = 0x20
	dmaPortCount = 0x80
)

// system registers, relative to $4200
const (
	regNMITIMEN = 0x00
	regWRMPYA   = 0x02
	regWRMPYB   = 0x03
	regWRDIVL   = 0x04
	regWRDIVH   = 0x05
	regWRDIVB   = 0x06
	regVTIMEL   = 0x09
	regVTIMEH   = 0x0a
	regMDMAEN   = 0x0b
	regHDMAEN   = 0x0c
	regRDNMI    = 0x10
	regTIMEUP   = 0x11
	regHVBJOY   = 0x12
	regRDDIVL   = 0x14
	regRDDIVH   = 0x15
	regRDMPYL   = 0x16
	regRDMPYH   = 0x17
)

const cpuVersion = 0x02

// Bus holds the memory and the raw register ports that are not owned
// by a device. Devices are attached per tick through memory.
type Bus struct {
	wram   [wramSizeBytes]uint8
	wmaddr uint32

	sys [sysPortCount]uint8
	dma [dmaPortCount]uint8

	pending []PPUWrite

	rddiv   uint16
	rdmpy   uint16
	openBus uint8
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) reset() {
	b.sys = [sysPortCount]uint8{}
	b.pending = b.pending[:0]
	b.wmaddr = 0
	b.rddiv = 0
	b.rdmpy = 0
	b.openBus = 0
}

func (b *Bus) nmitimen() uint8 {
	return b.sys[regNMITIMEN]
}

func (b *Bus) vtime() uint16 {
	return uint16(b.sys[regVTIMEL]) | uint16(b.sys[regVTIMEH]&0x01)<<8
}

func (b *Bus) mdmaen() uint8 {
	return b.sys[regMDMAEN]
}

func (b *Bus) hdmaen() uint8 {
	return b.sys[regHDMAEN]
}

// flushPPU hands buffered register writes to the PPU in the order the CPU made them.
func (b *Bus) flushPPU(ppu *PPU) {
	for _, w := range b.pending {
		ppu.WriteRegister(w.Addr, w.Data)
	}
	b.pending = b.pending[:0]
}

func (b *Bus) channel(n int) dmaChannel {
	return dmaChannel(b.dma[n*0x10 : n*0x10+0x10])
}

// Banks $00-$3F and $80-$BF:
// $0000-$1FFF: mirror of the first 8 KiB of WRAM
// $2100-$213F: PPU registers
// $2140-$217F: APU ports, mirrored every 4 bytes
// $2180-$2183: WRAM port
// $4200-$421F: CPU system registers
// $4300-$437F: DMA channel registers
// $6000-$FFFF: cartridge
//
// Banks $7E-$7F: 128 KiB of WRAM
// Banks $40-$7D and $C0-$FF: cartridge
type memory struct {
	bus  *Bus
	cart *Cart
	ppu  *PPU
	apu  *APU
}

func (m memory) Read8(addr uint32) uint8 {
	data, ok := m.read(addr)
	if !ok {
		return m.bus.openBus
	}
	m.bus.openBus = data
	return data
}

func (m memory) read(addr uint32) (uint8, bool) {
	addr &= 0xffffff
	bank := uint8(addr >> 16)
	offset := uint16(addr)

	switch {
	case bank == 0x7e || bank == 0x7f:
		return m.bus.wram[addr&(wramSizeBytes-1)], true
	case bank&0x40 != 0:
		return m.readCart(addr)
	}

	switch {
	// read from low ram
	case offset < lowRAMSize:
		return m.bus.wram[offset], true
	// read from ppu
	case offset >= 0x2100 && offset < 0x2140:
		return m.ppu.ReadRegister(offset)
	// read from apu
	case offset >= 0x2140 && offset < 0x2180:
		return m.apu.ReadPort(uint8(offset)), true
	// read from wram port
	case offset == 0x2180:
		data := m.bus.wram[m.bus.wmaddr]
		m.bus.wmaddr = (m.bus.wmaddr + 1) & (wramSizeBytes - 1)
		return data, true
	// read from system registers
	case offset >= 0x4200 && offset < 0x4220:
		return m.readSystem(uint8(offset - 0x4200))
	// read from dma registers
	case offset >= 0x4300 && offset < 0x4380:
		return m.bus.dma[offset-0x4300], true
	case offset >= 0x6000:
		return m.readCart(addr)
	}
	return 0, false
}

func (m memory) readCart(addr uint32) (uint8, bool) {
	if m.cart == nil {
		return 0, false
	}
	return m.cart.Read8(addr)
}

func (m memory) readSystem(reg uint8) (uint8, bool) {
	switch reg {
	case regRDNMI:
		return m.ppu.readRDNMI() | cpuVersion, true
	case regTIMEUP:
		return m.ppu.readTimeUp(), true
	case regHVBJOY:
		return m.ppu.hvbjoy(), true
	case regRDDIVL:
		return uint8(m.bus.rddiv), true
	case regRDDIVH:
		return uint8(m.bus.rddiv >> 8), true
	case regRDMPYL:
		return uint8(m.bus.rdmpy), true
	case regRDMPYH:
		return uint8(m.bus.rdmpy >> 8), true
	}
	return m.bus.sys[reg], true
}

func (m memory) Write8(addr uint32, data uint8) {
	addr &= 0xffffff
	bank := uint8(addr >> 16)
	offset := uint16(addr)

	switch {
	case bank == 0x7e || bank == 0x7f:
		m.bus.wram[addr&(wramSizeBytes-1)] = data
		return
	case bank&0x40 != 0:
		m.writeCart(addr, data)
		return
	}

	switch {
	// write to low ram
	case offset < lowRAMSize:
		m.bus.wram[offset] = data
	// write to ppu, applied at the start of the next tick
	case offset >= 0x2100 && offset < 0x2140:
		m.bus.pending = append(m.bus.pending, PPUWrite{Addr: offset, Data: data})
	// write to apu
	case offset >= 0x2140 && offset < 0x2180:
		m.apu.WritePort(uint8(offset), data)
	// write to wram port
	case offset == 0x2180:
		m.bus.wram[m.bus.wmaddr] = data
		m.bus.wmaddr = (m.bus.wmaddr + 1) & (wramSizeBytes - 1)
	case offset >= 0x2181 && offset < 0x2184:
		shift := 8 * uint32(offset-0x2181)
		m.bus.wmaddr &^= 0xff << shift
		m.bus.wmaddr |= uint32(data) << shift
		m.bus.wmaddr &= wramSizeBytes - 1
	// write to system registers
	case offset >= 0x4200 && offset < 0x4220:
		m.writeSystem(uint8(offset-0x4200), data)
	// write to dma registers
	case offset >= 0x4300 && offset < 0x4380:
		m.bus.dma[offset-0x4300] = data
	case offset >= 0x6000:
		m.writeCart(addr, data)
	}
}

func (m memory) writeCart(addr uint32, data uint8) {
	if m.cart != nil {
		m.cart.Write8(addr, data)
	}
}

func (m memory) writeSystem(reg uint8, data uint8) {
	b := m.bus
	b.sys[reg] = data

	switch reg {
	case regWRMPYB:
		b.rdmpy = uint16(b.sys[regWRMPYA]) * uint16(data)
	case regWRDIVB:
		dividend := uint16(b.sys[regWRDIVL]) | uint16(b.sys[regWRDIVH])<<8
		if data == 0 {
			b.rddiv = 0xffff
			b.rdmpy = dividend
			return
		}
		b.rddiv = dividend / uint16(data)
		b.rdmpy = dividend % uint16(data)
	}
}

// readB and writeB access the B-bus the way DMA sees it: $2100 plus an 8-bit offset.
// PPU writes skip the pending buffer.
func (m memory) readB(reg uint8) uint8 {
	return m.Read8(0x2100 | uint32(reg))
}

func (m memory) writeB(reg uint8, data uint8) {
	if reg < ppuPortCount {
		m.ppu.WriteRegister(0x2100|uint16(reg), data)
		return
	}
	m.Write8(0x2100|uint32(reg), data)
}

// peekMemory reads memory and cartridge without touching any register,
// for the debugger. Writes are dropped.
type peekMemory struct {
	m memory
}

func (p peekMemory) Read8(addr uint32) uint8 {
	addr &= 0xffffff
	bank := uint8(addr >> 16)
	offset := uint16(addr)

	switch {
	case bank == 0x7e || bank == 0x7f:
		return p.m.bus.wram[addr&(wramSizeBytes-1)]
	case bank&0x40 == 0 && offset < lowRAMSize:
		return p.m.bus.wram[offset]
	case bank&0x40 != 0 || offset >= 0x6000:
		if data, ok := p.m.readCart(addr); ok {
			return data
		}
	}
	return 0
}

func (p peekMemory) Write8(uint32, uint8) {}
