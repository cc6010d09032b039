package snes

const (
	dmaChannelCount = 8

	dmaSetupCycles     = 8
	dmaByteCycles      = 8
	hdmaOverheadCycles = 18
	hdmaChannelCycles  = 8
)

// B-bus offsets written by one transfer unit, per mode
var dmaModePatterns = [...][]uint8{
	0: {0},
	1: {0, 1},
	2: {0, 0},
	3: {0, 0, 1, 1},
	4: {0, 1, 2, 3},
}

// dmaChannel is a view over the 16 raw registers of one channel at $43x0.
//
// $43x0: DMAPx control
// $43x1: BBADx B-bus address
// $43x2-$43x4: A1Tx A-bus address and bank, HDMA table start
// $43x5-$43x6: DASx byte count, HDMA indirect address
// $43x7: DASBx HDMA indirect bank
// $43x8-$43x9: A2Ax HDMA table address
// $43xA: NLTRx HDMA line counter
type dmaChannel []uint8

func (ch dmaChannel) pattern() []uint8 {
	mode := ch[0x0] & 0x07
	if int(mode) >= len(dmaModePatterns) {
		mode = 0
	}
	return dmaModePatterns[mode]
}

func (ch dmaChannel) toA() bool {
	return ch[0x0]&0x80 != 0
}

func (ch dmaChannel) indirect() bool {
	return ch[0x0]&0x40 != 0
}

func (ch dmaChannel) step() uint16 {
	switch (ch[0x0] >> 3) & 0x03 {
	case 0:
		return 1
	case 2:
		return 0xffff
	}
	return 0
}

func (ch dmaChannel) bAddr() uint8 {
	return ch[0x1]
}

func (ch dmaChannel) word(i int) uint16 {
	return uint16(ch[i]) | uint16(ch[i+1])<<8
}

func (ch dmaChannel) setWord(i int, v uint16) {
	ch[i] = uint8(v)
	ch[i+1] = uint8(v >> 8)
}

func (ch dmaChannel) aAddr() uint16 {
	return ch.word(0x2)
}

func (ch dmaChannel) setAAddr(v uint16) {
	ch.setWord(0x2, v)
}

func (ch dmaChannel) aBank() uint8 {
	return ch[0x4]
}

func (ch dmaChannel) count() uint16 {
	return ch.word(0x5)
}

func (ch dmaChannel) setCount(v uint16) {
	ch.setWord(0x5, v)
}

func (ch dmaChannel) indirectBank() uint8 {
	return ch[0x7]
}

func (ch dmaChannel) tableAddr() uint16 {
	return ch.word(0x8)
}

func (ch dmaChannel) setTableAddr(v uint16) {
	ch.setWord(0x8, v)
}

func (ch dmaChannel) lineCounter() uint8 {
	return ch[0xa]
}

func (ch dmaChannel) setLineCounter(v uint8) {
	ch[0xa] = v
}

func long(bank uint8, addr uint16) uint32 {
	return uint32(bank)<<16 | uint32(addr)
}

// dmaController keeps the per-frame HDMA state. Everything else lives in
// the channel registers on the bus.
type dmaController struct {
	hdmaDone       [dmaChannelCount]bool
	hdmaDoTransfer [dmaChannelCount]bool
}

// execute runs every channel enabled in MDMAEN to completion and returns
// the cycles the CPU was stalled for.
func (d *dmaController) execute(m memory) uint64 {
	enabled := m.bus.mdmaen()
	cycles := uint64(dmaSetupCycles)

	for n := 0; n < dmaChannelCount; n++ {
		if enabled&(1<<n) == 0 {
			continue
		}
		ch := m.bus.channel(n)
		pattern := ch.pattern()
		step := ch.step()

		size := uint32(ch.count())
		if size == 0 {
			size = 0x10000
		}

		addr := ch.aAddr()
		for i := uint32(0); i < size; i++ {
			a := long(ch.aBank(), addr)
			b := ch.bAddr() + pattern[i%uint32(len(pattern))]
			if ch.toA() {
				m.Write8(a, m.readB(b))
			} else {
				m.writeB(b, m.Read8(a))
			}
			addr += step
			cycles += dmaByteCycles
		}
		ch.setAAddr(addr)
		ch.setCount(0)
	}

	return cycles
}

// initHDMA loads the table pointers of the channels enabled in HDMAEN.
// It runs once at the start of each frame.
func (d *dmaController) initHDMA(m memory) {
	enabled := m.bus.hdmaen()
	for n := 0; n < dmaChannelCount; n++ {
		d.hdmaDoTransfer[n] = false
		d.hdmaDone[n] = enabled&(1<<n) == 0
		if d.hdmaDone[n] {
			continue
		}
		ch := m.bus.channel(n)
		ch.setTableAddr(ch.aAddr())
		d.reload(m, n)
	}
}

// reload reads the next table entry header: a line count with the repeat
// flag in bit 7, followed by the data address in indirect mode.
// A zero header ends the channel for this frame.
func (d *dmaController) reload(m memory, n int) {
	ch := m.bus.channel(n)
	table := ch.tableAddr()

	header := m.Read8(long(ch.aBank(), table))
	table++
	if header == 0 {
		ch.setTableAddr(table)
		d.hdmaDone[n] = true
		d.hdmaDoTransfer[n] = false
		return
	}
	ch.setLineCounter(header)

	if ch.indirect() {
		lo := m.Read8(long(ch.aBank(), table))
		hi := m.Read8(long(ch.aBank(), table+1))
		table += 2
		ch.setCount(uint16(lo) | uint16(hi)<<8)
	}
	ch.setTableAddr(table)
	d.hdmaDoTransfer[n] = true
}

// executeHDMA performs one scanline of HDMA and returns the cycles spent.
func (d *dmaController) executeHDMA(m memory) uint64 {
	enabled := m.bus.hdmaen()
	if enabled == 0 {
		return 0
	}

	cycles := uint64(hdmaOverheadCycles)
	for n := 0; n < dmaChannelCount; n++ {
		if enabled&(1<<n) == 0 || d.hdmaDone[n] {
			continue
		}
		cycles += hdmaChannelCycles
		ch := m.bus.channel(n)

		if d.hdmaDoTransfer[n] {
			for _, offset := range ch.pattern() {
				var src uint32
				if ch.indirect() {
					src = long(ch.indirectBank(), ch.count())
					ch.setCount(ch.count() + 1)
				} else {
					src = long(ch.aBank(), ch.tableAddr())
					ch.setTableAddr(ch.tableAddr() + 1)
				}

				b := ch.bAddr() + offset
				if ch.toA() {
					m.Write8(src, m.readB(b))
				} else {
					m.writeB(b, m.Read8(src))
				}
				cycles += dmaByteCycles
			}
		}

		lines := ch.lineCounter() - 1
		ch.setLineCounter(lines)
		d.hdmaDoTransfer[n] = lines&0x80 != 0
		if lines&0x7f == 0 {
			d.reload(m, n)
		}
	}
	return cycles
}
