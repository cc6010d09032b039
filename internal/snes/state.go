package snes

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/nevisdale/snestic/internal/cpu"
	"github.com/tinylib/msgp/msgp"
)

//go:generate go run github.com/tinylib/msgp -tests=false -marshal=false

const stateVersion = 1

// State is everything needed to resume a console, except the ROM.
type State struct {
	Version int

	CPU          cpu.Snapshot
	Cycles       uint64
	HDMAInitDone bool

	PPU  PPUState
	APU  APUState
	Bus  BusState
	HDMA HDMAState
	SRAM []uint8
}

type PPUState struct {
	Regs       [ppuPortCount]uint8
	Dot        uint16
	Scanline   uint16
	Frame      uint64
	VBlank     bool
	RDNMI      bool
	TimeUp     bool
	NMIPending bool
	IRQPending bool
}

type APUState struct {
	Cycles uint64
	In     [4]uint8
	Out    [4]uint8
	Booted bool
}

type BusState struct {
	WRAM    []uint8
	WMADDR  uint32
	Sys     [sysPortCount]uint8
	DMA     [dmaPortCount]uint8
	Pending []PPUWrite
	RDDIV   uint16
	RDMPY   uint16
	OpenBus uint8
}

// PPUWrite is a register write the CPU made that the PPU has not seen yet.
type PPUWrite struct {
	Addr uint16
	Data uint8
}

type HDMAState struct {
	Done       [dmaChannelCount]bool
	DoTransfer [dmaChannelCount]bool
}

func (c *Console) State() State {
	s := State{
		Version:      stateVersion,
		CPU:          c.cpu.Snapshot(),
		Cycles:       c.cycles,
		HDMAInitDone: c.hdmaInitDone,
		PPU: PPUState{
			Regs:       c.ppu.regs,
			Dot:        c.ppu.dot,
			Scanline:   c.ppu.scanline,
			Frame:      c.ppu.frame,
			VBlank:     c.ppu.vblank,
			RDNMI:      c.ppu.rdnmi,
			TimeUp:     c.ppu.timeup,
			NMIPending: c.ppu.nmiPending,
			IRQPending: c.ppu.irqPending,
		},
		APU: APUState{
			Cycles: c.apu.cycles,
			In:     c.apu.in,
			Out:    c.apu.out,
			Booted: c.apu.booted,
		},
		Bus: BusState{
			WRAM:    append([]uint8(nil), c.bus.wram[:]...),
			WMADDR:  c.bus.wmaddr,
			Sys:     c.bus.sys,
			DMA:     c.bus.dma,
			Pending: append([]PPUWrite(nil), c.bus.pending...),
			RDDIV:   c.bus.rddiv,
			RDMPY:   c.bus.rdmpy,
			OpenBus: c.bus.openBus,
		},
		HDMA: HDMAState{
			Done:       c.dma.hdmaDone,
			DoTransfer: c.dma.hdmaDoTransfer,
		},
	}
	if c.cart != nil {
		s.SRAM = append([]uint8(nil), c.cart.SRAM()...)
	}
	return s
}

// SetState restores a state taken with State. The console is left
// untouched when the version does not match.
func (c *Console) SetState(s State) error {
	if s.Version != stateVersion {
		return fmt.Errorf("%w: %d", ErrStateVersion, s.Version)
	}

	c.cpu.Restore(s.CPU)
	c.cycles = s.Cycles
	c.hdmaInitDone = s.HDMAInitDone

	c.ppu.regs = s.PPU.Regs
	c.ppu.dot = s.PPU.Dot
	c.ppu.scanline = s.PPU.Scanline
	c.ppu.frame = s.PPU.Frame
	c.ppu.vblank = s.PPU.VBlank
	c.ppu.rdnmi = s.PPU.RDNMI
	c.ppu.timeup = s.PPU.TimeUp
	c.ppu.nmiPending = s.PPU.NMIPending
	c.ppu.irqPending = s.PPU.IRQPending

	c.apu.cycles = s.APU.Cycles
	c.apu.in = s.APU.In
	c.apu.out = s.APU.Out
	c.apu.booted = s.APU.Booted

	copy(c.bus.wram[:], s.Bus.WRAM)
	c.bus.wmaddr = s.Bus.WMADDR & (wramSizeBytes - 1)
	c.bus.sys = s.Bus.Sys
	c.bus.dma = s.Bus.DMA
	c.bus.pending = append(c.bus.pending[:0], s.Bus.Pending...)
	c.bus.rddiv = s.Bus.RDDIV
	c.bus.rdmpy = s.Bus.RDMPY
	c.bus.openBus = s.Bus.OpenBus

	c.dma.hdmaDone = s.HDMA.Done
	c.dma.hdmaDoTransfer = s.HDMA.DoTransfer

	if c.cart != nil {
		c.cart.LoadSRAM(s.SRAM)
	}
	return nil
}

// SaveState writes the state as MessagePack, gzip compressed.
func (c *Console) SaveState(w io.Writer) error {
	zw := gzip.NewWriter(w)
	s := c.State()
	if err := msgp.Encode(zw, &s); err != nil {
		return &ErrStateIO{Op: "encode", Err: err}
	}
	if err := zw.Close(); err != nil {
		return &ErrStateIO{Op: "compress", Err: err}
	}
	return nil
}

func (c *Console) LoadState(r io.Reader) error {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return &ErrStateIO{Op: "decompress", Err: err}
	}
	defer zr.Close()

	var s State
	if err := msgp.Decode(zr, &s); err != nil {
		return &ErrStateIO{Op: "decode", Err: err}
	}
	return c.SetState(s)
}

func (c *Console) SaveStateFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &ErrStateIO{Op: "create", Err: err}
	}
	if err := c.SaveState(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return &ErrStateIO{Op: "close", Err: err}
	}
	return nil
}

func (c *Console) LoadStateFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return &ErrStateIO{Op: "open", Err: err}
	}
	defer file.Close()

	return c.LoadState(file)
}
