package snes

import (
	"fmt"
	"log"
	"os"
	"strings"
)

const (
	copierHeaderSize = 512
	minRomSize       = 0x8000

	loromHeaderAddr = 0x7fc0
	hiromHeaderAddr = 0xffc0
	headerSize      = 0x40
)

// internal header layout, relative to the header address
const (
	headerTitle      = 0x00
	headerTitleSize  = 21
	headerMapMode    = 0x15
	headerRomSize    = 0x17
	headerSramSize   = 0x18
	headerComplement = 0x1c
	headerChecksum   = 0x1e
	headerResetVec   = 0x3c
)

type Cart struct {
	rom  []uint8
	sram []uint8

	mapper Mapper
	title  string
}

// NewCartFromFile reads a .sfc/.smc image.
func NewCartFromFile(path string) (*Cart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the file: %w", err)
	}
	return NewCartFromBytes(data)
}

// NewCartFromBytes detects the mapper from the internal header.
// A 512 byte copier header is skipped when present.
func NewCartFromBytes(data []uint8) (*Cart, error) {
	if len(data)%1024 == copierHeaderSize {
		data = data[copierHeaderSize:]
	}
	if len(data) < minRomSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrRomTooSmall, len(data))
	}

	cart := &Cart{
		rom:    make([]uint8, len(data)),
		mapper: MapperLoROM,
	}
	copy(cart.rom, data)

	base := loromHeaderAddr
	if scoreHeader(cart.rom, hiromHeaderAddr, MapperHiROM) > scoreHeader(cart.rom, loromHeaderAddr, MapperLoROM) {
		cart.mapper = MapperHiROM
		base = hiromHeaderAddr
	}

	header := cart.rom[base : base+headerSize]
	cart.title = strings.TrimRight(string(header[headerTitle:headerTitle+headerTitleSize]), " \x00")
	if n := header[headerSramSize]; n > 0 && n <= 8 {
		cart.sram = make([]uint8, 1024<<n)
	}

	return cart, nil
}

// scoreHeader rates how likely the bytes at base are a real internal header.
func scoreHeader(rom []uint8, base int, mapper Mapper) int {
	if base+headerSize > len(rom) {
		return -1
	}
	h := rom[base : base+headerSize]

	score := 0
	complement := uint16(h[headerComplement]) | uint16(h[headerComplement+1])<<8
	checksum := uint16(h[headerChecksum]) | uint16(h[headerChecksum+1])<<8
	if checksum^complement == 0xffff {
		score += 4
	}

	mode := h[headerMapMode]
	if mode&0xe0 == 0x20 {
		hirom := mode&0x01 != 0
		if hirom == (mapper == MapperHiROM) {
			score += 2
		}
	}

	if h[headerRomSize] <= 16 {
		score++
	}
	if h[headerSramSize] <= 8 {
		score++
	}

	printable := 0
	for _, c := range h[headerTitle : headerTitle+headerTitleSize] {
		if c >= 0x20 && c < 0x7f {
			printable++
		}
	}
	if printable >= 15 {
		score++
	}

	if reset := uint16(h[headerResetVec]) | uint16(h[headerResetVec+1])<<8; reset >= 0x8000 {
		score++
	}
	return score
}

func (c Cart) Mapper() Mapper {
	return c.mapper
}

func (c Cart) Title() string {
	return c.title
}

// SRAM returns the battery backed RAM, nil if the cartridge has none.
func (c Cart) SRAM() []uint8 {
	return c.sram
}

func (c *Cart) LoadSRAM(data []uint8) {
	copy(c.sram, data)
}

func (c *Cart) Read8(addr uint32) (uint8, bool) {
	if offset, ok := c.mapper.sramOffset(addr); ok {
		if len(c.sram) == 0 {
			return 0, false
		}
		return c.sram[int(offset)%len(c.sram)], true
	}
	if offset, ok := c.mapper.romOffset(addr); ok {
		return c.rom[int(offset)%len(c.rom)], true
	}
	return 0, false
}

func (c *Cart) Write8(addr uint32, data uint8) {
	if offset, ok := c.mapper.sramOffset(addr); ok && len(c.sram) > 0 {
		c.sram[int(offset)%len(c.sram)] = data
		return
	}
	if _, ok := c.mapper.romOffset(addr); !ok {
		log.Printf("unmapped cartridge write %02X at %06X\n", data, addr)
	}
}
