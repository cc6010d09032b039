package snes

// Mapper is the cartridge address decoding scheme.
type Mapper uint8

const (
	MapperLoROM Mapper = iota + 1
	MapperHiROM
)

func (m Mapper) String() string {
	switch m {
	case MapperLoROM:
		return "LoROM"
	case MapperHiROM:
		return "HiROM"
	}
	return "unknown"
}

// LoROM:
// $00-$7D/$80-$FF:$8000-$FFFF: ROM in 32 KiB banks
// $40-$6F/$C0-$EF:$0000-$7FFF: ROM mirror
// $70-$7D/$F0-$FF:$0000-$7FFF: SRAM
//
// HiROM:
// $00-$3F/$80-$BF:$8000-$FFFF: ROM, upper half of each 64 KiB bank
// $40-$7D/$C0-$FF:$0000-$FFFF: ROM in 64 KiB banks
// $20-$3F/$A0-$BF:$6000-$7FFF: SRAM in 8 KiB pages
func (m Mapper) romOffset(addr uint32) (uint32, bool) {
	bank := uint8(addr>>16) & 0x7f
	offset := uint16(addr)

	switch m {
	case MapperLoROM:
		if offset < 0x8000 && (bank < 0x40 || bank >= 0x70) {
			return 0, false
		}
		return uint32(bank)<<15 | uint32(offset&0x7fff), true
	case MapperHiROM:
		if offset < 0x8000 && bank < 0x40 {
			return 0, false
		}
		return uint32(bank&0x3f)<<16 | uint32(offset), true
	}
	return 0, false
}

func (m Mapper) sramOffset(addr uint32) (uint32, bool) {
	bank := uint8(addr>>16) & 0x7f
	offset := uint16(addr)

	switch m {
	case MapperLoROM:
		if bank >= 0x70 && bank < 0x7e && offset < 0x8000 {
			return uint32(bank-0x70)<<15 | uint32(offset), true
		}
	case MapperHiROM:
		if bank >= 0x20 && bank < 0x40 && offset >= 0x6000 && offset < 0x8000 {
			return uint32(bank-0x20)<<13 | uint32(offset-0x6000), true
		}
	}
	return 0, false
}
