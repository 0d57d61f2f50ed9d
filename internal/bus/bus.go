// Package bus implements the 24-bit SNES memory bus: bank-switched address
// decoding over a cartridge's LoROM/HiROM/ExHiROM layout, work RAM, and
// cartridge SRAM.
package bus

import "snesgo/internal/cartridge"

const (
	wramSize  = 128 * 1024
	pageShift = 13 // 8KiB pages
	pageCount = 1 << (24 - pageShift)
	pageMask  = (1 << pageShift) - 1
)

// region tags what a page decodes to.
type region uint8

const (
	regionNone region = iota
	regionWRAM
	regionSRAM
	regionROM
)

// pageEntry is one 8KiB page map slot: a region tag plus the byte offset
// of that page's start within the tagged region.
type pageEntry struct {
	region region
	offset int
}

// Cartridge is the subset of *cartridge.Cartridge the bus depends on.
type Cartridge interface {
	RomBytes() []uint8
	MappingMode() cartridge.MappingMode
	SramSizeBytes() int
	ReadSRAM(offset int) uint8
	WriteSRAM(offset int, v uint8)
	LoadSRAM([]byte) error
	SaveSRAM() []byte
}

// Bus is the 24-bit address space: WRAM, cartridge SRAM and ROM, decoded
// through a page map built once at cartridge load.
type Bus struct {
	wram [wramSize]uint8
	cart Cartridge

	readMap  [pageCount]pageEntry
	writeMap [pageCount]pageEntry
}

// New builds a bus with no cartridge mapped; LoadCartridge must be called
// before any read/write will reach ROM or SRAM.
func New() *Bus {
	return &Bus{}
}

// LoadCartridge wires a cartridge into the bus and (re)builds the page map
// from its mapping mode and SRAM size. ROM reads wrap modulo the ROM
// length at access time.
func (b *Bus) LoadCartridge(cart Cartridge) {
	b.cart = cart
	b.readMap, b.writeMap = buildPageMaps(cart.MappingMode(), cart.SramSizeBytes())
}

// Reset zeroes WRAM. Cartridge SRAM and the page map are untouched.
func (b *Bus) Reset() {
	for i := range b.wram {
		b.wram[i] = 0
	}
}

// Read returns the byte at the given 24-bit address, or 0xFF (open bus) if
// the address is unmapped.
func (b *Bus) Read(addr uint32) uint8 {
	addr &= 0xFFFFFF
	page := (addr >> pageShift) & (pageCount - 1)
	e := b.readMap[page]
	offset := e.offset + int(addr&pageMask)
	switch e.region {
	case regionWRAM:
		return b.wram[offset%wramSize]
	case regionSRAM:
		if b.cart == nil {
			return 0xFF
		}
		return b.cart.ReadSRAM(offset)
	case regionROM:
		rom := b.cart.RomBytes()
		if len(rom) == 0 {
			return 0xFF
		}
		return rom[offset%len(rom)]
	default:
		return 0xFF
	}
}

// Write stores v at the given 24-bit address. Writes to ROM-tagged or
// unmapped pages are silently dropped.
func (b *Bus) Write(addr uint32, v uint8) {
	addr &= 0xFFFFFF
	page := (addr >> pageShift) & (pageCount - 1)
	e := b.writeMap[page]
	offset := e.offset + int(addr&pageMask)
	switch e.region {
	case regionWRAM:
		b.wram[offset%wramSize] = v
	case regionSRAM:
		if b.cart != nil {
			b.cart.WriteSRAM(offset, v)
		}
	default:
		// ROM and unmapped pages drop writes.
	}
}

// Read16 assembles a little-endian 16-bit value from addr and addr+1,
// wrapping the low 16 bits of the address within the same bank.
func (b *Bus) Read16(addr uint32) uint16 {
	bank := addr & 0xFF0000
	lo := addr & 0xFFFF
	hi := (lo + 1) & 0xFFFF
	return uint16(b.Read(bank|lo)) | uint16(b.Read(bank|hi))<<8
}

// Write16 writes v little-endian across addr and addr+1, with the same
// bank-wrap rule as Read16.
func (b *Bus) Write16(addr uint32, v uint16) {
	bank := addr & 0xFF0000
	lo := addr & 0xFFFF
	hi := (lo + 1) & 0xFFFF
	b.Write(bank|lo, uint8(v))
	b.Write(bank|hi, uint8(v>>8))
}

// LoadSRAM replaces the cartridge's SRAM contents, e.g. from a save file.
func (b *Bus) LoadSRAM(data []byte) error {
	if b.cart == nil {
		return nil
	}
	return b.cart.LoadSRAM(data)
}

// SaveSRAM returns a copy of the cartridge's current SRAM contents.
func (b *Bus) SaveSRAM() []byte {
	if b.cart == nil {
		return nil
	}
	return b.cart.SaveSRAM()
}

// buildPageMaps constructs the read and write page-map tables for a given
// mapping mode. WRAM banks 0x7E-0x7F and the 0x00-0x3F/0x80-0xBF low-page
// WRAM mirror apply identically across every mapping mode, per the ROM
// header's external memory map.
func buildPageMaps(mode cartridge.MappingMode, sramLen int) (read, write [pageCount]pageEntry) {
	for p := 0; p < pageCount; p++ {
		read[p] = pageEntry{region: regionNone}
		write[p] = pageEntry{region: regionNone}
	}

	setROM := func(bank, pageInBank, offset int) {
		p := bank*8 + pageInBank
		e := pageEntry{region: regionROM, offset: offset}
		read[p] = e
		write[p] = pageEntry{region: regionROM} // dropped on write
	}
	setSRAM := func(bank, pageInBank, offset int) {
		p := bank*8 + pageInBank
		e := pageEntry{region: regionSRAM, offset: offset}
		read[p] = e
		write[p] = e
	}
	setWRAMMirror := func(bank, pageInBank int) {
		p := bank*8 + pageInBank
		e := pageEntry{region: regionWRAM, offset: 0}
		read[p] = e
		write[p] = e
	}
	setWRAMFull := func(bank int) {
		for pg := 0; pg < 8; pg++ {
			p := bank*8 + pg
			e := pageEntry{region: regionWRAM, offset: pg * (1 << pageShift)}
			read[p] = e
			write[p] = e
		}
	}

	switch mode {
	case cartridge.LoROM:
		for bank := 0; bank <= 0x7D; bank++ {
			romBank := bank & 0x7F
			for pg := 4; pg <= 7; pg++ {
				setROM(bank, pg, romBank*0x8000+(pg-4)*(1<<pageShift))
				setROM(0x80+bank, pg, romBank*0x8000+(pg-4)*(1<<pageShift))
			}
		}
		if sramLen > 0 {
			for bank := 0x70; bank <= 0x7D; bank++ {
				for pg := 4; pg <= 7; pg++ {
					off := ((bank-0x70)*4 + (pg - 4)) * (1 << pageShift) % sramLen
					setSRAM(bank, pg, off)
					setSRAM(0x80+bank, pg, off)
				}
			}
		}
		for bank := 0x00; bank <= 0x3F; bank++ {
			setWRAMMirror(bank, 0)
			setWRAMMirror(0x80+bank, 0)
		}

	case cartridge.HiROM, cartridge.ExHiROM:
		extra := 0
		if mode == cartridge.ExHiROM {
			extra = 0x400000
		}
		linearOffset := func(bank int) int { return (bank & 0x3F) * 0x10000 }

		for bank := 0x40; bank <= 0x7D; bank++ {
			for pg := 0; pg < 8; pg++ {
				setROM(bank, pg, linearOffset(bank)+pg*(1<<pageShift))
			}
		}
		for bank := 0xC0; bank <= 0xFF; bank++ {
			for pg := 0; pg < 8; pg++ {
				setROM(bank, pg, linearOffset(bank)+pg*(1<<pageShift))
			}
		}
		for bank := 0x00; bank <= 0x3F; bank++ {
			for pg := 4; pg <= 7; pg++ {
				setROM(bank, pg, extra+linearOffset(bank)+pg*(1<<pageShift))
				setROM(0x80+bank, pg, extra+linearOffset(bank)+pg*(1<<pageShift))
			}
			setWRAMMirror(bank, 0)
			setWRAMMirror(0x80+bank, 0)
			if sramLen > 0 {
				off := (bank * (1 << pageShift)) % sramLen
				setSRAM(bank, 3, off)
				setSRAM(0x80+bank, 3, off)
			}
		}
	}

	setWRAMFull(0x7E)
	setWRAMFull(0x7F)

	return read, write
}
