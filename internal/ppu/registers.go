package ppu

// Write handles a CPU write to a PPU register (0x2100-0x2133). reg is the
// register number (addr & 0xFF, e.g. 0x00 for $2100).
func (p *PPU) Write(reg uint16, v uint8) {
	switch reg {
	case 0x00: // INIDISP
		p.inidisp = v
	case 0x01: // OBSEL
		p.obsel = v
	case 0x02: // OAMADDL
		p.oamAddr = (p.oamAddr & 0x0100) | uint16(v)<<1
	case 0x03: // OAMADDH
		p.oamAddr = (p.oamAddr & 0x01FE) | (uint16(v&1) << 8)
	case 0x04: // OAMDATA
		p.writeOAM(v)
	case 0x05: // BGMODE
		p.bgmode = v
	case 0x06: // MOSAIC
		p.mosaic = v
	case 0x07, 0x08, 0x09, 0x0A: // BG1SC-BG4SC
		p.bgsc[reg-0x07] = v
	case 0x0B: // BG12NBA
		p.bgnba[0] = v
	case 0x0C: // BG34NBA
		p.bgnba[1] = v
	case 0x0D, 0x0F, 0x11, 0x13: // BG1HOFS, BG2HOFS, BG3HOFS, BG4HOFS
		p.writeScroll(&p.bgScrollX[(reg-0x0D)/2], v)
	case 0x0E, 0x10, 0x12, 0x14: // BG1VOFS, BG2VOFS, BG3VOFS, BG4VOFS
		p.writeScroll(&p.bgScrollY[(reg-0x0E)/2], v)
	case 0x15: // VMAIN
		p.vmain = v
	case 0x16: // VMADDL
		p.vAddr = (p.vAddr & 0xFF00) | uint16(v)
	case 0x17: // VMADDH
		p.vAddr = (p.vAddr & 0x00FF) | uint16(v)<<8
	case 0x18: // VMDATAL
		p.vram[p.vAddr%vramWords] = (p.vram[p.vAddr%vramWords] & 0xFF00) | uint16(v)
		if !p.vramIncrementsOnHigh() {
			p.incrementVRAM()
		}
	case 0x19: // VMDATAH
		p.vram[p.vAddr%vramWords] = (p.vram[p.vAddr%vramWords] & 0x00FF) | uint16(v)<<8
		if p.vramIncrementsOnHigh() {
			p.incrementVRAM()
		}
	case 0x1A: // M7SEL
		p.m7sel = v
	case 0x1B: // M7A
		p.m7a = p.writeMode7(p.m7a, v)
	case 0x1C: // M7B
		p.m7b = p.writeMode7(p.m7b, v)
	case 0x1D: // M7C
		p.m7c = p.writeMode7(p.m7c, v)
	case 0x1E: // M7D
		p.m7d = p.writeMode7(p.m7d, v)
	case 0x1F: // M7X
		p.m7x = p.writeMode7(p.m7x, v)
	case 0x20: // M7Y
		p.m7y = p.writeMode7(p.m7y, v)
	case 0x21: // CGADD
		p.cgAddr = v
		p.cgToggle = false
	case 0x22: // CGDATA
		p.writeCGRAM(v)
	case 0x2C: // TM
		p.tm = v
	}
}

// Read handles a CPU read from a PPU register (0x2134-0x213F).
func (p *PPU) Read(reg uint16) uint8 {
	switch reg {
	case 0x34, 0x35, 0x36: // MPYL/M/H: signed M7A * M7B, 24-bit
		product := uint32(int32(p.m7a) * int32(p.m7b))
		return uint8(product >> (8 * (reg - 0x34)))
	case 0x38: // OAMDATA read
		return p.readOAM()
	case 0x39: // VMDATAL read
		v := uint8(p.vram[p.vAddr%vramWords])
		if !p.vramIncrementsOnHigh() {
			p.incrementVRAM()
		}
		return v
	case 0x3A: // VMDATAH read
		v := uint8(p.vram[p.vAddr%vramWords] >> 8)
		if p.vramIncrementsOnHigh() {
			p.incrementVRAM()
		}
		return v
	case 0x3B: // CGDATA read
		return p.readCGRAM()
	case 0x3E: // STAT77
		return 0x01 // PPU1 version
	case 0x3F: // STAT78
		return 0x02 // PPU2 version
	default:
		return 0
	}
}

func (p *PPU) vramIncrementsOnHigh() bool { return p.vmain&0x80 != 0 }

func (p *PPU) incrementVRAM() {
	step := [4]uint16{1, 32, 128, 128}[p.vmain&0x03]
	p.vAddr += step
}

// writeScroll implements the shared BG scroll double-write latch: each
// write sets the register to this byte as the high half and the
// previously written scroll byte as the low half, so a low-then-high
// pair of writes yields the full 16-bit value.
func (p *PPU) writeScroll(target *uint16, v uint8) {
	*target = (uint16(v) << 8) | uint16(p.bgScrollLatch)
	p.bgScrollLatch = v
}

// writeMode7 is the Mode-7 matrix registers' own double-write latch: low
// byte first, high byte second, forming a signed 8.8 fixed-point value.
func (p *PPU) writeMode7(current int16, v uint8) int16 {
	low := p.m7Latch
	p.m7Latch = v
	return int16(uint16(v)<<8 | uint16(low))
}

// writeCGRAM implements CGRAM's double-write latch: low byte first, high
// byte second (top bit of the high byte is unused, RGB555 colours only).
// The address register advances only after the high-byte write completes.
func (p *PPU) writeCGRAM(v uint8) {
	if !p.cgToggle {
		p.cgLatch = v
		p.cgToggle = true
		return
	}
	colour := uint16(v&0x7F)<<8 | uint16(p.cgLatch)
	p.cgram[p.cgAddr] = colour
	p.cgAddr++
	p.cgToggle = false
}

func (p *PPU) readCGRAM() uint8 {
	colour := p.cgram[p.cgAddr]
	if !p.cgToggle {
		p.cgToggle = true
		return uint8(colour)
	}
	p.cgToggle = false
	p.cgAddr++
	return uint8(colour >> 8)
}

func (p *PPU) writeOAM(v uint8) {
	idx := int(p.oamAddr)
	if idx < oamMainBytes {
		if idx%2 == 0 {
			p.oamLatchByte = v
			p.oamLatchHas = true
		} else {
			p.oam[idx-1] = p.oamLatchByte
			p.oam[idx] = v
			p.oamLatchHas = false
		}
	} else {
		p.oam[idx%len(p.oam)] = v
	}
	p.oamAddr++
	if p.oamAddr >= uint16(len(p.oam)) {
		p.oamAddr = 0
	}
}

func (p *PPU) readOAM() uint8 {
	idx := int(p.oamAddr) % len(p.oam)
	v := p.oam[idx]
	p.oamAddr++
	if p.oamAddr >= uint16(len(p.oam)) {
		p.oamAddr = 0
	}
	return v
}
