package ppu

// renderScanline renders one visible scanline into the frame buffer, unless
// force-blank (INIDISP bit 7) is set, in which case the row stays black.
func (p *PPU) renderScanline(line int) {
	if p.inidisp&0x80 != 0 {
		p.blankRow(line)
		return
	}

	for x := range p.pixelBuf {
		p.pixelBuf[x] = 0
		p.priorityBuf[x] = -1
	}

	mode := p.bgmode & 0x07
	bpp := bgModeBPP[mode]

	if mode == 7 {
		if p.tm&0x01 != 0 {
			p.renderMode7(line)
		}
	} else {
		for layer := 0; layer < 4; layer++ {
			if bpp[layer] == 0 || p.tm&(1<<uint(layer)) == 0 {
				continue
			}
			p.renderBGLayer(line, layer, bpp[layer], basePriorityForLayer(layer))
		}
	}

	if p.tm&0x10 != 0 {
		p.renderSprites(line)
	}

	p.compose(line)
}

// basePriorityForLayer gives BG layers distinct priority bands below the
// sprite bands (12-15), lower layer index ranks lower (behind).
func basePriorityForLayer(layer int) int8 {
	return int8(layer * 2)
}

func (p *PPU) blankRow(line int) {
	base := line * frameWidth
	for x := 0; x < visibleDots; x++ {
		p.frameBuffer[base+x] = 0xFF000000
	}
}

// renderBGLayer fetches and composites one tiled background layer's row.
func (p *PPU) renderBGLayer(line, layer, bpp int, priority int8) {
	tilemapBase := uint16(p.bgsc[layer]&0xFC) << 8
	charBase := uint16(p.bgnba[layer/2]) << 12
	if layer%2 == 1 {
		charBase = uint16(p.bgnba[layer/2]>>4) << 12
	}

	scrollX := p.bgScrollX[layer]
	scrollY := p.bgScrollY[layer]

	for x := 0; x < visibleDots; x++ {
		srcX := (uint16(x) + scrollX) % 512
		srcY := (uint16(line) + scrollY) % 512

		tileCol := srcX / 8
		tileRow := srcY / 8
		fineX := srcX % 8
		fineY := srcY % 8

		mapIdx := tilemapBase + tileRow*64 + tileCol
		entry := p.vram[mapIdx%vramWords]

		charNum := entry & 0x03FF
		palette := uint8((entry >> 10) & 0x07)
		tilePriority := entry&0x2000 != 0
		flipH := entry&0x4000 != 0
		flipV := entry&0x8000 != 0

		if flipH {
			fineX = 7 - fineX
		}
		if flipV {
			fineY = 7 - fineY
		}

		colourIdx := p.decodeTilePixel(charBase, charNum, bpp, fineX, fineY)
		if colourIdx == 0 {
			continue // transparent
		}

		pixelPriority := priority
		if tilePriority {
			pixelPriority++
		}
		if pixelPriority < p.priorityBuf[x] {
			continue
		}

		cgIndex := (uint16(palette) << uint(bpp)) | uint16(colourIdx)
		p.pixelBuf[x] = p.cgram[cgIndex%cgramEntries]
		p.priorityBuf[x] = pixelPriority
	}
}

// decodeTilePixel reads one pixel out of an 8x8 tile stored as bpp/2
// interleaved bitplane pairs, each pair 16 bytes (2 bytes/row).
func (p *PPU) decodeTilePixel(charBase uint16, charNum uint16, bpp int, fineX, fineY uint16) uint8 {
	tileAddr := charBase + charNum*uint16(bpp*4)

	var colour uint8
	planePairs := bpp / 2
	for pair := 0; pair < planePairs; pair++ {
		word := p.vram[(tileAddr+fineY+uint16(pair)*8)%vramWords]
		lo := uint8(word>>(7-fineX)) & 1
		hi := uint8(word>>(8+7-fineX)) & 1
		colour |= (lo | hi<<1) << uint(pair*2)
	}
	return colour
}

// renderSprites evaluates all 128 OAM entries against the current scanline
// and renders intersecting rows, highest OAM index drawn first so lower
// indices (drawn later) take priority on ties within the same band.
func (p *PPU) renderSprites(line int) {
	sizeSmall, sizeLarge := spriteSizesFromOBSEL(p.obsel)

	for i := 127; i >= 0; i-- {
		x, y, tile, attr, isLarge := p.readOAMEntry(i)
		w, h := sizeSmall, sizeSmall
		if isLarge {
			w, h = sizeLarge, sizeLarge
		}

		rowInSprite := line - int(y)
		if rowInSprite < 0 || rowInSprite >= h {
			continue
		}

		palette := 128 + (attr&0x0E)>>1*16
		priorityClass := int8(12 + (attr>>4)&0x03)
		flipH := attr&0x40 != 0
		flipV := attr&0x80 != 0

		if flipV {
			rowInSprite = h - 1 - rowInSprite
		}

		tilesWide := w / 8
		for col := 0; col < tilesWide; col++ {
			drawCol := col
			if flipH {
				drawCol = tilesWide - 1 - col
			}
			spriteTile := tile + uint16(drawCol) + uint16(rowInSprite/8)*16

			for px := 0; px < 8; px++ {
				// Sprites accumulate across the full 512-wide scanline
				// buffer; columns past 255 never reach the framebuffer.
				screenX := int(x) + col*8 + px
				if screenX < 0 || screenX >= frameWidth {
					continue
				}
				fineX := uint16(px)
				if flipH {
					fineX = 7 - fineX
				}
				fineY := uint16(rowInSprite % 8)

				colourIdx := p.decodeTilePixel(spriteCHRBase(p.obsel), spriteTile, 4, fineX, fineY)
				if colourIdx == 0 {
					continue
				}
				if priorityClass < p.priorityBuf[screenX] {
					continue
				}
				cgIndex := uint16(palette) + uint16(colourIdx)
				p.pixelBuf[screenX] = p.cgram[cgIndex%cgramEntries]
				p.priorityBuf[screenX] = priorityClass
			}
		}
	}
}

func spriteCHRBase(obsel uint8) uint16 {
	return uint16(obsel&0x07) << 13
}

// spriteSizesFromOBSEL maps the OBSEL size-select bits to (small, large)
// pixel dimensions, per the SNES's fixed size-pair table.
func spriteSizesFromOBSEL(obsel uint8) (small, large int) {
	switch (obsel >> 5) & 0x07 {
	case 0:
		return 8, 16
	case 1:
		return 8, 32
	case 2:
		return 8, 64
	case 3:
		return 16, 32
	case 4:
		return 16, 64
	case 5:
		return 32, 64
	default:
		return 16, 32
	}
}

// readOAMEntry decodes sprite i's low-table and high-table bytes into
// (x, y, tile, attr, isLarge). X is sign-extended via the high table's bit 9.
func (p *PPU) readOAMEntry(i int) (x int16, y uint8, tile uint16, attr uint8, isLarge bool) {
	base := i * 4
	xLow := p.oam[base]
	y = p.oam[base+1]
	tileLow := p.oam[base+2]
	attr = p.oam[base+3]

	highByte := p.oam[oamMainBytes+i/4]
	shift := uint((i % 4) * 2)
	xHighBit := (highByte >> shift) & 0x01
	isLarge = (highByte>>(shift+1))&0x01 != 0

	xVal := int16(xLow)
	if xHighBit != 0 {
		xVal -= 256
	}

	tileHighBit := uint16(attr&0x01) << 8
	tile = tileHighBit | uint16(tileLow)

	return xVal, y, tile, attr, isLarge
}

// compose applies brightness scaling (INIDISP low nibble / 15 per channel)
// and copies the first 256 pixels of the 512-wide scanline buffer into the
// framebuffer row, leaving the right half of the row black.
func (p *PPU) compose(line int) {
	brightness := uint32(p.inidisp & 0x0F)
	base := line * frameWidth
	for x := 0; x < visibleDots; x++ {
		c := p.pixelBuf[x]
		r := uint32(c&0x1F) * brightness / 15
		g := uint32((c>>5)&0x1F) * brightness / 15
		b := uint32((c>>10)&0x1F) * brightness / 15
		r = r * 255 / 31
		g = g * 255 / 31
		b = b * 255 / 31
		p.frameBuffer[base+x] = 0xFF000000 | r<<16 | g<<8 | b
	}
}
