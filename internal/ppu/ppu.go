// Package ppu implements the SNES Picture Processing Unit: scanline timing,
// the 0x2100-0x213F register interface, and the background/sprite/Mode-7
// scanline renderer.
package ppu

const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	visibleDots       = 256
	visibleScanlines  = 224
	hblankDot         = 274
	vblankScanline    = 225
	frameWidth        = 512
	frameHeight       = 478
	vramWords         = 0x8000
	cgramEntries      = 256
	oamMainBytes      = 512
	oamHighBytes      = 32
)

// bgModeBPP gives each of the eight BG modes' per-layer bits-per-pixel.
// A zero entry means the layer doesn't exist in that mode.
var bgModeBPP = [8][4]int{
	0: {2, 2, 2, 2},
	1: {4, 4, 2, 0},
	2: {4, 4, 0, 0},
	3: {8, 4, 0, 0},
	4: {8, 2, 0, 0},
	5: {4, 2, 0, 0},
	6: {4, 0, 0, 0},
	7: {8, 0, 0, 0}, // BG1 is the Mode 7 affine layer
}

// PPU is the picture processing unit.
type PPU struct {
	// CPU-visible registers
	inidisp       uint8
	obsel         uint8
	bgmode        uint8
	mosaic        uint8
	bgsc          [4]uint8 // BG1SC-BG4SC
	bgnba         [2]uint8 // BG12NBA, BG34NBA
	bgScrollX     [4]uint16
	bgScrollY     [4]uint16
	bgScrollLatch uint8 // pending low byte per the shared scroll write latch

	vmain              uint8
	vAddr              uint16
	m7sel              uint8
	m7a, m7b, m7c, m7d int16
	m7x, m7y           int16
	m7Latch            uint8 // pending low byte for the 16-bit Mode-7 registers
	cgAddr             uint8
	cgLatch            uint8
	cgToggle           bool  // false: next CGDATA access is the low byte
	tm                 uint8 // main-screen layer enable (bit0-3 BG1-4, bit4 OBJ)

	oamAddr      uint16
	oamLatchByte uint8
	oamLatchHas  bool

	vram  [vramWords]uint16
	cgram [cgramEntries]uint16
	oam   [oamMainBytes + oamHighBytes]uint8

	// Timing
	dot      int
	scanline int
	frame    uint64

	// Host-facing framebuffer: 512x478, with the 256x224 visible area
	// letterboxed into the top-left; the remainder stays black.
	frameBuffer [frameWidth * frameHeight]uint32

	// Per-scanline compose buffers, 512 wide, reused every line. Only the
	// first 256 pixels are copied into the framebuffer row.
	pixelBuf    [frameWidth]uint16
	priorityBuf [frameWidth]int8

	frameCompleteCallback func()
}

// New creates a PPU with VRAM/CGRAM/OAM zeroed.
func New() *PPU {
	return &PPU{}
}

// Reset sets the PPU to its post-power-up state. VRAM/CGRAM/OAM are
// cleared; real hardware leaves them undefined, but a deterministic zero
// state is more useful for tests.
func (p *PPU) Reset() {
	p.inidisp = 0x80 // force-blank asserted at power-on
	p.obsel = 0
	p.bgmode = 0
	p.mosaic = 0
	for i := range p.bgsc {
		p.bgsc[i] = 0
	}
	p.bgnba[0], p.bgnba[1] = 0, 0
	for i := range p.bgScrollX {
		p.bgScrollX[i] = 0
		p.bgScrollY[i] = 0
	}
	p.bgScrollLatch = 0
	p.vmain = 0
	p.vAddr = 0
	p.m7sel = 0
	p.m7a, p.m7b, p.m7c, p.m7d = 0, 0, 0, 0
	p.m7x, p.m7y = 0, 0
	p.m7Latch = 0
	p.cgAddr = 0
	p.cgLatch = 0
	p.tm = 0
	p.oamAddr = 0
	p.oamLatchHas = false

	for i := range p.vram {
		p.vram[i] = 0
	}
	for i := range p.cgram {
		p.cgram[i] = 0
	}
	for i := range p.oam {
		p.oam[i] = 0
	}

	p.dot = 0
	p.scanline = 0
	p.frame = 0
}

// SetFrameCompleteCallback registers a callback fired once per frame, on
// the wrap from scanline 261 back to 0.
func (p *PPU) SetFrameCompleteCallback(cb func()) {
	p.frameCompleteCallback = cb
}

// HBlank reports whether the current dot is in the horizontal blank period.
func (p *PPU) HBlank() bool { return p.dot >= hblankDot }

// VBlank reports whether the current scanline is in the vertical blank
// period.
func (p *PPU) VBlank() bool { return p.scanline >= vblankScanline }

// FrameCount returns the number of frames completed since Reset.
func (p *PPU) FrameCount() uint64 { return p.frame }

// Step advances the PPU by one dot. It returns true exactly once per
// frame, on the wrap from the last scanline back to scanline 0.
func (p *PPU) Step() bool {
	if p.scanline < visibleScanlines && p.dot == 0 {
		p.renderScanline(p.scanline)
	}

	p.dot++
	if p.dot < dotsPerScanline {
		return false
	}
	p.dot = 0
	p.scanline++
	if p.scanline < scanlinesPerFrame {
		return false
	}

	p.scanline = 0
	p.frame++
	if p.frameCompleteCallback != nil {
		p.frameCompleteCallback()
	}
	return true
}

// FrameBuffer returns the current RGBA8888-packed (0xAARRGGBB) framebuffer,
// 512x478, row-major. The 256x224 visible area occupies the top-left; the
// rest of each row and the rows below scanline 223 stay black.
func (p *PPU) FrameBuffer() []uint32 { return p.frameBuffer[:] }

// LoadVRAM bulk-writes a contiguous VRAM range, bypassing the address
// increment and the double-write latch. For host tests and save-state-free
// fixture loading.
func (p *PPU) LoadVRAM(startWord int, words []uint16) {
	for i, w := range words {
		idx := (startWord + i) % vramWords
		p.vram[idx] = w
	}
}

// LoadCGRAM bulk-writes a contiguous CGRAM range.
func (p *PPU) LoadCGRAM(start int, colours []uint16) {
	for i, c := range colours {
		p.cgram[(start+i)%cgramEntries] = c & 0x7FFF
	}
}

// LoadOAM bulk-writes a contiguous OAM range (main table + high table).
func (p *PPU) LoadOAM(start int, data []uint8) {
	for i, b := range data {
		p.oam[(start+i)%len(p.oam)] = b
	}
}
