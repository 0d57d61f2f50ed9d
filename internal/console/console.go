// Package console implements the top-level frame driver: it owns the CPU,
// PPU, APU, memory bus and optional cartridge coprocessor, and interleaves
// them against a shared master clock.
//
// The driver intercepts the PPU (0x2100-0x213F) and APU mailbox
// (0x2140-0x217F) register windows, and any coprocessor address window,
// before a CPU memory access ever reaches the bus — the bus itself holds
// only WRAM/SRAM/ROM and the page map.
package console

import (
	"snesgo/internal/apu"
	"snesgo/internal/bus"
	"snesgo/internal/cartridge"
	"snesgo/internal/coprocessor"
	"snesgo/internal/cpu"
	"snesgo/internal/input"
	"snesgo/internal/ppu"
)

const (
	ppuRegLo  = 0x2100
	ppuRegHi  = 0x213F
	apuPortLo = 0x2140
	apuPortHi = 0x217F // four mailbox ports, aliased every 4 bytes

	nmitimenAddr = 0x4200 // interrupt enable register (NMI enable, bit 7)

	joypad1Addr = 0x4016 // manual joypad strobe/data port, controller 1
	joypad2Addr = 0x4017 // manual joypad data port, controller 2 (unwired: single-player only)

	safetyTickBudget        = 100_000
	spcInstructionsPerBatch = 8
)

// Console is the frame driver wiring together the CPU, PPU, APU, bus and
// an optional cartridge coprocessor.
type Console struct {
	Bus         *bus.Bus
	CPU         *cpu.CPU
	PPU         *ppu.PPU
	APU         *apu.APU
	Cart        *cartridge.Cartridge
	Controller1 *input.Controller

	coproc coprocessor.Coprocessor

	masterCycles uint64
	nmiEnabled   bool
	prevVBlank   bool
}

// New creates an unloaded console: call LoadCartridge before Reset/RunFrame.
func New() *Console {
	c := &Console{
		Bus:         bus.New(),
		PPU:         ppu.New(),
		APU:         apu.New(),
		Controller1: input.New(),
	}
	c.CPU = cpu.New(&driverMemory{c: c})
	return c
}

// SetButtons replaces controller 1's held-button mask with a host-polled
// snapshot (see internal/hostvideo.TickFunc), to be read by the running
// program through the joypad register window on its next strobe/read.
func (c *Console) SetButtons(buttons uint16) {
	c.Controller1.SetAll(buttons)
}

// LoadCartridge wires a parsed cartridge into the bus, instantiates a
// coprocessor if the cartridge declares a supported one, and performs a
// full reset — building the page map first so the CPU's reset-vector read
// goes through a fully wired bus.
func (c *Console) LoadCartridge(cart *cartridge.Cartridge) {
	c.Cart = cart
	c.Bus.LoadCartridge(cart)
	if cp, ok := coprocessor.New(cart); ok {
		c.coproc = cp
	} else {
		c.coproc = nil
	}
	c.Reset()
}

// Reset resets every owned component in order — bus, PPU, APU,
// coprocessor, then the CPU last so its reset-vector fetch observes the
// fully-reset state of everything it might read through.
func (c *Console) Reset() {
	c.Bus.Reset()
	c.PPU.Reset()
	c.APU.Reset()
	if c.coproc != nil {
		c.coproc.Reset()
	}
	c.masterCycles = 0
	c.nmiEnabled = false
	c.prevVBlank = false
	c.CPU.Reset()
}

// Step executes one CPU instruction, six PPU dots, and a short APU burst —
// the single-instruction granularity host tests drive against.
func (c *Console) Step() {
	for i := 0; i < 6; i++ {
		c.PPU.Step()
	}
	c.CPU.Step()
	if c.coproc != nil {
		c.coproc.Step(6)
	}
	c.APU.RunBatch(spcInstructionsPerBatch)
	c.masterCycles += 6
	c.raiseVBlankNMI()
}

// RunFrame advances PPU/CPU/coprocessor/APU in lockstep — PPU dot first,
// then (every sixth master cycle) one CPU instruction and a coprocessor
// step, then an APU batch — until the PPU reports frame-complete or the
// safety tick budget is exceeded (a watchdog against runaway ROMs, not a
// cancellation mechanism).
func (c *Console) RunFrame() {
	for tick := 0; tick < safetyTickBudget; tick++ {
		frameDone := c.PPU.Step()

		if c.masterCycles%6 == 0 {
			c.CPU.Step()
			if c.coproc != nil {
				c.coproc.Step(6)
			}
		}
		c.APU.RunBatch(1)
		c.masterCycles++
		c.raiseVBlankNMI()

		if frameDone {
			return
		}
	}
}

// raiseVBlankNMI delivers an NMI on the VBlank rising edge when the
// interrupt-enable register's NMI bit is set. The CPU handles the vector
// side of interrupt delivery; only the raising edge lives here.
func (c *Console) raiseVBlankNMI() {
	vblank := c.PPU.VBlank()
	if vblank && !c.prevVBlank && c.nmiEnabled {
		c.CPU.NMI()
	}
	c.prevVBlank = vblank
}

// FrameBuffer returns the most recently rendered frame: the PPU's own
// 512x478 buffer, updated in place scanline by scanline.
func (c *Console) FrameBuffer() []uint32 { return c.PPU.FrameBuffer() }

// RenderAudioFrame regenerates the 534-sample stereo audio buffer for the
// frame just completed.
func (c *Console) RenderAudioFrame() []int16 { return c.APU.RenderAudioFrame() }
