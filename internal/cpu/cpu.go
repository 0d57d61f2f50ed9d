// Package cpu implements the 65816 CPU emulation for the SNES.
package cpu

// AddressingMode identifies how an instruction's operand address is formed.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	DirectPage
	DirectPageX
	DirectPageY
	Absolute
	AbsoluteX
	AbsoluteY
	AbsoluteLong
	AbsoluteLongX
	DirectPageIndirect
	DirectPageIndexedIndirectX
	DirectPageIndirectIndexedY
	DirectPageIndirectLong
	DirectPageIndirectLongY
	StackRelative
	StackRelativeIndirectIndexedY
	AbsoluteIndirect
	AbsoluteIndexedIndirect
	Relative8
	Relative16
)

// State is the CPU's run state.
type State int

const (
	Running State = iota
	Waiting
	Stopped
)

const (
	// Status register bit masks (native mode layout: N V M X D I Z C).
	nFlagMask = 0x80
	vFlagMask = 0x40
	mFlagMask = 0x20
	xFlagMask = 0x10
	dFlagMask = 0x08
	iFlagMask = 0x04
	zFlagMask = 0x02
	cFlagMask = 0x01

	// Emulation-mode layout replaces M/X with the unused/B bits.
	emulUnusedMask = 0x20
	emulBFlagMask  = 0x10

	resetVectorEmul = 0x00FFFC
	nmiVectorEmul   = 0x00FFFA
	irqVectorEmul   = 0x00FFFE
	nmiVectorNative = 0x00FFEA
	irqVectorNative = 0x00FFEE
	copVectorNative = 0x00FFE4
	copVectorEmul   = 0x00FFF4
	brkVectorNative = 0x00FFE6
)

// Instruction is one dispatch-table entry: mnemonic, addressing mode and a
// base cycle count used by the driver to throttle other engines.
type Instruction struct {
	Name   string
	Mode   AddressingMode
	Cycles uint8
}

// Memory is the subset of the bus the CPU depends on.
type Memory interface {
	Read(addr uint32) uint8
	Write(addr uint32, v uint8)
	Read16(addr uint32) uint16
	Write16(addr uint32, v uint16)
}

// CPU is a 65816 processor core.
type CPU struct {
	A   uint16
	X   uint16
	Y   uint16
	S   uint16
	D   uint16 // direct page register
	PC  uint16
	PBR uint8
	DBR uint8

	N   bool
	V   bool
	M   bool // accumulator/memory width: true = 8-bit
	Xf  bool // index register width: true = 8-bit
	Dec bool
	I   bool
	Z   bool
	C   bool
	E   bool // emulation mode

	mem Memory

	cycles uint64
	state  State

	instructions [256]*Instruction
}

// New creates a CPU wired to the given memory bus. Call Reset before Step.
func New(mem Memory) *CPU {
	c := &CPU{mem: mem}
	c.initInstructions()
	return c
}

// Reset performs the 65816 reset sequence: native->emulation transition,
// PBR/DBR/D cleared, S set to 0x01FF, all width/interrupt flags forced,
// PC loaded from the emulation-mode reset vector.
func (c *CPU) Reset() {
	c.PBR = 0
	c.DBR = 0
	c.D = 0
	c.S = 0x01FF
	c.E = true
	c.M = true
	c.Xf = true
	c.I = true
	c.Dec = false
	c.X &= 0x00FF
	c.Y &= 0x00FF
	c.cycles = 0
	c.state = Running
	c.PC = c.mem.Read16(resetVectorEmul)
}

// Cycles returns the cumulative CPU cycle count (the sum of the per-
// instruction and interrupt cycle counts) since the last Reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

// State returns the CPU's Running/Waiting/Stopped state.
func (c *CPU) State() State { return c.state }

// NMI pushes return state and jumps through the NMI vector, waking the CPU
// if it was Waiting. A Stopped CPU ignores interrupts until reset.
func (c *CPU) NMI() {
	if c.state == Stopped {
		return
	}
	c.pushInterruptFrame()
	vector := nmiVectorEmul
	if !c.E {
		vector = nmiVectorNative
	}
	c.PC = c.mem.Read16(uint32(vector))
	c.PBR = 0
	c.I = true
	c.Dec = false
	c.state = Running
	c.cycles += 7
}

// IRQ behaves like NMI but is ignored while the I flag is set, matching
// hardware maskable-interrupt semantics.
func (c *CPU) IRQ() {
	if c.I || c.state == Stopped {
		return
	}
	c.pushInterruptFrame()
	vector := irqVectorEmul
	if !c.E {
		vector = irqVectorNative
	}
	c.PC = c.mem.Read16(uint32(vector))
	c.PBR = 0
	c.I = true
	c.Dec = false
	c.state = Running
	c.cycles += 7
}

func (c *CPU) pushInterruptFrame() {
	if !c.E {
		c.push(c.PBR)
	}
	c.pushWord(c.PC)
	c.push(c.GetStatusByte())
}

// fetch8 reads the byte at PBR:PC and advances PC.
func (c *CPU) fetch8() uint8 {
	v := c.mem.Read(uint32(c.PBR)<<16 | uint32(c.PC))
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) fetch24() uint32 {
	lo := c.fetch16()
	hi := c.fetch8()
	return uint32(hi)<<16 | uint32(lo)
}

// readLong reads a 24-bit pointer stored at a bank-0 direct-page address,
// wrapping each byte fetch within bank 0.
func (c *CPU) readLong(addr uint16) uint32 {
	lo := c.mem.Read(uint32(addr))
	mid := c.mem.Read(uint32(addr + 1))
	hi := c.mem.Read(uint32(addr + 2))
	return uint32(hi)<<16 | uint32(mid)<<8 | uint32(lo)
}

// resolveAddress computes the effective address for a memory-referencing
// addressing mode, consuming the instruction's operand bytes from PC.
func (c *CPU) resolveAddress(mode AddressingMode) uint32 {
	switch mode {
	case DirectPage:
		d8 := uint16(c.fetch8())
		return uint32(c.D + d8)
	case DirectPageX:
		d8 := uint16(c.fetch8())
		return uint32(c.D + d8 + c.X)
	case DirectPageY:
		d8 := uint16(c.fetch8())
		return uint32(c.D + d8 + c.Y)
	case Absolute:
		word := c.fetch16()
		return uint32(c.DBR)<<16 | uint32(word)
	case AbsoluteX:
		word := c.fetch16()
		return uint32(c.DBR)<<16 | uint32(word+c.X)
	case AbsoluteY:
		word := c.fetch16()
		return uint32(c.DBR)<<16 | uint32(word+c.Y)
	case AbsoluteLong:
		return c.fetch24() & 0xFFFFFF
	case AbsoluteLongX:
		return (c.fetch24() + uint32(c.X)) & 0xFFFFFF
	case DirectPageIndirect:
		ptrAddr := uint16(c.D + uint16(c.fetch8()))
		ptr := c.mem.Read16(uint32(ptrAddr))
		return uint32(c.DBR)<<16 | uint32(ptr)
	case DirectPageIndexedIndirectX:
		ptrAddr := uint16(c.D + uint16(c.fetch8()) + c.X)
		ptr := c.mem.Read16(uint32(ptrAddr))
		return uint32(c.DBR)<<16 | uint32(ptr)
	case DirectPageIndirectIndexedY:
		ptrAddr := uint16(c.D + uint16(c.fetch8()))
		ptr := c.mem.Read16(uint32(ptrAddr))
		base := uint32(c.DBR)<<16 | uint32(ptr)
		return (base + uint32(c.Y)) & 0xFFFFFF
	case DirectPageIndirectLong:
		ptrAddr := uint16(c.D + uint16(c.fetch8()))
		return c.readLong(ptrAddr) & 0xFFFFFF
	case DirectPageIndirectLongY:
		ptrAddr := uint16(c.D + uint16(c.fetch8()))
		base := c.readLong(ptrAddr)
		return (base + uint32(c.Y)) & 0xFFFFFF
	case StackRelative:
		d8 := uint16(c.fetch8())
		return uint32(c.S + d8)
	case StackRelativeIndirectIndexedY:
		d8 := uint16(c.fetch8())
		ptr := c.mem.Read16(uint32(c.S + d8))
		base := uint32(c.DBR)<<16 | uint32(ptr)
		return (base + uint32(c.Y)) & 0xFFFFFF
	case AbsoluteIndirect:
		word := c.fetch16()
		ptr := c.mem.Read16(uint32(word))
		return uint32(c.PBR)<<16 | uint32(ptr)
	case AbsoluteIndexedIndirect:
		word := c.fetch16()
		ptrAddr := uint32(c.PBR)<<16 | uint32(word+c.X)
		ptr := c.mem.Read16(ptrAddr)
		return uint32(c.PBR)<<16 | uint32(ptr)
	default:
		return 0
	}
}

// operandValue fetches an operand's value honoring the given addressing mode
// and operand width, and returns the effective address (0 for Immediate,
// which has none).
func (c *CPU) operandValue(mode AddressingMode, width8 bool) (value uint16, addr uint32) {
	if mode == Immediate {
		if width8 {
			return uint16(c.fetch8()), 0
		}
		return c.fetch16(), 0
	}
	addr = c.resolveAddress(mode)
	if width8 {
		return uint16(c.mem.Read(addr)), addr
	}
	return c.mem.Read16(addr), addr
}

func (c *CPU) storeValue(addr uint32, value uint16, width8 bool) {
	if width8 {
		c.mem.Write(addr, uint8(value))
		return
	}
	c.mem.Write16(addr, value)
}

// push/pop operate on the 16-bit S register; in emulation mode the high
// byte of S is pinned to 0x01 after every adjustment.
func (c *CPU) push(v uint8) {
	c.mem.Write(uint32(c.S), v)
	c.S--
	c.fixStackHighByte()
}

func (c *CPU) pop() uint8 {
	c.S++
	c.fixStackHighByte()
	return c.mem.Read(uint32(c.S))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | hi<<8
}

func (c *CPU) fixStackHighByte() {
	if c.E {
		c.S = (c.S & 0x00FF) | 0x0100
	}
}

// setZN8/setZN16 update Z and N from a result at the given width.
func (c *CPU) setZN8(v uint8) {
	c.Z = v == 0
	c.N = v&0x80 != 0
}

func (c *CPU) setZN16(v uint16) {
	c.Z = v == 0
	c.N = v&0x8000 != 0
}

// GetStatusByte packs the flags into the 8-bit P register, in the layout
// appropriate to the current E mode.
func (c *CPU) GetStatusByte() uint8 {
	var p uint8
	if c.N {
		p |= nFlagMask
	}
	if c.V {
		p |= vFlagMask
	}
	if c.E {
		p |= emulUnusedMask
		p |= emulBFlagMask
	} else {
		if c.M {
			p |= mFlagMask
		}
		if c.Xf {
			p |= xFlagMask
		}
	}
	if c.Dec {
		p |= dFlagMask
	}
	if c.I {
		p |= iFlagMask
	}
	if c.Z {
		p |= zFlagMask
	}
	if c.C {
		p |= cFlagMask
	}
	return p
}

// SetStatusByte unpacks the 8-bit P register into the flag fields.
func (c *CPU) SetStatusByte(p uint8) {
	c.N = p&nFlagMask != 0
	c.V = p&vFlagMask != 0
	if c.E {
		c.M = true
		c.Xf = true
	} else {
		c.M = p&mFlagMask != 0
		c.Xf = p&xFlagMask != 0
		if c.Xf {
			c.X &= 0x00FF
			c.Y &= 0x00FF
		}
	}
	c.Dec = p&dFlagMask != 0
	c.I = p&iFlagMask != 0
	c.Z = p&zFlagMask != 0
	c.C = p&cFlagMask != 0
}

// Step executes a single instruction and returns the cycles it consumed.
// Unknown opcodes are a documented 2-cycle no-op.
func (c *CPU) Step() uint64 {
	if c.state != Running {
		return 2
	}

	opcode := c.fetch8()
	instr := c.instructions[opcode]
	if instr == nil {
		c.cycles += 2
		return 2
	}

	cyc := c.executeInstruction(opcode, instr.Mode)
	total := uint64(instr.Cycles) + uint64(cyc)
	c.cycles += total
	return total
}
