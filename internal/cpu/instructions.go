package cpu

// initInstructions populates the opcode dispatch table. Real 65816 opcodes
// that aren't listed here fall through Step's nil-entry path as a 2-cycle
// no-op, per the documented compromise for unimplemented opcodes.
func (c *CPU) initInstructions() {
	set := func(op uint8, name string, mode AddressingMode, cycles uint8) {
		c.instructions[op] = &Instruction{Name: name, Mode: mode, Cycles: cycles}
	}

	// LDA
	set(0xA9, "LDA", Immediate, 2)
	set(0xA5, "LDA", DirectPage, 3)
	set(0xB5, "LDA", DirectPageX, 4)
	set(0xAD, "LDA", Absolute, 4)
	set(0xBD, "LDA", AbsoluteX, 4)
	set(0xB9, "LDA", AbsoluteY, 4)
	set(0xAF, "LDA", AbsoluteLong, 5)
	set(0xBF, "LDA", AbsoluteLongX, 5)
	set(0xA1, "LDA", DirectPageIndexedIndirectX, 6)
	set(0xB1, "LDA", DirectPageIndirectIndexedY, 5)
	set(0xB2, "LDA", DirectPageIndirect, 5)
	set(0xA7, "LDA", DirectPageIndirectLong, 6)
	set(0xB7, "LDA", DirectPageIndirectLongY, 6)
	set(0xA3, "LDA", StackRelative, 4)
	set(0xB3, "LDA", StackRelativeIndirectIndexedY, 7)

	// LDX / LDY
	set(0xA2, "LDX", Immediate, 2)
	set(0xA6, "LDX", DirectPage, 3)
	set(0xB6, "LDX", DirectPageY, 4)
	set(0xAE, "LDX", Absolute, 4)
	set(0xBE, "LDX", AbsoluteY, 4)
	set(0xA0, "LDY", Immediate, 2)
	set(0xA4, "LDY", DirectPage, 3)
	set(0xB4, "LDY", DirectPageX, 4)
	set(0xAC, "LDY", Absolute, 4)
	set(0xBC, "LDY", AbsoluteX, 4)

	// STA
	set(0x85, "STA", DirectPage, 3)
	set(0x95, "STA", DirectPageX, 4)
	set(0x8D, "STA", Absolute, 4)
	set(0x9D, "STA", AbsoluteX, 5)
	set(0x99, "STA", AbsoluteY, 5)
	set(0x8F, "STA", AbsoluteLong, 5)
	set(0x9F, "STA", AbsoluteLongX, 5)
	set(0x81, "STA", DirectPageIndexedIndirectX, 6)
	set(0x91, "STA", DirectPageIndirectIndexedY, 6)
	set(0x92, "STA", DirectPageIndirect, 5)
	set(0x87, "STA", DirectPageIndirectLong, 6)
	set(0x97, "STA", DirectPageIndirectLongY, 6)

	// STX / STY / STZ
	set(0x86, "STX", DirectPage, 3)
	set(0x96, "STX", DirectPageY, 4)
	set(0x8E, "STX", Absolute, 4)
	set(0x84, "STY", DirectPage, 3)
	set(0x94, "STY", DirectPageX, 4)
	set(0x8C, "STY", Absolute, 4)
	set(0x64, "STZ", DirectPage, 3)
	set(0x74, "STZ", DirectPageX, 4)
	set(0x9C, "STZ", Absolute, 4)
	set(0x9E, "STZ", AbsoluteX, 5)

	// ADC / SBC
	set(0x69, "ADC", Immediate, 2)
	set(0x65, "ADC", DirectPage, 3)
	set(0x75, "ADC", DirectPageX, 4)
	set(0x6D, "ADC", Absolute, 4)
	set(0x7D, "ADC", AbsoluteX, 4)
	set(0x79, "ADC", AbsoluteY, 4)
	set(0x6F, "ADC", AbsoluteLong, 5)
	set(0x7F, "ADC", AbsoluteLongX, 5)
	set(0x71, "ADC", DirectPageIndirectIndexedY, 5)
	set(0x61, "ADC", DirectPageIndexedIndirectX, 6)
	set(0x72, "ADC", DirectPageIndirect, 5)

	set(0xE9, "SBC", Immediate, 2)
	set(0xE5, "SBC", DirectPage, 3)
	set(0xF5, "SBC", DirectPageX, 4)
	set(0xED, "SBC", Absolute, 4)
	set(0xFD, "SBC", AbsoluteX, 4)
	set(0xF9, "SBC", AbsoluteY, 4)
	set(0xEF, "SBC", AbsoluteLong, 5)
	set(0xFF, "SBC", AbsoluteLongX, 5)
	set(0xF1, "SBC", DirectPageIndirectIndexedY, 5)
	set(0xE1, "SBC", DirectPageIndexedIndirectX, 6)
	set(0xF2, "SBC", DirectPageIndirect, 5)

	// Logical
	set(0x29, "AND", Immediate, 2)
	set(0x25, "AND", DirectPage, 3)
	set(0x2D, "AND", Absolute, 4)
	set(0x3D, "AND", AbsoluteX, 4)
	set(0x39, "AND", AbsoluteY, 4)
	set(0x2F, "AND", AbsoluteLong, 5)
	set(0x09, "ORA", Immediate, 2)
	set(0x05, "ORA", DirectPage, 3)
	set(0x0D, "ORA", Absolute, 4)
	set(0x1D, "ORA", AbsoluteX, 4)
	set(0x19, "ORA", AbsoluteY, 4)
	set(0x0F, "ORA", AbsoluteLong, 5)
	set(0x49, "EOR", Immediate, 2)
	set(0x45, "EOR", DirectPage, 3)
	set(0x4D, "EOR", Absolute, 4)
	set(0x5D, "EOR", AbsoluteX, 4)
	set(0x59, "EOR", AbsoluteY, 4)
	set(0x4F, "EOR", AbsoluteLong, 5)

	// Compare
	set(0xC9, "CMP", Immediate, 2)
	set(0xC5, "CMP", DirectPage, 3)
	set(0xCD, "CMP", Absolute, 4)
	set(0xDD, "CMP", AbsoluteX, 4)
	set(0xD9, "CMP", AbsoluteY, 4)
	set(0xCF, "CMP", AbsoluteLong, 5)
	set(0xE0, "CPX", Immediate, 2)
	set(0xE4, "CPX", DirectPage, 3)
	set(0xEC, "CPX", Absolute, 4)
	set(0xC0, "CPY", Immediate, 2)
	set(0xC4, "CPY", DirectPage, 3)
	set(0xCC, "CPY", Absolute, 4)

	// Bit test
	set(0x89, "BIT", Immediate, 2)
	set(0x24, "BIT", DirectPage, 3)
	set(0x2C, "BIT", Absolute, 4)
	set(0x34, "BIT", DirectPageX, 4)
	set(0x3C, "BIT", AbsoluteX, 4)

	// Shifts/rotates
	set(0x0A, "ASL", Accumulator, 2)
	set(0x06, "ASL", DirectPage, 5)
	set(0x0E, "ASL", Absolute, 6)
	set(0x16, "ASL", DirectPageX, 6)
	set(0x4A, "LSR", Accumulator, 2)
	set(0x46, "LSR", DirectPage, 5)
	set(0x4E, "LSR", Absolute, 6)
	set(0x56, "LSR", DirectPageX, 6)
	set(0x2A, "ROL", Accumulator, 2)
	set(0x26, "ROL", DirectPage, 5)
	set(0x2E, "ROL", Absolute, 6)
	set(0x36, "ROL", DirectPageX, 6)
	set(0x6A, "ROR", Accumulator, 2)
	set(0x66, "ROR", DirectPage, 5)
	set(0x6E, "ROR", Absolute, 6)
	set(0x76, "ROR", DirectPageX, 6)

	// Inc/dec
	set(0xE6, "INC", DirectPage, 5)
	set(0xEE, "INC", Absolute, 6)
	set(0x1A, "INC", Accumulator, 2)
	set(0xC6, "DEC", DirectPage, 5)
	set(0xCE, "DEC", Absolute, 6)
	set(0x3A, "DEC", Accumulator, 2)
	set(0xE8, "INX", Implied, 2)
	set(0xC8, "INY", Implied, 2)
	set(0xCA, "DEX", Implied, 2)
	set(0x88, "DEY", Implied, 2)

	// Branches
	set(0x90, "BCC", Relative8, 2)
	set(0xB0, "BCS", Relative8, 2)
	set(0xF0, "BEQ", Relative8, 2)
	set(0xD0, "BNE", Relative8, 2)
	set(0x30, "BMI", Relative8, 2)
	set(0x10, "BPL", Relative8, 2)
	set(0x50, "BVC", Relative8, 2)
	set(0x70, "BVS", Relative8, 2)
	set(0x80, "BRA", Relative8, 3)
	set(0x82, "BRL", Relative16, 4)

	// Transfers
	set(0xAA, "TAX", Implied, 2)
	set(0xA8, "TAY", Implied, 2)
	set(0x8A, "TXA", Implied, 2)
	set(0x98, "TYA", Implied, 2)
	set(0xBA, "TSX", Implied, 2)
	set(0x9A, "TXS", Implied, 2)
	set(0x9B, "TXY", Implied, 2)
	set(0xBB, "TYX", Implied, 2)
	set(0x5B, "TCD", Implied, 2)
	set(0x7B, "TDC", Implied, 2)
	set(0x1B, "TCS", Implied, 2)
	set(0x3B, "TSC", Implied, 2)
	set(0xEB, "XBA", Implied, 3)

	// Stack
	set(0x48, "PHA", Implied, 3)
	set(0x68, "PLA", Implied, 4)
	set(0x08, "PHP", Implied, 3)
	set(0x28, "PLP", Implied, 4)
	set(0xDA, "PHX", Implied, 3)
	set(0xFA, "PLX", Implied, 4)
	set(0x5A, "PHY", Implied, 3)
	set(0x7A, "PLY", Implied, 4)
	set(0x8B, "PHB", Implied, 3)
	set(0xAB, "PLB", Implied, 4)
	set(0x0B, "PHD", Implied, 4)
	set(0x2B, "PLD", Implied, 5)
	set(0x4B, "PHK", Implied, 3)
	set(0xF4, "PEA", Absolute, 5)
	set(0xD4, "PEI", DirectPage, 6)
	set(0x62, "PER", Relative16, 6)

	// Subroutine linkage
	set(0x4C, "JMP", Absolute, 3)
	set(0x5C, "JML", AbsoluteLong, 4)
	set(0x6C, "JMP", AbsoluteIndirect, 5)
	set(0x7C, "JMP", AbsoluteIndexedIndirect, 6)
	set(0x20, "JSR", Absolute, 6)
	set(0xFC, "JSR", AbsoluteIndexedIndirect, 8)
	set(0x22, "JSL", AbsoluteLong, 8)
	set(0x60, "RTS", Implied, 6)
	set(0x6B, "RTL", Implied, 6)

	// Interrupts
	set(0x00, "BRK", Implied, 7)
	set(0x02, "COP", Implied, 7)
	set(0x40, "RTI", Implied, 6)

	// Block moves
	set(0x54, "MVN", Implied, 7)
	set(0x44, "MVP", Implied, 7)

	// Mode control
	set(0xC2, "REP", Immediate, 3)
	set(0xE2, "SEP", Immediate, 3)
	set(0xFB, "XCE", Implied, 2)
	set(0x18, "CLC", Implied, 2)
	set(0x38, "SEC", Implied, 2)
	set(0x58, "CLI", Implied, 2)
	set(0x78, "SEI", Implied, 2)
	set(0xB8, "CLV", Implied, 2)
	set(0xD8, "CLD", Implied, 2)
	set(0xF8, "SED", Implied, 2)

	// Waiting/stopped
	set(0xCB, "WAI", Implied, 3)
	set(0xDB, "STP", Implied, 3)

	// Padding/no-ops
	set(0xEA, "NOP", Implied, 2)
	set(0x42, "WDM", Immediate, 2)
}
