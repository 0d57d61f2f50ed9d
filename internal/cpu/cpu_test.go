package cpu

import "testing"

// flatMemory is a 24-bit address space backed by a flat byte slice, used to
// exercise the CPU in isolation from the real bank-switched bus.
type flatMemory struct {
	data [1 << 24]uint8
}

func (m *flatMemory) Read(addr uint32) uint8  { return m.data[addr&0xFFFFFF] }
func (m *flatMemory) Write(addr uint32, v uint8) { m.data[addr&0xFFFFFF] = v }

func (m *flatMemory) Read16(addr uint32) uint16 {
	bank := addr & 0xFF0000
	lo := addr & 0xFFFF
	hi := (lo + 1) & 0xFFFF
	return uint16(m.Read(bank|lo)) | uint16(m.Read(bank|hi))<<8
}

func (m *flatMemory) Write16(addr uint32, v uint16) {
	bank := addr & 0xFF0000
	lo := addr & 0xFFFF
	hi := (lo + 1) & 0xFFFF
	m.Write(bank|lo, uint8(v))
	m.Write(bank|hi, uint8(v>>8))
}

func newTestCPU() (*CPU, *flatMemory) {
	mem := &flatMemory{}
	mem.Write16(resetVectorEmul, 0x8000)
	c := New(mem)
	c.Reset()
	return c, mem
}

func TestReset_LoadsVectorAndPowerUpState(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0x8000 {
		t.Errorf("PC = %#x, want 0x8000", c.PC)
	}
	if !c.E || !c.M || !c.Xf || !c.I {
		t.Errorf("reset flags = E:%v M:%v X:%v I:%v, want all true", c.E, c.M, c.Xf, c.I)
	}
	if c.S != 0x01FF {
		t.Errorf("S = %#x, want 0x01FF", c.S)
	}
	if c.PBR != 0 || c.DBR != 0 || c.D != 0 {
		t.Errorf("PBR/DBR/D not cleared: %#x %#x %#x", c.PBR, c.DBR, c.D)
	}
}

func TestLDA_STA_Immediate8Bit(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0x8000, 0xA9) // LDA #imm
	mem.Write(0x8001, 0x42)
	mem.Write(0x8002, 0x85) // STA dp
	mem.Write(0x8003, 0x10)

	c.Step()
	if c.A != 0x42 {
		t.Fatalf("A = %#x, want 0x42", c.A)
	}
	if c.Z || c.N {
		t.Errorf("Z/N = %v/%v, want false/false", c.Z, c.N)
	}

	c.Step()
	if got := mem.Read(0x0010); got != 0x42 {
		t.Errorf("mem[0x10] = %#x, want 0x42", got)
	}
}

func TestLDA_SetsZeroFlag(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0x8000, 0xA9)
	mem.Write(0x8001, 0x00)
	c.Step()
	if !c.Z {
		t.Error("Z not set for zero load")
	}
}

func TestADC_BinaryCarryAndOverflow(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x7F
	mem.Write(0x8000, 0x69) // ADC #imm
	mem.Write(0x8001, 0x01)
	c.Step()
	if c.A != 0x80 {
		t.Fatalf("A = %#x, want 0x80", c.A)
	}
	if !c.V {
		t.Error("V not set for signed overflow 0x7F+0x01")
	}
	if c.C {
		t.Error("C incorrectly set")
	}
}

func TestADC_OverflowNegative(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x7F
	c.C = false
	mem.Write(0x8000, 0x69) // ADC #imm
	mem.Write(0x8001, 0x7F)
	c.Step()
	if c.A != 0xFE {
		t.Fatalf("A = %#x, want 0xFE", c.A)
	}
	if c.C || !c.V || !c.N || c.Z {
		t.Errorf("flags C:%v V:%v N:%v Z:%v, want false/true/true/false", c.C, c.V, c.N, c.Z)
	}
}

func TestADC_BCDMode(t *testing.T) {
	c, mem := newTestCPU()
	c.Dec = true
	c.A = 0x09
	mem.Write(0x8000, 0x69)
	mem.Write(0x8001, 0x01)
	c.Step()
	if c.A != 0x10 {
		t.Fatalf("BCD 0x09+0x01 = %#x, want 0x10", c.A)
	}
}

func TestSBC_Borrow(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x00
	c.C = true // no borrow going in
	mem.Write(0x8000, 0xE9)
	mem.Write(0x8001, 0x01)
	c.Step()
	if c.A != 0xFF {
		t.Fatalf("A = %#x, want 0xFF", c.A)
	}
	if c.C {
		t.Error("C should be clear (borrow occurred)")
	}
}

func TestCompare_SetsCarryWhenGreaterOrEqual(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x10
	mem.Write(0x8000, 0xC9)
	mem.Write(0x8001, 0x05)
	c.Step()
	if !c.C {
		t.Error("C should be set: A >= operand")
	}
	if c.Z {
		t.Error("Z should be clear: A != operand")
	}
}

func TestBranch_TakenAddsCycleAndMoves(t *testing.T) {
	c, mem := newTestCPU()
	c.Z = true
	mem.Write(0x8000, 0xF0) // BEQ
	mem.Write(0x8001, 0x05)
	cyc := c.Step()
	if c.PC != 0x8007 {
		t.Errorf("PC = %#x, want 0x8007", c.PC)
	}
	if cyc != 3 { // base 2 + 1 taken
		t.Errorf("cycles = %d, want 3", cyc)
	}
}

func TestBranch_NotTakenStaysInPlace(t *testing.T) {
	c, mem := newTestCPU()
	c.Z = false
	mem.Write(0x8000, 0xF0)
	mem.Write(0x8001, 0x05)
	c.Step()
	if c.PC != 0x8002 {
		t.Errorf("PC = %#x, want 0x8002", c.PC)
	}
}

func TestJSR_RTS_RoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0x8000, 0x20) // JSR absolute
	mem.Write16(0x8001, 0x9000)
	mem.Write(0x9000, 0x60) // RTS

	c.Step() // JSR
	if c.PC != 0x9000 {
		t.Fatalf("PC after JSR = %#x, want 0x9000", c.PC)
	}
	c.Step() // RTS
	if c.PC != 0x8003 {
		t.Fatalf("PC after RTS = %#x, want 0x8003", c.PC)
	}
}

func TestPHA_PLA_RoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x55
	mem.Write(0x8000, 0x48) // PHA
	mem.Write(0x8001, 0xA9) // LDA #imm clobber
	mem.Write(0x8002, 0x00)
	mem.Write(0x8003, 0x68) // PLA

	c.Step()
	c.Step()
	if c.A != 0x00 {
		t.Fatalf("A after clobber = %#x, want 0x00", c.A)
	}
	c.Step()
	if c.A != 0x55 {
		t.Fatalf("A after PLA = %#x, want 0x55", c.A)
	}
}

func TestXCE_EnterNativeMode(t *testing.T) {
	c, mem := newTestCPU()
	c.C = false // XCE swaps C and E
	mem.Write(0x8000, 0xFB)
	c.Step()
	if c.E {
		t.Error("still in emulation mode after XCE with C=0")
	}
	if !c.C {
		t.Error("C should now hold the old E (true)")
	}
}

func TestXCE_TwiceRestoresEAndC(t *testing.T) {
	c, mem := newTestCPU()
	c.C = false
	mem.Write(0x8000, 0xFB)
	mem.Write(0x8001, 0xFB)
	e, carry := c.E, c.C
	c.Step()
	c.Step()
	if c.E != e || c.C != carry {
		t.Errorf("E/C after two XCE = %v/%v, want %v/%v", c.E, c.C, e, carry)
	}
}

func TestREP_SEP_WidenAccumulator(t *testing.T) {
	c, mem := newTestCPU()
	c.C = false
	mem.Write(0x8000, 0xFB) // XCE -> native mode
	mem.Write(0x8001, 0xC2) // REP #$20 clear M (16-bit A)
	mem.Write(0x8002, 0x20)

	c.Step()
	c.Step()
	if c.M {
		t.Error("M flag still set after REP #$20")
	}
}

func TestStackHighByte_PinnedInEmulationMode(t *testing.T) {
	c, _ := newTestCPU()
	c.S = 0x01FF
	c.push(0x11)
	if c.S&0xFF00 != 0x0100 {
		t.Errorf("S high byte = %#x, want 0x0100 in emulation mode", c.S&0xFF00)
	}
}

func TestMVN_BlockMoveDecrementsAAndRepeats(t *testing.T) {
	c, mem := newTestCPU()
	c.A = 0x0001 // move 2 bytes
	c.X = 0x2000
	c.Y = 0x3000
	mem.Write(0x002000, 0xAA)
	mem.Write(0x002001, 0xBB)
	mem.Write(0x8000, 0x54) // MVN
	mem.Write(0x8001, 0x00) // dest bank
	mem.Write(0x8002, 0x00) // src bank

	c.Step() // first byte, A != 0xFFFF so PC rewinds
	if c.PC != 0x8000 {
		t.Fatalf("PC after first MVN iteration = %#x, want 0x8000 (repeat)", c.PC)
	}
	c.Step() // second byte, A becomes 0xFFFF, falls through
	if c.PC != 0x8003 {
		t.Fatalf("PC after MVN completes = %#x, want 0x8003", c.PC)
	}
	if got := mem.Read(0x003000); got != 0xAA {
		t.Errorf("mem[0x3000] = %#x, want 0xAA", got)
	}
	if got := mem.Read(0x003001); got != 0xBB {
		t.Errorf("mem[0x3001] = %#x, want 0xBB", got)
	}
}

func TestBRK_JumpsThroughVectorAndSetsI(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write16(brkVectorNative, 0) // unused in emulation mode
	mem.Write16(irqVectorEmul, 0xABCD)
	mem.Write(0x8000, 0x00) // BRK
	mem.Write(0x8001, 0x00) // signature byte

	c.I = false
	c.Step()
	if c.PC != 0xABCD {
		t.Fatalf("PC = %#x, want 0xABCD", c.PC)
	}
	if !c.I {
		t.Error("I should be set after BRK")
	}
}
