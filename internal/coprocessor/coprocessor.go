// Package coprocessor implements the cartridge coprocessor capability set:
// a small closed interface the frame driver steps and dispatches address
// windows to, with a factory selecting a variant from the cartridge's
// declared coprocessor kind.
package coprocessor

import "snesgo/internal/cartridge"

// Coprocessor is the capability set every cartridge chip variant
// implements: reset, byte-addressed read/write over its own window, a
// cycle-budgeted step, and an address-claim predicate the driver consults
// before falling through to the bus.
type Coprocessor interface {
	Reset()
	Read(addr uint32) uint8
	Write(addr uint32, v uint8)
	Step(cycles uint64) uint64
	HandlesAddress(addr uint32) bool
}

// New returns the coprocessor matching the cartridge's declared kind, or
// (nil, false) when the kind is absent or unsupported — the emulator runs
// without it rather than failing.
func New(cart *cartridge.Cartridge) (Coprocessor, bool) {
	if cart.CartridgeType() != cartridge.TypeROMCoprocessor {
		return nil, false
	}
	switch cart.Coprocessor() {
	case cartridge.CoprocessorDSP1:
		return newDSP1(), true
	case cartridge.CoprocessorSA1:
		return newSA1(), true
	case cartridge.CoprocessorSuperFX:
		return newSuperFX(), true
	default:
		return nil, false
	}
}
