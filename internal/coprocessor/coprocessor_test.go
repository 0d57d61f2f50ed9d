package coprocessor

import "testing"

func TestStubsClaimTheirWindowAndAnswerOpenBus(t *testing.T) {
	cases := []struct {
		name string
		cp   Coprocessor
		hit  uint32
		miss uint32
	}{
		{"dsp1", newDSP1(), 0x006123, 0x000000},
		{"sa1", newSA1(), 0x002210, 0x002400},
		{"superfx", newSuperFX(), 0x003050, 0x004050},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !c.cp.HandlesAddress(c.hit) {
				t.Errorf("%s: expected to claim %#x", c.name, c.hit)
			}
			if c.cp.HandlesAddress(c.miss) {
				t.Errorf("%s: did not expect to claim %#x", c.name, c.miss)
			}
			if got := c.cp.Read(c.hit); got != 0xFF {
				t.Errorf("%s: Read = %#x, want 0xFF (open bus)", c.name, got)
			}
			if got := c.cp.Step(6); got != 6 {
				t.Errorf("%s: Step(6) = %d, want 6", c.name, got)
			}
		})
	}
}
