package input

import "testing"

func TestStrobeLatchesAndShiftsInSerialOrder(t *testing.T) {
	c := New()
	c.SetButton(ButtonB, true)
	c.SetButton(ButtonStart, true)

	c.Strobe(true)
	c.Strobe(false)

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0} // B, Y, Select, Start, ...
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("bit %d = %d, want %d", i, got, w)
		}
	}
	// Continued reads past the 12 real buttons return 1.
	if got := c.Read(); got != 1 {
		t.Errorf("post-register read = %d, want 1", got)
	}
}

func TestSetAllReplacesHeldMask(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.SetAll(uint16(ButtonL))

	c.Strobe(true)
	c.Strobe(false)
	for i := 0; i < 10; i++ { // L is bit 10
		c.Read()
	}
	if got := c.Read(); got != 1 {
		t.Errorf("L bit = %d, want 1", got)
	}
}

func TestReadWhileStrobedReturnsBState(t *testing.T) {
	c := New()
	c.SetButton(ButtonB, true)
	c.Strobe(true)
	if got := c.Read(); got != 1 {
		t.Errorf("strobed read = %d, want 1 (B held)", got)
	}
}
