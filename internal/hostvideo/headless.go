package hostvideo

import (
	"fmt"
	"os"
)

// HeadlessSink runs the TickFunc loop with no window: useful for CLI
// batch runs (`snesgo run --headless`) and for tests that want frames
// without a display.
type HeadlessSink struct {
	cfg        Config
	frameCount int
}

// NewHeadlessBackend creates a backend with no window or audio device.
func NewHeadlessBackend() Backend { return &HeadlessSink{} }

func (h *HeadlessSink) Initialize(cfg Config) error {
	h.cfg = cfg
	return nil
}

// Run calls tick until HeadlessFrames frames have been produced (a zero
// limit runs forever, for long batch conversions).
func (h *HeadlessSink) Run(tick TickFunc) error {
	for h.cfg.HeadlessFrames == 0 || h.frameCount < h.cfg.HeadlessFrames {
		tick(0)
		h.frameCount++
	}
	return nil
}

func (h *HeadlessSink) Cleanup() error { return nil }
func (h *HeadlessSink) IsHeadless() bool { return true }
func (h *HeadlessSink) Name() string { return "headless" }

// FrameCount reports how many frames Run has produced so far.
func (h *HeadlessSink) FrameCount() int { return h.frameCount }

// SavePPM writes a 512x478 RGBA8888 frame to path as a plain PPM image,
// for headless debugging/visual diffing.
func SavePPM(frame []uint32, width, height int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "P3\n%d %d\n255\n", width, height)
	for _, pixel := range frame {
		r := (pixel >> 16) & 0xFF
		g := (pixel >> 8) & 0xFF
		b := pixel & 0xFF
		fmt.Fprintf(f, "%d %d %d ", r, g, b)
	}
	return nil
}
