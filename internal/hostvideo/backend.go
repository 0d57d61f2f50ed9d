// Package hostvideo presents the console's framebuffer and audio buffer to
// a host window, and reads keyboard input into an SNES-style controller.
// It sits entirely outside the emulation core: the console exposes buffers,
// and a Backend decides how they reach a screen and speaker.
package hostvideo

import "snesgo/internal/input"

// Backend is a host presentation backend: a window (or lack of one), a
// frame/audio sink, and keyboard polling into a Controller.
type Backend interface {
	Initialize(cfg Config) error
	// Run starts the backend's main loop, calling tick once per host frame
	// until the backend's window closes (or, for a headless backend,
	// until frames reaches the configured limit). tick should advance the
	// console by one frame and return the frame/audio buffers to present.
	Run(tick TickFunc) error
	Cleanup() error
	IsHeadless() bool
	Name() string
}

// TickFunc receives the current host controller input (a Button bitmask),
// advances the emulated console by one frame, and returns the framebuffer
// (512x478 RGBA8888) and the 534-sample stereo audio buffer produced by
// that frame.
type TickFunc func(buttons uint16) (frame []uint32, audio []int16)

// Config configures a Backend.
type Config struct {
	Title          string
	Width, Height  int
	VSync          bool
	AudioEnabled   bool
	AudioSampleHz  int
	HeadlessFrames int // for the headless backend: frames to run before stopping
}

// NewController returns a fresh SNES controller for a backend to drive
// from host keyboard state.
func NewController() *input.Controller { return input.New() }

// CreateBackend returns the named backend ("ebitengine" or "headless").
func CreateBackend(name string) (Backend, error) {
	switch name {
	case "headless", "":
		return NewHeadlessBackend(), nil
	default:
		return newVideoBackend(), nil
	}
}
