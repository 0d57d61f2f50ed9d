// Package app provides host-level configuration for the emulator: the
// JSON-backed Config struct the CLI loads before wiring up a console.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all host-level configuration. The emulation core itself
// (internal/console, internal/cpu, internal/ppu, internal/apu) is
// unconfigurable by design — every knob here governs how the host
// presents or drives that core.
type Config struct {
	Window    WindowConfig    `json:"window"`
	Video     VideoConfig     `json:"video"`
	Audio     AudioConfig     `json:"audio"`
	Input     InputConfig     `json:"input"`
	Emulation EmulationConfig `json:"emulation"`
	Paths     PathsConfig     `json:"paths"`

	configPath string
	loaded     bool
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
	Scale      int  `json:"scale"`
}

// VideoConfig describes host-side video presentation.
type VideoConfig struct {
	VSync   bool   `json:"vsync"`
	Filter  string `json:"filter"`  // "nearest", "linear"
	Backend string `json:"backend"` // "ebitengine", "headless"
}

// AudioConfig describes host-side audio output.
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sample_rate"`
	Volume     float32 `json:"volume"`
}

// InputConfig describes keyboard-to-controller bindings.
type InputConfig struct {
	Player1Keys KeyMapping `json:"player1_keys"`
}

// KeyMapping is one player's keyboard binding for the SNES controller's
// eight-button + D-pad layout.
type KeyMapping struct {
	Up, Down, Left, Right string
	A, B, X, Y            string
	L, R                  string
	Start, Select         string
}

// EmulationConfig governs how the frame driver is run by the host.
type EmulationConfig struct {
	Region   string `json:"region"` // "NTSC", "PAL"
	AutoSRAM bool   `json:"auto_sram"`
}

// PathsConfig locates host-side files.
type PathsConfig struct {
	RomDir  string `json:"rom_dir"`
	SaveDir string `json:"save_dir"`
}

// ConfigError reports a config load/validate failure.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("config %s: %v", e.Op, e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfig returns a Config populated with reasonable defaults.
func NewConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 512, Height: 478, Scale: 2},
		Video:  VideoConfig{VSync: true, Filter: "nearest", Backend: "ebitengine"},
		Audio:  AudioConfig{Enabled: true, SampleRate: 32000, Volume: 1.0},
		Input: InputConfig{Player1Keys: KeyMapping{
			Up: "ArrowUp", Down: "ArrowDown", Left: "ArrowLeft", Right: "ArrowRight",
			A: "X", B: "Z", X: "S", Y: "A", L: "Q", R: "W",
			Start: "Enter", Select: "ShiftRight",
		}},
		Emulation: EmulationConfig{Region: "NTSC", AutoSRAM: true},
		Paths:     PathsConfig{RomDir: ".", SaveDir: "."},
	}
}

// LoadFromFile reads and unmarshals a JSON config file.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Op: "load", Err: err}
	}
	if err := json.Unmarshal(data, c); err != nil {
		return &ConfigError{Op: "parse", Err: err}
	}
	if err := c.validate(); err != nil {
		return &ConfigError{Op: "validate", Err: err}
	}
	c.configPath = path
	c.loaded = true
	return nil
}

// SaveToFile marshals the config as indented JSON to path, creating parent
// directories as needed.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &ConfigError{Op: "mkdir", Err: err}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return &ConfigError{Op: "marshal", Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &ConfigError{Op: "write", Err: err}
	}
	c.configPath = path
	return nil
}

// Save writes back to the path Config was last loaded from or saved to.
func (c *Config) Save() error {
	if c.configPath == "" {
		return &ConfigError{Op: "save", Err: fmt.Errorf("no config path set")}
	}
	return c.SaveToFile(c.configPath)
}

func (c *Config) validate() error {
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %d", c.Window.Scale)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	switch c.Video.Backend {
	case "ebitengine", "headless":
	default:
		return fmt.Errorf("video.backend %q is not recognised", c.Video.Backend)
	}
	return nil
}

// IsLoaded reports whether this Config was populated from a file.
func (c *Config) IsLoaded() bool { return c.loaded }

// GetConfigPath returns the path this Config was last loaded from or saved to.
func (c *Config) GetConfigPath() string { return c.configPath }

// GetDefaultConfigPath returns the conventional per-user config file path.
func GetDefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "snesgo", "config.json")
}
