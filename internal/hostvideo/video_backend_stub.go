//go:build headless

package hostvideo

import "fmt"

// videoBackend stub for headless builds: the ebitengine window/audio
// backend is unavailable.
type videoBackend struct{}

func newVideoBackend() Backend { return &videoBackend{} }

func (b *videoBackend) Initialize(cfg Config) error {
	return fmt.Errorf("ebitengine backend not available in headless build")
}

func (b *videoBackend) Run(tick TickFunc) error {
	return fmt.Errorf("ebitengine backend not available in headless build")
}

func (b *videoBackend) Cleanup() error   { return nil }
func (b *videoBackend) IsHeadless() bool { return true }
func (b *videoBackend) Name() string     { return "ebitengine-stub" }
