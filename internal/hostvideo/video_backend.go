//go:build !headless

package hostvideo

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	fbWidth  = 512
	fbHeight = 478
)

// videoBackend presents the console through an Ebitengine window and
// optionally plays the 32kHz stereo audio stream through ebiten/v2/audio.
type videoBackend struct {
	cfg Config
	game *ebitenGame
}

func newVideoBackend() Backend { return &videoBackend{} }

func (b *videoBackend) Initialize(cfg Config) error {
	b.cfg = cfg
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetVsyncEnabled(cfg.VSync)

	g := &ebitenGame{
		image:  ebiten.NewImage(fbWidth, fbHeight),
		buf:    image.NewRGBA(image.Rect(0, 0, fbWidth, fbHeight)),
		width:  cfg.Width,
		height: cfg.Height,
	}
	if cfg.AudioEnabled {
		g.audioCtx = audio.NewContext(cfg.AudioSampleHz)
		g.audioStream = newSampleStream()
	}
	b.game = g
	return nil
}

func (b *videoBackend) Run(tick TickFunc) error {
	if b.game == nil {
		return fmt.Errorf("hostvideo: backend not initialized")
	}
	b.game.tick = tick
	if b.game.audioCtx != nil {
		player, err := b.game.audioCtx.NewPlayer(b.game.audioStream)
		if err == nil {
			player.SetBufferSize(0)
			player.Play()
			b.game.audioPlayer = player
		}
	}
	return ebiten.RunGame(b.game)
}

func (b *videoBackend) Cleanup() error { return nil }
func (b *videoBackend) IsHeadless() bool { return false }
func (b *videoBackend) Name() string { return "ebitengine" }

// ebitenGame implements ebiten.Game, driving the TickFunc once per host
// frame and presenting its output.
type ebitenGame struct {
	tick   TickFunc
	image  *ebiten.Image
	buf    *image.RGBA
	width  int
	height int

	audioCtx    *audio.Context
	audioStream *sampleStream
	audioPlayer *audio.Player

	buttons uint16
}

func (g *ebitenGame) Update() error {
	g.buttons = pollKeyboard()
	frame, samples := g.tick(g.buttons)
	for y := 0; y < fbHeight; y++ {
		for x := 0; x < fbWidth; x++ {
			pixel := frame[y*fbWidth+x]
			g.buf.SetRGBA(x, y, color.RGBA{
				R: uint8(pixel >> 16), G: uint8(pixel >> 8), B: uint8(pixel), A: 0xFF,
			})
		}
	}
	g.image.WritePixels(g.buf.Pix)
	if g.audioStream != nil {
		g.audioStream.push(samples)
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.image, nil)
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width > 0 && g.height > 0 {
		return g.width, g.height
	}
	return fbWidth, fbHeight
}
