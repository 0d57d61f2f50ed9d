package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snesgo/internal/app"
	"snesgo/internal/cartridge"
	"snesgo/internal/console"
	"snesgo/internal/hostvideo"
)

var (
	runFrames   int
	runHeadless bool
	runDumpPPM  string
	runConfig   string
)

var runCmd = &cobra.Command{
	Use:   "run <rom>",
	Short: "Run a ROM, windowed or headless",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.NewConfig()
		switch {
		case runConfig != "":
			if err := cfg.LoadFromFile(runConfig); err != nil {
				return err
			}
		default:
			// The per-user config is optional; defaults apply when absent.
			if path := app.GetDefaultConfigPath(); path != "" {
				if _, err := os.Stat(path); err == nil {
					if err := cfg.LoadFromFile(path); err != nil {
						return err
					}
				}
			}
		}

		cart, err := cartridge.LoadFromFile(args[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[0], err)
		}

		c := console.New()
		c.LoadCartridge(cart)

		backendName := cfg.Video.Backend
		if runHeadless {
			backendName = "headless"
		}
		backend, err := hostvideo.CreateBackend(backendName)
		if err != nil {
			return fmt.Errorf("creating backend: %w", err)
		}

		hostCfg := hostvideo.Config{
			Title:          cart.Title(),
			Width:          cfg.Window.Width,
			Height:         cfg.Window.Height,
			VSync:          cfg.Video.VSync,
			AudioEnabled:   cfg.Audio.Enabled && !backend.IsHeadless(),
			AudioSampleHz:  cfg.Audio.SampleRate,
			HeadlessFrames: runFrames,
		}
		if err := backend.Initialize(hostCfg); err != nil {
			return fmt.Errorf("initializing %s backend: %w", backend.Name(), err)
		}
		defer backend.Cleanup()

		var lastFrame []uint32
		err = backend.Run(func(buttons uint16) (frame []uint32, audio []int16) {
			c.SetButtons(buttons)
			c.RunFrame()
			lastFrame = c.FrameBuffer()
			return lastFrame, c.RenderAudioFrame()
		})
		if err != nil {
			return fmt.Errorf("running %s backend: %w", backend.Name(), err)
		}

		if runDumpPPM != "" && lastFrame != nil {
			if err := hostvideo.SavePPM(lastFrame, 512, 478, runDumpPPM); err != nil {
				return fmt.Errorf("writing %s: %w", runDumpPPM, err)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runFrames, "frames", 60, "number of frames to run in headless mode (0 = run forever)")
	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "run without a window")
	runCmd.Flags().StringVar(&runDumpPPM, "dump-ppm", "", "write the final frame to a PPM file")
	runCmd.Flags().StringVar(&runConfig, "config", "", "path to a host config file (defaults to the per-user config when present)")
}
