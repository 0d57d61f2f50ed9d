// Package cli implements the snesgo command-line host: run, info, and
// sram subcommands built on cobra, styled with lipgloss, grounded on
// sargunv-screenscraper-go's internal/cli layout.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snesgo",
	Short: "A Super Nintendo Entertainment System emulator core",
	Long: `snesgo runs SNES ROM images against a from-scratch 65816 CPU, PPU
and APU core.

  snesgo run <rom>        run a ROM, windowed or headless
  snesgo info <rom>       print the parsed cartridge header
  snesgo sram <rom>       load/save a cartridge's SRAM file
  snesgo version          print build and version information`,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(sramCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the snesgo CLI.
func Execute() error {
	return rootCmd.Execute()
}
