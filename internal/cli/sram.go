package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snesgo/internal/cartridge"
	"snesgo/internal/console"
)

var sramSavePath string
var sramLoadPath string

var sramCmd = &cobra.Command{
	Use:   "sram <rom>",
	Short: "Load or save a cartridge's battery-backed SRAM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := cartridge.LoadFromFile(args[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[0], err)
		}
		c := console.New()
		c.LoadCartridge(cart)

		if sramLoadPath != "" {
			data, err := os.ReadFile(sramLoadPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", sramLoadPath, err)
			}
			if err := c.Bus.LoadSRAM(data); err != nil {
				return fmt.Errorf("loading SRAM: %w", err)
			}
			fmt.Printf("loaded %d bytes of SRAM from %s\n", len(data), sramLoadPath)
		}

		if sramSavePath != "" {
			data := c.Bus.SaveSRAM()
			if err := os.WriteFile(sramSavePath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", sramSavePath, err)
			}
			fmt.Printf("saved %d bytes of SRAM to %s\n", len(data), sramSavePath)
		}
		return nil
	},
}

func init() {
	sramCmd.Flags().StringVar(&sramLoadPath, "load", "", "SRAM file to load before saving")
	sramCmd.Flags().StringVar(&sramSavePath, "save", "", "path to write the cartridge's current SRAM")
}
