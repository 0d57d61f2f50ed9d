package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"snesgo/internal/cartridge"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).MarginBottom(1)
)

var infoCmd = &cobra.Command{
	Use:   "info <rom>",
	Short: "Print the parsed cartridge header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := cartridge.LoadFromFile(args[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[0], err)
		}
		printCartridgeInfo(cart)
		return nil
	},
}

func printCartridgeInfo(cart *cartridge.Cartridge) {
	row := func(label, value string) {
		fmt.Printf("%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
	}
	fmt.Println(titleStyle.Render(cart.Title()))
	row("Mapping", cart.MappingMode().String())
	row("Type", fmt.Sprintf("%v", cart.CartridgeType()))
	row("Coprocessor", fmt.Sprintf("%v", cart.Coprocessor()))
	row("ROM size", fmt.Sprintf("%d KiB", cart.RomSizeBytes()/1024))
	row("SRAM size", fmt.Sprintf("%d KiB", cart.SramSizeBytes()/1024))
	row("Region", fmt.Sprintf("%v", cart.Region()))
}
