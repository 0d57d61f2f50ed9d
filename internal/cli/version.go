package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"snesgo/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(titleStyle.Render("snesgo " + version.GetVersion()))
		fmt.Println(valueStyle.Render(version.GetDetailedVersion()))
		return nil
	},
}
