// Command snesgo is the CLI host for the SNES core: load a ROM, run it
// headless or windowed for N frames, inspect its header, and round-trip
// its SRAM against a save file.
package main

import (
	"fmt"
	"os"

	"snesgo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
