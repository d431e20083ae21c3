package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frameloop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default settings",
	Long: `Print the built-in YAML settings of a game. Save the output to
~/.frameloop/configs/<game>.yaml or ./configs/<game>.yaml to override them,
or pass it with --config.

Examples:
  frameloop config flappy > ~/.frameloop/configs/flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustExist(gameID)

	data, err := config.Embedded(gameID)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
