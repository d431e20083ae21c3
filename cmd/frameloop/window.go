//go:build ebiten

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/platform/window"
	"github.com/vovakirdan/frameloop/internal/registry"
)

var flagWindowScale float64

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a window",
	Long: `Open a desktop window and play the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Jump/Flap
  F/Z          - Shoot
  P            - Pause
  R            - Restart
  Q/Esc        - Quit

Examples:
  frameloop window flappy
  frameloop window dodge --scale 1.5 --seed 7`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagWindowScale, "scale", 1, "Window zoom factor")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustExist(gameID)

	logger, closer := newLogger(false)
	defer closer.Close()

	game, err := registry.Create(gameID, gameOptions())
	if err != nil {
		fail("creating game: %v", err)
	}

	var scores engine.ScoreKeeper
	if store := openStore(logger); store != nil {
		defer store.Close()
		scores = store
	}

	res, err := window.Run(game, window.Options{
		Scores: scores,
		Logger: logger,
		Scale:  flagWindowScale,
	}, core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: flagFPS, Seed: flagSeed})
	if err != nil {
		fail("%v", err)
	}
	if res != nil {
		fmt.Printf("Final score: %d\n", res.Score)
	}
}
