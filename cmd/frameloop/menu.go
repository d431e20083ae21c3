package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frameloop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick a difficulty and
Enter to start a game. After a game, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Difficulty
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  frameloop menu
  frameloop menu --fps 30
  frameloop menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer := newLogger(true)
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(hostOptions(store, logger), runtimeConfig(), os.Getenv("USER")); err != nil {
		logger.Error("menu failed", "error", err)
		fail("%v", err)
	}
}
