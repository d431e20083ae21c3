package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/frameloop/internal/platform/tui"
	"github.com/vovakirdan/frameloop/internal/registry"
	"github.com/vovakirdan/frameloop/internal/storage"
)

var flagBell bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in this terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Jump/Flap
  F/Z          - Shoot
  P            - Pause
  R            - Restart
  ?            - All keys
  Ctrl+S       - Screenshot to ~/.frameloop/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  frameloop play flappy
  frameloop play shooter --difficulty easy
  frameloop play dodge --seed 42
  frameloop play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on hits and game over")
	menuCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on hits and game over")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustExist(gameID)

	logger, closer := newLogger(true)
	defer closer.Close()

	game, err := registry.Create(gameID, gameOptions())
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runErr := tui.Run(game, hostOptions(store, logger), runtimeConfig())
	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

func hostOptions(store *storage.Store, logger *log.Logger) tui.Options {
	opts := tui.Options{
		Store:      store,
		Logger:     logger,
		ConfigPath: flagConfig,
		Difficulty: difficulty(),
	}
	if flagBell {
		opts.Sound = tui.NewBell(os.Stderr, tui.DefaultBellEvents)
	}
	return opts
}
