// frameloop runs small real-time games on a shared game loop, in the
// terminal, over SSH, headless, or in a window.
//
// Usage:
//
//	frameloop list              - List available games
//	frameloop play <game>       - Play a game
//	frameloop menu              - Start menu to pick games interactively
//	frameloop sim <game>        - Run a game headless with scripted input
//	frameloop scores [game]     - Show high scores
//	frameloop serve             - Start SSH server for remote play
//	frameloop config <game>     - Print a game's default settings
//	frameloop window <game>     - Play in a window (built with -tags ebiten)
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.frameloop/scores.db)
//	--config <path>       - Game settings YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a rotating file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/frameloop/internal/config"
	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/logging"
	"github.com/vovakirdan/frameloop/internal/registry"
	"github.com/vovakirdan/frameloop/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/frameloop/internal/games/breakout"
	_ "github.com/vovakirdan/frameloop/internal/games/dino"
	_ "github.com/vovakirdan/frameloop/internal/games/dodge"
	_ "github.com/vovakirdan/frameloop/internal/games/flappy"
	_ "github.com/vovakirdan/frameloop/internal/games/pong"
	_ "github.com/vovakirdan/frameloop/internal/games/shooter"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frameloop",
	Short: "Real-time games on a shared game loop",
	Long: `frameloop runs small real-time games on one reusable game loop:
update, collide, draw, schedule the next frame.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  sim      - Run a game headless with scripted input
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print a game's default settings

Examples:
  frameloop list
  frameloop play flappy
  frameloop menu --difficulty hard
  frameloop sim dodge --seed 42 --runs 8
  frameloop serve --ssh :2222
  frameloop scores shooter`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.BaseTickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger. Full-screen modes pass quiet so
// log lines never land on the alternate screen.
func newLogger(quiet bool) (*log.Logger, io.Closer) {
	logger, closer, err := logging.New(logging.Config{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Quiet:  quiet,
		Prefix: "frameloop",
	})
	if err != nil {
		fail("%v", err)
	}
	return logger, closer
}

// openStore opens the score database. Failure is not fatal: games run
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func difficulty() config.DifficultyPreset {
	if flagDifficulty == "" {
		return ""
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	return preset
}

func gameOptions() registry.Options {
	return registry.Options{ConfigPath: flagConfig, Difficulty: difficulty()}
}

func mustExist(gameID string) {
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'frameloop list' to see available games.", gameID)
	}
}

// runtimeConfig sizes the world to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg.Normalized()
}
