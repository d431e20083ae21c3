package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/sim"
)

var (
	flagSimFrames   uint64
	flagSimRuns     int
	flagSimPattern  string
	flagSimRealtime bool
	flagSimRender   bool
	flagSimWidth    int
	flagSimHeight   int
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with scripted input",
	Long: `Play a game without a terminal, driving it with a scripted input
pattern. Runs are deterministic for a given seed; --runs N plays seeds
seed, seed+1, ... seed+N-1 in parallel.

Input patterns:
  idle    - No input
  sweep   - Cycle through the directions, keep firing, flap every 20 frames
  random  - Seeded random presses

Examples:
  frameloop sim flappy --pattern idle
  frameloop sim dodge --seed 42 --runs 8
  frameloop sim shooter --frames 600 --render
  frameloop sim dodge --realtime --fps 30`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	f := simCmd.Flags()
	f.Uint64Var(&flagSimFrames, "frames", sim.DefaultFrames, "Frame limit per run")
	f.IntVar(&flagSimRuns, "runs", 1, "Number of runs, each with the next seed")
	f.StringVar(&flagSimPattern, "pattern", string(sim.PatternSweep), "Input pattern: idle, sweep, random")
	f.BoolVar(&flagSimRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	f.BoolVar(&flagSimRender, "render", false, "Print the final screen of each run")
	f.IntVar(&flagSimWidth, "width", 80, "World width")
	f.IntVar(&flagSimHeight, "height", 24, "World height")
}

func runSim(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustExist(gameID)

	pattern, err := sim.ParsePattern(flagSimPattern)
	if err != nil {
		fail("%v", err)
	}

	logger, closer := newLogger(false)
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	spec := sim.Spec{
		GameID:   gameID,
		Options:  gameOptions(),
		Config:   core.RuntimeConfig{ScreenW: flagSimWidth, ScreenH: flagSimHeight, TickRate: flagFPS, Seed: seed},
		Frames:   flagSimFrames,
		Pattern:  pattern,
		Realtime: flagSimRealtime,
		Render:   flagSimRender,
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	reports, err := sim.RunMany(ctx, spec, flagSimRuns)
	if err != nil {
		fail("%v", err)
	}
	wall := time.Since(start)

	fmt.Printf("Simulation - %s (%s input)\n\n", title(gameID), pattern)
	fmt.Printf("  %-20s  %-8s  %-10s  %-6s  %-8s  %s\n", "Seed", "Outcome", "Score", "HP", "Frames", "Time")
	fmt.Printf("  %-20s  %-8s  %-10s  %-6s  %-8s  %s\n", "----", "-------", "-----", "--", "------", "----")
	for _, r := range reports {
		fmt.Printf("  %-20d  %-8s  %-10s  %-6d  %-8s  %s\n",
			r.Seed,
			outcomeLabel(r),
			humanize.Comma(int64(r.Score)),
			r.Health,
			humanize.Comma(int64(r.Frames)),
			r.Elapsed.Round(time.Microsecond),
		)
		if flagSimRender {
			fmt.Println()
			fmt.Println(r.Screen)
		}
	}

	s := sim.Summarize(reports)
	fmt.Println()
	fmt.Printf("Runs: %d  |  Won: %d  |  Lost: %d  |  Best: %s (seed %d)  |  Mean: %s\n",
		s.Runs, s.Won, s.Lost,
		humanize.Comma(int64(s.Best)), s.BestSeed,
		humanize.FormatFloat("#,###.##", s.MeanScore),
	)
	fmt.Printf("%s frames in %s\n", humanize.Comma(int64(s.Frames)), wall.Round(time.Millisecond))
}

func outcomeLabel(r sim.Report) string {
	if r.Outcome == engine.OutcomeNone {
		return "timeout"
	}
	return r.Outcome.String()
}
