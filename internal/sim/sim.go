// Package sim runs games headless with scripted input: no terminal, no
// clock unless asked for. It backs the `sim` command and soak tests.
package sim

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/registry"
)

// DefaultFrames is the frame limit used when a Spec sets none.
const DefaultFrames = 3600

// Pattern names a scripted input sequence.
type Pattern string

const (
	PatternIdle   Pattern = "idle"   // no input at all
	PatternSweep  Pattern = "sweep"  // circle the four directions, fire, flap every 20 frames
	PatternRandom Pattern = "random" // seeded random presses
)

// ParsePattern validates a pattern name. An empty name selects sweep.
func ParsePattern(name string) (Pattern, error) {
	switch Pattern(name) {
	case "":
		return PatternSweep, nil
	case PatternIdle, PatternSweep, PatternRandom:
		return Pattern(name), nil
	}
	return "", fmt.Errorf("sim: unknown input pattern %q (want idle, sweep or random)", name)
}

// Spec describes one simulated game.
type Spec struct {
	GameID   string
	Options  registry.Options
	Config   core.RuntimeConfig // world size, tick rate and seed
	Frames   uint64             // frame limit, 0 for DefaultFrames
	Pattern  Pattern
	Realtime bool // pace frames at Config.TickRate instead of running flat out
	Render   bool // keep the final screen in the report
	Logger   *log.Logger
}

// Report is the outcome of one simulated game.
type Report struct {
	Seed    int64
	Outcome engine.Outcome
	Score   int
	Health  int
	Frames  uint64
	Elapsed time.Duration
	Screen  string
}

// Run plays one game to game over or the frame limit.
func Run(ctx context.Context, spec Spec) (Report, error) {
	cfg := spec.Config.Normalized()
	frames := spec.Frames
	if frames == 0 {
		frames = DefaultFrames
	}
	logger := spec.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := registry.Create(spec.GameID, spec.Options)
	if err != nil {
		return Report{}, err
	}

	var screen *core.Screen
	var surface engine.Surface
	if spec.Render {
		screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		surface = screen
	}

	manual := engine.NewManualScheduler()
	var sched engine.Scheduler = manual
	var paced *engine.RateScheduler
	if spec.Realtime {
		paced = engine.NewRateScheduler(cfg.TickRate)
		defer paced.Close()
		sched = paced
	}

	loop := engine.New(game.Rules(cfg), engine.Options{
		GameID:    game.ID(),
		Config:    cfg,
		Health:    game.Health(),
		MaxFrames: frames,
		Scheduler: sched,
		Surface:   surface,
		Input:     newScript(spec.Pattern, cfg.Seed),
		Logger:    logger.With("seed", cfg.Seed),
	})

	start := time.Now()
	loop.Start()
	if spec.Realtime {
		select {
		case <-loop.Done():
		case <-ctx.Done():
			loop.Stop()
			return Report{}, fmt.Errorf("sim: %s seed %d: %w", spec.GameID, cfg.Seed, ctx.Err())
		}
	} else {
		for manual.RunNext() {
			if err := ctx.Err(); err != nil {
				loop.Stop()
				return Report{}, fmt.Errorf("sim: %s seed %d: %w", spec.GameID, cfg.Seed, err)
			}
		}
	}

	snap := loop.Snapshot()
	report := Report{
		Seed:    cfg.Seed,
		Outcome: snap.Outcome,
		Score:   snap.Score,
		Health:  snap.Health,
		Frames:  snap.Frame,
		Elapsed: time.Since(start),
	}
	if screen != nil {
		report.Screen = screen.String()
	}
	logger.Debug("simulation finished", "seed", cfg.Seed, "outcome", report.Outcome, "score", report.Score, "frames", report.Frames)
	return report, nil
}

// RunMany plays runs independent games in parallel, with seeds
// Config.Seed, Config.Seed+1, ... Reports are returned in seed order.
// The first failure cancels the remaining runs.
func RunMany(ctx context.Context, spec Spec, runs int) ([]Report, error) {
	if runs <= 0 {
		runs = 1
	}
	reports := make([]Report, runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range runs {
		s := spec
		s.Config.Seed = spec.Config.Seed + int64(i)
		g.Go(func() error {
			r, err := Run(ctx, s)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Summary aggregates a batch of reports.
type Summary struct {
	Runs      int
	Won       int
	Lost      int
	Best      int
	BestSeed  int64
	MeanScore float64
	Frames    uint64
}

// Summarize aggregates reports.
func Summarize(reports []Report) Summary {
	s := Summary{Runs: len(reports)}
	if len(reports) == 0 {
		return s
	}
	total := 0
	for i, r := range reports {
		switch r.Outcome {
		case engine.OutcomeWon:
			s.Won++
		case engine.OutcomeLost:
			s.Lost++
		}
		if i == 0 || r.Score > s.Best {
			s.Best, s.BestSeed = r.Score, r.Seed
		}
		total += r.Score
		s.Frames += r.Frames
	}
	s.MeanScore = float64(total) / float64(len(reports))
	return s
}

// script is a deterministic engine.InputSource. It is only read by the
// loop, one frame at a time.
type script struct {
	pattern Pattern
	rng     *rand.Rand
	frame   int
	held    core.InputFrame
}

func newScript(p Pattern, seed int64) *script {
	if p == "" {
		p = PatternSweep
	}
	return &script{pattern: p, rng: rand.New(rand.NewSource(seed ^ 0x5eed))}
}

var directions = [...]core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}

func (s *script) Frame() core.InputFrame {
	n := s.frame
	s.frame++

	var f core.InputFrame
	switch s.pattern {
	case PatternSweep:
		f.Set(directions[(n/40)%len(directions)])
		f.Set(core.ActionShoot)
		if n%20 == 0 {
			f.Set(core.ActionJump)
		}
	case PatternRandom:
		// Re-roll held keys every few frames so presses last like a player's.
		if n%6 == 0 {
			s.held.Clear()
			for _, a := range [...]core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionShoot, core.ActionJump} {
				if s.rng.Intn(4) == 0 {
					s.held.Set(a)
				}
			}
		}
		f = s.held
	}
	return f
}
