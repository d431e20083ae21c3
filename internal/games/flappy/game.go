// Package flappy implements a Flappy Bird-style rule set.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/frameloop/internal/config"
	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/registry"
)

// Entity kinds.
const (
	KindBird   engine.Kind = "bird"
	KindPipe   engine.Kind = "pipe"
	KindGate   engine.Kind = "gate" // invisible strip after each gap, worth one point
	KindGround engine.Kind = "ground"
)

// GroundChar is drawn along the bottom row.
const GroundChar = '═'

// Game is the configured flappy rule set.
type Game struct {
	cfg config.FlappyConfig
}

// New creates a flappy game with the given settings.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Health returns 0: any hit is fatal.
func (g *Game) Health() int {
	return 0
}

// state is the per-run data kept in World.Data.
type state struct {
	diff     *config.DifficultyManager
	speed    float64 // current pipe speed, cells per frame
	jumpHeld bool    // jump was down last frame
	groundY  float64
}

func run(w *engine.World) *state {
	return w.Data.(*state)
}

// Rules returns the loop configuration for a world of the given size.
func (g *Game) Rules(rc core.RuntimeConfig) engine.Rules {
	k := rc.FrameScale()
	p := g.cfg.Physics
	p.Gravity *= k * k
	p.JumpImpulse *= k
	p.MaxFallSpeed *= k
	p.BaseSpeed *= k
	return engine.Rules{
		Setup: g.setup,

		Control: func(w *engine.World, in core.InputFrame) {
			st := run(w)
			jump := in.Has(core.ActionJump) || in.Has(core.ActionUp)
			if jump && !st.jumpHeld {
				if bird := w.Find(KindBird); bird != nil {
					bird.VY = p.JumpImpulse
					w.Emit("flap")
				}
			}
			st.jumpHeld = jump
		},

		Spawn: func(w *engine.World) {
			st := run(w)
			st.speed = st.diff.Speed(p.BaseSpeed, w.Score, w.Frame)
			g.spawnPipes(w, st)
		},

		Integrate: func(w *engine.World, e *engine.Entity) {
			switch e.Kind {
			case KindBird:
				e.VY = min(e.VY+p.Gravity, p.MaxFallSpeed)
			case KindPipe, KindGate:
				e.VX = -run(w).speed
			}
		},

		Responses: engine.Responses{}.
			On(KindBird, KindPipe, crash).
			On(KindBird, KindGround, crash).
			On(KindBird, KindGate, func(w *engine.World, _, gate *engine.Entity) {
				w.Kill(gate)
				w.AddScore(1)
			}),

		Terminal: func(w *engine.World) engine.Outcome {
			bird := w.Find(KindBird)
			if bird == nil || bird.Y < 0 {
				return engine.OutcomeLost
			}
			return engine.OutcomeNone
		},

		Draw: func(w *engine.World, dst engine.Surface) {
			dst.DrawText(strings.Repeat(string(GroundChar), int(w.Width)), 0, run(w).groundY)
			hud := fmt.Sprintf(" Score: %d ", w.Score)
			if w.HighScore > 0 {
				hud += fmt.Sprintf(" Best: %d ", w.HighScore)
			}
			dst.DrawText(hud, 2, 0)
		},
	}
}

func (g *Game) setup(w *engine.World) {
	st := &state{
		diff:    config.NewDifficultyManager(g.cfg.Difficulty),
		groundY: w.Height - 1,
	}
	w.Data = st

	pl := g.cfg.Player
	bird := w.Spawn(engine.NewRect(KindBird, float64(pl.X), w.Height/2, float64(pl.Width), float64(pl.Height)))
	bird.Color = core.ColorBrightYellow

	ground := w.Spawn(engine.NewRect(KindGround, 0, st.groundY, w.Width, 1))
	ground.Hidden = true
	ground.Clamp = true
}

func crash(w *engine.World, _, _ *engine.Entity) {
	w.Emit(engine.EventHit)
	w.Lose()
}

func init() {
	registry.Register("flappy", "Flappy Bird", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFlappy(opts.ConfigPath, opts.Difficulty)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
