// Package dino implements a Chrome Dino-style endless runner rule set.
// The runner moves automatically and must jump over cacti; score is the
// distance travelled.
package dino

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
	KindDino   engine.Kind = "dino"
	KindCactus engine.Kind = "cactus"
)

// Visual characters.
const (
	GroundChar = '═'
	DinoHead   = '◆'
)

// Game is the configured dino runner rule set.
type Game struct {
	cfg config.DinoConfig
}

// New creates a dino game with the given settings.
func New(cfg config.DinoConfig) *Game {
	return &Game{cfg: cfg}
}

func (g *Game) ID() string    { return "dino" }
func (g *Game) Title() string { return "Dino Runner" }
func (g *Game) Health() int   { return 0 }

type state struct {
	diff       *config.DifficultyManager
	speed      float64
	distance   float64 // cells run so far
	untilSpawn float64 // cells left before the next cactus
	grounded   bool
	groundY    float64
	restY      float64 // dino top edge when standing on the ground
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
			if !st.grounded || !(in.Has(core.ActionJump) || in.Has(core.ActionUp)) {
				return
			}
			if dino := w.Find(KindDino); dino != nil {
				dino.VY = p.JumpImpulse
				st.grounded = false
				w.Emit("jump")
			}
		},

		Spawn: func(w *engine.World) {
			st := run(w)
			st.speed = st.diff.Speed(p.BaseSpeed, w.Score, w.Frame)
			st.distance += st.speed
			w.AddScore(int(st.distance) - w.Score)

			st.untilSpawn -= st.speed
			if st.untilSpawn <= 0 {
				st.untilSpawn += g.spawnCactus(w, st)
			}
		},

		Integrate: func(w *engine.World, e *engine.Entity) {
			st := run(w)
			switch e.Kind {
			case KindDino:
				if st.grounded {
					e.VY = 0
					return
				}
				e.VY = min(e.VY+p.Gravity, p.MaxFallSpeed)
				if e.Y+e.VY >= st.restY {
					e.Y, e.VY = st.restY, 0
					st.grounded = true
				}
			case KindCactus:
				e.VX = -st.speed
			}
		},

		Responses: engine.Responses{}.
			On(KindDino, KindCactus, func(w *engine.World, _, _ *engine.Entity) {
				w.Emit(engine.EventHit)
				w.Lose()
			}),

		Draw: func(w *engine.World, dst engine.Surface) {
			st := run(w)
			dst.DrawText(strings.Repeat(string(GroundChar), int(w.Width)), 0, st.groundY)
			if dino := w.Find(KindDino); dino != nil {
				dst.DrawText(string(DinoHead), dino.X+dino.W-1, dino.Y)
			}

			hud := fmt.Sprintf(" Score: %d ", w.Score)
			if w.HighScore > 0 {
				hud += fmt.Sprintf(" Best: %d ", w.HighScore)
			}
			dst.DrawText(hud, 2, 0)
			if st.diff.IsEnabled() {
				spd := fmt.Sprintf(" Spd: %.2f ", st.speed)
				dst.DrawText(spd, w.Width-float64(len(spd))-2, 0)
			}
		},
	}
}

func (g *Game) setup(w *engine.World) {
	pl := g.cfg.Player
	groundY := max(w.Height-float64(pl.GroundOffset), float64(pl.Height)+1)
	st := &state{
		diff:       config.NewDifficultyManager(g.cfg.Difficulty),
		untilSpawn: float64(g.cfg.Obstacles.MinSpacing),
		grounded:   true,
		groundY:    groundY,
		restY:      groundY - float64(pl.Height),
	}
	w.Data = st

	dino := w.Spawn(engine.NewRect(KindDino, float64(pl.X), st.restY, float64(pl.Width), float64(pl.Height)))
	dino.Color = core.ColorBrightGreen
	dino.Clamp = true
}

func init() {
	registry.Register("dino", "Dino Runner", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadDino(opts.ConfigPath, opts.Difficulty)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
