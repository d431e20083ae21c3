// Package dodge implements a free-roaming dodge rule set: steer a ball
// through drifting rocks while collecting gems.
package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/frameloop/internal/config"
	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/registry"
)

// Entity kinds.
const (
	KindPlayer engine.Kind = "player"
	KindRock   engine.Kind = "rock"
	KindGem    engine.Kind = "gem"
)

// Game is the configured dodge rule set.
type Game struct {
	cfg config.DodgeConfig
}

// New creates a dodge game with the given settings.
func New(cfg config.DodgeConfig) *Game {
	return &Game{cfg: cfg}
}

func (g *Game) ID() string    { return "dodge" }
func (g *Game) Title() string { return "Dodge" }
func (g *Game) Health() int   { return g.cfg.Gameplay.Health }

type state struct {
	diff       *config.DifficultyManager
	spawnTimer int
}

// Rules returns the loop configuration for a world of the given size.
func (g *Game) Rules(rc core.RuntimeConfig) engine.Rules {
	k := rc.FrameScale()
	pl, hz, gp := g.cfg.Player, g.cfg.Hazards, g.cfg.Gameplay
	pl.Speed *= k
	hz.Speed *= k
	interval := rc.Frames(hz.SpawnInterval)

	return engine.Rules{
		Setup: func(w *engine.World) {
			w.Data = &state{diff: config.NewDifficultyManager(g.cfg.Difficulty)}
			p := w.Spawn(engine.NewCircle(KindPlayer, w.Width/2, w.Height/2, pl.Radius))
			p.Clamp = true
			p.Color = core.ColorBrightCyan
		},

		Control: func(w *engine.World, in core.InputFrame) {
			p := w.Find(KindPlayer)
			if p == nil {
				return
			}
			var dx, dy float64
			if in.Has(core.ActionLeft) {
				dx--
			}
			if in.Has(core.ActionRight) {
				dx++
			}
			if in.Has(core.ActionUp) {
				dy--
			}
			if in.Has(core.ActionDown) {
				dy++
			}
			if dx != 0 && dy != 0 {
				dx, dy = dx*math.Sqrt2/2, dy*math.Sqrt2/2
			}
			p.VX, p.VY = dx*pl.Speed, dy*pl.Speed
		},

		Spawn: func(w *engine.World) {
			st := w.Data.(*state)
			if st.spawnTimer > 0 {
				st.spawnTimer--
				return
			}
			g.spawnDrifter(w, st.diff.Speed(hz.Speed, w.Score, w.Frame))
			st.spawnTimer = st.diff.Interval(interval, w.Score, w.Frame)
		},

		Responses: engine.Responses{}.
			On(KindPlayer, KindRock, func(w *engine.World, _, rock *engine.Entity) {
				w.Kill(rock)
				w.Emit(engine.EventHit)
				w.Damage(gp.RockDamage)
			}).
			On(KindPlayer, KindGem, func(w *engine.World, _, gem *engine.Entity) {
				w.Kill(gem)
				w.AddScore(gp.GemPoints)
			}),

		Draw: func(w *engine.World, dst engine.Surface) {
			dst.DrawText(fmt.Sprintf(" Score: %d  HP: %d ", w.Score, w.Health), 2, 0)
		},
	}
}

// spawnDrifter places a rock or gem just outside a random edge, heading
// across the field.
func (g *Game) spawnDrifter(w *engine.World, speed float64) {
	hz := g.cfg.Hazards
	rng := w.Rand()

	kind, r, color := KindRock, hz.RockRadius, core.ColorGray
	if rng.Float64() < hz.GemChance {
		kind, r, color = KindGem, hz.GemRadius, core.ColorBrightGreen
	}

	// Aim at a random point in the middle half of the field.
	tx := w.Width * (0.25 + rng.Float64()*0.5)
	ty := w.Height * (0.25 + rng.Float64()*0.5)

	var x, y float64
	switch rng.Intn(4) {
	case 0: // left
		x, y = -r, rng.Float64()*w.Height
	case 1: // right
		x, y = w.Width+r, rng.Float64()*w.Height
	case 2: // top
		x, y = rng.Float64()*w.Width, -r
	default: // bottom
		x, y = rng.Float64()*w.Width, w.Height+r
	}

	dist := math.Hypot(tx-x, ty-y)
	e := w.Spawn(engine.NewCircle(kind, x, y, r))
	e.VX = (tx - x) / dist * speed
	e.VY = (ty - y) / dist * speed
	e.Color = color
}

func init() {
	registry.Register("dodge", "Dodge", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadDodge(opts.ConfigPath, opts.Difficulty)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
