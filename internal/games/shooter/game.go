// Package shooter implements a fixed-gun space shooter rule set: the ship
// slides along the bottom row and shoots down waves of descending enemies.
package shooter

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
	KindShip   engine.Kind = "ship"
	KindBullet engine.Kind = "bullet"
	KindEnemy  engine.Kind = "enemy"
)

// EventShot is emitted when the ship fires.
const EventShot = "shot"

// firstWaveDelay is the pause before the first wave, in frames at 60 FPS.
const firstWaveDelay = 60

// Game is the configured shooter rule set.
type Game struct {
	cfg config.ShooterConfig
}

// New creates a shooter game with the given settings.
func New(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg}
}

func (g *Game) ID() string    { return "shooter" }
func (g *Game) Title() string { return "Shooter" }

// Health returns the ship's starting health.
func (g *Game) Health() int {
	return g.cfg.Gameplay.Health
}

type state struct {
	diff       *config.DifficultyManager
	cooldown   int // frames until the gun can fire
	spawnTimer int // frames until the next wave
	waves      int
}

func run(w *engine.World) *state {
	return w.Data.(*state)
}

// Rules returns the loop configuration for a world of the given size.
func (g *Game) Rules(rc core.RuntimeConfig) engine.Rules {
	k := rc.FrameScale()
	pl, en, gp := g.cfg.Player, g.cfg.Enemies, g.cfg.Gameplay
	pl.Speed *= k
	pl.BulletSpeed *= k
	en.Speed *= k
	cooldown := rc.Frames(pl.Cooldown)
	interval := rc.Frames(en.SpawnInterval)

	return engine.Rules{
		Setup: func(w *engine.World) {
			w.Data = &state{
				diff:       config.NewDifficultyManager(g.cfg.Difficulty),
				spawnTimer: min(interval, rc.Frames(firstWaveDelay)),
			}
			ship := w.Spawn(engine.NewRect(KindShip,
				(w.Width-float64(pl.Width))/2, w.Height-2, float64(pl.Width), float64(pl.Height)))
			ship.Clamp = true
			ship.Color = core.ColorBrightCyan
		},

		Control: func(w *engine.World, in core.InputFrame) {
			st := run(w)
			ship := w.Find(KindShip)
			if ship == nil {
				return
			}
			ship.VX = 0
			if in.Has(core.ActionLeft) {
				ship.VX -= pl.Speed
			}
			if in.Has(core.ActionRight) {
				ship.VX += pl.Speed
			}

			if st.cooldown > 0 {
				st.cooldown--
			}
			if (in.Has(core.ActionShoot) || in.Has(core.ActionJump)) && st.cooldown == 0 {
				b := w.Spawn(engine.NewRect(KindBullet, ship.X+float64(pl.Width)/2, ship.Y-1, 1, 1))
				b.VY = -pl.BulletSpeed
				b.Color = core.ColorBrightYellow
				st.cooldown = cooldown
				w.Emit(EventShot)
			}
		},

		Spawn: func(w *engine.World) {
			st := run(w)
			if st.spawnTimer > 0 {
				st.spawnTimer--
				return
			}
			g.spawnWave(w, st, en.Speed)
			st.spawnTimer = st.diff.Interval(interval, w.Score, w.Frame)
		},

		// Enemies slipping past the bottom edge hurt the ship.
		Exit: func(w *engine.World, e *engine.Entity) {
			if e.Kind == KindEnemy && e.Y >= w.Height {
				w.Damage(gp.EscapeDamage)
			}
		},

		Responses: engine.Responses{}.
			On(KindBullet, KindEnemy, func(w *engine.World, bullet, enemy *engine.Entity) {
				w.Kill(bullet)
				w.Kill(enemy)
				w.Emit(engine.EventHit)
				w.AddScore(enemy.Value)
			}).
			On(KindShip, KindEnemy, func(w *engine.World, _, enemy *engine.Entity) {
				w.Kill(enemy)
				w.Emit(engine.EventHit)
				w.Damage(gp.ContactDamage)
			}),

		Terminal: func(w *engine.World) engine.Outcome {
			if gp.WinScore > 0 && w.Score >= gp.WinScore {
				return engine.OutcomeWon
			}
			return engine.OutcomeNone
		},

		Draw: func(w *engine.World, dst engine.Surface) {
			dst.DrawText(fmt.Sprintf(" Score: %d  Wave: %d ", w.Score, run(w).waves), 2, 0)
			dst.DrawText(healthBar(w.Health, w.MaxHealth, 10), w.Width-14, 0)
		},
	}
}

// spawnWave places a row of enemies just above the top edge, evenly spread
// with a little random offset.
func (g *Game) spawnWave(w *engine.World, st *state, baseSpeed float64) {
	en := g.cfg.Enemies
	n := max(en.WaveSize, 1)
	width := float64(en.Width)
	slot := w.Width / float64(n)
	speed := st.diff.Speed(baseSpeed, w.Score, w.Frame)

	for i := 0; i < n; i++ {
		jitter := w.Rand().Float64() * max(slot-width, 0)
		e := w.Spawn(engine.NewRect(KindEnemy, float64(i)*slot+jitter, -float64(en.Height), width, float64(en.Height)))
		e.VY = speed
		e.Value = en.Points
		e.Color = core.ColorBrightRed
	}
	st.waves++
	w.Emit(engine.EventSpawn)
}

// healthBar renders health as [#####-----].
func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 {
		return ""
	}
	filled := core.Clamp(health*width/maxHealth, 0, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func init() {
	registry.Register("shooter", "Shooter", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadShooter(opts.ConfigPath, opts.Difficulty)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
