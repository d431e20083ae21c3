// Package pong implements Pong against a CPU paddle. The player's points
// are the score; first to WinScore ends the game.
package pong

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
	KindCPU    engine.Kind = "cpu"
	KindBall   engine.Kind = "ball"
)

const NetChar = '│'

// Tuning at 60 FPS.
const (
	PaddleWidth     = 1
	PaddleOffset    = 2 // distance from the side edge
	BallSpeed       = 0.5
	MaxBallSpeed    = 0.95
	PaddleSpeed     = 1.0
	SpinFactor      = 0.3
	SpeedUp         = 1.02
	WinScore        = 5
	ServeDelay      = 60 // frames
	SkillStep       = 0.02
	SkillInterval   = 600 // frames between CPU skill increases
	DefaultCPUSkill = 0.6
	MaxCPUSkill     = 0.85
)

// MaxBallStep caps the ball's per-axis speed in cells per frame at any tick
// rate. It stays below PaddleWidth plus the ball width so the ball cannot
// pass through a paddle.
const MaxBallStep = 1.9

// Game is the pong rule set.
type Game struct {
	skill float64 // CPU starting skill, 0..1
}

// New creates a pong game with the given CPU skill.
func New(skill float64) *Game {
	return &Game{skill: core.ClampF(skill, 0, 1)}
}

func (g *Game) ID() string    { return "pong" }
func (g *Game) Title() string { return "Pong" }
func (g *Game) Health() int   { return 0 }

type state struct {
	cpuScore int
	skill    float64
	serve    int     // frames until the ball moves
	serveVX  float64 // velocity the ball gets when the serve ends
	serveVY  float64
}

func run(w *engine.World) *state {
	return w.Data.(*state)
}

// Rules returns the loop configuration for a world of the given size.
func (g *Game) Rules(rc core.RuntimeConfig) engine.Rules {
	k := rc.FrameScale()
	maxSpeed := math.Min(MaxBallSpeed*k, MaxBallStep)
	ballSpeed := math.Min(BallSpeed*k, maxSpeed)
	paddleSpeed := PaddleSpeed * k
	serveDelay := rc.Frames(ServeDelay)
	skillInterval := uint64(rc.Frames(SkillInterval))
	paddleH := float64(core.Clamp(rc.ScreenH/5, 3, 7))

	serve := func(w *engine.World, towardPlayer bool) {
		st := run(w)
		ball := w.Spawn(engine.NewRect(KindBall, w.Width/2, w.Height/2, 1, 1))
		ball.Color = core.ColorBrightWhite
		st.serve = serveDelay
		st.serveVX = ballSpeed
		if towardPlayer {
			st.serveVX = -ballSpeed
		}
		st.serveVY = ballSpeed * (w.Rand().Float64() - 0.5) * 0.6
	}

	bounce := func(w *engine.World, ball, paddle *engine.Entity) {
		left := paddle.X < w.Width/2
		if left && ball.VX >= 0 || !left && ball.VX <= 0 {
			return
		}
		if left {
			ball.X = paddle.X + paddle.W
		} else {
			ball.X = paddle.X - ball.W
		}
		hit := (ball.Y + ball.H/2 - paddle.Y) / paddle.H
		ball.VX = -ball.VX * SpeedUp
		ball.VY += (hit - 0.5) * SpinFactor * k
		ball.VX = math.Copysign(math.Min(math.Abs(ball.VX), maxSpeed), ball.VX)
		ball.VY = math.Copysign(math.Min(math.Abs(ball.VY), maxSpeed/2), ball.VY)
		w.Emit("bounce")
	}

	return engine.Rules{
		Setup: func(w *engine.World) {
			w.Data = &state{skill: g.skill}
			y := w.Height/2 - paddleH/2
			p := w.Spawn(engine.NewRect(KindPlayer, PaddleOffset, y, PaddleWidth, paddleH))
			p.Clamp = true
			p.Color = core.ColorBrightCyan
			c := w.Spawn(engine.NewRect(KindCPU, w.Width-PaddleOffset-PaddleWidth, y, PaddleWidth, paddleH))
			c.Clamp = true
			c.Color = core.ColorBrightRed
			serve(w, true)
		},

		Control: func(w *engine.World, in core.InputFrame) {
			p := w.Find(KindPlayer)
			if p == nil {
				return
			}
			p.VY = 0
			if in.Has(core.ActionUp) || in.Has(core.ActionJump) {
				p.VY -= paddleSpeed
			}
			if in.Has(core.ActionDown) {
				p.VY += paddleSpeed
			}
		},

		Spawn: func(w *engine.World) {
			st := run(w)
			if w.Frame%skillInterval == 0 && st.skill < MaxCPUSkill {
				st.skill = math.Min(st.skill+SkillStep, MaxCPUSkill)
			}
			if st.serve > 0 {
				st.serve--
				if st.serve == 0 {
					if ball := w.Find(KindBall); ball != nil {
						ball.VX, ball.VY = st.serveVX, st.serveVY
					}
				}
			}
		},

		Integrate: func(w *engine.World, e *engine.Entity) {
			switch e.Kind {
			case KindCPU:
				e.VY = 0
				ball := w.Find(KindBall)
				if ball == nil || ball.VX <= 0 {
					return
				}
				diff := ball.Y + ball.H/2 - (e.Y + e.H/2)
				if step := paddleSpeed * run(w).skill; math.Abs(diff) > step {
					e.VY = math.Copysign(step, diff)
				}
			case KindBall:
				// Row 0 holds the score line.
				if e.Y+e.VY < 1 || e.Y+e.H+e.VY > w.Height {
					e.VY = -e.VY
				}
			}
		},

		Exit: func(w *engine.World, e *engine.Entity) {
			if e.Kind != KindBall {
				return
			}
			st := run(w)
			if e.X < w.Width/2 {
				st.cpuScore++
				w.Emit(engine.EventHit)
				if st.cpuScore >= WinScore {
					w.Lose()
					return
				}
				serve(w, false)
				return
			}
			w.AddScore(1)
			if w.Score >= WinScore {
				w.Win()
				return
			}
			serve(w, true)
		},

		Responses: engine.Responses{}.
			On(KindBall, KindPlayer, bounce).
			On(KindBall, KindCPU, bounce),

		Draw: func(w *engine.World, dst engine.Surface) {
			st := run(w)
			cx := math.Floor(w.Width / 2)
			for y := 1.0; y < w.Height-1; y += 2 {
				dst.DrawText(string(NetChar), cx, y)
			}
			dst.DrawText("P1", 1, 0)
			dst.DrawText(fmt.Sprint(w.Score), cx-5, 0)
			dst.DrawText(fmt.Sprint(st.cpuScore), cx+4, 0)
			dst.DrawText("CPU", w.Width-4, 0)
		},
	}
}

// SkillForPreset maps a difficulty preset to the CPU's starting skill.
func SkillForPreset(preset config.DifficultyPreset) float64 {
	switch preset {
	case config.DifficultyEasy:
		return 0.45
	case config.DifficultyHard:
		return 0.75
	default:
		return DefaultCPUSkill
	}
}

func init() {
	registry.Register("pong", "Pong", func(opts registry.Options) (registry.Game, error) {
		return New(SkillForPreset(opts.Difficulty)), nil
	})
}
