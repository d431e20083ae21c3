// Package breakout implements a Breakout/Arkanoid-style brick breaker.
// Lives are the world's health; clearing the last level wins.
package breakout

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
	KindPaddle engine.Kind = "paddle"
	KindBall   engine.Kind = "ball"
	KindBrick  engine.Kind = "brick"
)

// Tuning at 60 FPS.
const (
	PaddleWidth  = 9
	PaddleSpeed  = 1.2
	BallSpeed    = 0.45
	LevelSpeedUp = 0.08 // extra ball speed per level
	BrickTop     = 2
	DefaultLives = 3
)

// MaxBallStep caps the ball's speed in cells per frame at any tick rate.
// Below one cell the ball cannot pass through a one-row brick.
const MaxBallStep = 0.95

var rowColors = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
	core.ColorCyan, core.ColorBlue, core.ColorMagenta,
}

// Game is the breakout rule set.
type Game struct {
	lives int
}

// New creates a breakout game with the given number of lives.
func New(lives int) *Game {
	return &Game{lives: max(lives, 1)}
}

func (g *Game) ID() string    { return "breakout" }
func (g *Game) Title() string { return "Breakout" }
func (g *Game) Health() int   { return g.lives }

type state struct {
	levels    []*Level
	level     int
	left      int // breakable bricks remaining
	serving   bool
	reflected uint64 // frame of the last brick reflection
}

func run(w *engine.World) *state {
	return w.Data.(*state)
}

// Rules returns the loop configuration for a world of the given size.
func (g *Game) Rules(rc core.RuntimeConfig) engine.Rules {
	k := rc.FrameScale()
	paddleSpeed := PaddleSpeed * k
	speed := func(st *state) float64 {
		return math.Min(BallSpeed*k*(1+LevelSpeedUp*float64(st.level)), MaxBallStep)
	}

	return engine.Rules{
		Setup: func(w *engine.World) {
			st := &state{levels: Levels()}
			w.Data = st
			paddle := w.Spawn(engine.NewRect(KindPaddle, (w.Width-PaddleWidth)/2, w.Height-3, PaddleWidth, 1))
			paddle.Clamp = true
			paddle.Color = core.ColorBrightCyan
			loadLevel(w, st)
			serve(w, st)
		},

		Control: func(w *engine.World, in core.InputFrame) {
			st := run(w)
			if paddle := w.Find(KindPaddle); paddle != nil {
				paddle.VX = 0
				if in.Has(core.ActionLeft) {
					paddle.VX -= paddleSpeed
				}
				if in.Has(core.ActionRight) {
					paddle.VX += paddleSpeed
				}
			}
			if st.serving && (in.Has(core.ActionJump) || in.Has(core.ActionShoot) || in.Has(core.ActionUp)) {
				if ball := w.Find(KindBall); ball != nil {
					v := speed(st)
					dir := 1.0
					if w.Rand().Intn(2) == 0 {
						dir = -1
					}
					ball.VX = dir * v * 0.5
					ball.VY = -v * math.Sqrt(0.75)
					st.serving = false
					w.Emit("launch")
				}
			}
		},

		Spawn: func(w *engine.World) {
			st := run(w)
			if st.left > 0 {
				return
			}
			if st.level+1 >= len(st.levels) {
				w.Win()
				return
			}
			for _, e := range w.Entities() {
				if e.Kind == KindBrick || e.Kind == KindBall {
					w.Kill(e)
				}
			}
			st.level++
			loadLevel(w, st)
			serve(w, st)
			w.Emit("level")
		},

		Integrate: func(w *engine.World, e *engine.Entity) {
			if e.Kind != KindBall {
				return
			}
			if run(w).serving {
				if paddle := w.Find(KindPaddle); paddle != nil {
					e.X = paddle.X + paddle.W/2 - e.W/2
					e.Y = paddle.Y - e.H
				}
				e.VX, e.VY = 0, 0
				return
			}
			if e.X+e.VX < 0 || e.X+e.W+e.VX > w.Width {
				e.VX = -e.VX
			}
			// Row 0 holds the HUD.
			if e.Y+e.VY < 1 {
				e.VY = -e.VY
			}
		},

		Exit: func(w *engine.World, e *engine.Entity) {
			if e.Kind != KindBall {
				return
			}
			w.Emit(engine.EventHit)
			w.Damage(1)
			if !w.Over() {
				serve(w, run(w))
			}
		},

		Responses: engine.Responses{}.
			On(KindBall, KindPaddle, func(w *engine.World, ball, paddle *engine.Entity) {
				if ball.VY <= 0 {
					return
				}
				v := speed(run(w))
				hit := core.ClampF((ball.X+ball.W/2-paddle.X)/paddle.W, 0, 1)
				ball.Y = paddle.Y - ball.H
				ball.VX = v * (hit - 0.5) * 1.6
				ball.VY = -math.Sqrt(v*v - ball.VX*ball.VX)
				w.Emit("bounce")
			}).
			On(KindBall, KindBrick, hitBrick),

		Draw: func(w *engine.World, dst engine.Surface) {
			st := run(w)
			lvl := st.levels[st.level]
			dst.DrawText(fmt.Sprintf(" Score: %d  Lives: %d  Level %d/%d: %s ",
				w.Score, w.Health, st.level+1, len(st.levels), lvl.Name), 2, 0)
			if st.serving {
				msg := "SPACE to launch"
				dst.DrawText(msg, math.Floor((w.Width-float64(len(msg)))/2), w.Height-6)
			}
		},
	}
}

// loadLevel spawns the bricks of the current level, centered.
func loadLevel(w *engine.World, st *state) {
	lvl := st.levels[st.level]
	brickW := max(math.Floor(w.Width/float64(max(lvl.Width, 1))), 2)
	left := math.Floor((w.Width - brickW*float64(lvl.Width)) / 2)
	st.left = 0
	for row, bricks := range lvl.Bricks {
		for col, b := range bricks {
			if b.Type == BrickEmpty {
				continue
			}
			brick := b
			e := w.Spawn(engine.NewRect(KindBrick, left+float64(col)*brickW, BrickTop+float64(row), brickW, 1))
			e.Value = brick.Points
			e.Payload = &brick
			switch brick.Type {
			case BrickSolid:
				e.Color = core.ColorGray
			case BrickHard:
				e.Color = core.ColorBrightWhite
				st.left++
			default:
				e.Color = rowColors[row%len(rowColors)]
				st.left++
			}
		}
	}
}

// serve puts a new ball on the paddle.
func serve(w *engine.World, st *state) {
	st.serving = true
	paddle := w.Find(KindPaddle)
	if paddle == nil {
		return
	}
	ball := w.Spawn(engine.NewRect(KindBall, paddle.X+paddle.W/2-0.5, paddle.Y-1, 1, 1))
	ball.Color = core.ColorBrightWhite
}

// hitBrick reflects the ball off the side it hit, at most once per frame,
// and damages the brick.
func hitBrick(w *engine.World, ball, brick *engine.Entity) {
	st := run(w)
	if st.reflected != w.Frame {
		st.reflected = w.Frame
		bb, kb := ball.Bounds(), brick.Bounds()
		ox := math.Min(bb.Right(), kb.Right()) - math.Max(bb.X, kb.X)
		oy := math.Min(bb.Bottom(), kb.Bottom()) - math.Max(bb.Y, kb.Y)
		if ox < oy {
			if ball.VX > 0 {
				ball.X = brick.X - ball.W
			} else {
				ball.X = brick.X + brick.W
			}
			ball.VX = -ball.VX
		} else {
			if ball.VY > 0 {
				ball.Y = brick.Y - ball.H
			} else {
				ball.Y = brick.Y + brick.H
			}
			ball.VY = -ball.VY
		}
	}

	b := brick.Payload.(*Brick)
	if b.Type == BrickSolid {
		return
	}
	b.HP--
	if b.HP > 0 {
		brick.Color = core.ColorWhite
		w.Emit("crack")
		return
	}
	w.Kill(brick)
	w.AddScore(brick.Value)
	st.left--
}

// LivesForPreset maps a difficulty preset to the starting lives.
func LivesForPreset(preset config.DifficultyPreset) int {
	switch preset {
	case config.DifficultyEasy:
		return 5
	case config.DifficultyHard:
		return 2
	default:
		return DefaultLives
	}
}

func init() {
	registry.Register("breakout", "Breakout", func(opts registry.Options) (registry.Game, error) {
		return New(LivesForPreset(opts.Difficulty)), nil
	})
}
