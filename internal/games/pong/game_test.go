package pong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/frameloop/internal/config"
	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/registry"
)

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}

func newWorld(t *testing.T, g *Game) (*engine.World, engine.Rules) {
	t.Helper()
	rules := g.Rules(testCfg)
	w := engine.NewWorld(float64(testCfg.ScreenW), float64(testCfg.ScreenH), testCfg.Seed, g.Health())
	rules.Setup(w)
	return w, rules
}

func steps(w *engine.World, rules engine.Rules, n int, in core.InputFrame) {
	for i := 0; i < n && !w.Over(); i++ {
		engine.Step(w, rules, in)
	}
}

func TestServeWaitsThenMovesTowardPlayer(t *testing.T) {
	w, rules := newWorld(t, New(DefaultCPUSkill))
	ball := w.Find(KindBall)
	require.NotNil(t, ball)

	steps(w, rules, ServeDelay-1, core.InputFrame{})
	assert.Zero(t, ball.VX, "ball waits for the serve")

	steps(w, rules, 2, core.InputFrame{})
	assert.Less(t, ball.VX, 0.0)
}

func TestBallBouncesOffPlayerPaddle(t *testing.T) {
	w, rules := newWorld(t, New(DefaultCPUSkill))
	p := w.Find(KindPlayer)
	ball := w.Find(KindBall)
	run(w).serve = 0

	ball.X, ball.Y = p.X+p.W+0.2, p.Y+p.H/2
	ball.VX, ball.VY = -BallSpeed, 0
	engine.Step(w, rules, core.InputFrame{})

	assert.Greater(t, ball.VX, 0.0, "ball reflected")
	assert.InDelta(t, BallSpeed*SpeedUp, ball.VX, 1e-9)
	assert.Zero(t, run(w).cpuScore)
}

func TestBallSpeedCappedAtLowTickRate(t *testing.T) {
	cfg := testCfg
	cfg.TickRate = 10
	g := New(DefaultCPUSkill)
	rules := g.Rules(cfg)
	w := engine.NewWorld(float64(cfg.ScreenW), float64(cfg.ScreenH), cfg.Seed, g.Health())
	rules.Setup(w)

	st := run(w)
	assert.LessOrEqual(t, math.Abs(st.serveVX), MaxBallStep)
	assert.LessOrEqual(t, math.Abs(st.serveVY), MaxBallStep)

	p := w.Find(KindPlayer)
	ball := w.Find(KindBall)
	st.serve = 0
	ball.X, ball.Y = p.X+p.W+0.2, p.Y+p.H/2
	ball.VX, ball.VY = -MaxBallStep, 0
	engine.Step(w, rules, core.InputFrame{})

	assert.Greater(t, ball.VX, 0.0, "fastest ball still hits the paddle")
	assert.LessOrEqual(t, ball.VX, MaxBallStep)
	assert.Zero(t, st.cpuScore)
}

func TestMissGivesCPUAPoint(t *testing.T) {
	w, rules := newWorld(t, New(DefaultCPUSkill))
	p := w.Find(KindPlayer)
	ball := w.Find(KindBall)
	run(w).serve = 0

	p.Y = 1
	ball.X, ball.Y = 0.5, w.Height-3
	ball.VX, ball.VY = -MaxBallSpeed, 0
	steps(w, rules, 3, core.InputFrame{})

	assert.Equal(t, 1, run(w).cpuScore)
	assert.Equal(t, 0, w.Score)
	next := w.Find(KindBall)
	require.NotNil(t, next, "a new ball is served")
	assert.Equal(t, w.Width/2, next.X)
	assert.Greater(t, run(w).serveVX, 0.0, "served toward the CPU")
}

func TestPlayerWinsAtWinScore(t *testing.T) {
	w, rules := newWorld(t, New(0))
	w.Score = WinScore - 1
	ball := w.Find(KindBall)
	run(w).serve = 0

	// A zero-skill CPU never moves, so a ball along the top edge gets past.
	ball.X, ball.Y = w.Width-1.5, 1
	ball.VX, ball.VY = MaxBallSpeed, 0
	steps(w, rules, 5, core.InputFrame{})

	assert.Equal(t, engine.OutcomeWon, w.Outcome)
	assert.Equal(t, WinScore, w.Score)
}

func TestPlayerPaddleStaysInside(t *testing.T) {
	w, rules := newWorld(t, New(DefaultCPUSkill))
	p := w.Find(KindPlayer)
	steps(w, rules, 40, core.NewInputFrame(core.ActionUp))
	assert.Equal(t, 0.0, p.Y)
	steps(w, rules, 80, core.NewInputFrame(core.ActionDown))
	assert.Equal(t, w.Height-p.H, p.Y)
}

func TestCPUTracksBall(t *testing.T) {
	w, rules := newWorld(t, New(MaxCPUSkill))
	c := w.Find(KindCPU)
	ball := w.Find(KindBall)
	run(w).serve = 0

	c.Y = 1
	ball.X, ball.Y = w.Width/2, w.Height-4
	ball.VX, ball.VY = 0.1, 0
	before := c.Y
	steps(w, rules, 5, core.InputFrame{})
	assert.Greater(t, c.Y, before)
}

func TestDeterminism(t *testing.T) {
	play := func() engine.Snapshot {
		w, rules := newWorld(t, New(DefaultCPUSkill))
		for i := 0; i < 3000 && !w.Over(); i++ {
			in := core.NewInputFrame(core.ActionUp)
			if (i/30)%2 == 0 {
				in = core.NewInputFrame(core.ActionDown)
			}
			engine.Step(w, rules, in)
		}
		return w.Snapshot()
	}
	assert.Equal(t, play(), play())
}

func TestSkillForPreset(t *testing.T) {
	assert.Less(t, SkillForPreset(config.DifficultyEasy), SkillForPreset(config.DifficultyNormal))
	assert.Less(t, SkillForPreset(config.DifficultyNormal), SkillForPreset(config.DifficultyHard))

	g, err := registry.Create("pong", registry.Options{Difficulty: config.DifficultyHard})
	require.NoError(t, err)
	assert.Equal(t, "Pong", g.Title())
}
