package breakout

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

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}

var (
	idle   = core.InputFrame{}
	launch = core.NewInputFrame(core.ActionJump)
)

func newWorld(t *testing.T, g *Game) (*engine.World, engine.Rules) {
	t.Helper()
	rules := g.Rules(testCfg)
	w := engine.NewWorld(float64(testCfg.ScreenW), float64(testCfg.ScreenH), testCfg.Seed, g.Health())
	rules.Setup(w)
	return w, rules
}

// keepOnly kills every brick but the first n breakable ones.
func keepOnly(w *engine.World, n int) []*engine.Entity {
	var kept []*engine.Entity
	for _, e := range w.Live(KindBrick) {
		if len(kept) < n && e.Payload.(*Brick).Type != BrickSolid {
			kept = append(kept, e)
			continue
		}
		w.Kill(e)
	}
	run(w).left = len(kept)
	return kept
}

func TestParseLevel(t *testing.T) {
	lvl := ParseLevel("t", "Test", []string{"#H", "X.3"})
	assert.Equal(t, 3, lvl.Width)
	assert.Equal(t, Brick{Type: BrickNormal, Points: 10, HP: 1}, lvl.Bricks[0][0])
	assert.Equal(t, Brick{Type: BrickHard, Points: 20, HP: 2}, lvl.Bricks[0][1])
	assert.Equal(t, BrickEmpty, lvl.Bricks[0][2].Type)
	assert.Equal(t, BrickSolid, lvl.Bricks[1][0].Type)
	assert.Equal(t, 30, lvl.Bricks[1][2].Points)
	assert.Equal(t, 3, lvl.Breakable())
}

func TestSetupSpawnsFirstLevel(t *testing.T) {
	w, _ := newWorld(t, New(DefaultLives))
	assert.Equal(t, 100, w.Count(KindBrick))
	assert.Equal(t, 100, run(w).left)
	assert.True(t, run(w).serving)
	assert.Equal(t, DefaultLives, w.Health)
}

func TestBallRidesPaddleUntilLaunch(t *testing.T) {
	w, rules := newWorld(t, New(DefaultLives))
	paddle := w.Find(KindPaddle)
	ball := w.Find(KindBall)

	for range 10 {
		engine.Step(w, rules, core.NewInputFrame(core.ActionLeft))
	}
	assert.Equal(t, paddle.X+paddle.W/2-ball.W/2, ball.X)
	assert.Equal(t, paddle.Y-ball.H, ball.Y)

	engine.Step(w, rules, launch)
	assert.False(t, run(w).serving)
	assert.Less(t, ball.VY, 0.0)
}

func TestBrickHitScoresAndReflects(t *testing.T) {
	w, rules := newWorld(t, New(DefaultLives))
	kept := keepOnly(w, 2)
	brick := kept[0]
	ball := w.Find(KindBall)
	run(w).serving = false

	ball.X, ball.Y = brick.X+1, brick.Y+brick.H+0.2
	ball.VX, ball.VY = 0, -0.4
	engine.Step(w, rules, idle)

	assert.False(t, brick.Alive)
	assert.Equal(t, 10, w.Score)
	assert.Greater(t, ball.VY, 0.0, "ball bounced down")
	assert.Equal(t, 1, run(w).left)
}

func TestBallSpeedCappedAtLowTickRate(t *testing.T) {
	cfg := testCfg
	cfg.TickRate = 10
	g := New(DefaultLives)
	rules := g.Rules(cfg)
	w := engine.NewWorld(float64(cfg.ScreenW), float64(cfg.ScreenH), cfg.Seed, g.Health())
	rules.Setup(w)

	brick := keepOnly(w, 1)[0]
	ball := w.Find(KindBall)
	engine.Step(w, rules, launch)
	v := math.Hypot(ball.VX, ball.VY)
	assert.LessOrEqual(t, v, MaxBallStep+1e-9)

	// Straight up from below, the ball must land on the brick.
	ball.X, ball.Y = brick.X, brick.Y+brick.H+3.3
	ball.VX, ball.VY = 0, -v
	for i := 0; i < 20 && brick.Alive; i++ {
		engine.Step(w, rules, idle)
	}
	assert.False(t, brick.Alive)
	assert.Equal(t, 10, w.Score)
}

func TestHardBrickNeedsTwoHits(t *testing.T) {
	w, rules := newWorld(t, New(DefaultLives))
	st := run(w)
	st.level = 3 // fortress
	for _, e := range w.Live(KindBrick) {
		w.Kill(e)
	}
	loadLevel(w, st)

	// The last hard brick sits in the bottom row with nothing below it.
	var hard *engine.Entity
	for _, e := range w.Live(KindBrick) {
		if e.Payload.(*Brick).Type == BrickHard {
			hard = e
		}
	}
	require.NotNil(t, hard)
	ball := w.Find(KindBall)
	st.serving = false

	hitFromBelow := func() {
		ball.X, ball.Y = hard.X+1, hard.Y+hard.H+0.2
		ball.VX, ball.VY = 0, -0.4
		engine.Step(w, rules, idle)
	}
	hitFromBelow()
	assert.True(t, hard.Alive)
	assert.Zero(t, w.Score)
	hitFromBelow()
	assert.False(t, hard.Alive)
	assert.Equal(t, 20, w.Score)
}

func TestLostBallCostsALife(t *testing.T) {
	w, rules := newWorld(t, New(2))
	ball := w.Find(KindBall)
	run(w).serving = false
	ball.X, ball.Y = 1, w.Height-0.5
	ball.VX, ball.VY = 0, 0.6

	engine.Step(w, rules, idle)
	assert.Equal(t, 1, w.Health)
	assert.True(t, run(w).serving)
	require.NotNil(t, w.Find(KindBall), "a new ball is served")

	ball = w.Find(KindBall)
	run(w).serving = false
	ball.X, ball.Y = 1, w.Height-0.5
	ball.VX, ball.VY = 0, 0.6
	engine.Step(w, rules, idle)
	assert.Equal(t, engine.OutcomeLost, w.Outcome)
}

func TestClearingLevelAdvancesThenWins(t *testing.T) {
	w, rules := newWorld(t, New(DefaultLives))
	st := run(w)
	keepOnly(w, 0)

	engine.Step(w, rules, idle)
	assert.Equal(t, 1, st.level)
	assert.Equal(t, Levels()[1].Breakable(), st.left)
	assert.True(t, st.serving)

	st.level = len(st.levels) - 1
	keepOnly(w, 0)
	engine.Step(w, rules, idle)
	assert.Equal(t, engine.OutcomeWon, w.Outcome)
}

func TestDeterminism(t *testing.T) {
	play := func() engine.Snapshot {
		w, rules := newWorld(t, New(DefaultLives))
		for i := 0; i < 3000 && !w.Over(); i++ {
			in := core.NewInputFrame(core.ActionLeft, core.ActionJump)
			if (i/50)%2 == 0 {
				in = core.NewInputFrame(core.ActionRight, core.ActionJump)
			}
			engine.Step(w, rules, in)
		}
		return w.Snapshot()
	}
	assert.Equal(t, play(), play())
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("breakout", registry.Options{Difficulty: config.DifficultyEasy})
	require.NoError(t, err)
	assert.Equal(t, 5, g.Health())
	assert.Equal(t, 2, LivesForPreset(config.DifficultyHard))
}
