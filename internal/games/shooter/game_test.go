package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/frameloop/internal/config"
	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/registry"
)

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}

func newWorld(t *testing.T, cfg config.ShooterConfig) (*engine.World, engine.Rules) {
	t.Helper()
	g := New(cfg)
	rules := g.Rules(testCfg)
	w := engine.NewWorld(float64(testCfg.ScreenW), float64(testCfg.ScreenH), testCfg.Seed, g.Health())
	rules.Setup(w)
	return w, rules
}

// quiet disables waves so tests can place enemies by hand.
func quiet() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.SpawnInterval = 1 << 20
	cfg.Difficulty.Enabled = false
	return cfg
}

func spawnEnemy(w *engine.World, x, y float64) *engine.Entity {
	e := w.Spawn(engine.NewRect(KindEnemy, x, y, 3, 1))
	e.Value = 10
	return e
}

func TestShipMovesAndStaysOnScreen(t *testing.T) {
	w, rules := newWorld(t, quiet())
	ship := w.Find(KindShip)
	require.NotNil(t, ship)
	x := ship.X

	engine.Step(w, rules, core.NewInputFrame(core.ActionRight))
	assert.Greater(t, ship.X, x)

	for i := 0; i < 500; i++ {
		engine.Step(w, rules, core.NewInputFrame(core.ActionLeft))
	}
	assert.Equal(t, 0.0, ship.X)
	assert.True(t, ship.Alive)
}

func TestShootCooldown(t *testing.T) {
	cfg := quiet()
	w, rules := newWorld(t, cfg)
	shoot := core.NewInputFrame(core.ActionShoot)

	engine.Step(w, rules, shoot)
	assert.Equal(t, 1, w.Count(KindBullet))

	for i := 0; i < cfg.Player.Cooldown-1; i++ {
		engine.Step(w, rules, shoot)
	}
	assert.Equal(t, 1, w.Count(KindBullet), "gun is cooling down")

	engine.Step(w, rules, shoot)
	assert.Equal(t, 2, w.Count(KindBullet))
}

func TestBulletKillsEnemy(t *testing.T) {
	w, rules := newWorld(t, quiet())
	ship := w.Find(KindShip)
	spawnEnemy(w, ship.X+1, ship.Y-4)

	engine.Step(w, rules, core.NewInputFrame(core.ActionShoot))
	for i := 0; i < 10; i++ {
		engine.Step(w, rules, core.InputFrame{})
	}

	assert.Equal(t, 10, w.Score)
	assert.Equal(t, 0, w.Count(KindEnemy))
	assert.Equal(t, 0, w.Count(KindBullet))
}

func TestEnemyContactDamagesShip(t *testing.T) {
	cfg := quiet()
	w, rules := newWorld(t, cfg)
	ship := w.Find(KindShip)
	spawnEnemy(w, ship.X, ship.Y)

	engine.Step(w, rules, core.InputFrame{})

	assert.Equal(t, cfg.Gameplay.Health-cfg.Gameplay.ContactDamage, w.Health)
	assert.Equal(t, 0, w.Count(KindEnemy))
	assert.False(t, w.Over())
}

func TestEscapedEnemyDamagesShip(t *testing.T) {
	cfg := quiet()
	w, rules := newWorld(t, cfg)
	e := spawnEnemy(w, 0, w.Height-0.5)
	e.VY = 1

	engine.Step(w, rules, core.InputFrame{})

	assert.False(t, e.Alive)
	assert.Equal(t, cfg.Gameplay.Health-cfg.Gameplay.EscapeDamage, w.Health)
}

func TestWavesSpawnAboveScreen(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	w, rules := newWorld(t, cfg)

	for i := 0; i <= firstWaveDelay && w.Count(KindEnemy) == 0; i++ {
		engine.Step(w, rules, core.InputFrame{})
	}
	assert.Equal(t, uint64(firstWaveDelay+1), w.Frame)

	enemies := w.Live(KindEnemy)
	require.Len(t, enemies, cfg.Enemies.WaveSize)
	for _, e := range enemies {
		assert.Less(t, e.Y, 0.0)
		assert.Greater(t, e.VY, 0.0)
		assert.GreaterOrEqual(t, e.X, 0.0)
		assert.LessOrEqual(t, e.X+e.W, w.Width)
	}
}

func TestWinScore(t *testing.T) {
	cfg := quiet()
	cfg.Gameplay.WinScore = 10
	w, rules := newWorld(t, cfg)
	ship := w.Find(KindShip)
	spawnEnemy(w, ship.X+1, ship.Y-3)

	engine.Step(w, rules, core.NewInputFrame(core.ActionShoot))
	for i := 0; i < 10 && !w.Over(); i++ {
		engine.Step(w, rules, core.InputFrame{})
	}
	assert.Equal(t, engine.OutcomeWon, w.Outcome)
}

func TestDeterminism(t *testing.T) {
	play := func() engine.Snapshot {
		w, rules := newWorld(t, config.DefaultShooterConfig())
		for i := 0; i < 2000 && !w.Over(); i++ {
			in := core.NewInputFrame(core.ActionShoot)
			if (i/40)%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			engine.Step(w, rules, in)
		}
		return w.Snapshot()
	}
	first := play()
	assert.Equal(t, first, play())
	assert.Positive(t, first.Score)
}

func TestHealthBar(t *testing.T) {
	assert.Equal(t, "[#####-----]", healthBar(50, 100, 10))
	assert.Equal(t, "[----------]", healthBar(0, 100, 10))
	assert.Equal(t, "", healthBar(10, 0, 10))
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("shooter", registry.Options{Difficulty: config.DifficultyEasy})
	require.NoError(t, err)
	assert.Equal(t, 150, g.Health())
}
