package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/storage"
)

// stubGame scores one point per frame while jump is held and ends at 3.
type stubGame struct {
	worldW, worldH *float64
}

func (stubGame) ID() string    { return "stub" }
func (stubGame) Title() string { return "Stub" }
func (stubGame) Health() int   { return 0 }

func (g stubGame) Rules(core.RuntimeConfig) engine.Rules {
	return engine.Rules{
		Setup: func(w *engine.World) {
			if g.worldW != nil {
				*g.worldW, *g.worldH = w.Width, w.Height
			}
			w.Spawn(engine.NewRect("block", 1, 1, 2, 1))
		},
		Control: func(w *engine.World, in core.InputFrame) {
			if in.Has(core.ActionJump) {
				w.AddScore(1)
			}
		},
		Terminal: func(w *engine.World) engine.Outcome {
			if w.Score >= 3 {
				return engine.OutcomeLost
			}
			return engine.OutcomeNone
		},
	}
}

var stubCfg = core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}

func newStubModel(t *testing.T, opts Options) (*GameModel, *fakeClock) {
	t.Helper()
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = t.TempDir()
	}
	m := NewGameModel(stubGame{}, opts, stubCfg)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m.latch.now = clock.now
	require.NotNil(t, m.Init(), "init arms the first tick")
	return m, clock
}

func tick(m *GameModel) tea.Cmd {
	_, cmd := m.Update(TickMsg{id: m.sched.id})
	return cmd
}

func press(m *GameModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameModelRunsFramesOnTicks(t *testing.T) {
	m, _ := newStubModel(t, Options{})

	for i := 0; i < 5; i++ {
		assert.NotNil(t, tick(m), "each frame arms the next tick")
	}
	snap := m.loop.Snapshot()
	assert.Equal(t, uint64(5), snap.Frame)
	assert.Equal(t, 0, snap.Score)
	assert.Contains(t, m.View(), string(core.RectGlyph))
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m, _ := newStubModel(t, Options{})

	_, cmd := m.Update(TickMsg{id: m.sched.id + 1000})
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(0), m.loop.Snapshot().Frame)
}

func TestGameModelHeldKeyAndGameOver(t *testing.T) {
	m, clock := newStubModel(t, Options{})

	press(m, space)
	tick(m)
	assert.Equal(t, 1, m.loop.Snapshot().Score)

	// Without auto-repeat the key is released after the hold window.
	clock.advance(DefaultHoldWindow)
	tick(m)
	assert.Equal(t, 1, m.loop.Snapshot().Score)

	press(m, space)
	tick(m)
	press(m, space)
	cmd := tick(m)

	assert.Nil(t, cmd, "no frames after game over")
	assert.Equal(t, engine.StateGameOver, m.loop.State())
	require.NotNil(t, m.Result())
	assert.Equal(t, 3, m.Result().Score)

	view := m.View()
	assert.Contains(t, view, "GAME OVER")
	assert.Contains(t, view, "Score: 3")
	assert.Contains(t, view, "New best!")
}

func TestGameModelRestart(t *testing.T) {
	m, _ := newStubModel(t, Options{})
	for i := 0; i < 3; i++ {
		press(m, space)
		tick(m)
	}
	require.Equal(t, engine.StateGameOver, m.loop.State())

	cmd := press(m, runeKey("r"))
	assert.NotNil(t, cmd)
	assert.Nil(t, m.Result())
	assert.Equal(t, engine.StateRunning, m.loop.State())
	assert.Equal(t, 0, m.loop.Snapshot().Score)
	assert.NotContains(t, m.View(), "GAME OVER")
}

func TestGameModelPause(t *testing.T) {
	m, _ := newStubModel(t, Options{})
	tick(m)

	press(m, runeKey("p"))
	assert.True(t, m.loop.Paused())

	press(m, space)
	assert.NotNil(t, tick(m), "paused loops keep ticking")
	tick(m)
	snap := m.loop.Snapshot()
	assert.Equal(t, uint64(1), snap.Frame)
	assert.Equal(t, 0, snap.Score, "keys are ignored while paused")
	assert.Contains(t, m.View(), "PAUSED")

	press(m, runeKey("p"))
	tick(m)
	assert.Equal(t, uint64(2), m.loop.Snapshot().Frame)
}

func TestGameModelBack(t *testing.T) {
	m, _ := newStubModel(t, Options{})

	assert.False(t, isQuit(press(m, tea.KeyMsg{Type: tea.KeyEsc})), "back is ignored while playing")
	assert.False(t, m.BackToMenu())

	press(m, runeKey("p"))
	assert.True(t, isQuit(press(m, tea.KeyMsg{Type: tea.KeyEsc})), "standalone back quits")
	assert.True(t, m.BackToMenu())
	assert.Equal(t, engine.StateStopped, m.loop.State())

	embedded, _ := newStubModel(t, Options{})
	embedded.embedded = true
	press(embedded, runeKey("p"))
	assert.False(t, isQuit(press(embedded, runeKey("b"))))
	assert.True(t, embedded.BackToMenu())
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newStubModel(t, Options{})
	assert.True(t, isQuit(press(m, runeKey("q"))))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
	assert.Nil(t, tick(m), "stopped loops schedule nothing")
}

func TestGameModelHelpPauses(t *testing.T) {
	m, _ := newStubModel(t, Options{})

	press(m, runeKey("?"))
	assert.True(t, m.loop.Paused())
	assert.Contains(t, m.View(), "screenshot")

	press(m, runeKey("?"))
	assert.False(t, m.loop.Paused(), "closing help restores the previous pause state")
}

func TestGameModelResizeRestarts(t *testing.T) {
	var w, h float64
	m := NewGameModel(stubGame{worldW: &w, worldH: &h}, Options{}, stubCfg)
	m.Init()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 11.0, h, "one row is kept for the footer")

	tick(m)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60.0, w)
	assert.Equal(t, 19.0, h)
	assert.Equal(t, uint64(0), m.loop.Snapshot().Frame)
	assert.Equal(t, engine.StateRunning, m.loop.State())
	assert.Equal(t, 60, m.screen.Width())
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newStubModel(t, Options{ScreenshotDir: dir})
	tick(m)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "stub_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), string(core.RectGlyph))
	assert.Contains(t, m.View(), "saved stub_")
}

func TestGameModelSavesScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.SaveScore("stub", 10)
	require.NoError(t, err)

	m, _ := newStubModel(t, Options{Store: store})
	for i := 0; i < 3; i++ {
		press(m, space)
		tick(m)
	}
	require.NotNil(t, m.Result())
	assert.Equal(t, 10, m.Result().HighScore)
	assert.False(t, m.Result().NewBest)
	assert.Contains(t, m.View(), "Best: 10")

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestGameModelTimeSeed(t *testing.T) {
	cfg := stubCfg
	cfg.Seed = 0
	m := NewGameModel(stubGame{}, Options{}, cfg)
	assert.False(t, m.fixedSeed)
	assert.NotZero(t, m.cfg.Seed)
}
