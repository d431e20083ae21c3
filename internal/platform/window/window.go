//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/registry"
)

// errQuit ends RunGame without reporting a failure.
var errQuit = errors.New("window: quit")

// Options wires the window host to scores and logging.
type Options struct {
	Scores engine.ScoreKeeper // nil disables score persistence
	Sound  engine.SoundPlayer
	Logger *log.Logger
	Scale  float64 // window zoom, 0 for 1
}

var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionShoot: {ebiten.KeyF, ebiten.KeyZ},
	core.ActionJump:  {ebiten.KeySpace},
}

// Game adapts an engine.Loop to ebiten.Game. Ebiten calls Update at the
// tick rate; every Update runs the one pending frame.
type Game struct {
	game      registry.Game
	cfg       core.RuntimeConfig
	fixedSeed bool
	logger    *log.Logger

	canvas *Canvas
	sched  *engine.ManualScheduler
	input  *core.InputState
	loop   *engine.Loop
	result *engine.Result
}

// NewGame creates the window game. A zero cfg.Seed picks a new time-based
// seed for every game.
func NewGame(game registry.Game, opts Options, cfg core.RuntimeConfig) *Game {
	cfg = cfg.Normalized()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		game:      game,
		cfg:       cfg,
		fixedSeed: cfg.Seed != 0,
		logger:    logger,
		canvas:    NewCanvas(),
		sched:     engine.NewManualScheduler(),
		input:     core.NewInputState(),
	}
	if !g.fixedSeed {
		g.cfg.Seed = time.Now().UnixNano()
	}
	g.loop = engine.New(game.Rules(g.cfg), engine.Options{
		GameID:    game.ID(),
		Config:    g.cfg,
		Health:    game.Health(),
		Scheduler: g.sched,
		Surface:   g.canvas,
		Input:     g.input,
		Sound:     opts.Sound,
		Scores:    opts.Scores,
		Logger:    logger,
		OnGameOver: func(res engine.Result) {
			g.result = &res
		},
	})
	g.loop.Redraw()
	return g
}

// Update polls the keyboard and advances the loop by one frame.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.loop.Stop()
		return errQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.restart()
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if g.loop.State() == engine.StateRunning {
			g.loop.TogglePause()
		}
	}

	for action, keys := range keyBindings {
		down := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		g.input.Set(action, down)
	}

	g.sched.RunNext()
	return nil
}

func (g *Game) restart() {
	if g.fixedSeed {
		g.loop.Restart()
	} else {
		g.loop.Reseed(time.Now().UnixNano())
	}
	g.result = nil
	g.input.Reset()
	g.loop.Redraw()
	g.loop.Start()
}

// Draw replays the last frame scaled to pixels.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	for _, op := range g.canvas.Ops() {
		switch op.Kind {
		case OpRect:
			x, y, w, h := PixelRect(op.X, op.Y, op.W, op.H)
			vector.DrawFilledRect(screen, x, y, w, h, RGBA(op.Color), false)
		case OpCircle:
			cx, cy, _, _ := PixelRect(op.X, op.Y, 0, 0)
			vector.DrawFilledCircle(screen, cx, cy, float32(op.R*CellW), RGBA(op.Color), true)
		case OpText:
			x, y, _, _ := PixelRect(op.X, op.Y, 0, 0)
			ebitenutil.DebugPrintAt(screen, op.Text, int(x), int(y))
		}
	}

	var lines []string
	switch {
	case g.result != nil:
		head := "GAME OVER"
		if g.result.Outcome == engine.OutcomeWon {
			head = "YOU WIN"
		}
		best := fmt.Sprintf("Best: %d", g.result.HighScore)
		if g.result.NewBest {
			best = "New best!"
		}
		lines = []string{head, fmt.Sprintf("Score: %d", g.result.Score), best, "R restart  Q quit"}
	case g.loop.Paused():
		lines = []string{"PAUSED", "P resume"}
	}
	w, h := g.Layout(0, 0)
	for i, line := range lines {
		x := (w - len(line)*6) / 2
		y := h/2 - len(lines)*CellH/2 + i*CellH
		ebitenutil.DebugPrintAt(screen, line, x, y)
	}
}

// Layout keeps a fixed logical size of one cell per world unit.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.ScreenW * CellW, g.cfg.ScreenH * CellH
}

// Run opens a window and plays game until it is closed or quit.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (*engine.Result, error) {
	g := NewGame(game, opts, cfg)
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle("frameloop - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TickRate)

	g.loop.Start()
	err := ebiten.RunGame(g)
	g.loop.Stop()
	if err != nil && !errors.Is(err, errQuit) {
		return g.result, err
	}
	return g.result, nil
}
