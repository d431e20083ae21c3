// Package engine implements the generic real-time game loop: one
// update → collision → draw → schedule cycle per display refresh, driven by a
// Rules configuration instead of per-game copies of the loop body.
package engine

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frameloop/internal/core"
)

// State is the lifecycle state of a Loop.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
	StateStopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// InputSource supplies the per-frame input snapshot. *core.InputState
// implements it.
type InputSource interface {
	Frame() core.InputFrame
}

// Options wires a Loop to its host.
type Options struct {
	GameID    string
	Config    core.RuntimeConfig // world size and seed
	Health    int                // starting health, 0 disables health
	MaxFrames uint64             // stop after this many frames, 0 for no limit

	Scheduler Scheduler // required
	Surface   Surface
	Input     InputSource
	Sound     SoundPlayer
	Scores    ScoreKeeper

	// OnGameOver is called once per game, outside the loop lock.
	OnGameOver func(Result)

	Logger *log.Logger
}

// Loop owns one World and drives it one frame per scheduler callback.
//
// State machine: Idle → Running → (GameOver | Stopped); only Restart leaves
// GameOver or Stopped, back to Idle.
type Loop struct {
	mu     sync.Mutex
	rules  Rules
	opts   Options
	logger *log.Logger

	world  *World
	state  State
	paused bool
	gen    uint64 // bumped by Start; frames from older generations are ignored
	seed   int64
	done   chan struct{}
}

// New creates an idle loop with a freshly set up world.
func New(rules Rules, opts Options) *Loop {
	if opts.Scheduler == nil {
		panic("engine: loop needs a scheduler")
	}
	opts.Config = opts.Config.Normalized()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.GameID != "" {
		logger = logger.With("game", opts.GameID)
	}

	l := &Loop{
		rules:  rules,
		opts:   opts,
		logger: logger,
		seed:   opts.Config.Seed,
	}
	l.reset()
	return l
}

// Start begins scheduling frames. It only acts on an idle loop, so calling
// it again while running has no effect.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.state != StateIdle {
		l.mu.Unlock()
		return
	}
	l.state = StateRunning
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	l.logger.Debug("loop started", "seed", l.seed)
	l.schedule(gen)
}

// Stop halts scheduling. A frame already running completes first; no
// further frame runs afterwards.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.state != StateIdle && l.state != StateRunning {
		l.mu.Unlock()
		return
	}
	l.state = StateStopped
	frames := l.world.Frame
	l.closeDone()
	l.mu.Unlock()

	l.logger.Debug("loop stopped", "frames", frames)
}

// Restart discards the world, builds a new one with the same seed and
// returns to Idle.
func (l *Loop) Restart() {
	l.mu.Lock()
	l.closeDone()
	l.reset()
	l.mu.Unlock()
}

// Reseed restarts with a different seed.
func (l *Loop) Reseed(seed int64) {
	l.mu.Lock()
	l.seed = seed
	l.closeDone()
	l.reset()
	l.mu.Unlock()
}

// Resize changes the world size used by the next Restart or Reseed.
func (l *Loop) Resize(width, height int) {
	l.mu.Lock()
	l.opts.Config.ScreenW = width
	l.opts.Config.ScreenH = height
	l.mu.Unlock()
}

// SetPaused pauses or resumes the simulation. Paused frames are still
// scheduled and drawn, but the world does not advance.
func (l *Loop) SetPaused(paused bool) {
	l.mu.Lock()
	l.paused = paused
	l.mu.Unlock()
}

// TogglePause flips the paused flag and returns the new value.
func (l *Loop) TogglePause() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = !l.paused
	return l.paused
}

// Paused reports whether the simulation is paused.
func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Snapshot copies the world as of the last completed frame.
func (l *Loop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.world.Snapshot()
}

// Done is closed when the current game reaches GameOver or Stopped.
// Restart replaces it.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Redraw draws the current world without advancing it.
func (l *Loop) Redraw() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draw()
}

// reset must be called with mu held (or before the loop is shared).
func (l *Loop) reset() {
	cfg := l.opts.Config
	w := NewWorld(float64(cfg.ScreenW), float64(cfg.ScreenH), l.seed, l.opts.Health)
	if l.opts.Scores != nil && l.opts.GameID != "" {
		best, err := l.opts.Scores.HighScore(l.opts.GameID)
		if err != nil {
			l.logger.Warn("could not read high score", "error", err)
		}
		w.HighScore = best
	}
	if l.rules.Setup != nil {
		l.rules.Setup(w)
	}

	l.world = w
	l.state = StateIdle
	l.paused = false
	l.done = make(chan struct{})
}

func (l *Loop) closeDone() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}

func (l *Loop) schedule(gen uint64) {
	l.opts.Scheduler.Schedule(func() { l.frame(gen) })
}

// frame runs phases 1-6 for one display refresh.
func (l *Loop) frame(gen uint64) {
	l.mu.Lock()
	if l.state != StateRunning || gen != l.gen {
		l.mu.Unlock()
		return
	}

	if !l.paused {
		var in core.InputFrame
		if l.opts.Input != nil {
			in = l.opts.Input.Frame()
		}
		Step(l.world, l.rules, in)
	}
	l.draw()

	events := l.world.drainEvents()
	var result *Result
	switch {
	case l.world.Over():
		l.state = StateGameOver
		res := l.result()
		result = &res
		l.closeDone()
	case l.opts.MaxFrames > 0 && l.world.Frame >= l.opts.MaxFrames:
		l.state = StateStopped
		l.closeDone()
	}
	next := l.state == StateRunning
	l.mu.Unlock()

	l.dispatch(events)
	if result != nil {
		l.finish(*result)
	}
	if next {
		l.schedule(gen)
	}
}

func (l *Loop) draw() {
	dst := l.opts.Surface
	if dst == nil {
		return
	}
	dst.Clear()
	for _, e := range l.world.entities {
		if !e.Alive || e.Hidden {
			continue
		}
		if e.Shape == ShapeCircle {
			dst.DrawCircle(e.X, e.Y, e.R, e.Color)
		} else {
			dst.DrawRect(e.X, e.Y, e.W, e.H, e.Color)
		}
	}
	if l.rules.Draw != nil {
		l.rules.Draw(l.world, dst)
	}
}

func (l *Loop) dispatch(events []Event) {
	if l.opts.Sound == nil {
		return
	}
	for _, e := range events {
		l.opts.Sound.Play(e.Name)
	}
}

func (l *Loop) result() Result {
	w := l.world
	return Result{
		GameID:    l.opts.GameID,
		Outcome:   w.Outcome,
		Score:     w.Score,
		HighScore: w.HighScore,
		NewBest:   w.Score > w.HighScore,
		Health:    w.Health,
		Frames:    w.Frame,
	}
}

// finish persists the score and notifies the host. Storage failures are
// logged; they never affect the game.
func (l *Loop) finish(res Result) {
	l.logger.Info("game over", "outcome", res.Outcome, "score", res.Score, "frames", res.Frames)

	if l.opts.Scores != nil && res.GameID != "" && res.Score > 0 {
		if _, err := l.opts.Scores.SaveScore(res.GameID, res.Score); err != nil {
			l.logger.Warn("could not save score", "error", err)
		}
	}
	if l.opts.OnGameOver != nil {
		l.opts.OnGameOver(res)
	}
}
