package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frameloop/internal/config"
	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/engine"
	"github.com/vovakirdan/frameloop/internal/registry"
	"github.com/vovakirdan/frameloop/internal/storage"
)

// footerHeight is the number of rows below the world used for key help.
const footerHeight = 1

// Options wires the terminal host to storage, logging and sound.
type Options struct {
	Store      *storage.Store // nil disables score persistence
	Logger     *log.Logger
	Sound      engine.SoundPlayer
	ConfigPath string
	Difficulty config.DifficultyPreset
	Hold       time.Duration // key latch window, 0 for DefaultHoldWindow

	// ScreenshotDir is where ctrl+s writes the screen. Empty means
	// ~/.frameloop/screenshots.
	ScreenshotDir string
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// GameModel runs one engine.Loop inside Bubble Tea. Frames run on the
// Bubble Tea goroutine through a TeaScheduler, so the screen is only ever
// touched from there.
type GameModel struct {
	game      registry.Game
	cfg       core.RuntimeConfig
	fixedSeed bool
	opts      Options
	logger    *log.Logger

	screen *core.Screen
	sched  *TeaScheduler
	input  *core.InputState
	latch  *KeyLatch
	loop   *engine.Loop

	keys       KeyMap
	help       help.Model
	showHelp   bool
	helpPaused bool // paused state to restore when help closes
	result     *engine.Result
	status     string

	embedded   bool // back returns to a session menu instead of quitting
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero cfg.Seed picks a new
// time-based seed for every game.
func NewGameModel(game registry.Game, opts Options, cfg core.RuntimeConfig) *GameModel {
	cfg = cfg.Normalized()
	m := &GameModel{
		game:      game,
		cfg:       cfg,
		fixedSeed: cfg.Seed != 0,
		opts:      opts,
		logger:    opts.logger(),
		sched:     NewTeaScheduler(cfg.TickRate),
		input:     core.NewInputState(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	if !m.fixedSeed {
		m.cfg.Seed = time.Now().UnixNano()
	}
	world := m.worldConfig()
	m.screen = core.NewScreen(world.ScreenW, world.ScreenH)
	m.latch = NewKeyLatch(m.input, opts.Hold)
	m.help.Width = cfg.ScreenW

	var scores engine.ScoreKeeper
	if opts.Store != nil {
		scores = opts.Store
	}
	m.loop = engine.New(game.Rules(m.cfg), engine.Options{
		GameID:    game.ID(),
		Config:    world,
		Health:    game.Health(),
		Scheduler: m.sched,
		Surface:   m.screen,
		Input:     m.input,
		Sound:     opts.Sound,
		Scores:    scores,
		Logger:    m.logger,
		OnGameOver: func(res engine.Result) {
			m.result = &res
			m.latch.ReleaseAll()
		},
	})
	m.loop.Redraw()
	return m
}

// worldConfig is the runtime config minus the footer rows.
func (m *GameModel) worldConfig() core.RuntimeConfig {
	cfg := m.cfg
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 1)
	return cfg
}

// Init starts the loop.
func (m *GameModel) Init() tea.Cmd {
	m.loop.Start()
	return m.sched.Cmd()
}

// Update handles messages and updates the model state.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if !m.sched.Owns(msg) {
			return m, nil
		}
		m.latch.Expire()
		m.sched.Fire()
		return m, m.sched.Cmd()
	}
	return m, nil
}

func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.loop.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.toggleHelp()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if state == engine.StateRunning && !m.showHelp {
			m.loop.TogglePause()
			m.latch.ReleaseAll()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m, m.restart()

	case key.Matches(msg, m.keys.Back):
		if m.showHelp {
			m.toggleHelp()
			return m, nil
		}
		if state != engine.StateRunning || m.loop.Paused() {
			m.loop.Stop()
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if state == engine.StateRunning && !m.loop.Paused() {
		m.latch.Press(m.keys.ActionFor(msg))
	}
	return m, nil
}

func (m *GameModel) toggleHelp() {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.helpPaused = m.loop.Paused()
		m.loop.SetPaused(true)
		m.latch.ReleaseAll()
		return
	}
	m.loop.SetPaused(m.helpPaused)
}

// restart begins a new game, with a new seed unless the seed was fixed.
func (m *GameModel) restart() tea.Cmd {
	m.result = nil
	m.status = ""
	m.showHelp = false
	m.latch.ReleaseAll()
	if m.fixedSeed {
		m.loop.Restart()
	} else {
		m.cfg.Seed = time.Now().UnixNano()
		m.loop.Reseed(m.cfg.Seed)
	}
	m.loop.Redraw()
	m.loop.Start()
	return m.sched.Cmd()
}

func (m *GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.cfg.ScreenW && msg.Height == m.cfg.ScreenH {
		return m, nil
	}
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.help.Width = msg.Width

	world := m.worldConfig()
	m.screen.Resize(world.ScreenW, world.ScreenH)
	m.loop.Resize(world.ScreenW, world.ScreenH)

	// The world is sized at reset, so a running game starts over.
	if m.loop.State() == engine.StateGameOver {
		m.loop.Redraw()
		return m, nil
	}
	return m, m.restart()
}

// saveScreenshot writes the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, config.Dir, "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "saved " + filepath.Base(path)
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the world, any overlay, and the key help footer.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.showHelp:
		drawMessage(m.screen, m.helpLines()...)
	case m.result != nil:
		drawMessage(m.screen, gameOverLines(*m.result, m.embedded)...)
	case m.loop.Paused():
		drawMessage(m.screen, "PAUSED", "", "P resume   ESC menu   Q quit")
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// helpLines lists every binding, two per line.
func (m *GameModel) helpLines() []string {
	var bindings []key.Binding
	for _, column := range m.keys.FullHelp() {
		bindings = append(bindings, column...)
	}

	lines := []string{m.game.Title()}
	for i := 0; i < len(bindings); i += 2 {
		left := bindings[i].Help()
		line := fmt.Sprintf("%-6s %-9s", left.Key, left.Desc)
		if i+1 < len(bindings) {
			right := bindings[i+1].Help()
			line += fmt.Sprintf("  %-6s %-10s", right.Key, right.Desc)
		}
		lines = append(lines, line)
	}
	return append(lines, "", "? or ESC to close")
}

func gameOverLines(res engine.Result, embedded bool) []string {
	title := "GAME OVER"
	if res.Outcome == engine.OutcomeWon {
		title = "YOU WIN"
	}
	lines := []string{title, "", fmt.Sprintf("Score: %d", res.Score)}
	switch {
	case res.NewBest:
		lines = append(lines, "New best!")
	case res.HighScore > 0:
		lines = append(lines, fmt.Sprintf("Best: %d", res.HighScore))
	}

	controls := []string{"R restart"}
	if embedded {
		controls = append(controls, "ESC menu")
	}
	controls = append(controls, "Q quit")
	return append(lines, "", strings.Join(controls, "   "))
}

// Result returns the last finished game, or nil.
func (m *GameModel) Result() *engine.Result {
	return m.result
}

// IsQuitting returns true if the user requested to quit entirely.
func (m *GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m *GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the user quits.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameModel(game, opts, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
