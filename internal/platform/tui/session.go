package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/frameloop/internal/core"
	"github.com/vovakirdan/frameloop/internal/registry"
)

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with a
// scoreboard reachable from the menu. It is the top-level model of the
// `menu` command and of every SSH session.
type SessionModel struct {
	opts      Options
	config    core.RuntimeConfig
	username  string
	sessionID string
	mode      sessionMode
	menu      MenuModel
	scores    ScoreboardModel
	game      *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options, cfg core.RuntimeConfig, username string) SessionModel {
	id := uuid.NewString()
	opts.Logger = opts.logger().With("session", id)
	return SessionModel{
		opts:      opts,
		config:    cfg,
		username:  username,
		sessionID: id,
		menu:      NewMenuModel(cfg, opts.Difficulty),
	}
}

// ID returns the session's unique identifier.
func (m SessionModel) ID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.menu.openScoreboard = false
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.mode = modeScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		selected := m.menu.Selected()
		game, err := registry.Create(selected.GameID, registry.Options{
			ConfigPath: m.opts.ConfigPath,
			Difficulty: m.menu.Difficulty(),
		})
		if err != nil {
			m.opts.Logger.Warn("could not create game", "game", selected.GameID, "error", err)
			m.menu = m.menu.withError(err)
			return m, nil
		}

		m.opts.Logger.Info("game started", "user", m.username, "game", game.ID(), "difficulty", m.menu.Difficulty())
		m.game = NewGameModel(game, m.opts, m.config)
		m.game.embedded = true
		m.mode = modeGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.game.Update(msg)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.backToMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// backToMenu returns to a fresh menu, keeping the cursor and difficulty.
func (m *SessionModel) backToMenu() {
	menu := NewMenuModel(m.config, m.menu.Difficulty())
	menu.cursor = min(m.menu.cursor, max(len(menu.items)-1, 0))
	m.menu = menu
	m.game = nil
	m.mode = modeMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the menu flow in the local terminal.
func RunSession(opts Options, cfg core.RuntimeConfig, username string) error {
	p := tea.NewProgram(
		NewSessionModel(opts, cfg, username),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
