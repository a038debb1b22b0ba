package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
)

// SessionModel runs the variant menu and the games it launches inside one
// program, returning to the menu when a game is left. SSH connections and
// the menu command both use it.
type SessionModel struct {
	screen  sessionScreen
	runtime core.RuntimeConfig
	logger  *log.Logger
	menu    MenuModel
	game    Model
	played  int
	done    bool
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		runtime: cfg,
		logger:  logger,
		menu:    NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW, m.runtime.ScreenH = size.Width, size.Height
	}

	if m.screen == screenGame {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.done = true
		return m, tea.Quit
	case m.menu.Selected() != nil:
		return m.launch(*m.menu.Selected(), m.menu.Level())
	}
	return m, cmd
}

// launch switches to the chosen variant. The menu's own quit command is
// dropped: inside a session, choosing changes screens.
func (m SessionModel) launch(item MenuItem, level int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(item.GameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", item.GameID, "error", err)
		m.menu = NewMenuModel(m.runtime)
		return m, nil
	}

	m.runtime.Level = level
	m.game = NewModel(game, m.runtime, Options{Logger: m.logger, AllowBack: true})
	m.screen = screenGame
	m.played++
	m.logger.Info("game started", "game", item.GameID, "level", level, "games", m.played)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.done = true
		return m, tea.Quit
	case m.game.BackToMenu():
		st := m.game.State()
		m.logger.Info("game ended", "level", st.Level, "cleared", st.Cleared)
		m.screen = screenMenu
		m.menu = NewMenuModel(m.runtime)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch {
	case m.done:
		return ""
	case m.screen == screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu/game loop in the local terminal.
func RunSession(cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, logger),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
