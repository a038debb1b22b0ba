package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-maze/internal/config"
	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze"
	"github.com/vovakirdan/tilt-maze/internal/registry"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the variant picker.
// Tab opens a level select table for the highlighted variant.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	levels   *LevelSelectModel
	quitting bool
	selected *MenuItem
	level    int
	loadCfg  func() (config.MazeConfig, error)
}

// NewMenuModel creates a new menu model listing every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description})
	}

	return MenuModel{
		items:   items,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
		level:   max(cfg.Level, 1),
		loadCfg: tiltmaze.CurrentConfig,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.help.Width = wsm.Width
	}

	if m.levels != nil {
		return m.updateLevels(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		return m.choose(m.level)

	case key.Matches(msg, m.keys.Levels):
		if len(m.items) == 0 {
			return m, nil
		}
		cfg, err := m.loadCfg()
		if err != nil {
			cfg = config.DefaultMazeConfig()
		}
		ls := NewLevelSelectModel(cfg, m.width, m.height, m.level)
		m.levels = &ls
	}

	return m, nil
}

func (m MenuModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.levels.Update(msg)
	ls, ok := updated.(LevelSelectModel)
	if !ok {
		return m, cmd
	}

	switch {
	case ls.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case ls.GoingBack():
		m.levels = nil
		return m, nil
	case ls.Chosen() > 0:
		m.levels = nil
		return m.choose(ls.Chosen())
	}

	m.levels = &ls
	return m, cmd
}

func (m MenuModel) choose(level int) (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	selected := m.items[m.cursor]
	m.selected = &selected
	m.level = level
	m.config.Level = level
	return m, tea.Quit // Exit menu to start game
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.levels != nil {
		return m.levels.View()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T I L T   M A Z E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render(fmt.Sprintf("Choose a variant  ·  starting level %d", m.level)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := itemStyle.Render(item.Title)
		if i == m.cursor {
			line = selectedItemStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if item.Description != "" && i == m.cursor {
			b.WriteString(centerText(descStyle.Render(item.Description), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Level returns the level the game should start on.
func (m MenuModel) Level() int {
	return m.level
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
