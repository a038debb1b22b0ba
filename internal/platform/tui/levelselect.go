package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt-maze/internal/config"
)

// selectableLevels is how many levels the level select offers.
const selectableLevels = 30

// LevelSelectModel shows the obstacle ramp of the active config and lets
// the player pick a starting level.
type LevelSelectModel struct {
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	source   string
	width    int
	height   int
	chosen   int
	back     bool
	quitting bool
}

// NewLevelSelectModel creates a level table for cfg with the cursor on current.
func NewLevelSelectModel(cfg config.MazeConfig, width, height, current int) LevelSelectModel {
	levels := cfg.Levels(selectableLevels)
	rows := make([]table.Row, 0, len(levels))
	for _, l := range levels {
		rows = append(rows, table.Row{
			strconv.Itoa(l.Level),
			strconv.Itoa(l.Walls),
			strconv.Itoa(l.Hazards),
			fmt.Sprintf("%ds", l.Timer),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Level", Width: 7},
			{Title: "Walls", Width: 7},
			{Title: "Holes", Width: 7},
			{Title: "Timer", Width: 7},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	if current > 1 && current <= len(rows) {
		t.SetCursor(current - 1)
	}

	return LevelSelectModel{
		table:  t,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		source: cfg.Source,
		width:  width,
		height: height,
	}
}

// tableHeight leaves room for the title and help lines.
func tableHeight(height int) int {
	return max(height-8, 5)
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Levels):
			m.back = true
			return m, nil
		case key.Matches(msg, m.keys.Select):
			m.chosen = m.table.Cursor() + 1
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m LevelSelectModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Choose a starting level"), m.width))
	b.WriteString("\n")
	if m.source != "" {
		b.WriteString(centerText(subtitleStyle.Render("config: "+m.source), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.table.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the picked level, or 0 while none is picked.
func (m LevelSelectModel) Chosen() int {
	return m.chosen
}

// GoingBack returns true if the user left without picking.
func (m LevelSelectModel) GoingBack() bool {
	return m.back
}

// IsQuitting returns true if user requested to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}
