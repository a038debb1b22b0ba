package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-maze/internal/core"
)

// GameKeyMap defines the key bindings while a maze is on screen.
type GameKeyMap struct {
	TiltUp     key.Binding
	TiltDown   key.Binding
	TiltLeft   key.Binding
	TiltRight  key.Binding
	Level      key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TiltUp, k.Level, k.Confirm, k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TiltUp, k.TiltDown, k.TiltLeft, k.TiltRight, k.Level},
		{k.Confirm, k.Pause, k.Restart, k.Back},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		TiltUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("←↑↓→/wasd", "tilt"),
		),
		TiltDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "tilt down"),
		),
		TiltLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "tilt left"),
		),
		TiltRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "tilt right"),
		),
		Level: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "level board"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/next"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into a game action.
// Platform keys (quit, back, screenshot, help) map to ActionNone here and
// are handled by the model directly.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.TiltUp):
		return core.ActionTiltUp
	case key.Matches(msg, k.TiltDown):
		return core.ActionTiltDown
	case key.Matches(msg, k.TiltLeft):
		return core.ActionTiltLeft
	case key.Matches(msg, k.TiltRight):
		return core.ActionTiltRight
	case key.Matches(msg, k.Level):
		return core.ActionLevel
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuKeyMap defines the key bindings for the variant menu and level select.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Levels key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Levels, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Levels, k.Back, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Levels: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "choose level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
