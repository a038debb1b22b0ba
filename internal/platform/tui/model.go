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

	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/registry"
)

// Options tune a game Model.
type Options struct {
	// Logger receives state transitions at debug level. Nil discards them.
	Logger *log.Logger

	// AllowBack lets the back key end the game so a menu can take over.
	AllowBack bool

	// ScreenshotDir overrides ~/.tiltmaze/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one game.
//
// Two tick chains drive the game: sample ticks at TickRate Hz and clock
// ticks at 1 Hz. Both run only while the game reports Running and the
// terminal has focus. Every start or stop bumps gen, so ticks still in
// flight from an earlier chain are recognized and dropped. A pause keeps
// the unplayed part of the current second, so the countdown sees played
// time only.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	frame     core.InputFrame
	state     core.GameState
	keys      GameKeyMap
	help      help.Model
	logger    *log.Logger
	shotDir   string
	status    string
	gen       int
	ticking   bool
	now       func() time.Time
	clockAt   time.Time     // when the pending clock tick was armed
	clockFor  time.Duration // delay of the pending clock tick
	clockLeft time.Duration // unplayed part of the second kept over a pause
	focused   bool
	blurred   bool // paused because focus was lost
	allowBack bool
	quitting  bool
	back      bool
}

// NewModel creates a game model and resets the game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:    cfg,
		frame:     core.NewInputFrame(),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		logger:    logger,
		shotDir:   opts.ScreenshotDir,
		focused:   true,
		allowBack: opts.AllowBack,
		now:       time.Now,
	}

	game.Reset(cfg)
	m.state = game.State()
	m.logger.Debug("game reset", "game", game.ID(), "level", m.state.Level, "seed", cfg.Seed)
	if m.state.Running {
		m.ticking = true
		m.gen = 1
		m.armClock()
	}
	return m
}

// Init starts the tick chains if the game is already running.
func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return m.tickCmds()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resizeScreen()
		return m, nil

	case tea.BlurMsg:
		return m.handleBlur()

	case tea.FocusMsg:
		return m.handleFocus()

	case SampleTickMsg:
		return m.handleSample(msg)

	case ClockTickMsg:
		return m.handleClock(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.allowBack && !m.state.Running {
			m.back = true
			m.stopTicks()
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.frame.Set(action)

	// While ticking, input waits for the next sample. Otherwise the game is
	// on a menu-like screen and reacts at once.
	if m.ticking {
		return m, nil
	}
	res := m.game.Step(m.frame)
	m.frame.Clear()
	cmd := m.reconcile(res.State)
	return m, cmd
}

func (m Model) handleSample(msg SampleTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	res := m.game.Step(m.frame)
	m.frame.Clear()
	m.reconcile(res.State)
	if !m.ticking {
		return m, nil
	}
	return m, sampleTickCmd(m.config.TickRate, m.gen)
}

func (m Model) handleClock(msg ClockTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}

	if c, ok := m.game.(registry.Clocked); ok {
		res := c.Clock()
		m.reconcile(res.State)
	}
	if !m.ticking {
		return m, nil
	}
	m.armClock()
	return m, clockTickCmd(m.clockFor, m.gen)
}

func (m Model) handleBlur() (tea.Model, tea.Cmd) {
	m.focused = false
	if p, ok := m.game.(registry.Pausable); ok && m.state.Running {
		p.SetPaused(true)
		m.blurred = true
	}
	cmd := m.reconcile(m.game.State())
	return m, cmd
}

func (m Model) handleFocus() (tea.Model, tea.Cmd) {
	m.focused = true
	if p, ok := m.game.(registry.Pausable); ok && m.blurred {
		p.SetPaused(false)
	}
	m.blurred = false
	cmd := m.reconcile(m.game.State())
	return m, cmd
}

// reconcile records a new game state and starts or stops the tick chains
// to match it. It returns the commands for a newly started chain.
func (m *Model) reconcile(st core.GameState) tea.Cmd {
	prev := m.state
	m.state = st
	if prev != st {
		m.logger.Debug("state changed",
			"level", st.Level,
			"cleared", st.Cleared,
			"running", st.Running,
			"paused", st.Paused,
			"game_over", st.GameOver,
		)
	}

	want := st.Running && m.focused && !m.back
	switch {
	case want && !m.ticking:
		m.ticking = true
		m.gen++
		m.armClock()
		return m.tickCmds()
	case !want && m.ticking:
		m.stopTicks()
		if st.Paused || !m.focused {
			m.keepClock()
		}
	}
	return nil
}

// stopTicks ends both chains and forgets any partial second.
func (m *Model) stopTicks() {
	if m.ticking {
		m.ticking = false
		m.gen++
	}
	m.clockLeft = 0
}

// armClock schedules the next clock tick: the kept remainder if a pause
// left one, a full second otherwise.
func (m *Model) armClock() {
	m.clockFor = time.Second
	if m.clockLeft > 0 {
		m.clockFor = m.clockLeft
	}
	m.clockLeft = 0
	m.clockAt = m.now()
}

// keepClock saves what was left of the interrupted clock tick. A tick that
// was already due when the chain stopped is owed right after resuming.
func (m *Model) keepClock() {
	left := m.clockFor - m.now().Sub(m.clockAt)
	m.clockLeft = min(max(left, time.Millisecond), time.Second)
}

func (m Model) tickCmds() tea.Cmd {
	return tea.Batch(sampleTickCmd(m.config.TickRate, m.gen), clockTickCmd(m.clockFor, m.gen))
}

// resizeScreen keeps the game screen above the help footer.
func (m *Model) resizeScreen() {
	footer := lineCount(m.footer())
	m.screen.Resize(max(m.config.ScreenW, 1), max(m.config.ScreenH-footer, 1))
}

func (m Model) footer() string {
	f := m.help.View(m.keys)
	if m.status != "" {
		f += "  " + statusStyle.Render(m.status)
	}
	return f
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot dir: %w", err)
		}
		dir = filepath.Join(home, ".tiltmaze", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_L%d_%s.txt", m.game.ID(), m.state.Level, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// State returns the last game state the model observed.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
