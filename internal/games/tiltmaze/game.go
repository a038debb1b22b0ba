// Package tiltmaze adapts the maze simulator to the platform game interface:
// a phase machine around one maze.Simulator, keyboard tilt input, and
// rendering onto a core.Screen.
package tiltmaze

import (
	"github.com/vovakirdan/tilt-maze/internal/config"
	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/maze"
	"github.com/vovakirdan/tilt-maze/internal/motion"
	"github.com/vovakirdan/tilt-maze/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

var (
	_ registry.Game     = (*Game)(nil)
	_ registry.Clocked  = (*Game)(nil)
	_ registry.Pausable = (*Game)(nil)
)

// CurrentConfig loads the maze config using the path and preset set via CLI.
func CurrentConfig() (config.MazeConfig, error) {
	return config.LoadMazeWithPreset(configPath, difficultyPreset)
}

// Phase is the presentation state around the simulator's run state.
type Phase int

const (
	PhaseSplash Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game implements registry.Game and registry.Clocked for one maze variant.
type Game struct {
	variant Variant

	params    maze.Params
	cfg       config.MazeConfig
	configErr error
	override  *maze.Params // set by WithParams, skips config loading
	layout    *maze.Layout // fixed first level, used by tests

	sim      *maze.Simulator
	keys     *motion.Keyboard
	snap     maze.Snapshot
	phase    Phase
	paused   bool
	cleared  int
	runtime  core.RuntimeConfig
	lastTilt maze.Sample
}

// New creates a game for the given variant. Reset must be called before use.
func New(v Variant) *Game {
	return &Game{variant: v, keys: motion.NewKeyboard()}
}

// WithParams makes the game use p instead of loading the YAML config.
// Variant policy overrides still apply.
func (g *Game) WithParams(p maze.Params) *Game {
	g.override = &p
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the variant definition.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset loads configuration and starts the level given in cfg at the splash screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.params = g.loadParams()
	g.variant.apply(&g.params)

	level := max(cfg.Level, 1)
	if g.layout != nil {
		g.sim = maze.NewWithLayout(g.params, *g.layout)
	} else {
		g.sim = maze.New(g.params, cfg.Seed, level)
	}

	g.keys.Level()
	g.snap = g.sim.Snapshot()
	g.phase = PhaseSplash
	g.paused = false
	g.cleared = 0
	g.lastTilt = maze.Sample{}
}

func (g *Game) loadParams() maze.Params {
	g.configErr = nil
	if g.override != nil {
		return *g.override
	}

	cfg, err := CurrentConfig()
	if err != nil {
		g.configErr = err
		cfg = config.DefaultMazeConfig()
	}
	g.cfg = cfg

	p, err := cfg.Params()
	if err != nil {
		g.configErr = err
		g.cfg = config.DefaultMazeConfig()
		return maze.DefaultParams()
	}
	return p
}

// ConfigError returns the problem found while loading configuration on the
// last Reset, if any. The game falls back to defaults in that case.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Config returns the configuration in effect.
func (g *Game) Config() config.MazeConfig {
	return g.cfg
}

// Step consumes one input frame. While playing and unpaused it draws one
// tilt sample and advances the simulator.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseSplash:
		if in.Has(core.ActionConfirm) {
			g.begin()
		}

	case PhaseLevelComplete:
		switch {
		case in.Has(core.ActionConfirm):
			g.sim.AdvanceLevel()
			g.begin()
		case in.Has(core.ActionRestart):
			g.sim.Restart()
			g.begin()
		}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.sim.Restart()
			g.begin()
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if in.Has(core.ActionRestart) {
			g.sim.Restart()
			g.keys.Level()
			g.paused = false
		}
		if g.paused {
			break
		}
		g.applyTilt(in)
		s, _ := g.keys.Next()
		g.lastTilt = s
		g.observe(g.sim.Step(s))
	}

	g.snap = g.sim.Snapshot()
	return core.StepResult{State: g.State()}
}

// Clock forwards the one-second timer tick while playing and unpaused.
func (g *Game) Clock() core.StepResult {
	if g.phase == PhasePlaying && !g.paused {
		g.observe(g.sim.Tick())
	}
	g.snap = g.sim.Snapshot()
	return core.StepResult{State: g.State()}
}

// SetPaused pauses or resumes play. It has no effect outside PhasePlaying.
func (g *Game) SetPaused(paused bool) {
	if g.phase == PhasePlaying {
		g.paused = paused
	}
}

func (g *Game) begin() {
	g.keys.Level()
	g.lastTilt = maze.Sample{}
	g.paused = false
	g.phase = PhasePlaying
}

func (g *Game) applyTilt(in core.InputFrame) {
	if in.Has(core.ActionLevel) {
		g.keys.Level()
	}
	if in.Has(core.ActionTiltUp) {
		g.keys.Press(motion.TiltUp)
	}
	if in.Has(core.ActionTiltDown) {
		g.keys.Press(motion.TiltDown)
	}
	if in.Has(core.ActionTiltLeft) {
		g.keys.Press(motion.TiltLeft)
	}
	if in.Has(core.ActionTiltRight) {
		g.keys.Press(motion.TiltRight)
	}
}

// observe moves the phase machine after a simulator transition.
func (g *Game) observe(snap maze.Snapshot) {
	switch snap.State {
	case maze.Won:
		g.cleared++
		g.phase = PhaseLevelComplete
	case maze.Lost:
		g.phase = PhaseGameOver
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Cleared:  g.cleared,
		Level:    g.snap.Level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Running:  g.phase == PhasePlaying && !g.paused,
	}
}

// Phase returns the current presentation phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Snapshot returns the simulator snapshot after the last step or tick.
func (g *Game) Snapshot() maze.Snapshot {
	return g.snap
}

// Params returns the simulator parameters in effect.
func (g *Game) Params() maze.Params {
	return g.params
}

// Layout returns a copy of the current level geometry.
func (g *Game) Layout() maze.Layout {
	return g.sim.Layout()
}

// Tilt returns the last tilt sample fed to the simulator.
func (g *Game) Tilt() maze.Sample {
	return g.lastTilt
}
