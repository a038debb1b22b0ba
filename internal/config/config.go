// Package config provides YAML-based maze configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tilt-maze/internal/maze"
)

// ErrInvalid is wrapped by every configuration validation failure.
var ErrInvalid = errors.New("config: invalid")

// MazeConfig contains all configuration for the tilt maze.
type MazeConfig struct {
	Physics     MazePhysics     `yaml:"physics"`
	Field       MazeField       `yaml:"field"`
	Targets     MazeTargets     `yaml:"targets"`
	Timer       MazeTimer       `yaml:"timer"`
	Progression MazeProgression `yaml:"progression"`
	Policy      MazePolicy      `yaml:"policy"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// MazePhysics defines ball movement parameters.
type MazePhysics struct {
	Sensitivity float64 `yaml:"sensitivity"`
	BallRadius  float64 `yaml:"ball_radius"`
}

// MazeField defines the play field in world units.
type MazeField struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// MazeTargets defines goal and hazard sizes.
type MazeTargets struct {
	GoalRadius    float64 `yaml:"goal_radius"`
	HazardRadius  float64 `yaml:"hazard_radius"`
	HazardEpsilon float64 `yaml:"hazard_epsilon"`
}

// MazeTimer defines the per-level countdown.
type MazeTimer struct {
	BudgetSeconds int `yaml:"budget_seconds"`
}

// MazeProgression defines how obstacle counts grow with the level.
type MazeProgression struct {
	Walls   RampConfig `yaml:"walls"`
	Hazards RampConfig `yaml:"hazards"`
}

// RampConfig is a linear per-level count with an optional cap (0 = none).
type RampConfig struct {
	Base     int `yaml:"base"`
	PerLevel int `yaml:"per_level"`
	Max      int `yaml:"max"`
}

// Ramp converts to the simulator's ramp type.
func (r RampConfig) Ramp() maze.Ramp {
	return maze.Ramp{Base: r.Base, PerLevel: r.PerLevel, Max: r.Max}
}

// MazePolicy selects collision and bounds behavior.
type MazePolicy struct {
	Collision string `yaml:"collision"` // "reject" or "slide"
	Bounds    string `yaml:"bounds"`    // "walls" or "clamp"
}

// Params converts the config into simulator parameters and validates them.
func (c MazeConfig) Params() (maze.Params, error) {
	collision, err := maze.ParseCollisionPolicy(c.Policy.Collision)
	if err != nil {
		return maze.Params{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	bounds, err := maze.ParseBoundsPolicy(c.Policy.Bounds)
	if err != nil {
		return maze.Params{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	p := maze.Params{
		Sensitivity:     c.Physics.Sensitivity,
		BallRadius:      c.Physics.BallRadius,
		GoalRadius:      c.Targets.GoalRadius,
		HazardRadius:    c.Targets.HazardRadius,
		HazardEpsilon:   c.Targets.HazardEpsilon,
		TimerBudget:     c.Timer.BudgetSeconds,
		Field:           maze.Size{W: c.Field.Width, H: c.Field.Height},
		WallThickness:   c.Field.WallThickness,
		WallsPerLevel:   c.Progression.Walls.Ramp().At,
		HazardsPerLevel: c.Progression.Hazards.Ramp().At,
		Collision:       collision,
		Bounds:          bounds,
	}
	if err := p.Validate(); err != nil {
		return maze.Params{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return p, nil
}

// LevelInfo summarizes what a level will contain under a config.
type LevelInfo struct {
	Level   int
	Walls   int
	Hazards int
	Timer   int
}

// Levels describes levels 1..n, for level selection screens.
func (c MazeConfig) Levels(n int) []LevelInfo {
	walls := c.Progression.Walls.Ramp()
	hazards := c.Progression.Hazards.Ramp()

	out := make([]LevelInfo, 0, max(n, 0))
	for level := 1; level <= n; level++ {
		out = append(out, LevelInfo{
			Level:   level,
			Walls:   walls.At(level),
			Hazards: hazards.At(level),
			Timer:   c.Timer.BudgetSeconds,
		})
	}
	return out
}
