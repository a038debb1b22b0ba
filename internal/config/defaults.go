package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the hardcoded maze configuration, matching the
// embedded defaults/maze.yaml.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Physics: MazePhysics{
			Sensitivity: 0.18,
			BallRadius:  2.5,
		},
		Field: MazeField{
			Width:         160,
			Height:        90,
			WallThickness: 3,
		},
		Targets: MazeTargets{
			GoalRadius:    4.5,
			HazardRadius:  3.5,
			HazardEpsilon: 0.5,
		},
		Timer: MazeTimer{
			BudgetSeconds: 60,
		},
		Progression: MazeProgression{
			Walls:   RampConfig{Base: 4, PerLevel: 2, Max: 16},
			Hazards: RampConfig{Base: 2, PerLevel: 1, Max: 10},
		},
		Policy: MazePolicy{
			Collision: "reject",
			Bounds:    "walls",
		},
		Source: SourceBuiltin,
	}
}
