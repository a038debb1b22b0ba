package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyMazePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timer.BudgetSeconds = 90
		cfg.Progression.Hazards.Base = max(cfg.Progression.Hazards.Base-1, 0)
		cfg.Progression.Hazards.Max = lowerCap(cfg.Progression.Hazards.Max, 6)
	case DifficultyHard:
		cfg.Timer.BudgetSeconds = 45
		cfg.Physics.Sensitivity *= 1.25
		cfg.Progression.Walls.PerLevel++
		cfg.Progression.Hazards.PerLevel++
		cfg.Progression.Walls.Max = raiseCap(cfg.Progression.Walls.Max, 4)
		cfg.Progression.Hazards.Max = raiseCap(cfg.Progression.Hazards.Max, 4)
	case DifficultyFixed:
		cfg.Progression.Walls.PerLevel = 0
		cfg.Progression.Hazards.PerLevel = 0
	}
}

// lowerCap returns the smaller positive cap; 0 means uncapped.
func lowerCap(current, limit int) int {
	if current <= 0 || current > limit {
		return limit
	}
	return current
}

func raiseCap(current, by int) int {
	if current <= 0 {
		return 0
	}
	return current + by
}
