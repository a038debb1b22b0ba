package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source labels for configs that did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

const mazeConfigFile = "maze.yaml"

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.tiltmaze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadMaze(customPath string) (MazeConfig, error) {
	// A custom path must load; failures there are reported.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseMaze(data)
		if err != nil {
			return MazeConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Optional locations are skipped when missing or broken.
	for _, path := range []string{userConfigPath(mazeConfigFile), filepath.Join("configs", mazeConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseMaze(data); err == nil {
			cfg.Source = path
			return cfg, nil
		}
	}

	cfg, err := parseMaze(defaultMazeYAML)
	if err != nil {
		return DefaultMazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = SourceEmbedded
	return cfg, nil
}

// LoadMazeWithPreset loads the config and applies a difficulty preset.
func LoadMazeWithPreset(customPath string, preset DifficultyPreset) (MazeConfig, error) {
	cfg, err := LoadMaze(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyMazePreset(&cfg, preset)
	return cfg, nil
}

func parseMaze(data []byte) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MazeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiltmaze", "configs", filename)
}
