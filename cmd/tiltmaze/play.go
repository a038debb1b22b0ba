package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-maze/internal/platform/tui"
	"github.com/vovakirdan/tilt-maze/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a maze variant",
	Long: `Start playing the given maze variant (default: maze).

Controls:
  Arrows/WASD  - Tilt the board
  Space        - Level the board
  Enter        - Start / next level
  P            - Pause
  R            - Restart the level
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - 90 second timer, fewer holes
  normal  - Config as written
  hard    - 45 second timer, more walls and holes, livelier ball
  fixed   - No progression, every level looks like level 1

Examples:
  tiltmaze play
  tiltmaze play maze_slide
  tiltmaze play --level 4 --difficulty hard
  tiltmaze play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "maze"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'tiltmaze list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	warnConfig()
	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "level", cfg.Level, "seed", cfg.Seed, "fps", cfg.TickRate)

	if err := tui.Run(game, cfg, tui.Options{Logger: uiLogger()}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
