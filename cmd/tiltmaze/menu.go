package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-maze/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant and level picker",
	Long: `Start Tilt Maze in interactive menu mode.

Use arrow keys or j/k to pick a variant, Tab to choose a starting level,
Enter to play. Esc during a paused or finished game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Tab          - Level select
  Enter/Space  - Play
  Q            - Quit

Examples:
  tiltmaze menu
  tiltmaze menu --fps 30
  tiltmaze menu --difficulty easy --log-file ./tiltmaze.log`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	warnConfig()
	if err := tui.RunSession(runtimeConfig(), uiLogger()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
