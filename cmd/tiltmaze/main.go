// tiltmaze is a tilt-controlled ball maze for the terminal.
//
// Usage:
//
//	tiltmaze list               - List maze variants
//	tiltmaze play [variant]     - Play a variant (default: maze)
//	tiltmaze menu               - Pick a variant and level interactively
//	tiltmaze layout             - Print a generated level layout
//	tiltmaze simulate <file>    - Replay a recorded tilt stream headlessly
//	tiltmaze serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Tilt samples per second (default: 50)
//	--seed <value>       - Layout seed (0 = random based on time)
//	--level <n>          - Starting level (default: 1)
//	--config <path>      - Custom maze config YAML
//	--difficulty <name>  - Preset: easy, normal, hard, fixed
//	--debug              - Log debug messages
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-maze/internal/config"
	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagLevel      int
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagLogFile    string
)

var (
	logger  = log.New(os.Stderr)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltmaze",
	Short: "Tilt Maze - roll a ball to the goal by tilting the board",
	Long: `Tilt Maze is a terminal ball maze. Tilt the board with the arrow keys to
roll the ball past walls and holes into the goal before the timer runs out.

Available commands:
  list      - Show all maze variants
  play      - Play a variant directly
  menu      - Interactive variant and level picker
  layout    - Print a generated level layout
  simulate  - Replay a recorded tilt stream without a terminal UI
  serve     - Start SSH server for remote play

Examples:
  tiltmaze list
  tiltmaze play
  tiltmaze play maze_slide --difficulty hard
  tiltmaze layout --level 5 --seed 42
  tiltmaze simulate ./drift_right.yaml
  tiltmaze serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tilt samples per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Layout seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 1, "Starting level")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup validates the global flags and hands config choices to the game.
func setup(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}
	if flagFPS < 1 {
		return fmt.Errorf("--fps must be at least 1, got %d", flagFPS)
	}

	tiltmaze.SetConfigPath(flagConfig)
	tiltmaze.SetDifficultyPreset(flagDifficulty)

	return setupLogger()
}

func setupLogger() error {
	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		logFile = f
		out = f
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tiltmaze",
	})
	return nil
}

// uiLogger returns the logger for commands that own the terminal. Without a
// log file their logs are dropped so they cannot garble the screen.
func uiLogger() *log.Logger {
	if logFile == nil {
		return log.New(io.Discard)
	}
	return logger
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Level:    flagLevel,
	}
}

// warnConfig reports a broken config before the terminal UI takes over.
// The game itself falls back to defaults.
func warnConfig() {
	cfg, err := tiltmaze.CurrentConfig()
	if err == nil {
		_, err = cfg.Params()
	}
	if err != nil {
		logger.Warn("config problem, using defaults", "error", err)
		return
	}
	logger.Debug("config loaded", "source", cfg.Source)
}
