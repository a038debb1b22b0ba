package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze"
	"github.com/vovakirdan/tilt-maze/internal/maze"
	"github.com/vovakirdan/tilt-maze/internal/motion"
)

var (
	flagSimVariant    string
	flagSimMaxSamples int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <recording.yaml>",
	Short: "Replay a recorded tilt stream headlessly",
	Long: `Replay the samples of a recording against the level and seed it names,
without a terminal UI, and print the final state.

The timer advances once per second of recorded samples, so a replay is
exactly reproducible regardless of machine speed.

An explicit --seed or --level overrides the recording's value, which lets
one tilt stream be tried against other layouts.

Recording format:
  variant: maze         # optional, --variant overrides
  level: 1
  seed: 42
  interval_ms: 20       # sampling cadence, default 20
  samples:
    - [4.0, 0.0]        # [ax, ay] per sample

Examples:
  tiltmaze simulate ./drift_right.yaml
  tiltmaze simulate ./run.yaml --variant maze_slide --max-samples 500
  tiltmaze simulate ./run.yaml --seed 7 --level 3`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", "", "Maze variant (default: the recording's, then maze)")
	simulateCmd.Flags().IntVar(&flagSimMaxSamples, "max-samples", 0, "Stop after this many samples (0 = no limit)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	rec, err := motion.LoadRecording(args[0])
	if err != nil {
		return err
	}

	variantID := flagSimVariant
	if variantID == "" {
		variantID = rec.Variant
	}
	if variantID == "" {
		variantID = "maze"
	}
	v, ok := tiltmaze.LookupVariant(variantID)
	if !ok {
		return fmt.Errorf("unknown variant %q", variantID)
	}
	p, err := v.Params()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed, level := replayTarget(cmd, rec)
	sim := maze.New(p, seed, level)
	logger.Debug("replaying", "file", args[0], "variant", variantID, "level", level, "seed", seed, "samples", len(rec.Samples))

	res, err := tiltmaze.Run(ctx, sim, motion.NewReplay(rec), rec.Interval(), flagSimMaxSamples)
	writeResult(os.Stdout, variantID, res)
	return err
}

// replayTarget returns the seed and level to replay: the recording's,
// unless --seed or --level was set on the command line.
func replayTarget(cmd *cobra.Command, rec motion.Recording) (int64, int) {
	seed, level := rec.Seed, rec.Level
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}
	if cmd.Flags().Changed("level") {
		level = flagLevel
	}
	return seed, level
}

// writeResult prints the outcome of a headless run.
func writeResult(out io.Writer, variantID string, res tiltmaze.RunResult) {
	s := res.Final
	outcome := s.State.String()
	if s.State == maze.Lost {
		outcome += " (" + s.Reason.String() + ")"
	}

	fmt.Fprintf(out, "variant   %s\n", variantID)
	fmt.Fprintf(out, "level     %d\n", s.Level)
	fmt.Fprintf(out, "seed      %d\n", s.Seed)
	fmt.Fprintf(out, "outcome   %s\n", outcome)
	fmt.Fprintf(out, "ball      (%.2f, %.2f)\n", s.Ball.X, s.Ball.Y)
	fmt.Fprintf(out, "time left %ds\n", s.TimeRemaining)
	fmt.Fprintf(out, "samples   %d (%d steps, %d timer ticks)\n", res.Samples, s.Steps, res.Ticks)
}
