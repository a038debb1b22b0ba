package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-maze/internal/core"
	"github.com/vovakirdan/tilt-maze/internal/games/tiltmaze"
	"github.com/vovakirdan/tilt-maze/internal/maze"
	"github.com/vovakirdan/tilt-maze/internal/platform/tui"
)

var (
	flagLayoutVariant string
	flagLayoutWidth   int
	flagLayoutHeight  int
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print a generated level layout",
	Long: `Generate the layout for --level and --seed and print it with a summary.
The same level, seed and config always produce the same layout.

Legend:
  █  wall    ○  hole    ◎  goal    ●  ball at the start

Examples:
  tiltmaze layout --seed 42
  tiltmaze layout --level 8 --seed 42 --difficulty hard
  tiltmaze layout --variant maze_clamp --width 120 --height 40`,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagLayoutVariant, "variant", "maze", "Maze variant whose policies apply")
	layoutCmd.Flags().IntVar(&flagLayoutWidth, "width", 80, "Drawing width in characters")
	layoutCmd.Flags().IntVar(&flagLayoutHeight, "height", 24, "Drawing height in characters")
}

func runLayout(_ *cobra.Command, _ []string) error {
	v, ok := tiltmaze.LookupVariant(flagLayoutVariant)
	if !ok {
		return fmt.Errorf("unknown variant %q", flagLayoutVariant)
	}
	p, err := v.Params()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l := maze.GenerateLayout(flagLevel, seed, p)

	color := term.IsTerminal(int(os.Stdout.Fd()))
	writeLayout(os.Stdout, l, p, flagLayoutWidth, flagLayoutHeight, color)
	return nil
}

// writeLayout draws l into a w x h screen and prints it with a summary.
func writeLayout(out io.Writer, l maze.Layout, p maze.Params, w, h int, color bool) {
	screen := core.NewScreen(max(w, 10), max(h, 5))
	start := l.Start
	tiltmaze.DrawLayout(screen, l, &start, core.Rect{X: 0, Y: 0, W: screen.Width(), H: screen.Height()})

	if color {
		fmt.Fprintln(out, tui.RenderScreen(screen))
	} else {
		fmt.Fprintln(out, screen.String())
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "level     %d\n", l.Level)
	fmt.Fprintf(out, "seed      %d\n", l.Seed)
	fmt.Fprintf(out, "field     %gx%g (%s bounds, %s collisions)\n", l.Field.W, l.Field.H, p.Bounds, p.Collision)
	fmt.Fprintf(out, "walls     %d interior, %d border\n", len(l.Interior()), l.Border)
	fmt.Fprintf(out, "holes     %d\n", len(l.Hazards))
	fmt.Fprintf(out, "start     (%.1f, %.1f)\n", l.Start.X, l.Start.Y)
	fmt.Fprintf(out, "goal      (%.1f, %.1f) r=%g\n", l.Goal.Center.X, l.Goal.Center.Y, l.Goal.Radius)
	fmt.Fprintf(out, "timer     %ds\n", p.TimerBudget)
	fmt.Fprintf(out, "attempts  %d\n", l.Attempts)
}
