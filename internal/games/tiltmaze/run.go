package tiltmaze

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tilt-maze/internal/maze"
	"github.com/vovakirdan/tilt-maze/internal/motion"
)

// RunResult summarizes a headless run.
type RunResult struct {
	Final   maze.Snapshot
	Samples int // Samples consumed from the source
	Ticks   int // Timer ticks delivered
}

// Run drives a simulator from a motion source on the calling goroutine,
// in sample time: one Step per sample and one Tick every second's worth of
// samples at the given interval. It stops when the run leaves Playing, the
// source is exhausted, maxSamples is reached (0 = no limit), or ctx is done.
func Run(ctx context.Context, sim *maze.Simulator, src motion.Source, interval time.Duration, maxSamples int) (RunResult, error) {
	perTick := motion.SamplesPerSecond(interval)
	res := RunResult{Final: sim.Snapshot()}

	for res.Final.State == maze.Playing {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("tiltmaze: run interrupted after %d samples: %w", res.Samples, err)
		}
		if maxSamples > 0 && res.Samples >= maxSamples {
			break
		}

		s, ok := src.Next()
		if !ok {
			break
		}
		res.Final = sim.Step(s)
		res.Samples++

		if res.Final.State == maze.Playing && res.Samples%perTick == 0 {
			res.Final = sim.Tick()
			res.Ticks++
		}
	}
	return res, nil
}
