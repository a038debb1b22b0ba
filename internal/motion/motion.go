// Package motion provides the tilt sources that feed the maze simulator:
// a keyboard-driven virtual tilt for terminals and recorded sample replays.
package motion

import (
	"time"

	"github.com/vovakirdan/tilt-maze/internal/maze"
)

// DefaultInterval is the sampling cadence of the "game" sensor tier.
const DefaultInterval = 20 * time.Millisecond

// Source yields one tilt sample per sensor callback.
// The second result is false once the source is exhausted.
type Source interface {
	Next() (maze.Sample, bool)
}

// Sanitize zeroes NaN or infinite components so a bad reading is a no-op.
func Sanitize(s maze.Sample) maze.Sample {
	return s.Finite()
}

// SamplesPerSecond converts a sampling interval into a whole sample count,
// used to place the one-second timer tick in sample time.
func SamplesPerSecond(interval time.Duration) int {
	if interval <= 0 {
		interval = DefaultInterval
	}
	n := int(time.Second / interval)
	if n < 1 {
		n = 1
	}
	return n
}
