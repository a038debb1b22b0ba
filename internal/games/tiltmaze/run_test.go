package tiltmaze

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tilt-maze/internal/maze"
	"github.com/vovakirdan/tilt-maze/internal/motion"
)

func replayOf(n int, ax, ay float64) *motion.Replay {
	rec := motion.Recording{}
	for i := 0; i < n; i++ {
		rec.Samples = append(rec.Samples, []float64{ax, ay})
	}
	return motion.NewReplay(rec)
}

func TestRunReachesGoal(t *testing.T) {
	p := testParams()
	p.TimerBudget = 60
	sim := maze.NewWithLayout(p, openLayout(p))

	// 2 units per sample from x=20: inside the goal radius at x=136.
	res, err := Run(context.Background(), sim, replayOf(100, 4, 0), 20*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Final.State != maze.Won {
		t.Fatalf("State = %v, expected won", res.Final.State)
	}
	if res.Samples != 58 || res.Ticks != 1 {
		t.Errorf("Samples=%d Ticks=%d, expected 58 and 1", res.Samples, res.Ticks)
	}
	if res.Final.TimeRemaining != 59 {
		t.Errorf("TimeRemaining = %d, expected 59", res.Final.TimeRemaining)
	}
}

func TestRunStopsWhenSourceIsExhausted(t *testing.T) {
	p := testParams()
	sim := maze.NewWithLayout(p, openLayout(p))

	res, err := Run(context.Background(), sim, replayOf(10, 0, 0), 20*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Final.State != maze.Playing || res.Samples != 10 || res.Ticks != 0 {
		t.Errorf("result = %+v", res)
	}
}

func TestRunTimesOut(t *testing.T) {
	p := testParams()
	sim := maze.NewWithLayout(p, openLayout(p))

	res, err := Run(context.Background(), sim, motion.NewKeyboard(), 20*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Final.State != maze.Lost || res.Final.Reason != maze.LossTimeout {
		t.Fatalf("final = %+v, expected timeout loss", res.Final)
	}
	if res.Samples != 150 || res.Ticks != 3 {
		t.Errorf("Samples=%d Ticks=%d, expected 150 and 3", res.Samples, res.Ticks)
	}
}

func TestRunMaxSamples(t *testing.T) {
	p := testParams()
	sim := maze.NewWithLayout(p, openLayout(p))

	res, err := Run(context.Background(), sim, motion.NewKeyboard(), 20*time.Millisecond, 25)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Samples != 25 {
		t.Errorf("Samples = %d, expected 25", res.Samples)
	}
}

func TestRunCanceled(t *testing.T) {
	p := testParams()
	sim := maze.NewWithLayout(p, openLayout(p))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, sim, motion.NewKeyboard(), 20*time.Millisecond, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if res.Samples != 0 {
		t.Errorf("Samples = %d, expected 0", res.Samples)
	}
}
