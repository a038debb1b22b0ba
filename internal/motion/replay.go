package motion

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilt-maze/internal/maze"
)

// Recording is a captured stream of tilt samples plus the level it was
// played on.
type Recording struct {
	Variant    string      `yaml:"variant,omitempty"`
	Level      int         `yaml:"level,omitempty"`
	Seed       int64       `yaml:"seed"`
	IntervalMS int         `yaml:"interval_ms,omitempty"`
	Samples    [][]float64 `yaml:"samples"`
}

// Interval returns the recorded sampling cadence, defaulting to 20ms.
func (r Recording) Interval() time.Duration {
	if r.IntervalMS <= 0 {
		return DefaultInterval
	}
	return time.Duration(r.IntervalMS) * time.Millisecond
}

// ParseRecording decodes a YAML recording and checks every sample has two axes.
func ParseRecording(data []byte) (Recording, error) {
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("motion: parse recording: %w", err)
	}
	for i, s := range rec.Samples {
		if len(s) != 2 {
			return Recording{}, fmt.Errorf("motion: sample %d has %d values, expected 2", i, len(s))
		}
	}
	if rec.Level < 1 {
		rec.Level = 1
	}
	return rec, nil
}

// LoadRecording reads and parses a recording file.
func LoadRecording(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("motion: read recording %s: %w", path, err)
	}
	return ParseRecording(data)
}

// Replay plays a recording back one sample at a time.
type Replay struct {
	samples [][]float64
	pos     int
}

// NewReplay creates a source over the recording's samples.
func NewReplay(rec Recording) *Replay {
	return &Replay{samples: rec.Samples}
}

// Next returns the next recorded sample, sanitized.
func (r *Replay) Next() (maze.Sample, bool) {
	if r.pos >= len(r.samples) {
		return maze.Sample{}, false
	}
	s := r.samples[r.pos]
	r.pos++
	return Sanitize(maze.Sample{AX: s[0], AY: s[1]}), true
}

// Remaining returns how many samples are left.
func (r *Replay) Remaining() int {
	return len(r.samples) - r.pos
}
