package motion

import (
	"math"

	"github.com/vovakirdan/tilt-maze/internal/maze"
)

// Direction is a discrete tilt nudge from a key press.
type Direction int

const (
	TiltUp Direction = iota
	TiltDown
	TiltLeft
	TiltRight
)

// Keyboard tilt tuning. MaxTilt matches the accelerometer range of one g.
const (
	DefaultTiltStep  = 1.5
	DefaultMaxTilt   = 9.8
	DefaultTiltDecay = 0.25
)

// Keyboard turns key presses into a tilt vector. Each press nudges one axis
// by Step up to Max; every sample pulls both axes back toward level by Decay.
type Keyboard struct {
	Step  float64
	Max   float64
	Decay float64

	tilt maze.Sample
}

// NewKeyboard creates a keyboard source with the default tuning.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		Step:  DefaultTiltStep,
		Max:   DefaultMaxTilt,
		Decay: DefaultTiltDecay,
	}
}

// Press nudges the tilt in one direction.
func (k *Keyboard) Press(d Direction) {
	switch d {
	case TiltUp:
		k.tilt.AY -= k.Step
	case TiltDown:
		k.tilt.AY += k.Step
	case TiltLeft:
		k.tilt.AX -= k.Step
	case TiltRight:
		k.tilt.AX += k.Step
	}
	k.tilt.AX = clampAxis(k.tilt.AX, k.Max)
	k.tilt.AY = clampAxis(k.tilt.AY, k.Max)
}

// Level puts the board flat immediately.
func (k *Keyboard) Level() {
	k.tilt = maze.Sample{}
}

// Tilt returns the current tilt without consuming a sample.
func (k *Keyboard) Tilt() maze.Sample {
	return k.tilt
}

// Next returns the current tilt and then decays it. A keyboard never runs out.
func (k *Keyboard) Next() (maze.Sample, bool) {
	out := k.tilt
	k.tilt.AX = decayAxis(k.tilt.AX, k.Decay)
	k.tilt.AY = decayAxis(k.tilt.AY, k.Decay)
	return out, true
}

func clampAxis(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}

func decayAxis(v, decay float64) float64 {
	switch {
	case v > decay:
		return v - decay
	case v < -decay:
		return v + decay
	default:
		return 0
	}
}
