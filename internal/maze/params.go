package maze

import (
	"errors"
	"fmt"
	"math"
)

// CollisionPolicy selects how a move that hits a wall is resolved.
type CollisionPolicy int

const (
	// CollideReject drops the whole move when any wall is hit.
	CollideReject CollisionPolicy = iota
	// CollideSlide falls back to the x-only and then the y-only move.
	CollideSlide
)

// String returns the config name of the policy.
func (p CollisionPolicy) String() string {
	switch p {
	case CollideReject:
		return "reject"
	case CollideSlide:
		return "slide"
	default:
		return "unknown"
	}
}

// BoundsPolicy selects how the field edges keep the ball inside.
type BoundsPolicy int

const (
	// BoundsWalls surrounds the field with four border walls.
	BoundsWalls BoundsPolicy = iota
	// BoundsClamp clamps the candidate position into the field.
	BoundsClamp
)

// String returns the config name of the policy.
func (p BoundsPolicy) String() string {
	switch p {
	case BoundsWalls:
		return "walls"
	case BoundsClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParseCollisionPolicy maps a config name to a CollisionPolicy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "", "reject":
		return CollideReject, nil
	case "slide":
		return CollideSlide, nil
	}
	return CollideReject, fmt.Errorf("maze: unknown collision policy %q", s)
}

// ParseBoundsPolicy maps a config name to a BoundsPolicy.
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch s {
	case "", "walls":
		return BoundsWalls, nil
	case "clamp":
		return BoundsClamp, nil
	}
	return BoundsWalls, fmt.Errorf("maze: unknown bounds policy %q", s)
}

// Params holds every tunable of the simulation.
type Params struct {
	Sensitivity   float64 // World units moved per unit of tilt per sample
	BallRadius    float64
	GoalRadius    float64 // Win when the ball center is closer than this
	HazardRadius  float64
	HazardEpsilon float64 // Lose when closer than HazardRadius - HazardEpsilon
	TimerBudget   int     // Seconds per level
	Field         Size
	WallThickness float64

	WallsPerLevel   func(level int) int
	HazardsPerLevel func(level int) int

	Collision CollisionPolicy
	Bounds    BoundsPolicy
}

// Ramp grows linearly with the level and saturates at Max.
type Ramp struct {
	Base     int
	PerLevel int
	Max      int
}

// At returns the ramp value for a level (levels start at 1).
func (r Ramp) At(level int) int {
	if level < 1 {
		level = 1
	}
	n := r.Base + r.PerLevel*(level-1)
	if r.Max > 0 && n > r.Max {
		n = r.Max
	}
	if n < 0 {
		n = 0
	}
	return n
}

// DefaultParams returns the tuning used when no config overrides it.
func DefaultParams() Params {
	return Params{
		Sensitivity:     0.18,
		BallRadius:      2.5,
		GoalRadius:      4.5,
		HazardRadius:    3.5,
		HazardEpsilon:   0.5,
		TimerBudget:     60,
		Field:           Size{W: 160, H: 90},
		WallThickness:   3,
		WallsPerLevel:   Ramp{Base: 4, PerLevel: 2, Max: 16}.At,
		HazardsPerLevel: Ramp{Base: 2, PerLevel: 1, Max: 10}.At,
		Collision:       CollideReject,
		Bounds:          BoundsWalls,
	}
}

// ErrInvalidParams is wrapped by every Validate failure.
var ErrInvalidParams = errors.New("maze: invalid params")

// MaxFieldSide bounds each field dimension in world units. The solvability
// check walks a 1-unit grid over the whole field.
const MaxFieldSide = 2000

// Validate reports the first nonsensical value in p.
func (p Params) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"sensitivity", p.Sensitivity},
		{"ball radius", p.BallRadius},
		{"goal radius", p.GoalRadius},
		{"hazard radius", p.HazardRadius},
		{"hazard epsilon", p.HazardEpsilon},
		{"wall thickness", p.WallThickness},
		{"field width", p.Field.W},
		{"field height", p.Field.H},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidParams, f.name, f.v)
		}
	}

	switch {
	case p.Sensitivity <= 0:
		return fmt.Errorf("%w: sensitivity must be positive, got %g", ErrInvalidParams, p.Sensitivity)
	case p.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %g", ErrInvalidParams, p.BallRadius)
	case p.GoalRadius <= 0:
		return fmt.Errorf("%w: goal radius must be positive, got %g", ErrInvalidParams, p.GoalRadius)
	case p.HazardRadius <= p.HazardEpsilon || p.HazardEpsilon < 0:
		return fmt.Errorf("%w: hazard radius %g must exceed epsilon %g >= 0", ErrInvalidParams, p.HazardRadius, p.HazardEpsilon)
	case p.TimerBudget <= 0:
		return fmt.Errorf("%w: timer budget must be positive, got %d", ErrInvalidParams, p.TimerBudget)
	case p.WallThickness <= 0:
		return fmt.Errorf("%w: wall thickness must be positive, got %g", ErrInvalidParams, p.WallThickness)
	case p.Field.W < 20*p.BallRadius || p.Field.H < 10*p.BallRadius:
		return fmt.Errorf("%w: field %gx%g too small for ball radius %g", ErrInvalidParams, p.Field.W, p.Field.H, p.BallRadius)
	case p.Field.W > MaxFieldSide || p.Field.H > MaxFieldSide:
		return fmt.Errorf("%w: field %gx%g exceeds %d per side", ErrInvalidParams, p.Field.W, p.Field.H, MaxFieldSide)
	case p.WallsPerLevel == nil || p.HazardsPerLevel == nil:
		return fmt.Errorf("%w: per-level counts are not set", ErrInvalidParams)
	}
	return nil
}

func (p Params) wallsAt(level int) int {
	if p.WallsPerLevel == nil {
		return 0
	}
	return max(p.WallsPerLevel(level), 0)
}

func (p Params) hazardsAt(level int) int {
	if p.HazardsPerLevel == nil {
		return 0
	}
	return max(p.HazardsPerLevel(level), 0)
}
