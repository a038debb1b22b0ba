// Package maze implements the tilt maze simulation: a ball driven by a tilt
// vector rolls through rectangular walls toward a goal while avoiding holes.
// It has no dependencies on the terminal, timing, or input devices; the host
// calls Step once per motion sample and Tick once per second.
package maze

import "math"

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Dist2 returns the squared Euclidean distance between v and o.
func (v Vec) Dist2(o Vec) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between v and o.
func (v Vec) Dist(o Vec) float64 {
	return math.Sqrt(v.Dist2(o))
}

// Size is the extent of the play field in world units.
type Size struct {
	W, H float64
}

// Wall is an axis-aligned rectangle given by its top-left corner and extent.
type Wall struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (w Wall) Right() float64 {
	return w.X + w.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (w Wall) Bottom() float64 {
	return w.Y + w.H
}

// OverlapsBall reports whether the bounding square of a ball centered at c
// with radius r overlaps the wall. Edges that only touch do not overlap.
func (w Wall) OverlapsBall(c Vec, r float64) bool {
	if c.X+r <= w.X || c.X-r >= w.Right() {
		return false
	}
	if c.Y+r <= w.Y || c.Y-r >= w.Bottom() {
		return false
	}
	return true
}

// Overlaps reports whether two walls share any area.
func (w Wall) Overlaps(o Wall) bool {
	if w.X >= o.Right() || o.X >= w.Right() {
		return false
	}
	if w.Y >= o.Bottom() || o.Y >= w.Bottom() {
		return false
	}
	return true
}

// Circle is a round region: a hazard hole or the goal.
type Circle struct {
	Center Vec
	Radius float64
}

// Within reports whether p lies strictly closer to the center than dist.
func (c Circle) Within(p Vec, dist float64) bool {
	if dist <= 0 {
		return false
	}
	return p.Dist2(c.Center) < dist*dist
}

// Sample is one motion reading: tilt acceleration along x and y.
type Sample struct {
	AX, AY float64
}

// Finite returns the sample with any NaN or infinite component replaced by 0.
func (s Sample) Finite() Sample {
	if math.IsNaN(s.AX) || math.IsInf(s.AX, 0) {
		s.AX = 0
	}
	if math.IsNaN(s.AY) || math.IsInf(s.AY, 0) {
		s.AY = 0
	}
	return s
}

// IsZero reports whether the sample moves nothing.
func (s Sample) IsZero() bool {
	return s.AX == 0 && s.AY == 0
}

func clampF(val, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, val))
}
