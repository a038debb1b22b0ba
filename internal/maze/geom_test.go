package maze

import (
	"math"
	"testing"
)

func TestWallOverlapsBall(t *testing.T) {
	w := Wall{X: 10, Y: 10, W: 5, H: 20}

	tests := []struct {
		name     string
		c        Vec
		r        float64
		expected bool
	}{
		{"inside", Vec{12, 15}, 1, true},
		{"box reaches left edge", Vec{8, 15}, 2.5, true},
		{"touching left edge", Vec{8, 15}, 2, false},
		{"touching bottom edge", Vec{12, 32}, 2, false},
		{"far right", Vec{30, 15}, 2, false},
		{"corner box overlap", Vec{8.5, 8.5}, 2, true},
		{"above", Vec{12, 5}, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.OverlapsBall(tc.c, tc.r); got != tc.expected {
				t.Errorf("OverlapsBall(%v, %g) = %v, expected %v", tc.c, tc.r, got, tc.expected)
			}
		})
	}
}

func TestWallOverlaps(t *testing.T) {
	a := Wall{X: 0, Y: 0, W: 10, H: 10}

	if !a.Overlaps(Wall{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping walls reported apart")
	}
	if a.Overlaps(Wall{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("adjacent walls reported overlapping")
	}
}

func TestCircleWithin(t *testing.T) {
	c := Circle{Center: Vec{X: 0, Y: 0}, Radius: 5}

	if !c.Within(Vec{X: 3, Y: 3.9}, 5) {
		t.Error("point at distance < 5 should be within")
	}
	if c.Within(Vec{X: 3, Y: 4}, 5) {
		t.Error("point at distance exactly 5 should not be within")
	}
	if c.Within(Vec{}, 0) {
		t.Error("nothing is within a zero distance")
	}
}

func TestVecDist(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: 4, Y: 6}

	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist() = %g, expected 5", got)
	}
	if got := a.Dist2(b); got != 25 {
		t.Errorf("Dist2() = %g, expected 25", got)
	}
	if got := a.Add(b).Scale(2); got != (Vec{X: 10, Y: 16}) {
		t.Errorf("Add().Scale() = %v, expected (10, 16)", got)
	}
}

func TestSampleFinite(t *testing.T) {
	tests := []struct {
		in   Sample
		want Sample
	}{
		{Sample{AX: 1, AY: -2}, Sample{AX: 1, AY: -2}},
		{Sample{AX: math.NaN(), AY: 3}, Sample{AX: 0, AY: 3}},
		{Sample{AX: 2, AY: math.Inf(-1)}, Sample{AX: 2, AY: 0}},
	}

	for _, tc := range tests {
		if got := tc.in.Finite(); got != tc.want {
			t.Errorf("Finite(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestStateStrings(t *testing.T) {
	if Playing.String() != "playing" || Won.String() != "won" || Lost.String() != "lost" {
		t.Error("unexpected RunState names")
	}
	if LossHazard.String() != "hazard" || LossTimeout.String() != "timeout" {
		t.Error("unexpected LossReason names")
	}
	if CollideSlide.String() != "slide" || BoundsClamp.String() != "clamp" {
		t.Error("unexpected policy names")
	}
}
