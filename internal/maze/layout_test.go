package maze

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestGenerateLayoutDeterminism(t *testing.T) {
	p := DefaultParams()

	a := GenerateLayout(3, 42, p)
	b := GenerateLayout(3, 42, p)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same (level, seed) produced different layouts:\n%+v\n%+v", a, b)
	}
}

func TestGenerateLayoutVariesBySeedAndLevel(t *testing.T) {
	p := DefaultParams()
	base := GenerateLayout(2, 1, p)

	if other := GenerateLayout(2, 2, p); reflect.DeepEqual(base.Walls, other.Walls) {
		t.Error("different seeds produced identical walls")
	}
	if other := GenerateLayout(3, 1, p); reflect.DeepEqual(base.Walls, other.Walls) {
		t.Error("different levels produced identical walls")
	}
}

func TestGenerateLayoutIsSolvable(t *testing.T) {
	for _, bounds := range []BoundsPolicy{BoundsWalls, BoundsClamp} {
		p := DefaultParams()
		p.Bounds = bounds
		for level := 1; level <= 12; level++ {
			for seed := int64(1); seed <= 6; seed++ {
				l := GenerateLayout(level, seed, p)
				if !Solvable(l, p) {
					t.Errorf("%v level %d seed %d: layout is not solvable", bounds, level, seed)
				}
			}
		}
	}
}

func TestGenerateLayoutStartIsSafe(t *testing.T) {
	p := DefaultParams()
	lossR := p.HazardRadius - p.HazardEpsilon

	for level := 1; level <= 10; level++ {
		l := GenerateLayout(level, 77, p)

		for _, w := range l.Walls {
			if w.OverlapsBall(l.Start, p.BallRadius) {
				t.Errorf("level %d: start %v overlaps wall %+v", level, l.Start, w)
			}
		}
		for _, h := range l.Hazards {
			if h.Within(l.Start, lossR) {
				t.Errorf("level %d: start %v inside hazard %+v", level, l.Start, h)
			}
		}
		if l.Goal.Within(l.Start, l.Goal.Radius) {
			t.Errorf("level %d: start already inside goal", level)
		}
	}
}

func TestGenerateLayoutCounts(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		bounds     BoundsPolicy
		wantBorder int
	}{
		{BoundsWalls, 4},
		{BoundsClamp, 0},
	}

	for _, tc := range tests {
		p.Bounds = tc.bounds
		for level := 1; level <= 8; level++ {
			l := GenerateLayout(level, 9, p)
			if l.Border != tc.wantBorder {
				t.Errorf("%v: Border = %d, expected %d", tc.bounds, l.Border, tc.wantBorder)
			}
			if got, limit := len(l.Interior()), p.WallsPerLevel(level); got > limit {
				t.Errorf("%v level %d: %d interior walls, limit %d", tc.bounds, level, got, limit)
			}
			if got, limit := len(l.Hazards), p.HazardsPerLevel(level); got > limit {
				t.Errorf("%v level %d: %d hazards, limit %d", tc.bounds, level, got, limit)
			}
			if l.Level != level {
				t.Errorf("Level = %d, expected %d", l.Level, level)
			}
			if l.Attempts < 1 {
				t.Errorf("Attempts = %d, expected at least 1", l.Attempts)
			}
		}
	}
}

func TestGenerateLayoutClampsLevel(t *testing.T) {
	l := GenerateLayout(0, 1, DefaultParams())
	if l.Level != 1 {
		t.Errorf("Level = %d, expected 1", l.Level)
	}
}

func TestSolvableDetectsBlockedField(t *testing.T) {
	p := DefaultParams()
	l := Layout{
		Level: 1,
		Field: Size{W: 160, H: 90},
		Start: Vec{X: 20, Y: 45},
		Goal:  Circle{Center: Vec{X: 140, Y: 45}, Radius: p.GoalRadius},
		// A full-height wall splits the field in two.
		Walls: []Wall{{X: 80, Y: 0, W: 3, H: 90}},
	}

	if Solvable(l, p) {
		t.Fatal("Solvable() = true for a split field")
	}

	pruned := prune(l, p)
	if !Solvable(pruned, p) {
		t.Error("prune() result is still unsolvable")
	}
	if len(pruned.Walls) != 0 {
		t.Errorf("prune() kept %d walls, expected 0", len(pruned.Walls))
	}
}

func TestPruneDropsHazardsFirst(t *testing.T) {
	p := DefaultParams()
	l := Layout{
		Level: 1,
		Field: Size{W: 160, H: 90},
		Start: Vec{X: 20, Y: 45},
		Goal:  Circle{Center: Vec{X: 140, Y: 45}, Radius: p.GoalRadius},
		Walls: []Wall{{X: 60, Y: 0, W: 3, H: 40}},
		// A hazard wall closing the gap under the interior wall.
		Hazards: []Circle{
			{Center: Vec{X: 61, Y: 44}, Radius: p.HazardRadius},
			{Center: Vec{X: 61, Y: 50}, Radius: p.HazardRadius},
			{Center: Vec{X: 61, Y: 56}, Radius: p.HazardRadius},
			{Center: Vec{X: 61, Y: 62}, Radius: p.HazardRadius},
			{Center: Vec{X: 61, Y: 68}, Radius: p.HazardRadius},
			{Center: Vec{X: 61, Y: 74}, Radius: p.HazardRadius},
			{Center: Vec{X: 61, Y: 80}, Radius: p.HazardRadius},
			{Center: Vec{X: 61, Y: 86}, Radius: p.HazardRadius},
		},
	}
	if Solvable(l, p) {
		t.Fatal("setup: expected the hazard line to block the field")
	}

	pruned := prune(l, p)
	if !Solvable(pruned, p) {
		t.Fatal("prune() result is still unsolvable")
	}
	if len(pruned.Walls) != 1 {
		t.Errorf("prune() removed walls before exhausting hazards")
	}
	if len(pruned.Hazards) >= len(l.Hazards) {
		t.Errorf("prune() kept all %d hazards", len(pruned.Hazards))
	}
}

func TestRampAt(t *testing.T) {
	tests := []struct {
		ramp  Ramp
		level int
		want  int
	}{
		{Ramp{Base: 4, PerLevel: 2, Max: 16}, 1, 4},
		{Ramp{Base: 4, PerLevel: 2, Max: 16}, 3, 8},
		{Ramp{Base: 4, PerLevel: 2, Max: 16}, 50, 16},
		{Ramp{Base: 4, PerLevel: 2, Max: 16}, 0, 4},  // levels below 1 act as 1
		{Ramp{Base: 3, PerLevel: 0, Max: 0}, 9, 3},   // flat, no cap
		{Ramp{Base: -2, PerLevel: 1, Max: 0}, 1, 0},  // never negative
	}

	for _, tc := range tests {
		if got := tc.ramp.At(tc.level); got != tc.want {
			t.Errorf("%+v.At(%d) = %d, expected %d", tc.ramp, tc.level, got, tc.want)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero sensitivity", func(p *Params) { p.Sensitivity = 0 }},
		{"negative ball", func(p *Params) { p.BallRadius = -1 }},
		{"zero goal", func(p *Params) { p.GoalRadius = 0 }},
		{"epsilon swallows hazard", func(p *Params) { p.HazardEpsilon = p.HazardRadius }},
		{"zero timer", func(p *Params) { p.TimerBudget = 0 }},
		{"tiny field", func(p *Params) { p.Field = Size{W: 10, H: 10} }},
		{"missing ramps", func(p *Params) { p.WallsPerLevel = nil }},
		{"NaN sensitivity", func(p *Params) { p.Sensitivity = math.NaN() }},
		{"NaN field width", func(p *Params) { p.Field.W = math.NaN() }},
		{"infinite field height", func(p *Params) { p.Field.H = math.Inf(1) }},
		{"NaN hazard epsilon", func(p *Params) { p.HazardEpsilon = math.NaN() }},
		{"huge field", func(p *Params) { p.Field = Size{W: 100000, H: 100000} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() = %v, expected ErrInvalidParams", err)
			}
		})
	}
}

func TestParsePolicies(t *testing.T) {
	if p, err := ParseCollisionPolicy("slide"); err != nil || p != CollideSlide {
		t.Errorf("ParseCollisionPolicy(slide) = %v, %v", p, err)
	}
	if p, err := ParseCollisionPolicy(""); err != nil || p != CollideReject {
		t.Errorf("ParseCollisionPolicy(\"\") = %v, %v", p, err)
	}
	if _, err := ParseCollisionPolicy("bounce"); err == nil {
		t.Error("ParseCollisionPolicy(bounce) should fail")
	}
	if p, err := ParseBoundsPolicy("clamp"); err != nil || p != BoundsClamp {
		t.Errorf("ParseBoundsPolicy(clamp) = %v, %v", p, err)
	}
	if _, err := ParseBoundsPolicy("wrap"); err == nil {
		t.Error("ParseBoundsPolicy(wrap) should fail")
	}
}
