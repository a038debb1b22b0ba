package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)
	if r.Right() != 13 || r.Bottom() != 10 {
		t.Errorf("edges = %d,%d, expected 13,10", r.Right(), r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		n     int
		want  Rect
		empty bool
	}{
		{"one cell", NewRect(0, 1, 80, 23), 1, NewRect(1, 2, 78, 21), false},
		{"zero", NewRect(2, 2, 5, 5), 0, NewRect(2, 2, 5, 5), false},
		{"collapses", NewRect(0, 0, 3, 10), 2, NewRect(2, 2, 0, 6), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Inset(tc.n)
			if got != tc.want {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.want)
			}
			if got.Empty() != tc.empty {
				t.Errorf("Empty() = %v, expected %v", got.Empty(), tc.empty)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
