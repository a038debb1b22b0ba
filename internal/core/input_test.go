package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionTiltLeft)
	f.Set(ActionPause)

	if !f.Has(ActionTiltLeft) || !f.Has(ActionPause) {
		t.Error("Has() missed a set action")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) = true for unset action")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() left actions behind")
	}
	if !clone.Has(ActionTiltLeft) {
		t.Error("Clone() shares storage with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame reports an action")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set() on zero frame was lost")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionTiltUp, "TiltUp"},
		{ActionLevel, "Level"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
