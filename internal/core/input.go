package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionTiltUp           // W, Up arrow
	ActionTiltDown         // S, Down arrow
	ActionTiltLeft         // A, Left arrow
	ActionTiltRight        // D, Right arrow
	ActionLevel            // Space - flatten the board
	ActionConfirm          // Enter - start / next level / menu select
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart current level
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionTiltUp:    "TiltUp",
	ActionTiltDown:  "TiltDown",
	ActionTiltLeft:  "TiltLeft",
	ActionTiltRight: "TiltRight",
	ActionLevel:     "Level",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input collected between two simulation ticks.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no actions were triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
