package maze

// RunState is the phase of a single maze attempt.
type RunState int

const (
	Playing RunState = iota
	Won
	Lost
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// LossReason says why a run ended in Lost. It is LossNone in other states.
type LossReason int

const (
	LossNone LossReason = iota
	LossHazard
	LossTimeout
)

// String returns a human-readable name for the reason.
func (r LossReason) String() string {
	switch r {
	case LossNone:
		return "none"
	case LossHazard:
		return "hazard"
	case LossTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Snapshot is the read-only view handed to the presentation layer after
// every step and tick.
type Snapshot struct {
	Ball          Vec
	State         RunState
	Reason        LossReason
	TimeRemaining int
	Level         int
	Seed          int64
	Steps         uint64 // Motion samples consumed on this level attempt
}
