package maze

// Simulator owns the state of one maze session: the current level layout,
// the ball, the run state, and the countdown.
//
// A Simulator is not safe for concurrent use. The host must deliver Step and
// Tick calls from a single goroutine (for example one UI event loop).
type Simulator struct {
	params Params
	seed   int64

	layout    Layout
	ball      Vec
	state     RunState
	reason    LossReason
	remaining int
	steps     uint64
}

// New creates a simulator positioned at the start of the given level.
func New(p Params, seed int64, level int) *Simulator {
	s := &Simulator{params: p, seed: seed}
	s.Reset(level)
	return s
}

// NewWithLayout creates a simulator on a prepared layout instead of a
// generated one. Later levels are still generated from the layout's seed.
func NewWithLayout(p Params, l Layout) *Simulator {
	if l.Level < 1 {
		l.Level = 1
	}
	s := &Simulator{params: p, seed: l.Seed, layout: l.Clone()}
	s.Restart()
	return s
}

// Params returns the parameters the simulator was built with.
func (s *Simulator) Params() Params {
	return s.params
}

// Seed returns the layout seed shared by all levels of this session.
func (s *Simulator) Seed() int64 {
	return s.seed
}

// Layout returns a copy of the current level geometry.
func (s *Simulator) Layout() Layout {
	return s.layout.Clone()
}

// Snapshot returns the presentation view of the current state.
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Ball:          s.ball,
		State:         s.state,
		Reason:        s.reason,
		TimeRemaining: s.remaining,
		Level:         s.layout.Level,
		Seed:          s.seed,
		Steps:         s.steps,
	}
}

// Reset jumps to a level, regenerating its layout and starting a fresh run.
func (s *Simulator) Reset(level int) {
	if level < 1 {
		level = 1
	}
	s.layout = GenerateLayout(level, s.seed, s.params)
	s.Restart()
}

// Restart puts the ball back at the start of the current level with a full
// timer. The level does not change.
func (s *Simulator) Restart() {
	s.ball = s.layout.Start
	s.state = Playing
	s.reason = LossNone
	s.remaining = s.params.TimerBudget
	s.steps = 0
}

// AdvanceLevel acknowledges a win and moves to the next level. It does
// nothing and returns false unless the run is Won.
func (s *Simulator) AdvanceLevel() bool {
	if s.state != Won {
		return false
	}
	s.Reset(s.layout.Level + 1)
	return true
}

// Step consumes one motion sample. Outside Playing it only reports the
// current snapshot.
func (s *Simulator) Step(in Sample) Snapshot {
	if s.state != Playing {
		return s.Snapshot()
	}
	s.steps++

	in = in.Finite()
	if in.IsZero() {
		return s.Snapshot()
	}

	delta := Vec{X: in.AX, Y: in.AY}.Scale(s.params.Sensitivity)
	next, moved := s.resolve(delta)
	if !moved {
		return s.Snapshot()
	}
	s.ball = next

	lossR := s.params.HazardRadius - s.params.HazardEpsilon
	for _, h := range s.layout.Hazards {
		if h.Within(s.ball, lossR) {
			s.lose(LossHazard)
			return s.Snapshot()
		}
	}

	if s.layout.Goal.Within(s.ball, s.layout.Goal.Radius) {
		s.state = Won
	}
	return s.Snapshot()
}

// Tick advances the countdown by one second. Outside Playing it does nothing.
func (s *Simulator) Tick() Snapshot {
	if s.state != Playing {
		return s.Snapshot()
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.lose(LossTimeout)
	}
	return s.Snapshot()
}

func (s *Simulator) lose(reason LossReason) {
	s.state = Lost
	s.reason = reason
}

// resolve applies the bounds and collision policies to a move and returns
// the committed position.
func (s *Simulator) resolve(delta Vec) (Vec, bool) {
	candidates := []Vec{s.ball.Add(delta)}
	if s.params.Collision == CollideSlide {
		candidates = append(candidates,
			Vec{X: s.ball.X + delta.X, Y: s.ball.Y},
			Vec{X: s.ball.X, Y: s.ball.Y + delta.Y},
		)
	}

	for _, c := range candidates {
		c = s.bound(c)
		if c == s.ball || !s.inField(c) {
			continue
		}
		if !hitsWall(s.layout.Walls, c, s.params.BallRadius) {
			return c, true
		}
	}
	return s.ball, false
}

// inField rejects moves large enough to jump across the border walls.
func (s *Simulator) inField(c Vec) bool {
	r := s.params.BallRadius
	f := s.layout.Field
	return c.X-r >= 0 && c.X+r <= f.W && c.Y-r >= 0 && c.Y+r <= f.H
}

func (s *Simulator) bound(c Vec) Vec {
	if s.params.Bounds != BoundsClamp {
		return c
	}
	r := s.params.BallRadius
	f := s.layout.Field
	return Vec{
		X: clampF(c.X, r, f.W-r),
		Y: clampF(c.Y, r, f.H-r),
	}
}
