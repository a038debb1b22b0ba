package maze

import (
	"math"
	"math/rand"
)

// maxLayoutAttempts bounds how many random layouts are drawn before the last
// one is pruned into a solvable shape.
const maxLayoutAttempts = 48

// Layout is the immutable geometry of one level.
type Layout struct {
	Level    int
	Seed     int64
	Field    Size
	Start    Vec
	Goal     Circle
	Walls    []Wall // Border walls first, then interior walls
	Border   int    // Number of leading border walls in Walls
	Hazards  []Circle
	Attempts int // Random draws used; 0 for hand-built layouts
}

// Interior returns the walls that are not part of the border.
func (l Layout) Interior() []Wall {
	return l.Walls[l.Border:]
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (l Layout) Clone() Layout {
	c := l
	c.Walls = append([]Wall(nil), l.Walls...)
	c.Hazards = append([]Circle(nil), l.Hazards...)
	return c
}

// GenerateLayout builds the walls, hazards, start, and goal for a level.
// The result depends only on its arguments, and every returned layout has a
// path from the start to the goal.
func GenerateLayout(level int, seed int64, p Params) Layout {
	if level < 1 {
		level = 1
	}
	rng := rand.New(rand.NewSource(mixSeed(seed, level)))

	var l Layout
	for attempt := 1; attempt <= maxLayoutAttempts; attempt++ {
		l = drawLayout(rng, level, seed, p)
		l.Attempts = attempt
		if Solvable(l, p) {
			return l
		}
	}
	return prune(l, p)
}

// mixSeed spreads (seed, level) over the whole int64 range so neighbouring
// levels do not share random streams.
func mixSeed(seed int64, level int) int64 {
	z := uint64(seed) + uint64(level)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}

func drawLayout(rng *rand.Rand, level int, seed int64, p Params) Layout {
	f := p.Field
	r := p.BallRadius

	margin := 0.0
	if p.Bounds == BoundsWalls {
		margin = p.WallThickness
	}

	l := Layout{
		Level: level,
		Seed:  seed,
		Field: f,
	}

	// Start in the left band, goal in the right band.
	pad := margin + r + 1
	l.Start = Vec{
		X: pad + rng.Float64()*f.W*0.08,
		Y: pad + rng.Float64()*(f.H-2*pad),
	}
	goalPad := margin + p.GoalRadius + 1
	l.Goal = Circle{
		Center: Vec{
			X: f.W - goalPad - rng.Float64()*f.W*0.08,
			Y: goalPad + rng.Float64()*(f.H-2*goalPad),
		},
		Radius: p.GoalRadius,
	}

	if p.Bounds == BoundsWalls {
		t := p.WallThickness
		l.Walls = append(l.Walls,
			Wall{X: 0, Y: 0, W: f.W, H: t},
			Wall{X: 0, Y: f.H - t, W: f.W, H: t},
			Wall{X: 0, Y: 0, W: t, H: f.H},
			Wall{X: f.W - t, Y: 0, W: t, H: f.H},
		)
		l.Border = len(l.Walls)
	}

	for range p.wallsAt(level) {
		if w, ok := placeWall(rng, l, p, margin); ok {
			l.Walls = append(l.Walls, w)
		}
	}

	for range p.hazardsAt(level) {
		if h, ok := placeHazard(rng, l, p, margin); ok {
			l.Hazards = append(l.Hazards, h)
		}
	}

	return l
}

func placeWall(rng *rand.Rand, l Layout, p Params, margin float64) (Wall, bool) {
	f := p.Field
	t := p.WallThickness
	r := p.BallRadius

	for range 20 {
		var w Wall
		if rng.Intn(2) == 0 {
			w.W = f.W * (0.15 + 0.30*rng.Float64())
			w.H = t
		} else {
			w.W = t
			w.H = f.H * (0.15 + 0.30*rng.Float64())
		}
		w.X = margin + rng.Float64()*math.Max(0, f.W-2*margin-w.W)
		w.Y = margin + rng.Float64()*math.Max(0, f.H-2*margin-w.H)

		if w.OverlapsBall(l.Start, 2*r) {
			continue
		}
		if w.OverlapsBall(l.Goal.Center, l.Goal.Radius+r) {
			continue
		}
		return w, true
	}
	return Wall{}, false
}

func placeHazard(rng *rand.Rand, l Layout, p Params, margin float64) (Circle, bool) {
	f := p.Field
	hr := p.HazardRadius
	r := p.BallRadius

	for range 30 {
		c := Vec{
			X: margin + hr + rng.Float64()*math.Max(0, f.W-2*(margin+hr)),
			Y: margin + hr + rng.Float64()*math.Max(0, f.H-2*(margin+hr)),
		}
		if c.Dist(l.Start) < hr+2*r {
			continue
		}
		if c.Dist(l.Goal.Center) < hr+l.Goal.Radius+r {
			continue
		}
		if hitsWall(l.Walls, c, hr) {
			continue
		}
		clash := false
		for _, h := range l.Hazards {
			if c.Dist(h.Center) < 2*hr {
				clash = true
				break
			}
		}
		if clash {
			continue
		}
		return Circle{Center: c, Radius: hr}, true
	}
	return Circle{}, false
}

// prune removes hazards and then interior walls, newest first, until the
// layout becomes solvable.
func prune(l Layout, p Params) Layout {
	for !Solvable(l, p) {
		switch {
		case len(l.Hazards) > 0:
			l.Hazards = l.Hazards[:len(l.Hazards)-1]
		case len(l.Walls) > l.Border:
			l.Walls = l.Walls[:len(l.Walls)-1]
		default:
			return l
		}
	}
	return l
}

func hitsWall(walls []Wall, c Vec, r float64) bool {
	for _, w := range walls {
		if w.OverlapsBall(c, r) {
			return true
		}
	}
	return false
}

// Solvable reports whether a ball center can travel from the layout's start
// to inside the goal without overlapping a wall or entering a hazard. It
// flood-fills a one-unit grid of ball-center positions.
func Solvable(l Layout, p Params) bool {
	nx := int(math.Floor(l.Field.W))
	ny := int(math.Floor(l.Field.H))
	if nx <= 0 || ny <= 0 {
		return false
	}
	r := p.BallRadius
	lossR := p.HazardRadius - p.HazardEpsilon

	free := func(i, j int) bool {
		c := Vec{X: float64(i) + 0.5, Y: float64(j) + 0.5}
		if c.X < r || c.X > l.Field.W-r || c.Y < r || c.Y > l.Field.H-r {
			return false
		}
		if hitsWall(l.Walls, c, r) {
			return false
		}
		for _, h := range l.Hazards {
			if h.Within(c, lossR) {
				return false
			}
		}
		return true
	}

	si := clampIndex(int(l.Start.X), nx)
	sj := clampIndex(int(l.Start.Y), ny)
	if !free(si, sj) {
		return false
	}

	seen := make([]bool, nx*ny)
	seen[sj*nx+si] = true
	queue := []int{sj*nx + si}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		i, j := idx%nx, idx/nx

		c := Vec{X: float64(i) + 0.5, Y: float64(j) + 0.5}
		if l.Goal.Within(c, l.Goal.Radius) {
			return true
		}

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			ni, nj := i+d[0], j+d[1]
			if ni < 0 || nj < 0 || ni >= nx || nj >= ny {
				continue
			}
			n := nj*nx + ni
			if seen[n] {
				continue
			}
			seen[n] = true
			if free(ni, nj) {
				queue = append(queue, n)
			}
		}
	}
	return false
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
