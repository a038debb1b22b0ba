package tiltmaze

import (
	"github.com/vovakirdan/tilt-maze/internal/maze"
	"github.com/vovakirdan/tilt-maze/internal/registry"
)

// Variant names a registered flavor of the maze.
type Variant struct {
	ID          string
	Title       string
	Description string

	// Policy overrides; nil keeps whatever the config selects.
	Collision *maze.CollisionPolicy
	Bounds    *maze.BoundsPolicy
}

func (v Variant) apply(p *maze.Params) {
	if v.Collision != nil {
		p.Collision = *v.Collision
	}
	if v.Bounds != nil {
		p.Bounds = *v.Bounds
	}
}

// Params loads the current config and applies the variant's overrides.
func (v Variant) Params() (maze.Params, error) {
	cfg, err := CurrentConfig()
	if err != nil {
		return maze.Params{}, err
	}
	p, err := cfg.Params()
	if err != nil {
		return maze.Params{}, err
	}
	v.apply(&p)
	return p, nil
}

func policy[T any](v T) *T { return &v }

// Variants lists every registered variant.
var Variants = []Variant{
	{
		ID:          "maze",
		Title:       "Tilt Maze",
		Description: "Walled field, blocked moves are rejected",
	},
	{
		ID:          "maze_clamp",
		Title:       "Tilt Maze (open edges)",
		Description: "No border walls, the ball is clamped to the field",
		Bounds:      policy(maze.BoundsClamp),
	},
	{
		ID:          "maze_slide",
		Title:       "Tilt Maze (slide)",
		Description: "Blocked moves slide along walls",
		Collision:   policy(maze.CollideSlide),
	},
}

// LookupVariant finds a variant by ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		info := registry.Info{ID: v.ID, Title: v.Title, Description: v.Description}
		registry.Register(info, func() registry.Game {
			return New(v)
		})
	}
}
