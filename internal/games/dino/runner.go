package dino

import (
	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/core"
)

// Runner is the player entity. X stays at the configured anchor; only the
// vertical axis is simulated.
type Runner struct {
	X         float64 // left edge (fixed)
	Y         float64 // top edge; equals ground_y while standing on the ground
	Width     float64
	Height    float64
	VelocityY float64 // negative = moving up
	Airborne  bool
	Crouching bool

	gravity      float64
	jumpVelocity float64
	groundY      float64
	normal       config.Size
	ducked       config.Size
}

// NewRunner creates a runner standing on the ground at its anchor.
func NewRunner(cfg config.DinoConfig) Runner {
	return Runner{
		X:            cfg.Runner.X,
		Y:            cfg.Playfield.GroundY,
		Width:        cfg.Runner.Width,
		Height:       cfg.Runner.Height,
		gravity:      cfg.Physics.Gravity,
		jumpVelocity: cfg.Physics.JumpVelocity,
		groundY:      cfg.Playfield.GroundY,
		normal:       config.Size{W: cfg.Runner.Width, H: cfg.Runner.Height},
		ducked:       config.Size{W: cfg.Runner.DuckWidth, H: cfg.Runner.DuckHeight},
	}
}

// Jump starts a jump if the runner is on the ground. Crouching is cancelled.
// Returns whether the jump was initiated.
func (r *Runner) Jump() bool {
	if r.Airborne {
		return false
	}
	r.VelocityY = r.jumpVelocity
	r.Airborne = true
	r.Crouching = false
	r.resize()
	return true
}

// Crouch switches to the ducking box if the runner is on the ground.
// Returns whether crouching was newly applied.
func (r *Runner) Crouch() bool {
	if r.Airborne || r.Crouching {
		return false
	}
	r.Crouching = true
	r.resize()
	return true
}

// Stand leaves the crouch. Idempotent.
func (r *Runner) Stand() {
	if !r.Crouching {
		return
	}
	r.Crouching = false
	r.resize()
}

// Advance integrates one tick of vertical motion. Grounded runners don't move.
func (r *Runner) Advance() {
	if !r.Airborne {
		return
	}

	r.VelocityY += r.gravity
	r.Y += r.VelocityY

	// Landed
	if r.Y >= r.groundY {
		r.Y = r.groundY
		r.VelocityY = 0
		r.Airborne = false
		r.resize()
	}
}

// Box returns the current collision box.
func (r Runner) Box() core.Box {
	return core.NewBox(r.X, r.Y, r.Width, r.Height)
}

// resize applies the box for the current flags, keeping the bottom edge fixed.
func (r *Runner) resize() {
	size := r.normal
	if r.Crouching && !r.Airborne {
		size = r.ducked
	}
	if r.Height == size.H && r.Width == size.W {
		return
	}
	bottom := r.Y + r.Height
	r.Width = size.W
	r.Height = size.H
	r.Y = bottom - r.Height
}
