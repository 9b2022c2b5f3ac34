package dino

import (
	"github.com/vovakirdan/dino-gym/internal/config"
	"github.com/vovakirdan/dino-gym/internal/core"
)

// ObstacleKind discriminates the two obstacle variants.
type ObstacleKind uint8

const (
	// KindGround obstacles (cacti) rest on the ground line and must be jumped.
	KindGround ObstacleKind = iota
	// KindAirborne obstacles (birds) fly at one of the configured heights.
	KindAirborne
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Obstacle is a moving hazard. Kind selects how Variant is interpreted:
// an index into cactus_variants for KindGround, an index into
// bird_flight_heights for KindAirborne.
type Obstacle struct {
	Kind    ObstacleKind
	Variant int
	X, Y    float64 // top-left corner
	Width   float64
	Height  float64
	Speed   float64 // tracks the global game speed
}

// NewGroundObstacle creates a cactus of the given variant resting on the ground line.
func NewGroundObstacle(cfg config.DinoConfig, variant int, x, speed float64) Obstacle {
	size := cfg.Obstacles.CactusVariants[variant]
	return Obstacle{
		Kind:    KindGround,
		Variant: variant,
		X:       x,
		Y:       cfg.GroundLine() - size.H,
		Width:   size.W,
		Height:  size.H,
		Speed:   speed,
	}
}

// NewAirborneObstacle creates a bird at the given flight level.
// The flight height is measured from the ground line up to the bird's top edge.
func NewAirborneObstacle(cfg config.DinoConfig, level int, x, speed float64) Obstacle {
	return Obstacle{
		Kind:    KindAirborne,
		Variant: level,
		X:       x,
		Y:       cfg.GroundLine() - cfg.Obstacles.BirdFlightHeights[level],
		Width:   cfg.Obstacles.BirdWidth,
		Height:  cfg.Obstacles.BirdHeight,
		Speed:   speed,
	}
}

// Box returns the collision box for this obstacle.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Right returns the trailing edge of the obstacle.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

func (o *Obstacle) advance() {
	o.X -= o.Speed
}

// Decoration is a purely cosmetic cloud. It never collides and its speed
// is independent of the game speed.
type Decoration struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
}

// NewDecoration creates a cloud at the given position.
func NewDecoration(cfg config.DinoConfig, x, y float64) Decoration {
	return Decoration{
		X:      x,
		Y:      y,
		Width:  cfg.Decorations.Width,
		Height: cfg.Decorations.Height,
		Speed:  cfg.Decorations.Speed,
	}
}

// Box returns the drawing box for this decoration.
func (d Decoration) Box() core.Box {
	return core.NewBox(d.X, d.Y, d.Width, d.Height)
}

func (d *Decoration) advance() {
	d.X -= d.Speed
}

// offScreen reports whether a box has fully left the playfield on the left.
func offScreen(b core.Box) bool {
	return b.Right() < 0
}
