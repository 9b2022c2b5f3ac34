package dino

// Feature layout of Snapshot.Vector.
const (
	RunnerFeatures    = 5
	ObstacleFeatures  = 5
	ObservedObstacles = 3
	FeatureCount      = RunnerFeatures + ObstacleFeatures*ObservedObstacles
)

// Snapshot is a read-only view of the engine after a tick.
//
// Vector layout:
//
//	[0] runner y / playfield height
//	[1] runner vertical velocity / velocity scale
//	[2] airborne (0/1)
//	[3] crouching (0/1)
//	[4] speed / max speed
//	then for each of the 3 nearest upcoming obstacles (zero-padded):
//	    (x - runner x) / playfield width, y / playfield height,
//	    width / size scale, height / size scale, 1 for ground else 0
type Snapshot struct {
	Vector      [FeatureCount]float64
	Score       int
	Speed       float64
	Terminated  bool
	Runner      Runner
	Obstacles   int // active obstacles
	Decorations int // active decorations
	Upcoming    int // obstacles encoded in Vector
}

// Snapshot encodes the current state. It has no side effects.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Score:       e.score,
		Speed:       e.speed,
		Terminated:  e.terminated,
		Runner:      e.runner,
		Obstacles:   len(e.obstacles),
		Decorations: len(e.decorations),
	}

	width := e.cfg.Playfield.Width
	height := e.cfg.Playfield.Height
	sizeScale := e.cfg.Observation.SizeScale

	r := e.runner
	s.Vector[0] = r.Y / height
	s.Vector[1] = r.VelocityY / e.cfg.Observation.VelocityScale
	s.Vector[2] = boolFeature(r.Airborne)
	s.Vector[3] = boolFeature(r.Crouching)
	s.Vector[4] = e.speed / e.cfg.Physics.MaxSpeed

	upcoming := e.UpcomingObstacles(ObservedObstacles)
	s.Upcoming = len(upcoming)
	for i, o := range upcoming {
		base := RunnerFeatures + i*ObstacleFeatures
		s.Vector[base+0] = (o.X - r.X) / width
		s.Vector[base+1] = o.Y / height
		s.Vector[base+2] = o.Width / sizeScale
		s.Vector[base+3] = o.Height / sizeScale
		s.Vector[base+4] = boolFeature(o.Kind == KindGround)
	}

	return s
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
