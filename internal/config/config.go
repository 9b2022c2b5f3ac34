// Package config provides YAML-based configuration loading for the runner
// simulation and the environment wrapper around it.
package config

// DinoConfig contains the immutable physics constants of the runner game.
// All simulation components read it; nothing mutates it after loading.
type DinoConfig struct {
	Physics     DinoPhysics     `yaml:"physics"`
	Playfield   DinoPlayfield   `yaml:"playfield"`
	Runner      DinoRunner      `yaml:"runner"`
	Obstacles   DinoObstacles   `yaml:"obstacles"`
	Decorations DinoDecorations `yaml:"decorations"`
	Observation DinoObservation `yaml:"observation"`
}

// DinoPhysics defines vertical kinematics and horizontal speed progression.
type DinoPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpVelocity   float64 `yaml:"jump_velocity"` // negative = up
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	MaxSpeed       float64 `yaml:"max_speed"`
}

// DinoPlayfield defines the simulated world size. Y grows downward.
type DinoPlayfield struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // top of the standing runner
}

// DinoRunner defines the player's anchor and the two bounding-box pairs.
type DinoRunner struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DuckWidth  float64 `yaml:"duck_width"`
	DuckHeight float64 `yaml:"duck_height"`
}

// Size is a (width, height) pair used for obstacle variants.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// DinoObstacles defines obstacle shapes and the spawn gap range.
type DinoObstacles struct {
	MinGap            int       `yaml:"min_gap"`
	MaxGap            int       `yaml:"max_gap"`
	CactusVariants    []Size    `yaml:"cactus_variants"`
	BirdFlightHeights []float64 `yaml:"bird_flight_heights"` // height of the bird's top above the ground line
	BirdWidth         float64   `yaml:"bird_width"`
	BirdHeight        float64   `yaml:"bird_height"`
}

// DinoDecorations defines the cosmetic cloud layer.
type DinoDecorations struct {
	MinSpawnRate int     `yaml:"min_spawn_rate"`
	MaxSpawnRate int     `yaml:"max_spawn_rate"`
	Speed        float64 `yaml:"speed"`
	MinY         int     `yaml:"min_y"`
	MaxY         int     `yaml:"max_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// DinoObservation holds the divisors used by the feature encoding that are
// not derived from the playfield.
type DinoObservation struct {
	VelocityScale float64 `yaml:"velocity_scale"`
	SizeScale     float64 `yaml:"size_scale"`
}

// GroundLine returns the y coordinate of the ground surface, i.e. the bottom
// edge of a standing runner.
func (c DinoConfig) GroundLine() float64 {
	return c.Playfield.GroundY + c.Runner.Height
}

// EnvConfig contains the control-loop settings: reward shaping and episode
// length limits.
type EnvConfig struct {
	ID              string        `yaml:"id"`
	MaxEpisodeSteps int           `yaml:"max_episode_steps"` // 0 = unlimited
	RewardThreshold float64       `yaml:"reward_threshold"`
	Rewards         RewardsConfig `yaml:"rewards"`
}

// RewardsConfig defines how a tick outcome is turned into a scalar reward.
type RewardsConfig struct {
	StepReward       float64 `yaml:"step_reward"`
	ObstacleReward   float64 `yaml:"obstacle_reward"`
	CollisionPenalty float64 `yaml:"collision_penalty"`
}
