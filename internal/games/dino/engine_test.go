package dino

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/dino-gym/internal/config"
)

func TestEngineInitialState(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 1)

	if e.Score() != 0 || e.Terminated() {
		t.Errorf("fresh engine: score=%d terminated=%v", e.Score(), e.Terminated())
	}
	if e.Speed() != cfg.Physics.BaseSpeed {
		t.Errorf("speed = %v, expected base %v", e.Speed(), cfg.Physics.BaseSpeed)
	}
	if len(e.Obstacles()) != 0 || len(e.Decorations()) != 0 {
		t.Error("fresh engine should have no entities")
	}
	if e.Runner() != NewRunner(cfg) {
		t.Error("runner should be in its anchored ground pose")
	}
}

func TestEngineIdempotentTermination(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 5)

	// Already overlapping the standing runner
	e.PlaceObstacle(NewGroundObstacle(cfg, 0, 60, cfg.Physics.BaseSpeed))

	if err := e.Update(ActionIdle); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if !e.Terminated() {
		t.Fatal("overlap should terminate the episode")
	}
	if e.Score() != 0 {
		t.Errorf("terminating tick must not score, got %d", e.Score())
	}
	if e.Speed() != cfg.Physics.BaseSpeed {
		t.Errorf("terminating tick must not speed up, got %v", e.Speed())
	}

	frozen := e.Snapshot()
	obstacles := e.Obstacles()
	decorations := e.Decorations()
	for i := 0; i < 50; i++ {
		for a := ActionIdle; a <= ActionDuck; a++ {
			if err := e.Update(a); err != nil {
				t.Fatalf("Update() after termination failed: %v", err)
			}
		}
	}
	if e.Snapshot() != frozen {
		t.Error("snapshot changed after termination")
	}
	if !slices.Equal(e.Obstacles(), obstacles) || !slices.Equal(e.Decorations(), decorations) {
		t.Error("entities moved after termination")
	}
}

func TestEngineDuckUnderLowBird(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 5)

	lowest := len(cfg.Obstacles.BirdFlightHeights) - 1
	e.PlaceObstacle(NewAirborneObstacle(cfg, lowest, 60, cfg.Physics.BaseSpeed))

	if err := e.Update(ActionDuck); err != nil {
		t.Fatal(err)
	}
	if e.Terminated() {
		t.Fatal("ducking runner should pass under the lowest bird")
	}
	if !e.Runner().Crouching {
		t.Error("runner should be crouching")
	}

	// Standing up under the bird is fatal
	if err := e.Update(ActionIdle); err != nil {
		t.Fatal(err)
	}
	if !e.Terminated() {
		t.Error("standing runner should hit the lowest bird")
	}
}

func TestEngineDecorationsNeverCollide(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 5)
	e.decorations = append(e.decorations, NewDecoration(cfg, 60, 210))

	if err := e.Update(ActionIdle); err != nil {
		t.Fatal(err)
	}
	if e.Terminated() {
		t.Error("decorations must not collide with the runner")
	}
}

func TestEngineInvalidAction(t *testing.T) {
	e := NewEngine(config.DefaultDinoConfig(), 5)
	for i := 0; i < 10; i++ {
		e.Update(ActionIdle)
	}
	before := e.Snapshot()

	for _, a := range []Action{-1, 3, 42} {
		err := e.Update(a)
		if !errors.Is(err, ErrInvalidAction) {
			t.Errorf("Update(%d) should fail with ErrInvalidAction, got %v", a, err)
		}
	}
	if e.Snapshot() != before {
		t.Error("rejected action must not change state")
	}
}

func TestEngineSpeedMonotonic(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 11)
	rng := rand.New(rand.NewSource(11))

	prev := e.Speed()
	for i := 0; i < 5000 && !e.Terminated(); i++ {
		e.Update(Action(rng.Intn(NumActions)))
		if e.Speed() < prev {
			t.Fatalf("speed decreased at tick %d: %v -> %v", i, prev, e.Speed())
		}
		if e.Speed() > cfg.Physics.MaxSpeed {
			t.Fatalf("speed %v exceeds max %v", e.Speed(), cfg.Physics.MaxSpeed)
		}
		prev = e.Speed()
	}
}

func TestEngineSpeedClampsAtMax(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Physics.SpeedIncrement = 1.0
	cfg.Obstacles.MinGap, cfg.Obstacles.MaxGap = 1_000_000, 1_000_000 // nothing spawns
	e := NewEngine(cfg, 1)

	for i := 0; i < 20; i++ {
		e.Update(ActionIdle)
		if e.Speed() > cfg.Physics.MaxSpeed {
			t.Fatalf("speed %v exceeds max", e.Speed())
		}
	}
	if e.Speed() != cfg.Physics.MaxSpeed {
		t.Errorf("speed should settle at max, got %v", e.Speed())
	}
	if e.Score() != 20 {
		t.Errorf("score = %d, expected 20", e.Score())
	}
}

func TestEngineSpeedPropagatesToObstacles(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Obstacles.MinGap, cfg.Obstacles.MaxGap = 1_000_000, 1_000_000
	e := NewEngine(cfg, 1)
	e.PlaceObstacle(NewGroundObstacle(cfg, 0, 500, 1))

	e.Update(ActionIdle)
	obstacles := e.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(obstacles))
	}
	if obstacles[0].X != 499 {
		t.Errorf("obstacle should move by its own speed first, x=%v", obstacles[0].X)
	}
	if obstacles[0].Speed != e.Speed() {
		t.Errorf("obstacle speed %v should track game speed %v", obstacles[0].Speed, e.Speed())
	}
}

func TestEngineCullsOffscreen(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Obstacles.MinGap, cfg.Obstacles.MaxGap = 1_000_000, 1_000_000
	e := NewEngine(cfg, 1)

	e.PlaceObstacle(NewGroundObstacle(cfg, 0, -10, 6)) // right edge 7 -> 1 after move: kept
	e.PlaceObstacle(NewGroundObstacle(cfg, 0, -20, 6)) // right edge -3 -> -9: culled
	e.decorations = append(e.decorations, NewDecoration(cfg, -46.5, 50))

	e.Update(ActionIdle)
	if n := len(e.Obstacles()); n != 1 {
		t.Errorf("expected 1 obstacle after culling, got %d", n)
	}
	if n := len(e.Decorations()); n != 0 {
		t.Errorf("expected off-screen cloud to be culled, got %d", n)
	}
}

func TestEngineObstaclesPassed(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 1)

	e.PlaceObstacle(NewGroundObstacle(cfg, 0, -10, 6))  // right 7
	e.PlaceObstacle(NewGroundObstacle(cfg, 0, 30, 6))   // right 47
	e.PlaceObstacle(NewGroundObstacle(cfg, 0, 40, 6))   // right 57, overlapping anchor
	e.PlaceObstacle(NewAirborneObstacle(cfg, 0, 300, 6))

	if got := e.ObstaclesPassed(); got != 2 {
		t.Errorf("ObstaclesPassed() = %d, expected 2", got)
	}
}

func TestEngineUpcomingObstacles(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 1)

	for _, x := range []float64{400, 200, 10, 500, 300} {
		e.PlaceObstacle(NewGroundObstacle(cfg, 0, x, 6))
	}

	got := e.UpcomingObstacles(3)
	want := []float64{200, 300, 400}
	if len(got) != len(want) {
		t.Fatalf("expected %d upcoming, got %d", len(want), len(got))
	}
	for i, o := range got {
		if o.X != want[i] {
			t.Errorf("upcoming[%d].X = %v, expected %v", i, o.X, want[i])
		}
	}

	if n := len(e.UpcomingObstacles(10)); n != 4 {
		t.Errorf("UpcomingObstacles(10) returned %d, expected 4", n)
	}
	if e.UpcomingObstacles(0) != nil {
		t.Error("UpcomingObstacles(0) should be empty")
	}
}

func TestSnapshotAfterReset(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 1)
	s := e.Snapshot()

	if len(s.Vector) != FeatureCount || FeatureCount != 20 {
		t.Fatalf("vector length = %d, expected 20", len(s.Vector))
	}
	if math.Abs(s.Vector[0]-200.0/300.0) > eps {
		t.Errorf("runner y feature = %v", s.Vector[0])
	}
	if s.Vector[1] != 0 || s.Vector[2] != 0 || s.Vector[3] != 0 {
		t.Errorf("grounded runner features should be zero, got %v", s.Vector[1:4])
	}
	if math.Abs(s.Vector[4]-6.0/15.0) > eps {
		t.Errorf("speed feature = %v", s.Vector[4])
	}
	for i := RunnerFeatures; i < FeatureCount; i++ {
		if s.Vector[i] != 0 {
			t.Errorf("obstacle slot %d should be zero-padded, got %v", i, s.Vector[i])
		}
	}
	if s.Upcoming != 0 || s.Obstacles != 0 || s.Score != 0 || s.Terminated {
		t.Errorf("unexpected auxiliaries: %+v", s)
	}
}

func TestSnapshotEncodesObstacles(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 1)
	e.PlaceObstacle(NewAirborneObstacle(cfg, 1, 350, 6))
	e.PlaceObstacle(NewGroundObstacle(cfg, 2, 200, 6))

	s := e.Snapshot()
	if s.Upcoming != 2 || s.Obstacles != 2 {
		t.Fatalf("expected 2 upcoming obstacles, got %d/%d", s.Upcoming, s.Obstacles)
	}

	nearest := s.Vector[RunnerFeatures : RunnerFeatures+ObstacleFeatures]
	expected := []float64{(200 - 50) / 600.0, 212 / 300.0, 51 / 100.0, 35 / 100.0, 1}
	for i := range expected {
		if math.Abs(nearest[i]-expected[i]) > eps {
			t.Errorf("nearest[%d] = %v, expected %v", i, nearest[i], expected[i])
		}
	}

	second := s.Vector[RunnerFeatures+ObstacleFeatures : RunnerFeatures+2*ObstacleFeatures]
	if second[4] != 0 {
		t.Error("airborne obstacle kind feature should be 0")
	}
	if math.Abs(second[1]-(247-100)/300.0) > eps {
		t.Errorf("bird y feature = %v", second[1])
	}

	third := s.Vector[RunnerFeatures+2*ObstacleFeatures:]
	for i, v := range third {
		if v != 0 {
			t.Errorf("third slot feature %d should be zero, got %v", i, v)
		}
	}

	// No side effects
	if e.Snapshot() != s {
		t.Error("Snapshot() must not change state")
	}
}

func TestEngineDeterminism(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	actions := make([]Action, 3000)
	rng := rand.New(rand.NewSource(2024))
	for i := range actions {
		// Mostly idle with occasional jumps and ducks
		switch n := rng.Intn(20); {
		case n == 0:
			actions[i] = ActionJump
		case n < 3:
			actions[i] = ActionDuck
		default:
			actions[i] = ActionIdle
		}
	}

	e1 := NewEngine(cfg, 12345)
	e2 := NewEngine(cfg, 12345)
	for i, a := range actions {
		e1.Update(a)
		e2.Update(a)
		if e1.Snapshot() != e2.Snapshot() {
			t.Fatalf("snapshots diverged at tick %d", i)
		}
	}

	// Reset reproduces a fresh engine
	e1.Reset(777)
	fresh := NewEngine(cfg, 777)
	for i := 0; i < 500; i++ {
		e1.Update(ActionIdle)
		fresh.Update(ActionIdle)
		if e1.Snapshot() != fresh.Snapshot() {
			t.Fatalf("reset engine diverged from fresh engine at tick %d", i)
		}
	}
}

func TestEngineIdleBoundaryScenario(t *testing.T) {
	e := NewEngine(config.DefaultDinoConfig(), 0)
	e.Reset(2)

	nonTerminal := 0
	spawned := false
	for i := 0; i < 1000; i++ {
		wasRunning := !e.Terminated()
		if err := e.Update(ActionIdle); err != nil {
			t.Fatal(err)
		}
		if wasRunning && !e.Terminated() {
			nonTerminal++
		}
		if len(e.Obstacles()) > 0 {
			spawned = true
		}

		upcoming := e.UpcomingObstacles(3)
		if len(upcoming) > 3 {
			t.Fatalf("UpcomingObstacles(3) returned %d", len(upcoming))
		}
		for j := 1; j < len(upcoming); j++ {
			if upcoming[j-1].X > upcoming[j].X {
				t.Fatalf("upcoming obstacles not sorted at tick %d", i)
			}
		}
		for _, o := range upcoming {
			if o.X <= e.Runner().X {
				t.Fatalf("upcoming obstacle behind the runner at tick %d", i)
			}
		}
	}

	if e.Score() != nonTerminal {
		t.Errorf("score = %d, expected %d non-terminal ticks", e.Score(), nonTerminal)
	}
	if !spawned {
		t.Error("at least one obstacle should have spawned")
	}
}

func TestEngineResetAfterTermination(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	e := NewEngine(cfg, 3)
	e.PlaceObstacle(NewGroundObstacle(cfg, 0, 60, 6))
	e.Update(ActionIdle)
	if !e.Terminated() {
		t.Fatal("expected termination")
	}

	e.Reset(4)
	if e.Terminated() || e.Score() != 0 || len(e.Obstacles()) != 0 {
		t.Error("Reset should start a fresh running episode")
	}
	if e.Seed() != 4 {
		t.Errorf("Seed() = %d, expected 4", e.Seed())
	}
	e.Update(ActionIdle)
	if e.Score() != 1 {
		t.Errorf("engine should run again after reset, score=%d", e.Score())
	}
}
