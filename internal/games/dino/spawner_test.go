package dino

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dino-gym/internal/config"
)

func TestObstacleShapes(t *testing.T) {
	cfg := config.DefaultDinoConfig()

	cactus := NewGroundObstacle(cfg, 2, 600, 6)
	if cactus.Kind != KindGround || cactus.Width != 51 || cactus.Height != 35 {
		t.Errorf("unexpected cactus: %+v", cactus)
	}
	if cactus.Box().Bottom() != cfg.GroundLine() {
		t.Errorf("cactus should rest on the ground line, bottom=%v", cactus.Box().Bottom())
	}

	for level, h := range cfg.Obstacles.BirdFlightHeights {
		bird := NewAirborneObstacle(cfg, level, 600, 6)
		if bird.Kind != KindAirborne || bird.Variant != level {
			t.Errorf("unexpected bird: %+v", bird)
		}
		if bird.Y != cfg.GroundLine()-h {
			t.Errorf("bird level %d: y=%v, expected %v", level, bird.Y, cfg.GroundLine()-h)
		}
	}
}

func fixedGapConfig(gap, cloudRate int) config.DinoConfig {
	cfg := config.DefaultDinoConfig()
	cfg.Obstacles.MinGap, cfg.Obstacles.MaxGap = gap, gap
	cfg.Decorations.MinSpawnRate, cfg.Decorations.MaxSpawnRate = cloudRate, cloudRate
	return cfg
}

func TestSpawnerObstacleTimerScalesWithSpeed(t *testing.T) {
	cfg := fixedGapConfig(120, 200)
	s := NewSpawner(&cfg, rand.New(rand.NewSource(1)))

	// 6 units per tick: the 20th tick reaches 120
	for i := 1; i < 20; i++ {
		if _, ok := s.TickObstacles(6); ok {
			t.Fatalf("spawned too early at tick %d", i)
		}
	}
	o, ok := s.TickObstacles(6)
	if !ok {
		t.Fatal("expected a spawn on tick 20")
	}
	if o.X != cfg.Playfield.Width || o.Speed != 6 {
		t.Errorf("obstacle should spawn at the far edge with the current speed, got x=%v speed=%v", o.X, o.Speed)
	}

	// Timer reset; doubling the speed halves the delay
	for i := 1; i < 10; i++ {
		if _, ok := s.TickObstacles(12); ok {
			t.Fatalf("spawned too early after reset at tick %d", i)
		}
	}
	if _, ok := s.TickObstacles(12); !ok {
		t.Error("expected a spawn after 10 ticks at speed 12")
	}
}

func TestSpawnerDecorationTimerIgnoresSpeed(t *testing.T) {
	cfg := fixedGapConfig(120, 200)
	s := NewSpawner(&cfg, rand.New(rand.NewSource(1)))

	for i := 1; i < 200; i++ {
		if _, ok := s.TickDecorations(); ok {
			t.Fatalf("cloud spawned too early at tick %d", i)
		}
	}
	d, ok := s.TickDecorations()
	if !ok {
		t.Fatal("expected a cloud on tick 200")
	}
	if d.Y < float64(cfg.Decorations.MinY) || d.Y > float64(cfg.Decorations.MaxY) {
		t.Errorf("cloud y=%v outside [%d, %d]", d.Y, cfg.Decorations.MinY, cfg.Decorations.MaxY)
	}
	if d.Speed != cfg.Decorations.Speed || d.X != cfg.Playfield.Width {
		t.Errorf("unexpected cloud: %+v", d)
	}
}

func TestSpawnerThresholdsWithinRange(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(7)))

	for i := 0; i < 200; i++ {
		if s.obstacleThreshold < cfg.Obstacles.MinGap || s.obstacleThreshold > cfg.Obstacles.MaxGap {
			t.Fatalf("obstacle threshold %d out of range", s.obstacleThreshold)
		}
		if s.decorationThreshold < cfg.Decorations.MinSpawnRate || s.decorationThreshold > cfg.Decorations.MaxSpawnRate {
			t.Fatalf("decoration threshold %d out of range", s.decorationThreshold)
		}
		// Force a spawn on both streams
		s.TickObstacles(float64(cfg.Obstacles.MaxGap))
		s.decorationTimer = cfg.Decorations.MaxSpawnRate
		s.TickDecorations()
	}
}

func TestSpawnerVariety(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(3)))

	kinds := map[ObstacleKind]int{}
	variants := map[ObstacleKind]map[int]bool{KindGround: {}, KindAirborne: {}}
	for i := 0; i < 300; i++ {
		o, ok := s.TickObstacles(float64(cfg.Obstacles.MaxGap))
		if !ok {
			t.Fatal("a full gap of progress should always spawn")
		}
		kinds[o.Kind]++
		variants[o.Kind][o.Variant] = true
	}

	if kinds[KindGround] == 0 || kinds[KindAirborne] == 0 {
		t.Errorf("both kinds should appear, got %v", kinds)
	}
	if len(variants[KindGround]) != len(cfg.Obstacles.CactusVariants) {
		t.Errorf("all cactus variants should appear, got %v", variants[KindGround])
	}
	if len(variants[KindAirborne]) != len(cfg.Obstacles.BirdFlightHeights) {
		t.Errorf("all flight levels should appear, got %v", variants[KindAirborne])
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	a := NewSpawner(&cfg, rand.New(rand.NewSource(99)))
	b := NewSpawner(&cfg, rand.New(rand.NewSource(99)))

	for i := 0; i < 1000; i++ {
		oa, okA := a.TickObstacles(7.5)
		ob, okB := b.TickObstacles(7.5)
		if okA != okB || oa != ob {
			t.Fatalf("obstacle streams diverged at tick %d", i)
		}
		da, okA := a.TickDecorations()
		db, okB := b.TickDecorations()
		if okA != okB || da != db {
			t.Fatalf("decoration streams diverged at tick %d", i)
		}
	}
}
