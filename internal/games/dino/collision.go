package dino

import "github.com/vovakirdan/dino-gym/internal/core"

// Collides reports whether the runner and obstacle boxes overlap.
// Touching edges are not a collision.
func Collides(runner, obstacle core.Box) bool {
	return runner.Overlaps(obstacle)
}

// firstCollision returns the index of the first obstacle overlapping the
// runner, or -1. Decorations are never tested.
func firstCollision(runner core.Box, obstacles []Obstacle) int {
	for i := range obstacles {
		if Collides(runner, obstacles[i].Box()) {
			return i
		}
	}
	return -1
}
