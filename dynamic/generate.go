// Package dynamic - deterministic patrol generation.
//
// Same goals as grid generation: one seeded RNG per call, fixed draw
// order, no time-based sources, only sentinel errors.
package dynamic

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// obstacleAreaDivisor sizes the default obstacle count: one obstacle per
// this many cells, with a floor of one.
const obstacleAreaDivisor = 60

// laneAttempts caps how many lanes Random probes per obstacle before
// concluding the grid has no wall-free lane left.
const laneAttempts = 32

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ default).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Random generates count cyclic patrol obstacles on g from seed.
// Each patrol spans a full row or column (coin flip), skipping wall
// cells, with a second coin flip reversing its direction. count ≤ 0
// selects the default density max(1, W×H/60).
//
// Same (grid, seed, count) ⇒ same obstacle set, enabling reproducible
// experiments. Returns ErrGridNil for a nil grid and ErrNoRoom when no
// passable lane can be found.
// Complexity: O(count × (W + H)).
func Random(g *grid.Grid, seed int64, count int) (*Forecaster, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	rng := rngFromSeed(seed)

	w, h := g.Width(), g.Height()
	if count <= 0 {
		count = w * h / obstacleAreaDivisor
		if count < 1 {
			count = 1
		}
	}

	obstacles := make([]*Obstacle, 0, count)
	for i := 0; i < count; i++ {
		route, ok := drawLane(g, rng)
		if !ok {
			return nil, ErrNoRoom
		}
		if rng.Float64() < 0.5 {
			reverse(route)
		}
		o, err := NewObstacle(route)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, o)
	}

	return NewForecaster(obstacles...), nil
}

// drawLane picks a random full-span horizontal or vertical lane and
// returns its passable cells in scan order. Lanes made entirely of walls
// are redrawn up to laneAttempts times.
func drawLane(g *grid.Grid, rng *rand.Rand) ([]grid.Cell, bool) {
	w, h := g.Width(), g.Height()
	for attempt := 0; attempt < laneAttempts; attempt++ {
		var route []grid.Cell
		if rng.Float64() < 0.5 {
			y := rng.Intn(h)
			route = make([]grid.Cell, 0, w)
			for x := 0; x < w; x++ {
				if c := (grid.Cell{X: x, Y: y}); !g.IsWall(c) {
					route = append(route, c)
				}
			}
		} else {
			x := rng.Intn(w)
			route = make([]grid.Cell, 0, h)
			for y := 0; y < h; y++ {
				if c := (grid.Cell{X: x, Y: y}); !g.IsWall(c) {
					route = append(route, c)
				}
			}
		}
		if len(route) > 0 {
			return route, true
		}
	}

	return nil, false
}

// reverse flips a route in place.
func reverse(route []grid.Cell) {
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
}
