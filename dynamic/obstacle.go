// Package dynamic models patrol-based moving obstacles and answers
// time-indexed occupancy queries with closed-form index arithmetic —
// forecasting is exact and cheap, no simulation rollout required.
package dynamic

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Obstacle follows an ordered, cyclic sequence of cells.
// Position at time t = route[(startIndex + t) mod len(route)], or, in
// hold-last mode, route[min(startIndex + t, len(route)−1)].
// Obstacles are created at episode start and never destroyed during it.
type Obstacle struct {
	route    []grid.Cell
	start    int
	holdLast bool
}

// NewObstacle builds an obstacle from its patrol route.
// The route is deep-copied so callers cannot mutate it afterwards.
// Returns ErrEmptyRoute for an empty route and ErrBadStartIndex when
// WithStartIndex points outside the route.
// Complexity: O(len(route)).
func NewObstacle(route []grid.Cell, opts ...ObstacleOption) (*Obstacle, error) {
	if len(route) == 0 {
		return nil, ErrEmptyRoute
	}
	o := obstacleOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.startIndex >= len(route) {
		return nil, fmt.Errorf("%w: index=%d, route length=%d", ErrBadStartIndex, o.startIndex, len(route))
	}

	r := make([]grid.Cell, len(route))
	copy(r, route)

	return &Obstacle{route: r, start: o.startIndex, holdLast: o.holdLast}, nil
}

// PositionAt returns the obstacle's cell at time t.
// Negative t is clamped to 0, so pre-episode queries are harmless.
// Complexity: O(1).
func (o *Obstacle) PositionAt(t int) grid.Cell {
	if t < 0 {
		t = 0
	}
	if o.holdLast {
		idx := o.start + t
		if idx >= len(o.route) {
			idx = len(o.route) - 1
		}

		return o.route[idx]
	}

	return o.route[(o.start+t)%len(o.route)]
}

// Occupies reports whether the obstacle stands on c at time t.
// Complexity: O(1).
func (o *Obstacle) Occupies(c grid.Cell, t int) bool {
	return o.PositionAt(t) == c
}

// RouteLen returns the number of cells in the patrol route.
func (o *Obstacle) RouteLen() int { return len(o.route) }
