// Package hillclimb provides the local-recovery move used when global
// search reports no path from the agent's current position.
package hillclimb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/dynamic"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for local recovery.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("hillclimb: grid is nil")

	// ErrNoMove is returned when no legal neighbor strictly improves on
	// staying put. An expected outcome, not a failure: it signals the
	// agent should wait one time step (and drives the STUCK transition
	// when planning has also failed).
	ErrNoMove = errors.New("hillclimb: no improving move available")
)

// BestMove evaluates every legal, non-occupied neighbor of current at
// time now+1 and returns the one closest to goal by Manhattan distance
// (score = negative distance; higher is better). Ties break by the
// grid's fixed neighbor order. The winner must strictly improve on
// staying put, otherwise ErrNoMove.
//
// This is a single-step greedy search, not multi-step hill climbing with
// restarts: it trades optimality for forward motion when no full plan is
// computable, and can be lured into local optima or dead ends. That is
// an accepted limitation — the agent re-attempts global planning on the
// very next tick.
//
// Candidates occupied at now are also skipped, so the agent never swaps
// positions with an obstacle moving through it.
//
// Complexity: O(k) for k obstacles (≤ 4 neighbors, O(k) occupancy each).
func BestMove(g *grid.Grid, fc *dynamic.Forecaster, current, goal grid.Cell, now int) (grid.Cell, error) {
	if g == nil {
		return grid.Cell{}, ErrGridNil
	}
	if !g.InBounds(current) {
		return grid.Cell{}, fmt.Errorf("%w: (%d,%d)", grid.ErrOutOfBounds, current.X, current.Y)
	}

	// Staying put is the baseline any move must strictly beat.
	bestScore := -grid.Manhattan(current, goal)
	var best grid.Cell
	found := false

	for _, nbr := range g.Neighbors(current) {
		if fc.OccupiedAt(nbr, now+1) || fc.OccupiedAt(nbr, now) {
			continue
		}
		// Strict > keeps the first (neighbor-order) winner among ties.
		if score := -grid.Manhattan(nbr, goal); score > bestScore {
			bestScore = score
			best = nbr
			found = true
		}
	}

	if !found {
		return grid.Cell{}, fmt.Errorf("%w: at (%d,%d) t=%d", ErrNoMove, current.X, current.Y, now)
	}

	return best, nil
}
