package dynamic

import "github.com/katalvlaran/gridpath/grid"

// Forecaster owns a set of patrol obstacles and answers
// "is cell C occupied at time T" for any future time step.
// Its answers are pure functions of time: safe to query from any point
// of an episode without advancing anything.
type Forecaster struct {
	obstacles []*Obstacle
}

// NewForecaster bundles the given obstacles. A nil or empty set is valid
// and yields a forecaster that never reports occupancy.
func NewForecaster(obstacles ...*Obstacle) *Forecaster {
	out := make([]*Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if o != nil {
			out = append(out, o)
		}
	}

	return &Forecaster{obstacles: out}
}

// OccupiedAt reports whether any obstacle stands on c at time t.
// Complexity: O(k) for k obstacles.
func (f *Forecaster) OccupiedAt(c grid.Cell, t int) bool {
	if f == nil {
		return false
	}
	for _, o := range f.obstacles {
		if o.Occupies(c, t) {
			return true
		}
	}

	return false
}

// PositionsAt returns the set of all obstacle cells at time t,
// used when a caller needs a whole projected layout at once.
// Complexity: O(k) time and memory.
func (f *Forecaster) PositionsAt(t int) map[grid.Cell]struct{} {
	out := make(map[grid.Cell]struct{}, len(f.obstacles))
	for _, o := range f.obstacles {
		out[o.PositionAt(t)] = struct{}{}
	}

	return out
}

// Count returns the number of obstacles in the set.
func (f *Forecaster) Count() int {
	if f == nil {
		return 0
	}

	return len(f.obstacles)
}

// Obstacles returns the underlying obstacle set, in insertion order.
// The slice is shared; treat it as read-only.
func (f *Forecaster) Obstacles() []*Obstacle { return f.obstacles }
