// Package dynamic provides patrol-based moving obstacles and the exact
// occupancy forecasting the replanning agent relies on.
//
// What
//
//   - Obstacle: an ordered, cyclic sequence of cells plus a start index.
//     Position at time t = route[(start + t) mod len(route)]; hold-last
//     mode (WithHoldLast) parks on the final cell instead of wrapping.
//   - Forecaster: a set of obstacles answering OccupiedAt(cell, t) and
//     PositionsAt(t) for any time step, past or future.
//   - Random: seeded generation of full-span horizontal/vertical patrols
//     that skip wall cells.
//
// Why
//
//   - Obstacles move deterministically, so a search can reject a plan
//     step at absolute time T when its target is forecast occupied at T —
//     replanning becomes proactive against known motion, not merely
//     reactive to a current blockage.
//   - Closed-form index arithmetic makes every forecast O(1) per
//     obstacle; no rollout, no mutable simulation clock.
//
// Determinism
//
//	Forecaster answers are pure functions of time. Random draws lanes
//	and directions from a single seeded source with a fixed draw order
//	(seed==0 maps to a fixed default seed), so identical inputs yield
//	identical obstacle sets.
//
// Complexity (k obstacles, route length m)
//
//   - PositionAt / Occupies: O(1).
//   - OccupiedAt / PositionsAt: O(k).
//   - NewObstacle: O(m). Random: O(count × (W + H)).
//
// Errors
//
//   - ErrEmptyRoute    obstacle constructed with no patrol cells.
//   - ErrBadStartIndex start index outside the route.
//   - ErrGridNil       Random called with a nil grid.
//   - ErrNoRoom        no wall-free lane available for a patrol.
package dynamic
