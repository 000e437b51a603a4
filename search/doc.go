// Package search provides the pathfinding core of gridpath: breadth-first
// search, uniform-cost search, and A* over one shared expansion skeleton,
// with time-indexed pruning against forecast obstacle positions.
//
// What
//
//   - FindPath(grid, start, goal, opts...) returning a Result with a Plan
//     (cells annotated with accumulated terrain cost) and the expansion
//     count.
//   - One generic expansion routine parameterized by a frontier policy
//     (FIFO vs min-heap), a step-cost rule (unit vs terrain), and an
//     optional heuristic — the three algorithms are configurations of the
//     same skeleton, never three copies of it.
//   - BFS: FIFO frontier, every edge cost 1 — guarantees fewest moves,
//     not necessarily lowest terrain cost.
//   - UCS: min-heap on accumulated terrain cost — guarantees the
//     minimum-cost path; ties pop FIFO among equal costs.
//   - A*: min-heap on g + Manhattan×MinCost — minimum-cost path with
//     fewer expansions than UCS in practice; the heuristic is admissible
//     and consistent because no move costs less than MinCost and only
//     cardinal moves exist. Ties on f break by lower g, then by the
//     grid's neighbor order.
//   - WithForecaster: a successor entered at step k of a plan started at
//     time t is rejected iff its cell is forecast occupied at t+k —
//     conflict avoidance is proactive, not reactive.
//
// Why
//
//   - The replanning agent needs all three trade-offs: fewest moves for
//     cheap terrain, true cost minimization, and cost minimization that
//     scales; sharing the skeleton keeps their semantics comparable.
//
// Determinism
//
//	Given identical grid, forecaster state, start, goal and algorithm,
//	the returned Plan is byte-identical across runs. The tie-break rules
//	above exist specifically to guarantee this for testability.
//
// Complexity (N = W×H cells)
//
//   - BFS:      O(N) time, O(N) memory.
//   - UCS / A*: O(N log N) time under lazy decrease-key, O(N) memory.
//
// Usage
//
//	res, err := search.FindPath(g, start, goal,
//	    search.WithAlgorithm(search.AStar),
//	    search.WithForecaster(fc),
//	    search.WithStartTime(agentNow),
//	)
//	if errors.Is(err, search.ErrNoPath) {
//	    // expected: fall back to hillclimb.BestMove
//	}
//
// Errors
//
//   - ErrGridNil, ErrEndpointOutOfBounds, ErrEndpointWall,
//     ErrOptionViolation, ErrUnknownAlgorithm — caller bugs.
//   - ErrNoPath — the expected "frontier exhausted" outcome driving the
//     agent's recovery transitions; also wraps the start-occupied and
//     budget-exhausted cases.
package search
