// Package agent runs a delivery episode on a grid with moving obstacles:
// plan globally, follow the plan one cell per tick, and fall back to
// greedy local recovery when no plan exists.
//
// What
//
//   - New(grid, forecaster, start, goal, opts...) builds an Agent; the
//     forecaster may be nil for obstacle-free worlds.
//   - Step() advances exactly one tick and returns a Snapshot of state,
//     position, time, and metrics. Terminal states absorb further calls.
//   - CurrentPlan() exposes the remaining plan suffix for visualization.
//   - Invalidate() discards the active plan after external terrain edits.
//   - Metrics() reports replans, conflicts, path cost, steps, and whether
//     the goal was reached.
//
// # State machine
//
//	PLANNING ──plan found──► FOLLOWING ──next cell blocked──► PLANNING
//	PLANNING ──no path, greedy move or wait──► RECOVERING ──► PLANNING
//	any ──position == goal──► ARRIVED          (terminal)
//	PLANNING re-entries exceed budget ──► STUCK (terminal)
//
// The first plan of an episode ignores obstacle forecasts; the follower
// checks each step's target at its arrival time and raises a conflict
// when it is occupied or has been walled. Every replan is forecast-aware,
// so the agent routes around known patrol motion instead of colliding
// with it twice. When neither a plan nor an improving greedy move exists,
// the agent waits one tick at unit cost and tries again.
//
// # Determinism
//
// Every component below the agent (search tie-breaks, neighbor order,
// forecaster arithmetic, greedy scoring) is deterministic, so identical
// worlds and options replay identical episodes: same snapshots, same
// metrics, tick for tick. The replan budget (MaxReplans, default 64)
// bounds every episode, making STUCK a guaranteed outcome rather than an
// infinite retry loop.
//
// # Time accounting
//
// Moves and waits consume one time step each and book their terrain or
// unit cost. Planning and conflict detection are free: time advances only
// when the agent's body does something.
//
// Errors
//
//   - ErrGridNil          nil grid (caller bug).
//   - ErrBadEndpoint      start or goal out of bounds or walled.
//   - ErrOptionViolation  invalid Option value.
package agent
