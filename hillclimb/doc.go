// Package hillclimb provides single-step greedy local recovery for the
// delivery agent: the best immediate move toward the goal when global
// search can find no plan at all.
//
// What
//
//   - BestMove(grid, forecaster, current, goal, now) returns the legal,
//     non-occupied neighbor of current with the highest score, where
//     score = −Manhattan(candidate, goal).
//   - The winner must strictly improve on staying put; ties break by the
//     grid's fixed neighbor order; otherwise ErrNoMove tells the agent
//     to wait one tick.
//
// Why
//
//   - When a moving obstacle temporarily boxes in the goal (or the
//     agent), search returns its no-path outcome; greedy motion keeps
//     the agent making progress until global planning succeeds again.
//   - Deliberately myopic: it can walk into local optima or dead ends.
//     This is an accepted limitation, not a bug — the agent retries a
//     full search every tick, never chaining blind greedy steps.
//
// Determinism
//
//	Scores and tie-breaks depend only on the grid's neighbor order and
//	the forecaster's pure time queries, so identical inputs always pick
//	the identical move.
//
// Errors
//
//   - ErrGridNil            nil grid (caller bug).
//   - grid.ErrOutOfBounds   current cell outside the grid (caller bug).
//   - ErrNoMove             expected outcome: wait this tick.
package hillclimb
