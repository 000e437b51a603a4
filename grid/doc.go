// Package grid provides the static terrain model for gridpath:
// per-cell movement costs, static walls, bounds checks, and the
// deterministic 4-neighborhood all searches traverse.
//
// What
//
//   - Cell: immutable (X, Y) value type; map-keyable; Manhattan distance.
//   - Grid: width×height terrain, Cost/IsWall/Passable/Neighbors queries,
//     deep-copied on construction, read-only during an episode.
//   - New: validated construction from functional Options
//     (WithDefaultCost, WithCosts, WithWalls).
//   - Random: seeded generation — costs in [1,5], ~10% wall density,
//     endpoints (0,0) and (width−1,height−1) always kept clear.
//   - SetWall: the one sanctioned mutation, for interactive wall editors;
//     pair it with agent.Invalidate so plans are recomputed explicitly.
//   - Render: ASCII snapshot for terminals and debugging.
//
// Why
//
//   - Every search and the replanning agent assume terrain is fixed for
//     the episode; isolating mutation behind SetWall keeps that contract
//     auditable.
//   - Costs ≥ 1 make the Manhattan heuristic admissible for A*.
//
// Determinism
//
//	Neighbors always returns candidates in the order up, down, left,
//	right. Searches inherit this as their tie-break order, so identical
//	inputs produce byte-identical plans. Random draws costs, then walls,
//	each in row-major order from a single seeded source (seed==0 maps to
//	a fixed default seed).
//
// Complexity (W×H cells)
//
//   - Queries: O(1).
//   - Construction, Random, Render: O(W×H).
//
// Errors
//
//   - ErrBadDimensions  non-positive width or height.
//   - ErrBadCost        terrain cost below MinCost.
//   - ErrNonRectangular malformed cost matrix.
//   - ErrOutOfBounds    cell outside the grid; always a caller bug,
//     never recovered internally.
package grid
