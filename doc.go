// Package gridpath is an in-memory toolkit for cost-aware pathfinding on
// 2D grids with moving obstacles — plan, forecast, follow, replan.
//
// 🚀 What is gridpath?
//
//	A deterministic, dependency-light library that brings together:
//		• grid/      — terrain costs, static walls, bounds & 4-neighborhoods
//		• dynamic/   — patrol-based moving obstacles with exact forecasting
//		• search/    — BFS, uniform-cost and A* over one shared expansion core
//		• hillclimb/ — single-step greedy recovery when no global plan exists
//		• agent/     — the delivery agent state machine: follow, detect, replan
//		• experiment/— seed-sweep benchmarking with markdown report tables
//
// ✨ Why choose gridpath?
//
//   - Reproducible everywhere – every generator and search is seed-driven;
//     identical inputs yield byte-identical plans
//   - Expected outcomes, not exceptions – "no path" and "no move" are
//     sentinel errors you branch on, never panics
//   - Pure Go – no cgo, no hidden deps
//   - Proactive replanning – plans are checked against forecast obstacle
//     positions at arrival time, not just the current layout
//
// Quick ASCII example:
//
//	A 2 1 3 .        A = agent, G = goal, # = wall, X = moving obstacle
//	1 # 4 X .
//	2 1 1 2 G
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples, or start with examples/ for full simulations.
package gridpath
