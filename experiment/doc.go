// Package experiment is the benchmark harness: it measures the search
// strategies across seeded worlds and reports a comparison table.
//
// What
//
//   - Run(Episode) executes one seeded episode (generate terrain and
//     patrols, then search corner to corner) and returns a Row of raw
//     measurements: wall-clock time, path length and cost, expansions,
//     found flag.
//   - Sweep(width, height, seeds) runs every algorithm against every
//     seed, each episode on its own freshly generated world.
//   - Summarize(rows) aggregates per algorithm; Report(summaries)
//     renders the markdown table.
//
// # Determinism
//
// Everything except TimeMS is reproducible: the same Episode always
// yields the same world, the same plan, and the same expansion count.
// Wall-clock timing is a measurement of the host, not of the world, and
// is excluded from any reproducibility claim.
//
// A no-path outcome (goal boxed in by walls, or start cell occupied at
// departure) is recorded as Found=false and participates in FoundPct;
// it is never surfaced as an error.
//
// Errors
//
//   - ErrNoSeeds              empty seed list passed to Sweep.
//   - grid.ErrBadDimensions   non-positive world size (wrapped).
package experiment
