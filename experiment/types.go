// Package experiment defines configs, result rows, and sentinel errors
// for the experiment subpackage of github.com/katalvlaran/gridpath.
package experiment

import (
	"errors"

	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for experiment configuration.
var (
	// ErrNoSeeds is returned when Sweep is given an empty seed list.
	ErrNoSeeds = errors.New("experiment: at least one seed is required")
)

// Episode configures one benchmark run: a seeded world and an algorithm.
// The same Episode always reproduces the same world, so rows differ only
// in their wall-clock timing.
type Episode struct {
	// Width and Height size the generated grid.
	Width, Height int

	// Seed drives both terrain and patrol generation.
	Seed int64

	// Algorithm selects the search strategy under measurement.
	Algorithm search.Algorithm

	// Obstacles is the patrol count passed to generation; 0 selects the
	// default density of one obstacle per 60 cells.
	Obstacles int
}

// Row is the raw outcome of one episode.
type Row struct {
	Algorithm search.Algorithm
	Seed      int64

	// TimeMS is the wall-clock duration of the FindPath call in
	// milliseconds. The only non-reproducible field in a Row.
	TimeMS float64

	// PathLen and PathCost describe the plan when Found; zero otherwise.
	PathLen  int
	PathCost int

	// Expanded counts node expansions, the machine-independent cost metric.
	Expanded int

	// Found is false when the episode ended in the no-path outcome.
	Found bool
}

// Summary aggregates the rows of one algorithm across a sweep.
type Summary struct {
	Algorithm search.Algorithm
	Episodes  int

	// FoundPct is the percentage of episodes that produced a plan.
	FoundPct float64

	// AvgTimeMS averages over all episodes; AvgPathLen and AvgPathCost
	// average over found episodes only (a no-path outcome has no length).
	AvgTimeMS   float64
	AvgPathLen  float64
	AvgPathCost float64
}
