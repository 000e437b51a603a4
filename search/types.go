// Package search defines algorithms, options, and sentinel errors
// for the search subpackage of github.com/katalvlaran/gridpath.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/dynamic"
)

// Sentinel errors for path search.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrEndpointOutOfBounds is returned when start or goal lies outside the grid.
	ErrEndpointOutOfBounds = errors.New("search: start or goal out of bounds")

	// ErrEndpointWall is returned when start or goal is a static wall;
	// episode endpoints are never walls, so this is a caller bug.
	ErrEndpointWall = errors.New("search: start or goal is a static wall")

	// ErrNoPath is returned when the frontier empties without reaching the
	// goal. This is an expected, commonly occurring outcome (e.g. the goal
	// currently boxed in by a moving obstacle), not a failure: callers
	// branch on it with errors.Is and fall back to local recovery.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects the search strategy used by FindPath.
type Algorithm int

const (
	// BFS explores in FIFO order treating every edge as cost 1:
	// fewest moves, not necessarily lowest terrain cost.
	BFS Algorithm = iota
	// UCS orders the frontier by accumulated terrain cost:
	// guaranteed minimum-cost path.
	UCS
	// AStar orders by terrain cost plus an admissible Manhattan
	// heuristic: minimum-cost path with fewer expansions than UCS.
	AStar
)

// String returns the canonical lower-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case UCS:
		return "ucs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a canonical name ("bfs", "ucs", "astar") onto its
// Algorithm value, returning ErrUnknownAlgorithm otherwise.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "bfs":
		return BFS, nil
	case "ucs":
		return UCS, nil
	case "astar":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Algorithms lists every strategy in a stable order, for sweeps and demos.
func Algorithms() []Algorithm { return []Algorithm{BFS, UCS, AStar} }

// Options holds parameters customizing a FindPath call.
type Options struct {
	// Algorithm selects the strategy; AStar by default.
	Algorithm Algorithm

	// Forecaster, when non-nil, prunes successors whose target cell is
	// forecast occupied at their arrival time (StartTime + depth + 1).
	Forecaster *dynamic.Forecaster

	// StartTime is the absolute time step at which the agent stands on
	// the start cell; arrival times of plan steps are offsets from it.
	StartTime int

	// MaxExpansions, if > 0, aborts the search with ErrNoPath after that
	// many node expansions. 0 disables the budget; the search is already
	// bounded by the finite grid (≤ W×H expansions).
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments.
// Invalid values are recorded internally and surfaced as
// ErrOptionViolation when FindPath is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// AStar, no forecaster, start time 0, no expansion budget.
func DefaultOptions() Options {
	return Options{
		Algorithm:     AStar,
		Forecaster:    nil,
		StartTime:     0,
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithAlgorithm selects the search strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != BFS && a != UCS && a != AStar {
			o.err = fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)

			return
		}
		o.Algorithm = a
	}
}

// WithForecaster supplies dynamic-obstacle forecasting; successors are
// rejected when their target cell is occupied at the arrival time.
func WithForecaster(fc *dynamic.Forecaster) Option {
	return func(o *Options) {
		o.Forecaster = fc
	}
}

// WithStartTime anchors arrival-time arithmetic at the given absolute
// time step. Negative values surface as ErrOptionViolation.
func WithStartTime(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: StartTime cannot be negative (%d)", ErrOptionViolation, t)

			return
		}
		o.StartTime = t
	}
}

// WithMaxExpansions caps the number of node expansions.
//
//	n > 0:  abort with ErrNoPath beyond n expansions
//	n == 0: explicit no budget
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}
