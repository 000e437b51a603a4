// Package agent defines states, options, and sentinel errors
// for the agent subpackage of github.com/katalvlaran/gridpath.
package agent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/search"
)

// Sentinel errors for agent construction.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("agent: grid is nil")

	// ErrBadEndpoint is returned when start or goal is out of bounds or a
	// static wall; episode endpoints are never walls.
	ErrBadEndpoint = errors.New("agent: start or goal out of bounds or walled")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("agent: invalid option supplied")
)

// State is the agent's position in its episode state machine.
type State int

const (
	// Planning: no active plan; a global search runs on the next tick.
	Planning State = iota
	// Following: an active plan exists and is consumed one cell per tick.
	Following
	// Recovering: global search failed; the agent took (or is about to
	// take) a greedy local step and will retry a full search next tick.
	Recovering
	// Arrived: the agent stands on the goal. Terminal.
	Arrived
	// Stuck: the replan budget ran out with no way forward. Terminal.
	Stuck
)

// String returns the canonical upper-case state name.
func (s State) String() string {
	switch s {
	case Planning:
		return "PLANNING"
	case Following:
		return "FOLLOWING"
	case Recovering:
		return "RECOVERING"
	case Arrived:
		return "ARRIVED"
	case Stuck:
		return "STUCK"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the state ends the episode.
func (s State) Terminal() bool { return s == Arrived || s == Stuck }

// DefaultMaxReplans caps the total number of PLANNING re-entries before
// the agent gives up as Stuck, guaranteeing an episode is never silently
// retried forever.
const DefaultMaxReplans = 64

// Options holds tunable parameters for a delivery agent.
type Options struct {
	// Algorithm selects the global search strategy; AStar by default.
	Algorithm search.Algorithm

	// MaxReplans caps PLANNING re-entries (0 keeps DefaultMaxReplans).
	MaxReplans int

	// internal error recorded during option parsing
	err error
}

// Option configures New via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// A* planning and the default replan budget.
func DefaultOptions() Options {
	return Options{
		Algorithm:  search.AStar,
		MaxReplans: DefaultMaxReplans,
		err:        nil,
	}
}

// WithAlgorithm selects the global search strategy.
func WithAlgorithm(a search.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithMaxReplans overrides the replan budget.
// Values below 1 surface as ErrOptionViolation: the budget is what makes
// the Stuck outcome deterministic, so it cannot be disabled.
func WithMaxReplans(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxReplans must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxReplans = n
	}
}
