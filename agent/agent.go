// Package agent orchestrates an episode: it holds the current position,
// the active plan and the replanning policy, and consumes one discrete
// time step per Step call — continue, replan, or recover locally.
package agent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/dynamic"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/hillclimb"
	"github.com/katalvlaran/gridpath/search"
)

// waitCost is the cost booked for holding position one tick.
const waitCost = 1

// Metrics are the externally observable counters of an episode.
type Metrics struct {
	Replans   int  // transitions into PLANNING after the initial one
	Conflicts int  // plan steps found occupied or walled at follow time
	PathCost  int  // accumulated terrain cost of moves plus waits
	Steps     int  // ticks consumed (moves and waits)
	Found     bool // true once the agent has Arrived
}

// Snapshot is the caller-facing view of the agent after a tick.
type Snapshot struct {
	State    State
	Position grid.Cell
	Time     int
	Metrics  Metrics
}

// Agent is a single-goal delivery agent on one grid. It is strictly
// single-threaded: one Step call advances the whole episode by one tick,
// and the agent owns its state exclusively.
type Agent struct {
	grid       *grid.Grid
	forecaster *dynamic.Forecaster
	goal       grid.Cell
	opts       Options

	state   State
	pos     grid.Cell
	now     int
	plan    *search.Plan
	cursor  int // index into plan.Steps of the next cell to enter
	metrics Metrics

	// The first plan of an episode is computed against static terrain
	// only; every replan is forecast-aware, making recovery from a
	// detected conflict proactive against known obstacle motion.
	planned bool
}

// New constructs an agent at start heading for goal.
// The forecaster may be nil for obstacle-free episodes.
// Returns ErrGridNil, ErrBadEndpoint or ErrOptionViolation on bad input.
func New(g *grid.Grid, fc *dynamic.Forecaster, start, goal grid.Cell, opts ...Option) (*Agent, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, c := range []grid.Cell{start, goal} {
		if !g.InBounds(c) || g.IsWall(c) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBadEndpoint, c.X, c.Y)
		}
	}

	return &Agent{
		grid:       g,
		forecaster: fc,
		goal:       goal,
		opts:       o,
		state:      Planning,
		pos:        start,
	}, nil
}

// State returns the current state.
func (a *Agent) State() State { return a.state }

// Position returns the agent's current cell.
func (a *Agent) Position() grid.Cell { return a.pos }

// Now returns the current absolute time step.
func (a *Agent) Now() int { return a.now }

// Goal returns the episode goal cell.
func (a *Agent) Goal() grid.Cell { return a.goal }

// Metrics returns the episode counters observed so far.
func (a *Agent) Metrics() Metrics { return a.metrics }

// CurrentPlan returns the remaining suffix of the active plan, or nil
// when no plan is active. The suffix is a fresh Plan in canonical shape:
// Steps[0] is the agent's current cell with G==0, and Cost() reports the
// terrain cost still ahead. Intended for path visualization; the copy is
// the caller's to keep.
func (a *Agent) CurrentPlan() *search.Plan {
	if a.plan == nil || a.cursor > len(a.plan.Steps) {
		return nil
	}
	src := a.plan.Steps
	if a.cursor > 0 {
		src = src[a.cursor-1:]
	}
	if len(src) == 0 {
		return nil
	}

	steps := make([]search.Step, len(src))
	copy(steps, src)
	base := steps[0].G
	for i := range steps {
		steps[i].G -= base
	}

	return &search.Plan{Steps: steps}
}

// Invalidate discards the active plan and forces re-entry into PLANNING,
// exactly as a detected conflict would. External terrain mutation
// (grid.SetWall from an editor) must be followed by this call — plans
// are never revalidated against terrain implicitly.
// No-op in terminal states.
func (a *Agent) Invalidate() {
	if a.state.Terminal() {
		return
	}
	a.dropPlan()
	a.enterPlanning()
}

// snapshot freezes the caller-facing view.
func (a *Agent) snapshot() Snapshot {
	return Snapshot{State: a.state, Position: a.pos, Time: a.now, Metrics: a.metrics}
}

// Step advances the episode by one tick and returns the resulting view.
// Terminal states are absorbing: further calls return unchanged
// snapshots, so drivers may loop on snapshot.State.Terminal().
func (a *Agent) Step() Snapshot {
	if a.state.Terminal() {
		return a.snapshot()
	}
	if a.pos == a.goal {
		a.state = Arrived
		a.metrics.Found = true

		return a.snapshot()
	}

	switch a.state {
	case Planning, Recovering:
		a.stepPlan()
	case Following:
		a.stepFollow()
	}

	if a.pos == a.goal {
		a.state = Arrived
		a.metrics.Found = true
	}

	return a.snapshot()
}

// stepPlan attempts a full global search from the current position; on
// NotFound it falls back to a hill-climbing move, and on NoMove it waits
// one tick. Re-entries into PLANNING beyond the replan budget end the
// episode as Stuck.
func (a *Agent) stepPlan() {
	// A tick spent in Recovering re-attempts planning immediately;
	// re-entry is counted against the budget like any other.
	if a.state == Recovering {
		a.enterPlanning()
		if a.state == Stuck {
			return
		}
	}

	opts := []search.Option{
		search.WithAlgorithm(a.opts.Algorithm),
		search.WithStartTime(a.now),
	}
	if a.planned {
		// Replans are proactive: avoid forecast positions at arrival times.
		opts = append(opts, search.WithForecaster(a.forecaster))
	}
	a.planned = true

	res, err := search.FindPath(a.grid, a.pos, a.goal, opts...)
	if err == nil {
		// PLANNING → FOLLOWING: adopt the plan, reset the cursor.
		a.plan = res.Plan
		a.cursor = 1
		a.state = Following

		return
	}
	// An external edit may wall the agent's current cell or the goal
	// mid-episode; search then rejects the endpoints outright. Treated
	// like any other no-path outcome: greedy recovery can legally walk
	// off a walled cell (Neighbors filters destinations only), and the
	// replan cap converges to Stuck when the goal stays walled.
	if !errors.Is(err, search.ErrNoPath) && !errors.Is(err, search.ErrEndpointWall) {
		// Endpoints are in bounds by construction and position updates;
		// any other failure is a programming error worth failing loud on.
		panic(fmt.Sprintf("agent: unexpected search failure: %v", err))
	}

	// PLANNING → RECOVERING: greedy local progress, retry globally next tick.
	move, err := hillclimb.BestMove(a.grid, a.forecaster, a.pos, a.goal, a.now)
	if err == nil {
		cost, _ := a.grid.Cost(move)
		a.pos = move
		a.now++
		a.metrics.PathCost += cost
		a.metrics.Steps++
		a.state = Recovering

		return
	}

	// NoMove: hold position one tick and try again — waiting is how the
	// agent lets a patrol clear a corridor it cannot route around.
	a.now++
	a.metrics.PathCost += waitCost
	a.metrics.Steps++
	a.state = Recovering
}

// stepFollow advances one cell along the plan, or detects a conflict and
// re-enters PLANNING from the current position.
func (a *Agent) stepFollow() {
	if a.plan == nil || a.cursor >= len(a.plan.Steps) {
		// Defensive: a consumed plan without arrival means replan.
		a.dropPlan()
		a.enterPlanning()

		return
	}

	next := a.plan.Steps[a.cursor].Cell

	// FOLLOWING -> PLANNING: the next step's target is occupied at its
	// scheduled arrival time, or has been walled by an external edit.
	// The check mirrors the rule plans were built under, so a fresh
	// forecast-aware plan is never vetoed by its own follower.
	if a.grid.IsWall(next) || a.forecaster.OccupiedAt(next, a.now+1) {
		a.metrics.Conflicts++
		a.dropPlan()
		a.enterPlanning()

		return
	}

	// FOLLOWING → FOLLOWING: advance one cell, time increments by one.
	cost, _ := a.grid.Cost(next)
	a.pos = next
	a.now++
	a.cursor++
	a.metrics.PathCost += cost
	a.metrics.Steps++
}

// enterPlanning performs the counted transition into PLANNING, ending
// the episode as Stuck once the replan budget is exhausted.
func (a *Agent) enterPlanning() {
	a.metrics.Replans++
	if a.metrics.Replans > a.opts.MaxReplans {
		a.state = Stuck

		return
	}
	a.state = Planning
}

// dropPlan discards the active plan wholesale; plans are never patched.
func (a *Agent) dropPlan() {
	a.plan = nil
	a.cursor = 0
}
