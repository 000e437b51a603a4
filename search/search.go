// Package search computes cost-minimizing grid paths by BFS, uniform-cost
// search, or A*, all sharing a single expansion skeleton parameterized by
// a frontier policy, a step-cost rule, and an optional heuristic.
package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Result carries the outcome of a successful search: the Plan plus the
// number of node expansions performed, the standard efficiency metric for
// comparing strategies (A* expands no more than UCS on the same input).
type Result struct {
	Plan     *Plan
	Expanded int
}

// FindPath computes a path from start to goal on g, applying any number
// of functional Options (algorithm, forecaster, start time, budget).
//
// Contract:
//
//   - Returns ErrGridNil, ErrEndpointOutOfBounds, ErrEndpointWall or
//     ErrOptionViolation for invalid input.
//   - Returns ErrNoPath when the frontier empties without reaching the
//     goal, when the start cell is forecast occupied at departure, or when
//     the expansion budget runs out — all expected outcomes, not failures.
//   - When a forecaster is supplied, a cell is a candidate successor only
//     if it is not forecast occupied at its arrival time
//     (StartTime + depth + 1); replanning is thereby proactive against
//     known future obstacle motion.
//   - Determinism: identical grid, forecaster state, start, goal and
//     algorithm yield a byte-identical Plan. Tie-breaks are fixed by the
//     grid's neighbor order and FIFO ordering among equal priorities.
//
// Complexity: O(W×H log(W×H)) time for UCS/A*, O(W×H) for BFS;
// O(W×H) memory.
func FindPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) (*Result, error) {
	// 1) Validate graph and endpoints (fail fast; no partial work).
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
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: start=(%d,%d) goal=(%d,%d)",
			ErrEndpointOutOfBounds, start.X, start.Y, goal.X, goal.Y)
	}
	if g.IsWall(start) || g.IsWall(goal) {
		return nil, fmt.Errorf("%w: start=(%d,%d) goal=(%d,%d)",
			ErrEndpointWall, start.X, start.Y, goal.X, goal.Y)
	}

	// 2) A start cell occupied at departure time means no plan can begin.
	if o.Forecaster.OccupiedAt(start, o.StartTime) {
		return nil, fmt.Errorf("%w: start occupied at t=%d", ErrNoPath, o.StartTime)
	}

	// 3) Assemble the expansion skeleton for the chosen algorithm.
	r := &runner{
		g:      g,
		opts:   o,
		goal:   goal,
		bestG:  make(map[grid.Cell]int),
		parent: make(map[grid.Cell]grid.Cell),
	}
	switch o.Algorithm {
	case BFS:
		// FIFO frontier, unit edge costs: fewest moves, terrain ignored.
		r.open = &fifoFrontier{}
		r.stepCost = func(grid.Cell) int { return 1 }
		r.heuristic = func(grid.Cell) int { return 0 }
	case UCS:
		// Min-heap on accumulated terrain cost: minimum-cost path.
		r.open = newHeapFrontier()
		r.stepCost = r.terrainCost
		r.heuristic = func(grid.Cell) int { return 0 }
	case AStar:
		// Min-heap on g + Manhattan×MinCost. No move costs less than
		// MinCost and only cardinal moves exist, so the heuristic never
		// overestimates and is consistent: A* stays optimal.
		r.open = newHeapFrontier()
		r.stepCost = r.terrainCost
		r.heuristic = func(c grid.Cell) int { return grid.Manhattan(c, goal) * grid.MinCost }
	}

	// 4) Seed the frontier with the start cell and run the main loop.
	r.bestG[start] = 0
	r.open.push(node{cell: start, depth: 0, g: 0}, r.heuristic(start))

	return r.loop()
}

// runner encapsulates the mutable state of one FindPath call.
// It is ephemeral: created, driven to completion, and discarded.
type runner struct {
	g    *grid.Grid
	opts Options
	goal grid.Cell

	open      frontier
	stepCost  func(grid.Cell) int
	heuristic func(grid.Cell) int

	bestG    map[grid.Cell]int       // best ordering cost seen per cell
	parent   map[grid.Cell]grid.Cell // predecessor links for reconstruction
	expanded int
}

// terrainCost reads the cost of entering c; cells reaching this point
// are always in bounds, so the error path is unreachable.
func (r *runner) terrainCost(c grid.Cell) int {
	cost, _ := r.g.Cost(c)

	return cost
}

// loop pops, tests, and expands until the goal is dequeued or the
// frontier empties.
func (r *runner) loop() (*Result, error) {
	for {
		n, ok := r.open.pop()
		if !ok {
			return nil, fmt.Errorf("%w: frontier exhausted after %d expansions", ErrNoPath, r.expanded)
		}

		// Skip stale heap entries superseded by a cheaper revisit
		// (lazy decrease-key).
		if best, seen := r.bestG[n.cell]; seen && n.g > best {
			continue
		}

		// Goal test on dequeue: exact cell equality.
		if n.cell == r.goal {
			return &Result{Plan: r.reconstruct(), Expanded: r.expanded}, nil
		}

		r.expanded++
		if r.opts.MaxExpansions > 0 && r.expanded > r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: expansion budget %d exhausted", ErrNoPath, r.opts.MaxExpansions)
		}

		r.relax(n)
	}
}

// relax examines each legal successor of n in the grid's fixed neighbor
// order, applying the forecaster's arrival-time conflict rule and the
// dominated-revisit pruning, and pushes improvements onto the frontier.
func (r *runner) relax(n node) {
	arrival := r.opts.StartTime + n.depth + 1
	for _, nbr := range r.g.Neighbors(n.cell) {
		// Reject successors whose target is forecast occupied at the
		// moment the agent would step into them.
		if r.opts.Forecaster.OccupiedAt(nbr, arrival) {
			continue
		}
		ng := n.g + r.stepCost(nbr)
		// Revisiting with an equal-or-worse cost than recorded is pruned.
		if best, seen := r.bestG[nbr]; seen && ng >= best {
			continue
		}
		r.bestG[nbr] = ng
		r.parent[nbr] = n.cell
		r.open.push(node{cell: nbr, depth: n.depth + 1, g: ng}, ng+r.heuristic(nbr))
	}
}

// reconstruct walks parent links from the goal back to the start, then
// reverses and annotates each step with its accumulated terrain cost.
// The start step carries G==0 regardless of algorithm, so BFS plans
// still report their true terrain cost.
func (r *runner) reconstruct() *Plan {
	cells := []grid.Cell{r.goal}
	for cur := r.goal; ; {
		prev, ok := r.parent[cur]
		if !ok {
			break
		}
		cells = append(cells, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	steps := make([]Step, len(cells))
	acc := 0
	for i, c := range cells {
		if i > 0 {
			acc += r.terrainCost(c)
		}
		steps[i] = Step{Cell: c, G: acc}
	}

	return &Plan{Steps: steps}
}
