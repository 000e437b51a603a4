// Package grid models the static terrain of a pathfinding episode:
// per-cell movement costs, static walls, bounds checking, and the
// deterministic 4-neighborhood every search builds on.
//
// A Grid is read-only during an episode. The single sanctioned mutation
// is SetWall, the explicit endpoint for interactive wall toggling;
// callers that use it must notify their agent (agent.Invalidate) so a
// fresh plan is computed — the library never observes shared state
// implicitly.
package grid

import (
	"fmt"
)

// Grid owns the static terrain: width, height, per-cell movement cost,
// and static-wall flags. Costs and walls are deep-copied on construction
// so callers cannot mutate terrain behind the grid's back.
type Grid struct {
	width, height int
	costs         [][]int // costs[y][x], each ≥ MinCost
	walls         [][]bool
}

// New constructs a Grid of the given dimensions, applying any number of
// functional Options. Returns ErrBadDimensions for non-positive sizes,
// ErrNonRectangular or ErrBadCost for a malformed cost matrix, and
// ErrOutOfBounds for walls outside the grid.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	// 1) Validate dimensions early (fail fast; no partial work).
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Materialize the cost matrix: deep-copy the supplied one or
	//    fill with DefaultCost. Row-major, y ascending then x ascending.
	costs := make([][]int, height)
	if o.Costs != nil {
		if len(o.Costs) != height {
			return nil, fmt.Errorf("%w: got %d rows, want %d", ErrNonRectangular, len(o.Costs), height)
		}
		for y := 0; y < height; y++ {
			if len(o.Costs[y]) != width {
				return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(o.Costs[y]), width)
			}
			costs[y] = make([]int, width)
			for x := 0; x < width; x++ {
				if o.Costs[y][x] < MinCost {
					return nil, fmt.Errorf("%w: cell (%d,%d) cost=%d", ErrBadCost, x, y, o.Costs[y][x])
				}
				costs[y][x] = o.Costs[y][x]
			}
		}
	} else {
		for y := 0; y < height; y++ {
			costs[y] = make([]int, width)
			for x := 0; x < width; x++ {
				costs[y][x] = o.DefaultCost
			}
		}
	}

	// 4) Materialize wall flags.
	walls := make([][]bool, height)
	for y := 0; y < height; y++ {
		walls[y] = make([]bool, width)
	}
	g := &Grid{width: width, height: height, costs: costs, walls: walls}
	for _, w := range o.Walls {
		if !g.InBounds(w) {
			return nil, fmt.Errorf("%w: wall at (%d,%d)", ErrOutOfBounds, w.X, w.Y)
		}
		walls[w.Y][w.X] = true
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within [0,width)×[0,height).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cost returns the movement cost of entering c.
// Callers must bounds-check before calling; out-of-range cells are a
// programming error and return ErrOutOfBounds, never a recovery path.
// Complexity: O(1).
func (g *Grid) Cost(c Cell) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}

	return g.costs[c.Y][c.X], nil
}

// IsWall reports whether c is a static wall. Out-of-range queries return
// false so callers may probe defensively without bounds-checking first.
// Complexity: O(1).
func (g *Grid) IsWall(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}

	return g.walls[c.Y][c.X]
}

// Passable reports whether c is in bounds and not a wall.
// Complexity: O(1).
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && !g.walls[c.Y][c.X]
}

// Neighbors returns the up-to-4 cardinally adjacent cells of c that are
// in bounds and not walls, always in the fixed order up, down, left,
// right. This order is the tie-break order for every search.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// SetWall toggles the wall flag of c. This is the explicit external
// mutation endpoint (interactive editors); the agent owning an episode
// on this grid must be told via its Invalidate method, as plans are
// never revalidated against terrain implicitly.
// Returns ErrOutOfBounds for cells outside the grid.
func (g *Grid) SetWall(c Cell, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}
	g.walls[c.Y][c.X] = wall

	return nil
}
