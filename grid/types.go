// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrBadCost indicates a terrain cost below MinCost.
	ErrBadCost = errors.New("grid: cell cost must be ≥ 1")
	// ErrNonRectangular indicates cost rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all cost rows must have the same length")
	// ErrOutOfBounds indicates a cell queried outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// MinCost is the smallest legal terrain cost; no move is ever cheaper.
// This bound is what makes the Manhattan heuristic admissible in search.
const MinCost = 1

// MaxCost is the largest terrain cost emitted by Random.
const MaxCost = 5

// Cell is an (X, Y) coordinate pair on a grid.
// It is an immutable value type: equality and map keying work by coordinates.
type Cell struct {
	X, Y int
}

// Manhattan returns |a.X−b.X| + |a.Y−b.Y|, the taxicab distance between
// two cells. Complexity: O(1).
func Manhattan(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// neighborOffsets lists the 4-neighborhood in the fixed order
// up, down, left, right. This order is load-bearing: it determines
// tie-break order in every search algorithm and in hill-climbing,
// which in turn makes plans byte-identical across runs.
var neighborOffsets = [4][2]int{
	{0, -1}, // up
	{0, 1},  // down
	{-1, 0}, // left
	{1, 0},  // right
}

// Options holds tunable parameters for constructing a Grid.
type Options struct {
	// DefaultCost fills every cell when Costs is nil. Must be ≥ MinCost.
	DefaultCost int
	// Costs, when non-nil, supplies per-cell terrain costs addressed as
	// Costs[y][x]. Must be rectangular, height rows × width columns.
	Costs [][]int
	// Walls lists cells that are impassable for the episode.
	Walls []Cell

	// internal error recorded during option parsing
	err error
}

// Option configures Grid construction via functional arguments.
// Invalid values are recorded internally and surfaced by New.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// uniform terrain of DefaultCost=MinCost and no walls.
func DefaultOptions() Options {
	return Options{
		DefaultCost: MinCost,
		Costs:       nil,
		Walls:       nil,
		err:         nil,
	}
}

// WithDefaultCost sets the uniform terrain cost used when no cost
// matrix is supplied. Values below MinCost surface as ErrBadCost.
func WithDefaultCost(cost int) Option {
	return func(o *Options) {
		if cost < MinCost {
			o.err = ErrBadCost

			return
		}
		o.DefaultCost = cost
	}
}

// WithCosts supplies a full terrain-cost matrix addressed as costs[y][x].
// Dimension and value validation happens in New, where width and height
// are known.
func WithCosts(costs [][]int) Option {
	return func(o *Options) {
		o.Costs = costs
	}
}

// WithWalls marks the given cells as static walls.
// Out-of-bounds walls surface as ErrOutOfBounds from New.
func WithWalls(walls ...Cell) Option {
	return func(o *Options) {
		o.Walls = append(o.Walls, walls...)
	}
}
