// Package dynamic defines core types, options, and sentinel errors
// for the dynamic subpackage of github.com/katalvlaran/gridpath.
package dynamic

import (
	"errors"
)

// Sentinel errors for obstacle construction and generation.
var (
	// ErrEmptyRoute indicates an obstacle was given no patrol cells.
	ErrEmptyRoute = errors.New("dynamic: patrol route must contain at least one cell")
	// ErrBadStartIndex indicates a start index outside the route.
	ErrBadStartIndex = errors.New("dynamic: start index out of route range")
	// ErrGridNil indicates a nil grid passed to Random.
	ErrGridNil = errors.New("dynamic: grid is nil")
	// ErrNoRoom indicates the grid has no wall-free lane for a patrol.
	ErrNoRoom = errors.New("dynamic: no passable lane available for patrol generation")
)

// ObstacleOption configures obstacle construction via functional arguments.
type ObstacleOption func(*obstacleOptions)

// obstacleOptions holds tunable parameters for NewObstacle.
type obstacleOptions struct {
	startIndex int
	holdLast   bool
	err        error
}

// WithStartIndex places the obstacle at route[i] at time 0 instead of
// route[0]. Indices outside [0, len(route)) surface as ErrBadStartIndex.
func WithStartIndex(i int) ObstacleOption {
	return func(o *obstacleOptions) {
		if i < 0 {
			o.err = ErrBadStartIndex

			return
		}
		o.startIndex = i
	}
}

// WithHoldLast switches the obstacle from cyclic patrol to run-once mode:
// after reaching the end of its route it parks on the final cell forever.
func WithHoldLast() ObstacleOption {
	return func(o *obstacleOptions) {
		o.holdLast = true
	}
}
