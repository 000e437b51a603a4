package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Step is one element of a Plan: a cell plus the terrain cost
// accumulated to reach it from the plan's first cell.
type Step struct {
	Cell grid.Cell
	G    int
}

// Plan is an ordered path from start to goal. Steps[0] is the start cell
// with G==0; each adjacent pair is one cardinal move. A Plan is produced
// by FindPath and owned exclusively by its consumer; on replan it is
// discarded and replaced wholesale, never patched.
type Plan struct {
	Steps []Step
}

// Len returns the number of cells in the plan (moves + 1).
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Steps)
}

// Cost returns the total accumulated terrain cost of the plan.
func (p *Plan) Cost() int {
	if p == nil || len(p.Steps) == 0 {
		return 0
	}

	return p.Steps[len(p.Steps)-1].G
}

// Cells returns the path as a bare cell sequence.
func (p *Plan) Cells() []grid.Cell {
	if p == nil {
		return nil
	}
	out := make([]grid.Cell, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.Cell
	}

	return out
}

// String renders the plan as "(x,y)→(x,y)→… cost=N" for logs and tests.
func (p *Plan) String() string {
	if p == nil || len(p.Steps) == 0 {
		return "<empty plan>"
	}
	var b strings.Builder
	for i, s := range p.Steps {
		if i > 0 {
			b.WriteString("→")
		}
		fmt.Fprintf(&b, "(%d,%d)", s.Cell.X, s.Cell.Y)
	}
	fmt.Fprintf(&b, " cost=%d", p.Cost())

	return b.String()
}
