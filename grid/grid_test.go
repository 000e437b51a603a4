package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed dimensions, costs and walls.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		opts []grid.Option
		err  error
	}{
		{"ZeroWidth", 0, 3, nil, grid.ErrBadDimensions},
		{"NegativeHeight", 3, -1, nil, grid.ErrBadDimensions},
		{"BadDefaultCost", 3, 3, []grid.Option{grid.WithDefaultCost(0)}, grid.ErrBadCost},
		{"RaggedCosts", 2, 2, []grid.Option{grid.WithCosts([][]int{{1, 1}, {1}})}, grid.ErrNonRectangular},
		{"WrongRowCount", 2, 2, []grid.Option{grid.WithCosts([][]int{{1, 1}})}, grid.ErrNonRectangular},
		{"ZeroCost", 2, 2, []grid.Option{grid.WithCosts([][]int{{1, 1}, {1, 0}})}, grid.ErrBadCost},
		{"WallOutOfBounds", 2, 2, []grid.Option{grid.WithWalls(grid.Cell{X: 5, Y: 0})}, grid.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopiesCosts ensures the caller cannot mutate terrain after construction.
func TestNew_DeepCopiesCosts(t *testing.T) {
	costs := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(2, 2, grid.WithCosts(costs))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	costs[0][0] = 9
	got, err := g.Cost(grid.Cell{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if got != 1 {
		t.Errorf("Cost(0,0) = %d after external mutation; want 1", got)
	}
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	valid := []grid.Cell{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v) = false; want true", c)
		}
	}
	invalid := []grid.Cell{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v) = true; want false", c)
		}
	}
}

// TestCost_OutOfBounds verifies the ErrOutOfBounds contract of Cost.
func TestCost_OutOfBounds(t *testing.T) {
	g, _ := grid.New(2, 2)
	if _, err := g.Cost(grid.Cell{X: 2, Y: 0}); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Cost out of range error = %v; want ErrOutOfBounds", err)
	}
}

// TestIsWall_DefensiveOutOfRange verifies IsWall returns false outside the grid.
func TestIsWall_DefensiveOutOfRange(t *testing.T) {
	g, _ := grid.New(2, 2, grid.WithWalls(grid.Cell{X: 1, Y: 1}))
	if !g.IsWall(grid.Cell{X: 1, Y: 1}) {
		t.Error("IsWall(1,1) = false; want true")
	}
	if g.IsWall(grid.Cell{X: -1, Y: 7}) {
		t.Error("IsWall out of range = true; want false")
	}
}

// TestNeighbors_OrderAndFiltering pins the up/down/left/right contract:
// the order is the tie-break order of every search, so it must not drift.
func TestNeighbors_OrderAndFiltering(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithWalls(grid.Cell{X: 1, Y: 0}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Center cell: up (1,0) is a wall, so expect down, left, right.
	got := g.Neighbors(grid.Cell{X: 1, Y: 1})
	want := []grid.Cell{{X: 1, Y: 2}, {X: 0, Y: 1}, {X: 2, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(1,1) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(1,1)[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	// Corner cell keeps down then right.
	got = g.Neighbors(grid.Cell{X: 0, Y: 0})
	want = []grid.Cell{{X: 0, Y: 1}}
	// up (0,-1) out of bounds, down (0,1) passable, left out of bounds,
	// right (1,0) is a wall.
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Neighbors(0,0) = %v; want %v", got, want)
	}
}

// TestSetWall verifies toggling and its ErrOutOfBounds contract.
func TestSetWall(t *testing.T) {
	g, _ := grid.New(2, 2)
	c := grid.Cell{X: 0, Y: 1}
	if err := g.SetWall(c, true); err != nil {
		t.Fatalf("SetWall error: %v", err)
	}
	if !g.IsWall(c) {
		t.Error("IsWall after SetWall(true) = false; want true")
	}
	if err := g.SetWall(c, false); err != nil {
		t.Fatalf("SetWall error: %v", err)
	}
	if g.IsWall(c) {
		t.Error("IsWall after SetWall(false) = true; want false")
	}
	if err := g.SetWall(grid.Cell{X: 9, Y: 9}, true); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("SetWall out of range error = %v; want ErrOutOfBounds", err)
	}
}

// TestManhattan checks the distance helper on a few pairs.
func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b grid.Cell
		want int
	}{
		{grid.Cell{}, grid.Cell{}, 0},
		{grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4}, 8},
		{grid.Cell{X: 3, Y: 1}, grid.Cell{X: 1, Y: 5}, 6},
	}
	for _, tc := range cases {
		if got := grid.Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
