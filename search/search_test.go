package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/dynamic"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// FindPathSuite exercises the shared expansion skeleton under all three
// algorithms and the forecaster-aware conflict pruning.
type FindPathSuite struct {
	suite.Suite
}

// uniform returns a width×height grid of all-1 costs, failing the test on error.
func (s *FindPathSuite) uniform(width, height int) *grid.Grid {
	g, err := grid.New(width, height)
	require.NoError(s.T(), err)

	return g
}

// TestOpenScenario verifies the canonical 5×5 open-grid scenario:
// all three algorithms return a 9-cell path (8 moves) of cost 8.
func (s *FindPathSuite) TestOpenScenario() {
	g := s.uniform(5, 5)
	start := grid.Cell{X: 0, Y: 0}
	goal := grid.Cell{X: 4, Y: 4}

	for _, algo := range search.Algorithms() {
		res, err := search.FindPath(g, start, goal, search.WithAlgorithm(algo))
		require.NoError(s.T(), err, "%v", algo)
		require.Equal(s.T(), 9, res.Plan.Len(), "%v path length", algo)
		require.Equal(s.T(), 8, res.Plan.Cost(), "%v path cost", algo)
		require.Equal(s.T(), start, res.Plan.Steps[0].Cell)
		require.Equal(s.T(), goal, res.Plan.Steps[len(res.Plan.Steps)-1].Cell)
	}
}

// TestExpensiveCellScenario pins the BFS-vs-cost trade-off: a single
// cost-5 cell sits on the only 4-move corridor, while a detour two moves
// longer costs 1 per cell. BFS takes the short route regardless of cost;
// UCS and A* pay the two extra moves to go around.
func (s *FindPathSuite) TestExpensiveCellScenario() {
	g, err := grid.New(5, 3, grid.WithCosts([][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 5, 1, 1},
		{1, 1, 1, 1, 1},
	}))
	require.NoError(s.T(), err)
	start := grid.Cell{X: 0, Y: 1}
	goal := grid.Cell{X: 4, Y: 1}

	bfs, err := search.FindPath(g, start, goal, search.WithAlgorithm(search.BFS))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, bfs.Plan.Len(), "BFS keeps the fewest-moves route")
	require.Equal(s.T(), 8, bfs.Plan.Cost(), "BFS pays the expensive cell")

	for _, algo := range []search.Algorithm{search.UCS, search.AStar} {
		res, err := search.FindPath(g, start, goal, search.WithAlgorithm(algo))
		require.NoError(s.T(), err, "%v", algo)
		require.Equal(s.T(), 7, res.Plan.Len(), "%v detours two extra moves", algo)
		require.Equal(s.T(), 6, res.Plan.Cost(), "%v pays 1 per cell", algo)
	}

	// The up-before-down neighbor order makes the detour go via y=0.
	ucs, err := search.FindPath(g, start, goal, search.WithAlgorithm(search.UCS))
	require.NoError(s.T(), err)
	wantCells := []grid.Cell{
		{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1},
	}
	require.Equal(s.T(), wantCells, ucs.Plan.Cells())
}

// TestOptimalCostsAgree verifies that on seeded random grids UCS and A*
// always agree on the minimal cost and that A* expands no more nodes.
func (s *FindPathSuite) TestOptimalCostsAgree() {
	for _, seed := range []int64{3, 5, 7, 11, 13} {
		g, err := grid.Random(20, 12, seed)
		require.NoError(s.T(), err)
		start := grid.Cell{X: 0, Y: 0}
		goal := grid.Cell{X: 19, Y: 11}

		ucs, errUCS := search.FindPath(g, start, goal, search.WithAlgorithm(search.UCS))
		astar, errA := search.FindPath(g, start, goal, search.WithAlgorithm(search.AStar))

		if errors.Is(errUCS, search.ErrNoPath) {
			require.True(s.T(), errors.Is(errA, search.ErrNoPath), "seed %d: UCS found no path but A* did", seed)

			continue
		}
		require.NoError(s.T(), errUCS, "seed %d", seed)
		require.NoError(s.T(), errA, "seed %d", seed)
		require.Equal(s.T(), ucs.Plan.Cost(), astar.Plan.Cost(), "seed %d: optimal costs disagree", seed)
		require.LessOrEqual(s.T(), astar.Expanded, ucs.Expanded, "seed %d: A* expanded more than UCS", seed)

		bfs, errBFS := search.FindPath(g, start, goal, search.WithAlgorithm(search.BFS))
		require.NoError(s.T(), errBFS, "seed %d", seed)
		require.LessOrEqual(s.T(), bfs.Plan.Len(), ucs.Plan.Len(), "seed %d: BFS not fewest-moves", seed)
		require.GreaterOrEqual(s.T(), bfs.Plan.Cost(), ucs.Plan.Cost(), "seed %d: UCS not minimal", seed)
	}
}

// TestDeterminism verifies byte-identical plans across repeated runs.
func (s *FindPathSuite) TestDeterminism() {
	g, err := grid.Random(20, 12, 7)
	require.NoError(s.T(), err)
	fc, err := dynamic.Random(g, 7, 0)
	require.NoError(s.T(), err)
	start := grid.Cell{X: 0, Y: 0}
	goal := grid.Cell{X: 19, Y: 11}

	for _, algo := range search.Algorithms() {
		a, errA := search.FindPath(g, start, goal,
			search.WithAlgorithm(algo), search.WithForecaster(fc))
		b, errB := search.FindPath(g, start, goal,
			search.WithAlgorithm(algo), search.WithForecaster(fc))
		if errA != nil {
			require.True(s.T(), errors.Is(errA, search.ErrNoPath))
			require.True(s.T(), errors.Is(errB, search.ErrNoPath))

			continue
		}
		require.NoError(s.T(), errB)
		require.Equal(s.T(), a.Plan, b.Plan, "%v plans differ across runs", algo)
		require.Equal(s.T(), a.Expanded, b.Expanded, "%v expansion counts differ", algo)
	}
}

// TestEnclosedGoal verifies ErrNoPath when the goal is walled in.
func (s *FindPathSuite) TestEnclosedGoal() {
	g, err := grid.New(5, 5, grid.WithWalls(
		grid.Cell{X: 3, Y: 4}, grid.Cell{X: 3, Y: 3}, grid.Cell{X: 4, Y: 3},
	))
	require.NoError(s.T(), err)

	for _, algo := range search.Algorithms() {
		_, err := search.FindPath(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4},
			search.WithAlgorithm(algo))
		require.True(s.T(), errors.Is(err, search.ErrNoPath), "%v: err = %v", algo, err)
	}
}

// TestForecastConflictAvoided verifies proactive avoidance: an obstacle
// bounces on the direct route's middle cell with the same parity as the
// agent's arrival, so the planner must route spatially around it.
func (s *FindPathSuite) TestForecastConflictAvoided() {
	g := s.uniform(5, 3)
	start := grid.Cell{X: 0, Y: 1}
	goal := grid.Cell{X: 4, Y: 1}

	// Patrol (2,1)↔(2,0): on (2,1) at even t, on (2,0) at odd t.
	// The direct route would arrive at (2,1) at t=2 (blocked) and any
	// y=0 detour would hit (2,0) at t=3 (blocked); the y=2 detour is free.
	obstacle, err := dynamic.NewObstacle([]grid.Cell{{X: 2, Y: 1}, {X: 2, Y: 0}})
	require.NoError(s.T(), err)
	fc := dynamic.NewForecaster(obstacle)

	res, err := search.FindPath(g, start, goal,
		search.WithAlgorithm(search.AStar), search.WithForecaster(fc))
	require.NoError(s.T(), err)

	// Wherever the plan goes, no step may coincide with the obstacle at
	// its arrival time.
	for i, step := range res.Plan.Steps {
		require.False(s.T(), fc.OccupiedAt(step.Cell, i),
			"plan step %d at %v collides with forecast obstacle", i, step.Cell)
	}
}

// TestStartOccupied verifies ErrNoPath when departure is impossible.
func (s *FindPathSuite) TestStartOccupied() {
	g := s.uniform(3, 3)
	obstacle, err := dynamic.NewObstacle([]grid.Cell{{X: 0, Y: 0}})
	require.NoError(s.T(), err)
	fc := dynamic.NewForecaster(obstacle)

	_, err = search.FindPath(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2},
		search.WithForecaster(fc))
	require.True(s.T(), errors.Is(err, search.ErrNoPath))
}

// TestStartEqualsGoal verifies the degenerate single-cell plan.
func (s *FindPathSuite) TestStartEqualsGoal() {
	g := s.uniform(3, 3)
	c := grid.Cell{X: 1, Y: 1}
	res, err := search.FindPath(g, c, c)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Plan.Len())
	require.Equal(s.T(), 0, res.Plan.Cost())
}

// TestInputValidation verifies the caller-bug sentinels.
func (s *FindPathSuite) TestInputValidation() {
	_, err := search.FindPath(nil, grid.Cell{}, grid.Cell{})
	require.True(s.T(), errors.Is(err, search.ErrGridNil))

	g := s.uniform(3, 3)
	_, err = search.FindPath(g, grid.Cell{X: -1, Y: 0}, grid.Cell{X: 2, Y: 2})
	require.True(s.T(), errors.Is(err, search.ErrEndpointOutOfBounds))

	gw, err := grid.New(3, 3, grid.WithWalls(grid.Cell{X: 2, Y: 2}))
	require.NoError(s.T(), err)
	_, err = search.FindPath(gw, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2})
	require.True(s.T(), errors.Is(err, search.ErrEndpointWall))

	_, err = search.FindPath(g, grid.Cell{}, grid.Cell{X: 2, Y: 2}, search.WithStartTime(-1))
	require.True(s.T(), errors.Is(err, search.ErrOptionViolation))

	_, err = search.FindPath(g, grid.Cell{}, grid.Cell{X: 2, Y: 2}, search.WithMaxExpansions(-1))
	require.True(s.T(), errors.Is(err, search.ErrOptionViolation))
}

// TestMaxExpansions verifies the budget surfaces as ErrNoPath.
func (s *FindPathSuite) TestMaxExpansions() {
	g := s.uniform(10, 10)
	_, err := search.FindPath(g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 9, Y: 9},
		search.WithAlgorithm(search.BFS), search.WithMaxExpansions(3))
	require.True(s.T(), errors.Is(err, search.ErrNoPath))
}

func TestFindPathSuite(t *testing.T) {
	suite.Run(t, new(FindPathSuite))
}

// TestParseAlgorithm covers the name round-trip and the unknown sentinel.
func TestParseAlgorithm(t *testing.T) {
	for _, algo := range search.Algorithms() {
		got, err := search.ParseAlgorithm(algo.String())
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q) error: %v", algo.String(), err)
		}
		if got != algo {
			t.Errorf("ParseAlgorithm(%q) = %v; want %v", algo.String(), got, algo)
		}
	}
	if _, err := search.ParseAlgorithm("dijkstra"); !errors.Is(err, search.ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(dijkstra) error = %v; want ErrUnknownAlgorithm", err)
	}
}

// TestPlanAccessors covers the nil-tolerant Plan helpers.
func TestPlanAccessors(t *testing.T) {
	var p *search.Plan
	if p.Len() != 0 || p.Cost() != 0 || p.Cells() != nil {
		t.Error("nil plan accessors must all report emptiness")
	}
	if p.String() != "<empty plan>" {
		t.Errorf("nil plan String = %q", p.String())
	}
}
