package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleFindPath compares the three strategies on a grid with one
// expensive cell sitting on the fewest-moves corridor.
func ExampleFindPath() {
	g, err := grid.New(5, 3, grid.WithCosts([][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 5, 1, 1},
		{1, 1, 1, 1, 1},
	}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	start := grid.Cell{X: 0, Y: 1}
	goal := grid.Cell{X: 4, Y: 1}

	for _, algo := range search.Algorithms() {
		res, err := search.FindPath(g, start, goal, search.WithAlgorithm(algo))
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s: moves=%d cost=%d\n", algo, res.Plan.Len()-1, res.Plan.Cost())
	}
	// Output:
	// bfs: moves=4 cost=8
	// ucs: moves=6 cost=6
	// astar: moves=6 cost=6
}
