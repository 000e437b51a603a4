package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkRandom measures seeded generation of a mid-size grid.
func BenchmarkRandom(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = grid.Random(100, 100, 7)
	}
}

// BenchmarkNeighbors measures the hot adjacency query used by every search.
func BenchmarkNeighbors(b *testing.B) {
	g, err := grid.Random(100, 100, 7)
	if err != nil {
		b.Fatalf("Random error: %v", err)
	}
	c := grid.Cell{X: 50, Y: 50}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(c)
	}
}
