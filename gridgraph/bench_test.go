package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/navgraph/gridgraph"
)

// randomPlan builds a deterministic n×n plan with values in [0,4].
func randomPlan(n int) [][]int {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5)
		}
		grid[y] = row
	}

	return grid
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 1000×1000 plan.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomPlan(1000), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkToCoreGraph measures graph conversion of a 200×200 plan.
func BenchmarkToCoreGraph(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(randomPlan(200), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.ToCoreGraph(gg, func(c gridgraph.Cell) int { return c.Value })
	}
}
