package dfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/navgraph/dfs"
)

// BenchmarkPath_Chain measures DFS along a directed chain.
func BenchmarkPath_Chain(b *testing.B) {
	const n = 10000
	g := buildChain(b, n)
	target := "N" + strconv.Itoa(n-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Path(g, "N0", target)
	}
}
