package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/navgraph/bfs"
	"github.com/katalvlaran/navgraph/core"
)

// BenchmarkShortestPath_Chain measures BFS end to end on a linear chain of size N.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph[int]()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(core.NewNode(fmt.Sprintf("v%d", i), i), core.NewNode(fmt.Sprintf("v%d", i+1), i+1))
	}
	target := fmt.Sprintf("v%d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, "v0", target)
	}
}

// BenchmarkShortestPath_BinaryTree runs BFS to the last leaf of a complete binary tree.
func BenchmarkShortestPath_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1
	g := core.NewGraph[int]()
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := core.NewNode(fmt.Sprintf("%d", i), i)
		_ = g.AddEdge(p, core.NewNode(fmt.Sprintf("%d", 2*i), 2*i))
		_ = g.AddEdge(p, core.NewNode(fmt.Sprintf("%d", 2*i+1), 2*i+1))
	}
	target := fmt.Sprintf("%d", nodeCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, "1", target)
	}
}
