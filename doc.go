// Package navgraph is an in-memory navigation graph with three path queries:
// fewest hops, any path, and lowest total weight.
//
// What is navgraph?
//
//	A small, generic library plus a CLI:
//		• core:     Graph[T] of Node[T] (identity by ID, any payload) and weighted Edge[T]
//		• bfs:      minimum-hop path (weights ignored)
//		• dfs:      some path, explored depth-first with an explicit stack
//		• dijkstra: minimum-total-weight path and single-source distances
//		• graphdef: YAML, JSON and HCL graph definitions, validated and built into core graphs
//		• query:    one-off and concurrent batch queries with logging and Prometheus metrics
//		• cmd/navgraph: the command-line front end
//
// Quick start:
//
//	g := core.NewGraph[string](core.WithNonNegativeWeights())
//	a, b := core.NewNode("A", "Entrance"), core.NewNode("B", "Dock")
//	_ = g.AddEdge(a, b, core.WithWeight(2.5))   // bidirectional by default
//
//	hops, _ := bfs.ShortestPath(g, "A", "B")
//	path, cost, err := dijkstra.ShortestPath(g, "A", "B")
//
// Every query returns canonical nodes from start to target inclusive;
// start == target yields the single-node path. A missing endpoint and an
// unreachable target both report the package's ErrNoPath (Dijkstra pairs it
// with a +Inf cost).
//
// Determinism: nodes and adjacency lists keep insertion order, so identical
// queries on an unchanged graph always return identical results.
package navgraph
