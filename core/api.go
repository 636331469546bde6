// File: api.go
// Role: Read-only getters, snapshots and cloning on top of the core types.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking.

package core

// NonNegativeWeights reports whether AddEdge rejects negative weights.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[T]) NonNegativeWeights() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nonNegative
}

// Stats produces a read-only snapshot of the weight policy and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan every adjacency list once for self-loops and the maximum out-degree.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph[T]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount:          len(g.nodes),
		EdgeCount:          g.edgeCount,
		NonNegativeWeights: g.nonNegative,
	}
	for i, edges := range g.adjacency {
		if len(edges) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(edges)
		}
		for _, e := range edges {
			if e.To == g.nodes[i] {
				stats.SelfLoops++
			}
		}
	}

	return stats
}

// Clone returns a deep copy of the graph: policy, nodes and edge lists, all
// in the same order. Payloads are copied by value (shallow for reference types).
//
// Complexity: O(V + E). Concurrency: read lock on the source only.
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[T]{
		nonNegative: g.nonNegative,
		index:       make(map[string]int, len(g.index)),
		nodes:       make([]*Node[T], len(g.nodes)),
		adjacency:   make([][]Edge[T], len(g.adjacency)),
		edgeCount:   g.edgeCount,
	}
	for i, n := range g.nodes {
		cp := *n
		clone.nodes[i] = &cp
		clone.index[n.id] = i
	}
	// Re-point every edge at the clone's canonical nodes.
	for i, edges := range g.adjacency {
		if edges == nil {
			continue
		}
		out := make([]Edge[T], len(edges))
		for j, e := range edges {
			out[j] = Edge[T]{To: clone.nodes[g.index[e.To.id]], Weight: e.Weight}
		}
		clone.adjacency[i] = out
	}

	return clone
}
