// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/Edges/EdgeCount.
// Determinism:
//   - Edges(id) returns the outgoing list in insertion order.
// Concurrency:
//   - Mutations under mu write lock, read queries under mu read lock.

package core

import "math"

// AddEdge links src to dest and returns nil on success.
//
// Steps:
//  1. Validate IDs and, when the graph was built WithNonNegativeWeights, the weight.
//  2. Ensure both endpoints (idempotent by ID; existing payloads win).
//  3. Append Edge{To: dest, Weight: w} to src's list.
//  4. If bidirectional (the default), append Edge{To: src, Weight: w} to dest's list.
//
// Parallel edges are never collapsed. A bidirectional self-loop stores two entries
// on the same list.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(src, dest Node[T], opts ...EdgeOption) error {
	if src.id == "" || dest.id == "" {
		return ErrEmptyNodeID
	}
	cfg := edgeConfig{weight: DefaultWeight, bidirectional: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.nonNegative && (cfg.weight < 0 || math.IsNaN(cfg.weight)) {
		return ErrNegativeWeight
	}

	si := g.ensureNode(src)
	di := g.ensureNode(dest)

	g.adjacency[si] = append(g.adjacency[si], Edge[T]{To: g.nodes[di], Weight: cfg.weight})
	g.edgeCount++
	if cfg.bidirectional {
		g.adjacency[di] = append(g.adjacency[di], Edge[T]{To: g.nodes[si], Weight: cfg.weight})
		g.edgeCount++
	}

	return nil
}

// Edges returns a copy of the outgoing edges of id in insertion order.
// Returns ErrNodeNotFound for unknown IDs.
// Complexity: O(d), d = out-degree of id.
func (g *Graph[T]) Edges(id string) ([]Edge[T], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Edge[T], len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// EdgeCount returns the number of stored directed entries; a bidirectional
// AddEdge contributes two.
// Complexity: O(1).
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
