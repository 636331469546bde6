// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return nodes in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

// AddNode inserts n with an empty edge list if no node with the same ID exists.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under the write lock, register n unless its ID is already known.
//
// Behavior highlights:
//   - Idempotent by ID: re-adding an existing ID is a no-op and the stored payload is kept.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[T]) AddNode(n Node[T]) error {
	if n.id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(n)

	return nil
}

// ensureNode returns the index of n's ID, registering n first if absent.
// Caller must hold the write lock.
func (g *Graph[T]) ensureNode(n Node[T]) int {
	if i, ok := g.index[n.id]; ok {
		return i
	}
	stored := n // graph-owned copy
	g.nodes = append(g.nodes, &stored)
	g.adjacency = append(g.adjacency, nil)
	i := len(g.nodes) - 1
	g.index[n.id] = i

	return i
}

// HasNode reports whether a node with the given ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph[T]) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Node returns the canonical node stored under id.
// Complexity: O(1).
func (g *Graph[T]) Node(id string) (Node[T], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return Node[T]{}, false
	}

	return *g.nodes[i], true
}

// Nodes returns all nodes in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Nodes() []Node[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node[T], len(g.nodes))
	for i, n := range g.nodes {
		out[i] = *n
	}

	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph[T]) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.id
	}

	return ids
}

// NodeCount returns the current number of nodes.
// Complexity: O(1).
func (g *Graph[T]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
