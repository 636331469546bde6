package core

// ReconstructPath walks parent links backward from target until an ID has no
// predecessor, then reverses the walk so the result runs start → target.
//
// parent maps a child ID to the ID it was reached from. Every traversal in this
// module assigns a node's final parent before the node is finalized, so the
// map is acyclic and the walk terminates.
//
// Complexity: O(len(path)).
func ReconstructPath(parent map[string]string, target string) []string {
	path := []string{target}
	for cur := target; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ResolvePath maps IDs to the graph's canonical nodes, in order.
// Returns ErrNodeNotFound if any ID is unknown.
func (g *Graph[T]) ResolvePath(ids []string) ([]Node[T], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node[T], len(ids))
	for k, id := range ids {
		i, ok := g.index[id]
		if !ok {
			return nil, ErrNodeNotFound
		}
		out[k] = *g.nodes[i]
	}

	return out, nil
}

// PathIDs extracts node IDs from a path, in order.
func PathIDs[T any](path []Node[T]) []string {
	ids := make([]string, len(path))
	for i, n := range path {
		ids[i] = n.id
	}

	return ids
}

// PathWeight sums the cheapest edge weight along consecutive hops of ids.
// With parallel edges the minimum weight between each pair is used. Returns
// ErrNodeNotFound if an ID is unknown or a hop has no edge.
//
// Complexity: O(sum of out-degrees along the path).
func (g *Graph[T]) PathWeight(ids []string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total float64
	for k := 0; k+1 < len(ids); k++ {
		i, ok := g.index[ids[k]]
		if !ok {
			return 0, ErrNodeNotFound
		}
		best, found := 0.0, false
		for _, e := range g.adjacency[i] {
			if e.To.id == ids[k+1] && (!found || e.Weight < best) {
				best, found = e.Weight, true
			}
		}
		if !found {
			return 0, ErrNodeNotFound
		}
		total += best
	}

	return total, nil
}
