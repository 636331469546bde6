// Package bfs provides a breadth-first search over a core.Graph that returns
// the minimum-hop path between two nodes.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node using a FIFO queue.
//   - A node is marked visited, and its parent recorded, the first time it is discovered.
//   - The first time the target is dequeued its path is rebuilt with core.ReconstructPath.
//   - Supports functional hooks:
//   - OnEnqueue (when a node is discovered)
//   - OnVisit   (when a node is dequeued; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Minimum edge count, not minimum weight: weights are ignored.
//     Use package dijkstra when weights matter.
//
// Determinism
//
//	Neighbours are enqueued in adjacency insertion order, so ties between paths
//	of equal hop count always resolve the same way for the same graph.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, parent map, visited set)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, "A", "D")
//	switch {
//	case errors.Is(err, bfs.ErrNoPath):
//	    // absent endpoint or unreachable target
//	case err != nil:
//	    // ErrGraphNil, ErrOptionViolation, context or hook errors
//	}
//
// Options
//
//   - WithContext(ctx):    set a custom context for cancellation.
//   - WithMaxDepth(d):     do not discover nodes beyond depth d (>0).
//   - WithOnEnqueue(fn):   hook on discovery.
//   - WithOnVisit(fn):     hook on dequeue; returning error aborts the search.
package bfs
