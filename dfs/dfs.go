// Package dfs implements an iterative, stack-based depth-first path search on core.Graph.
//
// Key features:
//   - Path(g, start, target, opts...): some path from start to target, not necessarily shortest
//   - Explicit stack: depth of the graph never grows the goroutine stack
//   - Hooks: OnVisit (on pop) with error aborts, OnPush for diagnostics
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) amortized, with at most O(E) redundant stack entries.
//   - Memory: O(V + E) for the stack and bookkeeping maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

// dfsWalker encapsulates state during one DFS query.
type dfsWalker[T any] struct {
	graph   *core.Graph[T]
	opts    Options
	stack   []string
	visited map[string]bool
	parent  map[string]string
}

// Path returns some path from start to target, or ErrNoPath.
//
// Visiting is marked at pop time, not push time: a node may sit on the stack
// several times (once per edge discovered before it is first popped), and the
// parent recorded by the latest push is the one in effect when it is popped.
// Neighbours are pushed in adjacency order, so the last-listed neighbour is
// explored first. The target is checked before the visited check.
//
// Returns ErrGraphNil for a nil graph, ErrNoPath when an endpoint is absent or
// target is unreachable, ctx.Err() on cancellation, or a wrapped hook error.
func Path[T any](g *core.Graph[T], start, target string, opts ...Option) ([]core.Node[T], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Missing endpoints are reported like unreachable targets
	if !g.HasNode(start) || !g.HasNode(target) {
		return nil, ErrNoPath
	}

	n := g.NodeCount()
	w := &dfsWalker[T]{
		graph:   g,
		opts:    dopts,
		stack:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
	}
	w.push(start, "")

	ids, err := w.run(target)
	if err != nil {
		return nil, err
	}

	return g.ResolvePath(ids)
}

// push records parent (unless empty) and places id on top of the stack.
func (w *dfsWalker[T]) push(id, parent string) {
	if parent != "" {
		w.parent[id] = parent
	}
	if w.opts.OnPush != nil {
		w.opts.OnPush(id, parent)
	}
	w.stack = append(w.stack, id)
}

// run pops until target surfaces or the stack is exhausted.
func (w *dfsWalker[T]) run(target string) ([]string, error) {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// 2. Pop (LIFO)
		top := len(w.stack) - 1
		cur := w.stack[top]
		w.stack = w.stack[:top]

		if cur == target {
			return core.ReconstructPath(w.parent, cur), nil
		}
		// 3. Redundant entry for an already expanded node
		if w.visited[cur] {
			continue
		}
		w.visited[cur] = true

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(cur); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook for %q: %w", cur, err)
			}
		}

		// 4. Push every unvisited destination in adjacency order
		edges, err := w.graph.Edges(cur)
		if err != nil {
			return nil, fmt.Errorf("dfs: edges of %q: %w", cur, err)
		}
		for _, e := range edges {
			if nid := e.To.ID(); !w.visited[nid] {
				w.push(nid, cur)
			}
		}
	}

	return nil, ErrNoPath
}
