// Package bfs provides breadth-first search over a core.Graph,
// returning a minimum-hop path between two nodes.
//
// BFS explores nodes in increasing hop count from a start node,
// with optional hooks, depth limiting, and cancellation.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one query.
type walker[T any] struct {
	graph   *core.Graph[T]
	opts    Options
	ctx     context.Context
	target  string
	queue   []queueItem
	visited map[string]bool
	parent  map[string]string
}

// ShortestPath returns the path from start to target with the fewest edges.
// Edge weights are ignored.
//
// Ties between equal-hop paths are broken by adjacency insertion order: the
// first neighbour listed is discovered, and becomes a parent, first.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// ErrNoPath when either endpoint is absent or target is unreachable, the
// context error on cancellation, or a wrapped OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath[T any](g *core.Graph[T], start, target string, opts ...Option) ([]core.Node[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Missing endpoints look exactly like an unreachable target.
	if !g.HasNode(start) || !g.HasNode(target) {
		return nil, ErrNoPath
	}

	n := g.NodeCount()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		target:  target,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, "")
	ids, err := w.loop()
	if err != nil {
		return nil, err
	}

	return g.ResolvePath(ids)
}

// enqueue marks id visited at depth d, records its parent and adds it to the queue.
func (w *walker[T]) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	if parent != "" {
		w.parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until the target is dequeued, the queue empties,
// a hook fails, or the context is cancelled.
func (w *walker[T]) loop() ([]string, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		if item.id == w.target {
			return core.ReconstructPath(w.parent, item.id), nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPath
}

// enqueueNeighbors enqueues each undiscovered destination of item's outgoing
// edges, in adjacency order, honoring MaxDepth.
func (w *walker[T]) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Edges(item.id)
	if err != nil {
		return fmt.Errorf("bfs: edges of %q: %w", item.id, err)
	}
	for _, e := range edges {
		// first time seen?
		if nbr := e.To.ID(); !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
