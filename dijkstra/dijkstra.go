// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs
// using a lazy-decrease-key binary heap.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
)

// ShortestPath returns the minimum-total-weight path from start to target and
// its cost.
//
// The search stops the instant a non-stale entry for target is popped. When
// start == target the result is [start] with cost 0.
//
// Returns:
//
//   - path: canonical nodes from start to target.
//   - cost: sum of edge weights along path; +Inf whenever err != nil.
//   - err:  ErrGraphNil, ErrOptionViolation, ErrNoPath (missing endpoint or
//     unreachable target), ctx.Err(), or a wrapped OnVisit error.
func ShortestPath[T any](g *core.Graph[T], start, target string, opts ...Option) ([]core.Node[T], float64, error) {
	inf := math.Inf(1)
	r, err := newRunner(g, start, opts)
	if err != nil {
		return nil, inf, err
	}
	if !g.HasNode(target) {
		return nil, inf, ErrNoPath
	}

	cost, found, err := r.process(target, true)
	if err != nil {
		return nil, inf, err
	}
	if !found {
		return nil, inf, ErrNoPath
	}
	path, err := g.ResolvePath(core.ReconstructPath(r.parent, target))
	if err != nil {
		return nil, inf, err
	}

	return path, cost, nil
}

// Distances runs the full single-source search from start and returns the
// best known cost of every node (+Inf when unreachable or beyond MaxCost) and
// the parent map of the shortest-path tree.
//
// Returns ErrNoPath if start is absent.
func Distances[T any](g *core.Graph[T], start string, opts ...Option) (map[string]float64, map[string]string, error) {
	r, err := newRunner(g, start, opts)
	if err != nil {
		return nil, nil, err
	}
	if _, _, err = r.process("", false); err != nil {
		return nil, nil, err
	}

	return r.dist, r.parent, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T any] struct {
	g      *core.Graph[T]     // The input graph; read-only within Dijkstra.
	opts   Options            // Configuration options.
	dist   map[string]float64 // node ID → current best cost from start.
	parent map[string]string  // node ID → predecessor on the best path.
	pq     entryPQ            // Min-heap of entries.
	seq    uint64             // last sequence number handed out
}

// newRunner validates the inputs and seeds the heap with start at cost 0.
func newRunner[T any](g *core.Graph[T], start string, opts []Option) (*runner[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasNode(start) {
		return nil, ErrNoPath
	}

	ids := g.NodeIDs()
	r := &runner[T]{
		g:      g,
		opts:   cfg,
		dist:   make(map[string]float64, len(ids)),
		parent: make(map[string]string, len(ids)),
		pq:     make(entryPQ, 0, len(ids)),
	}
	// dist[v] = +∞ for every node, 0 for start.
	for _, id := range ids {
		r.dist[id] = math.Inf(1)
	}
	r.dist[start] = 0
	heap.Push(&r.pq, entry{cost: 0, seq: r.seq, id: start})

	return r, nil
}

// process is the core loop. It repeatedly pops the cheapest entry, drops it if
// stale, stops when target is settled (if hasTarget), and otherwise relaxes
// the node's outgoing edges.
//
// Returns the settled cost of target and whether it was reached.
func (r *runner[T]) process(target string, hasTarget bool) (float64, bool, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return 0, false, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(entry)

		// A cheaper path to this node was settled while the entry waited.
		// Queued costs never exceed MaxCost: relax refuses to push them.
		if item.cost > r.dist[item.id] {
			continue
		}

		if r.opts.OnVisit != nil {
			if err := r.opts.OnVisit(item.id, item.cost); err != nil {
				return 0, false, fmt.Errorf("dijkstra: OnVisit error at %q: %w", item.id, err)
			}
		}

		if hasTarget && item.id == target {
			return item.cost, true, nil
		}

		if err := r.relax(item); err != nil {
			return 0, false, err
		}
	}

	return 0, false, nil
}

// relax examines each outgoing edge of item.id and records strictly cheaper
// routes to its destinations, pushing a fresh entry for each improvement.
func (r *runner[T]) relax(item entry) error {
	edges, err := r.g.Edges(item.id)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %q: %w", item.id, err)
	}
	for _, e := range edges {
		v := e.To.ID()
		newCost := item.cost + e.Weight
		if newCost > r.opts.MaxCost {
			continue
		}
		// “<” rather than “≤”: equal-cost routes keep the first parent found.
		if newCost >= r.dist[v] {
			continue
		}
		r.dist[v] = newCost
		r.parent[v] = item.id

		r.seq++
		heap.Push(&r.pq, entry{cost: newCost, seq: r.seq, id: v})
	}

	return nil
}
