// Package dijkstra finds minimum-total-weight paths on a core.Graph.
//
// What
//
//   - ShortestPath(g, start, target): path and cost, stopping as soon as target is settled.
//   - Distances(g, start): full single-source cost map plus the shortest-path tree.
//
// Behaviour
//
//   - Heap entries are (cost, seq, id); seq is a strictly increasing counter that
//     only breaks ties between equal costs, so payloads and IDs are never compared.
//   - Stale entries (cost above the recorded best) are dropped before anything else.
//   - Relaxation uses strict “<”: among equal-cost routes the first one found wins.
//   - Parallel edges are all relaxed; the cheapest one naturally prevails.
//
// Preconditions
//
//	Edge weights must be non-negative. This is not checked here; build the graph
//	with core.WithNonNegativeWeights() to reject offending edges at insertion.
//
// Errors
//
//   - ErrGraphNil:        nil graph.
//   - ErrNoPath:          missing endpoint or unreachable target (cost = +Inf).
//   - ErrOptionViolation: MaxCost < 0 or NaN.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package dijkstra
