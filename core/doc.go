// Package core provides a generic, in-memory adjacency-list Graph with a
// minimal, append-only API surface.
//
// The Graph G = (V,E) stores:
//
//   - Nodes: identity-bearing values Node[T] (ID + payload). Identity is the ID alone,
//     so any payload type works, comparable or not.
//   - Edges: directed, weighted links Edge[T]{To, Weight}; each node owns an ordered
//     slice of its outgoing edges.
//   - Multigraph semantics: parallel edges between the same pair are kept.
//
// Why use core.Graph?
//
//   - Deterministic iteration: Nodes(), NodeIDs() and Edges(id) follow insertion order,
//     which is also the order every traversal in this module expands neighbours.
//   - Undirected by default: AddEdge stores the reverse edge too unless
//     WithBidirectional(false) is given.
//   - Shared path helper: ReconstructPath turns a parent map into an ordered path.
//
// Options:
//
//	– WithNonNegativeWeights()
//	    AddEdge(weight < 0 or NaN) → ErrNegativeWeight.
//
// EdgeOptions:
//
//	– WithWeight(w float64)          default 1.0
//	– WithBidirectional(b bool)      default true
//
// Core Methods:
//
//	AddNode(n Node[T]) error                         // O(1), idempotent by ID
//	AddEdge(src, dest Node[T], opts...) error        // O(1), auto-adds endpoints
//	HasNode(id string) bool                          // O(1)
//	Node(id string) (Node[T], bool)                  // O(1)
//	Nodes() []Node[T]                                // O(V), insertion order
//	Edges(id string) ([]Edge[T], error)              // O(d), insertion order
//	NodeCount(), EdgeCount() int                     // O(1)
//	Stats() GraphStats                               // O(V+E)
//	Clone() *Graph[T]                                // O(V+E)
//
// Concurrency: every call takes the graph's RWMutex, so concurrent readers are
// safe. Structural mutation during a traversal is a caller error; the lock only
// protects individual calls, not a whole query.
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrNodeNotFound   – missing node
//	ErrNegativeWeight – negative weight on a WithNonNegativeWeights graph
package core
