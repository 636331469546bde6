// Package core defines the central Graph, Node, and Edge types,
// and provides the primitives for building and querying adjacency-list graphs.
//
// This file declares Node, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrNegativeWeight - negative or NaN weight on a graph built WithNonNegativeWeights.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates a negative (or NaN) weight was offered to a graph
	// constructed with WithNonNegativeWeights.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// DefaultWeight is the weight given to edges added without WithWeight.
const DefaultWeight = 1.0

// Node is an immutable, identity-bearing graph node with a generic payload.
//
// Two nodes are the same node iff their IDs match; the payload never takes part
// in equality, so T does not need to be comparable.
type Node[T any] struct {
	id      string
	payload T
}

// NewNode returns a Node with the given identity and payload.
func NewNode[T any](id string, payload T) Node[T] {
	return Node[T]{id: id, payload: payload}
}

// ID returns the node identity.
func (n Node[T]) ID() string { return n.id }

// Payload returns the value carried by the node.
func (n Node[T]) Payload() T { return n.payload }

// Equal reports whether n and other share an ID.
func (n Node[T]) Equal(other Node[T]) bool { return n.id == other.id }

// String renders the node as Node(<id>).
func (n Node[T]) String() string { return "Node(" + n.id + ")" }

// Edge is a directed, weighted link to a destination node.
//
// To points at the canonical node stored in the owning Graph; the edge never
// owns it.
type Edge[T any] struct {
	// To is the destination node.
	To *Node[T]

	// Weight is the traversal cost. Dijkstra assumes it is non-negative.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	nonNegative bool
}

// WithNonNegativeWeights makes AddEdge reject negative and NaN weights with
// ErrNegativeWeight. Without it weights are stored unvalidated.
func WithNonNegativeWeights() GraphOption {
	return func(c *graphConfig) { c.nonNegative = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight        float64
	bidirectional bool
}

// WithWeight sets the edge weight (default DefaultWeight).
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// WithBidirectional controls whether AddEdge also stores the reverse edge
// (default true).
func WithBidirectional(b bool) EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = b }
}

// Graph is an append-only adjacency-list graph.
//
// Nodes are kept in insertion order, and so is every outgoing edge list; that
// order is the traversal order of every algorithm in this module.
// mu makes each individual call atomic. Mutating the graph while a traversal
// is running is not supported.
type Graph[T any] struct {
	mu sync.RWMutex

	nonNegative bool // reject negative weights in AddEdge

	index     map[string]int // node ID → position in nodes/adjacency
	nodes     []*Node[T]     // canonical nodes, insertion order
	adjacency [][]Edge[T]    // adjacency[i] = outgoing edges of nodes[i]
	edgeCount int            // stored directed entries
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph[T any](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		nonNegative: cfg.nonNegative,
		index:       make(map[string]int),
	}
}

// GraphStats is a read-only snapshot of a graph's size and policy.
type GraphStats struct {
	NodeCount          int
	EdgeCount          int
	NonNegativeWeights bool
	SelfLoops          int // stored entries whose destination is their source
	MaxOutDegree       int
}
