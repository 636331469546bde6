package graphdef

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/gridgraph"
)

// Build validates d and builds a graph rejecting negative weights. Grid cells
// and their moves come first (see gridgraph.ToCoreGraph), then declared nodes
// in document order, then edges in document order, so the graph's iteration
// order (and every traversal tie-break) follows the file.
func (d *Document) Build() (*core.Graph[Payload], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph[Payload](core.WithNonNegativeWeights())
	if d.Grid != nil {
		gg, err := d.Grid.gridGraph()
		if err != nil {
			return nil, fmt.Errorf("graphdef: grid: %w", err)
		}
		if g, err = gridgraph.ToCoreGraph(gg, cellPayload); err != nil {
			return nil, fmt.Errorf("graphdef: grid: %w", err)
		}
	}
	nodes := make(map[string]core.Node[Payload], len(d.Nodes))
	for _, n := range g.Nodes() {
		nodes[n.ID()] = n
	}
	for _, n := range d.Nodes {
		node := core.NewNode(n.ID, Payload{Label: n.Label, Tags: n.Tags})
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("graphdef: node %q: %w", n.ID, err)
		}
		nodes[n.ID] = node
	}
	lookup := func(id string) core.Node[Payload] {
		if n, ok := nodes[id]; ok {
			return n
		}
		return core.NewNode(id, Payload{})
	}

	for i, e := range d.Edges {
		opts := []core.EdgeOption{core.WithBidirectional(!d.Directed)}
		if e.Bidirectional != nil {
			opts = append(opts, core.WithBidirectional(*e.Bidirectional))
		}
		if e.Weight != nil {
			opts = append(opts, core.WithWeight(*e.Weight))
		}
		if err := g.AddEdge(lookup(e.From), lookup(e.To), opts...); err != nil {
			return nil, fmt.Errorf("graphdef: edges[%d] %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
