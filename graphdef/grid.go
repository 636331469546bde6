package graphdef

import (
	"strconv"

	"github.com/katalvlaran/navgraph/gridgraph"
)

// gridGraph converts the definition into a gridgraph.GridGraph.
func (g *GridDef) gridGraph() (*gridgraph.GridGraph, error) {
	opts := gridgraph.DefaultGridOptions()
	if g.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	if g.MinWalkable != nil {
		opts.MinWalkable = *g.MinWalkable
	}

	return gridgraph.NewGridGraph(g.Rows, opts)
}

// cellPayload labels a grid cell with its ID and coordinates.
func cellPayload(c gridgraph.Cell) Payload {
	return Payload{
		Label: gridgraph.CellID(c.X, c.Y),
		Tags: map[string]string{
			"x":    strconv.Itoa(c.X),
			"y":    strconv.Itoa(c.Y),
			"cost": strconv.Itoa(c.Value),
		},
	}
}
