// Package gridgraph turns a 2D floor plan into a navigation graph.
//
// Cells with value ≥ MinWalkable are walkable; the value is the cost of
// stepping into the cell. Everything else is a wall.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadThreshold if
// opts.MinWalkable < 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.MinWalkable < 0 {
		return nil, fmt.Errorf("%w (%d)", ErrBadThreshold, opts.MinWalkable)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		MinWalkable:     opts.MinWalkable,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.MinWalkable
}

// CellID formats the node ID used for cell (x,y): "x,y".
func CellID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// WalkableIDs lists the IDs of walkable cells in row-major order.
func (gg *GridGraph) WalkableIDs() []string {
	var ids []string
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Walkable(x, y) {
				ids = append(ids, CellID(x, y))
			}
		}
	}

	return ids
}

// ToCoreGraph converts the walkable cells of gg into a graph that rejects
// negative weights. Each walkable cell becomes a node "x,y" with payload
// payload(cell), added in row-major order. For every pair of walkable
// neighbours a directed edge u→v is added with weight Value(v), scaled by √2
// for diagonal steps under Conn8; edges leave each cell in neighbour-offset
// order (N, E, S, W, diagonals interleaved for Conn8).
//
// Complexity: O(W×H×d) time and memory.
func ToCoreGraph[T any](gg *GridGraph, payload func(Cell) T) (*core.Graph[T], error) {
	g := core.NewGraph[T](core.WithNonNegativeWeights())
	nodes := make(map[int]core.Node[T])
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			n := core.NewNode(CellID(x, y), payload(Cell{X: x, Y: y, Value: gg.CellValues[y][x]}))
			if err := g.AddNode(n); err != nil {
				return nil, err
			}
			nodes[gg.index(x, y)] = n
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u, ok := nodes[gg.index(x, y)]
			if !ok {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Walkable(nx, ny) {
					continue
				}
				w := float64(gg.CellValues[ny][nx])
				if d[0] != 0 && d[1] != 0 {
					w *= math.Sqrt2
				}
				if err := g.AddEdge(u, nodes[gg.index(nx, ny)], core.WithWeight(w), core.WithBidirectional(false)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
