// Package gridgraph defines core types, options, and sentinel errors
// for floor-plan grids.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadThreshold indicates a negative MinWalkable.
	ErrBadThreshold = errors.New("gridgraph: MinWalkable must be non-negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y): the cost of entering the cell
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// MinWalkable is the minimum cell value considered walkable; lower values are walls.
	MinWalkable int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// MinWalkable=1 (0 is a wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		MinWalkable: 1,
		Conn:        Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	MinWalkable     int
	neighborOffsets [][2]int
}
