// Package gridgraph treats a 2D floor plan as a navigation graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable MinWalkable threshold.
//   - Cells with value ≥ MinWalkable are walkable; value is the cost of stepping in.
//   - ConnectedComponents lists the walkable regions (“rooms”) of the plan.
//   - ToCoreGraph builds a directed, weighted core.Graph for bfs, dfs and dijkstra.
//
// Why:
//
//   - Warehouse floors, game maps and terrain: BFS gives the fewest steps,
//     Dijkstra the cheapest route when cells cost differently.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H×d).
//
// Options:
//
//   - GridOptions.MinWalkable: minimum value considered walkable (default 1).
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, diagonal steps cost ×√2).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: MinWalkable < 0.
package gridgraph
