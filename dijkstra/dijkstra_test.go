package dijkstra_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/dijkstra"
)

// warehouse builds the navigation graph:
// bidirectional A–B(2), A–E(8), B–C(1.5), C–D(3), B–D(6), E–D(1).
func warehouse(t testing.TB) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](core.WithNonNegativeWeights())
	n := map[string]core.Node[string]{
		"A": core.NewNode("A", "Warehouse Entrance"),
		"B": core.NewNode("B", "Sorting Area"),
		"C": core.NewNode("C", "Packaging"),
		"D": core.NewNode("D", "Loading Dock"),
		"E": core.NewNode("E", "Maintenance"),
	}
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"A", "B", 2.0}, {"A", "E", 8.0}, {"B", "C", 1.5},
		{"C", "D", 3.0}, {"B", "D", 6.0}, {"E", "D", 1.0},
	} {
		require.NoError(t, g.AddEdge(n[e.from], n[e.to], core.WithWeight(e.w)))
	}

	return g
}

func node(id string) core.Node[int] { return core.NewNode(id, 0) }

// TestShortestPath_Errors covers nil graphs, missing endpoints and bad options.
func TestShortestPath_Errors(t *testing.T) {
	_, cost, err := dijkstra.ShortestPath[int](nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrGraphNil)
	assert.True(t, math.IsInf(cost, 1))

	g := warehouse(t)
	for _, tc := range []struct{ from, to string }{{"missing", "A"}, {"A", "missing"}, {"", ""}} {
		path, cost, err := dijkstra.ShortestPath(g, tc.from, tc.to)
		require.ErrorIs(t, err, dijkstra.ErrNoPath, "%s→%s", tc.from, tc.to)
		assert.Nil(t, path)
		assert.True(t, math.IsInf(cost, 1))
	}

	for _, bad := range []float64{-1, math.NaN()} {
		_, _, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxCost(bad))
		require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
	}
}

// TestShortestPath_Warehouse prefers the cheaper three-hop route over B–D.
func TestShortestPath_Warehouse(t *testing.T) {
	g := warehouse(t)
	path, cost, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"A", "B", "C", "D"}, core.PathIDs(path)); diff != "" {
		t.Errorf("A→D (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6.5, cost)
	assert.Equal(t, "Loading Dock", path[3].Payload())

	path, cost, err = dijkstra.ShortestPath(g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, core.PathIDs(path))
	assert.Equal(t, 7.5, cost)
}

func TestShortestPath_StartIsTarget(t *testing.T) {
	g := warehouse(t)
	path, cost, err := dijkstra.ShortestPath(g, "C", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, core.PathIDs(path))
	assert.Zero(t, cost)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := warehouse(t)
	require.NoError(t, g.AddNode(core.NewNode("Z", "Island")))

	path, cost, err := dijkstra.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.Nil(t, path)
	assert.True(t, math.IsInf(cost, 1))

	// An isolated node still reaches itself.
	path, cost, err = dijkstra.ShortestPath(g, "Z", "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, core.PathIDs(path))
	assert.Zero(t, cost)
}

func TestShortestPath_Directed(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(node("A"), node("B"), core.WithBidirectional(false)))

	_, _, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	_, _, err = dijkstra.ShortestPath(g, "B", "A")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// TestShortestPath_EqualCostTie keeps the route discovered first.
func TestShortestPath_EqualCostTie(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(node("A"), node("B")))
	require.NoError(t, g.AddEdge(node("A"), node("C")))
	require.NoError(t, g.AddEdge(node("B"), node("D")))
	require.NoError(t, g.AddEdge(node("C"), node("D")))

	path, cost, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, core.PathIDs(path))
	assert.Equal(t, 2.0, cost)
}

// TestShortestPath_ParallelEdges relaxes every parallel edge; the cheapest wins.
func TestShortestPath_ParallelEdges(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(node("A"), node("B"), core.WithWeight(5)))
	require.NoError(t, g.AddEdge(node("A"), node("B"), core.WithWeight(1)))

	_, cost, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)
}

func TestShortestPath_ZeroWeights(t *testing.T) {
	g := core.NewGraph[int](core.WithNonNegativeWeights())
	require.NoError(t, g.AddEdge(node("A"), node("B"), core.WithWeight(0)))
	require.NoError(t, g.AddEdge(node("B"), node("C"), core.WithWeight(0)))

	path, cost, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, core.PathIDs(path))
	assert.Zero(t, cost)
}

// TestShortestPath_StaleEntriesSkipped settles each node exactly once even
// though D and E are pushed twice.
func TestShortestPath_StaleEntriesSkipped(t *testing.T) {
	g := warehouse(t)
	seen := map[string]int{}
	var order []string
	_, _, err := dijkstra.Distances(g, "A", dijkstra.WithOnVisit(func(id string, _ float64) error {
		seen[id]++
		order = append(order, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, order)
	for id, n := range seen {
		assert.Equal(t, 1, n, "node %s settled more than once", id)
	}
}

func TestShortestPath_MaxCost(t *testing.T) {
	g := warehouse(t)

	var visited []string
	_, cost, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxCost(6),
		dijkstra.WithOnVisit(func(id string, c float64) error {
			assert.LessOrEqual(t, c, 6.0, "settled %s above the cap", id)
			visited = append(visited, id)
			return nil
		}))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.True(t, math.IsInf(cost, 1))
	// D (6.5 via C) and E (8) are never queued.
	assert.Equal(t, []string{"A", "B", "C"}, visited)

	path, cost, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxCost(6.5))
	require.NoError(t, err)
	assert.Equal(t, 4, len(path))
	assert.Equal(t, 6.5, cost)
}

func TestShortestPath_HookAbort(t *testing.T) {
	g := warehouse(t)
	stop := errors.New("stop")
	_, cost, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithOnVisit(func(id string, _ float64) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.True(t, math.IsInf(cost, 1))
}

func TestShortestPath_Cancelled(t *testing.T) {
	g := warehouse(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath_Deterministic(t *testing.T) {
	g := warehouse(t)
	first, c1, err := dijkstra.ShortestPath(g, "E", "C")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, c2, err := dijkstra.ShortestPath(g, "E", "C")
		require.NoError(t, err)
		require.Equal(t, core.PathIDs(first), core.PathIDs(again))
		require.Equal(t, c1, c2)
	}
}

func TestDistances(t *testing.T) {
	g := warehouse(t)
	require.NoError(t, g.AddNode(core.NewNode("Z", "Island")))

	dist, parent, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"A": 0, "B": 2, "C": 3.5, "D": 6.5, "E": 7.5, "Z": math.Inf(1),
	}, dist)
	assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "C", "E": "D"}, parent)

	dist, _, err = dijkstra.Distances(g, "A", dijkstra.WithMaxCost(3))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1))
	assert.True(t, math.IsInf(dist["E"], 1))

	_, _, err = dijkstra.Distances(g, "missing")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// TestShortestPath_MatchesBellmanFord checks minimality on random integer-weight
// graphs against a brute-force relaxation, and that cost equals the path's weight.
func TestShortestPath_MatchesBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const V = 30
	for round := 0; round < 5; round++ {
		g := core.NewGraph[int](core.WithNonNegativeWeights())
		type arc struct {
			u, v string
			w    float64
		}
		var arcs []arc
		for i := 0; i < V; i++ {
			require.NoError(t, g.AddNode(node(fmt.Sprintf("n%d", i))))
		}
		for k := 0; k < V*3; k++ {
			u, v := fmt.Sprintf("n%d", rng.Intn(V)), fmt.Sprintf("n%d", rng.Intn(V))
			w := float64(rng.Intn(10))
			require.NoError(t, g.AddEdge(node(u), node(v), core.WithWeight(w), core.WithBidirectional(false)))
			arcs = append(arcs, arc{u, v, w})
		}

		want := map[string]float64{}
		for _, id := range g.NodeIDs() {
			want[id] = math.Inf(1)
		}
		want["n0"] = 0
		for i := 0; i < V; i++ {
			for _, a := range arcs {
				if want[a.u]+a.w < want[a.v] {
					want[a.v] = want[a.u] + a.w
				}
			}
		}

		for _, id := range g.NodeIDs() {
			path, cost, err := dijkstra.ShortestPath(g, "n0", id)
			if math.IsInf(want[id], 1) {
				require.ErrorIs(t, err, dijkstra.ErrNoPath)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, want[id], cost, "round %d target %s", round, id)
			w, err := g.PathWeight(core.PathIDs(path))
			require.NoError(t, err)
			require.Equal(t, cost, w)
		}
	}
}
