package graphdef_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/graphdef"
)

type edgeView struct {
	From, To string
	Weight   float64
}

// snapshot flattens a graph into comparable values.
func snapshot(t *testing.T, g *core.Graph[graphdef.Payload]) ([]string, []graphdef.Payload, []edgeView) {
	t.Helper()
	var payloads []graphdef.Payload
	var edges []edgeView
	for _, n := range g.Nodes() {
		payloads = append(payloads, n.Payload())
		out, err := g.Edges(n.ID())
		require.NoError(t, err)
		for _, e := range out {
			edges = append(edges, edgeView{n.ID(), e.To.ID(), e.Weight})
		}
	}

	return g.NodeIDs(), payloads, edges
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]graphdef.Format{
		"g.yaml": graphdef.FormatYAML, "g.YML": graphdef.FormatYAML,
		"dir/g.json": graphdef.FormatJSON, "g.hcl": graphdef.FormatHCL,
	} {
		got, err := graphdef.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := graphdef.FormatFromPath("g.toml")
	require.ErrorIs(t, err, graphdef.ErrUnknownFormat)
	_, err = graphdef.Load("g.toml")
	require.ErrorIs(t, err, graphdef.ErrUnknownFormat)
}

// TestLoad_FormatsAgree builds the warehouse sample from every format and
// expects identical graphs.
func TestLoad_FormatsAgree(t *testing.T) {
	var ids []string
	var payloads []graphdef.Payload
	var edges []edgeView
	for i, name := range []string{"warehouse.yaml", "warehouse.json", "warehouse.hcl"} {
		doc, err := graphdef.Load(filepath.Join("testdata", name))
		require.NoError(t, err, name)
		g, err := doc.Build()
		require.NoError(t, err, name)

		gotIDs, gotPayloads, gotEdges := snapshot(t, g)
		if i == 0 {
			ids, payloads, edges = gotIDs, gotPayloads, gotEdges
			continue
		}
		if diff := cmp.Diff(ids, gotIDs); diff != "" {
			t.Errorf("%s ids (-yaml +got):\n%s", name, diff)
		}
		if diff := cmp.Diff(payloads, gotPayloads); diff != "" {
			t.Errorf("%s payloads (-yaml +got):\n%s", name, diff)
		}
		if diff := cmp.Diff(edges, gotEdges); diff != "" {
			t.Errorf("%s edges (-yaml +got):\n%s", name, diff)
		}
	}

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ids)
	assert.Equal(t, graphdef.Payload{Label: "Loading Dock", Tags: map[string]string{"zone": "south", "bays": "4"}}, payloads[3])
	assert.Len(t, edges, 12)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := graphdef.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestDecode_Defaults(t *testing.T) {
	doc, err := graphdef.Decode(strings.NewReader(`
directed: true
nodes: [{id: A}, {id: B}]
edges:
  - {from: A, to: B}
  - {from: B, to: A, weight: 4, bidirectional: true}
`), graphdef.FormatYAML)
	require.NoError(t, err)
	g, err := doc.Build()
	require.NoError(t, err)

	ab, _ := g.Edges("A")
	ba, _ := g.Edges("B")
	// A→B directed with default weight, then B↔A with weight 4.
	require.Len(t, ab, 2)
	require.Len(t, ba, 1)
	assert.Equal(t, core.DefaultWeight, ab[0].Weight)
	assert.Equal(t, 4.0, ab[1].Weight)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.NonNegativeWeights())
}

func TestDecode_Empty(t *testing.T) {
	doc, err := graphdef.Decode(strings.NewReader(""), graphdef.FormatYAML)
	require.NoError(t, err)
	g, err := doc.Build()
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
}

func TestDecode_Errors(t *testing.T) {
	_, err := graphdef.Decode(strings.NewReader("nodes: [{id: A, colour: red}]"), graphdef.FormatYAML)
	require.Error(t, err, "unknown field")

	_, err = graphdef.Decode(strings.NewReader(`node "A" {`), graphdef.FormatHCL)
	require.Error(t, err)

	_, err = graphdef.Decode(strings.NewReader(`node "A" { tags = ["x"] }`), graphdef.FormatHCL)
	require.Error(t, err)

	_, err = graphdef.Decode(strings.NewReader(""), graphdef.Format(9))
	require.ErrorIs(t, err, graphdef.ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	w := func(v float64) *float64 { return &v }
	tests := []struct {
		name string
		doc  graphdef.Document
		ok   bool
	}{
		{"empty", graphdef.Document{}, true},
		{"valid", graphdef.Document{
			Nodes: []graphdef.NodeDef{{ID: "A"}, {ID: "B"}},
			Edges: []graphdef.EdgeDef{{From: "A", To: "B", Weight: w(0)}},
		}, true},
		{"empty node id", graphdef.Document{Nodes: []graphdef.NodeDef{{ID: ""}}}, false},
		{"duplicate id", graphdef.Document{Nodes: []graphdef.NodeDef{{ID: "A"}, {ID: "A"}}}, false},
		{"negative weight", graphdef.Document{
			Nodes: []graphdef.NodeDef{{ID: "A"}, {ID: "B"}},
			Edges: []graphdef.EdgeDef{{From: "A", To: "B", Weight: w(-1)}},
		}, false},
		{"NaN weight", graphdef.Document{
			Nodes: []graphdef.NodeDef{{ID: "A"}, {ID: "B"}},
			Edges: []graphdef.EdgeDef{{From: "A", To: "B", Weight: w(math.NaN())}},
		}, false},
		{"empty endpoint", graphdef.Document{
			AutoCreate: true,
			Edges:      []graphdef.EdgeDef{{From: "A", To: ""}},
		}, false},
		{"unknown endpoint", graphdef.Document{
			Nodes: []graphdef.NodeDef{{ID: "A"}},
			Edges: []graphdef.EdgeDef{{From: "A", To: "Z"}},
		}, false},
		{"auto create", graphdef.Document{
			AutoCreate: true,
			Nodes:      []graphdef.NodeDef{{ID: "A"}},
			Edges:      []graphdef.EdgeDef{{From: "A", To: "Z"}},
		}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.doc.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, graphdef.ErrInvalidDocument)
		})
	}
}

func TestBuild_AutoCreate(t *testing.T) {
	doc := graphdef.Document{
		AutoCreate: true,
		Nodes:      []graphdef.NodeDef{{ID: "B", Label: "declared"}},
		Edges:      []graphdef.EdgeDef{{From: "A", To: "B"}},
	}
	g, err := doc.Build()
	require.NoError(t, err)

	// Declared nodes come first; undeclared ones follow in edge order.
	assert.Equal(t, []string{"B", "A"}, g.NodeIDs())
	a, ok := g.Node("A")
	require.True(t, ok)
	assert.Equal(t, graphdef.Payload{}, a.Payload())
	b, _ := g.Node("B")
	assert.Equal(t, "declared", b.Payload().Label)
}

func TestBuild_RejectsInvalid(t *testing.T) {
	doc := graphdef.Document{Nodes: []graphdef.NodeDef{{ID: "A"}, {ID: "A"}}}
	_, err := doc.Build()
	require.ErrorIs(t, err, graphdef.ErrInvalidDocument)
}

func TestLoad_Grid(t *testing.T) {
	var first []edgeView
	for _, name := range []string{"floor.yaml", "floor.hcl"} {
		doc, err := graphdef.Load(filepath.Join("testdata", name))
		require.NoError(t, err, name)
		g, err := doc.Build()
		require.NoError(t, err, name)

		// 10 walkable cells, then the declared dock.
		ids := g.NodeIDs()
		require.Len(t, ids, 11, name)
		assert.Equal(t, "0,0", ids[0])
		assert.Equal(t, "dock", ids[10])

		cell, ok := g.Node("2,2")
		require.True(t, ok)
		assert.Equal(t, graphdef.Payload{Label: "2,2", Tags: map[string]string{"x": "2", "y": "2", "cost": "9"}}, cell.Payload())

		_, _, edges := snapshot(t, g)
		if first == nil {
			first = edges
			continue
		}
		if diff := cmp.Diff(first, edges); diff != "" {
			t.Errorf("%s edges (-yaml +got):\n%s", name, diff)
		}
	}
}

func TestValidate_Grid(t *testing.T) {
	neg := -1
	for name, doc := range map[string]graphdef.Document{
		"ragged":         {Grid: &graphdef.GridDef{Rows: [][]int{{1, 1}, {1}}}},
		"no rows":        {Grid: &graphdef.GridDef{}},
		"bad threshold":  {Grid: &graphdef.GridDef{Rows: [][]int{{1}}, MinWalkable: &neg}},
		"wall endpoint":  {Grid: &graphdef.GridDef{Rows: [][]int{{1, 0}}}, Edges: []graphdef.EdgeDef{{From: "0,0", To: "1,0"}}},
		"duplicate cell": {Grid: &graphdef.GridDef{Rows: [][]int{{1}}}, Nodes: []graphdef.NodeDef{{ID: "0,0"}}},
	} {
		require.ErrorIs(t, doc.Validate(), graphdef.ErrInvalidDocument, name)
	}
}
