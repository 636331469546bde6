package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/dijkstra"
	"github.com/katalvlaran/navgraph/graphdef"
	"github.com/katalvlaran/navgraph/query"
)

func newPathCmd(a *app) *cobra.Command {
	var graphPath, algo, from, to string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Find a path between two nodes",
		Long: `Find a path between two nodes.

Exits with status 2 when the nodes are not connected.

Examples:
  navgraph path --graph site.yaml --from A --to D
  navgraph path --graph site.yaml --algo bfs --from A --to D`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			algorithm, err := query.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			runner, err := a.newRunner(g)
			if err != nil {
				return err
			}

			res := runner.Run(cmd.Context(), query.Request{Algorithm: algorithm, From: from, To: to})
			switch {
			case res.Found:
				printResult(a.out, res)
				return nil
			case res.NoPath():
				return &ExitError{Code: exitNoPath, Message: fmt.Sprintf("no path from %q to %q", from, to)}
			default:
				return res.Err
			}
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "Graph definition file (.yaml, .yml, .json, .hcl)")
	cmd.Flags().StringVar(&algo, "algo", string(query.Dijkstra), "Algorithm: bfs, dfs or dijkstra")
	cmd.Flags().StringVar(&from, "from", "", "Start node id")
	cmd.Flags().StringVar(&to, "to", "", "Target node id")
	for _, name := range []string{"graph", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var graphPath, queriesPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run a file of queries concurrently",
		Long: `Run every query in a YAML file against one graph.

The queries file is a list of {algorithm, from, to} entries. Results are
printed in file order. Missing paths are reported but do not fail the batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			reqs, err := query.LoadRequests(queriesPath)
			if err != nil {
				return err
			}
			runner, err := a.newRunner(g)
			if err != nil {
				return err
			}

			results, err := runner.RunBatch(cmd.Context(), reqs, workers)
			for _, res := range results {
				printResult(a.out, res)
			}
			if err != nil {
				return err
			}
			sum := query.Summarize(results)
			fmt.Fprintf(a.out, "total=%d found=%d no_path=%d failed=%d\n", sum.Total, sum.Found, sum.NoPath, sum.Failed)
			if sum.Failed > 0 {
				return fmt.Errorf("%d of %d queries failed", sum.Failed, sum.Total)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "Graph definition file")
	cmd.Flags().StringVar(&queriesPath, "queries", "", "YAML file of queries")
	cmd.Flags().IntVar(&workers, "workers", 4, "Maximum queries in flight")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("queries")

	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	var graphPath, from string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarise a graph definition",
		Long: `Print node and edge counts for a graph definition. With --from, also
print the Dijkstra distance from that node to every node.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			stats := g.Stats()
			fmt.Fprintf(a.out, "nodes=%d edges=%d self_loops=%d max_out_degree=%d\n",
				stats.NodeCount, stats.EdgeCount, stats.SelfLoops, stats.MaxOutDegree)
			if from == "" {
				return nil
			}

			dist, parent, err := dijkstra.Distances(g, from, dijkstra.WithContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("distances from %q: %w", from, err)
			}
			for _, n := range g.Nodes() {
				d := dist[n.ID()]
				switch {
				case math.IsInf(d, 1):
					fmt.Fprintf(a.out, "%-12s unreachable\n", n.ID())
				case n.ID() == from:
					fmt.Fprintf(a.out, "%-12s %8.2f\n", n.ID(), d)
				default:
					fmt.Fprintf(a.out, "%-12s %8.2f via %s\n", n.ID(), d, parent[n.ID()])
				}
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "Graph definition file")
	cmd.Flags().StringVar(&from, "from", "", "Print distances from this node")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// warehouseSample is the navigation graph used by the demo command.
func warehouseSample() graphdef.Document {
	w := func(v float64) *float64 { return &v }

	return graphdef.Document{
		Nodes: []graphdef.NodeDef{
			{ID: "A", Label: "Warehouse Entrance"},
			{ID: "B", Label: "Sorting Area"},
			{ID: "C", Label: "Packaging"},
			{ID: "D", Label: "Loading Dock"},
			{ID: "E", Label: "Maintenance"},
		},
		Edges: []graphdef.EdgeDef{
			{From: "A", To: "B", Weight: w(2.0)},
			{From: "A", To: "E", Weight: w(8.0)},
			{From: "B", To: "C", Weight: w(1.5)},
			{From: "C", To: "D", Weight: w(3.0)},
			{From: "B", To: "D", Weight: w(6.0)}, // direct but slow
			{From: "E", To: "D", Weight: w(1.0)},
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run BFS, DFS and Dijkstra on a sample warehouse graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := warehouseSample()
			g, err := doc.Build()
			if err != nil {
				return err
			}
			runner, err := a.newRunner(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Graph: %d nodes, %d edges\n", g.NodeCount(), g.EdgeCount())

			titles := map[query.Algorithm]string{
				query.BFS:      "Fewest hops",
				query.DFS:      "Exploration",
				query.Dijkstra: "Lowest cost",
			}
			for _, algo := range query.Algorithms() {
				res := runner.Run(cmd.Context(), query.Request{Algorithm: algo, From: "A", To: "D"})
				if res.Err != nil {
					return res.Err
				}
				fmt.Fprintf(a.out, "%-12s %-9s %s (cost %.1f)\n", titles[algo]+":", algo, strings.Join(res.Path, " -> "), res.Cost)
			}

			return nil
		},
	}
}

// printResult writes one line per query result.
func printResult(w io.Writer, res query.Result) {
	switch {
	case res.Found:
		fmt.Fprintf(w, "%s: %s (cost %g)\n", res.Request, strings.Join(res.Path, " -> "), res.Cost)
	case res.NoPath():
		fmt.Fprintf(w, "%s: no path\n", res.Request)
	default:
		fmt.Fprintf(w, "%s: error: %v\n", res.Request, res.Err)
	}
}
