package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/graphdef"
	"github.com/katalvlaran/navgraph/internal/ctxlog"
	"github.com/katalvlaran/navgraph/metrics"
	"github.com/katalvlaran/navgraph/query"
)

// app holds the persistent flags and the state shared by subcommands.
type app struct {
	out, errOut io.Writer

	logLevel   string
	logFormat  string
	metricsOut string

	registry *prometheus.Registry
	recorder *metrics.Recorder
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "navgraph",
		Short: "Path queries over weighted navigation graphs",
		Long: `Load a graph definition (YAML, JSON or HCL) and find paths with
breadth-first search (fewest hops), depth-first search (any path) or
Dijkstra's algorithm (lowest total weight).

Examples:
  navgraph path --graph site.yaml --algo dijkstra --from A --to D
  navgraph batch --graph site.hcl --queries queries.yaml --workers 8
  navgraph inspect --graph site.json --from A
  navgraph demo`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info",
		"Logging level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text",
		"Log output format: text or json")
	root.PersistentFlags().StringVar(&a.metricsOut, "metrics-out", "",
		"Write Prometheus metrics in text format to this file on exit")

	root.AddCommand(
		newPathCmd(a),
		newBatchCmd(a),
		newInspectCmd(a),
		newDemoCmd(a),
	)

	return root
}

// setup installs the logger in the command context and, if requested, a
// metrics registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger, err := ctxlog.New(a.errOut, a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	if a.metricsOut != "" {
		a.registry = prometheus.NewRegistry()
		a.recorder = metrics.New(a.registry)
	}
	logger.Debug("CLI configured.", "command", cmd.Name(), "metrics_out", a.metricsOut)

	return nil
}

// flushMetrics writes the registry to --metrics-out, if set.
func (a *app) flushMetrics() error {
	if a.registry == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.metricsOut, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}

// loadGraph decodes, validates and builds the definition at path.
func loadGraph(path string) (*core.Graph[graphdef.Payload], error) {
	doc, err := graphdef.Load(path)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// newRunner binds a query runner with the app's recorder to g.
func (a *app) newRunner(g *core.Graph[graphdef.Payload]) (*query.Runner[graphdef.Payload], error) {
	return query.NewRunner(g, query.WithRecorder(a.recorder))
}
