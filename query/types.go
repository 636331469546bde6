// Package query runs path queries against a core.Graph, one at a time or as
// a concurrent batch, and reports outcomes to slog and Prometheus.
package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/navgraph/metrics"
)

// Sentinel errors for query execution.
var (
	// ErrUnknownAlgorithm is returned for an algorithm name other than bfs, dfs or dijkstra.
	ErrUnknownAlgorithm = errors.New("query: unknown algorithm")

	// ErrGraphNil is returned by NewRunner for a nil graph.
	ErrGraphNil = errors.New("query: graph is nil")
)

// Algorithm names a path-finding algorithm.
type Algorithm string

// Supported algorithms.
const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm { return []Algorithm{BFS, DFS, Dijkstra} }

// ParseAlgorithm accepts an algorithm name in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case BFS, DFS, Dijkstra:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Request is one path query.
type Request struct {
	Algorithm Algorithm `yaml:"algorithm"`
	From      string    `yaml:"from"`
	To        string    `yaml:"to"`
}

// String renders the request as "algo from→to".
func (r Request) String() string {
	return fmt.Sprintf("%s %s→%s", r.Algorithm, r.From, r.To)
}

// Result is the outcome of one Request.
//
// Found reports a path. When Found is false, Err says why: the algorithm's
// ErrNoPath for an absent endpoint or unreachable target, or any other
// failure. Cost is the summed edge weight of Path (for BFS and DFS too),
// and +Inf when nothing was found.
type Result struct {
	Request  Request
	Path     []string
	Cost     float64
	Found    bool
	Err      error
	Duration time.Duration
}

// NoPath reports whether the query completed without finding a path.
func (r Result) NoPath() bool { return !r.Found && isNoPath(r.Err) }

// Outcome returns the metrics outcome label for the result.
func (r Result) Outcome() string {
	switch {
	case r.Found:
		return metrics.OutcomeFound
	case r.NoPath():
		return metrics.OutcomeNoPath
	default:
		return metrics.OutcomeError
	}
}

// Summary counts batch outcomes.
type Summary struct {
	Total  int
	Found  int
	NoPath int
	Failed int
}

// Summarize tallies results by outcome.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome() {
		case metrics.OutcomeFound:
			s.Found++
		case metrics.OutcomeNoPath:
			s.NoPath++
		default:
			s.Failed++
		}
	}

	return s
}

// Option configures a Runner.
type Option func(*config)

type config struct {
	recorder *metrics.Recorder
	snapshot bool
}

// WithRecorder reports every query to rec. A nil rec disables metrics.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(c *config) { c.recorder = rec }
}

// WithSnapshot makes the Runner query a private clone of the graph, so later
// mutations of the caller's graph cannot race with running queries.
func WithSnapshot() Option {
	return func(c *config) { c.snapshot = true }
}
