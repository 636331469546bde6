package query

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/navgraph/bfs"
	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/dfs"
	"github.com/katalvlaran/navgraph/dijkstra"
	"github.com/katalvlaran/navgraph/internal/ctxlog"
	"github.com/katalvlaran/navgraph/metrics"
)

// Runner executes queries against one graph. It is safe for concurrent use
// as long as the graph is not mutated structurally while queries run (or
// WithSnapshot was given).
type Runner[T any] struct {
	graph    *core.Graph[T]
	recorder *metrics.Recorder
}

// NewRunner binds a Runner to g.
func NewRunner[T any](g *core.Graph[T], opts ...Option) (*Runner[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.snapshot {
		g = g.Clone()
	}

	return &Runner[T]{graph: g, recorder: cfg.recorder}, nil
}

// Graph returns the graph queries run against.
func (r *Runner[T]) Graph() *core.Graph[T] { return r.graph }

// Run executes one request. Failures are reported in the Result, never panics.
// The logger is taken from ctx (see ctxlog).
func (r *Runner[T]) Run(ctx context.Context, req Request) Result {
	logger := ctxlog.FromContext(ctx)
	res := Result{Request: req, Cost: math.Inf(1)}

	start := time.Now()
	path, cost, err := r.find(ctx, req)
	res.Duration = time.Since(start)

	if err == nil {
		res.Path, res.Cost, res.Found = path, cost, true
	} else {
		res.Err = err
	}

	r.recorder.Observe(string(req.Algorithm), res.Outcome(), len(res.Path)-1, res.Duration)

	switch {
	case res.Found:
		logger.Debug("Path found.", "query", req.String(), "hops", len(res.Path)-1, "cost", res.Cost, "duration", res.Duration)
	case res.NoPath():
		logger.Debug("No path.", "query", req.String(), "duration", res.Duration)
	default:
		logger.Warn("Query failed.", "query", req.String(), "error", res.Err)
	}

	return res
}

// find dispatches to the algorithm package and returns the path IDs and cost.
func (r *Runner[T]) find(ctx context.Context, req Request) ([]string, float64, error) {
	var (
		nodes []core.Node[T]
		cost  float64
		err   error
	)
	switch req.Algorithm {
	case BFS:
		nodes, err = bfs.ShortestPath(r.graph, req.From, req.To, bfs.WithContext(ctx))
	case DFS:
		nodes, err = dfs.Path(r.graph, req.From, req.To, dfs.WithContext(ctx))
	case Dijkstra:
		nodes, cost, err = dijkstra.ShortestPath(r.graph, req.From, req.To, dijkstra.WithContext(ctx))
		if err != nil {
			return nil, 0, err
		}
		return core.PathIDs(nodes), cost, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, req.Algorithm)
	}
	if err != nil {
		return nil, 0, err
	}

	ids := core.PathIDs(nodes)
	if cost, err = r.graph.PathWeight(ids); err != nil {
		return nil, 0, fmt.Errorf("query: weigh %s: %w", req, err)
	}

	return ids, cost, nil
}

// RunBatch executes reqs with at most workers queries in flight (minimum 1)
// and returns results in request order. A missing path is a result, not a
// failure. Context cancellation stops the batch: the returned error wraps
// ctx.Err() and results not yet computed carry that error.
//
// Each batch gets a fresh run id, attached to every log record it emits.
func (r *Runner[T]) RunBatch(ctx context.Context, reqs []Request, workers int) ([]Result, error) {
	runID := uuid.NewString()
	logger := ctxlog.FromContext(ctx).With("run_id", runID)
	ctx = ctxlog.WithLogger(ctx, logger)
	if workers < 1 {
		workers = 1
	}
	logger.Info("Batch started.", "queries", len(reqs), "workers", workers)

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		if gctx.Err() != nil {
			results[i] = Result{Request: req, Cost: math.Inf(1), Err: gctx.Err()}
			continue
		}
		i, req := i, req
		g.Go(func() error {
			results[i] = r.Run(gctx, req)
			if err := results[i].Err; errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	sum := Summarize(results)
	logger.Info("Batch finished.", "found", sum.Found, "no_path", sum.NoPath, "failed", sum.Failed)
	if err != nil {
		return results, fmt.Errorf("query: batch %s: %w", runID, err)
	}

	return results, nil
}

// isNoPath reports whether err is any algorithm's ErrNoPath.
func isNoPath(err error) bool {
	return errors.Is(err, bfs.ErrNoPath) || errors.Is(err, dfs.ErrNoPath) || errors.Is(err, dijkstra.ErrNoPath)
}
