// Package dijkstra defines errors and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Ctx:      cancellation, checked once per heap pop.
//	– OnVisit:  hook called for every non-stale pop with the settled cost.
//	– MaxCost:  optional cap on cumulative cost; nodes beyond it are not explored.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if the provided graph pointer is nil.
//	– ErrNoPath          if an endpoint is missing or the target is unreachable.
//	– ErrOptionViolation if MaxCost is negative or NaN.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that start or target is absent from the graph, or the
	// target cannot be reached. The accompanying cost is always +Inf.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Ctx     – cancellation context (default context.Background()).
// OnVisit – called with (id, cost) whenever a node is settled; an error aborts.
// MaxCost – maximum cumulative cost to explore. Must be ≥ 0. Default +Inf (no cap).
type Options struct {
	Ctx     context.Context
	OnVisit func(id string, cost float64) error
	MaxCost float64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook invoked for every settled node.
func WithOnVisit(fn func(id string, cost float64) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxCost sets a maximum cumulative cost threshold.
// Nodes whose best cost would exceed max are never settled.
// Negative or NaN values surface as ErrOptionViolation.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:     context.Background()
//   - OnVisit: nil (no hook)
//   - MaxCost: +Inf (explore everything reachable)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
		MaxCost: math.Inf(1),
	}
}
