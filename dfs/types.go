// Package dfs defines options and errors for the iterative depth-first path search.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Path.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNoPath indicates that start or target is absent, or target is not
	// reachable from start. Both cases share this sentinel.
	ErrNoPath = errors.New("dfs: no path")
)

// Option configures optional behavior of the DFS traversal.
// Use with Path(g, start, target, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Checked once per pop.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is popped and marked visited.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnPush, if non-nil, is invoked for every stack push, redundant ones included.
	OnPush func(id, parent string)
}

// DefaultOptions returns Options with:
//   - Background context
//   - No hooks
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
		OnPush:  nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnPush returns an Option that installs fn as the push hook.
func WithOnPush(fn func(id, parent string)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}
