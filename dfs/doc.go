// Package dfs finds a start→target path by depth-first search.
//
// The search is iterative: an explicit stack replaces recursion so that long
// chains cannot exhaust the goroutine stack.
//
// Unlike bfs and dijkstra, the returned path carries no optimality guarantee;
// it is simply the first path the search reaches.
//
// Traversal discipline
//
//	pop cur
//	if cur == target             → rebuild path from parent links
//	if cur already visited       → drop the redundant entry
//	mark cur visited
//	for e in edges(cur), in order:
//	    if e.To not visited      → parent[e.To] = cur; push e.To
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithOnVisit(fn)      hook when a node is expanded; error aborts traversal.
//   - WithOnPush(fn)       hook on every push, redundant ones included.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrNoPath            if an endpoint is missing or target is unreachable.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs
