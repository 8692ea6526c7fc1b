// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, edge
// filtering and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// VertexState represents the DFS visitation state of a vertex.
type VertexState int

const (
	White VertexState = iota // not visited yet
	Gray                     // on the recursion stack
	Black                    // vertex and all its descendants explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(name string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before its finish time is recorded.
	OnExit func(name string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge is called for each edge curr→neighbor before recursing.
	// Return false to skip it. Defaults to Passable.
	FilterEdge func(curr, neighbor string, weight float64) bool

	// FullTraversal restarts the search from every vertex left White after
	// the start tree, in vertex order, so disconnected components are covered.
	FullTraversal bool

	err error
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit, the Passable filter and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		MaxDepth:   -1,
		FilterEdge: Passable,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(name string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit. A limit of 0 means only the
// start vertex is visited; a negative limit is rejected with ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterEdge replaces the default edge filter.
func WithFilterEdge(fn func(curr, neighbor string, weight float64) bool) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
//
// Discovery and Finish share one clock that starts at 1 and ticks once on
// every discovery and once on every finish, so for any two visited vertices
// u and v their [Discovery, Finish] intervals are either nested or disjoint.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Discovery maps each visited vertex to the tick it turned Gray.
	Discovery map[string]int

	// Finish maps each visited vertex to the tick it turned Black.
	Finish map[string]int

	// Depth maps each vertex to its tree depth (#edges) below its root.
	Depth map[string]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots do not appear in this map.
	Parent map[string]string

	// SkippedEdges counts edges refused by FilterEdge.
	SkippedEdges int
}

// Visited reports whether name was reached.
func (r *DFSResult) Visited(name string) bool {
	_, ok := r.Discovery[name]
	return ok
}

// Interval returns the discovery and finish ticks of name.
// ok is false when name was not visited.
func (r *DFSResult) Interval(name string) (discovery, finish int, ok bool) {
	discovery, ok = r.Discovery[name]
	if !ok {
		return 0, 0, false
	}

	return discovery, r.Finish[name], true
}
