// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is extracted from the priority queue at most once (V extracts).
//	   • Each successful relaxation is one Insert or one DecreaseKey, O(log V) each.
//	– Space: O(V)
//	   • distance, predecessor and state tables are indexed by vertex position.
//	   • the queue holds each vertex at most once (position-tracked decrease-key).
//
// Options:
//
//	– Source:           name of the starting vertex (must be non-empty and present in the graph).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source name is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrUnknownTarget   if PathTo is asked about a name that is not a vertex.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in WithInfEdgeThreshold).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex name is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex name is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnknownTarget indicates a path query for a name that is not a vertex.
	ErrUnknownTarget = errors.New("dijkstra: target vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// VertexState is the per-vertex state of one Dijkstra run.
type VertexState int

const (
	// Unvisited vertices have not been discovered; their distance is +Inf.
	Unvisited VertexState = iota

	// InQueue vertices have a tentative distance and wait in the priority queue.
	InQueue

	// Settled vertices were extracted; their distance is final.
	Settled
)

// String returns a lower-case label for the state.
func (s VertexState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case InQueue:
		return "in-queue"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex name (must be non-empty and present in the graph).
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (only +Inf-weight edges are impassable).
type Options struct {
	Source           string  // The name of the source vertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable (treated as infinite weight).
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex name.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (only +Inf-weight edges are impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
