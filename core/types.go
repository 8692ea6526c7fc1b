// Package core defines the immutable Graph, Vertex, Edge and Neighbor types
// consumed by the shortest-path code, together with the sentinel errors
// reported while building a graph.
//
// Errors:
//
//	ErrEmptyVertexName  - vertex name is the empty string.
//	ErrDuplicateVertex  - two vertices share a name.
//	ErrUnknownVertex    - an edge (or a query) references a name not in the graph.
//	ErrInvalidWeight    - edge weight is NaN.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexName indicates a Vertex with an empty Name.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates two vertices in the input share a Name.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownVertex indicates an edge endpoint or query name that is not a vertex.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrInvalidWeight indicates a NaN edge weight. ±Inf is accepted.
	ErrInvalidWeight = errors.New("core: invalid edge weight")
)

// NoEdge marks an absent edge in the adjacency matrix.
var NoEdge = math.Inf(1)

// Vertex is a named node with an opaque payload (e.g. a person's age).
// Name is unique within a Graph.
type Vertex struct {
	// Name identifies the vertex within its Graph.
	Name string

	// Payload is caller data carried unchanged; the graph never inspects it.
	Payload any
}

// Edge is a weighted, directed connection From → To.
// Self-loops (From == To) and zero weights are valid.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Neighbor is one outgoing entry of the adjacency list.
type Neighbor struct {
	To     string
	Weight float64
}

// GraphOption configures a Graph before its views are derived.
type GraphOption func(*graphConfig)

type graphConfig struct {
	undirected bool
}

// WithUndirected mirrors every edge (u,v,w) as (v,u,w) directly after it.
// Self-loops are stored once.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.undirected = true }
}
