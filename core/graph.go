// File: graph.go
// Role: Graph construction and read-only queries.
//
// Determinism:
//   - Vertices() keeps construction order; matrix rows/cols follow it.
//   - Edges() and every adjacency list keep the order edges were added.
//
// Concurrency:
//   - A Graph never changes after NewGraph returns and every accessor returns
//     a fresh copy, so concurrent readers need no locking.
package core

import (
	"fmt"
	"math"
)

// Graph owns a fixed set of vertices and weighted directed edges, and two
// derived views: an adjacency list and a |V|×|V| adjacency matrix.
type Graph struct {
	directed bool

	vertices []Vertex       // construction order
	index    map[string]int // vertex name → position in vertices
	edges    []Edge         // insertion order, mirrored entries included when undirected

	adjList [][]Neighbor // adjList[i] = outgoing entries of vertices[i]
	adjMat  [][]float64  // adjMat[i][j] = weight of the last edge i→j, NoEdge if none
}

// NewGraph validates vertices and edges and derives the adjacency views.
//
// Validation order:
//  1. every vertex has a non-empty name (ErrEmptyVertexName);
//  2. names are unique (ErrDuplicateVertex);
//  3. every edge endpoint is a known vertex (ErrUnknownVertex);
//  4. no edge weight is NaN (ErrInvalidWeight).
//
// The input slices are copied; later changes to them do not affect the Graph.
//
// Complexity: O(V² + E) time and space (the matrix dominates).
func NewGraph(vertices []Vertex, edges []Edge, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		directed: !cfg.undirected,
		vertices: make([]Vertex, len(vertices)),
		index:    make(map[string]int, len(vertices)),
		edges:    make([]Edge, 0, len(edges)),
	}

	for i, v := range vertices {
		if v.Name == "" {
			return nil, fmt.Errorf("%w: vertex #%d", ErrEmptyVertexName, i)
		}
		if prev, dup := g.index[v.Name]; dup {
			return nil, fmt.Errorf("%w: %q at #%d and #%d", ErrDuplicateVertex, v.Name, prev, i)
		}
		g.index[v.Name] = i
		g.vertices[i] = v
	}

	for i, e := range edges {
		if _, ok := g.index[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge #%d source %q", ErrUnknownVertex, i, e.From)
		}
		if _, ok := g.index[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge #%d destination %q", ErrUnknownVertex, i, e.To)
		}
		if math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge #%d %s→%s is NaN", ErrInvalidWeight, i, e.From, e.To)
		}
		g.edges = append(g.edges, e)
		if cfg.undirected && e.From != e.To {
			g.edges = append(g.edges, Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	g.buildAdjacencyList()
	g.buildAdjacencyMatrix()

	return g, nil
}

// Directed reports whether edges are one-way (the default).
func (g *Graph) Directed() bool { return g.directed }

// Order returns |V|.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns |E|, counting mirrored entries of an undirected graph.
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns the vertices in construction order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexNames returns the vertex names in construction order.
func (g *Graph) VertexNames() []string {
	out := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Name
	}

	return out
}

// Vertex looks a vertex up by name.
func (g *Graph) Vertex(name string) (Vertex, bool) {
	i, ok := g.index[name]
	if !ok {
		return Vertex{}, false
	}

	return g.vertices[i], true
}

// HasVertex reports whether name is a vertex of g.
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Index returns the row/column of name in AdjacencyMatrix.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Edges returns the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the outgoing (neighbor, weight) entries of name in the
// order their edges were added.
func (g *Graph) Neighbors(name string) ([]Neighbor, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, name)
	}
	out := make([]Neighbor, len(g.adjList[i]))
	copy(out, g.adjList[i])

	return out, nil
}

// Weight returns the adjacency matrix entry from → to.
// ok is false when either name is unknown or no edge exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	i, ok := g.index[from]
	if !ok {
		return NoEdge, false
	}
	j, ok := g.index[to]
	if !ok {
		return NoEdge, false
	}
	w := g.adjMat[i][j]

	return w, !math.IsInf(w, 1) || g.hasEdge(from, to)
}

// hasEdge distinguishes an explicit +Inf edge from the NoEdge sentinel.
func (g *Graph) hasEdge(from, to string) bool {
	for _, nb := range g.adjList[g.index[from]] {
		if nb.To == to {
			return true
		}
	}

	return false
}
