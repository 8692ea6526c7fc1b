// Package core provides the in-memory Graph consumed by dijkstra and the
// outer layers (graphio, rest, cmd).
//
// A Graph is constructed once from a list of vertices and a list of edges and
// is immutable afterwards:
//
//	g, err := core.NewGraph(
//	    []core.Vertex{{Name: "A"}, {Name: "B"}, {Name: "C"}},
//	    []core.Edge{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}},
//	)
//
// Two read-only views are derived during construction:
//
//	– AdjacencyList()   name → []Neighbor in edge insertion order
//	– AdjacencyMatrix() |V|×|V| weights, rows/cols in vertex order, NoEdge (+Inf) when absent
//
// Edges are directed by default. WithUndirected() mirrors every edge right
// after itself, matching the "relation set" of an undirected graph.
//
// Because nothing mutates a Graph after NewGraph returns, a *Graph can be
// shared between goroutines (the HTTP layer does this) without locks.
// Accessors always return copies.
package core
