// Package heapath is a small shortest-path toolkit built around an
// array-backed binary heap.
//
// Packages:
//
//	binheap/  - generic min/max binary heap with handles, bulk build and heap sort
//	pqueue/   - priority queue with strict decrease-key, used by dijkstra
//	core/     - immutable named graph with adjacency list and matrix views
//	dijkstra/ - single-source shortest paths with per-vertex state
//	bfs/      - hop-count search and reachability over the same graphs
//	dfs/      - depth-first search with discovery and finish timestamps
//	graphio/  - YAML/JSON graph documents, validation, the built-in sample
//	snapshot/ - pebble-backed catalog of graph documents (zstd-compressed)
//	rest/     - chi HTTP API with prometheus metrics
//
// The heapath command (cmd/heapath) solves fixtures from the command line,
// imports them into a snapshot store and serves the REST API.
//
// Quick start:
//
//	g, _ := core.NewGraph(
//		[]core.Vertex{{Name: "A"}, {Name: "B"}, {Name: "C"}},
//		[]core.Edge{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}},
//	)
//	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	path, _ := res.PathTo("C") // [A B C], distance 3
package heapath
