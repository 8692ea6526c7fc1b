package dijkstra

import (
	"fmt"
	"math"
)

// Result is the distance/predecessor table produced by one Dijkstra run.
// Distances of Settled vertices are final; every other vertex has +Inf.
type Result struct {
	// Source is the name of the start vertex.
	Source string

	names []string
	index map[string]int
	dist  []float64
	prev  []int
	state []VertexState
}

// Row is one line of the result table, in graph vertex order.
type Row struct {
	Vertex   string
	Distance float64  // +Inf when unreachable
	Parent   string   // "" for the source and unreachable vertices
	Path     []string // source … Vertex, nil when unreachable
	State    VertexState
}

// Distance returns the shortest distance from Source to name, or +Inf when
// name is unreachable or not a vertex.
func (r *Result) Distance(name string) float64 {
	i, ok := r.index[name]
	if !ok {
		return math.Inf(1)
	}

	return r.dist[i]
}

// Distances returns a copy of the whole distance table keyed by vertex name.
func (r *Result) Distances() map[string]float64 {
	out := make(map[string]float64, len(r.names))
	for i, name := range r.names {
		out[name] = r.dist[i]
	}

	return out
}

// Predecessor returns the vertex before name on its shortest path.
// ok is false for the source, for unreachable vertices and unknown names.
func (r *Result) Predecessor(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok || r.prev[i] == noVertex {
		return "", false
	}

	return r.names[r.prev[i]], true
}

// State returns the final state of name (Unvisited for unknown names).
func (r *Result) State(name string) VertexState {
	i, ok := r.index[name]
	if !ok {
		return Unvisited
	}

	return r.state[i]
}

// Reachable reports whether name has a finite distance from Source.
func (r *Result) Reachable(name string) bool {
	i, ok := r.index[name]
	return ok && r.state[i] == Settled
}

// PathTo reconstructs the shortest path Source → … → target by following
// predecessor links backward. It returns a nil path and nil error when target
// exists but is unreachable.
func (r *Result) PathTo(target string) ([]string, error) {
	i, ok := r.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}

	return r.pathAt(i), nil
}

func (r *Result) pathAt(i int) []string {
	if r.state[i] != Settled {
		return nil
	}
	var rev []string
	for v := i; v != noVertex; v = r.prev[v] {
		rev = append(rev, r.names[v])
	}
	path := make([]string, len(rev))
	for k := range rev {
		path[k] = rev[len(rev)-1-k]
	}

	return path
}

// Table returns one Row per vertex in graph order.
func (r *Result) Table() []Row {
	rows := make([]Row, len(r.names))
	for i, name := range r.names {
		row := Row{
			Vertex:   name,
			Distance: r.dist[i],
			Path:     r.pathAt(i),
			State:    r.state[i],
		}
		if r.prev[i] != noVertex {
			row.Parent = r.names[r.prev[i]]
		}
		rows[i] = row
	}

	return rows
}
