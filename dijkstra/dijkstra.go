// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a pqueue.Queue,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never queue a vertex whose tentative distance exceeds MaxDistance.
//   - Vertices are inserted lazily: only the source at start, neighbors on discovery.
//     An improvement for a vertex already queued is a strict DecreaseKey on its slot,
//     so the queue never holds stale duplicates.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heapath/core"
	"github.com/katalvlaran/heapath/pqueue"
)

// noVertex marks "no predecessor" in the index-based side table.
const noVertex = -1

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// The returned Result owns the distance/predecessor/state table of this run;
// g is only read.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	src, ok := g.Index(cfg.Source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 5) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, cfg, src)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
// Vertices are identified by their position in g.Vertices().
type runner struct {
	g       *core.Graph
	options Options
	source  int
	names   []string          // position → name
	adj     [][]core.Neighbor // position → outgoing neighbors
	dist    []float64         // position → best known distance
	prev    []int             // position → predecessor position, noVertex if none
	state   []VertexState     // position → Unvisited / InQueue / Settled
	pq      *pqueue.Queue[int]
}

// newRunner sets dist[v] = +Inf, prev[v] = none for all v and queues the source at 0.
func newRunner(g *core.Graph, cfg Options, src int) *runner {
	names := g.VertexNames()
	n := len(names)
	list := g.AdjacencyList()

	r := &runner{
		g:       g,
		options: cfg,
		source:  src,
		names:   names,
		adj:     make([][]core.Neighbor, n),
		dist:    make([]float64, n),
		prev:    make([]int, n),
		state:   make([]VertexState, n),
		pq:      pqueue.New[int](),
	}
	for i, name := range names {
		r.adj[i] = list[name]
		r.dist[i] = math.Inf(1)
		r.prev[i] = noVertex
	}

	r.dist[src] = 0
	_ = r.pq.Insert(src, 0) // empty queue: cannot collide
	r.state[src] = InQueue

	return r
}

// process is the core loop: extract the queued vertex with the minimum
// tentative distance, settle it, relax its outgoing edges. It stops when the
// queue is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		u, _, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("dijkstra: extract: %w", err)
		}

		// u's distance is now final. relax never queues past MaxDistance,
		// so every extracted distance is within the cap.
		r.state[u] = Settled

		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u. If dist[u]+w improves dist[v],
// v's distance and predecessor are updated and v is inserted into the queue
// (first discovery) or its key is decreased (already queued).
//
// Settled targets are skipped: with non-negative weights they can never
// improve, which also makes self-loops harmless.
func (r *runner) relax(u int) error {
	for _, nb := range r.adj[u] {
		w := nb.Weight

		// Skip any edge that is marked as impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		v, ok := r.g.Index(nb.To)
		if !ok {
			return fmt.Errorf("dijkstra: adjacency of %q references %w", r.names[u], core.ErrUnknownVertex)
		}
		if r.state[v] == Settled {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strictly better only: equal distances keep the first predecessor found.
		if !(newDist < r.dist[v]) {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u

		if r.state[v] == InQueue {
			if err := r.pq.DecreaseKey(v, newDist); err != nil {
				return fmt.Errorf("dijkstra: relax %s→%s: %w", r.names[u], nb.To, err)
			}
			continue
		}
		if err := r.pq.Insert(v, newDist); err != nil {
			return fmt.Errorf("dijkstra: relax %s→%s: %w", r.names[u], nb.To, err)
		}
		r.state[v] = InQueue
	}

	return nil
}

func (r *runner) result() *Result {
	index := make(map[string]int, len(r.names))
	for i, name := range r.names {
		index[name] = i
	}

	return &Result{
		Source: r.names[r.source],
		names:  r.names,
		index:  index,
		dist:   r.dist,
		prev:   r.prev,
		state:  r.state,
	}
}
