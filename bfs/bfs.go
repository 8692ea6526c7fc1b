// Package bfs provides breadth-first search over a core.Graph, returning
// hop counts, parent links and visit order. Weights are ignored except by
// the edge filter, which by default refuses +Inf walls, so the reached set
// matches the vertices Dijkstra can settle under its default options.
package bfs

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/heapath/core"
)

// Passable is the default edge filter: everything but +Inf weights.
func Passable(_, _ string, w float64) bool { return !math.IsInf(w, 1) }

// queueItem pairs a vertex name with its BFS depth.
type queueItem struct {
	name  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// enqueue marks name visited at depth d, records its parent and queues it.
func (w *walker) enqueue(name string, d int, parent string) {
	w.visited[name] = true
	w.res.Depth[name] = d
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.queue = append(w.queue, queueItem{name: name, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.name)
		if err := w.opts.OnVisit(item.name, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies the edge filter and MaxDepth and enqueues every
// unseen neighbor of item in adjacency-list order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.name)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.name, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range neighbors {
		if w.visited[nb.To] || !w.opts.FilterEdge(item.name, nb.To, nb.Weight) {
			continue
		}
		w.enqueue(nb.To, nextDepth, item.name)
	}
	return nil
}
