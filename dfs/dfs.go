// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, recording discovery and finish timestamps, parent links and
// post-order.
//
// Neighbors are explored in adjacency-list order, so the traversal is
// deterministic for a given graph. Undirected graphs store both directions
// of every edge and need no special casing; self-loops reach a Gray vertex
// and are ignored.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is missing.
//   - ErrOptionViolation      for a negative MaxDepth.
//   - ctx.Err()               if the context is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heapath/core"
)

// Passable is the default edge filter: everything but +Inf weights.
func Passable(_, _ string, w float64) bool { return !math.IsInf(w, 1) }

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	state map[string]VertexState
	clock int
	res   *DFSResult
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// continues from every vertex not yet reached, in vertex order, after the
// start tree is complete. On a hook or context error the partial result is
// returned with the error.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		state: make(map[string]VertexState, n),
		res: &DFSResult{
			Order:     make([]string, 0, n),
			Discovery: make(map[string]int, n),
			Finish:    make(map[string]int, n),
			Depth:     make(map[string]int, n),
			Parent:    make(map[string]string, n),
		},
	}

	if err := w.traverse(start, 0); err != nil {
		return w.res, err
	}
	if o.FullTraversal {
		for _, v := range g.VertexNames() {
			if w.state[v] != White {
				continue
			}
			if err := w.traverse(v, 0); err != nil {
				return w.res, err
			}
		}
	}

	return w.res, nil
}

// traverse discovers name at depth, recurses into every White neighbor the
// filter accepts and finally records the finish tick.
func (w *dfsWalker) traverse(name string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.state[name] = Gray
	w.clock++
	w.res.Discovery[name] = w.clock
	w.res.Depth[name] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(name); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", name, err)
		}
	}

	nbs, err := w.graph.Neighbors(name)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", name, err)
	}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, nb := range nbs {
			if w.state[nb.To] != White {
				continue
			}
			if !w.opts.FilterEdge(name, nb.To, nb.Weight) {
				w.res.SkippedEdges++
				continue
			}
			w.res.Parent[nb.To] = name
			if err = w.traverse(nb.To, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(name); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", name, err)
		}
	}

	w.state[name] = Black
	w.clock++
	w.res.Finish[name] = w.clock
	w.res.Order = append(w.res.Order, name)

	return nil
}
