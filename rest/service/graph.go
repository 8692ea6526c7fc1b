// Package service holds the graph catalog and query logic behind the REST
// handlers. It loads documents from a Repository, builds core graphs from
// them and runs Dijkstra and heap sort.
package service

import (
	"context"
	"errors"

	"github.com/katalvlaran/heapath/binheap"
	"github.com/katalvlaran/heapath/core"
	"github.com/katalvlaran/heapath/dijkstra"
	"github.com/katalvlaran/heapath/graphio"
	"github.com/katalvlaran/heapath/snapshot"
)

// Repository stores graph documents by name. *snapshot.Store satisfies it;
// a missing name must be reported with an error matching snapshot.ErrNotFound.
type Repository interface {
	Put(ctx context.Context, doc graphio.Document) error
	Get(ctx context.Context, name string) (graphio.Document, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}

// GraphService implements the graph, path and sort operations behind the
// REST handlers. Every error it returns is a *Error carrying a Code.
type GraphService struct {
	repo Repository
}

// NewGraphService returns a GraphService backed by repo.
func NewGraphService(repo Repository) *GraphService {
	return &GraphService{repo: repo}
}

// SaveGraph checks that doc describes a constructible graph and stores it.
func (s *GraphService) SaveGraph(ctx context.Context, doc graphio.Document) error {
	if _, err := doc.Graph(); err != nil {
		return classify(err, "graph %q rejected", doc.Name)
	}
	if err := s.repo.Put(ctx, doc); err != nil {
		return classify(err, "saving graph %q", doc.Name)
	}

	return nil
}

func (s *GraphService) GetGraph(ctx context.Context, name string) (graphio.Document, error) {
	doc, err := s.repo.Get(ctx, name)
	if err != nil {
		return graphio.Document{}, classify(err, "loading graph %q", name)
	}

	return doc, nil
}

func (s *GraphService) DeleteGraph(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return classify(err, "deleting graph %q", name)
	}

	return nil
}

func (s *GraphService) ListGraphs(ctx context.Context) ([]string, error) {
	names, err := s.repo.List(ctx)
	if err != nil {
		return nil, classify(err, "listing graphs")
	}

	return names, nil
}

// AdjacencyList returns the vertex order and the adjacency list of name.
func (s *GraphService) AdjacencyList(ctx context.Context, name string) ([]string, map[string][]core.Neighbor, error) {
	g, err := s.graph(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	return g.VertexNames(), g.AdjacencyList(), nil
}

// AdjacencyMatrix returns the vertex order (row and column labels) and the
// matrix of name. Absent edges hold core.NoEdge.
func (s *GraphService) AdjacencyMatrix(ctx context.Context, name string) ([]string, [][]float64, error) {
	g, err := s.graph(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	return g.VertexNames(), g.AdjacencyMatrix(), nil
}

// ShortestPath runs Dijkstra from source over the stored graph name.
func (s *GraphService) ShortestPath(ctx context.Context, name, source string, opts ...dijkstra.Option) (*dijkstra.Result, error) {
	g, err := s.graph(ctx, name)
	if err != nil {
		return nil, err
	}

	res, err := dijkstra.Dijkstra(g, append([]dijkstra.Option{dijkstra.Source(source)}, opts...)...)
	if err != nil {
		return nil, classify(err, "shortest paths in %q from %q", name, source)
	}

	return res, nil
}

// HeapSort sorts a copy of values, descending when desc is set.
func (s *GraphService) HeapSort(_ context.Context, values []float64, desc bool) []float64 {
	if desc {
		return binheap.SortDescending(values)
	}

	return binheap.SortAscending(values)
}

func (s *GraphService) graph(ctx context.Context, name string) (*core.Graph, error) {
	doc, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, classify(err, "loading graph %q", name)
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, classify(err, "building graph %q", name)
	}

	return g, nil
}

// classify maps domain errors onto the service codes.
func classify(err error, format string, a ...interface{}) error {
	var code error
	switch {
	case errors.Is(err, snapshot.ErrNotFound):
		code = ErrNotFound
	case errors.Is(err, core.ErrUnknownVertex),
		errors.Is(err, core.ErrDuplicateVertex),
		errors.Is(err, core.ErrEmptyVertexName),
		errors.Is(err, core.ErrInvalidWeight),
		errors.Is(err, dijkstra.ErrVertexNotFound),
		errors.Is(err, dijkstra.ErrNegativeWeight),
		errors.Is(err, dijkstra.ErrEmptySource),
		errors.Is(err, dijkstra.ErrUnknownTarget):
		code = ErrUnprocessable
	case errors.Is(err, graphio.ErrInvalidDocument):
		code = ErrBadParamInput
	default:
		code = ErrInternalServerError
	}

	return WrapErrorf(err, code, format, a...)
}
