// Package rest exposes the graph catalog, shortest-path queries and heap sort
// over HTTP with chi, rendering JSON replies with go-chi/render.
package rest

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/heapath/core"
	"github.com/katalvlaran/heapath/dijkstra"
	"github.com/katalvlaran/heapath/graphio"
	"github.com/katalvlaran/heapath/rest/service"
)

// GraphService is what the handlers need from the service layer.
// *service.GraphService implements it.
type GraphService interface {
	SaveGraph(ctx context.Context, doc graphio.Document) error
	GetGraph(ctx context.Context, name string) (graphio.Document, error)
	DeleteGraph(ctx context.Context, name string) error
	ListGraphs(ctx context.Context) ([]string, error)
	AdjacencyList(ctx context.Context, name string) ([]string, map[string][]core.Neighbor, error)
	AdjacencyMatrix(ctx context.Context, name string) ([]string, [][]float64, error)
	ShortestPath(ctx context.Context, name, source string, opts ...dijkstra.Option) (*dijkstra.Result, error)
	HeapSort(ctx context.Context, values []float64, desc bool) []float64
}

type GraphHandler struct {
	svc          GraphService
	promeMetrics *metrics
	validate     *validator.Validate
	trans        ut.Translator
}

// GraphRouter mounts the /api routes on r.
func GraphRouter(r chi.Router, svc GraphService, m *metrics) {
	handler := newGraphHandler(svc, m)

	r.Route("/api", func(r chi.Router) {
		r.Post("/heapsort", handler.heapSort)
		r.Get("/graphs", handler.listGraphs)
		r.Put("/graphs/{name}", handler.putGraph)
		r.Get("/graphs/{name}", handler.getGraph)
		r.Delete("/graphs/{name}", handler.deleteGraph)
		r.Get("/graphs/{name}/adjacency-list", handler.adjacencyList)
		r.Get("/graphs/{name}/adjacency-matrix", handler.adjacencyMatrix)
		r.Post("/graphs/{name}/shortest-path", handler.shortestPath)
	})
}

func newGraphHandler(svc GraphService, m *metrics) *GraphHandler {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &GraphHandler{svc: svc, promeMetrics: m, validate: validate, trans: trans}
}

// valid renders a 400 with translated messages and returns false when data
// fails its validate tags.
func (h *GraphHandler) valid(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	if err := h.validate.Struct(data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return false
	}
	return true
}

// GraphRequest is the body of PUT /api/graphs/{name}. The name in the URL
// wins when the body leaves it empty; a different non-empty name is rejected.
type GraphRequest struct {
	graphio.Document
}

func (g *GraphRequest) Bind(r *http.Request) error {
	name := chi.URLParam(r, "name")
	switch g.Name {
	case "":
		g.Name = name
	case name:
	default:
		return fmt.Errorf("body name %q does not match path name %q", g.Name, name)
	}
	return nil
}

func (h *GraphHandler) putGraph(w http.ResponseWriter, r *http.Request) {
	data := &GraphRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := h.svc.SaveGraph(r.Context(), data.Document); err != nil {
		render.Render(w, r, ErrService(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, data.Document)
}

func (h *GraphHandler) getGraph(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.GetGraph(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		render.Render(w, r, ErrService(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, doc)
}

func (h *GraphHandler) deleteGraph(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGraph(r.Context(), chi.URLParam(r, "name")); err != nil {
		render.Render(w, r, ErrService(err))
		return
	}

	render.NoContent(w, r)
}

type GraphListResponse struct {
	Graphs []string `json:"graphs"`
}

func (h *GraphHandler) listGraphs(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.ListGraphs(r.Context())
	if err != nil {
		render.Render(w, r, ErrService(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, GraphListResponse{Graphs: names})
}

type NeighborResponse struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

type AdjacencyListResponse struct {
	Vertices  []string                      `json:"vertices"`
	Adjacency map[string][]NeighborResponse `json:"adjacency"`
}

func (h *GraphHandler) adjacencyList(w http.ResponseWriter, r *http.Request) {
	order, list, err := h.svc.AdjacencyList(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		render.Render(w, r, ErrService(err))
		return
	}

	resp := AdjacencyListResponse{Vertices: order, Adjacency: make(map[string][]NeighborResponse, len(list))}
	for v, nbs := range list {
		row := make([]NeighborResponse, len(nbs))
		for i, nb := range nbs {
			row[i] = NeighborResponse{To: nb.To, Weight: nb.Weight}
		}
		resp.Adjacency[v] = row
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// AdjacencyMatrixResponse carries absent edges as null.
type AdjacencyMatrixResponse struct {
	Vertices []string     `json:"vertices"`
	Matrix   [][]*float64 `json:"matrix"`
}

func (h *GraphHandler) adjacencyMatrix(w http.ResponseWriter, r *http.Request) {
	order, mat, err := h.svc.AdjacencyMatrix(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		render.Render(w, r, ErrService(err))
		return
	}

	resp := AdjacencyMatrixResponse{Vertices: order, Matrix: make([][]*float64, len(mat))}
	for i, row := range mat {
		resp.Matrix[i] = make([]*float64, len(row))
		for j, wt := range row {
			resp.Matrix[i][j] = finite(wt)
		}
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// ShortestPathRequest is the body of POST /api/graphs/{name}/shortest-path.
type ShortestPathRequest struct {
	Source           string   `json:"source" validate:"required"`
	Target           string   `json:"target,omitempty"`
	MaxDistance      *float64 `json:"max_distance,omitempty" validate:"omitnil,gte=0"`
	InfEdgeThreshold *float64 `json:"inf_edge_threshold,omitempty" validate:"omitnil,gt=0"`
}

func (s *ShortestPathRequest) Bind(r *http.Request) error {
	return nil
}

type DistanceRow struct {
	Vertex    string   `json:"vertex"`
	Distance  *float64 `json:"distance"`
	Reachable bool     `json:"reachable"`
	Parent    string   `json:"parent,omitempty"`
	State     string   `json:"state"`
}

type ShortestPathResponse struct {
	Source   string        `json:"source"`
	Table    []DistanceRow `json:"table"`
	Target   string        `json:"target,omitempty"`
	Path     []string      `json:"path,omitempty"`
	Distance *float64      `json:"distance,omitempty"`
	Found    bool          `json:"found"`
}

func NewShortestPathResponse(res *dijkstra.Result, target string) (*ShortestPathResponse, error) {
	resp := &ShortestPathResponse{Source: res.Source, Found: true}
	for _, row := range res.Table() {
		resp.Table = append(resp.Table, DistanceRow{
			Vertex:    row.Vertex,
			Distance:  finite(row.Distance),
			Reachable: row.State == dijkstra.Settled,
			Parent:    row.Parent,
			State:     row.State.String(),
		})
	}
	if target == "" {
		return resp, nil
	}

	path, err := res.PathTo(target)
	if err != nil {
		return nil, err
	}
	resp.Target = target
	resp.Path = path
	resp.Distance = finite(res.Distance(target))
	resp.Found = path != nil

	return resp, nil
}

func (h *GraphHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &ShortestPathRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.valid(w, r, data) {
		return
	}

	var opts []dijkstra.Option
	if data.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*data.MaxDistance))
	}
	if data.InfEdgeThreshold != nil {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(*data.InfEdgeThreshold))
	}

	res, err := h.svc.ShortestPath(r.Context(), chi.URLParam(r, "name"), data.Source, opts...)
	if err != nil {
		render.Render(w, r, ErrService(err))
		return
	}
	resp, err := NewShortestPathResponse(res, data.Target)
	if err != nil {
		render.Render(w, r, ErrService(service.WrapErrorf(err, service.ErrUnprocessable, "path to %q", data.Target)))
		return
	}

	h.promeMetrics.SPQueryCount.WithLabelValues(fmt.Sprint(resp.Found)).Inc()
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// HeapSortRequest is the body of POST /api/heapsort.
type HeapSortRequest struct {
	Values []float64 `json:"values" validate:"required"`
	Order  string    `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
}

func (s *HeapSortRequest) Bind(r *http.Request) error {
	return nil
}

type HeapSortResponse struct {
	Values []float64 `json:"values"`
}

func (h *GraphHandler) heapSort(w http.ResponseWriter, r *http.Request) {
	data := &HeapSortRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.valid(w, r, data) {
		return
	}

	sorted := h.svc.HeapSort(r.Context(), data.Values, data.Order == "desc")
	render.Status(r, http.StatusOK)
	render.JSON(w, r, HeapSortResponse{Values: sorted})
}

// finite returns nil for ±Inf so it renders as JSON null.
func finite(f float64) *float64 {
	if math.IsInf(f, 0) {
		return nil
	}
	return &f
}
