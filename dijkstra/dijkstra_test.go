// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input validation, shortest distances and paths, the
// decrease-key path, thresholds and edge cases such as self-loops, zero
// weights and disconnected vertices.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heapath/bfs"
	"github.com/katalvlaran/heapath/core"
	"github.com/katalvlaran/heapath/dijkstra"
)

var inf = math.Inf(1)

// mustGraph builds a directed graph from vertex names and edges or fails the test.
func mustGraph(t *testing.T, names []string, edges []core.Edge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	vs := make([]core.Vertex, len(names))
	for i, n := range names {
		vs[i] = core.Vertex{Name: n}
	}
	g, err := core.NewGraph(vs, edges, opts...)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := mustGraph(t, []string{"A"}, nil)
	_, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := mustGraph(t, []string{"A"}, nil)
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, []core.Edge{{From: "A", To: "B", Weight: -5}})
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(math.NaN()) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: distances, predecessors, reconstructed paths.
// ------------------------------------------------------------------------

func TestDijkstra_ShortcutLosesToTwoHops(t *testing.T) {
	// A→B(1), B→C(2), A→C(10): C is first queued at 10, then decreased to 3.
	g := mustGraph(t, []string{"A", "B", "C"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 10},
	})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Distance("A"))
	assert.Equal(t, 1.0, res.Distance("B"))
	assert.Equal(t, 3.0, res.Distance("C"))

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	p, ok := res.Predecessor("C")
	require.True(t, ok)
	assert.Equal(t, "B", p)
	_, ok = res.Predecessor("A")
	assert.False(t, ok, "source has no predecessor")
}

func TestDijkstra_DirectedMediumGraph(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, []core.Edge{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "C", Weight: 1},
		{From: "C", To: "B", Weight: 1},
		{From: "B", To: "D", Weight: 3},
		{From: "C", To: "D", Weight: 5},
	})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 2, "C": 1, "D": 5}, res.Distances())
	p, _ := res.Predecessor("B")
	assert.Equal(t, "A", p, "equal-cost alternative via C must not replace the first predecessor")
	path, _ := res.PathTo("D")
	assert.Equal(t, []string{"A", "B", "D"}, path)
}

func TestDijkstra_UndirectedTriangle(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 5},
	}, core.WithUndirected())

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("C"))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Distance("A"))
	path, _ := res.PathTo("A")
	assert.Equal(t, []string{"C", "B", "A"}, path)
}

func TestDijkstra_DisconnectedVertex(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 10},
	})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.True(t, math.IsInf(res.Distance("D"), 1))
	assert.False(t, res.Reachable("D"))
	assert.Equal(t, dijkstra.Unvisited, res.State("D"))

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestDijkstra_UnknownTarget(t *testing.T) {
	g := mustGraph(t, []string{"A"}, nil)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	_, err = res.PathTo("Z")
	require.ErrorIs(t, err, dijkstra.ErrUnknownTarget)
	assert.True(t, math.IsInf(res.Distance("Z"), 1))
}

// ------------------------------------------------------------------------
// 3. Edge cases: self-loops, zero weights, ties.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertexSelfLoop(t *testing.T) {
	g := mustGraph(t, []string{"A"}, []core.Edge{{From: "A", To: "A", Weight: 5}})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Distance("A"))
	assert.Equal(t, dijkstra.Settled, res.State("A"))
	path, _ := res.PathTo("A")
	assert.Equal(t, []string{"A"}, path)
}

func TestDijkstra_AllZeroWeights(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D", "E"}, []core.Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "C", To: "A"},
		{From: "C", To: "D"},
		{From: "D", To: "D"},
	})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	for _, v := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, 0.0, res.Distance(v), v)
		assert.True(t, res.Reachable(v), v)
	}
	assert.False(t, res.Reachable("E"))
}

func TestDijkstra_PersonaSample(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("Persona %d", i)
	}
	g := mustGraph(t, names, []core.Edge{
		{From: "Persona 0", To: "Persona 1", Weight: 0},
		{From: "Persona 0", To: "Persona 2", Weight: 1},
		{From: "Persona 1", To: "Persona 1", Weight: 1},
		{From: "Persona 2", To: "Persona 1", Weight: 2},
		{From: "Persona 2", To: "Persona 3", Weight: 5},
		{From: "Persona 3", To: "Persona 4", Weight: 3},
	})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("Persona 0"))
	require.NoError(t, err)

	want := []float64{0, 0, 1, 6, 9, inf, inf, inf, inf, inf}
	rows := res.Table()
	require.Len(t, rows, 10)
	for i, row := range rows {
		assert.Equal(t, names[i], row.Vertex)
		assert.Equal(t, want[i], row.Distance, row.Vertex)
	}
	assert.Equal(t, "Persona 0", rows[1].Parent)
	assert.Equal(t, []string{"Persona 0", "Persona 2", "Persona 3", "Persona 4"}, rows[4].Path)
	assert.Empty(t, rows[7].Parent)
	assert.Nil(t, rows[7].Path)
}

func TestDijkstra_TiesResolveInDiscoveryOrder(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "D", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	p, _ := res.Predecessor("D")
	assert.Equal(t, "B", p)
}

// ------------------------------------------------------------------------
// 4. Options: thresholds and distance caps.
// ------------------------------------------------------------------------

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, []core.Edge{
		{From: "A", To: "B", Weight: 2},
		{From: "B", To: "C", Weight: 4},
		{From: "A", To: "C", Weight: 5},
	}, core.WithUndirected())

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Distance("C"))

	res, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Distance("C"), "A-C (5) is a wall at threshold 5")
	p, ok := res.Predecessor("C")
	require.True(t, ok)
	assert.Equal(t, "B", p)

	res, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	assert.True(t, res.Reachable("B"))
	assert.False(t, res.Reachable("C"), "B-C (4) and A-C (5) are both walls at threshold 3")
	assert.True(t, math.IsInf(res.Distance("C"), 1))
}

func TestDijkstra_InfiniteEdgeIsImpassable(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, []core.Edge{{From: "A", To: "B", Weight: inf}})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.False(t, res.Reachable("B"))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Distance("C"))
	assert.True(t, math.IsInf(res.Distance("D"), 1))

	res, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.True(t, res.Reachable("A"))
	assert.False(t, res.Reachable("B"))
}

func TestDijkstra_ResultIsIndependentOfGraph(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, []core.Edge{{From: "A", To: "B", Weight: 1}})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	d := res.Distances()
	d["B"] = 100
	assert.Equal(t, 1.0, res.Distance("B"))
	assert.Equal(t, "A", res.Source)
}

// ------------------------------------------------------------------------
// 5. Oracles: BFS reachability and exhaustive relaxation on random graphs.
// ------------------------------------------------------------------------

// relaxAll computes shortest distances by repeated full relaxation.
func relaxAll(g *core.Graph, src string) map[string]float64 {
	dist := make(map[string]float64, g.Order())
	for _, n := range g.VertexNames() {
		dist[n] = inf
	}
	dist[src] = 0
	for i := 0; i < g.Order(); i++ {
		for _, e := range g.Edges() {
			if math.IsInf(e.Weight, 1) {
				continue
			}
			if d := dist[e.From] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
			}
		}
	}
	return dist
}

func TestDijkstra_RandomGraphsAgreeWithOracles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(12)
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("v%d", i)
		}
		var edges []core.Edge
		for k := rng.Intn(3 * n); k > 0; k-- {
			w := float64(rng.Intn(6))
			if rng.Intn(10) == 0 {
				w = inf
			}
			edges = append(edges, core.Edge{From: names[rng.Intn(n)], To: names[rng.Intn(n)], Weight: w})
		}
		var opts []core.GraphOption
		if rng.Intn(2) == 0 {
			opts = append(opts, core.WithUndirected())
		}
		g := mustGraph(t, names, edges, opts...)

		res, err := dijkstra.Dijkstra(g, dijkstra.Source("v0"))
		require.NoError(t, err)
		reach, err := bfs.BFS(g, "v0")
		require.NoError(t, err)
		want := relaxAll(g, "v0")

		for _, v := range names {
			require.Equal(t, want[v], res.Distance(v), "round %d vertex %s", round, v)
			require.Equal(t, reach.Reached(v), res.Reachable(v), "round %d vertex %s", round, v)
			if res.Reachable(v) {
				path, _ := res.PathTo(v)
				require.Equal(t, "v0", path[0])
				require.Equal(t, v, path[len(path)-1])
			}
		}
	}
}
