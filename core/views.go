// File: views.go
// Role: Derived adjacency views, built once in NewGraph.
package core

// AdjacencyList maps each vertex name to its outgoing neighbors in edge
// insertion order. Vertices without outgoing edges map to an empty slice.
// The result is a deep copy.
func (g *Graph) AdjacencyList() map[string][]Neighbor {
	out := make(map[string][]Neighbor, len(g.vertices))
	for i, v := range g.vertices {
		row := make([]Neighbor, len(g.adjList[i]))
		copy(row, g.adjList[i])
		out[v.Name] = row
	}

	return out
}

// AdjacencyMatrix returns the |V|×|V| weight grid with rows and columns in
// vertex construction order (see Index). Absent edges hold NoEdge; self-loops
// and zero weights are ordinary entries. When several edges join the same
// ordered pair, the last one added wins. The result is a deep copy.
func (g *Graph) AdjacencyMatrix() [][]float64 {
	out := make([][]float64, len(g.adjMat))
	for i, row := range g.adjMat {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

func (g *Graph) buildAdjacencyList() {
	g.adjList = make([][]Neighbor, len(g.vertices))
	for i := range g.adjList {
		g.adjList[i] = make([]Neighbor, 0)
	}
	for _, e := range g.edges {
		from := g.index[e.From]
		g.adjList[from] = append(g.adjList[from], Neighbor{To: e.To, Weight: e.Weight})
	}
}

func (g *Graph) buildAdjacencyMatrix() {
	n := len(g.vertices)
	g.adjMat = make([][]float64, n)
	for i := range g.adjMat {
		g.adjMat[i] = make([]float64, n)
		for j := range g.adjMat[i] {
			g.adjMat[i][j] = NoEdge
		}
	}
	for _, e := range g.edges {
		g.adjMat[g.index[e.From]][g.index[e.To]] = e.Weight
	}
}
