package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/heapath/core"
)

// BenchmarkNewGraph_Ring measures construction (both views) of a 512-vertex ring.
func BenchmarkNewGraph_Ring(b *testing.B) {
	const n = 512
	vs := make([]core.Vertex, n)
	es := make([]core.Edge, n)
	for i := 0; i < n; i++ {
		vs[i] = core.Vertex{Name: fmt.Sprintf("v%d", i)}
		es[i] = core.Edge{From: fmt.Sprintf("v%d", i), To: fmt.Sprintf("v%d", (i+1)%n), Weight: 1}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.NewGraph(vs, es)
	}
}
