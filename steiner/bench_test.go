package steiner_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/steinerweb/core"
	"github.com/katalvlaran/steinerweb/steiner"
)

// BenchmarkTree_Chain measures the search on a linear chain with terminals
// at both ends and the midpoint.
func BenchmarkTree_Chain(b *testing.B) {
	const N = 1000
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), int64(i%5)+1)
	}
	terminals := []string{"v0", fmt.Sprintf("v%d", N/2), fmt.Sprintf("v%d", N)}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = steiner.Tree(g, terminals)
	}
}

// BenchmarkTree_SparseRandom measures the search on a fixed-seed sparse
// graph: a connecting backbone plus random extra edges.
func BenchmarkTree_SparseRandom(b *testing.B) {
	const (
		n     = 500
		extra = 1000
	)
	g := core.NewGraph(core.WithWeighted())
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i), int64(r.Intn(9))+1)
	}
	for i := 0; i < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.AddEdge(fmt.Sprintf("v%d", u), fmt.Sprintf("v%d", v), int64(r.Intn(9))+1); err == nil {
			i++
		}
	}
	terminals := []string{"v0", "v100", "v250", "v499"}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = steiner.Tree(g, terminals)
	}
}
