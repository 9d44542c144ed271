package centrality_test

import (
	"context"
	"testing"

	"github.com/centigraph/centigraph/builder"
	"github.com/centigraph/centigraph/centrality"
	"github.com/centigraph/centigraph/core"
)

// benchGraph builds a reproducible sparse graph for the solver benchmarks.
func benchGraph(b *testing.B, n, m int) *core.Graph {
	b.Helper()
	edges, err := builder.RandomSparse(n, m, 1)
	if err != nil {
		b.Fatal(err)
	}
	g, err := core.Build(edges)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkPageRank_10kV_50kE(b *testing.B) {
	g := benchGraph(b, 10_000, 50_000)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.PageRank(ctx, g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPageRank_10kV_50kE_Workers8(b *testing.B) {
	g := benchGraph(b, 10_000, 50_000)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.PageRank(ctx, g, centrality.WithWorkers(8)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKatz_10kV_50kE(b *testing.B) {
	g := benchGraph(b, 10_000, 50_000)
	ctx := context.Background()
	// Small alpha keeps the weighted random graph contractive, so every
	// benchmark iteration measures a converging solve.
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.Katz(ctx, g, centrality.WithAlpha(1e-3)); err != nil {
			b.Fatal(err)
		}
	}
}
