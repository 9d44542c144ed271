// PageRank via power iteration with uniform teleport and explicit
// dangling-mass redistribution.
//
// Update rule, per vertex i over the previous iterate x:
//
//	x'[i] = (1-alpha)/n  +  alpha * ( Σ_{j -> i} w(j,i) * x[j] / wdeg(j)  +  D/n )
//
// where wdeg(j) is the weighted out-degree of j and D is the total mass
// sitting on dangling vertices (wdeg == 0) in the previous iterate. Every
// source distributes its score across its out-edges proportionally to
// weight; dangling mass is spread uniformly over all vertices each pass,
// so the total probability mass stays exactly 1.
package centrality

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/centigraph/centigraph/core"
)

// PageRank computes the PageRank probability vector of g.
//
// Defaults (see DefaultPageRankOptions): alpha 0.85, MaxIter 100, Tol 1e-6,
// sequential updates. Override via options. The Beta/Normalized knobs are
// Katz-specific and ignored here: the result always sums to 1 because the
// rule conserves probability mass pass by pass.
//
// Behavior:
//
//   - The iteration starts from the uniform vector 1/n, or from NStart
//     rescaled to sum 1 when supplied. An edgeless graph therefore
//     converges on the first pass to exactly 1/n everywhere.
//   - Convergence: L1 delta between passes < n*Tol.
//
// Errors: ErrNilGraph, ErrInvalidAlpha (requires 0 < alpha < 1),
// ErrInvalidMaxIter, ErrInvalidTol, ErrBadNStart (including a non-positive
// sum, which cannot be rescaled to a distribution), *NotConvergedError.
//
// Complexity: O(passes * (n + m)) time, O(n) space.
func PageRank(ctx context.Context, g *core.Graph, opts ...Option) ([]float64, error) {
	// 1) Resolve options over the PageRank defaults.
	cfg := DefaultPageRankOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and scalar parameters. The random walk needs both
	//    a positive follow probability and a positive teleport remainder.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return nil, fmt.Errorf("centrality: alpha=%v, want 0 < alpha < 1: %w", cfg.Alpha, ErrInvalidAlpha)
	}
	if err := validateIteration(cfg); err != nil {
		return nil, err
	}
	n := g.VertexCount()
	if n == 0 {
		return []float64{}, nil
	}

	// 3) Resolve the starting distribution.
	start, err := startDistribution(cfg, n)
	if err != nil {
		return nil, err
	}

	// 4) Precompute inverse weighted out-degrees and the dangling set.
	//    A vertex with zero weighted out-degree holds its mass, which the
	//    prepass collects for uniform redistribution.
	invDeg := make([]float64, n)
	dangling := make([]bool, n)
	var wdeg float64
	for v := 0; v < n; v++ {
		wdeg, _ = g.WeightedOutDegree(v) // v in [0,n) by construction
		if wdeg > 0 {
			invDeg[v] = 1 / wdeg
		} else {
			dangling[v] = true
		}
	}

	teleport := (1 - cfg.Alpha) / float64(n)
	uniformShare := 1 / float64(n)

	// 5) Iterate. The prepass sums dangling mass once per pass (O(n));
	//    each vertex update then costs O(in-degree).
	prRule := rule{
		prepass: func(prev []float64) float64 {
			mass := 0.0
			for v, d := range dangling {
				if d {
					mass += prev[v]
				}
			}

			return mass
		},
		vertex: func(v int, prev []float64, danglingMass float64) float64 {
			arcs, _ := g.InNeighbors(v)
			sum := 0.0
			for _, a := range arcs {
				sum += a.Weight * prev[a.To] * invDeg[a.To]
			}

			return teleport + cfg.Alpha*(sum+danglingMass*uniformShare)
		},
	}

	return iterate(ctx, start, prRule, cfg)
}

// startDistribution returns the initial probability vector: uniform 1/n by
// default, or the caller's NStart rescaled to sum 1.
func startDistribution(cfg Options, n int) ([]float64, error) {
	if cfg.NStart == nil {
		start := make([]float64, n)
		for i := range start {
			start[i] = 1 / float64(n)
		}

		return start, nil
	}

	start, err := checkedStart(cfg.NStart, n)
	if err != nil {
		return nil, err
	}
	total := floats.Sum(start)
	if total <= 0 {
		return nil, fmt.Errorf("centrality: nstart sums to %v, want > 0: %w", total, ErrBadNStart)
	}
	floats.Scale(1/total, start)

	return start, nil
}
