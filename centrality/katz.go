// Katz centrality via relaxed linear power iteration.
//
// Update rule, per vertex i over the previous iterate x:
//
//	x'[i] = alpha * Σ_{j -> i} w(j,i) * x[j]  +  beta[i]
//
// The sum runs over IN-edges of i: importance flows along edge direction,
// from vertices with many connections toward the vertices they point at.
// beta is the per-vertex bias guaranteeing a non-trivial fixed point; it
// defaults to 1 for every vertex.
//
// Convergence of the underlying series Σ_k (alpha*A)^k requires
// alpha < 1/spectral_radius(A); core.KatzAlphaUpperBound gives the safe
// 1/max-out-degree choice. The solver deliberately does NOT validate alpha
// against the spectral radius — an over-large alpha simply fails to settle
// and surfaces as *NotConvergedError.
package centrality

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/centigraph/centigraph/core"
)

// Katz computes Katz centrality scores for every vertex of g.
//
// Defaults (see DefaultKatzOptions): alpha 0.1, beta 1, MaxIter 100,
// Tol 1e-6, Normalized true, sequential updates. Override via options.
//
// Behavior:
//
//   - The iteration starts from NStart when supplied, else from the beta
//     vector itself, so an edgeless graph (and every isolated vertex)
//     converges on the first pass with score exactly beta.
//   - Convergence: L1 delta between passes < n*Tol.
//   - When Normalized, the converged vector is rescaled once, after the
//     loop, to unit L2 norm.
//
// Errors: ErrNilGraph, ErrInvalidAlpha (alpha <= 0), ErrInvalidMaxIter,
// ErrInvalidTol, ErrBadNStart, ErrBadBeta, *NotConvergedError.
//
// Complexity: O(passes * (n + m)) time, O(n) space.
func Katz(ctx context.Context, g *core.Graph, opts ...Option) ([]float64, error) {
	// 1) Resolve options over the Katz defaults.
	cfg := DefaultKatzOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and scalar parameters.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Alpha <= 0 {
		return nil, fmt.Errorf("centrality: alpha=%v: %w", cfg.Alpha, ErrInvalidAlpha)
	}
	if err := validateIteration(cfg); err != nil {
		return nil, err
	}
	n := g.VertexCount()

	// 3) Resolve the bias vector: per-vertex override, else scalar fill.
	beta, err := resolveBeta(cfg, n)
	if err != nil {
		return nil, err
	}

	// 4) Resolve the starting vector: caller-supplied, else the bias itself.
	start := beta
	if cfg.NStart != nil {
		if start, err = checkedStart(cfg.NStart, n); err != nil {
			return nil, err
		}
	}

	// 5) Iterate x'[i] = alpha * Σ_in w*x[j] + beta[i] to a fixed point.
	katzRule := rule{
		vertex: func(v int, prev []float64, _ float64) float64 {
			arcs, _ := g.InNeighbors(v) // v in [0,n) by construction
			sum := 0.0
			for _, a := range arcs {
				sum += a.Weight * prev[a.To]
			}

			return cfg.Alpha*sum + beta[v]
		},
	}
	scores, err := iterate(ctx, start, katzRule, cfg)
	if err != nil {
		return nil, err
	}

	// 6) Optional final rescale to unit L2 norm — once, never per pass.
	if cfg.Normalized {
		if norm := floats.Norm(scores, 2); norm > 0 {
			floats.Scale(1/norm, scores)
		}
	}

	return scores, nil
}

// resolveBeta materializes the per-vertex bias vector for a graph of n
// vertices, validating a caller-supplied BetaVector.
func resolveBeta(cfg Options, n int) ([]float64, error) {
	if cfg.BetaVector != nil {
		if len(cfg.BetaVector) != n {
			return nil, fmt.Errorf("centrality: beta length %d, want %d: %w", len(cfg.BetaVector), n, ErrBadBeta)
		}
		beta := make([]float64, n)
		for i, b := range cfg.BetaVector {
			if math.IsNaN(b) || math.IsInf(b, 0) {
				return nil, fmt.Errorf("centrality: beta[%d]=%v: %w", i, b, ErrBadBeta)
			}
			beta[i] = b
		}

		return beta, nil
	}

	if math.IsNaN(cfg.Beta) || math.IsInf(cfg.Beta, 0) {
		return nil, fmt.Errorf("centrality: beta=%v: %w", cfg.Beta, ErrBadBeta)
	}
	beta := make([]float64, n)
	for i := range beta {
		beta[i] = cfg.Beta
	}

	return beta, nil
}
