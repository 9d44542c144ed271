// Package centrality computes eigenvector-style vertex importance scores —
// Katz centrality and PageRank — over an immutable core.Graph, using a
// shared double-buffered power-iteration engine.
//
// What the solvers share:
//
//   - Dense score vectors, one float64 per vertex index.
//   - Two buffers per run (previous / current), swapped exactly once per
//     pass. No update ever reads a partially-written vector, so results
//     are reproducible and independent of vertex visit order.
//   - Convergence when the L1 change of a full pass drops below n*Tol;
//     *NotConvergedError (carrying the best-effort vector and pass count)
//     when MaxIter passes run without settling.
//   - Optional parallel per-vertex updates (WithWorkers) fanned over
//     contiguous vertex ranges; a barrier between passes is the only
//     synchronization, no locks are taken. Sequential and parallel runs
//     produce identical vectors.
//   - Cancellation via context.Context, honored once per pass.
//   - An OnIteration hook for progress observation instead of a logger.
//
// Where they differ:
//
//	Katz:     x'[i] = alpha * Σ_{j->i} w(j,i)*x[j] + beta[i]
//	          bias vector beta (default all-ones), optional final L2
//	          normalization, alpha must satisfy alpha > 0 (pick it below
//	          core.KatzAlphaUpperBound to guarantee convergence).
//
//	PageRank: x'[i] = (1-alpha)/n + alpha*(Σ_{j->i} w(j,i)*x[j]/wdeg(j) + D/n)
//	          uniform teleport, dangling mass D redistributed uniformly
//	          every pass, output always a probability vector (sums to 1),
//	          0 < alpha < 1.
//
// Quick usage:
//
//	g, _ := core.Build(edges)
//	bound, _ := core.KatzAlphaUpperBound(g)
//	scores, err := centrality.Katz(context.Background(), g,
//	    centrality.WithAlpha(0.9*bound),
//	    centrality.WithTol(1e-6),
//	)
//	if err != nil {
//	    var nc *centrality.NotConvergedError
//	    if errors.As(err, &nc) {
//	        scores = nc.Scores // explicit best-effort acceptance
//	    }
//	}
//
// Complexity per pass: O(n + m) time for either rule, O(n) extra space.
package centrality
