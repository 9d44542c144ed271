// Package centrality implements the shared power-iteration engine behind
// Katz and PageRank.
//
// The engine is a fixed-point loop over two dense buffers:
//
//   - Every pass reads ONLY the previous iterate and writes ONLY the
//     current one; the buffers are swapped once, at the end of the pass.
//     In-place updates are deliberately impossible, which makes the result
//     independent of vertex visit order and lets distinct vertex ranges be
//     computed concurrently without locks.
//   - A pass may begin with a rule-specific prepass producing one scalar
//     (PageRank uses it to collect dangling mass); the per-vertex update
//     then combines that scalar with the previous iterate.
//   - After each pass the L1 delta between iterates decides convergence:
//     delta < n*Tol terminates the loop successfully.
//
// Cancellation is honored once per pass, never mid-pass, so a returned
// vector always reflects an integral number of full passes.
package centrality

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// rule is one power-iteration update, split into an optional per-pass
// prelude and the per-vertex step.
//
// prepass runs once per pass over the previous iterate and returns a scalar
// forwarded to every vertex update (0 when nil). vertex computes the new
// score of v from the previous iterate only; it must not read the current
// buffer, so the engine may evaluate vertices in any order or concurrently.
type rule struct {
	prepass func(prev []float64) float64
	vertex  func(v int, prev []float64, aux float64) float64
}

// iterate runs the double-buffered power iteration until convergence,
// MaxIter exhaustion, or context cancellation.
//
// start is copied; neither it nor the caller's Options are mutated. On
// success the converged vector is returned. On MaxIter exhaustion the error
// is a *NotConvergedError carrying the last iterate. On cancellation the
// context error is returned as-is.
//
// Complexity: O(passes * (n + m)) time, O(n) extra space.
func iterate(ctx context.Context, start []float64, r rule, opt Options) ([]float64, error) {
	n := len(start)
	if n == 0 {
		return []float64{}, nil
	}

	// Double buffer: prev is read-only within a pass, cur is write-only.
	prev := make([]float64, n)
	copy(prev, start)
	cur := make([]float64, n)

	var (
		iter  int     // 1-based pass counter
		aux   float64 // prepass scalar for the current pass
		delta float64 // L1 change of the current pass
		err   error
	)
	for iter = 1; iter <= opt.MaxIter; iter++ {
		// Deadline/cancellation is checked once per pass.
		if ctx != nil {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}

		if r.prepass != nil {
			aux = r.prepass(prev)
		}

		if opt.Workers > 1 {
			applyParallel(cur, prev, aux, r, opt.Workers)
		} else {
			for v := 0; v < n; v++ {
				cur[v] = r.vertex(v, prev, aux)
			}
		}

		// L1 distance between successive iterates.
		delta = floats.Distance(cur, prev, 1)
		if opt.OnIteration != nil {
			opt.OnIteration(iter, delta)
		}
		if delta < float64(n)*opt.Tol {
			out := make([]float64, n)
			copy(out, cur)

			return out, nil
		}

		// Single swap point per pass.
		prev, cur = cur, prev
	}

	// Cap exhausted: surface the best-effort vector, never truncate silently.
	best := make([]float64, n)
	copy(best, prev)

	return nil, &NotConvergedError{Scores: best, Iterations: opt.MaxIter, Delta: delta}
}

// applyParallel evaluates the per-vertex update over contiguous vertex
// ranges, one goroutine per range, and waits for all of them (the barrier
// between passes). Ranges partition [0, n), so no two goroutines write the
// same index; all of them only read prev.
func applyParallel(cur, prev []float64, aux float64, r rule, workers int) {
	n := len(cur)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var grp errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		grp.Go(func() error {
			for v := lo; v < hi; v++ {
				cur[v] = r.vertex(v, prev, aux)
			}

			return nil
		})
	}
	// Workers never fail; Wait is purely the pass barrier.
	_ = grp.Wait()
}
