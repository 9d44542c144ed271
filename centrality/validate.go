package centrality

import (
	"fmt"
	"math"
)

// validateIteration checks the loop-control parameters shared by both
// solvers. Alpha ranges differ per algorithm and are checked at the entry
// points.
func validateIteration(cfg Options) error {
	if cfg.MaxIter <= 0 {
		return fmt.Errorf("centrality: max_iter=%d: %w", cfg.MaxIter, ErrInvalidMaxIter)
	}
	if cfg.Tol <= 0 {
		return fmt.Errorf("centrality: tol=%v: %w", cfg.Tol, ErrInvalidTol)
	}

	return nil
}

// checkedStart validates a caller-supplied starting vector against the
// vertex count and returns a private copy, so the iteration never aliases
// or mutates caller memory.
func checkedStart(nstart []float64, n int) ([]float64, error) {
	if len(nstart) != n {
		return nil, fmt.Errorf("centrality: nstart length %d, want %d: %w", len(nstart), n, ErrBadNStart)
	}
	start := make([]float64, n)
	for i, x := range nstart {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("centrality: nstart[%d]=%v: %w", i, x, ErrBadNStart)
		}
		start[i] = x
	}

	return start, nil
}
