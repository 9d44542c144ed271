// Package centrality defines configuration options and error types shared
// by the Katz and PageRank solvers.
//
// Both solvers are power iterations over a core.Graph: they repeatedly
// apply an update rule to a dense score vector until the L1 change between
// successive iterates drops below n*Tol, or MaxIter passes have run.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrInvalidAlpha   if Alpha <= 0 (PageRank additionally requires Alpha < 1).
//	– ErrInvalidMaxIter if MaxIter <= 0.
//	– ErrInvalidTol     if Tol <= 0.
//	– ErrBadNStart      if a starting vector has the wrong length, a non-finite
//	                    entry, or (PageRank) a non-positive sum.
//	– ErrBadBeta        if a per-vertex bias vector has the wrong length or a
//	                    non-finite entry.
//	– ErrNotConverged   if MaxIter passes ran without meeting the tolerance;
//	                    always wrapped inside a *NotConvergedError that carries
//	                    the best-effort scores.
package centrality

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a solver.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrInvalidAlpha indicates an attenuation/damping factor outside the
	// accepted range (alpha <= 0; for PageRank also alpha >= 1).
	ErrInvalidAlpha = errors.New("centrality: alpha out of range")

	// ErrInvalidMaxIter indicates a non-positive iteration cap.
	ErrInvalidMaxIter = errors.New("centrality: max iterations must be positive")

	// ErrInvalidTol indicates a non-positive convergence tolerance.
	ErrInvalidTol = errors.New("centrality: tolerance must be positive")

	// ErrBadNStart indicates an unusable caller-supplied starting vector.
	ErrBadNStart = errors.New("centrality: bad starting vector")

	// ErrBadBeta indicates an unusable per-vertex bias vector.
	ErrBadBeta = errors.New("centrality: bad beta vector")

	// ErrNotConverged indicates the iteration cap was reached before the
	// L1 delta between passes dropped below n*Tol. Matched via errors.Is;
	// the concrete error is always a *NotConvergedError.
	ErrNotConverged = errors.New("centrality: did not converge")
)

// NotConvergedError reports a solve that exhausted MaxIter without meeting
// the tolerance. It carries the last computed vector so callers can decide
// whether to accept a best-effort result; nothing is silently truncated.
//
// errors.Is(err, ErrNotConverged) matches this type.
type NotConvergedError struct {
	// Scores is the vector produced by the final pass.
	Scores []float64

	// Iterations is the number of full passes that ran (== MaxIter).
	Iterations int

	// Delta is the L1 change of the final pass, for diagnostics.
	Delta float64
}

// Error implements the error interface.
func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("centrality: did not converge after %d iterations (delta=%g)", e.Iterations, e.Delta)
}

// Unwrap makes errors.Is(err, ErrNotConverged) succeed.
func (e *NotConvergedError) Unwrap() error { return ErrNotConverged }

// Options configures a single solver run.
//
// Alpha       – attenuation (Katz) or damping (PageRank) factor.
// Beta        – scalar bias added to every vertex each Katz pass (default 1).
// BetaVector  – optional per-vertex bias; overrides Beta when non-nil.
// MaxIter     – hard cap on full passes.
// Tol         – convergence threshold; a pass with L1 delta < n*Tol converges.
// NStart      – optional starting vector (length n); copied, never mutated.
// Normalized  – Katz only: rescale the final vector to unit L2 norm.
// Workers     – per-vertex update fan-out within one pass (1 = sequential).
// OnIteration – optional hook observing (pass number, L1 delta) after each pass.
type Options struct {
	Alpha       float64
	Beta        float64
	BetaVector  []float64
	MaxIter     int
	Tol         float64
	NStart      []float64
	Normalized  bool
	Workers     int
	OnIteration func(iter int, delta float64)
}

// Option is a functional option mutating Options before validation.
type Option func(*Options)

// WithAlpha sets the attenuation/damping factor.
// Validated at solve time: ErrInvalidAlpha when out of range.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the scalar Katz bias term applied to every vertex.
// Ignored by PageRank.
func WithBeta(beta float64) Option {
	return func(o *Options) { o.Beta = beta }
}

// WithBetaVector sets a per-vertex Katz bias; it must have length n and
// overrides WithBeta. Ignored by PageRank.
func WithBetaVector(beta []float64) Option {
	return func(o *Options) { o.BetaVector = beta }
}

// WithMaxIter caps the number of full passes.
// Validated at solve time: ErrInvalidMaxIter when <= 0.
func WithMaxIter(maxIter int) Option {
	return func(o *Options) { o.MaxIter = maxIter }
}

// WithTol sets the convergence tolerance.
// Validated at solve time: ErrInvalidTol when <= 0.
func WithTol(tol float64) Option {
	return func(o *Options) { o.Tol = tol }
}

// WithNStart supplies the starting vector. It must have length n; the
// solver copies it and never mutates the caller's slice. PageRank rescales
// the copy to sum 1 before iterating.
func WithNStart(nstart []float64) Option {
	return func(o *Options) { o.NStart = nstart }
}

// WithNormalized toggles the final L2 rescaling of Katz scores
// (on by default). PageRank output always sums to 1 by construction.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithWorkers sets how many goroutines compute per-vertex updates within a
// pass. Values below 2 run sequentially. Results are identical regardless
// of fan-out: every pass reads only the previous iterate (double buffer).
func WithWorkers(workers int) Option {
	return func(o *Options) { o.Workers = workers }
}

// WithIterationHook registers a callback invoked after every full pass with
// the 1-based pass number and that pass's L1 delta. Useful for progress
// reporting without coupling the solver to a logger.
func WithIterationHook(hook func(iter int, delta float64)) Option {
	return func(o *Options) { o.OnIteration = hook }
}

// Default solver parameters.
const (
	// DefaultKatzAlpha matches the conventional Katz attenuation default.
	DefaultKatzAlpha = 0.1

	// DefaultPageRankAlpha is the conventional damping factor.
	DefaultPageRankAlpha = 0.85

	// DefaultMaxIter caps a solve at 100 full passes.
	DefaultMaxIter = 100

	// DefaultTol is the per-vertex convergence tolerance.
	DefaultTol = 1e-6

	// DefaultBeta is the Katz bias applied to every vertex.
	DefaultBeta = 1.0
)

// DefaultKatzOptions returns the Options Katz starts from before applying
// functional overrides: alpha 0.1, beta 1, 100 passes, tol 1e-6,
// L2-normalized output, sequential updates.
func DefaultKatzOptions() Options {
	return Options{
		Alpha:      DefaultKatzAlpha,
		Beta:       DefaultBeta,
		MaxIter:    DefaultMaxIter,
		Tol:        DefaultTol,
		Normalized: true,
		Workers:    1,
	}
}

// DefaultPageRankOptions returns the Options PageRank starts from before
// applying functional overrides: alpha 0.85, 100 passes, tol 1e-6,
// sequential updates. PageRank output is always a probability vector.
func DefaultPageRankOptions() Options {
	return Options{
		Alpha:   DefaultPageRankAlpha,
		MaxIter: DefaultMaxIter,
		Tol:     DefaultTol,
		Workers: 1,
	}
}
