// Package builder generates deterministic edge lists for well-known
// topologies. The constructors return []core.Edge rather than a built
// graph, so callers stay free to choose directedness, declared vertex
// counts, or to concatenate several shapes before core.Build.
//
// Design contract (strict):
//   - Determinism: the same inputs (and seed) always produce the same
//     edge list, element for element.
//   - Safety: never panic; invalid sizes return sentinel errors.
//   - Constructors emit each undirected pair once, with From < To; pass
//     core.WithUndirected to Build when mirroring is wanted.
package builder

import (
	"errors"
	"math/rand"

	"github.com/centigraph/centigraph/core"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates a size below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices for topology")

	// ErrTooFewEdges indicates an edge budget below the connectivity floor.
	ErrTooFewEdges = errors.New("builder: edge count below spanning minimum")
)

// Cycle returns the n-cycle 0->1->...->n-1->0 as directed edges.
// Requires n >= 3.
//
// Complexity: O(n).
func Cycle(n int) ([]core.Edge, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	edges := make([]core.Edge, n)
	for v := 0; v < n; v++ {
		edges[v] = core.Edge{From: v, To: (v + 1) % n}
	}

	return edges, nil
}

// Path returns the simple path 0->1->...->n-1. Requires n >= 2.
//
// Complexity: O(n).
func Path(n int) ([]core.Edge, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	edges := make([]core.Edge, n-1)
	for v := 0; v < n-1; v++ {
		edges[v] = core.Edge{From: v, To: v + 1}
	}

	return edges, nil
}

// Star returns the star with center 0 and leaves 1..n-1, edges pointing
// from the leaves to the center (the direction that concentrates
// importance on the hub). Requires n >= 2.
//
// Complexity: O(n).
func Star(n int) ([]core.Edge, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	edges := make([]core.Edge, n-1)
	for v := 1; v < n; v++ {
		edges[v-1] = core.Edge{From: v, To: 0}
	}

	return edges, nil
}

// Complete returns every unordered pair (u,v), u < v, once. Requires n >= 2.
//
// Complexity: O(n^2).
func Complete(n int) ([]core.Edge, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	edges := make([]core.Edge, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, core.Edge{From: u, To: v})
		}
	}

	return edges, nil
}

// RandomSparse returns a connected pseudo-random edge list with n vertices
// and exactly m edges: a spanning chain 0-1-...-n-1 guarantees
// connectivity, then extra distinct non-loop pairs fill the budget. Weights
// are drawn uniformly from [1, 10). The seed fixes the whole output, so
// benchmarks and tests are reproducible run to run.
//
// Requires n >= 2 and m >= n-1.
//
// Complexity: O(m) expected.
func RandomSparse(n, m int, seed int64) ([]core.Edge, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	if m < n-1 {
		return nil, ErrTooFewEdges
	}

	rng := rand.New(rand.NewSource(seed))
	edges := make([]core.Edge, 0, m)

	// 1) Spanning chain for connectivity.
	for v := 1; v < n; v++ {
		edges = append(edges, core.Edge{From: v - 1, To: v, Weight: 1 + 9*rng.Float64()})
	}

	// 2) Extra random pairs until the budget is met. Parallel edges are
	//    acceptable to core.Build (they accumulate), only loops are skipped.
	var u, v int
	for len(edges) < m {
		u = rng.Intn(n)
		v = rng.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, core.Edge{From: u, To: v, Weight: 1 + 9*rng.Float64()})
	}

	return edges, nil
}
