// Package core implements the two-pass construction of the immutable Graph.
//
// Build strategy:
//
//   - Pass 1 validates every edge (index range, finite weight) and, when no
//     vertex count was declared, derives n = max referenced index + 1.
//   - Pass 2 allocates exact-capacity adjacency slices and fills both the
//     out-adjacency and the in-adjacency, together with the degree arrays.
//
// Parallel edges are deliberately NOT deduplicated: each occurrence becomes
// its own Arc, so multi-edges accumulate weight contributions additively
// when a solver sums over a neighborhood.
//
// Complexity:
//
//   - Time:  O(n + m) for both passes combined.
//   - Space: O(n + m) for adjacency and degree arrays
//     (O(n + 2m) when undirected, since every edge is mirrored).
package core

import (
	"fmt"
	"math"
)

// Graph is the immutable adjacency store over dense vertex indices [0, n).
//
// Both the out-adjacency and the in-adjacency are materialized at build
// time: Katz-style rules sum over in-edges while PageRank distributes over
// out-edges, and an immutable store can afford to keep both views.
//
// A Graph holds no locks. Immutability after Build makes it safe to share
// across any number of concurrent readers, including parallel per-vertex
// solver workers.
type Graph struct {
	directed bool // false when built with WithUndirected
	n        int  // vertex count
	m        int  // input edge count (mirrored arcs not double-counted)

	out [][]Arc // out[v] = arcs v -> *
	in  [][]Arc // in[v]  = arcs * -> v

	wOutDeg []float64 // wOutDeg[v] = sum of weights of arcs leaving v
}

// Build constructs an immutable Graph from the given edge list.
//
// Validation (fail-fast, before any allocation is visible to the caller):
//  1. Every From/To index must be non-negative (ErrInvalidVertex).
//  2. With WithVertexCount(n), every index must be < n (ErrInvalidVertex).
//  3. Every weight must be finite; NaN and ±Inf fail (ErrBadWeight).
//
// A zero weight is promoted to 1.0 (the unweighted default). The caller's
// edge slice is never mutated and never retained.
//
// Complexity: O(n + m) time, O(n + m) space.
func Build(edges []Edge, opts ...BuildOption) (*Graph, error) {
	// 1) Resolve options.
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.vertexCount < 0 {
		return nil, fmt.Errorf("core: declared vertex count %d: %w", cfg.vertexCount, ErrInvalidVertex)
	}

	// 2) Pass 1: validate every edge and derive n when not declared.
	n := cfg.vertexCount
	var (
		e Edge
		i int
	)
	for i = range edges {
		e = edges[i]
		if e.From < 0 || e.To < 0 {
			return nil, fmt.Errorf("core: edge #%d (%d->%d): %w", i, e.From, e.To, ErrInvalidVertex)
		}
		if cfg.vertexCount > 0 && (e.From >= cfg.vertexCount || e.To >= cfg.vertexCount) {
			return nil, fmt.Errorf("core: edge #%d (%d->%d) exceeds declared n=%d: %w",
				i, e.From, e.To, cfg.vertexCount, ErrInvalidVertex)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("core: edge #%d (%d->%d) weight=%v: %w", i, e.From, e.To, e.Weight, ErrBadWeight)
		}
		if cfg.vertexCount == 0 {
			if e.From >= n {
				n = e.From + 1
			}
			if e.To >= n {
				n = e.To + 1
			}
		}
	}

	// 3) Count per-vertex arc fan-out so pass 2 allocates exact capacities.
	outCount := make([]int, n)
	inCount := make([]int, n)
	for _, e = range edges {
		outCount[e.From]++
		inCount[e.To]++
		if !cfg.undirected || e.From == e.To {
			continue
		}
		// Mirrored arc of an undirected edge.
		outCount[e.To]++
		inCount[e.From]++
	}

	g := &Graph{
		directed: !cfg.undirected,
		n:        n,
		m:        len(edges),
		out:      make([][]Arc, n),
		in:       make([][]Arc, n),
		wOutDeg:  make([]float64, n),
	}
	var v int
	for v = 0; v < n; v++ {
		g.out[v] = make([]Arc, 0, outCount[v])
		g.in[v] = make([]Arc, 0, inCount[v])
	}

	// 4) Pass 2: fill adjacency. Zero weights become 1.0 here, once.
	var w float64
	for _, e = range edges {
		w = e.Weight
		if w == 0 {
			w = 1.0
		}
		g.out[e.From] = append(g.out[e.From], Arc{To: e.To, Weight: w})
		g.in[e.To] = append(g.in[e.To], Arc{To: e.From, Weight: w})
		g.wOutDeg[e.From] += w
		if !cfg.undirected || e.From == e.To {
			continue
		}
		g.out[e.To] = append(g.out[e.To], Arc{To: e.From, Weight: w})
		g.in[e.From] = append(g.in[e.From], Arc{To: e.To, Weight: w})
		g.wOutDeg[e.To] += w
	}

	return g, nil
}
