package core

// VertexCount returns n, the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of INPUT edges. Mirrored arcs created for an
// undirected graph are not double-counted. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.m }

// Directed reports whether the graph was built as directed
// (true unless WithUndirected was given). Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// OutDegree returns the number of arcs leaving v.
// Returns ErrInvalidVertex if v is outside [0, n). Complexity: O(1).
func (g *Graph) OutDegree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, ErrInvalidVertex
	}

	return len(g.out[v]), nil
}

// InDegree returns the number of arcs entering v.
// Returns ErrInvalidVertex if v is outside [0, n). Complexity: O(1).
func (g *Graph) InDegree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, ErrInvalidVertex
	}

	return len(g.in[v]), nil
}

// WeightedOutDegree returns the sum of weights of arcs leaving v.
// Returns ErrInvalidVertex if v is outside [0, n). Complexity: O(1).
func (g *Graph) WeightedOutDegree(v int) (float64, error) {
	if v < 0 || v >= g.n {
		return 0, ErrInvalidVertex
	}

	return g.wOutDeg[v], nil
}

// OutNeighbors returns the arcs leaving v, in insertion order.
//
// The returned slice is the graph's internal storage: callers MUST treat it
// as read-only. Sharing the backing array keeps the per-vertex solver loop
// allocation-free. Returns ErrInvalidVertex if v is outside [0, n).
// Complexity: O(1).
func (g *Graph) OutNeighbors(v int) ([]Arc, error) {
	if v < 0 || v >= g.n {
		return nil, ErrInvalidVertex
	}

	return g.out[v], nil
}

// InNeighbors returns the arcs entering v, in insertion order. Arc.To holds
// the SOURCE endpoint of each incoming edge. Same read-only contract as
// OutNeighbors. Complexity: O(1).
func (g *Graph) InNeighbors(v int) ([]Arc, error) {
	if v < 0 || v >= g.n {
		return nil, ErrInvalidVertex
	}

	return g.in[v], nil
}

// MaxOutDegree returns the largest out-degree over all vertices, or 0 for a
// graph with no edges. Returns ErrNoVertices when n == 0.
//
// Complexity: O(n).
func MaxOutDegree(g *Graph) (int, error) {
	if g == nil || g.n == 0 {
		return 0, ErrNoVertices
	}
	maxDeg := 0
	for v := 0; v < g.n; v++ {
		if d := len(g.out[v]); d > maxDeg {
			maxDeg = d
		}
	}

	return maxDeg, nil
}

// KatzAlphaUpperBound returns 1 / MaxOutDegree(g), the classic safe choice
// ceiling for the Katz attenuation factor: the power series sum of
// (alpha*A)^k converges whenever alpha < 1/spectral_radius(A), and the
// maximum out-degree bounds the spectral radius from above.
//
// The bound is safe, not tight — alpha values between this bound and the
// true 1/spectral_radius may still converge. An edgeless graph returns 1.
// Returns ErrNoVertices when n == 0.
//
// Complexity: O(n).
func KatzAlphaUpperBound(g *Graph) (float64, error) {
	maxDeg, err := MaxOutDegree(g)
	if err != nil {
		return 0, err
	}
	if maxDeg == 0 {
		return 1, nil
	}

	return 1 / float64(maxDeg), nil
}
