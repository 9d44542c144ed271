// Package core defines the immutable Graph store that every centrality
// computation in centigraph consumes.
//
// Unlike a general-purpose mutable graph, the store is built exactly once
// from an edge list and never changes afterwards. Vertices are dense
// integer indices in [0, n); mapping arbitrary external identifiers onto
// that range (and back) is the job of package edgelist, not of this core.
//
// This file declares Edge, Arc, BuildOption, and the sentinel errors.
//
// Errors:
//
//	ErrInvalidVertex - an edge references a negative or out-of-range index.
//	ErrBadWeight     - an edge weight is NaN or infinite.
//	ErrNoVertices    - a degree or adjacency query on an empty graph.
package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidVertex indicates an edge endpoint outside [0, n).
	ErrInvalidVertex = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrNoVertices indicates a query against a graph with no vertices.
	ErrNoVertices = errors.New("core: graph has no vertices")
)

// Edge is one input arc (From -> To) with an optional weight.
//
// A zero Weight means "unweighted": Build promotes it to 1.0, so callers
// constructing edge lists by hand may leave the field unset.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge weight; 0 is promoted to 1.0 during Build.
	Weight float64
}

// Arc is one stored adjacency entry: the far endpoint plus the edge weight.
// Arcs are what the solver iterates over; they are never mutated after Build.
type Arc struct {
	// To is the neighboring vertex index.
	To int

	// Weight is the (already defaulted) edge weight.
	Weight float64
}

// buildConfig collects the resolved Build options.
type buildConfig struct {
	undirected  bool // mirror every input edge during construction
	vertexCount int  // declared n; 0 means "derive from max index + 1"
}

// BuildOption configures graph construction.
type BuildOption func(*buildConfig)

// WithUndirected declares the input edge list undirected: every input edge
// (u,v) also contributes the reverse arc (v,u) with the same weight.
// Self-loops are stored once, not doubled.
//
// The input is treated as directed unless this option is given; the store
// never infers directedness from the shape of the data.
func WithUndirected() BuildOption {
	return func(c *buildConfig) { c.undirected = true }
}

// WithVertexCount declares the number of vertices up front. Edges referencing
// an index >= n then fail Build with ErrInvalidVertex. Without this option,
// n is derived as (max referenced index + 1), so trailing isolated vertices
// must be declared explicitly to participate in scoring.
func WithVertexCount(n int) BuildOption {
	return func(c *buildConfig) { c.vertexCount = n }
}
