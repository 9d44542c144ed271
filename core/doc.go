// Package core provides the immutable, share-everywhere Graph store that
// backs the centigraph centrality solvers.
//
// The Graph G = (V, E) is specialized for iterative score propagation:
//
//   - Dense integer vertex indices in [0, n) — no identifier maps on the
//     hot path (see package edgelist for external-ID renumbering).
//   - Both out-adjacency and in-adjacency materialized at construction,
//     because Katz sums over in-edges while PageRank distributes over
//     out-edges.
//   - Built exactly once from an edge list; any topology change means
//     rebuilding. No locks, no mutation API — immutability is what makes
//     the store safe for concurrent solver workers.
//   - Parallel (multi-)edges are preserved as distinct arcs, so their
//     weight contributions accumulate additively during propagation.
//   - Degree arrays (out, in, weighted-out) precomputed for O(1) lookup.
//
// Configuration Options (BuildOption):
//
//	– WithUndirected()
//	    Treat the input as undirected: every edge (u,v) also stores the
//	    mirrored arc (v,u). Self-loops are stored once. Without this
//	    option the input is directed; directedness is never inferred.
//
//	– WithVertexCount(n)
//	    Declare n up front; edges referencing an index >= n fail Build
//	    with ErrInvalidVertex. Without it, n = max referenced index + 1.
//
// Core Methods:
//
//	Build(edges, opts...) (*Graph, error)       // O(n+m), fail-fast validation
//	VertexCount() / EdgeCount() / Directed()    // O(1)
//	OutDegree(v) / InDegree(v)                  // O(1)
//	WeightedOutDegree(v)                        // O(1)
//	OutNeighbors(v) / InNeighbors(v)            // O(1), read-only views
//	MaxOutDegree(g)                             // O(n)
//	KatzAlphaUpperBound(g)                      // O(n), = 1/MaxOutDegree
//
// Errors:
//
//	ErrInvalidVertex – negative or out-of-range vertex index
//	ErrBadWeight     – NaN or infinite edge weight
//	ErrNoVertices    – degree/adjacency query on an empty graph
//
// Malformed input (negative indices, NaN weights) is rejected here, at
// construction time, so the solvers never discover bad data mid-iteration.
package core
