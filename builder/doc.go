// Package builder produces deterministic edge lists for canonical
// topologies, primarily as fixtures for tests and benchmarks:
//
//	Cycle(n)                 — directed n-cycle
//	Path(n)                  — directed simple path
//	Star(n)                  — leaves pointing at a central hub
//	Complete(n)              — every unordered pair once
//	RandomSparse(n, m, seed) — connected, seeded, weighted random graph
//	Karate()                 — Zachary's karate club (34 vertices, 78 edges)
//
// Constructors return []core.Edge instead of built graphs, leaving
// directedness and vertex-count declarations to the caller's core.Build
// invocation. Undirected shapes list each pair once with From < To.
//
// Errors:
//
//	ErrTooFewVertices – size below the topology's minimum
//	ErrTooFewEdges    – edge budget below the spanning minimum
package builder
