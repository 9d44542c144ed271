// Package centigraph computes iterative eigenvector-style centrality —
// Katz centrality and PageRank — over immutable sparse graphs.
//
// 🚀 What is centigraph?
//
//	A small, focused library for scoring vertex importance:
//		• Immutable graph store: build once from an edge list, share freely
//		• Power-iteration solvers: Katz & PageRank with explicit convergence
//		• Double-buffered passes: deterministic, lock-free, parallelizable
//		• Result tables: top-k, threshold filters, stable tie-breaking
//		• Edge-list ingestion: CSV/TSV parsing + external-ID renumbering
//
// ✨ Why choose centigraph?
//
//   - Explicit numerics – convergence is delta < n·tol, never silent truncation;
//     non-convergence surfaces the best-effort vector via NotConvergedError
//   - Deterministic – identical results sequential or parallel, run after run
//   - Honest parameters – pick a safe Katz alpha from core.KatzAlphaUpperBound;
//     the solver never second-guesses your choice
//   - Pure computation – no I/O or logging inside the solvers; observe
//     progress through the OnIteration hook, cancel through context
//
// The packages, leaves first:
//
//	core/       — immutable Graph store, degrees, attenuation bound helper
//	builder/    — deterministic edge-list fixtures (cycle, star, karate, …)
//	centrality/ — the shared power-iteration engine + Katz and PageRank
//	ranktable/  — sort / top-k / threshold queries over finished scores
//	edgelist/   — CSV ingestion and external-ID ⇄ dense-index codec
//
// Quick taste:
//
//	edges, codec, _ := edgelist.ReadCSV(file)
//	g, _ := core.Build(edges, core.WithUndirected())
//	scores, err := centrality.PageRank(ctx, g)
//	tbl, _ := ranktable.New(scores, ranktable.WithLabels(codec.Labels()))
//	for _, e := range tbl.TopK(10) {
//	    fmt.Println(e.Label, e.Score)
//	}
//
//	go get github.com/centigraph/centigraph
package centigraph
