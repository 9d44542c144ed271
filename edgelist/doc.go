// Package edgelist is the ingestion boundary in front of core.Build:
// it parses delimited edge-list sources and renumbers arbitrary external
// vertex identifiers into the dense [0, n) index space the solvers need.
//
// Two pieces:
//
//   - Codec — the bidirectional identifier map. Indices are assigned in
//     first-seen order (deterministic for a fixed input); Labels() hands
//     the inverse mapping to ranktable.WithLabels for presentation.
//
//   - ReadCSV — delimited reader for 2- or 3-column records
//     (source, destination[, weight]). Delimiter, comment rune, and header
//     skipping are ReadOptions; several sources can share one Codec via
//     WithCodec.
//
// Validation happens per record and fails fast with the 1-based record
// number in the error text:
//
//	ErrBadRecord – a row with a column count other than 2 or 3
//	ErrBadWeight – an unparseable, NaN, or infinite weight column
//
// Typical pipeline:
//
//	edges, codec, err := edgelist.ReadCSV(f)
//	g, err := core.Build(edges)
//	scores, err := centrality.PageRank(ctx, g)
//	tbl, err := ranktable.New(scores, ranktable.WithLabels(codec.Labels()))
package edgelist
