// Package ranktable turns a finished score vector into query results:
// full sorts, top-k selection, and inclusive threshold filtering, each
// returning []Entry rows that optionally carry external vertex labels.
//
// Determinism contract: entries with EQUAL scores always order by
// ascending vertex index — in descending sorts, ascending sorts, top-k
// cut-offs, and filtered results alike. Downstream output is therefore
// stable across runs and across sort directions.
//
// Operations:
//
//	New(scores, WithLabels(labels)) (*Table, error) // O(n) copy
//	Sort(descending) []Entry                        // O(n log n)
//	TopK(k) []Entry                                 // O(n log n), k clamped
//	FilterThreshold(min) []Entry                    // score >= min, descending
//	Score(v) (float64, bool) / Len()                // O(1)
//
// The table copies its inputs once and never mutates them; it holds no
// reference back into solver buffers.
package ranktable
