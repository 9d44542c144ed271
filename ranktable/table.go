// Package ranktable wraps a finished score vector behind a small, strongly
// typed query surface: descending/ascending sort, top-k, and threshold
// filtering. Pure presentation logic — no iteration semantics live here.
package ranktable

import (
	"errors"
	"fmt"
	"sort"
)

// ErrLabelMismatch indicates a label slice whose length differs from the
// score vector's.
var ErrLabelMismatch = errors.New("ranktable: label count does not match score count")

// Entry is one (vertex, score) row of a query result. Label carries the
// external identifier when the table was built with labels, "" otherwise.
type Entry struct {
	// Vertex is the dense vertex index.
	Vertex int

	// Label is the optional external identifier of Vertex.
	Label string

	// Score is the centrality score of Vertex.
	Score float64
}

// Table is a read-only view over a score vector. All queries share one
// deterministic tie-break: entries with equal scores order by ascending
// vertex index, in BOTH sort directions.
type Table struct {
	scores []float64
	labels []string // nil when unlabeled
}

// tableConfig collects resolved New options.
type tableConfig struct {
	labels []string
}

// TableOption configures table construction.
type TableOption func(*tableConfig)

// WithLabels attaches external identifiers (typically the inverse of the
// edgelist renumbering) so query results carry original IDs. The slice
// must have exactly one label per score.
func WithLabels(labels []string) TableOption {
	return func(c *tableConfig) { c.labels = labels }
}

// New builds a Table over a private copy of scores, so later mutation of
// the caller's slice cannot skew query results.
// Returns ErrLabelMismatch when WithLabels supplies a wrong-length slice.
//
// Complexity: O(n) time and space.
func New(scores []float64, opts ...TableOption) (*Table, error) {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.labels != nil && len(cfg.labels) != len(scores) {
		return nil, fmt.Errorf("ranktable: %d labels for %d scores: %w", len(cfg.labels), len(scores), ErrLabelMismatch)
	}

	t := &Table{scores: make([]float64, len(scores))}
	copy(t.scores, scores)
	if cfg.labels != nil {
		t.labels = make([]string, len(cfg.labels))
		copy(t.labels, cfg.labels)
	}

	return t, nil
}

// Len returns the number of scored vertices. Complexity: O(1).
func (t *Table) Len() int { return len(t.scores) }

// Score returns the score of vertex v and whether v is in range.
// Complexity: O(1).
func (t *Table) Score(v int) (float64, bool) {
	if v < 0 || v >= len(t.scores) {
		return 0, false
	}

	return t.scores[v], true
}

// Sort returns every entry ordered by score — descending when descending is
// true, ascending otherwise. Equal scores order by ascending vertex index
// in both directions.
//
// Complexity: O(n log n) time, O(n) space.
func (t *Table) Sort(descending bool) []Entry {
	entries := t.all()
	sortEntries(entries, descending)

	return entries
}

// TopK returns the k highest-scoring entries in descending order, ties
// broken by ascending vertex index (the lower index wins a tied cut-off).
// k is clamped to [0, Len()].
//
// Complexity: O(n log n) time, O(n) space.
func (t *Table) TopK(k int) []Entry {
	if k <= 0 {
		return []Entry{}
	}
	entries := t.Sort(true)
	if k < len(entries) {
		entries = entries[:k]
	}

	return entries
}

// FilterThreshold returns every entry with score >= min, in descending
// score order with the usual tie-break.
//
// Complexity: O(n log n) time, O(n) space.
func (t *Table) FilterThreshold(min float64) []Entry {
	kept := make([]Entry, 0, len(t.scores))
	for v, s := range t.scores {
		if s >= min {
			kept = append(kept, t.entry(v, s))
		}
	}
	sortEntries(kept, true)

	return kept
}

// all materializes one Entry per vertex in index order.
func (t *Table) all() []Entry {
	entries := make([]Entry, len(t.scores))
	for v, s := range t.scores {
		entries[v] = t.entry(v, s)
	}

	return entries
}

// entry assembles a single row, attaching the label when present.
func (t *Table) entry(v int, score float64) Entry {
	e := Entry{Vertex: v, Score: score}
	if t.labels != nil {
		e.Label = t.labels[v]
	}

	return e
}

// sortEntries orders entries by score in the requested direction, with the
// deterministic ascending-index tie-break in both directions.
func sortEntries(entries []Entry, descending bool) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			if descending {
				return entries[i].Score > entries[j].Score
			}

			return entries[i].Score < entries[j].Score
		}

		return entries[i].Vertex < entries[j].Vertex
	})
}
