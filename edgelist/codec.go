// Package edgelist feeds core.Build from delimited edge-list sources and
// owns the renumbering between arbitrary external vertex identifiers and
// the dense [0, n) indices the core requires.
package edgelist

import "errors"

// Sentinel errors for edge-list ingestion.
var (
	// ErrBadRecord indicates a row without 2 or 3 columns.
	ErrBadRecord = errors.New("edgelist: record must have 2 or 3 columns")

	// ErrBadWeight indicates an unparseable or non-finite weight column.
	ErrBadWeight = errors.New("edgelist: bad weight column")

	// ErrUnknownLabel indicates a reverse lookup of an index never assigned.
	ErrUnknownLabel = errors.New("edgelist: vertex index has no label")
)

// Codec is the bidirectional map between external vertex identifiers and
// dense indices. Indices are assigned in first-seen order, which keeps
// ingestion deterministic for a fixed input.
//
// A Codec is not safe for concurrent mutation; build it fully, then share.
type Codec struct {
	index  map[string]int
	labels []string
}

// NewCodec returns an empty Codec.
func NewCodec() *Codec {
	return &Codec{index: make(map[string]int)}
}

// Index returns the dense index of id, assigning the next free index on
// first sight. Complexity: amortized O(1).
func (c *Codec) Index(id string) int {
	if ix, ok := c.index[id]; ok {
		return ix
	}
	ix := len(c.labels)
	c.index[id] = ix
	c.labels = append(c.labels, id)

	return ix
}

// Lookup returns the dense index of id without assigning one.
// Complexity: O(1).
func (c *Codec) Lookup(id string) (int, bool) {
	ix, ok := c.index[id]

	return ix, ok
}

// Label returns the external identifier mapped to index ix.
// Returns ErrUnknownLabel when ix was never assigned. Complexity: O(1).
func (c *Codec) Label(ix int) (string, error) {
	if ix < 0 || ix >= len(c.labels) {
		return "", ErrUnknownLabel
	}

	return c.labels[ix], nil
}

// Labels returns a copy of all labels in index order — the natural input
// for ranktable.WithLabels. Complexity: O(n).
func (c *Codec) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)

	return out
}

// Len returns how many distinct identifiers have been assigned.
// Complexity: O(1).
func (c *Codec) Len() int { return len(c.labels) }
