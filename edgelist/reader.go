package edgelist

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/centigraph/centigraph/core"
)

// readConfig collects resolved ReadCSV options.
type readConfig struct {
	comma   rune
	comment rune
	header  bool
	codec   *Codec
}

// ReadOption configures ReadCSV.
type ReadOption func(*readConfig)

// WithComma sets the field delimiter (default ',').
func WithComma(comma rune) ReadOption {
	return func(c *readConfig) { c.comma = comma }
}

// WithComments sets a comment rune; lines starting with it are skipped.
func WithComments(comment rune) ReadOption {
	return func(c *readConfig) { c.comment = comment }
}

// WithHeader skips the first non-comment record.
func WithHeader() ReadOption {
	return func(c *readConfig) { c.header = true }
}

// WithCodec reuses an existing Codec, so several files (or a file plus
// hand-written edges) share one dense index space.
func WithCodec(codec *Codec) ReadOption {
	return func(c *readConfig) { c.codec = codec }
}

// ReadCSV parses a delimited edge list of 2- or 3-column records
// (source id, destination id[, weight]) into core edges plus the Codec
// mapping external identifiers to dense indices.
//
// Weights must parse as finite floats; a missing third column leaves the
// weight at 0, which core.Build promotes to 1.0. Identifier columns are
// trimmed of surrounding whitespace. Errors carry the 1-based record
// number and wrap ErrBadRecord / ErrBadWeight for errors.Is.
//
// Complexity: O(rows) time, O(rows + distinct ids) space.
func ReadCSV(r io.Reader, opts ...ReadOption) ([]core.Edge, *Codec, error) {
	// 1) Resolve options.
	cfg := readConfig{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}
	codec := cfg.codec
	if codec == nil {
		codec = NewCodec()
	}

	// 2) Configure the underlying reader. Variable-length records are
	//    accepted here and validated per record below (2 or 3 columns).
	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.Comment = cfg.comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		edges  []core.Edge
		record []string
		row    int // 1-based data record counter
		weight float64
		err    error
	)
	for {
		record, err = cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("edgelist: %w", err)
		}
		row++
		if cfg.header && row == 1 {
			continue
		}

		// 3) Shape check: exactly (src, dst) or (src, dst, weight).
		if len(record) != 2 && len(record) != 3 {
			return nil, nil, fmt.Errorf("edgelist: record %d has %d columns: %w", row, len(record), ErrBadRecord)
		}

		// 4) Parse the optional weight column.
		weight = 0
		if len(record) == 3 {
			weight, err = strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
			if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
				return nil, nil, fmt.Errorf("edgelist: record %d weight %q: %w", row, record[2], ErrBadWeight)
			}
		}

		// 5) Renumber endpoints and collect the edge.
		edges = append(edges, core.Edge{
			From:   codec.Index(strings.TrimSpace(record[0])),
			To:     codec.Index(strings.TrimSpace(record[1])),
			Weight: weight,
		})
	}

	return edges, codec, nil
}
