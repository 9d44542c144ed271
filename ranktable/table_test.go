// Package ranktable_test pins the deterministic query contracts: the
// ascending-index tie-break in both sort directions, top-k clamping, and
// the inclusive threshold filter.
package ranktable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centigraph/centigraph/ranktable"
)

func TestNew_CopiesScores(t *testing.T) {
	scores := []float64{0.3, 0.1}
	tbl, err := ranktable.New(scores)
	require.NoError(t, err)

	scores[0] = 99 // later caller mutation must not leak into the table
	got, ok := tbl.Score(0)
	require.True(t, ok)
	assert.Equal(t, 0.3, got)
}

func TestNew_LabelMismatch(t *testing.T) {
	_, err := ranktable.New([]float64{1, 2}, ranktable.WithLabels([]string{"only-one"}))
	assert.ErrorIs(t, err, ranktable.ErrLabelMismatch)
}

func TestScore_OutOfRange(t *testing.T) {
	tbl, err := ranktable.New([]float64{0.5})
	require.NoError(t, err)

	_, ok := tbl.Score(-1)
	assert.False(t, ok)
	_, ok = tbl.Score(1)
	assert.False(t, ok)
}

func TestSort_TieGroupsAscendingInBothDirections(t *testing.T) {
	// Vertices 0 and 2 tie at 0.5; 1 and 3 tie at 0.1.
	tbl, err := ranktable.New([]float64{0.5, 0.1, 0.5, 0.1})
	require.NoError(t, err)

	desc := tbl.Sort(true)
	require.Len(t, desc, 4)
	assert.Equal(t, []int{0, 2, 1, 3}, vertices(desc))

	asc := tbl.Sort(false)
	assert.Equal(t, []int{1, 3, 0, 2}, vertices(asc))

	// Reversing the descending order flips the score groups but reverses
	// the intra-tie order; the ascending sort keeps ties ascending instead.
	for i := range desc {
		assert.Equal(t, desc[i].Score, asc[len(asc)-1-i].Score)
	}
}

func TestTopK_LowerIndexWinsTheTie(t *testing.T) {
	// Scores {0: 0.5, 1: 0.5, 2: 0.1}: top_k(1) must pick vertex 0.
	tbl, err := ranktable.New([]float64{0.5, 0.5, 0.1})
	require.NoError(t, err)

	top := tbl.TopK(1)
	require.Len(t, top, 1)
	assert.Equal(t, 0, top[0].Vertex)
	assert.Equal(t, 0.5, top[0].Score)
}

func TestTopK_Clamping(t *testing.T) {
	tbl, err := ranktable.New([]float64{0.2, 0.9})
	require.NoError(t, err)

	assert.Empty(t, tbl.TopK(0))
	assert.Empty(t, tbl.TopK(-4))
	assert.Len(t, tbl.TopK(2), 2)
	assert.Len(t, tbl.TopK(100), 2)
	assert.Equal(t, 1, tbl.TopK(100)[0].Vertex) // highest score first
}

func TestFilterThreshold_InclusiveBoundary(t *testing.T) {
	tbl, err := ranktable.New([]float64{0.1, 0.5, 0.3, 0.5})
	require.NoError(t, err)

	kept := tbl.FilterThreshold(0.3)
	// score >= 0.3, descending, ties ascending by index.
	assert.Equal(t, []int{1, 3, 2}, vertices(kept))

	assert.Len(t, tbl.FilterThreshold(0.0), 4)
	assert.Empty(t, tbl.FilterThreshold(0.6))
}

func TestLabelsFlowThroughQueries(t *testing.T) {
	tbl, err := ranktable.New(
		[]float64{0.2, 0.7},
		ranktable.WithLabels([]string{"alice", "bob"}),
	)
	require.NoError(t, err)

	top := tbl.TopK(1)
	require.Len(t, top, 1)
	assert.Equal(t, "bob", top[0].Label)
	assert.Equal(t, 2, tbl.Len())
}

// vertices projects the Vertex column of a result for compact assertions.
func vertices(entries []ranktable.Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Vertex
	}

	return out
}
