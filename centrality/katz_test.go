// Package centrality_test exercises the Katz solver: parameter validation,
// exact edge-case behavior on tiny graphs, convergence on the karate club
// regression graph, and the best-effort non-convergence contract.
package centrality_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centigraph/centigraph/builder"
	"github.com/centigraph/centigraph/centrality"
	"github.com/centigraph/centigraph/core"
)

var ctx = context.Background()

// karateGraph builds the 34-vertex undirected regression graph.
func karateGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(builder.Karate(), core.WithUndirected())
	require.NoError(t, err)
	require.Equal(t, 34, g.VertexCount())

	return g
}

func TestKatz_Validation(t *testing.T) {
	g, err := core.Build([]core.Edge{{From: 0, To: 1}})
	require.NoError(t, err)

	_, err = centrality.Katz(ctx, nil)
	assert.ErrorIs(t, err, centrality.ErrNilGraph)

	_, err = centrality.Katz(ctx, g, centrality.WithAlpha(0))
	assert.ErrorIs(t, err, centrality.ErrInvalidAlpha)

	_, err = centrality.Katz(ctx, g, centrality.WithAlpha(-0.3))
	assert.ErrorIs(t, err, centrality.ErrInvalidAlpha)

	_, err = centrality.Katz(ctx, g, centrality.WithMaxIter(0))
	assert.ErrorIs(t, err, centrality.ErrInvalidMaxIter)

	_, err = centrality.Katz(ctx, g, centrality.WithTol(-1e-9))
	assert.ErrorIs(t, err, centrality.ErrInvalidTol)

	_, err = centrality.Katz(ctx, g, centrality.WithNStart([]float64{1}))
	assert.ErrorIs(t, err, centrality.ErrBadNStart)

	_, err = centrality.Katz(ctx, g, centrality.WithNStart([]float64{1, math.NaN()}))
	assert.ErrorIs(t, err, centrality.ErrBadNStart)

	_, err = centrality.Katz(ctx, g, centrality.WithBetaVector([]float64{1, 2, 3}))
	assert.ErrorIs(t, err, centrality.ErrBadBeta)

	_, err = centrality.Katz(ctx, g, centrality.WithBeta(math.Inf(1)))
	assert.ErrorIs(t, err, centrality.ErrBadBeta)
}

func TestKatz_EdgelessGraphConvergesFirstPassToBeta(t *testing.T) {
	g, err := core.Build(nil, core.WithVertexCount(5))
	require.NoError(t, err)

	passes := 0
	scores, err := centrality.Katz(ctx, g,
		centrality.WithBeta(2.5),
		centrality.WithNormalized(false),
		centrality.WithIterationHook(func(int, float64) { passes++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, passes)
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5, 2.5}, scores)
}

func TestKatz_IsolatedVertexScoresExactlyBeta(t *testing.T) {
	// Vertex 0 is isolated; the unrelated edge 1->2 must not touch it.
	// The isolated score equals beta bit-exactly, whatever alpha is.
	g, err := core.Build([]core.Edge{{From: 1, To: 2}})
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())

	for _, alpha := range []float64{0.01, 0.1, 0.45} {
		scores, err := centrality.Katz(ctx, g,
			centrality.WithAlpha(alpha),
			centrality.WithNormalized(false),
		)
		require.NoError(t, err)
		assert.Equal(t, 1.0, scores[0], "alpha=%v", alpha)
	}
}

func TestKatz_ScorePropagatesAlongEdgeDirection(t *testing.T) {
	// Star with all leaves pointing at the hub: the hub accumulates the
	// leaves' scores, leaves keep the bare bias.
	edges, err := builder.Star(5)
	require.NoError(t, err)
	g, err := core.Build(edges)
	require.NoError(t, err)

	scores, err := centrality.Katz(ctx, g,
		centrality.WithAlpha(0.1),
		centrality.WithNormalized(false),
	)
	require.NoError(t, err)

	// Hub fixed point: 1 + alpha*4 = 1.4; leaves stay at beta = 1.
	assert.InDelta(t, 1.4, scores[0], 1e-4)
	for v := 1; v < 5; v++ {
		assert.InDelta(t, 1.0, scores[v], 1e-9)
	}
	assert.Greater(t, scores[0], scores[1])
}

func TestKatz_KarateConvergesBelowAttenuationBound(t *testing.T) {
	// Karate club, 34 vertices, tol 1e-5: any alpha strictly below
	// 1/maxOutDegree must converge within the default pass cap.
	g := karateGraph(t)
	bound, err := core.KatzAlphaUpperBound(g)
	require.NoError(t, err)

	scores, err := centrality.Katz(ctx, g,
		centrality.WithAlpha(0.9*bound),
		centrality.WithTol(1e-5),
	)
	require.NoError(t, err)
	require.Len(t, scores, 34)

	// Normalized output has unit L2 norm.
	var norm float64
	for _, s := range scores {
		norm += s * s
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)

	// The two club leaders (0 and 33) dominate the periphery.
	assert.Greater(t, scores[33], scores[16])
	assert.Greater(t, scores[0], scores[16])
}

func TestKatz_IdempotentOnConvergedStart(t *testing.T) {
	g := karateGraph(t)
	bound, err := core.KatzAlphaUpperBound(g)
	require.NoError(t, err)

	opts := []centrality.Option{
		centrality.WithAlpha(0.5 * bound),
		centrality.WithNormalized(false), // fixed point of the raw rule
	}
	converged, err := centrality.Katz(ctx, g, opts...)
	require.NoError(t, err)

	passes := 0
	rerun, err := centrality.Katz(ctx, g, append(opts,
		centrality.WithNStart(converged),
		centrality.WithIterationHook(func(int, float64) { passes++ }),
	)...)
	require.NoError(t, err)
	assert.Equal(t, 1, passes, "converged start must terminate in a single pass")
	// The rerun applies the rule once more, so it may drift by at most the
	// tolerance that defined convergence in the first place.
	assert.InDeltaSlice(t, converged, rerun, 1e-4)
}

func TestKatz_PerVertexBetaVector(t *testing.T) {
	g, err := core.Build(nil, core.WithVertexCount(3))
	require.NoError(t, err)

	scores, err := centrality.Katz(ctx, g,
		centrality.WithBetaVector([]float64{1, 2, 3}),
		centrality.WithNormalized(false),
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, scores)
}

func TestKatz_NotConvergedCarriesBestEffort(t *testing.T) {
	// alpha far above 1/spectral_radius on a dense graph cannot settle.
	edges, err := builder.Complete(10)
	require.NoError(t, err)
	g, err := core.Build(edges, core.WithUndirected())
	require.NoError(t, err)

	_, err = centrality.Katz(ctx, g,
		centrality.WithAlpha(0.5),
		centrality.WithMaxIter(15),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, centrality.ErrNotConverged)

	var nc *centrality.NotConvergedError
	require.ErrorAs(t, err, &nc)
	assert.Equal(t, 15, nc.Iterations)
	assert.Len(t, nc.Scores, 10)
	assert.Positive(t, nc.Delta)
}

func TestKatz_ContextCancellation(t *testing.T) {
	g := karateGraph(t)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := centrality.Katz(cancelled, g)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, centrality.ErrNotConverged))
}
