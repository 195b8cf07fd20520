package prune_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowd/bfs"
	"github.com/katalvlaran/crowd/builder"
	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/prune"
)

func mustEdge(t *testing.T, g *core.Graph, from, to string, w int64) {
	t.Helper()
	_, err := g.AddEdge(from, to, w)
	require.NoError(t, err)
}

func TestIteratively_LeavesAndSmallComponents(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B", 0)
	mustEdge(t, g, "B", "C", 0)
	mustEdge(t, g, "C", "A", 0)
	mustEdge(t, g, "A", "D", 0)
	mustEdge(t, g, "E", "F", 0)

	out, err := prune.Iteratively(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, out.Vertices())
	assert.Equal(t, 3, out.EdgeCount())

	// input untouched
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
}

func TestIteratively_ChainVanishes(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B", 0)
	mustEdge(t, g, "B", "C", 0)
	mustEdge(t, g, "C", "D", 0)

	out, err := prune.Iteratively(g)
	require.NoError(t, err)
	assert.Zero(t, out.VertexCount())
	assert.Zero(t, out.EdgeCount())
	assert.Equal(t, g.Directed(), out.Directed())
}

func TestIteratively_WeightThreshold(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 5)
	mustEdge(t, g, "B", "C", 5)
	mustEdge(t, g, "C", "A", 1)

	out, err := prune.Iteratively(g, prune.WithThreshold(0), prune.WithWeightThreshold(1))
	require.NoError(t, err)
	assert.Equal(t, 3, out.VertexCount())
	assert.Equal(t, 2, out.EdgeCount())
	assert.False(t, out.HasEdge("C", "A"))
}

func TestIteratively_WeightThresholdRandomWeighted(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.BuilderOption{
				builder.WithRand(rand.New(rand.NewSource(seed))),
				builder.WithSymbNumb("v"),
				builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
			},
			builder.RandomSparse(30, 0.2),
		)
		require.NoError(t, err)
		edges := g.EdgeCount()

		out, err := prune.Iteratively(g, prune.WithThreshold(0), prune.WithWeightThreshold(4))
		require.NoError(t, err)
		for _, e := range out.Edges() {
			assert.Greater(t, e.Weight, int64(4), "seed=%d edge %s", seed, e.ID)
		}
		if ids := out.Vertices(); len(ids) > 0 {
			res, err := bfs.BFS(out, ids[0], bfs.WithDirection(bfs.Both))
			require.NoError(t, err)
			assert.Len(t, res.Order, len(ids), "seed=%d: one weak component", seed)
		}
		assert.Equal(t, edges, g.EdgeCount(), "input untouched")
	}
}

func TestIteratively_WeightThresholdNeedsWeights(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B", 0)

	_, err := prune.Iteratively(g, prune.WithWeightThreshold(1))
	require.ErrorIs(t, err, prune.ErrNotWeighted)

	_, err = prune.Iteratively(nil)
	require.ErrorIs(t, err, prune.ErrNilGraph)
}

func TestIteratively_KeepsDirection(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	mustEdge(t, g, "A", "B", 0)
	mustEdge(t, g, "B", "C", 0)
	mustEdge(t, g, "C", "A", 0)
	mustEdge(t, g, "X", "A", 0)

	out, err := prune.Iteratively(g)
	require.NoError(t, err)
	require.True(t, out.Directed())
	assert.ElementsMatch(t, []string{"A", "B", "C"}, out.Vertices())
	assert.True(t, out.HasEdge("A", "B"))
	assert.False(t, out.HasEdge("B", "A"))
}

func TestIteratively_ComponentTieBreak(t *testing.T) {
	g := core.NewGraph()
	for _, tri := range [][3]string{{"X", "Y", "Z"}, {"A", "B", "C"}} {
		mustEdge(t, g, tri[0], tri[1], 0)
		mustEdge(t, g, tri[1], tri[2], 0)
		mustEdge(t, g, tri[2], tri[0], 0)
	}
	mustEdge(t, g, "X", "L", 0)

	out, err := prune.Iteratively(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, out.Vertices())
}

func TestIteratively_StableInputUnchanged(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B", 0)
	mustEdge(t, g, "B", "C", 0)
	mustEdge(t, g, "C", "A", 0)

	out, err := prune.Iteratively(g)
	require.NoError(t, err)
	assert.Equal(t, 3, out.VertexCount())
	assert.Equal(t, 3, out.EdgeCount())
}
