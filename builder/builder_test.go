package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowd/builder"
	"github.com/katalvlaran/crowd/core"
)

var directed = []core.GraphOption{core.WithDirected(true)}

func TestPathAndCycle(t *testing.T) {
	g, err := builder.BuildGraph(directed, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 3, g.EdgeCount())

	g, err = builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "4"))

	_, err = builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCompleteMirrorsWhenDirected(t *testing.T) {
	g, err := builder.BuildGraph(directed, nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())

	g, err = builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
}

func TestFanIn(t *testing.T) {
	g, err := builder.BuildGraph(directed, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.FanIn("N", 3))
	require.NoError(t, err)
	in, err := g.InNeighborIDs("N")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, in)

	_, err = builder.BuildGraph(directed, nil, builder.FanIn("N", 0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestFlorentine(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Florentine())
	require.NoError(t, err)
	assert.Equal(t, 16, g.VertexCount())
	assert.Equal(t, 20, g.EdgeCount())

	dg, err := builder.BuildGraph(directed, nil, builder.Florentine())
	require.NoError(t, err)
	assert.Equal(t, 40, dg.EdgeCount())
	in, err := dg.InNeighborIDs("Medici")
	require.NoError(t, err)
	assert.Len(t, in, 6)
	iso, err := dg.InNeighborIDs(builder.FlorentineIsolated)
	require.NoError(t, err)
	assert.Empty(t, iso)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.BuildGraph(directed, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.EdgeCount())

	seed := []builder.BuilderOption{builder.WithSeed(7)}
	a, err := builder.BuildGraph(directed, seed, builder.RandomSparse(30, 0.1))
	require.NoError(t, err)
	b, err := builder.BuildGraph(directed, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(30, 0.1))
	require.NoError(t, err)
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
}

func TestWeightedEdges(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(3))},
		builder.Edges([2]string{"x", "y"}),
	)
	require.NoError(t, err)
	e := g.Edges()[0]
	assert.Equal(t, int64(3), e.Weight)
}

func TestTopics(t *testing.T) {
	g, err := builder.BuildGraph(directed, []builder.BuilderOption{builder.WithSymbolIDs()},
		builder.FanIn("N", 2),
		builder.Topics(map[string]interface{}{"A": "sci", "B": []string{"pol", "sci"}}),
	)
	require.NoError(t, err)
	v, ok := g.Attribute("A", builder.DefaultTopicKey)
	require.True(t, ok)
	assert.Equal(t, "sci", v)
	v, _ = g.Attribute("B", builder.DefaultTopicKey)
	assert.Equal(t, []string{"pol", "sci"}, v)

	_, err = builder.BuildGraph(nil, nil, builder.Topics(map[string]interface{}{"A": 42}))
	assert.ErrorIs(t, err, builder.ErrBadTopic)

	require.NoError(t, builder.Apply(g,
		[]builder.BuilderOption{builder.WithTopicKey("lang")},
		builder.TopicsFunc(func(id string) interface{} {
			if id == "N" {
				return nil
			}
			return "en"
		}),
	))
	_, ok = g.Attribute("N", "lang")
	assert.False(t, ok)
	v, _ = g.Attribute("B", "lang")
	assert.Equal(t, "en", v)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
}
