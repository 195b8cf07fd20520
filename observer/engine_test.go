package observer_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowd/builder"
	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/metrics"
	"github.com/katalvlaran/crowd/observer"
	"github.com/katalvlaran/crowd/oracle"
)

func build(t *testing.T, gopts []core.GraphOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithSymbolIDs()}, cons...)
	require.NoError(t, err)
	return g
}

var directed = []core.GraphOption{core.WithDirected(true)}

func is(t *testing.T, e *observer.Engine, v string, m, k int, orient oracle.Orientation) bool {
	t.Helper()
	r, err := e.IsObserver(v, m, k, orient)
	require.NoError(t, err)
	return r.Observer
}

func TestIsObserver_Validation(t *testing.T) {
	e := observer.New(build(t, directed, builder.FanIn("N", 3)))

	_, err := e.IsObserver("N", 0, 2, oracle.Receiver)
	assert.ErrorIs(t, err, observer.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "m=0")

	_, err = e.IsObserver("N", 2, 1, oracle.Receiver)
	assert.ErrorIs(t, err, observer.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "k=1")

	_, err = e.IsObserver("ghost", 2, 2, oracle.Receiver)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestIsObserver_FanIn(t *testing.T) {
	e := observer.New(build(t, directed, builder.FanIn("N", 3)))

	for k := 2; k <= 5; k++ {
		r, err := e.IsObserver("N", 3, k, oracle.Receiver)
		require.NoError(t, err)
		assert.True(t, r.Observer, "k=%d", k)
		assert.Equal(t, []string{"A", "B", "C"}, r.Witness)
	}
	assert.False(t, is(t, e, "N", 4, 2, oracle.Receiver), "m above candidate count")

	sep, err := e.MaxSeparation("N", oracle.Receiver)
	require.NoError(t, err)
	assert.Equal(t, oracle.Unreachable, sep)
}

func TestIsObserver_OneWayPairIsIncompatible(t *testing.T) {
	g := build(t, directed, builder.Edges(
		[2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"B", "N"}, [2]string{"C", "N"},
	))
	e := observer.New(g)

	assert.False(t, is(t, e, "N", 2, 2, oracle.Receiver))
	assert.True(t, is(t, e, "N", 1, 5, oracle.Receiver), "single source is vacuously apart")
}

func TestIsObserver_FewerThanTwoCandidates(t *testing.T) {
	e := observer.New(build(t, directed, builder.Edges([2]string{"A", "B"})))

	assert.False(t, is(t, e, "B", 1, 2, oracle.Receiver))
	assert.False(t, is(t, e, "A", 1, 2, oracle.Receiver))
	assert.False(t, is(t, e, "B", 1, 2, oracle.Transmitter))
}

func TestIsObserver_UndirectedPath(t *testing.T) {
	e := observer.New(build(t, nil, builder.Path(4)))

	for k := 2; k <= 5; k++ {
		assert.True(t, is(t, e, "C", 1, k, oracle.Receiver))
		assert.True(t, is(t, e, "C", 2, k, oracle.Receiver))
		assert.False(t, is(t, e, "C", 3, k, oracle.Receiver))
	}
}

func TestIsObserver_Transmitter(t *testing.T) {
	// a→b→c→d, d⇄e, a→e
	g := build(t, directed, builder.Edges(
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"},
		[2]string{"d", "e"}, [2]string{"e", "d"}, [2]string{"a", "e"},
	))
	e := observer.New(g)

	cands, err := e.Candidates("a", oracle.Transmitter)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "e"}, cands)
	assert.True(t, is(t, e, "a", 2, 3, oracle.Transmitter))
	assert.False(t, is(t, e, "a", 2, 4, oracle.Transmitter))

	cands, err = e.Candidates("a", oracle.Receiver)
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestCandidates_SkipSelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, p := range [][2]string{{"v", "v"}, {"a", "v"}, {"b", "v"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	cands, err := observer.New(g).Candidates("v", oracle.Receiver)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cands)
}

func TestIsObserver_FlorentineMedici(t *testing.T) {
	g := build(t, directed, builder.Florentine())
	e := observer.New(g)

	// rows m=1..5, columns k=2..5
	want := [][]bool{
		{true, true, true, true},
		{true, true, true, true},
		{true, true, true, true},
		{true, true, true, true},
		{true, true, false, false},
	}
	for mi, row := range want {
		for ki, exp := range row {
			m, k := mi+1, ki+2
			assert.Equal(t, exp, is(t, e, "Medici", m, k, oracle.Receiver), "m=%d k=%d", m, k)
		}
	}

	r, err := e.IsObserver("Medici", 4, 5, oracle.Receiver)
	require.NoError(t, err)
	require.Len(t, r.Witness, 4)
	for i := range r.Witness {
		for j := range r.Witness {
			if i == j {
				continue
			}
			d, err := e.Oracle().Distance("Medici", r.Witness[i], r.Witness[j], oracle.Receiver)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, 5)
		}
	}
}

func TestIsObserver_Monotone(t *testing.T) {
	g := build(t, directed, builder.Florentine())
	e := observer.New(g)

	for _, v := range g.Vertices() {
		for m := 1; m <= 6; m++ {
			for k := 2; k <= 6; k++ {
				if !is(t, e, v, m, k, oracle.Receiver) {
					continue
				}
				for m2 := 1; m2 <= m; m2++ {
					for k2 := 2; k2 <= k; k2++ {
						assert.True(t, is(t, e, v, m2, k2, oracle.Receiver),
							"%s: (%d,%d) holds but (%d,%d) does not", v, m, k, m2, k2)
					}
				}
			}
		}
	}
}

func TestEngine_CachesAndReset(t *testing.T) {
	g := build(t, directed, builder.Florentine())
	e := observer.New(g)
	pos := metrics.ObserverSearches.WithLabelValues("receiver", "positive")
	before := testutil.ToFloat64(pos)

	cold := is(t, e, "Guadagni", 3, 4, oracle.Receiver)
	warm := is(t, e, "Guadagni", 3, 4, oracle.Receiver)
	assert.Equal(t, cold, warm)
	assert.True(t, cold)
	assert.Equal(t, before+2, testutil.ToFloat64(pos))

	st := e.Stats()
	assert.Equal(t, 1, st.Matrices)
	assert.Equal(t, 2, st.Searches)
	assert.Positive(t, st.Branches)

	e.Reset()
	assert.Equal(t, observer.Stats{}, e.Stats())
	assert.Equal(t, oracle.Stats{}, e.Oracle().Stats())
}
