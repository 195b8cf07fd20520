package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowd/builder"
	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/crowd"
	"github.com/katalvlaran/crowd/graphio"
)

const fanDoc = `
directed: true
nodes:
  A: {T: finance}
  B: {T: [finance, sport]}
  C: {}
edges:
  - {from: A, to: C}
  - {from: B, to: C}
`

func TestRead_YAML(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(fanDoc))
	require.NoError(t, err)
	require.True(t, g.Directed())
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	in, err := g.InNeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, in)

	a, ok := g.Attribute("A", "T")
	require.True(t, ok)
	assert.Equal(t, "finance", a)
	b, ok := g.Attribute("B", "T")
	require.True(t, ok)
	assert.Equal(t, []string{"finance", "sport"}, b)
}

func TestRead_JSON(t *testing.T) {
	doc := `{"directed": false, "weighted": true, "nodes": {"X": {"T": 7}}, "edges": [{"from": "X", "to": "Y", "weight": 3}]}`
	g, err := graphio.Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge("Y", "X"))
	require.Len(t, g.Edges(), 1)
	assert.Equal(t, int64(3), g.Edges()[0].Weight)
}

func TestRead_SelfLoopEnablesLoops(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("directed: true\nedges: [{from: A, to: A}]\n"))
	require.NoError(t, err)
	assert.True(t, g.Looped())
}

func TestRead_Invalid(t *testing.T) {
	cases := map[string]string{
		"weight on unweighted": "edges: [{from: A, to: B, weight: 2}]",
		"empty endpoint":       "edges: [{from: A, to: ''}]",
		"nested attribute":     "nodes: {A: {T: [[x]]}}",
		"map attribute":        "nodes: {A: {T: {x: 1}}}",
		"unknown field":        "directd: true",
		"duplicate edge":       "directed: true\nedges: [{from: A, to: B}, {from: A, to: B}]",
		"not yaml":             "nodes: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(doc))
			require.ErrorIs(t, err, graphio.ErrInvalidDocument)
		})
	}
}

func TestRead_Empty(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

func TestRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)}, nil,
		builder.FanIn("N", 4),
	)
	require.NoError(t, err)
	require.NoError(t, g.SetAttribute("N", "T", crowd.Collection("b", "a")))
	require.NoError(t, g.SetAttribute("N", "label", 12))

	for _, enc := range []graphio.Encoding{graphio.YAML, graphio.JSON} {
		var buf bytes.Buffer
		require.NoError(t, graphio.Write(&buf, g, enc))

		back, err := graphio.Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, g.Vertices(), back.Vertices())
		assert.Equal(t, g.EdgeCount(), back.EdgeCount())
		for _, e := range g.Edges() {
			assert.True(t, back.HasEdge(e.From, e.To), "%s->%s", e.From, e.To)
		}
		topic, ok := back.Attribute("N", "T")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, topic)
		label, _ := back.Attribute("N", "label")
		assert.EqualValues(t, 12, label)
	}
}

func TestFiles(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(fanDoc))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"g.yaml", "g.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.WriteFile(path, g))
		back, err := graphio.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, g.Vertices(), back.Vertices())
	}
	assert.Equal(t, graphio.JSON, graphio.EncodingFor("x.JSON"))
	assert.Equal(t, graphio.YAML, graphio.EncodingFor("x.yml"))

	_, err = graphio.ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
