package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowd/graphio"
)

const fanInDoc = `directed: true
nodes:
  A: {T: sci}
  B: {T: pol}
  C: {T: sci}
  N: {}
edges:
  - {from: A, to: N}
  - {from: B, to: N}
  - {from: C, to: N}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeGraph(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDemoFlorentine(t *testing.T) {
	out, err := run(t, "demo", "florentine", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "NODE,S,M,K,D,PI,TOPICS", lines[0])
	assert.Contains(t, lines, "Medici,20,4,5,2,40,a-m")
	assert.Contains(t, lines, "Pucci,0,0,0,0,0,n-z")
	assert.Len(t, lines, 17)

	_, err = run(t, "demo", "venice")
	require.Error(t, err)
}

func TestDemoRandom(t *testing.T) {
	args := []string{"demo", "random", "--nodes", "12", "--density", "0.3", "--seed", "5", "--format", "csv"}
	out, err := run(t, args...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "NODE,S,M,K,D,PI,TOPICS", lines[0])
	assert.Len(t, lines, 13)
	assert.True(t, strings.HasPrefix(lines[1], "v0,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ",politics"), lines[1])

	again, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again, "a seed fixes the graph")

	pruned, err := run(t, append(args, "--min-weight", "9")...)
	require.NoError(t, err)
	assert.Equal(t, "NODE,S,M,K,D,PI,TOPICS", strings.TrimSpace(pruned), "weights never exceed 9")

	_, err = run(t, "demo", "florentine", "--min-weight", "1")
	require.Error(t, err, "florentine is unweighted")
}

func TestCensus(t *testing.T) {
	path := writeGraph(t, "fan.yaml", fanInDoc)
	out, err := run(t, "census", path, "--nodes", "N", "--format", "csv", "--workers", "1")
	require.NoError(t, err)
	assert.Equal(t, "NODE,S,M,K,D,PI\nN,15,3,5,2,30\n", out)

	out, err = run(t, "census", path, "--format", "json", "--transmitter", "--h", "6")
	require.NoError(t, err)
	var recs []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 4)
	assert.Equal(t, "A", recs[0]["node"])
}

func TestObserver(t *testing.T) {
	path := writeGraph(t, "fan.yaml", fanInDoc)
	out, err := run(t, "observer", path, "N", "-m", "3", "-k", "5")
	require.NoError(t, err)
	var res observerResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Observer)
	assert.Equal(t, []string{"A", "B", "C"}, res.Witness)
	assert.Equal(t, "receiver", res.Orientation)
	assert.Equal(t, -1, res.MaxSeparation, "fan-in sources never reach each other")

	out, err = run(t, "observer", path, "N", "-m", "4", "-k", "2", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "N,4,2,receiver,false,,inf")
	assert.Contains(t, out, "MAX_SEPARATION")

	chain := writeGraph(t, "chain.yaml", `directed: true
edges:
  - {from: A, to: B}
  - {from: B, to: C}
  - {from: A, to: N}
  - {from: C, to: N}
`)
	out, err = run(t, "observer", chain, "N", "-m", "2", "-k", "3")
	require.NoError(t, err)
	res = observerResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Observer)
	assert.Equal(t, 2, res.MaxSeparation)

	_, err = run(t, "observer", path, "missing", "-m", "2", "-k", "2")
	require.Error(t, err)
}

func TestScore(t *testing.T) {
	path := writeGraph(t, "fan.yaml", fanInDoc)
	out, err := run(t, "score", path, "N", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "N,15,3,5,2,30,"), lines[1])
}

func TestPrune(t *testing.T) {
	path := writeGraph(t, "g.yaml", `edges:
  - {from: A, to: B}
  - {from: B, to: C}
  - {from: C, to: A}
  - {from: A, to: D}
`)
	dest := filepath.Join(t.TempDir(), "pruned.json")
	_, err := run(t, "prune", path, "-o", dest)
	require.NoError(t, err)

	g, err := graphio.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	_, err = run(t, "prune", path, "-w", "1")
	require.Error(t, err)
}

func TestProfile(t *testing.T) {
	path := writeGraph(t, "fan.yaml", fanInDoc)
	out, err := run(t, "profile", path)
	require.NoError(t, err)
	var p profileOutput
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	require.Len(t, p.Summary, 3)
	require.NotNil(t, p.Profile)
	assert.Equal(t, 30, p.Profile.Curve[len(p.Profile.Curve)-1].Y)

	out, err = run(t, "profile", path, "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "SHADE")
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "demo", "florentine", "--format", "xml")
	require.Error(t, err)

	_, err = run(t, "demo", "florentine", "--log-level", "loud")
	require.Error(t, err)
}

func TestMetricsAddr(t *testing.T) {
	_, err := run(t, "demo", "florentine", "--metrics-addr", "127.0.0.1:0", "--format", "csv")
	require.NoError(t, err)
}
