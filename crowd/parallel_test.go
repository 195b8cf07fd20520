package crowd_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowd/builder"
	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/crowd"
)

func TestParallelCensus_MatchesSequential(t *testing.T) {
	g := florentine(t)
	census := []crowd.CensusOption{crowd.WithH(6), crowd.WithTransmitter(), crowd.WithTopics()}

	seq, err := newCrowd(t, g).Census(nil, census...)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 64} {
		par, err := crowd.ParallelCensus(context.Background(), g, nil, workers, census)
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d", workers)
	}
}

func TestParallelCensus_RandomGraph(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithSymbNumb("v")},
		builder.RandomSparse(40, 0.08),
	)
	require.NoError(t, err)

	seq, err := newCrowd(t, g, crowd.WithMaxM(4)).Census(nil)
	require.NoError(t, err)
	par, err := crowd.ParallelCensus(context.Background(), g, nil, 4, nil, crowd.WithMaxM(4))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestParallelCensus_Errors(t *testing.T) {
	_, err := crowd.ParallelCensus(context.Background(), nil, nil, 2, nil)
	assert.ErrorIs(t, err, crowd.ErrNilGraph)
	var none *core.Graph
	_, err = crowd.ParallelCensus(context.Background(), none, nil, 2, nil)
	assert.ErrorIs(t, err, crowd.ErrNilGraph)

	g := fanIn(t)
	_, err = crowd.ParallelCensus(context.Background(), g, nil, 2, nil, crowd.WithKRange(1, 2))
	assert.ErrorIs(t, err, crowd.ErrInvalidParameter)

	_, err = crowd.ParallelCensus(context.Background(), g, []string{"N", "ghost"}, 2, nil)
	assert.ErrorIs(t, err, crowd.ErrNodeNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = crowd.ParallelCensus(ctx, g, nil, 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
