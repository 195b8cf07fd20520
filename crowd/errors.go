package crowd

import (
	"errors"

	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/observer"
)

var (
	// ErrNodeNotFound is returned when a queried node is absent from the graph.
	ErrNodeNotFound = core.ErrVertexNotFound

	// ErrInvalidParameter is returned for m < 1, k < 2, k < min_k, an
	// out-of-range configuration, or a malformed metric argument.
	ErrInvalidParameter = observer.ErrInvalidParameter

	// ErrNilGraph is returned by New for a nil graph.
	ErrNilGraph = errors.New("crowd: graph is nil")
)
