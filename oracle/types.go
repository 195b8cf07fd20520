package oracle

import (
	"context"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crowd/bfs"
)

// Unreachable is the distance reported when no path exists. It compares
// greater than every finite hop count, so "d >= k" holds for any k.
const Unreachable = math.MaxInt

// Orientation selects which way edges are followed.
type Orientation int

const (
	// Receiver follows edges as stored: information flows tail→head.
	Receiver Orientation = iota
	// Transmitter follows edges reversed, without building a reversed copy.
	Transmitter
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Transmitter {
		return "transmitter"
	}
	return "receiver"
}

// direction maps an orientation to the BFS adjacency it walks.
func (o Orientation) direction() bfs.Direction {
	if o == Transmitter {
		return bfs.Backward
	}
	return bfs.Forward
}

// index returns the cache slot for o.
func (o Orientation) index() int {
	if o == Transmitter {
		return 1
	}
	return 0
}

// Graph is the read surface the oracle needs. *core.Graph satisfies it.
type Graph interface {
	bfs.Graph
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Oracle) {
		if l != nil {
			o.log = l
		}
	}
}

// WithContext makes every search stop with ctx.Err() once ctx is done.
// Failed searches are not cached. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Oracle) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Stats is a point-in-time view of cache population and use.
type Stats struct {
	Trees      int // unconditional BFS trees held, both orientations
	HoleMaps   int // hole-excluded per-source distance maps held
	TreeHits   int // lookups answered by an unconditional tree
	HoleHits   int // lookups answered by a cached hole-excluded map
	HoleMisses int // lookups that ran a hole-excluded search
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
