package observer

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crowd/oracle"
)

// ErrInvalidParameter is returned for m < 1 or k < 2. The wrapped message
// names the offending parameter and value.
var ErrInvalidParameter = errors.New("observer: invalid parameter")

// Graph is the read surface the engine needs. *core.Graph satisfies it.
type Graph interface {
	oracle.Graph
}

// Result is the outcome of one (m,k) decision.
type Result struct {
	// Observer is true when a pairwise k-compatible m-subset exists.
	Observer bool
	// Witness holds one such subset, sorted, when Observer is true.
	Witness []string
}

// Stats counts engine work since the last Reset.
type Stats struct {
	Searches int // IsObserver calls that reached the search
	Branches int // branch-and-bound nodes expanded
	Matrices int // separation matrices held
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithOracle shares an existing distance oracle instead of creating one.
func WithOracle(o *oracle.Oracle) Option {
	return func(e *Engine) {
		if o != nil {
			e.or = o
		}
	}
}

// separation is the pairwise view of one hole's candidates: sep[i][j] is
// min(d(i→j), d(j→i)) in G - hole, so "sep >= k" is k-compatibility.
type separation struct {
	ids []string
	sep [][]int
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
