package crowd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/metrics"
	"github.com/katalvlaran/crowd/observer"
	"github.com/katalvlaran/crowd/oracle"
	"github.com/katalvlaran/crowd/snapshot"
)

// Score is a structural position with the (m,k) cell that achieves it.
// M and K are zero when S is zero.
type Score struct {
	S int `json:"s"`
	M int `json:"m"`
	K int `json:"k"`
}

// Crowd evaluates observer metrics over one graph.
type Crowd struct {
	g      core.Reader
	ctx    context.Context
	cfg    Config
	log    logrus.FieldLogger
	guard  *snapshot.Guard
	engine *observer.Engine
	scores [2]map[string]Score
}

// New wraps g. Options are applied over DefaultConfig and validated.
//
// Errors: ErrNilGraph, ErrInvalidParameter.
func New(g core.Reader, opts ...Option) (*Crowd, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("crowd: %w", err)
	}

	dist := oracle.New(g, oracle.WithLogger(s.log), oracle.WithContext(s.ctx))
	c := &Crowd{
		g:      g,
		ctx:    s.ctx,
		cfg:    s.cfg,
		log:    s.log,
		guard:  snapshot.NewGuard(g),
		engine: observer.New(g, observer.WithLogger(s.log), observer.WithOracle(dist)),
	}
	c.clearScores()

	return c, nil
}

// isNil catches both a nil interface and a typed nil *core.Graph.
func isNil(g core.Reader) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*core.Graph)
	return ok && cg == nil
}

// Config returns the active configuration.
func (c *Crowd) Config() Config { return c.cfg }

// Invalidate clears every cache and re-baselines the graph fingerprint.
func (c *Crowd) Invalidate() {
	c.clear(metrics.ReasonExplicit)
	c.guard.Rebase()
}

// CacheStats reports distance-oracle and search-engine cache state.
func (c *Crowd) CacheStats() (oracle.Stats, observer.Stats) {
	return c.engine.Oracle().Stats(), c.engine.Stats()
}

// refresh clears caches when the graph structure changed since they were
// built. Every public entry point calls it first.
func (c *Crowd) refresh() {
	if c.guard.Check() {
		c.clear(metrics.ReasonMutation)
	}
}

func (c *Crowd) clear(reason string) {
	c.engine.Reset()
	c.clearScores()
	metrics.CacheInvalidations.WithLabelValues(reason).Inc()
	c.log.WithFields(logrus.Fields{
		"reason":      reason,
		"fingerprint": c.guard.Fingerprint().String(),
	}).Debug("crowd: caches cleared")
}

func (c *Crowd) clearScores() {
	for i := range c.scores {
		c.scores[i] = make(map[string]Score)
	}
}

func slot(orient oracle.Orientation) int {
	if orient == oracle.Transmitter {
		return 1
	}
	return 0
}

// IsMKObserver reports whether v is an (m,k)-observer in orient.
//
// Errors: ErrInvalidParameter (m < 1, k < 2, k < min_k), ErrNodeNotFound.
func (c *Crowd) IsMKObserver(v string, m, k int, orient oracle.Orientation) (bool, error) {
	r, err := c.decide(v, m, k, orient)
	return r.Observer, err
}

// Witness is IsMKObserver returning the witnessing sources, sorted, or nil
// for a negative.
func (c *Crowd) Witness(v string, m, k int, orient oracle.Orientation) ([]string, error) {
	r, err := c.decide(v, m, k, orient)
	return r.Witness, err
}

func (c *Crowd) decide(v string, m, k int, orient oracle.Orientation) (observer.Result, error) {
	if k < c.cfg.MinK {
		return observer.Result{}, fmt.Errorf("%w: k=%d < min_k=%d", ErrInvalidParameter, k, c.cfg.MinK)
	}
	c.refresh()

	return c.engine.IsObserver(v, m, k, orient)
}

// Sources returns v's candidate sources for orient: in-neighbors for
// Receiver, out-neighbors for Transmitter.
func (c *Crowd) Sources(v string, orient oracle.Orientation) ([]string, error) {
	c.refresh()
	return c.engine.Candidates(v, orient)
}
