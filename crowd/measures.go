package crowd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crowd/bfs"
	"github.com/katalvlaran/crowd/oracle"
)

// S returns v's structural position in orient: the largest m·k over cells
// min_k ≤ k ≤ max_k, max(2, min_m) ≤ m ≤ max_m where v is an
// (m,k)-observer, or 0.
func (c *Crowd) S(v string, orient oracle.Orientation) (int, error) {
	sc, err := c.SWithPair(v, orient)
	return sc.S, err
}

// SWithPair is S together with the achieving (m,k). Among equal products
// the larger k wins. Results are cached per node and orientation.
//
// The scan walks k downward from max_k. Feasible m can only grow as k
// shrinks, so the largest feasible m found at one k is where the next k
// starts, and the walk stops once max_m·k cannot beat the best product.
func (c *Crowd) SWithPair(v string, orient oracle.Orientation) (Score, error) {
	c.refresh()
	cache := c.scores[slot(orient)]
	if sc, ok := cache[v]; ok {
		return sc, nil
	}

	cands, err := c.engine.Candidates(v, orient)
	if err != nil {
		return Score{}, err
	}
	var best Score
	if len(cands) >= 2 {
		if best, err = c.staircase(v, len(cands), orient); err != nil {
			return Score{}, err
		}
	}
	cache[v] = best
	c.log.WithFields(logrus.Fields{
		"node":        v,
		"orientation": orient.String(),
		"s":           best.S,
		"m":           best.M,
		"k":           best.K,
	}).Debug("crowd: structural position")

	return best, nil
}

func (c *Crowd) staircase(v string, nCands int, orient oracle.Orientation) (Score, error) {
	maxM := min(c.cfg.MaxM, nCands)
	lowM := max(c.cfg.MinM, 2)
	var best Score
	if maxM < lowM {
		return best, nil
	}

	// No pair is further apart than the widest separation, so larger k
	// cannot hold an m ≥ 2 subset.
	widest, err := c.engine.MaxSeparation(v, orient)
	if err != nil {
		return Score{}, err
	}
	m := lowM - 1 // largest m known feasible so far
	for k := min(c.cfg.MaxK, widest); k >= c.cfg.MinK; k-- {
		if maxM*k <= best.S {
			break
		}
		for m < maxM {
			r, err := c.engine.IsObserver(v, m+1, k, orient)
			if err != nil {
				return Score{}, err
			}
			if !r.Observer {
				break
			}
			m++
		}
		if m >= lowM && m*k > best.S {
			best = Score{S: m * k, M: m, K: k}
		}
	}

	return best, nil
}

// MaxSeparation returns the widest pairwise separation among v's sources in
// orient, 0 with fewer than two sources, or oracle.Unreachable when some
// pair cannot reach each other in either direction once v is removed. No k
// above it can admit two sources.
func (c *Crowd) MaxSeparation(v string, orient oracle.Orientation) (int, error) {
	c.refresh()
	return c.engine.MaxSeparation(v, orient)
}

// HMeasure returns the largest h in [min_k, maxH] for which v is an
// (h,h)-observer, or 0. The scan stops at the first failing h. maxH == 0
// uses the configured max_h.
//
// Errors: ErrInvalidParameter for any other maxH < 2, ErrNodeNotFound.
func (c *Crowd) HMeasure(v string, maxH int, orient oracle.Orientation) (int, error) {
	if maxH == 0 {
		maxH = c.cfg.MaxH
	}
	if maxH < 2 {
		return 0, fmt.Errorf("%w: max_h=%d < 2", ErrInvalidParameter, maxH)
	}
	c.refresh()

	h := 0
	for cand := max(2, c.cfg.MinK); cand <= maxH; cand++ {
		r, err := c.engine.IsObserver(v, cand, cand, orient)
		if err != nil {
			return 0, err
		}
		if !r.Observer {
			break
		}
		h = cand
	}

	return h, nil
}

// D returns the number of distinct topics among v's in-neighbors. Sources
// without the topic attribute contribute nothing.
func (c *Crowd) D(v string) (int, error) {
	return c.DEdge(v)
}

// DEdgeOption narrows or widens the sources DEdge reads.
type DEdgeOption func(*dEdge)

type dEdge struct {
	sources    []string
	restricted bool
	depth      int
}

// WithSources restricts DEdge to the given in-neighbors of v. An empty list
// selects no sources, so DEdge reports 0.
func WithSources(ids ...string) DEdgeOption {
	return func(d *dEdge) {
		d.restricted = true
		d.sources = append(d.sources, ids...)
	}
}

// WithDepth makes DEdge also read nodes up to depth hops upstream of v
// (depth 1 is the sources alone). Paths through v are not followed.
func WithDepth(depth int) DEdgeOption {
	return func(d *dEdge) { d.depth = depth }
}

// DEdge is D over a chosen subset of sources, optionally looking further
// upstream. With no options it equals D.
//
// Errors: ErrNodeNotFound, ErrInvalidParameter for depth < 1 or a listed
// source that is not an in-neighbor of v.
func (c *Crowd) DEdge(v string, opts ...DEdgeOption) (int, error) {
	spec := dEdge{depth: 1}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.depth < 1 {
		return 0, fmt.Errorf("%w: depth=%d < 1", ErrInvalidParameter, spec.depth)
	}
	c.refresh()

	all, err := c.engine.Candidates(v, oracle.Receiver)
	if err != nil {
		return 0, err
	}
	sources := all
	if spec.restricted {
		in := make(map[string]struct{}, len(all))
		for _, id := range all {
			in[id] = struct{}{}
		}
		for _, id := range spec.sources {
			if _, ok := in[id]; !ok {
				return 0, fmt.Errorf("%w: %q is not a source of %q", ErrInvalidParameter, id, v)
			}
		}
		sources = spec.sources
	}

	reached := make(map[string]struct{}, len(sources))
	mark := func(id string, _ int) error {
		reached[id] = struct{}{}
		return nil
	}
	for _, s := range sources {
		reached[s] = struct{}{}
		if spec.depth == 1 {
			continue
		}
		_, err := bfs.BFS(c.g, s,
			bfs.WithDirection(bfs.Backward),
			bfs.WithExclude(v),
			bfs.WithMaxDepth(spec.depth-1),
			bfs.WithContext(c.ctx),
			bfs.WithOnVisit(mark),
		)
		if err != nil {
			return 0, fmt.Errorf("crowd: upstream of %q: %w", s, err)
		}
	}

	topics := make(map[string]struct{})
	for id := range reached {
		for _, tok := range c.topicsOf(id) {
			topics[tok] = struct{}{}
		}
	}

	return len(topics), nil
}

// CountTopics returns the number of distinct topics v itself carries.
func (c *Crowd) CountTopics(v string) (int, error) {
	if !c.g.HasVertex(v) {
		return 0, fmt.Errorf("crowd: node %q: %w", v, ErrNodeNotFound)
	}
	return len(c.topicsOf(v)), nil
}

// Topics returns v's own topic tokens, sorted.
func (c *Crowd) Topics(v string) ([]string, error) {
	if !c.g.HasVertex(v) {
		return nil, fmt.Errorf("crowd: node %q: %w", v, ErrNodeNotFound)
	}
	return c.topicsOf(v), nil
}

func (c *Crowd) topicsOf(id string) []string {
	raw, ok := c.g.Attribute(id, c.cfg.NodeKey)
	if !ok {
		return nil
	}
	t, ok := TopicOf(raw)
	if !ok {
		return nil
	}
	return t.Flatten()
}

// Pi returns the composite score: S·D for Receiver, S_t·CountTopics for
// Transmitter.
func (c *Crowd) Pi(v string, orient oracle.Orientation) (int, error) {
	s, err := c.S(v, orient)
	if err != nil {
		return 0, err
	}
	var factor int
	if orient == oracle.Transmitter {
		factor, err = c.CountTopics(v)
	} else {
		factor, err = c.D(v)
	}
	if err != nil {
		return 0, err
	}

	return s * factor, nil
}
