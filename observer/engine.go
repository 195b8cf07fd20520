// Package observer decides whether a vertex is an (m,k)-observer: whether it
// has m candidate sources that are pairwise at least k hops apart, in both
// directions, once the vertex itself is removed from the graph.
//
// Candidates are in-neighbors (receiver orientation) or out-neighbors
// (transmitter orientation). The decision is a clique search in the implicit
// compatibility graph over candidates, run as branch and bound:
//
//  1. Build (once per hole and orientation) the separation matrix from the
//     distance oracle.
//  2. Drop candidates compatible with fewer than m-1 others, repeatedly.
//  3. Order the rest by fewest incompatibilities.
//  4. Extend partial cliques depth-first, cutting any branch where
//     chosen + remaining < m, and stop at the first m-clique.
//
// Proving a negative can visit the whole search space; that is inherent to
// clique finding.
//
// An Engine is not safe for concurrent use.
package observer

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/metrics"
	"github.com/katalvlaran/crowd/oracle"
)

// Engine runs observer decisions and caches separation matrices.
type Engine struct {
	g     Graph
	or    *oracle.Oracle
	log   logrus.FieldLogger
	seps  [2]map[string]*separation
	stats Stats
}

// New creates an Engine over g. Unless WithOracle is given, it owns a fresh
// oracle.
func New(g Graph, opts ...Option) *Engine {
	e := &Engine{g: g, log: discardLogger()}
	for _, opt := range opts {
		opt(e)
	}
	if e.or == nil {
		e.or = oracle.New(g, oracle.WithLogger(e.log))
	}
	e.resetOwn()

	return e
}

// Oracle exposes the distance oracle backing the engine.
func (e *Engine) Oracle() *oracle.Oracle { return e.or }

// Reset clears separation matrices and the underlying oracle.
func (e *Engine) Reset() {
	e.resetOwn()
	e.or.Reset()
}

func (e *Engine) resetOwn() {
	for i := range e.seps {
		e.seps[i] = make(map[string]*separation)
	}
	e.stats = Stats{}
}

// Stats reports search effort since the last Reset.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Matrices = len(e.seps[0]) + len(e.seps[1])
	return s
}

// Candidates returns v's sources for orient, sorted, without v itself.
func (e *Engine) Candidates(v string, orient oracle.Orientation) ([]string, error) {
	if !e.g.HasVertex(v) {
		return nil, fmt.Errorf("observer: node %q: %w", v, core.ErrVertexNotFound)
	}
	var (
		ids []string
		err error
	)
	if orient == oracle.Transmitter {
		ids, err = e.g.OutNeighborIDs(v)
	} else {
		ids, err = e.g.InNeighborIDs(v)
	}
	if err != nil {
		return nil, fmt.Errorf("observer: candidates of %q: %w", v, err)
	}
	out := ids[:0]
	for _, id := range ids {
		if id != v {
			out = append(out, id)
		}
	}

	return out, nil
}

// Validate checks m and k without touching the graph.
func Validate(m, k int) error {
	if m < 1 {
		return fmt.Errorf("%w: m=%d < 1", ErrInvalidParameter, m)
	}
	if k < 2 {
		return fmt.Errorf("%w: k=%d < 2", ErrInvalidParameter, k)
	}
	return nil
}

// IsObserver decides whether v is an (m,k)-observer in orient.
//
// Fewer than two candidates is always a negative. m = 1 with two or more
// candidates is a positive (a single source is vacuously k-apart). m larger
// than the candidate count is a negative, not an error.
//
// Errors: ErrInvalidParameter, core.ErrVertexNotFound.
func (e *Engine) IsObserver(v string, m, k int, orient oracle.Orientation) (Result, error) {
	if err := Validate(m, k); err != nil {
		return Result{}, err
	}
	cands, err := e.Candidates(v, orient)
	if err != nil {
		return Result{}, err
	}
	if len(cands) < 2 || m > len(cands) {
		return e.record(orient, Result{}), nil
	}
	if m == 1 {
		return e.record(orient, Result{Observer: true, Witness: []string{cands[0]}}), nil
	}

	sp, err := e.separation(v, cands, orient)
	if err != nil {
		return Result{}, err
	}
	e.stats.Searches++
	pick := e.search(sp, m, k)
	e.log.WithFields(logrus.Fields{
		"node":        v,
		"m":           m,
		"k":           k,
		"orientation": orient.String(),
		"observer":    pick != nil,
	}).Debug("observer: decision")
	if pick == nil {
		return e.record(orient, Result{}), nil
	}
	witness := make([]string, len(pick))
	for i, idx := range pick {
		witness[i] = sp.ids[idx]
	}
	sort.Strings(witness)

	return e.record(orient, Result{Observer: true, Witness: witness}), nil
}

// MaxSeparation returns the largest pairwise separation among v's
// candidates, or 0 when there are fewer than two. oracle.Unreachable means
// some pair cannot reach each other at all.
func (e *Engine) MaxSeparation(v string, orient oracle.Orientation) (int, error) {
	cands, err := e.Candidates(v, orient)
	if err != nil || len(cands) < 2 {
		return 0, err
	}
	sp, err := e.separation(v, cands, orient)
	if err != nil {
		return 0, err
	}
	best := 0
	for i := range sp.sep {
		for j := i + 1; j < len(sp.sep); j++ {
			if sp.sep[i][j] > best {
				best = sp.sep[i][j]
			}
		}
	}

	return best, nil
}

func slotOf(orient oracle.Orientation) int {
	if orient == oracle.Transmitter {
		return 1
	}
	return 0
}

func (e *Engine) record(orient oracle.Orientation, r Result) Result {
	outcome := "negative"
	if r.Observer {
		outcome = "positive"
	}
	metrics.ObserverSearches.WithLabelValues(orient.String(), outcome).Inc()
	return r
}

// separation returns the cached matrix for hole v, building it on first use.
func (e *Engine) separation(v string, cands []string, orient oracle.Orientation) (*separation, error) {
	slot := e.seps[slotOf(orient)]
	if sp, ok := slot[v]; ok {
		return sp, nil
	}
	n := len(cands)
	sp := &separation{ids: append([]string(nil), cands...), sep: make([][]int, n)}
	for i := range sp.sep {
		sp.sep[i] = make([]int, n)
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			ij, err := e.or.Distance(v, cands[i], cands[j], orient)
			if err != nil {
				return nil, err
			}
			ji, err := e.or.Distance(v, cands[j], cands[i], orient)
			if err != nil {
				return nil, err
			}
			s := min(ij, ji)
			sp.sep[i][j], sp.sep[j][i] = s, s
		}
	}
	slot[v] = sp

	return sp, nil
}
