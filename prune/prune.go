// Package prune cleans a graph before observer analysis by repeatedly
// cutting weakly attached vertices and light edges and keeping the largest
// weakly connected component, until a round changes nothing.
//
// Each round:
//  1. Remove every vertex whose degree is at most the threshold
//     (in+out on directed edges, plus undirected incidences).
//  2. With a weight threshold, remove every edge of weight at most it.
//  3. If anything was removed, keep only the largest weakly connected
//     component. Ties go to the component with the smallest vertex ID.
//
// The input graph is never modified.
package prune

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crowd/bfs"
	"github.com/katalvlaran/crowd/core"
)

var (
	// ErrNotWeighted is returned when a weight threshold is set on an
	// unweighted graph.
	ErrNotWeighted = errors.New("prune: weight threshold requires a weighted graph")

	// ErrNilGraph is returned for a nil input graph.
	ErrNilGraph = errors.New("prune: graph is nil")
)

// DefaultThreshold removes leaves and isolated vertices.
const DefaultThreshold = 1

// Option configures Iteratively.
type Option func(*options)

type options struct {
	threshold       int
	weightThreshold *int64
	log             logrus.FieldLogger
}

// WithThreshold sets the degree at or below which vertices are cut.
func WithThreshold(t int) Option {
	return func(o *options) { o.threshold = t }
}

// WithWeightThreshold cuts edges whose weight is at or below w.
func WithWeightThreshold(w int64) Option {
	return func(o *options) { o.weightThreshold = &w }
}

// WithLogger routes per-round debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Iteratively returns a pruned copy of g. A fully pruned graph comes back
// empty with g's flags.
//
// Errors: ErrNilGraph, ErrNotWeighted.
func Iteratively(g *core.Graph, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	o := options{threshold: DefaultThreshold, log: discard}
	for _, opt := range opts {
		opt(&o)
	}
	if o.weightThreshold != nil && !g.Weighted() {
		return nil, ErrNotWeighted
	}

	cur := g.Clone()
	for round := 1; ; round++ {
		cutV, err := cutVertices(cur, o.threshold)
		if err != nil {
			return nil, err
		}
		cutE := 0
		if o.weightThreshold != nil {
			cutE = cutEdges(cur, *o.weightThreshold)
		}
		o.log.WithFields(logrus.Fields{
			"iteration": round,
			"vertices":  cur.VertexCount(),
			"edges":     cur.EdgeCount(),
			"cut_v":     cutV,
			"cut_e":     cutE,
		}).Debug("prune: round")
		if cutV == 0 && cutE == 0 {
			return cur, nil
		}

		keep, err := largestComponent(cur)
		if err != nil {
			return nil, err
		}
		if len(keep) == 0 {
			return cur, nil
		}
		cur = core.InducedSubgraph(cur, keep)
	}
}

func degree(g *core.Graph, id string) (int, error) {
	in, out, undirected, err := g.Degree(id)
	if err != nil {
		return 0, fmt.Errorf("prune: degree of %q: %w", id, err)
	}
	return in + out + undirected, nil
}

// cutVertices removes vertices with degree ≤ t, judged on the graph as it
// stood at the start of the pass.
func cutVertices(g *core.Graph, t int) (int, error) {
	var cut []string
	for _, id := range g.Vertices() {
		d, err := degree(g, id)
		if err != nil {
			return 0, err
		}
		if d <= t {
			cut = append(cut, id)
		}
	}
	for _, id := range cut {
		if err := g.RemoveVertex(id); err != nil {
			return 0, fmt.Errorf("prune: remove %q: %w", id, err)
		}
	}

	return len(cut), nil
}

func cutEdges(g *core.Graph, w int64) int {
	n := 0
	g.FilterEdges(func(e *core.Edge) bool {
		if e.Weight <= w {
			n++
			return false
		}
		return true
	})
	return n
}

// largestComponent returns the vertex set of the largest weakly connected
// component.
func largestComponent(g *core.Graph) (map[string]bool, error) {
	ids := g.Vertices()
	sort.Strings(ids)
	seen := make(map[string]bool, len(ids))
	var best []string
	for _, id := range ids {
		if seen[id] {
			continue
		}
		res, err := bfs.BFS(g, id,
			bfs.WithDirection(bfs.Both),
			bfs.WithOnVisit(func(v string, _ int) error {
				seen[v] = true
				return nil
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("prune: component of %q: %w", id, err)
		}
		if len(res.Order) > len(best) {
			best = res.Order
		}
	}

	keep := make(map[string]bool, len(best))
	for _, v := range best {
		keep[v] = true
	}
	return keep, nil
}
