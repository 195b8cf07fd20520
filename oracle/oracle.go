// Package oracle answers hop-distance queries in a graph with one vertex
// (the hole) removed, in either orientation, with lazily built caches.
//
// Two cache levels are kept per orientation:
//
//   - trees:  source → unconditional BFS tree (depths and parents).
//   - holes:  hole → source → target → distance in G - hole.
//
// Removing a vertex can only lengthen or cut paths, so a target absent from
// the unconditional tree is unreachable with any hole, and a tree path that
// avoids the hole is still shortest. Only when the hole lies on the tree path
// is a hole-excluded BFS run, and its whole distance map is kept so every
// later query for the same (hole, source) is a lookup.
//
// An Oracle is not safe for concurrent use.
package oracle

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crowd/bfs"
	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/metrics"
)

// Oracle caches hole-excluded distances over a fixed graph snapshot.
// Callers that mutate the graph must call Reset before the next query.
type Oracle struct {
	g     Graph
	ctx   context.Context
	log   logrus.FieldLogger
	trees [2]map[string]*bfs.BFSResult
	holes [2]map[string]map[string]map[string]int
	stats Stats
}

// New creates an Oracle over g with empty caches.
func New(g Graph, opts ...Option) *Oracle {
	o := &Oracle{g: g, ctx: context.Background(), log: discardLogger()}
	for _, opt := range opts {
		opt(o)
	}
	o.Reset()

	return o
}

// Reset drops every cached tree and distance map.
func (o *Oracle) Reset() {
	for i := range o.trees {
		o.trees[i] = make(map[string]*bfs.BFSResult)
		o.holes[i] = make(map[string]map[string]map[string]int)
	}
	o.stats = Stats{}
}

// Stats reports cache population and hit counts since the last Reset.
func (o *Oracle) Stats() Stats {
	s := o.stats
	s.Trees, s.HoleMaps = 0, 0
	for i := range o.trees {
		s.Trees += len(o.trees[i])
		for _, bySource := range o.holes[i] {
			s.HoleMaps += len(bySource)
		}
	}

	return s
}

// Distance returns the hop length of the shortest source→target path in the
// graph with hole removed. Transmitter orientation walks edges reversed.
//
// source == target yields 0. A source or target equal to the hole, or a
// target that cannot be reached, yields Unreachable.
//
// Errors: core.ErrVertexNotFound (wrapped) naming the missing vertex.
func (o *Oracle) Distance(hole, source, target string, orient Orientation) (int, error) {
	for _, p := range [...]struct{ role, id string }{{"hole", hole}, {"source", source}, {"target", target}} {
		if !o.g.HasVertex(p.id) {
			return 0, fmt.Errorf("oracle: %s %q: %w", p.role, p.id, core.ErrVertexNotFound)
		}
	}
	if source == target {
		return 0, nil
	}
	if source == hole || target == hole {
		return Unreachable, nil
	}

	tree, err := o.tree(source, orient)
	if err != nil {
		return 0, err
	}
	d, ok := tree.Depth[target]
	if !ok {
		o.hit(orient, metrics.LookupTree)
		return Unreachable, nil
	}
	if hd, reached := tree.Depth[hole]; !reached || hd >= d || !tree.OnTreePath(target, hole) {
		o.hit(orient, metrics.LookupTree)
		return d, nil
	}

	dist, err := o.holeDistances(hole, source, orient)
	if err != nil {
		return 0, err
	}
	if without, ok := dist[target]; ok {
		return without, nil
	}

	return Unreachable, nil
}

// tree returns the unconditional BFS tree rooted at source.
func (o *Oracle) tree(source string, orient Orientation) (*bfs.BFSResult, error) {
	slot := o.trees[orient.index()]
	if t, ok := slot[source]; ok {
		return t, nil
	}
	t, err := bfs.BFS(o.g, source,
		bfs.WithDirection(orient.direction()),
		bfs.WithContext(o.ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("oracle: tree from %q: %w", source, err)
	}
	slot[source] = t

	return t, nil
}

// holeDistances returns the distance map from source in G - hole,
// computing and caching it on first use.
func (o *Oracle) holeDistances(hole, source string, orient Orientation) (map[string]int, error) {
	slot := o.holes[orient.index()]
	bySource := slot[hole]
	if dist, ok := bySource[source]; ok {
		o.hit(orient, metrics.LookupHoleHit)
		return dist, nil
	}

	res, err := bfs.BFS(o.g, source,
		bfs.WithDirection(orient.direction()),
		bfs.WithExclude(hole),
		bfs.WithContext(o.ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("oracle: search from %q without %q: %w", source, hole, err)
	}
	if bySource == nil {
		bySource = make(map[string]map[string]int)
		slot[hole] = bySource
	}
	bySource[source] = res.Depth
	o.hit(orient, metrics.LookupHoleMiss)
	o.log.WithFields(logrus.Fields{
		"hole":        hole,
		"source":      source,
		"orientation": orient.String(),
		"reached":     len(res.Depth),
	}).Debug("oracle: hole-excluded search")

	return res.Depth, nil
}

func (o *Oracle) hit(orient Orientation, kind string) {
	switch kind {
	case metrics.LookupTree:
		o.stats.TreeHits++
	case metrics.LookupHoleHit:
		o.stats.HoleHits++
	case metrics.LookupHoleMiss:
		o.stats.HoleMisses++
	}
	metrics.OracleLookups.WithLabelValues(orient.String(), kind).Inc()
}
