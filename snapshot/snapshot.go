// Package snapshot detects structural change in a graph between analysis
// calls. A Fingerprint summarises the vertex set and edge set; a Guard holds
// the fingerprint taken when caches were last built and reports staleness.
//
// Attribute changes are not structural and do not alter the fingerprint.
package snapshot

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/crowd/core"
)

// Source is the read surface a fingerprint is taken from.
type Source interface {
	Vertices() []string
	Edges() []*core.Edge
}

// Revisioner is implemented by graphs that count their mutations.
// *core.Graph implements it.
type Revisioner interface {
	Revision() uint64
}

// Fingerprint identifies a graph's vertex and edge sets.
// Two graphs with equal vertex IDs and equal edge multisets of
// (from, to, directed) produce equal fingerprints regardless of
// insertion order or edge IDs.
type Fingerprint struct {
	Nodes int
	Edges int
	Hash  uint64
}

// String implements fmt.Stringer.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%d/%d/%016x", f.Nodes, f.Edges, f.Hash)
}

// Take computes the fingerprint of g.
//
// Complexity: O(V log V + E log E).
func Take(g Source) Fingerprint {
	ids := g.Vertices()
	sort.Strings(ids)

	edges := g.Edges()
	keys := make([]string, 0, len(edges))
	for _, e := range edges {
		keys = append(keys, edgeKey(e))
	}
	sort.Strings(keys)

	h := xxhash.New()
	for _, id := range ids {
		_, _ = h.WriteString(id)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0}) // section separator
	for _, k := range keys {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{0})
	}

	return Fingerprint{Nodes: len(ids), Edges: len(keys), Hash: h.Sum64()}
}

// edgeKey renders an edge independent of its ID. Undirected endpoints are
// ordered so {a,b} and {b,a} coincide.
func edgeKey(e *core.Edge) string {
	from, to := e.From, e.To
	if !e.Directed && to < from {
		from, to = to, from
	}
	dir := byte('u')
	if e.Directed {
		dir = 'd'
	}

	return from + "\x1f" + to + "\x1f" + string(dir)
}

// Guard remembers the fingerprint of the graph as it was when dependent
// caches were built. It is not safe for concurrent use.
type Guard struct {
	src    Source
	rev    Revisioner
	fp     Fingerprint
	lastRv uint64
}

// NewGuard captures the current state of g.
func NewGuard(g Source) *Guard {
	gd := &Guard{src: g}
	if r, ok := g.(Revisioner); ok {
		gd.rev = r
	}
	gd.Rebase()

	return gd
}

// Fingerprint returns the baseline fingerprint.
func (gd *Guard) Fingerprint() Fingerprint { return gd.fp }

// Rebase takes a fresh baseline from the live graph.
func (gd *Guard) Rebase() {
	if gd.rev != nil {
		gd.lastRv = gd.rev.Revision()
	}
	gd.fp = Take(gd.src)
}

// Check reports whether the live graph differs structurally from the
// baseline. On a difference the baseline is moved to the live state, so the
// caller clears its caches exactly once per change.
//
// When the graph exposes a revision counter and it has not moved, Check
// returns false without hashing. A moved counter with an unchanged
// fingerprint (e.g. an edge added then removed) is not a change.
func (gd *Guard) Check() bool {
	if gd.rev != nil {
		rv := gd.rev.Revision()
		if rv == gd.lastRv {
			return false
		}
		gd.lastRv = rv
	}
	live := Take(gd.src)
	if live == gd.fp {
		return false
	}
	gd.fp = live

	return true
}
