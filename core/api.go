// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for construction flags and the mutation revision.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after construction.

package core

import "sync/atomic"

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default directedness applied to newly created edges.
//
// Notes:
//   - In mixed mode individual edges may override it; use HasDirectedEdges
//     to learn whether any one-way edge is actually stored.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Revision returns a counter that changes whenever the graph is mutated
// (vertices, edges or attributes). Equal revisions imply an unchanged graph;
// different revisions do not imply a different structure.
//
// Complexity: O(1). Lock-free.
func (g *Graph) Revision() uint64 {
	return atomic.LoadUint64(&g.revision)
}

// touch records a mutation.
func (g *Graph) touch() {
	atomic.AddUint64(&g.revision, 1)
}

// options reproduces the construction flags; caller holds muVert.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}

	return opts
}
