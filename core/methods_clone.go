// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, induced subgraphs and clearing.
// Determinism:
//   - Clones carry nextEdgeID so textual edge IDs never collide on the copy.
// Concurrency:
//   - Read locks on the source; results are fresh graph instances.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical flags and vertices, but no edges.
// Vertex metadata maps are copied one level deep.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return g.induced(nil, false)
}

// Clone returns a deep copy of the Graph: flags, vertices, edges and adjacency.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.induced(nil, true)
}

// InducedSubgraph returns a new Graph holding only the vertices in keep and
// the edges whose endpoints are both kept. Edge IDs are preserved.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	if keep == nil {
		keep = map[string]bool{}
	}

	return g.induced(keep, true)
}

// induced copies the vertices admitted by keep (all when keep is nil) and,
// if withEdges, the edges between them.
func (g *Graph) induced(keep map[string]bool, withEdges bool) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	admit := func(id string) bool { return keep == nil || keep[id] }
	for id, v := range g.vertices {
		if !admit(id) {
			continue
		}
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		clone.vertices[id] = &Vertex{ID: id, Metadata: md}
		ensureBucket(clone.out, id)
		ensureBucket(clone.in, id)
	}
	if !withEdges {
		return clone
	}

	for eid, e := range g.edges {
		if !admit(e.From) || !admit(e.To) {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		linkEdge(clone, ne)
	}

	return clone
}

// Clear removes all vertices and edges but keeps the flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.out = make(adjacency)
	g.in = make(adjacency)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.touch()
}
