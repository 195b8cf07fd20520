// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (OutNeighborIDs, InNeighborIDs) and adjacency helpers.
// Determinism:
//   - *NeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// OutNeighborIDs returns the unique IDs reachable from id over one edge:
// heads of outgoing directed edges and the other end of undirected edges.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(k log k) for k unique neighbors.
func (g *Graph) OutNeighborIDs(id string) ([]string, error) {
	return g.neighborIDs(id, g.out)
}

// InNeighborIDs returns the unique IDs that reach id over one edge:
// tails of incoming directed edges and the other end of undirected edges.
// On an undirected graph it equals OutNeighborIDs.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(k log k) for k unique neighbors.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	return g.neighborIDs(id, g.in)
}

func (g *Graph) neighborIDs(id string, idx adjacency) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(idx[id]))
	for nbr, set := range idx[id] {
		if len(set) > 0 {
			ids = append(ids, nbr)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureBucket allocates idx[id] if missing. muEdgeAdj write lock required.
func ensureBucket(idx adjacency, id string) {
	if idx[id] == nil {
		idx[id] = make(map[string]map[string]struct{})
	}
}

// addRef records eid under idx[a][b]. muEdgeAdj write lock required.
func addRef(idx adjacency, a, b, eid string) {
	ensureBucket(idx, a)
	if idx[a][b] == nil {
		idx[a][b] = make(map[string]struct{})
	}
	idx[a][b][eid] = struct{}{}
}

// dropRef removes eid from idx[a][b], pruning the emptied bucket.
func dropRef(idx adjacency, a, b, eid string) {
	set := idx[a][b]
	if set == nil {
		return
	}
	delete(set, eid)
	if len(set) == 0 {
		delete(idx[a], b)
	}
}

// linkEdge registers e in both indexes; undirected non-loop edges are mirrored.
func linkEdge(g *Graph, e *Edge) {
	addRef(g.out, e.From, e.To, e.ID)
	addRef(g.in, e.To, e.From, e.ID)
	if !e.Directed && e.From != e.To {
		addRef(g.out, e.To, e.From, e.ID)
		addRef(g.in, e.From, e.To, e.ID)
	}
}

// unlinkEdge is the inverse of linkEdge.
func unlinkEdge(g *Graph, e *Edge) {
	dropRef(g.out, e.From, e.To, e.ID)
	dropRef(g.in, e.To, e.From, e.ID)
	if !e.Directed && e.From != e.To {
		dropRef(g.out, e.To, e.From, e.ID)
		dropRef(g.in, e.From, e.To, e.ID)
	}
}
