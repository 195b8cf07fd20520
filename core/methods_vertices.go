// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, attributes and degree queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Vertex catalog protected by muVert; adjacency bootstrap under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	ensureBucket(g.out, id)
	ensureBucket(g.in, id)
	g.muEdgeAdj.Unlock()
	g.touch()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg(v)) using the in/out indexes.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Every incident edge is reachable from one of the two indexes.
	incident := make(map[string]struct{})
	for _, set := range g.out[id] {
		for eid := range set {
			incident[eid] = struct{}{}
		}
	}
	for _, set := range g.in[id] {
		for eid := range set {
			incident[eid] = struct{}{}
		}
	}
	for eid := range incident {
		if e, ok := g.edges[eid]; ok {
			unlinkEdge(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	delete(g.out, id)
	delete(g.in, id)
	g.touch()

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// SetAttribute stores value under key on vertex id, creating the vertex if needed.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
func (g *Graph) SetAttribute(id, key string, value interface{}) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}

	g.muVert.Lock()
	g.vertices[id].Metadata[key] = value
	g.muVert.Unlock()
	g.touch()

	return nil
}

// Attribute returns the value stored under key on vertex id.
// The boolean is false when the vertex or the key is absent.
func (g *Graph) Attribute(id, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// Attributes returns a shallow copy of every attribute on vertex id.
//
// Errors:
//   - ErrVertexNotFound.
func (g *Graph) Attributes(id string) (map[string]interface{}, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		out[k] = val
	}

	return out, nil
}

// Degree returns the degree components of the given vertex:
//
//   - in: incoming directed edges (e.To == id)
//   - out: outgoing directed edges (e.From == id)
//   - undirected: undirected incident edges (a self-loop counts twice)
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(v)).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	count := func(set map[string]struct{}) {
		for eid := range set {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			e := g.edges[eid]
			if e == nil {
				continue
			}
			switch {
			case !e.Directed && e.From == e.To:
				undirected += 2
			case !e.Directed:
				undirected++
			default:
				if e.From == id {
					out++
				}
				if e.To == id {
					in++
				}
			}
		}
	}
	for _, set := range g.out[id] {
		count(set)
	}
	for _, set := range g.in[id] {
		count(set)
	}

	return in, out, undirected, nil
}
