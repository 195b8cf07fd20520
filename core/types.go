// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and the read-only Reader surface.
// Concurrency:
//   - muVert guards the vertex catalog and configuration flags.
//   - muEdgeAdj guards the edge catalog and both adjacency indexes.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents a node in the graph.
//
// Metadata holds the vertex attributes (for example a topic token or a set of
// tokens under key "T"). It is shared, not deep-copied, by Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary attribute values keyed by name.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge weight (zero in unweighted graphs).
	Weight int64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// adjacency maps vertex -> neighbor -> edgeID set.
type adjacency map[string]map[string]map[string]struct{}

// Graph is the core in-memory graph data structure.
//
// Two adjacency indexes are kept: out[from][to] and in[to][from]. Undirected
// edges are mirrored in both directions of both indexes, so OutNeighborIDs and
// InNeighborIDs coincide on an undirected graph.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and flags
	muEdgeAdj sync.RWMutex // guards edges, out, in

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool
	allowMixed bool

	nextEdgeID uint64 // atomic edge ID generator
	revision   uint64 // atomic; bumped by every structural or attribute mutation

	vertices map[string]*Vertex
	edges    map[string]*Edge
	out      adjacency
	in       adjacency
}

// Reader is the read-only surface analysis packages consume.
// *Graph satisfies it; callers may supply their own implementation.
type Reader interface {
	HasVertex(id string) bool
	Vertices() []string
	Edges() []*Edge
	Directed() bool
	OutNeighborIDs(id string) ([]string, error)
	InNeighborIDs(id string) ([]string, error)
	Attribute(id, key string) (interface{}, bool)
}

var _ Reader = (*Graph)(nil)

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, with no loops and no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(adjacency),
		in:       make(adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMixedGraph creates a Graph that accepts WithEdgeDirected overrides.
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}
