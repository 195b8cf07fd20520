// Package core provides a thread-safe in-memory Graph with a minimal,
// composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Vertex attributes (SetAttribute / Attribute), e.g. topic tokens under "T"
//   - Outgoing AND incoming adjacency indexes, so both OutNeighborIDs and
//     InNeighborIDs run in O(deg) without scanning the edge catalog
//   - A lock-free Revision counter bumped by every mutation
//
// Analysis packages never mutate a graph; they consume the Reader interface,
// which *Graph satisfies.
//
// Core Methods:
//
//	AddVertex(id) error                        // O(1)
//	RemoveVertex(id) error                     // O(deg(v))
//	AddEdge(from,to,weight,opts...) (id,error) // O(1)
//	RemoveEdge(edgeID) error                   // O(1)
//	OutNeighborIDs(id), InNeighborIDs(id)      // O(d·log d), unique, sorted
//	Vertices() []string                        // O(V·log V), sorted
//	Edges() []*Edge                            // O(E·log E), sorted by ID
//	Degree(id) (in,out,undirected,err)         // O(deg(v))
//	Clone(), CloneEmpty(), InducedSubgraph(g,keep)
//	Revision() uint64                          // O(1)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
package core
