// Package bfs provides breadth-first search over a graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Direction selects out-neighbors (Forward), in-neighbors (Backward)
//     or both. Backward walks the reversed graph without building it.
//   - WithExclude treats vertices as removed, which is how distances
//     "in the graph minus v" are computed.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Graph returns neighbor IDs sorted, and BFS enqueues them in that
//	order, so the visit sequence and the BFS tree are reproducible. The
//	distance cache relies on this: a tree path is the same on every run.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "A",
//	    bfs.WithDirection(bfs.Backward),
//	    bfs.WithExclude("N"),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors, or a hook error
//	}
//	d, ok := res.Depth["B"]
package bfs
