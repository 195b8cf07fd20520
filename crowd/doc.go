// Package crowd scores how well placed each node of an information-flow
// graph is to hear from diverse, independent sources.
//
// The building block is the (m,k)-observer test: node v is an
// (m,k)-observer when m of its sources are pairwise at least k hops apart,
// in both directions, in the graph with v removed. On top of it:
//
//   - S(v)   max m·k over observer cells with m ≥ 2 (structural position)
//   - h(v)   largest h with v an (h,h)-observer
//   - D(v)   distinct topics among v's sources (diversity)
//   - pi(v)  S(v)·D(v); transmitter side S_t(v)·|topics(v)|
//
// A Crowd owns every cache: unconditional BFS trees, hole-excluded distance
// maps, per-hole separation matrices and per-node S results. Each public
// call first checks the graph fingerprint and clears all caches when the
// structure moved, so results always describe the live graph. Invalidate
// clears them on demand.
//
// A Crowd is not safe for concurrent use. ParallelCensus runs one Crowd per
// worker over a graph that must not be mutated during the run.
//
// Usage:
//
//	c, err := crowd.New(g, crowd.WithMaxM(5), crowd.WithNodeKey("T"))
//	s, err := c.S("N", oracle.Receiver)
//	rec, err := c.Census(nil, crowd.WithH(6), crowd.WithTopics())
package crowd
