// Package crowd is the module root for wisdom-of-crowds analysis of
// influence graphs: who a node hears from, how independent those sources
// are, and how diverse their topics.
//
// A node v is an (m,k)-observer when it has m sources (in-neighbors, or
// out-neighbors for the transmitter view) whose pairwise separation, with v
// itself removed from the graph, is at least k hops in both directions.
// The crowd measure S is the largest m·k over the scanned grid, D counts the
// distinct topics among v's sources, and pi = S·D.
//
// Packages:
//
//	core/      thread-safe Graph with in- and out-adjacency and vertex attributes
//	bfs/       hop-count BFS with direction, exclusion and depth limits
//	snapshot/  xxhash graph fingerprints and the stale-cache guard
//	oracle/    hole-excluded distance oracle with two-level caching
//	observer/  (m,k)-observer decision by branch-and-bound clique search
//	crowd/     S, h, D, pi, census and parallel census
//	prune/     iterative degree and weight pruning
//	report/    Sullivan profile geometry, summaries, CSV/table/JSON
//	graphio/   YAML/JSON graph documents
//	config/    YAML config with CROWD_* overrides
//	metrics/   Prometheus counters for caches and searches
//	builder/   deterministic fixture graphs (fan-in, Florentine, ...)
//	cmd/crowd/ command-line interface
//
// Quick ASCII example:
//
//	A   B   C
//	 \  |  /
//	  v v v
//	    N
//
// A, B and C never reach each other once N is removed, so N is a
// (3,k)-observer for every k and S(N) = 3·5 under the default bounds.
//
//	go install github.com/katalvlaran/crowd/cmd/crowd@latest
package crowd
