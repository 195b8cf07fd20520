// Package builder assembles deterministic core.Graph fixtures for tests,
// examples and the CLI demo command.
//
// A fixture is one or more Constructors applied in order by BuildGraph:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.BuilderOption{builder.WithSymbolIDs()},
//	    builder.FanIn("N", 3),
//	    builder.Topics(map[string]interface{}{"A": "sci", "B": "pol", "C": "sci"}),
//	)
//
// Topology constructors (Path, Cycle, Complete, FanIn, Edges, Florentine,
// RandomSparse) add vertices and edges. Topic constructors (Topics,
// TopicsFunc) set each vertex's attribute under the configured key
// (default "T"), which is what diversity metrics read.
//
// Constructors never panic on bad parameters; they return sentinel errors
// wrapped with the constructor name. Option constructors (WithX) panic on
// meaningless values, which are programmer errors.
package builder
