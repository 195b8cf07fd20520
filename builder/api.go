// SPDX-License-Identifier: MIT
//
// api.go - public entry point and the Constructor contract.
//
// Contract:
//   - BuildGraph creates g, resolves cfg once, runs constructors in order.
//   - Constructors validate early and return sentinel errors; no panics.
//   - Same inputs, options and seed give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/crowd/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped as "BuildGraph: %w" and returned.
//
// Errors: ErrConstructFailed for a nil constructor, otherwise whatever the
// constructor returned (branch with errors.Is).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to add topics to
// a graph read from a file.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addEdge adds u→v with the configured weight policy. On a directed graph
// with both set, v→u is added as well.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string, both bool) error {
	var w int64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	if both && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}

// addVertices inserts n vertices named by cfg.idFn and returns their IDs.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
