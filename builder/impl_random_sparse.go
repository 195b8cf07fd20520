// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi sample.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1]; an RNG is required when 0 < p < 1.
//   - Directed graphs try every ordered pair i≠j; undirected graphs every
//     unordered pair i<j. Trial order is fixed, so a seed fixes the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/crowd/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that keeps each candidate edge with
// probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		keep := func() bool {
			if cfg.rng == nil {
				return p == 1
			}
			return cfg.rng.Float64() < p
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, ids[i], ids[j], false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
