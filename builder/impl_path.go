// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)→i for i=1..n-1. On a directed graph this is a
//     linked list, which keeps every later vertex downstream of earlier ones.
//   - Cycle: n ≥ 3, Path plus (n-1)→0.
//   - Weight policy: cfg.weightFn on weighted graphs, else 0.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/crowd/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodPath, g, cfg, ids[i-1], ids[i], false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}
