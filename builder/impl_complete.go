// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) and FanIn(hub, n).
//
// Contract:
//   - Complete: n ≥ 1; every pair {i,j}, i<j, once; mirrored j→i on
//     directed graphs.
//   - FanIn: n ≥ 1 sources named by cfg.idFn, each with a single edge into
//     hub. Sources never reach each other, so with the hub removed every
//     pairwise distance is unreachable.
//
// Complexity: Complete O(n²), FanIn O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/crowd/core"
)

const (
	methodComplete   = "Complete"
	methodFanIn      = "FanIn"
	minCompleteNodes = 1
	minFanInSources  = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, cfg, ids[i], ids[j], true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// FanIn returns a Constructor that points n fresh sources at hub.
func FanIn(hub string, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minFanInSources {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFanIn, n, minFanInSources, ErrTooFewVertices)
		}
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodFanIn, hub, err)
		}
		ids, err := addVertices(methodFanIn, g, cfg, n)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err = addEdge(methodFanIn, g, cfg, id, hub, false); err != nil {
				return err
			}
		}

		return nil
	}
}
