// SPDX-License-Identifier: MIT
//
// impl_edges.go - Edges(pairs...) and Florentine().
//
// Florentine is the 1430s Florentine families marriage network (Padgett &
// Ansell): 15 connected families, 20 ties, plus the isolated Pucci family.
// On a directed graph every tie is added in both directions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/crowd/core"
)

const (
	methodEdges      = "Edges"
	methodFlorentine = "Florentine"
)

// Edges returns a Constructor that adds each pair as from→to, creating
// missing endpoints.
func Edges(pairs ...[2]string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, p := range pairs {
			if err := addEdge(methodEdges, g, cfg, p[0], p[1], false); err != nil {
				return err
			}
		}
		return nil
	}
}

// FlorentineIsolated is the family with no marriage ties.
const FlorentineIsolated = "Pucci"

var florentineTies = [...][2]string{
	{"Acciaiuoli", "Medici"},
	{"Castellani", "Peruzzi"},
	{"Castellani", "Strozzi"},
	{"Castellani", "Barbadori"},
	{"Medici", "Barbadori"},
	{"Medici", "Ridolfi"},
	{"Medici", "Tornabuoni"},
	{"Medici", "Albizzi"},
	{"Medici", "Salviati"},
	{"Salviati", "Pazzi"},
	{"Peruzzi", "Strozzi"},
	{"Peruzzi", "Bischeri"},
	{"Strozzi", "Ridolfi"},
	{"Strozzi", "Bischeri"},
	{"Ridolfi", "Tornabuoni"},
	{"Tornabuoni", "Guadagni"},
	{"Albizzi", "Ginori"},
	{"Albizzi", "Guadagni"},
	{"Bischeri", "Guadagni"},
	{"Guadagni", "Lamberteschi"},
}

// Florentine returns a Constructor for the Florentine families network.
func Florentine() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := g.AddVertex(FlorentineIsolated); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodFlorentine, FlorentineIsolated, err)
		}
		for _, tie := range florentineTies {
			if err := addEdge(methodFlorentine, g, cfg, tie[0], tie[1], true); err != nil {
				return err
			}
		}
		return nil
	}
}
