package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crowd/builder"
	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/crowd"
	"github.com/katalvlaran/crowd/prune"
	"github.com/katalvlaran/crowd/report"
)

// demoParams carries the flags a demo graph may read.
type demoParams struct {
	nodeKey string
	nodes   int
	density float64
	seed    int64
}

// demos maps a demo name to its graph.
var demos = map[string]func(p demoParams) (*core.Graph, error){
	"florentine": florentineDemo,
	"random":     randomDemo,
}

// randomTopics are dealt to random demo vertices by index.
var randomTopics = []string{"politics", "science", "sport", "arts"}

// florentineDemo is the Florentine marriage network with two topics split
// by family initial (A-M, N-Z).
func florentineDemo(p demoParams) (*core.Graph, error) {
	return builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithTopicKey(p.nodeKey)},
		builder.Florentine(),
		builder.TopicsFunc(func(id string) interface{} {
			if id[0] <= 'M' {
				return "a-m"
			}
			return "n-z"
		}),
	)
}

// randomDemo is a seeded directed Erdős–Rényi graph v0..v{n-1} with edge
// weights in [1, 9]; vertex vi carries topic i mod 4.
func randomDemo(p demoParams) (*core.Graph, error) {
	return builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithRand(rand.New(rand.NewSource(p.seed))),
			builder.WithSymbNumb("v"),
			builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
			builder.WithTopicKey(p.nodeKey),
		},
		builder.RandomSparse(p.nodes, p.density),
		builder.TopicsFunc(func(id string) interface{} {
			i, err := strconv.Atoi(id[1:])
			if err != nil {
				return nil
			}
			return randomTopics[i%len(randomTopics)]
		}),
	)
}

func (a *app) newDemoCmd() *cobra.Command {
	p := demoParams{}
	var minWeight int64
	cmd := &cobra.Command{
		Use:       "demo <name>",
		Short:     "Run the census on a built-in graph (florentine, random)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"florentine", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := demos[args[0]]
			if !ok {
				return fmt.Errorf("unknown demo %q", args[0])
			}
			p.nodeKey = a.cfg.NodeKey
			g, err := build(p)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("min-weight") {
				before := g.EdgeCount()
				if g, err = prune.Iteratively(g, prune.WithThreshold(0), prune.WithWeightThreshold(minWeight), prune.WithLogger(a.log)); err != nil {
					return err
				}
				a.log.WithFields(logrus.Fields{
					"edges_before": before,
					"edges_after":  g.EdgeCount(),
				}).Info("light edges pruned")
			}
			recs, err := a.census(cmd.Context(), g, nil, a.cfg.Workers, []crowd.CensusOption{crowd.WithTopics()})
			if err != nil {
				return err
			}
			return report.WriteRecords(cmd.OutOrStdout(), a.format(), recs.Sorted(), report.Columns{Topics: true})
		},
	}
	cmd.Flags().IntVar(&p.nodes, "nodes", 30, "Vertex count (random)")
	cmd.Flags().Float64Var(&p.density, "density", 0.1, "Edge probability (random)")
	cmd.Flags().Int64Var(&p.seed, "seed", 1, "RNG seed (random)")
	cmd.Flags().Int64Var(&minWeight, "min-weight", 0, "Prune edges at or below this weight before the census (weighted demos)")
	return cmd
}
