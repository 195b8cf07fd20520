package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crowd/graphio"
	"github.com/katalvlaran/crowd/prune"
)

func (a *app) newPruneCmd() *cobra.Command {
	var (
		threshold int
		weight    int64
		out       string
	)
	cmd := &cobra.Command{
		Use:   "prune <graph-file>",
		Short: "Iteratively strip low-degree nodes and light edges, keeping the largest component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			opts := []prune.Option{prune.WithThreshold(threshold), prune.WithLogger(a.log)}
			if cmd.Flags().Changed("weight") {
				opts = append(opts, prune.WithWeightThreshold(weight))
			}
			pruned, err := prune.Iteratively(g, opts...)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"vertices_before": g.VertexCount(),
				"vertices_after":  pruned.VertexCount(),
				"edges_before":    g.EdgeCount(),
				"edges_after":     pruned.EdgeCount(),
			}).Info("prune complete")

			if out != "" {
				return graphio.WriteFile(out, pruned)
			}
			return graphio.Write(cmd.OutOrStdout(), pruned, graphio.EncodingFor(args[0]))
		},
	}
	cmd.Flags().IntVarP(&threshold, "threshold", "t", prune.DefaultThreshold, "Remove nodes with degree at or below this")
	cmd.Flags().Int64VarP(&weight, "weight", "w", 0, "Remove edges with weight at or below this (weighted graphs)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Write the pruned graph here (default: stdout)")
	return cmd
}
