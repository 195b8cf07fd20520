package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/crowd"
	"github.com/katalvlaran/crowd/graphio"
	"github.com/katalvlaran/crowd/report"
)

func (a *app) newCensusCmd() *cobra.Command {
	var (
		nodes       []string
		topics      bool
		transmitter bool
		maxH        int
		workers     int
	)
	cmd := &cobra.Command{
		Use:   "census <graph-file>",
		Short: "Compute S, D and pi for every node (or --nodes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}

			var opts []crowd.CensusOption
			cols := report.Columns{Topics: topics, Transmitter: transmitter, H: maxH > 0}
			if maxH > 0 {
				opts = append(opts, crowd.WithH(maxH))
			}
			if transmitter {
				opts = append(opts, crowd.WithTransmitter())
			}
			if topics {
				opts = append(opts, crowd.WithTopics())
			}

			recs, err := a.census(cmd.Context(), g, nodes, workers, opts)
			if err != nil {
				return err
			}
			return report.WriteRecords(cmd.OutOrStdout(), a.format(), recs.Sorted(), cols)
		},
	}
	cmd.Flags().StringSliceVar(&nodes, "nodes", nil, "Comma-separated node IDs (default: all)")
	cmd.Flags().BoolVar(&topics, "topics", false, "Include each node's own topics")
	cmd.Flags().BoolVar(&transmitter, "transmitter", false, "Include transmitter S and pi")
	cmd.Flags().IntVar(&maxH, "h", 0, "Include the h-measure scanned up to this bound")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (0: one per CPU)")
	return cmd
}

// census runs a single Crowd for one worker and ParallelCensus otherwise.
func (a *app) census(ctx context.Context, g *core.Graph, nodes []string, workers int, opts []crowd.CensusOption) (crowd.Records, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	var (
		recs crowd.Records
		err  error
	)
	if workers == 1 {
		var c *crowd.Crowd
		if c, err = crowd.New(g, a.crowdOptions()...); err != nil {
			return nil, err
		}
		recs, err = c.Census(nodes, opts...)
	} else {
		recs, err = crowd.ParallelCensus(ctx, g, nodes, workers, opts, a.crowdOptions()...)
	}
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"nodes":    len(recs),
		"workers":  workers,
		"duration": time.Since(start).String(),
	}).Info("census complete")
	return recs, nil
}
