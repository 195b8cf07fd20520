package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crowd/crowd"
	"github.com/katalvlaran/crowd/graphio"
	"github.com/katalvlaran/crowd/report"
)

func (a *app) newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <graph-file> <node>",
		Short: "Print every measure for one node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			c, err := crowd.New(g, a.crowdOptions()...)
			if err != nil {
				return err
			}
			recs, err := c.Census([]string{args[1]},
				crowd.WithH(0), crowd.WithTransmitter(), crowd.WithTopics())
			if err != nil {
				return err
			}
			cols := report.Columns{H: true, Transmitter: true, Topics: true}
			return report.WriteRecords(cmd.OutOrStdout(), a.format(), recs.Sorted(), cols)
		},
	}
}
