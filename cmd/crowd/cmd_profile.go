package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crowd/graphio"
	"github.com/katalvlaran/crowd/report"
)

type profileOutput struct {
	Summary []report.Summary `json:"summary"`
	Profile *report.Sullivan `json:"profile"`
}

func (a *app) newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <graph-file>",
		Short: "Census every node and print the Sullivan profile and summary statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			recs, err := a.census(cmd.Context(), g, nil, a.cfg.Workers, nil)
			if err != nil {
				return err
			}
			series := report.FromRecords(recs)
			prof, err := report.Profile(series.Pi, series.D, series.S)
			if err != nil {
				return err
			}
			sums, err := report.Summarize(series)
			if err != nil {
				return err
			}
			return a.writeProfile(cmd, profileOutput{Summary: sums, Profile: prof})
		},
	}
}

func (a *app) writeProfile(cmd *cobra.Command, p profileOutput) error {
	out := cmd.OutOrStdout()
	if a.format() == report.FormatJSON {
		return report.WriteJSON(out, p)
	}

	barHeaders := []string{"X", "WIDTH", "S", "D", "SHADE"}
	bars := make([][]string, len(p.Profile.Bars))
	for i, b := range p.Profile.Bars {
		bars[i] = []string{ftoa(b.X), ftoa(b.Width), strconv.Itoa(b.Height), strconv.Itoa(b.D), ftoa(b.Shade)}
	}
	if a.format() == report.FormatCSV {
		return report.WriteCSV(out, barHeaders, bars)
	}

	sumHeaders := []string{"FIELD", "N", "MEAN", "STDDEV", "MIN", "MEDIAN", "MAX"}
	sums := make([][]string, len(p.Summary))
	for i, s := range p.Summary {
		sums[i] = []string{s.Field, strconv.Itoa(s.N), ftoa(s.Mean), ftoa(s.StdDev), ftoa(s.Min), ftoa(s.Median), ftoa(s.Max)}
	}
	if err := report.WriteTable(out, sumHeaders, sums); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return report.WriteTable(out, barHeaders, bars)
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) }
