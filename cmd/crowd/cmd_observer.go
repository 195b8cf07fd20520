package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crowd/crowd"
	"github.com/katalvlaran/crowd/graphio"
	"github.com/katalvlaran/crowd/oracle"
	"github.com/katalvlaran/crowd/report"
)

// observerResult is one decision. MaxSeparation is -1 when some pair of
// sources cannot reach each other at all.
type observerResult struct {
	Node          string   `json:"node"`
	M             int      `json:"m"`
	K             int      `json:"k"`
	Orientation   string   `json:"orientation"`
	Observer      bool     `json:"observer"`
	Witness       []string `json:"witness,omitempty"`
	MaxSeparation int      `json:"max_separation"`
}

const unbounded = -1

func separationString(d int) string {
	if d == unbounded {
		return "inf"
	}
	return strconv.Itoa(d)
}

func orientation(transmitter bool) oracle.Orientation {
	if transmitter {
		return oracle.Transmitter
	}
	return oracle.Receiver
}

func (a *app) newObserverCmd() *cobra.Command {
	var (
		m, k        int
		transmitter bool
	)
	cmd := &cobra.Command{
		Use:   "observer <graph-file> <node>",
		Short: "Decide whether a node is an (m,k)-observer and print a witness and the widest source separation",
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
			orient := orientation(transmitter)
			w, err := c.Witness(args[1], m, k, orient)
			if err != nil {
				return err
			}
			widest, err := c.MaxSeparation(args[1], orient)
			if err != nil {
				return err
			}
			if widest == oracle.Unreachable {
				widest = unbounded
			}
			res := observerResult{
				Node: args[1], M: m, K: k,
				Orientation:   orient.String(),
				Observer:      w != nil,
				Witness:       w,
				MaxSeparation: widest,
			}

			out := cmd.OutOrStdout()
			if a.format() == report.FormatJSON {
				return report.WriteJSON(out, res)
			}
			headers := []string{"NODE", "M", "K", "ORIENTATION", "OBSERVER", "WITNESS", "MAX_SEPARATION"}
			rows := [][]string{{
				res.Node, strconv.Itoa(m), strconv.Itoa(k), res.Orientation,
				strconv.FormatBool(res.Observer), strings.Join(w, ";"),
				separationString(res.MaxSeparation),
			}}
			if a.format() == report.FormatCSV {
				return report.WriteCSV(out, headers, rows)
			}
			return report.WriteTable(out, headers, rows)
		},
	}
	cmd.Flags().IntVarP(&m, "m", "m", 2, "Number of independent sources")
	cmd.Flags().IntVarP(&k, "k", "k", 2, "Minimum pairwise separation")
	cmd.Flags().BoolVar(&transmitter, "transmitter", false, "Use out-neighbors as candidates")
	return cmd
}
