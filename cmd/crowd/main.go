// Command crowd computes wisdom-of-crowds observer measures over graph
// documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crowd/config"
	"github.com/katalvlaran/crowd/crowd"
	"github.com/katalvlaran/crowd/report"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("crowd version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("crowd version %s-dev", version)
}

// app carries state resolved once per invocation.
type app struct {
	flagConfig   string
	flagFormat   string
	flagLogLevel string
	flagMetrics  string

	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}
	a.log.SetOutput(os.Stderr)
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:           "crowd",
		Short:         "crowd: (m,k)-observer census for influence graphs",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.flagConfig, "config", "", "YAML config file (env: CROWD_* overrides)")
	pf.StringVar(&a.flagFormat, "format", "", "Output format: json|table|csv (env: CROWD_FORMAT)")
	pf.StringVar(&a.flagLogLevel, "log-level", "", "Log level: panic..trace (env: CROWD_LOG_LEVEL)")
	pf.StringVar(&a.flagMetrics, "metrics-addr", "", "Serve Prometheus metrics on this address while running (e.g. :9090)")

	root.AddCommand(
		a.newCensusCmd(),
		a.newObserverCmd(),
		a.newScoreCmd(),
		a.newPruneCmd(),
		a.newProfileCmd(),
		a.newDemoCmd(),
	)
	return root
}

// resolve loads config, then lets explicit flags win over file and env.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = a.flagFormat
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.flagLogLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log.SetLevel(cfg.Level())
	if a.flagMetrics != "" {
		if err = a.serveMetrics(cmd.Context()); err != nil {
			return err
		}
	}
	a.log.WithFields(logrus.Fields{
		"config": a.flagConfig,
		"format": cfg.Format,
		"min_k":  cfg.MinK,
		"max_k":  cfg.MaxK,
		"max_m":  cfg.MaxM,
	}).Debug("configuration resolved")
	return nil
}

func (a *app) format() report.Format { return a.cfg.OutputFormat() }

func (a *app) crowdOptions() []crowd.Option {
	return []crowd.Option{crowd.WithConfig(a.cfg.Config), crowd.WithLogger(a.log)}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
