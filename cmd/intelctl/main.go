// Package main implements intelctl, a CLI that runs the normalizer and odds
// finder in-process and prints JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/sports-intel-service/internal/config"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	"github.com/preston-bernstein/sports-intel-service/internal/server"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type cliOptions struct {
	provider string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:   "intelctl",
		Short: "Query ESPN data and sportsbook odds from the command line",
		Long: `intelctl runs the same normalizer and odds finder as the HTTP service,
without a server, and prints the normalized JSON.

Examples:
  intelctl scrape --type form --team "Boston Celtics"
  intelctl dashboard "Manchester City"
  intelctl best-odds --league nba --game abc123 --outcome "Boston Celtics"
  intelctl leagues --provider fixture`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.provider, "provider", "", "upstream mode: espn or fixture (defaults to PROVIDER)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		newScrapeCmd(opts),
		newDashboardCmd(opts),
		newLeaguesCmd(opts),
		newOddsCmd(opts),
		newBestOddsCmd(opts),
	)
	return root
}

// services builds the application core from the environment plus flag overrides.
func (o *cliOptions) services(cmd *cobra.Command) (server.Services, error) {
	cfg := config.Load()
	if o.provider != "" {
		cfg.Provider = o.provider
	}
	logger := logging.NewLogger(logging.Config{
		Level:   o.logLevel,
		Service: "intelctl",
		Version: version,
		Output:  cmd.ErrOrStderr(),
	})
	return server.BuildServices(cfg, logger, nil)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
