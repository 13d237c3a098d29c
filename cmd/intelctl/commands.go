package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/sports-intel-service/internal/app/scrape"
)

func newScrapeCmd(opts *cliOptions) *cobra.Command {
	var req scrape.Request
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one normalizer request (team, form, fixtures, standings, scoreboard)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services(cmd)
			if err != nil {
				return err
			}
			data, err := svc.Scrape.Handle(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringVar(&req.Type, "type", "", "request type: team, form, fixtures, standings or scoreboard")
	cmd.Flags().StringVar(&req.TeamName, "team", "", "team display name")
	cmd.Flags().StringVar(&req.League, "league", "", "league code, e.g. nba or epl")
	cmd.Flags().StringVar(&req.Date, "date", "", "scoreboard date (YYYY-MM-DD or YYYYMMDD)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newDashboardCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard <team>",
		Short: "Show a team's overview, upcoming fixtures and league table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services(cmd)
			if err != nil {
				return err
			}
			dash, err := svc.Scrape.Dashboard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dash)
		},
	}
}

func newLeaguesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List supported leagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services(cmd)
			if err != nil {
				return err
			}
			for _, l := range svc.Catalog.Leagues() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-24s %s\n", l.Code, l.Name, l.Sport)
			}
			return nil
		},
	}
}

func newOddsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "odds <league>",
		Short: "List games with bookmaker prices for a league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services(cmd)
			if err != nil {
				return err
			}
			games, err := svc.Odds.Games(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), games)
		},
	}
}

func newBestOddsCmd(opts *cliOptions) *cobra.Command {
	var league, gameID, market, outcome string
	cmd := &cobra.Command{
		Use:   "best-odds",
		Short: "Find the best price for one outcome of a game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.services(cmd)
			if err != nil {
				return err
			}
			best, err := svc.Odds.Best(cmd.Context(), league, gameID, market, outcome)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), best)
		},
	}
	cmd.Flags().StringVar(&league, "league", "", "league code")
	cmd.Flags().StringVar(&gameID, "game", "", "game id as listed by the odds command")
	cmd.Flags().StringVar(&market, "market", "h2h", "market: h2h, spreads or totals")
	cmd.Flags().StringVar(&outcome, "outcome", "", "outcome name, usually a team")
	_ = cmd.MarkFlagRequired("league")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("outcome")
	return cmd
}
