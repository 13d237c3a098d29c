// Package mcptools exposes the normalizer and odds finder as Model Context
// Protocol tools.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/sports-intel-service/internal/app/scrape"
	"github.com/preston-bernstein/sports-intel-service/internal/catalog"
	domainodds "github.com/preston-bernstein/sports-intel-service/internal/domain/odds"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
)

// Tool names.
const (
	ToolScrape      = "espn_scrape"
	ToolDashboard   = "espn_dashboard"
	ToolListLeagues = "list_leagues"
	ToolBestOdds    = "best_odds"
)

// ScrapeService is the normalizer surface.
type ScrapeService interface {
	Handle(ctx context.Context, req scrape.Request) (any, error)
	Dashboard(ctx context.Context, teamName string) (scrape.Dashboard, error)
}

// OddsService is the pricing surface.
type OddsService interface {
	Best(ctx context.Context, league, gameID, market, outcome string) (domainodds.BestPrice, error)
}

// LeagueLister lists the supported leagues.
type LeagueLister interface {
	Leagues() []catalog.League
}

type ScrapeArgs struct {
	Type     string `json:"type" jsonschema:"Request type: team|form|fixtures|standings|scoreboard"`
	TeamName string `json:"teamName,omitempty" jsonschema:"Team display name, e.g. Boston Celtics (required for team, form, fixtures)"`
	League   string `json:"league,omitempty" jsonschema:"League code, e.g. nba or epl (standings and scoreboard; derived from teamName when empty)"`
	Date     string `json:"date,omitempty" jsonschema:"Scoreboard date YYYY-MM-DD (default today)"`
}

type DashboardArgs struct {
	Team string `json:"team" jsonschema:"Team display name (required)"`
}

type ListLeaguesArgs struct{}

type BestOddsArgs struct {
	League  string `json:"league" jsonschema:"League code (required)"`
	GameID  string `json:"gameId" jsonschema:"Game id from the odds feed (required)"`
	Market  string `json:"market,omitempty" jsonschema:"Market: h2h|spreads|totals (default h2h)"`
	Outcome string `json:"outcome" jsonschema:"Outcome name, usually a team (required)"`
}

// ToolInfo describes a registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tools binds the application services to MCP tool handlers.
type Tools struct {
	scrape  ScrapeService
	odds    OddsService
	leagues LeagueLister
	logger  *slog.Logger
}

// New constructs Tools.
func New(scrapeSvc ScrapeService, oddsSvc OddsService, leagues LeagueLister, logger *slog.Logger) *Tools {
	return &Tools{scrape: scrapeSvc, odds: oddsSvc, leagues: leagues, logger: logger}
}

// NewServer returns an MCP server with every tool registered.
func NewServer(version string, tools *Tools) (*mcp.Server, []ToolInfo) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sports-intel",
		Version: version,
	}, nil)
	return server, tools.Register(server)
}

// Register adds the tools to server and returns what was registered.
func (t *Tools) Register(server *mcp.Server) []ToolInfo {
	registry := make([]ToolInfo, 0, 4)

	addTool(server, &registry, &mcp.Tool{
		Name:        ToolScrape,
		Description: "Normalized ESPN data for a team or league: overview, form, fixtures, standings or scoreboard",
	}, t.Scrape)

	addTool(server, &registry, &mcp.Tool{
		Name:        ToolDashboard,
		Description: "A team's overview, upcoming fixtures and league table in one call",
	}, t.Dashboard)

	addTool(server, &registry, &mcp.Tool{
		Name:        ToolListLeagues,
		Description: "Supported leagues with their codes",
	}, t.ListLeagues)

	addTool(server, &registry, &mcp.Tool{
		Name:        ToolBestOdds,
		Description: "Best available American price across bookmakers for one outcome of a game",
	}, t.BestOdds)

	return registry
}

func addTool[T any](server *mcp.Server, registry *[]ToolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, ToolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// Scrape handles espn_scrape.
func (t *Tools) Scrape(ctx context.Context, req *mcp.CallToolRequest, args ScrapeArgs) (*mcp.CallToolResult, any, error) {
	data, err := t.scrape.Handle(ctx, scrape.Request{
		Type:     args.Type,
		TeamName: args.TeamName,
		League:   args.League,
		Date:     args.Date,
	})
	return t.result(ToolScrape, data, err)
}

// Dashboard handles espn_dashboard.
func (t *Tools) Dashboard(ctx context.Context, req *mcp.CallToolRequest, args DashboardArgs) (*mcp.CallToolResult, any, error) {
	dash, err := t.scrape.Dashboard(ctx, args.Team)
	return t.result(ToolDashboard, dash, err)
}

// ListLeagues handles list_leagues.
func (t *Tools) ListLeagues(ctx context.Context, req *mcp.CallToolRequest, args ListLeaguesArgs) (*mcp.CallToolResult, any, error) {
	leagues := []catalog.League{}
	if t.leagues != nil {
		leagues = t.leagues.Leagues()
	}
	return t.result(ToolListLeagues, map[string]any{"leagues": leagues}, nil)
}

// BestOdds handles best_odds.
func (t *Tools) BestOdds(ctx context.Context, req *mcp.CallToolRequest, args BestOddsArgs) (*mcp.CallToolResult, any, error) {
	if t.odds == nil {
		return toolError(fmt.Errorf("odds provider not configured")), nil, nil
	}
	best, err := t.odds.Best(ctx, args.League, args.GameID, args.Market, args.Outcome)
	return t.result(ToolBestOdds, best, err)
}

// result renders v as indented JSON text. Tool failures are reported in the
// result so the model sees them; only encoding problems surface as errors.
func (t *Tools) result(tool string, v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		logging.Warn(t.logger, "tool call failed", slog.String("tool", tool), slog.String("error", err.Error()))
		return toolError(err), nil, nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: encode result: %w", tool, err)
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
