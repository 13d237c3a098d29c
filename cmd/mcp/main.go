// Command mcp serves the sports-intel tools over MCP on stdio.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/sports-intel-service/internal/config"
	"github.com/preston-bernstein/sports-intel-service/internal/logging"
	"github.com/preston-bernstein/sports-intel-service/internal/mcptools"
	"github.com/preston-bernstein/sports-intel-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	// stdout carries the protocol; logs go to stderr.
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "sports-intel-mcp",
		Version: appVersion,
		Output:  os.Stderr,
	})

	svc, err := server.BuildServices(cfg, logger, nil)
	if err != nil {
		logging.Error(logger, "service setup failed", err)
		os.Exit(1)
	}

	srv, registry := mcptools.NewServer(appVersion, mcptools.New(svc.Scrape, svc.Odds, svc.Catalog, logger))
	logging.Info(logger, "mcp server starting", "tools", len(registry))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logging.Error(logger, "mcp server stopped", err)
		os.Exit(1)
	}
}
