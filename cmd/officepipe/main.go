package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/officepipe/config"
	"github.com/hazyhaar/officepipe/kit"
	"github.com/hazyhaar/officepipe/tools"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("configuration", "error", err)
		os.Exit(1)
	}

	// Logging goes to stderr: the stdio transport owns stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = kit.WithTransport(ctx, "stdio")

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "officepipe",
		Version: "1.0.0",
	}, nil)

	h := tools.New(ctx, cfg, logger)
	h.Register(srv)

	logger.Info("officepipe starting",
		"output_directory", cfg.OutputDirectory,
		"google_workspace", cfg.EnableGoogleWorkspace)

	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
