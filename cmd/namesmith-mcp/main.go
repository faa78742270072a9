// Package main provides the entry point for the namesmith MCP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/raphaelgruber/namesmith/internal/app"
	"github.com/raphaelgruber/namesmith/internal/config"
	"github.com/raphaelgruber/namesmith/internal/server"
	"github.com/raphaelgruber/namesmith/internal/tools"
)

const version = "0.1.0"

func main() {
	cfg := config.Load()

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	logger.Info("namesmith-mcp starting",
		"version", version,
		"llm_provider", cfg.LLMProvider,
		"history", cfg.HistoryEnabled,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	a, err := app.New(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer func() {
		if a.HasHistory() {
			logger.Info("closing database connection")
		}
		_ = a.Close(context.Background())
	}()

	srv := server.New(version, logger, a.Collector)
	srv.Setup()

	tools.RegisterAll(srv.MCPServer(), a.ToolDeps())
	logger.Info("tools registered",
		"remote", a.Generation.HasRemote(),
		"history", a.HasHistory(),
	)

	logger.Info("server ready, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
