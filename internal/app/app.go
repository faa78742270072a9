// Package app wires configuration into the services shared by the CLI and
// the MCP server.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raphaelgruber/namesmith/internal/availability"
	"github.com/raphaelgruber/namesmith/internal/config"
	"github.com/raphaelgruber/namesmith/internal/db"
	"github.com/raphaelgruber/namesmith/internal/llm"
	"github.com/raphaelgruber/namesmith/internal/metrics"
	"github.com/raphaelgruber/namesmith/internal/naming"
	"github.com/raphaelgruber/namesmith/internal/service"
	"github.com/raphaelgruber/namesmith/internal/tools"
)

// Options adjust wiring per entry point.
type Options struct {
	// Seed makes local generation reproducible when Seeded is set or
	// Seed is non-zero.
	Seed   uint64
	Seeded bool
	// Limit caps the candidates per run. Zero keeps the default.
	Limit int
	// LocalOnly skips constructing the remote source.
	LocalOnly bool
	// NoHistory skips the database even when history is enabled.
	NoHistory bool
	// BatchConcurrency sizes the job manager. Zero keeps the default.
	BatchConcurrency int
}

// App holds the wired services. Remote, Checker and DB are nil when the
// corresponding feature is unavailable.
type App struct {
	Config     config.Config
	Logger     *slog.Logger
	Collector  *metrics.Collector
	Generator  *naming.Generator
	Remote     *llm.Namer
	Checker    *availability.DNSChecker
	DB         *db.Client
	Generation *service.GenerationService
	Jobs       *service.JobManager
}

// New builds an App from cfg. A broken remote provider or an unreachable
// database is logged and the feature disabled. Only an unreadable
// vocabulary file fails.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{
		Config:    cfg,
		Logger:    logger,
		Collector: metrics.NewCollector(),
		Jobs:      service.NewJobManager(opts.BatchConcurrency),
	}

	genOpts := []naming.Option{naming.WithLimit(opts.Limit)}
	if cfg.VocabularyFile != "" {
		vocab, err := naming.LoadVocabulary(cfg.VocabularyFile)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		genOpts = append(genOpts, naming.WithVocabulary(vocab))
		logger.Info("vocabulary loaded", "file", cfg.VocabularyFile)
	}
	if opts.Seeded || opts.Seed != 0 {
		genOpts = append(genOpts, naming.WithSeed(opts.Seed))
	}
	a.Generator = naming.New(genOpts...)

	if cfg.RemoteEnabled() && !opts.LocalOnly {
		model, err := llm.NewModel(ctx, cfg, a.Collector)
		if err != nil {
			logger.Warn("remote name source disabled", "provider", cfg.LLMProvider, "error", err)
		} else {
			a.Remote = llm.NewNamer(model, logger)
			logger.Info("remote name source enabled", "provider", cfg.LLMProvider, "model", a.Remote.Model())
		}
	}

	a.Checker = availability.NewDNSChecker(
		availability.WithTimeout(cfg.AvailabilityTimeout),
		availability.WithConcurrency(cfg.AvailabilityConcurrent),
		availability.WithDefaultTLDs(cfg.TLDs),
		availability.WithLogger(logger),
		availability.WithCollector(a.Collector),
	)

	if cfg.HistoryEnabled && !opts.NoHistory {
		a.DB = connectHistory(ctx, cfg, logger)
	}

	deps := service.GenerationDeps{
		Generator:    a.Generator,
		Checker:      a.Checker,
		Collector:    a.Collector,
		Logger:       logger,
		MinAIResults: cfg.MinAIResults,
	}
	// Typed nil pointers must not end up in the interfaces.
	if a.Remote != nil {
		deps.Remote = a.Remote
	}
	if a.DB != nil {
		deps.Store = a.DB
	}
	a.Generation = service.NewGenerationService(deps)

	return a, nil
}

func connectHistory(ctx context.Context, cfg config.Config, logger *slog.Logger) *db.Client {
	client, err := db.NewClient(ctx, db.Config{
		URL:       cfg.SurrealDBURL,
		Namespace: cfg.SurrealDBNamespace,
		Database:  cfg.SurrealDBDatabase,
		Username:  cfg.SurrealDBUser,
		Password:  cfg.SurrealDBPass,
		AuthLevel: cfg.SurrealDBAuthLevel,
	}, logger)
	if err != nil {
		logger.Warn("generation history disabled", "url", cfg.SurrealDBURL, "error", err)
		return nil
	}
	if err := client.InitSchema(ctx); err != nil {
		logger.Warn("generation history disabled", "error", fmt.Errorf("initialize schema: %w", err))
		_ = client.Close(ctx)
		return nil
	}
	return client
}

// HasHistory reports whether generation history is available.
func (a *App) HasHistory() bool {
	return a.DB != nil
}

// ToolDeps returns the dependencies for the MCP tool handlers.
func (a *App) ToolDeps() *tools.Dependencies {
	deps := &tools.Dependencies{
		Generation: a.Generation,
		Collector:  a.Collector,
		Logger:     a.Logger,
	}
	if a.Checker != nil {
		deps.Checker = a.Checker
	}
	if a.DB != nil {
		deps.History = a.DB
	}
	return deps
}

// Close releases the database connection.
func (a *App) Close(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close(ctx)
}
