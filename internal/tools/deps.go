// Package tools provides MCP tool handlers and registration.
package tools

import (
	"context"
	"log/slog"

	"github.com/raphaelgruber/namesmith/internal/metrics"
	"github.com/raphaelgruber/namesmith/internal/models"
	"github.com/raphaelgruber/namesmith/internal/service"
)

// HistoryStore reads persisted generation runs.
type HistoryStore interface {
	RecentGenerations(ctx context.Context, keyword string, limit int) ([]models.GenerationLog, error)
	GetGeneration(ctx context.Context, id string) (*models.GenerationLog, error)
	CachedNames(ctx context.Context, keyword, industry string, limit int) ([]models.CachedName, error)
}

// Dependencies holds shared services for tool handlers.
// Checker and History are nil when the feature is disabled.
type Dependencies struct {
	Generation *service.GenerationService
	Checker    service.AvailabilityChecker
	History    HistoryStore
	Collector  *metrics.Collector
	Logger     *slog.Logger
}
