package tools

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/raphaelgruber/namesmith/internal/db"
	"github.com/raphaelgruber/namesmith/internal/models"
)

const historyHint = "Set NAMESMITH_HISTORY=true and start SurrealDB"

// GenerationView is the tool output for a generation log.
type GenerationView struct {
	ID          string                    `json:"id"`
	Keyword     string                    `json:"keyword"`
	Settings    models.GenerationSettings `json:"settings"`
	ResultCount int                       `json:"result_count"`
	Source      string                    `json:"source"`
	Created     time.Time                 `json:"created"`
}

// NewGenerationView flattens a generation log for output.
func NewGenerationView(g models.GenerationLog) GenerationView {
	id, _ := models.RecordIDString(g.ID)
	return GenerationView{
		ID:          id,
		Keyword:     g.Keyword,
		Settings:    g.Settings,
		ResultCount: g.ResultCount,
		Source:      g.Source,
		Created:     g.Created,
	}
}

// RecentInput defines the input schema for recent_generations.
type RecentInput struct {
	Keyword string `json:"keyword,omitempty" jsonschema:"Only runs for this keyword"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max results 1-100, default 20"`
}

// NewRecentHandler creates the recent_generations tool handler.
func NewRecentHandler(deps *Dependencies) mcp.ToolHandlerFor[RecentInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecentInput) (*mcp.CallToolResult, any, error) {
		if deps.History == nil {
			return ErrorResult("Generation history is disabled", historyHint), nil, nil
		}
		if input.Limit < 0 || input.Limit > 100 {
			return ErrorResult("Limit must be 1-100", "Reduce limit value"), nil, nil
		}

		logs, err := deps.History.RecentGenerations(ctx, input.Keyword, input.Limit)
		if err != nil {
			deps.Logger.Error("recent generations failed", "error", err)
			return ErrorResult("Failed to read history", "Database may be unavailable"), nil, nil
		}

		views := make([]GenerationView, len(logs))
		for i, l := range logs {
			views[i] = NewGenerationView(l)
		}
		return JSONResult(map[string]any{"generations": views, "count": len(views)}), nil, nil
	}
}

// GetGenerationInput defines the input schema for get_generation.
type GetGenerationInput struct {
	ID string `json:"id" jsonschema:"Generation log ID"`
}

// NewGetGenerationHandler creates the get_generation tool handler.
func NewGetGenerationHandler(deps *Dependencies) mcp.ToolHandlerFor[GetGenerationInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetGenerationInput) (*mcp.CallToolResult, any, error) {
		if deps.History == nil {
			return ErrorResult("Generation history is disabled", historyHint), nil, nil
		}
		if input.ID == "" {
			return ErrorResult("ID cannot be empty", "Use an id from recent_generations"), nil, nil
		}

		g, err := deps.History.GetGeneration(ctx, input.ID)
		switch {
		case errors.Is(err, db.ErrNotFound):
			return ErrorResult("Generation not found: "+input.ID, "Use an id from recent_generations"), nil, nil
		case err != nil:
			deps.Logger.Error("get generation failed", "id", input.ID, "error", err)
			return ErrorResult("Failed to read history", "Database may be unavailable"), nil, nil
		}
		return JSONResult(NewGenerationView(*g)), nil, nil
	}
}

// CachedInput defines the input schema for cached_names.
type CachedInput struct {
	Keyword  string `json:"keyword" jsonschema:"Keyword the names were generated for"`
	Industry string `json:"industry,omitempty" jsonschema:"Only names generated for this industry"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max results 1-100, default 20"`
}

// CachedView is the tool output for a cached name.
type CachedView struct {
	Name     string    `json:"name"`
	Keyword  string    `json:"keyword"`
	Industry string    `json:"industry,omitempty"`
	Style    string    `json:"style"`
	Score    int       `json:"score"`
	Source   string    `json:"source"`
	Created  time.Time `json:"created"`
}

// NewCachedView flattens a cached name for output.
func NewCachedView(n models.CachedName) CachedView {
	v := CachedView{
		Name:    n.Name,
		Keyword: n.Keyword,
		Style:   n.Style,
		Score:   n.Score,
		Source:  n.Source,
		Created: n.Created,
	}
	if n.Industry != nil {
		v.Industry = *n.Industry
	}
	return v
}

// NewCachedHandler creates the cached_names tool handler.
func NewCachedHandler(deps *Dependencies) mcp.ToolHandlerFor[CachedInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CachedInput) (*mcp.CallToolResult, any, error) {
		if deps.History == nil {
			return ErrorResult("Generation history is disabled", historyHint), nil, nil
		}
		if models.NormalizeKeyword(input.Keyword) == "" {
			return ErrorResult("Keyword cannot be empty", "Provide the keyword used for generation"), nil, nil
		}
		if input.Limit < 0 || input.Limit > 100 {
			return ErrorResult("Limit must be 1-100", "Reduce limit value"), nil, nil
		}

		names, err := deps.History.CachedNames(ctx, input.Keyword, input.Industry, input.Limit)
		if err != nil {
			deps.Logger.Error("cached names failed", "error", err)
			return ErrorResult("Failed to read name cache", "Database may be unavailable"), nil, nil
		}

		views := make([]CachedView, len(names))
		for i, n := range names {
			views[i] = NewCachedView(n)
		}
		return JSONResult(map[string]any{"names": views, "count": len(views)}), nil, nil
	}
}
