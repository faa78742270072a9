package db

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/raphaelgruber/namesmith/internal/models"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// DefaultHistoryLimit bounds history listings when no limit is given.
const DefaultHistoryLimit = 20

// LogGeneration stores one generation run. The keyword is normalized
// before storage.
func (c *Client) LogGeneration(ctx context.Context, in models.GenerationLogInput) (*models.GenerationLog, error) {
	id := uuid.New().String()
	results, err := surrealdb.Query[[]models.GenerationLog](ctx, c.db, `
		CREATE type::record("generation_log", $id) CONTENT {
			keyword: $keyword,
			settings: $settings,
			result_count: $result_count,
			source: $source,
			created: time::now()
		} RETURN AFTER
	`, map[string]any{
		"id":           id,
		"keyword":      models.NormalizeKeyword(in.Keyword),
		"settings":     settingsVars(in.Settings),
		"result_count": in.ResultCount,
		"source":       in.Source,
	})
	if err != nil {
		return nil, fmt.Errorf("log generation: %w", wrapQueryError(err))
	}
	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, fmt.Errorf("log generation: no result returned")
	}
	return &(*results)[0].Result[0], nil
}

// settingsVars omits unset optional fields so they are stored as NONE.
func settingsVars(s models.GenerationSettings) map[string]any {
	tlds := s.TLDs
	if tlds == nil {
		tlds = []string{}
	}
	vars := map[string]any{
		"style":             s.Style,
		"randomness":        s.Randomness,
		"tlds":              tlds,
		"availability_mode": s.AvailabilityMode,
	}
	if s.Industry != nil {
		vars["industry"] = *s.Industry
	}
	if s.Country != nil {
		vars["country"] = *s.Country
	}
	if s.Vibe != nil {
		vars["vibe"] = *s.Vibe
	}
	return vars
}

// GetGeneration returns one generation log by ID or ErrNotFound.
func (c *Client) GetGeneration(ctx context.Context, id string) (*models.GenerationLog, error) {
	results, err := surrealdb.Query[[]models.GenerationLog](ctx, c.db, `
		SELECT * FROM type::record("generation_log", $id)
	`, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get generation: %w", err)
	}
	if results == nil || len(*results) == 0 || len((*results)[0].Result) == 0 {
		return nil, fmt.Errorf("get generation %s: %w", id, ErrNotFound)
	}
	return &(*results)[0].Result[0], nil
}

// RecentGenerations lists generation logs newest first. An empty keyword
// lists all keywords.
func (c *Client) RecentGenerations(ctx context.Context, keyword string, limit int) ([]models.GenerationLog, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	where := ""
	vars := map[string]any{"limit": limit}
	if kw := models.NormalizeKeyword(keyword); kw != "" {
		where = "WHERE keyword = $keyword"
		vars["keyword"] = kw
	}

	sql := fmt.Sprintf(`
		SELECT * FROM generation_log %s ORDER BY created DESC LIMIT $limit
	`, where)

	results, err := surrealdb.Query[[]models.GenerationLog](ctx, c.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("recent generations: %w", err)
	}
	if results == nil || len(*results) == 0 {
		return []models.GenerationLog{}, nil
	}
	return (*results)[0].Result, nil
}

// CacheNames stores names for later reuse. Names already cached, under any
// keyword, are left untouched. Names without domain characters are skipped.
func (c *Client) CacheNames(ctx context.Context, keyword string, industry *string, names []models.CachedNameInput) error {
	kw := models.NormalizeKeyword(keyword)
	rows := make([]map[string]any, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		key := models.NameKey(n.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		row := map[string]any{
			"id":      surrealmodels.NewRecordID(tableNameCache, key),
			"name":    n.Name,
			"keyword": kw,
			"style":   n.Style,
			"score":   int(math.Round(n.Score)),
			"source":  n.Source,
		}
		if industry != nil && *industry != "" {
			row["industry"] = *industry
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}

	if _, err := surrealdb.Query[any](ctx, c.db, `INSERT IGNORE INTO name_cache $rows`, map[string]any{
		"rows": rows,
	}); err != nil {
		return fmt.Errorf("cache names: %w", wrapQueryError(err))
	}
	return nil
}

// CachedNames returns cached names for a keyword, best score first. An empty
// industry matches every industry.
func (c *Client) CachedNames(ctx context.Context, keyword, industry string, limit int) ([]models.CachedName, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	industryClause := ""
	vars := map[string]any{
		"keyword": models.NormalizeKeyword(keyword),
		"limit":   limit,
	}
	if industry != "" {
		industryClause = "AND industry = $industry"
		vars["industry"] = industry
	}

	sql := fmt.Sprintf(`
		SELECT * FROM name_cache WHERE keyword = $keyword %s ORDER BY score DESC LIMIT $limit
	`, industryClause)

	results, err := surrealdb.Query[[]models.CachedName](ctx, c.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("cached names: %w", err)
	}
	if results == nil || len(*results) == 0 {
		return []models.CachedName{}, nil
	}
	return (*results)[0].Result, nil
}
