// Package service orchestrates name generation across the local engine, the
// remote AI source, domain checks and the generation history.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/raphaelgruber/namesmith/internal/availability"
	"github.com/raphaelgruber/namesmith/internal/llm"
	"github.com/raphaelgruber/namesmith/internal/metrics"
	"github.com/raphaelgruber/namesmith/internal/models"
	"github.com/raphaelgruber/namesmith/internal/naming"
)

// DefaultMinAIResults is the remote result count below which local names
// are merged in.
const DefaultMinAIResults = 10

// annotateConcurrency bounds names checked in parallel. Each check fans out
// over TLDs on its own.
const annotateConcurrency = 4

// ErrEmptyKeyword is returned for blank keywords.
var ErrEmptyKeyword = errors.New("keyword is empty")

// NameSource produces candidates remotely.
type NameSource interface {
	GenerateNames(ctx context.Context, brief llm.Brief) ([]naming.Candidate, error)
}

// AvailabilityChecker reports domain availability for a name.
type AvailabilityChecker interface {
	Check(ctx context.Context, name string, tlds []string) (availability.Result, error)
}

// GenerationLogger persists generation runs and their names.
type GenerationLogger interface {
	LogGeneration(ctx context.Context, in models.GenerationLogInput) (*models.GenerationLog, error)
	CacheNames(ctx context.Context, keyword string, industry *string, names []models.CachedNameInput) error
}

// GenerateOptions is one generation request.
type GenerateOptions struct {
	Keyword    string
	Style      naming.Style
	Randomness naming.Randomness
	Industry   string
	Vibe       string
	Country    string
	// AvailabilityMode favours coined names likely to have free domains.
	AvailabilityMode bool
	// LocalOnly skips the remote source.
	LocalOnly bool
	// CheckDomains annotates every suggestion with domain availability.
	CheckDomains bool
	TLDs         []string
	// Salt is passed to the local engine. Hunt sets it per attempt.
	Salt uint64
}

// Suggestion is a ranked candidate with optional domain availability.
type Suggestion struct {
	naming.Candidate
	Availability *availability.Result `json:"availability,omitempty"`
}

// GenerationResult is the outcome of one generation run.
type GenerationResult struct {
	Keyword     string       `json:"keyword"`
	Roots       []string     `json:"roots"`
	Source      string       `json:"source"`
	Suggestions []Suggestion `json:"suggestions"`
	// LogID is set when the run was persisted.
	LogID string `json:"log_id,omitempty"`
}

// Names returns the suggestion names in rank order.
func (r *GenerationResult) Names() []string {
	out := make([]string, len(r.Suggestions))
	for i, s := range r.Suggestions {
		out[i] = s.Name
	}
	return out
}

// GenerationDeps wires a GenerationService. Only Generator is required.
type GenerationDeps struct {
	Generator    *naming.Generator
	Remote       NameSource
	Checker      AvailabilityChecker
	Store        GenerationLogger
	Collector    *metrics.Collector
	Logger       *slog.Logger
	MinAIResults int
}

// GenerationService runs the generation pipeline.
type GenerationService struct {
	generator    *naming.Generator
	remote       NameSource
	checker      AvailabilityChecker
	store        GenerationLogger
	collector    *metrics.Collector
	logger       *slog.Logger
	minAIResults int
}

// NewGenerationService creates a service. A nil Generator uses the built-in
// vocabulary.
func NewGenerationService(deps GenerationDeps) *GenerationService {
	s := &GenerationService{
		generator:    deps.Generator,
		remote:       deps.Remote,
		checker:      deps.Checker,
		store:        deps.Store,
		collector:    deps.Collector,
		logger:       deps.Logger,
		minAIResults: deps.MinAIResults,
	}
	if s.generator == nil {
		s.generator = naming.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.minAIResults <= 0 {
		s.minAIResults = DefaultMinAIResults
	}
	return s
}

// Generator returns the local engine.
func (s *GenerationService) Generator() *naming.Generator {
	return s.generator
}

// HasRemote reports whether a remote source is configured.
func (s *GenerationService) HasRemote() bool {
	return s.remote != nil
}

// HasChecker reports whether domain checks are available.
func (s *GenerationService) HasChecker() bool {
	return s.checker != nil
}

// Generate produces ranked suggestions for a keyword.
//
// The remote source is tried first. Remote failures fall back to the local
// engine, and when the remote source returns fewer than MinAIResults names
// the local names are merged in and everything is re-ranked together.
func (s *GenerationService) Generate(ctx context.Context, opts GenerateOptions) (*GenerationResult, error) {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}

	candidates, source, err := s.produce(ctx, opts)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(candidates))
	suggestions := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		scores[i] = c.Score
		suggestions[i] = Suggestion{Candidate: c}
	}
	s.collector.RecordScores(scores)

	result := &GenerationResult{
		Keyword:     opts.Keyword,
		Roots:       s.generator.Vocabulary().ExtractKeywords(opts.Keyword),
		Source:      source,
		Suggestions: suggestions,
	}

	if opts.CheckDomains && s.checker != nil {
		if err := s.annotate(ctx, result.Suggestions, opts.TLDs); err != nil {
			return nil, err
		}
	}

	result.LogID = s.record(ctx, opts, result)

	s.logger.Info("names generated",
		"keyword", opts.Keyword,
		"source", source,
		"count", len(result.Suggestions))
	return result, nil
}

func normalizeOptions(opts GenerateOptions) (GenerateOptions, error) {
	opts.Keyword = strings.TrimSpace(opts.Keyword)
	if opts.Keyword == "" {
		return opts, ErrEmptyKeyword
	}
	if opts.Style == "" {
		opts.Style = naming.StyleAuto
	}
	if opts.Randomness == "" {
		opts.Randomness = naming.RandomnessMedium
	}
	opts.TLDs = availability.NormalizeTLDs(opts.TLDs)
	return opts, nil
}

// produce returns ranked candidates and the source label for the run.
func (s *GenerationService) produce(ctx context.Context, opts GenerateOptions) ([]naming.Candidate, string, error) {
	if s.remote == nil || opts.LocalOnly {
		return s.local(opts), models.SourceLocal, nil
	}

	remote, err := s.remote.GenerateNames(ctx, llm.Brief{
		Keyword:           opts.Keyword,
		Style:             opts.Style,
		Randomness:        opts.Randomness,
		Industry:          opts.Industry,
		Vibe:              opts.Vibe,
		Country:           opts.Country,
		AvailabilityFocus: opts.AvailabilityMode,
	})
	switch {
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", ctxErr
		}
		s.logger.Warn("remote generation failed, using local engine", "keyword", opts.Keyword, "error", err)
		return s.local(opts), models.SourceLocal, nil
	case len(remote) == 0:
		s.logger.Info("remote source returned no names, using local engine", "keyword", opts.Keyword)
		return s.local(opts), models.SourceLocal, nil
	case len(remote) < s.minAIResults:
		merged := append(remote, s.local(opts)...)
		return s.generator.Rank(merged, opts.Randomness), models.SourceMixed, nil
	default:
		return s.generator.Rank(remote, opts.Randomness), models.SourceAI, nil
	}
}

func (s *GenerationService) local(opts GenerateOptions) []naming.Candidate {
	start := time.Now()
	out := s.generator.Generate(naming.Request{
		Keyword:          opts.Keyword,
		Style:            opts.Style,
		Randomness:       opts.Randomness,
		AvailabilityMode: opts.AvailabilityMode,
		Salt:             opts.Salt,
	})
	s.collector.RecordTiming(metrics.OpLocalGenerate, time.Since(start))
	return out
}

// annotate checks domains for every suggestion in place. Names that cannot
// form a domain label are left without availability.
func (s *GenerationService) annotate(ctx context.Context, suggestions []Suggestion, tlds []string) error {
	names := make([]string, len(suggestions))
	for i, sg := range suggestions {
		names[i] = sg.Name
	}
	results, err := availability.CheckMany(ctx, s.checker, names, tlds, annotateConcurrency)
	if err != nil {
		return err
	}
	for i := range results {
		if len(results[i].Domains) > 0 {
			suggestions[i].Availability = &results[i]
		}
	}
	return nil
}

// record persists the run. Failures are logged and never fail generation.
func (s *GenerationService) record(ctx context.Context, opts GenerateOptions, result *GenerationResult) string {
	if s.store == nil {
		return ""
	}

	start := time.Now()
	entry, err := s.store.LogGeneration(ctx, models.GenerationLogInput{
		Keyword: opts.Keyword,
		Settings: models.GenerationSettings{
			Style:            string(opts.Style),
			Randomness:       string(opts.Randomness),
			Industry:         optional(opts.Industry),
			Country:          optional(opts.Country),
			Vibe:             optional(opts.Vibe),
			TLDs:             opts.TLDs,
			AvailabilityMode: opts.AvailabilityMode,
		},
		ResultCount: len(result.Suggestions),
		Source:      result.Source,
	})
	if err != nil {
		s.collector.RecordError(metrics.OpDBLog, time.Since(start))
		s.logger.Warn("failed to log generation", "keyword", opts.Keyword, "error", err)
		return ""
	}
	s.collector.RecordTiming(metrics.OpDBLog, time.Since(start))

	names := make([]models.CachedNameInput, len(result.Suggestions))
	for i, sg := range result.Suggestions {
		names[i] = models.CachedNameInput{
			Name:   sg.Name,
			Style:  string(sg.Style),
			Score:  sg.Score,
			Source: string(sg.Source),
		}
	}
	if err := s.store.CacheNames(ctx, opts.Keyword, optional(opts.Industry), names); err != nil {
		s.logger.Warn("failed to cache names", "keyword", opts.Keyword, "error", err)
	}

	id, err := models.RecordIDString(entry.ID)
	if err != nil {
		s.logger.Debug("generation log has non-string id", "error", err)
		return ""
	}
	return id
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
