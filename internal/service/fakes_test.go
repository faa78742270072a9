package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/raphaelgruber/namesmith/internal/availability"
	"github.com/raphaelgruber/namesmith/internal/llm"
	"github.com/raphaelgruber/namesmith/internal/models"
	"github.com/raphaelgruber/namesmith/internal/naming"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// aiNames are pronounceable names that pass the quality gate.
var aiNames = []string{
	"Fluvari", "Tidewell", "Rivora", "Lumora", "Zentara", "Novexa",
	"Calvora", "Brivana", "Solvera", "Mirela", "Corvana", "Talvira",
}

// remoteCandidates returns the first n aiNames with descending scores.
func remoteCandidates(n int) []naming.Candidate {
	out := make([]naming.Candidate, n)
	for i := range n {
		out[i] = naming.Candidate{
			Name:   aiNames[i],
			Style:  naming.StyleBrandable,
			Score:  float64(100 - i),
			Source: naming.SourceAI,
		}
	}
	return out
}

type fakeSource struct {
	mu     sync.Mutex
	names  []naming.Candidate
	err    error
	briefs []llm.Brief
}

func (f *fakeSource) GenerateNames(_ context.Context, brief llm.Brief) ([]naming.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.briefs = append(f.briefs, brief)
	if f.err != nil {
		return nil, f.err
	}
	return append([]naming.Candidate(nil), f.names...), nil
}

// fakeChecker marks a domain free when free(name) is true.
type fakeChecker struct {
	free func(name string) bool
	err  error
}

func (f *fakeChecker) Check(_ context.Context, name string, tlds []string) (availability.Result, error) {
	if f.err != nil {
		return availability.Result{}, f.err
	}
	if len(tlds) == 0 {
		tlds = []string{"com"}
	}
	res := availability.Result{Name: name}
	for _, tld := range tlds {
		res.Domains = append(res.Domains, availability.DomainResult{
			TLD:       tld,
			Domain:    strings.ToLower(name) + "." + tld,
			Available: f.free != nil && f.free(name),
		})
	}
	return res, nil
}

type fakeStore struct {
	mu       sync.Mutex
	logs     []models.GenerationLogInput
	cached   []models.CachedNameInput
	industry *string
	logErr   error
	cacheErr error
}

func (f *fakeStore) LogGeneration(_ context.Context, in models.GenerationLogInput) (*models.GenerationLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.logErr != nil {
		return nil, f.logErr
	}
	f.logs = append(f.logs, in)
	return &models.GenerationLog{
		ID:          surrealmodels.NewRecordID("generation_log", "log1"),
		Keyword:     in.Keyword,
		ResultCount: in.ResultCount,
		Source:      in.Source,
	}, nil
}

func (f *fakeStore) CacheNames(_ context.Context, _ string, industry *string, names []models.CachedNameInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.industry = industry
	f.cached = append(f.cached, names...)
	return f.cacheErr
}

var errRemoteDown = errors.New("remote down")
