package service

import (
	"context"
	"errors"
	"strings"
)

// Hunt defaults.
const (
	DefaultHuntWant        = 4
	DefaultHuntMaxAttempts = 5
)

// ErrNoChecker is returned by Hunt when no availability checker is wired.
var ErrNoChecker = errors.New("domain availability checking is not configured")

// HuntOptions configures a search for names with a free domain.
type HuntOptions struct {
	GenerateOptions
	// Want is the number of names with at least one free domain to collect.
	Want        int
	MaxAttempts int
	// OnAttempt is called before each attempt with the names found so far.
	OnAttempt func(attempt, found int)
}

// HuntResult holds the names found by Hunt in discovery order.
type HuntResult struct {
	Keyword     string       `json:"keyword"`
	Suggestions []Suggestion `json:"suggestions"`
	Attempts    int          `json:"attempts"`
}

// Hunt generates repeatedly until Want names with at least one free domain
// are found or MaxAttempts runs are spent. From the second attempt on it
// switches to availability mode. The result may hold fewer than Want names.
func (s *GenerationService) Hunt(ctx context.Context, opts HuntOptions) (*HuntResult, error) {
	if s.checker == nil {
		return nil, ErrNoChecker
	}
	if opts.Want <= 0 {
		opts.Want = DefaultHuntWant
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultHuntMaxAttempts
	}

	gen := opts.GenerateOptions
	gen.CheckDomains = true

	result := &HuntResult{Keyword: strings.TrimSpace(gen.Keyword)}
	seen := make(map[string]bool)

	for attempt := 1; attempt <= opts.MaxAttempts && len(result.Suggestions) < opts.Want; attempt++ {
		if opts.OnAttempt != nil {
			opts.OnAttempt(attempt, len(result.Suggestions))
		}

		run := gen
		run.AvailabilityMode = gen.AvailabilityMode || attempt > 1
		run.Salt = gen.Salt + uint64(attempt-1)

		batch, err := s.Generate(ctx, run)
		if err != nil {
			return nil, err
		}
		result.Attempts = attempt

		for _, sg := range batch.Suggestions {
			key := strings.ToLower(sg.Name)
			if seen[key] || sg.Availability == nil || !sg.Availability.AnyAvailable() {
				continue
			}
			seen[key] = true
			result.Suggestions = append(result.Suggestions, sg)
		}

		s.logger.Debug("hunt attempt finished",
			"keyword", result.Keyword,
			"attempt", attempt,
			"found", len(result.Suggestions))
	}

	return result, nil
}
