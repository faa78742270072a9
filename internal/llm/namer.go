package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/raphaelgruber/namesmith/internal/naming"
	"github.com/tmc/langchaingo/llms"
)

const (
	// minAIScore drops weak model suggestions.
	minAIScore = 80
	// defaultAIScore is assumed when the model omits a score.
	defaultAIScore = 85
)

// Brief is the naming brief sent to the model.
type Brief struct {
	Keyword    string
	Style      naming.Style
	Randomness naming.Randomness
	Industry   string
	Vibe       string
	Country    string
	// AvailabilityFocus asks for coined names likely to have a free .com.
	AvailabilityFocus bool
}

// Namer produces brand names with an LLM.
type Namer struct {
	model  *Model
	logger *slog.Logger
}

// NewNamer creates a Namer. A nil logger uses slog.Default().
func NewNamer(model *Model, logger *slog.Logger) *Namer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Namer{model: model, logger: logger}
}

// Model returns the underlying model name.
func (n *Namer) Model() string {
	return n.model.Model()
}

// GenerateNames asks the model for names matching brief. Candidates carry
// source ai, a concrete style and a score of at least 80.
func (n *Namer) GenerateNames(ctx context.Context, brief Brief) ([]naming.Candidate, error) {
	content, err := n.model.GenerateWithSystem(ctx, systemPrompt, userPrompt(brief),
		llms.WithTemperature(temperature(brief.Randomness)))
	if err != nil {
		return nil, err
	}

	candidates, err := parseNames(content)
	if err != nil {
		n.logger.Warn("unparseable name response", "keyword", brief.Keyword, "response_len", len(content), "error", err)
		return nil, err
	}

	n.logger.Debug("remote names parsed", "keyword", brief.Keyword, "count", len(candidates))
	return candidates, nil
}

// temperature maps randomness to sampling temperature.
func temperature(r naming.Randomness) float64 {
	switch r {
	case naming.RandomnessHigh:
		return 0.9
	case naming.RandomnessLow:
		return 0.5
	default:
		return 0.7
	}
}

type aiName struct {
	Name      string   `json:"name"`
	Style     string   `json:"style"`
	Score     *float64 `json:"score"`
	Rationale string   `json:"rationale"`
}

// parseNames decodes {"names": [...]} from a model reply, tolerating
// markdown code fences around the JSON.
func parseNames(content string) ([]naming.Candidate, error) {
	cleaned := strings.NewReplacer("```json", "", "```", "").Replace(content)
	cleaned = strings.TrimSpace(cleaned)

	var payload struct {
		Names []aiName `json:"names"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	out := make([]naming.Candidate, 0, len(payload.Names))
	for _, n := range payload.Names {
		name := strings.TrimSpace(n.Name)
		if name == "" {
			continue
		}
		score := float64(defaultAIScore)
		if n.Score != nil {
			score = *n.Score
		}
		if score < minAIScore {
			continue
		}
		out = append(out, naming.Candidate{
			Name:      name,
			Style:     mapStyle(n.Style),
			Score:     min(score, 100),
			Rationale: strings.TrimSpace(n.Rationale),
			Source:    naming.SourceAI,
		})
	}
	return out, nil
}

// mapStyle folds the model's construct labels onto the local styles.
func mapStyle(label string) naming.Style {
	s := strings.ToLower(label)
	switch {
	case containsAny(s, "coined", "fanciful", "abstract"):
		return naming.StyleBrandable
	case containsAny(s, "compound", "portmanteau"):
		return naming.StyleCompound
	case containsAny(s, "real", "dictionary", "arbitrary", "evocative"):
		return naming.StyleRealWord
	case containsAny(s, "alter", "misspell"):
		return naming.StyleAlternate
	case containsAny(s, "short", "acronym"):
		return naming.StyleShort
	default:
		return naming.StyleBrandable
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
