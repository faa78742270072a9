package models

import (
	"time"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// Generation sources. A mixed run merged remote and local names.
const (
	SourceLocal = "local"
	SourceAI    = "ai"
	SourceMixed = "mixed"
)

// GenerationSettings captures the request knobs of one generation run.
type GenerationSettings struct {
	Style            string   `json:"style"`
	Randomness       string   `json:"randomness"`
	Industry         *string  `json:"industry,omitempty"`
	Country          *string  `json:"country,omitempty"`
	Vibe             *string  `json:"vibe,omitempty"`
	TLDs             []string `json:"tlds"`
	AvailabilityMode bool     `json:"availability_mode"`
}

// GenerationLog is one persisted generation run.
type GenerationLog struct {
	ID          surrealmodels.RecordID `json:"id"`
	Keyword     string                 `json:"keyword"`
	Settings    GenerationSettings     `json:"settings"`
	ResultCount int                    `json:"result_count"`
	Source      string                 `json:"source"`
	Created     time.Time              `json:"created"`
}

// GenerationLogInput is the payload for creating a GenerationLog.
type GenerationLogInput struct {
	Keyword     string
	Settings    GenerationSettings
	ResultCount int
	Source      string
}

// CachedName is a previously generated name. Records are keyed by
// NameKey(Name) so a name is cached once, by whichever run produced it first.
type CachedName struct {
	ID       surrealmodels.RecordID `json:"id"`
	Name     string                 `json:"name"`
	Keyword  string                 `json:"keyword"`
	Industry *string                `json:"industry,omitempty"`
	Style    string                 `json:"style"`
	Score    int                    `json:"score"`
	Source   string                 `json:"source"`
	Created  time.Time              `json:"created"`
}

// CachedNameInput is the payload for caching a generated name.
type CachedNameInput struct {
	Name   string
	Style  string
	Score  float64
	Source string
}
