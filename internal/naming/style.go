package naming

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parsing request enumerations.
var (
	// ErrInvalidStyle indicates a style string outside the closed set.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrInvalidRandomness indicates a randomness string outside low/medium/high.
	ErrInvalidRandomness = errors.New("invalid randomness level")
)

// Style tags the construction family of a name.
// StyleAuto is a request wildcard and never appears on an output candidate.
type Style string

const (
	StyleAuto      Style = "auto"
	StyleBrandable Style = "brandable"
	StyleAlternate Style = "alternate"
	StyleCompound  Style = "compound"
	StyleRealWord  Style = "real_word"
	StyleShort     Style = "short"
)

// Styles lists every accepted style value, wildcard first.
var Styles = []Style{StyleAuto, StyleBrandable, StyleAlternate, StyleCompound, StyleRealWord, StyleShort}

// ParseStyle converts user input into a Style. Empty input means auto.
func ParseStyle(s string) (Style, error) {
	v := Style(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return StyleAuto, nil
	}
	for _, known := range Styles {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}

// Concrete reports whether s is one of the five output tags.
func (s Style) Concrete() bool {
	switch s {
	case StyleBrandable, StyleAlternate, StyleCompound, StyleRealWord, StyleShort:
		return true
	}
	return false
}

func (s Style) String() string {
	return string(s)
}

// Randomness controls score variance and pre-sort shuffling.
type Randomness string

const (
	RandomnessLow    Randomness = "low"
	RandomnessMedium Randomness = "medium"
	RandomnessHigh   Randomness = "high"
)

// ParseRandomness converts user input into a Randomness. Empty input means medium.
func ParseRandomness(s string) (Randomness, error) {
	switch v := Randomness(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return RandomnessMedium, nil
	case RandomnessLow, RandomnessMedium, RandomnessHigh:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRandomness, s)
}

// VarianceCeiling is the upper bound of the random score bonus.
func (r Randomness) VarianceCeiling() float64 {
	switch r {
	case RandomnessHigh:
		return 30
	case RandomnessLow:
		return 5
	default:
		return 15
	}
}

func (r Randomness) String() string {
	return string(r)
}

// Source identifies which producer emitted a candidate.
type Source string

const (
	SourceLocal Source = "local"
	SourceAI    Source = "ai"
)
