package naming

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PhoneticSwap replaces every occurrence of From with To.
type PhoneticSwap struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Vocabulary holds the word tables the strategies draw from.
// Tables are plain data so they can be tuned without touching the algorithm.
type Vocabulary struct {
	StopWords         []string       `yaml:"stop_words"`
	CompoundSuffixes  []string       `yaml:"compound_suffixes"`
	CompoundPrefixes  []string       `yaml:"compound_prefixes"`
	TechRoots         []string       `yaml:"tech_roots"`
	BrandableSuffixes []string       `yaml:"brandable_suffixes"`
	LatinPrefixes     []string       `yaml:"latin_prefixes"`
	BlendWords        []string       `yaml:"blend_words"`
	CoinVowels        []string       `yaml:"coin_vowels"`
	CoinConsonants    []string       `yaml:"coin_consonants"`
	CoinEndings       []string       `yaml:"coin_endings"`
	ShortMarkers      []string       `yaml:"short_markers"`
	PhoneticSwaps     []PhoneticSwap `yaml:"phonetic_swaps"`
}

// DefaultVocabulary returns a fresh copy of the built-in tables.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		StopWords: []string{
			"a", "an", "the", "and", "or", "but", "for", "of", "in", "on", "at", "to",
			"by", "up", "is", "it", "my", "we", "our", "with", "that", "this", "from",
			"app", "application", "website", "platform", "service", "tool", "software",
			"based", "focused", "driven", "powered", "oriented", "related",
		},
		CompoundSuffixes: []string{
			"flow", "stack", "hub", "lab", "works", "box", "source", "grid", "core", "base",
			"space", "sync", "desk", "mind", "cast", "ship", "bird", "kite", "pixel", "byte",
			"sphere", "wave", "dash", "pod", "dock", "port", "gate", "bridge", "view", "sight",
		},
		CompoundPrefixes: []string{
			"flow", "snap", "zen", "core", "net", "data", "click", "smart", "tech", "hyper",
			"meta", "cyber", "digi", "omni", "poly", "uni", "pro", "max", "ultra", "super",
			"auto", "dyna", "flex", "swift", "quick", "flash", "bright", "clear", "bold", "true",
		},
		TechRoots: []string{
			"vertex", "nexus", "prism", "flux", "spark", "pulse", "wave", "sphere", "arc", "node",
			"vector", "pixel", "logic", "quantum", "orbit", "axis", "atlas", "apex", "aero", "astra",
			"cipher", "coder", "daemon", "ether", "helix", "iodine", "kinetic", "lunar", "matrix", "nebula",
			"optic", "phase", "qubit", "radar", "sonic", "terra", "unity", "vision", "warp", "zenith",
		},
		BrandableSuffixes: []string{
			"ify", "ly", "io", "ai", "sys", "gen", "ops", "iq", "os",
			"ia", "co", "is", "us", "ix", "ex", "on", "en", "an", "ar", "er",
		},
		LatinPrefixes:  []string{"nov", "vel", "sol", "ver", "viv", "lum", "aud", "vis", "cog", "scio"},
		BlendWords:     []string{"quantum", "cipher", "nexus", "prism", "flux", "phase", "orbit", "zenith"},
		CoinVowels:     []string{"a", "e", "i", "o", "u"},
		CoinConsonants: []string{"n", "v", "x", "r", "k", "m", "l", "z", "t"},
		CoinEndings:    []string{"ia", "io", "os", "ex", "ix", "ara", "ova", "ana", "ino", "ona"},
		ShortMarkers:   []string{"o", "i", "a", "x", "u"},
		PhoneticSwaps: []PhoneticSwap{
			{From: "c", To: "k"},
			{From: "ph", To: "f"},
			{From: "x", To: "z"},
		},
	}
}

// ParseVocabulary overlays YAML tables onto the defaults.
// Tables missing from the document keep their built-in values.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	v := DefaultVocabulary()
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadVocabulary reads a YAML vocabulary file. See ParseVocabulary.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}

// Validate checks that every table a strategy draws single picks from is non-empty.
func (v *Vocabulary) Validate() error {
	required := map[string][]string{
		"blend_words":     v.BlendWords,
		"coin_vowels":     v.CoinVowels,
		"coin_consonants": v.CoinConsonants,
		"coin_endings":    v.CoinEndings,
	}
	for name, table := range required {
		if len(table) == 0 {
			return fmt.Errorf("vocabulary table %s must not be empty", name)
		}
	}
	for i, swap := range v.PhoneticSwaps {
		if swap.From == "" {
			return fmt.Errorf("phonetic swap %d has empty from", i)
		}
	}
	return nil
}
