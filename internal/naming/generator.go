// Package naming implements the procedural brand-name engine.
//
// A keyword is reduced to up to three root words, each root is expanded by a
// set of independent strategies (coined words, blends, compounds, alternate
// spellings, brandable suffixes, real-word metaphors, short forms), roots are
// cross-blended pairwise, and the aggregate is passed through a
// pronounceability gate, deduplicated and ranked by a randomized score.
//
// The engine is pure and synchronous. All randomness comes from a
// *rand.Rand created per call, so a Generator is safe for concurrent use and
// WithSeed makes output reproducible.
package naming

import (
	"math/rand/v2"
	"unicode"
	"unicode/utf8"
)

// DefaultLimit caps the number of ranked candidates.
const DefaultLimit = 20

// seedStream decorrelates the second PCG word from a user seed.
const seedStream = 0x9e3779b97f4a7c15

var (
	defaultVocabulary = DefaultVocabulary()
	defaultGenerator  = New()
)

// Candidate is a generated brand name.
type Candidate struct {
	Name      string  `json:"name"`
	Style     Style   `json:"style"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale,omitempty"`
	Source    Source  `json:"source"`
}

// Request is the input of a generation run.
type Request struct {
	Keyword    string
	Style      Style
	Randomness Randomness
	// AvailabilityMode biases output toward coined, less dictionary-like names.
	AvailabilityMode bool
	// Salt moves a seeded generator onto another stream so repeated runs
	// with the same seed differ. Zero keeps the plain seeded stream.
	Salt uint64
}

// PrioritizesUnique reports whether coined and blended strategies are forced
// on with larger counts.
func (r Request) PrioritizesUnique() bool {
	return r.AvailabilityMode || r.Randomness == RandomnessHigh
}

func (r Request) withDefaults() Request {
	if r.Style == "" {
		r.Style = StyleAuto
	}
	if r.Randomness == "" {
		r.Randomness = RandomnessMedium
	}
	return r
}

// Option configures a Generator.
type Option func(*Generator)

// WithVocabulary replaces the built-in word tables.
func WithVocabulary(v *Vocabulary) Option {
	return func(g *Generator) {
		if v != nil {
			g.vocab = v
		}
	}
}

// WithSeed makes every call replay the same random sequence.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// WithLimit overrides DefaultLimit. Non-positive values are ignored.
func WithLimit(limit int) Option {
	return func(g *Generator) {
		if limit > 0 {
			g.limit = limit
		}
	}
}

// Generator runs the naming pipeline.
type Generator struct {
	vocab  *Vocabulary
	limit  int
	seed   uint64
	seeded bool
}

// New creates a Generator with the built-in vocabulary.
func New(opts ...Option) *Generator {
	g := &Generator{
		vocab: defaultVocabulary,
		limit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Vocabulary returns the tables in use.
func (g *Generator) Vocabulary() *Vocabulary {
	return g.vocab
}

// Limit returns the maximum number of candidates returned.
func (g *Generator) Limit() int {
	return g.limit
}

// Generate produces at most Limit ranked candidates for req.
// A non-concrete style runs every strategy.
func (g *Generator) Generate(req Request) []Candidate {
	req = req.withDefaults()
	rng := g.newRand(req.Salt)

	s := &session{
		rng:    rng,
		vocab:  g.vocab,
		unique: req.PrioritizesUnique(),
		spread: req.Randomness.VarianceCeiling(),
	}

	roots := g.vocab.ExtractKeywords(req.Keyword)

	var all []Candidate
	for _, root := range roots {
		for _, st := range strategies {
			if !st.enabled(req.Style, s.unique) {
				continue
			}
			for _, d := range st.run(s, root) {
				all = append(all, Candidate{
					Name:   Capitalize(d.name),
					Style:  d.style,
					Score:  s.score(d.base),
					Source: SourceLocal,
				})
			}
		}
	}
	all = append(all, crossBlends(s, roots)...)

	return rank(rng, all, req.Randomness, g.limit)
}

// Rank runs candidates from any producer through the quality gate, dedup
// and ordering used for generated names.
func (g *Generator) Rank(candidates []Candidate, randomness Randomness) []Candidate {
	if randomness == "" {
		randomness = RandomnessMedium
	}
	return rank(g.newRand(0), candidates, randomness, g.limit)
}

func (g *Generator) newRand(salt uint64) *rand.Rand {
	if g.seeded {
		seed := g.seed ^ salt*seedStream
		return rand.New(rand.NewPCG(seed, seed^seedStream))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// GenerateBrandNames runs the default generator. Empty style and randomness
// default to auto and medium.
func GenerateBrandNames(keyword string, style Style, randomness Randomness, availabilityMode bool) []Candidate {
	return defaultGenerator.Generate(Request{
		Keyword:          keyword,
		Style:            style,
		Randomness:       randomness,
		AvailabilityMode: availabilityMode,
	})
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
