package naming

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Base scores per construction.
const (
	scoreCoined          = 95
	scoreBlended         = 93
	scoreBrandableSuffix = 92
	scoreVowelless       = 90
	scoreCrossBlend      = 90
	scorePhoneticSwap    = 88
	scoreLatinPrefix     = 86
	scoreCompoundSuffix  = 85
	scoreAlternateZ      = 85
	scoreShort           = 85
	scoreAlternateX      = 84
	scoreCompoundPrefix  = 80
	scoreRealWord        = 75
	scoreStandaloneWord  = 60

	crossBlendVariance = 10
)

// draft is a raw strategy output before capitalization and scoring.
type draft struct {
	name  string
	style Style
	base  float64
}

// session carries per-call state shared by the strategies.
type session struct {
	rng    *rand.Rand
	vocab  *Vocabulary
	unique bool
	spread float64
}

// pick returns a random entry of list, or "" when it is empty.
func (s *session) pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[s.rng.IntN(len(list))]
}

// sample returns up to n distinct entries of list in random order.
func (s *session) sample(list []string, n int) []string {
	n = min(n, len(list))
	out := make([]string, 0, n)
	for _, i := range s.rng.Perm(len(list))[:n] {
		out = append(out, list[i])
	}
	return out
}

// score adds the randomness bonus to base and clamps into [0,100].
func (s *session) score(base float64) float64 {
	return clampScore(base + s.rng.Float64()*s.spread)
}

// strategy is one independent way of turning a root into raw names.
type strategy struct {
	name   string
	styles []Style
	// forced strategies also run when the request prioritizes unique names.
	forced bool
	run    func(s *session, root string) []draft
}

func (st strategy) enabled(style Style, unique bool) bool {
	if !style.Concrete() || slices.Contains(st.styles, style) {
		return true
	}
	return st.forced && unique
}

// strategies run in this order; dedup keeps the first occurrence of a name.
var strategies = []strategy{
	{name: "coined", styles: []Style{StyleBrandable}, forced: true, run: coinedWords},
	{name: "blended", styles: []Style{StyleBrandable}, forced: true, run: blendedWords},
	{name: "compound", styles: []Style{StyleCompound}, run: compoundWords},
	{name: "alternate", styles: []Style{StyleAlternate}, run: alternateSpellings},
	{name: "brandable", styles: []Style{StyleBrandable}, run: brandableSuffixes},
	{name: "real_word", styles: []Style{StyleRealWord}, run: realWords},
	{name: "short", styles: []Style{StyleShort}, run: shortForms},
}

// coinedWords mixes a three-letter stem with syllables and fixed endings.
func coinedWords(s *session, root string) []draft {
	count := 6
	if s.unique {
		count = 10
	}
	stem := head(root, 3)
	out := make([]draft, 0, count)
	for range count / 2 {
		name := stem + s.pick(s.vocab.CoinVowels) + s.pick(s.vocab.CoinConsonants) + s.pick(s.vocab.CoinVowels)
		out = append(out, draft{name: name, style: StyleBrandable, base: scoreCoined})
	}
	for range count / 2 {
		out = append(out, draft{name: stem + s.pick(s.vocab.CoinEndings), style: StyleBrandable, base: scoreCoined})
	}
	return out
}

// blendedWords fuses the root with the head of an unrelated tech word.
func blendedWords(s *session, root string) []draft {
	count := 3
	if s.unique {
		count = 5
	}
	key := head(root, 4)
	out := make([]draft, 0, count)
	for range count {
		part := head(s.pick(s.vocab.BlendWords), 4)
		name := part + key
		if s.rng.Float64() > 0.5 {
			name = key + part
		}
		out = append(out, draft{name: name, style: StyleBrandable, base: scoreBlended})
	}
	return out
}

func compoundWords(s *session, root string) []draft {
	out := make([]draft, 0, 10)
	for _, suffix := range s.sample(s.vocab.CompoundSuffixes, 5) {
		out = append(out, draft{name: root + suffix, style: StyleCompound, base: scoreCompoundSuffix})
	}
	for _, prefix := range s.sample(s.vocab.CompoundPrefixes, 5) {
		out = append(out, draft{name: prefix + root, style: StyleCompound, base: scoreCompoundPrefix})
	}
	return out
}

// alternateSpellings drops vowels, applies one phonetic swap and adds z/x endings.
func alternateSpellings(s *session, root string) []draft {
	out := []draft{{name: stripVowels(root), style: StyleAlternate, base: scoreVowelless}}

	if alt := s.vocab.swapPhonetics(root); alt != root {
		out = append(out, draft{name: alt, style: StyleAlternate, base: scorePhoneticSwap})
	}

	return append(out,
		draft{name: root + "z", style: StyleAlternate, base: scoreAlternateZ},
		draft{name: root + "x", style: StyleAlternate, base: scoreAlternateX},
	)
}

func brandableSuffixes(s *session, root string) []draft {
	out := make([]draft, 0, 9)
	for _, suffix := range s.sample(s.vocab.BrandableSuffixes, 6) {
		out = append(out, draft{name: root + suffix, style: StyleBrandable, base: scoreBrandableSuffix})
	}
	for _, prefix := range s.sample(s.vocab.LatinPrefixes, 3) {
		out = append(out, draft{name: Capitalize(prefix) + root, style: StyleBrandable, base: scoreLatinPrefix})
	}
	return out
}

// realWords attaches metaphorical tech words to the root. About a third of
// the time the word is emitted on its own at a lower score.
func realWords(s *session, root string) []draft {
	out := make([]draft, 0, 5)
	for _, word := range s.sample(s.vocab.TechRoots, 5) {
		switch r := s.rng.Float64(); {
		case r > 0.6:
			out = append(out, draft{name: root + word, style: StyleRealWord, base: scoreRealWord})
		case r > 0.3:
			out = append(out, draft{name: word + root, style: StyleRealWord, base: scoreRealWord})
		default:
			out = append(out, draft{name: word, style: StyleRealWord, base: scoreStandaloneWord})
		}
	}
	return out
}

func shortForms(s *session, root string) []draft {
	stem := head(root, 4)
	out := make([]draft, 0, 3)
	for _, marker := range s.sample(s.vocab.ShortMarkers, 3) {
		out = append(out, draft{name: stem + marker, style: StyleShort, base: scoreShort})
	}
	return out
}

// crossBlends splices every pair of roots in both orders.
func crossBlends(s *session, roots []string) []Candidate {
	if len(roots) < 2 {
		return nil
	}
	var out []Candidate
	for i := range roots {
		for j := i + 1; j < len(roots); j++ {
			a, b := head(roots[i], 3), head(roots[j], 4)
			for _, name := range []string{a + b, b + a} {
				out = append(out, Candidate{
					Name:   Capitalize(name),
					Style:  StyleBrandable,
					Score:  clampScore(scoreCrossBlend + s.rng.Float64()*crossBlendVariance),
					Source: SourceLocal,
				})
			}
		}
	}
	return out
}

// swapPhonetics applies the first swap whose pattern occurs in root.
// Without a match it appends "z".
func (v *Vocabulary) swapPhonetics(root string) string {
	for _, swap := range v.PhoneticSwaps {
		if swap.From != "" && strings.Contains(root, swap.From) {
			return strings.ReplaceAll(root, swap.From, swap.To)
		}
	}
	return root + "z"
}

func stripVowels(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			return -1
		}
		return r
	}, s)
}

// head returns at most the first n bytes of s.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func clampScore(v float64) float64 {
	return max(0, min(100, v))
}
