package naming

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// minRootLength is the shortest token kept as a root.
	minRootLength = 3
	// maxRoots caps how many roots feed the strategies.
	maxRoots = 3
	// fallbackRoot is used when the keyword has no usable letters at all.
	fallbackRoot = "brand"
)

// ExtractKeywords derives up to three root words from free text using the
// built-in stop words. It always returns at least one root.
func ExtractKeywords(raw string) []string {
	return defaultVocabulary.ExtractKeywords(raw)
}

// ExtractKeywords derives up to three root words from free text.
// Tokens are lowercased, folded to ASCII and reduced to a-z; short tokens and
// stop words are dropped and the survivors are ordered shortest first.
func (v *Vocabulary) ExtractKeywords(raw string) []string {
	fields := strings.Fields(foldKeyword(raw))

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := lettersOnly(f)
		if len(w) < minRootLength || slices.Contains(v.StopWords, w) {
			continue
		}
		words = append(words, w)
	}

	if len(words) == 0 {
		if len(fields) > 0 {
			if first := lettersOnly(fields[0]); first != "" {
				return []string{first}
			}
		}
		return []string{fallbackRoot}
	}

	slices.SortStableFunc(words, func(a, b string) int {
		return len(a) - len(b)
	})
	if len(words) > maxRoots {
		words = words[:maxRoots]
	}
	return words
}

// foldKeyword lowercases s and strips combining marks so "Café" becomes "cafe".
func foldKeyword(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// lettersOnly keeps the ASCII letters a-z of s.
func lettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
