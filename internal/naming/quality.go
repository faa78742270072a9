package naming

import "strings"

const (
	minNameLength = 3
	maxNameLength = 14

	maxConsonantRun = 3
	maxVowelRun     = 2
	maxRepeatRun    = 2
)

// PassesQualityCheck reports whether name looks like a pronounceable brand.
// It rejects names outside 3..14 characters, names without a vowel-like
// letter, and names with 4+ consonants, 3+ vowels or 3+ identical characters
// in a row. The comparison is case-insensitive.
//
// 'y' counts as both a vowel and a consonant.
func PassesQualityCheck(name string) bool {
	letters := []rune(strings.ToLower(name))
	if len(letters) < minNameLength || len(letters) > maxNameLength {
		return false
	}

	hasVowel := false
	consonants, vowels, repeats := 0, 0, 0
	for i, r := range letters {
		if isVowelLike(r) {
			hasVowel = true
			vowels++
		} else {
			vowels = 0
		}
		if isConsonant(r) {
			consonants++
		} else {
			consonants = 0
		}
		if i > 0 && r == letters[i-1] {
			repeats++
		} else {
			repeats = 1
		}

		if consonants > maxConsonantRun || vowels > maxVowelRun || repeats > maxRepeatRun {
			return false
		}
	}
	return hasVowel
}

func isVowelLike(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isConsonant(r rune) bool {
	return r >= 'a' && r <= 'z' && (r == 'y' || !isVowelLike(r))
}
