package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocabulary_Overlay(t *testing.T) {
	v, err := ParseVocabulary([]byte(`
compound_suffixes: [hub, lab]
phonetic_swaps:
  - from: k
    to: c
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"hub", "lab"}, v.CompoundSuffixes)
	assert.Equal(t, []PhoneticSwap{{From: "k", To: "c"}}, v.PhoneticSwaps)
	assert.Equal(t, DefaultVocabulary().TechRoots, v.TechRoots, "missing tables keep defaults")
}

func TestParseVocabulary_Invalid(t *testing.T) {
	_, err := ParseVocabulary([]byte("coin_vowels: []\n"))
	assert.ErrorContains(t, err, "coin_vowels")

	_, err = ParseVocabulary([]byte("phonetic_swaps: [{to: z}]\n"))
	assert.Error(t, err)

	_, err = ParseVocabulary([]byte("compound_suffixes: {not: a list}\n"))
	assert.ErrorContains(t, err, "parse vocabulary")
}

func TestLoadVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("short_markers: [o]\n"), 0o644))

	v, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"o"}, v.ShortMarkers)

	_, err = LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read vocabulary")
}

func TestGenerate_CustomVocabulary(t *testing.T) {
	v := DefaultVocabulary()
	v.ShortMarkers = []string{"o"}

	got := New(WithSeed(1), WithVocabulary(v)).Generate(Request{Keyword: "flow", Style: StyleShort, Randomness: RandomnessLow})
	require.Len(t, got, 1)
	assert.Equal(t, "Flowo", got[0].Name)
}

func TestDefaultVocabulary_IsCopy(t *testing.T) {
	v := DefaultVocabulary()
	v.StopWords[0] = "changed"
	assert.Equal(t, "a", DefaultVocabulary().StopWords[0])
	assert.NoError(t, DefaultVocabulary().Validate())
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleAuto, false},
		{"auto", StyleAuto, false},
		{" Brandable ", StyleBrandable, false},
		{"real_word", StyleRealWord, false},
		{"SHORT", StyleShort, false},
		{"coined", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRandomness(t *testing.T) {
	r, err := ParseRandomness("")
	require.NoError(t, err)
	assert.Equal(t, RandomnessMedium, r)

	r, err = ParseRandomness("HIGH")
	require.NoError(t, err)
	assert.Equal(t, RandomnessHigh, r)
	assert.Equal(t, 30.0, r.VarianceCeiling())
	assert.Equal(t, 5.0, RandomnessLow.VarianceCeiling())
	assert.Equal(t, 15.0, RandomnessMedium.VarianceCeiling())

	_, err = ParseRandomness("extreme")
	assert.ErrorIs(t, err, ErrInvalidRandomness)
}

func TestStyleConcrete(t *testing.T) {
	assert.False(t, StyleAuto.Concrete())
	assert.False(t, Style("other").Concrete())
	for _, s := range Styles[1:] {
		assert.True(t, s.Concrete(), s)
	}
}
