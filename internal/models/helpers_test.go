package models

import (
	"testing"

	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "flowio", "flowio"},
		{"uppercase", "Kloud", "kloud"},
		{"hyphen kept", "Snap-Flow", "snap-flow"},
		{"digits kept", "Cloud9", "cloud9"},
		{"spaces and punctuation dropped", "Nova Labs!", "novalabs"},
		{"unicode dropped", "Écho", "cho"},
		{"empty", "", ""},
		{"only symbols", "!@#", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NameKey(tt.in))
		})
	}
}

func TestNormalizeKeyword(t *testing.T) {
	assert.Equal(t, "tech startup", NormalizeKeyword("  Tech Startup "))
}

func TestRecordIDString(t *testing.T) {
	id, err := RecordIDString(surrealmodels.NewRecordID("generation_log", "abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = RecordIDString(surrealmodels.NewRecordID("generation_log", 42))
	assert.Error(t, err)
}
