package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphaelgruber/namesmith/internal/config"
	"github.com/raphaelgruber/namesmith/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNew_LocalOnly(t *testing.T) {
	cfg := config.Config{LLMProvider: config.ProviderNone, TLDs: config.DefaultTLDs}

	a, err := New(context.Background(), cfg, quietLogger(), Options{Seed: 7, Limit: 5})
	require.NoError(t, err)
	defer a.Close(context.Background())

	assert.Nil(t, a.Remote)
	assert.Nil(t, a.DB)
	assert.False(t, a.HasHistory())
	assert.NotNil(t, a.Checker)
	assert.Equal(t, 5, a.Generator.Limit())
	assert.False(t, a.Generation.HasRemote())
	assert.True(t, a.Generation.HasChecker())

	deps := a.ToolDeps()
	assert.Nil(t, deps.History, "disabled history must be a nil interface")
	assert.NotNil(t, deps.Checker)
	assert.Same(t, a.Collector, deps.Collector)
}

func TestNew_BrokenProviderFallsBack(t *testing.T) {
	cfg := config.Config{LLMProvider: config.ProviderOpenAI}

	a, err := New(context.Background(), cfg, quietLogger(), Options{})
	require.NoError(t, err)
	assert.Nil(t, a.Remote)
	assert.False(t, a.Generation.HasRemote())
}

func TestNew_LocalOnlySkipsRemote(t *testing.T) {
	cfg := config.Config{LLMProvider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test", LLMModel: "gpt-4o-mini"}

	a, err := New(context.Background(), cfg, quietLogger(), Options{LocalOnly: true})
	require.NoError(t, err)
	assert.Nil(t, a.Remote)
}

func TestNew_VocabularyFile(t *testing.T) {
	_, err := New(context.Background(), config.Config{VocabularyFile: filepath.Join(t.TempDir(), "missing.yaml")}, quietLogger(), Options{})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{not yaml"), 0o644))
	_, err = New(context.Background(), config.Config{VocabularyFile: path}, quietLogger(), Options{})
	assert.Error(t, err)
}

func TestNew_SeedReplays(t *testing.T) {
	build := func() []string {
		a, err := New(context.Background(), config.Config{}, quietLogger(), Options{Seed: 42})
		require.NoError(t, err)
		res, err := a.Generation.Generate(context.Background(), service.GenerateOptions{Keyword: "cloud storage"})
		require.NoError(t, err)
		return res.Names()
	}
	assert.Equal(t, build(), build())
}

func TestNew_ZeroSeedReplaysWhenSeeded(t *testing.T) {
	build := func() []string {
		a, err := New(context.Background(), config.Config{}, quietLogger(), Options{Seed: 0, Seeded: true})
		require.NoError(t, err)
		res, err := a.Generation.Generate(context.Background(), service.GenerateOptions{Keyword: "cloud storage"})
		require.NoError(t, err)
		return res.Names()
	}
	assert.Equal(t, build(), build())
}
