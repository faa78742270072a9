package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"NAMESMITH_LLM_PROVIDER", "NAMESMITH_LLM_MODEL", "NAMESMITH_TLDS",
		"NAMESMITH_MIN_AI_RESULTS", "NAMESMITH_HISTORY", "NAMESMITH_LOG_LEVEL",
		"NAMESMITH_AVAILABILITY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := fromEnv()
	assert.Equal(t, ProviderNone, cfg.LLMProvider)
	assert.False(t, cfg.RemoteEnabled())
	assert.Empty(t, cfg.LLMModel)
	assert.Equal(t, DefaultTLDs, cfg.TLDs)
	assert.Equal(t, 10, cfg.MinAIResults)
	assert.Equal(t, 3*time.Second, cfg.AvailabilityTimeout)
	assert.False(t, cfg.HistoryEnabled)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("NAMESMITH_LLM_PROVIDER", "Anthropic")
	t.Setenv("NAMESMITH_TLDS", " com, dev ,,")
	t.Setenv("NAMESMITH_MIN_AI_RESULTS", "5")
	t.Setenv("NAMESMITH_HISTORY", "true")
	t.Setenv("NAMESMITH_AVAILABILITY_TIMEOUT", "500ms")
	t.Setenv("NAMESMITH_LOG_LEVEL", "debug")

	cfg := fromEnv()
	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
	assert.True(t, cfg.RemoteEnabled())
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.LLMModel)
	assert.Equal(t, []string{"com", "dev"}, cfg.TLDs)
	assert.Equal(t, 5, cfg.MinAIResults)
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, 500*time.Millisecond, cfg.AvailabilityTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromEnv_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("NAMESMITH_MIN_AI_RESULTS", "-3")
	t.Setenv("NAMESMITH_AVAILABILITY_TIMEOUT", "soon")

	cfg := fromEnv()
	assert.Equal(t, 10, cfg.MinAIResults)
	assert.Equal(t, 3*time.Second, cfg.AvailabilityTimeout)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("NAMESMITH_LLM_MODEL", "")
	// godotenv does not override variables that are already set, so clear
	// the one under test through the process environment.
	require.NoError(t, os.Unsetenv("NAMESMITH_LLM_MODEL"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("NAMESMITH_LLM_MODEL=custom-model\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-model", cfg.LLMModel)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}

func TestSetupLogger(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "namesmith.log")

	logger, cleanup := setupLogger(&stderr, path, slog.LevelInfo)
	logger.Info("generated", "keyword", "flow", "count", 20)
	logger.Debug("hidden")
	require.NoError(t, cleanup())

	assert.Contains(t, stderr.String(), "keyword=flow")
	assert.NotContains(t, stderr.String(), "hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"keyword":"flow"`)
}

func TestSetupLogger_UnwritableFile(t *testing.T) {
	var stderr bytes.Buffer
	logger, cleanup := setupLogger(&stderr, filepath.Join(t.TempDir(), "missing", "x.log"), slog.LevelInfo)
	require.NotNil(t, logger)
	assert.NoError(t, cleanup())
	assert.Contains(t, stderr.String(), "failed to open log file")
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)
	logger.Info("hello", "k", "v")

	assert.Contains(t, stderr.String(), "k=v")
	assert.Contains(t, file.String(), `"k":"v"`)
}
