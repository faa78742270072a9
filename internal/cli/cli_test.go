package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raphaelgruber/namesmith/internal/availability"
	"github.com/raphaelgruber/namesmith/internal/metrics"
	"github.com/raphaelgruber/namesmith/internal/naming"
	"github.com/raphaelgruber/namesmith/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NAMESMITH_LOG_FILE", os.DevNull)
	t.Setenv("NAMESMITH_LLM_PROVIDER", "none")
	t.Setenv("NAMESMITH_HISTORY", "false")
	t.Setenv("NAMESMITH_VOCABULARY_FILE", "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute(context.Background())
	return out.String(), err
}

func TestGenerateFlags_Options(t *testing.T) {
	tests := []struct {
		name    string
		flags   generateFlags
		wantErr string
		check   func(t *testing.T, opts service.GenerateOptions)
	}{
		{
			name:  "defaults",
			flags: generateFlags{style: "auto", randomness: "medium", limit: 20},
			check: func(t *testing.T, opts service.GenerateOptions) {
				assert.Equal(t, naming.StyleAuto, opts.Style)
				assert.Equal(t, naming.RandomnessMedium, opts.Randomness)
				assert.Equal(t, "cloud", opts.Keyword)
			},
		},
		{
			name: "case insensitive with hints",
			flags: generateFlags{
				style: "Real_Word", randomness: "HIGH", limit: 5,
				industry: "fintech", vibe: "bold", country: "DE",
				availability: true, local: true, checkDomains: true, tlds: []string{"com", "io"},
			},
			check: func(t *testing.T, opts service.GenerateOptions) {
				assert.Equal(t, naming.StyleRealWord, opts.Style)
				assert.Equal(t, naming.RandomnessHigh, opts.Randomness)
				assert.Equal(t, "fintech", opts.Industry)
				assert.Equal(t, "bold", opts.Vibe)
				assert.Equal(t, "DE", opts.Country)
				assert.True(t, opts.AvailabilityMode)
				assert.True(t, opts.LocalOnly)
				assert.True(t, opts.CheckDomains)
				assert.Equal(t, []string{"com", "io"}, opts.TLDs)
			},
		},
		{name: "unknown style", flags: generateFlags{style: "fancy", randomness: "low", limit: 20}, wantErr: "--style"},
		{name: "unknown randomness", flags: generateFlags{style: "short", randomness: "wild", limit: 20}, wantErr: "--randomness"},
		{name: "non-positive limit", flags: generateFlags{style: "short", randomness: "low"}, wantErr: "--limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.flags.options("cloud")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestGenerateFlags_StyleErrorWrapsSentinel(t *testing.T) {
	_, err := (&generateFlags{style: "fancy", randomness: "low", limit: 1}).options("x")
	assert.ErrorIs(t, err, naming.ErrInvalidStyle)
	assert.Contains(t, err.Error(), "real_word")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	printSuggestions(&buf, plainTheme, []service.Suggestion{
		{Candidate: naming.Candidate{Name: "Clovana", Style: naming.StyleBrandable, Score: 91.6, Source: naming.SourceLocal}},
		{
			Candidate: naming.Candidate{Name: "Kloud", Style: naming.StyleAlternate, Score: 80, Source: naming.SourceAI},
			Availability: &availability.Result{Name: "Kloud", Domains: []availability.DomainResult{
				{TLD: "com", Domain: "kloud.com"},
				{TLD: "io", Domain: "kloud.io", Available: true},
			}},
		},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  1. Clovana  brandable   92  local", lines[0])
	assert.Contains(t, lines[1], "  2. Kloud    alternate   80  ai")
	assert.Contains(t, lines[1], "kloud.com ✗ kloud.io ✓")
}

func TestPrintBatch(t *testing.T) {
	res := &service.BatchResult{
		Items: []service.BatchItem{
			{Keyword: "coffee", Result: &service.GenerationResult{
				Keyword: "coffee",
				Source:  "local",
				Roots:   []string{"coffee"},
				Suggestions: []service.Suggestion{
					{Candidate: naming.Candidate{Name: "Brewly", Style: naming.StyleBrandable, Score: 90, Source: naming.SourceLocal}},
					{Candidate: naming.Candidate{Name: "Beanora", Style: naming.StyleBrandable, Score: 85, Source: naming.SourceLocal}},
				},
			}},
			{Keyword: "  ", Error: "keyword is empty"},
		},
		Succeeded: 1,
		Failed:    1,
	}

	var buf bytes.Buffer
	printBatch(&buf, plainTheme, res, 1)
	out := buf.String()

	assert.Contains(t, out, "coffee (source: local, roots: coffee)")
	assert.Contains(t, out, "Brewly")
	assert.NotContains(t, out, "Beanora")
	assert.Contains(t, out, "keyword is empty")
	assert.Contains(t, out, "1 succeeded, 1 failed")
	assert.Len(t, res.Items[0].Result.Suggestions, 2, "printing must not truncate the result")
}

func TestPrintStats(t *testing.T) {
	c := metrics.NewCollector()
	c.RecordScores([]float64{80, 90, 100})

	var buf bytes.Buffer
	printStats(&buf, plainTheme, c.Snapshot())
	assert.Contains(t, buf.String(), "Scores (3 names)")
	assert.Contains(t, buf.String(), "mean 90.0")
	assert.NotContains(t, buf.String(), "Remote generate")
}

func TestProgressModel(t *testing.T) {
	jobs := service.NewJobManager(1)
	job := jobs.CreateJob("keywords.txt", 4)
	jobs.UpdateProgress(job, 2)

	m := newProgressModel(job)
	assert.Contains(t, m.renderContent(), "2/4 keywords")
	assert.Contains(t, m.renderContent(), "[running]")

	jobs.Complete(job, &service.BatchResult{Succeeded: 4})
	msg := m.fetchJob()()
	next, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
	done := next.(progressModel)
	assert.True(t, done.done)
	assert.NoError(t, done.err)
	assert.Contains(t, done.renderContent(), "Completed")

	failing := jobs.CreateJob("other.txt", 1)
	jobs.Fail(failing, assert.AnError)
	next, _ = newProgressModel(failing).Update(jobUpdateMsg{job: ptr(failing.Snapshot())})
	assert.EqualError(t, next.(progressModel).err, assert.AnError.Error())
}

func ptr[T any](v T) *T { return &v }

func TestReadKeywordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.txt")
	require.NoError(t, os.WriteFile(path, []byte("# brands\ncoffee\n\n tea \n"), 0o644))

	got, err := readKeywordFile(nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"coffee", "tea"}, got)

	got, err = readKeywordFile(strings.NewReader("bakery\n"), "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"bakery"}, got)

	_, err = readKeywordFile(nil, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "cloud s...", truncate("cloud storage for teams", 10))
}

func TestRootsCommand(t *testing.T) {
	out, err := executeCommand(t, "roots", "privacy", "focused", "mental", "health", "app")
	require.NoError(t, err)
	assert.Equal(t, "mental\nhealth\nprivacy\n", out)
}

func TestCheckCommand(t *testing.T) {
	out, err := executeCommand(t, "check", "Clovana", "cld")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Clovana")
	assert.Contains(t, lines[0], "pronounceable")
	assert.Contains(t, lines[1], "rejected")
}

func TestGenerateCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "generate", "tech", "startup", "--local", "--seed", "3", "--limit", "8", "--json")
	require.NoError(t, err)

	var res service.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "tech startup", res.Keyword)
	assert.Equal(t, "local", res.Source)
	assert.Equal(t, []string{"tech", "startup"}, res.Roots)
	assert.NotEmpty(t, res.Suggestions)
	assert.LessOrEqual(t, len(res.Suggestions), 8)
	assert.Empty(t, res.LogID)
}

func TestGenerateCommand_ZeroSeedReplays(t *testing.T) {
	run := func() []string {
		out, err := executeCommand(t, "generate", "coffee", "--local", "--seed", "0", "--json")
		require.NoError(t, err)
		var res service.GenerationResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		return res.Names()
	}
	first := run()
	require.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestGenerateCommand_InvalidStyle(t *testing.T) {
	_, err := executeCommand(t, "generate", "coffee", "--style", "fancy", "--json=false")
	require.Error(t, err)
	assert.ErrorIs(t, err, naming.ErrInvalidStyle)
}

func TestBatchCommand_NoKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("# nothing\n\n"), 0o644))

	_, err := executeCommand(t, "batch", path)
	assert.ErrorIs(t, err, service.ErrNoKeywords)
}

func TestBatchCommand_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.txt")
	require.NoError(t, os.WriteFile(path, []byte("coffee\ntech startup\n"), 0o644))

	out, err := executeCommand(t, "batch", path, "--local", "--seed", "5", "--json", "--concurrency", "2")
	require.NoError(t, err)

	var res service.BatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Items, 2)
	assert.Equal(t, "coffee", res.Items[0].Keyword)
	assert.Equal(t, "tech startup", res.Items[1].Keyword)
	assert.Equal(t, 2, res.Succeeded)
}

func TestHistoryCommand_Disabled(t *testing.T) {
	_, err := executeCommand(t, "history")
	assert.ErrorIs(t, err, errHistoryDisabled)
}

func TestEnvFileFlag(t *testing.T) {
	t.Cleanup(func() { envFiles = nil })
	t.Setenv("NAMESMITH_AVAILABILITY_TIMEOUT", "")
	require.NoError(t, os.Unsetenv("NAMESMITH_AVAILABILITY_TIMEOUT"))

	path := filepath.Join(t.TempDir(), "namesmith.env")
	require.NoError(t, os.WriteFile(path, []byte("NAMESMITH_AVAILABILITY_TIMEOUT=7s\n"), 0o644))

	_, err := executeCommand(t, "roots", "cloud", "--env-file", path)
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.AvailabilityTimeout)

	envFiles = nil
	_, err = executeCommand(t, "roots", "cloud", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env file")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "namesmith "+Version+"\n", out)
}
