package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/raphaelgruber/namesmith/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeywords(t *testing.T) {
	input := `# launch list
cloud

  flow state  
# skipped
moon
`
	got, err := ReadKeywords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"cloud", "flow state", "moon"}, got)

	got, err = ReadKeywords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestReadKeywords_Error(t *testing.T) {
	_, err := ReadKeywords(failingReader{})
	assert.ErrorContains(t, err, "read keywords")
}

func TestRunBatch(t *testing.T) {
	svc := newTestService(GenerationDeps{})
	jobs := NewJobManager(2)
	job := jobs.CreateJob("launch", 3)

	got, err := svc.RunBatch(context.Background(), jobs, job, []string{"cloud", " ", "flow"}, GenerateOptions{})
	require.NoError(t, err)

	require.Len(t, got.Items, 3)
	assert.Equal(t, 2, got.Succeeded)
	assert.Equal(t, 1, got.Failed)

	assert.Equal(t, "cloud", got.Items[0].Keyword)
	require.NotNil(t, got.Items[0].Result)
	assert.Equal(t, models.SourceLocal, got.Items[0].Result.Source)

	assert.Nil(t, got.Items[1].Result)
	assert.Equal(t, ErrEmptyKeyword.Error(), got.Items[1].Error)

	require.NotNil(t, got.Items[2].Result)
	assert.Equal(t, "flow", got.Items[2].Result.Keyword)

	snap := job.Snapshot()
	assert.Equal(t, 3, snap.Progress)
	assert.Equal(t, JobStatusRunning, snap.Status)
}

func TestRunBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestService(GenerationDeps{})
	_, err := svc.RunBatch(ctx, nil, nil, []string{"cloud", "flow"}, GenerateOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatchAsync(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(GenerationDeps{Store: store})
	jobs := NewJobManager(3)

	job, err := svc.RunBatchAsync(context.Background(), jobs, "keywords.txt", []string{"cloud", "flow", "moon", "river"}, GenerateOptions{})
	require.NoError(t, err)
	assert.Same(t, job, jobs.GetJob(job.ID))

	require.Eventually(t, func() bool {
		snap := job.Snapshot()
		return snap.Done()
	}, 5*time.Second, 10*time.Millisecond)

	snap := job.Snapshot()
	assert.Equal(t, JobStatusCompleted, snap.Status)
	assert.Equal(t, 4, snap.Progress)
	require.NotNil(t, snap.Result)
	assert.Equal(t, 4, snap.Result.Succeeded)
	assert.NotNil(t, snap.CompletedAt)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.logs, 4)
}

func TestRunBatchAsync_NoKeywords(t *testing.T) {
	svc := newTestService(GenerationDeps{})
	_, err := svc.RunBatchAsync(context.Background(), NewJobManager(1), "empty", nil, GenerateOptions{})
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestRunBatch_UsesServiceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := newTestService(GenerationDeps{Logger: logger})
	jobs := NewJobManager(1)
	job := jobs.CreateJob("launch", 2)

	_, err := svc.RunBatch(context.Background(), jobs, job, []string{"cloud", " "}, GenerateOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "starting batch")
	assert.Contains(t, out, "batch keyword failed")
	assert.Contains(t, out, "batch complete")
}
