package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrNoKeywords is returned for a batch without keywords.
var ErrNoKeywords = errors.New("no keywords to process")

// BatchItem is the outcome for one keyword. Exactly one of Result and Error
// is set.
type BatchItem struct {
	Keyword string            `json:"keyword"`
	Result  *GenerationResult `json:"result,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// BatchResult holds per-keyword outcomes in input order.
type BatchResult struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// ReadKeywords reads one keyword per line, skipping blank lines and lines
// starting with '#'.
func ReadKeywords(r io.Reader) ([]string, error) {
	var keywords []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read keywords: %w", err)
	}
	return keywords, nil
}

// RunBatch generates names for every keyword with the job manager's
// concurrency. Opts supplies every field except Keyword. Per-keyword
// failures are collected in the result. Only cancellation fails the batch.
func (s *GenerationService) RunBatch(ctx context.Context, jobs *JobManager, job *Job, keywords []string, opts GenerateOptions) (*BatchResult, error) {
	concurrency := 4
	if jobs != nil {
		concurrency = jobs.Concurrency()
	}
	s.logger.Info("starting batch", "keywords", len(keywords), "concurrency", concurrency)

	items := make([]BatchItem, len(keywords))
	var (
		processed atomic.Int32
		failed    atomic.Int32
	)

	work := make(chan int, len(keywords))
	var wg sync.WaitGroup

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range work {
				if ctx.Err() != nil {
					return
				}

				run := opts
				run.Keyword = keywords[idx]
				res, err := s.Generate(ctx, run)

				item := BatchItem{Keyword: keywords[idx], Result: res}
				if err != nil {
					item.Error = err.Error()
					failed.Add(1)
					s.logger.Debug("batch keyword failed", "worker", workerID, "keyword", keywords[idx], "error", err)
				}
				items[idx] = item

				done := int(processed.Add(1))
				if jobs != nil && job != nil {
					jobs.UpdateProgress(job, done)
				}
			}
		}(i)
	}

	for i := range keywords {
		work <- i
	}
	close(work)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &BatchResult{
		Items:     items,
		Succeeded: len(keywords) - int(failed.Load()),
		Failed:    int(failed.Load()),
	}
	s.logger.Info("batch complete", "succeeded", result.Succeeded, "failed", result.Failed)
	return result, nil
}

// RunBatchAsync starts a batch job in the background and returns it
// immediately. The job outlives ctx only if ctx is never canceled.
func (s *GenerationService) RunBatchAsync(ctx context.Context, jobs *JobManager, name string, keywords []string, opts GenerateOptions) (*Job, error) {
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}

	job := jobs.CreateJob(name, len(keywords))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("batch goroutine panicked", "job_id", job.ID, "panic", r)
				jobs.Fail(job, fmt.Errorf("internal panic: %v", r))
			}
		}()

		jobs.SetRunning(job)
		result, err := s.RunBatch(ctx, jobs, job, keywords, opts)
		if err != nil {
			jobs.Fail(job, err)
			return
		}
		jobs.Complete(job, result)
	}()

	return job, nil
}
