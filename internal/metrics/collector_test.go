package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordTiming(t *testing.T) {
	c := NewCollector()
	c.RecordTiming(OpLocalGenerate, 10*time.Millisecond)
	c.RecordTiming(OpLocalGenerate, 30*time.Millisecond)
	c.RecordError(OpLocalGenerate, 20*time.Millisecond)

	snap := c.Snapshot()
	require.NotNil(t, snap.LocalGenerate)
	assert.Equal(t, int64(3), snap.LocalGenerate.Count)
	assert.Equal(t, int64(1), snap.LocalGenerate.Errors)
	assert.Equal(t, int64(60), snap.LocalGenerate.TotalTimeMs)
	assert.Equal(t, 20.0, snap.LocalGenerate.AvgTimeMs)
	assert.Equal(t, int64(10), snap.LocalGenerate.MinTimeMs)
	assert.Equal(t, int64(30), snap.LocalGenerate.MaxTimeMs)

	assert.Nil(t, snap.RemoteGenerate)
	assert.Nil(t, snap.Scores)
}

func TestCollector_RecordLLMUsage(t *testing.T) {
	c := NewCollector()
	c.RecordLLMUsage(OpRemoteGenerate, time.Second, 120, 800)
	c.RecordLLMUsage(OpRemoteGenerate, time.Second, 80, 200)

	snap := c.Snapshot().RemoteGenerate
	require.NotNil(t, snap)
	require.NotNil(t, snap.TotalInputTokens)
	assert.Equal(t, int64(200), *snap.TotalInputTokens)
	assert.Equal(t, int64(1000), *snap.TotalOutputTokens)
}

func TestCollector_Scores(t *testing.T) {
	c := NewCollector()
	c.RecordScores([]float64{90, 80, 100, 70})

	s := c.Snapshot().Scores
	require.NotNil(t, s)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 85.0, s.Mean)
	assert.Equal(t, 85.0, s.Median)
	assert.Equal(t, 70.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
	assert.InDelta(t, 11.18, s.StdDev, 0.01)
}

func TestCollector_ScoreWindow(t *testing.T) {
	c := NewCollector()
	for range maxScoreSamples {
		c.RecordScores([]float64{0})
	}
	c.RecordScores([]float64{100, 100})

	s := c.Snapshot().Scores
	require.NotNil(t, s)
	assert.Equal(t, maxScoreSamples, s.Count)
	assert.Equal(t, 100.0, s.Max)
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordTiming(OpDBLog, time.Millisecond)
		c.RecordError(OpDBLog, time.Millisecond)
		c.RecordLLMUsage(OpRemoteGenerate, time.Millisecond, 1, 1)
		c.RecordScores([]float64{1})
	})
}

func TestCollector_Concurrent(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				c.RecordTiming(OpAvailability, time.Millisecond)
				c.RecordScores([]float64{50})
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, int64(1000), snap.Availability.Count)
	assert.Equal(t, 1000, snap.Scores.Count)
}

func TestSummarizeScores_Empty(t *testing.T) {
	assert.Nil(t, SummarizeScores(nil))
}
