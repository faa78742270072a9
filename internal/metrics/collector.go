// Package metrics provides in-memory runtime statistics collection.
package metrics

import (
	"math"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

// maxScoreSamples bounds the score window kept for distribution stats.
const maxScoreSamples = 2000

// OperationMetrics holds aggregated metrics for a single operation type.
type OperationMetrics struct {
	Count     int64
	Errors    int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration

	// Token metrics (only for remote generation)
	TotalInputTokens  int64
	TotalOutputTokens int64
}

// OperationSnapshot provides computed stats from raw metrics.
type OperationSnapshot struct {
	Count       int64   `json:"count"`
	Errors      int64   `json:"errors,omitempty"`
	TotalTimeMs int64   `json:"total_time_ms"`
	AvgTimeMs   float64 `json:"avg_time_ms"`
	MinTimeMs   int64   `json:"min_time_ms"`
	MaxTimeMs   int64   `json:"max_time_ms"`

	TotalInputTokens  *int64 `json:"total_input_tokens,omitempty"`
	TotalOutputTokens *int64 `json:"total_output_tokens,omitempty"`
}

// ScoreSummary describes the distribution of recently returned scores.
type ScoreSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Snapshot represents runtime statistics at a point in time.
type Snapshot struct {
	UptimeSeconds  float64            `json:"uptime_seconds"`
	LocalGenerate  *OperationSnapshot `json:"local_generate,omitempty"`
	RemoteGenerate *OperationSnapshot `json:"remote_generate,omitempty"`
	Availability   *OperationSnapshot `json:"availability,omitempty"`
	DBLog          *OperationSnapshot `json:"db_log,omitempty"`
	ToolCall       *OperationSnapshot `json:"tool_call,omitempty"`
	Scores         *ScoreSummary      `json:"scores,omitempty"`
}

// Operation names for the collector.
const (
	OpLocalGenerate  = "local_generate"
	OpRemoteGenerate = "remote_generate"
	OpAvailability   = "availability"
	OpDBLog          = "db_log"
	OpToolCall       = "tool_call"
)

// Collector aggregates in-memory runtime statistics.
// All methods are thread-safe and a nil *Collector ignores every call.
type Collector struct {
	mu        sync.RWMutex
	startTime time.Time
	ops       map[string]*OperationMetrics
	scores    []float64
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		ops:       make(map[string]*OperationMetrics),
	}
}

// getOrCreate returns existing metrics or creates new ones for an operation.
// Caller must hold write lock.
func (c *Collector) getOrCreate(op string) *OperationMetrics {
	m, ok := c.ops[op]
	if !ok {
		m = &OperationMetrics{MinTime: time.Duration(math.MaxInt64)}
		c.ops[op] = m
	}
	return m
}

func (m *OperationMetrics) observe(d time.Duration) {
	m.Count++
	m.TotalTime += d
	m.MinTime = min(m.MinTime, d)
	m.MaxTime = max(m.MaxTime, d)
}

// RecordTiming records timing for an operation.
func (c *Collector) RecordTiming(op string, duration time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getOrCreate(op).observe(duration)
}

// RecordError records a failed operation with its timing.
func (c *Collector) RecordError(op string, duration time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.getOrCreate(op)
	m.observe(duration)
	m.Errors++
}

// RecordLLMUsage records timing and token usage for a remote generation.
func (c *Collector) RecordLLMUsage(op string, duration time.Duration, inputTokens, outputTokens int64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	m := c.getOrCreate(op)
	m.observe(duration)
	m.TotalInputTokens += inputTokens
	m.TotalOutputTokens += outputTokens
}

// RecordScores adds returned candidate scores to the distribution window.
// Only the most recent samples are kept.
func (c *Collector) RecordScores(scores []float64) {
	if c == nil || len(scores) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scores = append(c.scores, scores...)
	if over := len(c.scores) - maxScoreSamples; over > 0 {
		c.scores = append(c.scores[:0], c.scores[over:]...)
	}
}

// snapshotOp creates a snapshot for an operation, returning nil if no data.
func snapshotOp(m *OperationMetrics) *OperationSnapshot {
	if m == nil || m.Count == 0 {
		return nil
	}

	snap := &OperationSnapshot{
		Count:       m.Count,
		Errors:      m.Errors,
		TotalTimeMs: m.TotalTime.Milliseconds(),
		AvgTimeMs:   float64(m.TotalTime.Milliseconds()) / float64(m.Count),
		MinTimeMs:   m.MinTime.Milliseconds(),
		MaxTimeMs:   m.MaxTime.Milliseconds(),
	}

	if m.TotalInputTokens > 0 || m.TotalOutputTokens > 0 {
		totalIn, totalOut := m.TotalInputTokens, m.TotalOutputTokens
		snap.TotalInputTokens = &totalIn
		snap.TotalOutputTokens = &totalOut
	}

	return snap
}

// SummarizeScores computes distribution statistics, returning nil for an
// empty sample.
func SummarizeScores(scores []float64) *ScoreSummary {
	if len(scores) == 0 {
		return nil
	}
	data := stats.Float64Data(scores)

	// The stats functions only fail on empty input, which is excluded above.
	mean, _ := data.Mean()
	median, _ := data.Median()
	stdDev, _ := data.StandardDeviation()
	lo, _ := data.Min()
	hi, _ := data.Max()

	return &ScoreSummary{
		Count:  len(scores),
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    lo,
		Max:    hi,
	}
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		UptimeSeconds:  time.Since(c.startTime).Seconds(),
		LocalGenerate:  snapshotOp(c.ops[OpLocalGenerate]),
		RemoteGenerate: snapshotOp(c.ops[OpRemoteGenerate]),
		Availability:   snapshotOp(c.ops[OpAvailability]),
		DBLog:          snapshotOp(c.ops[OpDBLog]),
		ToolCall:       snapshotOp(c.ops[OpToolCall]),
		Scores:         SummarizeScores(c.scores),
	}
}
