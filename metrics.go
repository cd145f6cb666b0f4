package vecrank

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the prom
// package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordRank is called after each ranking call.
	// metric is the requested metric name, n the requested match count,
	// scored the number of entries scored and err nil on success.
	RecordRank(metric string, n, scored int, duration time.Duration, err error)

	// RecordLoad is called after a dataset has been loaded.
	RecordLoad(entries int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRank(string, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RankCount      atomic.Int64
	RankErrors     atomic.Int64
	RankTotalNanos atomic.Int64
	ScoredEntries  atomic.Int64
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadedEntries  atomic.Int64
}

// RecordRank implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRank(_ string, _, scored int, duration time.Duration, err error) {
	b.RankCount.Add(1)
	b.RankTotalNanos.Add(duration.Nanoseconds())
	b.ScoredEntries.Add(int64(scored))
	if err != nil {
		b.RankErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(entries int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadedEntries.Add(int64(entries))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RankCount:     b.RankCount.Load(),
		RankErrors:    b.RankErrors.Load(),
		RankAvgNanos:  b.getAvgRankNanos(),
		ScoredEntries: b.ScoredEntries.Load(),
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
		LoadedEntries: b.LoadedEntries.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRankNanos() int64 {
	count := b.RankCount.Load()
	if count == 0 {
		return 0
	}
	return b.RankTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RankCount     int64
	RankErrors    int64
	RankAvgNanos  int64
	ScoredEntries int64
	LoadCount     int64
	LoadErrors    int64
	LoadedEntries int64
}
