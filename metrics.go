package hopgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordTrain is called after each training operation.
	RecordTrain(duration time.Duration, err error)

	// RecordRecall is called after each recall operation.
	// passes is the number of relaxation passes taken (0 on validation
	// failure), err is nil if the recall converged.
	RecordRecall(passes int, duration time.Duration, err error)

	// RecordBatchRecall is called after each batch recall.
	// count is the number of cues attempted, failed is the number that
	// returned an error.
	RecordBatchRecall(count, failed int, duration time.Duration)

	// RecordSnapshot is called after each snapshot save or load.
	RecordSnapshot(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTrain(time.Duration, error)          {}
func (NoopMetricsCollector) RecordRecall(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordBatchRecall(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordSnapshot(time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TrainCount        atomic.Int64
	TrainErrors       atomic.Int64
	TrainTotalNanos   atomic.Int64
	RecallCount       atomic.Int64
	RecallErrors      atomic.Int64
	RecallTotalNanos  atomic.Int64
	RecallTotalPasses atomic.Int64
	BatchRecallCount  atomic.Int64
	BatchRecallItems  atomic.Int64
	BatchRecallFailed atomic.Int64
	SnapshotCount     atomic.Int64
	SnapshotErrors    atomic.Int64
}

// RecordTrain implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrain(duration time.Duration, err error) {
	b.TrainCount.Add(1)
	b.TrainTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TrainErrors.Add(1)
	}
}

// RecordRecall implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRecall(passes int, duration time.Duration, err error) {
	b.RecallCount.Add(1)
	b.RecallTotalNanos.Add(duration.Nanoseconds())
	b.RecallTotalPasses.Add(int64(passes))
	if err != nil {
		b.RecallErrors.Add(1)
	}
}

// RecordBatchRecall implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchRecall(count, failed int, duration time.Duration) {
	b.BatchRecallCount.Add(1)
	b.BatchRecallItems.Add(int64(count))
	b.BatchRecallFailed.Add(int64(failed))
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	if err != nil {
		b.SnapshotErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		TrainCount:        b.TrainCount.Load(),
		TrainErrors:       b.TrainErrors.Load(),
		RecallCount:       b.RecallCount.Load(),
		RecallErrors:      b.RecallErrors.Load(),
		RecallAvgNanos:    b.avgRecallNanos(),
		RecallAvgPasses:   b.avgRecallPasses(),
		BatchRecallCount:  b.BatchRecallCount.Load(),
		BatchRecallItems:  b.BatchRecallItems.Load(),
		BatchRecallFailed: b.BatchRecallFailed.Load(),
		SnapshotCount:     b.SnapshotCount.Load(),
		SnapshotErrors:    b.SnapshotErrors.Load(),
	}
}

func (b *BasicMetricsCollector) avgRecallNanos() int64 {
	count := b.RecallCount.Load()
	if count == 0 {
		return 0
	}
	return b.RecallTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) avgRecallPasses() int64 {
	count := b.RecallCount.Load()
	if count == 0 {
		return 0
	}
	return b.RecallTotalPasses.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TrainCount        int64
	TrainErrors       int64
	RecallCount       int64
	RecallErrors      int64
	RecallAvgNanos    int64
	RecallAvgPasses   int64
	BatchRecallCount  int64
	BatchRecallItems  int64
	BatchRecallFailed int64
	SnapshotCount     int64
	SnapshotErrors    int64
}
