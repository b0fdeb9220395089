package pointgen

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGenerate is called after each generate operation.
	// points is the number of points produced, err is nil if successful.
	RecordGenerate(layout Layout, points int, duration time.Duration, err error)

	// RecordBatch is called after each batch generate operation.
	// count is the number of requests, failed is non-zero if the batch failed.
	RecordBatch(count, failed int, duration time.Duration)

	// RecordStep is called after each clustering step.
	// changed is the number of points whose label changed.
	RecordStep(k, changed int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(Layout, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)              {}
func (NoopMetricsCollector) RecordStep(int, int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateErrors     atomic.Int64
	GeneratePoints     atomic.Int64
	GenerateTotalNanos atomic.Int64
	BatchCount         atomic.Int64
	BatchRequests      atomic.Int64
	BatchFailed        atomic.Int64
	StepCount          atomic.Int64
	StepErrors         atomic.Int64
	StepChanged        atomic.Int64
	StepTotalNanos     atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(_ Layout, points int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
		return
	}
	b.GeneratePoints.Add(int64(points))
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchRequests.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(_ int, changed int, duration time.Duration, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
		return
	}
	b.StepChanged.Add(int64(changed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GenerateCount:    b.GenerateCount.Load(),
		GenerateErrors:   b.GenerateErrors.Load(),
		GeneratePoints:   b.GeneratePoints.Load(),
		GenerateAvgNanos: avg(b.GenerateTotalNanos.Load(), b.GenerateCount.Load()),
		BatchCount:       b.BatchCount.Load(),
		BatchRequests:    b.BatchRequests.Load(),
		BatchFailed:      b.BatchFailed.Load(),
		StepCount:        b.StepCount.Load(),
		StepErrors:       b.StepErrors.Load(),
		StepChanged:      b.StepChanged.Load(),
		StepAvgNanos:     avg(b.StepTotalNanos.Load(), b.StepCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GenerateCount    int64
	GenerateErrors   int64
	GeneratePoints   int64
	GenerateAvgNanos int64
	BatchCount       int64
	BatchRequests    int64
	BatchFailed      int64
	StepCount        int64
	StepErrors       int64
	StepChanged      int64
	StepAvgNanos     int64
}
