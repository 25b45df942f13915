package middleware

import (
	"context"
	"time"

	skew "github.com/hazelutf8/approx-pearson-skew"
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// StatsCollectorMiddleware is a middleware that collects per-method stats. It
// can and should re-use the same stats collector as the engine.
// Must implement the skew.Service interface.
type StatsCollectorMiddleware struct {
	next           skew.Service
	statsCollector stats.ICollector
}

// NewStatsCollectorMiddleware returns a new StatsCollectorMiddleware.
func NewStatsCollectorMiddleware(next skew.Service, statsCollector stats.ICollector) skew.Service {
	return &StatsCollectorMiddleware{next: next, statsCollector: statsCollector}
}

// Skew collects stats for the Skew method.
func (mw StatsCollectorMiddleware) Skew(ctx context.Context, samples []float64) (float64, error) {
	start := time.Now()

	defer func() {
		mw.statsCollector.Timing("skew_duration", time.Since(start).Nanoseconds())
		mw.statsCollector.Incr("skew_count", 1)
	}()

	return mw.next.Skew(ctx, samples)
}

// Median collects stats for the Median method.
func (mw StatsCollectorMiddleware) Median(ctx context.Context, samples []float64) (float64, error) {
	start := time.Now()

	defer func() {
		mw.statsCollector.Timing("median_duration", time.Since(start).Nanoseconds())
		mw.statsCollector.Incr("median_count", 1)
	}()

	return mw.next.Median(ctx, samples)
}

// Mean collects stats for the Mean method.
func (mw StatsCollectorMiddleware) Mean(ctx context.Context, samples []float64) (float64, error) {
	start := time.Now()

	defer func() {
		mw.statsCollector.Timing("mean_duration", time.Since(start).Nanoseconds())
		mw.statsCollector.Incr("mean_count", 1)
	}()

	return mw.next.Mean(ctx, samples)
}

// StdDev collects stats for the StdDev method.
func (mw StatsCollectorMiddleware) StdDev(ctx context.Context, samples []float64) (float64, error) {
	start := time.Now()

	defer func() {
		mw.statsCollector.Timing("stddev_duration", time.Since(start).Nanoseconds())
		mw.statsCollector.Incr("stddev_count", 1)
	}()

	return mw.next.StdDev(ctx, samples)
}

// GetStats returns the collected statistics.
func (mw StatsCollectorMiddleware) GetStats() stats.Stats {
	return mw.next.GetStats()
}
