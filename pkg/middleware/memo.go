package middleware

import (
	"context"
	"time"

	skew "github.com/hazelutf8/approx-pearson-skew"
	"github.com/hazelutf8/approx-pearson-skew/internal/constants"
	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
	"github.com/hazelutf8/approx-pearson-skew/pkg/memo"
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// MemoMiddleware answers Skew calls from a memoization backend when the same
// sequence (by digest) has been computed before, and stores fresh results
// otherwise. Only successful computations are memoized; errors always
// propagate from the engine. The other service methods pass through, since
// mean and standard deviation are single scans and not worth a round trip.
type MemoMiddleware[T memo.IBackendConstrain] struct {
	next           skew.Service
	backend        memo.IBackend[T]
	expiration     time.Duration
	statsCollector stats.ICollector
}

// MemoOption allows configuring the memoization middleware.
type MemoOption[T memo.IBackendConstrain] func(*MemoMiddleware[T])

// WithMemoExpiration sets the time-to-live applied to stored results.
func WithMemoExpiration[T memo.IBackendConstrain](expiration time.Duration) MemoOption[T] {
	return func(mw *MemoMiddleware[T]) { mw.expiration = expiration }
}

// WithMemoStatsCollector sets a collector recording memo hits and misses.
func WithMemoStatsCollector[T memo.IBackendConstrain](statsCollector stats.ICollector) MemoOption[T] {
	return func(mw *MemoMiddleware[T]) { mw.statsCollector = statsCollector }
}

// NewMemoMiddleware returns a new MemoMiddleware over the given backend.
func NewMemoMiddleware[T memo.IBackendConstrain](next skew.Service, backend memo.IBackend[T], opts ...MemoOption[T]) (skew.Service, error) {
	if backend == nil {
		return nil, sentinel.ErrNilBackend
	}

	mw := &MemoMiddleware[T]{
		next:       next,
		backend:    backend,
		expiration: constants.DefaultMemoExpiration,
	}
	for _, o := range opts {
		o(mw)
	}

	return mw, nil
}

// Skew implements Service.Skew with memoization.
func (mw *MemoMiddleware[T]) Skew(ctx context.Context, samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, sentinel.ErrEmptyInput
	}

	key := memo.Key(samples)

	if cached, ok := mw.backend.Get(ctx, key); ok {
		mw.observe(stats.StatMemoHits)

		return cached.Skew, nil
	}

	mw.observe(stats.StatMemoMisses)

	// Compute the moments through the decorated service so the expensive
	// median selection runs exactly once, then combine and store them.
	mean, err := mw.next.Mean(ctx, samples)
	if err != nil {
		return 0, err
	}

	median, err := mw.next.Median(ctx, samples)
	if err != nil {
		return 0, err
	}

	stdDev, err := mw.next.StdDev(ctx, samples)
	if err != nil {
		return 0, err
	}

	value, err := skew.FromMoments(mean, median, stdDev)
	if err != nil {
		return 0, err
	}

	result := &memo.Result{
		Skew:       value,
		Mean:       mean,
		Median:     median,
		StdDev:     stdDev,
		Count:      len(samples),
		ComputedAt: time.Now(),
	}

	// A failed store only costs a future recomputation.
	_ = mw.backend.Set(ctx, key, result, mw.expiration)

	return value, nil
}

// Median implements Service.Median, passing through to the next service.
func (mw *MemoMiddleware[T]) Median(ctx context.Context, samples []float64) (float64, error) {
	return mw.next.Median(ctx, samples)
}

// Mean implements Service.Mean, passing through to the next service.
func (mw *MemoMiddleware[T]) Mean(ctx context.Context, samples []float64) (float64, error) {
	return mw.next.Mean(ctx, samples)
}

// StdDev implements Service.StdDev, passing through to the next service.
func (mw *MemoMiddleware[T]) StdDev(ctx context.Context, samples []float64) (float64, error) {
	return mw.next.StdDev(ctx, samples)
}

// GetStats returns the stats of the decorated service.
func (mw *MemoMiddleware[T]) GetStats() stats.Stats {
	return mw.next.GetStats()
}

// observe records a memo outcome with the stats collector.
func (mw *MemoMiddleware[T]) observe(stat stats.Stat) {
	if mw.statsCollector != nil {
		mw.statsCollector.Incr(stat, 1)
	}
}
