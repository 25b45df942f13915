// Package skew computes an approximate Pearson median skewness statistic over
// an immutable numeric sequence: 3 * (mean - median) / stddev.
//
// The package is built for constrained targets. The median finder runs in O(1)
// auxiliary space over the read-only input (trading time, O(n*k) average and
// O(n^2) worst case, for space), and the standard deviation is normalized
// through a bit-level approximate square root instead of a math-library call.
// Every computation is a pure function of its input: no shared state, no I/O,
// safe for concurrent use over the same slice.
package skew

import (
	"context"
	"time"

	"github.com/hazelutf8/approx-pearson-skew/internal/constants"
	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// skewFactor is the multiplier of the Pearson second skewness coefficient.
const skewFactor = 3.0

// Engine computes skew statistics over immutable sample slices. The zero
// configuration uses the approximate square root and the default narrowing
// iteration cap; see the options for swapping either.
type Engine struct {
	sqrtFn         func(float64) float64
	maxIterations  int
	statsCollector stats.ICollector
}

// NewEngine creates a new engine configured with the given options.
func NewEngine(opts ...Option) (*Engine, error) {
	engine := &Engine{
		sqrtFn:        ApproxSqrt,
		maxIterations: constants.DefaultMaxNarrowingIterations,
	}

	ApplyOptions(engine, opts...)

	if engine.maxIterations <= 0 {
		return nil, sentinel.ErrInvalidIterationCap
	}

	if engine.sqrtFn == nil {
		engine.sqrtFn = ApproxSqrt
	}

	return engine, nil
}

// NewEngineWithDefaults creates an engine with the default stats collector
// attached.
func NewEngineWithDefaults() (*Engine, error) {
	collector, err := stats.NewCollector(constants.DefaultStatsCollector)
	if err != nil {
		return nil, err
	}

	return NewEngine(WithStatsCollector(collector))
}

// Mean returns the arithmetic mean of samples in a single pass.
// Fails with ErrEmptyInput on an empty slice.
func (e *Engine) Mean(_ context.Context, samples []float64) (float64, error) {
	return e.mean(samples)
}

// Median returns the median of samples without mutating or copying the input.
// Fails with ErrEmptyInput on an empty slice.
func (e *Engine) Median(_ context.Context, samples []float64) (float64, error) {
	return e.median(samples)
}

// StdDev returns the population standard deviation of samples, normalized
// through the engine's square-root function.
// Fails with ErrEmptyInput on an empty slice.
func (e *Engine) StdDev(_ context.Context, samples []float64) (float64, error) {
	mean, err := e.mean(samples)
	if err != nil {
		return 0, err
	}

	return e.stdDevPop(mean, samples)
}

// Skew returns the Pearson median skewness of samples.
// Fails with ErrEmptyInput on an empty slice and ErrZeroVariance when every
// sample is identical.
func (e *Engine) Skew(_ context.Context, samples []float64) (float64, error) {
	return e.skew(samples)
}

// GetStats returns the statistics collected so far. It returns an empty
// snapshot when no collector is attached.
func (e *Engine) GetStats() stats.Stats {
	if e.statsCollector == nil {
		return stats.Stats{}
	}

	return e.statsCollector.GetStats()
}

// mean computes the arithmetic mean in one pass.
func (e *Engine) mean(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, sentinel.ErrEmptyInput
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}

	e.observeScan()

	return sum / float64(len(samples)), nil
}

// stdDevPop computes the population standard deviation, reusing a known mean
// to avoid a redundant pass.
func (e *Engine) stdDevPop(mean float64, samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, sentinel.ErrEmptyInput
	}

	var squaredSum float64

	for _, v := range samples {
		delta := v - mean
		squaredSum += delta * delta
	}

	e.observeScan()

	return e.sqrtFn(squaredSum / float64(len(samples))), nil
}

// skew combines mean, median, and standard deviation into the Pearson second
// skewness coefficient.
func (e *Engine) skew(samples []float64) (float64, error) {
	begin := time.Now()

	mean, err := e.mean(samples)
	if err != nil {
		return 0, e.fail(err)
	}

	median, err := e.median(samples)
	if err != nil {
		return 0, e.fail(err)
	}

	stdDev, err := e.stdDevPop(mean, samples)
	if err != nil {
		return 0, e.fail(err)
	}

	value, err := FromMoments(mean, median, stdDev)
	if err != nil {
		return 0, e.fail(err)
	}

	if e.statsCollector != nil {
		e.statsCollector.Incr(stats.StatComputations, 1)
		e.statsCollector.Timing(stats.StatDurationNS, time.Since(begin).Nanoseconds())
	}

	return value, nil
}

// FromMoments combines precomputed moments into the Pearson median skewness
// coefficient. Fails with ErrZeroVariance when stdDev is zero, since the
// statistic is undefined for degenerate distributions.
func FromMoments(mean, median, stdDev float64) (float64, error) {
	if stdDev == 0 {
		return 0, sentinel.ErrZeroVariance
	}

	return skewFactor * (mean - median) / stdDev, nil
}

// fail records a rejected computation and passes the error through.
func (e *Engine) fail(err error) error {
	if e.statsCollector != nil {
		e.statsCollector.Incr(stats.StatErrors, 1)
	}

	return err
}

// defaultEngine backs the package-level convenience functions. It carries no
// stats collector, keeping the pure API allocation-free.
//
//nolint:gochecknoglobals
var defaultEngine = &Engine{
	sqrtFn:        ApproxSqrt,
	maxIterations: constants.DefaultMaxNarrowingIterations,
}

// Mean returns the arithmetic mean of samples.
// Fails with ErrEmptyInput on an empty slice.
func Mean(samples []float64) (float64, error) {
	return defaultEngine.mean(samples)
}

// Median returns the median of samples in O(1) auxiliary space without
// mutating or copying the input.
// Fails with ErrEmptyInput on an empty slice.
func Median(samples []float64) (float64, error) {
	return defaultEngine.median(samples)
}

// StdDevPop returns the population standard deviation of samples, reusing a
// known mean and normalizing through ApproxSqrt.
// Fails with ErrEmptyInput on an empty slice.
func StdDevPop(mean float64, samples []float64) (float64, error) {
	return defaultEngine.stdDevPop(mean, samples)
}

// ComputeSkew returns the Pearson median skewness of samples:
// 3 * (mean - median) / stddev.
// Fails with ErrEmptyInput on an empty slice and ErrZeroVariance when every
// sample is identical.
func ComputeSkew(samples []float64) (float64, error) {
	return defaultEngine.skew(samples)
}
