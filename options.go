package skew

import (
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// Option is a function type that can be used to configure the `Engine` struct.
type Option func(*Engine)

// ApplyOptions applies the given options to the given engine.
func ApplyOptions(engine *Engine, options ...Option) {
	for _, option := range options {
		option(engine)
	}
}

// WithSqrtFunc is an option that sets the square-root function used to
// normalize the variance. The default is the bit-level ApproxSqrt; targets
// with a trusted math library can substitute an exact implementation (for
// example math.Sqrt) without touching the rest of the engine.
func WithSqrtFunc(sqrtFn func(float64) float64) Option {
	return func(engine *Engine) {
		engine.sqrtFn = sqrtFn
	}
}

// WithMaxIterations is an option that sets the cap on value-domain narrowing
// iterations per rank selection. The narrowing loop terminates exactly on any
// realistic input; the cap is a guard against pathological floating-point
// distributions.
func WithMaxIterations(maxIterations int) Option {
	return func(engine *Engine) {
		engine.maxIterations = maxIterations
	}
}

// WithStatsCollector is an option that sets the stats collector field of the
// `Engine` struct. The stats collector is used to record the scanning work
// performed by the median finder and the outcome of each computation.
func WithStatsCollector(statsCollector stats.ICollector) Option {
	return func(engine *Engine) {
		engine.statsCollector = statsCollector
	}
}
