// Package middleware provides service middlewares for the skew engine:
// execution-time logging, stats collection, OpenTelemetry metrics and tracing,
// and result memoization.
package middleware

import (
	"context"
	"time"

	skew "github.com/hazelutf8/approx-pearson-skew"
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with the standard library log package and logrus, but should work with any other logger that matches the interface.
type Logger interface {
	Printf(format string, v ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the skew.Service interface.
type LoggingMiddleware struct {
	next   skew.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next skew.Service, logger Logger) skew.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Skew logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Skew(ctx context.Context, samples []float64) (float64, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Skew took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Skew method invoked with %d samples", len(samples))

	return mw.next.Skew(ctx, samples)
}

// Median logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Median(ctx context.Context, samples []float64) (float64, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Median took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Median method invoked with %d samples", len(samples))

	return mw.next.Median(ctx, samples)
}

// Mean logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Mean(ctx context.Context, samples []float64) (float64, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Mean took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Mean method invoked with %d samples", len(samples))

	return mw.next.Mean(ctx, samples)
}

// StdDev logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) StdDev(ctx context.Context, samples []float64) (float64, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method StdDev took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("StdDev method invoked with %d samples", len(samples))

	return mw.next.StdDev(ctx, samples)
}

// GetStats logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) GetStats() stats.Stats {
	defer func(begin time.Time) {
		mw.logger.Printf("method GetStats took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("GetStats method invoked")

	return mw.next.GetStats()
}
