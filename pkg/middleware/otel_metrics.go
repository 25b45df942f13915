package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	skew "github.com/hazelutf8/approx-pearson-skew"
	"github.com/hazelutf8/approx-pearson-skew/internal/telemetry/attrs"
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  skew.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next skew.Service, meter metric.Meter) (skew.Service, error) {
	calls, err := meter.Int64Counter("approxskew.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("approxskew.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, durations: durations}, nil
}

// Skew implements Service.Skew with metrics.
func (mw *OTelMetricsMiddleware) Skew(ctx context.Context, samples []float64) (float64, error) {
	start := time.Now()
	v, err := mw.next.Skew(ctx, samples)
	mw.rec(ctx, "Skew", start, attribute.Int(attrs.AttrSampleCount, len(samples)), attribute.Bool("error", err != nil))

	return v, err
}

// Median implements Service.Median with metrics.
func (mw *OTelMetricsMiddleware) Median(ctx context.Context, samples []float64) (float64, error) {
	start := time.Now()
	v, err := mw.next.Median(ctx, samples)
	mw.rec(ctx, "Median", start, attribute.Int(attrs.AttrSampleCount, len(samples)), attribute.Bool("error", err != nil))

	return v, err
}

// Mean implements Service.Mean with metrics.
func (mw *OTelMetricsMiddleware) Mean(ctx context.Context, samples []float64) (float64, error) {
	start := time.Now()
	v, err := mw.next.Mean(ctx, samples)
	mw.rec(ctx, "Mean", start, attribute.Int(attrs.AttrSampleCount, len(samples)), attribute.Bool("error", err != nil))

	return v, err
}

// StdDev implements Service.StdDev with metrics.
func (mw *OTelMetricsMiddleware) StdDev(ctx context.Context, samples []float64) (float64, error) {
	start := time.Now()
	v, err := mw.next.StdDev(ctx, samples)
	mw.rec(ctx, "StdDev", start, attribute.Int(attrs.AttrSampleCount, len(samples)), attribute.Bool("error", err != nil))

	return v, err
}

// GetStats returns stats.
func (mw *OTelMetricsMiddleware) GetStats() stats.Stats { return mw.next.GetStats() }

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(ctx context.Context, method string, start time.Time, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String(attrs.AttrMethod, method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(base...))
}
