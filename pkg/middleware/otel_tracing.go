package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	skew "github.com/hazelutf8/approx-pearson-skew"
	"github.com/hazelutf8/approx-pearson-skew/internal/telemetry/attrs"
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// OTelTracingMiddleware wraps skew.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   skew.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next skew.Service, tracer trace.Tracer, opts ...OTelTracingOption) skew.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Skew implements Service.Skew with tracing.
func (mw OTelTracingMiddleware) Skew(ctx context.Context, samples []float64) (float64, error) {
	ctx, span := mw.startSpan(ctx, "approxskew.Skew", attribute.Int(attrs.AttrSampleCount, len(samples)))
	defer span.End()

	v, err := mw.next.Skew(ctx, samples)
	if err != nil {
		span.RecordError(err)
	}

	return v, err
}

// Median implements Service.Median with tracing.
func (mw OTelTracingMiddleware) Median(ctx context.Context, samples []float64) (float64, error) {
	ctx, span := mw.startSpan(ctx, "approxskew.Median", attribute.Int(attrs.AttrSampleCount, len(samples)))
	defer span.End()

	v, err := mw.next.Median(ctx, samples)
	if err != nil {
		span.RecordError(err)
	}

	return v, err
}

// Mean implements Service.Mean with tracing.
func (mw OTelTracingMiddleware) Mean(ctx context.Context, samples []float64) (float64, error) {
	ctx, span := mw.startSpan(ctx, "approxskew.Mean", attribute.Int(attrs.AttrSampleCount, len(samples)))
	defer span.End()

	v, err := mw.next.Mean(ctx, samples)
	if err != nil {
		span.RecordError(err)
	}

	return v, err
}

// StdDev implements Service.StdDev with tracing.
func (mw OTelTracingMiddleware) StdDev(ctx context.Context, samples []float64) (float64, error) {
	ctx, span := mw.startSpan(ctx, "approxskew.StdDev", attribute.Int(attrs.AttrSampleCount, len(samples)))
	defer span.End()

	v, err := mw.next.StdDev(ctx, samples)
	if err != nil {
		span.RecordError(err)
	}

	return v, err
}

// GetStats returns stats.
func (mw OTelTracingMiddleware) GetStats() stats.Stats { return mw.next.GetStats() }

// startSpan starts a span with the middleware's common attributes applied.
func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	all := make([]attribute.KeyValue, 0, len(mw.commonAttrs)+len(attributes))
	all = append(all, mw.commonAttrs...)
	all = append(all, attributes...)

	return mw.tracer.Start(ctx, name, trace.WithAttributes(all...))
}
