package middleware_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	skew "github.com/hazelutf8/approx-pearson-skew"
	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
	"github.com/hazelutf8/approx-pearson-skew/pkg/memo"
	"github.com/hazelutf8/approx-pearson-skew/pkg/middleware"
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, format)
	_ = v
}

func newEngine(t *testing.T, opts ...skew.Option) *skew.Engine {
	t.Helper()

	engine, err := skew.NewEngine(opts...)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	return engine
}

func TestLoggingMiddleware(t *testing.T) {
	logger := &recordingLogger{}
	svc := middleware.NewLoggingMiddleware(newEngine(t), logger)

	got, err := svc.Skew(context.TODO(), []float64{0, 0, 0, 5, 10})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if math.Abs(got-2.25) > 1e-4 {
		t.Error("expected skew to be close to 2.25, got", got)
	}

	if len(logger.lines) == 0 {
		t.Fatal("expected the logger to record the call")
	}

	var sawSkew bool

	for _, line := range logger.lines {
		if strings.Contains(line, "Skew") {
			sawSkew = true
		}
	}

	if !sawSkew {
		t.Error("expected a log line mentioning the Skew method, got", logger.lines)
	}
}

func TestStatsCollectorMiddleware(t *testing.T) {
	collector, err := stats.NewCollector("default")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	svc := middleware.NewStatsCollectorMiddleware(newEngine(t), collector)

	_, err = svc.Skew(context.TODO(), []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = svc.Median(context.TODO(), []float64{1, 2, 3})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	collected := collector.GetStats()

	if len(collected["skew_count"]) != 1 {
		t.Error("expected one skew call recorded, got", collected["skew_count"])
	}

	if len(collected["median_count"]) != 1 {
		t.Error("expected one median call recorded, got", collected["median_count"])
	}

	if len(collected["skew_duration"]) != 1 {
		t.Error("expected one skew duration recorded, got", collected["skew_duration"])
	}
}

func TestMemoMiddleware_NilBackend(t *testing.T) {
	_, err := middleware.NewMemoMiddleware[memo.InMemory](newEngine(t), nil)
	if !errors.Is(err, sentinel.ErrNilBackend) {
		t.Error("expected ErrNilBackend, got", err)
	}
}

func TestMemoMiddleware_HitAndMiss(t *testing.T) {
	backend, err := memo.NewInMemory()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	collector, err := stats.NewCollector("default")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	svc, err := middleware.NewMemoMiddleware(newEngine(t), backend,
		middleware.WithMemoStatsCollector[memo.InMemory](collector))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	samples := []float64{0, 0, 0, 5, 10}

	first, err := svc.Skew(context.TODO(), samples)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	second, err := svc.Skew(context.TODO(), samples)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if first != second {
		t.Errorf("expected the memoized result to match, got %v then %v", first, second)
	}

	collected := collector.GetStats()

	if len(collected[stats.StatMemoMisses.String()]) != 1 {
		t.Error("expected one memo miss, got", collected[stats.StatMemoMisses.String()])
	}

	if len(collected[stats.StatMemoHits.String()]) != 1 {
		t.Error("expected one memo hit, got", collected[stats.StatMemoHits.String()])
	}

	if backend.Count(context.TODO()) != 1 {
		t.Error("expected one stored result, got", backend.Count(context.TODO()))
	}

	// The stored result carries the full moment set.
	stored, ok := backend.Get(context.TODO(), memo.Key(samples))
	if !ok {
		t.Fatal("expected the result to be retrievable by digest")
	}

	if stored.Mean != 3 || stored.Median != 0 || stored.Count != 5 {
		t.Errorf("expected stored moments mean=3 median=0 count=5, got %+v", stored)
	}
}

func TestMemoMiddleware_ErrorsNotMemoized(t *testing.T) {
	backend, err := memo.NewInMemory()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	svc, err := middleware.NewMemoMiddleware[memo.InMemory](newEngine(t), backend)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = svc.Skew(context.TODO(), []float64{})
	if !errors.Is(err, sentinel.ErrEmptyInput) {
		t.Error("expected ErrEmptyInput, got", err)
	}

	_, err = svc.Skew(context.TODO(), []float64{4, 4, 4})
	if !errors.Is(err, sentinel.ErrZeroVariance) {
		t.Error("expected ErrZeroVariance, got", err)
	}

	if backend.Count(context.TODO()) != 0 {
		t.Error("expected no memoized entries after failed computations, got", backend.Count(context.TODO()))
	}
}

func TestMemoMiddleware_PassThrough(t *testing.T) {
	backend, err := memo.NewInMemory()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	svc, err := middleware.NewMemoMiddleware[memo.InMemory](newEngine(t), backend)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	mean, err := svc.Mean(context.TODO(), []float64{2, 4})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if mean != 3 {
		t.Error("expected mean to be 3, got", mean)
	}

	median, err := svc.Median(context.TODO(), []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if median != 2.5 {
		t.Error("expected median to be 2.5, got", median)
	}

	if backend.Count(context.TODO()) != 0 {
		t.Error("expected pass-through methods not to memoize, got", backend.Count(context.TODO()))
	}
}

func TestApplyMiddleware_Order(t *testing.T) {
	logger := &recordingLogger{}

	collector, err := stats.NewCollector("default")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	svc := skew.ApplyMiddleware(newEngine(t),
		func(next skew.Service) skew.Service {
			return middleware.NewLoggingMiddleware(next, logger)
		},
		func(next skew.Service) skew.Service {
			return middleware.NewStatsCollectorMiddleware(next, collector)
		},
	)

	_, err = svc.Skew(context.TODO(), []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if len(logger.lines) == 0 {
		t.Error("expected the inner logging middleware to fire")
	}

	if len(collector.GetStats()["skew_count"]) != 1 {
		t.Error("expected the outer stats middleware to fire")
	}
}
