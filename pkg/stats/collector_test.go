package stats

import (
	"errors"
	"sync"
	"testing"

	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
)

func TestNewCollector_Default(t *testing.T) {
	collector, err := NewCollector("default")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if collector == nil {
		t.Fatal("expected a collector, got nil")
	}
}

func TestNewCollector_Unknown(t *testing.T) {
	_, err := NewCollector("does-not-exist")
	if !errors.Is(err, sentinel.ErrStatsCollectorNotFound) {
		t.Error("expected ErrStatsCollectorNotFound, got", err)
	}
}

func TestNewCollector_EmptyName(t *testing.T) {
	_, err := NewCollector("")
	if !errors.Is(err, sentinel.ErrParamCannotBeEmpty) {
		t.Error("expected ErrParamCannotBeEmpty, got", err)
	}
}

func TestCollectorRegistry_Register(t *testing.T) {
	registry := NewEmptyCollectorRegistry()

	registry.Register("custom", func() (ICollector, error) {
		return NewHistogramStatsCollector(), nil
	})

	collector, err := registry.NewCollector("custom")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if collector == nil {
		t.Fatal("expected a collector, got nil")
	}

	// The default entry is not registered on an empty registry.
	_, err = registry.NewCollector("default")
	if !errors.Is(err, sentinel.ErrStatsCollectorNotFound) {
		t.Error("expected ErrStatsCollectorNotFound, got", err)
	}
}

func TestHistogramStatsCollector_Series(t *testing.T) {
	collector := NewHistogramStatsCollector()

	collector.Incr(StatScans, 1)
	collector.Incr(StatScans, 1)
	collector.Decr(StatScans, 1)
	collector.Timing(StatDurationNS, 500)
	collector.Gauge(StatNarrowingIterations, 3)
	collector.Histogram(StatNarrowingIterations, 5)

	if got := collector.Sum(StatScans); got != 1 {
		t.Error("expected scans sum to be 1, got", got)
	}

	if got := collector.Mean(StatDurationNS); got != 500 {
		t.Error("expected duration mean to be 500, got", got)
	}

	if got := collector.Mean(StatNarrowingIterations); got != 4 {
		t.Error("expected iterations mean to be 4, got", got)
	}

	if got := collector.Percentile(StatNarrowingIterations, 100); got != 5 {
		t.Error("expected iterations p100 to be 5, got", got)
	}

	if got := collector.Mean(StatMemoHits); got != 0 {
		t.Error("expected mean of an empty series to be 0, got", got)
	}
}

func TestHistogramStatsCollector_SnapshotIsolation(t *testing.T) {
	collector := NewHistogramStatsCollector()
	collector.Incr(StatComputations, 1)

	snapshot := collector.GetStats()
	snapshot[StatComputations.String()][0] = 99

	if got := collector.Sum(StatComputations); got != 1 {
		t.Error("expected the snapshot to be a copy, collector now sums to", got)
	}
}

func TestHistogramStatsCollector_Concurrent(t *testing.T) {
	collector := NewHistogramStatsCollector()

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				collector.Incr(StatScans, 1)
			}
		}()
	}

	wg.Wait()

	if got := collector.Sum(StatScans); got != 800 {
		t.Error("expected scans sum to be 800, got", got)
	}
}
