package stats

import (
	"sort"
	"sync"
)

// HistogramStatsCollector is a stats collector that retains every recorded
// value per stat, allowing distribution queries over the series.
type HistogramStatsCollector struct {
	mu    sync.RWMutex // mutex to protect concurrent access to the stats
	stats map[string][]int64
}

// NewHistogramStatsCollector creates a new histogram stats collector.
func NewHistogramStatsCollector() *HistogramStatsCollector {
	return &HistogramStatsCollector{
		stats: make(map[string][]int64),
	}
}

// Incr increments the count of a statistic by the given value.
func (c *HistogramStatsCollector) Incr(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], value)
}

// Decr decrements the count of a statistic by the given value.
func (c *HistogramStatsCollector) Decr(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], -value)
}

// Timing records the time it took for an event to occur.
func (c *HistogramStatsCollector) Timing(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], value)
}

// Gauge records the current value of a statistic.
func (c *HistogramStatsCollector) Gauge(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], value)
}

// Histogram records the statistical distribution of a set of values.
func (c *HistogramStatsCollector) Histogram(stat Stat, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[stat.String()] = append(c.stats[stat.String()], value)
}

// Sum returns the sum of all recorded values of a statistic.
func (c *HistogramStatsCollector) Sum(stat Stat) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var sum int64
	for _, value := range c.stats[stat.String()] {
		sum += value
	}

	return sum
}

// Mean returns the mean value of a statistic.
func (c *HistogramStatsCollector) Mean(stat Stat) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	values := c.stats[stat.String()]
	if len(values) == 0 {
		return 0
	}

	var sum int64
	for _, value := range values {
		sum += value
	}

	return float64(sum) / float64(len(values))
}

// Percentile returns the given percentile (0-100) of a statistic's series.
func (c *HistogramStatsCollector) Percentile(stat Stat, percentile float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	values := c.stats[stat.String()]
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(percentile / 100 * float64(len(sorted)-1))

	return float64(sorted[idx])
}

// GetStats returns a copy of the collected statistics.
func (c *HistogramStatsCollector) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(Stats, len(c.stats))
	for name, values := range c.stats {
		series := make([]int64, len(values))
		copy(series, values)
		snapshot[name] = series
	}

	return snapshot
}
