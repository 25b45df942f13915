// Package stats provides statistics collection for the skew engine. Collectors
// record how much scanning work the O(1)-space median finder performs, how long
// full skew computations take, and how effective result memoization is.
package stats

// Stat is a type that represents the different stat values that can be
// collected by the stats collector.
type Stat string

const (
	// StatComputations counts completed skew computations.
	StatComputations Stat = "computations"
	// StatErrors counts computations rejected with an error.
	StatErrors Stat = "errors"
	// StatScans counts full passes over the input sequence performed by the
	// median finder. Each narrowing iteration costs one pass.
	StatScans Stat = "scans"
	// StatNarrowingIterations counts value-domain narrowing steps across rank
	// selections.
	StatNarrowingIterations Stat = "narrowing.iterations"
	// StatDurationNS records the wall-clock duration of a computation in
	// nanoseconds.
	StatDurationNS Stat = "duration.ns"
	// StatMemoHits counts computations answered from a memoization backend.
	StatMemoHits Stat = "memo.hits"
	// StatMemoMisses counts computations that had to run the engine.
	StatMemoMisses Stat = "memo.misses"
)

// String returns the string representation of a Stat.
func (s Stat) String() string {
	return string(s)
}

// Stats is a snapshot of the collected statistics, keyed by stat name.
type Stats map[string][]int64
