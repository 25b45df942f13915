package skew

import (
	"math"

	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
	"github.com/hazelutf8/approx-pearson-skew/pkg/stats"
)

// The median finder performs rank selection over an immutable slice in O(1)
// auxiliary space. It binary-searches the value domain rather than the index
// domain: each step scans the whole slice once, counts how many elements fall
// at or below a candidate value, and narrows a [low, high] bound accordingly.
// Because it never reorders or copies the input it trades time for space:
// O(n*k) with k narrowing steps, O(n^2) in the worst case.

// minMax returns the smallest and largest element of a non-empty slice.
func minMax(samples []float64) (low, high float64) {
	low, high = samples[0], samples[0]

	for _, v := range samples[1:] {
		if v < low {
			low = v
		}

		if v > high {
			high = v
		}
	}

	return low, high
}

// partitionScan counts the elements at or below pivot in a single pass. It also
// records the two witnesses the narrowing step snaps to: the largest element at
// or below pivot and the smallest element above it.
func partitionScan(samples []float64, pivot float64) (atOrBelow int, floor, ceil float64) {
	floor = math.Inf(-1)
	ceil = math.Inf(1)

	for _, v := range samples {
		if v <= pivot {
			atOrBelow++

			if v > floor {
				floor = v
			}
		} else if v < ceil {
			ceil = v
		}
	}

	return atOrBelow, floor, ceil
}

// selectRank returns the element of the given 0-indexed rank without mutating
// or copying samples. Both bounds always snap to actual elements, so each
// iteration strictly shrinks the candidate set and the loop converges on the
// exact rank value. The iteration cap is a termination guard for pathological
// floating-point distributions; if it is ever hit the current lower bound is
// returned as the approximation.
func (e *Engine) selectRank(samples []float64, rank int) (float64, error) {
	if len(samples) == 0 {
		return 0, sentinel.ErrEmptyInput
	}

	if rank < 0 || rank >= len(samples) {
		return 0, sentinel.ErrRankOutOfRange
	}

	low, high := minMax(samples)
	e.observeScan()

	for range e.maxIterations {
		if low == high {
			return low, nil
		}

		pivot := low + (high-low)/2
		// Midpoint arithmetic on adjacent floats can round onto high, which
		// would stall the narrowing. Probing low instead always makes progress.
		if pivot >= high {
			pivot = low
		}

		atOrBelow, floor, ceil := partitionScan(samples, pivot)
		e.observeScan()
		e.observeIteration()

		if rank < atOrBelow {
			// Target is at or below the pivot: the largest such element is a
			// valid upper bound.
			high = floor
		} else {
			// Target is above the pivot: the smallest element above it is a
			// valid lower bound.
			low = ceil
		}
	}

	return low, nil
}

// median returns the median of samples. For even lengths it averages the two
// central ranks, each found by an independent selection pass.
func (e *Engine) median(samples []float64) (float64, error) {
	n := len(samples)
	if n == 0 {
		return 0, sentinel.ErrEmptyInput
	}

	upper, err := e.selectRank(samples, n/2)
	if err != nil {
		return 0, err
	}

	if n%2 != 0 {
		return upper, nil
	}

	lower, err := e.selectRank(samples, n/2-1)
	if err != nil {
		return 0, err
	}

	return (lower + upper) / 2, nil
}

// observeScan records one full pass over the input with the stats collector.
func (e *Engine) observeScan() {
	if e.statsCollector != nil {
		e.statsCollector.Incr(stats.StatScans, 1)
	}
}

// observeIteration records one narrowing step with the stats collector.
func (e *Engine) observeIteration() {
	if e.statsCollector != nil {
		e.statsCollector.Incr(stats.StatNarrowingIterations, 1)
	}
}
