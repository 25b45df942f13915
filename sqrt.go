package skew

import "math"

// sqrtMagic is the bias constant for the IEEE-754 double square-root estimate.
// Shifting the bit pattern right by one halves the exponent; the bias restores
// the exponent offset and centers the mantissa error of the initial guess.
const sqrtMagic = 0x1FF7A3BEA91D9B1B

// newtonSteps is the number of Newton-Raphson refinements applied to the
// bit-level estimate. Two steps bring the relative error well below 1e-7,
// far tighter than the skew statistic requires.
const newtonSteps = 2

// ApproxSqrt returns a fast approximate square root of x without relying on a
// hardware sqrt instruction or a math-library call, so the engine stays usable
// on minimal targets. The initial guess halves the IEEE-754 exponent through
// bit manipulation and is then refined with Newton-Raphson steps.
//
// ApproxSqrt(0) == 0. Positive infinity maps to positive infinity. The error
// bound holds across the normal range; subnormal inputs stay positive but lose
// precision, since halving the exponent field assumes a normalized layout.
// The result for negative input is unspecified by the contract; this
// implementation returns NaN rather than crashing. Callers in this module only
// ever pass a variance, which is non-negative by construction.
func ApproxSqrt(x float64) float64 {
	if x != x || x < 0 {
		return math.NaN()
	}

	if x == 0 || math.IsInf(x, 1) {
		return x
	}

	estimate := math.Float64frombits((math.Float64bits(x) >> 1) + sqrtMagic)

	for range newtonSteps {
		estimate = 0.5 * (estimate + x/estimate)
	}

	return estimate
}
