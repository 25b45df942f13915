package skew

import (
	"math"
	"testing"
)

func TestApproxSqrt_Zero(t *testing.T) {
	if got := ApproxSqrt(0); got != 0 {
		t.Error("expected ApproxSqrt(0) to be 0, got", got)
	}
}

func TestApproxSqrt_Negative(t *testing.T) {
	if got := ApproxSqrt(-4); !math.IsNaN(got) {
		t.Error("expected ApproxSqrt(-4) to be NaN, got", got)
	}

	if got := ApproxSqrt(math.NaN()); !math.IsNaN(got) {
		t.Error("expected ApproxSqrt(NaN) to be NaN, got", got)
	}
}

func TestApproxSqrt_Infinity(t *testing.T) {
	if got := ApproxSqrt(math.Inf(1)); !math.IsInf(got, 1) {
		t.Error("expected ApproxSqrt(+Inf) to be +Inf, got", got)
	}
}

func TestApproxSqrt_RelativeError(t *testing.T) {
	// The contract only promises 5% relative error; the two Newton steps
	// land far below that across the representable range.
	const tolerance = 1e-5

	inputs := []float64{
		1e-300, 1e-100, 1e-10, 0.0001, 0.25, 0.5,
		1, 2, 3, 4, 10, 16, 100, 12345.6789,
		1e10, 1e100, 1e300, math.MaxFloat64,
	}

	for _, x := range inputs {
		got := ApproxSqrt(x)
		want := math.Sqrt(x)

		if got <= 0 || math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("ApproxSqrt(%g) = %g, expected a finite positive value", x, got)

			continue
		}

		relErr := math.Abs(got-want) / want
		if relErr > tolerance {
			t.Errorf("ApproxSqrt(%g) = %g, want %g (relative error %g)", x, got, want, relErr)
		}
	}
}

func TestApproxSqrt_NoOverflowUnderflow(t *testing.T) {
	// Very large magnitudes must not overflow to infinity, very small positive
	// magnitudes must not underflow to zero.
	if got := ApproxSqrt(math.MaxFloat64); math.IsInf(got, 1) {
		t.Error("expected ApproxSqrt(MaxFloat64) to stay finite, got +Inf")
	}

	if got := ApproxSqrt(1e-300); got == 0 {
		t.Error("expected ApproxSqrt(1e-300) to stay positive, got 0")
	}
}
