// Package attrs provides reusable OpenTelemetry attribute key constants
// to avoid duplication across middlewares.
package attrs

const (
	// AttrSampleCount is the telemetry attribute key for the number of samples
	// in the input sequence of a computation.
	AttrSampleCount = "samples.count"
	// AttrMemoHit is the telemetry attribute key reporting whether a
	// computation was answered from the memoization backend.
	AttrMemoHit = "memo.hit"
	// AttrMethod is the telemetry attribute key naming the service method.
	AttrMethod = "method"
)
