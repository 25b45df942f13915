// Package sentinel provides standardized error definitions for the skew library.
// This package centralizes all error types used across the components, ensuring
// consistent error handling and messaging throughout the module.
//
// The errors defined here cover:
// - Statistical preconditions (empty input, degenerate distributions)
// - Component initialization errors (nil clients, missing serializers/collectors)
// - Runtime operation errors (timeouts, cancellations)
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrEmptyInput is returned when a statistic is requested over a sequence
	// with zero elements. Mean, median, and skew are undefined on empty input.
	ErrEmptyInput = ewrap.New("empty input sequence")

	// ErrZeroVariance is returned by the skew computation when every sample is
	// identical. The standard deviation is zero and the Pearson median skew is
	// mathematically undefined; the division by zero is avoided by this check.
	ErrZeroVariance = ewrap.New("zero variance: all samples are identical")

	// ErrRankOutOfRange is returned when a rank selection targets a rank outside
	// [0, len(samples)).
	ErrRankOutOfRange = ewrap.New("rank out of range")

	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrStatsCollectorNotFound is returned when a stats collector is not found.
	ErrStatsCollectorNotFound = ewrap.New("stats collector not found")

	// ErrNilClient is returned when a nil client is passed to a backend.
	ErrNilClient = ewrap.New("nil client")

	// ErrNilBackend is returned when a nil memoization backend is passed to a middleware.
	ErrNilBackend = ewrap.New("nil backend")

	// ErrInvalidCapacity is returned when an invalid capacity is passed to the
	// in-memory memoization backend.
	ErrInvalidCapacity = ewrap.New("capacity cannot be negative")

	// ErrInvalidIterationCap is returned when a non-positive narrowing iteration
	// cap is passed to the engine.
	ErrInvalidIterationCap = ewrap.New("iteration cap must be positive")

	// ErrTimeoutOrCanceled is returned when a timeout or cancellation occurs.
	ErrTimeoutOrCanceled = ewrap.New("the operation timed out or was canceled")

	// ErrHTTPShutdownTimeout is returned when the HTTP facade fails to shut down
	// before the context deadline.
	ErrHTTPShutdownTimeout = ewrap.New("http shutdown timeout")
)
