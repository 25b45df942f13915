// Package constants defines default configuration values for the skew library.
// It provides standard settings for the median narrowing loop, result
// memoization, and supported serializer types.
package constants

import "time"

const (
	// DefaultMaxNarrowingIterations is the hard cap on value-domain narrowing
	// iterations per rank selection. The narrowing bounds snap to witness
	// elements, so the loop terminates exactly long before this cap on any
	// realistic input; the cap guards against pathological floating-point
	// distributions where midpoint arithmetic stops making progress.
	DefaultMaxNarrowingIterations = 4096

	// DefaultSerializer is the serializer used to encode memoized results
	// when none is specified.
	DefaultSerializer = "msgpack"

	// DefaultStatsCollector is the stats collector registered under the
	// default registry entry.
	DefaultStatsCollector = "default"

	// DefaultMemoCapacity is the default number of memoized results retained
	// by the in-memory backend before new entries are rejected.
	DefaultMemoCapacity = 1024

	// DefaultMemoExpiration is the default time-to-live for memoized results.
	DefaultMemoExpiration = 30 * time.Minute

	// InMemoryBackend is the in-memory memoization backend type.
	InMemoryBackend = "in-memory"
	// RedisBackend is the name of the Redis memoization backend.
	RedisBackend = "redis"
)
