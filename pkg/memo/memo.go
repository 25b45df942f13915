// Package memo provides result memoization backends for the skew engine.
// The median finder trades time for space (O(n^2) worst case), so repeated
// computations over identical sequences are worth remembering. Backends never
// see the input slice itself, only its 64-bit digest and the computed result,
// keeping the core computation pure and allocation-free.
//
// The main interface IBackend provides methods for:
//   - Getting and setting memoized results by sequence digest
//   - Managing backend capacity and entry count
//   - Removing entries and clearing the backend
//
// Backend implementations must satisfy the IBackendConstrain type constraint,
// which currently supports InMemory and Redis backend types.
package memo

import (
	"context"
	"encoding/binary"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Result is a memoized skew computation outcome.
type Result struct {
	Skew       float64   `json:"skew"`
	Mean       float64   `json:"mean"`
	Median     float64   `json:"median"`
	StdDev     float64   `json:"stddev"`
	Count      int       `json:"count"`
	ComputedAt time.Time `json:"computed_at"`
}

// Key derives the backend key for a sample sequence: an xxhash64 digest over
// the raw IEEE-754 bit patterns, rendered as hex. The digest is
// order-sensitive even though the statistics are not; permutations of the same
// samples recompute rather than risk a collision shortcut.
func Key(samples []float64) string {
	digest := xxhash.New()

	var word [8]byte
	for _, v := range samples {
		binary.LittleEndian.PutUint64(word[:], math.Float64bits(v))
		_, _ = digest.Write(word[:])
	}

	return strconv.FormatUint(digest.Sum64(), 16)
}

// IBackendConstrain defines the type constraint for memoization backend
// implementations, ensuring proper implementation at compile time.
type IBackendConstrain interface {
	InMemory | Redis
}

// IBackend defines the contract that all memoization backends must implement.
//
// All methods accept a context.Context parameter for cancellation and timeout
// control; the in-memory backend ignores it, the Redis backend passes it to
// the client.
type IBackend[T IBackendConstrain] interface {
	// Get retrieves the memoized result for the given key.
	// If the key is not found or the entry has expired, it returns nil.
	Get(ctx context.Context, key string) (result *Result, ok bool)
	// Set stores a result under the given key with an expiration duration.
	Set(ctx context.Context, key string, result *Result, expiration time.Duration) error
	// Capacity returns the maximum number of results that can be retained.
	Capacity() int
	// Count returns the number of results currently retained.
	Count(ctx context.Context) int
	// Remove deletes the results with the given keys.
	Remove(ctx context.Context, keys ...string) error
	// Clear removes all results from the backend.
	Clear(ctx context.Context) error
}
