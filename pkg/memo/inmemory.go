package memo

import (
	"context"
	"sync"
	"time"

	"github.com/hazelutf8/approx-pearson-skew/internal/constants"
	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
)

// entry is a stored result with its write time and time-to-live.
type entry struct {
	result     Result
	storedAt   time.Time
	expiration time.Duration
}

// expired reports whether the entry's time-to-live has elapsed.
func (e *entry) expired() bool {
	return e.expiration > 0 && time.Since(e.storedAt) > e.expiration
}

// InMemory is a memoization backend that retains results in process memory.
type InMemory struct {
	mu       sync.RWMutex     // protects entries from concurrent access
	entries  map[string]entry // results keyed by sequence digest
	capacity int              // limits the number of retained results
}

// NewInMemory creates a new in-memory memoization backend with the given options.
func NewInMemory(opts ...Option[InMemory]) (IBackend[InMemory], error) {
	backendInstance := &InMemory{
		entries:  make(map[string]entry),
		capacity: constants.DefaultMemoCapacity,
	}
	// Apply the backend options
	ApplyOptions(backendInstance, opts...)
	// Check if the `capacity` is valid
	if backendInstance.capacity < 0 {
		return nil, sentinel.ErrInvalidCapacity
	}

	return backendInstance, nil
}

// Capacity returns the maximum number of results that can be retained.
// A capacity of zero means unbounded.
func (b *InMemory) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.capacity
}

// Count returns the number of results currently retained, expired entries included.
func (b *InMemory) Count(_ context.Context) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}

// Get retrieves the memoized result for the given key. Expired entries are
// dropped on access.
func (b *InMemory) Get(_ context.Context, key string) (*Result, bool) {
	b.mu.RLock()
	stored, ok := b.entries[key]
	b.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if stored.expired() {
		b.mu.Lock()
		delete(b.entries, key)
		b.mu.Unlock()

		return nil, false
	}

	result := stored.result

	return &result, true
}

// Set stores a result under the given key. When the backend is full, expired
// entries are reclaimed first; if none can be, the write is dropped silently
// since a memoization miss only costs recomputation.
func (b *InMemory) Set(_ context.Context, key string, result *Result, expiration time.Duration) error {
	if result == nil {
		return sentinel.ErrParamCannotBeEmpty
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.entries[key]; !exists && b.capacity > 0 && len(b.entries) >= b.capacity {
		b.reclaimExpired()

		if len(b.entries) >= b.capacity {
			return nil
		}
	}

	b.entries[key] = entry{
		result:     *result,
		storedAt:   time.Now(),
		expiration: expiration,
	}

	return nil
}

// Remove deletes the results with the given keys.
func (b *InMemory) Remove(_ context.Context, keys ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, key := range keys {
		delete(b.entries, key)
	}

	return nil
}

// Clear removes all results from the backend.
func (b *InMemory) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = make(map[string]entry)

	return nil
}

// reclaimExpired drops expired entries. Callers must hold the write lock.
func (b *InMemory) reclaimExpired() {
	for key, stored := range b.entries {
		if stored.expired() {
			delete(b.entries, key)
		}
	}
}
