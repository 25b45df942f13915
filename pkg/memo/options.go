package memo

import (
	"github.com/redis/go-redis/v9"

	"github.com/hazelutf8/approx-pearson-skew/internal/libs/serializer"
)

// iConfigurableBackend is an interface that defines the methods that a backend
// should implement to be configurable.
type iConfigurableBackend interface {
	// setCapacity sets the capacity of the backend.
	setCapacity(capacity int)
}

// setCapacity sets the `capacity` field of the `InMemory` backend.
func (b *InMemory) setCapacity(capacity int) {
	b.capacity = capacity
}

// setCapacity sets the `capacity` field of the `Redis` backend.
func (rb *Redis) setCapacity(capacity int) {
	rb.capacity = capacity
}

// Option is a function type that can be used to configure a memoization backend.
type Option[T IBackendConstrain] func(*T)

// ApplyOptions applies the given options to the given backend.
func ApplyOptions[T IBackendConstrain](backend *T, options ...Option[T]) {
	for _, option := range options {
		option(backend)
	}
}

// WithCapacity is an option that sets the capacity of the backend.
func WithCapacity[T IBackendConstrain](capacity int) Option[T] {
	return func(b *T) {
		if configurable, ok := any(b).(iConfigurableBackend); ok {
			configurable.setCapacity(capacity)
		}
	}
}

// WithRedisClient is an option that sets the redis client to use.
func WithRedisClient(client *redis.Client) Option[Redis] {
	return func(backend *Redis) {
		backend.rdb = client
	}
}

// WithKeyPrefix is an option that sets the prefix applied to every key the
// Redis backend stores.
func WithKeyPrefix(keyPrefix string) Option[Redis] {
	return func(backend *Redis) {
		backend.keyPrefix = keyPrefix
	}
}

// WithSerializer is an option that sets the serializer used to encode results
// before storing them in Redis.
func WithSerializer(sz serializer.ISerializer) Option[Redis] {
	return func(backend *Redis) {
		backend.Serializer = sz
	}
}
