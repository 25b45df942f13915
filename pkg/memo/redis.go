package memo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hyp3rd/ewrap"

	"github.com/hazelutf8/approx-pearson-skew/internal/constants"
	"github.com/hazelutf8/approx-pearson-skew/internal/libs/serializer"
	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
)

// Redis is a memoization backend that stores results in a redis server, so
// independent processes computing over the same sequences share one memo.
type Redis struct {
	rdb        *redis.Client          // redis client to interact with the redis server
	capacity   int                    // advisory capacity, not enforced server-side
	keyPrefix  string                 // prefix applied to every stored key
	Serializer serializer.ISerializer // serializer used to encode results before storing them
}

// NewRedis creates a new redis memoization backend with the given options.
func NewRedis(redisOptions ...Option[Redis]) (IBackend[Redis], error) {
	rb := &Redis{}
	// Apply the backend options
	ApplyOptions(rb, redisOptions...)

	// Check if the client is nil
	if rb.rdb == nil {
		return nil, sentinel.ErrNilClient
	}
	// Check if the `capacity` is valid
	if rb.capacity < 0 {
		return nil, sentinel.ErrInvalidCapacity
	}
	// Check if the `keyPrefix` is empty
	if rb.keyPrefix == "" {
		rb.keyPrefix = constants.RedisKeyPrefix
	}

	// Check if the serializer is nil
	if rb.Serializer == nil {
		var err error
		// Set the serializer to default to `msgpack`
		rb.Serializer, err = serializer.New(constants.DefaultSerializer)
		if err != nil {
			return nil, err
		}
	}

	// return the new backend
	return rb, nil
}

// Capacity returns the advisory capacity of the backend.
func (rb *Redis) Capacity() int {
	return rb.capacity
}

// Count returns the number of memoized results currently stored.
func (rb *Redis) Count(ctx context.Context) int {
	keys, err := rb.rdb.Keys(ctx, rb.pattern()).Result()
	if err != nil {
		return 0
	}

	return len(keys)
}

// Get retrieves the memoized result for the given key.
func (rb *Redis) Get(ctx context.Context, key string) (*Result, bool) {
	data, err := rb.rdb.Get(ctx, rb.storageKey(key)).Bytes()
	if err != nil {
		return nil, false
	}

	result := &Result{}

	err = rb.Serializer.Unmarshal(data, result)
	if err != nil {
		return nil, false
	}

	return result, true
}

// Set stores a result under the given key. Expiration is enforced by redis
// itself; a zero duration stores the result without a time-to-live.
func (rb *Redis) Set(ctx context.Context, key string, result *Result, expiration time.Duration) error {
	if result == nil {
		return sentinel.ErrParamCannotBeEmpty
	}

	data, err := rb.Serializer.Marshal(result)
	if err != nil {
		return err
	}

	err = rb.rdb.Set(ctx, rb.storageKey(key), data, expiration).Err()
	if err != nil {
		return ewrap.Wrap(err, "failed to store memoized result")
	}

	return nil
}

// Remove deletes the results with the given keys.
func (rb *Redis) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	storageKeys := make([]string, len(keys))
	for i, key := range keys {
		storageKeys[i] = rb.storageKey(key)
	}

	err := rb.rdb.Del(ctx, storageKeys...).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return ewrap.Wrap(err, "failed to remove memoized results")
	}

	return nil
}

// Clear removes all results stored under the backend's key prefix.
func (rb *Redis) Clear(ctx context.Context) error {
	keys, err := rb.rdb.Keys(ctx, rb.pattern()).Result()
	if err != nil {
		return ewrap.Wrap(err, "failed to list memoized results")
	}

	if len(keys) == 0 {
		return nil
	}

	err = rb.rdb.Del(ctx, keys...).Err()
	if err != nil {
		return ewrap.Wrap(err, "failed to clear memoized results")
	}

	return nil
}

// storageKey namespaces a digest under the backend's prefix.
func (rb *Redis) storageKey(key string) string {
	return rb.keyPrefix + ":" + key
}

// pattern matches every key the backend owns.
func (rb *Redis) pattern() string {
	return rb.keyPrefix + ":*"
}
