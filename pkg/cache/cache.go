// Package cache wraps a shared Redis client. All helpers are nil-safe:
// when Redis is unreachable the app keeps working, reads just miss.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/platter/config"
	"github.com/shashiranjanraj/platter/pkg/metrics"
)

var (
	RDB *redis.Client
	Ctx = context.Background()
)

// Connect initialises the Redis client and verifies it with a ping.
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		RDB = nil // unavailable, Get/Set/Del become no-ops
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(Ctx, key).Bytes()
	if err != nil {
		metrics.CacheMisses.Inc()
		return false
	}
	if json.Unmarshal(val, dest) != nil {
		metrics.CacheMisses.Inc()
		return false
	}
	metrics.CacheHits.Inc()
	return true
}

// Set stores a value under key with a TTL. Errors are swallowed; the
// cache is an optimisation, never a source of truth.
func Set(key string, value interface{}, ttl time.Duration) {
	if RDB == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = RDB.Set(Ctx, key, raw, ttl).Err()
}

// Del removes one or more keys. Used to invalidate listings after writes.
func Del(keys ...string) {
	if RDB == nil || len(keys) == 0 {
		return
	}
	_ = RDB.Del(Ctx, keys...).Err()
}
