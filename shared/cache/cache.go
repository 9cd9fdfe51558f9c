// Package cache stores read models and rate limit counters, in redis when it is configured and
// in process otherwise.
package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"frontdesk/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

// Nil is returned, wrapped, by Get when the key is missing or expired.
const Nil = redis.Nil

type Cache interface {
	// Save stores value for duration seconds; zero keeps it until deleted.
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	// Increment adds one to the counter at key and returns the new count. The counter expires
	// window seconds after it was created, however often it is incremented.
	Increment(ctx context.Context, key string, window int) (count int64, err error)
	Delete(ctx context.Context, key string) error
	// Clear removes every key matching the glob pattern, e.g. "room:*".
	Clear(ctx context.Context, pattern string) error
}

// New returns a redis backed cache, or a process-local one when no client is configured.
func New(client *redis.Client, ot otel.Otel) Cache {
	if client == nil {
		log.Info().Msg("Redis disabled, using in-memory cache")

		return NewMemoryCache(ot)
	}

	return NewRedisCache(client, ot)
}

// Strings are stored verbatim so counters and ids stay readable in redis-cli; everything else
// is JSON.
func encode(value any) ([]byte, error) {
	if v, ok := value.(string); ok {
		return []byte(v), nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return raw, nil
}

func decode(raw string, value any) error {
	if v, ok := value.(*string); ok {
		*v = raw

		return nil
	}

	if err := json.Unmarshal([]byte(raw), value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}
