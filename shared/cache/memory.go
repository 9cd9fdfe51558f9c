package cache

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"sync"
	"time"

	"frontdesk/infras/otel"
)

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	otel    otel.Otel
	now     func() time.Time
}

// NewMemoryCache keeps values in process with the same key and glob semantics as redis.
func NewMemoryCache(ot otel.Otel) Cache {
	return &memoryCache{
		entries: map[string]entry{},
		otel:    ot,
		now:     time.Now,
	}
}

func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := encode(value)
	if err != nil {
		return err
	}

	item := entry{value: string(raw)}
	if duration > 0 {
		item.expiresAt = cache.now().Add(time.Duration(duration) * time.Second)
	}

	cache.mu.Lock()
	cache.entries[key] = item
	cache.mu.Unlock()

	return nil
}

func (cache *memoryCache) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.mu.RLock()
	item, ok := cache.entries[key]
	cache.mu.RUnlock()

	if !ok || item.expired(cache.now()) {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	return decode(item.value, value)
}

func (cache *memoryCache) Increment(ctx context.Context, key string, window int) (int64, error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.mu.Lock()
	defer cache.mu.Unlock()

	now := cache.now()

	item, ok := cache.entries[key]
	if !ok || item.expired(now) {
		item = entry{value: "0"}
		if window > 0 {
			item.expiresAt = now.Add(time.Duration(window) * time.Second)
		}
	}

	count, err := strconv.ParseInt(item.value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cache value at %s is not a counter: %w", key, err)
	}

	count++
	item.value = strconv.FormatInt(count, 10)
	cache.entries[key] = item

	return count, nil
}

func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	cache.mu.Lock()
	delete(cache.entries, key)
	cache.mu.Unlock()

	return nil
}

func (cache *memoryCache) Clear(ctx context.Context, pattern string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	cache.mu.Lock()
	defer cache.mu.Unlock()

	for key := range cache.entries {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return fmt.Errorf("invalid cache pattern %q: %w", pattern, err)
		}

		if matched {
			delete(cache.entries, key)
		}
	}

	return nil
}
