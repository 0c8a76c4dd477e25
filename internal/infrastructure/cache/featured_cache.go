package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is not in the cache
var ErrCacheMiss = errors.New("cache miss")

// FeaturedCache caches the featured content lists served on the landing page.
// Entries are invalidated whenever the underlying entity type is written.
type FeaturedCache interface {
	Get(ctx context.Context, entity string, dest any) error
	Set(ctx context.Context, entity string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, entity string) error
}

// RedisFeaturedCache implements FeaturedCache using Redis
type RedisFeaturedCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisFeaturedCache creates a Redis-backed featured cache
func NewRedisFeaturedCache(client *redis.Client) *RedisFeaturedCache {
	return &RedisFeaturedCache{
		client:    client,
		keyPrefix: "featured:",
	}
}

func (c *RedisFeaturedCache) key(entity string) string {
	return c.keyPrefix + entity
}

// Get unmarshals a cached featured list into dest
func (c *RedisFeaturedCache) Get(ctx context.Context, entity string, dest any) error {
	data, err := c.client.Get(ctx, c.key(entity)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to read featured cache: %w", err)
	}
	return json.Unmarshal(data, dest)
}

// Set stores a featured list with the given TTL
func (c *RedisFeaturedCache) Set(ctx context.Context, entity string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal featured cache value: %w", err)
	}
	if err := c.client.Set(ctx, c.key(entity), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write featured cache: %w", err)
	}
	return nil
}

// Invalidate removes the cached featured list for an entity type
func (c *RedisFeaturedCache) Invalidate(ctx context.Context, entity string) error {
	if err := c.client.Del(ctx, c.key(entity)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate featured cache: %w", err)
	}
	return nil
}

var _ FeaturedCache = (*RedisFeaturedCache)(nil)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryFeaturedCache provides an in-process implementation for development
// and tests. Not suitable for multi-instance deployments.
type InMemoryFeaturedCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewInMemoryFeaturedCache creates a new in-memory featured cache
func NewInMemoryFeaturedCache() *InMemoryFeaturedCache {
	return &InMemoryFeaturedCache{
		entries: make(map[string]memoryEntry),
	}
}

// Get unmarshals a cached featured list into dest
func (c *InMemoryFeaturedCache) Get(_ context.Context, entity string, dest any) error {
	c.mu.RLock()
	entry, ok := c.entries[entity]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return ErrCacheMiss
	}
	return json.Unmarshal(entry.data, dest)
}

// Set stores a featured list with the given TTL
func (c *InMemoryFeaturedCache) Set(_ context.Context, entity string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[entity] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Invalidate removes the cached featured list for an entity type
func (c *InMemoryFeaturedCache) Invalidate(_ context.Context, entity string) error {
	c.mu.Lock()
	delete(c.entries, entity)
	c.mu.Unlock()
	return nil
}

var _ FeaturedCache = (*InMemoryFeaturedCache)(nil)
