// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Single-process storage with TTL support and periodic cleanup of expired entries

package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"seo-content-api/core/interfaces"
)

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *cache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
// defaultExpiration applies to entries stored with a negative TTL.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		items: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, found := c.items.Get(key)
	if !found {
		return nil, interfaces.ErrCacheMiss
	}

	stored, ok := val.([]byte)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	// Return a copy so callers cannot mutate the stored value
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL; 0 means no expiration
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	switch {
	case ttl == 0:
		c.items.Set(key, valueCopy, cache.NoExpiration)
	case ttl < 0:
		c.items.Set(key, valueCopy, cache.DefaultExpiration)
	default:
		c.items.Set(key, valueCopy, ttl)
	}
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.items.Delete(key)
	return nil
}

// Count returns the number of stored entries, including expired ones not yet cleaned up
func (c *MemoryCache) Count() int {
	return c.items.ItemCount()
}
