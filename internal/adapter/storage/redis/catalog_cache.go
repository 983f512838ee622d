package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CatalogCache implements ports.CatalogCache using Redis. Vending catalogs
// (service lists, data plans) change rarely, so browsing is served from
// here instead of hitting the provider on every request.
type CatalogCache struct {
	client *goredis.Client
	prefix string
}

// NewCatalogCache creates a new Redis-backed catalog cache.
func NewCatalogCache(client *goredis.Client) *CatalogCache {
	return &CatalogCache{
		client: client,
		prefix: "catalog:",
	}
}

// Get retrieves a cached catalog payload. Returns nil, nil on a miss.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis catalog get: %w", err)
	}
	return val, nil
}

// Set stores a catalog payload with TTL.
func (c *CatalogCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis catalog set: %w", err)
	}
	return nil
}
