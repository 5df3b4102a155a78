package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Fylinde/brand-service/internal/domain"
)

const keyPrefix = "brand:"

// BrandCache is a read-through cache for single-brand lookups backed by
// Redis. A miss is not an error; callers fall back to the database.
type BrandCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBrandCache creates a Redis-backed brand cache with the given TTL.
func NewBrandCache(client *redis.Client, ttl time.Duration) *BrandCache {
	return &BrandCache{
		client: client,
		ttl:    ttl,
	}
}

func brandKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// Get returns the cached brand, or nil on a miss.
func (c *BrandCache) Get(ctx context.Context, id int64) (*domain.Brand, error) {
	data, err := c.client.Get(ctx, brandKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get brand: %w", err)
	}

	var b domain.Brand
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal cached brand: %w", err)
	}

	return &b, nil
}

// Set stores a brand with the configured TTL.
func (c *BrandCache) Set(ctx context.Context, b *domain.Brand) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal brand: %w", err)
	}

	if err := c.client.Set(ctx, brandKey(b.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set brand: %w", err)
	}

	return nil
}

// Invalidate drops the cached entry for a brand. Removing a key that is
// not present is a no-op.
func (c *BrandCache) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, brandKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del brand: %w", err)
	}

	return nil
}
