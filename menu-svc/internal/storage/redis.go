package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

type cachedVersion struct {
	Version  domain.VersionPointer `json:"version"`
	CachedAt time.Time             `json:"cached_at"`
}

// RedisVersionCache stores resolved latest versions with a Redis expiry, so
// entries lapse on their own once TTL has passed.
type RedisVersionCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisVersionCache(client *redis.Client, ttl time.Duration) *RedisVersionCache {
	return &RedisVersionCache{Client: client, TTL: ttl}
}

func (c *RedisVersionCache) Get(ctx context.Context, key string) (*domain.VersionPointer, bool, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry cachedVersion
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, false, fmt.Errorf("decode cached version %s: %w", key, err)
	}
	return &entry.Version, true, nil
}

func (c *RedisVersionCache) Put(ctx context.Context, key string, version domain.VersionPointer) error {
	payload, err := json.Marshal(cachedVersion{Version: version, CachedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func (c *RedisVersionCache) Delete(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

var _ service.VersionCache = (*RedisVersionCache)(nil)
