package server

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds serialized query responses in redis, keyed by the canonical
// filter query string.
type Cache struct {
	client *redis.Client
	ctx    context.Context
}

func NewCache(addr, password string, db int) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: rdb, ctx: context.Background()}
}

func (c *Cache) GetRaw(key string) ([]byte, error) {
	return c.client.Get(c.ctx, key).Bytes()
}

func (c *Cache) SetRaw(key string, data []byte, expiration time.Duration) error {
	return c.client.Set(c.ctx, key, data, expiration).Err()
}

// Purge drops everything in the cache db.
func (c *Cache) Purge() error {
	return c.client.FlushDB(c.ctx).Err()
}

func (c *Cache) Close() {
	c.client.Close()
}
