package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/patimanas321/ForgeLens/internal/db"
	"github.com/patimanas321/ForgeLens/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetContentDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	log.Printf("getting entry in cache for content #%s...", id)

	val, err := c.client.Get(ctx, getCacheKey(id.String(), false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagContentDetails(ctx context.Context, id db.UUID) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(id.String(), true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetContentDetails(ctx context.Context, id db.UUID, data []byte, ttl time.Duration) {
	log.Printf("creating entry in cache for content #%s, ttl %s...", id, ttl)

	if err := c.client.Set(ctx, getCacheKey(id.String(), false), data, ttl).Err(); err != nil {
		log.Printf("❌ redis set failed for content #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagContentDetails(ctx context.Context, id db.UUID, etag string, ttl time.Duration) {
	if err := c.client.Set(ctx, getCacheKey(id.String(), true), etag, ttl).Err(); err != nil {
		log.Printf("❌ redis set failed for content #%s etag: %v", id, err)
	}
}

func (c *Cache) DeleteContentDetails(ctx context.Context, id db.UUID) error {
	log.Printf("deleting entry in cache for content #%s...", id)

	if err := c.client.Del(ctx, getCacheKey(id.String(), false)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagContentDetails(ctx context.Context, id db.UUID) error {
	if err := c.client.Del(ctx, getCacheKey(id.String(), true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(id string, isEtag bool) string {
	if isEtag {
		return "content:" + id + ":etag"
	}
	return "content:" + id
}
