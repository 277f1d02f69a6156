package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"movie-rental/internal/shared/logger"

	"github.com/redis/go-redis/v9"
)

// RedisMovieCache is a read-through cache for movie records, keyed by store
// ID. Cache failures degrade to store reads; they never fail a request.
type RedisMovieCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

// NewRedisMovieCache creates a RedisMovieCache with the given entry TTL.
func NewRedisMovieCache(client *redis.Client, ttl time.Duration, log logger.Logger) *RedisMovieCache {
	return &RedisMovieCache{
		client: client,
		ttl:    ttl,
		log:    log.WithComponent("movie_cache"),
	}
}

// Get returns the cached record for id, if present.
func (c *RedisMovieCache) Get(ctx context.Context, id string) (map[string]interface{}, bool) {
	data, err := c.client.Get(ctx, movieKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("cache read failed for movie %s: %v", id, err)
		}
		return nil, false
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		c.log.Warnf("cache entry for movie %s is corrupt, dropping: %v", id, err)
		c.client.Del(ctx, movieKey(id))
		return nil, false
	}
	return fields, true
}

// Set stores the record for id with the configured TTL.
func (c *RedisMovieCache) Set(ctx context.Context, id string, fields map[string]interface{}) {
	data, err := json.Marshal(fields)
	if err != nil {
		c.log.Warnf("failed to marshal movie %s for cache: %v", id, err)
		return
	}
	if err := c.client.Set(ctx, movieKey(id), data, c.ttl).Err(); err != nil {
		c.log.Warnf("cache write failed for movie %s: %v", id, err)
	}
}

// Invalidate drops the cached record for id.
func (c *RedisMovieCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, movieKey(id)).Err(); err != nil {
		c.log.Warnf("cache invalidation failed for movie %s: %v", id, err)
	}
}

func movieKey(id string) string {
	return "movies:" + id
}
