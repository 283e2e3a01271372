package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis is a Cache backed by a shared Redis instance. Values are stored as
// JSON, so callers get back generic decoded values (map[string]any, string,
// float64...) rather than the original Go types. Redis errors degrade to
// cache misses.
type Redis struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

func NewRedis(client *redis.Client, prefix string, log *zap.Logger) *Redis {
	return &Redis{client: client, prefix: prefix, log: log}
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}

func (r *Redis) Get(ctx context.Context, key string) (any, bool) {
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		r.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		r.log.Warn("cache entry not decodable", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return v, true
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	b, err := json.Marshal(value)
	if err != nil {
		r.log.Warn("cache value not encodable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, r.key(key), b, ttl).Err(); err != nil {
		r.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.log.Warn("cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Clear removes every entry under this cache's prefix.
func (r *Redis) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, r.prefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.log.Warn("cache clear delete failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		r.log.Warn("cache clear scan failed", zap.Error(err))
	}
}
