// Package store provides concrete key-value backends for the backfill
// utility's KVStore interface.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	companionsdk "github.com/mindloop/companion-sdk-go"
)

// RedisKVConfig configures the Redis-backed store.
type RedisKVConfig struct {
	Prefix string        // key prefix, default "companion"
	TTL    time.Duration // TTL for entries, 0 = no expiry
}

// RedisKV implements companionsdk.KVStore on a go-redis v9 client.
// Keys are namespaced as "{prefix}:{key}".
type RedisKV struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisKV creates a KVStore backed by Redis.
func NewRedisKV(client redis.UniversalClient, config ...RedisKVConfig) *RedisKV {
	cfg := RedisKVConfig{Prefix: "companion"}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Prefix == "" {
			cfg.Prefix = "companion"
		}
	}
	return &RedisKV{client: client, prefix: cfg.Prefix, ttl: cfg.TTL}
}

func (r *RedisKV) key(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

// Get returns the stored value, or companionsdk.ErrKeyNotFound.
func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", companionsdk.ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

// Set stores the value under the key, applying the configured TTL.
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.key(key), value, r.ttl).Err()
}
