package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	companionsdk "github.com/mindloop/companion-sdk-go"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisKV_RoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	kv := NewRedisKV(client)
	ctx := context.Background()

	if err := kv.Set(ctx, "bundle", `{"v":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := kv.Get(ctx, "bundle")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `{"v":1}` {
		t.Fatalf("Get = %q", got)
	}
	if !mr.Exists("companion:bundle") {
		t.Fatal("keys must be namespaced under the default prefix")
	}
}

func TestRedisKV_MissingKey(t *testing.T) {
	_, client := newTestRedis(t)
	kv := NewRedisKV(client)

	_, err := kv.Get(context.Background(), "nope")
	if !errors.Is(err, companionsdk.ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
}

func TestRedisKV_PrefixAndTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	kv := NewRedisKV(client, RedisKVConfig{Prefix: "tenant7", TTL: time.Minute})
	ctx := context.Background()

	if err := kv.Set(ctx, "bundle", "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mr.Exists("tenant7:bundle") {
		t.Fatal("custom prefix not applied")
	}
	if ttl := mr.TTL("tenant7:bundle"); ttl != time.Minute {
		t.Fatalf("TTL = %v, want 1m", ttl)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, companionsdk.ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
	if err := kv.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := kv.Get(ctx, "a")
	if err != nil || got != "2" {
		t.Fatalf("Get = %q, %v", got, err)
	}
	if kv.Writes() != 2 {
		t.Fatalf("Writes = %d, want 2", kv.Writes())
	}
}
