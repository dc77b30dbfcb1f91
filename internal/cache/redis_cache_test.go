package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// An unreachable server must surface as an error, never as a cache hit.
func TestRedisCatalogCacheUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCatalogCache(client)
	ctx := context.Background()

	if _, found, err := c.Get(ctx, "catalog:movies"); err == nil || found {
		t.Fatalf("expected error and miss, got found=%v err=%v", found, err)
	}
	if err := c.Set(ctx, "catalog:movies", []byte("[]"), time.Minute); err == nil {
		t.Fatalf("expected set error")
	}
	if err := c.Delete(ctx); err != nil {
		t.Fatalf("deleting no keys should be a no-op, got %v", err)
	}
}

func TestConnectFailsFast(t *testing.T) {
	if _, err := Connect(context.Background(), "127.0.0.1:1", "", 0); err == nil {
		t.Fatalf("expected connect error")
	}
}
