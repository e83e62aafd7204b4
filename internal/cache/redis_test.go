package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
)

func stubRedis(t *testing.T, pingErr error) *string {
	t.Helper()

	origNewClient := newRedisClient
	origPing := pingRedis
	t.Cleanup(func() {
		newRedisClient = origNewClient
		pingRedis = origPing
		Client = nil
	})

	var capturedAddr string
	newRedisClient = func(opts *redis.Options) *redis.Client {
		capturedAddr = opts.Addr
		return redis.NewClient(opts)
	}
	pingRedis = func(ctx context.Context, client *redis.Client) error {
		return pingErr
	}
	return &capturedAddr
}

func TestInitRedisCustomAddr(t *testing.T) {
	t.Setenv("REDIS_URL", "redis-host:9999")
	addr := stubRedis(t, nil)

	InitRedis(context.Background())
	if *addr != "redis-host:9999" {
		t.Fatalf("expected custom addr, got %s", *addr)
	}
	if Client == nil {
		t.Fatal("expected client to be set")
	}
}

func TestInitRedisDefaultAddr(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	addr := stubRedis(t, nil)

	InitRedis(context.Background())
	if *addr != "localhost:6379" {
		t.Fatalf("expected default addr, got %s", *addr)
	}
}

func TestInitRedisUnreachableIsNonFatal(t *testing.T) {
	t.Setenv("REDIS_URL", "down:6379")
	stubRedis(t, errors.New("connection refused"))

	InitRedis(context.Background())
	if Client != nil {
		t.Fatal("client should stay nil when ping fails")
	}
}
