// Package testutil holds shared fixtures for the engine's integration
// tests. Tests that need real infrastructure skip themselves when Docker
// is not available, so the unit suite stays runnable everywhere.
package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const redisImage = "redis:8-alpine"

// RedisClient starts a throwaway redis container and returns a client
// connected to it. The container and the client are torn down with the
// test. Skips the test when no container runtime is reachable.
func RedisClient(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()

	// Testcontainers panics instead of erroring when the Docker socket is
	// missing entirely.
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("redis container unavailable: %v", r)
		}
	}()

	container, err := tcredis.Run(ctx, redisImage)
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("redis container endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("close redis client: %v", err)
		}
	})

	return client
}
