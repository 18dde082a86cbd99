package redis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisAdapter_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("failed to start redis: %v", err)
	}
	defer func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis: %v", err)
		}
	}()

	endpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// The redis-container module returns a URL like redis://localhost:port
	// but redis.NewClient expects just the host:port.
	addr := strings.TrimPrefix(endpoint, "redis://")

	adapter := NewAdapter(addr)
	defer adapter.client.Close()

	t.Run("Set then Get", func(t *testing.T) {
		data := []byte(`{"id":"course-1","title":"Go 101"}`)
		assert.NoError(t, adapter.Set(ctx, "course-1", data))

		got, ok, err := adapter.Get(ctx, "course-1")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, data, got)
	})

	t.Run("Get on unknown key is a miss, not an error", func(t *testing.T) {
		_, ok, err := adapter.Get(ctx, "never-set")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Remove", func(t *testing.T) {
		assert.NoError(t, adapter.Set(ctx, "course-2", []byte(`{}`)))
		assert.NoError(t, adapter.Remove(ctx, "course-2"))

		_, ok, err := adapter.Get(ctx, "course-2")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
