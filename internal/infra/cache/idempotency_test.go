//go:build e2e

package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"retail-ops-core/internal/domain/idempotency"
	"retail-ops-core/internal/infra"
	"retail-ops-core/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *cache.IdempotencyStore {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client, err := cache.Connect(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewIdempotencyStore(client)
}

func TestRedisIdempotencyStore(t *testing.T) {
	store := startRedis(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("lock lifecycle", func(t *testing.T) {
		rec := idempotency.NewInProgress("shopify_sync:"+uuid.NewString(), "fp", now, time.Hour, time.Minute)

		inserted, err := store.TryInsert(ctx, rec)
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = store.TryInsert(ctx, idempotency.NewInProgress(rec.Key, "fp", now, time.Hour, time.Minute))
		require.NoError(t, err)
		assert.False(t, inserted)

		err = store.Complete(ctx, rec.Key, uuid.New(), idempotency.StoredResponse{StatusCode: 200})
		assert.True(t, infra.IsKind(err, infra.KindConflict))

		resp := idempotency.StoredResponse{StatusCode: 201, Body: []byte(`{"ok":true}`)}
		require.NoError(t, store.Complete(ctx, rec.Key, rec.Token, resp))

		got, err := store.Get(ctx, rec.Key)
		require.NoError(t, err)
		assert.Equal(t, idempotency.StateCompleted, got.State)
		require.NotNil(t, got.Response)
		assert.Equal(t, resp.Body, got.Response.Body)

		// completed records are not released
		require.NoError(t, store.Release(ctx, rec.Key, rec.Token))
		_, err = store.Get(ctx, rec.Key)
		assert.NoError(t, err)
	})

	t.Run("replace is compare and swap", func(t *testing.T) {
		rec := idempotency.NewInProgress("k:"+uuid.NewString(), "fp", now, time.Hour, time.Minute)
		_, err := store.TryInsert(ctx, rec)
		require.NoError(t, err)

		next := idempotency.NewInProgress(rec.Key, "fp", now, time.Hour, time.Minute)
		won, err := store.Replace(ctx, uuid.New(), next)
		require.NoError(t, err)
		assert.False(t, won)

		won, err = store.Replace(ctx, rec.Token, next)
		require.NoError(t, err)
		assert.True(t, won)

		require.NoError(t, store.Release(ctx, rec.Key, next.Token))
		_, err = store.Get(ctx, rec.Key)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
