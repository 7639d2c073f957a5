package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowforge/flowforge/internal/adapters/redis"
	"github.com/flowforge/flowforge/pkg/domain"
	"github.com/flowforge/flowforge/pkg/ports"
)

func setupRedis(t *testing.T, opts ...redis.Option) *redis.Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...)
}

func TestRedisStore_Contract(t *testing.T) {
	ports.RunArtifactStoreContract(t, setupRedis(t))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))

	ctx := context.Background()
	generation := &domain.Generation{
		Scenario: &domain.Scenario{Name: "Expiring_Automation"},
	}

	require.NoError(t, store.Save(ctx, "ttl-key", generation))

	_, err = store.Load(ctx, "ttl-key")
	require.NoError(t, err)

	// miniredis advances TTLs manually
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "ttl-key")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "abc", &domain.Generation{
		Scenario: &domain.Scenario{Name: "Prefixed_Automation"},
	}))

	assert.True(t, mr.Exists("custom:abc"))
}
