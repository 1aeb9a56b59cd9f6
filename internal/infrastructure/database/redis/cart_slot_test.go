package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockflow/internal/domain/cart"
	"github.com/your-org/stockflow/internal/domain/product"
	"github.com/your-org/stockflow/internal/pkg/logger"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestCartSlotGetMissing(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	slot := NewCartSlots(client, time.Minute).ForSession(uuid.NewString())

	_, found, err := slot.Get(context.Background(), cart.StorageKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCartSlotSetUsesNamespaceAndTTL(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	sessionID := uuid.NewString()
	slot := NewCartSlots(client, time.Minute).ForSession(sessionID)
	defer client.Del(ctx, "session:"+sessionID+":"+cart.StorageKey)

	require.NoError(t, slot.Set(ctx, cart.StorageKey, "[]"))

	raw, err := client.Get(ctx, "session:"+sessionID+":"+cart.StorageKey).Result()
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	ttl, err := client.TTL(ctx, "session:"+sessionID+":"+cart.StorageKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestCartStoreRoundTripThroughRedis(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	sessionID := uuid.NewString()
	slots := NewCartSlots(client, time.Minute)
	defer client.Del(ctx, "session:"+sessionID+":"+cart.StorageKey)

	store := cart.NewStore(ctx, slots.ForSession(sessionID), logger.Discard())
	store.AddItem(ctx, &product.Product{ID: 1, Name: "Mug", Price: 1000}, 2)
	store.AddItem(ctx, &product.Product{ID: 2, Name: "Tea", Price: 350}, 4)

	again := cart.NewStore(ctx, slots.ForSession(sessionID), logger.Discard())
	assert.Equal(t, store.Items(), again.Items())

	other := cart.NewStore(ctx, slots.ForSession(uuid.NewString()), logger.Discard())
	assert.True(t, other.IsEmpty())
}

func TestCorruptRedisValueYieldsEmptyCart(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	sessionID := uuid.NewString()
	key := "session:" + sessionID + ":" + cart.StorageKey
	defer client.Del(ctx, key)

	require.NoError(t, client.Set(ctx, key, "{{{", time.Minute).Err())

	store := cart.NewStore(ctx, NewCartSlots(client, time.Minute).ForSession(sessionID), logger.Discard())
	assert.True(t, store.IsEmpty())
}
