package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return client, mr
}

func TestNewClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("not-a-url")
	assert.Error(t, err)
}

func TestClient_SetNXAndExists(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	exists, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	ok, err := client.SetNX(ctx, "k", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "k", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	exists, err = client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	val, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "first", val)
}

func TestProcessedEvents(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	events := NewProcessedEvents(client, 72*time.Hour)

	seen, err := events.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, events.Remember(ctx, "evt_1"))
	require.NoError(t, events.Remember(ctx, "evt_1"))

	seen, err = events.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, seen)

	assert.Equal(t, 72*time.Hour, mr.TTL(processedEventPrefix+"evt_1"))

	mr.FastForward(73 * time.Hour)

	seen, err = events.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestProcessedEvents_RedisDown(t *testing.T) {
	client, mr := setupTestRedis(t)
	events := NewProcessedEvents(client, time.Hour)
	mr.Close()

	_, err := events.Seen(context.Background(), "evt_1")
	assert.Error(t, err)
	assert.Error(t, events.Remember(context.Background(), "evt_1"))
}
