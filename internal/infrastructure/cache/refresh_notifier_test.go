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

func TestRedisRefreshNotifier_PublishReachesListener(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := NewRedisRefreshNotifier(client, "", nil)
	got := make(chan string, 1)
	require.NoError(t, n.Listen(ctx, func(_ context.Context, reason string) { got <- reason }))

	require.NoError(t, n.Publish(ctx, "invoice issued"))

	select {
	case reason := <-got:
		assert.Equal(t, "invoice issued", reason)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh was not delivered")
	}
}

func TestRedisRefreshNotifier_UsesConfiguredChannel(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := NewRedisRefreshNotifier(client, "custom:refresh", nil)
	require.NoError(t, n.Listen(ctx, func(context.Context, string) {}))

	assert.Equal(t, []string{"custom:refresh"}, mr.PubSubChannels(""))
}

func TestRedisRefreshNotifier_NilClient(t *testing.T) {
	n := NewRedisRefreshNotifier(nil, "", nil)
	assert.NoError(t, n.Publish(context.Background(), "x"))
	assert.NoError(t, n.Listen(context.Background(), func(context.Context, string) {}))
}

func TestLocalRefreshNotifier(t *testing.T) {
	var reasons []string
	n := NewLocalRefreshNotifier(func(_ context.Context, reason string) { reasons = append(reasons, reason) })

	require.NoError(t, n.Publish(context.Background(), "invoice issued"))
	assert.Equal(t, []string{"invoice issued"}, reasons)
}
