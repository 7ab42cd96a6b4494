package cache

import (
	"context"
	"strings"

	"lims_service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultRefreshChannel = "lims:refresh"

// RefreshFunc reloads the entity caches of this instance.
type RefreshFunc func(ctx context.Context, reason string)

// RedisRefreshNotifier fans refresh requests out to every instance over Redis pub/sub.
type RedisRefreshNotifier struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

var _ interfaces.IRefreshNotifier = (*RedisRefreshNotifier)(nil)

func NewRedisRefreshNotifier(client *redis.Client, channel string, logger *zap.Logger) *RedisRefreshNotifier {
	if strings.TrimSpace(channel) == "" {
		channel = DefaultRefreshChannel
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisRefreshNotifier{client: client, channel: channel, logger: logger}
}

func (n *RedisRefreshNotifier) Publish(ctx context.Context, reason string) error {
	if n == nil || n.client == nil {
		return nil
	}
	return n.client.Publish(ctx, n.channel, reason).Err()
}

// Listen subscribes to the refresh channel and calls onRefresh for each message until ctx
// is done. It returns once the subscription is confirmed.
func (n *RedisRefreshNotifier) Listen(ctx context.Context, onRefresh RefreshFunc) error {
	if n == nil || n.client == nil {
		return nil
	}
	pubsub := n.client.Subscribe(ctx, n.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return err
	}
	n.logger.Info("[refresh][redis] subscribed", zap.String("channel", n.channel))

	go func() {
		defer func() { _ = pubsub.Close() }()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				n.logger.Debug("[refresh][redis] refresh requested", zap.String("reason", msg.Payload))
				onRefresh(ctx, msg.Payload)
			}
		}
	}()
	return nil
}

// LocalRefreshNotifier refreshes the current instance directly. Used when Redis is not configured.
type LocalRefreshNotifier struct {
	refresh RefreshFunc
}

var _ interfaces.IRefreshNotifier = (*LocalRefreshNotifier)(nil)

func NewLocalRefreshNotifier(refresh RefreshFunc) *LocalRefreshNotifier {
	return &LocalRefreshNotifier{refresh: refresh}
}

func (n *LocalRefreshNotifier) Publish(ctx context.Context, reason string) error {
	if n == nil || n.refresh == nil {
		return nil
	}
	n.refresh(ctx, reason)
	return nil
}
