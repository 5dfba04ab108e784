package eventbus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"deliveryops/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	channelPrefix = "deliveryops:events:"

	maxRetryDelay = 30 * time.Second
)

// RedisBus fans events out to every service instance through Redis Pub/Sub.
// Messages received from Redis are dispatched to local subscribers, including
// the ones of the publishing instance.
type RedisBus struct {
	client *redis.Client
	local  *LocalBus
	logger *zap.Logger
}

// NewRedisBus connects to redisURL, formatted as
// redis://[:password@]host[:port][/database].
func NewRedisBus(redisURL string, logger *zap.Logger) (*RedisBus, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RedisBus{
		client: redis.NewClient(opts),
		local:  NewLocalBus(logger),
		logger: logger,
	}, nil
}

// Publish sends the JSON payload to the event's channel.
func (b *RedisBus) Publish(ctx context.Context, name ports.EventName, payload any) error {
	data, err := encode(name, payload)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, channel(name), data).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", name, err)
	}
	return nil
}

// Subscribe registers a local handler. Run must be active for it to receive
// anything.
func (b *RedisBus) Subscribe(name ports.EventName, handler ports.EventHandler) func() {
	return b.local.Subscribe(name, handler)
}

// Run listens on every event channel until ctx is done. ready, when not nil,
// is closed once the subscription is confirmed.
func (b *RedisBus) Run(ctx context.Context, ready chan<- struct{}) error {
	names := ports.EventNames()
	channels := make([]string, 0, len(names))
	for _, name := range names {
		channels = append(channels, channel(name))
	}

	sub := b.client.Subscribe(ctx, channels...)
	defer func() { _ = sub.Close() }()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}
	if ready != nil {
		close(ready)
	}

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return errors.New("redis subscription closed")
			}
			name := ports.EventName(strings.TrimPrefix(msg.Channel, channelPrefix))
			b.local.Dispatch(ctx, name, []byte(msg.Payload))
		}
	}
}

// Listen keeps a subscriber running until ctx is done. When Run fails it logs
// the error and reconnects after retryDelay, doubling the delay up to 30s
// while Redis stays unreachable. Events published during an outage are lost.
func (b *RedisBus) Listen(ctx context.Context, retryDelay time.Duration) {
	delay := retryDelay
	for {
		ready := make(chan struct{})
		err := b.Run(ctx, ready)
		if ctx.Err() != nil {
			return
		}

		select {
		case <-ready:
			delay = retryDelay
		default:
		}
		b.logger.Warn("Redis subscriber stopped, reconnecting",
			zap.Error(err),
			zap.Duration("retry_in", delay),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRetryDelay)
	}
}

// Ping checks if Redis is reachable.
func (b *RedisBus) Ping(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (b *RedisBus) Close() error {
	return b.client.Close()
}

func channel(name ports.EventName) string {
	return channelPrefix + string(name)
}
