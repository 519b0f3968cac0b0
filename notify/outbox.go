package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrOutboxFull = errors.New("outbox is full")

type Outbox interface {
	// Publish enqueues ev without waiting for delivery.
	Publish(ctx context.Context, ev Event) error
	// Receive blocks until an event is available or ctx is done.
	Receive(ctx context.Context) (Event, error)
}

// ChannelOutbox keeps events in process memory.
type ChannelOutbox struct {
	events chan Event
}

func NewChannelOutbox(size int) *ChannelOutbox {
	if size <= 0 {
		size = 1
	}
	return &ChannelOutbox{events: make(chan Event, size)}
}

func (o *ChannelOutbox) Publish(_ context.Context, ev Event) error {
	select {
	case o.events <- ev:
		return nil
	default:
		return ErrOutboxFull
	}
}

func (o *ChannelOutbox) Receive(ctx context.Context) (Event, error) {
	select {
	case ev := <-o.events:
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// RedisOutbox queues events on a Redis list: LPUSH to publish, BRPOP to receive.
type RedisOutbox struct {
	client redis.Cmdable
	key    string
	wait   time.Duration
}

func NewRedisOutbox(client redis.Cmdable, key string) *RedisOutbox {
	return &RedisOutbox{client: client, key: key, wait: 5 * time.Second}
}

func (o *RedisOutbox) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", ev.ID, err)
	}
	if err := o.client.LPush(ctx, o.key, string(payload)).Err(); err != nil {
		return fmt.Errorf("lpush %s: %w", o.key, err)
	}
	return nil
}

func (o *RedisOutbox) Receive(ctx context.Context) (Event, error) {
	for {
		res, err := o.client.BRPop(ctx, o.wait, o.key).Result()
		if errors.Is(err, redis.Nil) {
			if ctx.Err() != nil {
				return Event{}, ctx.Err()
			}
			continue
		}
		if err != nil {
			return Event{}, fmt.Errorf("brpop %s: %w", o.key, err)
		}
		// res is [key, value]
		if len(res) != 2 {
			return Event{}, fmt.Errorf("brpop %s: unexpected reply %v", o.key, res)
		}
		var ev Event
		if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
			return Event{}, fmt.Errorf("decode event: %w", err)
		}
		return ev, nil
	}
}
