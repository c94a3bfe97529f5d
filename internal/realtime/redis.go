package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RedisBus fans events out over Redis pub/sub, one channel per
// (room, resource). Per channel, Redis preserves publish order, which is
// exactly the per-kind ordering the consumers rely on.
type RedisBus struct {
	rdb *redis.Client
}

func NewRedisBus(rdb *redis.Client) *RedisBus {
	return &RedisBus{rdb: rdb}
}

func (b *RedisBus) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("realtime: marshal event: %w", err)
	}
	name := channelName(event.RoomID, event.Resource)
	if err := b.rdb.Publish(ctx, name, payload).Err(); err != nil {
		return fmt.Errorf("realtime: publish to %s: %w", name, err)
	}
	return nil
}

func (b *RedisBus) Subscribe(ctx context.Context, roomID uuid.UUID, res Resource) (Subscription, error) {
	name := channelName(roomID, res)
	pubsub := b.rdb.Subscribe(ctx, name)

	// Wait for the subscription to be confirmed so no event published
	// after Subscribe returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("realtime: subscribe to %s: %w", name, err)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		events: make(chan Event, subscriptionBuffer),
	}
	go sub.pump(name)
	return sub, nil
}

func (b *RedisBus) Close() error {
	return nil // the redis client is owned by the caller
}

type redisSubscription struct {
	pubsub *redis.PubSub
	events chan Event
	once   sync.Once
}

func (s *redisSubscription) pump(name string) {
	defer close(s.events)
	for msg := range s.pubsub.Channel() {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			logrus.WithError(err).WithField("channel", name).
				Warn("Dropping undecodable fanout event")
			continue
		}
		select {
		case s.events <- event:
		default:
			logrus.WithField("channel", name).
				Warn("Subscriber behind, dropping fanout event")
		}
	}
}

func (s *redisSubscription) Events() <-chan Event {
	return s.events
}

func (s *redisSubscription) Unsubscribe() {
	s.once.Do(func() {
		// Closing the PubSub closes its Channel, which ends pump and
		// closes events.
		_ = s.pubsub.Close()
	})
}
