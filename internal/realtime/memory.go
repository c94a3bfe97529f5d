package realtime

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MemoryBus is an in-process Bus with the same ordering and at-least-once
// semantics as RedisBus. It backs tests and single-node deployments where
// Redis would only talk to itself.
type MemoryBus struct {
	mu     sync.RWMutex
	subs   map[string][]*memorySubscription
	closed bool
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: make(map[string][]*memorySubscription)}
}

func (b *MemoryBus) Publish(_ context.Context, event Event) error {
	name := channelName(event.RoomID, event.Resource)

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs[name] {
		select {
		case sub.events <- event:
		default:
			logrus.WithField("channel", name).
				Warn("Subscriber behind, dropping fanout event")
		}
	}
	return nil
}

func (b *MemoryBus) Subscribe(_ context.Context, roomID uuid.UUID, res Resource) (Subscription, error) {
	name := channelName(roomID, res)
	sub := &memorySubscription{
		bus:     b,
		channel: name,
		events:  make(chan Event, subscriptionBuffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[name] = append(b.subs[name], sub)
	return sub, nil
}

func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for name, subs := range b.subs {
		for _, sub := range subs {
			close(sub.events)
		}
		delete(b.subs, name)
	}
	return nil
}

func (b *MemoryBus) remove(sub *memorySubscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	subs := b.subs[sub.channel]
	for i, s := range subs {
		if s == sub {
			b.subs[sub.channel] = append(subs[:i], subs[i+1:]...)
			close(sub.events)
			return
		}
	}
}

type memorySubscription struct {
	bus     *MemoryBus
	channel string
	events  chan Event
	once    sync.Once
}

func (s *memorySubscription) Events() <-chan Event {
	return s.events
}

func (s *memorySubscription) Unsubscribe() {
	s.once.Do(func() { s.bus.remove(s) })
}
