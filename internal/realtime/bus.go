package realtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Bus is the per-room, per-resource fanout. Delivery is at-least-once to
// subscribers active at publish time; there is no replay buffer, so the
// correct consumer pattern is fetch-current-state-then-subscribe and
// reconcile by content.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(ctx context.Context, roomID uuid.UUID, res Resource) (Subscription, error)
	Close() error
}

// Subscription is one live event stream. Events is closed after
// Unsubscribe; Unsubscribe is idempotent.
type Subscription interface {
	Events() <-chan Event
	Unsubscribe()
}

// subscriber channel depth. A subscriber that stays this far behind has
// its oldest events dropped rather than blocking the publisher.
const subscriptionBuffer = 64

func channelName(roomID uuid.UUID, res Resource) string {
	return fmt.Sprintf("room:%s:%s", roomID, res)
}
