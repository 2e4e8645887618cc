package providers

import (
	"context"

	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// EventBus fans bench change events out to in-process or cross-instance subscribers
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.BenchEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.BenchEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelBenchUpdates carries every bench change. Subscribers receive
// events published after they subscribed; nothing is replayed.
const EventChannelBenchUpdates = "benches:updates"
